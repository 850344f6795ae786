package main

import (
	"context"
	"errors"
	"fmt"
	"os/signal"
	"syscall"

	"homework_status_bot/internal/app"
	"homework_status_bot/internal/infra/config"
	"homework_status_bot/internal/infra/logger"
	"homework_status_bot/internal/infra/practicum"
	"homework_status_bot/internal/infra/scheduler"
	"homework_status_bot/internal/infra/telegram"
)

func main() {
	fmt.Println("Homework Status Bot starting...")

	cfg, cfgErr := config.Load()

	closer, err := logger.Init(cfg)
	if err != nil {
		logger.Log.Warnf("Logging to stdout only: %v", err)
	} else {
		defer closer.Close()
	}
	mainLog := logger.Named("main")

	// Nothing touches the network until every required variable is present.
	var missing *config.MissingError
	if errors.As(cfgErr, &missing) {
		for _, name := range missing.Names {
			mainLog.Errorf("Required environment variable %s is not set", name)
		}
		mainLog.Fatal("Missing configuration, exiting")
	}
	if cfgErr != nil {
		mainLog.Fatalf("Could not load application configuration: %v", cfgErr)
	}
	mainLog.Infof("Configuration loaded. LogLevel: %s, Environment: %s, Chat ID: %d", cfg.LogLevel, cfg.Environment, cfg.TelegramChatID)

	bot, err := telegram.NewBot(cfg.TelegramToken)
	if err != nil {
		mainLog.Fatalf("Could not create Telegram bot: %v", err)
	}
	notifier := app.NewNotifier(telegram.NewTelebotAdapter(bot), cfg.TelegramChatID, logger.Named("notifier"))

	poller := app.NewPoller(app.PollerConfig{
		API:      practicum.NewClient(cfg.PracticumToken, nil),
		Notifier: notifier,
		Waiter:   scheduler.NewPollScheduler(scheduler.RetryPeriod),
		Logger:   logger.Named("poller"),
	})

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	mainLog.Info("Application setup complete. Polling started.")
	_ = poller.Run(ctx)

	mainLog.Infof("Shutting down. Undelivered messages this run: %d", notifier.FailedDeliveries())
}
