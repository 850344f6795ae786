package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"homework_status_bot/internal/domain/homework"

	"github.com/joho/godotenv"
)

const defaultLogFile = "homework_bot.log"

// AppConfig holds all configuration for the application
type AppConfig struct {
	PracticumToken string
	TelegramToken  string
	TelegramChatID int64
	LogLevel       string
	Environment    string
	LogFile        string
}

// MissingError lists every required variable that was not set.
type MissingError struct {
	Names []string
}

func (e *MissingError) Error() string {
	return fmt.Sprintf("%v: %s", homework.ErrMissingConfiguration, strings.Join(e.Names, ", "))
}

func (e *MissingError) Unwrap() error {
	return homework.ErrMissingConfiguration
}

// Load reads configuration from environment variables and .env file (if present).
// The returned config is always non-nil so that logging can be set up before
// the caller reports a *MissingError and exits.
func Load() (*AppConfig, error) {
	// godotenv.Load will not override existing env variables.
	_ = godotenv.Load()

	cfg := &AppConfig{
		PracticumToken: os.Getenv("PRACTICUM_TOKEN"),
		TelegramToken:  os.Getenv("TELEGRAM_TOKEN"),
	}

	cfg.LogLevel = strings.ToLower(os.Getenv("LOG_LEVEL"))
	if cfg.LogLevel == "" {
		cfg.LogLevel = "info"
	}

	cfg.Environment = strings.ToLower(os.Getenv("ENVIRONMENT"))
	if cfg.Environment == "" {
		cfg.Environment = "development"
	}

	cfg.LogFile = os.Getenv("LOG_FILE")
	if cfg.LogFile == "" {
		cfg.LogFile = defaultLogFile
	}

	var missing []string
	if cfg.PracticumToken == "" {
		missing = append(missing, "PRACTICUM_TOKEN")
	}
	if cfg.TelegramToken == "" {
		missing = append(missing, "TELEGRAM_TOKEN")
	}

	chatIDStr := os.Getenv("TELEGRAM_CHAT_ID")
	if chatIDStr == "" {
		missing = append(missing, "TELEGRAM_CHAT_ID")
	}
	if len(missing) > 0 {
		return cfg, &MissingError{Names: missing}
	}

	chatID, err := strconv.ParseInt(chatIDStr, 10, 64)
	if err != nil {
		return cfg, fmt.Errorf("invalid TELEGRAM_CHAT_ID: %w", err)
	}
	cfg.TelegramChatID = chatID

	return cfg, nil
}
