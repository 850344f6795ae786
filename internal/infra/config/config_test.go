package config

import (
	"errors"
	"os"
	"slices"
	"testing"

	"homework_status_bot/internal/domain/homework"
)

func setEnv(t *testing.T, practicum, telegram, chatID string) {
	t.Helper()
	t.Setenv("PRACTICUM_TOKEN", practicum)
	t.Setenv("TELEGRAM_TOKEN", telegram)
	t.Setenv("TELEGRAM_CHAT_ID", chatID)
	t.Setenv("LOG_LEVEL", "")
	t.Setenv("ENVIRONMENT", "")
	t.Setenv("LOG_FILE", "")
	// Keep a stray .env in the package dir from leaking in.
	wd, err := os.Getwd()
	if err != nil {
		t.Fatal(err)
	}
	if err := os.Chdir(t.TempDir()); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { _ = os.Chdir(wd) })
}

func TestLoad(t *testing.T) {
	setEnv(t, "p-token", "t-token", "561180852")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.PracticumToken != "p-token" || cfg.TelegramToken != "t-token" {
		t.Errorf("tokens = %q, %q", cfg.PracticumToken, cfg.TelegramToken)
	}
	if cfg.TelegramChatID != 561180852 {
		t.Errorf("TelegramChatID = %d, want 561180852", cfg.TelegramChatID)
	}
	if cfg.LogLevel != "info" || cfg.Environment != "development" || cfg.LogFile != defaultLogFile {
		t.Errorf("defaults not applied: %+v", cfg)
	}
}

func TestLoad_Missing(t *testing.T) {
	tests := []struct {
		name                        string
		practicum, telegram, chatID string
		want                        []string
	}{
		{"all missing", "", "", "", []string{"PRACTICUM_TOKEN", "TELEGRAM_TOKEN", "TELEGRAM_CHAT_ID"}},
		{"practicum", "", "t", "1", []string{"PRACTICUM_TOKEN"}},
		{"telegram", "p", "", "1", []string{"TELEGRAM_TOKEN"}},
		{"chat id", "p", "t", "", []string{"TELEGRAM_CHAT_ID"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			setEnv(t, tt.practicum, tt.telegram, tt.chatID)

			cfg, err := Load()
			if cfg == nil {
				t.Fatal("Load() returned nil config")
			}
			if !errors.Is(err, homework.ErrMissingConfiguration) {
				t.Fatalf("Load() error = %v, want ErrMissingConfiguration", err)
			}
			var me *MissingError
			if !errors.As(err, &me) {
				t.Fatalf("error %T is not *MissingError", err)
			}
			if !slices.Equal(me.Names, tt.want) {
				t.Errorf("missing = %v, want %v", me.Names, tt.want)
			}
		})
	}
}

func TestLoad_InvalidChatID(t *testing.T) {
	setEnv(t, "p", "t", "not-a-number")

	_, err := Load()
	if err == nil {
		t.Fatal("expected error for invalid chat id")
	}
	if errors.Is(err, homework.ErrMissingConfiguration) {
		t.Errorf("invalid chat id reported as missing: %v", err)
	}
}
