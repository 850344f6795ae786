package logger

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"homework_status_bot/internal/infra/config"

	"github.com/sirupsen/logrus"
)

func TestInit_AppendsToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bot.log")
	if err := os.WriteFile(path, []byte("previous run\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	closer, err := Init(&config.AppConfig{LogLevel: "debug", Environment: "development", LogFile: path})
	if err != nil {
		t.Fatalf("Init() error = %v", err)
	}
	Named("poller").Info("cycle finished")
	closer.Close()
	Log.SetOutput(os.Stdout)

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	out := string(data)
	if !strings.HasPrefix(out, "previous run\n") {
		t.Errorf("log file was truncated: %q", out)
	}
	for _, want := range []string{"level=info", "logger=poller", "cycle finished"} {
		if !strings.Contains(out, want) {
			t.Errorf("log output %q missing %q", out, want)
		}
	}
	if Log.GetLevel() != logrus.DebugLevel {
		t.Errorf("level = %v, want debug", Log.GetLevel())
	}
}

func TestInit_InvalidLevel(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bot.log")

	closer, err := Init(&config.AppConfig{LogLevel: "loud", LogFile: path})
	if err != nil {
		t.Fatalf("Init() error = %v", err)
	}
	defer closer.Close()
	defer Log.SetOutput(os.Stdout)

	if Log.GetLevel() != logrus.InfoLevel {
		t.Errorf("level = %v, want info", Log.GetLevel())
	}
}

func TestInit_BadPath(t *testing.T) {
	_, err := Init(&config.AppConfig{LogLevel: "info", LogFile: filepath.Join(t.TempDir(), "missing", "bot.log")})
	if err == nil {
		t.Error("expected error for unwritable log path")
	}
}
