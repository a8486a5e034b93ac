package logger

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"go.uber.org/zap"
)

func TestInitConsole(t *testing.T) {
	if err := Init("debug", "console", "stdout", ""); err != nil {
		t.Fatalf("Init: %v", err)
	}
	if Logger == nil {
		t.Fatal("expected the global logger to be set")
	}
	Debug("console logger up")
}

func TestInitWritesToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "app.log")
	if err := Init("info", "json", "file", path); err != nil {
		t.Fatalf("Init: %v", err)
	}

	Info("hello from the test", zap.String("component", "logger"))
	Sync()

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read log file: %v", err)
	}
	if !strings.Contains(string(data), "hello from the test") {
		t.Fatalf("expected the message in the log file, got %q", string(data))
	}
	if !strings.Contains(string(data), `"component":"logger"`) {
		t.Fatalf("expected the structured field in the log file, got %q", string(data))
	}
}

func TestInitFileLevelFiltersDebug(t *testing.T) {
	path := filepath.Join(t.TempDir(), "app.log")
	if err := Init("warn", "json", "file", path); err != nil {
		t.Fatalf("Init: %v", err)
	}

	Debug("too quiet")
	Warn("loud enough")
	Sync()

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read log file: %v", err)
	}
	if strings.Contains(string(data), "too quiet") {
		t.Fatal("expected debug lines to be filtered at warn level")
	}
	if !strings.Contains(string(data), "loud enough") {
		t.Fatal("expected warn lines to pass the filter")
	}
}
