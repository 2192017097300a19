package logger

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"dishseed/config"
	log "github.com/sirupsen/logrus"
)

func TestSetupLoggingWritesToFile(t *testing.T) {
	conf := config.Default()
	conf.Logging.LogLevel = "warn"
	conf.Logging.LogPath = filepath.Join(t.TempDir(), "seed.log")

	l := log.New()
	if err := SetupLogging(conf, l); err != nil {
		t.Fatal(err)
	}
	if l.GetLevel() != log.WarnLevel {
		t.Fatalf("expected warn level, got %v", l.GetLevel())
	}
	l.Info("hidden")
	l.Warn("visible")

	b, err := os.ReadFile(conf.Logging.LogPath)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(b), "visible") || strings.Contains(string(b), "hidden") {
		t.Fatalf("unexpected log contents: %q", b)
	}
}

func TestSetupLoggingRejectsUnknownLevel(t *testing.T) {
	conf := config.Default()
	conf.Logging.LogLevel = "chatty"
	if err := SetupLogging(conf, log.New()); err == nil {
		t.Fatal("expected error for unknown level")
	}
}
