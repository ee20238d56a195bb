package core

import (
	"os"
	"path/filepath"
	"testing"
)

func writeConfig(t *testing.T, contents string) string {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "config.yaml"), []byte(contents), 0600); err != nil {
		t.Fatalf("error writing test config: %v", err)
	}
	return dir
}

func TestLoadConfig_Defaults(t *testing.T) {
	cfg, err := LoadConfig(t.TempDir())
	if err != nil {
		t.Fatalf("LoadConfig() unexpected error: %v", err)
	}
	if !cfg.Deck.Strict {
		t.Errorf("expected deck.strict to default to true")
	}
	if cfg.Logging.LogLevel != "info" {
		t.Errorf("logging.level want = info, got = %s", cfg.Logging.LogLevel)
	}
	if cfg.DeckPath() != "" {
		t.Errorf("DeckPath() want = \"\", got = %s", cfg.DeckPath())
	}
}

func TestLoadConfig_File(t *testing.T) {
	dir := writeConfig(t, `
deck:
  file: keys/deck.txt
  strict: false
  seed: 42
logging:
  level: debug
  include_caller: true
`)
	cfg, err := LoadConfig(dir)
	if err != nil {
		t.Fatalf("LoadConfig() unexpected error: %v", err)
	}
	if cfg.Deck.Strict {
		t.Errorf("expected deck.strict to be false")
	}
	if cfg.Deck.Seed != 42 {
		t.Errorf("deck.seed want = 42, got = %d", cfg.Deck.Seed)
	}
	if cfg.Logging.LogLevel != "debug" || !cfg.Logging.IncludeCaller {
		t.Errorf("unexpected logging config: %+v", cfg.Logging)
	}
	expected := filepath.Join(dir, "keys", "deck.txt")
	if cfg.DeckPath() != expected {
		t.Errorf("DeckPath() want = %s, got = %s", expected, cfg.DeckPath())
	}
}

func TestLoadConfig_EnvOverride(t *testing.T) {
	dir := writeConfig(t, "logging:\n  level: debug\n")
	t.Setenv("PONTIFEX_LOGGING_LEVEL", "warn")
	t.Setenv("PONTIFEX_DECK_FILE", "/etc/pontifex/deck.txt")

	cfg, err := LoadConfig(dir)
	if err != nil {
		t.Fatalf("LoadConfig() unexpected error: %v", err)
	}
	if cfg.Logging.LogLevel != "warn" {
		t.Errorf("logging.level want = warn, got = %s", cfg.Logging.LogLevel)
	}
	if cfg.DeckPath() != "/etc/pontifex/deck.txt" {
		t.Errorf("DeckPath() want = /etc/pontifex/deck.txt, got = %s", cfg.DeckPath())
	}
}

func TestLoadConfig_Malformed(t *testing.T) {
	dir := writeConfig(t, "deck: [unclosed\n")
	if _, err := LoadConfig(dir); err == nil {
		t.Errorf("expected LoadConfig() to fail on malformed yaml")
	}
}

func TestNewLogger(t *testing.T) {
	cfg := &Config{}
	cfg.Logging.LogLevel = "debug"
	cfg.Logging.LogFilePath = filepath.Join(t.TempDir(), "pontifex.log")

	logger, err := NewLogger(cfg)
	if err != nil {
		t.Fatalf("NewLogger() unexpected error: %v", err)
	}
	logger.Debugw("test entry", "key", 3)
	_ = logger.Sync()

	contents, err := os.ReadFile(cfg.Logging.LogFilePath)
	if err != nil {
		t.Fatalf("error reading log file: %v", err)
	}
	if len(contents) == 0 {
		t.Errorf("expected the debug entry to be written to the log file")
	}

	cfg.Logging.LogLevel = "chatty"
	if _, err := NewLogger(cfg); err == nil {
		t.Errorf("expected NewLogger() to reject an unknown level")
	}
}
