package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

const sampleConfig = `
server:
  listenaddress: 127.0.0.1:9000
  cookies:
    authenticationkey: 00ff
cache:
  feedttl: 1m
moderation:
  tokens:
    - first
    - second
`

func TestParseConfigFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(sampleConfig), 0600); err != nil {
		t.Fatal(err)
	}

	config, err := ParseConfig(path)
	if err != nil {
		t.Fatal("Failed to parse config:", err)
	}

	if config.Server.ListenAddress != "127.0.0.1:9000" {
		t.Errorf("Unexpected listen address %q", config.Server.ListenAddress)
	}
	if config.Server.Cookies.AuthenticationKey != "00ff" {
		t.Errorf("Unexpected cookie key %q", config.Server.Cookies.AuthenticationKey)
	}
	if config.Cache.FeedTTL != time.Minute {
		t.Errorf("Unexpected feed ttl %v", config.Cache.FeedTTL)
	}
	if len(config.Moderation.Tokens) != 2 {
		t.Errorf("Unexpected tokens %v", config.Moderation.Tokens)
	}
	if config.Endpoints.Submit != "/submit" {
		t.Errorf("Defaults were not applied: %q", config.Endpoints.Submit)
	}
}

func TestParseConfigEnv(t *testing.T) {
	t.Setenv("RFG_DATABASE_HOST", "db.local")
	t.Setenv("RFG_TELEGRAM_CHATID", "-100123")

	config, err := ParseConfig("")
	if err != nil {
		t.Fatal("Failed to parse config:", err)
	}

	if !config.HasDataBase() || config.DataBase.Host != "db.local" {
		t.Errorf("Unexpected database host %q", config.DataBase.Host)
	}
	if config.Telegram.ChatID != -100123 {
		t.Errorf("Unexpected chat id %d", config.Telegram.ChatID)
	}
	if config.DataBase.Port != 5432 {
		t.Errorf("Unexpected default port %d", config.DataBase.Port)
	}
}

func TestParseConfigMissingFile(t *testing.T) {
	if _, err := ParseConfig(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Fatal("Expected error for missing config file")
	}
}
