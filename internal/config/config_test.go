package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(body), 0644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

func clearEnv(t *testing.T) {
	t.Helper()
	for _, k := range []string{
		"SIGNALBOARD_PROVIDER", "SIGNALBOARD_SYMBOL", "ALPHA_VANTAGE_API_KEY",
		"APCA_API_KEY_ID", "APCA_API_SECRET_KEY", "TELEGRAM_BOT_TOKEN",
		"TELEGRAM_CHAT_ID", "REDIS_ADDR", "SQLITE_PATH", "HTTPS_PROXY",
	} {
		t.Setenv(k, "")
	}
}

func TestLoad_Defaults(t *testing.T) {
	clearEnv(t)
	cfg, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.DataSource.Provider != ProviderAlphaVantage {
		t.Errorf("expected default provider alphavantage, got %q", cfg.DataSource.Provider)
	}
	if cfg.DataSource.Symbol != "TSLA" {
		t.Errorf("expected default symbol TSLA, got %q", cfg.DataSource.Symbol)
	}
	if cfg.Dashboard.Period != "1Y" || cfg.Dashboard.Horizon != 1 {
		t.Errorf("unexpected dashboard defaults: %+v", cfg.Dashboard)
	}
	if cfg.Cache.TTL != time.Hour {
		t.Errorf("expected 1h cache ttl, got %v", cfg.Cache.TTL)
	}
}

func TestLoad_YAMLAndEnvOverride(t *testing.T) {
	path := writeConfig(t, `
data_source:
  provider: Yahoo
  symbol: aapl
dashboard:
  period: 2y
  horizon: 5
cache:
  ttl: 30m
`)
	clearEnv(t)
	t.Setenv("SIGNALBOARD_SYMBOL", "msft")
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.DataSource.Provider != ProviderYahoo {
		t.Errorf("expected yahoo, got %q", cfg.DataSource.Provider)
	}
	if cfg.DataSource.Symbol != "MSFT" {
		t.Errorf("expected env override MSFT, got %q", cfg.DataSource.Symbol)
	}
	if cfg.Dashboard.Period != "2Y" || cfg.Dashboard.Horizon != 5 {
		t.Errorf("unexpected dashboard: %+v", cfg.Dashboard)
	}
	if cfg.Cache.TTL != 30*time.Minute {
		t.Errorf("expected 30m ttl, got %v", cfg.Cache.TTL)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("unexpected validation error: %v", err)
	}
}

func TestLoad_BadYAML(t *testing.T) {
	if _, err := Load(writeConfig(t, "data_source: [")); err == nil {
		t.Error("expected parse error")
	}
}

func TestValidate(t *testing.T) {
	clearEnv(t)
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{"alphavantage without key", func(c *Config) {}, true},
		{"alphavantage with key", func(c *Config) { c.DataSource.AlphaVantage.APIKey = "k" }, false},
		{"alpaca missing secret", func(c *Config) {
			c.DataSource.Provider = ProviderAlpaca
			c.DataSource.Alpaca.APIKey = "k"
		}, true},
		{"unknown provider", func(c *Config) { c.DataSource.Provider = "bloomberg" }, true},
		{"bad period", func(c *Config) {
			c.DataSource.Provider = ProviderMock
			c.Dashboard.Period = "3W"
		}, true},
		{"bad horizon", func(c *Config) {
			c.DataSource.Provider = ProviderMock
			c.Dashboard.Horizon = 3
		}, true},
	}
	for _, tt := range tests {
		cfg, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
		if err != nil {
			t.Fatalf("%s: load: %v", tt.name, err)
		}
		tt.mutate(cfg)
		if err := cfg.Validate(); (err != nil) != tt.wantErr {
			t.Errorf("%s: wantErr=%v, got %v", tt.name, tt.wantErr, err)
		}
	}
}

func TestLoadDotEnv_Missing(t *testing.T) {
	if err := LoadDotEnv(filepath.Join(t.TempDir(), ".env")); err != nil {
		t.Errorf("missing .env should be ignored, got %v", err)
	}
}
