package config

import "testing"

func validConfig() *Config {
	return &Config{
		Telegram: TelegramConfig{Token: "123:abc"},
		Leads:    LeadsConfig{Backend: "sheets"},
		Sheets:   SheetsConfig{SpreadsheetID: "sheet-id"},
	}
}

func TestNormalizeDefaults(t *testing.T) {
	cfg := validConfig()
	if err := Normalize(cfg); err != nil {
		t.Fatalf("Normalize: %v", err)
	}
	if cfg.Telegram.RunMode != RunModeLongpoll {
		t.Errorf("run mode default = %q", cfg.Telegram.RunMode)
	}
	if cfg.Sheets.CredentialsPath != "google_credentials.json" {
		t.Errorf("credentials default = %q", cfg.Sheets.CredentialsPath)
	}
	if cfg.Sheets.SheetName != "Leads" {
		t.Errorf("sheet name default = %q", cfg.Sheets.SheetName)
	}
}

func TestNormalizePollingAlias(t *testing.T) {
	cfg := validConfig()
	cfg.Telegram.RunMode = "Polling"
	if err := Normalize(cfg); err != nil {
		t.Fatalf("Normalize: %v", err)
	}
	if cfg.Telegram.RunMode != RunModeLongpoll {
		t.Errorf("alias not normalized: %q", cfg.Telegram.RunMode)
	}
}

func TestNormalizeRejects(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"missing token", func(c *Config) { c.Telegram.Token = "" }},
		{"bad run mode", func(c *Config) { c.Telegram.RunMode = "carrier_pigeon" }},
		{"webhook without url", func(c *Config) { c.Telegram.RunMode = "webhook" }},
		{"bad backend", func(c *Config) { c.Leads.Backend = "fax" }},
		{"sheets without spreadsheet", func(c *Config) { c.Sheets.SpreadsheetID = "" }},
		{"postgres without host", func(c *Config) { c.Leads.Backend = "postgres" }},
		{"bad exclude", func(c *Config) { c.RateLimit.ExcludeUpdates = []string{"inline_query"} }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validConfig()
			tt.mutate(cfg)
			if err := Normalize(cfg); err == nil {
				t.Fatal("expected error, got nil")
			}
		})
	}
}

func TestNormalizePostgresDefaults(t *testing.T) {
	cfg := validConfig()
	cfg.Leads.Backend = "postgres"
	cfg.Database = DatabaseConfig{Host: "localhost", Name: "leadbot"}
	if err := Normalize(cfg); err != nil {
		t.Fatalf("Normalize: %v", err)
	}
	if cfg.Database.MaxConnections != 4 {
		t.Errorf("pool default = %d", cfg.Database.MaxConnections)
	}
}

func TestIsAdmin(t *testing.T) {
	tg := TelegramConfig{AdminIDs: []int64{10, 20}}
	if !tg.IsAdmin(10) || !tg.IsAdmin(20) {
		t.Error("configured admin rejected")
	}
	if tg.IsAdmin(30) {
		t.Error("unknown user accepted as admin")
	}
	if (TelegramConfig{}).IsAdmin(10) {
		t.Error("empty admin list accepted a user")
	}
}
