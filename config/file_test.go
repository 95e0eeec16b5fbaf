package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestApplyFile_OverridesNamedFieldsOnly(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "portfolio.yml")

	raw := `
port: 8080
database: /data/site.db
sqlite:
  journal_mode: DELETE
  busy_timeout_ms: 250
analytics:
  max_events: 50
email:
  resend_api_key: re_test
  to: owner@example.com
`
	if err := os.WriteFile(path, []byte(raw), 0644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg := &Config{
		Port:                5000,
		DatabasePath:        "portfolio.db",
		SiteRoot:            "public",
		LogLevel:            "INFO",
		SQLiteJournalMode:   "WAL",
		SQLiteSynchronous:   "NORMAL",
		SQLiteBusyTimeoutMS: 5000,
		AnalyticsMaxEvents:  10000,
	}

	if err := cfg.applyFile(path); err != nil {
		t.Fatalf("applyFile: %v", err)
	}

	if cfg.Port != 8080 {
		t.Fatalf("port = %d, want 8080", cfg.Port)
	}
	if cfg.DatabasePath != "/data/site.db" {
		t.Fatalf("database = %q", cfg.DatabasePath)
	}
	if cfg.SQLiteJournalMode != "DELETE" || cfg.SQLiteBusyTimeoutMS != 250 {
		t.Fatalf("sqlite overrides not applied: %q %d", cfg.SQLiteJournalMode, cfg.SQLiteBusyTimeoutMS)
	}
	if cfg.AnalyticsMaxEvents != 50 {
		t.Fatalf("analytics max events = %d, want 50", cfg.AnalyticsMaxEvents)
	}
	if cfg.ResendAPIKey != "re_test" || cfg.EmailTo != "owner@example.com" {
		t.Fatalf("email overrides not applied: %q %q", cfg.ResendAPIKey, cfg.EmailTo)
	}

	// Fields the file does not name keep their values.
	if cfg.SiteRoot != "public" || cfg.LogLevel != "INFO" || cfg.SQLiteSynchronous != "NORMAL" {
		t.Fatalf("unexpected override of unset fields: %q %q %q", cfg.SiteRoot, cfg.LogLevel, cfg.SQLiteSynchronous)
	}
}

func TestApplyFile_MissingFile(t *testing.T) {
	cfg := &Config{}
	if err := cfg.applyFile(filepath.Join(t.TempDir(), "absent.yml")); err == nil {
		t.Fatalf("expected error for missing file")
	}
}

func TestApplyFile_InvalidYAML(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "bad.yml")
	if err := os.WriteFile(path, []byte("port: [not an int"), 0644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg := &Config{}
	if err := cfg.applyFile(path); err == nil {
		t.Fatalf("expected error for invalid yaml")
	}
}
