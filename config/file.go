package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// fileConfig mirrors the YAML config file layout. Pointer fields distinguish
// "not set" from zero values so the file only overrides what it names.
type fileConfig struct {
	LogLevel    *string `yaml:"log_level"`
	LogFile     *string `yaml:"log_file"`
	Port        *int    `yaml:"port"`
	Database    *string `yaml:"database"`
	SiteRoot    *string `yaml:"site_root"`

	SQLite struct {
		PragmasEnabled     *bool   `yaml:"pragmas_enabled"`
		BusyTimeoutMS      *int    `yaml:"busy_timeout_ms"`
		JournalMode        *string `yaml:"journal_mode"`
		Synchronous        *string `yaml:"synchronous"`
		ForeignKeys        *bool   `yaml:"foreign_keys"`
		MaxOpenConns       *int    `yaml:"max_open_conns"`
		MaxIdleConns       *int    `yaml:"max_idle_conns"`
		ConnMaxIdleSeconds *int    `yaml:"conn_max_idle_seconds"`
		ConnMaxLifeSeconds *int    `yaml:"conn_max_lifetime_seconds"`
	} `yaml:"sqlite"`

	Analytics struct {
		MaxEvents *int `yaml:"max_events"`
	} `yaml:"analytics"`

	Email struct {
		ResendAPIKey *string `yaml:"resend_api_key"`
		From         *string `yaml:"from"`
		To           *string `yaml:"to"`
	} `yaml:"email"`
}

// applyFile overlays settings from a YAML file onto the receiver.
func (c *Config) applyFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read config file: %w", err)
	}

	var fc fileConfig
	if err := yaml.Unmarshal(data, &fc); err != nil {
		return fmt.Errorf("failed to parse config file %s: %w", path, err)
	}

	setString(&c.LogLevel, fc.LogLevel)
	setString(&c.LogFilePath, fc.LogFile)
	setInt(&c.Port, fc.Port)
	setString(&c.DatabasePath, fc.Database)
	setString(&c.SiteRoot, fc.SiteRoot)

	setBool(&c.SQLitePragmasEnabled, fc.SQLite.PragmasEnabled)
	setInt(&c.SQLiteBusyTimeoutMS, fc.SQLite.BusyTimeoutMS)
	setString(&c.SQLiteJournalMode, fc.SQLite.JournalMode)
	setString(&c.SQLiteSynchronous, fc.SQLite.Synchronous)
	setBool(&c.SQLiteForeignKeys, fc.SQLite.ForeignKeys)
	setInt(&c.SQLiteMaxOpenConns, fc.SQLite.MaxOpenConns)
	setInt(&c.SQLiteMaxIdleConns, fc.SQLite.MaxIdleConns)
	setInt(&c.SQLiteConnMaxIdleSec, fc.SQLite.ConnMaxIdleSeconds)
	setInt(&c.SQLiteConnMaxLifeSec, fc.SQLite.ConnMaxLifeSeconds)

	setInt(&c.AnalyticsMaxEvents, fc.Analytics.MaxEvents)

	setString(&c.ResendAPIKey, fc.Email.ResendAPIKey)
	setString(&c.EmailFrom, fc.Email.From)
	setString(&c.EmailTo, fc.Email.To)

	return nil
}

func setString(dst *string, src *string) {
	if src != nil {
		*dst = *src
	}
}

func setInt(dst *int, src *int) {
	if src != nil {
		*dst = *src
	}
}

func setBool(dst *bool, src *bool) {
	if src != nil {
		*dst = *src
	}
}
