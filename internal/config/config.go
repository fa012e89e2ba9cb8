// Package config is the composition root's configuration: environment
// variables first, with an optional YAML file overlay for local
// development. Defaults for the tracked spreadsheet live here, not in the
// ingestion core.
package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"gopkg.in/yaml.v3"
)

// Defaults for the net worth tracking spreadsheet.
const (
	DefaultSpreadsheetID = "1lay4YEVMV6JDlP5rzdS8iegAFxpyoZakb502o7ZtqpA"
	DefaultSheetName     = "(NEW) Net Worth Tracking"
	DefaultHost          = "0.0.0.0"
	DefaultPort          = 8080
	DefaultFetchTimeout  = 30 * time.Second
)

// Config is the full server configuration.
type Config struct {
	Host   string       `yaml:"host"`
	Port   int          `yaml:"port"`
	Sheets SheetsConfig `yaml:"sheets"`
	Auth   AuthConfig   `yaml:"auth"`
}

// SheetsConfig configures the Google Sheets transport.
type SheetsConfig struct {
	SpreadsheetID   string        `yaml:"spreadsheet_id"`
	SheetName       string        `yaml:"sheet_name"`
	CredentialsJSON string        `yaml:"credentials_json"`
	CredentialsFile string        `yaml:"credentials_file"`
	FetchTimeout    time.Duration `yaml:"fetch_timeout"`
}

// AuthConfig configures HTTP basic auth for the API endpoints. With no
// username set, auth is disabled. PasswordHash (bcrypt, see cmd/hashpw)
// takes precedence over the plain Password.
type AuthConfig struct {
	Username     string `yaml:"username"`
	Password     string `yaml:"password"`
	PasswordHash string `yaml:"password_hash"`
}

// Enabled reports whether basic auth is configured.
func (a AuthConfig) Enabled() bool {
	return a.Username != "" && (a.Password != "" || a.PasswordHash != "")
}

// Load builds the configuration from environment variables, falling back
// to defaults.
func Load() *Config {
	cfg := &Config{
		Host: envOr("HOST", DefaultHost),
		Port: DefaultPort,
		Sheets: SheetsConfig{
			SpreadsheetID:   envOr("GOOGLE_SHEETS_SPREADSHEET_ID", DefaultSpreadsheetID),
			SheetName:       envOr("GOOGLE_SHEETS_SHEET_NAME", DefaultSheetName),
			CredentialsJSON: os.Getenv("GOOGLE_SERVICE_ACCOUNT_JSON"),
			CredentialsFile: os.Getenv("GOOGLE_SERVICE_ACCOUNT_FILE"),
			FetchTimeout:    DefaultFetchTimeout,
		},
		Auth: AuthConfig{
			Username:     os.Getenv("API_USERNAME"),
			Password:     os.Getenv("API_PASSWORD"),
			PasswordHash: os.Getenv("API_PASSWORD_HASH"),
		},
	}

	if port := os.Getenv("PORT"); port != "" {
		if p, err := strconv.Atoi(port); err == nil {
			cfg.Port = p
		}
	}
	if timeout := os.Getenv("GOOGLE_SHEETS_TIMEOUT"); timeout != "" {
		if d, err := time.ParseDuration(timeout); err == nil {
			cfg.Sheets.FetchTimeout = d
		}
	}

	return cfg
}

// LoadFile loads environment configuration, then overlays any values set
// in the YAML file at path. File values win over environment values.
func LoadFile(path string) (*Config, error) {
	cfg := Load()

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("config: reading %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("config: parsing %s: %w", path, err)
	}

	return cfg, nil
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
