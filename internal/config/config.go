// Package config provides configuration loading and validation for the
// zonejson daemon. Configuration is a JSON file; every field has a usable
// default so running without a file works out of the box.
package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strings"
)

// EnvConfigPath is consulted when no -config flag is given.
const EnvConfigPath = "ZONEJSOND_CONFIG"

// ResolveConfigPath returns the config path from the flag value, falling back
// to the ZONEJSOND_CONFIG environment variable. Empty means "defaults only".
func ResolveConfigPath(flagValue string) string {
	if flagValue != "" {
		return flagValue
	}
	return os.Getenv(EnvConfigPath)
}

// Load reads and validates the configuration at path. An empty path yields
// the defaults.
func Load(path string) (*Config, error) {
	cfg := Default()
	if path != "" {
		b, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
		if err := json.Unmarshal(b, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config: %w", err)
		}
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Server:   ServerConfig{Host: "127.0.0.1", Port: 8080},
		Database: DatabaseConfig{Path: "zonejson.db"},
		Logging:  LoggingConfig{Level: "INFO", Format: "text"},
	}
}

// Validate validates and normalizes the configuration.
func (cfg *Config) Validate() error {
	if cfg.Server.Host == "" {
		cfg.Server.Host = "127.0.0.1"
	}
	if cfg.Server.Port <= 0 || cfg.Server.Port > 65535 {
		return errors.New("server.port must be 1..65535")
	}

	if cfg.Database.Path == "" {
		cfg.Database.Path = "zonejson.db"
	}

	if cfg.Logging.Level == "" {
		cfg.Logging.Level = "INFO"
	}
	cfg.Logging.Level = strings.ToUpper(cfg.Logging.Level)
	cfg.Logging.Format = strings.ToLower(cfg.Logging.Format)
	switch cfg.Logging.Format {
	case "":
		cfg.Logging.Format = "text"
	case "text", "json":
	default:
		return fmt.Errorf("logging.format must be text or json, got %q", cfg.Logging.Format)
	}
	if cfg.Logging.ExtraFields == nil {
		cfg.Logging.ExtraFields = map[string]string{}
	}

	return nil
}
