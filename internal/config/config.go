// Package config handles configuration for auctiondapp.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/diogo/auctiondapp/internal/agent"
)

// Environment overrides. CANISTER_ID_AUCTION_DAPP follows the dfx naming
// for generated canister ids.
const (
	EnvHost       = "AUCTIONDAPP_HOST"
	EnvCanisterID = "CANISTER_ID_AUCTION_DAPP"
	EnvConfigDir  = "AUCTIONDAPP_CONFIG_DIR"
)

// Config represents the user configuration
type Config struct {
	// Host is the replica endpoint the agent talks to.
	Host string `json:"host"`
	// CanisterID is the textual principal of the auction_dapp canister.
	CanisterID     string `json:"canister_id"`
	TimeoutSeconds int    `json:"timeout_seconds"`
	// Verbose enables debug logging of calls.
	Verbose         bool `json:"verbose"`
	CopyToClipboard bool `json:"copy_to_clipboard"`
}

// DefaultConfig returns the default configuration
func DefaultConfig() Config {
	return Config{
		Host:           agent.DefaultHost,
		TimeoutSeconds: int(agent.DefaultTimeout / time.Second),
	}
}

// Timeout returns the call timeout as a duration
func (c Config) Timeout() time.Duration {
	if c.TimeoutSeconds <= 0 {
		return agent.DefaultTimeout
	}
	return time.Duration(c.TimeoutSeconds) * time.Second
}

// Validate checks that the config can build an actor
func (c Config) Validate() error {
	if strings.TrimSpace(c.Host) == "" {
		return fmt.Errorf("host is not set")
	}
	if c.CanisterID == "" {
		return fmt.Errorf("canister id is not set (use --canister-id, %s or 'config set canister_id')", EnvCanisterID)
	}
	if _, err := agent.ParseCanisterID(c.CanisterID); err != nil {
		return err
	}
	return nil
}

// GetConfigDir returns the configuration directory path
func GetConfigDir() (string, error) {
	if dir := os.Getenv(EnvConfigDir); dir != "" {
		return dir, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory: %w", err)
	}
	return filepath.Join(home, ".auctiondapp"), nil
}

// EnsureConfigDir creates the configuration directory if it doesn't exist
func EnsureConfigDir() (string, error) {
	configDir, err := GetConfigDir()
	if err != nil {
		return "", err
	}
	if err := os.MkdirAll(configDir, 0o700); err != nil {
		return "", fmt.Errorf("failed to create config directory: %w", err)
	}
	return configDir, nil
}

// GetConfigPath returns the path to the config file
func GetConfigPath() (string, error) {
	configDir, err := GetConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(configDir, "config.json"), nil
}

// LoadConfig loads the configuration from disk and applies environment
// overrides. A missing file yields the defaults.
func LoadConfig() (Config, error) {
	cfg, err := LoadConfigFile()
	if err != nil {
		return cfg, err
	}
	applyEnv(&cfg)
	return cfg, nil
}

// LoadConfigFile loads the configuration from disk only.
func LoadConfigFile() (Config, error) {
	cfg := DefaultConfig()

	configPath, err := GetConfigPath()
	if err != nil {
		return cfg, err
	}

	data, err := os.ReadFile(configPath)
	switch {
	case os.IsNotExist(err):
	case err != nil:
		return cfg, fmt.Errorf("failed to read config file: %w", err)
	default:
		if err := json.Unmarshal(data, &cfg); err != nil {
			return DefaultConfig(), fmt.Errorf("failed to parse config file: %w", err)
		}
	}
	return cfg, nil
}

func applyEnv(cfg *Config) {
	if v := os.Getenv(EnvHost); v != "" {
		cfg.Host = v
	}
	if v := os.Getenv(EnvCanisterID); v != "" {
		cfg.CanisterID = v
	}
}

// SaveConfig saves the configuration to disk
func SaveConfig(cfg Config) error {
	configDir, err := EnsureConfigDir()
	if err != nil {
		return err
	}

	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	configPath := filepath.Join(configDir, "config.json")
	if err := os.WriteFile(configPath, data, 0o600); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}
	return nil
}

// Keys returns the names accepted by Set
func Keys() []string {
	return []string{"host", "canister_id", "timeout_seconds", "verbose", "copy_to_clipboard"}
}

// Set updates one field by its JSON name
func (c *Config) Set(key, value string) error {
	switch key {
	case "host":
		c.Host = strings.TrimRight(value, "/")
	case "canister_id":
		if _, err := agent.ParseCanisterID(value); err != nil {
			return err
		}
		c.CanisterID = value
	case "timeout_seconds":
		n, err := strconv.Atoi(value)
		if err != nil || n <= 0 {
			return fmt.Errorf("timeout_seconds must be a positive integer, got %q", value)
		}
		c.TimeoutSeconds = n
	case "verbose":
		b, err := strconv.ParseBool(value)
		if err != nil {
			return fmt.Errorf("verbose must be true or false, got %q", value)
		}
		c.Verbose = b
	case "copy_to_clipboard":
		b, err := strconv.ParseBool(value)
		if err != nil {
			return fmt.Errorf("copy_to_clipboard must be true or false, got %q", value)
		}
		c.CopyToClipboard = b
	default:
		return fmt.Errorf("unknown config key %q (valid: %s)", key, strings.Join(Keys(), ", "))
	}
	return nil
}
