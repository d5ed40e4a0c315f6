package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/diogo/auctiondapp/internal/agent"
)

var testCanisterID = agent.CanisterID{0, 0, 0, 0, 0, 0, 0, 1, 1, 1}.String()

func isolate(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Setenv(EnvConfigDir, dir)
	t.Setenv(EnvHost, "")
	t.Setenv(EnvCanisterID, "")
	return dir
}

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.Host != agent.DefaultHost {
		t.Errorf("Expected default host %s, got %s", agent.DefaultHost, cfg.Host)
	}
	if cfg.Timeout() != agent.DefaultTimeout {
		t.Errorf("Expected default timeout %v, got %v", agent.DefaultTimeout, cfg.Timeout())
	}
	if cfg.CanisterID != "" {
		t.Errorf("Expected no default canister id, got %s", cfg.CanisterID)
	}
}

func TestGetConfigDir(t *testing.T) {
	t.Run("override", func(t *testing.T) {
		dir := isolate(t)
		got, err := GetConfigDir()
		if err != nil || got != dir {
			t.Errorf("GetConfigDir() = %s, %v; want %s", got, err, dir)
		}
	})

	t.Run("home", func(t *testing.T) {
		t.Setenv(EnvConfigDir, "")
		dir, err := GetConfigDir()
		if err != nil {
			t.Fatalf("GetConfigDir() returned error: %v", err)
		}
		if !filepath.IsAbs(dir) || filepath.Base(dir) != ".auctiondapp" {
			t.Errorf("GetConfigDir() = %s", dir)
		}
	})
}

func TestLoadConfig_FileNotExists(t *testing.T) {
	isolate(t)

	cfg, err := LoadConfig()
	if err != nil {
		t.Fatalf("LoadConfig() returned error: %v", err)
	}
	if cfg != DefaultConfig() {
		t.Errorf("LoadConfig() = %+v, want defaults", cfg)
	}
}

func TestSaveAndLoadConfig(t *testing.T) {
	dir := isolate(t)

	cfg := DefaultConfig()
	cfg.CanisterID = testCanisterID
	cfg.Verbose = true
	cfg.TimeoutSeconds = 5

	if err := SaveConfig(cfg); err != nil {
		t.Fatalf("SaveConfig() returned error: %v", err)
	}

	info, err := os.Stat(filepath.Join(dir, "config.json"))
	if err != nil {
		t.Fatalf("config file not written: %v", err)
	}
	if info.Mode().Perm() != 0o600 {
		t.Errorf("config file mode = %v, want 0600", info.Mode().Perm())
	}

	loaded, err := LoadConfig()
	if err != nil {
		t.Fatalf("LoadConfig() returned error: %v", err)
	}
	if loaded != cfg {
		t.Errorf("LoadConfig() = %+v, want %+v", loaded, cfg)
	}
	if loaded.Timeout() != 5*time.Second {
		t.Errorf("Timeout() = %v, want 5s", loaded.Timeout())
	}
}

func TestLoadConfig_InvalidJSON(t *testing.T) {
	dir := isolate(t)
	if err := os.WriteFile(filepath.Join(dir, "config.json"), []byte("{not json"), 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadConfig()
	if err == nil {
		t.Error("LoadConfig() expected parse error")
	}
	if cfg != DefaultConfig() {
		t.Errorf("LoadConfig() should fall back to defaults, got %+v", cfg)
	}
}

func TestLoadConfig_EnvOverrides(t *testing.T) {
	isolate(t)
	cfg := DefaultConfig()
	cfg.Host = "http://from-file:8000"
	if err := SaveConfig(cfg); err != nil {
		t.Fatal(err)
	}

	t.Setenv(EnvHost, "https://icp-api.io")
	t.Setenv(EnvCanisterID, testCanisterID)

	loaded, err := LoadConfig()
	if err != nil {
		t.Fatalf("LoadConfig() returned error: %v", err)
	}
	if loaded.Host != "https://icp-api.io" {
		t.Errorf("Host = %s, want env override", loaded.Host)
	}
	if loaded.CanisterID != testCanisterID {
		t.Errorf("CanisterID = %s, want env override", loaded.CanisterID)
	}
}

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		cfg     Config
		wantErr bool
	}{
		{"valid", Config{Host: "http://localhost:4943", CanisterID: testCanisterID}, false},
		{"no host", Config{Host: " ", CanisterID: testCanisterID}, true},
		{"no canister", Config{Host: "http://localhost:4943"}, true},
		{"bad canister", Config{Host: "http://localhost:4943", CanisterID: "nope"}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestConfig_Set(t *testing.T) {
	tests := []struct {
		key     string
		value   string
		wantErr bool
		check   func(Config) bool
	}{
		{"host", "https://ic0.app/", false, func(c Config) bool { return c.Host == "https://ic0.app" }},
		{"canister_id", testCanisterID, false, func(c Config) bool { return c.CanisterID == testCanisterID }},
		{"canister_id", "bad", true, nil},
		{"timeout_seconds", "12", false, func(c Config) bool { return c.TimeoutSeconds == 12 }},
		{"timeout_seconds", "0", true, nil},
		{"timeout_seconds", "abc", true, nil},
		{"verbose", "true", false, func(c Config) bool { return c.Verbose }},
		{"verbose", "maybe", true, nil},
		{"copy_to_clipboard", "1", false, func(c Config) bool { return c.CopyToClipboard }},
		{"copy_to_clipboard", "x", true, nil},
		{"unknown", "x", true, nil},
	}

	for _, tt := range tests {
		t.Run(tt.key+"="+tt.value, func(t *testing.T) {
			cfg := DefaultConfig()
			err := cfg.Set(tt.key, tt.value)
			if tt.wantErr {
				if err == nil {
					t.Error("Set() expected error")
				}
				return
			}
			if err != nil {
				t.Fatalf("Set() unexpected error: %v", err)
			}
			if !tt.check(cfg) {
				t.Errorf("Set(%s, %s) produced %+v", tt.key, tt.value, cfg)
			}
		})
	}
}

func TestLoadConfigFile_IgnoresEnv(t *testing.T) {
	isolate(t)
	t.Setenv(EnvHost, "https://icp-api.io")

	cfg, err := LoadConfigFile()
	if err != nil {
		t.Fatalf("LoadConfigFile() returned error: %v", err)
	}
	if cfg.Host != agent.DefaultHost {
		t.Errorf("Host = %s, want file value %s", cfg.Host, agent.DefaultHost)
	}
}
