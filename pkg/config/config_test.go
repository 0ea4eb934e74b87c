package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.Foursquare.UserID != "self" {
		t.Errorf("Expected default user 'self', got %q", cfg.Foursquare.UserID)
	}
	if cfg.Fetch.PageSize != 50 {
		t.Errorf("Expected page size 50, got %d", cfg.Fetch.PageSize)
	}
	if cfg.Fetch.RequestDelay != 500*time.Millisecond {
		t.Errorf("Expected 500ms request delay, got %v", cfg.Fetch.RequestDelay)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("Expected defaults to validate: %v", err)
	}
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("SWARM_OAUTH_TOKEN", "envtoken")
	t.Setenv("SWARM_USER_ID", "42")
	t.Setenv("SWARM_REQUEST_DELAY", "2s")
	t.Setenv("SWARM_DATA_DIR", "/tmp/swarmdata")

	cfg := DefaultConfig()
	if err := cfg.LoadFromEnv(); err != nil {
		t.Fatalf("LoadFromEnv failed: %v", err)
	}

	if cfg.Foursquare.OAuthToken != "envtoken" {
		t.Errorf("Expected token from environment, got %q", cfg.Foursquare.OAuthToken)
	}
	if cfg.Foursquare.UserID != "42" {
		t.Errorf("Expected user from environment, got %q", cfg.Foursquare.UserID)
	}
	if cfg.Fetch.RequestDelay != 2*time.Second {
		t.Errorf("Expected 2s delay, got %v", cfg.Fetch.RequestDelay)
	}
	if cfg.Storage.DataDir != "/tmp/swarmdata" {
		t.Errorf("Expected data dir from environment, got %q", cfg.Storage.DataDir)
	}
}

func TestLegacyTokenVariable(t *testing.T) {
	t.Setenv("SWARM_OAUTH_TOKEN", "")
	t.Setenv("OAUTH_TOKEN", "legacytoken")

	cfg := DefaultConfig()
	if err := cfg.LoadFromEnv(); err != nil {
		t.Fatal(err)
	}
	if cfg.Foursquare.OAuthToken != "legacytoken" {
		t.Errorf("Expected the legacy variable to be honored, got %q", cfg.Foursquare.OAuthToken)
	}
}

func TestLoadFromFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	content := `
foursquare:
  user_id: "99"
fetch:
  page_size: 25
storage:
  data_dir: /var/lib/swarm
`
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	cfg := DefaultConfig()
	if err := cfg.LoadFromFile(path); err != nil {
		t.Fatalf("LoadFromFile failed: %v", err)
	}

	if cfg.Foursquare.UserID != "99" || cfg.Fetch.PageSize != 25 || cfg.Storage.DataDir != "/var/lib/swarm" {
		t.Errorf("Config file values not applied: %+v", cfg)
	}
	// Untouched values keep their defaults
	if cfg.Foursquare.BaseURL == "" {
		t.Error("Expected the default base URL to survive a partial file")
	}
}

func TestMergeCommandLineFlags(t *testing.T) {
	cfg := DefaultConfig()
	cfg.MergeCommandLineFlags(map[string]interface{}{
		"oauth-token": "flagtoken",
		"data-dir":    "./elsewhere",
		"log-level":   "debug",
	})

	if cfg.Foursquare.OAuthToken != "flagtoken" {
		t.Errorf("Expected token from flags, got %q", cfg.Foursquare.OAuthToken)
	}
	if cfg.Storage.DataDir != "./elsewhere" {
		t.Errorf("Expected data dir from flags, got %q", cfg.Storage.DataDir)
	}
	if cfg.Logging.Level != "debug" {
		t.Errorf("Expected log level from flags, got %q", cfg.Logging.Level)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{"valid defaults", func(c *Config) {}, false},
		{"missing token is fine offline", func(c *Config) { c.Foursquare.OAuthToken = "" }, false},
		{"missing base URL", func(c *Config) { c.Foursquare.BaseURL = "" }, true},
		{"missing user", func(c *Config) { c.Foursquare.UserID = "" }, true},
		{"page size zero", func(c *Config) { c.Fetch.PageSize = 0 }, true},
		{"page size over cap", func(c *Config) { c.Fetch.PageSize = 100 }, true},
		{"negative delay", func(c *Config) { c.Fetch.RequestDelay = -time.Second }, true},
		{"missing data dir", func(c *Config) { c.Storage.DataDir = "" }, true},
		{"bad log level", func(c *Config) { c.Logging.Level = "loud" }, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(cfg)
			err := cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}
