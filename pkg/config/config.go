package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Config holds all configuration options for the check-in scraper
type Config struct {
	// Foursquare API settings
	Foursquare FoursquareConfig `yaml:"foursquare" json:"foursquare"`

	// History download settings
	Fetch FetchConfig `yaml:"fetch" json:"fetch"`

	// Data directory and artifact names
	Storage StorageConfig `yaml:"storage" json:"storage"`

	// Logging configuration
	Logging LoggingConfig `yaml:"logging" json:"logging"`
}

// FoursquareConfig holds API credentials and endpoint settings
type FoursquareConfig struct {
	OAuthToken string `yaml:"oauth_token" json:"oauth_token"`
	UserID     string `yaml:"user_id" json:"user_id"`
	APIVersion string `yaml:"api_version" json:"api_version"`
	BaseURL    string `yaml:"base_url" json:"base_url"`
}

// FetchConfig holds pagination, rate limiting and retry configuration
type FetchConfig struct {
	PageSize       int           `yaml:"page_size" json:"page_size"`
	RequestDelay   time.Duration `yaml:"request_delay" json:"request_delay"`
	RequestTimeout time.Duration `yaml:"request_timeout" json:"request_timeout"`
	MaxRetries     int           `yaml:"max_retries" json:"max_retries"`
	RetryDelay     time.Duration `yaml:"retry_delay" json:"retry_delay"`
}

// StorageConfig holds artifact locations
type StorageConfig struct {
	DataDir        string `yaml:"data_dir" json:"data_dir"`
	CollectionFile string `yaml:"collection_file" json:"collection_file"`
	SummaryFile    string `yaml:"summary_file" json:"summary_file"`
	ExportFile     string `yaml:"export_file" json:"export_file"`
}

// LoggingConfig holds logging configuration
type LoggingConfig struct {
	Level string `yaml:"level" json:"level"`
	File  string `yaml:"file" json:"file"`
}

// DefaultConfig returns a Config instance with sensible defaults
func DefaultConfig() *Config {
	return &Config{
		Foursquare: FoursquareConfig{
			UserID:     "self",
			APIVersion: "20260220",
			BaseURL:    "https://api.foursquare.com/v2",
		},
		Fetch: FetchConfig{
			PageSize:       50,
			RequestDelay:   500 * time.Millisecond,
			RequestTimeout: 30 * time.Second,
			MaxRetries:     3,
			RetryDelay:     5 * time.Second,
		},
		Storage: StorageConfig{
			DataDir:        "data",
			CollectionFile: "all_checkins.json",
			SummaryFile:    "checkins_summary.json",
			ExportFile:     "checkins.csv",
		},
		Logging: LoggingConfig{
			Level: "info",
			File:  "",
		},
	}
}

// LoadFromEnv loads configuration from environment variables
func (c *Config) LoadFromEnv() error {
	if token := os.Getenv("SWARM_OAUTH_TOKEN"); token != "" {
		c.Foursquare.OAuthToken = token
	}
	// OAUTH_TOKEN is honored for compatibility with the original tooling's .env
	if token := os.Getenv("OAUTH_TOKEN"); token != "" && c.Foursquare.OAuthToken == "" {
		c.Foursquare.OAuthToken = token
	}
	if userID := os.Getenv("SWARM_USER_ID"); userID != "" {
		c.Foursquare.UserID = userID
	} else if userID := os.Getenv("USER_ID"); userID != "" {
		c.Foursquare.UserID = userID
	}
	if baseURL := os.Getenv("SWARM_API_BASE_URL"); baseURL != "" {
		c.Foursquare.BaseURL = baseURL
	}

	if delay := os.Getenv("SWARM_REQUEST_DELAY"); delay != "" {
		if d, err := time.ParseDuration(delay); err == nil && d >= 0 {
			c.Fetch.RequestDelay = d
		}
	}
	if pageSize := os.Getenv("SWARM_PAGE_SIZE"); pageSize != "" {
		var val int
		fmt.Sscanf(pageSize, "%d", &val)
		if val > 0 {
			c.Fetch.PageSize = val
		}
	}

	if dataDir := os.Getenv("SWARM_DATA_DIR"); dataDir != "" {
		c.Storage.DataDir = dataDir
	}

	if logLevel := os.Getenv("SWARM_LOG_LEVEL"); logLevel != "" {
		c.Logging.Level = logLevel
	}

	return nil
}

// LoadFromFile loads configuration from a YAML file
func (c *Config) LoadFromFile(path string) error {
	// If path is empty, try default locations
	if path == "" {
		path = c.findConfigFile()
		if path == "" {
			return nil // No config file found, not an error
		}
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read config file: %w", err)
	}

	if err := yaml.Unmarshal(data, c); err != nil {
		return fmt.Errorf("failed to parse config file: %w", err)
	}

	return nil
}

// findConfigFile searches for config file in standard locations
func (c *Config) findConfigFile() string {
	// Check in order of precedence
	locations := []string{
		".swarmscraper.yaml",
		".swarmscraper.yml",
		filepath.Join(os.Getenv("HOME"), ".config", "swarmscraper", "config.yaml"),
		filepath.Join(os.Getenv("HOME"), ".config", "swarmscraper", "config.yml"),
		filepath.Join(os.Getenv("HOME"), ".swarmscraper.yaml"),
	}

	for _, loc := range locations {
		if _, err := os.Stat(loc); err == nil {
			return loc
		}
	}

	return ""
}

// Validate checks if the configuration is valid. The OAuth token is not
// validated here: export and query commands work offline, so token presence
// is a precondition checked by the download path only.
func (c *Config) Validate() error {
	var errs []error

	if c.Foursquare.BaseURL == "" {
		errs = append(errs, errors.New("API base URL is required"))
	}
	if c.Foursquare.UserID == "" {
		errs = append(errs, errors.New("user ID is required (use \"self\" for the token's own identity)"))
	}

	if c.Fetch.PageSize <= 0 || c.Fetch.PageSize > 50 {
		errs = append(errs, errors.New("page size must be between 1 and 50"))
	}
	if c.Fetch.RequestDelay < 0 {
		errs = append(errs, errors.New("request delay cannot be negative"))
	}
	if c.Fetch.RequestTimeout <= 0 {
		errs = append(errs, errors.New("request timeout must be positive"))
	}
	if c.Fetch.MaxRetries < 0 {
		errs = append(errs, errors.New("max retries cannot be negative"))
	}

	if c.Storage.DataDir == "" {
		errs = append(errs, errors.New("data directory is required"))
	}
	if c.Storage.CollectionFile == "" {
		errs = append(errs, errors.New("collection file name is required"))
	}

	validLogLevels := map[string]bool{
		"debug": true, "info": true, "warn": true, "error": true,
	}
	if !validLogLevels[strings.ToLower(c.Logging.Level)] {
		errs = append(errs, errors.New("invalid log level"))
	}

	if len(errs) > 0 {
		return errors.Join(errs...)
	}

	return nil
}

// Save saves the configuration to a file
func (c *Config) Save(path string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	if err := os.WriteFile(path, data, 0600); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// MergeCommandLineFlags merges command line flags into the configuration
func (c *Config) MergeCommandLineFlags(flags map[string]interface{}) {
	if token, ok := flags["oauth-token"].(string); ok && token != "" {
		c.Foursquare.OAuthToken = token
	}
	if userID, ok := flags["user-id"].(string); ok && userID != "" {
		c.Foursquare.UserID = userID
	}
	if dataDir, ok := flags["data-dir"].(string); ok && dataDir != "" {
		c.Storage.DataDir = dataDir
	}
	if delay, ok := flags["request-delay"].(time.Duration); ok && delay >= 0 {
		c.Fetch.RequestDelay = delay
	}
	if maxRetries, ok := flags["max-retries"].(int); ok && maxRetries >= 0 {
		c.Fetch.MaxRetries = maxRetries
	}
	if logLevel, ok := flags["log-level"].(string); ok && logLevel != "" {
		c.Logging.Level = logLevel
	}
}

// Load loads configuration from all sources with proper precedence
// Precedence order: Command line flags > Environment variables > .env file > Config file > Defaults
func Load(configPath string, flags map[string]interface{}) (*Config, error) {
	// Try to load .env files (don't fail if they don't exist)
	_ = godotenv.Load(".env")
	_ = godotenv.Load(filepath.Join(os.Getenv("HOME"), ".swarmscraper.env"))

	// Start with defaults
	config := DefaultConfig()

	// Load from config file
	if err := config.LoadFromFile(configPath); err != nil {
		return nil, fmt.Errorf("failed to load config file: %w", err)
	}

	// Override with environment variables (includes values from .env)
	if err := config.LoadFromEnv(); err != nil {
		return nil, fmt.Errorf("failed to load environment variables: %w", err)
	}

	// Override with command line flags
	config.MergeCommandLineFlags(flags)

	// Validate final configuration
	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return config, nil
}
