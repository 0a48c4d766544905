// Package config loads the mcp-sports gateway configuration from defaults,
// an optional config file, and MCPSPORTS_-prefixed environment variables.
package config

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/localrivet/configurator"
)

// Global configuration instance
var (
	// Global is the global configuration instance
	Global *Config
	// initOnce ensures initialization happens only once
	initOnce sync.Once
)

// InitGlobal initializes the global configuration
func InitGlobal(configPath string) (*Config, error) {
	var err error
	initOnce.Do(func() {
		Global, err = LoadConfigWithPath(configPath)
	})
	return Global, err
}

// Config represents the mcp-sports gateway configuration
type Config struct {
	// Provider contains statistics-provider configuration.
	Provider struct {
		// ApiKey is the key sent on every provider request.
		ApiKey string `json:"api_key" env:"SPORTRADAR_API_KEY"`

		// Language is the ISO language code requested from the provider.
		Language string `json:"language" env:"PROVIDER_LANGUAGE"`

		// AccessLevel is the provider access tier ("trial", "production").
		AccessLevel string `json:"access_level" env:"PROVIDER_ACCESS_LEVEL"`

		// Format is the wire format to request ("json", "xml").
		Format string `json:"format" env:"PROVIDER_FORMAT"`

		// TimeoutSeconds bounds each provider request.
		TimeoutSeconds int `json:"timeout_seconds" env:"PROVIDER_TIMEOUT_SECONDS" validate:"min:1"`

		// RequestsPerMinute caps outgoing provider traffic.
		RequestsPerMinute int `json:"requests_per_minute" env:"PROVIDER_REQUESTS_PER_MINUTE" validate:"min:1"`
	} `json:"provider"`

	// Geocoder contains reverse-geocoding configuration.
	Geocoder struct {
		// BaseURL is the Nominatim endpoint to use.
		BaseURL string `json:"base_url" env:"GEOCODER_BASE_URL"`

		// UserAgent identifies this gateway to the geocoding service.
		UserAgent string `json:"user_agent" env:"GEOCODER_USER_AGENT"`
	} `json:"geocoder"`

	// Cache contains response-cache configuration.
	Cache struct {
		// TTLSeconds overrides the per-endpoint cache lifetimes, keyed by
		// endpoint kind ("schedule", "transactions", "gamestats",
		// "leagueinfo", "teamroster", "tournamentlist", "tournamentinfo",
		// "playerstats").
		TTLSeconds map[string]int `json:"ttl_seconds"`
	} `json:"cache"`

	// Logging contains logging-related configuration.
	Logging struct {
		// Level is the minimum log level to display ("debug", "info", "warn", "error").
		Level string `json:"level" env:"LOG_LEVEL" validate:"required"`

		// Format is the log format to use ("text", "json").
		Format string `json:"format" env:"LOG_FORMAT"`
	} `json:"logging"`

	// Internal state (not saved to config file)
	configPath     string       `json:"-"`
	mutex          sync.RWMutex `json:"-"`
	lastModifiedAt time.Time    `json:"-"`
}

// Default configuration values
const (
	DefaultConfigFilename    = ".mcpsportsconfig"
	DefaultLanguage          = "en"
	DefaultAccessLevel       = "trial"
	DefaultFormat            = "json"
	DefaultTimeoutSeconds    = 30
	DefaultRequestsPerMinute = 60
	DefaultLogLevel          = "info"
	DefaultLogFormat         = "text"
)

// NewConfig creates a new Config instance with default values
func NewConfig() *Config {
	config := &Config{}
	config.Provider.Language = DefaultLanguage
	config.Provider.AccessLevel = DefaultAccessLevel
	config.Provider.Format = DefaultFormat
	config.Provider.TimeoutSeconds = DefaultTimeoutSeconds
	config.Provider.RequestsPerMinute = DefaultRequestsPerMinute
	config.Logging.Level = DefaultLogLevel
	config.Logging.Format = DefaultLogFormat
	return config
}

// LoadConfig loads the configuration from the default path
func LoadConfig() (*Config, error) {
	return LoadConfigWithPath(DefaultConfigFilename)
}

// LoadConfigWithPath loads the configuration from a specific path
func LoadConfigWithPath(configPath string) (*Config, error) {
	// Configuration loading logs to stderr so the stdio transport on
	// stdout stays clean.
	stdLogger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))

	cfg := NewConfig()

	// Try to find config file if path is default
	if configPath == DefaultConfigFilename {
		foundPath, err := configurator.FindConfigFile(configPath)
		if err == nil {
			configPath = foundPath
			stdLogger.Debug("Found config file at " + foundPath)
		}
	}

	// Check if the file exists
	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		// File doesn't exist, return default config
		stdLogger.Info("Config file not found, using default configuration", "path", configPath)
		cfg.configPath = configPath
		cfg.lastModifiedAt = time.Now()
		return cfg, nil
	}

	stdLogger.Info("Loading configuration", "path", configPath)

	// Create configurator instance
	config := configurator.New(stdLogger).
		WithProvider(configurator.NewDefaultProvider()).
		WithProvider(configurator.NewFileProvider(configPath)).
		WithProvider(configurator.NewEnvProvider("MCPSPORTS")).
		WithValidator(configurator.NewDefaultValidator())

	// Load configuration
	ctx := context.Background()
	if err := config.Load(ctx, cfg); err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}

	// Store the config path for future operations
	cfg.configPath = configPath
	cfg.lastModifiedAt = time.Now()

	return cfg, nil
}

// SaveToFile saves the configuration to the specified file
func (c *Config) SaveToFile(path string) error {
	c.mutex.Lock()
	defer c.mutex.Unlock()

	// Create directory if needed
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create directory: %w", err)
	}

	// Save using configurator's SaveToFile function
	if err := configurator.SaveToFile(c, path, configurator.FormatJSON); err != nil {
		return fmt.Errorf("failed to save configuration: %w", err)
	}

	// Update internal state
	c.configPath = path
	c.lastModifiedAt = time.Now()

	return nil
}

// Save saves the configuration to the last used file path
func (c *Config) Save() error {
	if c.configPath == "" {
		c.configPath = DefaultConfigFilename
	}
	return c.SaveToFile(c.configPath)
}

// GetConfigPath returns the path of the currently loaded configuration file
func (c *Config) GetConfigPath() string {
	return c.configPath
}

// CacheTTL returns the configured TTL override for an endpoint kind, or
// fallback when none is set.
func (c *Config) CacheTTL(kind string, fallback time.Duration) time.Duration {
	if c == nil || c.Cache.TTLSeconds == nil {
		return fallback
	}
	if secs, ok := c.Cache.TTLSeconds[kind]; ok && secs > 0 {
		return time.Duration(secs) * time.Second
	}
	return fallback
}
