// Package mcpsports wires the sports statistics MCP gateway: the provider
// client, the response cache, the geocoder, and the MCP tool server. It is
// the embeddable entry point; cmd/mcp-sports is a thin wrapper around it.
package mcpsports

import (
	"errors"
	"log/slog"
	"time"

	"github.com/reeeeemo/mcp-sports/internal/config"
	"github.com/reeeeemo/mcp-sports/internal/errortypes"
	"github.com/reeeeemo/mcp-sports/internal/provider"
	"github.com/reeeeemo/mcp-sports/internal/server"
	"github.com/reeeeemo/mcp-sports/internal/sports"
	"github.com/reeeeemo/mcp-sports/internal/statscache"
	"github.com/reeeeemo/mcp-sports/internal/telemetry"
)

// Config represents the configuration for the mcp-sports gateway.
type Config = config.Config

// Server represents the mcp-sports gateway.
type Server struct {
	config     *config.Config
	provider   *provider.Client
	geocoder   *provider.Geocoder
	cache      *statscache.Cache
	metrics    *telemetry.MetricsCollector
	toolServer server.SportsToolServer
	logger     *slog.Logger
}

// ServerOptions defines the options for creating a new Server.
type ServerOptions struct {
	Config     *Config      // Pre-filled config. If nil, ConfigPath is used.
	ConfigPath string       // Path to config file. Used if Config is nil. If both are empty, DefaultConfig() is used.
	APIKey     string       // Overrides the configured provider API key when set.
	Logger     *slog.Logger // External logger. If nil, slog.Default() is used.
}

// NewServer creates a new mcp-sports Server with the given options.
// If opts.Config is provided, it will be used directly. Otherwise, if
// opts.ConfigPath is provided, configuration will be loaded from that path.
// A provider API key is required, either in the config or via opts.APIKey.
func NewServer(opts ServerOptions) (*Server, error) {
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}

	var cfg *Config
	var err error

	if opts.Config != nil {
		cfg = opts.Config
		logger.Info("Using provided Config object for server initialization")
	} else if opts.ConfigPath != "" {
		logger.Info("Loading configuration for server initialization", "path", opts.ConfigPath)
		cfg, err = config.LoadConfigWithPath(opts.ConfigPath)
		if err != nil {
			logger.Error("Failed to load configuration from path", "path", opts.ConfigPath, "error", err)
			return nil, errortypes.ConfigError(err, "Failed to load configuration from path: "+opts.ConfigPath)
		}
	} else {
		logger.Warn("No Config object or ConfigPath provided, using default configuration for server initialization")
		cfg = DefaultConfig()
	}

	if opts.APIKey != "" {
		cfg.Provider.ApiKey = opts.APIKey
	}
	if cfg.Provider.ApiKey == "" {
		err := errortypes.ConfigError(errors.New("no provider API key configured"),
			"an API key is required; set it via --api-key, SPORTRADAR_API_KEY, or the config file")
		logger.Error("Missing provider API key", "error", err)
		return nil, err
	}

	client, geocoder, cache, metrics, err := CreateComponents(cfg, logger)
	if err != nil {
		logger.Error("Failed to create components during server initialization", "error", err)
		return nil, err
	}

	logger.Info("Initializing sports tool server component")
	mcpServer := server.NewSportsToolServer(client, geocoder, cache, metrics, cacheTTLs(cfg))
	err = mcpServer.Initialize()
	if err != nil {
		logger.Error("Failed to initialize MCP sports tool server component", "error", err)
		return nil, errortypes.ConfigError(err, "Failed to initialize MCP sports tool server component")
	}

	logger.Info("mcp-sports server successfully initialized")
	return &Server{
		config:     cfg,
		provider:   client,
		geocoder:   geocoder,
		cache:      cache,
		metrics:    metrics,
		toolServer: mcpServer,
		logger:     logger,
	}, nil
}

// DefaultConfig returns the default configuration for the mcp-sports gateway.
func DefaultConfig() *Config {
	return config.NewConfig()
}

// Start starts the mcp-sports gateway on the stdio transport.
func (s *Server) Start() error {
	s.logger.Info("Starting mcp-sports service")
	return s.toolServer.Start()
}

// Stop stops the mcp-sports gateway.
func (s *Server) Stop() error {
	s.logger.Info("Stopping mcp-sports service")
	err := s.toolServer.Stop()
	if err != nil {
		s.logger.Error("Error stopping tool server", "error", err)
		return err
	}

	dropped := s.cache.Clear()
	s.logger.Info("mcp-sports service stopped", "cache_entries_dropped", dropped)
	return nil
}

// Provider returns the provider client instance used by the server.
func (s *Server) Provider() *provider.Client {
	return s.provider
}

// Cache returns the response cache instance used by the server.
func (s *Server) Cache() *statscache.Cache {
	return s.cache
}

// Metrics returns the metrics collector used by the server.
func (s *Server) Metrics() *telemetry.MetricsCollector {
	return s.metrics
}

// CreateComponents creates and initializes the components of the mcp-sports
// gateway without creating a server instance. This is useful for callers
// that need direct access to the provider client or the cache.
func CreateComponents(cfg *Config, logger *slog.Logger) (*provider.Client, *provider.Geocoder, *statscache.Cache, *telemetry.MetricsCollector, error) {
	if logger == nil {
		logger = slog.Default()
	}

	metrics := telemetry.NewMetricsCollector()

	apiCfg := provider.DefaultConfig()
	normalized, err := provider.NormalizeConfig(apiCfg,
		cfg.Provider.Language, cfg.Provider.AccessLevel, cfg.Provider.Format)
	if err != nil {
		logger.Error("Invalid provider configuration", "error", err)
		return nil, nil, nil, nil, err
	}

	logger.Info("Initializing provider client",
		"language", normalized.Language,
		"access_level", normalized.AccessLevel,
		"format", normalized.Format)
	client := provider.NewClient(provider.ClientOptions{
		APIKey:            cfg.Provider.ApiKey,
		Config:            &normalized,
		Timeout:           time.Duration(cfg.Provider.TimeoutSeconds) * time.Second,
		RequestsPerMinute: cfg.Provider.RequestsPerMinute,
		Metrics:           metrics,
	})

	logger.Info("Initializing geocoder", "base_url", cfg.Geocoder.BaseURL)
	geocoder := provider.NewGeocoder(provider.GeocoderOptions{
		BaseURL:   cfg.Geocoder.BaseURL,
		UserAgent: cfg.Geocoder.UserAgent,
		Metrics:   metrics,
	})

	cache := statscache.New(metrics)

	logger.Info("Components successfully initialized via CreateComponents")
	return client, geocoder, cache, metrics, nil
}

// cacheTTLs builds the per-kind TTL override map from the configuration.
// Config keys are the endpoint kind names ("schedule", "gamestats", ...);
// kinds without an override fall back to the registry defaults.
func cacheTTLs(cfg *Config) map[sports.Kind]time.Duration {
	if cfg == nil || len(cfg.Cache.TTLSeconds) == 0 {
		return nil
	}
	kinds := []sports.Kind{
		sports.KindSchedule,
		sports.KindTransactions,
		sports.KindGameStats,
		sports.KindLeagueInfo,
		sports.KindTeamRoster,
		sports.KindTournamentList,
		sports.KindTournamentInfo,
		sports.KindPlayerStats,
	}
	ttls := make(map[sports.Kind]time.Duration, len(cfg.Cache.TTLSeconds))
	for _, kind := range kinds {
		if ttl := cfg.CacheTTL(string(kind), 0); ttl > 0 {
			ttls[kind] = ttl
		}
	}
	return ttls
}
