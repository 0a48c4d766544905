package main

import (
	"flag"
	"os"
	"os/signal"
	"syscall"

	"github.com/reeeeemo/mcp-sports"
	"github.com/reeeeemo/mcp-sports/internal/config"
	"github.com/reeeeemo/mcp-sports/internal/errortypes"
	"github.com/reeeeemo/mcp-sports/internal/logger"
)

func main() {
	apiKey := flag.String("api-key", "", "provider API key (falls back to SPORTRADAR_API_KEY)")
	configPath := flag.String("config", config.DefaultConfigFilename, "path to the configuration file")
	flag.Parse()

	// Initialize logging first thing
	appLogger := setupLogging()

	appLogger.Info("mcp-sports MCP Server - Starting...")

	key := *apiKey
	if key == "" {
		key = os.Getenv("SPORTRADAR_API_KEY")
	}
	if key == "" {
		appLogger.Fatal("No API key provided. Use --api-key or set SPORTRADAR_API_KEY")
	}

	srv, err := mcpsports.NewServer(mcpsports.ServerOptions{
		ConfigPath: *configPath,
		APIKey:     key,
	})
	if err != nil {
		errortypes.LogError(nil, err)
		appLogger.Fatal("Failed to initialize mcp-sports server")
	}

	// Handle graceful shutdown
	setupSignalHandler(srv, appLogger)

	// Start the MCP server (this will block until server is terminated)
	appLogger.Info("Starting MCP server...")
	if err := srv.Start(); err != nil {
		err = errortypes.InternalError(err, "MCP server failed")
		errortypes.LogError(nil, err)
		appLogger.Fatal("Failed to start MCP server")
	}
}

// setupLogging configures and returns the application logger
func setupLogging() *logger.Logger {
	// Create default configuration
	cfg := logger.DefaultConfig()

	// Try to get log level from environment variable
	if levelStr := os.Getenv("LOG_LEVEL"); levelStr != "" {
		cfg.Level = logger.ParseLevel(levelStr)
	}
	if os.Getenv("LOG_FORMAT") == "json" {
		cfg.Format = logger.JSON
	}

	// Create and return logger
	appLogger := logger.New(cfg)
	logger.SetDefaultLogger(appLogger)

	return appLogger
}

// setupSignalHandler sets up a signal handler for graceful shutdown.
func setupSignalHandler(srv *mcpsports.Server, log *logger.Logger) {
	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)

	go func() {
		<-c
		log.Info("Received shutdown signal, terminating gracefully...")

		if err := srv.Stop(); err != nil {
			errortypes.LogError(nil, err)
		}

		log.Info("Shutdown complete")
		os.Exit(0)
	}()
}
