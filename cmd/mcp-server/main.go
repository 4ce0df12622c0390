// Package main is the entry point for the Longbridge MCP server.
package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/mark3labs/mcp-go/server"
	"github.com/rs/zerolog/log"

	"github.com/baranwang/mcp-longbridge/pkg/logger"
	"github.com/baranwang/mcp-longbridge/pkg/service/session"
	"github.com/baranwang/mcp-longbridge/pkg/service/tools"
)

// Build-time variables set via ldflags
var (
	// Version is the semantic version of the application
	Version = "dev"
	// GitCommit is the git commit SHA at build time
	GitCommit = "unknown"
	// BuildTime is the time of the build
	BuildTime = "unknown"
)

const serviceName = "mcp-longbridge"

func main() {
	var (
		envFile     = flag.String("env-file", "", "Path to an env file with Longbridge credentials")
		logLevel    = flag.String("log-level", "", "Log level (debug, info, warn, error)")
		showVersion = flag.Bool("version", false, "Show version information")
	)
	flag.Parse()

	if *showVersion {
		fmt.Printf("%s %s (commit: %s, built: %s)\n", serviceName, Version, GitCommit, BuildTime)
		os.Exit(0)
	}

	level := *logLevel
	if level == "" {
		level = os.Getenv("LONGBRIDGE_LOG_LEVEL")
	}
	if level == "" {
		level = "info"
	}
	logger.SetLevel(level)

	if err := runServer(*envFile, level); err != nil {
		log.Error().Err(err).Msg("Server failed")
		os.Exit(1)
	}
}

func runServer(envFile, logLevel string) error {
	log.Info().
		Str("version", Version).
		Str("service", serviceName).
		Msg("Starting Longbridge MCP server")

	slogLogger := createSlogLogger(logLevel)

	// Credentials are not checked here. The session manager loads and
	// validates the configuration on the first tool call that needs a
	// backend session, so the server starts and advertises its catalog
	// even when the environment is incomplete.
	sessions := session.NewManager(envFile)

	deps := tools.ToolDependencies{
		Sessions: sessions,
		Logger:   slogLogger,
	}

	mcpServer := server.NewMCPServer(serviceName, Version,
		server.WithToolCapabilities(false))

	if err := tools.RegisterTools(mcpServer, deps); err != nil {
		return err
	}
	log.Info().Int("tools", len(tools.GetToolConfigs())).Msg("Registered tool catalog")

	return runServerWithShutdown(mcpServer)
}

// createSlogLogger creates the structured logger handed to tool handlers.
// It writes to stderr because stdout carries the MCP transport.
func createSlogLogger(logLevel string) *slog.Logger {
	level := parseSlogLevel(logLevel)
	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})
	return slog.New(handler)
}

func parseSlogLevel(level string) slog.Level {
	switch level {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// runServerWithShutdown serves stdio until the transport closes or a
// termination signal arrives.
func runServerWithShutdown(mcpServer *server.MCPServer) error {
	serverErr := make(chan error, 1)
	go func() {
		serverErr <- server.ServeStdio(mcpServer)
	}()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGINT, syscall.SIGTERM)

	select {
	case sig := <-sigChan:
		log.Info().Str("signal", sig.String()).Msg("Received signal, shutting down")
		return nil
	case err := <-serverErr:
		if err != nil {
			log.Error().Err(err).Msg("Server error")
			return err
		}
		log.Info().Msg("Server stopped")
		return nil
	}
}
