package main

import (
	"fmt"
	"os"

	"github.com/elC0mpa/aws-tagger/cmd/mcp/tools"
	"github.com/mark3labs/mcp-go/server"
	"github.com/rs/zerolog"
)

func main() {
	cfg, err := LoadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Config error: %v\n", err)
		os.Exit(1)
	}

	level, err := zerolog.ParseLevel(cfg.LogLevel)
	if err != nil {
		level = zerolog.InfoLevel
	}
	logger := zerolog.New(os.Stderr).Level(level).With().Timestamp().Logger()

	s := server.NewMCPServer(
		"aws-tagger-mcp",
		"1.0.0",
		server.WithToolCapabilities(true),
	)

	tools.RegisterAWSTools(s, cfg, logger)
	tools.RegisterKubeTools(s, cfg, logger)

	if err := server.ServeStdio(s); err != nil {
		fmt.Fprintf(os.Stderr, "Server error: %v\n", err)
		os.Exit(1)
	}
}
