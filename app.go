package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/elC0mpa/aws-tagger/model"
	"github.com/elC0mpa/aws-tagger/service/flag"
	"github.com/elC0mpa/aws-tagger/service/orchestrator"
	"github.com/elC0mpa/aws-tagger/service/settings"
	"github.com/elC0mpa/aws-tagger/utils"
	"github.com/rs/zerolog"
)

func main() {
	if err := run(); err != nil {
		utils.StopSpinner()
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run() error {
	flagService := flag.NewService()
	flags, err := flagService.GetParsedFlags(os.Args[1:])
	if err != nil {
		return err
	}
	if flags.Command == "" {
		return nil
	}

	cfg, err := settings.NewService().Load(flags.ConfigPath, flags.ConfigExplicit, flagService.FlagSet())
	if err != nil {
		return err
	}

	logger, err := newLogger(cfg)
	if err != nil {
		return err
	}
	ctx := logger.WithContext(context.Background())

	runCtx := model.RunContext{
		Started:    time.Now(),
		ReportsDir: cfg.ReportsDir,
	}

	if cfg.Spinner {
		utils.DrawBanner()
		utils.StartSpinner(fmt.Sprintf("Running %s", flags.Command))
	}

	deps, err := orchestrator.BuildDependencies(ctx, flags, cfg, runCtx)
	if err != nil {
		return err
	}

	orchestratorService := orchestrator.NewService(deps, cfg, runCtx)
	return orchestratorService.Orchestrate(ctx, flags)
}

func newLogger(cfg model.Settings) (zerolog.Logger, error) {
	level, err := zerolog.ParseLevel(cfg.LogLevel)
	if err != nil {
		return zerolog.Logger{}, fmt.Errorf("%w: invalid log level %q", model.ErrConfiguration, cfg.LogLevel)
	}

	if cfg.LogFormat == "json" {
		return zerolog.New(os.Stderr).Level(level).With().Timestamp().Logger(), nil
	}
	return zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.DateTime}).
		Level(level).With().Timestamp().Logger(), nil
}
