package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/aleister1102/secretgate/internal/config"
	"github.com/aleister1102/secretgate/internal/logger"
	"github.com/aleister1102/secretgate/internal/models"
	"github.com/aleister1102/secretgate/internal/orchestrator"
	"github.com/aleister1102/secretgate/internal/reporter"
	"github.com/aleister1102/secretgate/internal/secrets"
	"github.com/aleister1102/secretgate/internal/vcs"
	"github.com/rs/zerolog"
)

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	flags, err := ParseFlags(args)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return models.ExitSuccess
		}
		// A broken hook invocation must not block commits.
		fmt.Fprintf(os.Stderr, "secretgate: %v\n", err)
		return models.ExitSuccess
	}

	gCfg := loadConfig(flags)

	color := reporter.ColorEnabled(os.Stderr, &gCfg.ReporterConfig)
	zLogger, err := buildLogger(gCfg.LogConfig, flags.Verbose, color)
	if err != nil {
		fmt.Fprintf(os.Stderr, "secretgate: could not initialize logger, using defaults: %v\n", err)
		zLogger, _ = buildLogger(config.NewDefaultLogConfig(), flags.Verbose, color)
	}
	zLogger.Debug().Msg("Logger initialized")

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	vc := vcs.NewVersionControl(&gCfg.VCSConfig, zLogger)
	detector := secrets.NewTruffleHogAdapter(&gCfg.DetectorConfig, zLogger)
	guard := orchestrator.NewGuardOrchestrator(gCfg, vc, detector, os.Stderr, zLogger)

	_, code := guard.Run(ctx)
	return code
}

// loadConfig resolves, loads and validates the configuration. Any problem is
// reported and the built-in defaults are used instead.
func loadConfig(flags AppFlags) *config.GlobalConfig {
	bootReporter := config.NewDefaultReporterConfig()
	if flags.NoColor {
		bootReporter.Color = config.ColorModeNever
	}
	bootColor := reporter.ColorEnabled(os.Stderr, &bootReporter)
	bootLogger, err := buildLogger(config.NewDefaultLogConfig(), flags.Verbose, bootColor)
	if err != nil {
		bootLogger = zerolog.New(os.Stderr)
	}

	gCfg, err := config.LoadGlobalConfig(flags.GlobalConfigFile, bootLogger)
	if err != nil {
		bootLogger.Warn().Err(err).Str("path", flags.GlobalConfigFile).Msg("Could not load configuration, using defaults")
		gCfg = config.NewDefaultGlobalConfig()
	} else if err := config.ValidateConfig(gCfg); err != nil {
		bootLogger.Warn().Err(err).Msg("Configuration validation failed, using defaults")
		gCfg = config.NewDefaultGlobalConfig()
	}

	if flags.NoColor {
		gCfg.ReporterConfig.Color = config.ColorModeNever
	}
	return gCfg
}

// buildLogger colours console log lines under the same rule as the report.
func buildLogger(cfg config.LogConfig, verbose, color bool) (zerolog.Logger, error) {
	if verbose {
		return logger.NewVerbose(cfg, color)
	}
	return logger.New(cfg, color)
}
