package main

import (
	"flag"
	"fmt"
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/thc1006/stats-workflow/internal/config"
	"github.com/thc1006/stats-workflow/internal/workflow"
)

// Version information - set at build time.
var (
	Version   = "dev"
	GitCommit = "unknown"
)

func main() {
	var (
		configPath    string
		sampleSize    int
		seed          uint64
		alpha         float64
		equalVariance bool
		logLevel      string
	)

	flag.StringVar(&configPath, "config", "", "Path to a YAML config file (optional)")
	flag.IntVar(&sampleSize, "samples", 0, "Draws per sample (overrides config)")
	flag.Uint64Var(&seed, "seed", 0, "Random seed; 0 seeds from the wall clock (overrides config)")
	flag.Float64Var(&alpha, "alpha", 0, "Two-sided significance level (overrides config)")
	flag.BoolVar(&equalVariance, "equal-variance", false, "Use Student's pooled test instead of Welch's (overrides config)")
	flag.StringVar(&logLevel, "log-level", "", "Log level: debug, info, warn, error (overrides config)")
	flag.Parse()

	cfg, err := config.Load(configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: load configuration: %v\n", err)
		os.Exit(1)
	}

	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "samples":
			cfg.SampleSize = sampleSize
		case "seed":
			cfg.Seed = seed
		case "alpha":
			cfg.SignificanceLevel = alpha
		case "equal-variance":
			cfg.EqualVariance = equalVariance
		case "log-level":
			cfg.LogLevel = logLevel
		}
	})
	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: invalid configuration: %v\n", err)
		os.Exit(1)
	}

	logger, err := buildLogger(cfg.LogLevel)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync() //nolint:errcheck

	logger.Info("starting t-test demo",
		zap.String("version", Version),
		zap.String("git_commit", GitCommit),
		zap.Int("sample_size", cfg.SampleSize),
		zap.Bool("equal_variance", cfg.EqualVariance),
		zap.Float64("significance_level", cfg.SignificanceLevel))

	if _, err := workflow.Run(cfg, logger); err != nil {
		logger.Error("demo run failed", zap.Error(err))
		os.Exit(1)
	}
}

func buildLogger(level string) (*zap.Logger, error) {
	lvl, err := zapcore.ParseLevel(level)
	if err != nil {
		return nil, err
	}

	zcfg := zap.NewProductionConfig()
	zcfg.Level = zap.NewAtomicLevelAt(lvl)
	return zcfg.Build()
}
