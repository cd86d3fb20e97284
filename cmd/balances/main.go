package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/chainsafe/reward-distribution-ops/pkg/config"
	"github.com/chainsafe/reward-distribution-ops/pkg/mirror"
	"github.com/chainsafe/reward-distribution-ops/pkg/scenario"
)

var (
	configPath = flag.String("config", "", "Path to optional YAML configuration file")
	positions  = flag.Bool("positions", true, "Also read stakes and rewards (paid contract calls)")
)

func main() {
	flag.Parse()
	os.Exit(run())
}

func run() int {
	cfg, err := config.LoadScenario(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		return 1
	}

	logger, err := config.NewLogger(cfg.Logging)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize logger: %v\n", err)
		return 1
	}
	defer logger.Sync() //nolint:errcheck
	logger = logger.With(zap.String("run_id", uuid.NewString()))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := report(ctx, cfg, logger); err != nil {
		logger.Error("Balance report failed", zap.Error(err))
		return 1
	}
	return 0
}

func report(ctx context.Context, cfg *config.Config, logger *zap.Logger) error {
	mirrorClient, err := mirror.New(&mirror.Config{
		BaseURL:      cfg.Mirror.URL,
		Timeout:      cfg.Mirror.Timeout,
		MaxRetries:   cfg.Mirror.MaxRetries,
		RetryBackoff: cfg.Mirror.RetryBackoff,
	}, mirror.WithLogger(logger))
	if err != nil {
		return err
	}

	participants, err := scenario.NewParticipants(cfg, logger)
	if err != nil {
		return err
	}
	defer participants.Close()

	runner, err := scenario.NewRunner(scenario.ReportPlan(*positions), participants.List, mirrorClient,
		scenario.Tokens(cfg),
		scenario.WithLogger(logger),
		scenario.WithDisplayMultiplier(cfg.Mirror.DisplayMultiplier))
	if err != nil {
		return err
	}

	summary, err := runner.Execute(ctx)
	if err != nil {
		return err
	}
	if summary.Failed > 0 {
		return fmt.Errorf("%d of %d lookups failed", summary.Failed, len(summary.Outcomes))
	}
	return nil
}
