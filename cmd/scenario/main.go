package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/chainsafe/reward-distribution-ops/internal/metrics"
	"github.com/chainsafe/reward-distribution-ops/pkg/app"
	"github.com/chainsafe/reward-distribution-ops/pkg/config"
	"github.com/chainsafe/reward-distribution-ops/pkg/mirror"
	"github.com/chainsafe/reward-distribution-ops/pkg/scenario"
)

var (
	configPath = flag.String("config", "", "Path to optional YAML configuration file")
	planPath   = flag.String("plan", "", "Path to a YAML scenario plan (default: built-in three-account plan)")
)

func main() {
	flag.Parse()
	os.Exit(run())
}

func run() int {
	// Load configuration
	cfg, err := config.LoadScenario(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		return 1
	}

	plan := scenario.DefaultPlan()
	if *planPath != "" {
		plan, err = scenario.LoadPlan(*planPath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Failed to load plan: %v\n", err)
			return 1
		}
	}

	// Initialize logger
	logger, err := config.NewLogger(cfg.Logging)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize logger: %v\n", err)
		return 1
	}
	defer logger.Sync() //nolint:errcheck

	runID := uuid.NewString()
	logger = logger.With(zap.String("run_id", runID))
	logger.Info("Starting RewardDistribution scenario",
		zap.String("network", cfg.Network.Name),
		zap.String("contract_id", cfg.Contract.ID),
		zap.String("plan", plan.Name),
		zap.Int("steps", len(plan.Steps)))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	mirrorClient, err := mirror.New(&mirror.Config{
		BaseURL:      cfg.Mirror.URL,
		Timeout:      cfg.Mirror.Timeout,
		MaxRetries:   cfg.Mirror.MaxRetries,
		RetryBackoff: cfg.Mirror.RetryBackoff,
	}, mirror.WithLogger(logger))
	if err != nil {
		logger.Error("Failed to initialize mirror client", zap.Error(err))
		return 1
	}

	participants, err := scenario.NewParticipants(cfg, logger)
	if err != nil {
		logger.Error("Failed to initialize participants", zap.Error(err))
		return 1
	}
	defer participants.Close()

	runner, err := scenario.NewRunner(plan, participants.List, mirrorClient, scenario.Tokens(cfg),
		scenario.WithLogger(logger),
		scenario.WithDisplayMultiplier(cfg.Mirror.DisplayMultiplier))
	if err != nil {
		logger.Error("Failed to initialize scenario", zap.Error(err))
		return 1
	}

	var r app.Runner = runner
	runErr := r.Run(ctx)
	if runErr != nil {
		logger.Error("Scenario aborted", zap.Error(runErr))
	} else if s := runner.Summary(); s.Failed == 0 {
		logger.Info("All transactions executed successfully")
	}

	pushMetrics(cfg.Monitoring, runID, logger)

	if runErr != nil {
		return 1
	}
	return 0
}

func pushMetrics(cfg config.MonitoringConfig, runID string, logger *zap.Logger) {
	if cfg.PushgatewayURL == "" {
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := metrics.Push(ctx, cfg.PushgatewayURL, cfg.Job, runID); err != nil {
		logger.Warn("Failed to push metrics", zap.Error(err))
	}
}
