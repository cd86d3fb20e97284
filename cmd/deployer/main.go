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
	"github.com/chainsafe/reward-distribution-ops/pkg/deploy"
	"github.com/chainsafe/reward-distribution-ops/pkg/ledger"
)

var (
	configPath   = flag.String("config", "", "Path to optional YAML configuration file")
	bytecodePath = flag.String("bytecode", "", "Path to the compiled RewardDistribution bytecode (overrides contract.bytecode_path)")
)

func main() {
	flag.Parse()
	os.Exit(run())
}

func run() int {
	// Load configuration
	cfg, err := config.LoadDeploy(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		return 1
	}
	if *bytecodePath != "" {
		cfg.Contract.BytecodePath = *bytecodePath
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
	logger.Info("Starting RewardDistribution deployment",
		zap.String("network", cfg.Network.Name),
		zap.String("operator", cfg.Operator.AccountID),
		zap.String("bytecode", cfg.Contract.BytecodePath))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	nodes := make([]ledger.Node, 0, len(cfg.Network.Nodes))
	for _, n := range cfg.Network.Nodes {
		nodes = append(nodes, ledger.Node{Address: n.Address, AccountID: n.AccountID})
	}
	client, err := ledger.New(&ledger.Config{
		Network:     cfg.Network.Name,
		Nodes:       nodes,
		OperatorID:  cfg.Operator.AccountID,
		OperatorKey: cfg.Operator.PrivateKey,
	}, ledger.WithLogger(logger))
	if err != nil {
		logger.Error("Failed to initialize ledger client", zap.Error(err))
		return 1
	}
	defer client.Close()

	deployer, err := deploy.New(&deploy.Config{
		BytecodePath:    cfg.Contract.BytecodePath,
		MSTTokenID:      cfg.Tokens.MST,
		MPTTokenID:      cfg.Tokens.MPT,
		TreasuryID:      cfg.Tokens.Treasury,
		Gas:             cfg.Contract.Gas,
		MaxChunks:       cfg.Contract.MaxChunks,
		AllowanceAmount: cfg.Contract.AllowanceAmount,
	}, client, deploy.WithLogger(logger))
	if err != nil {
		logger.Error("Failed to initialize deployer", zap.Error(err))
		return 1
	}

	var runner app.Runner = deployer
	runErr := runner.Run(ctx)
	if runErr != nil {
		logger.Error("Deployment failed", zap.Error(runErr))
	} else {
		fmt.Printf("REWARD_DISTRIBUTION_CONTRACT_ID=%s\n", deployer.Result().ContractID)
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
