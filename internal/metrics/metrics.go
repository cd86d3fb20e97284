package metrics

import (
	"context"
	"fmt"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/push"
)

// Registry holds the tool metrics. It is separate from the default registry so
// a push only carries what a single run produced.
var Registry = prometheus.NewRegistry()

var factory = promauto.With(Registry)

var (
	// TransactionsTotal counts ledger transactions by operation and status
	TransactionsTotal = factory.NewCounterVec(
		prometheus.CounterOpts{
			Name: "reward_ops_transactions_total",
			Help: "Total number of ledger transactions submitted",
		},
		[]string{"op", "status"},
	)

	// TransactionDuration tracks submit-to-receipt latency
	TransactionDuration = factory.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "reward_ops_transaction_duration_seconds",
			Help:    "Ledger transaction duration from submission to receipt in seconds",
			Buckets: []float64{0.5, 1, 2, 3, 5, 8, 13, 21},
		},
		[]string{"op"},
	)

	// GasUsed tracks gas used by contract calls
	GasUsed = factory.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "reward_ops_gas_used",
			Help:    "Gas used by RewardDistribution contract calls",
			Buckets: []float64{25000, 50000, 100000, 200000, 500000, 1000000, 3000000},
		},
		[]string{"function"},
	)

	// MirrorRequestsTotal counts mirror node requests by endpoint and status
	MirrorRequestsTotal = factory.NewCounterVec(
		prometheus.CounterOpts{
			Name: "reward_ops_mirror_requests_total",
			Help: "Total number of mirror node REST requests",
		},
		[]string{"endpoint", "status"},
	)

	// ScenarioStepsTotal counts scenario steps by action and outcome
	ScenarioStepsTotal = factory.NewCounterVec(
		prometheus.CounterOpts{
			Name: "reward_ops_scenario_steps_total",
			Help: "Total number of scenario steps executed",
		},
		[]string{"action", "status"},
	)
)

// Push sends the registry to a Prometheus Pushgateway, grouped by run id.
func Push(ctx context.Context, url, job, runID string) error {
	err := push.New(url, job).
		Gatherer(Registry).
		Grouping("run_id", runID).
		PushContext(ctx)
	if err != nil {
		return fmt.Errorf("failed to push metrics: %w", err)
	}
	return nil
}
