// Package scenario drives RewardDistribution through a sequence of stake,
// transfer, claim and unstake calls made by several participant accounts,
// reporting mirror node balances between steps.
package scenario

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/chainsafe/reward-distribution-ops/internal/metrics"
	"github.com/chainsafe/reward-distribution-ops/pkg/app"
	"github.com/chainsafe/reward-distribution-ops/pkg/mirror"
	"github.com/chainsafe/reward-distribution-ops/pkg/staking"
)

// Step outcome statuses
const (
	StatusSuccess = "success"
	StatusFailed  = "failed"
)

// BalanceSource reports token balances scaled by token decimals.
type BalanceSource interface {
	TokenBalance(ctx context.Context, accountID, tokenID string) (decimal.Decimal, error)
}

// Token is a token reported in balance steps.
type Token struct {
	Symbol string
	ID     string
}

// Participant is an account taking part in the scenario. Staking calls are
// signed by the participant's own key.
type Participant struct {
	Name      string
	AccountID string
	Address   common.Address
	Staking   staking.Service
}

// Outcome is the result of one executed step.
type Outcome struct {
	Index  int
	Step   Step
	Status string
	Err    error
}

// Summary collects the outcome of every executed step.
type Summary struct {
	Plan      string
	Outcomes  []Outcome
	Succeeded int
	Failed    int
	Duration  time.Duration
}

func (s *Summary) record(o Outcome) {
	s.Outcomes = append(s.Outcomes, o)
	if o.Status == StatusSuccess {
		s.Succeeded++
	} else {
		s.Failed++
	}
}

// Runner executes a Plan step by step. A failed step is logged and recorded
// and the run continues; only context cancellation stops it early.
type Runner struct {
	plan         *Plan
	participants map[string]*Participant
	order        []string
	balances     BalanceSource
	tokens       []Token
	multiplier   decimal.Decimal
	logger       *zap.Logger

	summary *Summary
}

var _ app.Runner = (*Runner)(nil)

// NewRunner creates a Runner after validating plan against participants.
func NewRunner(plan *Plan, participants []*Participant, balances BalanceSource, tokens []Token, opts ...Option) (*Runner, error) {
	if plan == nil {
		return nil, fmt.Errorf("plan is required")
	}
	if balances == nil {
		return nil, fmt.Errorf("balance source is required")
	}

	byName := make(map[string]*Participant, len(participants))
	order := make([]string, 0, len(participants))
	for _, p := range participants {
		if p == nil || p.Staking == nil {
			return nil, fmt.Errorf("participant is missing its staking client")
		}
		if _, dup := byName[p.Name]; dup {
			return nil, fmt.Errorf("duplicate participant %q", p.Name)
		}
		byName[p.Name] = p
		order = append(order, p.Name)
	}
	if err := plan.Validate(order); err != nil {
		return nil, err
	}

	s := applyOptions(opts)
	return &Runner{
		plan:         plan,
		participants: byName,
		order:        order,
		balances:     balances,
		tokens:       tokens,
		multiplier:   decimal.NewFromInt(s.displayMultiplier),
		logger:       s.logger,
	}, nil
}

// Run executes the plan. It satisfies app.Runner; step failures are reported
// through Summary and do not make Run fail.
func (r *Runner) Run(ctx context.Context) error {
	summary, err := r.Execute(ctx)
	r.summary = summary
	if err != nil {
		return err
	}
	r.logger.Info("Scenario finished",
		zap.String("plan", summary.Plan),
		zap.Int("succeeded", summary.Succeeded),
		zap.Int("failed", summary.Failed),
		zap.Duration("duration", summary.Duration))
	return nil
}

// Summary returns the summary of the last Run.
func (r *Runner) Summary() *Summary {
	return r.summary
}

// Execute runs every step in order and returns the per-step outcomes.
func (r *Runner) Execute(ctx context.Context) (*Summary, error) {
	start := time.Now()
	summary := &Summary{Plan: r.plan.Name}

	for i, step := range r.plan.Steps {
		if err := ctx.Err(); err != nil {
			summary.Duration = time.Since(start)
			return summary, err
		}

		r.logger.Info(fmt.Sprintf(">>> Step %d: %s", i+1, step.describe()),
			zap.String("action", string(step.Action)))

		err := r.runStep(ctx, step)
		outcome := Outcome{Index: i + 1, Step: step, Status: StatusSuccess, Err: err}
		if err != nil {
			outcome.Status = StatusFailed
			r.logger.Error("Step failed",
				zap.Int("step", i+1),
				zap.String("action", string(step.Action)),
				zap.String("account", step.Account),
				zap.Error(err))
		}
		summary.record(outcome)
		metrics.ScenarioStepsTotal.WithLabelValues(string(step.Action), outcome.Status).Inc()

		if ctx.Err() != nil {
			summary.Duration = time.Since(start)
			return summary, ctx.Err()
		}
	}

	summary.Duration = time.Since(start)
	return summary, nil
}

func (s Step) describe() string {
	if s.Label != "" {
		return s.Label
	}
	parts := []string{string(s.Action)}
	if s.Account != "" {
		parts = append(parts, s.Account)
	}
	if s.Action.needsAmount() {
		parts = append(parts, fmt.Sprintf("%d", s.Amount))
	}
	if s.To != "" {
		parts = append(parts, "to "+s.To)
	}
	return strings.Join(parts, " ")
}

func (r *Runner) runStep(ctx context.Context, step Step) error {
	switch step.Action {
	case ActionBalances:
		return r.reportBalances(ctx, r.targets(step))
	case ActionPosition:
		return r.reportPositions(ctx, r.targets(step))
	case ActionStake:
		p := r.participants[step.Account]
		rcpt, err := p.Staking.StakeTokens(ctx, step.Amount)
		if err != nil {
			return err
		}
		r.logger.Info("Tokens staked", zap.String("account", p.Name), zap.String("status", rcpt.Status))
	case ActionUnstake:
		p := r.participants[step.Account]
		rcpt, err := p.Staking.UnstakeTokens(ctx, step.Amount)
		if err != nil {
			return err
		}
		r.logger.Info("Tokens unstaked", zap.String("account", p.Name), zap.String("status", rcpt.Status))
	case ActionTransferMPT:
		p, to := r.participants[step.Account], r.participants[step.To]
		rcpt, err := p.Staking.TransferMptTokens(ctx, step.Amount, to.Address)
		if err != nil {
			return err
		}
		r.logger.Info("MPT transferred",
			zap.String("from", p.Name),
			zap.String("to", to.Name),
			zap.String("status", rcpt.Status))
	case ActionClaim:
		p := r.participants[step.Account]
		rcpt, err := p.Staking.ClaimRewards(ctx)
		if err != nil {
			return err
		}
		r.logger.Info("Rewards claimed", zap.String("account", p.Name), zap.String("status", rcpt.Status))
	default:
		return fmt.Errorf("%w %q", ErrUnknownAction, step.Action)
	}
	return nil
}

func (r *Runner) targets(step Step) []*Participant {
	if step.Account != "" {
		return []*Participant{r.participants[step.Account]}
	}
	out := make([]*Participant, 0, len(r.order))
	for _, name := range r.order {
		out = append(out, r.participants[name])
	}
	return out
}

// reportBalances logs every token balance of the given participants. A balance
// the mirror node does not know is shown as n/a; other lookup failures are
// shown the same way and fail the step once all lookups ran.
func (r *Runner) reportBalances(ctx context.Context, ps []*Participant) error {
	var errs []error
	for _, p := range ps {
		for _, t := range r.tokens {
			bal, err := r.balances.TokenBalance(ctx, p.AccountID, t.ID)
			if err != nil {
				if ctx.Err() != nil {
					return ctx.Err()
				}
				if !errors.Is(err, mirror.ErrBalanceNotFound) {
					errs = append(errs, fmt.Errorf("%s %s balance: %w", p.Name, t.Symbol, err))
				}
				r.logger.Info("Balance",
					zap.String("account", p.Name),
					zap.String("token", t.Symbol),
					zap.String("balance", "n/a"))
				continue
			}
			r.logger.Info("Balance",
				zap.String("account", p.Name),
				zap.String("token", t.Symbol),
				zap.String("balance", bal.Mul(r.multiplier).String()))
		}
	}
	return errors.Join(errs...)
}

func (r *Runner) reportPositions(ctx context.Context, ps []*Participant) error {
	var errs []error
	for _, p := range ps {
		pos, err := p.Staking.Position(ctx, p.Address)
		if err != nil {
			if ctx.Err() != nil {
				return ctx.Err()
			}
			errs = append(errs, fmt.Errorf("%s position: %w", p.Name, err))
			continue
		}
		r.logger.Info("Stakes and rewards",
			zap.String("account", p.Name),
			zap.Uint64("stakes", pos.Stakes),
			zap.Uint64("rewards", pos.Rewards))
	}
	return errors.Join(errs...)
}
