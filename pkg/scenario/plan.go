package scenario

import (
	"errors"
	"fmt"
	"os"

	"github.com/creasty/defaults"
	"gopkg.in/yaml.v3"

	apperrors "github.com/chainsafe/reward-distribution-ops/pkg/app/errors"
)

// Action is the kind of a scenario step.
type Action string

// Supported actions
const (
	ActionBalances    Action = "balances"
	ActionPosition    Action = "position"
	ActionStake       Action = "stake"
	ActionUnstake     Action = "unstake"
	ActionTransferMPT Action = "transfer_mpt"
	ActionClaim       Action = "claim"
)

// ErrUnknownAction is returned for a step whose action is not supported.
var ErrUnknownAction = errors.New("unknown action")

// Step is one scenario instruction.
type Step struct {
	Action Action `yaml:"action"`
	// Account is the acting participant. For balances and position an empty
	// Account means every participant.
	Account string `yaml:"account"`
	Amount  uint64 `yaml:"amount" default:"4000"`
	// To is the receiving participant of a transfer_mpt.
	To    string `yaml:"to"`
	Label string `yaml:"label"`
}

// Plan is an ordered list of steps.
type Plan struct {
	Name  string `yaml:"name" default:"custom"`
	Steps []Step `yaml:"steps"`
}

func (a Action) needsAccount() bool {
	switch a {
	case ActionStake, ActionUnstake, ActionTransferMPT, ActionClaim:
		return true
	}
	return false
}

func (a Action) needsAmount() bool {
	switch a {
	case ActionStake, ActionUnstake, ActionTransferMPT:
		return true
	}
	return false
}

func (a Action) valid() bool {
	switch a {
	case ActionBalances, ActionPosition, ActionStake, ActionUnstake, ActionTransferMPT, ActionClaim:
		return true
	}
	return false
}

// Validate checks every step against the known participants.
func (p *Plan) Validate(participants []string) error {
	if len(p.Steps) == 0 {
		return apperrors.DataError(nil, "plan has no steps")
	}
	known := make(map[string]bool, len(participants))
	for _, name := range participants {
		known[name] = true
	}

	var errs []error
	for i, s := range p.Steps {
		n := i + 1
		if !s.Action.valid() {
			errs = append(errs, fmt.Errorf("step %d: %w %q", n, ErrUnknownAction, s.Action))
			continue
		}
		if s.Action.needsAccount() && s.Account == "" {
			errs = append(errs, fmt.Errorf("step %d: %s requires an account", n, s.Action))
		}
		if s.Account != "" && !known[s.Account] {
			errs = append(errs, fmt.Errorf("step %d: unknown account %q", n, s.Account))
		}
		if s.Action.needsAmount() && s.Amount == 0 {
			errs = append(errs, fmt.Errorf("step %d: %s requires a positive amount", n, s.Action))
		}
		if s.Action == ActionTransferMPT {
			if s.To == "" {
				errs = append(errs, fmt.Errorf("step %d: transfer_mpt requires a recipient", n))
			} else if !known[s.To] {
				errs = append(errs, fmt.Errorf("step %d: unknown recipient %q", n, s.To))
			}
		}
	}
	if len(errs) > 0 {
		return apperrors.DataError(errors.Join(errs...), "invalid plan")
	}
	return nil
}

// LoadPlan reads a YAML plan. Step amounts default to 4000.
func LoadPlan(path string) (*Plan, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, apperrors.DataError(err, "read plan file")
	}

	var p Plan
	if err := yaml.Unmarshal(data, &p); err != nil {
		return nil, apperrors.DataError(err, "parse plan file")
	}
	if err := defaults.Set(&p); err != nil {
		return nil, fmt.Errorf("apply plan defaults: %w", err)
	}
	for i := range p.Steps {
		if err := defaults.Set(&p.Steps[i]); err != nil {
			return nil, fmt.Errorf("apply step %d defaults: %w", i+1, err)
		}
	}
	return &p, nil
}

// DefaultPlan is the three-account integration run: each account stakes,
// MPT moves between accounts, every account claims rewards and finally
// unstakes.
func DefaultPlan() *Plan {
	const (
		a1 = "account1"
		a2 = "account2"
		a3 = "account3"
	)
	return &Plan{
		Name: "default",
		Steps: []Step{
			{Action: ActionBalances, Label: "Balances at the beginning"},
			{Action: ActionPosition, Label: "Initial stakes and rewards"},

			{Action: ActionStake, Account: a1, Amount: 4000, Label: "Account 1 staking 4000 MST"},
			{Action: ActionBalances, Account: a1, Label: "Balances after staking"},

			{Action: ActionStake, Account: a2, Amount: 4000, Label: "Account 2 staking 4000 MST"},
			{Action: ActionTransferMPT, Account: a2, Amount: 4000, To: a3, Label: "Account 2 transferring 4000 MPT to Account 3"},
			{Action: ActionBalances, Label: "Balances after staking and transfer"},

			{Action: ActionStake, Account: a3, Amount: 4000, Label: "Account 3 staking 4000 MST"},
			{Action: ActionTransferMPT, Account: a3, Amount: 2000, To: a1, Label: "Account 3 transferring 2000 MPT to Account 1"},
			{Action: ActionTransferMPT, Account: a3, Amount: 2000, To: a2, Label: "Account 3 transferring 2000 MPT to Account 2"},
			{Action: ActionBalances, Label: "Balances after staking and transfer"},

			{Action: ActionPosition, Account: a1, Label: "Stakes and rewards before claiming"},
			{Action: ActionClaim, Account: a1, Label: "Claiming rewards for Account 1"},
			{Action: ActionPosition, Account: a1, Label: "Stakes and rewards for Account 1"},
			{Action: ActionClaim, Account: a2, Label: "Claiming rewards for Account 2"},
			{Action: ActionPosition, Account: a2, Label: "Stakes and rewards for Account 2"},
			{Action: ActionClaim, Account: a2, Label: "Claiming rewards for Account 2"},
			{Action: ActionPosition, Account: a2, Label: "Stakes and rewards for Account 2"},
			{Action: ActionClaim, Account: a3, Label: "Claiming rewards for Account 3"},
			{Action: ActionPosition, Account: a3, Label: "Stakes and rewards for Account 3"},
			{Action: ActionClaim, Account: a3, Label: "Claiming rewards for Account 3"},
			{Action: ActionPosition, Account: a3, Label: "Stakes and rewards for Account 3"},

			{Action: ActionUnstake, Account: a1, Amount: 4000, Label: "Account 1 unstaking 4000 MST"},
			{Action: ActionBalances, Account: a1, Label: "Balances after unstaking"},
			{Action: ActionUnstake, Account: a2, Amount: 4000, Label: "Account 2 unstaking 4000 MST"},
			{Action: ActionBalances, Account: a2, Label: "Balances after unstaking"},
			{Action: ActionUnstake, Account: a3, Amount: 4000, Label: "Account 3 unstaking 4000 MST"},
			{Action: ActionBalances, Account: a3, Label: "Balances after unstaking"},
		},
	}
}

// ReportPlan prints balances for every participant and, when positions is
// set, their stakes and rewards.
func ReportPlan(positions bool) *Plan {
	p := &Plan{
		Name:  "report",
		Steps: []Step{{Action: ActionBalances, Label: "Token balances"}},
	}
	if positions {
		p.Steps = append(p.Steps, Step{Action: ActionPosition, Label: "Stakes and rewards"})
	}
	return p
}
