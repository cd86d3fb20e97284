package scenario

import (
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/chainsafe/reward-distribution-ops/pkg/config"
	"github.com/chainsafe/reward-distribution-ops/pkg/ledger"
	"github.com/chainsafe/reward-distribution-ops/pkg/staking"
)

// Participants holds the participants built from configuration together with
// their ledger clients.
type Participants struct {
	List    []*Participant
	clients []*ledger.Client
}

// Close closes every participant ledger client.
func (p *Participants) Close() error {
	var errs []error
	for _, c := range p.clients {
		if err := c.Close(); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

// NewParticipants opens one ledger client per configured participant and
// binds it to the RewardDistribution contract.
func NewParticipants(cfg *config.Config, logger *zap.Logger) (*Participants, error) {
	contractID, err := ledger.ParseContractID(cfg.Contract.ID)
	if err != nil {
		return nil, fmt.Errorf("contract: %w", err)
	}

	nodes := make([]ledger.Node, 0, len(cfg.Network.Nodes))
	for _, n := range cfg.Network.Nodes {
		nodes = append(nodes, ledger.Node{Address: n.Address, AccountID: n.AccountID})
	}

	out := &Participants{}
	for _, name := range cfg.ParticipantNames() {
		acct := cfg.Participants[name]
		addr, err := staking.ParseAddress(acct.EVMAddress)
		if err != nil {
			_ = out.Close()
			return nil, fmt.Errorf("%s: %w", name, err)
		}

		plog := logger.With(zap.String("participant", name))
		client, err := ledger.New(&ledger.Config{
			Network:     cfg.Network.Name,
			Nodes:       nodes,
			OperatorID:  acct.AccountID,
			OperatorKey: acct.PrivateKey,
		}, ledger.WithLogger(plog))
		if err != nil {
			_ = out.Close()
			return nil, fmt.Errorf("%s ledger client: %w", name, err)
		}
		out.clients = append(out.clients, client)

		sc, err := staking.New(client, contractID,
			staking.WithGas(cfg.Contract.Gas),
			staking.WithMaxFee(cfg.Contract.MaxTransactionFeeHbar),
			staking.WithLogger(plog))
		if err != nil {
			_ = out.Close()
			return nil, fmt.Errorf("%s staking client: %w", name, err)
		}

		out.List = append(out.List, &Participant{
			Name:      name,
			AccountID: acct.AccountID,
			Address:   addr,
			Staking:   staking.NewLog(sc, plog),
		})
	}
	return out, nil
}

// Tokens returns the MST and MPT tokens reported by balance steps.
func Tokens(cfg *config.Config) []Token {
	return []Token{
		{Symbol: "MST", ID: cfg.Tokens.MST},
		{Symbol: "MPT", ID: cfg.Tokens.MPT},
	}
}
