package staking

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/ethereum/go-ethereum/common"
	"github.com/hashgraph/hedera-sdk-go/v2"
	"go.uber.org/zap"

	"github.com/chainsafe/reward-distribution-ops/pkg/ledger"
)

// ErrInvalidAddress is returned when an account address is not a 20-byte hex address.
var ErrInvalidAddress = errors.New("invalid EVM address")

// Executor submits RewardDistribution calls to the ledger.
type Executor interface {
	ExecuteContract(ctx context.Context, req *ledger.ExecuteRequest) (ledger.Receipt, error)
	CallContract(ctx context.Context, req *ledger.ExecuteRequest) (ledger.CallResult, error)
}

// Service is the RewardDistribution contract surface used by the scenario.
type Service interface {
	StakeTokens(ctx context.Context, amount uint64) (ledger.Receipt, error)
	UnstakeTokens(ctx context.Context, amount uint64) (ledger.Receipt, error)
	TransferMptTokens(ctx context.Context, amount uint64, recipient common.Address) (ledger.Receipt, error)
	ClaimRewards(ctx context.Context) (ledger.Receipt, error)
	GetStakes(ctx context.Context, account common.Address) (uint64, error)
	GetRewards(ctx context.Context, account common.Address) (uint64, error)
	Position(ctx context.Context, account common.Address) (*Position, error)
}

// Position is an account's staked amount and accrued rewards.
type Position struct {
	Stakes  uint64
	Rewards uint64
}

// Client binds one RewardDistribution contract to the account behind an Executor.
type Client struct {
	exec       Executor
	contractID hedera.ContractID
	gas        uint64
	maxFeeHbar float64
	logger     *zap.Logger
}

var _ Service = (*Client)(nil)

// New creates a contract client. Calls are paid for by the executor's operator.
func New(exec Executor, contractID hedera.ContractID, opts ...Option) (*Client, error) {
	if exec == nil {
		return nil, fmt.Errorf("executor is required")
	}
	s := applyOptions(opts)
	if s.gas == 0 {
		return nil, fmt.Errorf("gas must be positive")
	}
	return &Client{
		exec:       exec,
		contractID: contractID,
		gas:        s.gas,
		maxFeeHbar: s.maxFeeHbar,
		logger:     s.logger,
	}, nil
}

// ParseAddress parses a 0x-prefixed (or bare) 20-byte hex address.
func ParseAddress(s string) (common.Address, error) {
	s = strings.TrimSpace(s)
	if !strings.HasPrefix(s, "0x") && !strings.HasPrefix(s, "0X") {
		s = "0x" + s
	}
	if !common.IsHexAddress(s) {
		return common.Address{}, fmt.Errorf("%w: %q", ErrInvalidAddress, s)
	}
	return common.HexToAddress(s), nil
}

// StakeTokens stakes amount MST from the calling account.
func (c *Client) StakeTokens(ctx context.Context, amount uint64) (ledger.Receipt, error) {
	return c.execute(ctx, FnStakeTokens, amount)
}

// UnstakeTokens returns amount staked MST to the calling account.
func (c *Client) UnstakeTokens(ctx context.Context, amount uint64) (ledger.Receipt, error) {
	return c.execute(ctx, FnUnstakeTokens, amount)
}

// TransferMptTokens moves amount MPT from the calling account to recipient.
func (c *Client) TransferMptTokens(ctx context.Context, amount uint64, recipient common.Address) (ledger.Receipt, error) {
	return c.execute(ctx, FnTransferMptTokens, amount, recipient)
}

// ClaimRewards pays out the calling account's accrued rewards.
func (c *Client) ClaimRewards(ctx context.Context) (ledger.Receipt, error) {
	return c.execute(ctx, FnClaimRewards)
}

// GetStakes returns the amount staked by account.
func (c *Client) GetStakes(ctx context.Context, account common.Address) (uint64, error) {
	return c.read(ctx, FnGetStakes, account)
}

// GetRewards returns the rewards accrued by account.
func (c *Client) GetRewards(ctx context.Context, account common.Address) (uint64, error) {
	return c.read(ctx, FnGetRewards, account)
}

// Position reads stakes then rewards for account.
func (c *Client) Position(ctx context.Context, account common.Address) (*Position, error) {
	stakes, err := c.GetStakes(ctx, account)
	if err != nil {
		return nil, err
	}
	rewards, err := c.GetRewards(ctx, account)
	if err != nil {
		return nil, err
	}
	return &Position{Stakes: stakes, Rewards: rewards}, nil
}

func (c *Client) request(fn string, args ...interface{}) (*ledger.ExecuteRequest, error) {
	data, err := pack(fn, args...)
	if err != nil {
		return nil, err
	}
	return &ledger.ExecuteRequest{
		ContractID: c.contractID,
		Gas:        c.gas,
		MaxFeeHbar: c.maxFeeHbar,
		Function:   fn,
		Data:       data,
	}, nil
}

func (c *Client) execute(ctx context.Context, fn string, args ...interface{}) (ledger.Receipt, error) {
	req, err := c.request(fn, args...)
	if err != nil {
		return ledger.Receipt{}, err
	}
	receipt, err := c.exec.ExecuteContract(ctx, req)
	if err != nil {
		return ledger.Receipt{}, fmt.Errorf("%s: %w", fn, err)
	}
	c.logger.Debug("contract call applied",
		zap.String("function", fn),
		zap.String("status", receipt.Status),
		zap.String("tx_id", receipt.TransactionID))
	return receipt, nil
}

// read executes a view function as a transaction and decodes the uint64 it
// returns from the transaction record.
func (c *Client) read(ctx context.Context, fn string, account common.Address) (uint64, error) {
	req, err := c.request(fn, account)
	if err != nil {
		return 0, err
	}
	res, err := c.exec.CallContract(ctx, req)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", fn, err)
	}
	v, err := unpackUint64(fn, res.Data)
	if err != nil {
		return 0, err
	}
	c.logger.Debug("contract read",
		zap.String("function", fn),
		zap.String("account", account.Hex()),
		zap.Uint64("value", v),
		zap.Uint64("gas_used", res.GasUsed))
	return v, nil
}
