// Package deploy stores the RewardDistribution bytecode on the ledger, creates
// the contract and hands it control of the MST and MPT tokens.
package deploy

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/hashgraph/hedera-sdk-go/v2"
	"go.uber.org/zap"

	"github.com/chainsafe/reward-distribution-ops/pkg/app"
	apperrors "github.com/chainsafe/reward-distribution-ops/pkg/app/errors"
	"github.com/chainsafe/reward-distribution-ops/pkg/ledger"
	"github.com/chainsafe/reward-distribution-ops/pkg/staking"
)

// ErrContractCreation is returned when the contract create transaction does not succeed.
var ErrContractCreation = errors.New("contract creation failed")

// Step names, used as keys of Result.Statuses.
const (
	StepFileCreate   = "file_create"
	StepFileAppend   = "file_append"
	StepCreate       = "contract_create"
	StepMSTSupplyKey = "mst_supply_key"
	StepMPTSupplyKey = "mpt_supply_key"
	StepMSTAllowance = "mst_allowance"
	StepMPTAllowance = "mpt_allowance"
)

// Ledger is the subset of ledger operations a deployment needs.
//
//go:generate mockery --name Ledger --output mocks --outpkg mocks --filename mock_ledger.go --with-expecter
type Ledger interface {
	OperatorID() hedera.AccountID
	CreateFile(ctx context.Context) (ledger.Receipt, error)
	AppendFile(ctx context.Context, fileID hedera.FileID, contents []byte, maxChunks uint64) (ledger.Receipt, error)
	CreateContract(ctx context.Context, req *ledger.CreateContractRequest) (ledger.Receipt, error)
	UpdateTokenSupplyKey(ctx context.Context, tokenID hedera.TokenID, contractID hedera.ContractID) (ledger.Receipt, error)
	ApproveTokenAllowance(
		ctx context.Context,
		tokenID hedera.TokenID,
		owner hedera.AccountID,
		spender hedera.ContractID,
		amount int64,
	) (ledger.Receipt, error)
	AccountBalance(ctx context.Context, accountID hedera.AccountID, tokens ...hedera.TokenID) (ledger.Balance, error)
}

// Result is the outcome of a deployment.
type Result struct {
	BytecodeFileID hedera.FileID
	ContractID     hedera.ContractID
	// Statuses holds the receipt status of each step that ran.
	Statuses map[string]string
	// Balance is the operator balance after the allowances were approved.
	Balance ledger.Balance
}

// Deployer runs the deployment steps in order, stopping at the first failure.
type Deployer struct {
	cfg    *Config
	ledger Ledger
	logger *zap.Logger

	mst      hedera.TokenID
	mpt      hedera.TokenID
	treasury hedera.AccountID

	result *Result
}

var _ app.Runner = (*Deployer)(nil)

// New creates a Deployer. Token and treasury ids are parsed up front so a
// malformed id fails before anything is submitted.
func New(cfg *Config, l Ledger, opts ...Option) (*Deployer, error) {
	if err := cfg.validate(); err != nil {
		return nil, apperrors.DataError(err, "invalid deploy config")
	}
	if l == nil {
		return nil, fmt.Errorf("ledger is required")
	}

	mst, err := ledger.ParseTokenID(cfg.MSTTokenID)
	if err != nil {
		return nil, fmt.Errorf("MST token: %w", err)
	}
	mpt, err := ledger.ParseTokenID(cfg.MPTTokenID)
	if err != nil {
		return nil, fmt.Errorf("MPT token: %w", err)
	}
	treasury, err := ledger.ParseAccountID(cfg.TreasuryID)
	if err != nil {
		return nil, fmt.Errorf("treasury: %w", err)
	}

	s := applyOptions(opts)
	return &Deployer{
		cfg:      cfg,
		ledger:   l,
		logger:   s.logger,
		mst:      mst,
		mpt:      mpt,
		treasury: treasury,
	}, nil
}

// Run deploys the contract and logs the result. It satisfies app.Runner.
func (d *Deployer) Run(ctx context.Context) error {
	res, err := d.Deploy(ctx)
	d.result = res
	if err != nil {
		return err
	}
	d.logger.Info("RewardDistribution deployed",
		zap.String("contract_id", res.ContractID.String()),
		zap.String("bytecode_file_id", res.BytecodeFileID.String()),
		zap.String("hint", "set REWARD_DISTRIBUTION_CONTRACT_ID="+res.ContractID.String()))
	return nil
}

// Result returns the outcome of the last Run, which may be partial.
func (d *Deployer) Result() *Result {
	return d.result
}

// Deploy performs the deployment. On failure the returned Result holds the
// steps that completed.
func (d *Deployer) Deploy(ctx context.Context) (*Result, error) {
	res := &Result{Statuses: make(map[string]string)}

	bytecode, err := readBytecode(d.cfg.BytecodePath)
	if err != nil {
		return res, err
	}
	d.logger.Info("Loaded contract bytecode",
		zap.String("path", d.cfg.BytecodePath),
		zap.Int("size", len(bytecode)))

	// Store the bytecode in a file
	rcpt, err := d.ledger.CreateFile(ctx)
	if err != nil {
		return res, fmt.Errorf("create bytecode file: %w", err)
	}
	if rcpt.FileID == nil {
		return res, apperrors.DependencyError(nil, "file create receipt carries no file id")
	}
	res.Statuses[StepFileCreate] = rcpt.Status
	res.BytecodeFileID = *rcpt.FileID
	d.logger.Info("Bytecode file created", zap.String("file_id", res.BytecodeFileID.String()))

	rcpt, err = d.ledger.AppendFile(ctx, res.BytecodeFileID, bytecode, d.cfg.MaxChunks)
	if err != nil {
		return res, fmt.Errorf("append bytecode: %w", err)
	}
	res.Statuses[StepFileAppend] = rcpt.Status
	d.logger.Info("Bytecode appended", zap.String("status", rcpt.Status))

	// Create the contract
	contractID, err := d.createContract(ctx, res)
	if err != nil {
		return res, err
	}
	res.ContractID = contractID
	d.logger.Info("RewardDistribution contract created", zap.String("contract_id", contractID.String()))

	// Hand the token supply keys to the contract
	for _, t := range []struct {
		step  string
		name  string
		token hedera.TokenID
	}{
		{StepMSTSupplyKey, "MST", d.mst},
		{StepMPTSupplyKey, "MPT", d.mpt},
	} {
		rcpt, err = d.ledger.UpdateTokenSupplyKey(ctx, t.token, contractID)
		if err != nil {
			return res, fmt.Errorf("update %s supply key: %w", t.name, err)
		}
		res.Statuses[t.step] = rcpt.Status
		d.logger.Info("Token supply key updated",
			zap.String("token", t.name),
			zap.String("token_id", t.token.String()),
			zap.String("status", rcpt.Status))
	}

	// Let the contract move the operator's tokens
	operator := d.ledger.OperatorID()
	for _, t := range []struct {
		step  string
		name  string
		token hedera.TokenID
	}{
		{StepMSTAllowance, "MST", d.mst},
		{StepMPTAllowance, "MPT", d.mpt},
	} {
		rcpt, err = d.ledger.ApproveTokenAllowance(ctx, t.token, operator, contractID, d.cfg.AllowanceAmount)
		if err != nil {
			return res, fmt.Errorf("approve %s allowance: %w", t.name, err)
		}
		res.Statuses[t.step] = rcpt.Status
		d.logger.Info("Token allowance approved",
			zap.String("token", t.name),
			zap.Int64("amount", d.cfg.AllowanceAmount),
			zap.String("status", rcpt.Status))
	}

	bal, err := d.ledger.AccountBalance(ctx, operator, d.mst, d.mpt)
	if err != nil {
		return res, fmt.Errorf("operator balance: %w", err)
	}
	res.Balance = bal
	d.logger.Info("Operator balance",
		zap.String("account", operator.String()),
		zap.String("hbars", bal.Hbars),
		zap.Any("tokens", bal.Tokens))

	return res, nil
}

func (d *Deployer) createContract(ctx context.Context, res *Result) (hedera.ContractID, error) {
	params, err := staking.ConstructorArgs(
		ledger.TokenAddress(d.mst),
		ledger.TokenAddress(d.mpt),
		ledger.AccountAddress(d.treasury),
	)
	if err != nil {
		return hedera.ContractID{}, err
	}

	rcpt, err := d.ledger.CreateContract(ctx, &ledger.CreateContractRequest{
		BytecodeFileID:    res.BytecodeFileID,
		Gas:               d.cfg.Gas,
		ConstructorParams: params,
	})
	if err != nil {
		var statusErr *ledger.StatusError
		if errors.As(err, &statusErr) {
			res.Statuses[StepCreate] = statusErr.Status
			d.logger.Error("Contract creation failed with status", zap.String("status", statusErr.Status))
		}
		return hedera.ContractID{}, fmt.Errorf("%w: %w", ErrContractCreation, err)
	}
	res.Statuses[StepCreate] = rcpt.Status
	if rcpt.Status != ledger.StatusSuccess || rcpt.ContractID == nil {
		d.logger.Error("Contract creation failed with status", zap.String("status", rcpt.Status))
		return hedera.ContractID{}, fmt.Errorf("%w: status %s", ErrContractCreation, rcpt.Status)
	}
	return *rcpt.ContractID, nil
}

func readBytecode(path string) ([]byte, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, apperrors.DataError(err, "read contract bytecode")
	}
	b = bytes.TrimSpace(b)
	if len(b) == 0 {
		return nil, apperrors.DataError(nil, fmt.Sprintf("contract bytecode %s is empty", path))
	}
	return b, nil
}
