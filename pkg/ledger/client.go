// Package ledger wraps the Hedera SDK calls the operational tools need:
// bytecode files, contract deployment, token administration, contract execution
// and balance queries. Each Client signs as a single operator account.
package ledger

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/hashgraph/hedera-sdk-go/v2"
	"go.uber.org/zap"

	"github.com/chainsafe/reward-distribution-ops/internal/metrics"
	apperrors "github.com/chainsafe/reward-distribution-ops/pkg/app/errors"
)

// Ledger defines the ledger operations used by the deployer and the scenario.
type Ledger interface {
	// OperatorID returns the account that signs and pays for transactions.
	OperatorID() hedera.AccountID

	// CreateFile creates an empty file whose key is the operator key.
	CreateFile(ctx context.Context) (Receipt, error)

	// AppendFile appends contents to a file, split into at most maxChunks transactions.
	AppendFile(ctx context.Context, fileID hedera.FileID, contents []byte, maxChunks uint64) (Receipt, error)

	// CreateContract deploys a contract with the operator key as admin key.
	CreateContract(ctx context.Context, req *CreateContractRequest) (Receipt, error)

	// UpdateTokenSupplyKey hands the supply key of a token to a contract.
	UpdateTokenSupplyKey(ctx context.Context, tokenID hedera.TokenID, contractID hedera.ContractID) (Receipt, error)

	// ApproveTokenAllowance lets spender move up to amount of the owner's tokens.
	ApproveTokenAllowance(ctx context.Context, tokenID hedera.TokenID, owner hedera.AccountID, spender hedera.ContractID, amount int64) (Receipt, error)

	// ExecuteContract submits a state-changing contract call and waits for its receipt.
	ExecuteContract(ctx context.Context, req *ExecuteRequest) (Receipt, error)

	// CallContract submits a contract call as a transaction and returns the
	// function result from its record.
	CallContract(ctx context.Context, req *ExecuteRequest) (CallResult, error)

	// AccountBalance queries the hbar balance and the balances of the given tokens.
	AccountBalance(ctx context.Context, accountID hedera.AccountID, tokens ...hedera.TokenID) (Balance, error)

	// Close releases the network connections.
	Close() error
}

// Client implements Ledger over the Hedera SDK.
type Client struct {
	client   *hedera.Client
	operator hedera.AccountID
	key      hedera.PrivateKey
	logger   *zap.Logger
}

var _ Ledger = (*Client)(nil)

// New creates a ledger client signing as cfg.OperatorID.
func New(cfg *Config, opts ...Option) (*Client, error) {
	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	operator, err := ParseAccountID(cfg.OperatorID)
	if err != nil {
		return nil, err
	}
	key, err := ParseECDSAKey(cfg.OperatorKey)
	if err != nil {
		return nil, err
	}

	client, err := newNetworkClient(cfg)
	if err != nil {
		return nil, err
	}
	client.SetOperator(operator, key)

	s := applyOptions(opts)
	if s.maxAttempts > 0 {
		client.SetMaxAttempts(s.maxAttempts)
	}

	s.logger.Debug("Ledger client initialized",
		zap.String("network", cfg.Network),
		zap.String("operator", operator.String()))

	return &Client{
		client:   client,
		operator: operator,
		key:      key,
		logger:   s.logger,
	}, nil
}

func newNetworkClient(cfg *Config) (*hedera.Client, error) {
	switch cfg.Network {
	case "testnet", "":
		return hedera.ClientForTestnet(), nil
	case "mainnet":
		return hedera.ClientForMainnet(), nil
	case "previewnet":
		return hedera.ClientForPreviewnet(), nil
	case "local":
		nodes := make(map[string]hedera.AccountID, len(cfg.Nodes))
		for _, n := range cfg.Nodes {
			id, err := ParseAccountID(n.AccountID)
			if err != nil {
				return nil, fmt.Errorf("node %s: %w", n.Address, err)
			}
			nodes[n.Address] = id
		}
		return hedera.ClientForNetwork(nodes), nil
	default:
		return nil, apperrors.DataError(nil, fmt.Sprintf("unknown network %q", cfg.Network))
	}
}

// OperatorID returns the signing account.
func (c *Client) OperatorID() hedera.AccountID {
	return c.operator
}

// Close closes the underlying SDK client.
func (c *Client) Close() error {
	if c.client == nil {
		return nil
	}
	return c.client.Close()
}

func (c *Client) CreateFile(ctx context.Context) (Receipt, error) {
	const op = "file_create"
	if err := ctx.Err(); err != nil {
		return Receipt{}, err
	}

	tx, err := hedera.NewFileCreateTransaction().
		SetKeys(c.key.PublicKey()).
		FreezeWith(c.client)
	if err != nil {
		return Receipt{}, apperrors.DataError(err, "freeze file create")
	}

	return c.submit(op, func() (hedera.TransactionResponse, error) {
		return tx.Sign(c.key).Execute(c.client)
	})
}

func (c *Client) AppendFile(ctx context.Context, fileID hedera.FileID, contents []byte, maxChunks uint64) (Receipt, error) {
	const op = "file_append"
	if err := ctx.Err(); err != nil {
		return Receipt{}, err
	}
	if len(contents) == 0 {
		return Receipt{}, apperrors.DataError(nil, "file contents are empty")
	}

	tx, err := hedera.NewFileAppendTransaction().
		SetFileID(fileID).
		SetContents(contents).
		SetMaxChunks(maxChunks).
		FreezeWith(c.client)
	if err != nil {
		return Receipt{}, apperrors.DataError(err, "freeze file append")
	}

	return c.submit(op, func() (hedera.TransactionResponse, error) {
		return tx.Sign(c.key).Execute(c.client)
	})
}

func (c *Client) CreateContract(ctx context.Context, req *CreateContractRequest) (Receipt, error) {
	const op = "contract_create"
	if err := req.validate(); err != nil {
		return Receipt{}, apperrors.DataError(err, "invalid request")
	}
	if err := ctx.Err(); err != nil {
		return Receipt{}, err
	}

	tx := hedera.NewContractCreateTransaction().
		SetBytecodeFileID(req.BytecodeFileID).
		SetGas(req.Gas).
		SetConstructorParametersRaw(req.ConstructorParams).
		SetAdminKey(c.key.PublicKey())

	return c.submit(op, func() (hedera.TransactionResponse, error) {
		return tx.Execute(c.client)
	})
}

func (c *Client) UpdateTokenSupplyKey(ctx context.Context, tokenID hedera.TokenID, contractID hedera.ContractID) (Receipt, error) {
	const op = "token_update"
	if err := ctx.Err(); err != nil {
		return Receipt{}, err
	}

	tx, err := hedera.NewTokenUpdateTransaction().
		SetTokenID(tokenID).
		SetSupplyKey(contractID).
		FreezeWith(c.client)
	if err != nil {
		return Receipt{}, apperrors.DataError(err, "freeze token update")
	}

	return c.submit(op, func() (hedera.TransactionResponse, error) {
		return tx.Sign(c.key).Execute(c.client)
	})
}

func (c *Client) ApproveTokenAllowance(
	ctx context.Context,
	tokenID hedera.TokenID,
	owner hedera.AccountID,
	spender hedera.ContractID,
	amount int64,
) (Receipt, error) {
	const op = "allowance_approve"
	if err := ctx.Err(); err != nil {
		return Receipt{}, err
	}
	if amount <= 0 {
		return Receipt{}, apperrors.DataError(nil, "allowance amount must be positive")
	}

	tx, err := hedera.NewAccountAllowanceApproveTransaction().
		ApproveTokenAllowance(tokenID, owner, ContractAccountID(spender), amount).
		FreezeWith(c.client)
	if err != nil {
		return Receipt{}, apperrors.DataError(err, "freeze allowance approve")
	}

	return c.submit(op, func() (hedera.TransactionResponse, error) {
		return tx.Sign(c.key).Execute(c.client)
	})
}

func (c *Client) ExecuteContract(ctx context.Context, req *ExecuteRequest) (Receipt, error) {
	const op = "contract_execute"
	if err := req.validate(); err != nil {
		return Receipt{}, apperrors.DataError(err, "invalid request")
	}
	if err := ctx.Err(); err != nil {
		return Receipt{}, err
	}

	tx := c.executeTx(req)
	return c.submit(op, func() (hedera.TransactionResponse, error) {
		return tx.Execute(c.client)
	})
}

func (c *Client) CallContract(ctx context.Context, req *ExecuteRequest) (CallResult, error) {
	const op = "contract_call"
	if err := req.validate(); err != nil {
		return CallResult{}, apperrors.DataError(err, "invalid request")
	}
	if err := ctx.Err(); err != nil {
		return CallResult{}, err
	}

	start := time.Now()
	resp, err := c.executeTx(req).Execute(c.client)
	if err != nil {
		return CallResult{}, c.fail(op, start, err)
	}

	record, err := resp.GetRecord(c.client)
	if err != nil {
		return CallResult{}, c.fail(op, start, err)
	}
	result, err := record.GetContractExecuteResult()
	if err != nil {
		return CallResult{}, c.fail(op, start, err)
	}

	c.observe(op, start, StatusSuccess)
	metrics.GasUsed.WithLabelValues(req.Function).Observe(float64(result.GasUsed))

	return CallResult{
		Receipt: Receipt{
			Status:        record.Receipt.Status.String(),
			TransactionID: resp.TransactionID.String(),
		},
		Data:    result.ContractCallResult,
		GasUsed: result.GasUsed,
	}, nil
}

func (c *Client) AccountBalance(ctx context.Context, accountID hedera.AccountID, tokens ...hedera.TokenID) (Balance, error) {
	if err := ctx.Err(); err != nil {
		return Balance{}, err
	}

	bal, err := hedera.NewAccountBalanceQuery().
		SetAccountID(accountID).
		Execute(c.client)
	if err != nil {
		return Balance{}, apperrors.DependencyError(err, "account balance query")
	}

	out := Balance{
		Hbars:  bal.Hbars.String(),
		Tokens: make(map[string]uint64, len(tokens)),
	}
	for _, t := range tokens {
		out.Tokens[t.String()] = bal.Tokens.Get(t)
	}
	return out, nil
}

func (c *Client) executeTx(req *ExecuteRequest) *hedera.ContractExecuteTransaction {
	tx := hedera.NewContractExecuteTransaction().
		SetContractID(req.ContractID).
		SetGas(req.Gas).
		SetFunctionParameters(req.Data)
	if req.MaxFeeHbar > 0 {
		tx.SetMaxTransactionFee(hedera.NewHbar(req.MaxFeeHbar))
	}
	return tx
}

// submit executes a transaction and waits for its receipt.
func (c *Client) submit(op string, execute func() (hedera.TransactionResponse, error)) (Receipt, error) {
	start := time.Now()

	resp, err := execute()
	if err != nil {
		return Receipt{}, c.fail(op, start, err)
	}

	receipt, err := resp.GetReceipt(c.client)
	if err != nil {
		return Receipt{}, c.fail(op, start, err)
	}
	if receipt.Status != hedera.StatusSuccess {
		return Receipt{}, c.fail(op, start, &StatusError{Op: op, Status: receipt.Status.String()})
	}

	c.observe(op, start, StatusSuccess)
	c.logger.Debug("Transaction reached consensus",
		zap.String("op", op),
		zap.String("tx_id", resp.TransactionID.String()),
		zap.Duration("duration", time.Since(start)))

	return Receipt{
		Status:        receipt.Status.String(),
		TransactionID: resp.TransactionID.String(),
		FileID:        receipt.FileID,
		ContractID:    receipt.ContractID,
	}, nil
}

func (c *Client) observe(op string, start time.Time, status string) {
	metrics.TransactionsTotal.WithLabelValues(op, status).Inc()
	metrics.TransactionDuration.WithLabelValues(op).Observe(time.Since(start).Seconds())
}

// fail converts SDK errors into categorized errors and records the outcome.
func (c *Client) fail(op string, start time.Time, err error) error {
	err = classify(op, err)

	status := "ERROR"
	var statusErr *StatusError
	if errors.As(err, &statusErr) {
		status = statusErr.Status
	}
	c.observe(op, start, status)
	return err
}

func classify(op string, err error) error {
	var (
		receiptErr  hedera.ErrHederaReceiptStatus
		precheckErr hedera.ErrHederaPreCheckStatus
		statusErr   *StatusError
	)
	switch {
	case errors.As(err, &statusErr):
		return apperrors.DependencyError(statusErr, op)
	case errors.As(err, &receiptErr):
		return apperrors.DependencyError(&StatusError{Op: op, Status: receiptErr.Status.String()}, op)
	case errors.As(err, &precheckErr):
		return apperrors.DependencyError(&StatusError{Op: op, Status: precheckErr.Status.String()}, op)
	case errors.Is(err, context.DeadlineExceeded):
		return apperrors.TimeoutError(err, op)
	default:
		return apperrors.DependencyError(err, op)
	}
}
