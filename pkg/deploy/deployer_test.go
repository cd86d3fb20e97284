package deploy

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/hashgraph/hedera-sdk-go/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	apperrors "github.com/chainsafe/reward-distribution-ops/pkg/app/errors"
	"github.com/chainsafe/reward-distribution-ops/pkg/deploy/mocks"
	"github.com/chainsafe/reward-distribution-ops/pkg/ledger"
)

var (
	operator   = hedera.AccountID{Account: 1001}
	mstToken   = mustToken("0.0.2001")
	mptToken   = mustToken("0.0.2002")
	fileID     = hedera.FileID{File: 7001}
	contractID = hedera.ContractID{Contract: 4001}
)

func mustToken(s string) hedera.TokenID {
	id, err := ledger.ParseTokenID(s)
	if err != nil {
		panic(err)
	}
	return id
}

func writeBytecode(t *testing.T, contents string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "RewardDis_sol_RewardDistribution.bin")
	require.NoError(t, os.WriteFile(path, []byte(contents), 0o600))
	return path
}

func testConfig(t *testing.T) *Config {
	return &Config{
		BytecodePath:    writeBytecode(t, "6080604052\n"),
		MSTTokenID:      "0.0.2001",
		MPTTokenID:      "0.0.2002",
		TreasuryID:      "0.0.3001",
		Gas:             3_000_000,
		MaxChunks:       10,
		AllowanceAmount: 1_000_000_000,
	}
}

func success() ledger.Receipt {
	return ledger.Receipt{Status: ledger.StatusSuccess}
}

func TestDeploy_RunsStepsInOrder(t *testing.T) {
	ctx := context.Background()
	l := mocks.NewLedger(t)

	var order []string
	record := func(step string) func(mock.Arguments) {
		return func(mock.Arguments) { order = append(order, step) }
	}

	l.EXPECT().CreateFile(ctx).Run(func(context.Context) { order = append(order, StepFileCreate) }).
		Return(ledger.Receipt{Status: ledger.StatusSuccess, FileID: &fileID}, nil).Once()
	l.EXPECT().AppendFile(ctx, fileID, []byte("6080604052"), uint64(10)).
		Return(success(), nil).Once().Run(record(StepFileAppend))
	l.EXPECT().CreateContract(ctx, mock.MatchedBy(func(req *ledger.CreateContractRequest) bool {
		return req.BytecodeFileID == fileID && req.Gas == 3_000_000 && len(req.ConstructorParams) == 96 &&
			req.ConstructorParams[31] == 0xd1 && req.ConstructorParams[63] == 0xd2 && req.ConstructorParams[95] == 0xb9
	})).Return(ledger.Receipt{Status: ledger.StatusSuccess, ContractID: &contractID}, nil).Once().Run(record(StepCreate))
	l.EXPECT().UpdateTokenSupplyKey(ctx, mstToken, contractID).Return(success(), nil).Once().Run(record(StepMSTSupplyKey))
	l.EXPECT().UpdateTokenSupplyKey(ctx, mptToken, contractID).Return(success(), nil).Once().Run(record(StepMPTSupplyKey))
	l.EXPECT().OperatorID().Return(operator)
	l.EXPECT().ApproveTokenAllowance(ctx, mstToken, operator, contractID, int64(1_000_000_000)).
		Return(success(), nil).Once().Run(record(StepMSTAllowance))
	l.EXPECT().ApproveTokenAllowance(ctx, mptToken, operator, contractID, int64(1_000_000_000)).
		Return(success(), nil).Once().Run(record(StepMPTAllowance))
	l.EXPECT().AccountBalance(ctx, operator, mstToken, mptToken).
		Return(ledger.Balance{Hbars: "100 ℏ", Tokens: map[string]uint64{"0.0.2001": 5, "0.0.2002": 7}}, nil).Once()

	d, err := New(testConfig(t), l)
	require.NoError(t, err)

	res, err := d.Deploy(ctx)
	require.NoError(t, err)

	assert.Equal(t, []string{
		StepFileCreate, StepFileAppend, StepCreate,
		StepMSTSupplyKey, StepMPTSupplyKey,
		StepMSTAllowance, StepMPTAllowance,
	}, order)
	assert.Equal(t, fileID, res.BytecodeFileID)
	assert.Equal(t, contractID, res.ContractID)
	assert.Len(t, res.Statuses, 7)
	assert.Equal(t, uint64(7), res.Balance.Tokens["0.0.2002"])
}

func TestDeploy_ContractCreationFailureStops(t *testing.T) {
	ctx := context.Background()
	l := mocks.NewLedger(t)

	l.EXPECT().CreateFile(ctx).Return(ledger.Receipt{Status: ledger.StatusSuccess, FileID: &fileID}, nil).Once()
	l.EXPECT().AppendFile(ctx, fileID, mock.Anything, uint64(10)).Return(success(), nil).Once()
	statusErr := &ledger.StatusError{Op: "contract_create", Status: "CONTRACT_REVERT_EXECUTED"}
	l.EXPECT().CreateContract(ctx, mock.Anything).
		Return(ledger.Receipt{}, apperrors.DependencyError(statusErr, "contract_create")).Once()

	d, err := New(testConfig(t), l)
	require.NoError(t, err)

	res, err := d.Deploy(ctx)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrContractCreation)
	assert.Equal(t, "CONTRACT_REVERT_EXECUTED", res.Statuses[StepCreate])
	l.AssertNotCalled(t, "UpdateTokenSupplyKey", mock.Anything, mock.Anything, mock.Anything)
	l.AssertNotCalled(t, "ApproveTokenAllowance", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestDeploy_NonSuccessReceipt(t *testing.T) {
	ctx := context.Background()
	l := mocks.NewLedger(t)

	l.EXPECT().CreateFile(ctx).Return(ledger.Receipt{Status: ledger.StatusSuccess, FileID: &fileID}, nil).Once()
	l.EXPECT().AppendFile(ctx, fileID, mock.Anything, uint64(10)).Return(success(), nil).Once()
	l.EXPECT().CreateContract(ctx, mock.Anything).Return(ledger.Receipt{Status: "INSUFFICIENT_GAS"}, nil).Once()

	d, err := New(testConfig(t), l)
	require.NoError(t, err)

	err = d.Run(ctx)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrContractCreation)
	assert.Contains(t, err.Error(), "INSUFFICIENT_GAS")
	require.NotNil(t, d.Result())
	assert.Equal(t, "INSUFFICIENT_GAS", d.Result().Statuses[StepCreate])
}

func TestDeploy_AllowanceFailureStops(t *testing.T) {
	ctx := context.Background()
	l := mocks.NewLedger(t)

	l.EXPECT().CreateFile(ctx).Return(ledger.Receipt{Status: ledger.StatusSuccess, FileID: &fileID}, nil).Once()
	l.EXPECT().AppendFile(ctx, fileID, mock.Anything, uint64(10)).Return(success(), nil).Once()
	l.EXPECT().CreateContract(ctx, mock.Anything).
		Return(ledger.Receipt{Status: ledger.StatusSuccess, ContractID: &contractID}, nil).Once()
	l.EXPECT().UpdateTokenSupplyKey(ctx, mock.Anything, contractID).Return(success(), nil).Twice()
	l.EXPECT().OperatorID().Return(operator)
	l.EXPECT().ApproveTokenAllowance(ctx, mstToken, operator, contractID, mock.Anything).
		Return(ledger.Receipt{}, errors.New("node unavailable")).Once()

	d, err := New(testConfig(t), l)
	require.NoError(t, err)

	_, err = d.Deploy(ctx)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "approve MST allowance")
	l.AssertNotCalled(t, "AccountBalance", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestDeploy_EmptyBytecode(t *testing.T) {
	l := mocks.NewLedger(t)
	cfg := testConfig(t)
	cfg.BytecodePath = writeBytecode(t, "  \n")

	d, err := New(cfg, l)
	require.NoError(t, err)

	_, err = d.Deploy(context.Background())
	require.Error(t, err)
	assert.True(t, apperrors.Is(err, apperrors.CategoryDataError))
	assert.Contains(t, err.Error(), "is empty")
}

func TestNew_Validation(t *testing.T) {
	l := mocks.NewLedger(t)

	cfg := testConfig(t)
	cfg.TreasuryID = ""
	_, err := New(cfg, l)
	require.Error(t, err)

	cfg = testConfig(t)
	cfg.MSTTokenID = "not-a-token"
	_, err = New(cfg, l)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "MST token")

	_, err = New(testConfig(t), nil)
	require.Error(t, err)
}
