package staking

import (
	"context"
	"errors"
	"testing"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/hashgraph/hedera-sdk-go/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"github.com/chainsafe/reward-distribution-ops/pkg/ledger"
)

type fakeExecutor struct {
	executeFn func(ctx context.Context, req *ledger.ExecuteRequest) (ledger.Receipt, error)
	callFn    func(ctx context.Context, req *ledger.ExecuteRequest) (ledger.CallResult, error)
	requests  []*ledger.ExecuteRequest
}

func (f *fakeExecutor) ExecuteContract(ctx context.Context, req *ledger.ExecuteRequest) (ledger.Receipt, error) {
	f.requests = append(f.requests, req)
	if f.executeFn != nil {
		return f.executeFn(ctx, req)
	}
	return ledger.Receipt{Status: ledger.StatusSuccess, TransactionID: "0.0.5001@1700000000.000000001"}, nil
}

func (f *fakeExecutor) CallContract(ctx context.Context, req *ledger.ExecuteRequest) (ledger.CallResult, error) {
	f.requests = append(f.requests, req)
	if f.callFn != nil {
		return f.callFn(ctx, req)
	}
	return ledger.CallResult{Receipt: ledger.Receipt{Status: ledger.StatusSuccess}}, nil
}

var (
	testContract = hedera.ContractID{Shard: 0, Realm: 0, Contract: 4001}
	testAccount  = common.HexToAddress("0x5b38da6a701c568545dcfcb03fcb875f56beddc4")
)

func selector(sig string) []byte {
	return crypto.Keccak256([]byte(sig))[:4]
}

func encodeUint64(t *testing.T, fn string, v uint64) []byte {
	t.Helper()
	out, err := parsedABI.Methods[fn].Outputs.Pack(v)
	require.NoError(t, err)
	return out
}

func newTestClient(t *testing.T, exec Executor, opts ...Option) *Client {
	t.Helper()
	c, err := New(exec, testContract, opts...)
	require.NoError(t, err)
	return c
}

func TestNew_Validation(t *testing.T) {
	_, err := New(nil, testContract)
	require.Error(t, err)

	_, err = New(&fakeExecutor{}, testContract, WithGas(0))
	require.Error(t, err)
}

func TestStakeTokens_EncodesCall(t *testing.T) {
	exec := &fakeExecutor{}
	c := newTestClient(t, exec)

	receipt, err := c.StakeTokens(context.Background(), 4000)
	require.NoError(t, err)
	assert.Equal(t, ledger.StatusSuccess, receipt.Status)

	require.Len(t, exec.requests, 1)
	req := exec.requests[0]
	assert.Equal(t, testContract, req.ContractID)
	assert.Equal(t, uint64(3_000_000), req.Gas)
	assert.Equal(t, float64(20), req.MaxFeeHbar)
	assert.Equal(t, FnStakeTokens, req.Function)
	require.Len(t, req.Data, 4+32)
	assert.Equal(t, selector("stakeTokens(uint64)"), req.Data[:4])
	assert.Equal(t, byte(0x0f), req.Data[4+30])
	assert.Equal(t, byte(0xa0), req.Data[4+31])
}

func TestCalls_Selectors(t *testing.T) {
	exec := &fakeExecutor{}
	c := newTestClient(t, exec, WithGas(1_000_000), WithMaxFee(5))
	ctx := context.Background()

	_, err := c.UnstakeTokens(ctx, 4000)
	require.NoError(t, err)
	_, err = c.TransferMptTokens(ctx, 4000, testAccount)
	require.NoError(t, err)
	_, err = c.ClaimRewards(ctx)
	require.NoError(t, err)

	require.Len(t, exec.requests, 3)
	assert.Equal(t, selector("unstakeTokens(uint64)"), exec.requests[0].Data[:4])
	assert.Equal(t, selector("transferMptTokens(uint64,address)"), exec.requests[1].Data[:4])
	assert.Equal(t, testAccount.Bytes(), exec.requests[1].Data[4+32+12:4+64])
	assert.Equal(t, selector("claimRewards()"), exec.requests[2].Data)
	for _, req := range exec.requests {
		assert.Equal(t, uint64(1_000_000), req.Gas)
		assert.Equal(t, float64(5), req.MaxFeeHbar)
	}
}

func TestPosition_DecodesRecordResults(t *testing.T) {
	exec := &fakeExecutor{
		callFn: func(_ context.Context, req *ledger.ExecuteRequest) (ledger.CallResult, error) {
			switch req.Function {
			case FnGetStakes:
				return ledger.CallResult{Data: encodeUint64(t, FnGetStakes, 4000), GasUsed: 24000}, nil
			case FnGetRewards:
				return ledger.CallResult{Data: encodeUint64(t, FnGetRewards, 12), GasUsed: 25000}, nil
			}
			return ledger.CallResult{}, errors.New("unexpected function")
		},
	}
	c := newTestClient(t, exec)

	pos, err := c.Position(context.Background(), testAccount)
	require.NoError(t, err)
	assert.Equal(t, &Position{Stakes: 4000, Rewards: 12}, pos)

	require.Len(t, exec.requests, 2)
	assert.Equal(t, selector("getStakes(address)"), exec.requests[0].Data[:4])
	assert.Equal(t, selector("getRewards(address)"), exec.requests[1].Data[:4])
}

func TestRead_ShortResult(t *testing.T) {
	exec := &fakeExecutor{
		callFn: func(context.Context, *ledger.ExecuteRequest) (ledger.CallResult, error) {
			return ledger.CallResult{Data: []byte{0x01}}, nil
		},
	}
	c := newTestClient(t, exec)

	_, err := c.GetStakes(context.Background(), testAccount)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unpack getStakes")
}

func TestExecute_PropagatesLedgerError(t *testing.T) {
	ledgerErr := &ledger.StatusError{Op: "contract_execute", Status: "CONTRACT_REVERT_EXECUTED"}
	exec := &fakeExecutor{
		executeFn: func(context.Context, *ledger.ExecuteRequest) (ledger.Receipt, error) {
			return ledger.Receipt{}, ledgerErr
		},
	}
	c := newTestClient(t, exec)

	_, err := c.ClaimRewards(context.Background())
	require.Error(t, err)
	assert.ErrorIs(t, err, ledgerErr)
	assert.Contains(t, err.Error(), "claimRewards")
}

func TestParseAddress(t *testing.T) {
	addr, err := ParseAddress("5b38da6a701c568545dcfcb03fcb875f56beddc4")
	require.NoError(t, err)
	assert.Equal(t, testAccount, addr)

	addr, err = ParseAddress(" 0x5B38Da6a701c568545dCfcB03FcB875f56beddC4 ")
	require.NoError(t, err)
	assert.Equal(t, testAccount, addr)

	_, err = ParseAddress("0x1234")
	assert.ErrorIs(t, err, ErrInvalidAddress)
}

func TestConstructorArgs(t *testing.T) {
	mst := ledger.LongZeroAddress(0, 0, 2001)
	mpt := ledger.LongZeroAddress(0, 0, 2002)
	treasury := ledger.LongZeroAddress(0, 0, 3001)

	data, err := ConstructorArgs(mst, mpt, treasury)
	require.NoError(t, err)
	require.Len(t, data, 96)
	assert.Equal(t, mst.Bytes(), data[12:32])
	assert.Equal(t, mpt.Bytes(), data[44:64])
	assert.Equal(t, treasury.Bytes(), data[76:96])
}

func TestNewLog_LogsOutcome(t *testing.T) {
	core, logs := observer.New(zap.InfoLevel)
	exec := &fakeExecutor{
		executeFn: func(_ context.Context, req *ledger.ExecuteRequest) (ledger.Receipt, error) {
			if req.Function == FnUnstakeTokens {
				return ledger.Receipt{}, errors.New("boom")
			}
			return ledger.Receipt{Status: ledger.StatusSuccess}, nil
		},
	}
	svc := NewLog(newTestClient(t, exec), zap.New(core))

	_, err := svc.StakeTokens(context.Background(), 4000)
	require.NoError(t, err)
	_, err = svc.UnstakeTokens(context.Background(), 4000)
	require.Error(t, err)

	assert.Equal(t, 1, logs.FilterMessage("StakeTokens started").Len())
	assert.Equal(t, 1, logs.FilterMessage("StakeTokens completed").Len())
	assert.Equal(t, 1, logs.FilterMessage("UnstakeTokens failed").Len())
	assert.Equal(t, 0, logs.FilterMessage("UnstakeTokens completed").Len())
}
