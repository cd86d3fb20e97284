package ledger

import (
	"context"
	"errors"
	"testing"

	"github.com/hashgraph/hedera-sdk-go/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "github.com/chainsafe/reward-distribution-ops/pkg/app/errors"
)

const testOperatorKey = "8c2cdc9575fe67493443967d74958fd7808a3787fd3337e99cfeebbc7566b586"

func newTestnetClient(t *testing.T) *Client {
	t.Helper()
	c, err := New(&Config{Network: "testnet", OperatorID: "0.0.1001", OperatorKey: testOperatorKey})
	require.NoError(t, err)
	t.Cleanup(func() { _ = c.Close() })
	return c
}

func TestClassify_SDKStatusErrors(t *testing.T) {
	tests := []struct {
		name   string
		op     string
		err    error
		status string
	}{
		{
			name:   "receipt status",
			op:     "contract_create",
			err:    hedera.ErrHederaReceiptStatus{Status: hedera.StatusContractRevertExecuted},
			status: "CONTRACT_REVERT_EXECUTED",
		},
		{
			name:   "precheck status",
			op:     "contract_execute",
			err:    hedera.ErrHederaPreCheckStatus{Status: hedera.StatusInsufficientPayerBalance},
			status: "INSUFFICIENT_PAYER_BALANCE",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := classify(tt.op, tt.err)

			var statusErr *StatusError
			require.True(t, errors.As(err, &statusErr))
			assert.Equal(t, tt.op, statusErr.Op)
			assert.Equal(t, tt.status, statusErr.Status)
			assert.True(t, apperrors.Is(err, apperrors.CategoryDependencyFailure))
			assert.Contains(t, err.Error(), tt.op+" failed with status "+tt.status)
		})
	}
}

func TestClassify_Timeout(t *testing.T) {
	err := classify("file_append", context.DeadlineExceeded)
	assert.True(t, apperrors.Is(err, apperrors.CategoryConnectionTimeout))
}

func TestClient_CanceledContextIsNotSubmitted(t *testing.T) {
	c := newTestnetClient(t)
	contractID := hedera.ContractID{Contract: 4001}
	req := &ExecuteRequest{ContractID: contractID, Gas: 100_000, Function: "claimRewards", Data: []byte{1, 2, 3, 4}}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := c.CreateFile(ctx)
	assert.ErrorIs(t, err, context.Canceled)

	_, err = c.AppendFile(ctx, hedera.FileID{File: 5001}, []byte("6080"), 10)
	assert.ErrorIs(t, err, context.Canceled)

	_, err = c.CreateContract(ctx, &CreateContractRequest{BytecodeFileID: hedera.FileID{File: 5001}, Gas: 3_000_000})
	assert.ErrorIs(t, err, context.Canceled)

	_, err = c.UpdateTokenSupplyKey(ctx, hedera.TokenID{Token: 2001}, contractID)
	assert.ErrorIs(t, err, context.Canceled)

	_, err = c.ApproveTokenAllowance(ctx, hedera.TokenID{Token: 2001}, c.OperatorID(), contractID, 1000)
	assert.ErrorIs(t, err, context.Canceled)

	_, err = c.ExecuteContract(ctx, req)
	assert.ErrorIs(t, err, context.Canceled)

	_, err = c.CallContract(ctx, req)
	assert.ErrorIs(t, err, context.Canceled)

	_, err = c.AccountBalance(ctx, c.OperatorID())
	assert.ErrorIs(t, err, context.Canceled)
}

func TestClient_OperatorID(t *testing.T) {
	c := newTestnetClient(t)
	assert.Equal(t, hedera.AccountID{Account: 1001}, c.OperatorID())
}
