package ledger

import (
	"strings"
	"testing"

	"github.com/hashgraph/hedera-sdk-go/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "github.com/chainsafe/reward-distribution-ops/pkg/app/errors"
)

func TestLongZeroAddress(t *testing.T) {
	addr := LongZeroAddress(0, 0, 1234)
	assert.Equal(t, "0x00000000000000000000000000000000000004d2", strings.ToLower(addr.Hex()))

	addr = LongZeroAddress(1, 2, 3)
	assert.Equal(t, "0x0000000100000000000000020000000000000003", strings.ToLower(addr.Hex()))
}

func TestAccountAndTokenAddress(t *testing.T) {
	acct, err := ParseAccountID("0.0.4515")
	require.NoError(t, err)
	assert.Equal(t, "0x00000000000000000000000000000000000011a3", strings.ToLower(AccountAddress(acct).Hex()))

	tok, err := ParseTokenID("0.0.4516")
	require.NoError(t, err)
	assert.Equal(t, "0x00000000000000000000000000000000000011a4", strings.ToLower(TokenAddress(tok).Hex()))
}

func TestContractAccountID(t *testing.T) {
	c := hedera.ContractID{Shard: 0, Realm: 0, Contract: 777}
	assert.Equal(t, hedera.AccountID{Account: 777}, ContractAccountID(c))
}

func TestParse_InvalidInputIsDataError(t *testing.T) {
	_, err := ParseAccountID("not-an-id")
	require.Error(t, err)
	assert.True(t, apperrors.Is(err, apperrors.CategoryDataError))

	_, err = ParseContractID("0.0.x")
	require.Error(t, err)
	assert.True(t, apperrors.Is(err, apperrors.CategoryDataError))

	_, err = ParseECDSAKey("zz")
	require.Error(t, err)
	assert.True(t, apperrors.Is(err, apperrors.CategoryDataError))
}

func TestNew_RejectsBadConfig(t *testing.T) {
	_, err := New(&Config{Network: "testnet"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "operator account id is required")

	_, err = New(&Config{Network: "local", OperatorID: "0.0.2", OperatorKey: "aa"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "nodes are required")

	_, err = New(&Config{Network: "testnet", OperatorID: "bad", OperatorKey: "aa"})
	require.Error(t, err)
	assert.True(t, apperrors.Is(err, apperrors.CategoryDataError))
}

func TestRequestValidation(t *testing.T) {
	assert.Error(t, (&ExecuteRequest{Gas: 0, Data: []byte{1, 2, 3, 4}}).validate())
	assert.Error(t, (&ExecuteRequest{Gas: 1, Data: []byte{1}}).validate())
	assert.NoError(t, (&ExecuteRequest{Gas: 1, Data: []byte{1, 2, 3, 4}}).validate())
	assert.Error(t, (&CreateContractRequest{}).validate())
}

func TestStatusErrorClassification(t *testing.T) {
	err := classify("contract_execute", &StatusError{Op: "contract_execute", Status: "CONTRACT_REVERT_EXECUTED"})
	assert.True(t, apperrors.Is(err, apperrors.CategoryDependencyFailure))
	assert.Contains(t, err.Error(), "CONTRACT_REVERT_EXECUTED")
}
