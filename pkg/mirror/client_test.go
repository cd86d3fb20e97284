package mirror

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "github.com/chainsafe/reward-distribution-ops/pkg/app/errors"
)

const (
	account1 = "0.0.5001"
	mstToken = "0.0.2001"
	mptToken = "0.0.2002"
)

type fakeMirror struct {
	balanceCalls atomic.Int32
	tokenCalls   atomic.Int32
	// failures is the number of balances requests answered with failStatus
	// before succeeding; -1 fails forever.
	failures   int32
	failStatus int
}

func (f *fakeMirror) router(t *testing.T) http.Handler {
	r := chi.NewRouter()
	r.Get("/api/v1/balances", func(w http.ResponseWriter, r *http.Request) {
		n := f.balanceCalls.Add(1)
		if f.failures < 0 || n <= f.failures {
			http.Error(w, `{"_status":{"messages":[{"message":"unavailable"}]}}`, f.failStatus)
			return
		}
		assert.Equal(t, account1, r.URL.Query().Get("account.id"))
		writeJSON(t, w, BalancesResponse{
			Timestamp: "1700000000.000000000",
			Balances: []AccountBalance{{
				Account: account1,
				Balance: 100_000_000,
				Tokens: []TokenBalance{
					{TokenID: mstToken, Balance: 400_000},
				},
			}},
		})
	})
	r.Get("/api/v1/tokens/{id}", func(w http.ResponseWriter, r *http.Request) {
		f.tokenCalls.Add(1)
		writeJSON(t, w, TokenInfo{
			TokenID:  chi.URLParam(r, "id"),
			Symbol:   "MST",
			Name:     "Mock Staking Token",
			Decimals: "2",
		})
	})
	return r
}

func writeJSON(t *testing.T, w http.ResponseWriter, v interface{}) {
	t.Helper()
	w.Header().Set("Content-Type", "application/json")
	require.NoError(t, json.NewEncoder(w).Encode(v))
}

func newTestClient(t *testing.T, f *fakeMirror, maxRetries uint64) *Client {
	t.Helper()
	srv := httptest.NewServer(f.router(t))
	t.Cleanup(srv.Close)

	c, err := New(&Config{
		BaseURL:      srv.URL + "/api/v1/",
		Timeout:      time.Second,
		MaxRetries:   maxRetries,
		RetryBackoff: time.Millisecond,
	})
	require.NoError(t, err)
	return c
}

func TestNew_InvalidConfig(t *testing.T) {
	_, err := New(nil)
	require.Error(t, err)

	_, err = New(&Config{BaseURL: "mirror"})
	require.Error(t, err)
}

func TestTokenBalance_ScalesByDecimals(t *testing.T) {
	f := &fakeMirror{}
	c := newTestClient(t, f, 0)

	got, err := c.TokenBalance(context.Background(), account1, mstToken)
	require.NoError(t, err)
	assert.Equal(t, "4000", got.String())

	_, err = c.TokenBalance(context.Background(), account1, mstToken)
	require.NoError(t, err)
	assert.Equal(t, int32(2), f.balanceCalls.Load())
	assert.Equal(t, int32(1), f.tokenCalls.Load(), "token decimals are cached")
}

func TestTokenBalance_NotFound(t *testing.T) {
	c := newTestClient(t, &fakeMirror{}, 0)

	_, err := c.TokenBalance(context.Background(), account1, mptToken)
	assert.ErrorIs(t, err, ErrBalanceNotFound)
}

func TestGetBalances_RetriesRecoverableStatus(t *testing.T) {
	f := &fakeMirror{failures: 2, failStatus: http.StatusServiceUnavailable}
	c := newTestClient(t, f, 3)

	resp, err := c.GetBalances(context.Background(), account1)
	require.NoError(t, err)
	entry, ok := resp.Find(account1)
	require.True(t, ok)
	assert.Equal(t, int64(100_000_000), entry.Balance)
	assert.Equal(t, int32(3), f.balanceCalls.Load())
}

func TestGetBalances_RetriesExhausted(t *testing.T) {
	f := &fakeMirror{failures: -1, failStatus: http.StatusTooManyRequests}
	c := newTestClient(t, f, 2)

	_, err := c.GetBalances(context.Background(), account1)
	require.Error(t, err)
	assert.True(t, apperrors.Is(err, apperrors.CategoryRecovering))
	assert.Contains(t, err.Error(), "429")
	assert.Equal(t, int32(3), f.balanceCalls.Load())
}

func TestGetBalances_ZeroBackoffUsesDefault(t *testing.T) {
	f := &fakeMirror{failures: -1, failStatus: http.StatusServiceUnavailable}
	srv := httptest.NewServer(f.router(t))
	t.Cleanup(srv.Close)

	c, err := New(&Config{BaseURL: srv.URL + "/api/v1"})
	require.NoError(t, err)
	assert.Equal(t, defaultRetryBackoff, c.retryBase)

	_, err = c.GetBalances(context.Background(), account1)
	require.Error(t, err)
	assert.True(t, apperrors.Is(err, apperrors.CategoryRecovering))
	assert.Equal(t, int32(1), f.balanceCalls.Load())
}

func TestGetBalances_GatewayTimeoutIsRetried(t *testing.T) {
	f := &fakeMirror{failures: -1, failStatus: http.StatusGatewayTimeout}
	c := newTestClient(t, f, 1)

	_, err := c.GetBalances(context.Background(), account1)
	require.Error(t, err)
	assert.Equal(t, apperrors.CategoryConnectionTimeout, apperrors.CategoryOf(err))
	assert.Equal(t, int32(2), f.balanceCalls.Load())
}

func TestGetBalances_ClientErrorsFailFast(t *testing.T) {
	tests := []struct {
		name     string
		status   int
		category apperrors.Category
	}{
		{name: "not found", status: http.StatusNotFound, category: apperrors.CategoryResourceNotFound},
		{name: "bad request", status: http.StatusBadRequest, category: apperrors.CategoryDataError},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := &fakeMirror{failures: -1, failStatus: tt.status}
			c := newTestClient(t, f, 3)

			_, err := c.GetBalances(context.Background(), account1)
			require.Error(t, err)
			assert.Equal(t, tt.category, apperrors.CategoryOf(err))
			assert.Equal(t, int32(1), f.balanceCalls.Load())
		})
	}
}

func TestGetBalances_CanceledContext(t *testing.T) {
	f := &fakeMirror{}
	c := newTestClient(t, f, 3)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := c.GetBalances(ctx, account1)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestTokenInfo_DecimalPlaces(t *testing.T) {
	d, err := (&TokenInfo{TokenID: mstToken, Decimals: "8"}).DecimalPlaces()
	require.NoError(t, err)
	assert.Equal(t, int32(8), d)

	_, err = (&TokenInfo{TokenID: mstToken}).DecimalPlaces()
	require.Error(t, err)

	_, err = (&TokenInfo{TokenID: mstToken, Decimals: "-1"}).DecimalPlaces()
	require.Error(t, err)
}
