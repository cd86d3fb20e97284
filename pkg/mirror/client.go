// Package mirror is a read-only client for the Hedera mirror node REST API.
package mirror

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/sethvargo/go-retry"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/chainsafe/reward-distribution-ops/internal/metrics"
	apperrors "github.com/chainsafe/reward-distribution-ops/pkg/app/errors"
)

// maxErrBodyBytes limits how much of an error response is kept.
const maxErrBodyBytes = 4096

const (
	endpointBalances = "balances"
	endpointTokens   = "tokens"
)

// ErrBalanceNotFound is returned when the account does not appear in the
// balances response or holds no entry for the token.
var ErrBalanceNotFound = errors.New("balance not found")

// Client queries the mirror node.
type Client struct {
	baseURL    string
	httpClient *http.Client
	maxRetries uint64
	retryBase  time.Duration
	logger     *zap.Logger

	mu       sync.Mutex
	decimals map[string]int32
}

// New creates a mirror node client.
func New(cfg *Config, opts ...Option) (*Client, error) {
	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("invalid mirror config: %w", err)
	}
	s := applyOptions(opts)

	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	httpClient := s.httpClient
	if httpClient == nil {
		httpClient = &http.Client{Timeout: timeout}
	}
	retryBase := cfg.RetryBackoff
	if retryBase <= 0 {
		retryBase = defaultRetryBackoff
	}

	return &Client{
		baseURL:    strings.TrimRight(cfg.BaseURL, "/"),
		httpClient: httpClient,
		maxRetries: cfg.MaxRetries,
		retryBase:  retryBase,
		logger:     s.logger,
		decimals:   make(map[string]int32),
	}, nil
}

// GetBalances returns the balances entry set for accountID.
func (c *Client) GetBalances(ctx context.Context, accountID string) (*BalancesResponse, error) {
	q := url.Values{"account.id": {accountID}}
	var out BalancesResponse
	if err := c.get(ctx, endpointBalances, "/balances?"+q.Encode(), &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// GetToken returns token metadata.
func (c *Client) GetToken(ctx context.Context, tokenID string) (*TokenInfo, error) {
	var out TokenInfo
	if err := c.get(ctx, endpointTokens, "/tokens/"+url.PathEscape(tokenID), &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// TokenBalance returns the balance of tokenID held by accountID, scaled by the
// token decimals.
func (c *Client) TokenBalance(ctx context.Context, accountID, tokenID string) (decimal.Decimal, error) {
	resp, err := c.GetBalances(ctx, accountID)
	if err != nil {
		return decimal.Zero, err
	}
	entry, ok := resp.Find(accountID)
	if !ok {
		return decimal.Zero, fmt.Errorf("%w: account %s", ErrBalanceNotFound, accountID)
	}
	raw, ok := entry.Token(tokenID)
	if !ok {
		return decimal.Zero, fmt.Errorf("%w: account %s token %s", ErrBalanceNotFound, accountID, tokenID)
	}
	places, err := c.tokenDecimals(ctx, tokenID)
	if err != nil {
		return decimal.Zero, err
	}
	return decimal.New(raw, -places), nil
}

// tokenDecimals returns cached token decimals, fetching them on first use.
func (c *Client) tokenDecimals(ctx context.Context, tokenID string) (int32, error) {
	c.mu.Lock()
	d, ok := c.decimals[tokenID]
	c.mu.Unlock()
	if ok {
		return d, nil
	}

	info, err := c.GetToken(ctx, tokenID)
	if err != nil {
		return 0, err
	}
	d, err = info.DecimalPlaces()
	if err != nil {
		return 0, apperrors.DependencyError(err, "mirror node returned unusable token metadata")
	}

	c.mu.Lock()
	c.decimals[tokenID] = d
	c.mu.Unlock()
	return d, nil
}

func (c *Client) get(ctx context.Context, endpoint, path string, out interface{}) error {
	backoff := retry.WithMaxRetries(c.maxRetries, retry.NewExponential(c.retryBase))

	attempt := 0
	return retry.Do(ctx, backoff, func(ctx context.Context) error {
		attempt++
		err := c.getOnce(ctx, endpoint, path, out)
		if err == nil {
			return nil
		}
		if apperrors.IsRetryable(err) {
			c.logger.Warn("mirror node request failed, retrying",
				zap.String("endpoint", endpoint),
				zap.Int("attempt", attempt),
				zap.Uint64("max_retries", c.maxRetries),
				zap.Error(err))
			return retry.RetryableError(err)
		}
		return err
	})
}

func (c *Client) getOnce(ctx context.Context, endpoint, path string, out interface{}) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return apperrors.DataError(err, "create mirror node request")
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		metrics.MirrorRequestsTotal.WithLabelValues(endpoint, "error").Inc()
		return transportError(ctx, err)
	}
	defer resp.Body.Close()

	metrics.MirrorRequestsTotal.WithLabelValues(endpoint, strconv.Itoa(resp.StatusCode)).Inc()
	if resp.StatusCode != http.StatusOK {
		return readHTTPError(resp)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return apperrors.DependencyError(err, "decode mirror node response")
	}
	return nil
}

func transportError(ctx context.Context, err error) error {
	if ctx.Err() != nil {
		return ctx.Err()
	}
	var netErr net.Error
	if errors.As(err, &netErr) && netErr.Timeout() {
		return apperrors.TimeoutError(err, "mirror node request timed out")
	}
	return apperrors.RecoveringError(err, "call mirror node")
}

func readHTTPError(resp *http.Response) error {
	b, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrBodyBytes))
	err := fmt.Errorf("mirror node returned %d: %s", resp.StatusCode, strings.TrimSpace(string(b)))
	switch apperrors.FromHTTPStatus(resp.StatusCode) {
	case apperrors.CategoryResourceNotFound:
		return apperrors.ResourceNotFoundError(err, "mirror node request failed")
	case apperrors.CategoryRecovering:
		return apperrors.RecoveringError(err, "mirror node request failed")
	case apperrors.CategoryConnectionTimeout:
		return apperrors.TimeoutError(err, "mirror node request timed out")
	case apperrors.CategoryDataError:
		return apperrors.DataError(err, "mirror node request failed")
	default:
		return apperrors.DependencyError(err, "mirror node request failed")
	}
}
