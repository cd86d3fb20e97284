package mirror

import (
	"fmt"
	"strconv"
)

// BalancesResponse is the body of GET /balances.
type BalancesResponse struct {
	Timestamp string           `json:"timestamp"`
	Balances  []AccountBalance `json:"balances"`
}

// AccountBalance is one account entry of a balances response.
type AccountBalance struct {
	Account string         `json:"account"`
	Balance int64          `json:"balance"`
	Tokens  []TokenBalance `json:"tokens"`
}

// TokenBalance is the raw (smallest unit) balance of one token.
type TokenBalance struct {
	TokenID string `json:"token_id"`
	Balance int64  `json:"balance"`
}

// TokenInfo is the subset of GET /tokens/{id} used by the tools.
type TokenInfo struct {
	TokenID string `json:"token_id"`
	Symbol  string `json:"symbol"`
	Name    string `json:"name"`
	// Decimals is reported by the mirror node as a decimal string.
	Decimals string `json:"decimals"`
}

// DecimalPlaces parses Decimals.
func (t *TokenInfo) DecimalPlaces() (int32, error) {
	if t.Decimals == "" {
		return 0, fmt.Errorf("token %s: decimals not reported", t.TokenID)
	}
	d, err := strconv.ParseInt(t.Decimals, 10, 32)
	if err != nil || d < 0 {
		return 0, fmt.Errorf("token %s: invalid decimals %q", t.TokenID, t.Decimals)
	}
	return int32(d), nil
}

// Find returns the entry for accountID.
func (r *BalancesResponse) Find(accountID string) (*AccountBalance, bool) {
	for i := range r.Balances {
		if r.Balances[i].Account == accountID {
			return &r.Balances[i], true
		}
	}
	return nil, false
}

// Token returns the raw balance of tokenID held by the account.
func (a *AccountBalance) Token(tokenID string) (int64, bool) {
	for _, t := range a.Tokens {
		if t.TokenID == tokenID {
			return t.Balance, true
		}
	}
	return 0, false
}
