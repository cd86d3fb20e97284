package deploy

import (
	"fmt"
)

// Config describes one RewardDistribution deployment.
type Config struct {
	// BytecodePath is the compiled contract artifact (hex text as emitted by solc --bin).
	BytecodePath string
	MSTTokenID   string
	MPTTokenID   string
	// TreasuryID is the account that funds rewards.
	TreasuryID      string
	Gas             uint64
	MaxChunks       uint64
	AllowanceAmount int64
}

func (c *Config) validate() error {
	if c == nil {
		return fmt.Errorf("nil config")
	}
	if c.BytecodePath == "" {
		return fmt.Errorf("bytecode path is required")
	}
	if c.MSTTokenID == "" || c.MPTTokenID == "" {
		return fmt.Errorf("MST and MPT token ids are required")
	}
	if c.TreasuryID == "" {
		return fmt.Errorf("treasury id is required")
	}
	if c.Gas == 0 {
		return fmt.Errorf("gas must be positive")
	}
	if c.MaxChunks == 0 {
		return fmt.Errorf("max chunks must be positive")
	}
	if c.AllowanceAmount <= 0 {
		return fmt.Errorf("allowance amount must be positive")
	}
	return nil
}
