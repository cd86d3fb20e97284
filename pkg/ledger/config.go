package ledger

import "errors"

// Node is a consensus node endpoint for a local network.
type Node struct {
	Address   string
	AccountID string
}

// Config contains the configuration required to initialize a ledger client.
// Each signing account gets its own client.
type Config struct {
	// Network is one of testnet, mainnet, previewnet or local.
	Network string
	// Nodes is required when Network is local.
	Nodes []Node

	OperatorID  string
	OperatorKey string
}

func (c *Config) validate() error {
	if c == nil {
		return errors.New("nil config")
	}
	if c.OperatorID == "" {
		return errors.New("operator account id is required")
	}
	if c.OperatorKey == "" {
		return errors.New("operator private key is required")
	}
	if c.Network == "local" && len(c.Nodes) == 0 {
		return errors.New("nodes are required for the local network")
	}
	return nil
}
