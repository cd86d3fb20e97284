package mirror

import (
	"fmt"
	"net/url"
	"time"
)

const (
	defaultTimeout      = 10 * time.Second
	defaultRetryBackoff = 500 * time.Millisecond
)

// Config holds mirror node REST settings
type Config struct {
	// BaseURL is the REST API root, e.g. https://testnet.mirrornode.hedera.com/api/v1
	BaseURL      string
	Timeout      time.Duration
	MaxRetries   uint64
	RetryBackoff time.Duration
}

func (c *Config) validate() error {
	if c == nil {
		return fmt.Errorf("nil config")
	}
	if c.BaseURL == "" {
		return fmt.Errorf("base url is required")
	}
	u, err := url.Parse(c.BaseURL)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return fmt.Errorf("invalid base url %q", c.BaseURL)
	}
	return nil
}
