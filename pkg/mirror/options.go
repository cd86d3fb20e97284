package mirror

import (
	"net/http"

	"go.uber.org/zap"
)

type settings struct {
	logger     *zap.Logger
	httpClient *http.Client
}

// Option configures the mirror client.
type Option func(*settings)

// WithLogger sets a custom logger for the mirror client.
func WithLogger(l *zap.Logger) Option {
	return func(s *settings) { s.logger = l }
}

// WithHTTPClient replaces the default HTTP client.
func WithHTTPClient(c *http.Client) Option {
	return func(s *settings) { s.httpClient = c }
}

func applyOptions(opts []Option) settings {
	s := settings{logger: zap.NewNop()}
	for _, opt := range opts {
		if opt != nil {
			opt(&s)
		}
	}
	return s
}
