package ledger

import "go.uber.org/zap"

type settings struct {
	logger      *zap.Logger
	maxAttempts int
}

// Option configures the ledger client.
type Option func(*settings)

// WithLogger sets a custom logger for the ledger client.
func WithLogger(l *zap.Logger) Option {
	return func(s *settings) { s.logger = l }
}

// WithMaxAttempts caps how many nodes the SDK tries for a single request.
func WithMaxAttempts(n int) Option {
	return func(s *settings) { s.maxAttempts = n }
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
