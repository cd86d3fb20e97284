package scenario

import "go.uber.org/zap"

const defaultDisplayMultiplier = 10000

type settings struct {
	logger            *zap.Logger
	displayMultiplier int64
}

// Option configures the Runner.
type Option func(*settings)

// WithLogger sets a custom logger for the Runner.
func WithLogger(l *zap.Logger) Option {
	return func(s *settings) { s.logger = l }
}

// WithDisplayMultiplier sets the factor applied to token balances before they
// are logged.
func WithDisplayMultiplier(m int64) Option {
	return func(s *settings) {
		if m > 0 {
			s.displayMultiplier = m
		}
	}
}

func applyOptions(opts []Option) settings {
	s := settings{
		logger:            zap.NewNop(),
		displayMultiplier: defaultDisplayMultiplier,
	}
	for _, opt := range opts {
		if opt != nil {
			opt(&s)
		}
	}
	return s
}
