package staking

import "go.uber.org/zap"

const (
	defaultGas        = 3_000_000
	defaultMaxFeeHbar = 20
)

type settings struct {
	logger     *zap.Logger
	gas        uint64
	maxFeeHbar float64
}

// Option configures the staking client.
type Option func(*settings)

// WithLogger sets a custom logger for the staking client.
func WithLogger(l *zap.Logger) Option {
	return func(s *settings) { s.logger = l }
}

// WithGas sets the gas limit of every contract call.
func WithGas(gas uint64) Option {
	return func(s *settings) { s.gas = gas }
}

// WithMaxFee sets the max transaction fee, in hbar, of every contract call.
func WithMaxFee(hbar float64) Option {
	return func(s *settings) { s.maxFeeHbar = hbar }
}

func applyOptions(opts []Option) settings {
	s := settings{
		logger:     zap.NewNop(),
		gas:        defaultGas,
		maxFeeHbar: defaultMaxFeeHbar,
	}
	for _, opt := range opts {
		if opt != nil {
			opt(&s)
		}
	}
	return s
}
