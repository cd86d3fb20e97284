// Package app defines common runtime contracts shared by the executable
// entrypoints (deployer, scenario, balances).
//
// It lets cmd/* binaries drive a tool without depending on its concrete
// implementation.
package app

import "context"

// Runner represents a runnable operational tool.
type Runner interface {
	Run(ctx context.Context) error
}
