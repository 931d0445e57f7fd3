//go:build !nogpu

package gpu

import (
	"log/slog"

	"github.com/gogpu/alphablend"
)

// slogger returns the module logger.
// All logging in internal/gpu goes through this function.
func slogger() *slog.Logger { return alphablend.Logger() }
