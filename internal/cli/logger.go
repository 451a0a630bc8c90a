package cli

import (
	"io"

	"github.com/hashicorp/go-hclog"
)

// newLogger creates the command logger. Verbose enables debug output, quiet
// limits output to errors; otherwise informational messages are shown.
func newLogger(w io.Writer, verbose, quiet bool) hclog.Logger {
	level := hclog.Info
	switch {
	case quiet:
		level = hclog.Error
	case verbose:
		level = hclog.Debug
	}

	return hclog.New(&hclog.LoggerOptions{
		Name:   "huekit",
		Output: w,
		Level:  level,
		// Timestamps add noise to interactive CLI output.
		DisableTime: true,
	})
}
