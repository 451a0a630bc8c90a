// huekit - colour conversion, contrast and palette toolkit
//
// huekit converts between colour notations, checks WCAG contrast, builds
// palettes, harmonies and gradients, and extracts dominant colours from images.
package main

import (
	"context"
	"os"
	"os/signal"

	"github.com/jmylchreest/huekit/internal/cli"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := cli.NewRootCmd().ExecuteContext(ctx); err != nil {
		stop()
		os.Exit(1)
	}
}
