package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jmylchreest/huekit/internal/colour"
)

type gradientOptions struct {
	stops   int
	seed    uint64
	samples int
	format  *choiceValue
}

func newGradientCmd(root *rootOptions) *cobra.Command {
	opts := &gradientOptions{}

	cmd := &cobra.Command{
		Use:   "gradient [colour...]",
		Short: "Build a CSS linear gradient",
		Long: `Build a left-to-right CSS linear gradient through the given colours.
Without colours, random stops are generated.

Examples:
  huekit gradient '#ff0000' '#0000ff'
  huekit gradient --stops 3 --seed 7
  huekit gradient '#000' '#fff' --samples 5`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGradient(cmd, root, opts, args)
		},
	}

	cmd.Flags().IntVar(&opts.stops, "stops", colour.MinGradientStops, "number of random stops when no colours are given")
	cmd.Flags().Uint64Var(&opts.seed, "seed", 0, "random seed for reproducible output")
	cmd.Flags().IntVar(&opts.samples, "samples", 0, "also print this many colours sampled evenly along the gradient")
	opts.format = addFormatFlag(cmd.Flags())

	return cmd
}

func runGradient(cmd *cobra.Command, root *rootOptions, opts *gradientOptions, args []string) error {
	var (
		spec *colour.GradientSpec
		err  error
	)
	if len(args) == 0 {
		spec, err = root.generator(cmd, opts.seed).RandomGradient(opts.stops)
	} else {
		var stops []colour.Color
		stops, err = parseColours(args)
		if err != nil {
			return err
		}
		spec, err = colour.LinearGradient(stops...)
	}
	if err != nil {
		return err
	}
	root.logger.Debug("gradient built", "stops", len(spec.Stops), "direction", spec.Direction)

	p := root.printer(cmd)
	if p.preview {
		p.println(p.strip(spec.Stops, nil))
	}
	p.println(spec.CSS())

	if opts.samples > 0 {
		samples, err := spec.Sample(opts.samples)
		if err != nil {
			return fmt.Errorf("failed to sample gradient: %w", err)
		}
		f := root.colourFormat(cmd, opts.format)
		p.println()
		for _, c := range samples {
			p.println(p.colour(c, f))
		}
	}
	return nil
}
