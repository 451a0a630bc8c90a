package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jmylchreest/huekit/internal/colour"
)

type paletteOptions struct {
	count     int
	seed      uint64
	lock      []int
	format    *choiceValue
	separator string
	output    string
}

func newPaletteCmd(root *rootOptions) *cobra.Command {
	opts := &paletteOptions{}

	cmd := &cobra.Command{
		Use:   "palette [colour...]",
		Short: "Generate or regenerate a random palette",
		Long: `Generate a palette of random colours.

When colours are given they form the current palette: swatches selected with
--lock (zero-based indices) are kept and every other swatch is replaced with
a new random colour.

Examples:
  # Five random colours
  huekit palette

  # Reproducible palette of eight colours, comma separated
  huekit palette -n 8 --seed 42 --separator ', '

  # Keep the first and third colour, regenerate the rest
  huekit palette '#264653' '#2a9d8f' '#e9c46a' '#f4a261' --lock 0,2

  # Save the palette as a text file
  huekit palette -o palette-swift-colors.txt`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runPalette(cmd, root, opts, args)
		},
	}

	cmd.Flags().IntVarP(&opts.count, "count", "n", colour.DefaultPaletteSize, "number of colours in a new palette")
	cmd.Flags().Uint64Var(&opts.seed, "seed", 0, "random seed for reproducible output")
	cmd.Flags().IntSliceVar(&opts.lock, "lock", nil, "indices of given colours to keep")
	opts.format = addFormatFlag(cmd.Flags())
	cmd.Flags().StringVar(&opts.separator, "separator", "\n", "separator between colours")
	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output file (default: stdout)")

	return cmd
}

func runPalette(cmd *cobra.Command, root *rootOptions, opts *paletteOptions, args []string) error {
	log := root.logger.Named("palette")
	gen := root.generator(cmd, opts.seed)

	var palette *colour.Palette
	if len(args) == 0 {
		if len(opts.lock) > 0 {
			return fmt.Errorf("%w: --lock requires colours to lock", colour.ErrInvalidArgument)
		}
		var err error
		palette, err = gen.RandomPalette(opts.count)
		if err != nil {
			return err
		}
	} else {
		if cmd.Flags().Changed("count") {
			log.Warn("ignoring --count, palette size follows the given colours", "size", len(args))
		}
		colours, err := parseColours(args)
		if err != nil {
			return err
		}
		current := colour.NewPalette(colours...)
		for _, i := range opts.lock {
			if err := current.Lock(i); err != nil {
				return err
			}
		}
		palette = gen.Regenerate(current)
	}
	log.Debug("palette ready", "size", palette.Len(), "locked", lockedIndices(palette))

	p := root.printer(cmd)
	if opts.output == "" && p.preview {
		locked := make([]bool, 0, palette.Len())
		for _, s := range palette.All() {
			locked = append(locked, s.Locked)
		}
		p.println(p.strip(palette.Colours(), locked))
	}

	text := palette.Text(root.colourFormat(cmd, opts.format), opts.separator)
	return writeOutput(p, log, opts.output, text+"\n")
}

// lockedIndices returns the indices of locked swatches.
func lockedIndices(p *colour.Palette) []int {
	var out []int
	for i, s := range p.All() {
		if s.Locked {
			out = append(out, i)
		}
	}
	return out
}
