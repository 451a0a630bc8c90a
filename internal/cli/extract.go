package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/jmylchreest/huekit/internal/colour"
	"github.com/jmylchreest/huekit/internal/image"
)

const defaultMaxDimension = 512

type extractOptions struct {
	colours      int
	algorithm    *choiceValue
	format       *choiceValue
	output       string
	maxDimension int
	weights      bool
}

func newExtractCmd(root *rootOptions) *cobra.Command {
	opts := &extractOptions{}

	algorithms := make([]string, 0, len(colour.ValidAlgorithms()))
	for _, alg := range colour.ValidAlgorithms() {
		algorithms = append(algorithms, string(alg))
	}
	opts.algorithm = newChoiceValue(string(colour.AlgorithmMedianCut), algorithms...)

	cmd := &cobra.Command{
		Use:   "extract <image>",
		Short: "Extract the dominant colours of an image",
		Long: `Extract a palette of dominant colours from an image.

Colours are ordered from most to least prominent. Fully transparent pixels are
ignored. When a directory is given, a random image inside it is used.

Supported image formats: JPEG, PNG, GIF, WebP, BMP, TIFF

Examples:
  # Extract 8 colours (default) from an image
  huekit extract wallpaper.jpg

  # Extract 5 colours as JSON with their weights
  huekit extract -c 5 -f json wallpaper.png

  # Use k-means clustering and save the palette to a file
  huekit extract -a kmeans -o palette.txt wallpaper.jpg`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runExtract(cmd, root, opts, args[0])
		},
	}

	cmd.Flags().IntVarP(&opts.colours, "colours", "c", colour.DefaultColourCount,
		fmt.Sprintf("number of colours to extract (1-%d)", colour.MaxColourCount))
	cmd.Flags().VarP(opts.algorithm, "algorithm", "a", "extraction algorithm ("+strings.Join(algorithms, ", ")+")")
	opts.format = addFormatFlag(cmd.Flags(), formatJSON)
	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output file (default: stdout)")
	cmd.Flags().IntVar(&opts.maxDimension, "max-dimension", defaultMaxDimension, "downscale images larger than this before extraction (0 disables)")
	cmd.Flags().BoolVar(&opts.weights, "weights", false, "show the share of sampled pixels for each colour")

	return cmd
}

func runExtract(cmd *cobra.Command, root *rootOptions, opts *extractOptions, path string) error {
	log := root.logger.Named("extract")

	config := colour.ExtractorConfig{
		Algorithm:  colour.Algorithm(opts.algorithm.String()),
		ColorCount: opts.colours,
	}
	if err := config.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	imagePath, err := image.ResolveImagePath(path)
	if err != nil {
		return fmt.Errorf("invalid image path: %w", err)
	}

	log.Debug("loading image", "path", imagePath)
	img, err := image.NewFileLoader().Load(imagePath)
	if err != nil {
		return fmt.Errorf("failed to load image: %w", err)
	}

	bounds := img.Bounds()
	img = image.Downscale(img, opts.maxDimension)
	log.Debug("image loaded",
		"width", bounds.Dx(),
		"height", bounds.Dy(),
		"scaled", img.Bounds().Size().String())

	extractor, err := colour.NewExtractor(config.Algorithm)
	if err != nil {
		return fmt.Errorf("failed to create extractor: %w", err)
	}

	log.Debug("extracting colours", "count", config.ColorCount, "algorithm", config.Algorithm)
	palette, err := extractor.Extract(cmd.Context(), img, config.ColorCount)
	if err != nil {
		return fmt.Errorf("failed to extract colours: %w", err)
	}
	log.Debug("extracted colours", "count", palette.Len())

	p := root.printer(cmd)
	format := root.format(cmd, opts.format)
	colourFormat := root.colourFormat(cmd, opts.format)

	var output string
	switch {
	case format == formatJSON:
		data, err := palette.ToJSON()
		if err != nil {
			return fmt.Errorf("failed to convert to JSON: %w", err)
		}
		output = string(data) + "\n"
	case opts.output != "":
		// Files never carry terminal escapes.
		output = palette.Text(colourFormat, "\n") + "\n"
	default:
		output = formatExtracted(p, palette, colourFormat, opts.weights)
	}

	return writeOutput(p, log, opts.output, output)
}

// formatExtracted renders one colour per line, optionally with its weight.
func formatExtracted(p *printer, palette *colour.ExtractedPalette, format colour.ColorFormat, weights bool) string {
	if !weights {
		var b strings.Builder
		for _, c := range palette.Colours {
			b.WriteString(p.colour(c, format))
			b.WriteString("\n")
		}
		return b.String()
	}

	table := NewTable("Colour", "Weight")
	for i, c := range palette.Colours {
		table.AddRow(p.colour(c, format), fmt.Sprintf("%5.1f%%", palette.Weights[i]*100))
	}
	return table.Render()
}
