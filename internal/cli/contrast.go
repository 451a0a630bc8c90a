package cli

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jmylchreest/huekit/internal/colour"
)

// contrastJSON is the JSON shape of a contrast check.
type contrastJSON struct {
	Text       string `json:"text"`
	Background string `json:"background"`
	colour.ContrastResult
	Display string `json:"display"`
}

type contrastOptions struct {
	css    bool
	asJSON bool
	swap   bool
}

func newContrastCmd(root *rootOptions) *cobra.Command {
	opts := &contrastOptions{}

	cmd := &cobra.Command{
		Use:   "contrast <text> <background>",
		Short: "Check WCAG contrast between a text and background colour",
		Long: `Compute the WCAG 2.x contrast ratio between a text colour and a background
colour and report which conformance levels it meets.

  AA   normal text  4.5:1    large text  3:1
  AAA  normal text  7:1      large text  4.5:1

Examples:
  huekit contrast '#ffffff' '#121212'
  huekit contrast '#777' '#888' --json
  huekit contrast '#000' '#ffcc00' --css`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runContrast(cmd, root, opts, args)
		},
	}

	cmd.Flags().BoolVar(&opts.css, "css", false, "also print a CSS snippet for the pair")
	cmd.Flags().BoolVar(&opts.asJSON, "json", false, "output the result as JSON")
	cmd.Flags().BoolVar(&opts.swap, "swap", false, "swap the text and background colours")

	return cmd
}

func runContrast(cmd *cobra.Command, root *rootOptions, opts *contrastOptions, args []string) error {
	colours, err := parseColours(args)
	if err != nil {
		return err
	}
	text, bg := colours[0], colours[1]
	if opts.swap {
		text, bg = bg, text
	}

	result := colour.CheckContrast(text, bg)
	root.logger.Debug("contrast checked",
		"text", text.Hex(),
		"background", bg.Hex(),
		"ratio", result.Ratio)

	p := root.printer(cmd)

	if opts.asJSON {
		data, err := json.MarshalIndent(contrastJSON{
			Text:           text.Hex(),
			Background:     bg.Hex(),
			ContrastResult: result,
			Display:        result.String(),
		}, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to convert to JSON: %w", err)
		}
		p.println(string(data))
		return nil
	}

	p.printf("Text:        %s\n", p.colour(text, colour.FormatHex))
	p.printf("Background:  %s\n", p.colour(bg, colour.FormatHex))
	p.printf("Ratio:       %s\n", result)
	if p.preview {
		p.println(p.sample(text, bg))
	}
	p.println()

	table := NewTable("Level", "Normal text", "Large text")
	table.AddRow("AA", passFail(result.AANormal), passFail(result.AALarge))
	table.AddRow("AAA", passFail(result.AAANormal), passFail(result.AAALarge))
	p.printf("%s", table.Render())

	if opts.css {
		p.println()
		p.println(colour.ContrastCSS(text, bg))
	}
	return nil
}

func passFail(ok bool) string {
	if ok {
		return "pass"
	}
	return "fail"
}

func newReadableCmd(root *rootOptions) *cobra.Command {
	var format *choiceValue

	cmd := &cobra.Command{
		Use:   "readable <background>",
		Short: "Pick black or white text for a background colour",
		Long: `Pick whichever of black or white text reads better on the given background,
using perceived brightness.

Examples:
  huekit readable '#ffcc00'
  huekit readable 'hsl(240, 60%, 20%)' -f rgb`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			bg, err := colour.Parse(args[0])
			if err != nil {
				return fmt.Errorf("failed to parse colour %q: %w", args[0], err)
			}

			text := colour.PickReadableText(bg)
			root.logger.Debug("picked text colour",
				"background", bg.Hex(),
				"text", text.Hex(),
				"luminance", colour.QuickLuminance(bg),
				"ratio", colour.CheckContrast(text, bg).String())

			p := root.printer(cmd)
			p.println(p.colour(text, root.colourFormat(cmd, format)))
			if p.preview {
				p.println(p.sample(text, bg))
			}
			return nil
		},
	}

	format = addFormatFlag(cmd.Flags())
	return cmd
}
