package cli

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/jmylchreest/huekit/internal/colour"
)

// harmonyJSON is the JSON shape of the harmonies of a base colour.
type harmonyJSON struct {
	Base          string   `json:"base"`
	Complementary []string `json:"complementary"`
	Triadic       []string `json:"triadic"`
	Analogous     []string `json:"analogous"`
	Monochromatic []string `json:"monochromatic"`
}

func newHarmonyCmd(root *rootOptions) *cobra.Command {
	var format *choiceValue

	cmd := &cobra.Command{
		Use:   "harmony <colour>",
		Short: "Show the colour harmonies of a base colour",
		Long: `Derive colour harmonies from a base colour:

  complementary  the base and its opposite hue
  triadic        three hues 120 degrees apart
  analogous      the neighbouring hues 30 degrees either side
  monochromatic  darker and lighter variants of the base

Examples:
  huekit harmony '#3366cc'
  huekit harmony 'hsl(200, 70%, 50%)' -f json`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			base, err := colour.Parse(args[0])
			if err != nil {
				return fmt.Errorf("failed to parse colour %q: %w", args[0], err)
			}

			h := colour.HarmoniesFor(base)
			p := root.printer(cmd)

			if root.format(cmd, format) == formatJSON {
				data, err := json.MarshalIndent(harmonyJSON{
					Base:          base.Hex(),
					Complementary: hexes(h.Complementary),
					Triadic:       hexes(h.Triadic),
					Analogous:     hexes(h.Analogous),
					Monochromatic: hexes(h.Monochromatic),
				}, "", "  ")
				if err != nil {
					return fmt.Errorf("failed to convert to JSON: %w", err)
				}
				p.println(string(data))
				return nil
			}

			f := root.colourFormat(cmd, format)
			table := NewTable()
			for _, row := range []struct {
				name    string
				colours []colour.Color
			}{
				{"complementary", h.Complementary},
				{"triadic", h.Triadic},
				{"analogous", h.Analogous},
				{"monochromatic", h.Monochromatic},
			} {
				cells := []string{row.name}
				if p.preview {
					cells = append(cells, p.strip(row.colours, nil))
				}
				cells = append(cells, formatList(row.colours, f))
				table.AddRow(cells...)
			}
			p.printf("%s", table.Render())
			return nil
		},
	}

	format = addFormatFlag(cmd.Flags(), formatJSON)
	return cmd
}

func newShadesCmd(root *rootOptions) *cobra.Command {
	var (
		steps  int
		format *choiceValue
	)

	cmd := &cobra.Command{
		Use:   "shades <colour>",
		Short: "Show a lightness ramp from black to white for a colour",
		Long: `Show shades of a colour: its hue and saturation at evenly spaced
lightness from 0% (black) to 100% (white).

Examples:
  huekit shades '#3366cc'
  huekit shades '#e76f51' --steps 5 -f hsl`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			base, err := colour.Parse(args[0])
			if err != nil {
				return fmt.Errorf("failed to parse colour %q: %w", args[0], err)
			}

			shades, err := colour.ShadeRamp(base, steps)
			if err != nil {
				return err
			}

			p := root.printer(cmd)
			f := root.colourFormat(cmd, format)
			table := NewTable()
			for i, c := range shades {
				lightness := float64(i) / float64(len(shades)-1) * 100
				table.AddRow(fmt.Sprintf("%3.0f%%", lightness), p.colour(c, f))
			}
			p.printf("%s", table.Render())
			return nil
		},
	}

	cmd.Flags().IntVar(&steps, "steps", colour.DefaultShadeSteps, "number of shades, including black and white")
	format = addFormatFlag(cmd.Flags())
	return cmd
}

func hexes(colours []colour.Color) []string {
	out := make([]string, len(colours))
	for i, c := range colours {
		out[i] = c.Hex()
	}
	return out
}

func formatList(colours []colour.Color, f colour.ColorFormat) string {
	parts := make([]string, len(colours))
	for i, c := range colours {
		parts[i] = colour.Format(c, f)
	}
	return strings.Join(parts, ", ")
}
