package cli

import (
	"github.com/spf13/cobra"

	"github.com/jmylchreest/huekit/internal/colour"
)

func newConvertCmd(root *rootOptions) *cobra.Command {
	var format *choiceValue

	cmd := &cobra.Command{
		Use:   "convert <colour>...",
		Short: "Convert colours between hex, rgb() and hsl()",
		Long: `Convert one or more colours to another notation.

Input may be hex (#rgb, #rrggbb, #rrggbbaa), rgb()/rgba() or hsl()/hsla().

Examples:
  huekit convert '#6366f1' -f hsl
  huekit convert 'rgb(51, 102, 204)' 'hsl(0, 100%, 50%)'
  huekit convert '#336699' -f all`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			colours, err := parseColours(args)
			if err != nil {
				return err
			}

			p := root.printer(cmd)
			if root.format(cmd, format) == formatAll {
				table := NewTable("Hex", "RGB", "HSL")
				for _, c := range colours {
					all := colour.FormatAll(c)
					table.AddRow(p.colour(c, colour.FormatHex), all[1], all[2])
				}
				p.printf("%s", table.Render())
				return nil
			}

			f := root.colourFormat(cmd, format)
			for _, c := range colours {
				p.println(p.colour(c, f))
			}
			return nil
		},
	}

	format = addFormatFlag(cmd.Flags(), formatAll)
	return cmd
}
