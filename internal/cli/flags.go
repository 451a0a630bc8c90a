package cli

import (
	"fmt"
	"slices"
	"strings"

	"github.com/spf13/pflag"

	"github.com/jmylchreest/huekit/internal/colour"
)

// Output format names understood by the commands. Each command accepts a subset.
const (
	formatHex  = "hex"
	formatRGB  = "rgb"
	formatHSL  = "hsl"
	formatJSON = "json"
	formatAll  = "all"
)

// Preview modes for colour swatches.
const (
	previewAuto   = "auto"
	previewAlways = "always"
	previewNever  = "never"
)

// choiceValue is a string flag restricted to a fixed set of values, so that
// typos fail at flag-parse time rather than deep inside a command.
type choiceValue struct {
	value   string
	choices []string
}

var _ pflag.Value = (*choiceValue)(nil)

func newChoiceValue(def string, choices ...string) *choiceValue {
	return &choiceValue{value: def, choices: choices}
}

func (v *choiceValue) String() string { return v.value }

func (v *choiceValue) Set(s string) error {
	s = strings.ToLower(strings.TrimSpace(s))
	if !slices.Contains(v.choices, s) {
		return fmt.Errorf("must be one of: %s", strings.Join(v.choices, ", "))
	}
	v.value = s
	return nil
}

func (v *choiceValue) Type() string { return "string" }

// colourFormatNames lists the names of the colour notations.
func colourFormatNames() []string {
	names := make([]string, 0, len(colour.Formats()))
	for _, f := range colour.Formats() {
		names = append(names, f.String())
	}
	return names
}

// addFormatFlag registers --format/-f on flags with the colour formats plus extra choices.
func addFormatFlag(flags *pflag.FlagSet, extra ...string) *choiceValue {
	v := newChoiceValue(formatHex, append(colourFormatNames(), extra...)...)
	flags.VarP(v, "format", "f", "output format ("+strings.Join(v.choices, ", ")+")")
	return v
}

// parseColours parses every argument as a colour, naming the bad one on failure.
func parseColours(args []string) ([]colour.Color, error) {
	out := make([]colour.Color, len(args))
	for i, arg := range args {
		c, err := colour.Parse(arg)
		if err != nil {
			return nil, fmt.Errorf("failed to parse colour %q: %w", arg, err)
		}
		out[i] = c
	}
	return out, nil
}
