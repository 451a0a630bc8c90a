// Package cli provides the command-line interface for huekit.
package cli

import (
	"fmt"
	"os"

	"github.com/hashicorp/go-hclog"
	"github.com/spf13/cobra"

	"github.com/jmylchreest/huekit/internal/colour"
	"github.com/jmylchreest/huekit/internal/version"
)

// rootOptions carries global flags and the state resolved from them before
// a subcommand runs.
type rootOptions struct {
	verbose bool
	quiet   bool
	envFile string
	preview *choiceValue

	config Config
	logger hclog.Logger
}

// NewRootCmd builds a fresh huekit command tree.
func NewRootCmd() *cobra.Command {
	opts := &rootOptions{
		preview: newChoiceValue(previewAuto, previewAuto, previewAlways, previewNever),
		logger:  hclog.NewNullLogger(),
		config:  DefaultConfig(),
	}

	cmd := &cobra.Command{
		Use:   "huekit",
		Short: "A colour conversion, contrast and palette toolkit",
		Long: `huekit converts colours between hex, rgb() and hsl() notations, checks
WCAG contrast between text and background colours, and builds palettes,
harmonies, shade ramps and CSS gradients.

It can also extract the dominant colours of an image.`,
		Version:      version.Short(),
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return opts.init(cmd)
		},
	}

	cmd.PersistentFlags().BoolVarP(&opts.verbose, "verbose", "v", false, "enable verbose output")
	cmd.PersistentFlags().BoolVarP(&opts.quiet, "quiet", "q", false, "suppress non-error output")
	cmd.PersistentFlags().StringVar(&opts.envFile, "env-file", defaultEnvFile, "dotenv file with HUEKIT_* defaults")
	cmd.PersistentFlags().Var(opts.preview, "preview", "colour swatch previews (auto, always, never)")

	cmd.SetVersionTemplate(version.String() + "\n")

	cmd.AddCommand(
		newVersionCmd(),
		newConvertCmd(opts),
		newContrastCmd(opts),
		newReadableCmd(opts),
		newPaletteCmd(opts),
		newHarmonyCmd(opts),
		newShadesCmd(opts),
		newGradientCmd(opts),
		newExtractCmd(opts),
	)

	return cmd
}

// Execute runs the root command, exiting non-zero on failure.
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func (o *rootOptions) init(cmd *cobra.Command) error {
	o.logger = newLogger(cmd.ErrOrStderr(), o.verbose, o.quiet)

	cfg, err := loadConfig(o.envFile)
	if err != nil {
		return err
	}
	o.config = cfg

	if !cmd.Flags().Changed("preview") {
		// The set cannot fail: loadConfig already validated the mode.
		_ = o.preview.Set(cfg.Preview)
	}

	o.logger.Debug("configuration loaded",
		"env_file", o.envFile,
		"format", cfg.Format.String(),
		"preview", o.preview.String(),
		"seeded", cfg.HasSeed)
	return nil
}

// printer returns an output printer for cmd honouring the preview mode.
func (o *rootOptions) printer(cmd *cobra.Command) *printer {
	return newPrinter(cmd.OutOrStdout(), o.preview.String())
}

// format resolves the --format flag of cmd, falling back to the configured
// default when the flag was not given.
func (o *rootOptions) format(cmd *cobra.Command, v *choiceValue) string {
	if cmd.Flags().Changed("format") {
		return v.String()
	}
	return o.config.Format.String()
}

// colourFormat is format narrowed to a colour notation.
func (o *rootOptions) colourFormat(cmd *cobra.Command, v *choiceValue) colour.ColorFormat {
	f, err := colour.ParseColorFormat(o.format(cmd, v))
	if err != nil {
		return colour.FormatHex
	}
	return f
}

// generator returns a random generator seeded by --seed, then HUEKIT_SEED,
// and otherwise from entropy.
func (o *rootOptions) generator(cmd *cobra.Command, seed uint64) *colour.Generator {
	switch {
	case cmd.Flags().Changed("seed"):
		o.logger.Debug("using seed from flag", "seed", seed)
		return colour.NewSeededGenerator(seed)
	case o.config.HasSeed:
		o.logger.Debug("using seed from environment", "seed", o.config.Seed)
		return colour.NewSeededGenerator(o.config.Seed)
	default:
		return colour.NewGenerator(nil)
	}
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Long:  `Print detailed version information including build date, commit hash, and Go version.`,
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprintln(cmd.OutOrStdout(), version.String())
		},
	}
}
