package cli

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"

	"github.com/joho/godotenv"

	"github.com/jmylchreest/huekit/internal/colour"
)

// Environment variables read by huekit.
const (
	envFormat  = "HUEKIT_FORMAT"
	envPreview = "HUEKIT_PREVIEW"
	envSeed    = "HUEKIT_SEED"

	defaultEnvFile = ".huekit.env"
)

// Config holds defaults that flags may override.
type Config struct {
	// Format is the default colour output format.
	Format colour.ColorFormat
	// Preview is the default swatch preview mode (auto, always, never).
	Preview string
	// Seed, when set, makes random generation reproducible.
	Seed    uint64
	HasSeed bool
}

// DefaultConfig returns the built-in defaults.
func DefaultConfig() Config {
	return Config{
		Format:  colour.FormatHex,
		Preview: previewAuto,
	}
}

// loadConfig builds the configuration from the environment, falling back to
// values in envFile (dotenv syntax) and then to DefaultConfig. Empty variables
// count as unset. A missing envFile is not an error.
func loadConfig(envFile string) (Config, error) {
	fileValues := map[string]string{}
	if envFile != "" {
		values, err := godotenv.Read(envFile)
		switch {
		case err == nil:
			fileValues = values
		case errors.Is(err, fs.ErrNotExist):
		default:
			return Config{}, fmt.Errorf("failed to read env file %s: %w", envFile, err)
		}
	}

	lookup := func(key string) (string, bool) {
		if v := os.Getenv(key); v != "" {
			return v, true
		}
		v, ok := fileValues[key]
		return v, ok
	}

	cfg := DefaultConfig()

	if v, ok := lookup(envFormat); ok && v != "" {
		f, err := colour.ParseColorFormat(v)
		if err != nil {
			return Config{}, fmt.Errorf("invalid %s: %w", envFormat, err)
		}
		cfg.Format = f
	}

	if v, ok := lookup(envPreview); ok && v != "" {
		mode := newChoiceValue(previewAuto, previewAuto, previewAlways, previewNever)
		if err := mode.Set(v); err != nil {
			return Config{}, fmt.Errorf("invalid %s: %w", envPreview, err)
		}
		cfg.Preview = mode.String()
	}

	if v, ok := lookup(envSeed); ok && v != "" {
		seed, err := strconv.ParseUint(v, 10, 64)
		if err != nil {
			return Config{}, fmt.Errorf("invalid %s: %w", envSeed, err)
		}
		cfg.Seed = seed
		cfg.HasSeed = true
	}

	return cfg, nil
}
