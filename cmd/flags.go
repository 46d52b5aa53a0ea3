/*
Copyright © 2026 James Lawson (jpl-au) <hello@caelisco.net>
*/

// flags.go defines global CLI flags and the resolution of shared settings.
//
// Design: Paths resolve as flag > environment > config file > default, so a
// bare "palette generate" works in a project laid out the conventional way
// while tests and scripts can pass everything explicitly.

package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/jpl-au/palette/internal/config"
	"github.com/jpl-au/palette/internal/verify"
	"github.com/spf13/cobra"
)

var validOutputFormats = []string{"json"}

// Environment variables consulted when the matching flag is not set.
const (
	EnvPalette = "PALETTE_FILE"
	EnvOutput  = "PALETTE_OUT"
)

var (
	output      string
	palettePath string
	noColour    bool
)

// out is the output writer for commands. Defaults to os.Stdout.
var out io.Writer = os.Stdout

// errOut receives fatal error reports. Defaults to os.Stderr.
var errOut io.Writer = os.Stderr

// JSON returns true if JSON output is requested.
func JSON() bool { return output == "json" }

// PrintJSON marshals v to the output writer. Returns nil if output format is
// not JSON.
func PrintJSON(v any) error {
	if !JSON() {
		return nil
	}
	return writeJSON(out, v)
}

func writeJSON(w io.Writer, v any) error {
	b, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("marshal json: %w", err)
	}
	fmt.Fprintln(w, string(b))
	return nil
}

// loadConfig returns the effective config (local if present, else global).
func loadConfig() (*config.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("config load: %w", err)
	}
	return cfg, nil
}

// firstSet returns the first non-empty value.
func firstSet(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}

// PalettePath resolves the palette file: --palette > PALETTE_FILE > config.
func PalettePath(cfg *config.Config) string {
	return firstSet(palettePath, os.Getenv(EnvPalette), cfg.PalettePath())
}

// OutputPath resolves the stylesheet path: flag > PALETTE_OUT > config.
func OutputPath(cfg *config.Config, flag string) string {
	return firstSet(flag, os.Getenv(EnvOutput), cfg.OutputPath())
}

// verifyOptions builds contrast options from config.
func verifyOptions(cfg *config.Config) verify.Options {
	return verify.Options{
		Foreground: cfg.Foreground(),
		Background: cfg.Background(),
		MinRatio:   cfg.MinRatio(),
	}
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&output, "output", "o", "", "Output format: json")
	rootCmd.PersistentFlags().StringVarP(&palettePath, "palette", "p", "", "Palette file (default "+config.DefaultPalette+")")
	rootCmd.PersistentFlags().BoolVar(&noColour, "no-color", false, "Disable coloured output")

	_ = rootCmd.RegisterFlagCompletionFunc("output", func(_ *cobra.Command, _ []string, _ string) ([]string, cobra.ShellCompDirective) {
		return validOutputFormats, cobra.ShellCompDirectiveNoFileComp
	})
}
