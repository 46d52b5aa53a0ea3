/*
Copyright © 2026 James Lawson (jpl-au) <hello@caelisco.net>
*/

// root.go defines the root command and CLI execution entry point.
//
// Design: Every subcommand returns its error instead of printing it. Execute
// is the single place that reports a fatal error (with the error marker, or
// as JSON with -o json) and converts it into exit status 1. Content issues
// found by verify are not errors and never reach this path unless --strict
// is set.

package cmd

import (
	"errors"
	"fmt"
	"io"
	"os"
	"slices"

	"github.com/jpl-au/palette/internal/log"
	"github.com/jpl-au/palette/internal/ui"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:           "palette",
	Short:         "Generate and verify CSS colour variables from a JSONC palette",
	Long:          `Tools for a hand-authored colour palette: generate a stylesheet of CSS custom properties, and verify hex format, duplicates and contrast.`,
	SilenceErrors: true,
	SilenceUsage:  true,
	Run: func(cmd *cobra.Command, _ []string) {
		_ = cmd.Help()
	},
	PersistentPreRunE: func(_ *cobra.Command, _ []string) error {
		if output != "" && !slices.Contains(validOutputFormats, output) {
			return fmt.Errorf("invalid output format: %s (valid: %v)", output, validOutputFormats)
		}
		if noColour {
			ui.SetColour(false)
		}
		return nil
	},
}

// failure is a fatal error annotated with what the command was doing, so
// Execute can print "Error generating CSS variables: ...".
type failure struct {
	action string
	err    error
}

func (f *failure) Error() string { return f.action + ": " + f.err.Error() }
func (f *failure) Unwrap() error { return f.err }

func fail(action string, err error) error {
	if err == nil {
		return nil
	}
	return &failure{action: action, err: err}
}

// report prints a fatal error to w.
func report(w io.Writer, err error) {
	if JSON() {
		_ = writeJSON(w, map[string]string{"error": err.Error()})
		return
	}
	var f *failure
	if errors.As(err, &f) {
		fmt.Fprintf(w, "%s Error %s: %v\n", ui.Error(), f.action, f.err)
		return
	}
	fmt.Fprintf(w, "%s Error: %v\n", ui.Error(), err)
}

// Execute runs the root command and handles process lifecycle.
// Opens audit logging, executes the command, and exits 1 on error.
func Execute() {
	if err := log.Open(); err != nil {
		fmt.Fprintf(os.Stderr, "warning: audit log unavailable: %v\n", err)
	}

	err := rootCmd.Execute()
	log.Close()

	if err != nil {
		w := errOut
		if JSON() {
			w = out
		}
		report(w, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.AddCommand(
		newGenerateCmd(),
		newVerifyCmd(),
		newConfigCmd(),
		newGuideCmd(),
		newServeCmd(),
		newVersionCmd(),
	)
}
