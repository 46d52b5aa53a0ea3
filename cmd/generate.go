// generate.go implements "palette generate".

package cmd

import (
	"context"
	"fmt"
	"strings"

	"github.com/jpl-au/palette/internal/config"
	"github.com/jpl-au/palette/internal/css"
	"github.com/jpl-au/palette/internal/log"
	"github.com/jpl-au/palette/internal/service"
	"github.com/jpl-au/palette/internal/ui"
	"github.com/spf13/cobra"
)

func newGenerateCmd() *cobra.Command {
	c := &cobra.Command{
		Use:   "generate",
		Short: "Generate CSS variables from the palette",
		Long: `Generate a stylesheet of CSS custom properties from the palette.

Each shade becomes --color-<category>-<shade> inside a single :root block,
in the order categories and shades appear in the palette. The stylesheet is
overwritten on every run.

  palette generate                      # default paths
  palette generate --out public/vars.css
  palette generate --check              # exit 1 if the stylesheet is stale
  palette generate --stdout             # print instead of writing`,
		Args: cobra.NoArgs,
		RunE: runGenerate,
	}
	c.Flags().String("out", "", "Stylesheet to write (default "+config.DefaultOutput+")")
	c.Flags().Bool("check", false, "Compare with the existing stylesheet instead of writing")
	c.Flags().Bool("stdout", false, "Print the stylesheet instead of writing it")
	c.MarkFlagsMutuallyExclusive("check", "stdout")
	return c
}

func runGenerate(c *cobra.Command, _ []string) error {
	const action = "generating CSS variables"

	cfg, err := loadConfig()
	if err != nil {
		return fail(action, err)
	}
	outFlag, _ := c.Flags().GetString("out")
	check, _ := c.Flags().GetBool("check")
	stdout, _ := c.Flags().GetBool("stdout")

	opts := service.GenerateOptions{
		Palette: PalettePath(cfg),
		Output:  OutputPath(cfg, outFlag),
		Mode:    service.ModeWrite,
	}
	logAction := "write"
	switch {
	case check:
		opts.Mode, logAction = service.ModeCheck, "check"
	case stdout:
		opts.Mode, logAction = service.ModeRender, "render"
	}

	ctx := c.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	res, err := service.Generate(ctx, opts)

	l := log.Event("palette:generate", logAction).Input(opts.Palette)
	if res.Written {
		l.Output(res.Output)
	}
	l.Detail("categories", len(res.Categories))
	if check {
		l.Detail("stale", res.Stale)
	}
	l.Write(err)

	if err != nil {
		return fail(action, err)
	}

	switch opts.Mode {
	case service.ModeRender:
		_, err := out.Write(res.CSS)
		return err
	case service.ModeCheck:
		return reportCheck(res)
	}

	if JSON() {
		return PrintJSON(res)
	}
	fmt.Fprintf(out, "%s CSS variables written to: %s\n", ui.Success(), res.Output)
	fmt.Fprintf(out, "%s Categories processed: %s\n", ui.Info(), strings.Join(res.Categories, ", "))
	return nil
}

// reportCheck prints the staleness result; a stale stylesheet is an error so
// the process exits 1.
func reportCheck(res service.GenerateResult) error {
	if JSON() {
		if err := PrintJSON(map[string]any{"output": res.Output, "stale": res.Stale}); err != nil {
			return err
		}
	} else if res.Stale {
		fmt.Fprint(out, res.Diff.Format(ui.Colour()))
	} else {
		fmt.Fprintf(out, "%s %s is up to date\n", ui.Success(), res.Output)
	}
	if res.Stale {
		return fmt.Errorf("%s: %w (run palette generate)", res.Output, css.ErrStale)
	}
	return nil
}
