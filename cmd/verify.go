// verify.go implements "palette verify".
//
// Design: the report is printed in full before any exit decision. Content
// issues only fail the run when --strict is given, so the default behaviour
// stays informational for local use while CI can opt into enforcement.

package cmd

import (
	"context"
	"errors"
	"fmt"

	"github.com/jpl-au/palette/internal/log"
	"github.com/jpl-au/palette/internal/service"
	"github.com/jpl-au/palette/internal/verify"
	"github.com/spf13/cobra"
)

// ErrIssues is returned by verify --strict when the palette has issues.
var ErrIssues = errors.New("palette has issues")

func newVerifyCmd() *cobra.Command {
	c := &cobra.Command{
		Use:   "verify",
		Short: "Verify hex format, duplicates and contrast",
		Long: `Verify the palette and print a report.

Checks every colour is #RGB or #RRGGBB, flags exact duplicate values, and
measures the WCAG contrast ratio between purple.plum and gray.white (see
"palette config" to change the pair or the 4.5 minimum).

Problems are informational: the exit status is 0 unless the palette cannot be
read or parsed, or --strict is given.`,
		Args: cobra.NoArgs,
		RunE: runVerify,
	}
	c.Flags().Bool("strict", false, "Exit 1 when any problem is found")
	return c
}

func runVerify(c *cobra.Command, _ []string) error {
	const action = "verifying palette"

	cfg, err := loadConfig()
	if err != nil {
		return fail(action, err)
	}
	strict, _ := c.Flags().GetBool("strict")

	ctx := c.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	path := PalettePath(cfg)
	r, err := service.Verify(ctx, service.VerifyOptions{Palette: path, Check: verifyOptions(cfg)})

	log.Event("palette:verify", "verify").
		Input(path).
		Detail("total", r.Total).
		Detail("issues", len(r.Issues)).
		Write(err)

	if err != nil {
		return fail(action, err)
	}

	if JSON() {
		if err := PrintJSON(r); err != nil {
			return err
		}
	} else {
		verify.Print(out, r)
	}

	if strict && !r.OK() {
		return fmt.Errorf("%w: %d found", ErrIssues, len(r.Issues))
	}
	return nil
}
