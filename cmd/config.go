// config.go implements the "palette config" command.
//
// Design: Config follows a cascade model similar to git: local config
// (.palette/config.yaml) takes precedence over global (~/.palette/config.yaml).
// The --local flag forces use of local config even if it doesn't exist yet.

package cmd

import (
	"fmt"

	"github.com/jpl-au/palette/internal/config"
	"github.com/jpl-au/palette/internal/log"
	"github.com/spf13/cobra"
)

func newConfigCmd() *cobra.Command {
	c := &cobra.Command{
		Use:   "config [key] [value]",
		Short: "View or set config values",
		Long: `View or set config values.

  palette config                        # show config
  palette config paths.output           # show paths.output value
  palette config paths.output out.css   # set paths.output

Configuration locations:
  Global: ~/.palette/config.yaml
  Local:  .palette/config.yaml

Uses local config if it exists, otherwise global.
Writes go to the same place reads come from.
Use --local to use local config instead.`,
		Args: cobra.MaximumNArgs(2),
		RunE: runConfig,
	}
	c.Flags().Bool("local", false, "Use local config (.palette/config.yaml)")
	return c
}

func runConfig(c *cobra.Command, args []string) error {
	forceLocal, _ := c.Flags().GetBool("local")

	var cfg *config.Config
	var err error
	if forceLocal {
		cfg, err = config.LoadScope(config.ScopeLocal)
	} else {
		cfg, err = config.Load()
	}
	if err != nil {
		return fmt.Errorf("config load: %w", err)
	}

	scopeName := "global"
	if cfg.Scope() == config.ScopeLocal {
		scopeName = "local"
	}

	switch len(args) {
	case 0:
		log.Event("palette:config", "list").Write(nil)
		if JSON() {
			return PrintJSON(cfg.All())
		}
		for _, k := range config.ValidKeys() {
			v, _ := cfg.Get(k)
			fmt.Fprintf(out, "%s: %s\n", k, v)
		}

	case 1:
		v, err := cfg.Get(args[0])
		log.Event("palette:config", "get").Detail("key", args[0]).Write(err)
		if err != nil {
			return fmt.Errorf("config get %q: %w", args[0], err)
		}
		if JSON() {
			return PrintJSON(map[string]string{args[0]: v})
		}
		fmt.Fprintln(out, v)

	case 2:
		if err := cfg.Set(args[0], args[1]); err != nil {
			log.Event("palette:config", "set").Detail("key", args[0]).Write(err)
			return fmt.Errorf("config set %q: %w", args[0], err)
		}

		saveErr := cfg.Save()
		log.Event("palette:config", "set").Detail("key", args[0]).Detail("scope", scopeName).Write(saveErr)
		if saveErr != nil {
			return fmt.Errorf("config save: %w", saveErr)
		}
		fmt.Fprintf(out, "%s = %s (%s)\n", args[0], args[1], scopeName)
	}
	return nil
}
