// config.go implements the "datecheck config" command for configuration
// management.
//
// Separated from extension.go to isolate config-specific logic including
// the local vs global config precedence rules.
//
// Design: Config follows a cascade model similar to git: local config
// (.datecheck/config.yaml) takes precedence over global
// (~/.datecheck/config.yaml). The --local flag forces use of local config
// even if it doesn't exist yet.

package core

import (
	"fmt"

	"github.com/jpl-au/datecheck/cmd"
	"github.com/jpl-au/datecheck/extension"
	"github.com/jpl-au/datecheck/internal/config"
	"github.com/jpl-au/datecheck/internal/log"
	"github.com/spf13/cobra"
)

func newConfigCmd() *cobra.Command {
	c := &cobra.Command{
		Use:   "config [key] [value]",
		Short: "View or set config values",
		Long: `View or set config values.

  datecheck config                    # show config
  datecheck config author.name        # show author.name value
  datecheck config log.enabled false  # disable the audit log

Configuration locations:
  Global: ~/.datecheck/config.yaml
  Local:  .datecheck/config.yaml

Uses local config if it exists, otherwise global.
Writes go to the same place reads come from.
Use --local to use local config instead.`,
		Args: cobra.MaximumNArgs(2),
		RunE: runConfig,
	}
	c.Flags().Bool(extension.FlagLocal, false, "Use local config (.datecheck/config.yaml)")
	return c
}

func runConfig(c *cobra.Command, args []string) error {
	forceLocal, _ := c.Flags().GetBool(extension.FlagLocal)

	// Reject unknown keys before touching the filesystem so the user
	// gets the key list instead of a load error.
	if len(args) > 0 && !config.IsValidKey(args[0]) {
		return cmd.PrintJSONError(fmt.Errorf("%w: %s (valid: %v)", config.ErrUnknownKey, args[0], config.ValidKeys()))
	}

	// Load config: local if exists, otherwise global
	// --local flag forces local even if it doesn't exist yet
	var cfg *config.Config
	var err error
	if forceLocal {
		cfg, err = config.LoadScope(config.ScopeLocal)
	} else {
		cfg, err = config.Load()
	}
	if err != nil {
		return cmd.PrintJSONError(fmt.Errorf("config load: %w", err))
	}

	scopeName := "global"
	if cfg.Scope() == config.ScopeLocal {
		scopeName = "local"
	}

	switch len(args) {
	case 0:
		// Show all values
		if cmd.JSON() {
			log.Event("core:config", "list").Author(cmd.Author()).Write(nil)
			return cmd.PrintJSON(cfg.All())
		}
		for k, v := range cfg.All() {
			fmt.Fprintf(cmd.Out(), "%s: %s\n", k, v)
		}
		log.Event("core:config", "list").Author(cmd.Author()).Write(nil)

	case 1:
		// Get single value
		v, err := cfg.Get(args[0])
		log.Event("core:config", "get").Author(cmd.Author()).Detail("key", args[0]).Write(err)
		if err != nil {
			return cmd.PrintJSONError(fmt.Errorf("config get %q: %w", args[0], err))
		}
		if cmd.JSON() {
			return cmd.PrintJSON(map[string]string{args[0]: v})
		}
		if cfg.IsSet(args[0]) {
			fmt.Fprintln(cmd.Out(), v)
		} else {
			fmt.Fprintf(cmd.Out(), "%s (default)\n", v)
		}

	case 2:
		// Set value - write to same place we read from
		if err := cfg.Set(args[0], args[1]); err != nil {
			log.Event("core:config", "set").Author(cmd.Author()).Detail("key", args[0]).Write(err)
			return cmd.PrintJSONError(fmt.Errorf("config set %q: %w", args[0], err))
		}

		// --local pins the write to the local scope; otherwise the
		// value goes back where it was read from.
		var saveErr error
		if forceLocal {
			saveErr = cfg.SaveScope(config.ScopeLocal)
		} else {
			saveErr = cfg.Save()
		}
		log.Event("core:config", "set").Author(cmd.Author()).Detail("key", args[0]).Detail("scope", scopeName).Write(saveErr)
		if saveErr != nil {
			return cmd.PrintJSONError(fmt.Errorf("config save: %w", saveErr))
		}
		if cmd.JSON() {
			return cmd.PrintJSON(map[string]string{args[0]: args[1], "scope": scopeName})
		}
		fmt.Fprintf(cmd.Out(), "%s = %s (%s)\n", args[0], args[1], scopeName)
	}
	return nil
}
