// Package cli builds the rewind command tree.
package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/dshills/rewind/internal/config"
)

// rootOptions carries persistent flag values shared by subcommands.
type rootOptions struct {
	configPath string
	capacity   int
	logLevel   string
}

// load resolves the effective configuration: file, environment, then
// explicit flags on top.
func (o *rootOptions) load() (config.Config, error) {
	cfg, err := config.Load(o.configPath)
	if err != nil {
		return cfg, err
	}

	if o.capacity > 0 {
		cfg.Capacity = o.capacity
	}
	if o.logLevel != "" {
		cfg.LogLevel = o.logLevel
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// NewRootCmd creates the root command with all subcommands attached.
func NewRootCmd(version, commit, date string) *cobra.Command {
	opts := &rootOptions{}

	cmd := &cobra.Command{
		Use:          "rewind",
		Short:        "Bounded undo/redo over caller-supplied inverse operations",
		Long: `rewind is a bounded undo/redo engine. Callers register the inverse of
each mutation as it happens; undo and redo replay those inverses against
a fixed context, flipping entries between two bounded stacks.

The demo edits a JSON document interactively; script runs a Lua file
against a history-aware context table.`,
		Version:      fmt.Sprintf("%s (commit %s, built %s)", version, commit, date),
		SilenceUsage: true,
	}

	cmd.PersistentFlags().StringVarP(&opts.configPath, "config", "c", "", "path to YAML configuration file")
	cmd.PersistentFlags().IntVar(&opts.capacity, "capacity", 0, "history capacity per stack (overrides config)")
	cmd.PersistentFlags().StringVar(&opts.logLevel, "log-level", "", "log level: debug, info, warn, error")

	cmd.AddCommand(newDemoCmd(opts))
	cmd.AddCommand(newScriptCmd(opts))

	return cmd
}
