package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/dshills/rewind/internal/jsondoc"
	"github.com/dshills/rewind/internal/tui"
)

// newDemoCmd creates the demo command.
func newDemoCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "demo [file.json]",
		Short: "Edit a JSON document interactively with bounded undo/redo",
		Long: `Opens an interactive editor over a JSON document. Every set and del
registers its inverse with the history engine, so undo and redo
round-trip without the demo tracking changes itself.

With no file argument the document from the configuration is used, or an
empty object.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := opts.load()
			if err != nil {
				return err
			}

			path := cfg.Document
			if len(args) == 1 {
				path = args[0]
			}

			raw := ""
			if path != "" {
				data, err := os.ReadFile(path)
				if err != nil {
					return fmt.Errorf("read document: %w", err)
				}
				raw = string(data)
			}

			doc, err := jsondoc.New(raw, cfg.Capacity)
			if err != nil {
				return err
			}

			logger, closeLog, err := newLogger(cfg)
			if err != nil {
				return err
			}
			defer closeLog()

			logger.Info("demo starting", "capacity", cfg.Capacity, "document", path)
			return tui.Run(doc, logger)
		},
	}
}
