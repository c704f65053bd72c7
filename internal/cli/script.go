package cli

import (
	"fmt"
	"io"
	"sort"

	"github.com/spf13/cobra"
	lua "github.com/yuin/gopher-lua"

	"github.com/dshills/rewind/luabind"
)

// newScriptCmd creates the script command.
func newScriptCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "script <file.lua>",
		Short: "Run a Lua script against a history-aware context table",
		Long: `Executes a Lua script with two globals prepared: ctx, a table the
script may mutate freely, and a preloaded "history" module bound to it.
When the script finishes, the final contents of ctx are printed.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := opts.load()
			if err != nil {
				return err
			}

			logger, closeLog, err := newLogger(cfg)
			if err != nil {
				return err
			}
			defer closeLog()

			L := lua.NewState()
			defer L.Close()

			ctx := L.NewTable()
			h := luabind.New(ctx, cfg.Capacity)
			luabind.Preload(L, h)
			L.SetGlobal("ctx", ctx)

			logger.Info("running script", "file", args[0], "capacity", cfg.Capacity)
			if err := L.DoFile(args[0]); err != nil {
				return fmt.Errorf("script: %w", err)
			}
			logger.Info("script finished",
				"undo", h.UndoCount(), "redo", h.RedoCount())

			printContext(cmd.OutOrStdout(), ctx)
			return nil
		},
	}
}

// printContext writes the context table's entries, sorted by key for
// stable output.
func printContext(w io.Writer, ctx *lua.LTable) {
	keys := make([]string, 0)
	values := make(map[string]any)
	ctx.ForEach(func(k, v lua.LValue) {
		key := k.String()
		keys = append(keys, key)
		values[key] = luabind.ToGo(v)
	})
	sort.Strings(keys)

	for _, key := range keys {
		fmt.Fprintf(w, "%s = %v\n", key, values[key])
	}
}
