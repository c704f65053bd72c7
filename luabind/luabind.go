package luabind

import (
	lua "github.com/yuin/gopher-lua"

	"github.com/dshills/rewind"
)

// Engine is the history specialization used for Lua scripts: the bound
// context is a Lua value shared with the script.
type Engine = rewind.History[lua.LValue]

// New creates a history engine bound to a Lua context value.
func New(ctx lua.LValue, capacity int) *Engine {
	return rewind.New(ctx, capacity)
}

// Preload registers the "history" module on L, bound to h. Scripts gain
// access with require("history").
func Preload(L *lua.LState, h *Engine) {
	L.PreloadModule("history", loader(h))
}

func loader(h *Engine) lua.LGFunction {
	return func(L *lua.LState) int {
		mod := L.SetFuncs(L.NewTable(), map[string]lua.LGFunction{
			"register": func(L *lua.LState) int {
				fn := L.CheckFunction(1)
				top := L.GetTop()
				args := make([]any, 0, top-1)
				for i := 2; i <= top; i++ {
					args = append(args, ToGo(L.Get(i)))
				}
				h.Register(wrap(L, fn), args...)
				return 0
			},
			"undo": func(L *lua.LState) int {
				if err := h.Undo(L.OptInt(1, 1)); err != nil {
					L.RaiseError("undo: %s", err)
				}
				return 0
			},
			"redo": func(L *lua.LState) int {
				if err := h.Redo(L.OptInt(1, 1)); err != nil {
					L.RaiseError("redo: %s", err)
				}
				return 0
			},
			"can_undo": func(L *lua.LState) int {
				L.Push(lua.LBool(h.CanUndo()))
				return 1
			},
			"can_redo": func(L *lua.LState) int {
				L.Push(lua.LBool(h.CanRedo()))
				return 1
			},
			"undo_count": func(L *lua.LState) int {
				L.Push(lua.LNumber(h.UndoCount()))
				return 1
			},
			"redo_count": func(L *lua.LState) int {
				L.Push(lua.LNumber(h.RedoCount()))
				return 1
			},
			"capacity": func(L *lua.LState) int {
				L.Push(lua.LNumber(h.Capacity()))
				return 1
			},
			"clear": func(L *lua.LState) int {
				h.Clear()
				return 0
			},
			"begin_group": func(L *lua.LState) int {
				h.BeginGroup()
				return 0
			},
			"end_group": func(L *lua.LState) int {
				h.EndGroup()
				return 0
			},
			"cancel_group": func(L *lua.LState) int {
				h.CancelGroup()
				return 0
			},
		})
		L.Push(mod)
		return 1
	}
}

// wrap turns a Lua function into a history command. Replay pushes the
// bound context first, then the stored arguments converted back to Lua
// values. A Lua runtime error surfaces as the command's error.
func wrap(L *lua.LState, fn *lua.LFunction) rewind.CommandFunc[lua.LValue] {
	return func(ctx lua.LValue, args ...any) error {
		largs := make([]lua.LValue, 0, len(args)+1)
		largs = append(largs, ctx)
		for _, a := range args {
			largs = append(largs, ToLua(L, a))
		}
		return L.CallByParam(lua.P{
			Fn:      fn,
			NRet:    0,
			Protect: true,
		}, largs...)
	}
}
