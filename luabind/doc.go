// Package luabind exposes a rewind history engine to Lua scripts.
//
// The binding preloads a "history" module bound to one engine whose
// context is a Lua value, typically a table the script mutates:
//
//	local history = require("history")
//
//	function restore(ctx, v)
//	    history.register(restore, ctx.value)
//	    ctx.value = v
//	end
//
//	local old = ctx.value
//	ctx.value = 5
//	history.register(restore, old)
//
//	history.undo() -- ctx.value is back to its old value
//
// gopher-lua's LState is not goroutine-safe, and neither is the engine;
// all calls must come from the goroutine that owns the state.
package luabind
