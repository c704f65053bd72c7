package tui

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/tidwall/gjson"

	"github.com/dshills/rewind/internal/jsondoc"
)

const helpText = "commands: set <path> <value> | del <path> | get <path> | " +
	"undo [n] | redo [n] | history | clear | quit"

var errUsage = errors.New(helpText)

// runCommand executes one typed command line against the document and
// returns a status message for display.
func runCommand(doc *jsondoc.Document, line string) (string, error) {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return "", errUsage
	}

	h := doc.History()

	switch fields[0] {
	case "help":
		return helpText, nil

	case "set":
		if len(fields) < 3 {
			return "", fmt.Errorf("usage: set <path> <value>")
		}
		path := fields[1]
		value := parseValue(strings.Join(fields[2:], " "))
		if err := doc.Set(path, value); err != nil {
			return "", err
		}
		return fmt.Sprintf("set %s", path), nil

	case "del":
		if len(fields) != 2 {
			return "", fmt.Errorf("usage: del <path>")
		}
		path := fields[1]
		if !doc.Get(path).Exists() {
			return fmt.Sprintf("%s: no such path", path), nil
		}
		if err := doc.Delete(path); err != nil {
			return "", err
		}
		return fmt.Sprintf("deleted %s", path), nil

	case "get":
		if len(fields) != 2 {
			return "", fmt.Errorf("usage: get <path>")
		}
		res := doc.Get(fields[1])
		if !res.Exists() {
			return fmt.Sprintf("%s: no such path", fields[1]), nil
		}
		return fmt.Sprintf("%s = %s", fields[1], res.Raw), nil

	case "undo":
		levels, err := parseLevels(fields)
		if err != nil {
			return "", err
		}
		// Replay is refused outright while the stack sits at capacity;
		// surface that instead of looking like a silent success.
		if h.UndoCount() >= h.Capacity() {
			return "history full: undo disabled until a new change evicts an entry", nil
		}
		before := h.UndoCount()
		if err := doc.Undo(levels); err != nil {
			return "", err
		}
		return fmt.Sprintf("undid %d change(s)", before-h.UndoCount()), nil

	case "redo":
		levels, err := parseLevels(fields)
		if err != nil {
			return "", err
		}
		if h.RedoCount() >= h.Capacity() {
			return "history full: redo disabled until a new change evicts an entry", nil
		}
		before := h.RedoCount()
		if err := doc.Redo(levels); err != nil {
			return "", err
		}
		return fmt.Sprintf("redid %d change(s)", before-h.RedoCount()), nil

	case "history":
		return fmt.Sprintf("undo: %d, redo: %d, capacity: %d",
			h.UndoCount(), h.RedoCount(), h.Capacity()), nil

	case "clear":
		h.Clear()
		return "history cleared", nil

	default:
		return "", fmt.Errorf("unknown command %q (try 'help')", fields[0])
	}
}

func parseLevels(fields []string) (int, error) {
	if len(fields) == 1 {
		return 1, nil
	}
	n, err := strconv.Atoi(fields[1])
	if err != nil || n < 1 {
		return 0, fmt.Errorf("usage: %s [n]", fields[0])
	}
	return n, nil
}

// parseValue interprets the token as JSON when it is valid JSON (numbers,
// booleans, null, quoted strings, objects, arrays) and falls back to a
// plain string otherwise.
func parseValue(s string) any {
	if gjson.Valid(s) {
		return gjson.Parse(s).Value()
	}
	return s
}
