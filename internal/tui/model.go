package tui

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/dshills/rewind/internal/jsondoc"
)

// Model is the Bubble Tea model for the rewind demo.
type Model struct {
	doc    *jsondoc.Document
	input  textinput.Model
	recall *Recall
	logger *slog.Logger

	status   string
	statusOK bool
	width    int
	quitting bool
}

// New creates a demo model over the given document.
func New(doc *jsondoc.Document, logger *slog.Logger) Model {
	ti := textinput.New()
	ti.Prompt = "> "
	ti.Placeholder = `set user.name "ed"`
	ti.CharLimit = 256
	ti.Focus()

	return Model{
		doc:      doc,
		input:    ti,
		recall:   NewRecall(100),
		logger:   logger,
		status:   helpText,
		statusOK: true,
	}
}

// Run starts the Bubble Tea program and blocks until it exits.
func Run(doc *jsondoc.Document, logger *slog.Logger) error {
	p := tea.NewProgram(New(doc, logger), tea.WithAltScreen())
	_, err := p.Run()
	return err
}

// Init returns the initial command.
func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

// Update handles terminal events.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		return m, nil

	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyCtrlC, tea.KeyEsc:
			m.quitting = true
			return m, tea.Quit

		case tea.KeyUp:
			if line, ok := m.recall.Prev(); ok {
				m.input.SetValue(line)
				m.input.CursorEnd()
			}
			return m, nil

		case tea.KeyDown:
			line, _ := m.recall.Next()
			m.input.SetValue(line)
			m.input.CursorEnd()
			return m, nil

		case tea.KeyEnter:
			return m.submit()
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m Model) submit() (tea.Model, tea.Cmd) {
	line := strings.TrimSpace(m.input.Value())
	m.input.SetValue("")
	if line == "" {
		return m, nil
	}

	m.recall.Push(line)
	m.recall.ResetCursor()

	if line == "quit" || line == "exit" {
		m.quitting = true
		return m, tea.Quit
	}

	out, err := runCommand(m.doc, line)
	if err != nil {
		m.status = err.Error()
		m.statusOK = false
		m.logger.Error("command failed", "line", line, "error", err)
		return m, nil
	}

	m.status = out
	m.statusOK = true
	m.logger.Debug("command ok", "line", line, "result", out)
	return m, nil
}

// View renders the document, history counters, status line and prompt.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	width := m.width - 4
	if width < 40 {
		width = 40
	}

	h := m.doc.History()
	status := fmt.Sprintf("undo: %d  redo: %d  capacity: %d",
		h.UndoCount(), h.RedoCount(), h.Capacity())

	message := styleMessage.Render(m.status)
	if !m.statusOK {
		message = styleError.Render(m.status)
	}

	return strings.Join([]string{
		styleTitle.Render("rewind — undoable JSON document"),
		styleDocPane.Width(width).Render(m.doc.Pretty()),
		styleStatus.Render(status),
		message,
		m.input.View(),
	}, "\n")
}
