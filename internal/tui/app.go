// Package tui provides a full-screen temperature converter built on bubbletea.
package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/runoshun/tempconv/internal/domain"
)

// Model is the converter TUI model.
// Fields are ordered to minimize memory padding.
type Model struct {
	// State
	result *domain.Conversion
	err    error

	// Components
	keys   KeyMap
	styles Styles
	help   help.Model
	input  textinput.Model

	// Numeric state
	width int
	scale domain.Scale

	// Boolean state
	showTable bool
}

// New creates a new converter Model starting in Fahrenheit.
func New() *Model {
	ti := textinput.New()
	ti.Placeholder = "degrees"
	ti.CharLimit = 32
	ti.Focus()

	m := &Model{
		keys:   DefaultKeyMap(),
		styles: DefaultStyles(),
		help:   help.New(),
		input:  ti,
		scale:  domain.Fahrenheit,
	}
	m.updatePrompt()
	return m
}

// Init initializes the model and returns the initial command.
func (m *Model) Init() tea.Cmd {
	return textinput.Blink
}

// Scale returns the scale typed degrees are read in.
func (m *Model) Scale() domain.Scale {
	return m.scale
}

// Result returns the current conversion, or nil when the input is empty or invalid.
func (m *Model) Result() *domain.Conversion {
	return m.result
}

func (m *Model) updatePrompt() {
	m.input.Prompt = "Enter " + m.scale.Symbol() + ": "
}

// recompute converts the current input.
func (m *Model) recompute() {
	m.result = nil
	m.err = nil

	value := strings.TrimSpace(m.input.Value())
	if value == "" {
		return
	}
	t, err := domain.ParseTemperature(value, m.scale)
	if err != nil {
		m.err = err
		return
	}
	conv := domain.Convert(t)
	m.result = &conv
}
