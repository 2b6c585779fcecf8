package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/runoshun/tempconv/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func typeText(m *Model, s string) *Model {
	updated, _ := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)})
	return updated.(*Model)
}

func pressKey(m *Model, k tea.KeyType) (*Model, tea.Cmd) {
	updated, cmd := m.Update(tea.KeyMsg{Type: k})
	return updated.(*Model), cmd
}

func TestNew(t *testing.T) {
	m := New()
	assert.Equal(t, domain.Fahrenheit, m.Scale())
	assert.Nil(t, m.Result())
	assert.Contains(t, m.View(), "Enter ºF: ")
	assert.NotNil(t, m.Init())
}

func TestUpdate_TypingConverts(t *testing.T) {
	m := typeText(New(), "212")

	require.NotNil(t, m.Result())
	assert.InDelta(t, 100, m.Result().To.Degrees, 1e-9)
	assert.Contains(t, m.View(), "212.00ºF = 100.00ºC")
}

func TestUpdate_SwitchScale(t *testing.T) {
	m := typeText(New(), "100")
	m, _ = pressKey(m, tea.KeyTab)

	assert.Equal(t, domain.Celsius, m.Scale())
	require.NotNil(t, m.Result())
	assert.InDelta(t, 212, m.Result().To.Degrees, 1e-9)

	view := m.View()
	assert.Contains(t, view, "Enter ºC: ")
	assert.Contains(t, view, "100.00ºC = 212.00ºF")

	m, _ = pressKey(m, tea.KeyTab)
	assert.Equal(t, domain.Fahrenheit, m.Scale())
}

func TestUpdate_InvalidInput(t *testing.T) {
	m := typeText(New(), "warm")

	assert.Nil(t, m.Result())
	assert.Contains(t, m.View(), "Invalid input!")
}

func TestUpdate_Clear(t *testing.T) {
	m := typeText(New(), "32")
	require.NotNil(t, m.Result())

	m, _ = pressKey(m, tea.KeyCtrlU)
	assert.Nil(t, m.Result())
	assert.NotContains(t, m.View(), "32.00ºF")
}

func TestUpdate_ToggleTable(t *testing.T) {
	m := New()
	assert.NotContains(t, m.View(), "212.00ºF")

	m, _ = pressKey(m, tea.KeyCtrlT)
	view := m.View()
	assert.Contains(t, view, " -40.00ºC =  -40.00ºF")
	assert.Contains(t, view, " 100.00ºC =  212.00ºF")

	m, _ = pressKey(m, tea.KeyCtrlT)
	assert.NotContains(t, m.View(), " 100.00ºC =  212.00ºF")
}

func TestUpdate_Quit(t *testing.T) {
	for _, k := range []tea.KeyType{tea.KeyEsc, tea.KeyCtrlC} {
		_, cmd := pressKey(New(), k)
		require.NotNil(t, cmd)
		assert.Equal(t, tea.Quit(), cmd())
	}
}

func TestUpdate_WindowSize(t *testing.T) {
	updated, cmd := New().Update(tea.WindowSizeMsg{Width: 80, Height: 24})
	m := updated.(*Model)
	assert.Nil(t, cmd)
	assert.Equal(t, 80, m.width)
}
