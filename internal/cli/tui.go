package cli

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/runoshun/tempconv/internal/app"
	"github.com/runoshun/tempconv/internal/tui"
)

// launchTUIFunc is a function variable for launching the TUI, allowing it to be mocked in tests.
var launchTUIFunc = launchTUI

// launchTUI runs the full-screen converter until the user quits.
func launchTUI(c *app.Container) error {
	p := tea.NewProgram(tui.New(), tea.WithAltScreen())
	_, err := p.Run()
	if err == nil {
		c.Logger.Debug("tui exited")
	}
	return err
}
