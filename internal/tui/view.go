package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/runoshun/tempconv/internal/domain"
)

// View renders the model.
func (m *Model) View() string {
	sections := []string{
		m.styles.Title.Render("Temperature Converter"),
		m.input.View(),
	}

	switch {
	case m.err != nil:
		sections = append(sections, m.styles.Error.Render("Invalid input!"))
	case m.result != nil:
		sections = append(sections, m.styles.Result.Render(m.result.From.String()+" = "+m.result.To.String()))
	default:
		sections = append(sections, m.styles.Result.Render(" "))
	}

	if m.showTable {
		sections = append(sections, m.viewTable())
	}

	sections = append(sections, m.styles.Help.Render(m.help.View(m.keys)))
	return m.styles.App.Render(lipgloss.JoinVertical(lipgloss.Left, sections...))
}

// viewTable renders the common table; rows at or below freezing are drawn cold.
func (m *Model) viewTable() string {
	rows := domain.CommonTable()
	lines := make([]string, 0, len(rows))
	for _, row := range rows {
		style := m.styles.TableWarm
		if row.From.Degrees <= 0 {
			style = m.styles.TableCold
		}
		lines = append(lines, style.Render(domain.FormatTableRow(row)))
	}
	return m.styles.TableFrame.Render(strings.Join(lines, "\n"))
}
