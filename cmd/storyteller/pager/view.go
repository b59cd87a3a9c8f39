package pager

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// View implements tea.Model.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	total := m.story.Len()
	textWidth := max(m.width-8, 20)

	var sb strings.Builder

	header := m.styles.Header.Render(fmt.Sprintf("Line %d of %d", m.told, total))
	sb.WriteString(header + "\n")
	sb.WriteString(m.progress.ViewAs(float64(m.acked)/float64(total)) + "\n")
	sb.WriteString(m.styles.RenderDivider(m.width) + "\n\n")

	for i := 0; i < m.told-1; i++ {
		sb.WriteString(m.styles.Told.Width(textWidth).Render(m.story.Line(i)) + "\n")
	}
	sb.WriteString(m.styles.Current.Width(textWidth).Render(m.story.Line(m.told-1)) + "\n\n")

	if m.done {
		sb.WriteString(m.styles.Success.Render("The end.") + "\n")
	} else {
		sb.WriteString(m.styles.Prompt.Render(m.prompt) + "\n")
	}

	footer := m.styles.Footer.Render(m.help.View(m.keys))
	return lipgloss.JoinVertical(lipgloss.Left, m.styles.Content.Render(sb.String()), footer)
}
