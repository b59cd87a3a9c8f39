package pager

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"
)

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.help.Width = msg.Width
		m.progress.Width = max(msg.Width-4, 10)
		return m, nil
	case tea.KeyMsg:
		return m.handleKeyPress(msg)
	}
	return m, nil
}

func (m Model) handleKeyPress(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.done || m.quitting {
		return m, nil
	}

	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		m.logger.Info("Reader quit early", zap.Int("told", m.told), zap.Int("total", m.story.Len()))
		return m, tea.Quit

	case key.Matches(msg, m.keys.Next):
		m.acked++
		if m.acked >= m.story.Len() {
			m.done = true
			m.logger.Info("Story complete", zap.Int("lines", m.story.Len()))
			return m, tea.Quit
		}
		m.told++
		m.logger.Debug("Told line", zap.Int("index", m.told), zap.Int("total", m.story.Len()))
	}

	return m, nil
}
