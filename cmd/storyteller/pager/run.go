package pager

import (
	"context"
	"fmt"
	"io"

	"storyteller/internal/narrator"

	tea "github.com/charmbracelet/bubbletea"
)

// Run starts the full-screen program and blocks until the reader finishes
// or quits.
func Run(ctx context.Context, m Model, in io.Reader, out io.Writer) (narrator.Result, error) {
	p := tea.NewProgram(m,
		tea.WithContext(ctx),
		tea.WithInput(in),
		tea.WithOutput(out),
		tea.WithAltScreen(),
	)

	final, err := p.Run()
	if err != nil {
		return m.Result(), fmt.Errorf("pager: %w", err)
	}

	fm, ok := final.(Model)
	if !ok {
		return m.Result(), fmt.Errorf("pager: unexpected final model %T", final)
	}
	return fm.Result(), nil
}
