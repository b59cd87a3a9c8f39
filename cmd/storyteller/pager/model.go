// Package pager is the full-screen front end for storyteller. It shows the
// story told so far and advances one line per acknowledgment.
package pager

import (
	"storyteller/cmd/storyteller/ui"
	"storyteller/internal/narrator"
	"storyteller/internal/story"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"
)

const defaultWidth = 80

// Model is the pager state.
type Model struct {
	story  *story.Story
	prompt string
	logger *zap.Logger

	styles   ui.Styles
	keys     keyMap
	help     help.Model
	progress progress.Model
	width    int

	told     int
	acked    int
	done     bool
	quitting bool
}

// Option configures a Model.
type Option func(*Model)

// WithPrompt overrides narrator.DefaultPrompt.
func WithPrompt(prompt string) Option {
	return func(m *Model) {
		m.prompt = prompt
	}
}

// WithLogger attaches a logger.
func WithLogger(logger *zap.Logger) Option {
	return func(m *Model) {
		if logger != nil {
			m.logger = logger
		}
	}
}

// NewModel creates a pager for s with the first line already showing.
func NewModel(s *story.Story, styles ui.Styles, opts ...Option) Model {
	p := progress.New(progress.WithDefaultGradient(), progress.WithoutPercentage())
	p.Width = defaultWidth - 4

	m := Model{
		story:    s,
		prompt:   narrator.DefaultPrompt,
		logger:   zap.NewNop(),
		styles:   styles,
		keys:     defaultKeyMap(),
		help:     help.New(),
		progress: p,
		width:    defaultWidth,
		told:     1,
	}
	for _, opt := range opts {
		opt(&m)
	}
	return m
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return nil
}

// Result reports how far the telling got, in narrator terms.
func (m Model) Result() narrator.Result {
	return narrator.Result{
		Told:         m.told,
		Acknowledged: m.acked,
		Completed:    m.done,
	}
}

// Done reports whether the whole story was acknowledged.
func (m Model) Done() bool {
	return m.done
}
