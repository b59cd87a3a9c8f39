// Package narrator tells a story one line at a time, waiting for the user to
// acknowledge each line before moving on.
package narrator

import (
	"context"
	"errors"
	"fmt"
	"io"

	"storyteller/internal/story"

	"go.uber.org/zap"
)

// DefaultPrompt is shown after every line.
const DefaultPrompt = "Press Enter to continue..."

// Result reports how far a telling got.
type Result struct {
	// Told is the number of lines printed.
	Told int
	// Acknowledged is the number of prompts the user answered.
	Acknowledged int
	// Completed is true when every line was told and acknowledged.
	Completed bool
}

// Option configures a Narrator.
type Option func(*Narrator)

// WithPrompt overrides DefaultPrompt.
func WithPrompt(prompt string) Option {
	return func(n *Narrator) {
		n.prompt = prompt
	}
}

// WithLogger attaches a logger. The default logger discards everything.
func WithLogger(logger *zap.Logger) Option {
	return func(n *Narrator) {
		if logger != nil {
			n.logger = logger
		}
	}
}

// Narrator walks a story through a Terminal.
type Narrator struct {
	story  *story.Story
	term   Terminal
	prompt string
	logger *zap.Logger
}

// New creates a narrator for s that talks through term.
func New(s *story.Story, term Terminal, opts ...Option) *Narrator {
	n := &Narrator{
		story:  s,
		term:   term,
		prompt: DefaultPrompt,
		logger: zap.NewNop(),
	}
	for _, opt := range opts {
		opt(n)
	}
	return n
}

// Prompt returns the acknowledgment prompt in use.
func (n *Narrator) Prompt() string {
	return n.prompt
}

// Tell prints every line in order, blocking for an acknowledgment after
// each. Running out of input ends the telling early without an error.
func (n *Narrator) Tell(ctx context.Context) (Result, error) {
	var res Result
	total := n.story.Len()

	for i := 0; i < total; i++ {
		if err := ctx.Err(); err != nil {
			n.logger.Info("Telling cancelled", zap.Int("told", res.Told), zap.Error(err))
			return res, err
		}

		if err := n.term.PrintLine(n.story.Line(i)); err != nil {
			return res, fmt.Errorf("line %d: %w", i+1, err)
		}
		res.Told++
		n.logger.Debug("Told line", zap.Int("index", i+1), zap.Int("total", total))

		if err := n.term.Await(n.prompt); err != nil {
			if errors.Is(err, io.EOF) {
				n.logger.Info("Input ended before the story finished",
					zap.Int("told", res.Told),
					zap.Int("total", total))
				return res, nil
			}
			return res, fmt.Errorf("line %d: %w", i+1, err)
		}
		res.Acknowledged++
	}

	res.Completed = true
	n.logger.Info("Story complete", zap.Int("lines", total))
	return res, nil
}
