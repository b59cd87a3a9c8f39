// Package story holds the fixed narrative told by storyteller.
//
// A Story is an ordered, non-empty sequence of lines. It is built once and
// never mutated; accessors hand out copies.
package story

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrEmpty is returned when a story is built with no lines.
	ErrEmpty = errors.New("story has no lines")

	// ErrBlankLine is returned when a story line is empty or whitespace.
	ErrBlankLine = errors.New("story line is blank")
)

// Story is an immutable ordered sequence of story lines.
type Story struct {
	lines []string
}

// New builds a Story from the given lines, in order.
func New(lines ...string) (*Story, error) {
	if len(lines) == 0 {
		return nil, ErrEmpty
	}
	for i, line := range lines {
		if strings.TrimSpace(line) == "" {
			return nil, fmt.Errorf("line %d: %w", i+1, ErrBlankLine)
		}
	}

	owned := make([]string, len(lines))
	copy(owned, lines)
	return &Story{lines: owned}, nil
}

// Default returns the built-in narrative.
func Default() *Story {
	s, err := New(defaultLines...)
	if err != nil {
		// defaultLines is a package literal; failing here is a programming error
		panic(err)
	}
	return s
}

// Len returns the number of lines.
func (s *Story) Len() int {
	return len(s.lines)
}

// Line returns the line at index i (zero based).
func (s *Story) Line(i int) string {
	return s.lines[i]
}

// Lines returns a copy of all lines in order.
func (s *Story) Lines() []string {
	out := make([]string, len(s.lines))
	copy(out, s.lines)
	return out
}

// Markdown returns the story as markdown, one paragraph per line.
func (s *Story) Markdown() string {
	return strings.Join(s.lines, "\n\n") + "\n"
}
