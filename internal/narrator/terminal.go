package narrator

import (
	"bufio"
	"errors"
	"fmt"
	"io"
)

// Terminal is what the narrator talks through.
type Terminal interface {
	// PrintLine writes a story line followed by a newline.
	PrintLine(line string) error

	// Await writes the prompt and blocks until the user acknowledges it.
	// It returns io.EOF once the input stream is exhausted.
	Await(prompt string) error
}

// PlainTerminal is a cooked-mode terminal over a reader and writer. It does
// no line editing; one line of input is one acknowledgment.
type PlainTerminal struct {
	input  *bufio.Reader
	output io.Writer
	ended  bool
}

// NewPlainTerminal creates a terminal reading acknowledgments from in and
// writing story output to out.
func NewPlainTerminal(in io.Reader, out io.Writer) *PlainTerminal {
	return &PlainTerminal{
		input:  bufio.NewReader(in),
		output: out,
	}
}

// PrintLine implements Terminal.
func (pt *PlainTerminal) PrintLine(line string) error {
	if _, err := io.WriteString(pt.output, line+"\n"); err != nil {
		return fmt.Errorf("write line: %w", err)
	}
	return nil
}

// Await implements Terminal.
func (pt *PlainTerminal) Await(prompt string) error {
	if _, err := io.WriteString(pt.output, prompt); err != nil {
		return fmt.Errorf("write prompt: %w", err)
	}
	if pt.ended {
		return io.EOF
	}

	s, err := pt.input.ReadString('\n')
	if err == nil {
		return nil
	}
	if errors.Is(err, io.EOF) {
		pt.ended = true
		// a trailing line without a newline still counts
		if len(s) > 0 {
			return nil
		}
		return io.EOF
	}
	return fmt.Errorf("read acknowledgment: %w", err)
}
