package narrator

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"
	"testing/iotest"

	"storyteller/internal/story"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

// transcript is what a plain terminal writes when the first told lines are
// printed, each followed by the prompt.
func transcript(lines []string, told int, prompt string) string {
	var b strings.Builder
	for _, line := range lines[:told] {
		b.WriteString(line + "\n")
		b.WriteString(prompt)
	}
	return b.String()
}

func TestTellAllAcknowledged(t *testing.T) {
	s := story.Default()
	in := strings.NewReader(strings.Repeat("\n", s.Len()))
	var out bytes.Buffer

	res, err := New(s, NewPlainTerminal(in, &out)).Tell(context.Background())
	require.NoError(t, err)

	assert.Equal(t, Result{Told: 13, Acknowledged: 13, Completed: true}, res)
	if diff := cmp.Diff(transcript(s.Lines(), 13, DefaultPrompt), out.String()); diff != "" {
		t.Fatalf("unexpected output (-want +got):\n%s", diff)
	}
}

func TestTellNoOutputAfterLastLine(t *testing.T) {
	s := story.Default()
	// extra acknowledgments beyond the story must be left unread and unechoed
	in := strings.NewReader(strings.Repeat("\n", s.Len()+5))
	var out bytes.Buffer

	res, err := New(s, NewPlainTerminal(in, &out)).Tell(context.Background())
	require.NoError(t, err)
	require.True(t, res.Completed)

	assert.True(t, strings.HasSuffix(out.String(), s.Line(s.Len()-1)+"\n"+DefaultPrompt))
	assert.Equal(t, s.Len(), strings.Count(out.String(), DefaultPrompt))
}

func TestTellInputEndsEarly(t *testing.T) {
	s := story.Default()
	in := strings.NewReader("\n\n\n")
	var out bytes.Buffer

	res, err := New(s, NewPlainTerminal(in, &out)).Tell(context.Background())
	require.NoError(t, err)

	// the fourth line is printed and prompted for, then input runs out
	assert.Equal(t, Result{Told: 4, Acknowledged: 3}, res)
	if diff := cmp.Diff(transcript(s.Lines(), 4, DefaultPrompt), out.String()); diff != "" {
		t.Fatalf("unexpected output (-want +got):\n%s", diff)
	}
}

func TestTellEmptyInput(t *testing.T) {
	s := story.Default()
	var out bytes.Buffer

	res, err := New(s, NewPlainTerminal(strings.NewReader(""), &out)).Tell(context.Background())
	require.NoError(t, err)

	assert.Equal(t, Result{Told: 1}, res)
	assert.Equal(t, s.Line(0)+"\n"+DefaultPrompt, out.String())
}

func TestTellTrailingPartialLineCounts(t *testing.T) {
	s, err := story.New("one", "two", "three")
	require.NoError(t, err)
	var out bytes.Buffer

	res, err := New(s, NewPlainTerminal(strings.NewReader("\nok"), &out)).Tell(context.Background())
	require.NoError(t, err)

	assert.Equal(t, Result{Told: 3, Acknowledged: 2}, res)
}

func TestTellCustomPrompt(t *testing.T) {
	s, err := story.New("one", "two")
	require.NoError(t, err)
	var out bytes.Buffer

	n := New(s, NewPlainTerminal(strings.NewReader("\n\n"), &out), WithPrompt("> "))
	_, err = n.Tell(context.Background())
	require.NoError(t, err)

	assert.Equal(t, "> ", n.Prompt())
	assert.Equal(t, "one\n> two\n> ", out.String())
}

func TestTellReadError(t *testing.T) {
	s := story.Default()
	boom := errors.New("boom")
	var out bytes.Buffer

	res, err := New(s, NewPlainTerminal(iotest.ErrReader(boom), &out)).Tell(context.Background())
	require.ErrorIs(t, err, boom)
	assert.Equal(t, 1, res.Told)
	assert.Zero(t, res.Acknowledged)
}

type failingWriter struct {
	after int
	err   error
}

func (w *failingWriter) Write(p []byte) (int, error) {
	if w.after == 0 {
		return 0, w.err
	}
	w.after--
	return len(p), nil
}

func TestTellWriteError(t *testing.T) {
	s := story.Default()
	full := errors.New("disk full")

	// line 1, prompt 1, then line 2 fails
	w := &failingWriter{after: 2, err: full}
	res, err := New(s, NewPlainTerminal(strings.NewReader("\n\n"), w)).Tell(context.Background())

	require.ErrorIs(t, err, full)
	assert.Contains(t, err.Error(), "line 2")
	assert.Equal(t, Result{Told: 1, Acknowledged: 1}, res)
}

func TestTellCancelledBeforeStart(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	var out bytes.Buffer

	res, err := New(story.Default(), NewPlainTerminal(strings.NewReader("\n"), &out)).Tell(ctx)
	require.ErrorIs(t, err, context.Canceled)
	assert.Zero(t, res.Told)
	assert.Empty(t, out.String())
}

// scriptedTerminal records what it was asked to print and runs a hook on
// every acknowledgment.
type scriptedTerminal struct {
	printed []string
	onAwait func(n int) error
	awaits  int
}

func (st *scriptedTerminal) PrintLine(line string) error {
	st.printed = append(st.printed, line)
	return nil
}

func (st *scriptedTerminal) Await(string) error {
	st.awaits++
	return st.onAwait(st.awaits)
}

func TestTellCancelledMidway(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	term := &scriptedTerminal{onAwait: func(n int) error {
		if n == 2 {
			cancel()
		}
		return nil
	}}

	res, err := New(story.Default(), term).Tell(ctx)
	require.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, Result{Told: 2, Acknowledged: 2}, res)
	assert.Len(t, term.printed, 2)
}

func TestTellOrderMatchesStory(t *testing.T) {
	s := story.Default()
	term := &scriptedTerminal{onAwait: func(int) error { return nil }}

	_, err := New(s, term).Tell(context.Background())
	require.NoError(t, err)

	if diff := cmp.Diff(s.Lines(), term.printed); diff != "" {
		t.Fatalf("lines told out of order (-want +got):\n%s", diff)
	}
}

func TestTellLogs(t *testing.T) {
	core, logs := observer.New(zap.DebugLevel)
	s, err := story.New("one", "two")
	require.NoError(t, err)

	_, err = New(s, NewPlainTerminal(strings.NewReader("\n\n"), &bytes.Buffer{}), WithLogger(zap.New(core))).
		Tell(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 2, logs.FilterMessage("Told line").Len())
	assert.Equal(t, 1, logs.FilterMessage("Story complete").Len())
}
