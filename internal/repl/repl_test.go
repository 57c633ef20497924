package repl

import (
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/notexe/remindme/internal/config"
	"github.com/notexe/remindme/internal/reminder"
	"github.com/notexe/remindme/internal/textmatch"
	"github.com/notexe/remindme/internal/ui"
)

// scriptedRepl builds a REPL whose reader replays the given lines, so
// prompt flows can be driven without a terminal.
func scriptedRepl(t *testing.T, lines ...string) *REPL {
	t.Helper()

	cfg, err := config.Load("")
	require.NoError(t, err)
	cfg.UI.ColoredOutput = false

	formatter := ui.NewFormatter(false, true)

	return &REPL{
		collection: reminder.NewCollection(textmatch.NewFuzzyMatcher(0)),
		config:     cfg,
		rl:         &scriptReader{lines: lines},
		formatter:  formatter,
		status:     ui.NewStatusDisplay(formatter, false),
	}
}

type scriptReader struct {
	lines []string
	pos   int
}

func (s *scriptReader) Readline() (string, error) {
	if s.pos >= len(s.lines) {
		return "", io.EOF
	}
	line := s.lines[s.pos]
	s.pos++
	return line, nil
}

func (s *scriptReader) SetPrompt(string) {}

func (s *scriptReader) Close() error { return nil }

func TestHandleAdd(t *testing.T) {
	r := scriptedRepl(t, "Buy milk", "shopping")

	require.NoError(t, r.handleAdd())
	require.Equal(t, 1, r.collection.Size())

	rem, err := r.collection.Get(0)
	require.NoError(t, err)
	assert.Equal(t, "Buy milk", rem.Description())
	assert.Equal(t, "shopping", rem.Tag())
}

func TestHandleAdd_RepromptsOnBlankInput(t *testing.T) {
	r := scriptedRepl(t, "", "  ", "Buy milk", "shopping")

	require.NoError(t, r.handleAdd())
	require.Equal(t, 1, r.collection.Size())
}

func TestHandleModify_UsesOneBasedNumber(t *testing.T) {
	r := scriptedRepl(t, "1", "New text")
	require.NoError(t, r.collection.Add("Buy milk", "shopping"))

	require.NoError(t, r.handleModify())

	rem, err := r.collection.Get(0)
	require.NoError(t, err)
	assert.Equal(t, "New text", rem.Description())
}

func TestHandleModify_RepromptsOnBadNumber(t *testing.T) {
	// "abc" is not numeric, "2" and "0" are out of range for a
	// one-element collection; "1" finally resolves.
	r := scriptedRepl(t, "abc", "2", "0", "1", "New text")
	require.NoError(t, r.collection.Add("Buy milk", "shopping"))

	require.NoError(t, r.handleModify())

	rem, err := r.collection.Get(0)
	require.NoError(t, err)
	assert.Equal(t, "New text", rem.Description())
}

func TestHandleModify_EmptyCollection(t *testing.T) {
	r := scriptedRepl(t)
	require.NoError(t, r.handleModify())
}

func TestHandleToggle(t *testing.T) {
	r := scriptedRepl(t, "1")
	require.NoError(t, r.collection.Add("Buy milk", "shopping"))

	require.NoError(t, r.handleToggle())

	rem, err := r.collection.Get(0)
	require.NoError(t, err)
	assert.True(t, rem.IsCompleted())
}

func TestHandleSearch_NoResults(t *testing.T) {
	r := scriptedRepl(t, "xyzzy")
	require.NoError(t, r.collection.Add("Buy milk", "shopping"))

	require.NoError(t, r.handleSearch())
}

func TestHandleChoice_Quit(t *testing.T) {
	for _, choice := range []string{"8", "q", "quit", "exit"} {
		r := scriptedRepl(t)
		quit, err := r.handleChoice(choice)
		require.NoError(t, err)
		assert.True(t, quit, "choice %q should quit", choice)
	}
}

func TestHandleChoice_Unknown(t *testing.T) {
	r := scriptedRepl(t)
	quit, err := r.handleChoice("42")
	assert.False(t, quit)
	assert.Error(t, err)
}
