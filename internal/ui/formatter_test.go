package ui

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/notexe/remindme/internal/reminder"
)

func mustReminder(t *testing.T, description, tag string) *reminder.Reminder {
	t.Helper()
	r, err := reminder.New(description, tag)
	require.NoError(t, err)
	return r
}

func TestFormatReminderLine_Plain(t *testing.T) {
	f := NewFormatter(false, true)
	r := mustReminder(t, "Buy milk", "shopping")

	line := f.FormatReminderLine(1, r)
	assert.Equal(t, "  1. [ ] Buy milk #shopping", line)

	r.ToggleCompletion()
	line = f.FormatReminderLine(1, r)
	assert.Equal(t, "  1. [x] Buy milk #shopping", line)
}

func TestFormatReminderLine_NoCompletedMark(t *testing.T) {
	f := NewFormatter(false, false)
	r := mustReminder(t, "Buy milk", "shopping")

	assert.Equal(t, "  1. Buy milk #shopping", f.FormatReminderLine(1, r))
}

func TestFormatReminderList_NumbersFromOne(t *testing.T) {
	f := NewFormatter(false, true)
	reminders := []*reminder.Reminder{
		mustReminder(t, "Buy milk", "shopping"),
		mustReminder(t, "Call mom", "family"),
	}

	out := f.FormatReminderList(reminders)
	lines := strings.Split(out, "\n")
	require.Len(t, lines, 2)
	assert.True(t, strings.HasPrefix(strings.TrimSpace(lines[0]), "1."))
	assert.True(t, strings.HasPrefix(strings.TrimSpace(lines[1]), "2."))
}

func TestFormatGroups_SortedSections(t *testing.T) {
	f := NewFormatter(false, true)
	groups := map[string][]*reminder.Reminder{
		"work":   {mustReminder(t, "Weekly report", "work")},
		"family": {mustReminder(t, "Call mom", "family")},
	}

	out := f.FormatGroups(groups)
	familyAt := strings.Index(out, "#family")
	workAt := strings.Index(out, "#work")
	require.NotEqual(t, -1, familyAt)
	require.NotEqual(t, -1, workAt)
	assert.Less(t, familyAt, workAt, "sections sorted by tag")
}

func TestFormatError_Plain(t *testing.T) {
	f := NewFormatter(false, true)
	out := f.FormatError(assert.AnError)
	assert.True(t, strings.HasPrefix(out, "Error: "))
}
