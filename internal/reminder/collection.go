package reminder

import (
	"fmt"
	"strings"
)

// Matcher is the pluggable fuzzy-text collaborator used by Search as a
// fallback. Match returns the subset of corpus entries that approximately
// or partially match the query.
type Matcher interface {
	Match(corpus []string, query string) []string
}

// Collection is an ordered, in-memory sequence of reminders. Insertion
// order is preserved and duplicates are allowed; the collection owns its
// reminders exclusively. It is not safe for concurrent use.
type Collection struct {
	reminders []*Reminder
	matcher   Matcher
}

// NewCollection creates an empty collection that falls back to matcher
// for description search.
func NewCollection(matcher Matcher) *Collection {
	return &Collection{matcher: matcher}
}

// Add constructs a reminder from description and tag and appends it.
func (c *Collection) Add(description, tag string) error {
	r, err := New(description, tag)
	if err != nil {
		return err
	}
	c.reminders = append(c.reminders, r)
	return nil
}

// Get returns the reminder at the zero-based index, or ErrNotFound when
// no element exists there.
func (c *Collection) Get(index int) (*Reminder, error) {
	if index < 0 || index >= len(c.reminders) {
		return nil, fmt.Errorf("no reminder at index %d: %w", index, ErrNotFound)
	}
	return c.reminders[index], nil
}

// IsIndexValid reports whether the zero-based index refers to an existing
// reminder. It is false for an empty collection, a negative index, or an
// index at or beyond the current size.
func (c *Collection) IsIndexValid(index int) bool {
	if len(c.reminders) == 0 {
		return false
	}
	return index >= 0 && index < len(c.reminders)
}

// Size returns the number of reminders.
func (c *Collection) Size() int {
	return len(c.reminders)
}

// Modify replaces the description of the reminder at the ONE-based index,
// matching the numbering shown to end users in listings. It returns
// ErrIndexOutOfRange when the index does not resolve to a reminder.
func (c *Collection) Modify(index int, newDescription string) error {
	r, err := c.at(index)
	if err != nil {
		return err
	}
	return r.SetDescription(newDescription)
}

// ToggleCompletion flips the completion flag of the reminder at the
// ONE-based index. Same index semantics as Modify.
func (c *Collection) ToggleCompletion(index int) error {
	r, err := c.at(index)
	if err != nil {
		return err
	}
	r.ToggleCompletion()
	return nil
}

// at resolves a one-based index to a reminder.
func (c *Collection) at(index int) (*Reminder, error) {
	i := index - 1
	if i < 0 || i >= len(c.reminders) {
		return nil, fmt.Errorf("index %d out of range [1, %d]: %w", index, len(c.reminders), ErrIndexOutOfRange)
	}
	return c.reminders[i], nil
}

// Search runs the two-phase lookup. Phase one collects every reminder
// whose tag equals keyword exactly (case-sensitive). Only when that set
// is empty does phase two fuzzy-match keyword against the descriptions
// and return the reminders whose description appears in the matched set.
// Insertion order is preserved in both phases.
func (c *Collection) Search(keyword string) []*Reminder {
	byTag := []*Reminder{}
	for _, r := range c.reminders {
		if r.Tag() == keyword {
			byTag = append(byTag, r)
		}
	}
	if len(byTag) > 0 {
		return byTag
	}

	corpus := make([]string, len(c.reminders))
	for i, r := range c.reminders {
		corpus[i] = r.Description()
	}

	matched := make(map[string]bool)
	for _, d := range c.matcher.Match(corpus, keyword) {
		matched[d] = true
	}

	results := []*Reminder{}
	for _, r := range c.reminders {
		if matched[r.Description()] {
			results = append(results, r)
		}
	}
	return results
}

// GroupByTag partitions the collection by tag. The grouping key is the
// lowercased tag, used consistently for both lookup and storage, so
// "Work" and "work" share the "work" group. Within a group, insertion
// order is preserved.
func (c *Collection) GroupByTag() map[string][]*Reminder {
	groups := make(map[string][]*Reminder)
	for _, r := range c.reminders {
		key := strings.ToLower(r.Tag())
		groups[key] = append(groups[key], r)
	}
	return groups
}
