package reminder

import "fmt"

// Reminder is a single task entry: a description, a category tag and a
// completion flag. Fields are unexported so every mutation goes through
// the validating setters.
type Reminder struct {
	description string
	tag         string
	completed   bool
}

// New creates a reminder with the completion flag off. Both the
// description and the tag must be non-empty.
func New(description, tag string) (*Reminder, error) {
	r := &Reminder{}
	if err := r.SetDescription(description); err != nil {
		return nil, err
	}
	if err := r.SetTag(tag); err != nil {
		return nil, err
	}
	return r, nil
}

// Description returns the reminder text.
func (r *Reminder) Description() string {
	return r.description
}

// SetDescription replaces the reminder text.
func (r *Reminder) SetDescription(description string) error {
	if description == "" {
		return fmt.Errorf("description must not be empty: %w", ErrValidation)
	}
	r.description = description
	return nil
}

// Tag returns the category tag.
func (r *Reminder) Tag() string {
	return r.tag
}

// SetTag replaces the category tag.
func (r *Reminder) SetTag(tag string) error {
	if tag == "" {
		return fmt.Errorf("tag must not be empty: %w", ErrValidation)
	}
	r.tag = tag
	return nil
}

// IsCompleted reports whether the reminder has been marked done.
func (r *Reminder) IsCompleted() bool {
	return r.completed
}

// ToggleCompletion flips the completion flag. Calling it twice restores
// the original value.
func (r *Reminder) ToggleCompletion() {
	r.completed = !r.completed
}
