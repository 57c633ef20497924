package repl

import (
	"context"
	"fmt"
	"strings"

	"github.com/notexe/remindme/internal/config"
	"github.com/notexe/remindme/internal/reminder"
	"github.com/notexe/remindme/internal/ui"
)

// REPL drives the interactive menu loop. It owns the only collection
// instance, converts the one-based numbers users see into whichever
// convention each collection operation expects, and re-prompts on bad
// input instead of aborting.
type REPL struct {
	collection *reminder.Collection
	config     *config.Config
	rl         lineReader
	formatter  *ui.Formatter
	status     *ui.StatusDisplay
}

func NewREPL(collection *reminder.Collection, cfg *config.Config) (*REPL, error) {
	formatter := ui.NewFormatter(cfg.UI.ColoredOutput, cfg.UI.ShowCompletedMark)

	rl, err := setupReadline(formatter.FormatPrompt(), cfg.Session.HistoryFile)
	if err != nil {
		return nil, fmt.Errorf("failed to setup readline: %w", err)
	}

	status := ui.NewStatusDisplay(formatter, true)

	return &REPL{
		collection: collection,
		config:     cfg,
		rl:         rl,
		formatter:  formatter,
		status:     status,
	}, nil
}

func (r *REPL) Start(ctx context.Context) error {
	defer r.rl.Close()

	r.displayWelcome()

	for {
		select {
		case <-ctx.Done():
			return nil
		default:
		}

		r.displayMenu()

		choice, err := r.readInput()
		if err != nil {
			if isEOF(err) {
				fmt.Println("\nGoodbye!")
				return nil
			}
			return fmt.Errorf("failed to read input: %w", err)
		}

		if choice == "" {
			continue
		}

		quit, err := r.handleChoice(choice)
		if err != nil {
			r.displayError(err)
		}
		if quit {
			fmt.Println("\nGoodbye!")
			return nil
		}
	}
}

func (r *REPL) Stop() {
	r.rl.Close()
}

func (r *REPL) handleChoice(choice string) (quit bool, err error) {
	switch strings.ToLower(choice) {
	case "1", "add":
		return false, r.handleAdd()

	case "2", "list":
		r.displayList()
		return false, nil

	case "3", "modify":
		return false, r.handleModify()

	case "4", "toggle":
		return false, r.handleToggle()

	case "5", "search":
		return false, r.handleSearch()

	case "6", "group":
		r.displayGroups()
		return false, nil

	case "7", "help":
		r.displayHelp()
		return false, nil

	case "8", "q", "quit", "exit":
		return true, nil

	default:
		return false, fmt.Errorf("unknown choice: %s (pick 1-8, or 7 for help)", choice)
	}
}

func (r *REPL) handleAdd() error {
	description, err := r.readNonEmpty("Description: ")
	if err != nil {
		return err
	}

	tag, err := r.readNonEmpty("Tag: ")
	if err != nil {
		return err
	}

	if err := r.collection.Add(description, tag); err != nil {
		return err
	}

	r.status.ShowWithNewline(fmt.Sprintf("Added reminder %d.", r.collection.Size()))
	return nil
}

func (r *REPL) handleModify() error {
	if r.collection.Size() == 0 {
		r.displayInfo("No reminders yet. Add one first.")
		return nil
	}

	r.displayList()

	// Users pick from the one-based listing; Modify expects the same
	// one-based number.
	number, err := r.readReminderNumber("Reminder number: ")
	if err != nil {
		return err
	}

	description, err := r.readNonEmpty("New description: ")
	if err != nil {
		return err
	}

	if err := r.collection.Modify(number, description); err != nil {
		return err
	}

	r.status.ShowWithNewline(fmt.Sprintf("Updated reminder %d.", number))
	return nil
}

func (r *REPL) handleToggle() error {
	if r.collection.Size() == 0 {
		r.displayInfo("No reminders yet. Add one first.")
		return nil
	}

	r.displayList()

	number, err := r.readReminderNumber("Reminder number: ")
	if err != nil {
		return err
	}

	if err := r.collection.ToggleCompletion(number); err != nil {
		return err
	}

	rem, err := r.collection.Get(number - 1)
	if err != nil {
		return err
	}
	if rem.IsCompleted() {
		r.status.ShowWithNewline(fmt.Sprintf("Marked reminder %d as done.", number))
	} else {
		r.status.ShowWithNewline(fmt.Sprintf("Marked reminder %d as not done.", number))
	}
	return nil
}

func (r *REPL) handleSearch() error {
	keyword, err := r.readNonEmpty("Keyword: ")
	if err != nil {
		return err
	}

	results := r.collection.Search(keyword)
	r.displaySearchResults(keyword, results)
	return nil
}
