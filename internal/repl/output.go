package repl

import (
	"fmt"

	"github.com/notexe/remindme/internal/reminder"
)

func (r *REPL) displayList() {
	if r.collection.Size() == 0 {
		r.displayInfo("No reminders yet.")
		return
	}

	reminders := make([]*reminder.Reminder, 0, r.collection.Size())
	for i := 0; i < r.collection.Size(); i++ {
		rem, err := r.collection.Get(i)
		if err != nil {
			break
		}
		reminders = append(reminders, rem)
	}

	fmt.Println()
	fmt.Println(r.formatter.FormatReminderList(reminders))
	fmt.Println()
}

func (r *REPL) displaySearchResults(keyword string, results []*reminder.Reminder) {
	if len(results) == 0 {
		r.displayInfo(fmt.Sprintf("No reminders match %q.", keyword))
		return
	}

	fmt.Println()
	fmt.Println(r.formatter.FormatReminderList(results))
	fmt.Println()
}

func (r *REPL) displayGroups() {
	groups := r.collection.GroupByTag()
	if len(groups) == 0 {
		r.displayInfo("No reminders yet.")
		return
	}

	fmt.Println()
	fmt.Println(r.formatter.FormatGroups(groups))
	fmt.Println()
}

func (r *REPL) displayError(err error) {
	r.status.Hide()
	fmt.Println(r.formatter.FormatError(err))
	fmt.Println()
}

func (r *REPL) displayWelcome() {
	fmt.Print(r.formatter.FormatWelcome())
}

func (r *REPL) displayMenu() {
	fmt.Print(r.formatter.FormatMenu())
}

func (r *REPL) displayHelp() {
	fmt.Print(r.formatter.FormatHelp())
}

func (r *REPL) displayInfo(msg string) {
	fmt.Println(r.formatter.FormatInfo(msg))
}
