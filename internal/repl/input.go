package repl

import (
	"io"
	"strconv"
	"strings"

	"github.com/chzyer/readline"
)

// lineReader is the readline surface the REPL uses. Narrowed to an
// interface so prompt flows can be tested with a scripted reader.
type lineReader interface {
	Readline() (string, error)
	SetPrompt(prompt string)
	Close() error
}

func (r *REPL) readInput() (string, error) {
	line, err := r.rl.Readline()
	if err != nil {
		return "", err
	}

	return strings.TrimSpace(line), nil
}

// readNonEmpty prompts with label until the user enters a non-blank
// line. The main menu prompt is restored afterwards.
func (r *REPL) readNonEmpty(label string) (string, error) {
	defer r.rl.SetPrompt(r.formatter.FormatPrompt())
	r.rl.SetPrompt(label)

	for {
		line, err := r.rl.Readline()
		if err != nil {
			return "", err
		}

		line = strings.TrimSpace(line)
		if line != "" {
			return line, nil
		}

		r.displayInfo("Input must not be empty.")
	}
}

// readReminderNumber prompts until the user enters a number from the
// one-based listing. Validity is checked against the zero-based
// equivalent, which is what IsIndexValid expects.
func (r *REPL) readReminderNumber(label string) (int, error) {
	defer r.rl.SetPrompt(r.formatter.FormatPrompt())
	r.rl.SetPrompt(label)

	for {
		line, err := r.rl.Readline()
		if err != nil {
			return 0, err
		}

		number, convErr := strconv.Atoi(strings.TrimSpace(line))
		if convErr != nil {
			r.displayInfo("Enter the number shown in the listing.")
			continue
		}

		if !r.collection.IsIndexValid(number - 1) {
			r.displayInfo("No reminder with that number.")
			continue
		}

		return number, nil
	}
}

func setupReadline(prompt, historyFile string) (*readline.Instance, error) {
	rl, err := readline.NewEx(&readline.Config{
		Prompt:              prompt,
		HistoryFile:         historyFile,
		InterruptPrompt:     "^C",
		EOFPrompt:           "exit",
		HistorySearchFold:   true,
		FuncFilterInputRune: filterInput,
	})

	return rl, err
}

func filterInput(r rune) (rune, bool) {
	switch r {
	case readline.CharCtrlZ:
		return r, false
	}
	return r, true
}

func isEOF(err error) bool {
	return err == io.EOF || err == readline.ErrInterrupt
}
