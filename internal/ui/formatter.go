package ui

import (
	"fmt"
	"sort"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/notexe/remindme/internal/reminder"
)

var (
	// Modern color palette
	TitleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("81")). // Bright cyan
			Bold(true)

	ReminderStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("252")) // Light gray

	CompletedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("240")). // Dim gray
			Strikethrough(true)

	TagStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("147")) // Light purple

	NumberStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("114")). // Soft green
			Bold(true)

	ErrorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("203")). // Coral red
			Bold(true)

	InfoStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("222")) // Warm yellow

	SystemStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("183")). // Soft purple
			Italic(true)

	StatusStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("245")). // Medium gray
			Italic(true)

	SectionStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("81")).
			Bold(true)

	DimStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("240"))
)

type Formatter struct {
	colored           bool
	showCompletedMark bool
}

func NewFormatter(colored, showCompletedMark bool) *Formatter {
	return &Formatter{
		colored:           colored,
		showCompletedMark: showCompletedMark,
	}
}

// FormatReminderLine renders one reminder with its one-based number, the
// same number Modify and ToggleCompletion expect back from the user.
func (f *Formatter) FormatReminderLine(number int, r *reminder.Reminder) string {
	mark := "[ ]"
	if r.IsCompleted() {
		mark = "[x]"
	}
	if !f.showCompletedMark {
		mark = ""
	}

	num := fmt.Sprintf("%d.", number)
	tag := fmt.Sprintf("#%s", r.Tag())

	if f.colored {
		desc := ReminderStyle.Render(r.Description())
		if r.IsCompleted() {
			desc = CompletedStyle.Render(r.Description())
		}
		parts := []string{NumberStyle.Render(num)}
		if mark != "" {
			parts = append(parts, DimStyle.Render(mark))
		}
		parts = append(parts, desc, TagStyle.Render(tag))
		return "  " + strings.Join(parts, " ")
	}

	parts := []string{num}
	if mark != "" {
		parts = append(parts, mark)
	}
	parts = append(parts, r.Description(), tag)
	return "  " + strings.Join(parts, " ")
}

// FormatReminderList renders reminders as a numbered listing, first entry
// numbered 1.
func (f *Formatter) FormatReminderList(reminders []*reminder.Reminder) string {
	lines := make([]string, len(reminders))
	for i, r := range reminders {
		lines[i] = f.FormatReminderLine(i+1, r)
	}
	return strings.Join(lines, "\n")
}

// FormatGroups renders tag groups as sections, tags sorted alphabetically
// for stable output.
func (f *Formatter) FormatGroups(groups map[string][]*reminder.Reminder) string {
	tags := make([]string, 0, len(groups))
	for tag := range groups {
		tags = append(tags, tag)
	}
	sort.Strings(tags)

	var lines []string
	for _, tag := range tags {
		header := fmt.Sprintf("#%s", tag)
		if f.colored {
			header = SectionStyle.Render(header)
		}
		lines = append(lines, header)
		for i, r := range groups[tag] {
			lines = append(lines, f.FormatReminderLine(i+1, r))
		}
		lines = append(lines, "")
	}
	return strings.TrimRight(strings.Join(lines, "\n"), "\n")
}

func (f *Formatter) FormatError(err error) string {
	prefix := "Error: "
	if f.colored {
		prefix = ErrorStyle.Render("Error: ")
	}
	return prefix + err.Error()
}

func (f *Formatter) FormatInfo(info string) string {
	if f.colored {
		return InfoStyle.Render(info)
	}
	return info
}

func (f *Formatter) FormatSystem(msg string) string {
	if f.colored {
		return SystemStyle.Render(msg)
	}
	return msg
}

func (f *Formatter) FormatStatus(msg string) string {
	if f.colored {
		return StatusStyle.Render(msg)
	}
	return msg
}

func (f *Formatter) FormatWelcome() string {
	if f.colored {
		titleStyle := lipgloss.NewStyle().
			Foreground(lipgloss.Color("81")).
			Bold(true)

		subtitleStyle := lipgloss.NewStyle().
			Foreground(lipgloss.Color("245"))

		borderStyle := lipgloss.NewStyle().
			Foreground(lipgloss.Color("62"))

		topBorder := borderStyle.Render("╭─────────────────────────────────────────╮")
		bottomBorder := borderStyle.Render("╰─────────────────────────────────────────╯")
		sideBorder := borderStyle.Render("│")

		title := titleStyle.Render("remindme • reminder manager")
		noteLine := subtitleStyle.Render("In-memory only, nothing is saved")
		helpLine := subtitleStyle.Render("Pick a menu number, 7 for help")

		padLine := func(content string, width int) string {
			contentLen := lipgloss.Width(content)
			if contentLen < width {
				return content + strings.Repeat(" ", width-contentLen)
			}
			return content
		}

		boxWidth := 39
		lines := []string{
			"",
			topBorder,
			sideBorder + " " + padLine(title, boxWidth) + " " + sideBorder,
			sideBorder + " " + padLine(noteLine, boxWidth) + " " + sideBorder,
			sideBorder + " " + padLine(helpLine, boxWidth) + " " + sideBorder,
			bottomBorder,
			"",
		}

		return strings.Join(lines, "\n")
	}

	lines := []string{
		"",
		"remindme • reminder manager",
		"In-memory only, nothing is saved",
		"Pick a menu number, 7 for help",
		"",
	}

	return strings.Join(lines, "\n")
}

// FormatMenu renders the numbered main menu.
func (f *Formatter) FormatMenu() string {
	entries := []struct {
		num  string
		desc string
	}{
		{"1", "Add a reminder"},
		{"2", "List reminders"},
		{"3", "Modify a reminder"},
		{"4", "Toggle completion"},
		{"5", "Search"},
		{"6", "Group by tag"},
		{"7", "Help"},
		{"8", "Quit"},
	}

	lines := []string{""}
	for _, e := range entries {
		if f.colored {
			lines = append(lines, "  "+NumberStyle.Render(e.num+".")+" "+ReminderStyle.Render(e.desc))
		} else {
			lines = append(lines, "  "+e.num+". "+e.desc)
		}
	}
	lines = append(lines, "")
	return strings.Join(lines, "\n")
}

func (f *Formatter) FormatHelp() string {
	if f.colored {
		headerStyle := lipgloss.NewStyle().
			Foreground(lipgloss.Color("81")).
			Bold(true)

		cmdStyle := lipgloss.NewStyle().
			Foreground(lipgloss.Color("114"))

		descStyle := lipgloss.NewStyle().
			Foreground(lipgloss.Color("252"))

		dimStyle := lipgloss.NewStyle().
			Foreground(lipgloss.Color("245"))

		formatCmd := func(cmd, desc string) string {
			return "  " + cmdStyle.Render(cmd) + " " + descStyle.Render(desc)
		}

		lines := []string{
			"",
			headerStyle.Render("Menu"),
			"",
			formatCmd("1  add", "Prompt for description and tag"),
			formatCmd("2  list", "Numbered listing with completion marks"),
			formatCmd("3  modify", "Change a reminder's text by its number"),
			formatCmd("4  toggle", "Flip completion by its number"),
			formatCmd("5  search", "Exact tag match, then fuzzy description match"),
			formatCmd("6  group", "Reminders grouped by tag"),
			formatCmd("8  quit", "Exit (Ctrl+C or Ctrl+D also work)"),
			"",
			headerStyle.Render("Tips"),
			dimStyle.Render("  Numbers in listings are the ones modify and toggle expect"),
			dimStyle.Render("  Search tries tags first; descriptions only when no tag matches"),
			"",
		}

		return strings.Join(lines, "\n")
	}

	lines := []string{
		"",
		"Menu:",
		"  1  add     - Prompt for description and tag",
		"  2  list    - Numbered listing with completion marks",
		"  3  modify  - Change a reminder's text by its number",
		"  4  toggle  - Flip completion by its number",
		"  5  search  - Exact tag match, then fuzzy description match",
		"  6  group   - Reminders grouped by tag",
		"  8  quit    - Exit",
		"",
	}

	return strings.Join(lines, "\n")
}

// FormatPrompt returns a styled input prompt
func (f *Formatter) FormatPrompt() string {
	if f.colored {
		promptStyle := lipgloss.NewStyle().
			Foreground(lipgloss.Color("62"))
		arrowStyle := lipgloss.NewStyle().
			Foreground(lipgloss.Color("114")).
			Bold(true)
		return promptStyle.Render("remindme") + arrowStyle.Render(" > ")
	}
	return "remindme > "
}
