package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

type helpEntry struct {
	key  string
	desc string
}

var helpSections = []struct {
	title   string
	entries []helpEntry
}{
	{
		title: "Navigation",
		entries: []helpEntry{
			{"] / right / l", "next page"},
			{"[ / left / h", "previous page"},
			{"up / down / j / k", "move row selection"},
			{"+ / -", "cycle page size (5, 10, 20, 50)"},
		},
	},
	{
		title: "Filter and sort",
		entries: []helpEntry{
			{"/", "open the filter prompt for the current field"},
			{"f", "cycle the filter field (name, capital, currency, language)"},
			{"esc", "clear the active filter"},
			{"1-4", "sort by column; press again to flip direction"},
		},
	},
	{
		title: "Other",
		entries: []helpEntry{
			{"r", "refresh the current page"},
			{"T", "cycle color theme"},
			{"?", "toggle this help"},
			{"q / ctrl+c", "quit"},
		},
	},
}

// renderHelp renders the full-screen help overlay.
func (m Model) renderHelp() string {
	var b strings.Builder

	b.WriteString(m.theme.accentStyle().Render("gazetteer help"))
	b.WriteString("\n\n")

	keyStyle := m.theme.accentStyle().Bold(false)
	for _, section := range helpSections {
		b.WriteString(m.theme.mutedStyle().Bold(true).Render(section.title))
		b.WriteString("\n")
		for _, e := range section.entries {
			b.WriteString(fmt.Sprintf("  %s  %s\n",
				keyStyle.Render(fmt.Sprintf("%-18s", e.key)),
				e.desc))
		}
		b.WriteString("\n")
	}

	b.WriteString(m.theme.faintStyle().Render("Filters need at least 2 characters; shorter text clears the filter."))
	b.WriteString("\n")
	b.WriteString(m.theme.faintStyle().Render("Press any key to close."))

	return lipgloss.NewStyle().Padding(1, 2).Render(b.String())
}
