package display

import (
	"fmt"
	"strings"

	"github.com/muesli/reflow/wordwrap"
)

const DefaultWidth = 80

// Wrap word-wraps text to DefaultWidth, preserving ANSI escape sequences.
func Wrap(text string) string {
	return wordwrap.String(text, DefaultWidth)
}

// Capitalize returns s with its first character uppercased.
func Capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}

// Heading renders a section title with an underline matching its length.
func Heading(title string) string {
	return title + "\n" + strings.Repeat("-", len(title))
}

// Bar renders a labelled gauge like "HP [#####.....] 50/100".
func Bar(label string, current, max int) string {
	const width = 20

	if max <= 0 {
		max = 1
	}
	if current < 0 {
		current = 0
	}
	filled := current * width / max
	if filled > width {
		filled = width
	}

	return fmt.Sprintf("%s [%s%s] %d/%d",
		label,
		strings.Repeat("#", filled),
		strings.Repeat(".", width-filled),
		current, max)
}

// List renders items as an indented bullet list, or the empty placeholder
// when there is nothing to show.
func List(items []string, empty string) string {
	if len(items) == 0 {
		return "  " + empty
	}

	var b strings.Builder
	for i, item := range items {
		if i > 0 {
			b.WriteByte('\n')
		}
		b.WriteString("  - ")
		b.WriteString(item)
	}
	return b.String()
}
