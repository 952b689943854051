package preview

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// track spreads the letters of word apart by one cell.
func track(word string) string {
	runes := []rune(word)
	if len(runes) < 2 {
		return word
	}
	var b strings.Builder
	for i, r := range runes {
		if i > 0 {
			b.WriteByte(' ')
		}
		b.WriteRune(r)
	}
	return b.String()
}

// wrap breaks text into lines no wider than width cells. Words are never
// split unless a single word is wider than the line. With tracking on,
// letters are spaced apart and words are separated by two cells so word
// boundaries stay visible.
func wrap(text string, width int, tracking bool) []string {
	if width < 1 {
		width = 1
	}
	sep := " "
	if tracking {
		sep = "  "
	}
	sepWidth := lipgloss.Width(sep)

	var (
		lines []string
		line  strings.Builder
		used  int
	)
	flush := func() {
		lines = append(lines, line.String())
		line.Reset()
		used = 0
	}

	for _, word := range strings.Fields(text) {
		if tracking {
			word = track(word)
		}
		w := lipgloss.Width(word)

		if used > 0 && used+sepWidth+w > width {
			flush()
		}
		for w > width {
			head, rest := splitAt(word, width-used)
			line.WriteString(head)
			flush()
			word, w = rest, lipgloss.Width(rest)
		}
		if w == 0 {
			continue
		}
		if used > 0 {
			line.WriteString(sep)
			used += sepWidth
		}
		line.WriteString(word)
		used += w
	}
	if used > 0 || len(lines) == 0 {
		flush()
	}
	return lines
}

// splitAt cuts s after n cells.
func splitAt(s string, n int) (string, string) {
	if n < 1 {
		n = 1
	}
	used := 0
	for i, r := range s {
		rw := lipgloss.Width(string(r))
		if used+rw > n && i > 0 {
			return s[:i], strings.TrimLeft(s[i:], " ")
		}
		used += rw
	}
	return s, ""
}
