package preview

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
)

func TestWrap(t *testing.T) {
	tests := []struct {
		name     string
		text     string
		width    int
		tracking bool
		want     []string
	}{
		{"fits", "quiet focus", 20, false, []string{"quiet focus"}},
		{"breaks at words", "quiet focus matters", 12, false, []string{"quiet focus", "matters"}},
		{"long word", "accessibility", 5, false, []string{"acces", "sibil", "ity"}},
		{"empty", "", 10, false, []string{""}},
		{"tracked", "ab cd", 20, true, []string{"a b  c d"}},
		{"tracked breaks", "ab cd", 5, true, []string{"a b", "c d"}},
		{"collapses spaces", "a   b", 10, false, []string{"a b"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := wrap(tt.text, tt.width, tt.tracking)
			if strings.Join(got, "|") != strings.Join(tt.want, "|") {
				t.Errorf("wrap(%q, %d) = %q, want %q", tt.text, tt.width, got, tt.want)
			}
		})
	}
}

func TestWrapNeverExceedsWidth(t *testing.T) {
	for _, sec := range Sections {
		for _, width := range []int{12, 25, 40, 68} {
			for _, tracking := range []bool{false, true} {
				for _, line := range wrap(sec.Body, width, tracking) {
					if lipgloss.Width(line) > width {
						t.Errorf("line %q exceeds %d cells", line, width)
					}
				}
			}
		}
	}
}
