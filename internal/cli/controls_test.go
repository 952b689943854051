package cli

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"

	"github.com/matzehuels/readable/pkg/settings"
)

func TestTrack(t *testing.T) {
	tests := []struct {
		name  string
		frac  float64
		width int
		knob  int
	}{
		{"empty", 0, 10, 0},
		{"full", 1, 10, 9},
		{"middle", 0.5, 11, 5},
		{"narrow widens", 0, 3, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			bar := track(tt.frac, tt.width)
			want := tt.width
			if want < minBarWidth {
				want = minBarWidth
			}
			if got := lipgloss.Width(bar); got != want {
				t.Errorf("width = %d, want %d", got, want)
			}
			if strings.Count(bar, "●") != 1 {
				t.Errorf("track should have exactly one knob: %q", bar)
			}
			if got := strings.Count(bar, "━"); got != tt.knob {
				t.Errorf("filled cells = %d, want %d", got, tt.knob)
			}
		})
	}
}

func TestSliderHead(t *testing.T) {
	head := sliderHead(settings.LineHeight, 1.7, 30)
	if lipgloss.Width(head) != 30 {
		t.Errorf("width = %d, want 30", lipgloss.Width(head))
	}
	if !strings.HasPrefix(head, "Line height") || !strings.HasSuffix(head, "1.7x") {
		t.Errorf("sliderHead() = %q", head)
	}
}

func TestToggle(t *testing.T) {
	on := toggle("Soft edges", true, 24)
	off := toggle("Soft edges", false, 24)
	if lipgloss.Width(on) != 24 || lipgloss.Width(off) != 24 {
		t.Errorf("widths = %d/%d, want 24", lipgloss.Width(on), lipgloss.Width(off))
	}
	if on == off {
		t.Error("on and off should render differently")
	}
}

func TestThemePicker(t *testing.T) {
	out := themePicker(settings.Dusk, settings.Warm, true)

	if got := strings.Count(out, "Active"); got != 1 {
		t.Errorf("Active count = %d, want 1", got)
	}
	if got := strings.Count(out, "Select to apply"); got != len(settings.Themes())-1 {
		t.Errorf("Select to apply count = %d", got)
	}
	lines := strings.Split(out, "\n")
	if !strings.Contains(lines[settings.Warm], iconCursor) {
		t.Errorf("cursor should mark the warm row: %q", lines[settings.Warm])
	}
	if !strings.Contains(lines[settings.Dusk], "Active") {
		t.Errorf("dusk row should be active: %q", lines[settings.Dusk])
	}
}

func TestFontPicker(t *testing.T) {
	out := fontPicker(settings.Sans, settings.Sans, "#2563eb", false)
	for _, id := range settings.Fonts() {
		if !strings.Contains(out, id.Choice().Label) {
			t.Errorf("fontPicker() missing %q", id.Choice().Label)
		}
	}
}

func TestMoveCursor(t *testing.T) {
	tests := []struct{ i, delta, n, want int }{
		{0, -1, 4, 0},
		{0, 1, 4, 1},
		{3, 1, 4, 3},
		{2, -1, 4, 1},
	}
	for _, tt := range tests {
		if got := moveCursor(tt.i, tt.delta, tt.n); got != tt.want {
			t.Errorf("moveCursor(%d, %d, %d) = %d, want %d", tt.i, tt.delta, tt.n, got, tt.want)
		}
	}
}

func TestControlGroupHint(t *testing.T) {
	focused := controlGroup("Theme", "pick one", "body", true, 30)
	blurred := controlGroup("Theme", "pick one", "body", false, 30)
	if !strings.Contains(focused, "pick one") {
		t.Error("focused group should show its hint")
	}
	if strings.Contains(blurred, "pick one") {
		t.Error("blurred group should hide its hint")
	}
}
