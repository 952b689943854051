package cli

import (
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"
	colorful "github.com/lucasb-eyer/go-colorful"

	"github.com/matzehuels/readable/pkg/preview"
	"github.com/matzehuels/readable/pkg/settings"
)

const (
	swatchWidth = 4
	minBarWidth = 8
)

var (
	trackStart = mustHex(colorIndigo)
	trackEnd   = mustHex(colorCyan)

	styleFocusBar = lipgloss.NewStyle().
			Border(lipgloss.ThickBorder(), false, false, false, true).
			BorderForeground(colorIndigo).
			PaddingLeft(1)
	styleBlurBar = lipgloss.NewStyle().
			Border(lipgloss.HiddenBorder(), false, false, false, true).
			PaddingLeft(1)

	styleKnob     = lipgloss.NewStyle().Foreground(colorInk).Bold(true)
	styleRail     = lipgloss.NewStyle().Foreground(colorBorder)
	styleReadout  = lipgloss.NewStyle().Foreground(colorSlate)
	styleActive   = lipgloss.NewStyle().Foreground(colorSky).Bold(true)
	styleChip     = lipgloss.NewStyle().Padding(0, 1).Foreground(colorSlate)
	styleSwitchOn = lipgloss.NewStyle().Background(colorSky).Foreground(lipgloss.Color("#ffffff"))
	styleSwitchOf = lipgloss.NewStyle().Background(colorLavender).Foreground(lipgloss.Color("#ffffff"))
	styleControl  = StyleLabel.Foreground(colorInk)
)

func mustHex(c lipgloss.Color) colorful.Color {
	col, err := colorful.Hex(string(c))
	if err != nil {
		panic(err)
	}
	return col
}

// controlGroup frames a control with its title line and, when focused, its
// hint. The title is rendered by the caller.
func controlGroup(title, hint, body string, focused bool, width int) string {
	lines := []string{title}
	if focused && hint != "" {
		lines = append(lines, StyleHint.Width(width-2).Render(hint))
	}
	if body != "" {
		lines = append(lines, body)
	}
	frame := styleBlurBar
	if focused {
		frame = styleFocusBar
	}
	return frame.Render(lipgloss.JoinVertical(lipgloss.Left, lines...))
}

// themePicker lists every theme with a swatch; the active one is marked.
func themePicker(active, cursor settings.ThemeID, focused bool) string {
	var lines []string
	for _, id := range settings.Themes() {
		marker := "  "
		if focused && id == cursor {
			marker = StyleTitle.Render(iconCursor) + " "
		}
		label := styleControl.Render(id.Theme().Label)
		hint := StyleHint.Render("Select to apply")
		if id == active {
			hint = styleActive.Render("Active")
		}
		lines = append(lines, marker+preview.Swatch(id, swatchWidth)+" "+label+"  "+hint)
	}
	return strings.Join(lines, "\n")
}

// fontPicker renders the fonts as stacked chips; the active chip takes the
// accent.
func fontPicker(active, cursor settings.FontID, accent string, focused bool) string {
	var chips []string
	for _, id := range settings.Fonts() {
		chip := faceStyle(styleChip, id.Choice().Face)
		if id == active {
			chip = chip.Foreground(lipgloss.Color("#ffffff")).Background(lipgloss.Color(accent)).Bold(true)
		}
		if focused && id == cursor {
			chip = chip.Underline(true)
		}
		chips = append(chips, chip.Render(id.Choice().Label))
	}
	return strings.Join(chips, "\n")
}

func faceStyle(s lipgloss.Style, f settings.Face) lipgloss.Style {
	switch f {
	case settings.FaceItalic:
		return s.Italic(true)
	case settings.FaceBold:
		return s.Bold(true)
	}
	return s
}

// sliderHead renders the label of field f with its read-out aligned right.
func sliderHead(f settings.Field, value float64, width int) string {
	r := f.Range()
	readout := styleReadout.Render(r.Format(value))
	gap := width - lipgloss.Width(r.Label) - lipgloss.Width(readout)
	if gap < 1 {
		gap = 1
	}
	return styleControl.Render(r.Label) + strings.Repeat(" ", gap) + readout
}

// track draws a bar width cells wide, filled up to frac.
func track(frac float64, width int) string {
	if width < minBarWidth {
		width = minBarWidth
	}
	knob := int(math.Round(frac * float64(width-1)))

	var b strings.Builder
	for i := 0; i < width; i++ {
		switch {
		case i == knob:
			b.WriteString(styleKnob.Render("●"))
		case i < knob:
			t := float64(i) / float64(width-1)
			c := trackStart.BlendRgb(trackEnd, t).Clamped()
			b.WriteString(lipgloss.NewStyle().Foreground(lipgloss.Color(c.Hex())).Render("━"))
		default:
			b.WriteString(styleRail.Render("─"))
		}
	}
	return b.String()
}

// toggle renders a label with a pill switch aligned right.
func toggle(label string, on bool, width int) string {
	sw := styleSwitchOf.Render("●  ")
	if on {
		sw = styleSwitchOn.Render("  ●")
	}
	gap := width - lipgloss.Width(label) - lipgloss.Width(sw)
	if gap < 1 {
		gap = 1
	}
	return styleControl.Render(label) + strings.Repeat(" ", gap) + sw
}
