package preview

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	colorful "github.com/lucasb-eyer/go-colorful"

	"github.com/matzehuels/readable/pkg/settings"
)

// swatchTint is how far the chip gradient moves toward the text color.
const swatchTint = float64(0x15) / 255

// Swatch renders a small chip fading from the theme background toward its
// text color. Width is in cells.
func Swatch(id settings.ThemeID, width int) string {
	th := id.Theme()
	bg, err := colorful.Hex(th.Background)
	if err != nil {
		return strings.Repeat(" ", width)
	}
	fg, err := colorful.Hex(th.Text)
	if err != nil {
		return strings.Repeat(" ", width)
	}

	var b strings.Builder
	for i := 0; i < width; i++ {
		t := 0.0
		if width > 1 {
			t = swatchTint * float64(i) / float64(width-1)
		}
		cell := lipgloss.NewStyle().Background(toLip(blend(bg, fg, t)))
		b.WriteString(cell.Render(" "))
	}
	return b.String()
}

// Dot renders a filled circle in the accent color of id.
func Dot(id settings.ThemeID) string {
	return lipgloss.NewStyle().Foreground(lipgloss.Color(id.Theme().Accent)).Render("●")
}
