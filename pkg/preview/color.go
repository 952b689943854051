package preview

import (
	"strconv"

	"github.com/charmbracelet/lipgloss"
	colorful "github.com/lucasb-eyer/go-colorful"

	"github.com/matzehuels/readable/pkg/errors"
)

// Shadow colors of the soft-edged surface.
const (
	shadowInk   = "#0f172a"
	shadowPage  = "#eef2ff"
	shadowAlpha = 0.32
)

// palette holds the parsed colors of one render.
type palette struct {
	background colorful.Color
	text       colorful.Color
	accent     colorful.Color
	muted      colorful.Color
}

func parseColor(name, hex string) (colorful.Color, error) {
	if err := errors.ValidateHexColor(hex); err != nil {
		return colorful.Color{}, errors.Wrap(errors.ErrCodeInvalidStyle, err, "%s color", name)
	}
	c, err := colorful.Hex(hex)
	if err != nil {
		return colorful.Color{}, errors.Wrap(errors.ErrCodeInvalidStyle, err, "%s color %q", name, hex)
	}
	return c, nil
}

// hexAlpha converts a two-digit hex alpha suffix ("55") into [0, 1].
func hexAlpha(s string) float64 {
	v, err := strconv.ParseUint(s, 16, 8)
	if err != nil {
		return 0
	}
	return float64(v) / 255
}

// blend paints over on top of base with the given opacity.
func blend(base, over colorful.Color, alpha float64) colorful.Color {
	return base.BlendRgb(over, alpha).Clamped()
}

func toLip(c colorful.Color) lipgloss.Color {
	return lipgloss.Color(c.Hex())
}

func shadowColor() lipgloss.Color {
	ink, _ := colorful.Hex(shadowInk)
	page, _ := colorful.Hex(shadowPage)
	return toLip(blend(page, ink, shadowAlpha))
}
