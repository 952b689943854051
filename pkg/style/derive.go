package style

import (
	"fmt"
	"math"

	"github.com/matzehuels/readable/pkg/settings"
)

// Fixed presentation constants.
const (
	Padding = "2.5rem"

	SoftRadius = "24px"
	SoftShadow = "0 20px 60px rgba(15, 23, 42, 0.16)"
	HardRadius = "0px"
	HardShadow = "0 0 0 rgba(0,0,0,0)"

	// GuideSize banding repeats every 3.2 lines of text.
	GuideSize = "100% 3.2em"

	// Hex alpha suffixes applied to the accent color by the reading guide.
	GuideSoftAlpha   = "33"
	GuideStrongAlpha = "55"

	// DividerAlpha is applied to the muted color of the tip divider.
	DividerAlpha = "55"

	dividerFactor = 1.1
)

// Edges is the corner and shadow treatment of the preview surface.
type Edges struct {
	Soft   bool
	Radius string
	Shadow string
}

// ReadingGuide is the banded gradient overlay.
type ReadingGuide struct {
	Color string // Accent color the bands are tinted with
	Image string // CSS background-image
	Size  string // CSS background-size
}

// Derived is the computed style of the preview surface.
type Derived struct {
	Theme settings.ThemeID
	Font  settings.FontID

	Label      string // Theme display label
	Background string
	Text       string
	Accent     string
	Muted      string

	FontFamily    string
	Face          settings.Face
	FontSize      string
	LineHeight    float64
	LetterSpacing string
	MaxWidth      string
	Padding       string

	Edges Edges
	Guide *ReadingGuide // nil when the reading guide is off

	SectionMargin string
	DividerMargin string
	DividerBorder string

	// Raw numbers, kept for renderers that work in cells.
	Columns          int
	ParagraphSpacing float64
	LetterSpacingEm  float64
}

// Derive computes the style for s.
func Derive(s settings.Settings) Derived {
	theme := s.Theme.Theme()
	font := s.Font.Choice()

	d := Derived{
		Theme:      s.Theme,
		Font:       s.Font,
		Label:      theme.Label,
		Background: theme.Background,
		Text:       theme.Text,
		Accent:     theme.Accent,
		Muted:      theme.Muted,

		FontFamily:    font.Family,
		Face:          font.Face,
		FontSize:      settings.FormatNumber(s.FontSize) + "px",
		LineHeight:    s.LineHeight,
		LetterSpacing: settings.FormatNumber(s.LetterSpacing) + "em",
		MaxWidth:      settings.FormatNumber(s.ColumnWidth) + "ch",
		Padding:       Padding,

		Edges: deriveEdges(s.SoftEdges),

		SectionMargin: settings.FormatNumber(s.ParagraphSpacing) + "em",
		DividerMargin: settings.FormatNumber(round4(s.ParagraphSpacing*dividerFactor)) + "em",
		DividerBorder: "1px solid " + theme.Muted + DividerAlpha,

		Columns:          int(math.Round(s.ColumnWidth)),
		ParagraphSpacing: s.ParagraphSpacing,
		LetterSpacingEm:  s.LetterSpacing,
	}
	if s.ReadingGuide {
		d.Guide = deriveGuide(theme.Accent)
	}
	return d
}

func deriveEdges(soft bool) Edges {
	if soft {
		return Edges{Soft: true, Radius: SoftRadius, Shadow: SoftShadow}
	}
	return Edges{Soft: false, Radius: HardRadius, Shadow: HardShadow}
}

func deriveGuide(accent string) *ReadingGuide {
	return &ReadingGuide{
		Color: accent,
		Image: fmt.Sprintf(
			"linear-gradient(rgba(148, 163, 184, 0) calc(50%% - 0.7em), %s%s calc(50%% - 0.4em), %s%s calc(50%% + 0.4em), rgba(148, 163, 184, 0) calc(50%% + 0.7em))",
			accent, GuideSoftAlpha, accent, GuideStrongAlpha,
		),
		Size: GuideSize,
	}
}

func round4(v float64) float64 {
	return math.Round(v*1e4) / 1e4
}

// Equal reports whether two derived styles are identical.
func (d Derived) Equal(o Derived) bool {
	if (d.Guide == nil) != (o.Guide == nil) {
		return false
	}
	if d.Guide != nil && *d.Guide != *o.Guide {
		return false
	}
	dg, og := d, o
	dg.Guide, og.Guide = nil, nil
	return dg == og
}
