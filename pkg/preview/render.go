package preview

import (
	"context"
	"math"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	colorful "github.com/lucasb-eyer/go-colorful"

	"github.com/matzehuels/readable/pkg/errors"
	"github.com/matzehuels/readable/pkg/observability"
	"github.com/matzehuels/readable/pkg/settings"
	"github.com/matzehuels/readable/pkg/style"
)

// Cell geometry of the surface.
const (
	padX = 4
	padY = 1

	// MinColumns is the narrowest text column the renderer will produce.
	MinColumns = 12

	// MinWidth is the narrowest surface, frame and shadow included.
	MinWidth = MinColumns + 2*padX + 3

	// TrackingThreshold is the letter spacing (em) from which letters are
	// spaced one cell apart.
	TrackingThreshold = 0.05

	// guidePeriod rows make up one reading-guide band cycle.
	guidePeriod = 5
)

// Options controls a render.
type Options struct {
	// Width caps the total rendered width in cells, border and shadow
	// included. Zero means no cap; below MinWidth Render fails.
	Width int
}

type rowKind int

const (
	rowBlank rowKind = iota
	rowTitle
	rowBody
	rowTip
	rowDivider
)

type row struct {
	kind rowKind
	text string
}

// Render draws the sample article with style d.
func Render(ctx context.Context, d style.Derived, opts Options) (out string, err error) {
	start := time.Now()
	defer func() {
		observability.Render().OnRender(ctx, opts.Width, time.Since(start), err)
	}()

	if opts.Width > 0 && opts.Width < MinWidth {
		return "", errors.New(errors.ErrCodeInvalidInput, "preview needs at least %d cells, got %d", MinWidth, opts.Width)
	}
	p, err := parsePalette(d)
	if err != nil {
		return "", err
	}

	cols := Columns(d, opts.Width)
	rows := layout(d, cols)
	return draw(d, p, rows, cols), nil
}

// Columns returns the text column width used for d within width cells.
func Columns(d style.Derived, width int) int {
	cols := d.Columns
	if width > 0 {
		avail := width - 2*padX - 2 // border
		if d.Edges.Soft {
			avail-- // shadow
		}
		if cols > avail {
			cols = avail
		}
	}
	if cols < MinColumns {
		cols = MinColumns
	}
	return cols
}

func parsePalette(d style.Derived) (palette, error) {
	var (
		p   palette
		err error
	)
	if p.background, err = parseColor("background", d.Background); err != nil {
		return p, err
	}
	if p.text, err = parseColor("text", d.Text); err != nil {
		return p, err
	}
	if p.accent, err = parseColor("accent", d.Accent); err != nil {
		return p, err
	}
	if p.muted, err = parseColor("muted", d.Muted); err != nil {
		return p, err
	}
	if d.Guide != nil {
		if _, err := parseColor("guide", d.Guide.Color); err != nil {
			return p, err
		}
	}
	return p, nil
}

// layout turns the article into rows of at most cols cells.
func layout(d style.Derived, cols int) []row {
	tracking := d.LetterSpacingEm >= TrackingThreshold
	leading := max(int(math.Round(d.LineHeight))-1, 0)
	sectionGap := max(int(math.Round(d.ParagraphSpacing)), 0)
	dividerGap := max(int(math.Round(d.ParagraphSpacing*1.1)), 0)

	var rows []row
	blank := func(n int) {
		for i := 0; i < n; i++ {
			rows = append(rows, row{kind: rowBlank})
		}
	}
	paragraph := func(kind rowKind, text string) {
		for i, line := range wrap(text, cols, tracking) {
			if i > 0 {
				blank(leading)
			}
			rows = append(rows, row{kind: kind, text: line})
		}
	}

	for i, sec := range Sections {
		if i > 0 {
			blank(sectionGap)
		}
		paragraph(rowTitle, sec.Title)
		blank(leading)
		paragraph(rowBody, sec.Body)
	}

	// Sibling margins collapse: the larger divider margin wins.
	blank(max(sectionGap, dividerGap))
	rows = append(rows, row{kind: rowDivider, text: strings.Repeat("─", cols)})
	blank(1)
	for i, tip := range Tips {
		if i > 0 {
			blank(1)
		}
		paragraph(rowTip, tip)
	}
	return rows
}

func draw(d style.Derived, p palette, rows []row, cols int) string {
	inner := cols + 2*padX

	var guideSoft, guideStrong colorful.Color
	if d.Guide != nil {
		accent, _ := colorful.Hex(d.Guide.Color)
		guideSoft = blend(p.background, accent, hexAlpha(style.GuideSoftAlpha))
		guideStrong = blend(p.background, accent, hexAlpha(style.GuideStrongAlpha))
	}
	divider := blend(p.background, p.muted, hexAlpha(style.DividerAlpha))

	lines := make([]string, 0, len(rows)+2*padY)
	all := make([]row, 0, len(rows)+2*padY)
	for i := 0; i < padY; i++ {
		all = append(all, row{kind: rowBlank})
	}
	all = append(all, rows...)
	for i := 0; i < padY; i++ {
		all = append(all, row{kind: rowBlank})
	}

	for i, r := range all {
		bg := p.background
		if d.Guide != nil {
			switch i % guidePeriod {
			case 1, 3:
				bg = guideSoft
			case 2:
				bg = guideStrong
			}
		}

		s := lipgloss.NewStyle().
			Width(inner).
			PaddingLeft(padX).
			Background(toLip(bg))

		switch r.kind {
		case rowTitle:
			s = s.Foreground(toLip(p.accent)).Bold(true)
		case rowBody:
			s = applyFace(s.Foreground(toLip(p.text)), d.Face)
		case rowTip:
			s = applyFace(s.Foreground(toLip(p.muted)), d.Face)
		case rowDivider:
			s = s.Foreground(toLip(divider))
		}
		lines = append(lines, s.Render(r.text))
	}

	border := lipgloss.NormalBorder()
	if d.Edges.Soft {
		border = lipgloss.RoundedBorder()
	}
	card := lipgloss.NewStyle().
		Border(border).
		BorderForeground(toLip(p.muted)).
		BorderBackground(toLip(p.background)).
		Render(strings.Join(lines, "\n"))

	if d.Edges.Soft {
		card = withShadow(card)
	}
	return card
}

func applyFace(s lipgloss.Style, f settings.Face) lipgloss.Style {
	switch f {
	case settings.FaceItalic:
		return s.Italic(true)
	case settings.FaceBold:
		return s.Bold(true)
	}
	return s
}

// withShadow adds a one-cell shade to the right and bottom of block.
func withShadow(block string) string {
	shade := lipgloss.NewStyle().Background(shadowColor())
	lines := strings.Split(block, "\n")
	width := lipgloss.Width(block)

	var b strings.Builder
	for i, line := range lines {
		b.WriteString(line)
		if i == 0 {
			b.WriteString(" ")
		} else {
			b.WriteString(shade.Render(" "))
		}
		b.WriteString("\n")
	}
	b.WriteString(" ")
	b.WriteString(shade.Render(strings.Repeat(" ", width)))
	return b.String()
}

// Height returns the number of terminal rows Render produces for d at the
// given width, without drawing.
func Height(d style.Derived, width int) int {
	h := len(layout(d, Columns(d, width))) + 2*padY + 2
	if d.Edges.Soft {
		h++
	}
	return h
}

// Fail renders err in place of the preview.
func Fail(err error, width int) string {
	box := lipgloss.NewStyle().
		Border(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("167")).
		Foreground(lipgloss.Color("167")).
		Padding(1, 2)
	if width > 4 {
		box = box.Width(width - 2)
	}
	return box.Render("Preview unavailable\n\n" + errors.UserMessage(err))
}
