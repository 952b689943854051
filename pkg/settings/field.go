package settings

import (
	"math"
	"strconv"
)

// Field identifies one of the numeric settings.
type Field int

// Numeric fields in control-panel order.
const (
	FontSize Field = iota
	LineHeight
	ParagraphSpacing
	ColumnWidth
	LetterSpacing
)

// Range describes the bounds and slider behavior of a numeric field.
type Range struct {
	Label     string
	Min, Max  float64
	Step      float64
	Precision int    // Decimal places kept after clamping
	Suffix    string // Slider read-out unit
}

var ranges = [...]Range{
	FontSize:         {Label: "Font size", Min: 14, Max: 26, Step: 1, Precision: 0, Suffix: "px"},
	LineHeight:       {Label: "Line height", Min: 1.2, Max: 2, Step: 0.1, Precision: 1, Suffix: "x"},
	ParagraphSpacing: {Label: "Paragraph spacing", Min: 0.5, Max: 2, Step: 0.1, Precision: 1, Suffix: "em"},
	ColumnWidth:      {Label: "Column width", Min: 40, Max: 90, Step: 2, Precision: 0, Suffix: "ch"},
	LetterSpacing:    {Label: "Letter spacing", Min: 0, Max: 0.12, Step: 0.01, Precision: 2, Suffix: "em"},
}

var fieldNames = [...]string{
	FontSize:         "font_size",
	LineHeight:       "line_height",
	ParagraphSpacing: "paragraph_spacing",
	ColumnWidth:      "column_width",
	LetterSpacing:    "letter_spacing",
}

// Fields returns every numeric field in control-panel order.
func Fields() []Field {
	return []Field{FontSize, LineHeight, ParagraphSpacing, ColumnWidth, LetterSpacing}
}

// Valid reports whether f is a known field.
func (f Field) Valid() bool {
	return f >= FontSize && f <= LetterSpacing
}

// Range returns the bounds of f.
func (f Field) Range() Range {
	if !f.Valid() {
		return Range{}
	}
	return ranges[f]
}

func (f Field) String() string {
	if !f.Valid() {
		return "unknown"
	}
	return fieldNames[f]
}

// Clamp forces v into [Min, Max] and rounds it to the field precision.
// NaN clamps to Min.
func (r Range) Clamp(v float64) float64 {
	switch {
	case math.IsNaN(v), v < r.Min:
		v = r.Min
	case v > r.Max:
		v = r.Max
	}
	return r.Round(v)
}

// Round rounds v to the range precision without bounding it.
func (r Range) Round(v float64) float64 {
	p := math.Pow(10, float64(r.Precision))
	return math.Round(v*p) / p
}

// Contains reports whether v lies within the bounds.
func (r Range) Contains(v float64) bool {
	return v >= r.Min && v <= r.Max
}

// Format renders v with the slider suffix, e.g. "18px" or "1.7x".
func (r Range) Format(v float64) string {
	return FormatNumber(v) + r.Suffix
}

// Fraction returns the relative position of v within the range, in [0, 1].
func (r Range) Fraction(v float64) float64 {
	if r.Max <= r.Min {
		return 0
	}
	f := (r.Clamp(v) - r.Min) / (r.Max - r.Min)
	return math.Max(0, math.Min(1, f))
}

// FormatNumber renders v in its shortest exact decimal form ("18", "1.32").
func FormatNumber(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
