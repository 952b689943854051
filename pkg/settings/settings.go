package settings

// Settings is the complete set of reading preferences.
type Settings struct {
	Theme            ThemeID
	Font             FontID
	FontSize         float64
	LineHeight       float64
	ParagraphSpacing float64
	ColumnWidth      float64
	LetterSpacing    float64
	ReadingGuide     bool
	SoftEdges        bool
}

// Defaults returns the preferences a fresh session starts with.
func Defaults() Settings {
	return Settings{
		Theme:            Bright,
		Font:             Sans,
		FontSize:         18,
		LineHeight:       1.7,
		ParagraphSpacing: 1.2,
		ColumnWidth:      68,
		LetterSpacing:    0,
		ReadingGuide:     false,
		SoftEdges:        true,
	}
}

// Number returns the value of a numeric field.
func (s Settings) Number(f Field) float64 {
	switch f {
	case FontSize:
		return s.FontSize
	case LineHeight:
		return s.LineHeight
	case ParagraphSpacing:
		return s.ParagraphSpacing
	case ColumnWidth:
		return s.ColumnWidth
	case LetterSpacing:
		return s.LetterSpacing
	}
	return 0
}

// WithNumber returns a copy of s with field f set to v, unclamped.
func (s Settings) WithNumber(f Field, v float64) Settings {
	switch f {
	case FontSize:
		s.FontSize = v
	case LineHeight:
		s.LineHeight = v
	case ParagraphSpacing:
		s.ParagraphSpacing = v
	case ColumnWidth:
		s.ColumnWidth = v
	case LetterSpacing:
		s.LetterSpacing = v
	}
	return s
}

// Normalize returns a copy of s with every field inside its range and
// both ids inside their catalogs. Unknown ids fall back to the defaults.
func (s Settings) Normalize() Settings {
	d := Defaults()
	if !s.Theme.Valid() {
		s.Theme = d.Theme
	}
	if !s.Font.Valid() {
		s.Font = d.Font
	}
	for _, f := range Fields() {
		s = s.WithNumber(f, f.Range().Clamp(s.Number(f)))
	}
	return s
}
