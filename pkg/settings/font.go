package settings

import (
	"strings"

	"github.com/matzehuels/readable/pkg/errors"
)

// FontID identifies one of the fixed font choices.
type FontID int

// Font ids in catalog order. The zero value is Sans.
const (
	Sans FontID = iota
	Serif
	Dyslexic
)

// Face is how a font choice is approximated on a character-cell display.
type Face int

const (
	FaceRegular Face = iota
	FaceItalic
	FaceBold
)

var faceNames = [...]string{
	FaceRegular: "regular",
	FaceItalic:  "italic",
	FaceBold:    "bold",
}

func (f Face) String() string {
	if f < FaceRegular || f > FaceBold {
		return "unknown"
	}
	return faceNames[f]
}

// FontChoice is an immutable font reference.
type FontChoice struct {
	Label  string
	Family string // CSS font-family token
	Face   Face
}

var fonts = [...]FontChoice{
	Sans: {
		Label:  "Sans (Source Sans 3)",
		Family: "var(--font-family-base)",
		Face:   FaceRegular,
	},
	Serif: {
		Label:  "Serif (Merriweather)",
		Family: "var(--font-family-serif)",
		Face:   FaceItalic,
	},
	Dyslexic: {
		Label:  "Accessible (Atkinson Hyperlegible)",
		Family: "var(--font-family-dyslexic)",
		Face:   FaceBold,
	},
}

var fontNames = [...]string{
	Sans:     "sans",
	Serif:    "serif",
	Dyslexic: "dyslexic",
}

// Fonts returns every font id in catalog order.
func Fonts() []FontID {
	return []FontID{Sans, Serif, Dyslexic}
}

// Valid reports whether id is part of the catalog.
func (id FontID) Valid() bool {
	return id >= Sans && id <= Dyslexic
}

// Choice returns the font record for id. Ids outside the catalog resolve to Sans.
func (id FontID) Choice() FontChoice {
	if !id.Valid() {
		return fonts[Sans]
	}
	return fonts[id]
}

func (id FontID) String() string {
	if !id.Valid() {
		return "unknown"
	}
	return fontNames[id]
}

// ParseFontID resolves a font name such as "serif".
// Matching is case-insensitive.
func ParseFontID(name string) (FontID, error) {
	if err := errors.ValidateName(name); err != nil {
		return 0, errors.Wrap(errors.ErrCodeInvalidFont, err, "invalid font name")
	}
	for _, id := range Fonts() {
		if strings.EqualFold(name, fontNames[id]) {
			return id, nil
		}
	}
	return 0, errors.New(errors.ErrCodeInvalidFont, "unknown font %q (want one of %s)", name, strings.Join(fontNames[:], ", "))
}
