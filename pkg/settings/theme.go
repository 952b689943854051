package settings

import (
	"strings"

	"github.com/matzehuels/readable/pkg/errors"
)

// ThemeID identifies one of the fixed color themes.
type ThemeID int

// Theme ids in catalog order. The zero value is Bright.
const (
	Bright ThemeID = iota
	Warm
	Dusk
	Midnight
)

// Theme is an immutable palette. Colors are CSS hex strings.
type Theme struct {
	Label      string
	Background string
	Text       string
	Accent     string
	Muted      string
}

var themes = [...]Theme{
	Bright: {
		Label:      "Bright Light",
		Background: "#fdfdfd",
		Text:       "#131313",
		Accent:     "#2563eb",
		Muted:      "#4b5563",
	},
	Warm: {
		Label:      "Soft Sepia",
		Background: "#f3ecd9",
		Text:       "#2c241a",
		Accent:     "#b45309",
		Muted:      "#6b4f31",
	},
	Dusk: {
		Label:      "Evening Dusk",
		Background: "#1f2933",
		Text:       "#f1f5f9",
		Accent:     "#0ea5e9",
		Muted:      "#94a3b8",
	},
	Midnight: {
		Label:      "Midnight Noir",
		Background: "#050608",
		Text:       "#f9fafb",
		Accent:     "#38bdf8",
		Muted:      "#9ca3af",
	},
}

var themeNames = [...]string{
	Bright:   "bright",
	Warm:     "warm",
	Dusk:     "dusk",
	Midnight: "midnight",
}

// Themes returns every theme id in catalog order.
func Themes() []ThemeID {
	return []ThemeID{Bright, Warm, Dusk, Midnight}
}

// Valid reports whether id is part of the catalog.
func (id ThemeID) Valid() bool {
	return id >= Bright && id <= Midnight
}

// Theme returns the palette for id. Ids outside the catalog resolve to Bright.
func (id ThemeID) Theme() Theme {
	if !id.Valid() {
		return themes[Bright]
	}
	return themes[id]
}

func (id ThemeID) String() string {
	if !id.Valid() {
		return "unknown"
	}
	return themeNames[id]
}

// ParseThemeID resolves a theme name such as "midnight".
// Matching is case-insensitive.
func ParseThemeID(name string) (ThemeID, error) {
	if err := errors.ValidateName(name); err != nil {
		return 0, errors.Wrap(errors.ErrCodeInvalidTheme, err, "invalid theme name")
	}
	for _, id := range Themes() {
		if strings.EqualFold(name, themeNames[id]) {
			return id, nil
		}
	}
	return 0, errors.New(errors.ErrCodeInvalidTheme, "unknown theme %q (want one of %s)", name, strings.Join(themeNames[:], ", "))
}
