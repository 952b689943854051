// Package settings holds the reading preferences of one session.
//
// # Catalogs
//
// Themes and fonts are closed catalogs modelled as enumerated ids:
//
//	settings.Bright, settings.Warm, settings.Dusk, settings.Midnight
//	settings.Sans, settings.Serif, settings.Dyslexic
//
// Each id resolves to an immutable record ([Theme], [FontChoice]). Names
// coming from the outside world (flags, config files) go through
// [ParseThemeID] and [ParseFontID]; everything inside the program passes ids.
//
// # Numeric Fields
//
// The five numeric settings are addressed by [Field]. Each field has a
// [Range] with its bounds, slider step and read-out suffix. [Range.Clamp]
// is the only way a number enters [Settings].
//
// # Store
//
// [Store] owns the single mutable [Settings] value of a session. It exposes
// one update operation per field; none of them can fail. Numeric input is
// clamped, ids outside the catalog are ignored, and writing the current
// value again is a no-op. After every change the store calls its
// subscribers synchronously, so a subscriber that re-derives the
// presentation always sees the new snapshot before the next input is
// processed.
//
//	store := settings.NewStore(settings.Defaults())
//	store.Subscribe(func(s settings.Settings) {
//	    current = style.Derive(s)
//	})
//	store.SetTheme(settings.Midnight)
//	store.SetFontSize(30) // stored as 26
//
// A Store is meant to be driven from a single goroutine (the UI loop) and
// is not safe for concurrent use.
package settings
