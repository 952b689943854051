package settings

import (
	"context"

	"github.com/google/uuid"

	"github.com/matzehuels/readable/pkg/observability"
)

// Listener is called with the new snapshot after every change.
type Listener func(Settings)

// Store owns the mutable settings of one session.
type Store struct {
	ctx       context.Context
	session   string
	current   Settings
	listeners []Listener
}

// StoreOption configures a Store.
type StoreOption func(*Store)

// WithContext sets the context handed to observability hooks.
func WithContext(ctx context.Context) StoreOption {
	return func(s *Store) {
		if ctx != nil {
			s.ctx = ctx
		}
	}
}

// WithSessionID overrides the generated session id.
func WithSessionID(id string) StoreOption {
	return func(s *Store) {
		if id != "" {
			s.session = id
		}
	}
}

// NewStore creates a store holding initial, normalized into range.
func NewStore(initial Settings, opts ...StoreOption) *Store {
	s := &Store{
		ctx:     context.Background(),
		session: uuid.NewString(),
		current: initial.Normalize(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// SessionID returns the id used to tag this store's events.
func (s *Store) SessionID() string { return s.session }

// Snapshot returns a copy of the current settings.
func (s *Store) Snapshot() Settings { return s.current }

// Subscribe registers fn to be called after every change.
// Listeners run synchronously in registration order.
func (s *Store) Subscribe(fn Listener) {
	if fn != nil {
		s.listeners = append(s.listeners, fn)
	}
}

// SetTheme selects a theme. Ids outside the catalog are ignored.
func (s *Store) SetTheme(id ThemeID) bool {
	old := s.current.Theme
	if !id.Valid() {
		s.report("theme", id, old, old, true, false)
		return false
	}
	next := s.current
	next.Theme = id
	return s.commit("theme", id, old, id, false, next)
}

// SetFont selects a font. Ids outside the catalog are ignored.
func (s *Store) SetFont(id FontID) bool {
	old := s.current.Font
	if !id.Valid() {
		s.report("font", id, old, old, true, false)
		return false
	}
	next := s.current
	next.Font = id
	return s.commit("font", id, old, id, false, next)
}

// SetNumber stores v in field f after clamping it into range.
func (s *Store) SetNumber(f Field, v float64) bool {
	if !f.Valid() {
		return false
	}
	old := s.current.Number(f)
	clamped := f.Range().Clamp(v)
	next := s.current.WithNumber(f, clamped)
	return s.commit(f.String(), v, old, clamped, clamped != v, next)
}

// Step moves field f by delta slider steps.
func (s *Store) Step(f Field, delta int) bool {
	if !f.Valid() {
		return false
	}
	r := f.Range()
	return s.SetNumber(f, r.Round(s.current.Number(f)+float64(delta)*r.Step))
}

// SetFontSize sets the body font size in pixels.
func (s *Store) SetFontSize(v float64) bool { return s.SetNumber(FontSize, v) }

// SetLineHeight sets the line height multiplier.
func (s *Store) SetLineHeight(v float64) bool { return s.SetNumber(LineHeight, v) }

// SetParagraphSpacing sets the gap between paragraphs in em.
func (s *Store) SetParagraphSpacing(v float64) bool { return s.SetNumber(ParagraphSpacing, v) }

// SetColumnWidth sets the measure in characters.
func (s *Store) SetColumnWidth(v float64) bool { return s.SetNumber(ColumnWidth, v) }

// SetLetterSpacing sets the tracking in em.
func (s *Store) SetLetterSpacing(v float64) bool { return s.SetNumber(LetterSpacing, v) }

// SetReadingGuide enables or disables the reading guide overlay.
func (s *Store) SetReadingGuide(on bool) bool {
	old := s.current.ReadingGuide
	next := s.current
	next.ReadingGuide = on
	return s.commit("reading_guide", on, old, on, false, next)
}

// SetSoftEdges switches between rounded and square preview edges.
func (s *Store) SetSoftEdges(on bool) bool {
	old := s.current.SoftEdges
	next := s.current
	next.SoftEdges = on
	return s.commit("soft_edges", on, old, on, false, next)
}

// ToggleReadingGuide flips the reading guide.
func (s *Store) ToggleReadingGuide() bool { return s.SetReadingGuide(!s.current.ReadingGuide) }

// ToggleSoftEdges flips soft edges.
func (s *Store) ToggleSoftEdges() bool { return s.SetSoftEdges(!s.current.SoftEdges) }

// Reset restores the defaults.
func (s *Store) Reset() bool {
	observability.Settings().OnReset(s.ctx, s.session)
	return s.replace(Defaults())
}

func (s *Store) commit(field string, input, from, to any, clamped bool, next Settings) bool {
	changed := next != s.current
	s.report(field, input, from, to, clamped, changed)
	if !changed {
		return false
	}
	return s.replace(next)
}

func (s *Store) replace(next Settings) bool {
	if next == s.current {
		return false
	}
	s.current = next
	for _, fn := range s.listeners {
		fn(next)
	}
	return true
}

func (s *Store) report(field string, input, from, to any, clamped, changed bool) {
	observability.Settings().OnUpdate(s.ctx, observability.Update{
		Session: s.session,
		Field:   field,
		Input:   input,
		Old:     from,
		New:     to,
		Clamped: clamped,
		Changed: changed,
	})
}
