package cli

import (
	"context"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/matzehuels/readable/pkg/preview"
	"github.com/matzehuels/readable/pkg/settings"
	"github.com/matzehuels/readable/pkg/style"
)

// Workbench geometry.
const (
	panelWidth    = 44 // Control panel, frame included
	stackBelow    = 100
	paneGap       = 2
	minPreviewH   = 6
	defaultWidth  = 120
	defaultHeight = 40
)

const (
	headerBadge    = "Readability Toolkit"
	headerTitle    = "Make everything effortlessly readable"
	headerSubtitle = "Tune typography, rhythm, and contrast until the page feels calm. " +
		"Every control updates live so you can test what fits your eyes best."
	panelTitle   = "Reading preferences"
	previewEye   = "LIVE PREVIEW"
	previewTitle = "See your settings in action"
)

// focus is the index of the focused control.
type focus int

const (
	focusTheme focus = iota
	focusFont
	focusFontSize
	focusLineHeight
	focusParagraphSpacing
	focusColumnWidth
	focusLetterSpacing
	focusReadingGuide
	focusSoftEdges
	focusCount
)

// field returns the slider field behind f.
func (f focus) field() (settings.Field, bool) {
	if f < focusFontSize || f > focusLetterSpacing {
		return 0, false
	}
	return settings.Field(f - focusFontSize), true
}

var controlHints = map[focus]string{
	focusTheme:        "Choose the contrast profile that feels comfortable",
	focusFont:         "Swap between typefaces to reduce visual fatigue",
	focusReadingGuide: "Adds a subtle highlight to keep your place while scanning lines.",
	focusSoftEdges:    "Gives the reading surface gentle shadows and rounded corners.",
}

// Model is the workbench: a control panel driving a live preview.
//
// Model is used through a pointer so the store listener and the bubbletea
// loop share one instance.
type Model struct {
	ctx   context.Context
	store *settings.Store

	keys     keyMap
	help     help.Model
	viewport viewport.Model

	focus       focus
	themeCursor settings.ThemeID
	fontCursor  settings.FontID

	derived   style.Derived
	preview   string
	renderErr error

	width, height int
}

// NewModel builds a workbench over store and subscribes it to changes.
func NewModel(ctx context.Context, store *settings.Store) *Model {
	snap := store.Snapshot()
	m := &Model{
		ctx:         ctx,
		store:       store,
		keys:        defaultKeyMap(),
		help:        help.New(),
		viewport:    viewport.New(0, 0),
		themeCursor: snap.Theme,
		fontCursor:  snap.Font,
		derived:     style.Derive(snap),
		width:       defaultWidth,
		height:      defaultHeight,
	}
	store.Subscribe(m.onChange)
	m.resize()
	return m
}

// onChange re-derives the style after every store update.
func (m *Model) onChange(s settings.Settings) {
	m.derived = style.Derive(s)
	m.themeCursor = s.Theme
	m.fontCursor = s.Font
	m.resize()
}

// Init implements tea.Model.
func (m *Model) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.resize()
	case tea.MouseMsg:
		var cmd tea.Cmd
		m.viewport, cmd = m.viewport.Update(msg)
		return m, cmd
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			return m, tea.Quit
		case key.Matches(msg, m.keys.Help):
			m.help.ShowAll = !m.help.ShowAll
			m.resize()
		case key.Matches(msg, m.keys.Up):
			m.focus = (m.focus + focusCount - 1) % focusCount
		case key.Matches(msg, m.keys.Down):
			m.focus = (m.focus + 1) % focusCount
		case key.Matches(msg, m.keys.Left):
			m.adjust(-1)
		case key.Matches(msg, m.keys.Right):
			m.adjust(1)
		case key.Matches(msg, m.keys.Select):
			m.activate()
		case key.Matches(msg, m.keys.Reset):
			m.store.Reset()
		case key.Matches(msg, m.keys.PageUp):
			m.viewport.LineUp(m.viewport.Height)
		case key.Matches(msg, m.keys.PageDown):
			m.viewport.LineDown(m.viewport.Height)
		}
	}
	return m, nil
}

// adjust handles left/right on the focused control.
func (m *Model) adjust(delta int) {
	if f, ok := m.focus.field(); ok {
		m.store.Step(f, delta)
		return
	}
	switch m.focus {
	case focusTheme:
		m.themeCursor = settings.ThemeID(moveCursor(int(m.themeCursor), delta, len(settings.Themes())))
	case focusFont:
		m.fontCursor = settings.FontID(moveCursor(int(m.fontCursor), delta, len(settings.Fonts())))
	case focusReadingGuide:
		m.store.SetReadingGuide(delta > 0)
	case focusSoftEdges:
		m.store.SetSoftEdges(delta > 0)
	}
}

// activate handles enter/space on the focused control.
func (m *Model) activate() {
	switch m.focus {
	case focusTheme:
		m.store.SetTheme(m.themeCursor)
	case focusFont:
		m.store.SetFont(m.fontCursor)
	case focusReadingGuide:
		m.store.ToggleReadingGuide()
	case focusSoftEdges:
		m.store.ToggleSoftEdges()
	}
}

func moveCursor(i, delta, n int) int {
	i += delta
	if i < 0 {
		return 0
	}
	if i >= n {
		return n - 1
	}
	return i
}

// stacked reports whether the panes are laid out top to bottom.
func (m *Model) stacked() bool {
	return m.width < stackBelow
}

func (m *Model) previewWidth() int {
	if m.stacked() {
		return m.width
	}
	return m.width - panelWidth - paneGap
}

// resize recomputes the viewport after a size or help change.
func (m *Model) resize() {
	used := lipgloss.Height(m.header()) + lipgloss.Height(m.previewHeader()) +
		lipgloss.Height(m.inspector()) + lipgloss.Height(m.help.View(m.keys)) + 2
	if m.stacked() {
		used += lipgloss.Height(m.panel())
	}
	h := m.height - used
	if h < minPreviewH {
		h = minPreviewH
	}
	if ph := preview.Height(m.derived, m.previewWidth()); ph < h {
		h = ph
	}
	m.viewport.Width = m.previewWidth()
	m.viewport.Height = h
	m.help.Width = m.width
	m.refresh()
}

// refresh redraws the preview into the viewport.
func (m *Model) refresh() {
	w := m.previewWidth()
	out, err := preview.Render(m.ctx, m.derived, preview.Options{Width: w})
	m.renderErr = err
	if err != nil {
		out = preview.Fail(err, w)
	}
	m.preview = out
	m.viewport.SetContent(out)
}

// View implements tea.Model.
func (m *Model) View() string {
	right := lipgloss.JoinVertical(lipgloss.Left,
		m.previewHeader(),
		m.viewport.View(),
		m.inspector(),
	)

	var body string
	if m.stacked() {
		body = lipgloss.JoinVertical(lipgloss.Left, m.panel(), "", right)
	} else {
		body = lipgloss.JoinHorizontal(lipgloss.Top, m.panel(), strings.Repeat(" ", paneGap), right)
	}
	return lipgloss.JoinVertical(lipgloss.Left, m.header(), body, m.help.View(m.keys))
}

func (m *Model) header() string {
	sub := StyleDim.Width(m.width).Render(headerSubtitle)
	return lipgloss.JoinVertical(lipgloss.Left,
		styleBadge.Render(headerBadge),
		StyleTitle.Render(headerTitle),
		sub,
		"",
	)
}

func (m *Model) previewHeader() string {
	th := m.derived.Theme
	left := styleEyebrow.Render(previewEye) + "\n" + styleHeading.Render(previewTitle)
	right := preview.Dot(th) + " " + StyleDim.Render(m.derived.Label)
	gap := m.previewWidth() - lipgloss.Width(left) - lipgloss.Width(right)
	if gap < 1 {
		gap = 1
	}
	return lipgloss.JoinHorizontal(lipgloss.Bottom, left, strings.Repeat(" ", gap), right)
}

// inspector lists the raw style tokens behind the preview.
func (m *Model) inspector() string {
	d := m.derived
	parts := []string{
		"font-size " + d.FontSize,
		"line-height " + settings.FormatNumber(d.LineHeight),
		"max-width " + d.MaxWidth,
		"letter-spacing " + d.LetterSpacing,
		"margin " + d.SectionMargin,
		"radius " + d.Edges.Radius,
	}
	return StyleHint.Width(m.previewWidth()).Render(strings.Join(parts, " · "))
}

// panel renders the control panel.
func (m *Model) panel() string {
	s := m.store.Snapshot()
	inner := panelWidth - 2
	if m.stacked() && m.width-2 < inner {
		inner = m.width - 2
	}

	groups := []string{styleHeading.Render(panelTitle)}
	for f := focusTheme; f < focusCount; f++ {
		groups = append(groups, m.control(f, s, inner))
	}
	return lipgloss.NewStyle().Width(inner + 2).Render(strings.Join(groups, "\n"))
}

func (m *Model) control(f focus, s settings.Settings, width int) string {
	focused := m.focus == f
	hint := controlHints[f]
	if field, ok := f.field(); ok {
		v := s.Number(field)
		return controlGroup(sliderHead(field, v, width-2), "", track(field.Range().Fraction(v), width-2), focused, width)
	}
	switch f {
	case focusTheme:
		return controlGroup(styleControl.Render("Theme"), hint, themePicker(s.Theme, m.themeCursor, focused), focused, width)
	case focusFont:
		return controlGroup(styleControl.Render("Font family"), hint, fontPicker(s.Font, m.fontCursor, m.derived.Accent, focused), focused, width)
	case focusReadingGuide:
		return controlGroup(toggle("Reading guide", s.ReadingGuide, width-2), hint, "", focused, width)
	case focusSoftEdges:
		return controlGroup(toggle("Soft edges", s.SoftEdges, width-2), hint, "", focused, width)
	}
	return ""
}

// runWorkbench runs the interactive workbench until the user quits.
func runWorkbench(ctx context.Context, store *settings.Store) (*Model, error) {
	m := NewModel(ctx, store)
	p := tea.NewProgram(m,
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
		tea.WithContext(ctx),
	)
	_, err := p.Run()
	return m, err
}
