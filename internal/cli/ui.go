package cli

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
)

// =============================================================================
// Color Palette
// =============================================================================

var (
	colorIndigo   = lipgloss.Color("#6366f1") // Slider track start
	colorCyan     = lipgloss.Color("#22d3ee") // Slider track end
	colorSky      = lipgloss.Color("#38bdf8") // Toggle on
	colorLavender = lipgloss.Color("#cbd5f5") // Toggle off
	colorInk      = lipgloss.Color("#0f172a") // Headings
	colorSlate    = lipgloss.Color("#475569") // Body copy
	colorGray     = lipgloss.Color("#64748b") // Hints
	colorBorder   = lipgloss.Color("#d1d5db") // Inactive outlines
	colorGreen    = lipgloss.Color("35")      // Success
	colorYellow   = lipgloss.Color("220")     // Warnings

	colorBadgeBg = lipgloss.Color("#e0e7ff")
	colorBadgeFg = lipgloss.Color("#3730a3")
)

// =============================================================================
// Public Styles
// =============================================================================

var (
	// StyleTitle for main headings.
	StyleTitle = lipgloss.NewStyle().Bold(true).Foreground(colorIndigo)

	// StyleLabel for control labels.
	StyleLabel = lipgloss.NewStyle().Bold(true)

	// StyleHint for control hints and secondary text.
	StyleHint = lipgloss.NewStyle().Foreground(colorGray)

	// StyleDim for muted text.
	StyleDim = lipgloss.NewStyle().Foreground(colorSlate)

	// StyleValue for numeric read-outs.
	StyleValue = lipgloss.NewStyle().Foreground(colorCyan)

	// StyleSuccess for success messages.
	StyleSuccess = lipgloss.NewStyle().Foreground(colorGreen)

	// StyleWarning for warning messages.
	StyleWarning = lipgloss.NewStyle().Foreground(colorYellow)
)

// =============================================================================
// Internal Styles
// =============================================================================

var (
	styleIconWarning = lipgloss.NewStyle().Foreground(colorYellow)
	styleIconInfo    = lipgloss.NewStyle().Foreground(colorGray)

	styleBadge = lipgloss.NewStyle().
			Bold(true).
			Foreground(colorBadgeFg).
			Background(colorBadgeBg).
			Padding(0, 1)
	styleHeading = lipgloss.NewStyle().Bold(true).Foreground(colorInk)
	styleEyebrow = lipgloss.NewStyle().Foreground(colorGray)
)

// =============================================================================
// Icons
// =============================================================================

const (
	iconSuccess = "✓"
	iconWarning = "!"
	iconInfo    = "›"
	iconCursor  = "▸"
)

// =============================================================================
// Status Output
// =============================================================================

func printSuccess(w io.Writer, format string, args ...any) {
	fmt.Fprintln(w, StyleSuccess.Render(iconSuccess)+" "+fmt.Sprintf(format, args...))
}

func printWarning(w io.Writer, format string, args ...any) {
	fmt.Fprintln(w, styleIconWarning.Render(iconWarning)+" "+StyleWarning.Render(fmt.Sprintf(format, args...)))
}

func printInfo(w io.Writer, format string, args ...any) {
	fmt.Fprintln(w, styleIconInfo.Render(iconInfo)+" "+fmt.Sprintf(format, args...))
}

// printDetail prints a detail line (indented).
func printDetail(w io.Writer, format string, args ...any) {
	fmt.Fprintln(w, "  "+StyleDim.Render(fmt.Sprintf(format, args...)))
}

// printKeyValue prints a labeled value.
func printKeyValue(w io.Writer, key, value string) {
	keyStyle := lipgloss.NewStyle().Foreground(colorGray).Width(18)
	fmt.Fprintln(w, keyStyle.Render(key)+" "+StyleValue.Render(value))
}
