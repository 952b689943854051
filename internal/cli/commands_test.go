package cli

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"strconv"
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"

	"github.com/matzehuels/readable/pkg/buildinfo"
	"github.com/matzehuels/readable/pkg/errors"
	"github.com/matzehuels/readable/pkg/observability"
	"github.com/matzehuels/readable/pkg/preview"
	"github.com/matzehuels/readable/pkg/settings"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	t.Cleanup(observability.Reset)

	c := New(io.Discard, LogInfo)
	root := c.RootCommand()
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(io.Discard)
	root.SetArgs(args)
	err := root.ExecuteContext(context.Background())
	return out.String(), err
}

func TestStyleCommandCSS(t *testing.T) {
	out, err := execute(t, "style", "--theme", "dusk", "--font-size", "20")
	if err != nil {
		t.Fatalf("style error = %v", err)
	}
	for _, want := range []string{
		defaultSelector + " {",
		"background-color: " + settings.Dusk.Theme().Background + ";",
		"font-size: 20px;",
		defaultSelector + " .tips {",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}

func TestStyleCommandSelector(t *testing.T) {
	out, err := execute(t, "style", "--selector", "article")
	if err != nil {
		t.Fatalf("style error = %v", err)
	}
	if !strings.HasPrefix(out, "article {") {
		t.Errorf("output = %q", out)
	}
}

func TestStyleCommandJSON(t *testing.T) {
	out, err := execute(t, "style", "--format", "json", "--reading-guide")
	if err != nil {
		t.Fatalf("style error = %v", err)
	}

	var doc styleDoc
	if err := json.Unmarshal([]byte(out), &doc); err != nil {
		t.Fatalf("invalid json: %v\n%s", err, out)
	}
	if doc.Theme != "bright" || doc.Font != "sans" {
		t.Errorf("ids = %s/%s", doc.Theme, doc.Font)
	}
	var hasImage bool
	for _, d := range doc.Surface {
		if d.Property == "background-image" {
			hasImage = true
		}
	}
	if !hasImage {
		t.Error("reading guide should add background-image")
	}
	if doc.Settings["reading_guide"] != true {
		t.Errorf("settings = %v", doc.Settings)
	}
}

func TestStyleCommandErrors(t *testing.T) {
	tests := []struct {
		name string
		args []string
		code errors.Code
	}{
		{"unknown format", []string{"style", "--format", "xml"}, errors.ErrCodeInvalidFormat},
		{"empty selector", []string{"style", "--selector", " "}, errors.ErrCodeInvalidInput},
		{"unknown font", []string{"style", "--font", "comic"}, errors.ErrCodeInvalidFont},
		{"missing config", []string{"style", "--config", "/nonexistent/readable.toml"}, errors.ErrCodeFileNotFound},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := execute(t, tt.args...)
			if !errors.Is(err, tt.code) {
				t.Errorf("error = %v, want %s", err, tt.code)
			}
		})
	}
}

func TestPreviewCommand(t *testing.T) {
	out, err := execute(t, "preview", "--width", "90")
	if err != nil {
		t.Fatalf("preview error = %v", err)
	}
	if !strings.Contains(out, "Designing for Quiet Focus") {
		t.Errorf("preview missing the first section title:\n%s", out)
	}
}

func TestPreviewCommandWidth(t *testing.T) {
	for _, w := range []int{4, preview.MinColumns, preview.MinWidth - 1} {
		_, err := execute(t, "preview", "--width", strconv.Itoa(w))
		if !errors.Is(err, errors.ErrCodeInvalidInput) {
			t.Errorf("width %d: error = %v, want INVALID_INPUT", w, err)
		}
	}

	for _, w := range []int{preview.MinWidth, 40} {
		out, err := execute(t, "preview", "--width", strconv.Itoa(w))
		if err != nil {
			t.Fatalf("width %d: error = %v", w, err)
		}
		if got := lipgloss.Width(out); got > w {
			t.Errorf("width %d: printed %d cells", w, got)
		}
	}
}

func TestCatalogCommands(t *testing.T) {
	out, err := execute(t, "themes")
	if err != nil {
		t.Fatalf("themes error = %v", err)
	}
	for _, id := range settings.Themes() {
		if !strings.Contains(out, id.Theme().Label) {
			t.Errorf("themes missing %q", id.Theme().Label)
		}
	}
	if !strings.Contains(out, "bright *") {
		t.Error("themes should mark the default")
	}

	out, err = execute(t, "fonts")
	if err != nil {
		t.Fatalf("fonts error = %v", err)
	}
	for _, want := range []string{"dyslexic", "italic", "var(--font-family-serif)"} {
		if !strings.Contains(out, want) {
			t.Errorf("fonts missing %q", want)
		}
	}
}

func TestCompletionCommand(t *testing.T) {
	out, err := execute(t, "completion", "bash")
	if err != nil {
		t.Fatalf("completion error = %v", err)
	}
	if !strings.Contains(out, "readable") {
		t.Error("completion script should mention the command name")
	}
}

func TestRootCommandSubcommands(t *testing.T) {
	root := New(io.Discard, LogInfo).RootCommand()
	want := map[string]bool{"tui": false, "preview": false, "style": false, "themes": false, "fonts": false, "completion": false, "version": false}
	for _, cmd := range root.Commands() {
		if _, ok := want[cmd.Name()]; ok {
			want[cmd.Name()] = true
		}
	}
	for name, found := range want {
		if !found {
			t.Errorf("missing subcommand %q", name)
		}
	}
	if root.Flags().Lookup("theme") == nil {
		t.Error("root should accept the settings flags")
	}
}

func TestSettingsArgs(t *testing.T) {
	if args := settingsArgs(settings.Defaults()); len(args) != 0 {
		t.Errorf("settingsArgs(defaults) = %v, want none", args)
	}

	s := settings.Defaults()
	s.Theme = settings.Midnight
	s.LineHeight = 1.9
	s.SoftEdges = false
	got := strings.Join(settingsArgs(s), " ")
	want := "--theme midnight --line-height 1.9 --soft-edges=false"
	if got != want {
		t.Errorf("settingsArgs() = %q, want %q", got, want)
	}
}

func TestSettingsArgsRoundTrip(t *testing.T) {
	s := settings.Defaults()
	s.Font = settings.Dyslexic
	s.ColumnWidth = 50
	s.LetterSpacing = 0.07
	s.ReadingGuide = true

	got, err := parseSettingsFlags(t, settingsArgs(s)...)
	if err != nil {
		t.Fatalf("resolve() error = %v", err)
	}
	if got != s {
		t.Errorf("round trip = %+v, want %+v", got, s)
	}
}

func TestPrintSummary(t *testing.T) {
	var buf bytes.Buffer
	s := settings.Defaults()
	s.Theme = settings.Warm
	printSummary(&buf, s)

	out := buf.String()
	for _, want := range []string{"Soft Sepia", "18px", "Soft edges", "readable --theme warm"} {
		if !strings.Contains(out, want) {
			t.Errorf("summary missing %q:\n%s", want, out)
		}
	}
}

func TestVersionCommand(t *testing.T) {
	out, err := execute(t, "version")
	if err != nil {
		t.Fatalf("version error = %v", err)
	}
	if !strings.HasPrefix(out, "version: "+buildinfo.Version) {
		t.Errorf("version output = %q", out)
	}
}
