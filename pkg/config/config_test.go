package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/matzehuels/readable/pkg/errors"
	"github.com/matzehuels/readable/pkg/settings"
)

func TestParse(t *testing.T) {
	data := []byte(`
theme = "midnight"
font = "serif"
font_size = 20
line_height = 1.6
column_width = 60
letter_spacing = 0.02
reading_guide = true
soft_edges = false
`)
	res, err := Parse(data)
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}

	want := settings.Settings{
		Theme:            settings.Midnight,
		Font:             settings.Serif,
		FontSize:         20,
		LineHeight:       1.6,
		ParagraphSpacing: 1.2,
		ColumnWidth:      60,
		LetterSpacing:    0.02,
		ReadingGuide:     true,
		SoftEdges:        false,
	}
	if res.Settings != want {
		t.Errorf("Settings = %+v, want %+v", res.Settings, want)
	}
	if len(res.Unknown) != 0 {
		t.Errorf("Unknown = %v, want none", res.Unknown)
	}
}

func TestParseClampsNumbers(t *testing.T) {
	res, err := Parse([]byte("font_size = 40\ncolumn_width = 10\nletter_spacing = -1\n"))
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	s := res.Settings
	if s.FontSize != 26 || s.ColumnWidth != 40 || s.LetterSpacing != 0 {
		t.Errorf("clamped settings = %+v", s)
	}
}

func TestParseEmptyIsDefaults(t *testing.T) {
	res, err := Parse(nil)
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	if res.Settings != settings.Defaults() {
		t.Errorf("Settings = %+v, want defaults", res.Settings)
	}
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name string
		data string
		code errors.Code
	}{
		{"bad toml", "theme = ", errors.ErrCodeInvalidConfig},
		{"unknown theme", `theme = "neon"`, errors.ErrCodeInvalidTheme},
		{"unknown font", `font = "comic"`, errors.ErrCodeInvalidFont},
		{"wrong type", `font_size = "big"`, errors.ErrCodeInvalidConfig},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.data))
			if err == nil {
				t.Fatal("Parse() should fail")
			}
			if !errors.Is(err, tt.code) {
				t.Errorf("error code = %v, want %v", errors.GetCode(err), tt.code)
			}
		})
	}
}

func TestParseUnknownKeys(t *testing.T) {
	res, err := Parse([]byte("theme = \"dusk\"\nzoom = 3\n"))
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	if len(res.Unknown) != 1 || res.Unknown[0] != "zoom" {
		t.Errorf("Unknown = %v, want [zoom]", res.Unknown)
	}
}

func TestLoadExplicitPath(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "prefs.toml")
	if err := os.WriteFile(path, []byte(`theme = "warm"`), 0o600); err != nil {
		t.Fatal(err)
	}

	res, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if res.Path != path {
		t.Errorf("Path = %q, want %q", res.Path, path)
	}
	if res.Settings.Theme != settings.Warm {
		t.Errorf("Theme = %v, want warm", res.Settings.Theme)
	}
	if res.String() != "config "+path {
		t.Errorf("String() = %q", res.String())
	}
}

func TestLoadMissingExplicitPath(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.toml"))
	if !errors.Is(err, errors.ErrCodeFileNotFound) {
		t.Errorf("Load() error = %v, want FILE_NOT_FOUND", err)
	}
}

func TestLoadDefaultPath(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", dir)

	res, err := Load("")
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if res.Path != "" || res.Settings != settings.Defaults() {
		t.Errorf("missing default config should yield defaults, got %+v", res)
	}
	if res.String() != "defaults" {
		t.Errorf("String() = %q, want defaults", res.String())
	}

	if err := os.MkdirAll(filepath.Join(dir, appName), 0o755); err != nil {
		t.Fatal(err)
	}
	path := filepath.Join(dir, appName, fileName)
	if err := os.WriteFile(path, []byte("soft_edges = false\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	res, err = Load("")
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if res.Path != path || res.Settings.SoftEdges {
		t.Errorf("Load() = %+v", res)
	}
}

func TestDefaultPath(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", "/tmp/xdg")
	got, err := DefaultPath()
	if err != nil {
		t.Fatal(err)
	}
	if want := filepath.Join("/tmp/xdg", "readable", "config.toml"); got != want {
		t.Errorf("DefaultPath() = %q, want %q", got, want)
	}
}

func TestApplyKeepsBaseOnError(t *testing.T) {
	bad := "neon"
	base := settings.Defaults()
	base.Theme = settings.Dusk
	got, err := File{Theme: &bad}.Apply(base)
	if err == nil {
		t.Fatal("Apply() should fail")
	}
	if got != base {
		t.Errorf("Apply() = %+v, want base", got)
	}
}

func TestLoadErrorsKeepReason(t *testing.T) {
	tests := []struct {
		name string
		data string
		code errors.Code
		want string
	}{
		{"unknown theme", `theme = "neon"`, errors.ErrCodeInvalidTheme, `unknown theme "neon"`},
		{"wrong type", `font_size = "big"`, errors.ErrCodeInvalidConfig, "font_size"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "c.toml")
			if err := os.WriteFile(path, []byte(tt.data), 0o600); err != nil {
				t.Fatal(err)
			}

			_, err := Load(path)
			if !errors.Is(err, tt.code) {
				t.Fatalf("Load() code = %v, want %v", errors.GetCode(err), tt.code)
			}
			msg := errors.UserMessage(err)
			if !strings.Contains(msg, path) || !strings.Contains(msg, tt.want) {
				t.Errorf("UserMessage() = %q, want path and %q", msg, tt.want)
			}
		})
	}
}
