package cli

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/cobra"

	"github.com/matzehuels/readable/pkg/errors"
	"github.com/matzehuels/readable/pkg/settings"
)

func parseSettingsFlags(t *testing.T, args ...string) (settings.Settings, error) {
	t.Helper()
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	var f settingsFlags
	cmd := &cobra.Command{Use: "test"}
	f.register(cmd)
	if err := cmd.ParseFlags(args); err != nil {
		t.Fatalf("ParseFlags(%v) error = %v", args, err)
	}
	return f.resolve(context.Background(), cmd)
}

func TestResolveDefaults(t *testing.T) {
	s, err := parseSettingsFlags(t)
	if err != nil {
		t.Fatalf("resolve() error = %v", err)
	}
	if s != settings.Defaults() {
		t.Errorf("resolve() = %+v, want defaults", s)
	}
}

func TestResolveFlags(t *testing.T) {
	s, err := parseSettingsFlags(t,
		"--theme", "midnight",
		"--font", "dyslexic",
		"--font-size", "30",
		"--line-height", "1.5",
		"--column-width", "44",
		"--reading-guide",
		"--soft-edges=false",
	)
	if err != nil {
		t.Fatalf("resolve() error = %v", err)
	}

	if s.Theme != settings.Midnight || s.Font != settings.Dyslexic {
		t.Errorf("ids = %v/%v", s.Theme, s.Font)
	}
	if s.FontSize != 26 {
		t.Errorf("FontSize = %v, want 26 (clamped)", s.FontSize)
	}
	if s.LineHeight != 1.5 || s.ColumnWidth != 44 {
		t.Errorf("numbers = %+v", s)
	}
	if !s.ReadingGuide || s.SoftEdges {
		t.Errorf("toggles = %v/%v", s.ReadingGuide, s.SoftEdges)
	}
}

func TestResolveInvalidTheme(t *testing.T) {
	_, err := parseSettingsFlags(t, "--theme", "neon")
	if !errors.Is(err, errors.ErrCodeInvalidTheme) {
		t.Errorf("resolve() error = %v, want INVALID_THEME", err)
	}
}

func TestResolveFlagsOverrideConfig(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "prefs.toml")
	if err := os.WriteFile(path, []byte("theme = \"warm\"\nfont = \"serif\"\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	s, err := parseSettingsFlags(t, "--config", path, "--theme", "dusk")
	if err != nil {
		t.Fatalf("resolve() error = %v", err)
	}
	if s.Theme != settings.Dusk {
		t.Errorf("Theme = %v, want dusk (flag)", s.Theme)
	}
	if s.Font != settings.Serif {
		t.Errorf("Font = %v, want serif (config)", s.Font)
	}
}

func TestRangeUsage(t *testing.T) {
	if got := rangeUsage(settings.FontSize); got != "Font size 14px to 26px" {
		t.Errorf("rangeUsage() = %q", got)
	}
}
