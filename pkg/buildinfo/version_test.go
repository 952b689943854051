package buildinfo

import (
	"strings"
	"testing"
)

func TestTemplate(t *testing.T) {
	Version, Commit, Date = "v0.3.0", "abc123", "2026-10-01"
	defer func() { Version, Commit, Date = "dev", "none", "unknown" }()

	tmpl := Template()
	for _, want := range []string{"{{.Name}} version v0.3.0", "commit: abc123", "built: 2026-10-01"} {
		if !strings.Contains(tmpl, want) {
			t.Errorf("Template() missing %q: %s", want, tmpl)
		}
	}
	if !strings.HasPrefix(String(), "version: v0.3.0\n") {
		t.Errorf("String() = %q", String())
	}
}

func TestShort(t *testing.T) {
	if got := Short("readable"); got != "readable "+Version {
		t.Errorf("Short() = %q", got)
	}
}
