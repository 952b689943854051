package cli

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/matzehuels/readable/pkg/config"
	"github.com/matzehuels/readable/pkg/settings"
)

// settingsFlags seeds the initial settings of a command from flags and the
// config file. Flags win over the config file; both are clamped.
type settingsFlags struct {
	configPath string

	theme            string
	font             string
	fontSize         float64
	lineHeight       float64
	paragraphSpacing float64
	columnWidth      float64
	letterSpacing    float64
	readingGuide     bool
	softEdges        bool
}

func (f *settingsFlags) register(cmd *cobra.Command) {
	d := settings.Defaults()
	fs := cmd.Flags()

	fs.StringVar(&f.configPath, "config", "", "config file (default $XDG_CONFIG_HOME/readable/config.toml)")
	fs.StringVar(&f.theme, "theme", d.Theme.String(), "theme: bright, warm, dusk, midnight")
	fs.StringVar(&f.font, "font", d.Font.String(), "font: sans, serif, dyslexic")
	fs.Float64Var(&f.fontSize, "font-size", d.FontSize, rangeUsage(settings.FontSize))
	fs.Float64Var(&f.lineHeight, "line-height", d.LineHeight, rangeUsage(settings.LineHeight))
	fs.Float64Var(&f.paragraphSpacing, "paragraph-spacing", d.ParagraphSpacing, rangeUsage(settings.ParagraphSpacing))
	fs.Float64Var(&f.columnWidth, "column-width", d.ColumnWidth, rangeUsage(settings.ColumnWidth))
	fs.Float64Var(&f.letterSpacing, "letter-spacing", d.LetterSpacing, rangeUsage(settings.LetterSpacing))
	fs.BoolVar(&f.readingGuide, "reading-guide", d.ReadingGuide, "highlight bands to keep your place")
	fs.BoolVar(&f.softEdges, "soft-edges", d.SoftEdges, "rounded corners and a drop shadow")

	_ = cmd.RegisterFlagCompletionFunc("theme", func(*cobra.Command, []string, string) ([]string, cobra.ShellCompDirective) {
		var names []string
		for _, id := range settings.Themes() {
			names = append(names, id.String()+"\t"+id.Theme().Label)
		}
		return names, cobra.ShellCompDirectiveNoFileComp
	})
	_ = cmd.RegisterFlagCompletionFunc("font", func(*cobra.Command, []string, string) ([]string, cobra.ShellCompDirective) {
		var names []string
		for _, id := range settings.Fonts() {
			names = append(names, id.String()+"\t"+id.Choice().Label)
		}
		return names, cobra.ShellCompDirectiveNoFileComp
	})
	_ = cmd.MarkFlagFilename("config", "toml")
}

func rangeUsage(f settings.Field) string {
	r := f.Range()
	return r.Label + " " + r.Format(r.Min) + " to " + r.Format(r.Max)
}

// resolve loads the config file and overlays the flags the user set.
func (f *settingsFlags) resolve(ctx context.Context, cmd *cobra.Command) (settings.Settings, error) {
	res, err := config.Load(f.configPath)
	if err != nil {
		return settings.Settings{}, err
	}
	logger := loggerFromContext(ctx)
	logger.Debug("loaded settings", "source", res.String())
	for _, key := range res.Unknown {
		logger.Warn("unknown config key", "key", key, "source", res.String())
	}

	s := res.Settings
	fs := cmd.Flags()
	if fs.Changed("theme") {
		id, err := settings.ParseThemeID(f.theme)
		if err != nil {
			return settings.Settings{}, err
		}
		s.Theme = id
	}
	if fs.Changed("font") {
		id, err := settings.ParseFontID(f.font)
		if err != nil {
			return settings.Settings{}, err
		}
		s.Font = id
	}
	numbers := []struct {
		flag  string
		field settings.Field
		value float64
	}{
		{"font-size", settings.FontSize, f.fontSize},
		{"line-height", settings.LineHeight, f.lineHeight},
		{"paragraph-spacing", settings.ParagraphSpacing, f.paragraphSpacing},
		{"column-width", settings.ColumnWidth, f.columnWidth},
		{"letter-spacing", settings.LetterSpacing, f.letterSpacing},
	}
	for _, n := range numbers {
		if !fs.Changed(n.flag) {
			continue
		}
		if r := n.field.Range(); !r.Contains(n.value) {
			logger.Warn("value out of range, clamping", "flag", n.flag, "value", n.value, "min", r.Min, "max", r.Max)
		}
		s = s.WithNumber(n.field, n.value)
	}
	if fs.Changed("reading-guide") {
		s.ReadingGuide = f.readingGuide
	}
	if fs.Changed("soft-edges") {
		s.SoftEdges = f.softEdges
	}
	return s.Normalize(), nil
}
