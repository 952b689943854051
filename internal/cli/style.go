package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/matzehuels/readable/pkg/errors"
	"github.com/matzehuels/readable/pkg/style"
)

const (
	formatCSS  = "css"
	formatJSON = "json"

	defaultSelector = ".reading-surface"
)

// styleOpts holds the flags of the style command.
type styleOpts struct {
	settingsFlags
	format   string
	selector string
}

// styleDoc is the JSON shape of a derived style.
type styleDoc struct {
	Theme    string              `json:"theme"`
	Font     string              `json:"font"`
	Surface  []style.Declaration `json:"surface"`
	Section  []style.Declaration `json:"section"`
	Divider  []style.Declaration `json:"divider"`
	Settings map[string]any      `json:"settings"`
}

// styleCommand creates the style command, which prints the derived style.
func (c *CLI) styleCommand() *cobra.Command {
	var opts styleOpts
	cmd := &cobra.Command{
		Use:   "style",
		Short: "Print the derived style as CSS or JSON",
		Example: `  readable style --theme dusk --font serif
  readable style --format json --reading-guide`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runStyle(cmd, &opts)
		},
	}
	opts.register(cmd)
	cmd.Flags().StringVarP(&opts.format, "format", "f", formatCSS, "output format: css, json")
	cmd.Flags().StringVar(&opts.selector, "selector", defaultSelector, "CSS selector of the reading surface")
	_ = cmd.RegisterFlagCompletionFunc("format", cobra.FixedCompletions([]string{formatCSS, formatJSON}, cobra.ShellCompDirectiveNoFileComp))
	return cmd
}

func (c *CLI) runStyle(cmd *cobra.Command, opts *styleOpts) error {
	format := strings.ToLower(strings.TrimSpace(opts.format))
	if format != formatCSS && format != formatJSON {
		return errors.New(errors.ErrCodeInvalidFormat, "unknown format %q (use css or json)", opts.format)
	}
	if strings.TrimSpace(opts.selector) == "" {
		return errors.New(errors.ErrCodeInvalidInput, "selector cannot be empty")
	}

	s, err := opts.resolve(cmd.Context(), cmd)
	if err != nil {
		return err
	}
	d := style.Derive(s)
	loggerFromContext(cmd.Context()).Debug("derived style", "theme", d.Theme, "font", d.Font, "guide", d.Guide != nil)

	if format == formatJSON {
		return writeStyleJSON(cmd.OutOrStdout(), d)
	}
	_, err = fmt.Fprint(cmd.OutOrStdout(), d.CSS(opts.selector))
	return err
}

func writeStyleJSON(w io.Writer, d style.Derived) error {
	doc := styleDoc{
		Theme:   d.Theme.String(),
		Font:    d.Font.String(),
		Surface: d.Declarations(),
		Section: d.SectionDeclarations(),
		Divider: d.DividerDeclarations(),
		Settings: map[string]any{
			"column_width":      d.Columns,
			"paragraph_spacing": d.ParagraphSpacing,
			"letter_spacing":    d.LetterSpacingEm,
			"line_height":       d.LineHeight,
			"reading_guide":     d.Guide != nil,
			"soft_edges":        d.Edges.Soft,
		},
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(doc); err != nil {
		return errors.Wrap(errors.ErrCodeInternal, err, "encode style")
	}
	return nil
}
