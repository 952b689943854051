package cli

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/matzehuels/readable/pkg/preview"
	"github.com/matzehuels/readable/pkg/settings"
)

var tableHeaderStyle = lipgloss.NewStyle().Bold(true).Foreground(colorIndigo).Padding(0, 1)

// themesCommand lists the theme catalog.
func (c *CLI) themesCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "themes",
		Short: "List the available color themes",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Fprintln(cmd.OutOrStdout(), themesTable())
			return nil
		},
	}
}

// fontsCommand lists the font catalog.
func (c *CLI) fontsCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "fonts",
		Short: "List the available font families",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Fprintln(cmd.OutOrStdout(), fontsTable())
			return nil
		},
	}
}

func themesTable() string {
	def := settings.Defaults().Theme
	var rows [][]string
	for _, id := range settings.Themes() {
		th := id.Theme()
		name := id.String()
		if id == def {
			name += " *"
		}
		rows = append(rows, []string{
			preview.Swatch(id, swatchWidth),
			name,
			th.Label,
			th.Background,
			th.Text,
			th.Accent,
			th.Muted,
		})
	}
	return catalogTable(rows, "", "ID", "Label", "Background", "Text", "Accent", "Muted")
}

func fontsTable() string {
	def := settings.Defaults().Font
	var rows [][]string
	for _, id := range settings.Fonts() {
		ch := id.Choice()
		name := id.String()
		if id == def {
			name += " *"
		}
		rows = append(rows, []string{name, ch.Label, ch.Family, ch.Face.String()})
	}
	return catalogTable(rows, "ID", "Label", "Family", "Face")
}

func catalogTable(rows [][]string, headers ...string) string {
	return table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(colorGray)).
		Headers(headers...).
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return tableHeaderStyle
			}
			base := lipgloss.NewStyle().Padding(0, 1)
			if col == 0 {
				return base
			}
			return base.Foreground(colorSlate)
		}).
		Render()
}
