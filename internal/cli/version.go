package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/matzehuels/readable/pkg/buildinfo"
)

// versionCommand prints the build information.
func (c *CLI) versionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			_, err := fmt.Fprintln(cmd.OutOrStdout(), buildinfo.String())
			return err
		},
	}
}
