package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/matzehuels/readable/pkg/errors"
	"github.com/matzehuels/readable/pkg/preview"
	"github.com/matzehuels/readable/pkg/style"
)

// previewOpts holds the flags of the preview command.
type previewOpts struct {
	settingsFlags
	width int // total cell width, frame included
}

// previewCommand creates the preview command, a one-shot render of the
// sample article.
func (c *CLI) previewCommand() *cobra.Command {
	var opts previewOpts
	cmd := &cobra.Command{
		Use:   "preview",
		Short: "Print the sample article with the given settings",
		Long: `Print one render of the sample article styled with the given settings
and exit. Settings come from the config file and flags, like the workbench.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runPreview(cmd, &opts)
		},
	}
	opts.register(cmd)
	cmd.Flags().IntVarP(&opts.width, "width", "w", defaultPreviewWidth, "total width in cells")
	return cmd
}

func (c *CLI) runPreview(cmd *cobra.Command, opts *previewOpts) error {
	if opts.width < preview.MinWidth {
		return errors.New(errors.ErrCodeInvalidInput, "width must be at least %d cells", preview.MinWidth)
	}
	ctx := cmd.Context()
	s, err := opts.resolve(ctx, cmd)
	if err != nil {
		return err
	}

	d := style.Derive(s)
	out, err := preview.Render(ctx, d, preview.Options{Width: opts.width})
	if err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), out)
	return nil
}
