// Package cli implements the readable command-line interface.
package cli

import (
	"io"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/matzehuels/readable/pkg/buildinfo"
)

// =============================================================================
// Constants
// =============================================================================

const (
	// appName is the application name used for directories and display.
	appName = "readable"

	// defaultPreviewWidth is the cell width of a static preview.
	defaultPreviewWidth = 80
)

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

// =============================================================================
// CLI - Central CLI State
// =============================================================================

// CLI holds shared state for all commands.
type CLI struct {
	Logger *log.Logger
	logOut io.Writer // logger output outside the workbench
}

// New creates a new CLI instance with a default logger.
func New(w io.Writer, level log.Level) *CLI {
	return &CLI{Logger: newLogger(w, level), logOut: w}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// RootCommand creates the root cobra command with all subcommands registered.
// Running the root command without a subcommand opens the workbench.
func (c *CLI) RootCommand() *cobra.Command {
	var opts workbenchOpts

	root := &cobra.Command{
		Use:          appName,
		Short:        "Tune reading preferences in a live preview",
		Long:         `Readable is an adjustable reading environment. Tune typography, rhythm, and contrast in a live preview until the page feels calm.`,
		Version:      buildinfo.Version,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cmd.SetContext(withLogger(cmd.Context(), c.Logger))
			registerHooks()
			c.Logger.Debug("starting", "build", buildinfo.Short(appName), "command", cmd.Name())
			return nil
		},
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runWorkbench(cmd, &opts)
		},
	}
	opts.register(root)
	root.SetVersionTemplate(buildinfo.Template())

	// Register all subcommands
	root.AddCommand(c.workbenchCommand())
	root.AddCommand(c.previewCommand())
	root.AddCommand(c.styleCommand())
	root.AddCommand(c.themesCommand())
	root.AddCommand(c.fontsCommand())
	root.AddCommand(c.completionCommand())
	root.AddCommand(c.versionCommand())

	return root
}
