package cli

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/matzehuels/readable/pkg/errors"
	"github.com/matzehuels/readable/pkg/settings"
)

// workbenchOpts holds the flags of the interactive workbench.
type workbenchOpts struct {
	settingsFlags
	logFile string // log destination while the screen is taken over
}

func (o *workbenchOpts) register(cmd *cobra.Command) {
	o.settingsFlags.register(cmd)
	cmd.Flags().StringVar(&o.logFile, "log-file", "", "write logs to this file while the workbench runs")
	_ = cmd.MarkFlagFilename("log-file")
}

// workbenchCommand creates the tui command.
func (c *CLI) workbenchCommand() *cobra.Command {
	var opts workbenchOpts
	cmd := &cobra.Command{
		Use:     "tui",
		Aliases: []string{"workbench"},
		Short:   "Open the interactive reading workbench",
		Long: `Open the interactive workbench: a control panel on the left and a live
preview on the right. Every change is applied as you make it.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runWorkbench(cmd, &opts)
		},
	}
	opts.register(cmd)
	return cmd
}

func (c *CLI) runWorkbench(cmd *cobra.Command, opts *workbenchOpts) error {
	ctx := cmd.Context()
	initial, err := opts.resolve(ctx, cmd)
	if err != nil {
		return err
	}

	// The workbench owns the terminal, so logs go to a file or nowhere.
	restore, err := c.redirectLogs(opts.logFile)
	if err != nil {
		return err
	}

	store := settings.NewStore(initial, settings.WithContext(ctx))
	c.Logger.Info("workbench opened", "session", shortID(store.SessionID()), "theme", initial.Theme, "font", initial.Font)
	prog := newProgress(c.Logger)

	m, err := runWorkbench(ctx, store)
	restore()
	if err != nil {
		return errors.Wrap(errors.ErrCodeRenderFailed, err, "workbench")
	}
	prog.done("workbench closed")

	out := cmd.OutOrStdout()
	if m.renderErr != nil {
		printWarning(out, "last preview failed: %s", errors.UserMessage(m.renderErr))
	}
	printSummary(out, store.Snapshot())
	return nil
}

// printSummary lists s and the flags that reproduce it, since settings are
// not saved between runs.
func printSummary(w io.Writer, s settings.Settings) {
	printSuccess(w, "Reading preferences")
	printKeyValue(w, "Theme", s.Theme.Theme().Label)
	printKeyValue(w, "Font family", s.Font.Choice().Label)
	for _, f := range settings.Fields() {
		r := f.Range()
		printKeyValue(w, r.Label, r.Format(s.Number(f)))
	}
	printKeyValue(w, "Reading guide", onOff(s.ReadingGuide))
	printKeyValue(w, "Soft edges", onOff(s.SoftEdges))

	if args := settingsArgs(s); len(args) > 0 {
		printInfo(w, "Start from here next time with:")
		printDetail(w, "%s %s", appName, strings.Join(args, " "))
	}
}

// settingsArgs returns the flags that differ from the defaults.
func settingsArgs(s settings.Settings) []string {
	d := settings.Defaults()
	var args []string
	if s.Theme != d.Theme {
		args = append(args, "--theme", s.Theme.String())
	}
	if s.Font != d.Font {
		args = append(args, "--font", s.Font.String())
	}
	for _, f := range settings.Fields() {
		if v := s.Number(f); v != d.Number(f) {
			args = append(args, "--"+strings.ReplaceAll(f.String(), "_", "-"), settings.FormatNumber(v))
		}
	}
	if s.ReadingGuide != d.ReadingGuide {
		args = append(args, fmt.Sprintf("--reading-guide=%t", s.ReadingGuide))
	}
	if s.SoftEdges != d.SoftEdges {
		args = append(args, fmt.Sprintf("--soft-edges=%t", s.SoftEdges))
	}
	return args
}

func onOff(b bool) string {
	if b {
		return "on"
	}
	return "off"
}

// redirectLogs points the logger at path, or discards output when path is
// empty. The returned func restores the writer the CLI was created with.
func (c *CLI) redirectLogs(path string) (func(), error) {
	if path == "" {
		c.Logger.SetOutput(io.Discard)
		return func() { c.Logger.SetOutput(c.logOut) }, nil
	}
	if err := errors.ValidateConfigPath(path); err != nil {
		return nil, err
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidInput, err, "open log file %s", path)
	}
	c.Logger.SetOutput(f)
	return func() {
		c.Logger.SetOutput(c.logOut)
		_ = f.Close()
	}, nil
}
