package cli

import (
	"context"
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/readable/pkg/observability"
)

// newLogger creates a new logger with timestamp formatting.
// The logger writes to w and filters messages at the specified level.
// Timestamps are formatted as "HH:MM:SS.ms" (e.g., "14:32:01.45").
func newLogger(w io.Writer, level log.Level) *log.Logger {
	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		TimeFormat:      "15:04:05.00",
		Level:           level,
	})
}

// progress tracks the start time of an operation and logs completion with elapsed duration.
type progress struct {
	logger *log.Logger
	start  time.Time
}

func newProgress(l *log.Logger) *progress {
	return &progress{logger: l, start: time.Now()}
}

// done logs msg along with the elapsed time since progress was created.
// Example output: "Workbench closed (1m12.034s)"
func (p *progress) done(msg string) {
	p.logger.Infof("%s (%s)", msg, time.Since(p.start).Round(time.Millisecond))
}

type ctxKey int

const loggerKey ctxKey = 0

// withLogger returns a new context with the given logger attached.
func withLogger(ctx context.Context, l *log.Logger) context.Context {
	return context.WithValue(ctx, loggerKey, l)
}

// loggerFromContext retrieves the logger from ctx.
// If no logger is attached, it returns log.Default().
func loggerFromContext(ctx context.Context) *log.Logger {
	if ctx == nil {
		return log.Default()
	}
	if l, ok := ctx.Value(loggerKey).(*log.Logger); ok {
		return l
	}
	return log.Default()
}

// =============================================================================
// Observability hooks backed by the context logger
// =============================================================================

// logHooks writes store and render events to the logger found in the
// event context.
type logHooks struct{}

func (logHooks) OnUpdate(ctx context.Context, u observability.Update) {
	l := loggerFromContext(ctx).With("session", shortID(u.Session), "field", u.Field)
	switch {
	case u.Clamped && !u.Changed:
		l.Debug("input ignored", "input", u.Input, "kept", u.Old)
	case u.Clamped:
		l.Debug("input clamped", "input", u.Input, "old", u.Old, "new", u.New)
	case u.Changed:
		l.Debug("setting updated", "old", u.Old, "new", u.New)
	}
}

func (logHooks) OnReset(ctx context.Context, session string) {
	loggerFromContext(ctx).Info("settings reset to defaults", "session", shortID(session))
}

func (logHooks) OnRender(ctx context.Context, width int, d time.Duration, err error) {
	l := loggerFromContext(ctx)
	if err != nil {
		l.Error("preview render failed", "width", width, "err", err)
		return
	}
	l.Debug("preview rendered", "width", width, "took", d.Round(time.Microsecond))
}

// registerHooks installs logHooks as the global observability hooks.
func registerHooks() {
	observability.SetSettingsHooks(logHooks{})
	observability.SetRenderHooks(logHooks{})
}

func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}
