// Package observability provides hooks for logging and instrumentation.
//
// This package enables optional instrumentation without adding hard
// dependencies on specific backends. The command-line application registers
// hooks at startup; the settings store and the preview renderer emit events.
//
// # Architecture
//
// The package uses a simple hooks pattern:
//   - Define hook interfaces for different event categories
//   - Provide no-op default implementations
//   - Allow registration of custom implementations at startup
//
// Hook implementations are called synchronously on the UI goroutine and
// must not block.
//
// # Usage
//
// Register hooks at application startup:
//
//	func main() {
//	    observability.SetSettingsHooks(&mySettingsHooks{})
//	    observability.SetRenderHooks(&myRenderHooks{})
//	    // ... run application
//	}
//
// Libraries call hooks to emit events:
//
//	observability.Settings().OnUpdate(ctx, update)
//	observability.Render().OnRender(ctx, width, duration, err)
package observability

import (
	"context"
	"sync"
	"time"
)

// =============================================================================
// Settings Hooks
// =============================================================================

// Update describes one call to a settings update operation.
type Update struct {
	Session string // Store session id
	Field   string // Setting name, e.g. "font_size" or "theme"
	Input   any    // Value passed by the caller
	Old     any    // Stored value before the call
	New     any    // Stored value after the call
	Clamped bool   // Input was adjusted or rejected
	Changed bool   // Stored value changed
}

// SettingsHooks receives events from the settings store.
type SettingsHooks interface {
	// OnUpdate records an update operation, whether or not it changed anything.
	OnUpdate(ctx context.Context, u Update)

	// OnReset records a reset to defaults.
	OnReset(ctx context.Context, session string)
}

// =============================================================================
// Render Hooks
// =============================================================================

// RenderHooks receives events from the preview renderer.
type RenderHooks interface {
	// OnRender records one preview render.
	OnRender(ctx context.Context, width int, duration time.Duration, err error)
}

// =============================================================================
// No-op Implementations
// =============================================================================

// NoopSettingsHooks is a no-op implementation of SettingsHooks.
type NoopSettingsHooks struct{}

func (NoopSettingsHooks) OnUpdate(context.Context, Update) {}
func (NoopSettingsHooks) OnReset(context.Context, string)  {}

// NoopRenderHooks is a no-op implementation of RenderHooks.
type NoopRenderHooks struct{}

func (NoopRenderHooks) OnRender(context.Context, int, time.Duration, error) {}

// =============================================================================
// Global Hook Registry
// =============================================================================

var (
	settingsHooks SettingsHooks = NoopSettingsHooks{}
	renderHooks   RenderHooks   = NoopRenderHooks{}
	hooksMu       sync.RWMutex
)

// SetSettingsHooks registers custom settings hooks.
// This should be called once at application startup before any store is used.
func SetSettingsHooks(h SettingsHooks) {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	if h != nil {
		settingsHooks = h
	}
}

// SetRenderHooks registers custom render hooks.
func SetRenderHooks(h RenderHooks) {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	if h != nil {
		renderHooks = h
	}
}

// Settings returns the registered settings hooks.
func Settings() SettingsHooks {
	hooksMu.RLock()
	defer hooksMu.RUnlock()
	return settingsHooks
}

// Render returns the registered render hooks.
func Render() RenderHooks {
	hooksMu.RLock()
	defer hooksMu.RUnlock()
	return renderHooks
}

// Reset restores all hooks to their no-op defaults.
// This is primarily useful for testing.
func Reset() {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	settingsHooks = NoopSettingsHooks{}
	renderHooks = NoopRenderHooks{}
}
