// Package trace owns the viewport engine's process-wide debug-mode toggle
// and the diagnostic trace emission gated behind it (SPEC_FULL.md §5, §6).
// Debug mode never influences observable semantics — only whether Emit
// writes anything.
package trace

import (
	"fmt"
	"os"
	"sync/atomic"

	"github.com/dustin/go-humanize"
	"github.com/google/uuid"
	"github.com/kr/pretty"
	"github.com/mattn/go-isatty"
)

var debugMode atomic.Bool

// SetDebugMode is the viewport_set_debug_mode hook: a process-wide toggle,
// initialized off at engine load, mutated only through this call.
func SetDebugMode(flag bool) {
	debugMode.Store(flag)
}

// DebugMode reports the current state of the toggle.
func DebugMode() bool {
	return debugMode.Load()
}

var colorCapable = isatty.IsTerminal(os.Stderr.Fd())

// Emit writes a diagnostic trace line for event, with fields rendered via
// kr/pretty, when debug mode is on. It is a no-op otherwise. Each call is
// tagged with a fresh correlation id so that interleaved events from
// different views (construction, subset, materialize) can be told apart in
// the emitted log.
func Emit(event string, fields ...any) {
	if !debugMode.Load() {
		return
	}
	id := uuid.New()
	prefix := fmt.Sprintf("[viewport %s]", id.String()[:8])
	if colorCapable {
		prefix = "\x1b[2m" + prefix + "\x1b[0m"
	}
	fmt.Fprintf(os.Stderr, "%s %s %s\n", prefix, event, pretty.Sprint(fields...))
}

// EmitSize is a small convenience wrapper around Emit for events that want
// to report a byte count in human-readable form (e.g. a freshly allocated
// materialization buffer or bitmap word array).
func EmitSize(event string, label string, bytes uint64) {
	Emit(event, label+"="+humanize.Bytes(bytes))
}
