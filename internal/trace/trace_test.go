package trace

import "testing"

func TestSetDebugModeRoundTrips(t *testing.T) {
	t.Cleanup(func() { SetDebugMode(false) })

	SetDebugMode(false)
	if DebugMode() {
		t.Fatalf("DebugMode() = true, want false")
	}
	SetDebugMode(true)
	if !DebugMode() {
		t.Fatalf("DebugMode() = false, want true")
	}
}

func TestEmitIsNoopWhenDisabled(t *testing.T) {
	SetDebugMode(false)
	// Emit must not panic even though nothing is listening; this just
	// exercises the disabled fast path.
	Emit("test.event", "a", 1)
}

func TestEmitSizeIsNoopWhenDisabled(t *testing.T) {
	SetDebugMode(false)
	EmitSize("test.materialize", "buffer", 4096)
}

func TestEmitSizeRunsHumanizePathWhenEnabled(t *testing.T) {
	SetDebugMode(true)
	t.Cleanup(func() { SetDebugMode(false) })
	// Exercises the humanize.Bytes formatting path; just must not panic.
	EmitSize("test.materialize", "buffer", 1 << 20)
}
