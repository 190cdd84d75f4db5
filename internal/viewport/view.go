// Package viewport implements the three lazy vector views — Slice, Mosaic,
// and Prism — and the subset-of-a-subset composition algorithm described in
// SPEC_FULL.md §4. The engine is single-threaded cooperative (SPEC_FULL.md
// §5): no operation suspends, no internal locks are taken, and concurrent
// use of the same view from multiple goroutines is not supported.
package viewport

import (
	"viewports/internal/elemkind"
	"viewports/internal/indexvec"
	"viewports/internal/vecsource"
)

// View is the host's alternative-representation protocol (SPEC_FULL.md §6),
// implemented once per viewport kind. Accessors dispatch through Go's
// interface method calls; the class table in registry.go only names each
// (view kind, element kind) pair for Inspect.
type View interface {
	// Len returns the logical length in O(1). It never changes after
	// construction, regardless of subsequent materialization.
	Len() int

	// Kind returns the element kind of the underlying source.
	Kind() elemkind.Kind

	// Duplicate produces an independent (deep) or sharing (shallow) copy,
	// per SPEC_FULL.md §3 invariant 5.
	Duplicate(deep bool) View

	// Inspect recurses into the selection and data cells for diagnostics.
	Inspect() string

	// DataPtr returns a raw, length-Len() source vector. For a writeable
	// request it forces materialization if not already materialized. A
	// Slice may alias the underlying source's buffer for a read-only
	// request; Mosaic and Prism always materialize first.
	DataPtr(writeable bool) vecsource.Source

	// DataPtrOrNil is the read-only pointer path; it may force
	// materialization for Mosaic/Prism, exactly as DataPtr(false) would.
	DataPtrOrNil() vecsource.Source

	// Element returns the logical element at position i as a length-1
	// source vector. Out of the three kinds, only Slice tolerates i
	// outside [0, Len()) — it returns NA rather than raising a fatal
	// condition (SPEC_FULL.md §4.4).
	Element(i int) vecsource.Source

	// GetRegion bulk-reads n elements starting at i into a fresh source
	// vector, returning the number of elements actually filled.
	GetRegion(i, n int) (vecsource.Source, int)

	// ExtractSubset is the composition entry point (SPEC_FULL.md §4.7).
	// Exactly one of the two return values is non-nil: a materialized
	// vector when no tighter viewport can express the result, or a
	// refined View otherwise.
	ExtractSubset(j indexvec.Vector) (vecsource.Source, View)

	// isMaterialized reports whether M is present. Package-private: it is
	// only meaningful to the composition algorithm in compose.go.
	isMaterialized() bool

	// source returns the shared backing vector, for the composition
	// algorithm's translation arithmetic.
	source() vecsource.Source
}
