package viewport

import (
	"fmt"

	"viewports/internal/elemkind"
	"viewports/internal/hosterr"
	"viewports/internal/trace"
	"viewports/internal/vecsource"
)

// Slice is a contiguous-window view: (S, start, size). See SPEC_FULL.md §4.4.
type Slice struct {
	src   vecsource.Source
	start int
	size  int
	mat   vecsource.Source // present iff materialized
}

// NewSlice constructs a Slice over source[start, start+size). start is a
// 0-based machine integer; NewSlice does no 1-based conversion, and no
// caller in this repository converts a 1-based start before calling it.
// Invariant violations are fatal (SPEC_FULL.md §7).
func NewSlice(source vecsource.Source, start, size int) *Slice {
	if start < 0 {
		hosterr.Fatal(hosterr.KindOutOfRangeConstruction, "start must be non-negative, got %d", start)
	}
	if size < 0 {
		hosterr.Fatal(hosterr.KindOutOfRangeConstruction, "size must be non-negative, got %d", size)
	}
	if start+size > source.Len() {
		hosterr.Fatal(hosterr.KindOutOfRangeConstruction,
			"viewport must fit within the length of source: start=%d size=%d len=%d", start, size, source.Len())
	}
	trace.Emit("slice.new", "start", start, "size", size)
	return &Slice{src: source, start: start, size: size}
}

func (s *Slice) Len() int              { return s.size }
func (s *Slice) Kind() elemkind.Kind   { return s.src.Kind() }
func (s *Slice) isMaterialized() bool  { return s.mat != nil }
func (s *Slice) source() vecsource.Source { return s.src }

func (s *Slice) Duplicate(deep bool) View {
	trace.Emit("slice.duplicate", "deep", deep, "materialized", s.isMaterialized())
	if deep {
		dup := NewSlice(s.src, s.start, s.size)
		if s.mat != nil {
			dup.mat = s.mat.Clone()
		}
		return dup
	}
	return &Slice{src: s.src, start: s.start, size: s.size, mat: s.mat}
}

func (s *Slice) Inspect() string {
	return fmt.Sprintf("%s{start=%d size=%d materialized=%v source=%s}",
		classOf(SliceViewKind, s).Name(), s.start, s.size, s.isMaterialized(), s.src.Inspect())
}

// projectIndex maps a logical index in [0, size) onto an absolute position
// in the source. Callers must check index-within-bounds first.
func (s *Slice) projectIndex(i int) int {
	return s.start + i
}

func (s *Slice) withinBounds(i int) bool {
	return i >= 0 && i < s.size
}

// Element implements the one leniency unique to Slice: a read past the
// logical end returns NA instead of raising a fatal condition, because
// upstream consumers may probe past the logical length (SPEC_FULL.md §4.4).
func (s *Slice) Element(i int) vecsource.Source {
	out := s.src.NewEmpty().Grow(1)
	if !s.withinBounds(i) {
		out.SetNA(0)
		return out
	}
	if s.mat != nil {
		out.CopyElement(0, s.mat, i)
		return out
	}
	out.CopyElement(0, s.src, s.projectIndex(i))
	return out
}

func (s *Slice) GetRegion(i, n int) (vecsource.Source, int) {
	filled := clampRegion(i, n, s.Len())
	if s.mat != nil {
		return s.mat.Slice(i, filled), filled
	}
	return s.src.Slice(s.start+i, filled), filled
}

func (s *Slice) DataPtr(writeable bool) vecsource.Source {
	trace.Emit("slice.dataptr", "writeable", writeable, "materialized", s.isMaterialized())
	if s.mat != nil {
		if writeable {
			return s.mat
		}
		return s.mat
	}
	if writeable {
		s.mat = s.src.Slice(s.start, s.size)
		return s.mat
	}
	// Read-only: a Slice is the only view kind that may alias the source's
	// buffer directly rather than copying (SPEC_FULL.md §4.4).
	return aliasSlice{s.src, s.start, s.size}
}

func (s *Slice) DataPtrOrNil() vecsource.Source {
	trace.Emit("slice.dataptr_or_null")
	return s.DataPtr(false)
}

// aliasSlice is a thin read-only view over a shared backing array; it never
// copies. It implements vecsource.Source so callers of DataPtr(false) get a
// uniform type regardless of aliasing vs. materialization, but RawPointer
// on it returns a sub-slice of the *original* backing array.
type aliasSlice struct {
	src   vecsource.Source
	start int
	size  int
}

func (a aliasSlice) Kind() elemkind.Kind { return a.src.Kind() }
func (a aliasSlice) Len() int            { return a.size }
func (a aliasSlice) IsNA(i int) bool     { return a.src.IsNA(a.start + i) }
func (a aliasSlice) Clone() vecsource.Source {
	return a.src.Slice(a.start, a.size)
}
func (a aliasSlice) Slice(start, size int) vecsource.Source {
	return a.src.Slice(a.start+start, size)
}
func (a aliasSlice) NewEmpty() vecsource.Source { return a.src.NewEmpty() }
func (a aliasSlice) Grow(n int) vecsource.Source { return a.src.NewEmpty().Grow(n) }
func (a aliasSlice) CopyElement(dstIndex int, src vecsource.Source, srcIndex int) {
	hosterr.Fatal(hosterr.KindTypeMismatch, "aliasSlice is read-only")
}
func (a aliasSlice) SetNA(i int) {
	hosterr.Fatal(hosterr.KindTypeMismatch, "aliasSlice is read-only")
}
func (a aliasSlice) RawPointer() any {
	return rawPointerWindow(a.src.RawPointer(), a.start, a.size)
}
func (a aliasSlice) Inspect() string {
	return fmt.Sprintf("aliasSlice{start=%d size=%d}", a.start, a.size)
}
