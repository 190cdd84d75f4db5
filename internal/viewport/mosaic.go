package viewport

import (
	"fmt"

	"viewports/internal/bitset"
	"viewports/internal/elemkind"
	"viewports/internal/hosterr"
	"viewports/internal/indexvec"
	"viewports/internal/trace"
	"viewports/internal/vecsource"
)

// Selector is the argument accepted by NewMosaic: either a boolean mask of
// length n, or a strictly-increasing integer/float index vector with values
// in [1,n] (SPEC_FULL.md §4.5).
type Selector struct {
	// Mask, when non-nil, is a boolean mask of length n. NA in a mask is a
	// construction error.
	Mask []bool

	// Indices, when Mask is nil, is a strictly-increasing 1-based index
	// vector with values in [1,n].
	Indices indexvec.Vector
}

// Mosaic is a bitmap-selected monotone view: (S, B, k). See SPEC_FULL.md §4.5.
type Mosaic struct {
	src vecsource.Source
	b   *bitset.Bitmap
	k   int
	mat vecsource.Source
}

// NewMosaic constructs a Mosaic from a mask or a monotone index selector.
func NewMosaic(source vecsource.Source, sel Selector) *Mosaic {
	n := source.Len()
	b := bitset.New(n)
	k := 0

	switch {
	case sel.Mask != nil:
		if len(sel.Mask) != n {
			hosterr.Fatal(hosterr.KindOutOfRangeConstruction, "mask length %d must equal source length %d", len(sel.Mask), n)
		}
		for i, v := range sel.Mask {
			if v {
				b.Set(i)
				k++
			}
		}
	default:
		idx := sel.Indices
		if idx.ContainsNA() {
			hosterr.Fatal(hosterr.KindNAInDisallowedPosition, "mosaic selector cannot contain NA")
		}
		if !idx.Monotone() {
			hosterr.Fatal(hosterr.KindNonMonotoneSelector, "mosaic selector must be strictly increasing")
		}
		if !idx.InRange(1, n) {
			hosterr.Fatal(hosterr.KindOutOfRangeConstruction, "mosaic selector must be within [1,%d]", n)
		}
		for i := 0; i < idx.Len(); i++ {
			pos, _ := idx.RawIndex(i)
			b.Set(pos - 1)
		}
		k = idx.Len()
	}

	trace.Emit("mosaic.new", "k", k, "n", n)
	return &Mosaic{src: source, b: b, k: k}
}

func (m *Mosaic) Len() int              { return m.k }
func (m *Mosaic) Kind() elemkind.Kind   { return m.src.Kind() }
func (m *Mosaic) isMaterialized() bool  { return m.mat != nil }
func (m *Mosaic) source() vecsource.Source { return m.src }

func (m *Mosaic) Duplicate(deep bool) View {
	trace.Emit("mosaic.duplicate", "deep", deep, "materialized", m.isMaterialized())
	if deep {
		dup := &Mosaic{src: m.src, b: m.b.Clone(), k: m.k}
		if m.mat != nil {
			dup.mat = m.mat.Clone()
		}
		return dup
	}
	return &Mosaic{src: m.src, b: m.b, k: m.k, mat: m.mat}
}

func (m *Mosaic) Inspect() string {
	return fmt.Sprintf("%s{k=%d materialized=%v source=%s}",
		classOf(MosaicViewKind, m).Name(), m.k, m.isMaterialized(), m.src.Inspect())
}

// materialize performs the one-shot O(n) walk over B that fills M, memoized
// so later calls are O(1) (SPEC_FULL.md §4.5).
func (m *Mosaic) materialize() vecsource.Source {
	if m.mat != nil {
		return m.mat
	}
	trace.EmitSize("mosaic.materialize", "buffer", uint64(m.k)*m.src.Kind().ElemSize())
	out := m.src.NewEmpty().Grow(m.k)
	for c, pos := range m.b.Positions() {
		out.CopyElement(c, m.src, pos)
	}
	m.mat = out
	return m.mat
}

func (m *Mosaic) Element(i int) vecsource.Source {
	out := m.src.NewEmpty().Grow(1)
	if m.mat != nil {
		out.CopyElement(0, m.mat, i)
		return out
	}
	pos := m.b.IndexOfNthSetBit(i)
	out.CopyElement(0, m.src, pos)
	return out
}

func (m *Mosaic) GetRegion(i, n int) (vecsource.Source, int) {
	mat := m.materialize()
	filled := clampRegion(i, n, m.Len())
	return mat.Slice(i, filled), filled
}

func (m *Mosaic) DataPtr(writeable bool) vecsource.Source {
	trace.Emit("mosaic.dataptr", "writeable", writeable)
	// Mosaic never aliases the source: the logical layout differs
	// (SPEC_FULL.md §4.5).
	return m.materialize()
}

func (m *Mosaic) DataPtrOrNil() vecsource.Source {
	trace.Emit("mosaic.dataptr_or_null")
	return m.materialize()
}
