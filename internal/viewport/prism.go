package viewport

import (
	"fmt"

	"viewports/internal/elemkind"
	"viewports/internal/hosterr"
	"viewports/internal/indexvec"
	"viewports/internal/trace"
	"viewports/internal/vecsource"
)

// Prism is an index-vector permutation view: (S, I). See SPEC_FULL.md §4.6.
// I may repeat positions, be unordered, and carry NA — no monotonicity or
// uniqueness requirement.
type Prism struct {
	src vecsource.Source
	idx indexvec.Vector
	mat vecsource.Source
}

// NewPrism constructs a Prism over source, selecting indices (each either
// NA or in [1,n]).
func NewPrism(source vecsource.Source, indices indexvec.Vector) *Prism {
	n := source.Len()
	for i := 0; i < indices.Len(); i++ {
		pos, isNA := indices.RawIndex(i)
		if isNA {
			continue
		}
		if pos < 1 || pos > n {
			hosterr.Fatal(hosterr.KindOutOfRangeConstruction, "prism index %d out of range [1,%d]", pos, n)
		}
	}
	trace.Emit("prism.new", "m", indices.Len())
	return &Prism{src: source, idx: indices}
}

func (p *Prism) Len() int              { return p.idx.Len() }
func (p *Prism) Kind() elemkind.Kind   { return p.src.Kind() }
func (p *Prism) isMaterialized() bool  { return p.mat != nil }
func (p *Prism) source() vecsource.Source { return p.src }

func (p *Prism) Duplicate(deep bool) View {
	trace.Emit("prism.duplicate", "deep", deep, "materialized", p.isMaterialized())
	if deep {
		dup := NewPrism(p.src, cloneIndexVector(p.idx))
		if p.mat != nil {
			dup.mat = p.mat.Clone()
		}
		return dup
	}
	return &Prism{src: p.src, idx: p.idx, mat: p.mat}
}

func (p *Prism) Inspect() string {
	return fmt.Sprintf("%s{m=%d materialized=%v source=%s}",
		classOf(PrismViewKind, p).Name(), p.idx.Len(), p.isMaterialized(), p.src.Inspect())
}

// materialize gathers via (S, I) once, memoized.
func (p *Prism) materialize() vecsource.Source {
	if p.mat != nil {
		return p.mat
	}
	trace.EmitSize("prism.materialize", "buffer", uint64(p.idx.Len())*p.src.Kind().ElemSize())
	p.mat = indexvec.CopyGather(p.src, p.idx)
	return p.mat
}

func (p *Prism) Element(i int) vecsource.Source {
	out := p.src.NewEmpty().Grow(1)
	if p.mat != nil {
		out.CopyElement(0, p.mat, i)
		return out
	}
	pos, isNA := p.idx.RawIndex(i)
	if isNA {
		out.SetNA(0)
		return out
	}
	out.CopyElement(0, p.src, pos-1)
	return out
}

func (p *Prism) GetRegion(i, n int) (vecsource.Source, int) {
	mat := p.materialize()
	filled := clampRegion(i, n, p.Len())
	return mat.Slice(i, filled), filled
}

func (p *Prism) DataPtr(writeable bool) vecsource.Source {
	trace.Emit("prism.dataptr", "writeable", writeable)
	return p.materialize()
}

func (p *Prism) DataPtrOrNil() vecsource.Source {
	trace.Emit("prism.dataptr_or_null")
	return p.materialize()
}

// cloneIndexVector returns an independent copy of v's backing storage.
func cloneIndexVector(v indexvec.Vector) indexvec.Vector {
	out := indexvec.New(v.Kind(), v.Len())
	for i := 0; i < v.Len(); i++ {
		pos, isNA := v.RawIndex(i)
		if isNA {
			out.SetNA(i)
			continue
		}
		out.Set(i, pos)
	}
	return out
}
