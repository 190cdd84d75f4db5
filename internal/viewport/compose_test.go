package viewport

import (
	"testing"

	"viewports/internal/elemkind"
	"viewports/internal/indexvec"
	"viewports/internal/vecsource"
)

// fromInts builds an int32 index vector from plain machine ints, for
// concise test data; pass elemkind.NAInt32 for an NA slot.
func fromInts(values ...int) indexvec.Vector {
	data := make([]int32, len(values))
	for i, v := range values {
		data[i] = int32(v)
	}
	return indexvec.FromInt32(data)
}

func TestMosaicSubsetNonMonotoneGathers(t *testing.T) {
	source := vecsource.NewInt32Vector([]int32{1, 2, 3, 4, 5, 6, 7, 8, 9, 10})
	m := NewMosaic(source, Selector{Indices: fromInts(2, 4, 6, 8)})

	gathered, refined := m.ExtractSubset(fromInts(4, 1))
	if refined != nil {
		t.Fatalf("expected a materialized gather, got a refined %T", refined)
	}
	got := gathered.RawPointer().([]int32)
	want := []int32{8, 2}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("gathered = %v, want %v", got, want)
		}
	}
}

func TestMosaicSubsetMonotoneYieldsMosaic(t *testing.T) {
	source := vecsource.NewInt32Vector([]int32{1, 2, 3, 4, 5, 6, 7, 8, 9, 10})
	m := NewMosaic(source, Selector{Indices: fromInts(2, 4, 6, 8)})

	_, refined := m.ExtractSubset(fromInts(1, 3))
	inner, ok := refined.(*Mosaic)
	if !ok {
		t.Fatalf("expected a refined Mosaic, got %T", refined)
	}
	got := inner.materialize().RawPointer().([]int32)
	want := []int32{2, 6}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("refined Mosaic values = %v, want %v", got, want)
		}
	}
}

func TestPrismSubsetNAFreeGathers(t *testing.T) {
	source := vecsource.NewInt32Vector([]int32{1, 2, 3, 4, 5})
	p := NewPrism(source, fromInts(5, 5, 5))

	gathered, refined := p.ExtractSubset(fromInts(1, 2))
	if refined != nil {
		t.Fatalf("expected a materialized gather, got a refined %T", refined)
	}
	got := gathered.RawPointer().([]int32)
	want := []int32{5, 5}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("gathered = %v, want %v", got, want)
		}
	}
}

func TestPrismSubsetWithNAStaysPrism(t *testing.T) {
	source := vecsource.NewInt32Vector([]int32{10, 20, 30, 40})
	p := NewPrism(source, fromInts(4, 1, elemkind.NAInt32, 2))

	// An out-of-range selector element screens to NA, which forces the
	// Prism path rather than an eager gather.
	_, refined := p.ExtractSubset(fromInts(1, 9))
	inner, ok := refined.(*Prism)
	if !ok {
		t.Fatalf("expected a refined Prism, got %T", refined)
	}
	if inner.Len() != 2 {
		t.Fatalf("refined Prism length = %d, want 2", inner.Len())
	}
	first := inner.Element(0)
	if first.IsNA(0) {
		t.Fatalf("first composed element should resolve to source position 4 (value 40), got NA")
	}
	if got := first.RawPointer().([]int32)[0]; got != 40 {
		t.Fatalf("first composed element = %d, want 40", got)
	}
	if !inner.Element(1).IsNA(0) {
		t.Fatalf("second composed element should be NA (selector element 9 out of range)")
	}
}

func TestExtractSubsetOnMaterializedViewGathersFromBuffer(t *testing.T) {
	source := vecsource.NewInt32Vector([]int32{1, 2, 3, 4, 5})
	s := NewSlice(source, 0, 5)
	s.DataPtr(true) // force materialization

	gathered, refined := s.ExtractSubset(fromInts(1, 3))
	if refined != nil {
		t.Fatalf("expected a materialized gather once already materialized, got a refined %T", refined)
	}
	got := gathered.RawPointer().([]int32)
	want := []int32{1, 3}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("gathered = %v, want %v", got, want)
		}
	}
}
