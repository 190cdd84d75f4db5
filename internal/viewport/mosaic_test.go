package viewport

import (
	"testing"

	"viewports/internal/elemkind"
	"viewports/internal/vecsource"
)

func TestMosaicFromMask(t *testing.T) {
	source := vecsource.NewInt32Vector([]int32{1, 2, 3, 4, 5})
	m := NewMosaic(source, Selector{Mask: []bool{true, false, true, false, true}})

	if m.Len() != 3 {
		t.Fatalf("Len() = %d, want 3", m.Len())
	}
	if got := m.Element(1).RawPointer().([]int32)[0]; got != 3 {
		t.Fatalf("get(1) = %d, want 3", got)
	}

	m.DataPtr(true)
	if m.Len() != 3 {
		t.Fatalf("Len() after dataptr(true) = %d, want 3 (length stability)", m.Len())
	}
}

func TestMosaicMaskLengthMismatchPanics(t *testing.T) {
	source := vecsource.NewInt32Vector([]int32{1, 2, 3})
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic for mismatched mask length")
		}
	}()
	NewMosaic(source, Selector{Mask: []bool{true, false}})
}

func TestMosaicNonMonotoneSelectorPanics(t *testing.T) {
	source := vecsource.NewInt32Vector([]int32{1, 2, 3, 4})
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic for non-monotone selector")
		}
	}()
	NewMosaic(source, Selector{Indices: fromInts(3, 1)})
}

func TestMosaicNASelectorPanics(t *testing.T) {
	source := vecsource.NewInt32Vector([]int32{1, 2, 3, 4})
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic for NA in selector")
		}
	}()
	NewMosaic(source, Selector{Indices: fromInts(1, elemkind.NAInt32)})
}

func TestMosaicDuplicateDeepIndependence(t *testing.T) {
	source := vecsource.NewInt32Vector([]int32{1, 2, 3, 4, 5})
	m := NewMosaic(source, Selector{Indices: fromInts(1, 3, 5)})
	m.DataPtr(true)

	dup := m.Duplicate(true).(*Mosaic)
	dup.b.Clear(0)
	if !m.b.Test(0) {
		t.Fatal("deep duplicate's bitmap mutation leaked into the original")
	}
}

func TestMosaicGetRegionForcesMaterialization(t *testing.T) {
	source := vecsource.NewInt32Vector([]int32{1, 2, 3, 4, 5})
	m := NewMosaic(source, Selector{Indices: fromInts(2, 4)})

	region, filled := m.GetRegion(0, 2)
	if filled != 2 {
		t.Fatalf("filled = %d, want 2", filled)
	}
	got := region.RawPointer().([]int32)
	want := []int32{2, 4}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("region = %v, want %v", got, want)
		}
	}
	if !m.isMaterialized() {
		t.Fatal("GetRegion should force materialization")
	}
}
