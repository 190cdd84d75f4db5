package indexvec

import (
	"testing"

	"viewports/internal/elemkind"
	"viewports/internal/vecsource"
)

func TestMonotoneAndContiguous(t *testing.T) {
	v := FromInt32([]int32{2, 4, 6})
	if !v.Monotone() {
		t.Errorf("Monotone() = false, want true")
	}
	if v.Contiguous() {
		t.Errorf("Contiguous() = true, want false")
	}

	c := FromInt32([]int32{2, 3, 4})
	if !c.Contiguous() {
		t.Errorf("Contiguous() = false, want true")
	}
}

func TestMonotoneRejectsNAAndNonIncreasing(t *testing.T) {
	withNA := FromInt32([]int32{1, elemkind.NAInt32, 3})
	if withNA.Monotone() {
		t.Errorf("Monotone() = true for vector containing NA")
	}

	nonIncreasing := FromInt32([]int32{3, 2, 1})
	if nonIncreasing.Monotone() {
		t.Errorf("Monotone() = true for decreasing vector")
	}
}

func TestInRange(t *testing.T) {
	v := FromFloat64([]float64{1, 2, 3})
	if !v.InRange(1, 3) {
		t.Errorf("InRange(1,3) = false, want true")
	}
	if v.InRange(1, 2) {
		t.Errorf("InRange(1,2) = true, want false")
	}
}

func TestContainsNAPolarity(t *testing.T) {
	withNA := FromInt32([]int32{1, elemkind.NAInt32})
	if !withNA.ContainsNA() {
		t.Errorf("ContainsNA() = false, want true (resolved polarity)")
	}
	withoutNA := FromInt32([]int32{1, 2})
	if withoutNA.ContainsNA() {
		t.Errorf("ContainsNA() = true, want false")
	}
}

func TestFirstAsLengthEmptyErrors(t *testing.T) {
	empty := FromInt32(nil)
	if _, err := empty.FirstAsLength(); err == nil {
		t.Fatal("expected error for empty vector")
	}
	v := FromInt32([]int32{7, 8})
	n, err := v.FirstAsLength()
	if err != nil || n != 7 {
		t.Fatalf("FirstAsLength() = (%d, %v), want (7, nil)", n, err)
	}
}

func TestTranslate(t *testing.T) {
	v := FromInt32([]int32{1, elemkind.NAInt32, 3})
	out := v.Translate(10)
	if idx, isNA := out.RawIndex(0); isNA || idx != 11 {
		t.Errorf("Translate[0] = (%d,%v), want (11,false)", idx, isNA)
	}
	if _, isNA := out.RawIndex(1); !isNA {
		t.Errorf("Translate[1] should remain NA")
	}
	if idx, isNA := out.RawIndex(2); isNA || idx != 13 {
		t.Errorf("Translate[2] = (%d,%v), want (13,false)", idx, isNA)
	}
}

func TestCopyGatherWithNA(t *testing.T) {
	src := vecsource.NewInt32Vector([]int32{10, 20, 30, 40})
	idx := FromInt32([]int32{4, 1, elemkind.NAInt32, 2})
	got := CopyGather(src, idx).(*vecsource.Int32Vector)
	want := []int32{40, 10, elemkind.NAInt32, 20}
	for i := range want {
		if got.Data[i] != want[i] {
			t.Errorf("CopyGather()[%d] = %d, want %d", i, got.Data[i], want[i])
		}
	}
}

func TestCopyMask(t *testing.T) {
	src := vecsource.NewInt32Vector([]int32{1, 2, 3, 4, 5})
	mask := []bool{true, false, true, false, true}
	got := CopyMask(src, mask, nil).(*vecsource.Int32Vector)
	want := []int32{1, 3, 5}
	if len(got.Data) != len(want) {
		t.Fatalf("CopyMask() = %v, want %v", got.Data, want)
	}
	for i := range want {
		if got.Data[i] != want[i] {
			t.Errorf("CopyMask()[%d] = %d, want %d", i, got.Data[i], want[i])
		}
	}
}
