package bitset

import "testing"

func TestSetTestPopcount(t *testing.T) {
	b := New(130)
	for _, i := range []int{0, 1, 63, 64, 65, 129} {
		b.Set(i)
	}
	if got, want := b.Popcount(), 6; got != want {
		t.Fatalf("Popcount() = %d, want %d", got, want)
	}
	for _, i := range []int{0, 1, 63, 64, 65, 129} {
		if !b.Test(i) {
			t.Errorf("Test(%d) = false, want true", i)
		}
	}
	if b.Test(2) {
		t.Errorf("Test(2) = true, want false")
	}
}

func TestClear(t *testing.T) {
	b := New(10)
	b.Set(5)
	b.Clear(5)
	if b.Test(5) {
		t.Errorf("bit 5 still set after Clear")
	}
	if b.Popcount() != 0 {
		t.Errorf("Popcount() = %d, want 0", b.Popcount())
	}
}

func TestIndexOfNthSetBit(t *testing.T) {
	b := New(20)
	bits := []int{2, 3, 5, 8, 13, 19}
	for _, i := range bits {
		b.Set(i)
	}
	for rank, pos := range bits {
		if got := b.IndexOfNthSetBit(rank); got != pos {
			t.Errorf("IndexOfNthSetBit(%d) = %d, want %d", rank, got, pos)
		}
	}
}

func TestIndexOfNthSetBitOutOfRangePanics(t *testing.T) {
	b := New(8)
	b.Set(1)
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic for out-of-range rank")
		}
	}()
	b.IndexOfNthSetBit(5)
}

func TestCloneIsIndependent(t *testing.T) {
	b := New(10)
	b.Set(3)
	c := b.Clone()
	c.Set(4)
	if b.Test(4) {
		t.Errorf("mutating clone affected original")
	}
	if !c.Test(3) || !c.Test(4) {
		t.Errorf("clone missing expected bits")
	}
}

func TestPositions(t *testing.T) {
	b := New(10)
	for _, i := range []int{0, 4, 9} {
		b.Set(i)
	}
	got := b.Positions()
	want := []int{0, 4, 9}
	if len(got) != len(want) {
		t.Fatalf("Positions() = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("Positions() = %v, want %v", got, want)
		}
	}
}
