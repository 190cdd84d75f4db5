// Package indexvec implements the total predicates and gather helpers the
// viewport core runs over externally-supplied, 1-based, NA-permitting index
// vectors (SPEC_FULL.md §4.2). An index vector's element kind is always
// int32 or float64 — the two on-wire index types — never any other
// elemkind.Kind.
package indexvec

import (
	"golang.org/x/exp/constraints"

	"viewports/internal/elemkind"
	"viewports/internal/hosterr"
	"viewports/internal/vecsource"
)

// Kind distinguishes the two on-wire index element types.
type Kind uint8

const (
	Int32Kind Kind = iota
	Float64Kind
)

// Vector is a tagged union over []int32 and []float64, 1-based, NA-permitting.
type Vector struct {
	kind   Kind
	ints   []int32
	floats []float64
}

// FromInt32 wraps an int32 slice as an index vector.
func FromInt32(data []int32) Vector {
	return Vector{kind: Int32Kind, ints: data}
}

// FromFloat64 wraps a float64 slice as an index vector.
func FromFloat64(data []float64) Vector {
	return Vector{kind: Float64Kind, floats: data}
}

// Kind reports the on-wire element kind of this index vector.
func (v Vector) Kind() Kind { return v.kind }

// Len returns the number of indices.
func (v Vector) Len() int {
	if v.kind == Int32Kind {
		return len(v.ints)
	}
	return len(v.floats)
}

// RawIndex returns the 1-based index value at position i as a machine int,
// and whether it is NA.
func (v Vector) RawIndex(i int) (idx int, isNA bool) {
	if v.kind == Int32Kind {
		x := v.ints[i]
		if x == elemkind.NAInt32 {
			return 0, true
		}
		return int(x), false
	}
	x := v.floats[i]
	if elemkind.IsNAFloat64(x) {
		return 0, true
	}
	return int(x), false
}

// New allocates a fresh, all-NA index vector of the given kind and length,
// for composition steps to fill in place.
func New(kind Kind, n int) Vector {
	if kind == Int32Kind {
		data := make([]int32, n)
		for i := range data {
			data[i] = elemkind.NAInt32
		}
		return FromInt32(data)
	}
	data := make([]float64, n)
	for i := range data {
		data[i] = elemkind.NAFloat64()
	}
	return FromFloat64(data)
}

// Set writes a 1-based index value at position i.
func (v Vector) Set(i int, value int) {
	if v.kind == Int32Kind {
		v.ints[i] = int32(value)
		return
	}
	v.floats[i] = float64(value)
}

// SetNA writes the NA sentinel at position i.
func (v Vector) SetNA(i int) {
	if v.kind == Int32Kind {
		v.ints[i] = elemkind.NAInt32
		return
	}
	v.floats[i] = elemkind.NAFloat64()
}

// ---- generic predicates ----
//
// monotoneRun/contiguousRun/inRangeRun/containsNARun are written once,
// generically, over any of the two on-wire numeric kinds using
// golang.org/x/exp/constraints, and instantiated per kind by the Vector
// methods below.

func monotoneRun[T constraints.Integer | constraints.Float](data []T, isNA func(T) bool) bool {
	hasPrev := false
	var prev T
	for _, cur := range data {
		if isNA(cur) {
			return false
		}
		if hasPrev && prev >= cur {
			return false
		}
		prev = cur
		hasPrev = true
	}
	return true
}

func contiguousRun[T constraints.Integer | constraints.Float](data []T, isNA func(T) bool) bool {
	hasPrev := false
	var prev T
	for _, cur := range data {
		if isNA(cur) {
			return false
		}
		if hasPrev && prev+1 != cur {
			return false
		}
		prev = cur
		hasPrev = true
	}
	return true
}

func inRangeRun[T constraints.Integer | constraints.Float](data []T, isNA func(T) bool, min, max T) bool {
	for _, cur := range data {
		if isNA(cur) {
			return false
		}
		if cur < min || cur > max {
			return false
		}
	}
	return true
}

// containsNARun implements the corrected polarity resolved by SPEC_FULL.md
// §9: it returns true iff any NA is present. The host's C implementation
// inverts this (returns false the moment it finds an NA), a bug this port
// deliberately does not reproduce.
func containsNARun[T constraints.Integer | constraints.Float](data []T, isNA func(T) bool) bool {
	for _, cur := range data {
		if isNA(cur) {
			return true
		}
	}
	return false
}

func (v Vector) isNAInt32(x int32) bool     { return x == elemkind.NAInt32 }
func (v Vector) isNAFloat64(x float64) bool { return elemkind.IsNAFloat64(x) }

// Monotone reports whether the index vector is strictly increasing and NA-free.
func (v Vector) Monotone() bool {
	if v.kind == Int32Kind {
		return monotoneRun(v.ints, v.isNAInt32)
	}
	return monotoneRun(v.floats, v.isNAFloat64)
}

// Contiguous reports whether x[i+1] == x[i]+1 for all i, NA-free.
func (v Vector) Contiguous() bool {
	if v.kind == Int32Kind {
		return contiguousRun(v.ints, v.isNAInt32)
	}
	return contiguousRun(v.floats, v.isNAFloat64)
}

// InRange reports whether every element lies within [min, max] inclusive.
// A zero-length domain (max < min) is not a caller error here — it comes
// up legitimately when probing a selector against an empty Slice or
// Mosaic — inRangeRun already answers it correctly: an empty vector is
// vacuously true, and any element against an empty domain is false.
func (v Vector) InRange(min, max int) bool {
	if v.kind == Int32Kind {
		return inRangeRun(v.ints, v.isNAInt32, int32(min), int32(max))
	}
	return inRangeRun(v.floats, v.isNAFloat64, float64(min), float64(max))
}

// ContainsNA reports whether any NA sentinel is present.
func (v Vector) ContainsNA() bool {
	if v.kind == Int32Kind {
		return containsNARun(v.ints, v.isNAInt32)
	}
	return containsNARun(v.floats, v.isNAFloat64)
}

// FirstAsLength coerces the first element to a machine integer. It errors
// on an empty vector (SPEC_FULL.md §4.2).
func (v Vector) FirstAsLength() (int, error) {
	if v.Len() == 0 {
		return 0, hosterr.New(hosterr.KindEmptyScalarArgument, "index vector cannot be empty")
	}
	n, isNA := v.RawIndex(0)
	if isNA {
		return 0, hosterr.New(hosterr.KindEmptyScalarArgument, "first element cannot be NA")
	}
	return n, nil
}

// Translate returns a fresh vector of the same kind with every non-NA
// element shifted by offset; NA elements are left untouched. No range
// screening is done; Slice composition uses TranslateWithinRange instead.
func (v Vector) Translate(offset int) Vector {
	out := New(v.kind, v.Len())
	for i := 0; i < v.Len(); i++ {
		idx, isNA := v.RawIndex(i)
		if isNA {
			out.SetNA(i)
			continue
		}
		out.Set(i, idx+offset)
	}
	return out
}

// Screen returns a fresh vector of the same kind and length where every
// element outside [1, limit] (NA included) becomes NA and every other
// element is passed through unchanged. Used by Mosaic and Prism before
// testing a subset selector for monotonicity or NA content (SPEC_FULL.md
// §4.7, rule Mosaic.1/Prism.1).
func (v Vector) Screen(limit int) Vector {
	out := New(v.kind, v.Len())
	for i := 0; i < v.Len(); i++ {
		idx, isNA := v.RawIndex(i)
		if isNA || idx < 1 || idx > limit {
			out.SetNA(i)
			continue
		}
		out.Set(i, idx)
	}
	return out
}

// TranslateWithinRange returns a fresh vector with every element outside
// [1, maxValid] (NA included) mapped to NA, and every other element shifted
// by offset. This is the combined screen-and-shift Slice performs when
// composing a child index vector into the source's absolute index space
// (SPEC_FULL.md §4.7, rule Slice.1/Slice.2) — unlike Translate, an
// out-of-range value becomes NA rather than an out-of-range shifted value.
func (v Vector) TranslateWithinRange(offset, maxValid int) Vector {
	out := New(v.kind, v.Len())
	for i := 0; i < v.Len(); i++ {
		idx, isNA := v.RawIndex(i)
		if isNA || idx < 1 || idx > maxValid {
			out.SetNA(i)
			continue
		}
		out.Set(i, idx+offset)
	}
	return out
}

// CopyRange returns a fresh source vector of src's element kind containing
// src[start:start+size).
func CopyRange(src vecsource.Source, start, size int) vecsource.Source {
	return src.Slice(start, size)
}

// CopyGather returns a fresh source vector of src's element kind, gathering
// src[idx[i]-1] into position i, or writing NA when idx[i] is NA.
// Out-of-range non-NA indices are a caller error at a higher layer, per
// SPEC_FULL.md §4.2.
func CopyGather(src vecsource.Source, idx Vector) vecsource.Source {
	out := src.NewEmpty().Grow(idx.Len())
	for i := 0; i < idx.Len(); i++ {
		pos, isNA := idx.RawIndex(i)
		if isNA {
			out.SetNA(i)
			continue
		}
		out.CopyElement(i, src, pos-1)
	}
	return out
}

// CopyMask returns a fresh source vector of length equal to the number of
// true entries in mask. An NA entry (maskNA[i] true) writes an NA element
// and consumes an output slot, matching copy_data_at_mask's NA handling.
func CopyMask(src vecsource.Source, mask []bool, maskNA []bool) vecsource.Source {
	targetSize := 0
	for i, m := range mask {
		if m || (maskNA != nil && maskNA[i]) {
			targetSize++
		}
	}
	out := src.NewEmpty().Grow(targetSize)
	copied := 0
	for i, m := range mask {
		if maskNA != nil && maskNA[i] {
			out.SetNA(copied)
			copied++
			continue
		}
		if m {
			out.CopyElement(copied, src, i)
			copied++
		}
	}
	return out
}
