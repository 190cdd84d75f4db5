// Package vecsource is the in-process stand-in for the host runtime's
// vector representation protocol and memory allocator (SPEC_FULL.md §1, §4.3).
// The viewport core only ever touches a source vector through the Source
// interface; it never assumes a concrete representation.
package vecsource

import (
	"fmt"

	"viewports/internal/elemkind"
	"viewports/internal/hosterr"
)

// Source is an immutable, host-owned vector of homogeneous primitive
// elements. Implementations are provided per elemkind.Kind below.
type Source interface {
	// Kind returns the element kind carried by this vector.
	Kind() elemkind.Kind

	// Len returns the number of elements.
	Len() int

	// IsNA reports whether the element at i is the kind's NA sentinel.
	IsNA(i int) bool

	// Clone returns a deep, independent copy.
	Clone() Source

	// Slice returns a fresh vector containing elements [start, start+size).
	Slice(start, size int) Source

	// NewEmpty returns a fresh, zero-length vector of the same kind.
	NewEmpty() Source

	// Grow returns a fresh vector of the same kind with n NA (or
	// zero-for-Byte) elements, for gather/mask targets to fill in place.
	Grow(n int) Source

	// CopyElement copies the element at srcIndex in src into position
	// dstIndex of this vector. src must have the same Kind.
	CopyElement(dstIndex int, src Source, srcIndex int)

	// SetNA writes the kind's NA sentinel (or zero for Byte) at index i.
	SetNA(i int)

	// RawPointer returns the underlying Go slice for read-only aliasing.
	// Only Slice views may hand this out directly to a consumer; Mosaic
	// and Prism always materialize first (SPEC_FULL.md §4.4-§4.6).
	RawPointer() any

	// Inspect renders a short diagnostic description, recursed into by
	// internal/trace when debug mode is on.
	Inspect() string
}

func checkSameKind(a, b Source) {
	if a.Kind() != b.Kind() {
		hosterr.Fatal(hosterr.KindTypeMismatch, "element kind mismatch: %s vs %s", a.Kind(), b.Kind())
	}
}

// ---- Int32 ----

type Int32Vector struct{ Data []int32 }

func NewInt32Vector(data []int32) *Int32Vector { return &Int32Vector{Data: data} }

func (v *Int32Vector) Kind() elemkind.Kind { return elemkind.Int32 }
func (v *Int32Vector) Len() int            { return len(v.Data) }
func (v *Int32Vector) IsNA(i int) bool     { return v.Data[i] == elemkind.NAInt32 }
func (v *Int32Vector) Clone() Source {
	out := make([]int32, len(v.Data))
	copy(out, v.Data)
	return &Int32Vector{Data: out}
}
func (v *Int32Vector) Slice(start, size int) Source {
	out := make([]int32, size)
	copy(out, v.Data[start:start+size])
	return &Int32Vector{Data: out}
}
func (v *Int32Vector) NewEmpty() Source { return &Int32Vector{Data: []int32{}} }
func (v *Int32Vector) Grow(n int) Source {
	out := make([]int32, n)
	for i := range out {
		out[i] = elemkind.NAInt32
	}
	return &Int32Vector{Data: out}
}
func (v *Int32Vector) CopyElement(dstIndex int, src Source, srcIndex int) {
	checkSameKind(v, src)
	v.Data[dstIndex] = src.(*Int32Vector).Data[srcIndex]
}
func (v *Int32Vector) SetNA(i int)        { v.Data[i] = elemkind.NAInt32 }
func (v *Int32Vector) RawPointer() any    { return v.Data }
func (v *Int32Vector) Inspect() string    { return fmt.Sprintf("Int32Vector[len=%d]", len(v.Data)) }

// ---- Float64 ----

type Float64Vector struct{ Data []float64 }

func NewFloat64Vector(data []float64) *Float64Vector { return &Float64Vector{Data: data} }

func (v *Float64Vector) Kind() elemkind.Kind { return elemkind.Float64 }
func (v *Float64Vector) Len() int            { return len(v.Data) }
func (v *Float64Vector) IsNA(i int) bool     { return elemkind.IsNAFloat64(v.Data[i]) }
func (v *Float64Vector) Clone() Source {
	out := make([]float64, len(v.Data))
	copy(out, v.Data)
	return &Float64Vector{Data: out}
}
func (v *Float64Vector) Slice(start, size int) Source {
	out := make([]float64, size)
	copy(out, v.Data[start:start+size])
	return &Float64Vector{Data: out}
}
func (v *Float64Vector) NewEmpty() Source { return &Float64Vector{Data: []float64{}} }
func (v *Float64Vector) Grow(n int) Source {
	out := make([]float64, n)
	for i := range out {
		out[i] = elemkind.NAFloat64()
	}
	return &Float64Vector{Data: out}
}
func (v *Float64Vector) CopyElement(dstIndex int, src Source, srcIndex int) {
	checkSameKind(v, src)
	v.Data[dstIndex] = src.(*Float64Vector).Data[srcIndex]
}
func (v *Float64Vector) SetNA(i int)     { v.Data[i] = elemkind.NAFloat64() }
func (v *Float64Vector) RawPointer() any { return v.Data }
func (v *Float64Vector) Inspect() string { return fmt.Sprintf("Float64Vector[len=%d]", len(v.Data)) }

// ---- Bool (tri-state: false/true/NA, stored as int32 like the host's LGLSXP) ----

type BoolVector struct{ Data []int32 }

func NewBoolVector(data []int32) *BoolVector { return &BoolVector{Data: data} }

func (v *BoolVector) Kind() elemkind.Kind { return elemkind.Bool }
func (v *BoolVector) Len() int            { return len(v.Data) }
func (v *BoolVector) IsNA(i int) bool     { return v.Data[i] == elemkind.NABool }
func (v *BoolVector) Clone() Source {
	out := make([]int32, len(v.Data))
	copy(out, v.Data)
	return &BoolVector{Data: out}
}
func (v *BoolVector) Slice(start, size int) Source {
	out := make([]int32, size)
	copy(out, v.Data[start:start+size])
	return &BoolVector{Data: out}
}
func (v *BoolVector) NewEmpty() Source { return &BoolVector{Data: []int32{}} }
func (v *BoolVector) Grow(n int) Source {
	out := make([]int32, n)
	for i := range out {
		out[i] = elemkind.NABool
	}
	return &BoolVector{Data: out}
}
func (v *BoolVector) CopyElement(dstIndex int, src Source, srcIndex int) {
	checkSameKind(v, src)
	v.Data[dstIndex] = src.(*BoolVector).Data[srcIndex]
}
func (v *BoolVector) SetNA(i int)     { v.Data[i] = elemkind.NABool }
func (v *BoolVector) RawPointer() any { return v.Data }
func (v *BoolVector) Inspect() string { return fmt.Sprintf("BoolVector[len=%d]", len(v.Data)) }

// ---- Byte (no NA representation; the system substitutes zero) ----

type ByteVector struct{ Data []byte }

func NewByteVector(data []byte) *ByteVector { return &ByteVector{Data: data} }

func (v *ByteVector) Kind() elemkind.Kind { return elemkind.Byte }
func (v *ByteVector) Len() int            { return len(v.Data) }
func (v *ByteVector) IsNA(i int) bool     { return false }
func (v *ByteVector) Clone() Source {
	out := make([]byte, len(v.Data))
	copy(out, v.Data)
	return &ByteVector{Data: out}
}
func (v *ByteVector) Slice(start, size int) Source {
	out := make([]byte, size)
	copy(out, v.Data[start:start+size])
	return &ByteVector{Data: out}
}
func (v *ByteVector) NewEmpty() Source      { return &ByteVector{Data: []byte{}} }
func (v *ByteVector) Grow(n int) Source     { return &ByteVector{Data: make([]byte, n)} }
func (v *ByteVector) CopyElement(dstIndex int, src Source, srcIndex int) {
	checkSameKind(v, src)
	v.Data[dstIndex] = src.(*ByteVector).Data[srcIndex]
}
func (v *ByteVector) SetNA(i int)     { v.Data[i] = 0 }
func (v *ByteVector) RawPointer() any { return v.Data }
func (v *ByteVector) Inspect() string { return fmt.Sprintf("ByteVector[len=%d]", len(v.Data)) }

// ---- Complex128 ----

type Complex128Vector struct{ Data []complex128 }

func NewComplex128Vector(data []complex128) *Complex128Vector { return &Complex128Vector{Data: data} }

func (v *Complex128Vector) Kind() elemkind.Kind { return elemkind.Complex128 }
func (v *Complex128Vector) Len() int            { return len(v.Data) }
func (v *Complex128Vector) IsNA(i int) bool     { return elemkind.IsNAComplex128(v.Data[i]) }
func (v *Complex128Vector) Clone() Source {
	out := make([]complex128, len(v.Data))
	copy(out, v.Data)
	return &Complex128Vector{Data: out}
}
func (v *Complex128Vector) Slice(start, size int) Source {
	out := make([]complex128, size)
	copy(out, v.Data[start:start+size])
	return &Complex128Vector{Data: out}
}
func (v *Complex128Vector) NewEmpty() Source { return &Complex128Vector{Data: []complex128{}} }
func (v *Complex128Vector) Grow(n int) Source {
	out := make([]complex128, n)
	for i := range out {
		out[i] = elemkind.NAComplex128()
	}
	return &Complex128Vector{Data: out}
}
func (v *Complex128Vector) CopyElement(dstIndex int, src Source, srcIndex int) {
	checkSameKind(v, src)
	v.Data[dstIndex] = src.(*Complex128Vector).Data[srcIndex]
}
func (v *Complex128Vector) SetNA(i int)     { v.Data[i] = elemkind.NAComplex128() }
func (v *Complex128Vector) RawPointer() any { return v.Data }
func (v *Complex128Vector) Inspect() string {
	return fmt.Sprintf("Complex128Vector[len=%d]", len(v.Data))
}

// ---- StringHandle (an opaque handle to a host-interned string; NA is a
// dedicated handle value, conventionally the zero handle) ----

type StringHandle int64

const NAStringHandle StringHandle = 0

type StringHandleVector struct{ Data []StringHandle }

func NewStringHandleVector(data []StringHandle) *StringHandleVector {
	return &StringHandleVector{Data: data}
}

func (v *StringHandleVector) Kind() elemkind.Kind { return elemkind.StringHandle }
func (v *StringHandleVector) Len() int            { return len(v.Data) }
func (v *StringHandleVector) IsNA(i int) bool     { return v.Data[i] == NAStringHandle }
func (v *StringHandleVector) Clone() Source {
	out := make([]StringHandle, len(v.Data))
	copy(out, v.Data)
	return &StringHandleVector{Data: out}
}
func (v *StringHandleVector) Slice(start, size int) Source {
	out := make([]StringHandle, size)
	copy(out, v.Data[start:start+size])
	return &StringHandleVector{Data: out}
}
func (v *StringHandleVector) NewEmpty() Source { return &StringHandleVector{Data: []StringHandle{}} }
func (v *StringHandleVector) Grow(n int) Source {
	return &StringHandleVector{Data: make([]StringHandle, n)}
}
func (v *StringHandleVector) CopyElement(dstIndex int, src Source, srcIndex int) {
	checkSameKind(v, src)
	v.Data[dstIndex] = src.(*StringHandleVector).Data[srcIndex]
}
func (v *StringHandleVector) SetNA(i int)     { v.Data[i] = NAStringHandle }
func (v *StringHandleVector) RawPointer() any { return v.Data }
func (v *StringHandleVector) Inspect() string {
	return fmt.Sprintf("StringHandleVector[len=%d]", len(v.Data))
}

// ---- OpaqueHandle (pass-through handle to a host object the engine never
// interprets, e.g. a list element or closure) ----

type OpaqueHandle int64

const NAOpaqueHandle OpaqueHandle = 0

type OpaqueHandleVector struct{ Data []OpaqueHandle }

func NewOpaqueHandleVector(data []OpaqueHandle) *OpaqueHandleVector {
	return &OpaqueHandleVector{Data: data}
}

func (v *OpaqueHandleVector) Kind() elemkind.Kind { return elemkind.OpaqueHandle }
func (v *OpaqueHandleVector) Len() int            { return len(v.Data) }
func (v *OpaqueHandleVector) IsNA(i int) bool     { return v.Data[i] == NAOpaqueHandle }
func (v *OpaqueHandleVector) Clone() Source {
	out := make([]OpaqueHandle, len(v.Data))
	copy(out, v.Data)
	return &OpaqueHandleVector{Data: out}
}
func (v *OpaqueHandleVector) Slice(start, size int) Source {
	out := make([]OpaqueHandle, size)
	copy(out, v.Data[start:start+size])
	return &OpaqueHandleVector{Data: out}
}
func (v *OpaqueHandleVector) NewEmpty() Source { return &OpaqueHandleVector{Data: []OpaqueHandle{}} }
func (v *OpaqueHandleVector) Grow(n int) Source {
	return &OpaqueHandleVector{Data: make([]OpaqueHandle, n)}
}
func (v *OpaqueHandleVector) CopyElement(dstIndex int, src Source, srcIndex int) {
	checkSameKind(v, src)
	v.Data[dstIndex] = src.(*OpaqueHandleVector).Data[srcIndex]
}
func (v *OpaqueHandleVector) SetNA(i int)     { v.Data[i] = NAOpaqueHandle }
func (v *OpaqueHandleVector) RawPointer() any { return v.Data }
func (v *OpaqueHandleVector) Inspect() string {
	return fmt.Sprintf("OpaqueHandleVector[len=%d]", len(v.Data))
}
