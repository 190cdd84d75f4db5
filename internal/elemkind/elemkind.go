// Package elemkind enumerates the primitive element kinds a viewport can be
// built over and the NA sentinel that goes with each one.
package elemkind

import "math"

// Kind tags the primitive element type carried by a source vector or view.
type Kind uint8

const (
	Int32 Kind = iota
	Float64
	Bool
	Byte
	Complex128
	StringHandle
	OpaqueHandle

	numKinds = int(OpaqueHandle) + 1
)

func (k Kind) String() string {
	switch k {
	case Int32:
		return "int32"
	case Float64:
		return "float64"
	case Bool:
		return "bool"
	case Byte:
		return "byte"
	case Complex128:
		return "complex128"
	case StringHandle:
		return "string-handle"
	case OpaqueHandle:
		return "opaque-handle"
	default:
		return "unknown"
	}
}

// NAInt32 is the integer NA sentinel, matching the host's NA_INTEGER.
const NAInt32 = math.MinInt32

// NABool is the boolean NA sentinel. Like NAInt32, booleans are stored
// tri-state (false/true/NA) the way the host stores LGLSXP.
const NABool int32 = math.MinInt32

// IsNAFloat64 reports whether f is the floating NA sentinel (any NaN).
func IsNAFloat64(f float64) bool {
	return math.IsNaN(f)
}

// NAFloat64 returns the floating NA sentinel.
func NAFloat64() float64 {
	return math.NaN()
}

// NAComplex128 is the complex NA sentinel: NaN in both real and imaginary parts.
func NAComplex128() complex128 {
	return complex(math.NaN(), math.NaN())
}

// IsNAComplex128 reports whether c is the complex NA sentinel.
func IsNAComplex128(c complex128) bool {
	return math.IsNaN(real(c)) || math.IsNaN(imag(c))
}

// HasNA reports whether this element kind supports an NA sentinel at all.
// Byte vectors have no NA representation; the system substitutes zero.
func (k Kind) HasNA() bool {
	return k != Byte
}

// ElemSize returns the width in bytes of one element of this kind, for
// diagnostics that report a materialized buffer's size (e.g.
// internal/trace.EmitSize).
func (k Kind) ElemSize() uint64 {
	switch k {
	case Int32, Bool:
		return 4
	case Float64:
		return 8
	case Byte:
		return 1
	case Complex128:
		return 16
	case StringHandle, OpaqueHandle:
		return 8
	default:
		return 0
	}
}

// NumKinds is the number of registered element kinds, used to size
// per-kind class tables (see internal/viewport/registry.go).
func NumKinds() int {
	return numKinds
}
