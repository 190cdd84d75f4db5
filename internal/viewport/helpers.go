package viewport

import (
	"viewports/internal/hosterr"
	"viewports/internal/vecsource"
)

// clampRegion validates a get_region(i, n) request against a logical
// length and returns the number of elements that can actually be filled.
// The views never silently drop a request that begins out of range.
func clampRegion(i, n, logicalLen int) int {
	if i < 0 || i > logicalLen {
		hosterr.Fatal(hosterr.KindInvariantViolation, "region start %d out of range [0,%d]", i, logicalLen)
	}
	if n < 0 {
		hosterr.Fatal(hosterr.KindInvariantViolation, "region size must be non-negative, got %d", n)
	}
	if i+n > logicalLen {
		return logicalLen - i
	}
	return n
}

// rawPointerWindow narrows a raw backing array (any of the vecsource
// element-type slices) to [start, start+size), for Slice's read-only
// pointer-aliasing path.
func rawPointerWindow(raw any, start, size int) any {
	switch v := raw.(type) {
	case []int32:
		return v[start : start+size]
	case []float64:
		return v[start : start+size]
	case []byte:
		return v[start : start+size]
	case []complex128:
		return v[start : start+size]
	case []vecsource.StringHandle:
		return v[start : start+size]
	case []vecsource.OpaqueHandle:
		return v[start : start+size]
	default:
		hosterr.Fatal(hosterr.KindTypeMismatch, "unsupported raw pointer type %T", raw)
		panic("unreachable")
	}
}
