package viewport

import (
	"fmt"

	"viewports/internal/elemkind"
)

// ViewKind names one of the three viewport representations, mirroring the
// host's viewport_type_t enum (choice.h: VIEWPORT_NONE/SLICE/MOSAIC/PRISM).
type ViewKind uint8

const (
	SliceViewKind ViewKind = iota
	MosaicViewKind
	PrismViewKind
)

func (k ViewKind) String() string {
	switch k {
	case SliceViewKind:
		return "slice"
	case MosaicViewKind:
		return "mosaic"
	case PrismViewKind:
		return "prism"
	default:
		return "unknown"
	}
}

// Class is the Go stand-in for one of the host's per-(ALTREP class,
// element type) registrations — e.g. slice_integer_altrep,
// mosaic_numeric_altrep, prism_raw_altrep. The host registers one ALTREP
// class per (view kind, SEXP type) pair at load time (init.c,
// R_init_viewports); this registry exists for the same reason: a fixed,
// enumerable table of what element kinds each view kind supports, used by
// the Inspect methods to report a class name rather than a bare Go type
// name.
type Class struct {
	View ViewKind
	Elem elemkind.Kind
}

// Name renders the class as "<view>_<element kind>_altrep", e.g.
// "mosaic_float64_altrep".
func (c Class) Name() string {
	return fmt.Sprintf("%s_%s_altrep", c.View, c.Elem)
}

var classTable = make(map[Class]bool, 21)

func init() {
	for _, vk := range []ViewKind{SliceViewKind, MosaicViewKind, PrismViewKind} {
		for ek := elemkind.Kind(0); int(ek) < elemkind.NumKinds(); ek++ {
			classTable[Class{View: vk, Elem: ek}] = true
		}
	}
}

// Lookup reports whether a class is registered for (view kind, element
// kind). Every one of the 3×7 combinations is registered at package init,
// matching R_init_viewports registering a class for every (view kind,
// SEXP type) pair this package supports — there is no element kind a view
// kind declines to support.
func Lookup(vk ViewKind, ek elemkind.Kind) (Class, bool) {
	c := Class{View: vk, Elem: ek}
	_, ok := classTable[c]
	return c, ok
}

// classOf reports the registered class for a constructed View, for
// diagnostic use by Inspect and cmd/viewports.
func classOf(vk ViewKind, v View) Class {
	c, ok := Lookup(vk, v.Kind())
	if !ok {
		panic("unreachable: every view/element kind pair is registered at init")
	}
	return c
}
