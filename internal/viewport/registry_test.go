package viewport

import (
	"testing"

	"viewports/internal/elemkind"
)

func TestRegistryCoversEveryViewAndElementKind(t *testing.T) {
	kinds := []ViewKind{SliceViewKind, MosaicViewKind, PrismViewKind}
	for _, vk := range kinds {
		for ek := elemkind.Kind(0); int(ek) < elemkind.NumKinds(); ek++ {
			if _, ok := Lookup(vk, ek); !ok {
				t.Fatalf("no class registered for (%s, %s)", vk, ek)
			}
		}
	}
}

func TestClassNameFormat(t *testing.T) {
	c := Class{View: MosaicViewKind, Elem: elemkind.Float64}
	if got, want := c.Name(), "mosaic_float64_altrep"; got != want {
		t.Fatalf("Name() = %q, want %q", got, want)
	}
}
