package viewport

import (
	"viewports/internal/bitset"
	"viewports/internal/indexvec"
	"viewports/internal/trace"
	"viewports/internal/vecsource"
)

// ExtractSubset implements the Slice branch of the subset-of-a-subset
// algorithm, grounded in slice_extract_subset and translate_indices
// (SPEC_FULL.md §4.7).
func (s *Slice) ExtractSubset(j indexvec.Vector) (vecsource.Source, View) {
	trace.Emit("slice.extract_subset", "j_len", j.Len())
	if j.Len() == 0 {
		return s.src.NewEmpty(), nil
	}
	if s.mat != nil {
		return indexvec.CopyGather(s.mat, j), nil
	}

	// Rule 1: any element of J out of [1, size] or NA — translate to
	// absolute positions in S and return a gathered fresh vector.
	if !j.InRange(1, s.size) {
		translated := j.TranslateWithinRange(s.start, s.size)
		return indexvec.CopyGather(s.src, translated), nil
	}

	// Rule 2: in range but not contiguous — translate to absolute
	// positions; a still-monotone result becomes a Mosaic, otherwise a
	// Prism.
	if !j.Contiguous() {
		translated := j.TranslateWithinRange(s.start, s.size)
		if translated.Monotone() {
			return nil, NewMosaic(s.src, Selector{Indices: translated})
		}
		return nil, NewPrism(s.src, translated)
	}

	// Rule 3: contiguous and in range — a new, tighter Slice.
	first, _ := j.RawIndex(0)
	return nil, NewSlice(s.src, s.start+first-1, j.Len())
}

// translateIndicesByBitmap resolves each screened, k-space logical index
// (1-based) to its absolute rank-select position in b (1-based), passing
// NA through unchanged. Grounded in translate_indices_by_bitmap (mosaics.c).
func translateIndicesByBitmap(screened indexvec.Vector, b *bitset.Bitmap) indexvec.Vector {
	out := indexvec.New(screened.Kind(), screened.Len())
	for i := 0; i < screened.Len(); i++ {
		val, isNA := screened.RawIndex(i)
		if isNA {
			out.SetNA(i)
			continue
		}
		out.Set(i, b.IndexOfNthSetBit(val-1)+1)
	}
	return out
}

// translateBitmap walks b and the monotone selector j in lockstep, setting
// a bit in a fresh n-length bitmap at every source position whose rank
// among b's set bits is named by the next element of j. Grounded in
// translate_bitmap (mosaics.c).
func translateBitmap(n int, b *bitset.Bitmap, j indexvec.Vector) *bitset.Bitmap {
	out := bitset.New(n)
	viewportIndex := 0
	jIndex := 0
	for i := 0; i < n && jIndex < j.Len(); i++ {
		if !b.Test(i) {
			continue
		}
		want, isNA := j.RawIndex(jIndex)
		if !isNA && viewportIndex == want-1 {
			out.Set(i)
			jIndex++
		}
		viewportIndex++
	}
	return out
}

// ExtractSubset implements the Mosaic branch of the subset-of-a-subset
// algorithm, grounded in mosaic_extract_subset (SPEC_FULL.md §4.7).
func (m *Mosaic) ExtractSubset(j indexvec.Vector) (vecsource.Source, View) {
	trace.Emit("mosaic.extract_subset", "j_len", j.Len())
	if j.Len() == 0 {
		return m.src.NewEmpty(), nil
	}
	screened := j.Screen(m.k)
	if m.mat != nil {
		return indexvec.CopyGather(m.mat, screened), nil
	}

	if !screened.Monotone() {
		translated := translateIndicesByBitmap(screened, m.b)
		return indexvec.CopyGather(m.src, translated), nil
	}

	// Monotone selector: compose the two bitmaps directly into a
	// tighter Mosaic over the same source.
	translatedBitmap := translateBitmap(m.src.Len(), m.b, j)
	return nil, &Mosaic{src: m.src, b: translatedBitmap, k: j.Len()}
}

// composePrismIndices resolves each screened selector element through the
// prism's own index vector, passing NA through whichever side it came
// from. Grounded in map_indices_onto_source (prisms.c), but guards every
// lookup against the screened value rather than the raw selector, so an
// out-of-range element never indexes prismIndices out of bounds.
func composePrismIndices(screened, prismIndices indexvec.Vector) indexvec.Vector {
	out := indexvec.New(screened.Kind(), screened.Len())
	for i := 0; i < screened.Len(); i++ {
		val, isNA := screened.RawIndex(i)
		if isNA {
			out.SetNA(i)
			continue
		}
		pos, posNA := prismIndices.RawIndex(val - 1)
		if posNA {
			out.SetNA(i)
			continue
		}
		out.Set(i, pos)
	}
	return out
}

// ExtractSubset implements the Prism branch of the subset-of-a-subset
// algorithm, grounded in prism_extract_subset (SPEC_FULL.md §4.7). Unlike
// Slice and Mosaic, a Prism subset never refines to a different view kind:
// it either gathers eagerly or stays a Prism.
func (p *Prism) ExtractSubset(j indexvec.Vector) (vecsource.Source, View) {
	trace.Emit("prism.extract_subset", "j_len", j.Len())
	if j.Len() == 0 {
		return p.src.NewEmpty(), nil
	}
	screened := j.Screen(p.idx.Len())
	if p.mat != nil {
		return indexvec.CopyGather(p.mat, screened), nil
	}

	composed := composePrismIndices(screened, p.idx)
	if !screened.ContainsNA() {
		return indexvec.CopyGather(p.src, composed), nil
	}
	return nil, NewPrism(p.src, composed)
}
