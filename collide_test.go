package nastaliq

import "testing"

// fakeFont supplies extents and scale without a real font backend.
type fakeFont struct {
	extents map[uint32]GlyphExtents
	sx, sy  float64
}

func (f *fakeFont) GlyphExtents(codepoint uint32) (GlyphExtents, bool) {
	e, ok := f.extents[codepoint]
	return e, ok
}

func (f *fakeFont) Scale() (x, y float64) {
	return f.sx, f.sy
}

// squareExtents describes a w×h ink box with its origin at the glyph origin,
// in the y-up convention where height is negative.
func squareExtents(w, h float64) GlyphExtents {
	return GlyphExtents{
		XBearing: 0.0,
		YBearing: h,
		Width:    w,
		Height:   -h,
	}
}

func squareGlyph(codepoint uint32, totalAdvance float64) *Glyph {
	return &Glyph{
		Codepoint:     codepoint,
		Paths:         []Path{Rect{0.0, 0.0, 100.0, 100.0}.Contour()},
		XAdvance:      100.0,
		XTotalAdvance: totalAdvance,
	}
}

func squareFont() *fakeFont {
	return &fakeFont{
		extents: map[uint32]GlyphExtents{
			1: squareExtents(100.0, 100.0),
			2: squareExtents(100.0, 100.0),
		},
		sx: 1.0,
		sy: 1.0,
	}
}

func TestCollidesOverlap(t *testing.T) {
	// Two 100×100 squares sharing 10% of their area.
	font := squareFont()
	a := squareGlyph(1, 0.0)
	b := squareGlyph(2, 90.0)

	if !a.Collides(b, font) {
		t.Error("overlapping squares should collide")
	}
	if !b.Collides(a, font) {
		t.Error("collision should be symmetric")
	}
}

func TestCollidesGap(t *testing.T) {
	// The same squares separated by a 200 unit gap.
	font := squareFont()
	a := squareGlyph(1, 0.0)
	b := squareGlyph(2, 300.0)

	if a.Collides(b, font) {
		t.Error("separated squares should not collide")
	}
}

func TestCollidesBoxRejectWinsOverContours(t *testing.T) {
	// The bounding box pre-filter is authoritative: if the font-reported
	// boxes don't intersect, contours are never examined.
	font := squareFont()
	font.extents[2] = GlyphExtents{
		XBearing: 5000.0,
		YBearing: 100.0,
		Width:    100.0,
		Height:   -100.0,
	}
	a := squareGlyph(1, 0.0)
	b := squareGlyph(2, 0.0) // contours coincide with a's

	if a.Collides(b, font) {
		t.Error("disjoint bounding boxes must suppress any collision")
	}
}

func TestCollidesTouchingBoxes(t *testing.T) {
	// Boxes sharing only an edge have intersection area zero and are
	// rejected.
	font := squareFont()
	a := squareGlyph(1, 0.0)
	b := squareGlyph(2, 100.0)

	if a.Collides(b, font) {
		t.Error("edge-touching boxes have zero intersection area")
	}
}

func TestCollidesMissingExtents(t *testing.T) {
	font := squareFont()
	a := squareGlyph(1, 0.0)
	b := squareGlyph(99, 0.0) // not in the font

	if a.Collides(b, font) {
		t.Error("a glyph without extents collides with nothing")
	}
}

func TestCollidesCurvedOutlines(t *testing.T) {
	// Two arch-shaped contours (quadratic top, straight chord) offset
	// vertically so the upper glyph's chord cuts through the lower arch.
	// This exercises curve flattening in the edge test.
	arch := Path{
		QuadBez{Pt(0.0, 0.0), Pt(50.0, 100.0), Pt(100.0, 0.0)}.Seg(),
		Line{Pt(100.0, 0.0), Pt(0.0, 0.0)}.Seg(),
	}
	font := &fakeFont{
		extents: map[uint32]GlyphExtents{
			1: {XBearing: 0.0, YBearing: 50.0, Width: 100.0, Height: -50.0},
			2: {XBearing: 0.0, YBearing: 50.0, Width: 100.0, Height: -50.0},
		},
		sx: 0.01,
		sy: 0.01,
	}
	a := &Glyph{Codepoint: 1, Paths: []Path{arch}}
	b := &Glyph{Codepoint: 2, Paths: []Path{arch}, YOffset: 30.0}

	if !a.Collides(b, font) {
		t.Error("offset arches should collide")
	}

	c := &Glyph{Codepoint: 2, Paths: []Path{arch}, XTotalAdvance: 45.0, YOffset: 30.0}
	if !a.Collides(c, font) {
		t.Error("shifted arch should still cut the lower outline")
	}
}
