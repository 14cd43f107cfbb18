package nastaliq

// GlyphExtents describes a glyph's design-space bounding metrics, as
// reported by the font: the bearing of the top-left corner of the ink box
// relative to the origin, and the box's width and height. The conventions
// match shaping engines' extents records, where height is typically
// negative in a y-up design space.
type GlyphExtents struct {
	XBearing float64
	YBearing float64
	Width    float64
	Height   float64
}

// FontMetrics is the font collaborator consulted by the collision detector.
// Implementations wrap whatever font backend the host pipeline uses; this
// package performs no font file access of its own.
type FontMetrics interface {
	// GlyphExtents returns the design-space bounding metrics for a
	// codepoint. The second return value is false when the font has no such
	// glyph.
	GlyphExtents(codepoint uint32) (GlyphExtents, bool)

	// Scale returns the font's horizontal and vertical scale factors.
	Scale() (x, y float64)
}

// Form is a glyph's positional form within a word.
type Form uint8

const (
	FormNone Form = iota
	FormIsolated
	FormInitial
	FormMedial
	FormFinal
)

// Mark is the attachment position of a non-spacing mark.
type Mark uint8

const (
	MarkNone Mark = iota
	// A dot or sign positioned above the base, such as a fatha.
	MarkAbove
	// A dot or sign positioned below the base, such as the heh comma.
	MarkBelow
)

// Glyph is a positioned glyph as consumed by the spacing and collision core:
// its outline as a set of closed contours, its advances and offsets, and the
// role tags assigned by the font-data layer.
//
// The core never mutates a Glyph. The kerning solver's working copies are
// private, and positioned contours are always fresh slices.
type Glyph struct {
	Codepoint uint32
	Cluster   uint32

	// Paths holds one closed contour per outline loop, in design units.
	Paths []Path

	XAdvance float64
	YAdvance float64

	// XTotalAdvance is the running sum of horizontal advances up to this
	// glyph, maintained by the caller across the glyph sequence. Together
	// with the offsets it positions the contours absolutely.
	XTotalAdvance float64

	XOffset float64
	YOffset float64

	// Role tags. These are injected data: the font-data layer derives them
	// from glyph naming conventions or font tables, and the geometry core
	// only ever reads them.
	Form   Form
	Mark   Mark
	BariYe bool
	Space  bool
}

func (g *Glyph) IsIsolated() bool { return g.Form == FormIsolated }
func (g *Glyph) IsInitial() bool  { return g.Form == FormInitial }
func (g *Glyph) IsMedial() bool   { return g.Form == FormMedial }
func (g *Glyph) IsFinal() bool    { return g.Form == FormFinal }

func (g *Glyph) IsMarkAbove() bool { return g.Mark == MarkAbove }
func (g *Glyph) IsMarkBelow() bool { return g.Mark == MarkBelow }

// IsBariYe reports whether the glyph is a bari ye final form, whose long
// descending tail other glyphs may tuck above.
func (g *Glyph) IsBariYe() bool { return g.BariYe }

func (g *Glyph) IsSpace() bool { return g.Space }

// BoundingBox returns the bounding box of the positioned glyph: the font's
// ink extents displaced by the running total advance and the offsets, in the
// coordinate space of the rendered line. A codepoint the font cannot measure
// yields the zero rectangle, which collides with nothing.
func (g *Glyph) BoundingBox(font FontMetrics) Rect {
	extents, ok := font.GlyphExtents(g.Codepoint)
	if !ok {
		return Rect{}
	}
	blX := extents.XBearing + g.XTotalAdvance + g.XOffset
	blY := extents.YBearing + extents.Height + g.YOffset
	trX := blX + extents.Width
	trY := blY - extents.Height
	return NewRectFromPoints(Pt(blX, blY), Pt(trX, trY))
}

// PositionedPaths returns the glyph's contours positioned absolutely, i.e.
// translated by the running total advance and the offsets. The returned
// contours are fresh copies.
func (g *Glyph) PositionedPaths() []Path {
	return translatePaths(g.Paths, Vec(g.XTotalAdvance+g.XOffset, g.YOffset))
}
