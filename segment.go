package nastaliq

// SegmentKind identifies the variant stored in a [Segment].
type SegmentKind int

const (
	// A line segment.
	LineKind SegmentKind = iota + 1
	// A quadratic Bézier segment.
	QuadKind
	// A cubic Bézier segment. Glyph contours in this package never produce
	// cubics; the kind exists so that malformed input can be represented and
	// degrades predictably instead of crashing. See [SegmentDistance].
	CubicKind
)

// Segment is one segment of a glyph contour. It acts as a tagged union of
// [Line] and [QuadBez] (and, for malformed input only, a cubic Bézier).
type Segment struct {
	// We don't use an interface for Segment because we want Line.Translate
	// and QuadBez.Translate to return their respective types, and because a
	// plain struct avoids allocating for every segment of every contour.

	Kind SegmentKind
	P0   Point
	P1   Point
	P2   Point
	P3   Point
}

// Line returns the line represented by this segment. This is only valid when
// Kind == LineKind.
func (seg Segment) Line() Line { return Line{seg.P0, seg.P1} }

// Quad returns the quadratic Bézier represented by this segment. This is only
// valid when Kind == QuadKind.
func (seg Segment) Quad() QuadBez { return QuadBez{seg.P0, seg.P1, seg.P2} }

func (seg Segment) Eval(t float64) Point {
	switch seg.Kind {
	case LineKind:
		return seg.Line().Eval(t)
	case QuadKind:
		return seg.Quad().Eval(t)
	case CubicKind:
		mt := 1.0 - t
		v := Vec2(seg.P0).Mul(mt * mt * mt)
		v = v.Add(Vec2(seg.P1).Mul(3.0 * mt * mt * t))
		v = v.Add(Vec2(seg.P2).Mul(3.0 * mt * t * t))
		v = v.Add(Vec2(seg.P3).Mul(t * t * t))
		return Point(v)
	default:
		return Point{}
	}
}

func (seg Segment) Start() Point {
	return seg.Eval(0)
}

func (seg Segment) End() Point {
	return seg.Eval(1)
}

func (seg Segment) Translate(v Vec2) Segment {
	return Segment{
		Kind: seg.Kind,
		P0:   seg.P0.Translate(v),
		P1:   seg.P1.Translate(v),
		P2:   seg.P2.Translate(v),
		P3:   seg.P3.Translate(v),
	}
}

func (seg Segment) BoundingBox() Rect {
	switch seg.Kind {
	case LineKind:
		return seg.Line().BoundingBox()
	case QuadKind:
		return seg.Quad().BoundingBox()
	case CubicKind:
		// Control box; loose but sufficient for malformed input.
		return NewRectFromPoints(seg.P0, seg.P1).
			UnionPoint(seg.P2).
			UnionPoint(seg.P3)
	default:
		return Rect{}
	}
}

func (seg Segment) IsNaN() bool {
	return seg.P0.IsNaN() || seg.P1.IsNaN() || seg.P2.IsNaN() || seg.P3.IsNaN()
}
