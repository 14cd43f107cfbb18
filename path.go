package nastaliq

import "math"

// Path is one closed contour of a glyph outline: an ordered sequence of
// segments in which each segment starts where the previous one ends, and the
// last segment ends at the first segment's start.
//
// Paths are treated as immutable inputs; operations that move a path return a
// new one.
type Path []Segment

// IsEmpty reports whether the path contains no segments.
func (p Path) IsEmpty() bool {
	return len(p) == 0
}

// Translate returns a copy of the path displaced by v. The receiver is not
// modified.
func (p Path) Translate(v Vec2) Path {
	out := make(Path, len(p))
	for i, seg := range p {
		out[i] = seg.Translate(v)
	}
	return out
}

// BoundingBox returns the smallest axis-aligned rectangle enclosing the path.
// The bounding box of an empty path is the zero rectangle.
func (p Path) BoundingBox() Rect {
	var bbox Rect
	for i, seg := range p {
		if i == 0 {
			bbox = seg.BoundingBox()
		} else {
			bbox = bbox.Union(seg.BoundingBox())
		}
	}
	return bbox
}

// Flatten approximates the contour by a closed polygon whose vertices lie
// within tolerance of the true curve. The point sequence is circular: the
// last vertex connects back to the first, and a vertex coinciding with the
// start point is not repeated at the end.
//
// The quadratic subdivision counts come from the parabola-integral
// approximation described in "Flattening quadratic Béziers"
// (https://raphlinus.github.io/graphics/curves/2019/12/23/flatten-quadbez.html).
// The number of vertices tends to scale as the inverse square root of
// tolerance.
func (p Path) Flatten(tolerance float64) []Point {
	if len(p) == 0 {
		return nil
	}
	sqrtTol := math.Sqrt(tolerance)
	pts := []Point{p[0].Start()}
	for _, seg := range p {
		switch seg.Kind {
		case QuadKind:
			q := seg.Quad()
			params := q.estimateSubdiv(sqrtTol)
			n := max(int(math.Ceil(0.5*params.val/sqrtTol)), 1)
			step := 1.0 / float64(n)
			for i := 1; i < n; i++ {
				u := float64(i) * step
				t := q.determineSubdivT(&params, u)
				pts = append(pts, q.Eval(t))
			}
			pts = append(pts, q.P2)
		default:
			// Lines contribute their endpoint. Cubics never occur in
			// well-formed contours; chord approximation keeps malformed
			// input from derailing the caller.
			pts = append(pts, seg.End())
		}
	}
	if len(pts) > 1 && pts[len(pts)-1] == pts[0] {
		pts = pts[:len(pts)-1]
	}
	return pts
}

// translatePaths returns fresh copies of every contour, displaced by v.
func translatePaths(paths []Path, v Vec2) []Path {
	out := make([]Path, len(paths))
	for i, p := range paths {
		out[i] = p.Translate(v)
	}
	return out
}

// Contour returns the rectangle's outline as a closed four-segment path,
// wound positively. This is mainly a convenience for constructing simple
// test geometry and advance-box outlines.
func (r Rect) Contour() Path {
	return Path{
		Line{Pt(r.X0, r.Y0), Pt(r.X1, r.Y0)}.Seg(),
		Line{Pt(r.X1, r.Y0), Pt(r.X1, r.Y1)}.Seg(),
		Line{Pt(r.X1, r.Y1), Pt(r.X0, r.Y1)}.Seg(),
		Line{Pt(r.X0, r.Y1), Pt(r.X0, r.Y0)}.Seg(),
	}
}
