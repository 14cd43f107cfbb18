package nastaliq

// collisionFlattenScale is the contour flattening tolerance per unit of
// horizontal font scale. The tolerance is font-unit-relative so that the
// polyline error stays proportionate to the rendered size.
const collisionFlattenScale = 50.0

// Collides reports whether the positioned outlines of two glyphs physically
// overlap.
//
// Bounding boxes are checked first; in normal text most pairs are rejected
// there. Surviving pairs have their contours flattened to closed polygons
// and every edge of one glyph is tested against every edge of the other for
// a proper segment intersection, returning on the first hit. The exhaustive
// test is O(n·m) in flattened edge counts; glyph outlines are small enough
// that no spatial index or sweep has been worth adding.
func (g *Glyph) Collides(other *Glyph, font FontMetrics) bool {
	// If the bounding boxes don't intersect, we can't collide.
	if g.BoundingBox(font).Intersect(other.BoundingBox(font)).Area() == 0.0 {
		return false
	}
	sx, _ := font.Scale()
	tolerance := collisionFlattenScale * sx

	myPaths := g.PositionedPaths()
	theirPaths := other.PositionedPaths()
	for _, p1 := range myPaths {
		for _, p2 := range theirPaths {
			if intersects(p1, p2, tolerance) {
				return true
			}
		}
	}
	return false
}

// intersects reports whether the flattened outlines of two contours cross.
// The vertex lists are treated as circular, so the closing edge from the
// last vertex back to the first is tested too.
func intersects(p1, p2 Path, tolerance float64) bool {
	pts1 := p1.Flatten(tolerance)
	pts2 := p2.Flatten(tolerance)
	for i := range pts1 {
		e1 := Line{pts1[i], pts1[(i+1)%len(pts1)]}
		for j := range pts2 {
			e2 := Line{pts2[j], pts2[(j+1)%len(pts2)]}
			if _, n := e1.IntersectLine(e2); n > 0 {
				return true
			}
		}
	}
	return false
}
