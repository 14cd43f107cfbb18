package nastaliq

import "testing"

func TestRectIntersect(t *testing.T) {
	a := Rect{0.0, 0.0, 100.0, 100.0}
	b := Rect{50.0, 50.0, 150.0, 150.0}
	diff(t, Rect{50.0, 50.0, 100.0, 100.0}, a.Intersect(b))
	diff(t, 2500.0, a.Intersect(b).Area())

	// Disjoint rectangles intersect with zero area.
	c := Rect{200.0, 0.0, 300.0, 100.0}
	diff(t, 0.0, a.Intersect(c).Area())

	// Sharing an edge also counts as zero area.
	d := Rect{100.0, 0.0, 200.0, 100.0}
	diff(t, 0.0, a.Intersect(d).Area())
}

func TestRectUnion(t *testing.T) {
	a := Rect{0.0, 0.0, 10.0, 10.0}
	b := Rect{20.0, -5.0, 30.0, 5.0}
	diff(t, Rect{0.0, -5.0, 30.0, 10.0}, a.Union(b))

	diff(t, Rect{0.0, 0.0, 10.0, 15.0}, a.UnionPoint(Pt(5.0, 15.0)))
}

func TestRectFromPoints(t *testing.T) {
	diff(t, Rect{1.0, 2.0, 3.0, 4.0}, NewRectFromPoints(Pt(3.0, 4.0), Pt(1.0, 2.0)))
	r := NewRectFromPoints(Pt(3.0, 4.0), Pt(1.0, 2.0))
	diff(t, 2.0, r.Width())
	diff(t, 2.0, r.Height())
}

func TestRectTranslate(t *testing.T) {
	a := Rect{0.0, 0.0, 10.0, 10.0}
	diff(t, Rect{5.0, -5.0, 15.0, 5.0}, a.Translate(Vec(5.0, -5.0)))
}
