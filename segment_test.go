package nastaliq

import (
	"testing"

	"github.com/google/go-cmp/cmp/cmpopts"
)

func TestSegmentEval(t *testing.T) {
	l := Line{Pt(0.0, 0.0), Pt(100.0, 0.0)}
	diff(t, l.Eval(0.25), l.Seg().Eval(0.25))

	q := QuadBez{Pt(0.0, 0.0), Pt(50.0, 100.0), Pt(100.0, 0.0)}
	diff(t, q.Eval(0.75), q.Seg().Eval(0.75))

	// Cubic evaluation exists only so malformed input stays well defined.
	c := Segment{
		Kind: CubicKind,
		P0:   Pt(0.0, 0.0),
		P1:   Pt(0.0, 100.0),
		P2:   Pt(100.0, 100.0),
		P3:   Pt(100.0, 0.0),
	}
	assertNear(t, c.Eval(0.0), c.P0, 1e-12)
	assertNear(t, c.Eval(1.0), c.P3, 1e-12)
	assertNear(t, c.Eval(0.5), Pt(50.0, 75.0), 1e-12)
}

func TestSegmentEndpoints(t *testing.T) {
	q := QuadBez{Pt(1.0, 2.0), Pt(3.0, 4.0), Pt(5.0, 6.0)}.Seg()
	diff(t, Pt(1.0, 2.0), q.Start())
	diff(t, Pt(5.0, 6.0), q.End())
}

func TestSegmentTranslate(t *testing.T) {
	q := QuadBez{Pt(0.0, 0.0), Pt(50.0, 100.0), Pt(100.0, 0.0)}.Seg()
	got := q.Translate(Vec(10.0, 20.0))
	want := QuadBez{Pt(10.0, 20.0), Pt(60.0, 120.0), Pt(110.0, 20.0)}.Seg()
	diff(t, want, got)
}

func TestSegmentBoundingBox(t *testing.T) {
	q := QuadBez{Pt(0.0, 0.0), Pt(50.0, 100.0), Pt(100.0, 0.0)}.Seg()
	diff(t, Rect{0.0, 0.0, 100.0, 50.0}, q.BoundingBox(), cmpopts.EquateApprox(0, 1e-9))

	l := Line{Pt(10.0, 30.0), Pt(-10.0, 0.0)}.Seg()
	diff(t, Rect{-10.0, 0.0, 10.0, 30.0}, l.BoundingBox())
}
