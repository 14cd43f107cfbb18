package nastaliq

import (
	"math"
	"testing"

	"github.com/google/go-cmp/cmp/cmpopts"
)

func TestLineNearest(t *testing.T) {
	l := Line{Pt(0.0, 0.0), Pt(100.0, 0.0)}

	// Interior projection.
	distSq, ts := l.Nearest(Pt(30.0, 40.0))
	diff(t, 1600.0, distSq, cmpopts.EquateApprox(0, 1e-9))
	diff(t, 0.3, ts, cmpopts.EquateApprox(0, 1e-9))

	// Clamped to the start point.
	distSq, ts = l.Nearest(Pt(-30.0, 40.0))
	diff(t, 2500.0, distSq, cmpopts.EquateApprox(0, 1e-9))
	diff(t, 0.0, ts, cmpopts.EquateApprox(0, 1e-9))

	// Clamped to the end point.
	distSq, ts = l.Nearest(Pt(130.0, 40.0))
	diff(t, 2500.0, distSq, cmpopts.EquateApprox(0, 1e-9))
	diff(t, 1.0, ts, cmpopts.EquateApprox(0, 1e-9))
}

func TestLineEval(t *testing.T) {
	l := Line{Pt(10.0, 20.0), Pt(110.0, 120.0)}
	assertNear(t, l.Eval(0.0), l.P0, 1e-12)
	assertNear(t, l.Eval(1.0), l.P1, 1e-12)
	assertNear(t, l.Eval(0.5), Pt(60.0, 70.0), 1e-12)
	diff(t, 100.0*math.Sqrt2, l.Length(), cmpopts.EquateApprox(0, 1e-9))
}

func TestIntersectLine(t *testing.T) {
	hLine := Line{Pt(0.0, 0.0), Pt(100.0, 0.0)}
	vLine := Line{Pt(10.0, -10.0), Pt(10.0, 10.0)}
	xs, n := hLine.IntersectLine(vLine)
	want := []LineIntersection{{0.5, 0.1}}
	diff(t, want, xs[:n], cmpopts.EquateApprox(0, 1e-7))

	vLine = Line{Pt(-10.0, -10.0), Pt(-10.0, 10.0)}
	if xs, n := hLine.IntersectLine(vLine); n != 0 {
		t.Errorf("expected no intersections, got %v", xs[:n])
	}

	vLine = Line{Pt(10.0, 10.0), Pt(10.0, 20.0)}
	if xs, n := hLine.IntersectLine(vLine); n != 0 {
		t.Errorf("expected no intersections, got %v", xs[:n])
	}
}

func TestLineTranslate(t *testing.T) {
	l := Line{Pt(0.0, 0.0), Pt(1.0, 2.0)}
	got := l.Translate(Vec(10.0, -5.0))
	diff(t, Line{Pt(10.0, -5.0), Pt(11.0, -3.0)}, got)
	// The receiver is unchanged.
	diff(t, Line{Pt(0.0, 0.0), Pt(1.0, 2.0)}, l)
}
