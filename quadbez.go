package nastaliq

import "math"

// QuadBez is a quadratic Bézier segment.
type QuadBez struct {
	P0 Point
	P1 Point
	P2 Point
}

func (q QuadBez) Eval(t float64) Point {
	mt := 1.0 - t
	a := Vec2(q.P0).Mul(mt * mt)
	b := Vec2(q.P1).Mul(mt * 2.0)
	c := Vec2(q.P2).Mul(t)
	d := b.Add(c)
	return Point(a.Add(d.Mul(t)))
}

func (q QuadBez) Subdivide() (QuadBez, QuadBez) {
	pm := q.Eval(0.5)
	return QuadBez{q.P0, q.P0.Midpoint(q.P1), pm},
		QuadBez{pm, q.P1.Midpoint(q.P2), q.P2}
}

func (q QuadBez) Subsegment(t0 float64, t1 float64) QuadBez {
	p0 := q.Eval(t0)
	p2 := q.Eval(t1)
	p1 := p0.Translate(q.P1.Sub(q.P0).Lerp(q.P2.Sub(q.P1), t0).Mul(t1 - t0))
	return QuadBez{p0, p1, p2}
}

func (q QuadBez) Start() Point {
	return q.P0
}

func (q QuadBez) End() Point {
	return q.P2
}

func (q QuadBez) Translate(v Vec2) QuadBez {
	return QuadBez{
		P0: q.P0.Translate(v),
		P1: q.P1.Translate(v),
		P2: q.P2.Translate(v),
	}
}

func (q QuadBez) IsNaN() bool {
	return q.P0.IsNaN() || q.P1.IsNaN() || q.P2.IsNaN()
}

// Extrema returns the parameters of the curve's interior extrema, in
// increasing order. At most two can exist.
func (q QuadBez) Extrema() ([2]float64, int) {
	// Finding the extrema of a quadratic bezier means finding the roots in the
	// quadratic's first derivative, which is a line.

	var out [2]float64
	var outN int
	d0 := q.P1.Sub(q.P0)
	d1 := q.P2.Sub(q.P1)
	dd := d1.Sub(d0)
	if dd.X != 0.0 {
		t := -d0.X / dd.X
		if t > 0.0 && t < 1.0 {
			out[outN] = t
			outN++
		}
	}
	if dd.Y != 0 {
		t := -d0.Y / dd.Y
		if t > 0.0 && t < 1.0 {
			out[outN] = t
			outN++
			if outN == 2 && out[0] > t {
				out[0], out[1] = out[1], out[0]
			}
		}
	}
	return out, outN
}

// BoundingBox returns the smallest axis-aligned rectangle enclosing the
// curve.
func (q QuadBez) BoundingBox() Rect {
	bbox := NewRectFromPoints(q.P0, q.P2)
	ex, n := q.Extrema()
	for _, t := range ex[:n] {
		bbox = bbox.UnionPoint(q.Eval(t))
	}
	return bbox
}

// Nearest returns the point on the curve nearest to pt, as a squared distance
// and a parameter in [0, 1], using an analytical algorithm based on cubic
// root finding.
func (q QuadBez) Nearest(pt Point) (distSq, outT float64) {
	evalT := func(pt Point, tBest *float64, rBest *option[float64], t float64, p0 Point) {
		r := p0.Sub(pt).Hypot2()
		if !rBest.isSet || r < rBest.value {
			rBest.set(r)
			*tBest = t
		}
	}
	tryT := func(
		q *QuadBez,
		pt Point,
		tBest *float64,
		rBest *option[float64],
		t float64,
	) bool {
		if !(t >= 0.0 && t <= 1.0) {
			return true
		}
		evalT(pt, tBest, rBest, t, q.Eval(t))
		return false
	}
	d0 := q.P1.Sub(q.P0)
	d1 := Vec2(q.P0).Add(Vec2(q.P2)).Sub(Vec2(q.P1).Mul(2.0))
	d := q.P0.Sub(pt)
	c0 := d.Dot(d0)
	c1 := 2.0*d0.Hypot2() + d.Dot(d1)
	c2 := 3.0 * d1.Dot(d0)
	c3 := d1.Hypot2()
	roots, n := SolveCubic(c0, c1, c2, c3)
	var rBest option[float64]
	tBest := 0.0
	needEnds := n == 0

	for _, t := range roots[:n] {
		b := tryT(&q, pt, &tBest, &rBest, t)
		if b {
			needEnds = true
		}
	}
	if needEnds {
		evalT(pt, &tBest, &rBest, 0.0, q.P0)
		evalT(pt, &tBest, &rBest, 1.0, q.P2)
	}

	return rBest.value, tBest
}

// Seg returns the curve as a [Segment].
func (q QuadBez) Seg() Segment {
	return Segment{Kind: QuadKind, P0: q.P0, P1: q.P1, P2: q.P2}
}

// An approximation to $\int (1 + 4x^2) ^ -0.25 dx$
//
// This is used for flattening curves.
func approxParabolaIntegral(x float64) float64 {
	const d = 0.67
	return x / (1.0 - d + math.Sqrt(math.Sqrt(math.Pow(d, 4)+0.25*x*x)))
}

// An approximation to the inverse parabola integral.
func approxParabolaInvIntegral(x float64) float64 {
	const b = 0.39
	return x * (1.0 - b + math.Sqrt(b*b+0.25*x*x))
}

// Maps a value from 0..1 to 0..1.
func (q QuadBez) determineSubdivT(params *flattenParams, x float64) float64 {
	a := params.a0 + (params.a2-params.a0)*x
	u := approxParabolaInvIntegral(a)
	return (u - params.u0) * params.uscale
}

// estimateSubdiv estimates the number of subdivisions for flattening.
func (q QuadBez) estimateSubdiv(sqrtTol float64) flattenParams {
	// Determine transformation to $y = x^2$ parabola.
	d01 := q.P1.Sub(q.P0)
	d12 := q.P2.Sub(q.P1)
	dd := d01.Sub(d12)
	cross := q.P2.Sub(q.P0).Cross(dd)
	x0 := d01.Dot(dd) * (1.0 / cross)
	x2 := d12.Dot(dd) * (1.0 / cross)
	scale := math.Abs(cross / (dd.Hypot() * (x2 - x0)))

	// Compute number of subdivisions needed.
	a0 := approxParabolaIntegral(x0)
	a2 := approxParabolaIntegral(x2)
	var val float64
	if !math.IsInf(scale, 0) {
		da := math.Abs(a2 - a0)
		sqrtScale := math.Sqrt(scale)
		if math.Signbit(x0) == math.Signbit(x2) {
			val = da * sqrtScale
		} else {
			// Handle cusp case (segment contains curvature maximum)
			xmin := sqrtTol / sqrtScale
			val = sqrtTol * da / approxParabolaIntegral(xmin)
		}
	}
	u0 := approxParabolaInvIntegral(a0)
	u2 := approxParabolaInvIntegral(a2)
	uscale := 1.0 / (u2 - u0)
	return flattenParams{
		a0,
		a2,
		u0,
		uscale,
		val,
	}
}

type flattenParams struct {
	a0     float64
	a2     float64
	u0     float64
	uscale float64
	// The number of subdivisions * 2 * sqrtTol.
	val float64
}
