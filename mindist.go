package nastaliq

import "math"

// Minimum distance between two quadratic Bézier curves.
//
// This implements the algorithm in "Computing the minimum distance between
// two Bézier curves", Chen et al., *Journal of Computational and Applied
// Mathematics* 229(2009), 294-301, specialized to curves of degree two, the
// only curved segments a glyph contour can contain.

// Binomial coefficients for degree 2 and degree 4 Bernstein bases.
var (
	binom2 = [3]float64{1, 2, 1}
	binom4 = [5]float64{1, 4, 6, 4, 1}
)

// MinDistance encodes the minimum distance between two quadratic Bézier
// curves, as returned by [QuadBez.MinDist].
type MinDistance struct {
	// The shortest distance between any two points on the two curves.
	Distance float64
	// The position of the nearest point on the first curve, as a parameter.
	T1 float64
	// The position of the nearest point on the second curve, as a parameter.
	T2 float64
}

func (q QuadBez) controls() [3]Vec2 {
	return [3]Vec2{Vec2(q.P0), Vec2(q.P1), Vec2(q.P2)}
}

// MinDist returns the minimum distance between two quadratic Bézier curves.
//
// The result is accurate to roughly the given accuracy in parameter space;
// the spacing oracle calls this with a deliberately coarse accuracy.
func (q QuadBez) MinDist(other QuadBez, accuracy float64) MinDistance {
	ret := quadMinDistParam(
		q.controls(),
		other.controls(),
		[2]float64{0.0, 1.0},
		[2]float64{0.0, 1.0},
		accuracy,
		math.Inf(1),
	)
	distance, t1, t2 := ret[0], ret[1], ret[2]
	return MinDistance{
		Distance: math.Sqrt(distance),
		T1:       t1,
		T2:       t2,
	}
}

// quadMinDistParam recursively narrows the parameter rectangle [u]×[v] around
// the pair of parameters realizing the minimum squared distance. The returned
// triple is (squared distance, u, v).
func quadMinDistParam(
	bez1, bez2 [3]Vec2,
	u, v [2]float64,
	epsilon float64,
	bestAlpha float64,
) [3]float64 {
	umin, umax := u[0], u[1]
	vmin, vmax := v[0], v[1]
	umid := (umin + umax) / 2.0
	vmid := (vmin + vmax) / 2.0
	svalues := [4][3]float64{
		{distSurface(umin, vmin, bez1, bez2), umin, vmin},
		{distSurface(umin, vmax, bez1, bez2), umin, vmax},
		{distSurface(umax, vmin, bez1, bez2), umax, vmin},
		{distSurface(umax, vmax, bez1, bez2), umax, vmax},
	}
	alpha := svalues[0][0]
	for _, sval := range svalues {
		alpha = min(alpha, sval[0])
	}
	if alpha > bestAlpha {
		return [3]float64{alpha, umid, vmid}
	}

	if math.Abs(umax-umin) < epsilon || math.Abs(vmax-vmin) < epsilon {
		return [3]float64{alpha, umid, vmid}
	}

	// Property one: D(r>k) > alpha
	isOutside := true
	var minDrk option[float64]
	var minIj option[[2]int]
	for r := 0; r < 4; r++ {
		for k := 0; k < 4; k++ {
			d := dRk(r, k, bez1, bez2)
			if d < alpha {
				isOutside = false
			}
			if !minDrk.isSet || d < minDrk.value {
				minDrk.set(d)
				minIj.set([2]int{r, k})
			}
		}
	}
	if isOutside {
		return [3]float64{alpha, umid, vmid}
	}

	// Property two: boundary check
	atBoundary0OnBez1 := true
	atBoundary1OnBez1 := true
	atBoundary0OnBez2 := true
	atBoundary1OnBez2 := true
	for i := 0; i < 4; i++ {
		for j := 0; j < 4; j++ {
			dij := dRk(i, j, bez1, bez2)
			if dij < dRk(0, j, bez1, bez2) {
				atBoundary0OnBez1 = false
			}
			if dij < dRk(4, j, bez1, bez2) {
				atBoundary1OnBez1 = false
			}
			if dij < dRk(i, 0, bez1, bez2) {
				atBoundary0OnBez2 = false
			}
			if dij < dRk(i, 4, bez1, bez2) {
				atBoundary1OnBez2 = false
			}
		}
	}
	if atBoundary0OnBez1 && atBoundary0OnBez2 {
		return svalues[0]
	}
	if atBoundary0OnBez1 && atBoundary1OnBez2 {
		return svalues[1]
	}
	if atBoundary1OnBez1 && atBoundary0OnBez2 {
		return svalues[2]
	}
	if atBoundary1OnBez1 && atBoundary1OnBez2 {
		return svalues[3]
	}

	minI, minJ := minIj.unwrap()[0], minIj.unwrap()[1]
	newUmid := umin + (umax-umin)*(float64(minI)/4.0)
	newVmid := vmin + (vmax-vmin)*(float64(minJ)/4.0)

	// Subdivide
	results := [4][3]float64{
		quadMinDistParam(
			bez1,
			bez2,
			[2]float64{umin, newUmid},
			[2]float64{vmin, newVmid},
			epsilon,
			alpha,
		),
		quadMinDistParam(
			bez1,
			bez2,
			[2]float64{umin, newUmid},
			[2]float64{newVmid, vmax},
			epsilon,
			alpha,
		),
		quadMinDistParam(
			bez1,
			bez2,
			[2]float64{newUmid, umax},
			[2]float64{vmin, newVmid},
			epsilon,
			alpha,
		),
		quadMinDistParam(
			bez1,
			bez2,
			[2]float64{newUmid, umax},
			[2]float64{newVmid, vmax},
			epsilon,
			alpha,
		),
	}

	out := results[0]
	for _, res := range results[1:] {
		if math.IsNaN(res[0]) || res[0] < out[0] {
			out = res
		}
	}
	return out
}

// distSurface evaluates the squared-distance surface D(u, v) in its
// degree (4, 4) Bernstein form.
func distSurface(u, v float64, bez1, bez2 [3]Vec2) float64 {
	summand := 0.0
	for r := 0; r < 5; r++ {
		for k := 0; k < 5; k++ {
			summand +=
				dRk(r, k, bez1, bez2) * basisFunction(r, u) * basisFunction(k, v)
		}
	}
	return summand
}

// cRk is the (r, k) cross coefficient of the distance surface.
func cRk(r, k int, bez1, bez2 [3]Vec2) float64 {
	var left Vec2
	for i := max(0, r-2); i <= min(r, 2); i++ {
		left = left.Add(bez1[i].Mul(binom2[i] * binom2[r-i] / binom4[r]))
	}

	var right Vec2
	for j := max(0, k-2); j <= min(k, 2); j++ {
		right = right.Add(bez2[j].Mul(binom2[j] * binom2[k-j] / binom4[k]))
	}

	return left.Dot(right)
}

func aR(r int, p [3]Vec2) float64 {
	var sum float64
	for i := max(0, r-2); i <= min(r, 2); i++ {
		sum += p[i].Dot(p[r-i]) * binom2[i] * binom2[r-i] / binom4[r]
	}
	return sum
}

func dRk(r, k int, bez1, bez2 [3]Vec2) float64 {
	// In the paper, B_k is used for the second factor, but it's the same thing
	return aR(r, bez1) + aR(k, bez2) - 2.0*cRk(r, k, bez1, bez2)
}

// Degree 4 Bernstein basis function.
func basisFunction(i int, u float64) float64 {
	return binom4[i] * math.Pow(1.0-u, float64(4-i)) * math.Pow(u, float64(i))
}
