package nastaliq

import (
	"log/slog"
	"math"
)

// quadQuadAccuracy is the parameter-space accuracy used for quad-quad
// distance. It is deliberately coarse: the oracle refines a single candidate
// pair chosen by sampling, and spacing decisions tolerate a few units of
// error.
const quadQuadAccuracy = 0.5

// lineQuadSamples are the line parameters at which line-quad distance is
// estimated. The set is asymmetric by construction, so the estimate is not
// guaranteed to be symmetric under exchanging the roles of line and curve.
var lineQuadSamples = [...]float64{0.0, 0.2, 0.4, 0.6, 0.8, 0.99}

// SegmentDistance returns the minimum euclidean distance between two contour
// segments.
//
// Line-line distance is exact. Line-quad distance samples the line at
// [lineQuadSamples] and projects each sample onto the curve; the pairing is
// normalized so that both argument orders take the same path. Quad-quad
// distance uses [QuadBez.MinDist] with a coarse accuracy. All three are
// nonnegative.
//
// For any other pairing, which well-formed contours cannot produce, the
// second return value is false and the distance is 0. Callers that forward
// the zero inherit a bias toward "touching"; callers that branch on ok can
// skip the pair or report it instead.
func SegmentDistance(s1, s2 Segment) (float64, bool) {
	switch {
	case s1.Kind == LineKind && s2.Kind == LineKind:
		return lineLineDist(s1.Line(), s2.Line()), true
	case s1.Kind == LineKind && s2.Kind == QuadKind:
		return lineQuadDist(s1.Line(), s2.Quad()), true
	case s1.Kind == QuadKind && s2.Kind == LineKind:
		return lineQuadDist(s2.Line(), s1.Quad()), true
	case s1.Kind == QuadKind && s2.Kind == QuadKind:
		return s1.Quad().MinDist(s2.Quad(), quadQuadAccuracy).Distance, true
	default:
		slog.Debug("unusual segment configuration",
			"kind1", int(s1.Kind), "kind2", int(s2.Kind))
		return 0.0, false
	}
}

func lineLineDist(l1, l2 Line) float64 {
	a, _ := l1.Nearest(l2.P0)
	b, _ := l1.Nearest(l2.P1)
	c, _ := l2.Nearest(l1.P0)
	d, _ := l2.Nearest(l1.P1)
	return math.Sqrt(min(min(a, b), min(c, d)))
}

func lineQuadDist(l Line, q QuadBez) float64 {
	best := math.Inf(1)
	for _, t := range lineQuadSamples {
		distSq, _ := q.Nearest(l.Eval(t))
		best = min(best, distSq)
	}
	return math.Sqrt(best)
}

// pathDistance returns the distance between two contours.
//
// Rather than refining every segment pair, a coarse pre-filter picks one
// candidate: each segment is represented by its points at t = 0, 0.5 and 1,
// the three point pairs are compared index by index, and the segment pair
// with the smallest sampled distance wins. A sampled distance strictly
// greater than the incumbent never replaces it; an equal one does. The
// oracle then computes the refined distance for exactly the winning pair.
//
// The pre-filter is a heuristic, not a provably correct global minimum
// search; for highly curved or self-intersecting contours it can miss the
// true closest pair. A NaN-bearing sample never beats a real-valued one.
//
// If either contour is empty there is no pair to measure and the result is
// math.MaxFloat64.
func pathDistance(a, b Path) float64 {
	var best option[float64]
	var bestS1, bestS2 Segment
	for _, s1 := range a {
		p1 := [3]Point{s1.Eval(0.0), s1.Eval(0.5), s1.Eval(1.0)}
		for _, s2 := range b {
			p2 := [3]Point{s2.Eval(0.0), s2.Eval(0.5), s2.Eval(1.0)}
			dist := math.Inf(1)
			for i := range p1 {
				// NaN fails the comparison and is never selected.
				if d := p1[i].Distance(p2[i]); d < dist {
					dist = d
				}
			}
			if best.isSet && dist > best.value {
				continue
			}
			best.set(dist)
			bestS1, bestS2 = s1, s2
		}
	}
	if !best.isSet {
		return math.MaxFloat64
	}
	d, ok := SegmentDistance(bestS1, bestS2)
	if !ok {
		// Historical behavior: an unmeasurable pair reads as touching.
		return 0.0
	}
	return d
}

// Distance returns the minimum euclidean distance between two glyph
// outlines, taken over every pair of contours drawn one from each side.
//
// The second return value is false when either side has no contours at all;
// there is then nothing to measure, which is distinct from a measured
// distance of zero (touching outlines).
func Distance(left, right []Path) (float64, bool) {
	var minDistance option[float64]
	for _, p1 := range left {
		for _, p2 := range right {
			d := pathDistance(p1, p2)
			if !minDistance.isSet || d < minDistance.value {
				minDistance.set(d)
			}
		}
	}
	if !minDistance.isSet {
		return 0, false
	}
	return minDistance.value, true
}
