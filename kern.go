package nastaliq

import "math"

const (
	// kernIterationCap bounds the solver loop; together with the finite
	// input geometry this guarantees termination.
	kernIterationCap = 10
	// kernTolerance is how close (in design units) the measured distance
	// must come to the target for the solver to stop.
	kernTolerance = 10.0
	// kernDistanceSentinel sits far below any legitimate target so that the
	// loop condition always admits at least one measurement.
	kernDistanceSentinel = -9999.0
)

// KernOptions configures [KernWithOptions]. The zero value of every field
// selects the default behavior.
type KernOptions struct {
	// TargetDistance is the gap, in design units, that the solver converges
	// the measured outline distance toward.
	TargetDistance float64

	// MaxTuck is the permitted horizontal overlap of the two glyphs' advance
	// boxes, as a fraction of glyph width. It participates only in the
	// sidebearing-aware floor refinement; see SidebearingFloor.
	MaxTuck float64

	// ScaleFactor scales the default overlap floor.
	ScaleFactor float64

	// Floor, if nonzero, is the hard lower bound on the returned kern. When
	// zero, the bound is -1000 × ScaleFactor.
	Floor float64

	// SidebearingFloor selects a floor derived from MaxTuck and the right
	// glyph's left sidebearing instead of the fixed bound. The refinement is
	// unfinished and the flag currently has no effect.
	SidebearingFloor bool
}

// Kern returns the signed horizontal offset that, added to the left glyph's
// advance, places the two outlines at targetDistance from each other. It is
// shorthand for [KernWithOptions] with the default floor.
func Kern(left, right []Path, targetDistance, maxTuck, scaleFactor float64) float64 {
	return KernWithOptions(left, right, KernOptions{
		TargetDistance: targetDistance,
		MaxTuck:        maxTuck,
		ScaleFactor:    scaleFactor,
	})
}

// KernWithOptions solves for the kern between two outlines.
//
// The solver is a fixed-point-seeking control loop: each iteration measures
// the aggregate outline distance, applies the full remaining correction
// (target minus measured) to a private translated copy of the right
// outline, and re-measures. It assumes the measured distance responds
// monotonically to horizontal translation, which holds for convex outlines
// that do not start out overlapping; concave or self-overlapping input may
// oscillate until the iteration cap.
//
// If there is nothing to measure on either side, or the accumulated kern
// falls below the floor, the floor is returned immediately. Otherwise the
// accumulated kern is returned once the measured distance is within
// [kernTolerance] of the target or the iteration cap is reached.
//
// The caller's contours are never modified; every translation produces a
// fresh copy.
func KernWithOptions(left, right []Path, opts KernOptions) float64 {
	minimumPossible := opts.Floor
	if minimumPossible == 0 {
		minimumPossible = -1000.0 * opts.ScaleFactor
	}

	iterations := 0
	kern := 0.0
	minDistance := kernDistanceSentinel

	working := right
	for iterations < kernIterationCap &&
		math.Abs(opts.TargetDistance-minDistance) > kernTolerance {
		md, ok := Distance(left, working)
		if !ok {
			return minimumPossible
		}
		minDistance = md
		thisKern := opts.TargetDistance - minDistance
		kern += thisKern
		if kern < minimumPossible {
			return minimumPossible
		}
		working = translatePaths(working, Vec(thisKern, 0.0))
		iterations++
	}
	return kern
}
