package nastaliq

import (
	"sort"
	"testing"

	"github.com/google/go-cmp/cmp/cmpopts"
)

func TestSolveQuadratic(t *testing.T) {
	// x² - 5x + 6 = 0
	roots, n := SolveQuadratic(6.0, -5.0, 1.0)
	diff(t, 2, n)
	diff(t, []float64{2.0, 3.0}, roots[:n], cmpopts.EquateApprox(0, 1e-12))

	// x² + 1 = 0 has no real roots.
	_, n = SolveQuadratic(1.0, 0.0, 1.0)
	diff(t, 0, n)

	// Nearly linear equations fall back to the linear root.
	roots, n = SolveQuadratic(-2.0, 1.0, 0.0)
	diff(t, 1, n)
	diff(t, 2.0, roots[0], cmpopts.EquateApprox(0, 1e-12))
}

func TestSolveCubic(t *testing.T) {
	// (x-1)(x-2)(x-3) = x³ - 6x² + 11x - 6
	roots, n := SolveCubic(-6.0, 11.0, -6.0, 1.0)
	diff(t, 3, n)
	rs := append([]float64(nil), roots[:n]...)
	sort.Float64s(rs)
	diff(t, []float64{1.0, 2.0, 3.0}, rs, cmpopts.EquateApprox(0, 1e-9))

	// x³ - 1 has a single real root.
	roots, n = SolveCubic(-1.0, 0.0, 0.0, 1.0)
	diff(t, 1, n)
	diff(t, 1.0, roots[0], cmpopts.EquateApprox(0, 1e-9))
}
