// Package stats provides the standard normal distribution helpers used by
// the planner.
package stats

import (
	"fmt"
	"math"
)

// CDF returns the cumulative distribution function of the standard normal
// distribution evaluated at x.
func CDF(x float64) float64 {
	return 0.5 * (1 + math.Erf(x/math.Sqrt2))
}

// Quantile returns the value z such that CDF(z) = p, i.e. the inverse of the
// standard normal CDF. p must be strictly between 0 and 1.
func Quantile(p float64) (float64, error) {
	if p <= 0 || p >= 1 {
		return 0, fmt.Errorf("quantile is undefined for p = %v; expected 0 < p < 1", p)
	}
	return math.Sqrt2 * math.Erfinv(2*p-1), nil
}
