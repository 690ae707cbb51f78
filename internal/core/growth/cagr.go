// Package growth holds the pure computations behind a growth estimate:
// compound growth rates, the five-forces intensity score and the blend of the two.
// Nothing in this package performs I/O, logs or retries.
package growth

import (
	"math"

	"github.com/SscSPs/growth_estimator/internal/apperrors"
)

// CAGR returns the compound growth rate that takes initial to final over periods.
//
// A nil result with a nil error means no rate is defined (periods <= 0);
// callers must check for it. A zero initial value is reported as
// apperrors.ErrDivisionByZero.
//
// Negative initial or final values with a fractional exponent yield NaN.
// This is not guarded against.
//
// periods is the number of observations, not the number of intervals between them.
func CAGR(initial, final float64, periods int) (*float64, error) {
	if periods <= 0 {
		return nil, nil
	}
	if initial == 0 {
		return nil, apperrors.ErrDivisionByZero
	}

	rate := math.Pow(final/initial, 1/float64(periods)) - 1
	return &rate, nil
}
