// SPDX-License-Identifier: MIT

package quality

import (
	"fmt"
	"math"

	"github.com/cockroachdb/apd/v3"
)

const opCount = "Count"

// countContext rounds half to even. 34 digits is decimal128 precision and
// holds any int row count times a float64 rate exactly.
var countContext = func() *apd.Context {
	c := apd.BaseContext.WithPrecision(34)
	c.Rounding = apd.RoundHalfEven

	return c
}()

// Count returns round(n·rate), rounding half to even.
//
// The product is taken in decimal from the shortest decimal form of rate, so
// a rate written as 0.15 against 10 rows is exactly 1.5 and rounds to 2,
// with no binary representation error nudging it either way.
//
// Errors:
//   - ErrBadRate if rate is NaN or outside [0, 1].
func Count(n int, rate float64) (int, error) {
	if math.IsNaN(rate) || rate < 0 || rate > 1 {
		return 0, qualityErrorf(opCount, fmt.Errorf("%g: %w", rate, ErrBadRate))
	}
	if n <= 0 || rate == 0 {
		return 0, nil
	}

	var r, product, rounded apd.Decimal
	if _, err := r.SetFloat64(rate); err != nil {
		return 0, qualityErrorf(opCount, err)
	}
	if _, err := countContext.Mul(&product, apd.New(int64(n), 0), &r); err != nil {
		return 0, qualityErrorf(opCount, err)
	}
	if _, err := countContext.RoundToIntegralValue(&rounded, &product); err != nil {
		return 0, qualityErrorf(opCount, err)
	}
	k, err := rounded.Int64()
	if err != nil {
		return 0, qualityErrorf(opCount, err)
	}
	if k > int64(n) {
		k = int64(n)
	}

	return int(k), nil
}
