package safe

import (
	"errors"
	"math"
)

// ErrOverflow is returned when a sum leaves the int64 range.
var ErrOverflow = errors.New("integer overflow")

// Add returns a+b for int64 based types, failing instead of wrapping around.
func Add[T ~int64](a, b T) (T, error) {
	if (b > 0 && a > T(math.MaxInt64)-b) || (b < 0 && a < T(math.MinInt64)-b) {
		return 0, ErrOverflow
	}
	return a + b, nil
}

// Sum adds all values with overflow checks.
func Sum[T ~int64](values ...T) (T, error) {
	var total T
	for _, v := range values {
		next, err := Add(total, v)
		if err != nil {
			return 0, err
		}
		total = next
	}
	return total, nil
}
