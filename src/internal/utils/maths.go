package utils

import "math"

// DefaultTolerance is the tolerance used by FloatApproximates1e5.
const DefaultTolerance = 1e-5

// FloatApproximates reports whether actual is within tolerance of ref.
func FloatApproximates(actual, ref, tolerance float64) bool {
	return math.Abs(actual-ref) <= tolerance
}

// FloatApproximates1e5 is FloatApproximates with DefaultTolerance.
func FloatApproximates1e5(actual, ref float64) bool {
	return FloatApproximates(actual, ref, DefaultTolerance)
}
