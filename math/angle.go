package math

import (
	m "math"
)

// NormalizeAngle wraps an angle in radians to (-pi, pi].
func NormalizeAngle(rad float64) float64 {
	for rad > m.Pi {
		rad -= 2 * m.Pi
	}
	for rad <= -m.Pi {
		rad += 2 * m.Pi
	}
	return rad
}

// AngleDiff is the signed shortest rotation from b to a, in (-pi, pi].
func AngleDiff(a, b float64) float64 {
	return NormalizeAngle(a - b)
}
