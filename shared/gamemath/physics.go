package gamemath

import "math"

// ClampSpeed clamps a value to [-max, max].
func ClampSpeed(speed, max float64) float64 {
	if speed > max {
		return max
	}
	if speed < -max {
		return -max
	}
	return speed
}

// WithinTolerance reports whether two points differ by at most tol on every axis.
func WithinTolerance(ax, ay, az, bx, by, bz, tol float64) bool {
	return math.Abs(ax-bx) <= tol &&
		math.Abs(ay-by) <= tol &&
		math.Abs(az-bz) <= tol
}

// Approach moves current toward target by gain*dt of the remaining distance,
// but only once the distance exceeds threshold.
func Approach(current, target, threshold, gain, dt float64) float64 {
	delta := target - current
	if math.Abs(delta) <= threshold {
		return current
	}
	return current + gain*dt*delta
}
