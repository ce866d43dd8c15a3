// Package helpers provides small numeric conversion utilities shared by the
// stats endpoint and the bench tool. They clamp instead of overflowing when a
// value does not fit the target type.
package helpers

import "math"

// ClampInt restricts v to the range [lowerLimit, upperLimit].
func ClampInt(v, lowerLimit, upperLimit int) int {
	if v < lowerLimit {
		return lowerLimit
	}
	if v > upperLimit {
		return upperLimit
	}
	return v
}

// ClampUint64ToInt64 converts v to int64, saturating at math.MaxInt64.
func ClampUint64ToInt64(v uint64) int64 {
	if v > math.MaxInt64 {
		return math.MaxInt64
	}
	return int64(v) //nolint:gosec // clamped to valid range
}

// BytesToMB converts a byte count to mebibytes.
func BytesToMB(v uint64) float64 {
	return float64(v) / 1024 / 1024
}
