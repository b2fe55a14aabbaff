// Package utils holds small numeric helpers shared by systems.
package utils

import "math"

// EaseInOutCubic maps progress t in [0, 1] to [0, 1], starting slow, speeding up
// and slowing down again. See https://easings.net/#easeInOutCubic.
//
//	t < 0.5:  4t³
//	t >= 0.5: 1 - (-2t + 2)³ / 2
func EaseInOutCubic(t float64) float64 {
	if t < 0.5 {
		return 4 * t * t * t
	}
	return 1 - math.Pow(-2*t+2, 3)/2
}

// Clamp01 limits t to [0, 1].
func Clamp01(t float64) float64 {
	return math.Max(0, math.Min(1, t))
}
