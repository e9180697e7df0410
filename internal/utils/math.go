// internal/utils/math.go
package utils

// Sign returns -1, 0 or 1.
func Sign(v float64) float64 {
	switch {
	case v > 0:
		return 1
	case v < 0:
		return -1
	}
	return 0
}

// Lerp performs linear interpolation between from and to.
func Lerp(from, to float64, t float64) float64 {
	return from + (to-from)*t
}
