// Package vecmath provides small float64 vector helpers for phase
// arithmetic. All functions are allocation-free on the hot path: callers
// own the destination slices.
package vecmath

import "math"

// TwoPi is the phase wrap modulus.
const TwoPi = 2 * math.Pi

// AddScaled writes base + a*k into dst. All slices must have equal length;
// dst may alias base.
func AddScaled(dst, base, k []float64, a float64) {
	for i := range dst {
		dst[i] = base[i] + a*k[i]
	}
}

// WrapAngle maps an angle into [0, 2*pi). math.Mod keeps the sign of the
// dividend, so negative inputs need one corrective turn.
func WrapAngle(theta float64) float64 {
	theta = math.Mod(theta, TwoPi)
	if theta < 0 {
		theta += TwoPi
	}
	return theta
}

// Wrap maps every component of v into [0, 2*pi) in place.
func Wrap(v []float64) {
	for i := range v {
		v[i] = WrapAngle(v[i])
	}
}

// AllFinite reports whether every component is a finite number.
func AllFinite(v []float64) bool {
	for _, x := range v {
		if math.IsNaN(x) || math.IsInf(x, 0) {
			return false
		}
	}
	return true
}

// Mean returns the arithmetic mean, or 0 for an empty slice.
func Mean(v []float64) float64 {
	if len(v) == 0 {
		return 0
	}
	sum := 0.0
	for _, x := range v {
		sum += x
	}
	return sum / float64(len(v))
}

// Clone returns a copy of v.
func Clone(v []float64) []float64 {
	return append([]float64(nil), v...)
}
