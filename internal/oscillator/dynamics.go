package oscillator

import "math"

// derivatives evaluates the Kuramoto equation into dst:
//
//	dtheta_i/dt = omega_i + sum_{j != i} K[i][j] * sin(theta_j - theta_i)
//
// With zero coupling strength the sum vanishes and dst reduces exactly
// to the natural-frequency vector. O(N^2) per call; invoked four times
// per RK4 step.
func (o *Oscillator) derivatives(dst, phases []float64) {
	k := o.couplingMatrix()
	for i := range dst {
		d := o.omega[i]
		for j := range phases {
			if kij := k[i][j]; kij != 0 {
				d += kij * math.Sin(phases[j]-phases[i])
			}
		}
		dst[i] = d
	}
}

// Derivatives returns the instantaneous phase-derivative vector for an
// arbitrary phase vector, without mutating oscillator state. phases must
// have length N.
func (o *Oscillator) Derivatives(phases []float64) []float64 {
	dst := make([]float64, len(phases))
	o.derivatives(dst, phases)
	return dst
}
