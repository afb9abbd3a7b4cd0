package oscillator

import (
	"github.com/cockroachdb/errors"

	"github.com/nvandessel/phasefield/internal/vecmath"
)

// Step advances the phase vector by one fixed step of classical
// fourth-order Runge-Kutta and wraps every component into [0, 2*pi).
// The four stage evaluations are ordered and must stay sequential.
//
// No randomness enters here: identical phases, frequencies, coupling,
// and dt sequences reproduce identical trajectories. If the update
// would produce a non-finite phase, Step returns ErrUnstable and leaves
// the current phases unchanged.
func (o *Oscillator) Step(dt float64) error {
	if dt <= 0 {
		return errors.Wrapf(ErrInvalidArgument, "dt %v must be positive", dt)
	}

	theta := o.phases

	o.derivatives(o.k1, theta)
	vecmath.AddScaled(o.tmp, theta, o.k1, dt/2)
	o.derivatives(o.k2, o.tmp)
	vecmath.AddScaled(o.tmp, theta, o.k2, dt/2)
	o.derivatives(o.k3, o.tmp)
	vecmath.AddScaled(o.tmp, theta, o.k3, dt)
	o.derivatives(o.k4, o.tmp)

	for i := range o.tmp {
		o.tmp[i] = theta[i] + dt/6*(o.k1[i]+2*o.k2[i]+2*o.k3[i]+o.k4[i])
	}

	if !vecmath.AllFinite(o.tmp) {
		return errors.Wrapf(ErrUnstable, "session %s", o.id)
	}

	vecmath.Wrap(o.tmp)
	copy(o.phases, o.tmp)
	return nil
}
