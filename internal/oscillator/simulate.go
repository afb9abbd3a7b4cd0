package oscillator

import (
	"context"

	"github.com/cockroachdb/errors"

	"github.com/nvandessel/phasefield/internal/coherence"
	"github.com/nvandessel/phasefield/internal/vecmath"
)

// HistoryRecord is one sampled instant of a simulation run.
type HistoryRecord struct {
	// Time is the elapsed simulated time at the sampled step.
	Time float64

	// Phases is a copy of the phase vector at that instant.
	Phases []float64

	// Coherence is the global order parameter at that instant.
	Coherence float64
}

// Simulate advances the oscillator for floor(duration/dt) steps,
// recording a HistoryRecord every recordInterval-th step. Memory stays
// bounded by O(duration / (dt * recordInterval)).
//
// Cancellation is cooperative: ctx is checked once between iterations,
// never mid-step, so a cancelled run still leaves phases in a valid
// wrapped state. Errors from Step (including ErrUnstable) abort the run.
func (o *Oscillator) Simulate(ctx context.Context, duration, dt float64, recordInterval int) error {
	if duration <= 0 {
		return errors.Wrapf(ErrInvalidArgument, "duration %v must be positive", duration)
	}
	if dt <= 0 {
		return errors.Wrapf(ErrInvalidArgument, "dt %v must be positive", dt)
	}
	if recordInterval <= 0 {
		return errors.Wrapf(ErrInvalidArgument, "record interval %d must be positive", recordInterval)
	}

	steps := int(duration / dt)
	o.log.Debug("simulate start", "session", o.id, "steps", steps, "dt", dt, "record_interval", recordInterval)

	for i := 0; i < steps; i++ {
		if err := ctx.Err(); err != nil {
			return errors.Wrapf(err, "simulation cancelled at step %d", i)
		}
		if err := o.Step(dt); err != nil {
			return errors.Wrapf(err, "step %d", i)
		}
		if i%recordInterval == 0 {
			o.history = append(o.history, HistoryRecord{
				Time:      float64(i) * dt,
				Phases:    vecmath.Clone(o.phases),
				Coherence: coherence.OrderParameter(o.phases),
			})
		}
	}

	o.log.Debug("simulate done", "session", o.id, "steps", steps, "records", len(o.history))
	return nil
}

// History returns a copy of all records accumulated so far. The history
// grows monotonically across Simulate calls and is cleared only by
// ClearHistory.
func (o *Oscillator) History() []HistoryRecord {
	out := make([]HistoryRecord, len(o.history))
	for i, r := range o.history {
		out[i] = HistoryRecord{Time: r.Time, Phases: vecmath.Clone(r.Phases), Coherence: r.Coherence}
	}
	return out
}

// HistoryLen returns the number of accumulated records without copying.
func (o *Oscillator) HistoryLen() int { return len(o.history) }

// ClearHistory discards all accumulated records.
func (o *Oscillator) ClearHistory() { o.history = nil }
