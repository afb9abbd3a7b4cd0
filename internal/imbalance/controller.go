package imbalance

import (
	"log/slog"

	"github.com/nvandessel/phasefield/internal/oscillator"
)

// DefaultGain is the multiplicative coupling boost applied on strong
// negative feedback.
const DefaultGain = 1.1

// NegativeFeedbackFloor is the feedback score at or below which the
// controller tightens coupling.
const NegativeFeedbackFloor = -0.5

// Controller closes the feedback loop: strong negative feedback from an
// embedding layer rescales the oscillator's coupling strength upward to
// stabilize the system. Rescaling goes through SetCouplingStrength, so
// the cached coupling matrix is rebuilt before the next step.
type Controller struct {
	osc  *oscillator.Oscillator
	gain float64
	log  *slog.Logger
}

// NewController wraps an oscillator with the default gain. Logger may be
// nil.
func NewController(osc *oscillator.Oscillator, logger *slog.Logger) *Controller {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Controller{osc: osc, gain: DefaultGain, log: logger}
}

// ApplyFeedback processes one feedback score in [-1, 1]. Scores at or
// below NegativeFeedbackFloor boost coupling by the gain; anything else
// leaves the oscillator untouched. Returns the coupling strength in
// effect afterwards.
func (c *Controller) ApplyFeedback(score float64) (float64, error) {
	if score > NegativeFeedbackFloor {
		return c.osc.CouplingStrength(), nil
	}

	boosted := c.osc.CouplingStrength() * c.gain
	if err := c.osc.SetCouplingStrength(boosted); err != nil {
		return c.osc.CouplingStrength(), err
	}
	c.log.Debug("feedback boosted coupling", "session", c.osc.ID(), "score", score, "coupling", boosted)
	return boosted, nil
}
