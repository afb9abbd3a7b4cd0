// Package oscillator implements the phase-coupled core: a generalized
// Kuramoto model over a fixed topology, integrated with fixed-step RK4.
//
// An Oscillator is an explicitly owned simulation context — constructed
// per session, passed by handle, never a process-wide singleton. It
// assumes a single-writer discipline: callers must serialize Step,
// Simulate, Snapshot, and SetCouplingStrength externally if they share
// one instance across goroutines.
package oscillator

import (
	"log/slog"
	"math/rand/v2"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/google/uuid"

	"github.com/nvandessel/phasefield/internal/coupling"
	"github.com/nvandessel/phasefield/internal/snapshot"
	"github.com/nvandessel/phasefield/internal/topology"
	"github.com/nvandessel/phasefield/internal/vecmath"
)

// ErrInvalidArgument marks bad call-site parameters: dt, duration, or
// record interval not positive, base frequency not positive, or a
// negative coupling strength. Check with errors.Is.
var ErrInvalidArgument = errors.New("oscillator: invalid argument")

// ErrUnstable marks numerical instability: a phase component became
// non-finite after an integration step. The step that detects it leaves
// the previous phases untouched.
var ErrUnstable = errors.New("oscillator: non-finite phase after step")

// Config holds construction parameters for an Oscillator.
type Config struct {
	// BaseFrequency is the global scalar multiplying each group's
	// frequency coefficient. Must be positive.
	BaseFrequency float64

	// CouplingStrength is the global scalar multiplying each edge
	// weight. Must be nonnegative; zero decouples all nodes.
	CouplingStrength float64

	// Seed, when non-nil, makes the random initial phases reproducible.
	// When nil, the seed is drawn fresh for each oscillator.
	Seed *uint64

	// InitialPhases, when non-nil, bypasses random seeding entirely.
	// Must have length topo.N(); values are wrapped into [0, 2*pi).
	InitialPhases []float64

	// Logger receives debug-level lifecycle events. Nil discards them.
	Logger *slog.Logger
}

// Oscillator owns the mutable phase vector and everything derived from
// one topology. The topology, natural frequencies, and session ID are
// fixed at construction; phases change only through Step, and coupling
// strength only through SetCouplingStrength.
type Oscillator struct {
	id       string
	topo     *topology.Topology
	baseFreq float64
	strength float64
	omega    []float64

	phases []float64
	matrix coupling.Matrix
	stale  bool

	history []HistoryRecord

	// RK4 scratch buffers, reused across steps.
	k1, k2, k3, k4, tmp []float64

	log *slog.Logger
}

// New constructs and seeds an Oscillator. The returned instance is
// immediately steppable.
func New(topo *topology.Topology, cfg Config) (*Oscillator, error) {
	if cfg.BaseFrequency <= 0 {
		return nil, errors.Wrapf(ErrInvalidArgument, "base frequency %v must be positive", cfg.BaseFrequency)
	}
	if cfg.CouplingStrength < 0 {
		return nil, errors.Wrapf(ErrInvalidArgument, "coupling strength %v must be nonnegative", cfg.CouplingStrength)
	}
	if cfg.InitialPhases != nil && len(cfg.InitialPhases) != topo.N() {
		return nil, errors.Wrapf(ErrInvalidArgument, "initial phases length %d, topology has %d nodes", len(cfg.InitialPhases), topo.N())
	}

	matrix, err := coupling.Build(topo, cfg.CouplingStrength)
	if err != nil {
		return nil, err
	}

	n := topo.N()
	o := &Oscillator{
		id:       uuid.NewString(),
		topo:     topo,
		baseFreq: cfg.BaseFrequency,
		strength: cfg.CouplingStrength,
		omega:    topo.Frequencies(cfg.BaseFrequency),
		matrix:   matrix,
		k1:       make([]float64, n),
		k2:       make([]float64, n),
		k3:       make([]float64, n),
		k4:       make([]float64, n),
		tmp:      make([]float64, n),
		log:      cfg.Logger,
	}
	if o.log == nil {
		o.log = slog.New(slog.DiscardHandler)
	}

	if cfg.InitialPhases != nil {
		o.phases = vecmath.Clone(cfg.InitialPhases)
		vecmath.Wrap(o.phases)
	} else {
		seed := rand.Uint64()
		if cfg.Seed != nil {
			seed = *cfg.Seed
		}
		rng := rand.New(rand.NewPCG(seed, seed))
		o.phases = make([]float64, n)
		for i := range o.phases {
			o.phases[i] = rng.Float64() * vecmath.TwoPi
		}
		o.log.Debug("seeded phases", "session", o.id, "seed", seed)
	}

	return o, nil
}

// ID returns the session identifier assigned at construction.
func (o *Oscillator) ID() string { return o.id }

// Topology returns the fixed topology.
func (o *Oscillator) Topology() *topology.Topology { return o.topo }

// Phases returns a copy of the current phase vector.
func (o *Oscillator) Phases() []float64 { return vecmath.Clone(o.phases) }

// NaturalFrequencies returns a copy of the per-node omega vector.
func (o *Oscillator) NaturalFrequencies() []float64 { return vecmath.Clone(o.omega) }

// CouplingStrength returns the current global coupling strength.
func (o *Oscillator) CouplingStrength() float64 { return o.strength }

// SetCouplingStrength rescales the global coupling strength and marks
// the cached coupling matrix stale; the next derivative evaluation
// rebuilds it from scratch rather than patching entries.
func (o *Oscillator) SetCouplingStrength(strength float64) error {
	if strength < 0 {
		return errors.Wrapf(ErrInvalidArgument, "coupling strength %v must be nonnegative", strength)
	}
	o.log.Debug("coupling rescaled", "session", o.id, "from", o.strength, "to", strength)
	o.strength = strength
	o.stale = true
	return nil
}

// couplingMatrix returns the cached matrix, rebuilding it after a
// strength change.
func (o *Oscillator) couplingMatrix() coupling.Matrix {
	if o.stale {
		m, err := coupling.Build(o.topo, o.strength)
		if err != nil {
			// The topology was validated at construction and cannot
			// change, so a rebuild failure is unreachable.
			panic(err)
		}
		o.matrix = m
		o.stale = false
	}
	return o.matrix
}

// Snapshot exports the current state. The result owns all its data and
// stays valid across further stepping.
func (o *Oscillator) Snapshot() *snapshot.Snapshot {
	return snapshot.Build(time.Now(), o.topo, o.phases)
}
