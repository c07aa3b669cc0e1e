// Package transient implements the fixed-step integrator: per tick it
// clones the static template, stamps each capacitor's Norton companion
// model for the current step, solves, and writes the result back into
// State and the capacitors' carried currents.
package transient

import (
	"log/slog"

	"github.com/nodalsim/mna/internal/consts"
	"github.com/nodalsim/mna/pkg/element"
	"github.com/nodalsim/mna/pkg/mna"
	"github.com/nodalsim/mna/pkg/solver"
)

// Loop is a fixed-timestep transient integrator. NewLoop sets
// SimTimePerSec and SimTimestep to the defaults in internal/consts;
// they are exported fields, so a caller can override them afterwards.
type Loop struct {
	SimTimePerSec float64
	SimTimestep   float64
	logger        *slog.Logger
}

// NewLoop builds a Loop with the reference simulation timing. Pass a
// nil logger to discard out-of-band failure reports.
func NewLoop(logger *slog.Logger) *Loop {
	return &Loop{
		SimTimePerSec: consts.SimTimePerSec,
		SimTimestep:   consts.SimTimestep,
		logger:        logger,
	}
}

// companion holds the per-step Norton equivalent for one capacitor,
// computed before the solve and consumed after it to derive the
// carried current for the next step.
type companion struct {
	cap      *element.Capacitor
	n0, n1   int
	geq, ieq float64
}

// Step advances the simulation by wall-clock delta seconds. It runs
// zero or more fixed SimTimestep iterations depending on how much
// simulated time delta (scaled by SimTimePerSec) plus any carried
// residual adds up to. A solver failure on one iteration is logged and
// that iteration's element state is left untouched; the simulated
// clock still advances past it (the step is consumed, not retried).
func (l *Loop) Step(state *State, static *mna.LinearSystem, elements []element.Element, delta float64) error {
	pending := delta*l.SimTimePerSec + state.accumulatedTime
	if pending < l.SimTimestep {
		state.accumulatedTime = pending
		return nil
	}

	h := l.SimTimestep
	for pending > h {
		state.simTime += h
		pending -= h

		working := static.Clone()

		var companions []companion
		for _, e := range elements {
			cap, ok := e.(*element.Capacitor)
			if !ok {
				continue
			}
			t := cap.Terminals()
			n0, n1 := t[0], t[1]

			vPrev := state.NodeVoltage(n0) - state.NodeVoltage(n1)
			iPrev := cap.CarriedCurrent()
			geq := cap.Capacitance() * trapezoidalConductanceFactor(h)
			ieq := iPrev + geq*vPrev

			working.StampConductance(geq, n0, n1)
			working.StampCurrentSource(ieq, n1, n0)

			companions = append(companions, companion{cap: cap, n0: n0, n1: n1, geq: geq, ieq: ieq})
		}

		sol, err := solver.Solve(working)
		if err != nil {
			state.failedSteps++
			if l.logger != nil {
				l.logger.Error("transient step unsolvable",
					slog.Float64("sim_time", state.simTime),
					slog.Any("error", err))
			}
			continue
		}

		state.nodeVoltages = sol.NodeVoltages
		state.branchCurrents = sol.BranchCurrents

		for _, c := range companions {
			iR := (state.NodeVoltage(c.n0) - state.NodeVoltage(c.n1)) * c.geq
			c.cap.SetCarriedCurrent(iR - c.ieq)
		}
	}

	state.accumulatedTime = pending
	return nil
}
