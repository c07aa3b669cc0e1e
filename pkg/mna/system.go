// Package mna implements the dense Modified Nodal Analysis equation
// system: a square admittance matrix G and RHS vector b, plus the
// elementary stamp primitives every circuit element is translated
// through. Node 0 (ground) never gets a row or column — that
// suppression is what keeps G non-singular for a well-posed circuit.
package mna

import "gonum.org/v1/gonum/mat"

// LinearSystem is the dense MNA matrix-under-construction: G (S x S)
// and b (length S), with S = nodes + voltageSources - 1.
type LinearSystem struct {
	nodes                 int
	voltageSources        int
	size                  int
	admittance            *mat.Dense
	rhs                   *mat.VecDense
	stampedVoltageSources int
}

// New allocates a zeroed LinearSystem for a circuit with the given
// node count (including ground) and voltage-source count (including
// grounds and wires).
func New(nodes, voltageSources int) *LinearSystem {
	size := nodes + voltageSources - 1
	if size < 0 {
		size = 0
	}
	ls := &LinearSystem{
		nodes:          nodes,
		voltageSources: voltageSources,
		size:           size,
	}
	if size > 0 {
		ls.admittance = mat.NewDense(size, size, nil)
		ls.rhs = mat.NewVecDense(size, nil)
	}
	return ls
}

// Nodes returns N, the node count including ground.
func (ls *LinearSystem) Nodes() int { return ls.nodes }

// VoltageSources returns the declared voltage-source count V.
func (ls *LinearSystem) VoltageSources() int { return ls.voltageSources }

// StampedVoltageSources returns how many voltage-source stamps have
// actually been applied, for the finalisation check in pkg/solver.
func (ls *LinearSystem) StampedVoltageSources() int { return ls.stampedVoltageSources }

// Size returns S, the side length of the square system.
func (ls *LinearSystem) Size() int { return ls.size }

// Admittance exposes the underlying dense matrix G for the solver.
func (ls *LinearSystem) Admittance() *mat.Dense { return ls.admittance }

// RHS exposes the underlying vector b for the solver.
func (ls *LinearSystem) RHS() *mat.VecDense { return ls.rhs }

// Clone deep-copies the system into a fresh working copy. Mutating the
// clone never affects the template it was cloned from.
func (ls *LinearSystem) Clone() *LinearSystem {
	clone := &LinearSystem{
		nodes:                 ls.nodes,
		voltageSources:        ls.voltageSources,
		size:                  ls.size,
		stampedVoltageSources: ls.stampedVoltageSources,
	}
	if ls.size > 0 {
		clone.admittance = mat.NewDense(ls.size, ls.size, nil)
		clone.admittance.Copy(ls.admittance)
		clone.rhs = mat.NewVecDense(ls.size, nil)
		clone.rhs.CopyVec(ls.rhs)
	}
	return clone
}

// StampAdmittance adds x to G[row-1, col-1]. A no-op whenever row or
// col names the ground node, which is how ground is suppressed from
// the reduced system.
func (ls *LinearSystem) StampAdmittance(row, col int, x float64) {
	if row == 0 || col == 0 {
		return
	}
	r, c := row-1, col-1
	ls.admittance.Set(r, c, ls.admittance.At(r, c)+x)
}

// StampInput adds x to b[row-1]. A no-op for the ground row.
func (ls *LinearSystem) StampInput(row int, x float64) {
	if row == 0 {
		return
	}
	r := row - 1
	ls.rhs.SetVec(r, ls.rhs.AtVec(r)+x)
}

// StampConductance stamps the standard four-term pattern for a
// two-terminal conductance between nodes a and b.
func (ls *LinearSystem) StampConductance(conductance float64, a, b int) {
	ls.StampAdmittance(a, a, conductance)
	ls.StampAdmittance(b, b, conductance)
	ls.StampAdmittance(a, b, -conductance)
	ls.StampAdmittance(b, a, -conductance)
}

// StampResistor is StampConductance(1/resistance, a, b).
func (ls *LinearSystem) StampResistor(resistance float64, a, b int) {
	ls.StampConductance(1.0/resistance, a, b)
}

// StampCurrentSource injects current flowing from `from` to `to`.
func (ls *LinearSystem) StampCurrentSource(current float64, from, to int) {
	ls.StampInput(from, -current)
	ls.StampInput(to, current)
}

// StampVoltageSource stamps an ideal voltage source on the given
// branch. It increments the internal stamped-voltage-source counter
// unconditionally and silently skips the actual stamp once the
// declared voltage-source count has been exceeded — callers cannot
// grow the matrix implicitly; the mismatch is surfaced by the solver
// at finalisation as IncorrectBranchCount.
func (ls *LinearSystem) StampVoltageSource(voltage float64, from, to, branch int) {
	ls.stampedVoltageSources++
	if ls.stampedVoltageSources > ls.voltageSources {
		return
	}

	k := ls.nodes + branch
	ls.StampAdmittance(k, from, -1)
	ls.StampAdmittance(k, to, 1)
	ls.StampAdmittance(from, k, 1)
	ls.StampAdmittance(to, k, -1)
	ls.StampInput(k, voltage)
}
