// Package solver finalises a mna.LinearSystem and solves it via dense
// partial-pivot LU, packaging the result as node voltages and branch
// currents.
package solver

import (
	"errors"
	"fmt"

	"gonum.org/v1/gonum/mat"

	"github.com/nodalsim/mna/pkg/mna"
)

// ErrIncorrectBranchCount is returned when the number of voltage-source
// stamps applied to the system does not match its declared count.
var ErrIncorrectBranchCount = errors.New("mna: incorrect branch count")

// ErrUnsolvable is returned when LU factorisation or back-substitution
// fails — a singular or ill-conditioned admittance matrix.
var ErrUnsolvable = errors.New("mna: unsolvable system")

// Solution is the packaged result of a solve: node voltages indexed by
// node id (length N, entry 0 is always 0) and branch currents indexed
// by voltage-source branch id (length V).
type Solution struct {
	NodeVoltages   []float64
	BranchCurrents []float64
}

// Solve finalises ls (checking the stamped voltage-source count) and
// solves G x = b via gonum's dense Solve, which performs LU
// decomposition with partial pivoting for a square system. The
// LinearSystem is consumed: callers must not reuse ls after a
// successful or failed Solve.
func Solve(ls *mna.LinearSystem) (*Solution, error) {
	if ls.StampedVoltageSources() != ls.VoltageSources() {
		return nil, fmt.Errorf("%w: expected %d voltage sources, stamped %d",
			ErrIncorrectBranchCount, ls.VoltageSources(), ls.StampedVoltageSources())
	}

	n := ls.Nodes()
	size := ls.Size()

	voltages := make([]float64, maxInt(n, 1))
	currents := make([]float64, ls.VoltageSources())

	if size == 0 {
		return &Solution{NodeVoltages: voltages, BranchCurrents: currents}, nil
	}

	var x mat.Dense
	b := ls.RHS()
	if err := x.Solve(ls.Admittance(), b); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnsolvable, err)
	}

	// First N-1 entries are node voltages for nodes 1..N-1; node 0 is
	// synthesised as 0. The remaining V entries are branch currents.
	nodeCount := n - 1
	for i := 0; i < nodeCount; i++ {
		voltages[i+1] = x.At(i, 0)
	}
	for i := 0; i < ls.VoltageSources(); i++ {
		currents[i] = x.At(nodeCount+i, 0)
	}

	return &Solution{NodeVoltages: voltages, BranchCurrents: currents}, nil
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}
