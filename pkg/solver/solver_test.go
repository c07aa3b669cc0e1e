package solver_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nodalsim/mna/pkg/assembler"
	"github.com/nodalsim/mna/pkg/element"
	"github.com/nodalsim/mna/pkg/mna"
	"github.com/nodalsim/mna/pkg/solver"
)

// Scenario 1: single resistor + current source.
func TestResistorAndCurrentSource(t *testing.T) {
	elements := []element.Element{
		element.NewCurrentSource("I1", 0, 1, 1.0),
		element.NewResistor("R1", 1, 0, 100.0),
	}

	ls, err := assembler.BuildStatic(elements)
	require.NoError(t, err)

	sol, err := solver.Solve(ls)
	require.NoError(t, err)

	assert.Equal(t, 0.0, sol.NodeVoltages[0])
	assert.InDelta(t, 100.0, sol.NodeVoltages[1], 1e-9)
}

// Scenario 2: resistor + voltage source, voltage-source exactness.
func TestResistorAndVoltageSource(t *testing.T) {
	elements := []element.Element{
		element.NewVoltageSource("V1", 0, 1, 10.0),
		element.NewResistor("R1", 1, 0, 10.0),
	}

	ls, err := assembler.BuildStatic(elements)
	require.NoError(t, err)

	sol, err := solver.Solve(ls)
	require.NoError(t, err)

	assert.InDelta(t, 10.0, sol.NodeVoltages[1], 1e-9)
	require.Len(t, sol.BranchCurrents, 1)
	assert.InDelta(t, 1.0, sol.BranchCurrents[0], 1e-9)
}

// Scenario 3: wire as a 0V source in series.
func TestWireInSeries(t *testing.T) {
	elements := []element.Element{
		element.NewCurrentSource("I1", 0, 1, 1.0),
		element.NewWire("W1", 1, 2),
		element.NewResistor("R1", 2, 0, 100.0),
	}

	ls, err := assembler.BuildStatic(elements)
	require.NoError(t, err)

	sol, err := solver.Solve(ls)
	require.NoError(t, err)

	assert.InDelta(t, 100.0, sol.NodeVoltages[1], 1e-9)
	assert.InDelta(t, 100.0, sol.NodeVoltages[2], 1e-9)
	require.Len(t, sol.BranchCurrents, 1)
	assert.InDelta(t, 1.0, sol.BranchCurrents[0], 1e-9)
}

// Scenario 4: resistor and voltage source in parallel — Ohm's law
// recovers the branch current directly.
func TestParallelResistorVoltageSource(t *testing.T) {
	elements := []element.Element{
		element.NewResistor("R1", 0, 1, 1000.0),
		element.NewVoltageSource("V1", 0, 1, 5.0),
	}

	ls, err := assembler.BuildStatic(elements)
	require.NoError(t, err)

	sol, err := solver.Solve(ls)
	require.NoError(t, err)

	require.Len(t, sol.BranchCurrents, 1)
	assert.InDelta(t, 0.005, sol.BranchCurrents[0], 1e-9)
}

// Scenario 5: an explicit ground forces a node to 0V; its own branch
// current is 0 when the forced value is already consistent.
func TestGroundForcesNode(t *testing.T) {
	elements := []element.Element{
		element.NewCurrentSource("I1", 1, 2, 1.0),
		element.NewResistor("R1", 2, 1, 100.0),
		element.NewGround("GND1", 1),
	}

	ls, err := assembler.BuildStatic(elements)
	require.NoError(t, err)

	sol, err := solver.Solve(ls)
	require.NoError(t, err)

	assert.InDelta(t, 0.0, sol.NodeVoltages[1], 1e-9)
	assert.InDelta(t, 100.0, sol.NodeVoltages[2], 1e-9)

	gnd := elements[2].(*element.Ground)
	assert.InDelta(t, 0.0, sol.BranchCurrents[gnd.Branch()], 1e-9)
}

// Scenario 7: declaring zero voltage sources but stamping one yields
// IncorrectBranchCount at finalisation rather than growing the matrix.
func TestIncorrectBranchCount(t *testing.T) {
	ls := mna.New(2, 0)
	ls.StampVoltageSource(5.0, 0, 1, 0)

	_, err := solver.Solve(ls)
	require.Error(t, err)
	assert.ErrorIs(t, err, solver.ErrIncorrectBranchCount)
}

// Scenario 8: two ideal voltage sources forming a loop with
// incompatible values makes the admittance matrix singular.
func TestSingularVoltageSourceLoopIsUnsolvable(t *testing.T) {
	elements := []element.Element{
		element.NewVoltageSource("V1", 0, 1, 5.0),
		element.NewVoltageSource("V2", 0, 1, 10.0),
	}

	ls, err := assembler.BuildStatic(elements)
	require.NoError(t, err)

	_, err = solver.Solve(ls)
	require.Error(t, err)
	assert.ErrorIs(t, err, solver.ErrUnsolvable)
}

// Ground is always grounded, in every solution.
func TestGroundAlwaysZero(t *testing.T) {
	elements := []element.Element{
		element.NewResistor("R1", 0, 1, 50.0),
		element.NewCurrentSource("I1", 0, 1, 0.1),
	}
	ls, err := assembler.BuildStatic(elements)
	require.NoError(t, err)
	sol, err := solver.Solve(ls)
	require.NoError(t, err)
	assert.Equal(t, 0.0, sol.NodeVoltages[0])
}

// Idempotence of re-assembly: building twice from the same topology
// yields bit-identical G, b.
func TestIdempotentAssembly(t *testing.T) {
	build := func() []element.Element {
		return []element.Element{
			element.NewVoltageSource("V1", 0, 1, 5.0),
			element.NewResistor("R1", 1, 2, 10.0),
			element.NewResistor("R2", 2, 0, 20.0),
		}
	}

	ls1, err := assembler.BuildStatic(build())
	require.NoError(t, err)
	ls2, err := assembler.BuildStatic(build())
	require.NoError(t, err)

	assert.Equal(t, ls1.Admittance().RawMatrix().Data, ls2.Admittance().RawMatrix().Data)
	assert.Equal(t, ls1.RHS().RawVector().Data, ls2.RHS().RawVector().Data)
}

// KCL at every non-ground node: the algebraic sum of currents into the
// node is zero to within 1e-9.
func TestKCLAtEveryNode(t *testing.T) {
	const r1, r2 = 10.0, 20.0
	elements := []element.Element{
		element.NewCurrentSource("I1", 0, 1, 2.0),
		element.NewResistor("R1", 1, 2, r1),
		element.NewResistor("R2", 2, 0, r2),
	}

	ls, err := assembler.BuildStatic(elements)
	require.NoError(t, err)
	sol, err := solver.Solve(ls)
	require.NoError(t, err)

	v1, v2 := sol.NodeVoltages[1], sol.NodeVoltages[2]
	iR1 := (v1 - v2) / r1 // current from node 1 to node 2
	iR2 := (v2 - 0) / r2  // current from node 2 to ground

	// Node 1: injected current in, R1 current out.
	assert.InDelta(t, 0.0, 2.0-iR1, 1e-9)
	// Node 2: R1 current in, R2 current out.
	assert.InDelta(t, 0.0, iR1-iR2, 1e-9)
}
