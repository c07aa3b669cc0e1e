// Package assembler builds the time-invariant LinearSystem ("static
// template") from a circuit topology. Run it whenever the topology or
// any time-invariant element value changes; capacitors are
// deliberately left unstamped here (pkg/transient stamps their
// per-step companion model into a clone of the result).
package assembler

import (
	"errors"
	"fmt"

	"github.com/nodalsim/mna/pkg/element"
	"github.com/nodalsim/mna/pkg/mna"
	"github.com/nodalsim/mna/pkg/stamper"
)

// ErrTopologyOutOfRange is returned when an element references a
// terminal index that cannot be a valid node.
var ErrTopologyOutOfRange = errors.New("mna: topology out of range")

// BuildStatic assigns branch indices to every voltage source (voltage
// sources, grounds, and wires alike), computes the node and branch
// counts, and stamps every non-dynamic element into a fresh
// LinearSystem.
func BuildStatic(elements []element.Element) (*mna.LinearSystem, error) {
	maxNode := 0
	anyTerminal := false

	for _, e := range elements {
		for _, t := range e.Terminals() {
			if t < 0 {
				return nil, fmt.Errorf("%w: element %q terminal %d is negative",
					ErrTopologyOutOfRange, e.Name(), t)
			}
			anyTerminal = true
			if t > maxNode {
				maxNode = t
			}
		}
	}

	n := 0
	if anyTerminal {
		n = maxNode + 1
	}

	branch := 0
	for _, e := range elements {
		if b, ok := e.(element.Branched); ok {
			b.SetBranch(branch)
			branch++
		}
	}
	v := branch

	ls := mna.New(n, v)
	if err := stamper.Stamp(ls, elements); err != nil {
		return nil, fmt.Errorf("assembling static template: %w", err)
	}

	return ls, nil
}
