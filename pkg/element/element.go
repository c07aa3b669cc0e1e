// Package element defines the closed set of circuit primitives the
// core understands: plain tagged records, no entity/component
// registration. Dispatch on Kind happens at stamp time in pkg/stamper.
package element

import "fmt"

// Kind identifies one of the fixed circuit primitives.
type Kind int

const (
	KindResistor Kind = iota
	KindCurrentSource
	KindVoltageSource
	KindGround
	KindWire
	KindCapacitor
)

func (k Kind) String() string {
	switch k {
	case KindResistor:
		return "R"
	case KindCurrentSource:
		return "I"
	case KindVoltageSource:
		return "V"
	case KindGround:
		return "GND"
	case KindWire:
		return "W"
	case KindCapacitor:
		return "C"
	default:
		return "?"
	}
}

// Element is the read-only shape the core consumes: a name, a kind for
// dispatch, and an ordered list of node terminals. Node index 0 is
// always the ground/datum node. Ordering is semantic: the first
// terminal is the "from" side, the second the "to" side.
type Element interface {
	Name() string
	Kind() Kind
	Terminals() []int
}

// Branched is implemented by elements that own an MNA branch index
// (voltage sources, grounds, wires).
type Branched interface {
	Element
	Branch() int
	SetBranch(idx int)
}

// DisplayName formats an element for logging and results tables, e.g.
// "R(R1)". Never consulted by the solver itself.
func DisplayName(e Element) string {
	return fmt.Sprintf("%s(%s)", e.Kind(), e.Name())
}
