package element

import "fmt"

// Resistor is a two-terminal linear resistor. Resistance must be > 0;
// conductance is derived, never stored.
type Resistor struct {
	name       string
	terminals  [2]int
	resistance float64
}

// NewResistor builds a resistor between from and to with the given
// resistance in ohms. Panics if resistance is not strictly positive,
// matching the invariant in the data model.
func NewResistor(name string, from, to int, resistance float64) *Resistor {
	if resistance <= 0 {
		panic(fmt.Sprintf("resistor %s: resistance must be > 0, got %g", name, resistance))
	}
	return &Resistor{name: name, terminals: [2]int{from, to}, resistance: resistance}
}

func (r *Resistor) Name() string        { return r.name }
func (r *Resistor) Kind() Kind          { return KindResistor }
func (r *Resistor) Terminals() []int    { return r.terminals[:] }
func (r *Resistor) Resistance() float64 { return r.resistance }

// Conductance is 1/Resistance, the quantity actually stamped.
func (r *Resistor) Conductance() float64 { return 1.0 / r.resistance }
