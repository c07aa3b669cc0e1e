package element

import "fmt"

// Capacitor is a two-terminal linear capacitor. It is never stamped by
// the Stamper directly — pkg/transient linearises it per step via a
// Norton companion model and carries the equivalent current across
// steps in CarriedCurrent.
type Capacitor struct {
	name           string
	terminals      [2]int
	capacitance    float64
	carriedCurrent float64
}

// NewCapacitor builds a capacitor between from and to with the given
// capacitance in farads. Panics if capacitance is not strictly
// positive, matching the invariant in the data model.
func NewCapacitor(name string, from, to int, capacitance float64) *Capacitor {
	if capacitance <= 0 {
		panic(fmt.Sprintf("capacitor %s: capacitance must be > 0, got %g", name, capacitance))
	}
	return &Capacitor{name: name, terminals: [2]int{from, to}, capacitance: capacitance}
}

func (c *Capacitor) Name() string         { return c.name }
func (c *Capacitor) Kind() Kind           { return KindCapacitor }
func (c *Capacitor) Terminals() []int     { return c.terminals[:] }
func (c *Capacitor) Capacitance() float64 { return c.capacitance }

// CarriedCurrent is the Norton-equivalent current carried over from the
// previous transient step (0 until the first step has run).
func (c *Capacitor) CarriedCurrent() float64 { return c.carriedCurrent }

// SetCarriedCurrent stores the derived current for the next step.
func (c *Capacitor) SetCarriedCurrent(i float64) { c.carriedCurrent = i }
