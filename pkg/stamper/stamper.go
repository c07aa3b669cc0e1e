// Package stamper translates typed circuit elements into stamps on a
// mna.LinearSystem. Visit order is unobservable: every stamp is an
// addition into the matrix/vector, which commutes.
package stamper

import (
	"fmt"

	"github.com/nodalsim/mna/pkg/element"
	"github.com/nodalsim/mna/pkg/mna"
)

// Stamp dispatches every element except capacitors onto ls. Capacitors
// are time-dependent and are stamped by pkg/transient instead, using
// the Norton companion model for the current step.
func Stamp(ls *mna.LinearSystem, elements []element.Element) error {
	for _, e := range elements {
		if err := stampOne(ls, e); err != nil {
			return fmt.Errorf("stamping %s %q: %w", e.Kind(), e.Name(), err)
		}
	}
	return nil
}

func stampOne(ls *mna.LinearSystem, e element.Element) error {
	switch e.Kind() {
	case element.KindCapacitor:
		// Not stamped here; handled per-step by pkg/transient.
		return nil

	case element.KindResistor:
		r, ok := e.(*element.Resistor)
		if !ok {
			return fmt.Errorf("expected *element.Resistor")
		}
		t := r.Terminals()
		ls.StampResistor(r.Resistance(), t[0], t[1])
		return nil

	case element.KindCurrentSource:
		c, ok := e.(*element.CurrentSource)
		if !ok {
			return fmt.Errorf("expected *element.CurrentSource")
		}
		t := c.Terminals()
		ls.StampCurrentSource(c.Current(), t[0], t[1])
		return nil

	case element.KindVoltageSource:
		v, ok := e.(*element.VoltageSource)
		if !ok {
			return fmt.Errorf("expected *element.VoltageSource")
		}
		t := v.Terminals()
		ls.StampVoltageSource(v.Voltage(), t[0], t[1], v.Branch())
		return nil

	case element.KindGround:
		g, ok := e.(*element.Ground)
		if !ok {
			return fmt.Errorf("expected *element.Ground")
		}
		t := g.Terminals()
		// Ground always ties its declared terminal to the datum node;
		// the "from" side is hardcoded to 0 regardless of the
		// element's own indices.
		ls.StampVoltageSource(0, 0, t[0], g.Branch())
		return nil

	case element.KindWire:
		w, ok := e.(*element.Wire)
		if !ok {
			return fmt.Errorf("expected *element.Wire")
		}
		t := w.Terminals()
		ls.StampVoltageSource(0, t[0], t[1], w.Branch())
		return nil

	default:
		return fmt.Errorf("unknown element kind %v", e.Kind())
	}
}
