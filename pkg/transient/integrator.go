package transient

// trapezoidalConductanceFactor is the first-order trapezoidal-rule
// coefficient 2/h applied to a capacitor's value to get its companion
// conductance. Adapted from the reference's order-1 trapezoidal
// coefficient table, narrowed to the single rule this loop ships —
// higher trapezoidal orders and the BDF family are out of scope.
func trapezoidalConductanceFactor(h float64) float64 {
	return 2.0 / h
}
