// Package consts holds physical constants and default transient-loop
// timing shared across the core packages.
package consts

const (
	CHARGE    = 1.6021918e-19 // Elementary charge (C)
	BOLTZMANN = 1.3806226e-23 // Boltzmann constant (J/K)
	KELVIN    = 273.15        // Kelvin temperature (K)
)

const (
	// SimTimePerSec is how many simulated seconds elapse per wall-clock
	// second of driver delta — a deliberate 1000x slowdown for observability.
	SimTimePerSec = 1.0 / 1000.0

	// SimTimestep is the fixed transient integration interval, in seconds.
	SimTimestep = 5e-6
)
