package dampedfilter

import (
	"math"
	"math/cmplx"
)

// Polar returns magnitude and angle in degrees, angle in (-180, 180].
func Polar(z complex128) (magnitude, degrees float64) {
	return cmplx.Abs(z), cmplx.Phase(z) * 180 / math.Pi
}

func complexFinite(z complex128) bool {
	return !cmplx.IsNaN(z) && !cmplx.IsInf(z)
}

// complexReciprocal sets 1 / z, refusing an exact zero
func complexReciprocal(quantity string, z complex128) (complex128, error) {
	if z == 0 {
		return 0, &ComputationError{Quantity: quantity, Reason: "division by zero impedance"}
	}
	return 1 / z, nil
}

// checkFinite returns the name of the first non-finite phasor
func checkFinite(names []string, values ...complex128) error {
	for i, v := range values {
		if !complexFinite(v) {
			return &ComputationError{Quantity: names[i], Reason: "result is not finite"}
		}
	}
	return nil
}

// AngularFrequency is w = 2*pi*f.
func AngularFrequency(f float64) float64 {
	return 2.0 * math.Pi * f
}

// PhaseVoltage converts a line-to-line kV rating into line-to-neutral volts.
func PhaseVoltage(lineKV float64) float64 {
	return lineKV * 1e3 / math.Sqrt(3)
}
