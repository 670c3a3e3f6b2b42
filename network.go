package dampedfilter

import "math/cmplx"

// ComputeCurrentsVoltages drives the filter from the phase voltage of vLinekV.
// The resistor and the r-L branch share both terminals, so VR == VL.
func ComputeCurrentsVoltages(vLinekV float64, z Impedances) (CurrentsVoltages, error) {
	var cv CurrentsVoltages

	cv.VPhase = PhaseVoltage(vLinekV)

	if z.ZF == 0 {
		return cv, &ComputationError{Quantity: "I_F", Reason: "filter impedance is zero"}
	}
	cv.IF = complex(cv.VPhase, 0) / z.ZF

	cv.VR = cv.IF * z.ZRL
	cv.VL = cv.VR
	cv.VC = cv.IF * z.ZC

	for _, zz := range []struct {
		name string
		z    complex128
	}{{"I_R", z.ZR}, {"I_L", z.ZL}, {"I_C", z.ZC}} {
		if zz.z == 0 {
			return cv, &ComputationError{Quantity: zz.name, Reason: "element impedance is zero"}
		}
	}
	cv.IR = cv.VR / z.ZR
	cv.IL = cv.VL / z.ZL
	cv.IC = cv.VC / z.ZC

	names := []string{"I_F", "I_R", "I_L", "I_C", "V_R", "V_L", "V_C"}
	if err := checkFinite(names, cv.IF, cv.IR, cv.IL, cv.IC, cv.VR, cv.VL, cv.VC); err != nil {
		return cv, err
	}
	return cv, nil
}

// ComputePowers returns single-phase complex power S = V * conj(I) per element.
// PF uses the filter terminal voltage VR + VC, so PF == PR + PL + PC.
func ComputePowers(cv CurrentsVoltages) Powers {
	return Powers{
		PR: cv.VR * cmplx.Conj(cv.IR),
		PL: cv.VL * cmplx.Conj(cv.IL),
		PC: cv.VC * cmplx.Conj(cv.IC),
		PF: (cv.VR + cv.VC) * cmplx.Conj(cv.IF),
	}
}

// FilterVoltage is the voltage across the whole filter.
func (cv CurrentsVoltages) FilterVoltage() complex128 {
	return cv.VR + cv.VC
}

// ThreePhase scales a single-phase power to the three-phase total.
func ThreePhase(s complex128) complex128 {
	return complex(PHASE_COUNT, 0) * s
}
