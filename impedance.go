package dampedfilter

import "math"

// ComputeImpedances builds the branch impedances at angular frequency w1.
// lmH is in millihenries and cuF in microfarads.
func ComputeImpedances(r, littleR, lmH, cuF, w1 float64) (Impedances, error) {
	var z Impedances

	z.ZR = complex(r, 0)
	z.ZL = complex(littleR, w1*lmH*1e-3)

	wc := w1 * cuF * 1e-6
	if wc == 0 {
		return z, &ComputationError{Quantity: "Z_C", Reason: "w1*C is zero"}
	}
	z.ZC = complex(0, -1/wc)

	yR, err := complexReciprocal("Z_R", z.ZR)
	if err != nil {
		return z, err
	}
	yL, err := complexReciprocal("Z_L", z.ZL)
	if err != nil {
		return z, err
	}
	z.ZRL, err = complexReciprocal("Z_RL", yR+yL)
	if err != nil {
		return z, err
	}
	z.ZF = z.ZRL + z.ZC

	if err := checkFinite([]string{"Z_R", "Z_L", "Z_C", "Z_RL", "Z_F"}, z.ZR, z.ZL, z.ZC, z.ZRL, z.ZF); err != nil {
		return z, err
	}
	return z, nil
}

// ResonanceFrequency returns 1 / (2*pi*sqrt(LC)) in Hz.
func ResonanceFrequency(lmH, cuF float64) float64 {
	lH := lmH * 1e-3
	cF := cuF * 1e-6
	return 1 / (2 * math.Pi * math.Sqrt(lH*cF))
}
