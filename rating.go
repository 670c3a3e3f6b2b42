package dampedfilter

import "math/cmplx"

// ComputeRatings gives continuous and short-circuit currents for the inductor
// and the resistor. Each short-circuit path sees the full phase voltage across
// that element alone, ignoring the parallel branch.
func ComputeRatings(ir, il complex128, vLinekV, lmH, r, f1, inductorOvercurrent, resistorOvercurrent float64) (Ratings, error) {
	rt := Ratings{
		InductorOvercurrent: inductorOvercurrent,
		InductorNominal:     inductorOvercurrent * cmplx.Abs(il),
		ResistorOvercurrent: resistorOvercurrent,
		ResistorNominal:     resistorOvercurrent * cmplx.Abs(ir),
	}

	vPhase := PhaseVoltage(vLinekV)

	xL := AngularFrequency(f1) * lmH * 1e-3
	if xL == 0 {
		return rt, &ComputationError{Quantity: "inductor short-circuit current", Reason: "inductive reactance is zero"}
	}
	rt.InductorShortCircuit = vPhase / xL

	if r == 0 {
		return rt, &ComputationError{Quantity: "resistor short-circuit current", Reason: "resistance is zero"}
	}
	rt.ResistorShortCircuit = vPhase / r

	if !finite(rt.InductorShortCircuit) || !finite(rt.ResistorShortCircuit) {
		return rt, &ComputationError{Quantity: "short-circuit current", Reason: "result is not finite"}
	}
	return rt, nil
}
