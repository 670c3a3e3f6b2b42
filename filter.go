// Package dampedfilter computes the fundamental-frequency behaviour of a
// single-tuned damped harmonic filter: a resistor R in parallel with an r-L
// branch, in series with a capacitor bank, on a balanced three-phase bus.
//
// Calculate runs the whole chain and returns a Solution holding every
// quantity at full precision; Solution.Results renders it for display.
package dampedfilter

import "fmt"

// Calculate validates p and evaluates impedances, currents, voltages,
// powers, capacitor bank sizing and ratings. It never returns a partial
// solution.
func Calculate(p FilterParameters) (*Solution, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}

	w1 := AngularFrequency(p.F1)

	z, err := ComputeImpedances(p.R, p.LittleR, p.LmH, p.CuF, w1)
	if err != nil {
		return nil, fmt.Errorf("impedance: %w", err)
	}

	cv, err := ComputeCurrentsVoltages(p.VLinekV, z)
	if err != nil {
		return nil, fmt.Errorf("current/voltage: %w", err)
	}

	pw := ComputePowers(cv)
	if err := checkFinite([]string{"P_R", "P_L", "P_C", "P_F"}, pw.PR, pw.PL, pw.PC, pw.PF); err != nil {
		return nil, fmt.Errorf("power: %w", err)
	}

	bank, err := SizeCapacitorBank(p.SeriesCapCount, p.ParallelCapCount, cv.VC, pw.PC, p.CapacitorOvervoltage, w1)
	if err != nil {
		return nil, fmt.Errorf("capacitor bank: %w", err)
	}

	ratings, err := ComputeRatings(cv.IR, cv.IL, p.VLinekV, p.LmH, p.R, p.F1, p.InductorOvercurrent, p.ResistorOvercurrent)
	if err != nil {
		return nil, fmt.Errorf("ratings: %w", err)
	}

	fres := ResonanceFrequency(p.LmH, p.CuF)
	if !finite(fres) {
		return nil, &ComputationError{Quantity: "resonance frequency", Reason: "result is not finite"}
	}

	return &Solution{
		Parameters:       p,
		W1:               w1,
		ResonanceHz:      fres,
		Impedances:       z,
		CurrentsVoltages: cv,
		Powers:           pw,
		Bank:             bank,
		Ratings:          ratings,
	}, nil
}

// Run is Calculate followed by Results.
func Run(p FilterParameters) (Results, *Solution, error) {
	s, err := Calculate(p)
	if err != nil {
		return nil, nil, err
	}
	return s.Results(), s, nil
}
