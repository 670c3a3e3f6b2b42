package dampedfilter

import "fmt"

// Validate checks every parameter before anything is computed.
// The first violation is returned as a *ValidationError.
func (p FilterParameters) Validate() error {
	checks := []error{
		positive("f1", p.F1, true),
		positive("R", p.R, true),
		atLeast("r", p.LittleR, 0, false, false),
		positive("L_mH", p.LmH, true),
		positive("C_uF", p.CuF, true),
		positive("V_line_kV", p.VLinekV, false),
		positive("capacitor_overvoltage", p.CapacitorOvervoltage, false),
		positive("inductor_overcurrent", p.InductorOvercurrent, false),
		positive("resistor_overcurrent", p.ResistorOvercurrent, false),
		atLeast("series_cap_count", p.SeriesCapCount, 1, false, true),
		atLeast("parallel_cap_count", p.ParallelCapCount, 1, false, true),
	}

	for _, err := range checks {
		if err != nil {
			return err
		}
	}

	if _, ok := cellCount(p.SeriesCapCount, p.ParallelCapCount); !ok {
		return &ValidationError{
			Field:  "series_cap_count",
			Value:  float64(p.SeriesCapCount),
			Reason: fmt.Sprintf("bank of %d x %d cells per phase is too large", p.SeriesCapCount, p.ParallelCapCount),
		}
	}
	return nil
}

// Margins lists safety factors that do not exceed 1 and so add no margin.
func (p FilterParameters) Margins() []string {
	var weak []string
	if p.CapacitorOvervoltage <= 1 {
		weak = append(weak, "capacitor_overvoltage")
	}
	if p.InductorOvercurrent <= 1 {
		weak = append(weak, "inductor_overcurrent")
	}
	if p.ResistorOvercurrent <= 1 {
		weak = append(weak, "resistor_overcurrent")
	}
	return weak
}
