package dampedfilter

import (
	"math"
	"math/cmplx"
)

// cellCount is PHASE_COUNT * series * parallel for counts >= 1. It reports
// false when the product does not fit in an int.
func cellCount(series, parallel int) (int, bool) {
	if series < 1 || parallel < 1 || series > math.MaxInt/PHASE_COUNT/parallel {
		return 0, false
	}
	return PHASE_COUNT * series * parallel, true
}

// SizeCapacitorBank rates the cells of a series/parallel bank that sees vc and pc
// per phase, raised by the overvoltage factor.
func SizeCapacitorBank(series, parallel int, vc, pc complex128, overvoltage, w1 float64) (CapacitorBank, error) {
	b := CapacitorBank{
		SeriesCount:   series,
		ParallelCount: parallel,
		Overvoltage:   overvoltage,
	}

	if series < 1 {
		return b, &ComputationError{Quantity: "cell_voltage", Reason: "series_cap_count must be at least 1"}
	}
	if parallel < 1 {
		return b, &ComputationError{Quantity: "cell_power", Reason: "parallel_cap_count must be at least 1"}
	}

	total, ok := cellCount(series, parallel)
	if !ok {
		return b, &ComputationError{Quantity: "total_cell_count", Reason: "series and parallel counts overflow the cell count"}
	}
	b.TotalCells = total
	b.CellVoltage = cmplx.Abs(vc) * overvoltage / float64(series)
	b.CellPower = PHASE_COUNT * cmplx.Abs(pc) * overvoltage * overvoltage / float64(b.TotalCells)

	// Q = w * C * V^2 for one cell
	if b.CellPower == 0 || b.CellVoltage == 0 || w1 == 0 {
		return b, &ComputationError{Quantity: "cell_capacitance", Reason: "cell voltage, cell power and w1 must be non-zero"}
	}
	b.CellCapacitance = 1 / (w1 * b.CellVoltage * b.CellVoltage / b.CellPower)
	b.AssociationCapacitance = b.CellCapacitance * float64(parallel) / float64(series)

	b.BankVoltage = math.Sqrt(3) * overvoltage * cmplx.Abs(vc)
	b.BankPower = float64(b.TotalCells) * b.CellPower

	for _, q := range []struct {
		name string
		v    float64
	}{
		{"cell_voltage", b.CellVoltage},
		{"cell_power", b.CellPower},
		{"cell_capacitance", b.CellCapacitance},
		{"association_capacitance", b.AssociationCapacitance},
		{"bank_voltage", b.BankVoltage},
		{"bank_power", b.BankPower},
	} {
		if !finite(q.v) {
			return b, &ComputationError{Quantity: q.name, Reason: "result is not finite"}
		}
	}
	return b, nil
}
