package dampedfilter

// Section names of the rendered results, in output order.
const (
	SECTION_IMPEDANCE = "Impedance (ohm)"
	SECTION_CURRENT   = "Current (A)"
	SECTION_VOLTAGE   = "Voltage (V)"
	SECTION_POWER     = "Power"
	SECTION_CELLS     = "Capacitor Cells"
	SECTION_BANK      = "Bank"
	SECTION_INDUCTOR  = "Inductor"
	SECTION_RESISTOR  = "Resistor"

	PHASE_COUNT = 3 // balanced three-phase bank
)

// FilterParameters are the inputs of one calculation, one field per key of
// the parameter file.
type FilterParameters struct {
	F1      float64 `json:"f1" yaml:"f1"`               // Fundamental frequency (Hz)
	R       float64 `json:"R" yaml:"R"`                 // Main resistor (ohm)
	LittleR float64 `json:"r" yaml:"r"`                 // Inductor internal resistance (ohm)
	LmH     float64 `json:"L_mH" yaml:"L_mH"`           // Inductance (mH)
	CuF     float64 `json:"C_uF" yaml:"C_uF"`           // Capacitance (uF)
	VLinekV float64 `json:"V_line_kV" yaml:"V_line_kV"` // Line-to-line RMS voltage (kV)

	CapacitorOvervoltage float64 `json:"capacitor_overvoltage" yaml:"capacitor_overvoltage"` // multiplier on capacitor voltage
	InductorOvercurrent  float64 `json:"inductor_overcurrent" yaml:"inductor_overcurrent"`   // multiplier on inductor current
	ResistorOvercurrent  float64 `json:"resistor_overcurrent" yaml:"resistor_overcurrent"`   // multiplier on resistor current

	SeriesCapCount   int `json:"series_cap_count" yaml:"series_cap_count"`     // cells in series per phase
	ParallelCapCount int `json:"parallel_cap_count" yaml:"parallel_cap_count"` // cells in parallel per phase
}

// Impedances at the fundamental angular frequency (ohm).
type Impedances struct {
	ZR  complex128 // main resistor
	ZL  complex128 // r-L damping branch
	ZC  complex128 // capacitor
	ZRL complex128 // ZR || ZL
	ZF  complex128 // ZRL + ZC
}

// CurrentsVoltages holds the per-phase RMS phasors of every element.
type CurrentsVoltages struct {
	VPhase float64

	IR complex128
	IL complex128
	IC complex128
	IF complex128

	VR complex128
	VL complex128
	VC complex128
}

// Powers are single-phase complex powers (W + jVAR).
type Powers struct {
	PR complex128
	PL complex128
	PC complex128
	PF complex128
}

type CapacitorBank struct {
	SeriesCount   int
	ParallelCount int
	TotalCells    int // PHASE_COUNT * SeriesCount * ParallelCount

	CellVoltage            float64 // V
	CellPower              float64 // VAR
	CellCapacitance        float64 // F
	AssociationCapacitance float64 // F, per phase

	Overvoltage float64
	BankVoltage float64 // line-to-line V under overvoltage
	BankPower   float64 // VAR, all cells
}

type Ratings struct {
	InductorOvercurrent  float64
	InductorNominal      float64 // A
	InductorShortCircuit float64 // A

	ResistorOvercurrent  float64
	ResistorNominal      float64 // A
	ResistorShortCircuit float64 // A
}

// Solution keeps every computed quantity at full precision.
type Solution struct {
	Parameters FilterParameters

	W1          float64 // rad/s
	ResonanceHz float64

	Impedances
	CurrentsVoltages
	Powers

	Bank    CapacitorBank
	Ratings Ratings
}
