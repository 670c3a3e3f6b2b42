package dampedfilter

import (
	"bytes"
	"encoding/json"
)

type Field struct {
	Label string
	Value string
}

type Section struct {
	Name   string
	Fields []Field
}

// Results is the rendered form of a Solution, in display order.
type Results []Section

// Section returns the named section.
func (r Results) Section(name string) (Section, bool) {
	for _, s := range r {
		if s.Name == name {
			return s, true
		}
	}
	return Section{}, false
}

// Value returns the formatted value stored under section/label.
func (r Results) Value(section, label string) (string, bool) {
	s, ok := r.Section(section)
	if !ok {
		return "", false
	}
	for _, f := range s.Fields {
		if f.Label == label {
			return f.Value, true
		}
	}
	return "", false
}

// Map flattens the results into section -> label -> value.
func (r Results) Map() map[string]map[string]string {
	out := make(map[string]map[string]string, len(r))
	for _, s := range r {
		fields := make(map[string]string, len(s.Fields))
		for _, f := range s.Fields {
			fields[f.Label] = f.Value
		}
		out[s.Name] = fields
	}
	return out
}

// MarshalJSON keeps section and field order.
func (r Results) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer

	writeKey := func(k string) error {
		b, err := json.Marshal(k)
		if err != nil {
			return err
		}
		buf.Write(b)
		buf.WriteByte(':')
		return nil
	}

	buf.WriteByte('{')
	for i, s := range r {
		if i > 0 {
			buf.WriteByte(',')
		}
		if err := writeKey(s.Name); err != nil {
			return nil, err
		}
		buf.WriteByte('{')
		for j, f := range s.Fields {
			if j > 0 {
				buf.WriteByte(',')
			}
			if err := writeKey(f.Label); err != nil {
				return nil, err
			}
			b, err := json.Marshal(f.Value)
			if err != nil {
				return nil, err
			}
			buf.Write(b)
		}
		buf.WriteByte('}')
	}
	buf.WriteByte('}')

	return buf.Bytes(), nil
}

// Results renders the solution for display.
func (s *Solution) Results() Results {
	p := s.Parameters

	return Results{
		{Name: SECTION_IMPEDANCE, Fields: []Field{
			{"Resistor", FormatPolar(s.ZR, "Ω")},
			{"Inductor", FormatPolar(s.ZL, "Ω")},
			{"Capacitor", FormatPolar(s.ZC, "Ω")},
			{"Filter", FormatPolar(s.ZF, "Ω")},
			{"Resonance Frequency (Hz)", FormatUnit(s.ResonanceHz, "Hz")},
		}},
		{Name: SECTION_CURRENT, Fields: []Field{
			{"Resistor", FormatPolar(s.IR, "A")},
			{"Inductor", FormatPolar(s.IL, "A")},
			{"Capacitor", FormatPolar(s.IC, "A")},
			{"Filter", FormatPolar(s.IF, "A")},
		}},
		{Name: SECTION_VOLTAGE, Fields: []Field{
			{"Resistor", FormatPolar(s.VR, "V")},
			{"Inductor", FormatPolar(s.VL, "V")},
			{"Capacitor", FormatPolar(s.VC, "V")},
			{"Filter", FormatPolar(s.FilterVoltage(), "V")},
		}},
		{Name: SECTION_POWER, Fields: []Field{
			{"R (W)", FormatUnit(real(ThreePhase(s.PR)), "W")},
			{"L (VA)", FormatComplexEng(ThreePhase(s.PL), "VA")},
			{"C (VAR)", FormatUnit(imag(ThreePhase(s.PC)), "VAR")},
			{"Filter (VA)", FormatComplexEng(ThreePhase(s.PF), "VA")},
		}},
		{Name: SECTION_CELLS, Fields: []Field{
			{"Total Number of Cells", formatCount(s.Bank.TotalCells)},
			{"Series Cell Count", formatCount(s.Bank.SeriesCount)},
			{"Parallel Cell Count", formatCount(s.Bank.ParallelCount)},
			{"Cell Voltage", FormatUnit(s.Bank.CellVoltage, "V")},
			{"Cell Power", FormatUnit(s.Bank.CellPower, "VAR")},
			{"Cell Capacitance", FormatUnit(s.Bank.CellCapacitance, "F")},
		}},
		{Name: SECTION_BANK, Fields: []Field{
			{"Bank Voltage", FormatUnit(s.Bank.BankVoltage, "V")},
			{"Considered Overvoltage", FormatFactor(s.Bank.Overvoltage)},
			{"Bank Power", FormatUnit(s.Bank.BankPower, "VAR")},
			{"Bank Capacitance", FormatUnit(s.Bank.AssociationCapacitance, "F")},
		}},
		{Name: SECTION_INDUCTOR, Fields: []Field{
			{"Nominal Current", FormatUnit(s.Ratings.InductorNominal, "A")},
			{"Considered Overcurrent", FormatFactor(s.Ratings.InductorOvercurrent)},
			{"Short-Circuit Current", FormatUnit(s.Ratings.InductorShortCircuit, "A")},
			{"Inductance", FormatUnit(p.LmH/1000, "H")},
			{"Inductor Resistance", FormatUnit(p.LittleR, "Ω")},
		}},
		{Name: SECTION_RESISTOR, Fields: []Field{
			{"Nominal Current", FormatUnit(s.Ratings.ResistorNominal, "A")},
			{"Considered Overcurrent", FormatFactor(s.Ratings.ResistorOvercurrent)},
			{"Short-Circuit Current", FormatUnit(s.Ratings.ResistorShortCircuit, "A")},
			{"Resistance", FormatUnit(p.R, "Ω")},
		}},
	}
}
