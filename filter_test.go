package dampedfilter

import (
	"errors"
	"math"
	"math/cmplx"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func referenceParameters() FilterParameters {
	return FilterParameters{
		F1:                   60,
		R:                    222,
		LittleR:              0.792,
		LmH:                  34.303,
		CuF:                  8.543,
		VLinekV:              34.5,
		CapacitorOvervoltage: 1.3,
		InductorOvercurrent:  1.66,
		ResistorOvercurrent:  1.66,
		SeriesCapCount:       2,
		ParallelCapCount:     2,
	}
}

func assertComplexNear(t *testing.T, want, got complex128, tol float64, msg string) {
	t.Helper()
	scale := math.Max(1, cmplx.Abs(want))
	assert.LessOrEqual(t, cmplx.Abs(want-got)/scale, tol, "%s: want %v, got %v", msg, want, got)
}

func TestCalculateReferenceScenario(t *testing.T) {
	s, err := Calculate(referenceParameters())
	require.NoError(t, err)

	assert.InDelta(t, 376.99111843077515, s.W1, 1e-9)
	assert.InDelta(t, 19918.58428704209, s.VPhase, 1e-6)
	assertComplexNear(t, complex(0, -310.497762479799), s.ZC, 1e-12, "Z_C")
	assertComplexNear(t, complex(0.792, 12.93192633553088), s.ZL, 1e-12, "Z_L")
	assertComplexNear(t, complex(1.5319861631518943, 12.79703092695843), s.ZRL, 1e-12, "Z_RL")
	assertComplexNear(t, complex(0.34430395065350694, 66.90630793635924), s.IF, 1e-12, "I_F")
	assertComplexNear(t, complex(20774.258910023964, -106.90560629086903), s.VC, 1e-12, "V_C")

	r := s.Results()
	expected := map[string]map[string]string{
		SECTION_IMPEDANCE: {
			"Resistor":                 "(222.00 ∠ 0.00°) Ω",
			"Inductor":                 "(12.96 ∠ 86.50°) Ω",
			"Capacitor":                "(310.50 ∠ -90.00°) Ω",
			"Filter":                   "(297.70 ∠ -89.71°) Ω",
			"Resonance Frequency (Hz)": "294.001Hz",
		},
		SECTION_CURRENT: {
			"Resistor":  "(3.88 ∠ 172.88°) A",
			"Inductor":  "(66.56 ∠ 86.38°) A",
			"Capacitor": "(66.91 ∠ 89.71°) A",
			"Filter":    "(66.91 ∠ 89.71°) A",
		},
		SECTION_VOLTAGE: {
			"Resistor":  "(862.33 ∠ 172.88°) V",
			"Inductor":  "(862.33 ∠ 172.88°) V",
			"Capacitor": "(20774.53 ∠ -0.29°) V",
		},
		SECTION_POWER: {
			"R (W)":       "10.0488 kW",
			"L (VA)":      "10.5254 kVA + j171.861 kVA",
			"C (VAR)":     "-4.1699 MVAR",
			"Filter (VA)": "20.5741 kVA + j-3.99804 MVA",
		},
		SECTION_CELLS: {
			"Total Number of Cells": "12",
			"Series Cell Count":     "2",
			"Parallel Cell Count":   "2",
			"Cell Voltage":          "13.5034 kV",
			"Cell Power":            "587.261 kVAR",
			"Cell Capacitance":      "8.543 µF",
		},
		SECTION_BANK: {
			"Bank Voltage":           "46.7773 kV",
			"Considered Overvoltage": "1.3000",
			"Bank Power":             "7.04713 MVAR",
			"Bank Capacitance":       "8.543 µF",
		},
		SECTION_INDUCTOR: {
			"Nominal Current":        "110.485A",
			"Considered Overcurrent": "1.6600",
			"Short-Circuit Current":  "1.54026 kA",
			"Inductance":             "34.303 mH",
			"Inductor Resistance":    "792 mΩ",
		},
		SECTION_RESISTOR: {
			"Nominal Current":        "6.44803A",
			"Considered Overcurrent": "1.6600",
			"Short-Circuit Current":  "89.7234A",
			"Resistance":             "222Ω",
		},
	}

	for section, fields := range expected {
		for label, want := range fields {
			got, ok := r.Value(section, label)
			require.True(t, ok, "missing %s / %s", section, label)
			assert.Equal(t, want, got, "%s / %s", section, label)
		}
	}

	// the filter terminal voltage equals the phase voltage; its angle is ~0
	mag, deg := Polar(s.FilterVoltage())
	assert.InDelta(t, 19918.58, mag, 0.005)
	assert.InDelta(t, 0, deg, 1e-9)
}

func TestResultsLayout(t *testing.T) {
	r, _, err := Run(referenceParameters())
	require.NoError(t, err)

	names := make([]string, 0, len(r))
	for _, s := range r {
		names = append(names, s.Name)
	}
	assert.Equal(t, []string{
		SECTION_IMPEDANCE, SECTION_CURRENT, SECTION_VOLTAGE, SECTION_POWER,
		SECTION_CELLS, SECTION_BANK, SECTION_INDUCTOR, SECTION_RESISTOR,
	}, names)

	m := r.Map()
	assert.Len(t, m, 8)
	assert.Len(t, m[SECTION_IMPEDANCE], 5)
	assert.Len(t, m[SECTION_CELLS], 6)
}

func TestNetworkInvariants(t *testing.T) {
	cases := []FilterParameters{
		referenceParameters(),
		func() FilterParameters {
			p := referenceParameters()
			p.F1, p.R, p.LittleR, p.LmH, p.CuF, p.VLinekV = 50, 15, 0, 2.5, 120, 13.8
			return p
		}(),
		func() FilterParameters {
			p := referenceParameters()
			p.R, p.LmH, p.CuF, p.SeriesCapCount, p.ParallelCapCount = 1e4, 500, 0.5, 7, 3
			return p
		}(),
	}

	for _, p := range cases {
		s, err := Calculate(p)
		require.NoError(t, err)

		assertComplexNear(t, s.ZRL+s.ZC, s.ZF, 1e-12, "Z_F = Z_RL + Z_C")
		assertComplexNear(t, s.ZR*s.ZL/(s.ZR+s.ZL), s.ZRL, 1e-12, "Z_RL = Z_R*Z_L/(Z_R+Z_L)")
		assertComplexNear(t, s.PR+s.PL+s.PC, s.PF, 1e-9, "P_F = P_R + P_L + P_C")
		assertComplexNear(t, s.IR+s.IL, s.IF, 1e-9, "I_R + I_L = I_F")
		assert.Equal(t, s.VR, s.VL)

		assert.Equal(t, PHASE_COUNT*p.SeriesCapCount*p.ParallelCapCount, s.Bank.TotalCells)
		assert.InDelta(t, s.Bank.CellCapacitance*float64(p.ParallelCapCount)/float64(p.SeriesCapCount),
			s.Bank.AssociationCapacitance, 1e-18)
		assert.InEpsilon(t, s.W1*s.Bank.CellCapacitance*s.Bank.CellVoltage*s.Bank.CellVoltage, s.Bank.CellPower, 1e-12)
		// per-phase capacitance of the bank is the filter capacitor
		assert.InEpsilon(t, p.CuF*1e-6, s.Bank.AssociationCapacitance, 1e-9)
		assert.InEpsilon(t, float64(s.Bank.TotalCells)*s.Bank.CellPower, s.Bank.BankPower, 1e-12)
	}
}

func TestCalculateIsIdempotent(t *testing.T) {
	p := referenceParameters()

	a, sa, err := Run(p)
	require.NoError(t, err)
	b, sb, err := Run(p)
	require.NoError(t, err)

	assert.Equal(t, a, b)
	assert.Equal(t, *sa, *sb)
}

func TestSingleCellTopology(t *testing.T) {
	p := referenceParameters()
	p.SeriesCapCount, p.ParallelCapCount = 1, 1

	s, err := Calculate(p)
	require.NoError(t, err)
	assert.Equal(t, 3, s.Bank.TotalCells)
	assert.InEpsilon(t, s.Bank.BankVoltage/math.Sqrt(3), s.Bank.CellVoltage, 1e-12)
}

func TestCalculateErrors(t *testing.T) {
	t.Run("zero capacitance is a domain error", func(t *testing.T) {
		p := referenceParameters()
		p.CuF = 0

		s, err := Calculate(p)
		require.Error(t, err)
		assert.Nil(t, s)
		assert.True(t, errors.Is(err, ErrDomain))

		var verr *ValidationError
		require.True(t, errors.As(err, &verr))
		assert.Equal(t, "C_uF", verr.Field)
	})

	t.Run("zero series count is rejected before sizing", func(t *testing.T) {
		p := referenceParameters()
		p.SeriesCapCount = 0

		s, err := Calculate(p)
		require.Error(t, err)
		assert.Nil(t, s)
		assert.True(t, errors.Is(err, ErrDomain))
		assert.True(t, errors.Is(err, ErrInvalidParameter))
	})

	t.Run("negative frequency is invalid but not a domain error", func(t *testing.T) {
		p := referenceParameters()
		p.F1 = -60

		_, err := Calculate(p)
		require.Error(t, err)
		assert.True(t, errors.Is(err, ErrInvalidParameter))
		assert.False(t, errors.Is(err, ErrDomain))
	})

	t.Run("non-finite input", func(t *testing.T) {
		p := referenceParameters()
		p.VLinekV = math.Inf(1)

		_, err := Calculate(p)
		var verr *ValidationError
		require.True(t, errors.As(err, &verr))
		assert.Equal(t, "V_line_kV", verr.Field)
	})
}
