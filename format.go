package dampedfilter

import (
	"fmt"
	"math"
	"strconv"
)

const (
	ENG_MIN_EXPONENT = -24
	ENG_MAX_EXPONENT = 24
)

type engPrefix struct {
	symbol string
	scale  float64
}

var engPrefixes = map[int]engPrefix{
	-24: {"y", 1e-24},
	-21: {"z", 1e-21},
	-18: {"a", 1e-18},
	-15: {"f", 1e-15},
	-12: {"p", 1e-12},
	-9:  {"n", 1e-9},
	-6:  {"µ", 1e-6},
	-3:  {"m", 1e-3},
	0:   {"", 1},
	3:   {"k", 1e3},
	6:   {"M", 1e6},
	9:   {"G", 1e9},
	12:  {"T", 1e12},
	15:  {"P", 1e15},
	18:  {"E", 1e18},
	21:  {"Z", 1e21},
	24:  {"Y", 1e24},
}

func formatMantissa(m float64) string {
	return strconv.FormatFloat(m, 'g', 6, 64)
}

// FormatEng writes num in engineering notation: a mantissa with six significant
// digits followed by " <prefix>", e.g. "34.3 k" or "8.543 µ". Without a prefix
// the bare mantissa is returned.
func FormatEng(num float64) string {
	if !finite(num) {
		return strconv.FormatFloat(num, 'g', -1, 64)
	}

	sign := 1.0
	if num < 0 {
		sign = -1
		num = -num
	}

	pow10 := 0
	if num != 0 {
		pow10 = int(math.Floor(math.Log10(num)/3) * 3)
	} else {
		num = 0 // no "-0"
	}
	pow10 = clamp(pow10, ENG_MIN_EXPONENT, ENG_MAX_EXPONENT)

	mant := sign * num / engPrefixes[pow10].scale

	// 999.9999 rounds to "1000"; move it to the next prefix
	if rounded, err := strconv.ParseFloat(formatMantissa(mant), 64); err == nil &&
		math.Abs(rounded) >= 1000 && pow10 < ENG_MAX_EXPONENT {
		mant /= 1000
		pow10 += 3
	}

	prefix := engPrefixes[pow10].symbol
	if prefix == "" {
		return formatMantissa(mant)
	}
	return formatMantissa(mant) + " " + prefix
}

// FormatUnit appends unit to the engineering form of v.
func FormatUnit(v float64, unit string) string {
	return FormatEng(v) + unit
}

// FormatPolar renders a phasor as "(magnitude ∠ angle°) unit".
func FormatPolar(z complex128, unit string) string {
	mag, deg := Polar(z)
	return fmt.Sprintf("(%.2f ∠ %.2f°) %s", mag, deg, unit)
}

// FormatComplexEng renders "re + jim" with both parts in engineering notation.
func FormatComplexEng(z complex128, unit string) string {
	return FormatUnit(real(z), unit) + " + j" + FormatUnit(imag(z), unit)
}

// FormatFactor renders a dimensionless multiplier with four decimals.
func FormatFactor(v float64) string {
	return strconv.FormatFloat(v, 'f', 4, 64)
}

func formatCount(n int) string {
	return strconv.Itoa(n)
}
