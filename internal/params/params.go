// Package params reads and writes the "key = value" parameter file of a
// damped filter calculation.
package params

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"strconv"
	"strings"

	"dampedfilter"
)

// Value is one parsed literal; a literal containing '.' is a float,
// anything else an integer.
type Value struct {
	Float   float64
	Int     int64
	IsFloat bool
}

func (v Value) Number() float64 {
	if v.IsFloat {
		return v.Float
	}
	return float64(v.Int)
}

// fitsInt reports whether v is a whole number representable as an int.
func (v Value) fitsInt() bool {
	if !v.IsFloat {
		return v.Int >= math.MinInt && v.Int <= math.MaxInt
	}
	// float64(math.MaxInt) rounds up to 2^63, so the upper bound is exclusive
	return v.Float == math.Trunc(v.Float) && v.Float >= math.MinInt && v.Float < math.MaxInt
}

// count converts a value that passed fitsInt.
func (v Value) count() int {
	if v.IsFloat {
		return int(v.Float)
	}
	return int(v.Int)
}

func (v Value) String() string {
	if v.IsFloat {
		return strconv.FormatFloat(v.Float, 'g', -1, 64)
	}
	return strconv.FormatInt(v.Int, 10)
}

// ParseError locates a problem in a parameter file. Line is 0 when the
// problem is not tied to a line, e.g. a missing key.
type ParseError struct {
	Line int
	Key  string
	Msg  string
}

func (e *ParseError) Error() string {
	switch {
	case e.Line > 0 && e.Key != "":
		return fmt.Sprintf("line %d: %s: %s", e.Line, e.Key, e.Msg)
	case e.Line > 0:
		return fmt.Sprintf("line %d: %s", e.Line, e.Msg)
	default:
		return fmt.Sprintf("%s: %s", e.Key, e.Msg)
	}
}

type field struct {
	key     string
	integer bool
	set     func(p *dampedfilter.FilterParameters, v Value)
}

// Required keys in file order.
var fields = []field{
	{"f1", false, func(p *dampedfilter.FilterParameters, v Value) { p.F1 = v.Number() }},
	{"R", false, func(p *dampedfilter.FilterParameters, v Value) { p.R = v.Number() }},
	{"r", false, func(p *dampedfilter.FilterParameters, v Value) { p.LittleR = v.Number() }},
	{"L_mH", false, func(p *dampedfilter.FilterParameters, v Value) { p.LmH = v.Number() }},
	{"C_uF", false, func(p *dampedfilter.FilterParameters, v Value) { p.CuF = v.Number() }},
	{"V_line_kV", false, func(p *dampedfilter.FilterParameters, v Value) { p.VLinekV = v.Number() }},
	{"capacitor_overvoltage", false, func(p *dampedfilter.FilterParameters, v Value) { p.CapacitorOvervoltage = v.Number() }},
	{"inductor_overcurrent", false, func(p *dampedfilter.FilterParameters, v Value) { p.InductorOvercurrent = v.Number() }},
	{"resistor_overcurrent", false, func(p *dampedfilter.FilterParameters, v Value) { p.ResistorOvercurrent = v.Number() }},
	{"series_cap_count", true, func(p *dampedfilter.FilterParameters, v Value) { p.SeriesCapCount = v.count() }},
	{"parallel_cap_count", true, func(p *dampedfilter.FilterParameters, v Value) { p.ParallelCapCount = v.count() }},
}

// Keys lists the required parameter names.
func Keys() []string {
	keys := make([]string, len(fields))
	for i, f := range fields {
		keys[i] = f.key
	}
	return keys
}

// File is a loaded parameter file.
type File struct {
	Parameters dampedfilter.FilterParameters
	Values     map[string]Value
	Unknown    []string // keys that are not parameters, in file order
	Encoding   string
}

func parseValue(s string) (Value, error) {
	if strings.Contains(s, ".") {
		f, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return Value{}, err
		}
		return Value{Float: f, IsFloat: true}, nil
	}
	i, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return Value{}, err
	}
	return Value{Int: i}, nil
}

// Parse reads decoded parameter text. Blank lines and lines starting with
// '#' are skipped. All problems found are returned together.
func Parse(text string) (*File, error) {
	f := &File{Values: make(map[string]Value), Encoding: "utf-8"}
	var errs []error
	var order []string

	scanner := bufio.NewScanner(strings.NewReader(text))
	lineNumber := 0
	for scanner.Scan() {
		lineNumber++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		parts := strings.Split(line, "=")
		if len(parts) != 2 {
			errs = append(errs, &ParseError{Line: lineNumber, Msg: fmt.Sprintf("expected 'key = value', got %q", line)})
			continue
		}
		key := strings.TrimSpace(parts[0])
		raw := strings.TrimSpace(parts[1])
		if key == "" {
			errs = append(errs, &ParseError{Line: lineNumber, Msg: "empty key"})
			continue
		}

		v, err := parseValue(raw)
		if err != nil {
			errs = append(errs, &ParseError{Line: lineNumber, Key: key, Msg: fmt.Sprintf("invalid number %q", raw)})
			continue
		}
		if _, dup := f.Values[key]; dup {
			errs = append(errs, &ParseError{Line: lineNumber, Key: key, Msg: "duplicate key"})
			continue
		}
		f.Values[key] = v
		order = append(order, key)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading parameters: %w", err)
	}

	known := make(map[string]bool, len(fields))
	for _, fd := range fields {
		known[fd.key] = true

		v, ok := f.Values[fd.key]
		if !ok {
			errs = append(errs, &ParseError{Key: fd.key, Msg: "missing required parameter"})
			continue
		}
		if fd.integer && !v.fitsInt() {
			errs = append(errs, &ParseError{Key: fd.key, Msg: fmt.Sprintf("must be a whole number in int range, got %s", v)})
			continue
		}
		fd.set(&f.Parameters, v)
	}

	for _, key := range order {
		if !known[key] {
			f.Unknown = append(f.Unknown, key)
		}
	}

	if len(errs) > 0 {
		return nil, errors.Join(errs...)
	}
	return f, nil
}

// Load decodes and parses a parameter file of any supported encoding.
func Load(r io.Reader) (*File, error) {
	raw, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("reading parameters: %w", err)
	}

	text, name, err := Decode(raw)
	if err != nil {
		return nil, fmt.Errorf("decoding parameters as %s: %w", name, err)
	}

	f, err := Parse(text)
	if err != nil {
		return nil, err
	}
	f.Encoding = name
	return f, nil
}

// LoadFile opens path and loads it.
func LoadFile(path string) (*File, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("error opening file: %w", err)
	}
	defer file.Close()

	return Load(file)
}
