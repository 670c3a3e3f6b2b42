package params

import (
	"fmt"
	"os"
	"path/filepath"
)

const defaultFile = `# Fundamental frequency in Hz
f1 = 60

# Resistance of the main resistor in ohms
R = 222

# Resistance of the inductor in ohms
r = 0.792

# Inductance of the inductor in millihenries (mH)
L_mH = 34.303

# Capacitance of the capacitor in microfarads (uF)
C_uF = 8.543

# Line voltage in kV (kilovolts)
V_line_kV = 34.5

# Allowed overvoltage on the capacitors (multiplication factor)
capacitor_overvoltage = 1.3

# Allowed overcurrent in the inductor (multiplication factor)
inductor_overcurrent = 1.66

# Allowed overcurrent in the resistor (multiplication factor)
resistor_overcurrent = 1.66

# Number of capacitors in series
series_cap_count = 2

# Number of capacitors in parallel
parallel_cap_count = 2
`

// Default returns the default parameter file.
func Default() []byte {
	return []byte(defaultFile)
}

// WriteDefault writes the default parameter file to path, creating its
// directory if needed.
func WriteDefault(path string) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("creating %s: %w", dir, err)
		}
	}

	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating %s: %w", path, err)
	}
	defer file.Close()

	if _, err := file.Write(Default()); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return file.Close()
}
