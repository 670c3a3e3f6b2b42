package report

import (
	"fmt"
	"io"
	"math/cmplx"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg"

	"dampedfilter"
)

type phasor struct {
	label string
	value complex128
}

// normalize scales a group of phasors so the largest has unit length.
func normalize(group []phasor) []phasor {
	peak := 0.0
	for _, p := range group {
		if m := cmplx.Abs(p.value); m > peak {
			peak = m
		}
	}
	out := make([]phasor, len(group))
	for i, p := range group {
		out[i] = p
		if peak > 0 {
			out[i].value = p.value / complex(peak, 0)
		}
	}
	return out
}

// PhasorDiagram draws the per-phase voltages (solid) and currents (dashed),
// each group in per unit of its largest member.
func PhasorDiagram(s *dampedfilter.Solution) (*plot.Plot, error) {
	p := plot.New()
	p.Title.Text = "Filter phasors (per unit)"
	p.X.Label.Text = "Re"
	p.Y.Label.Text = "Im"
	p.X.Min, p.X.Max = -1.1, 1.1
	p.Y.Min, p.Y.Max = -1.1, 1.1
	p.Legend.Top = true
	p.Add(plotter.NewGrid())

	voltages := normalize([]phasor{
		{"V_R", s.VR},
		{"V_C", s.VC},
		{"V_F", s.FilterVoltage()},
	})
	currents := normalize([]phasor{
		{"I_R", s.IR},
		{"I_L", s.IL},
		{"I_F", s.IF},
	})

	for i, ph := range append(voltages, currents...) {
		line, err := plotter.NewLine(plotter.XYs{
			{X: 0, Y: 0},
			{X: real(ph.value), Y: imag(ph.value)},
		})
		if err != nil {
			return nil, fmt.Errorf("phasor %s: %w", ph.label, err)
		}
		line.LineStyle.Width = vg.Points(2)
		line.LineStyle.Color = plotutil.Color(i)
		if i >= len(voltages) {
			line.LineStyle.Dashes = []vg.Length{vg.Points(6), vg.Points(3)}
		}
		p.Add(line)
		p.Legend.Add(ph.label, line)
	}

	return p, nil
}

// WritePhasorDiagram renders the phasor diagram as a PNG.
func WritePhasorDiagram(w io.Writer, s *dampedfilter.Solution) error {
	p, err := PhasorDiagram(s)
	if err != nil {
		return err
	}

	wt, err := p.WriterTo(6*vg.Inch, 6*vg.Inch, "png")
	if err != nil {
		return err
	}
	_, err = wt.WriteTo(w)
	return err
}
