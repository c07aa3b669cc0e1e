// Package waveform renders recorded transient time series to PNG for
// visual inspection. It is a host/demo concern only — nothing in the
// core packages imports it.
package waveform

import (
	"fmt"
	"image/color"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
)

// palette cycles a small fixed set of colours so series stay
// distinguishable without pulling in a colour-scheme dependency.
var palette = []color.Color{
	color.RGBA{R: 0xd6, G: 0x28, B: 0x28, A: 0xff},
	color.RGBA{R: 0x28, G: 0x5f, B: 0xd6, A: 0xff},
	color.RGBA{R: 0x28, G: 0x9e, B: 0x4a, A: 0xff},
	color.RGBA{R: 0xd6, G: 0x8f, B: 0x28, A: 0xff},
}

// Series is one named trace sampled at the recorder's tick times, e.g.
// a node voltage or a branch current.
type Series struct {
	Label  string
	Values []float64
}

// Recording is a full set of traces sharing one time axis, ready to
// plot.
type Recording struct {
	Times  []float64
	Series []Series
}

// Plot renders every series in the recording onto a single time-axis
// plot and writes it to path as a PNG.
func Plot(rec Recording, title, path string) error {
	if len(rec.Times) == 0 {
		return fmt.Errorf("waveform: empty recording")
	}

	p := plot.New()
	p.Title.Text = title
	p.X.Label.Text = "time (s)"
	p.Y.Label.Text = "value"

	for i, s := range rec.Series {
		if len(s.Values) != len(rec.Times) {
			return fmt.Errorf("waveform: series %q has %d samples, want %d", s.Label, len(s.Values), len(rec.Times))
		}
		pts := make(plotter.XYs, len(rec.Times))
		for j := range rec.Times {
			pts[j].X = rec.Times[j]
			pts[j].Y = s.Values[j]
		}
		line, err := plotter.NewLine(pts)
		if err != nil {
			return fmt.Errorf("waveform: series %q: %w", s.Label, err)
		}
		line.Color = palette[i%len(palette)]
		p.Add(line)
		p.Legend.Add(s.Label, line)
	}

	if err := p.Save(8*vg.Inch, 4*vg.Inch, path); err != nil {
		return fmt.Errorf("waveform: save %s: %w", path, err)
	}
	return nil
}
