// Package report turns per-tick solver telemetry into charts.
package report

import (
	"errors"
	"fmt"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg"
)

// Series is one named line of (tick, value) samples.
type Series struct {
	Name   string
	Values []float64
}

// Chart describes the axes of a line chart.
type Chart struct {
	Title  string
	XLabel string
	YLabel string
	Width  vg.Length
	Height vg.Length
}

// DefaultChart returns the layout used for residual-divergence charts.
func DefaultChart() Chart {
	return Chart{
		Title:  "Residual divergence",
		XLabel: "tick",
		YLabel: "max |div|",
		Width:  8 * vg.Inch,
		Height: 4 * vg.Inch,
	}
}

// Build assembles a plot with one line per series. Sample i is placed at
// tick i+1.
func Build(c Chart, series []Series) (*plot.Plot, error) {
	if len(series) == 0 {
		return nil, errors.New("report: no series to plot")
	}
	p := plot.New()
	p.Title.Text = c.Title
	p.X.Label.Text = c.XLabel
	p.Y.Label.Text = c.YLabel
	p.Add(plotter.NewGrid())

	for i, s := range series {
		pts := make(plotter.XYs, len(s.Values))
		for j, v := range s.Values {
			pts[j].X = float64(j + 1)
			pts[j].Y = v
		}
		line, err := plotter.NewLine(pts)
		if err != nil {
			return nil, fmt.Errorf("report: series %q: %w", s.Name, err)
		}
		line.Color = plotutil.Color(i)
		line.Width = vg.Points(1)
		p.Add(line)
		p.Legend.Add(s.Name, line)
	}
	p.Legend.Top = true
	return p, nil
}

// PlotSeries writes the chart to path; the image format follows the file
// extension (png, svg, pdf).
func PlotSeries(path string, c Chart, series []Series) error {
	p, err := Build(c, series)
	if err != nil {
		return err
	}
	if err := p.Save(c.Width, c.Height, path); err != nil {
		return fmt.Errorf("report: save %s: %w", path, err)
	}
	return nil
}
