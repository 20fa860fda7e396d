// Package render draws sample distributions and convergence curves and saves them as images.  The image format
// follows the file extension passed to Save (png, svg, pdf, ...).
package render

import (
	"fmt"
	"image/color"
	"io"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
)

var (
	dataColor      = color.NRGBA{R: 31, G: 119, B: 180, A: 255}
	referenceColor = color.Black
)

// Figure is a plot ready to be saved at a fixed size
type Figure struct {
	p      *plot.Plot
	width  vg.Length
	height vg.Length
}

// Plot returns the underlying plot
func (f *Figure) Plot() *plot.Plot {
	return f.p
}

// Save writes the figure to path.  The image format is chosen from the extension.
func (f *Figure) Save(path string) error {
	if err := f.p.Save(f.width, f.height, path); err != nil {
		return fmt.Errorf("unable to save plot to %s: %v", path, err)
	}
	return nil
}

// Encode writes the figure to w in format (e.g. "png") and returns the number of bytes written
func (f *Figure) Encode(w io.Writer, format string) (int64, error) {
	wt, err := f.p.WriterTo(f.width, f.height, format)
	if err != nil {
		return 0, fmt.Errorf("unable to encode plot as %s: %v", format, err)
	}
	return wt.WriteTo(w)
}

// Histogram returns a figure of the empirical density of values: a histogram normalized to unit area.  If density
// is not nil it is drawn over the histogram between the smallest and largest value.
func Histogram(values []float64, density func(float64) float64, opts ...Option) (*Figure, error) {
	if len(values) == 0 {
		return nil, fmt.Errorf("histogram requires at least one value")
	}
	o, err := newOptions(opts...)
	if err != nil {
		return nil, err
	}

	p := newPlot(o)
	h, err := plotter.NewHist(plotter.Values(values), o.bins)
	if err != nil {
		return nil, fmt.Errorf("unable to bin values: %v", err)
	}
	h.Normalize(1)
	h.FillColor = color.NRGBA{R: 31, G: 119, B: 180, A: 128}
	h.LineStyle.Color = dataColor
	p.Add(h)
	if o.legend != "" {
		p.Legend.Add(o.legend, h)
	}

	if density != nil {
		f := plotter.NewFunction(density)
		f.XMin = h.Bins[0].Min
		f.XMax = h.Bins[len(h.Bins)-1].Max
		f.Samples = 200
		f.Color = referenceColor
		f.Width = vg.Points(1.5)
		p.Add(f)
		p.Legend.Add("density", f)
	}
	p.Y.Min = 0

	return &Figure{p: p, width: o.width, height: o.height}, nil
}

// Convergence returns a figure of estimates[n-1] against the sample count n = 1..len(estimates), with a
// horizontal line at reference
func Convergence(estimates []float64, reference float64, opts ...Option) (*Figure, error) {
	if len(estimates) == 0 {
		return nil, fmt.Errorf("convergence plot requires at least one estimate")
	}
	o, err := newOptions(opts...)
	if err != nil {
		return nil, err
	}

	p := newPlot(o)
	pts := make(plotter.XYs, len(estimates))
	for i, e := range estimates {
		pts[i].X = float64(i + 1)
		pts[i].Y = e
	}
	l, err := plotter.NewLine(pts)
	if err != nil {
		return nil, fmt.Errorf("unable to draw estimates: %v", err)
	}
	l.LineStyle.Color = dataColor
	p.Add(l)
	if o.legend != "" {
		p.Legend.Add(o.legend, l)
	}

	ref := plotter.NewFunction(func(float64) float64 { return reference })
	ref.XMin = 1
	ref.XMax = float64(len(estimates))
	ref.Samples = 2
	ref.Color = referenceColor
	p.Add(ref)
	p.Legend.Add(fmt.Sprintf("true value %.4f", reference), ref)

	return &Figure{p: p, width: o.width, height: o.height}, nil
}

func newPlot(o *options) *plot.Plot {
	p := plot.New()
	p.Title.Text = o.title
	p.X.Label.Text = o.xLabel
	p.Y.Label.Text = o.yLabel
	p.Legend.Top = true
	p.Add(plotter.NewGrid())
	return p
}
