package render

import (
	"fmt"

	"gonum.org/v1/plot/vg"
)

// Image dimensions in centimeters used when no size option is passed
const (
	DefaultWidthCm  = 16.0
	DefaultHeightCm = 12.0
	DefaultBins     = 50
)

type options struct {
	title  string
	xLabel string
	yLabel string
	width  vg.Length
	height vg.Length
	bins   int
	legend string
}

// Option overrides the default appearance of a plot
type Option func(o *options) error

func newOptions(opts ...Option) (*options, error) {
	o := &options{
		width:  DefaultWidthCm * vg.Centimeter,
		height: DefaultHeightCm * vg.Centimeter,
		bins:   DefaultBins,
	}
	for _, opt := range opts {
		if err := opt(o); err != nil {
			return nil, err
		}
	}
	return o, nil
}

// WithTitle sets the plot title
func WithTitle(title string) Option {
	return func(o *options) error {
		o.title = title
		return nil
	}
}

// WithLabels sets the axis labels
func WithLabels(x string, y string) Option {
	return func(o *options) error {
		o.xLabel = x
		o.yLabel = y
		return nil
	}
}

// WithLegend sets the legend entry for the primary data set
func WithLegend(name string) Option {
	return func(o *options) error {
		o.legend = name
		return nil
	}
}

// WithSize sets the image size in centimeters
func WithSize(widthCm float64, heightCm float64) Option {
	return func(o *options) error {
		if widthCm <= 0 || heightCm <= 0 {
			return fmt.Errorf("image size must be positive, got %gx%gcm", widthCm, heightCm)
		}
		o.width = vg.Length(widthCm) * vg.Centimeter
		o.height = vg.Length(heightCm) * vg.Centimeter
		return nil
	}
}

// WithBins sets the number of histogram bins
func WithBins(bins int) Option {
	return func(o *options) error {
		if bins < 1 {
			return fmt.Errorf("histogram must have at least 1 bin, got %d", bins)
		}
		o.bins = bins
		return nil
	}
}
