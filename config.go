package montecarlo

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/BTBurke/montecarlo/pkg/render"
)

const (
	// DefaultSamples is the number of random draws per run
	DefaultSamples int = 10000
	// DefaultSeed makes runs reproducible unless another seed is chosen
	DefaultSeed int64 = 0
)

// Config controls a single run of either demo
type Config struct {
	Demo      Demo
	Samples   int
	Seed      int64
	Output    string
	OutputDir string
	Bins      int
	Width     float64
	Height    float64
	Quiet     bool

	// summary destination, stdout unless overridden in tests
	out io.Writer
}

// ConfigOption sets a configuration value, returning an error if the value is invalid
type ConfigOption func(c *Config) error

// NewConfig returns the configuration for demo with options applied in order.  Every invalid option is reported,
// not only the first one.
func NewConfig(demo Demo, options ...ConfigOption) (*Config, []error) {
	c := &Config{
		Demo:      demo,
		Samples:   DefaultSamples,
		Seed:      DefaultSeed,
		Output:    demo.DefaultOutput(),
		OutputDir: ".",
		Bins:      render.DefaultBins,
		Width:     render.DefaultWidthCm,
		Height:    render.DefaultHeightCm,
		out:       os.Stdout,
	}

	if demo != Inverse && demo != Integral {
		return nil, []error{fmt.Errorf("unknown demo %d", demo)}
	}

	var errors []error
	for _, option := range options {
		if err := option(c); err != nil {
			errors = append(errors, err)
		}
	}
	if c.Output == "" {
		errors = append(errors, fmt.Errorf("output file name must be the non-empty string"))
	}

	if len(errors) > 0 {
		return nil, errors
	}
	return c, nil
}

// Path returns the file the image is written to
func (c *Config) Path() string {
	return filepath.Join(c.OutputDir, c.Output)
}

// Samples sets the number of random draws, which must be at least 1
func Samples(n string) ConfigOption {
	return func(c *Config) error {
		v, err := strconv.Atoi(n)
		if err != nil {
			return fmt.Errorf("could not convert samples to integer: %s", n)
		}
		if v < 1 {
			return fmt.Errorf("samples must be >= 1, got %d", v)
		}
		c.Samples = v
		return nil
	}
}

// Seed sets the seed of the uniform random source
func Seed(seed string) ConfigOption {
	return func(c *Config) error {
		v, err := strconv.ParseInt(seed, 10, 64)
		if err != nil {
			return fmt.Errorf("could not convert seed to integer: %s", seed)
		}
		c.Seed = v
		return nil
	}
}

// Output sets the image file name
func Output(name string) ConfigOption {
	return func(c *Config) error {
		c.Output = strings.TrimSpace(name)
		return nil
	}
}

// OutputDir sets the directory the image is written to.  The directory must already exist.
func OutputDir(dir string) ConfigOption {
	return func(c *Config) error {
		info, err := os.Stat(dir)
		if err != nil {
			return fmt.Errorf("output directory %s: %v", dir, err)
		}
		if !info.IsDir() {
			return fmt.Errorf("output directory %s is not a directory", dir)
		}
		c.OutputDir = dir
		return nil
	}
}

// Bins sets the number of histogram bins for the sampling demo
func Bins(bins string) ConfigOption {
	return func(c *Config) error {
		v, err := strconv.Atoi(bins)
		if err != nil {
			return fmt.Errorf("could not convert bins to integer: %s", bins)
		}
		if v < 1 {
			return fmt.Errorf("bins must be >= 1, got %d", v)
		}
		c.Bins = v
		return nil
	}
}

// Width sets the image width in centimeters
func Width(w string) ConfigOption {
	return func(c *Config) error {
		v, err := parseLength("width", w)
		if err != nil {
			return err
		}
		c.Width = v
		return nil
	}
}

// Height sets the image height in centimeters
func Height(h string) ConfigOption {
	return func(c *Config) error {
		v, err := parseLength("height", h)
		if err != nil {
			return err
		}
		c.Height = v
		return nil
	}
}

// Quiet suppresses the run summary
func Quiet() ConfigOption {
	return func(c *Config) error {
		c.Quiet = true
		return nil
	}
}

func logOut(w io.Writer) ConfigOption {
	return func(c *Config) error {
		c.out = w
		return nil
	}
}

func parseLength(name string, value string) (float64, error) {
	v, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return 0, fmt.Errorf("could not convert %s to a number: %s", name, value)
	}
	if v <= 0 {
		return 0, fmt.Errorf("%s must be positive, got %g", name, v)
	}
	return v, nil
}
