package montecarlo

import (
	"fmt"
	"io/ioutil"
	"os"
	"strconv"
	"strings"

	"github.com/BTBurke/montecarlo/pkg/render"
	"github.com/go-yaml/yaml"
	"github.com/spf13/pflag"
)

type options struct {
	options []ConfigOption
	err     error
}

// ParseCommandLine configures a demo from command line options or from a YAML configuration file passed with
// the -c flag.  Running without arguments uses the defaults.  Returns a slice of functional options that can
// be applied to the configuration.
func ParseCommandLine(demo Demo) ([]ConfigOption, error) {
	pf := createFlagSet(demo)
	return parse(os.Args[1:], pf)
}

func parse(args []string, pf *pflag.FlagSet) ([]ConfigOption, error) {
	options := options{}
	if err := pf.ParseAll(args, parseFlag(&options)); err != nil {
		return options.options, err
	}
	if len(pf.Args()) > 0 {
		return options.options, fmt.Errorf("unexpected arguments: %s", strings.Join(pf.Args(), " "))
	}
	return options.options, options.err
}

func createFlagSet(demo Demo) *pflag.FlagSet {
	pf := pflag.NewFlagSet(demo.String(), pflag.ContinueOnError)
	pf.Usage = func() {
		fmt.Printf("Usage of %s:\n%s <options>\n", demo, demo)
		fmt.Printf("\n%s", pf.FlagUsagesWrapped(10))
		fmt.Printf("\nWith no options, draws %d samples with seed %d and writes %s to the current directory.\n", DefaultSamples, DefaultSeed, demo.DefaultOutput())
	}

	pf.StringP("config", "c", "", "Use yaml configuration file")
	pf.IntP("samples", "n", DefaultSamples, "Number of uniform random draws")
	pf.Int64P("seed", "s", DefaultSeed, "Seed of the uniform random source")
	pf.StringP("output", "o", demo.DefaultOutput(), "Image file name.  The extension selects the format (png, svg, pdf).")
	pf.String("output-dir", ".", "Directory to write the image to")
	pf.Float64("width", render.DefaultWidthCm, "Image width in centimeters")
	pf.Float64("height", render.DefaultHeightCm, "Image height in centimeters")
	pf.BoolP("quiet", "q", false, "Do not print the run summary")
	if demo == Inverse {
		pf.Int("bins", render.DefaultBins, "Number of histogram bins")
	}

	return pf
}

func parseFlag(o *options) func(*pflag.Flag, string) error {
	return func(flag *pflag.Flag, value string) error {
		switch flag.Name {
		case "config":
			opts, err := parseFromFile(value)
			if err != nil {
				o.err = err
				return err
			}
			o.options = append(o.options, opts...)
		default:
			option, err := handleOption(flag.Name, value)
			if err != nil {
				o.err = err
				return err
			}
			o.options = append(o.options, option)
		}
		return nil
	}
}

func handleOption(name string, value string) (ConfigOption, error) {
	switch name {
	case "samples":
		return Samples(value), nil
	case "seed":
		return Seed(value), nil
	case "output":
		return Output(value), nil
	case "output-dir":
		return OutputDir(value), nil
	case "bins":
		return Bins(value), nil
	case "width":
		return Width(value), nil
	case "height":
		return Height(value), nil
	case "quiet":
		if value == "false" {
			return func(c *Config) error { c.Quiet = false; return nil }, nil
		}
		return Quiet(), nil
	default:
		return nil, fmt.Errorf("Unknown option: %s", name)
	}
}

func parseFromFile(fpath string) ([]ConfigOption, error) {
	var options []ConfigOption
	data, err := ioutil.ReadFile(fpath)
	if err != nil {
		return options, err
	}

	cfg := make(map[string]interface{})
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return options, err
	}
	for k, v := range cfg {
		var value string
		switch t := v.(type) {
		case string:
			value = t
		case int:
			value = strconv.Itoa(t)
		case float64:
			value = strconv.FormatFloat(t, 'g', -1, 64)
		case bool:
			// boolean options only apply when set to true
			if !t {
				continue
			}
		default:
			return options, fmt.Errorf("Could not process config key %s, unknown type", k)
		}
		opt, err := handleOption(k, value)
		if err != nil {
			return options, err
		}
		options = append(options, opt)
	}
	return options, nil
}
