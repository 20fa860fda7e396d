package montecarlo

import (
	"fmt"
	"math"

	"github.com/BTBurke/montecarlo/pkg/metric"
	"github.com/BTBurke/montecarlo/pkg/render"
	"github.com/BTBurke/montecarlo/pkg/rng"
	"github.com/BTBurke/montecarlo/pkg/stat"
)

// ExponentialRate is the rate of the distribution drawn by the sampling demo
const ExponentialRate float64 = 1.0

// InverseResult is the outcome of the inverse transform sampling demo
type InverseResult struct {
	Samples *metric.Series
	Summary stat.Summary
	Path    string
}

// IntegralResult is the outcome of the Monte Carlo integration demo.  Estimates holds the running estimate after
// each sample; its last value is the final estimate.
type IntegralResult struct {
	Points    *metric.Series
	Weighted  *metric.Series
	Estimates *metric.Series
	Estimate  float64
	Summary   stat.Summary
	Path      string
}

// RunInverse draws cfg.Samples values from Exponential(1) by inverse transform sampling, renders their density
// histogram and writes it to cfg.Path()
func RunInverse(cfg *Config) (*InverseResult, error) {
	if err := checkDemo(cfg, Inverse); err != nil {
		return nil, err
	}
	density, err := stat.NewExponential(ExponentialRate)
	if err != nil {
		return nil, err
	}

	sampler := rng.NewExponentialRNG(ExponentialRate, rng.NewStandardUniformRNG(cfg.Seed))
	name := runName("exponential_samples", cfg)
	samples, err := metric.FromValues(name, rng.Sample(sampler, cfg.Samples))
	if err != nil {
		return nil, fmt.Errorf("unable to record samples: %v", err)
	}
	values := samples.Values()

	fig, err := render.Histogram(values, density.Prob,
		render.WithTitle(fmt.Sprintf("Inverse transform sampling of %s, N=%d", density, cfg.Samples)),
		render.WithLabels("x", "density"),
		render.WithLegend("x = -ln(1-u)"),
		render.WithBins(cfg.Bins),
		render.WithSize(cfg.Width, cfg.Height),
	)
	if err != nil {
		return nil, RenderError{Path: cfg.Path(), err: err}
	}
	if err := fig.Save(cfg.Path()); err != nil {
		return nil, RenderError{Path: cfg.Path(), err: err}
	}

	res := &InverseResult{
		Samples: samples,
		Summary: stat.Summarize(values, density.Mean()),
		Path:    cfg.Path(),
	}
	if !cfg.Quiet {
		if err := writeSummary(cfg.out,
			"demo", cfg.Demo,
			"series", name,
			"samples", res.Summary.N,
			"seed", cfg.Seed,
			"mean", rounded(res.Summary.Mean),
			"expected", rounded(density.Mean()),
			"stderr", rounded(res.Summary.StdErr),
			"file", res.Path,
		); err != nil {
			return nil, err
		}
	}
	return res, nil
}

// RunIntegral estimates the integral of sin(x)^2 over [0, pi] with cfg.Samples uniform draws, renders the running
// estimate against the true value pi/2 and writes it to cfg.Path()
func RunIntegral(cfg *Config) (*IntegralResult, error) {
	if err := checkDemo(cfg, Integral); err != nil {
		return nil, err
	}
	pdf, err := stat.NewUniform(0, math.Pi)
	if err != nil {
		return nil, err
	}
	estimator, err := stat.NewIntegralEstimator(stat.SinSquared, pdf)
	if err != nil {
		return nil, err
	}

	min, max := pdf.Bounds()
	xs := rng.Sample(rng.NewUniformRNG(min, max, cfg.Seed), cfg.Samples)
	weighted, estimates, err := estimator.Estimate(xs)
	if err != nil {
		return nil, fmt.Errorf("unable to estimate integral: %v", err)
	}

	res := &IntegralResult{
		Estimate: estimates[len(estimates)-1],
		Summary:  stat.Summarize(weighted, stat.SinSquaredIntegral),
		Path:     cfg.Path(),
	}
	if res.Points, err = metric.FromValues(runName("sample_points", cfg).With("pdf", pdf.String()), xs); err != nil {
		return nil, fmt.Errorf("unable to record samples: %v", err)
	}
	if res.Weighted, err = metric.FromValues(runName("integrand", cfg).Annotate("weighted"), weighted); err != nil {
		return nil, fmt.Errorf("unable to record weighted values: %v", err)
	}
	name := runName("integral_estimate", cfg).Annotate("cumulative")
	if res.Estimates, err = metric.FromValues(name, estimates); err != nil {
		return nil, fmt.Errorf("unable to record estimates: %v", err)
	}

	fig, err := render.Convergence(estimates, stat.SinSquaredIntegral,
		render.WithTitle(fmt.Sprintf("Monte Carlo estimate of the integral of sin(x)^2 on [0, pi], N=%d", cfg.Samples)),
		render.WithLabels("N", "(1/N) Σ f(x_i)/p(x_i)"),
		render.WithLegend("estimate"),
		render.WithSize(cfg.Width, cfg.Height),
	)
	if err != nil {
		return nil, RenderError{Path: cfg.Path(), err: err}
	}
	if err := fig.Save(cfg.Path()); err != nil {
		return nil, RenderError{Path: cfg.Path(), err: err}
	}

	if !cfg.Quiet {
		if err := writeSummary(cfg.out,
			"demo", cfg.Demo,
			"series", name,
			"samples", cfg.Samples,
			"seed", cfg.Seed,
			"estimate", rounded(res.Estimate),
			"expected", rounded(stat.SinSquaredIntegral),
			"abs_error", rounded(math.Abs(res.Estimate-stat.SinSquaredIntegral)),
			"stderr", rounded(res.Summary.StdErr),
			"file", res.Path,
		); err != nil {
			return nil, err
		}
	}
	return res, nil
}

func runName(base string, cfg *Config) metric.Name {
	return metric.NewName(base, nil).WithInt("n", int64(cfg.Samples)).WithInt("seed", cfg.Seed)
}

func checkDemo(cfg *Config, demo Demo) error {
	if cfg == nil {
		return fmt.Errorf("%s requires a configuration", demo)
	}
	if cfg.Demo != demo {
		return fmt.Errorf("configuration is for %s, not %s", cfg.Demo, demo)
	}
	if cfg.Samples < 1 {
		return ConfigError{Errs: []error{fmt.Errorf("samples must be >= 1, got %d", cfg.Samples)}}
	}
	return nil
}
