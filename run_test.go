package montecarlo

import (
	"bytes"
	"errors"
	"math"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/go-logfmt/logfmt"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testConfig(t *testing.T, demo Demo, opts ...ConfigOption) (*Config, *bytes.Buffer) {
	var b bytes.Buffer
	cfg, errs := NewConfig(demo, append([]ConfigOption{OutputDir(t.TempDir()), logOut(&b)}, opts...)...)
	require.Len(t, errs, 0)
	return cfg, &b
}

func assertFileNotEmpty(t *testing.T, path string) {
	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.True(t, info.Size() > 0, "%s is empty", path)
}

// decodeSummary reads the single logfmt record written by a run
func decodeSummary(t *testing.T, b *bytes.Buffer) map[string]string {
	d := logfmt.NewDecoder(b)
	require.True(t, d.ScanRecord())
	out := make(map[string]string)
	for d.ScanKeyval() {
		out[string(d.Key())] = string(d.Value())
	}
	require.NoError(t, d.Err())
	return out
}

func TestRunInverse(t *testing.T) {
	cfg, b := testConfig(t, Inverse)
	res, err := RunInverse(cfg)
	require.NoError(t, err)

	values := res.Samples.Values()
	assert.Len(t, values, 10000)
	for _, v := range values {
		assert.True(t, v >= 0, "sample %f is negative", v)
	}
	assert.InDelta(t, 1.0, res.Summary.Mean, 0.1)
	assert.Equal(t, filepath.Join(cfg.OutputDir, "inverse_method.png"), res.Path)
	assertFileNotEmpty(t, res.Path)

	summary := decodeSummary(t, b)
	assert.Equal(t, "inverse", summary["demo"])
	assert.Equal(t, "10000", summary["samples"])
	assert.Equal(t, "0", summary["seed"])
	assert.Equal(t, res.Path, summary["file"])
	assert.Equal(t, "exponential_samples[n=10000 seed=0]", summary["series"])
	assert.Equal(t, "1.000000", summary["expected"])
	assert.Len(t, strings.SplitN(summary["mean"], ".", 2)[1], 6)
}

func TestRunIntegral(t *testing.T) {
	cfg, b := testConfig(t, Integral)
	res, err := RunIntegral(cfg)
	require.NoError(t, err)

	assert.Equal(t, 10000, res.Estimates.Len())
	assert.Equal(t, 10000, res.Weighted.Len())
	assert.InDelta(t, math.Pi/2, res.Estimate, 0.05)
	last, ok := res.Estimates.Last()
	require.True(t, ok)
	assert.Equal(t, res.Estimate, last)
	assert.InDelta(t, res.Estimate, res.Summary.Mean, 1e-9)
	for _, x := range res.Points.Values() {
		assert.True(t, x >= 0 && x < math.Pi)
	}
	assert.Equal(t, filepath.Join(cfg.OutputDir, "mcintegral.png"), res.Path)
	assertFileNotEmpty(t, res.Path)

	summary := decodeSummary(t, b)
	assert.Equal(t, "mcintegral", summary["demo"])
	assert.Equal(t, "integral_estimate[n=10000 seed=0 @cumulative]", summary["series"])
	assert.Equal(t, "1.570796", summary["expected"])
}

func TestRunSmallSamples(t *testing.T) {
	for _, n := range []string{"1", "2", "37"} {
		t.Run("n="+n, func(t *testing.T) {
			cfg, _ := testConfig(t, Inverse, Samples(n), Quiet())
			inv, err := RunInverse(cfg)
			require.NoError(t, err)
			assert.Equal(t, cfg.Samples, inv.Samples.Len())

			cfg, _ = testConfig(t, Integral, Samples(n), Quiet())
			integ, err := RunIntegral(cfg)
			require.NoError(t, err)
			assert.Equal(t, cfg.Samples, integ.Estimates.Len())
		})
	}
}

func TestRunIdempotent(t *testing.T) {
	cfg1, _ := testConfig(t, Inverse, Seed("11"), Samples("500"))
	cfg2, _ := testConfig(t, Inverse, Seed("11"), Samples("500"))
	a, err := RunInverse(cfg1)
	require.NoError(t, err)
	b, err := RunInverse(cfg2)
	require.NoError(t, err)
	assert.Equal(t, a.Samples.Values(), b.Samples.Values())

	cfg3, _ := testConfig(t, Integral, Seed("11"), Samples("500"))
	cfg4, _ := testConfig(t, Integral, Seed("11"), Samples("500"))
	c, err := RunIntegral(cfg3)
	require.NoError(t, err)
	d, err := RunIntegral(cfg4)
	require.NoError(t, err)
	assert.Equal(t, c.Estimates.Values(), d.Estimates.Values())

	cfg5, _ := testConfig(t, Integral, Seed("12"), Samples("500"))
	e, err := RunIntegral(cfg5)
	require.NoError(t, err)
	assert.NotEqual(t, c.Estimates.Values(), e.Estimates.Values())
}

func TestRunQuiet(t *testing.T) {
	cfg, b := testConfig(t, Integral, Samples("10"), Quiet())
	_, err := RunIntegral(cfg)
	require.NoError(t, err)
	assert.Equal(t, 0, b.Len())
}

func TestRunErrors(t *testing.T) {
	cfg, _ := testConfig(t, Inverse)
	_, err := RunIntegral(cfg)
	assert.Error(t, err)

	_, err = RunInverse(nil)
	assert.Error(t, err)

	cfg, _ = testConfig(t, Inverse, Samples("10"))
	cfg.Samples = 0
	_, err = RunInverse(cfg)
	var cerr ConfigError
	assert.True(t, errors.As(err, &cerr))

	// output directory removed after configuration
	cfg, _ = testConfig(t, Integral, Samples("10"))
	cfg.OutputDir = filepath.Join(cfg.OutputDir, "missing")
	_, err = RunIntegral(cfg)
	var rerr RenderError
	require.True(t, errors.As(err, &rerr))
	assert.True(t, strings.HasSuffix(rerr.Path, "mcintegral.png"))
}
