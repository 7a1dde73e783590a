package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/ajroetker/go-densead/pvt"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sample = `
precision: float32
correlation: vasquez-beggs
sensitivities: true
workers: 2
solver:
  upper: 8000
  rel_tol: 1.0e-6
  max_iterations: 30
  guess: 1500
cases:
  - name: light
    api: 35
    gas_gravity: 0.75
    temperature: 200
    gor: 500
  - name: heavy
    correlation: standing
    api: 22
    gas_gravity: 0.8
    temperature: 170
    gor: 150
    guess: 900
`

func writeFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "case.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadFile(t *testing.T) {
	cfg, err := LoadFile(writeFile(t, sample))
	require.NoError(t, err)

	assert.Equal(t, Float32, cfg.Precision)
	assert.True(t, cfg.Sensitivities)
	assert.Equal(t, 2, cfg.Workers)
	require.Len(t, cfg.Cases, 2)

	light, heavy := cfg.Cases[0], cfg.Cases[1]
	assert.Equal(t, pvt.VasquezBeggs, light.CorrelationOf())
	assert.Equal(t, 1500.0, light.Guess)
	assert.Equal(t, pvt.Standing, heavy.CorrelationOf())
	assert.Equal(t, 900.0, heavy.Guess)
	assert.Equal(t, pvt.Properties{API: 22, GasGravity: 0.8, Temperature: 170}, heavy.Properties())

	opts := cfg.Solver.Options(nil)
	assert.Equal(t, 14.7, opts.Lower, "lower keeps its default")
	assert.Equal(t, 8000.0, opts.Upper)
	assert.Equal(t, 1e-6, opts.RelTol)
	assert.Equal(t, 30, opts.MaxIterations)
}

func TestParseDefaults(t *testing.T) {
	cfg, err := Parse([]byte(`
cases:
  - {name: a, api: 30, gas_gravity: 0.7, temperature: 150, gor: 300}
`))
	require.NoError(t, err)
	assert.Equal(t, Float64, cfg.Precision)
	assert.Equal(t, "standing", cfg.Cases[0].Correlation)
	assert.Equal(t, 1000.0, cfg.Cases[0].Guess)
	assert.Equal(t, 0, cfg.Workers)
}

func TestParseOpenUpperBracket(t *testing.T) {
	cfg, err := Parse([]byte(`
solver: {lower: 100, upper: 0}
cases:
  - {name: a, api: 30, gas_gravity: 0.7, temperature: 150, gor: 300}
`))
	require.NoError(t, err)
	assert.Equal(t, 0.0, cfg.Solver.Options(nil).Upper, "zero upper is left to the solver default")
}

func TestParseInvalid(t *testing.T) {
	tests := map[string]string{
		"unknown key":       "cases: []\ntolerance: 3\n",
		"no cases":          "precision: float64\n",
		"empty file":        "",
		"bad precision":     "precision: float16\ncases: [{name: a, api: 30, gas_gravity: 0.7, temperature: 150, gor: 300}]\n",
		"bad correlation":   "cases: [{name: a, correlation: glaso, api: 30, gas_gravity: 0.7, temperature: 150, gor: 300}]\n",
		"duplicate name":    "cases: [{name: a, api: 30, gas_gravity: 0.7, temperature: 150, gor: 300}, {name: a, api: 31, gas_gravity: 0.7, temperature: 150, gor: 300}]\n",
		"missing name":      "cases: [{api: 30, gas_gravity: 0.7, temperature: 150, gor: 300}]\n",
		"zero gas gravity":  "cases: [{name: a, api: 30, temperature: 150, gor: 300}]\n",
		"negative gor":      "cases: [{name: a, api: 30, gas_gravity: 0.7, temperature: 150, gor: -1}]\n",
		"empty bracket":     "solver: {lower: 100, upper: 50}\ncases: [{name: a, api: 30, gas_gravity: 0.7, temperature: 150, gor: 300}]\n",
		"negative workers":  "workers: -1\ncases: [{name: a, api: 30, gas_gravity: 0.7, temperature: 150, gor: 300}]\n",
		"negative max iter": "solver: {max_iterations: -2}\ncases: [{name: a, api: 30, gas_gravity: 0.7, temperature: 150, gor: 300}]\n",
	}
	for name, content := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := Parse([]byte(content))
			require.ErrorIs(t, err, ErrInvalid)
		})
	}
}

func TestLoad_RequiresEnv(t *testing.T) {
	t.Setenv(EnvVar, "")
	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), EnvVar)
}

func TestLoad_WithEnv(t *testing.T) {
	t.Setenv(EnvVar, writeFile(t, sample))
	cfg, err := Load()
	require.NoError(t, err)
	assert.Len(t, cfg.Cases, 2)
}

func TestLoadFile_Missing(t *testing.T) {
	_, err := LoadFile(filepath.Join(t.TempDir(), "absent.yaml"))
	require.ErrorIs(t, err, os.ErrNotExist)
}
