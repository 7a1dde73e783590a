package main

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/ajroetker/go-densead/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const cases = `
solver:
  lower: 14.7
  upper: 10000
cases:
  - {name: light, api: 35, gas_gravity: 0.75, temperature: 200, gor: 500}
  - {name: heavy, correlation: vasquez-beggs, api: 25, gas_gravity: 0.8, temperature: 180, gor: 250}
`

func writeCases(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "cases.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestRunText(t *testing.T) {
	var stdout, stderr bytes.Buffer
	err := run(context.Background(), []string{"--config", writeCases(t, cases)}, &stdout, &stderr)
	require.NoError(t, err, stderr.String())

	out := stdout.String()
	assert.Contains(t, out, "CASE")
	assert.Contains(t, out, "light")
	assert.Contains(t, out, "2205.28")
	assert.Contains(t, out, "vasquez-beggs")
	assert.NotContains(t, out, "DP/DAPI")
}

func TestRunJSONSensitivities(t *testing.T) {
	var stdout, stderr bytes.Buffer
	args := []string{"-c", writeCases(t, cases), "--format", "json", "--sensitivities", "--workers", "1"}
	require.NoError(t, run(context.Background(), args, &stdout, &stderr), stderr.String())

	var rows []row
	require.NoError(t, json.Unmarshal(stdout.Bytes(), &rows))
	require.Len(t, rows, 2)
	assert.InDelta(t, 2205.2815, rows[0].Pressure, 1e-3)
	assert.Greater(t, rows[0].DGOR, 0.0)
	assert.Less(t, rows[0].DGasGravity, 0.0)
	assert.Empty(t, rows[1].Err)
}

func TestRunSensitivitiesWorkers(t *testing.T) {
	content := cases + `
  - {name: light2, api: 40, gas_gravity: 0.7, temperature: 150, gor: 800}
  - {name: heavy2, correlation: vb, api: 22, gas_gravity: 0.85, temperature: 220, gor: 120}
  - {name: light3, api: 33, gas_gravity: 0.72, temperature: 170, gor: 300}
`
	path := writeCases(t, content)

	solve := func(workers string) []row {
		t.Helper()
		var stdout, stderr bytes.Buffer
		args := []string{"-c", path, "--format", "json", "--sensitivities", "--workers", workers}
		require.NoError(t, run(context.Background(), args, &stdout, &stderr), stderr.String())
		var rows []row
		require.NoError(t, json.Unmarshal(stdout.Bytes(), &rows))
		return rows
	}

	serial := solve("1")
	parallel := solve("4")
	require.Len(t, serial, 5)
	assert.Equal(t, serial, parallel)
	for _, r := range parallel {
		assert.Empty(t, r.Err, r.Name)
		assert.NotZero(t, r.DGOR, r.Name)
	}
}

func TestSolveCasesSensitivitiesCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	cfg := &config.Config{Sensitivities: true, Workers: 2, Solver: config.Default().Solver}
	cfg.Cases = []config.Case{{Name: "a", API: 35, GasGravity: 0.75, Temperature: 200, GOR: 500, Guess: 1000}}
	_, err := solveCases[float64](ctx, cfg, slog.New(slog.DiscardHandler))
	require.ErrorIs(t, err, context.Canceled)
}

func TestRunFloat32(t *testing.T) {
	var stdout, stderr bytes.Buffer
	path := writeCases(t, "precision: float32\n"+cases)
	require.NoError(t, run(context.Background(), []string{"-c", path}, &stdout, &stderr), stderr.String())
	assert.Contains(t, stdout.String(), "heavy")
}

func TestRunReportsFailures(t *testing.T) {
	var stdout, stderr bytes.Buffer
	path := writeCases(t, `
solver: {lower: 14.7, upper: 100, max_iterations: 5}
cases:
  - {name: capped, api: 35, gas_gravity: 0.75, temperature: 200, gor: 500}
`)
	err := run(context.Background(), []string{"-c", path, "--verbose"}, &stdout, &stderr)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "1 of 1 cases failed")
	assert.Contains(t, stdout.String(), "capped")
	assert.Contains(t, stderr.String(), "did not converge")
	assert.Contains(t, stderr.String(), "newton iteration")
}

func TestRunFlagErrors(t *testing.T) {
	for _, args := range [][]string{
		{"--log-format", "xml"},
		{"--format", "csv", "-c", "x"},
		{"extra"},
		{"--no-such-flag"},
	} {
		var stdout, stderr bytes.Buffer
		err := run(context.Background(), args, &stdout, &stderr)
		assert.Error(t, err, strings.Join(args, " "))
	}
}
