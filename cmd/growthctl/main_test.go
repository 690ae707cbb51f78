package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/SscSPs/growth_estimator/internal/apperrors"
	"github.com/SscSPs/growth_estimator/internal/dto"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testHistory = `Year,Revenue,Net Income,Market Share
2022,100,10,5
2023,121,10,5
`

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func scenarioYAML(history string, inflation string) string {
	return `history: ` + history + `
macro:
  inflation: ` + inflation + `
  government_policy: stable
weights:
  threat_of_new_entrants: 1
  threat_of_substitutes: 1
  bargaining_power_of_buyers: 1
  bargaining_power_of_suppliers: 1
  rivalry_among_existing_competitors: 1
  exchange_rate_effect: 1
`
}

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out, errOut bytes.Buffer
	cmd := newRootCmd(&out, &errOut)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestEstimate_Text(t *testing.T) {
	dir := t.TempDir()
	csv := writeFile(t, dir, "acme.csv", testHistory)
	scenario := writeFile(t, dir, "scenario.yaml", scenarioYAML(csv, "0"))

	out, err := run(t, "estimate", "--scenario", scenario)

	require.NoError(t, err)
	assert.Contains(t, out, "Estimated growth rate for company: 9.87%")
	assert.Contains(t, out, "Revenue CAGR")
	assert.Contains(t, out, "10.00%")
	assert.Contains(t, out, "stable (not scored)")
	assert.NotContains(t, out, "warning")
}

func TestEstimate_JSONAndStrict(t *testing.T) {
	dir := t.TempDir()
	csv := writeFile(t, dir, "acme.csv", testHistory)
	scenario := writeFile(t, dir, "scenario.yaml", scenarioYAML("unused.csv", "50"))

	out, err := run(t, "estimate", "-s", scenario, "--history", csv, "--json")
	require.NoError(t, err)
	var loose dto.EstimateResponse
	require.NoError(t, json.Unmarshal([]byte(out), &loose))
	assert.True(t, loose.IntensityOutOfRange)
	assert.InDelta(t, 10.4/6, loose.Intensity, 1e-12)

	out, err = run(t, "estimate", "-s", scenario, "--history", csv, "--json", "--strict")
	require.NoError(t, err)
	var strict dto.EstimateResponse
	require.NoError(t, json.Unmarshal([]byte(out), &strict))
	assert.True(t, strict.Strict)
	assert.Equal(t, 1.0, strict.Intensity)
	assert.Equal(t, "8.00%", strict.GrowthRateDisplay)
}

func TestEstimate_OutOfRangeWarning(t *testing.T) {
	dir := t.TempDir()
	csv := writeFile(t, dir, "acme.csv", testHistory)
	scenario := writeFile(t, dir, "scenario.yaml", scenarioYAML(csv, "50"))

	out, err := run(t, "estimate", "-s", scenario)

	require.NoError(t, err)
	assert.Contains(t, out, "warning: forces intensity is outside [0,1]")
}

func TestEstimate_Errors(t *testing.T) {
	t.Setenv("PGSQL_URL", "")
	dir := t.TempDir()
	scenario := writeFile(t, dir, "scenario.yaml", scenarioYAML("acme.txt", "0"))

	_, err := run(t, "estimate")
	assert.ErrorContains(t, err, "scenario")

	_, err = run(t, "estimate", "-s", scenario)
	assert.ErrorIs(t, err, apperrors.ErrValidation)

	_, err = run(t, "estimate", "-s", scenario, "--history", filepath.Join(dir, "missing.csv"))
	assert.ErrorIs(t, err, apperrors.ErrNotFound)

	_, err = run(t, "estimate", "-s", scenario, "--history", "db://ACME")
	assert.ErrorIs(t, err, apperrors.ErrValidation, "db:// sources need PGSQL_URL")
}

func TestForces(t *testing.T) {
	out, err := run(t, "forces")
	require.NoError(t, err)
	assert.Contains(t, out, "threat_of_new_entrants")
	assert.Contains(t, out, "16.67%")
	assert.Contains(t, out, "divided by 5")

	dir := t.TempDir()
	scenario := writeFile(t, dir, "scenario.yaml", `
weights:
  exchange_rate_effect: 3
  rivalry_among_existing_competitors: 1
`)
	out, err = run(t, "forces", "--scenario", scenario)
	require.NoError(t, err)
	assert.Contains(t, out, "75.00%")
	assert.Contains(t, out, "25.00%")
}
