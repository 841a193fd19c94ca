package main

import (
	"bytes"
	"encoding/json"
	"path/filepath"
	"testing"

	"FxRisk/internal/domain/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := newRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	// a missing config file falls back to defaults
	cmd.SetArgs(append(args, "--config", filepath.Join(t.TempDir(), "none.yaml")))
	err := cmd.Execute()
	return out.String(), err
}

func TestVersion(t *testing.T) {
	out, err := run(t, "version")
	require.NoError(t, err)
	assert.Contains(t, out, "fxrisk dev")
}

func TestNewsCommand(t *testing.T) {
	out, err := run(t, "news", "--date", "2025-07-16")
	require.NoError(t, err)

	var res models.NewsResult
	require.NoError(t, json.Unmarshal([]byte(out), &res))
	assert.Equal(t, "2025-07-16", res.Date)
	assert.Equal(t, models.LabelPositive, res.Label)
}

func TestAnalyzeCommand(t *testing.T) {
	out, err := run(t, "analyze", "--direction", "import", "--amount", "5000")
	require.NoError(t, err)

	var res models.AnalysisResult
	require.NoError(t, json.Unmarshal([]byte(out), &res))
	assert.Equal(t, models.DirectionImport, res.Direction)
	assert.Equal(t, 5000.0, res.AmountUSD)
	assert.Equal(t, 0.35, res.Probabilities[models.ScenarioUp])
}

func TestAnalyzeCommandRejectsDirection(t *testing.T) {
	_, err := run(t, "analyze", "--direction", "barter")
	assert.Error(t, err)
}
