package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault_IsValid(t *testing.T) {
	assert.NoError(t, Default().Validate())
}

func TestLoad_EmptyPathReturnsDefault(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoad_OverlaysYaml(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	body := `
pipeline:
  log_level: debug
scoring:
  filler_weight: 2.0
pauses:
  significant_pause_sec: 1.5
`
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "debug", cfg.Pipeline.LogLvl)
	assert.InDelta(t, 2.0, cfg.Scoring.FillerWeight, 1e-9)
	assert.InDelta(t, 1.5, cfg.Pauses.SignificantPauseSec, 1e-9)
	assert.InDelta(t, 120.0, cfg.Pace.OptimalLowWPM, 1e-9, "untouched fields keep their defaults")
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}

func TestLoad_RejectsInvalidThresholds(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	body := `
pauses:
  significant_pause_sec: 0.1
`
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))

	_, err := Load(path)
	assert.ErrorContains(t, err, "significant_pause_sec")
}

func TestValidate_BandOrdering(t *testing.T) {
	cfg := Default()
	cfg.Scoring.BandGoodMin = cfg.Scoring.BandExcellentMin

	assert.Error(t, cfg.Validate())
}

func TestValidate_ConfidenceOrdering(t *testing.T) {
	cfg := Default()
	cfg.Confidence.MediumMaxSec = 5

	assert.Error(t, cfg.Validate())
}
