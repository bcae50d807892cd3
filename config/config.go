package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Pipeline holds app-level settings.
type Pipeline struct {
	Name    string `yaml:"name"`
	Version string `yaml:"version"`
	LogLvl  string `yaml:"log_level"`
}

// Fillers controls the filler classifier.
type Fillers struct {
	// Minimum rune length for a token to register as a repetition.
	MinRepetitionLen int `yaml:"min_repetition_len"`
}

// Pauses controls pause detection and the qualitative pause bands.
type Pauses struct {
	MinPauseSec         float64 `yaml:"min_pause_sec"`
	SignificantPauseSec float64 `yaml:"significant_pause_sec"`
	// Average-duration bands: quick < moderate < long < extensive.
	AvgQuickMaxSec    float64 `yaml:"avg_quick_max_sec"`
	AvgModerateMaxSec float64 `yaml:"avg_moderate_max_sec"`
	AvgLongMaxSec     float64 `yaml:"avg_long_max_sec"`
	// Pauses-per-question bands.
	FreqSmoothMax     float64 `yaml:"freq_smooth_max"`
	FreqOccasionalMax float64 `yaml:"freq_occasional_max"`
	FreqFrequentMax   float64 `yaml:"freq_frequent_max"`
}

// Pace holds the qualitative words-per-minute band.
type Pace struct {
	OptimalLowWPM  float64 `yaml:"optimal_low_wpm"`
	OptimalHighWPM float64 `yaml:"optimal_high_wpm"`
}

// Scoring holds the fluency score coefficients and caps.
type Scoring struct {
	FillerWeight float64 `yaml:"filler_weight"`

	SilencePenaltyWeight float64 `yaml:"silence_penalty_weight"`
	SilencePenaltyCap    float64 `yaml:"silence_penalty_cap"`

	PausePenaltyPerSignificant float64 `yaml:"pause_penalty_per_significant"`
	PausePenaltyCap            float64 `yaml:"pause_penalty_cap"`

	// The rate penalty kicks in outside [SlowKneeWPM, FastKneeWPM],
	// growing linearly with distance from the knee.
	SlowKneeWPM    float64 `yaml:"slow_knee_wpm"`
	SlowPenaltyDiv float64 `yaml:"slow_penalty_div"`
	FastKneeWPM    float64 `yaml:"fast_knee_wpm"`
	FastPenaltyDiv float64 `yaml:"fast_penalty_div"`
	RatePenaltyCap float64 `yaml:"rate_penalty_cap"`

	// Adjusted-score bands.
	BandExcellentMin float64 `yaml:"band_excellent_min"`
	BandGoodMin      float64 `yaml:"band_good_min"`
	BandFairMin      float64 `yaml:"band_fair_min"`
}

// Confidence holds the response-latency tier thresholds.
type Confidence struct {
	HighMaxSec   float64 `yaml:"high_max_sec"`
	MediumMaxSec float64 `yaml:"medium_max_sec"`
}

// Durations holds the answer-length assessment bands.
type Durations struct {
	VeryBriefMaxSec   float64 `yaml:"very_brief_max_sec"`
	BriefMaxSec       float64 `yaml:"brief_max_sec"`
	AppropriateMaxSec float64 `yaml:"appropriate_max_sec"`
	DetailedMaxSec    float64 `yaml:"detailed_max_sec"`
}

type Root struct {
	Pipeline   Pipeline   `yaml:"pipeline"`
	Fillers    Fillers    `yaml:"fillers"`
	Pauses     Pauses     `yaml:"pauses"`
	Pace       Pace       `yaml:"pace"`
	Scoring    Scoring    `yaml:"scoring"`
	Confidence Confidence `yaml:"confidence"`
	Durations  Durations  `yaml:"durations"`
	Paths      struct {
		Outputs string `yaml:"outputs"`
	} `yaml:"paths"`
}

// Default returns the calibrated configuration. Every threshold here is a
// named policy constant, not a derived value.
func Default() *Root {
	r := &Root{
		Pipeline: Pipeline{Name: "fluency-pipeline", Version: "0.1.0", LogLvl: "info"},
		Fillers:  Fillers{MinRepetitionLen: 3},
		Pauses: Pauses{
			MinPauseSec:         0.5,
			SignificantPauseSec: 2.0,
			AvgQuickMaxSec:      1.0,
			AvgModerateMaxSec:   2.0,
			AvgLongMaxSec:       3.0,
			FreqSmoothMax:       2,
			FreqOccasionalMax:   4,
			FreqFrequentMax:     6,
		},
		Pace: Pace{OptimalLowWPM: 120, OptimalHighWPM: 180},
		Scoring: Scoring{
			FillerWeight:               1.5,
			SilencePenaltyWeight:       30,
			SilencePenaltyCap:          20,
			PausePenaltyPerSignificant: 5,
			PausePenaltyCap:            15,
			SlowKneeWPM:                100,
			SlowPenaltyDiv:             10,
			FastKneeWPM:                200,
			FastPenaltyDiv:             20,
			RatePenaltyCap:             15,
			BandExcellentMin:           80,
			BandGoodMin:                60,
			BandFairMin:                40,
		},
		Confidence: Confidence{HighMaxSec: 10, MediumMaxSec: 20},
		Durations: Durations{
			VeryBriefMaxSec:   15,
			BriefMaxSec:       30,
			AppropriateMaxSec: 60,
			DetailedMaxSec:    120,
		},
	}
	r.Paths.Outputs = "outputs"
	return r
}

// Load reads a yaml config from path, overlaying Default. An empty path
// returns Default as-is. The result is validated; a bad threshold set is an
// error here, never mid-session.
func Load(path string) (*Root, error) {
	cfg := Default()
	if path != "" {
		f, err := os.Open(filepath.Clean(path))
		if err != nil {
			return nil, fmt.Errorf("config: %w", err)
		}
		defer f.Close()
		if err := yaml.NewDecoder(f).Decode(cfg); err != nil {
			return nil, fmt.Errorf("config %s: %w", path, err)
		}
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (r *Root) Validate() error {
	checks := []struct {
		ok  bool
		msg string
	}{
		{r.Fillers.MinRepetitionLen >= 1, "fillers.min_repetition_len must be >= 1"},
		{r.Pauses.MinPauseSec >= 0, "pauses.min_pause_sec must be >= 0"},
		{r.Pauses.SignificantPauseSec > r.Pauses.MinPauseSec, "pauses.significant_pause_sec must exceed min_pause_sec"},
		{r.Pauses.AvgQuickMaxSec < r.Pauses.AvgModerateMaxSec && r.Pauses.AvgModerateMaxSec < r.Pauses.AvgLongMaxSec,
			"pauses average-duration bands must be strictly increasing"},
		{r.Pauses.FreqSmoothMax < r.Pauses.FreqOccasionalMax && r.Pauses.FreqOccasionalMax < r.Pauses.FreqFrequentMax,
			"pauses frequency bands must be strictly increasing"},
		{r.Pace.OptimalLowWPM > 0 && r.Pace.OptimalLowWPM < r.Pace.OptimalHighWPM, "pace band must satisfy 0 < low < high"},
		{r.Scoring.FillerWeight > 0, "scoring.filler_weight must be > 0"},
		{r.Scoring.SilencePenaltyCap >= 0 && r.Scoring.PausePenaltyCap >= 0 && r.Scoring.RatePenaltyCap >= 0,
			"scoring penalty caps must be >= 0"},
		{r.Scoring.SlowPenaltyDiv > 0 && r.Scoring.FastPenaltyDiv > 0, "scoring rate penalty divisors must be > 0"},
		{r.Scoring.SlowKneeWPM > 0 && r.Scoring.SlowKneeWPM < r.Scoring.FastKneeWPM, "scoring rate knees must satisfy 0 < slow < fast"},
		{r.Scoring.BandFairMin < r.Scoring.BandGoodMin && r.Scoring.BandGoodMin < r.Scoring.BandExcellentMin,
			"scoring bands must be strictly increasing"},
		{r.Confidence.HighMaxSec > 0 && r.Confidence.HighMaxSec < r.Confidence.MediumMaxSec,
			"confidence thresholds must satisfy 0 < high < medium"},
		{r.Durations.VeryBriefMaxSec < r.Durations.BriefMaxSec &&
			r.Durations.BriefMaxSec < r.Durations.AppropriateMaxSec &&
			r.Durations.AppropriateMaxSec < r.Durations.DetailedMaxSec,
			"durations bands must be strictly increasing"},
	}
	for _, c := range checks {
		if !c.ok {
			return fmt.Errorf("config: %s", c.msg)
		}
	}
	return nil
}
