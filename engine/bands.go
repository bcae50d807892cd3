package engine

import "github.com/interviewlab/fluency-pipeline/config"

// Pause pattern band names, keyed off the average pause duration.
const (
	PauseQuick     = "Quick, natural pauses"
	PauseModerate  = "Moderate thinking pauses"
	PauseLong      = "Longer hesitation pauses"
	PauseExtensive = "Extensive thinking required"
)

// PausePatternBand classifies an average pause duration in seconds.
func PausePatternBand(cfg *config.Root, avgPauseSec float64) string {
	p := cfg.Pauses
	switch {
	case avgPauseSec < p.AvgQuickMaxSec:
		return PauseQuick
	case avgPauseSec < p.AvgModerateMaxSec:
		return PauseModerate
	case avgPauseSec < p.AvgLongMaxSec:
		return PauseLong
	default:
		return PauseExtensive
	}
}

// Pause frequency band names, keyed off pauses per question.
const (
	FrequencySmooth       = "Smooth delivery"
	FrequencyOccasional   = "Occasional hesitation"
	FrequencyFrequent     = "Frequent pauses"
	FrequencyVeryHesitant = "Very hesitant delivery"
)

// PauseFrequencyBand classifies how often the candidate paused, as a
// pauses-per-question rate.
func PauseFrequencyBand(cfg *config.Root, perQuestion float64) string {
	p := cfg.Pauses
	switch {
	case perQuestion < p.FreqSmoothMax:
		return FrequencySmooth
	case perQuestion < p.FreqOccasionalMax:
		return FrequencyOccasional
	case perQuestion < p.FreqFrequentMax:
		return FrequencyFrequent
	default:
		return FrequencyVeryHesitant
	}
}
