package engine

import "github.com/interviewlab/fluency-pipeline/config"

// wordsPerMinute computes the speech rate over actual speaking time. A
// response with zero speech time has no defined rate; the guard substitutes
// 0 rather than surfacing a numeric error.
func wordsPerMinute(wordCount int, speechDurSec float64) float64 {
	if speechDurSec <= 0 {
		return 0
	}
	return float64(wordCount) / (speechDurSec / 60)
}

// speechRatio is speech/(speech+silence), guarded to 0 on an empty response.
func speechRatio(speechDurSec, totalDurSec float64) float64 {
	if totalDurSec <= 0 {
		return 0
	}
	return speechDurSec / totalDurSec
}

// Pace band names.
const (
	PaceOptimal = "Optimal"
	PaceSlow    = "Slow"
	PaceFast    = "Fast"
)

// PaceBand classifies a words-per-minute figure against the optimal window.
func PaceBand(cfg *config.Root, wpm float64) string {
	switch {
	case wpm < cfg.Pace.OptimalLowWPM:
		return PaceSlow
	case wpm > cfg.Pace.OptimalHighWPM:
		return PaceFast
	default:
		return PaceOptimal
	}
}

func (e *Engine) paceBand(wpm float64) string { return PaceBand(e.cfg, wpm) }

// Answer-length band names.
const (
	DurationVeryBrief    = "Very Brief"
	DurationBrief        = "Brief"
	DurationAppropriate  = "Appropriate"
	DurationDetailed     = "Detailed"
	DurationVeryDetailed = "Very Detailed"
)

// durationBand classifies how long the candidate spent on the answer.
func (e *Engine) durationBand(totalDurSec float64) string {
	d := e.cfg.Durations
	switch {
	case totalDurSec < d.VeryBriefMaxSec:
		return DurationVeryBrief
	case totalDurSec < d.BriefMaxSec:
		return DurationBrief
	case totalDurSec < d.AppropriateMaxSec:
		return DurationAppropriate
	case totalDurSec < d.DetailedMaxSec:
		return DurationDetailed
	default:
		return DurationVeryDetailed
	}
}
