package engine

import (
	"math"

	"github.com/interviewlab/fluency-pipeline/config"
)

// baseScore scores filler density alone: 100 minus the filler percentage
// weighted by the configured sensitivity, clamped to [0,100]. An empty
// transcript has a filler ratio of 0 and scores 100.
func (e *Engine) baseScore(fillerRatio float64) float64 {
	return clamp(100-fillerRatio*100*e.cfg.Scoring.FillerWeight, 0, 100)
}

// adjustedScore applies the pace and pause penalties to the base score.
// Each term is capped so no single factor dominates, and the result never
// exceeds the base score.
func (e *Engine) adjustedScore(base, speechRatio float64, significantPauses int, wpm float64) float64 {
	s := e.cfg.Scoring

	silencePenalty := math.Min((1-speechRatio)*s.SilencePenaltyWeight, s.SilencePenaltyCap)
	pausePenalty := math.Min(float64(significantPauses)*s.PausePenaltyPerSignificant, s.PausePenaltyCap)

	ratePenalty := 0.0
	if wpm > 0 {
		if wpm < s.SlowKneeWPM {
			ratePenalty = (s.SlowKneeWPM - wpm) / s.SlowPenaltyDiv
		} else if wpm > s.FastKneeWPM {
			ratePenalty = (wpm - s.FastKneeWPM) / s.FastPenaltyDiv
		}
		ratePenalty = math.Min(ratePenalty, s.RatePenaltyCap)
	}

	return clamp(base-silencePenalty-pausePenalty-ratePenalty, 0, base)
}

// Fluency band names.
const (
	FluencyExcellent = "Excellent"
	FluencyGood      = "Good"
	FluencyFair      = "Fair"
	FluencyNeedsWork = "Needs Improvement"
)

// FluencyBand classifies an adjusted score.
func FluencyBand(cfg *config.Root, adjusted float64) string {
	s := cfg.Scoring
	switch {
	case adjusted >= s.BandExcellentMin:
		return FluencyExcellent
	case adjusted >= s.BandGoodMin:
		return FluencyGood
	case adjusted >= s.BandFairMin:
		return FluencyFair
	default:
		return FluencyNeedsWork
	}
}

func (e *Engine) fluencyBand(adjusted float64) string { return FluencyBand(e.cfg, adjusted) }

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

