package engine

import (
	"fmt"
	"math"
)

// classifyConfidence maps a response latency to a tier. A quick start means
// the candidate knew the answer; the thresholds are fixed policy.
func (e *Engine) classifyConfidence(latencySec float64) (ConfidenceTier, error) {
	if latencySec < 0 || math.IsNaN(latencySec) || math.IsInf(latencySec, 0) {
		return "", fmt.Errorf("%w: %v", ErrInvalidLatency, latencySec)
	}
	switch {
	case latencySec <= e.cfg.Confidence.HighMaxSec:
		return ConfidenceHigh, nil
	case latencySec <= e.cfg.Confidence.MediumMaxSec:
		return ConfidenceMedium, nil
	default:
		return ConfidenceLow, nil
	}
}
