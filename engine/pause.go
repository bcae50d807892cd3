package engine

import "fmt"

// analyzePauses derives pause segments from the gaps between consecutive
// speech spans of one response. Silence before the first span and after the
// last is not a pause, though it still counts toward silence duration.
// Gaps shorter than the configured minimum are silence but not pauses.
func (e *Engine) analyzePauses(spans []SpeechSpan, totalDur float64) ([]PauseSegment, PauseStats, float64, error) {
	if totalDur < 0 {
		return nil, PauseStats{}, 0, fmt.Errorf("%w: negative response duration %.3f", ErrMalformedTiming, totalDur)
	}

	speech := 0.0
	for i, s := range spans {
		if s.End < s.Start {
			return nil, PauseStats{}, 0, fmt.Errorf("%w: span %d ends before it starts", ErrMalformedTiming, i)
		}
		if s.Start < 0 {
			return nil, PauseStats{}, 0, fmt.Errorf("%w: span %d starts before the response", ErrMalformedTiming, i)
		}
		if i > 0 && s.Start < spans[i-1].End {
			return nil, PauseStats{}, 0, fmt.Errorf("%w: spans %d and %d overlap or are unordered", ErrMalformedTiming, i-1, i)
		}
		speech += s.End - s.Start
	}
	silence := totalDur - speech
	if silence < -timeEpsilon {
		return nil, PauseStats{}, 0, fmt.Errorf("%w: speech %.3fs exceeds response %.3fs", ErrMalformedTiming, speech, totalDur)
	}
	if silence < 0 {
		silence = 0
	}

	var pauses []PauseSegment
	var stats PauseStats
	for i := 1; i < len(spans); i++ {
		gap := spans[i].Start - spans[i-1].End
		if gap < e.cfg.Pauses.MinPauseSec {
			continue
		}
		p := PauseSegment{
			Start:       spans[i-1].End,
			End:         spans[i].Start,
			Duration:    gap,
			Significant: gap > e.cfg.Pauses.SignificantPauseSec,
		}
		pauses = append(pauses, p)
		stats.Count++
		stats.TotalDurationSec += gap
		if p.Significant {
			stats.Significant++
		}
		if gap > stats.MaxDurationSec {
			stats.MaxDurationSec = gap
		}
	}
	if stats.Count > 0 {
		stats.AvgDurationSec = stats.TotalDurationSec / float64(stats.Count)
	}
	return pauses, stats, silence, nil
}

// timeEpsilon absorbs float jitter in collaborator timestamps.
const timeEpsilon = 1e-6
