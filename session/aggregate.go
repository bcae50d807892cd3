// Package session folds per-question evaluations into the final report and
// persists it for the presentation layer.
package session

import (
	"math"
	"sort"
	"time"

	"github.com/google/uuid"

	"github.com/interviewlab/fluency-pipeline/config"
	"github.com/interviewlab/fluency-pipeline/engine"
)

// CategoryShare is one row of the filler breakdown: how many fillers a
// category contributed and its share of all fillers, in percent.
type CategoryShare struct {
	Category engine.FillerCategory `json:"category"`
	Count    int                   `json:"count"`
	Share    float64               `json:"share"`
}

// Report is the terminal artifact of a session. It is assembled once and
// handed to the presentation layer; nothing mutates it afterwards.
type Report struct {
	SessionID   string    `json:"session_id"`
	Candidate   string    `json:"candidate"`
	GeneratedAt time.Time `json:"generated_at"`

	Questions []engine.QuestionEvaluation `json:"questions"`

	// Counts of answered vs. malformed questions.
	QuestionCount int `json:"question_count"`
	ValidCount    int `json:"valid_count"`

	TotalWords       int     `json:"total_words"`
	TotalFillers     int     `json:"total_fillers"`
	FillerPercentage float64 `json:"filler_percentage"`

	// Breakdown rows are ordered by count, then category name; shares sum
	// to 100 whenever TotalFillers > 0, and the slice is empty otherwise.
	FillerBreakdown []CategoryShare `json:"filler_breakdown,omitempty"`

	AvgWordsPerMinute float64 `json:"avg_words_per_minute"`
	PaceBand          string  `json:"pace_band"`

	TotalPauses         int     `json:"total_pauses"`
	SignificantPauses   int     `json:"significant_pauses"`
	TotalPauseTimeSec   float64 `json:"total_pause_time_sec"`
	AvgPauseDurationSec float64 `json:"avg_pause_duration_sec"`
	MaxPauseDurationSec float64 `json:"max_pause_duration_sec"`
	TotalSpeechTimeSec  float64 `json:"total_speech_time_sec"`
	TotalSilenceTimeSec float64 `json:"total_silence_time_sec"`
	PausePattern        string  `json:"pause_pattern"`
	PauseFrequency      string  `json:"pause_frequency"`

	ConfidenceCounts map[engine.ConfidenceTier]int `json:"confidence_counts"`

	BaseScore     float64 `json:"base_score"`
	AdjustedScore float64 `json:"adjusted_score"`
	FluencyBand   string  `json:"fluency_band"`
}

// Aggregator folds evaluations into a Report. It is stateless beyond the
// fold; identical input always yields the same figures.
type Aggregator struct {
	cfg   *config.Root
	now   func() time.Time
	newID func() string
}

func NewAggregator(cfg *config.Root) *Aggregator {
	return &Aggregator{
		cfg:   cfg,
		now:   time.Now,
		newID: func() string { return uuid.NewString() },
	}
}

// Fold assembles the report. Evaluations are stitched strictly by question
// index, never arrival order. Invalid questions keep their slot in the
// sequence but are excluded from every sum and average.
func (a *Aggregator) Fold(candidate string, evals []engine.QuestionEvaluation) *Report {
	ordered := make([]engine.QuestionEvaluation, len(evals))
	copy(ordered, evals)
	sort.Slice(ordered, func(i, j int) bool { return ordered[i].Index < ordered[j].Index })

	r := &Report{
		SessionID:        a.newID(),
		Candidate:        candidate,
		GeneratedAt:      a.now(),
		Questions:        ordered,
		QuestionCount:    len(ordered),
		ConfidenceCounts: make(map[engine.ConfidenceTier]int),
	}

	byCat := make(map[engine.FillerCategory]int)
	var baseSum, adjSum float64
	var wpmSum float64
	var wpmN int

	for _, ev := range ordered {
		if !ev.Valid {
			continue
		}
		r.ValidCount++

		r.TotalWords += ev.WordCount
		r.TotalFillers += ev.FillerCount
		for cat, n := range ev.FillerCounts {
			byCat[cat] += n
		}

		r.TotalPauses += ev.PauseStats.Count
		r.SignificantPauses += ev.PauseStats.Significant
		r.TotalPauseTimeSec += ev.PauseStats.TotalDurationSec
		if ev.PauseStats.MaxDurationSec > r.MaxPauseDurationSec {
			r.MaxPauseDurationSec = ev.PauseStats.MaxDurationSec
		}
		r.TotalSpeechTimeSec += ev.SpeechDurationSec
		r.TotalSilenceTimeSec += ev.SilenceDurationSec

		r.ConfidenceCounts[ev.Confidence]++

		baseSum += ev.BaseScore
		adjSum += ev.AdjustedScore
		if ev.WordsPerMinute > 0 {
			wpmSum += ev.WordsPerMinute
			wpmN++
		}
	}

	if r.TotalWords > 0 {
		r.FillerPercentage = round1(float64(r.TotalFillers) / float64(r.TotalWords) * 100)
	}
	if r.TotalFillers > 0 {
		for _, cat := range engine.Categories {
			if n := byCat[cat]; n > 0 {
				r.FillerBreakdown = append(r.FillerBreakdown, CategoryShare{
					Category: cat,
					Count:    n,
					Share:    round1(float64(n) / float64(r.TotalFillers) * 100),
				})
			}
		}
		sort.Slice(r.FillerBreakdown, func(i, j int) bool {
			if r.FillerBreakdown[i].Count != r.FillerBreakdown[j].Count {
				return r.FillerBreakdown[i].Count > r.FillerBreakdown[j].Count
			}
			return r.FillerBreakdown[i].Category < r.FillerBreakdown[j].Category
		})
	}

	if wpmN > 0 {
		r.AvgWordsPerMinute = round1(wpmSum / float64(wpmN))
	}
	r.PaceBand = engine.PaceBand(a.cfg, r.AvgWordsPerMinute)

	if r.TotalPauses > 0 {
		r.AvgPauseDurationSec = round2(r.TotalPauseTimeSec / float64(r.TotalPauses))
	}
	r.TotalPauseTimeSec = round2(r.TotalPauseTimeSec)
	r.MaxPauseDurationSec = round2(r.MaxPauseDurationSec)
	r.TotalSpeechTimeSec = round2(r.TotalSpeechTimeSec)
	r.TotalSilenceTimeSec = round2(r.TotalSilenceTimeSec)
	r.PausePattern = engine.PausePatternBand(a.cfg, r.AvgPauseDurationSec)
	if r.ValidCount > 0 {
		r.PauseFrequency = engine.PauseFrequencyBand(a.cfg, float64(r.TotalPauses)/float64(r.ValidCount))
		r.BaseScore = round1(baseSum / float64(r.ValidCount))
		r.AdjustedScore = round1(adjSum / float64(r.ValidCount))
	}
	r.FluencyBand = engine.FluencyBand(a.cfg, r.AdjustedScore)

	return r
}

func round1(v float64) float64 { return math.Round(v*10) / 10 }
func round2(v float64) float64 { return math.Round(v*100) / 100 }
