package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/interviewlab/fluency-pipeline/config"
)

func TestBaseScore(t *testing.T) {
	e := newTestEngine(t)

	assert.InDelta(t, 100.0, e.baseScore(0), 1e-9)
	assert.InDelta(t, 85.0, e.baseScore(0.1), 1e-9, "10% fillers at weight 1.5")
	assert.Zero(t, e.baseScore(1.0), "ratio 1.0 clamps to the floor")
	assert.Zero(t, e.baseScore(3.0))
}

func TestAdjustedScore_NeverExceedsBase(t *testing.T) {
	e := newTestEngine(t)

	for _, base := range []float64{0, 25, 60, 100} {
		for _, ratio := range []float64{0, 0.4, 1} {
			for _, sig := range []int{0, 2, 10} {
				for _, wpm := range []float64{0, 50, 150, 400} {
					adj := e.adjustedScore(base, ratio, sig, wpm)
					assert.LessOrEqual(t, adj, base)
					assert.GreaterOrEqual(t, adj, 0.0)
				}
			}
		}
	}
}

func TestAdjustedScore_PenaltyCaps(t *testing.T) {
	e := newTestEngine(t)

	// Full silence would be a 30-point penalty uncapped; the cap is 20.
	assert.InDelta(t, 80.0, e.adjustedScore(100, 0, 0, 150), 1e-9)
	// Ten significant pauses would be 50 points uncapped; the cap is 15.
	assert.InDelta(t, 85.0, e.adjustedScore(100, 1, 10, 150), 1e-9)
	// 500 wpm would be a 15-point penalty; it meets the cap exactly.
	assert.InDelta(t, 85.0, e.adjustedScore(100, 1, 0, 500), 1e-9)
}

func TestAdjustedScore_RatePenalty(t *testing.T) {
	e := newTestEngine(t)

	assert.InDelta(t, 95.0, e.adjustedScore(100, 1, 0, 50), 1e-9, "slow side: (100-50)/10")
	assert.InDelta(t, 95.0, e.adjustedScore(100, 1, 0, 300), 1e-9, "fast side: (300-200)/20")
	assert.InDelta(t, 100.0, e.adjustedScore(100, 1, 0, 150), 1e-9, "inside the band")
	assert.InDelta(t, 100.0, e.adjustedScore(100, 1, 0, 0), 1e-9, "undefined rate is not penalized")
}

func TestAdjustedScore_MonotonicInSignificantPauses(t *testing.T) {
	e := newTestEngine(t)

	prev := 101.0
	for sig := 0; sig <= 6; sig++ {
		adj := e.adjustedScore(90, 0.8, sig, 150)
		assert.LessOrEqual(t, adj, prev, "more significant pauses must never raise the score")
		prev = adj
	}
}

func TestScores_MonotonicInFillerRatio(t *testing.T) {
	e := newTestEngine(t)

	prev := 101.0
	for _, ratio := range []float64{0, 0.05, 0.1, 0.2, 0.5, 1} {
		base := e.baseScore(ratio)
		adj := e.adjustedScore(base, 0.9, 1, 150)
		assert.LessOrEqual(t, adj, prev, "more fillers must never raise the score")
		prev = adj
	}
}

func TestFluencyBand(t *testing.T) {
	cfg := config.Default()

	assert.Equal(t, FluencyExcellent, FluencyBand(cfg, 80))
	assert.Equal(t, FluencyGood, FluencyBand(cfg, 79.9))
	assert.Equal(t, FluencyGood, FluencyBand(cfg, 60))
	assert.Equal(t, FluencyFair, FluencyBand(cfg, 59.9))
	assert.Equal(t, FluencyFair, FluencyBand(cfg, 40))
	assert.Equal(t, FluencyNeedsWork, FluencyBand(cfg, 39.9))
}

func TestPauseBands(t *testing.T) {
	cfg := config.Default()

	assert.Equal(t, PauseQuick, PausePatternBand(cfg, 0.5))
	assert.Equal(t, PauseModerate, PausePatternBand(cfg, 1.5))
	assert.Equal(t, PauseLong, PausePatternBand(cfg, 2.5))
	assert.Equal(t, PauseExtensive, PausePatternBand(cfg, 3.0))

	assert.Equal(t, FrequencySmooth, PauseFrequencyBand(cfg, 1.9))
	assert.Equal(t, FrequencyOccasional, PauseFrequencyBand(cfg, 2))
	assert.Equal(t, FrequencyFrequent, PauseFrequencyBand(cfg, 5))
	assert.Equal(t, FrequencyVeryHesitant, PauseFrequencyBand(cfg, 6))
}
