// Package engine scores answered interview questions for fluency and
// confidence. Each question is a pure computation over its transcript and
// timing data; the session package folds the results into one report.
package engine

import (
	"context"
	"strings"

	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"

	"github.com/interviewlab/fluency-pipeline/config"
)

type Engine struct {
	cfg *config.Root
	lex *lexicon
	log *logrus.Logger
}

// New builds an engine from a validated configuration. Threshold mistakes
// surface here, before any question is scored.
func New(cfg *config.Root, log *logrus.Logger) (*Engine, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if log == nil {
		log = logrus.StandardLogger()
	}
	return &Engine{cfg: cfg, lex: newLexicon(), log: log}, nil
}

// EvaluateQuestion runs the full per-question pipeline: filler
// classification, pause analysis, rate computation, scoring and confidence
// bucketing. Malformed timing or latency aborts this question only.
func (e *Engine) EvaluateQuestion(index int, in QuestionInput) (QuestionEvaluation, error) {
	ev := QuestionEvaluation{
		Index:              index,
		Question:           in.Question,
		Transcript:         in.Transcript,
		DurationSec:        in.Duration,
		ResponseLatencySec: in.Latency,
	}

	tier, err := e.classifyConfidence(in.Latency)
	if err != nil {
		return ev, err
	}

	pauses, stats, silence, err := e.analyzePauses(in.Spans, in.Duration)
	if err != nil {
		return ev, err
	}

	ev.WordCount = len(strings.Fields(in.Transcript))
	ev.Fillers, ev.FillerCounts, ev.FillerTokenCounts = e.detectFillers(in.Transcript)
	ev.FillerCount = len(ev.Fillers)
	if ev.WordCount > 0 {
		ev.FillerRatio = float64(ev.FillerCount) / float64(ev.WordCount)
	}

	ev.Pauses = pauses
	ev.PauseStats = stats
	ev.SilenceDurationSec = silence
	ev.SpeechDurationSec = in.Duration - silence
	ev.SpeechRatio = speechRatio(ev.SpeechDurationSec, in.Duration)
	ev.WordsPerMinute = wordsPerMinute(ev.WordCount, ev.SpeechDurationSec)

	ev.Confidence = tier
	ev.PaceBand = e.paceBand(ev.WordsPerMinute)
	ev.DurationBand = e.durationBand(in.Duration)

	ev.BaseScore = e.baseScore(ev.FillerRatio)
	ev.AdjustedScore = e.adjustedScore(ev.BaseScore, ev.SpeechRatio, stats.Significant, ev.WordsPerMinute)
	ev.FluencyBand = e.fluencyBand(ev.AdjustedScore)

	ev.Valid = true
	return ev, nil
}

// EvaluateSession scores every question concurrently and returns the
// evaluations in question order. A question with malformed inputs keeps its
// slot, marked invalid, so one bad answer never sinks the session.
func (e *Engine) EvaluateSession(ctx context.Context, inputs []QuestionInput) []QuestionEvaluation {
	evals := make([]QuestionEvaluation, len(inputs))

	g, _ := errgroup.WithContext(ctx)
	for i := range inputs {
		i := i
		g.Go(func() error {
			ev, err := e.EvaluateQuestion(i, inputs[i])
			if err != nil {
				ev.Valid = false
				ev.Error = err.Error()
				e.log.WithFields(logrus.Fields{
					"question": i + 1,
					"error":    err,
				}).Warn("question evaluation failed")
			} else {
				e.log.WithFields(logrus.Fields{
					"question": i + 1,
					"words":    ev.WordCount,
					"fillers":  ev.FillerCount,
					"adjusted": ev.AdjustedScore,
				}).Debug("question evaluated")
			}
			evals[i] = ev
			return nil
		})
	}
	_ = g.Wait()
	return evals
}
