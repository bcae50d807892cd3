package engine

// FillerCategory is the closed set of filler classes.
type FillerCategory string

const (
	DiscourseMarker FillerCategory = "discourse_marker"
	Intensifier     FillerCategory = "intensifier"
	Repetition      FillerCategory = "repetition"
	Stalling        FillerCategory = "stalling"
)

// Categories lists all filler categories in a stable order.
var Categories = []FillerCategory{DiscourseMarker, Intensifier, Repetition, Stalling}

// ConfidenceTier buckets a response by how quickly the candidate started
// speaking after the question.
type ConfidenceTier string

const (
	ConfidenceHigh   ConfidenceTier = "High"
	ConfidenceMedium ConfidenceTier = "Medium"
	ConfidenceLow    ConfidenceTier = "Low"
)

// SpeechSpan is one [Start,End) interval of detected speech, in seconds
// relative to the start of the response.
type SpeechSpan struct {
	Start float64 `json:"start"`
	End   float64 `json:"end"`
}

// QuestionInput is everything the upstream capture/transcription
// collaborators hand over for one answered question.
type QuestionInput struct {
	Question   string       `json:"question"`
	Transcript string       `json:"transcript"`
	Spans      []SpeechSpan `json:"spans"`
	// Total response duration in seconds.
	Duration float64 `json:"duration"`
	// Seconds from end of prompt to first detected speech.
	Latency float64 `json:"latency"`
}

// FillerOccurrence is one detected filler, at a token position within the
// transcript. Positions are unique within a question.
type FillerOccurrence struct {
	Token    string         `json:"token"`
	Category FillerCategory `json:"category"`
	Position int            `json:"position"`
}

// PauseSegment is a silence gap between two consecutive speech spans.
type PauseSegment struct {
	Start       float64 `json:"start"`
	End         float64 `json:"end"`
	Duration    float64 `json:"duration"`
	Significant bool    `json:"significant"`
}

// PauseStats summarizes the pause segments of one response.
type PauseStats struct {
	Count            int     `json:"count"`
	Significant      int     `json:"significant"`
	AvgDurationSec   float64 `json:"avg_duration_sec"`
	MaxDurationSec   float64 `json:"max_duration_sec"`
	TotalDurationSec float64 `json:"total_duration_sec"`
}

// QuestionEvaluation is the scored record for one question. It is built
// once and never mutated afterwards.
type QuestionEvaluation struct {
	Index      int    `json:"index"`
	Question   string `json:"question"`
	Transcript string `json:"transcript"`

	// Valid is false when the inputs were malformed; the slot stays in the
	// session but is excluded from every aggregate average.
	Valid bool   `json:"valid"`
	Error string `json:"error,omitempty"`

	WordCount         int                    `json:"word_count"`
	Fillers           []FillerOccurrence     `json:"fillers,omitempty"`
	FillerCount       int                    `json:"filler_count"`
	FillerCounts      map[FillerCategory]int `json:"filler_counts,omitempty"`
	FillerTokenCounts map[string]int         `json:"filler_token_counts,omitempty"`
	FillerRatio       float64                `json:"filler_ratio"`

	Pauses     []PauseSegment `json:"pauses,omitempty"`
	PauseStats PauseStats     `json:"pause_stats"`

	SpeechDurationSec  float64 `json:"speech_duration_sec"`
	SilenceDurationSec float64 `json:"silence_duration_sec"`
	SpeechRatio        float64 `json:"speech_ratio"`
	WordsPerMinute     float64 `json:"words_per_minute"`

	ResponseLatencySec float64        `json:"response_latency_sec"`
	Confidence         ConfidenceTier `json:"confidence,omitempty"`

	DurationSec  float64 `json:"duration_sec"`
	DurationBand string  `json:"duration_band,omitempty"`
	PaceBand     string  `json:"pace_band,omitempty"`

	BaseScore     float64 `json:"base_score"`
	AdjustedScore float64 `json:"adjusted_score"`
	FluencyBand   string  `json:"fluency_band,omitempty"`
}
