// Package input decodes the session bundle produced by the capture and
// transcription collaborators: one candidate, an ordered list of questions,
// each with its finalized transcript and timing data.
package input

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/interviewlab/fluency-pipeline/engine"
)

// Session is the engine-facing input contract. Transcripts are final, not
// streaming partials, and all times are seconds relative to each response.
type Session struct {
	Candidate string                 `json:"candidate"`
	Questions []engine.QuestionInput `json:"questions"`
}

// Load reads and decodes a session bundle from path.
func Load(path string) (*Session, error) {
	f, err := os.Open(filepath.Clean(path))
	if err != nil {
		return nil, fmt.Errorf("input: %w", err)
	}
	defer f.Close()

	var s Session
	if err := json.NewDecoder(f).Decode(&s); err != nil {
		return nil, fmt.Errorf("input %s: %w", path, err)
	}
	if s.Candidate == "" {
		return nil, fmt.Errorf("input %s: missing candidate", path)
	}
	if len(s.Questions) == 0 {
		return nil, fmt.Errorf("input %s: no questions", path)
	}
	return &s, nil
}
