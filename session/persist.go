package session

import (
	"encoding/json"
	"os"
	"path/filepath"
	"time"
)

// mkSessionDir creates outputs/<candidate>_<timestamp> for one session's
// artifacts and returns its path.
func mkSessionDir(outputsRoot, candidate string) (string, error) {
	ts := time.Now().Format("20060102-150405")
	dir := filepath.Join(outputsRoot, candidate+"_"+ts)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", err
	}
	return dir, nil
}

func writeJSON(path string, v any) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// Persist writes the structured report bundle into a fresh session
// directory and returns the report path. Human-readable rendering is the
// presentation layer's job; this writes the typed record only.
func Persist(outputsRoot string, report *Report) (string, error) {
	dir, err := mkSessionDir(outputsRoot, report.Candidate)
	if err != nil {
		return "", err
	}
	path := filepath.Join(dir, "report.json")
	if err := writeJSON(path, report); err != nil {
		return "", err
	}
	return path, nil
}
