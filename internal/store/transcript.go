// Package store persists transcripts and evaluation reports as
// pretty-printed JSON files, one file per call. Patch operations rewrite
// only the field they target so fields added by other components (or by
// hand) survive.
package store

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"callbench/internal/models"
)

// TranscriptStore reads and writes normalized transcripts under Dir.
type TranscriptStore struct {
	Dir string
}

// NewTranscriptStore returns a store rooted at dir. The directory is
// created lazily on first save.
func NewTranscriptStore(dir string) *TranscriptStore {
	return &TranscriptStore{Dir: dir}
}

// filename maps a call id to a file name. Slashes are replaced so a
// platform id can never escape the store directory. An empty id falls
// back to a timestamped name.
func filename(callID string) string {
	if callID == "" {
		ts := time.Now().UTC().Format("20060102T150405.000000Z")
		return "call_" + strings.Replace(ts, ".", "", 1) + ".json"
	}
	return strings.ReplaceAll(callID, "/", "_") + ".json"
}

// Path returns the file path a transcript for callID would live at.
func (s *TranscriptStore) Path(callID string) string {
	return filepath.Join(s.Dir, filename(callID))
}

// Exists reports whether a transcript for callID has been saved.
func (s *TranscriptStore) Exists(callID string) bool {
	_, err := os.Stat(s.Path(callID))
	return err == nil
}

// Save writes the transcript, overwriting any existing record for the
// same call id. Returns the path written.
func (s *TranscriptStore) Save(tr *models.Transcript) (string, error) {
	if err := os.MkdirAll(s.Dir, 0o755); err != nil {
		return "", fmt.Errorf("creating transcript dir: %w", err)
	}

	path := s.Path(tr.CallID)
	data, err := json.MarshalIndent(tr, "", "  ")
	if err != nil {
		return "", fmt.Errorf("encoding transcript: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return "", fmt.Errorf("writing transcript: %w", err)
	}
	return path, nil
}

// Load reads the transcript for callID.
func (s *TranscriptStore) Load(callID string) (*models.Transcript, error) {
	return s.LoadPath(s.Path(callID))
}

// LoadPath reads a transcript from an explicit file path.
func (s *TranscriptStore) LoadPath(path string) (*models.Transcript, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading transcript: %w", err)
	}
	var tr models.Transcript
	if err := json.Unmarshal(data, &tr); err != nil {
		return nil, fmt.Errorf("decoding transcript %s: %w", path, err)
	}
	return &tr, nil
}

// patch applies mutate to the raw JSON object on disk and writes it
// back. Working on the raw object keeps fields this package does not
// model intact.
func (s *TranscriptStore) patch(callID string, mutate func(map[string]any)) error {
	path := s.Path(callID)
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("reading transcript: %w", err)
	}
	var obj map[string]any
	if err := json.Unmarshal(data, &obj); err != nil {
		return fmt.Errorf("decoding transcript %s: %w", path, err)
	}

	mutate(obj)

	out, err := json.MarshalIndent(obj, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding transcript: %w", err)
	}
	if err := os.WriteFile(path, out, 0o644); err != nil {
		return fmt.Errorf("writing transcript: %w", err)
	}
	return nil
}

// PatchScenario stamps scenario metadata onto a stored transcript.
func (s *TranscriptStore) PatchScenario(callID string, meta models.ScenarioMeta) error {
	sc := map[string]any{
		"id":       meta.ID,
		"category": meta.Category,
		"name":     meta.Name,
	}
	if meta.RunIndex > 0 {
		sc["run_index"] = meta.RunIndex
	}
	return s.patch(callID, func(obj map[string]any) {
		obj["scenario"] = sc
	})
}

// PatchRecordingURL fills in the artifact recording URL on a stored
// transcript, creating the artifact object if the record predates it.
func (s *TranscriptStore) PatchRecordingURL(callID, url string) error {
	return s.patch(callID, func(obj map[string]any) {
		artifact, ok := obj["artifact"].(map[string]any)
		if !ok {
			artifact = map[string]any{}
			obj["artifact"] = artifact
		}
		artifact["recording_url"] = url
	})
}
