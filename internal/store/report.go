package store

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"callbench/internal/models"
)

// ReportStore persists evaluation reports under Dir, one file per call,
// named after the call id the same way transcripts are.
type ReportStore struct {
	Dir string
}

func NewReportStore(dir string) *ReportStore {
	return &ReportStore{Dir: dir}
}

// Path returns the file path a report for callID would live at.
func (s *ReportStore) Path(callID string) string {
	return filepath.Join(s.Dir, filename(callID))
}

// Save writes the report, overwriting any existing one for the call.
func (s *ReportStore) Save(rep *models.Report) (string, error) {
	if err := os.MkdirAll(s.Dir, 0o755); err != nil {
		return "", fmt.Errorf("creating report dir: %w", err)
	}

	path := s.Path(rep.CallID)
	data, err := json.MarshalIndent(rep, "", "  ")
	if err != nil {
		return "", fmt.Errorf("encoding report: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return "", fmt.Errorf("writing report: %w", err)
	}
	return path, nil
}

// Load reads the report for callID.
func (s *ReportStore) Load(callID string) (*models.Report, error) {
	data, err := os.ReadFile(s.Path(callID))
	if err != nil {
		return nil, fmt.Errorf("reading report: %w", err)
	}
	var rep models.Report
	if err := json.Unmarshal(data, &rep); err != nil {
		return nil, fmt.Errorf("decoding report %s: %w", s.Path(callID), err)
	}
	return &rep, nil
}

// List returns the call ids with a saved report, derived from file
// names.
func (s *ReportStore) List() ([]string, error) {
	entries, err := os.ReadDir(s.Dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("listing reports: %w", err)
	}
	var ids []string
	for _, e := range entries {
		if e.IsDir() || !strings.HasSuffix(e.Name(), ".json") {
			continue
		}
		ids = append(ids, strings.TrimSuffix(e.Name(), ".json"))
	}
	return ids, nil
}
