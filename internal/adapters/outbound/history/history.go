package history

import (
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/ccwkit/ccwkit/internal/domain"
)

const historyFile = ".ccwkit/history/reports.json"

// FileHistory implements domain.ReportHistory using JSON file storage.
// Only condensed report entries are written; raw responses are never
// persisted.
type FileHistory struct{}

func New() *FileHistory {
	return &FileHistory{}
}

func (h *FileHistory) Save(dir string, entry domain.ReportEntry) error {
	entries, err := h.Load(dir)
	if err != nil {
		return err
	}

	entries = append(entries, entry)

	fp := filepath.Join(dir, historyFile)
	if err := os.MkdirAll(filepath.Dir(fp), 0755); err != nil {
		return err
	}

	data, err := json.MarshalIndent(entries, "", "  ")
	if err != nil {
		return err
	}

	return os.WriteFile(fp, data, 0644)
}

func (h *FileHistory) Load(dir string) ([]domain.ReportEntry, error) {
	fp := filepath.Join(dir, historyFile)

	data, err := os.ReadFile(fp)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, err
	}

	var entries []domain.ReportEntry
	if err := json.Unmarshal(data, &entries); err != nil {
		return nil, err
	}

	return entries, nil
}
