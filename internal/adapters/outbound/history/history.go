package history

import (
	"encoding/json"
	"os"
	"path/filepath"
	"sync"

	"github.com/abdidvp/easydelivery/internal/domain"
)

// FileHistory implements domain.LabelHistory using JSON file storage.
type FileHistory struct {
	path string
	mu   sync.Mutex
}

func New(path string) *FileHistory {
	return &FileHistory{path: path}
}

func (h *FileHistory) Save(entry domain.LabelHistoryEntry) error {
	h.mu.Lock()
	defer h.mu.Unlock()

	entries, err := h.load()
	if err != nil {
		return err
	}

	entries = append(entries, entry)

	if err := os.MkdirAll(filepath.Dir(h.path), 0755); err != nil {
		return err
	}

	data, err := json.MarshalIndent(entries, "", "  ")
	if err != nil {
		return err
	}

	return os.WriteFile(h.path, data, 0644)
}

func (h *FileHistory) Load() ([]domain.LabelHistoryEntry, error) {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.load()
}

func (h *FileHistory) load() ([]domain.LabelHistoryEntry, error) {
	data, err := os.ReadFile(h.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, err
	}

	var entries []domain.LabelHistoryEntry
	if err := json.Unmarshal(data, &entries); err != nil {
		return nil, err
	}

	return entries, nil
}
