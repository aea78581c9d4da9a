package attachment

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/abdidvp/easydelivery/internal/domain"
	"github.com/google/uuid"
)

const indexFile = "index.json"

// FileStore is a file-based implementation of domain.AttachmentStore.
// Each record gets a directory holding the attachment files and an index.
type FileStore struct {
	root string
	mu   sync.Mutex
}

type indexEntry struct {
	domain.Attachment
	File string `json:"file"`
}

// New creates a file store rooted at dir.
func New(dir string) *FileStore {
	return &FileStore{root: dir}
}

// Create writes the attachment content and appends it to the record index.
func (s *FileStore) Create(ctx context.Context, a domain.Attachment) (domain.Attachment, error) {
	if err := ctx.Err(); err != nil {
		return domain.Attachment{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	a.ID = uuid.NewString()
	a.Size = len(a.Content)
	if a.CreatedAt.IsZero() {
		a.CreatedAt = time.Now().UTC()
	}

	dir := s.recordDir(a.ResModel, a.ResID)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return domain.Attachment{}, fmt.Errorf("creating attachment directory: %w", err)
	}

	file := a.ID + "-" + sanitize(a.Name)
	if err := os.WriteFile(filepath.Join(dir, file), a.Content, 0644); err != nil {
		return domain.Attachment{}, fmt.Errorf("writing attachment %s: %w", a.Name, err)
	}

	entries, err := s.readIndex(dir)
	if err != nil {
		return domain.Attachment{}, err
	}
	entries = append(entries, indexEntry{Attachment: a, File: file})

	data, err := json.MarshalIndent(entries, "", "  ")
	if err != nil {
		return domain.Attachment{}, err
	}
	if err := os.WriteFile(filepath.Join(dir, indexFile), data, 0644); err != nil {
		return domain.Attachment{}, fmt.Errorf("writing attachment index: %w", err)
	}

	return a, nil
}

// List returns the attachments of a record in creation order, content included.
// A record without attachments yields (nil, nil).
func (s *FileStore) List(ctx context.Context, resModel string, resID int64) ([]domain.Attachment, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	dir := s.recordDir(resModel, resID)
	entries, err := s.readIndex(dir)
	if err != nil {
		return nil, err
	}

	var out []domain.Attachment
	for _, e := range entries {
		content, err := os.ReadFile(filepath.Join(dir, e.File))
		if err != nil {
			return nil, fmt.Errorf("reading attachment %s: %w", e.Name, err)
		}
		a := e.Attachment
		a.Content = content
		out = append(out, a)
	}
	return out, nil
}

func (s *FileStore) readIndex(dir string) ([]indexEntry, error) {
	data, err := os.ReadFile(filepath.Join(dir, indexFile))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, err
	}

	var entries []indexEntry
	if err := json.Unmarshal(data, &entries); err != nil {
		return nil, fmt.Errorf("parsing attachment index: %w", err)
	}
	return entries, nil
}

func (s *FileStore) recordDir(resModel string, resID int64) string {
	return filepath.Join(s.root, sanitize(resModel), strconv.FormatInt(resID, 10))
}

// sanitize keeps API-provided names from escaping the record directory.
func sanitize(name string) string {
	name = strings.Map(func(r rune) rune {
		switch r {
		case '/', '\\', 0:
			return '_'
		}
		return r
	}, name)
	if name == "" || name == "." || name == ".." {
		return "_"
	}
	return name
}
