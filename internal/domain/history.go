package domain

import "path/filepath"

// Outcomes recorded for a label request.
const (
	OutcomeSuccess = "success"
	OutcomeFailure = "failure"
)

// LabelHistoryEntry records one label request made from this workstation.
type LabelHistoryEntry struct {
	Timestamp   string    `json:"timestamp"`
	PickingID   int64     `json:"picking_id"`
	PickingName string    `json:"picking_name"`
	Outcome     string    `json:"outcome"`
	Kind        LabelKind `json:"kind,omitempty"`
	Attachments []string  `json:"attachments,omitempty"`
	Error       string    `json:"error,omitempty"`
}

// LabelHistory persists label request entries in the order they were made.
type LabelHistory interface {
	Save(entry LabelHistoryEntry) error
	Load() ([]LabelHistoryEntry, error)
}

// NewHistoryEntry describes the result of GenerateLabel for p.
func NewHistoryEntry(timestamp string, p Picking, res *LabelResult, err error) LabelHistoryEntry {
	entry := LabelHistoryEntry{
		Timestamp:   timestamp,
		PickingID:   p.ID,
		PickingName: p.Name,
		Outcome:     OutcomeSuccess,
	}
	if err != nil {
		entry.Outcome = OutcomeFailure
		entry.Error = err.Error()
		return entry
	}
	if res != nil {
		entry.Kind = res.Kind
		for _, a := range res.Attachments {
			entry.Attachments = append(entry.Attachments, a.Name)
		}
	}
	return entry
}

// HistoryPath is the label history file, kept next to the attachment directory.
func (s StorageConfig) HistoryPath() string {
	dir := s.Dir
	if dir == "" {
		dir = DefaultAttachmentDir
	}
	return filepath.Join(filepath.Dir(dir), "history", "labels.json")
}
