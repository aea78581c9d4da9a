package domain

import (
	"encoding/base64"
	"fmt"
	"strings"
	"time"
)

const (
	MimeTypePDF  = "application/pdf"
	MimeTypeText = "text/plain"
)

// Attachment is a binary document linked to a record of the host platform.
type Attachment struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Content   []byte    `json:"-"`
	Size      int       `json:"size"`
	MimeType  string    `json:"mimetype"`
	ResModel  string    `json:"res_model"`
	ResID     int64     `json:"res_id"`
	CreatedAt time.Time `json:"created_at"`
}

// LabelResult describes the attachments created for one picking.
type LabelResult struct {
	PickingID   int64        `json:"picking_id"`
	PickingName string       `json:"picking_name"`
	Kind        LabelKind    `json:"kind"`
	Attachments []Attachment `json:"attachments"`
}

// BuildAttachments turns a decoded label response into the attachments owned
// by the picking, in response order. Nothing is persisted here, so a label
// that cannot be decoded leaves no partial result behind.
func BuildAttachments(resp LabelResponse, pickingID int64) ([]Attachment, error) {
	switch resp.Kind {
	case LabelKindPDF:
		if resp.PDF == nil {
			return nil, &LabelGenerationError{Message: NoLabelDataMessage}
		}
		content, err := decodeBase64(resp.PDF.Data)
		if err != nil {
			return nil, &LabelGenerationError{Message: fmt.Sprintf("decoding PDF label %q: %v", resp.PDF.ParcelRef, err)}
		}
		return []Attachment{
			newAttachment(resp.PDF.ParcelRef+".pdf", content, MimeTypePDF, pickingID),
		}, nil

	case LabelKindZPL:
		if len(resp.Labels) == 0 {
			return nil, &LabelGenerationError{Message: NoLabelDataMessage}
		}
		out := make([]Attachment, 0, len(resp.Labels))
		for i, l := range resp.Labels {
			ref := l.Ref()
			if ref == "" {
				return nil, &LabelGenerationError{Message: fmt.Sprintf("ZPL label #%d has neither shipper_ref nor number", i+1)}
			}
			out = append(out, newAttachment(ref+".zpl", []byte(l.ZPL), MimeTypeText, pickingID))
		}
		return out, nil
	}
	return nil, &LabelGenerationError{Message: NoLabelDataMessage}
}

func newAttachment(name string, content []byte, mimeType string, pickingID int64) Attachment {
	return Attachment{
		Name:     name,
		Content:  content,
		Size:     len(content),
		MimeType: mimeType,
		ResModel: PickingModel,
		ResID:    pickingID,
	}
}

// decodeBase64 accepts standard base64 with or without line breaks.
func decodeBase64(s string) ([]byte, error) {
	clean := strings.Map(func(r rune) rune {
		switch r {
		case '\n', '\r', ' ', '\t':
			return -1
		}
		return r
	}, s)
	return base64.StdEncoding.DecodeString(clean)
}
