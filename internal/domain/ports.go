package domain

import "context"

// ParameterStore reads process-wide system parameters.
// The boolean is false when the key is not configured at all.
type ParameterStore interface {
	Param(key string) (string, bool)
}

// LabelAPI places an order with the carrier and returns the raw JSON answer.
type LabelAPI interface {
	CreateOrder(ctx context.Context, creds Credentials, req ShipmentRequest) ([]byte, error)
}

// AttachmentStore persists attachments linked to host platform records.
type AttachmentStore interface {
	Create(ctx context.Context, a Attachment) (Attachment, error)
	List(ctx context.Context, resModel string, resID int64) ([]Attachment, error)
}

// PickingLoader reads a shipment record from its serialized form.
type PickingLoader interface {
	Load(path string) (Picking, error)
}
