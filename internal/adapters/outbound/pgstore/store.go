package pgstore

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/abdidvp/easydelivery/internal/domain"
	"github.com/google/uuid"
	_ "github.com/lib/pq"
)

const schema = `
CREATE TABLE IF NOT EXISTS easydelivery_attachments (
    id         UUID PRIMARY KEY,
    name       TEXT        NOT NULL,
    mimetype   TEXT        NOT NULL,
    content    BYTEA       NOT NULL,
    res_model  TEXT        NOT NULL,
    res_id     BIGINT      NOT NULL,
    created_at TIMESTAMPTZ NOT NULL
);
CREATE INDEX IF NOT EXISTS easydelivery_attachments_res_idx
    ON easydelivery_attachments (res_model, res_id, created_at);
`

// Store is a PostgreSQL implementation of domain.AttachmentStore.
type Store struct {
	db *sql.DB
}

// Open connects to the database at dsn and checks that it is reachable.
func Open(ctx context.Context, dsn string) (*Store, error) {
	db, err := sql.Open("postgres", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open postgres db: %w", err)
	}
	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to ping postgres db: %w", err)
	}
	return &Store{db: db}, nil
}

// New wraps an existing connection pool.
func New(db *sql.DB) *Store {
	return &Store{db: db}
}

// Close closes the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

// EnsureSchema creates the attachment table if it does not exist.
func (s *Store) EnsureSchema(ctx context.Context) error {
	if _, err := s.db.ExecContext(ctx, schema); err != nil {
		return fmt.Errorf("creating attachment table: %w", err)
	}
	return nil
}

// Create inserts one attachment.
func (s *Store) Create(ctx context.Context, a domain.Attachment) (domain.Attachment, error) {
	a.ID = uuid.NewString()
	a.Size = len(a.Content)
	if a.CreatedAt.IsZero() {
		a.CreatedAt = time.Now().UTC()
	}

	const query = `
        INSERT INTO easydelivery_attachments (id, name, mimetype, content, res_model, res_id, created_at)
        VALUES ($1, $2, $3, $4, $5, $6, $7)`

	if _, err := s.db.ExecContext(ctx, query,
		a.ID, a.Name, a.MimeType, a.Content, a.ResModel, a.ResID, a.CreatedAt,
	); err != nil {
		return domain.Attachment{}, fmt.Errorf("failed to insert attachment %s: %w", a.Name, err)
	}
	return a, nil
}

// List returns the attachments of a record in creation order.
func (s *Store) List(ctx context.Context, resModel string, resID int64) ([]domain.Attachment, error) {
	const query = `
        SELECT id, name, mimetype, content, res_model, res_id, created_at
        FROM easydelivery_attachments
        WHERE res_model = $1 AND res_id = $2
        ORDER BY created_at, id`

	rows, err := s.db.QueryContext(ctx, query, resModel, resID)
	if err != nil {
		return nil, fmt.Errorf("failed to query attachments: %w", err)
	}
	defer rows.Close()

	var out []domain.Attachment
	for rows.Next() {
		var a domain.Attachment
		if err := rows.Scan(&a.ID, &a.Name, &a.MimeType, &a.Content, &a.ResModel, &a.ResID, &a.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan attachment: %w", err)
		}
		a.Size = len(a.Content)
		out = append(out, a)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate attachments: %w", err)
	}
	return out, nil
}
