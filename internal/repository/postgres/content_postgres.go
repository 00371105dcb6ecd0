package postgres

import (
	"context"
	"database/sql"
	"encoding/json"

	"devlogapi/internal/repository"
)

// ContentPostgres is a PostgreSQL implementation of
// repository.ContentRepository backed by a JSONB column. It uses
// database/sql with parameterized queries and contains no business logic.
type ContentPostgres struct {
	db *sql.DB
}

// NewContentPostgres creates a new ContentPostgres repository.
func NewContentPostgres(db *sql.DB) *ContentPostgres {
	return &ContentPostgres{db: db}
}

var _ repository.ContentRepository = (*ContentPostgres)(nil)

// Get fetches the stored content for a (project, version) pair. Absence
// surfaces as sql.ErrNoRows.
func (r *ContentPostgres) Get(ctx context.Context, projectID, versionID string) (json.RawMessage, error) {
	const q = `
		SELECT content
		FROM version_contents
		WHERE project_id = $1 AND version_id = $2
	`
	var content []byte
	if err := r.db.QueryRowContext(ctx, q, projectID, versionID).Scan(&content); err != nil {
		return nil, err
	}
	return content, nil
}

// Put upserts the content row, last write wins.
func (r *ContentPostgres) Put(ctx context.Context, projectID, versionID string, content json.RawMessage) error {
	const q = `
		INSERT INTO version_contents (project_id, version_id, content, updated_at)
		VALUES ($1, $2, $3, now())
		ON CONFLICT (project_id, version_id)
		DO UPDATE SET content = EXCLUDED.content, updated_at = now()
	`
	_, err := r.db.ExecContext(ctx, q, projectID, versionID, []byte(content))
	return err
}

// ListByProject returns the content of every version of the project keyed by
// version id.
func (r *ContentPostgres) ListByProject(ctx context.Context, projectID string) (map[string]json.RawMessage, error) {
	const q = `
		SELECT version_id, content
		FROM version_contents
		WHERE project_id = $1
	`
	rows, err := r.db.QueryContext(ctx, q, projectID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make(map[string]json.RawMessage)
	for rows.Next() {
		var versionID string
		var content []byte
		if err := rows.Scan(&versionID, &content); err != nil {
			return nil, err
		}
		out[versionID] = content
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}
