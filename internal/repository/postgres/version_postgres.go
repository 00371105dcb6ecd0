package postgres

import (
	"context"
	"database/sql"

	"devlogapi/internal/model"
	"devlogapi/internal/repository"
)

// VersionPostgres is a PostgreSQL implementation of
// repository.VersionRepository.
type VersionPostgres struct {
	db *sql.DB
}

// NewVersionPostgres creates a new VersionPostgres repository.
func NewVersionPostgres(db *sql.DB) *VersionPostgres {
	return &VersionPostgres{db: db}
}

var _ repository.VersionRepository = (*VersionPostgres)(nil)

// Create inserts a new version row and returns the stored record.
func (r *VersionPostgres) Create(ctx context.Context, v *model.Version) (*model.Version, error) {
	const q = `
		INSERT INTO versions (id, project_id, name, published, created_at)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, project_id, name, published, created_at
	`
	row := r.db.QueryRowContext(ctx, q, v.ID, v.ProjectID, v.Name, v.Published, v.CreatedAt)
	var out model.Version
	if err := row.Scan(&out.ID, &out.ProjectID, &out.Name, &out.Published, &out.CreatedAt); err != nil {
		return nil, err
	}
	return &out, nil
}

// ListByProject returns a project's versions, newest first.
func (r *VersionPostgres) ListByProject(ctx context.Context, projectID string) ([]model.Version, error) {
	const q = `
		SELECT id, project_id, name, published, created_at
		FROM versions
		WHERE project_id = $1
		ORDER BY created_at DESC, id DESC
	`
	rows, err := r.db.QueryContext(ctx, q, projectID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := make([]model.Version, 0)
	for rows.Next() {
		var v model.Version
		if err := rows.Scan(&v.ID, &v.ProjectID, &v.Name, &v.Published, &v.CreatedAt); err != nil {
			return nil, err
		}
		items = append(items, v)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}
