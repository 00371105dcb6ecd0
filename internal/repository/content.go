package repository

import (
	"context"
	"encoding/json"
)

// ContentRepository defines data access for version page content. Content is
// opaque JSON to this layer; the store returns exactly what was put. No
// business logic here — strictly persistence operations.
type ContentRepository interface {
	// Get returns the stored content for a (project, version) pair.
	// Absence is reported as sql.ErrNoRows.
	Get(ctx context.Context, projectID, versionID string) (json.RawMessage, error)

	// Put upserts the content for a (project, version) pair, last write wins.
	Put(ctx context.Context, projectID, versionID string, content json.RawMessage) error

	// ListByProject returns the content of every version of the project,
	// keyed by version id.
	ListByProject(ctx context.Context, projectID string) (map[string]json.RawMessage, error)
}
