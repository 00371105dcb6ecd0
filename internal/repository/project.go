package repository

import (
	"context"

	"devlogapi/internal/model"
)

// ProjectRepository defines data access for projects using SQL queries only.
type ProjectRepository interface {
	// Create inserts a new project row and returns the stored record.
	Create(ctx context.Context, p *model.Project) (*model.Project, error)

	// FindByID returns a project by its ID.
	FindByID(ctx context.Context, id string) (*model.Project, error)

	// List returns a paginated list of projects and the total row count.
	List(ctx context.Context, pq PageQuery) (*PageResult[model.Project], error)

	// Delete removes a project by ID. Returns nil if the row was deleted or
	// did not exist.
	Delete(ctx context.Context, id string) error
}

// VersionRepository defines data access for devlog versions.
type VersionRepository interface {
	// Create inserts a new version row and returns the stored record.
	Create(ctx context.Context, v *model.Version) (*model.Version, error)

	// ListByProject returns a project's versions, newest first.
	ListByProject(ctx context.Context, projectID string) ([]model.Version, error)
}

// PageQuery holds limit/offset pagination parameters.
type PageQuery struct {
	Limit  int
	Offset int
}

// PageResult is a generic pagination result wrapper.
// T is typically a model type.
type PageResult[T any] struct {
	Items []T
	Total int
}
