package service

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"devlogapi/internal/model"
	"devlogapi/internal/repository"
)

// ProjectListResult is the service-level DTO for paginated projects.
type ProjectListResult struct {
	Items []model.Project `json:"data"`
	Total int             `json:"total"`
}

// ProjectService defines the use cases for playtest projects and their
// devlog versions.
type ProjectService interface {
	// Create makes a new project with the given display name.
	Create(ctx context.Context, name string) (*model.Project, error)

	// List returns projects using limit/offset and a total count.
	List(ctx context.Context, limit, offset int) (*ProjectListResult, error)

	// Get returns a single project by its ID.
	Get(ctx context.Context, id string) (*model.Project, error)

	// Delete removes a project by ID along with its versions and content
	// (cascaded by the schema).
	Delete(ctx context.Context, id string) error

	// CreateVersion adds a new devlog version to a project.
	CreateVersion(ctx context.Context, projectID, name string) (*model.Version, error)
}

type projectService struct {
	projects repository.ProjectRepository
	versions repository.VersionRepository
}

// NewProjectService constructs a new ProjectService.
func NewProjectService(projects repository.ProjectRepository, versions repository.VersionRepository) ProjectService {
	return &projectService{projects: projects, versions: versions}
}

func (s *projectService) Create(ctx context.Context, name string) (*model.Project, error) {
	if name == "" {
		return nil, ErrNameRequired
	}
	p := &model.Project{
		ID:        uuid.New().String(),
		Name:      name,
		CreatedAt: time.Now().UTC(),
	}
	stored, err := s.projects.Create(ctx, p)
	if err != nil {
		return nil, fmt.Errorf("create project: %w", err)
	}
	return stored, nil
}

func (s *projectService) List(ctx context.Context, limit, offset int) (*ProjectListResult, error) {
	if limit <= 0 {
		limit = 10
	}
	if offset < 0 {
		offset = 0
	}
	res, err := s.projects.List(ctx, repository.PageQuery{Limit: limit, Offset: offset})
	if err != nil {
		return nil, err
	}
	return &ProjectListResult{Items: res.Items, Total: res.Total}, nil
}

func (s *projectService) Get(ctx context.Context, id string) (*model.Project, error) {
	if id == "" {
		return nil, ErrIDRequired
	}
	p, err := s.projects.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return p, nil
}

func (s *projectService) Delete(ctx context.Context, id string) error {
	if id == "" {
		return ErrIDRequired
	}
	if _, err := s.projects.FindByID(ctx, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return ErrNotFound
		}
		return err
	}
	return s.projects.Delete(ctx, id)
}

func (s *projectService) CreateVersion(ctx context.Context, projectID, name string) (*model.Version, error) {
	if projectID == "" {
		return nil, ErrIDRequired
	}
	if name == "" {
		return nil, ErrNameRequired
	}
	if _, err := s.projects.FindByID(ctx, projectID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	v := &model.Version{
		ID:        uuid.New().String(),
		ProjectID: projectID,
		Name:      name,
		CreatedAt: time.Now().UTC(),
	}
	stored, err := s.versions.Create(ctx, v)
	if err != nil {
		return nil, fmt.Errorf("create version: %w", err)
	}
	return stored, nil
}
