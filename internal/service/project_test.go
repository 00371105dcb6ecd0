package service

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"devlogapi/internal/model"
	"devlogapi/internal/repository"
	"devlogapi/internal/repository/mocks"
)

func TestProjectService_Create(t *testing.T) {
	ctx := context.Background()

	t.Run("success", func(t *testing.T) {
		projects := new(mocks.MockProjectRepository)
		svc := NewProjectService(projects, new(mocks.MockVersionRepository))

		projects.On("Create", ctx, mock.MatchedBy(func(p *model.Project) bool {
			return p.Name == "Tower Defense" && p.ID != "" && !p.CreatedAt.IsZero()
		})).Return(&model.Project{ID: "proj-uuid", Name: "Tower Defense"}, nil)

		got, err := svc.Create(ctx, "Tower Defense")
		assert.NoError(t, err)
		assert.Equal(t, "proj-uuid", got.ID)
		projects.AssertExpectations(t)
	})

	t.Run("empty name", func(t *testing.T) {
		svc := NewProjectService(new(mocks.MockProjectRepository), new(mocks.MockVersionRepository))
		_, err := svc.Create(ctx, "")
		assert.ErrorIs(t, err, ErrNameRequired)
	})

	t.Run("repository error", func(t *testing.T) {
		projects := new(mocks.MockProjectRepository)
		svc := NewProjectService(projects, new(mocks.MockVersionRepository))

		projects.On("Create", ctx, mock.Anything).Return(nil, errors.New("db down"))

		_, err := svc.Create(ctx, "Tower Defense")
		assert.Error(t, err)
	})
}

func TestProjectService_List(t *testing.T) {
	ctx := context.Background()

	t.Run("success", func(t *testing.T) {
		projects := new(mocks.MockProjectRepository)
		svc := NewProjectService(projects, new(mocks.MockVersionRepository))

		projects.On("List", ctx, repository.PageQuery{Limit: 20, Offset: 5}).
			Return(&repository.PageResult[model.Project]{
				Items: []model.Project{{ID: "p1", Name: "Tower Defense"}},
				Total: 1,
			}, nil)

		got, err := svc.List(ctx, 20, 5)
		assert.NoError(t, err)
		assert.Equal(t, 1, got.Total)
		require.Len(t, got.Items, 1)
	})

	t.Run("defaults applied", func(t *testing.T) {
		projects := new(mocks.MockProjectRepository)
		svc := NewProjectService(projects, new(mocks.MockVersionRepository))

		projects.On("List", ctx, repository.PageQuery{Limit: 10, Offset: 0}).
			Return(&repository.PageResult[model.Project]{Items: []model.Project{}, Total: 0}, nil)

		_, err := svc.List(ctx, 0, -3)
		assert.NoError(t, err)
		projects.AssertExpectations(t)
	})
}

func TestProjectService_Get(t *testing.T) {
	ctx := context.Background()

	t.Run("found", func(t *testing.T) {
		projects := new(mocks.MockProjectRepository)
		svc := NewProjectService(projects, new(mocks.MockVersionRepository))

		projects.On("FindByID", ctx, "p1").Return(&model.Project{ID: "p1", Name: "Tower Defense"}, nil)

		got, err := svc.Get(ctx, "p1")
		assert.NoError(t, err)
		assert.Equal(t, "Tower Defense", got.Name)
	})

	t.Run("not found", func(t *testing.T) {
		projects := new(mocks.MockProjectRepository)
		svc := NewProjectService(projects, new(mocks.MockVersionRepository))

		projects.On("FindByID", ctx, "missing").Return(nil, sql.ErrNoRows)

		_, err := svc.Get(ctx, "missing")
		assert.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("missing id", func(t *testing.T) {
		svc := NewProjectService(new(mocks.MockProjectRepository), new(mocks.MockVersionRepository))
		_, err := svc.Get(ctx, "")
		assert.ErrorIs(t, err, ErrIDRequired)
	})
}

func TestProjectService_Delete(t *testing.T) {
	ctx := context.Background()

	t.Run("success", func(t *testing.T) {
		projects := new(mocks.MockProjectRepository)
		svc := NewProjectService(projects, new(mocks.MockVersionRepository))

		projects.On("FindByID", ctx, "p1").Return(&model.Project{ID: "p1"}, nil)
		projects.On("Delete", ctx, "p1").Return(nil)

		assert.NoError(t, svc.Delete(ctx, "p1"))
		projects.AssertExpectations(t)
	})

	t.Run("not found", func(t *testing.T) {
		projects := new(mocks.MockProjectRepository)
		svc := NewProjectService(projects, new(mocks.MockVersionRepository))

		projects.On("FindByID", ctx, "missing").Return(nil, sql.ErrNoRows)

		assert.ErrorIs(t, svc.Delete(ctx, "missing"), ErrNotFound)
		projects.AssertNotCalled(t, "Delete", ctx, "missing")
	})
}

func TestProjectService_CreateVersion(t *testing.T) {
	ctx := context.Background()

	t.Run("success", func(t *testing.T) {
		projects := new(mocks.MockProjectRepository)
		versions := new(mocks.MockVersionRepository)
		svc := NewProjectService(projects, versions)

		projects.On("FindByID", ctx, "p1").Return(&model.Project{ID: "p1"}, nil)
		versions.On("Create", ctx, mock.MatchedBy(func(v *model.Version) bool {
			return v.ProjectID == "p1" && v.Name == "1.2.0" && v.ID != ""
		})).Return(&model.Version{ID: "v1", ProjectID: "p1", Name: "1.2.0", CreatedAt: time.Now().UTC()}, nil)

		got, err := svc.CreateVersion(ctx, "p1", "1.2.0")
		assert.NoError(t, err)
		assert.Equal(t, "v1", got.ID)
		versions.AssertExpectations(t)
	})

	t.Run("project not found", func(t *testing.T) {
		projects := new(mocks.MockProjectRepository)
		versions := new(mocks.MockVersionRepository)
		svc := NewProjectService(projects, versions)

		projects.On("FindByID", ctx, "missing").Return(nil, sql.ErrNoRows)

		_, err := svc.CreateVersion(ctx, "missing", "1.2.0")
		assert.ErrorIs(t, err, ErrNotFound)
		versions.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})

	t.Run("empty name", func(t *testing.T) {
		svc := NewProjectService(new(mocks.MockProjectRepository), new(mocks.MockVersionRepository))
		_, err := svc.CreateVersion(ctx, "p1", "")
		assert.ErrorIs(t, err, ErrNameRequired)
	})
}
