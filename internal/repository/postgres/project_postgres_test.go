package postgres

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"

	"devlogapi/internal/model"
	"devlogapi/internal/repository"
)

func TestProjectPostgres_Create(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("an error '%s' was not expected when opening a stub database connection", err)
	}
	defer db.Close()

	repo := NewProjectPostgres(db)
	ctx := context.Background()

	now := time.Now().UTC()
	p := &model.Project{ID: "proj-uuid", Name: "Tower Defense", CreatedAt: now}

	rows := sqlmock.NewRows([]string{"id", "name", "created_at"}).
		AddRow(p.ID, p.Name, p.CreatedAt)

	mock.ExpectQuery("INSERT INTO projects").
		WithArgs(p.ID, p.Name, p.CreatedAt).
		WillReturnRows(rows)

	result, err := repo.Create(ctx, p)

	assert.NoError(t, err)
	assert.NotNil(t, result)
	assert.Equal(t, p.ID, result.ID)
	assert.Equal(t, p.Name, result.Name)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestProjectPostgres_FindByID(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("an error '%s' was not expected when opening a stub database connection", err)
	}
	defer db.Close()

	repo := NewProjectPostgres(db)
	ctx := context.Background()

	t.Run("found", func(t *testing.T) {
		now := time.Now().UTC()
		rows := sqlmock.NewRows([]string{"id", "name", "created_at"}).
			AddRow("proj-uuid", "Tower Defense", now)

		mock.ExpectQuery("SELECT id, name, created_at").
			WithArgs("proj-uuid").
			WillReturnRows(rows)

		result, err := repo.FindByID(ctx, "proj-uuid")
		assert.NoError(t, err)
		assert.Equal(t, "Tower Defense", result.Name)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("not found", func(t *testing.T) {
		mock.ExpectQuery("SELECT id, name, created_at").
			WithArgs("missing").
			WillReturnError(sql.ErrNoRows)

		result, err := repo.FindByID(ctx, "missing")
		assert.ErrorIs(t, err, sql.ErrNoRows)
		assert.Nil(t, result)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestProjectPostgres_List(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("an error '%s' was not expected when opening a stub database connection", err)
	}
	defer db.Close()

	repo := NewProjectPostgres(db)
	ctx := context.Background()

	t.Run("success", func(t *testing.T) {
		now := time.Now().UTC()
		mock.ExpectQuery(`SELECT COUNT\(\*\) FROM projects`).
			WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(2))

		rows := sqlmock.NewRows([]string{"id", "name", "created_at"}).
			AddRow("p2", "Roguelike", now).
			AddRow("p1", "Tower Defense", now.Add(-time.Hour))

		mock.ExpectQuery("SELECT id, name, created_at").
			WithArgs(20, 0).
			WillReturnRows(rows)

		result, err := repo.List(ctx, repository.PageQuery{Limit: 20, Offset: 0})
		assert.NoError(t, err)
		assert.Equal(t, 2, result.Total)
		assert.Len(t, result.Items, 2)
		assert.Equal(t, "Roguelike", result.Items[0].Name)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("empty page", func(t *testing.T) {
		mock.ExpectQuery(`SELECT COUNT\(\*\) FROM projects`).
			WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(0))

		mock.ExpectQuery("SELECT id, name, created_at").
			WithArgs(20, 40).
			WillReturnRows(sqlmock.NewRows([]string{"id", "name", "created_at"}))

		result, err := repo.List(ctx, repository.PageQuery{Limit: 20, Offset: 40})
		assert.NoError(t, err)
		assert.Equal(t, 0, result.Total)
		assert.Empty(t, result.Items)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("count error", func(t *testing.T) {
		mock.ExpectQuery(`SELECT COUNT\(\*\) FROM projects`).
			WillReturnError(errors.New("count failed"))

		result, err := repo.List(ctx, repository.PageQuery{Limit: 20})
		assert.Error(t, err)
		assert.Nil(t, result)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestProjectPostgres_Delete(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("an error '%s' was not expected when opening a stub database connection", err)
	}
	defer db.Close()

	repo := NewProjectPostgres(db)
	ctx := context.Background()

	t.Run("success", func(t *testing.T) {
		mock.ExpectExec("DELETE FROM projects").
			WithArgs("proj-uuid").
			WillReturnResult(sqlmock.NewResult(0, 1))

		assert.NoError(t, repo.Delete(ctx, "proj-uuid"))
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("no rows is not an error", func(t *testing.T) {
		mock.ExpectExec("DELETE FROM projects").
			WithArgs("missing").
			WillReturnResult(sqlmock.NewResult(0, 0))

		assert.NoError(t, repo.Delete(ctx, "missing"))
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("exec error", func(t *testing.T) {
		mock.ExpectExec("DELETE FROM projects").
			WithArgs("proj-uuid").
			WillReturnError(errors.New("exec failed"))

		assert.Error(t, repo.Delete(ctx, "proj-uuid"))
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}
