package migration

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"log"
	"time"
)

type migrationStep struct {
	Name string
	SQL  string
}

var steps = []migrationStep{
	{
		Name: "create_extension_uuid_ossp",
		SQL:  `CREATE EXTENSION IF NOT EXISTS "uuid-ossp";`,
	},
	{
		Name: "create_table_projects",
		SQL: `CREATE TABLE IF NOT EXISTS projects (
  id         UUID        PRIMARY KEY DEFAULT uuid_generate_v4(),
  name       TEXT        NOT NULL,
  created_at TIMESTAMPTZ NOT NULL DEFAULT now()
);`,
	},
	{
		Name: "create_table_versions",
		SQL: `CREATE TABLE IF NOT EXISTS versions (
  id         UUID        PRIMARY KEY DEFAULT uuid_generate_v4(),
  project_id UUID        NOT NULL REFERENCES projects (id) ON DELETE CASCADE,
  name       TEXT        NOT NULL,
  published  BOOLEAN     NOT NULL DEFAULT FALSE,
  created_at TIMESTAMPTZ NOT NULL DEFAULT now()
);`,
	},
	{
		Name: "create_index_versions_project_id",
		SQL:  `CREATE INDEX IF NOT EXISTS idx_versions_project_id ON versions (project_id);`,
	},
	{
		Name: "create_table_version_contents",
		SQL: `CREATE TABLE IF NOT EXISTS version_contents (
  project_id UUID        NOT NULL,
  version_id UUID        NOT NULL REFERENCES versions (id) ON DELETE CASCADE,
  content    JSONB       NOT NULL,
  updated_at TIMESTAMPTZ NOT NULL DEFAULT now(),
  PRIMARY KEY (project_id, version_id)
);`,
	},
	{
		Name: "create_index_version_contents_project_id",
		SQL:  `CREATE INDEX IF NOT EXISTS idx_version_contents_project_id ON version_contents (project_id);`,
	},
}

// EnsureMigrated checks if the 'version_contents' table exists and runs the
// migration steps if it doesn't. Steps are idempotent so a partial earlier
// run is safe to repeat.
func EnsureMigrated(ctx context.Context, db *sql.DB, loc *time.Location, dbHost string) error {
	start := time.Now()

	logJSON(loc, map[string]any{
		"component": "database",
		"event":     "db_migration_check",
		"status":    "starting",
		"db_host":   dbHost,
	})

	var exists bool
	query := "SELECT to_regclass('public.version_contents') IS NOT NULL"
	if err := db.QueryRowContext(ctx, query).Scan(&exists); err != nil {
		logJSON(loc, map[string]any{
			"component": "database",
			"event":     "db_migration_check",
			"status":    "error",
			"error":     err.Error(),
		})
		return fmt.Errorf("migration existence check: %w", err)
	}

	if exists {
		logJSON(loc, map[string]any{
			"component":   "database",
			"event":       "db_migration_check",
			"status":      "skipped",
			"duration_ms": time.Since(start).Milliseconds(),
		})
		return nil
	}

	for _, step := range steps {
		stepStart := time.Now()
		if _, err := db.ExecContext(ctx, step.SQL); err != nil {
			logJSON(loc, map[string]any{
				"component": "database",
				"event":     "db_migration_step",
				"step":      step.Name,
				"status":    "error",
				"error":     err.Error(),
			})
			return fmt.Errorf("migration step %s: %w", step.Name, err)
		}
		logJSON(loc, map[string]any{
			"component":   "database",
			"event":       "db_migration_step",
			"step":        step.Name,
			"status":      "applied",
			"duration_ms": time.Since(stepStart).Milliseconds(),
		})
	}

	logJSON(loc, map[string]any{
		"component":   "database",
		"event":       "db_migration_check",
		"status":      "completed",
		"steps":       len(steps),
		"duration_ms": time.Since(start).Milliseconds(),
	})
	return nil
}

func logJSON(loc *time.Location, fields map[string]any) {
	fields["ts"] = time.Now().In(loc).Format(time.RFC3339Nano)
	if b, err := json.Marshal(fields); err == nil {
		log.SetFlags(0)
		log.Println(string(b))
	}
}
