// Package localdb opens the device-local SQLite database and wires up the
// client repositories on top of it.
package localdb

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/pressly/goose/v3"

	"github.com/mpavlenko/recipekeeper/internal/client/migrations"
	"github.com/mpavlenko/recipekeeper/internal/client/repositories/metadata"
	"github.com/mpavlenko/recipekeeper/internal/client/repositories/recipecache"
)

// Repositories bundles every repository backed by the local database.
type Repositories struct {
	Metadata metadata.Repository
	Saved    recipecache.Repository
	Mine     recipecache.Repository
	DB       *sql.DB
}

// RunMigrations applies the embedded goose migrations to db.
func RunMigrations(ctx context.Context, db *sql.DB) error {
	goose.SetBaseFS(migrations.Migrations)

	if err := goose.SetDialect("sqlite3"); err != nil {
		return fmt.Errorf("failed to set goose dialect: %w", err)
	}

	return goose.UpContext(ctx, db, ".")
}

// InitDatabase opens (creating if needed) the SQLite database at dsn,
// migrates it, and returns the repository set.
func InitDatabase(ctx context.Context, dsn string) (*Repositories, error) {
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, err
	}

	if err := RunMigrations(ctx, db); err != nil {
		return nil, err
	}

	return &Repositories{
		Metadata: metadata.NewSQLiteRepository(db),
		Saved:    recipecache.NewSQLiteRepository(db, recipecache.TableSaved),
		Mine:     recipecache.NewSQLiteRepository(db, recipecache.TableMine),
		DB:       db,
	}, nil
}
