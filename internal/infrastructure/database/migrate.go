package database

import (
	"context"
	"database/sql"
	"embed"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"
)

//go:embed migrations/*.sql
var migrationsFS embed.FS

const migrationsDir = "migrations"

// OpenSQL exposes the pool through database/sql, which is what goose drives.
// The returned handle borrows connections from the pool and owns none.
func OpenSQL(pool *pgxpool.Pool) *sql.DB {
	return stdlib.OpenDBFromPool(pool)
}

func prepareGoose() error {
	if err := goose.SetDialect("postgres"); err != nil {
		return err
	}
	goose.SetBaseFS(migrationsFS)
	return nil
}

func Migrate(ctx context.Context, pool *pgxpool.Pool) error {
	db := OpenSQL(pool)

	if err := prepareGoose(); err != nil {
		return err
	}
	if err := goose.UpContext(ctx, db, migrationsDir); err != nil {
		return fmt.Errorf("apply migrations: %w", err)
	}
	return nil
}

// MigrateDown rolls back the most recent migration.
func MigrateDown(ctx context.Context, pool *pgxpool.Pool) error {
	db := OpenSQL(pool)

	if err := prepareGoose(); err != nil {
		return err
	}
	return goose.DownContext(ctx, db, migrationsDir)
}

func MigrationStatus(ctx context.Context, pool *pgxpool.Pool) error {
	db := OpenSQL(pool)

	if err := prepareGoose(); err != nil {
		return err
	}
	return goose.StatusContext(ctx, db, migrationsDir)
}
