package repository

import (
	"context"
	"errors"
	"fmt"

	"relatorio_ronda/internal/domain/entities"
	"relatorio_ronda/internal/usecase/interfaces"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// querier is satisfied by both *pgxpool.Pool and pgx.Tx.
type querier interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

const (
	pgUniqueViolation     = "23505"
	pgForeignKeyViolation = "23503"
)

// classifyPgError maps constraint violations to the store-level errors the use
// cases understand, keeping the constraint name in the message.
func classifyPgError(err error) error {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return err
	}
	switch pgErr.Code {
	case pgUniqueViolation:
		return fmt.Errorf("%w: %s", interfaces.ErrUniqueViolation, pgErr.ConstraintName)
	case pgForeignKeyViolation:
		return fmt.Errorf("%w: %s", interfaces.ErrForeignKeyViolation, pgErr.ConstraintName)
	default:
		return err
	}
}

// activeTable holds the SQL shared by every entity table. Every read it builds
// filters on ativo; callers add their own conditions on top.
type activeTable[T entities.Activatable] struct {
	db      querier
	name    string
	columns string
	scan    func(row pgx.Row) (T, error)
}

func (t activeTable[T]) selectSQL(where, orderBy string) string {
	sql := "SELECT " + t.columns + " FROM " + t.name + " WHERE ativo"
	if where != "" {
		sql += " AND " + where
	}
	if orderBy != "" {
		sql += " ORDER BY " + orderBy
	}
	return sql
}

func (t activeTable[T]) list(ctx context.Context, where, orderBy string, args ...any) ([]T, error) {
	return t.query(ctx, t.selectSQL(where, orderBy), args...)
}

func (t activeTable[T]) query(ctx context.Context, sql string, args ...any) ([]T, error) {
	return collect(ctx, t.db, t.scan, sql, args...)
}

func (t activeTable[T]) get(ctx context.Context, id int) (T, error) {
	e, err := t.scan(t.db.QueryRow(ctx, t.selectSQL("id = $1", ""), id))
	if errors.Is(err, pgx.ErrNoRows) {
		var zero T
		return zero, nil
	}
	return e, err
}

func (t activeTable[T]) exists(ctx context.Context, where string, args ...any) (bool, error) {
	var ok bool
	err := t.db.QueryRow(ctx, "SELECT EXISTS (SELECT 1 FROM "+t.name+" WHERE ativo AND "+where+")", args...).Scan(&ok)
	return ok, err
}

func (t activeTable[T]) existsActive(ctx context.Context, id int) (bool, error) {
	return t.exists(ctx, "id = $1", id)
}

func (t activeTable[T]) exec(ctx context.Context, sql string, args ...any) error {
	_, err := t.db.Exec(ctx, sql, args...)
	return classifyPgError(err)
}

func (t activeTable[T]) delete(ctx context.Context, id int) error {
	return t.exec(ctx, "DELETE FROM "+t.name+" WHERE id = $1", id)
}

func (t activeTable[T]) deactivate(ctx context.Context, id int) error {
	return t.exec(ctx, "UPDATE "+t.name+" SET ativo = false WHERE id = $1 AND ativo", id)
}

func collect[T any](ctx context.Context, db querier, scan func(pgx.Row) (T, error), sql string, args ...any) ([]T, error) {
	rows, err := db.Query(ctx, sql, args...)
	if err != nil {
		return nil, err
	}
	return pgx.CollectRows(rows, func(row pgx.CollectableRow) (T, error) {
		return scan(row)
	})
}

// byID loads rows of any state keyed by id; navigations still resolve after
// the related row was deactivated.
func byID[T entities.Activatable](ctx context.Context, db querier, table, columns string, scan func(pgx.Row) (T, error), keys []int) (map[int]T, error) {
	out := make(map[int]T, len(keys))
	if len(keys) == 0 {
		return out, nil
	}
	list, err := collect(ctx, db, scan, "SELECT "+columns+" FROM "+table+" WHERE id = ANY($1)", keys)
	if err != nil {
		return nil, err
	}
	for _, e := range list {
		out[e.GetID()] = e
	}
	return out, nil
}

// ids collects the distinct non-zero values key picks from items.
func ids[T any](items []T, key func(T) int) []int {
	seen := make(map[int]struct{}, len(items))
	out := make([]int, 0, len(items))
	for _, it := range items {
		id := key(it)
		if id == 0 {
			continue
		}
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}
