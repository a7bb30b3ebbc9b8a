package usecase

import (
	"context"
	"errors"
	"fmt"

	"relatorio_ronda/internal/domain/entities"
	"relatorio_ronda/internal/usecase/interfaces"
)

// findActive resolves id to a live row of a store, failing with notFound when
// the row is absent or deactivated.
func findActive[T entities.Activatable](
	ctx context.Context,
	repo interfaces.IBaseRepository[T],
	id int,
	include entities.Include,
	notFound error,
) (T, error) {
	var zero T
	if id <= 0 {
		return zero, notFound
	}
	e, err := repo.GetByID(ctx, id, include)
	if err != nil {
		return zero, err
	}
	if !entities.Found(e) {
		return zero, notFound
	}
	return e, nil
}

// requireParent is the referential guard: the parent row must exist and be active.
func requireParent[T entities.Activatable](ctx context.Context, parents interfaces.IBaseRepository[T], id int, notFound error) error {
	if id <= 0 {
		return notFound
	}
	ok, err := parents.ExistsActive(ctx, id)
	if err != nil {
		return err
	}
	if !ok {
		return notFound
	}
	return nil
}

// rejectDuplicate is the uniqueness guard: it fails with conflict when the
// check finds another active row holding the value.
func rejectDuplicate(exists bool, err error, conflict error) error {
	if err != nil {
		return err
	}
	if exists {
		return conflict
	}
	return nil
}

// deactivate flips Ativo on a live row. It runs no guard beyond the lookup.
func deactivate[T entities.Activatable](ctx context.Context, repo interfaces.IBaseRepository[T], id int, notFound error) error {
	if _, err := findActive(ctx, repo, id, entities.IncludeNone, notFound); err != nil {
		return err
	}
	return repo.Deactivate(ctx, id)
}

// hardDelete physically removes a live row; a referential restriction raised by
// the store is reported as inUse.
func hardDelete[T entities.Activatable](ctx context.Context, repo interfaces.IBaseRepository[T], id int, notFound, inUse error) error {
	if _, err := findActive(ctx, repo, id, entities.IncludeNone, notFound); err != nil {
		return err
	}
	return classifyStoreError(repo.Delete(ctx, id), nil, inUse)
}

// classifyStoreError turns constraint violations the guards could not prevent
// (concurrent writers) into the use case's conflict errors, keeping the cause.
func classifyStoreError(err, conflict, inUse error) error {
	switch {
	case err == nil:
		return nil
	case conflict != nil && errors.Is(err, interfaces.ErrUniqueViolation):
		return fmt.Errorf("%w: %w", conflict, err)
	case inUse != nil && errors.Is(err, interfaces.ErrForeignKeyViolation):
		return fmt.Errorf("%w: %w", inUse, err)
	default:
		return err
	}
}
