package interfaces

import (
	"context"
	"errors"

	"relatorio_ronda/internal/domain/entities"
)

// Store-level failures every repository implementation classifies its driver
// errors into. The store, not the use case guards, is the final authority on
// uniqueness and referential integrity.
var (
	ErrUniqueViolation     = errors.New("unique constraint violation")
	ErrForeignKeyViolation = errors.New("foreign key constraint violation")
)

// IBaseRepository is the contract shared by every entity store.
//
// Every read is implicitly restricted to active rows: GetByID returns the zero
// value (ID 0) for a missing or deactivated row, and List never returns
// deactivated rows. include names the related rows to attach.

type IBaseRepository[T entities.Activatable] interface {
	List(ctx context.Context, include entities.Include) ([]T, error)
	GetByID(ctx context.Context, id int, include entities.Include) (T, error)
	// Create assigns ID, Ativo and CriadoEm and returns the stored row.
	Create(ctx context.Context, e T) (T, error)
	// Update overwrites every mutable field of the row identified by e's ID.
	Update(ctx context.Context, e T) error
	Delete(ctx context.Context, id int) error
	Deactivate(ctx context.Context, id int) error
	// ExistsActive backs the referential guard of child entities.
	ExistsActive(ctx context.Context, id int) (bool, error)
}
