package interfaces

import (
	"context"

	"relatorio_ronda/internal/domain/entities"
)

// IEmpresaRepository abstracts persistence for Empresa.
//
// Uniqueness checks only consider active rows; excludeID (0 for none) lets an
// update skip the row being updated.

type IEmpresaRepository interface {
	IBaseRepository[entities.Empresa]
	NomeExists(ctx context.Context, nome string, excludeID int) (bool, error)
}
