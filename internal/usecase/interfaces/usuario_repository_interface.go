package interfaces

import (
	"context"

	"relatorio_ronda/internal/domain/entities"
)

// IUsuarioRepository abstracts persistence for Usuario.

type IUsuarioRepository interface {
	IBaseRepository[entities.Usuario]
	NomeExists(ctx context.Context, nome string, excludeID int) (bool, error)
	EmailExists(ctx context.Context, email string, excludeID int) (bool, error)
}
