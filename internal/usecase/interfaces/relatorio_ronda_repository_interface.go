package interfaces

import (
	"context"
	"time"

	"relatorio_ronda/internal/domain/entities"
)

// IRelatorioRondaRepository abstracts persistence for RelatorioRonda.
//
// Delete removes the report's laps with it; Deactivate deactivates them with it.

type IRelatorioRondaRepository interface {
	IBaseRepository[entities.RelatorioRonda]
	// ExistsForDay reports whether another active report has the same company,
	// guard and calendar day.
	ExistsForDay(ctx context.Context, chave entities.ChaveDia, excludeID int) (bool, error)
	ListByEmpresa(ctx context.Context, empresaID int, include entities.Include) ([]entities.RelatorioRonda, error)
	ListByVigilante(ctx context.Context, vigilanteID int, include entities.Include) ([]entities.RelatorioRonda, error)
	ListByData(ctx context.Context, dia time.Time, include entities.Include) ([]entities.RelatorioRonda, error)
}
