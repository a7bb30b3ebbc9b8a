package interfaces

import (
	"context"

	"relatorio_ronda/internal/domain/entities"
)

// IVoltaRondaRepository abstracts persistence for VoltaRonda.

type IVoltaRondaRepository interface {
	IBaseRepository[entities.VoltaRonda]
	NumeroExists(ctx context.Context, relatorioRondaID, numeroVolta, excludeID int) (bool, error)
	// ListByRelatorio returns the active laps of a report ordered by NumeroVolta.
	ListByRelatorio(ctx context.Context, relatorioRondaID int, include entities.Include) ([]entities.VoltaRonda, error)
}
