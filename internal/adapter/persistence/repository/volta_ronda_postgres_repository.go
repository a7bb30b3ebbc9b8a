package repository

import (
	"context"

	"relatorio_ronda/internal/domain/entities"
	"relatorio_ronda/internal/usecase/interfaces"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const (
	voltasTable  = "voltas_ronda"
	voltaColumns = "id, relatorio_ronda_id, numero_volta, hora_saida, hora_chegada, hora_descanso, observacoes, ativo, criado_em"
)

type VoltaRondaPostgresRepository struct {
	pool  *pgxpool.Pool
	table activeTable[entities.VoltaRonda]
}

var _ interfaces.IVoltaRondaRepository = (*VoltaRondaPostgresRepository)(nil)

func NewVoltaRondaPostgresRepository(pool *pgxpool.Pool) *VoltaRondaPostgresRepository {
	return &VoltaRondaPostgresRepository{
		pool:  pool,
		table: activeTable[entities.VoltaRonda]{db: pool, name: voltasTable, columns: voltaColumns, scan: scanVolta},
	}
}

func (r *VoltaRondaPostgresRepository) List(ctx context.Context, include entities.Include) ([]entities.VoltaRonda, error) {
	list, err := r.table.list(ctx, "", "relatorio_ronda_id, numero_volta")
	if err != nil {
		return nil, err
	}
	return list, r.hydrate(ctx, list, include)
}

func (r *VoltaRondaPostgresRepository) ListByRelatorio(ctx context.Context, relatorioRondaID int, include entities.Include) ([]entities.VoltaRonda, error) {
	list, err := r.table.list(ctx, "relatorio_ronda_id = $1", "numero_volta", relatorioRondaID)
	if err != nil {
		return nil, err
	}
	return list, r.hydrate(ctx, list, include)
}

func (r *VoltaRondaPostgresRepository) GetByID(ctx context.Context, id int, include entities.Include) (entities.VoltaRonda, error) {
	v, err := r.table.get(ctx, id)
	if err != nil || v.ID == 0 {
		return v, err
	}
	list := []entities.VoltaRonda{v}
	if err := r.hydrate(ctx, list, include); err != nil {
		return entities.VoltaRonda{}, err
	}
	return list[0], nil
}

func (r *VoltaRondaPostgresRepository) Create(ctx context.Context, v entities.VoltaRonda) (entities.VoltaRonda, error) {
	err := r.pool.QueryRow(ctx,
		`INSERT INTO voltas_ronda
		   (relatorio_ronda_id, numero_volta, hora_saida, hora_chegada, hora_descanso, observacoes)
		 VALUES ($1, $2, $3, $4, $5, $6)
		 RETURNING id, ativo, criado_em`,
		v.RelatorioRondaID, v.NumeroVolta, v.HoraSaida, v.HoraChegada, v.HoraDescanso, v.Observacoes,
	).Scan(&v.ID, &v.Ativo, &v.CriadoEm)
	if err != nil {
		return entities.VoltaRonda{}, classifyPgError(err)
	}
	return v, nil
}

func (r *VoltaRondaPostgresRepository) Update(ctx context.Context, v entities.VoltaRonda) error {
	return r.table.exec(ctx,
		`UPDATE voltas_ronda
		 SET relatorio_ronda_id = $1, numero_volta = $2, hora_saida = $3, hora_chegada = $4,
		     hora_descanso = $5, observacoes = $6
		 WHERE id = $7 AND ativo`,
		v.RelatorioRondaID, v.NumeroVolta, v.HoraSaida, v.HoraChegada, v.HoraDescanso, v.Observacoes, v.ID,
	)
}

func (r *VoltaRondaPostgresRepository) Delete(ctx context.Context, id int) error {
	return r.table.delete(ctx, id)
}

func (r *VoltaRondaPostgresRepository) Deactivate(ctx context.Context, id int) error {
	return r.table.deactivate(ctx, id)
}

func (r *VoltaRondaPostgresRepository) ExistsActive(ctx context.Context, id int) (bool, error) {
	return r.table.existsActive(ctx, id)
}

func (r *VoltaRondaPostgresRepository) NumeroExists(ctx context.Context, relatorioRondaID, numeroVolta, excludeID int) (bool, error) {
	return r.table.exists(ctx, "relatorio_ronda_id = $1 AND numero_volta = $2 AND id <> $3",
		relatorioRondaID, numeroVolta, excludeID)
}

// hydrate attaches the report without its own laps.
func (r *VoltaRondaPostgresRepository) hydrate(ctx context.Context, list []entities.VoltaRonda, include entities.Include) error {
	if !include.Has(entities.IncludeRelatorio) || len(list) == 0 {
		return nil
	}
	relatorios, err := byID(ctx, r.pool, relatoriosTable, relatorioColumns, scanRelatorio,
		ids(list, func(v entities.VoltaRonda) int { return v.RelatorioRondaID }))
	if err != nil {
		return err
	}
	for i := range list {
		if rel, ok := relatorios[list[i].RelatorioRondaID]; ok {
			list[i].RelatorioRonda = &rel
		}
	}
	return nil
}

func scanVolta(row pgx.Row) (entities.VoltaRonda, error) {
	var v entities.VoltaRonda
	err := row.Scan(
		&v.ID, &v.RelatorioRondaID, &v.NumeroVolta,
		&v.HoraSaida, &v.HoraChegada, &v.HoraDescanso, &v.Observacoes,
		&v.Ativo, &v.CriadoEm,
	)
	return v, err
}
