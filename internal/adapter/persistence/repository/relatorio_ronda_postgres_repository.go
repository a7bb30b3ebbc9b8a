package repository

import (
	"context"
	"time"

	"relatorio_ronda/internal/domain/entities"
	"relatorio_ronda/internal/infrastructure/database"
	"relatorio_ronda/internal/usecase/interfaces"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const (
	relatoriosTable  = "relatorios_ronda"
	relatorioColumns = "id, empresa_id, vigilante_id, data, km_saida, km_chegada, testemunha_saida, testemunha_chegada, ativo, criado_em"
	relatorioOrder   = "data DESC, id"
)

// RelatorioRondaPostgresRepository persists reports. The voltas_ronda foreign
// key cascades on delete; deactivation is cascaded here in one transaction.
// The dia column holds the calendar day of data in the offset it was
// submitted with, since TIMESTAMPTZ keeps only the instant.
type RelatorioRondaPostgresRepository struct {
	pool  *pgxpool.Pool
	table activeTable[entities.RelatorioRonda]
}

var _ interfaces.IRelatorioRondaRepository = (*RelatorioRondaPostgresRepository)(nil)

func NewRelatorioRondaPostgresRepository(pool *pgxpool.Pool) *RelatorioRondaPostgresRepository {
	return &RelatorioRondaPostgresRepository{
		pool:  pool,
		table: activeTable[entities.RelatorioRonda]{db: pool, name: relatoriosTable, columns: relatorioColumns, scan: scanRelatorio},
	}
}

func (r *RelatorioRondaPostgresRepository) List(ctx context.Context, include entities.Include) ([]entities.RelatorioRonda, error) {
	return r.listWhere(ctx, include, "")
}

func (r *RelatorioRondaPostgresRepository) ListByEmpresa(ctx context.Context, empresaID int, include entities.Include) ([]entities.RelatorioRonda, error) {
	return r.listWhere(ctx, include, "empresa_id = $1", empresaID)
}

func (r *RelatorioRondaPostgresRepository) ListByVigilante(ctx context.Context, vigilanteID int, include entities.Include) ([]entities.RelatorioRonda, error) {
	return r.listWhere(ctx, include, "vigilante_id = $1", vigilanteID)
}

func (r *RelatorioRondaPostgresRepository) ListByData(ctx context.Context, dia time.Time, include entities.Include) ([]entities.RelatorioRonda, error) {
	return r.listWhere(ctx, include, "dia = $1", entities.Dia(dia))
}

func (r *RelatorioRondaPostgresRepository) listWhere(ctx context.Context, include entities.Include, where string, args ...any) ([]entities.RelatorioRonda, error) {
	list, err := r.table.list(ctx, where, relatorioOrder, args...)
	if err != nil {
		return nil, err
	}
	return list, r.hydrate(ctx, list, include)
}

func (r *RelatorioRondaPostgresRepository) GetByID(ctx context.Context, id int, include entities.Include) (entities.RelatorioRonda, error) {
	rel, err := r.table.get(ctx, id)
	if err != nil || rel.ID == 0 {
		return rel, err
	}
	list := []entities.RelatorioRonda{rel}
	if err := r.hydrate(ctx, list, include); err != nil {
		return entities.RelatorioRonda{}, err
	}
	return list[0], nil
}

func (r *RelatorioRondaPostgresRepository) Create(ctx context.Context, rel entities.RelatorioRonda) (entities.RelatorioRonda, error) {
	err := r.pool.QueryRow(ctx,
		`INSERT INTO relatorios_ronda
		   (empresa_id, vigilante_id, data, dia, km_saida, km_chegada, testemunha_saida, testemunha_chegada)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		 RETURNING id, ativo, criado_em`,
		rel.EmpresaID, rel.VigilanteID, rel.Data, entities.Dia(rel.Data), rel.KmSaida, rel.KmChegada, rel.TestemunhaSaida, rel.TestemunhaChegada,
	).Scan(&rel.ID, &rel.Ativo, &rel.CriadoEm)
	if err != nil {
		return entities.RelatorioRonda{}, classifyPgError(err)
	}
	return rel, nil
}

func (r *RelatorioRondaPostgresRepository) Update(ctx context.Context, rel entities.RelatorioRonda) error {
	return r.table.exec(ctx,
		`UPDATE relatorios_ronda
		 SET empresa_id = $1, vigilante_id = $2, data = $3, dia = $4, km_saida = $5, km_chegada = $6,
		     testemunha_saida = $7, testemunha_chegada = $8
		 WHERE id = $9 AND ativo`,
		rel.EmpresaID, rel.VigilanteID, rel.Data, entities.Dia(rel.Data), rel.KmSaida, rel.KmChegada,
		rel.TestemunhaSaida, rel.TestemunhaChegada, rel.ID,
	)
}

func (r *RelatorioRondaPostgresRepository) Delete(ctx context.Context, id int) error {
	return r.table.delete(ctx, id)
}

func (r *RelatorioRondaPostgresRepository) Deactivate(ctx context.Context, id int) error {
	return database.WithTx(ctx, r.pool, func(ctx context.Context, tx pgx.Tx) error {
		if _, err := tx.Exec(ctx, `UPDATE voltas_ronda SET ativo = false WHERE relatorio_ronda_id = $1 AND ativo`, id); err != nil {
			return err
		}
		_, err := tx.Exec(ctx, `UPDATE relatorios_ronda SET ativo = false WHERE id = $1 AND ativo`, id)
		return err
	})
}

func (r *RelatorioRondaPostgresRepository) ExistsActive(ctx context.Context, id int) (bool, error) {
	return r.table.existsActive(ctx, id)
}

func (r *RelatorioRondaPostgresRepository) ExistsForDay(ctx context.Context, chave entities.ChaveDia, excludeID int) (bool, error) {
	return r.table.exists(ctx,
		"empresa_id = $1 AND vigilante_id = $2 AND dia = $3 AND id <> $4",
		chave.EmpresaID, chave.VigilanteID, entities.Dia(chave.Dia), excludeID,
	)
}

func (r *RelatorioRondaPostgresRepository) hydrate(ctx context.Context, list []entities.RelatorioRonda, include entities.Include) error {
	if len(list) == 0 {
		return nil
	}

	if include.Has(entities.IncludeEmpresa) {
		empresas, err := byID(ctx, r.pool, empresasTable, empresaColumns, scanEmpresa,
			ids(list, func(rel entities.RelatorioRonda) int { return rel.EmpresaID }))
		if err != nil {
			return err
		}
		for i := range list {
			if e, ok := empresas[list[i].EmpresaID]; ok {
				list[i].Empresa = &e
			}
		}
	}

	if include.Has(entities.IncludeVigilante) {
		vigilantes, err := byID(ctx, r.pool, usuariosTable, usuarioColumns, scanUsuario,
			ids(list, func(rel entities.RelatorioRonda) int { return rel.VigilanteID }))
		if err != nil {
			return err
		}
		for i := range list {
			if v, ok := vigilantes[list[i].VigilanteID]; ok {
				list[i].Vigilante = &v
			}
		}
	}

	if include.Has(entities.IncludeVoltas) {
		voltas, err := collect(ctx, r.pool, scanVolta,
			"SELECT "+voltaColumns+" FROM voltas_ronda WHERE ativo AND relatorio_ronda_id = ANY($1) ORDER BY numero_volta",
			ids(list, func(rel entities.RelatorioRonda) int { return rel.ID }))
		if err != nil {
			return err
		}
		byRelatorio := make(map[int][]entities.VoltaRonda, len(list))
		for _, v := range voltas {
			byRelatorio[v.RelatorioRondaID] = append(byRelatorio[v.RelatorioRondaID], v)
		}
		for i := range list {
			list[i].Voltas = byRelatorio[list[i].ID]
		}
	}
	return nil
}

func scanRelatorio(row pgx.Row) (entities.RelatorioRonda, error) {
	var rel entities.RelatorioRonda
	err := row.Scan(
		&rel.ID, &rel.EmpresaID, &rel.VigilanteID, &rel.Data,
		&rel.KmSaida, &rel.KmChegada, &rel.TestemunhaSaida, &rel.TestemunhaChegada,
		&rel.Ativo, &rel.CriadoEm,
	)
	return rel, err
}
