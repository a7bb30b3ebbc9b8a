package repository

import (
	"context"

	"relatorio_ronda/internal/domain/entities"
	"relatorio_ronda/internal/usecase/interfaces"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const (
	empresasTable  = "empresas"
	empresaColumns  = "id, nome, ativo, criado_em"
)

// EmpresaPostgresRepository persists Empresa rows in the empresas table.
type EmpresaPostgresRepository struct {
	pool  *pgxpool.Pool
	table activeTable[entities.Empresa]
}

var _ interfaces.IEmpresaRepository = (*EmpresaPostgresRepository)(nil)

func NewEmpresaPostgresRepository(pool *pgxpool.Pool) *EmpresaPostgresRepository {
	return &EmpresaPostgresRepository{
		pool:  pool,
		table: activeTable[entities.Empresa]{db: pool, name: empresasTable, columns: empresaColumns, scan: scanEmpresa},
	}
}

func (r *EmpresaPostgresRepository) List(ctx context.Context, include entities.Include) ([]entities.Empresa, error) {
	list, err := r.table.list(ctx, "", "id")
	if err != nil {
		return nil, err
	}
	return list, r.hydrate(ctx, list, include)
}

func (r *EmpresaPostgresRepository) GetByID(ctx context.Context, id int, include entities.Include) (entities.Empresa, error) {
	e, err := r.table.get(ctx, id)
	if err != nil || e.ID == 0 {
		return e, err
	}
	list := []entities.Empresa{e}
	if err := r.hydrate(ctx, list, include); err != nil {
		return entities.Empresa{}, err
	}
	return list[0], nil
}

func (r *EmpresaPostgresRepository) Create(ctx context.Context, e entities.Empresa) (entities.Empresa, error) {
	err := r.pool.QueryRow(ctx,
		`INSERT INTO empresas (nome) VALUES ($1) RETURNING id, ativo, criado_em`,
		e.Nome,
	).Scan(&e.ID, &e.Ativo, &e.CriadoEm)
	if err != nil {
		return entities.Empresa{}, classifyPgError(err)
	}
	return e, nil
}

func (r *EmpresaPostgresRepository) Update(ctx context.Context, e entities.Empresa) error {
	return r.table.exec(ctx, `UPDATE empresas SET nome = $1 WHERE id = $2 AND ativo`, e.Nome, e.ID)
}

func (r *EmpresaPostgresRepository) Delete(ctx context.Context, id int) error {
	return r.table.delete(ctx, id)
}

func (r *EmpresaPostgresRepository) Deactivate(ctx context.Context, id int) error {
	return r.table.deactivate(ctx, id)
}

func (r *EmpresaPostgresRepository) ExistsActive(ctx context.Context, id int) (bool, error) {
	return r.table.existsActive(ctx, id)
}

func (r *EmpresaPostgresRepository) NomeExists(ctx context.Context, nome string, excludeID int) (bool, error) {
	return r.table.exists(ctx, "nome = $1 AND id <> $2", nome, excludeID)
}

func (r *EmpresaPostgresRepository) hydrate(ctx context.Context, list []entities.Empresa, include entities.Include) error {
	if !include.Has(entities.IncludeUsuarios) || len(list) == 0 {
		return nil
	}
	keys := ids(list, func(e entities.Empresa) int { return e.ID })
	usuarios, err := collect(ctx, r.pool, scanUsuario,
		"SELECT "+usuarioColumns+" FROM usuarios WHERE ativo AND empresa_id = ANY($1) ORDER BY id", keys)
	if err != nil {
		return err
	}
	byEmpresa := make(map[int][]entities.Usuario, len(list))
	for _, u := range usuarios {
		byEmpresa[u.EmpresaID] = append(byEmpresa[u.EmpresaID], u)
	}
	for i := range list {
		list[i].Usuarios = byEmpresa[list[i].ID]
		if list[i].Usuarios == nil {
			list[i].Usuarios = []entities.Usuario{}
		}
	}
	return nil
}

func scanEmpresa(row pgx.Row) (entities.Empresa, error) {
	var e entities.Empresa
	err := row.Scan(&e.ID, &e.Nome, &e.Ativo, &e.CriadoEm)
	return e, err
}
