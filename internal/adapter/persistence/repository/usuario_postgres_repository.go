package repository

import (
	"context"

	"relatorio_ronda/internal/domain/entities"
	"relatorio_ronda/internal/usecase/interfaces"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const (
	usuariosTable  = "usuarios"
	usuarioColumns = "id, nome, email, hash_senha, empresa_id, funcao, ativo, criado_em"
)

type UsuarioPostgresRepository struct {
	pool  *pgxpool.Pool
	table activeTable[entities.Usuario]
}

var _ interfaces.IUsuarioRepository = (*UsuarioPostgresRepository)(nil)

func NewUsuarioPostgresRepository(pool *pgxpool.Pool) *UsuarioPostgresRepository {
	return &UsuarioPostgresRepository{
		pool:  pool,
		table: activeTable[entities.Usuario]{db: pool, name: usuariosTable, columns: usuarioColumns, scan: scanUsuario},
	}
}

func (r *UsuarioPostgresRepository) List(ctx context.Context, include entities.Include) ([]entities.Usuario, error) {
	list, err := r.table.list(ctx, "", "id")
	if err != nil {
		return nil, err
	}
	return list, r.hydrate(ctx, list, include)
}

func (r *UsuarioPostgresRepository) GetByID(ctx context.Context, id int, include entities.Include) (entities.Usuario, error) {
	u, err := r.table.get(ctx, id)
	if err != nil || u.ID == 0 {
		return u, err
	}
	list := []entities.Usuario{u}
	if err := r.hydrate(ctx, list, include); err != nil {
		return entities.Usuario{}, err
	}
	return list[0], nil
}

func (r *UsuarioPostgresRepository) Create(ctx context.Context, u entities.Usuario) (entities.Usuario, error) {
	err := r.pool.QueryRow(ctx,
		`INSERT INTO usuarios (nome, email, hash_senha, empresa_id, funcao)
		 VALUES ($1, $2, $3, $4, $5)
		 RETURNING id, ativo, criado_em`,
		u.Nome, u.Email, u.HashSenha, u.EmpresaID, int(u.Funcao),
	).Scan(&u.ID, &u.Ativo, &u.CriadoEm)
	if err != nil {
		return entities.Usuario{}, classifyPgError(err)
	}
	return u, nil
}

func (r *UsuarioPostgresRepository) Update(ctx context.Context, u entities.Usuario) error {
	return r.table.exec(ctx,
		`UPDATE usuarios
		 SET nome = $1, email = $2, hash_senha = $3, empresa_id = $4, funcao = $5
		 WHERE id = $6 AND ativo`,
		u.Nome, u.Email, u.HashSenha, u.EmpresaID, int(u.Funcao), u.ID,
	)
}

func (r *UsuarioPostgresRepository) Delete(ctx context.Context, id int) error {
	return r.table.delete(ctx, id)
}

func (r *UsuarioPostgresRepository) Deactivate(ctx context.Context, id int) error {
	return r.table.deactivate(ctx, id)
}

func (r *UsuarioPostgresRepository) ExistsActive(ctx context.Context, id int) (bool, error) {
	return r.table.existsActive(ctx, id)
}

func (r *UsuarioPostgresRepository) NomeExists(ctx context.Context, nome string, excludeID int) (bool, error) {
	return r.table.exists(ctx, "nome = $1 AND id <> $2", nome, excludeID)
}

func (r *UsuarioPostgresRepository) EmailExists(ctx context.Context, email string, excludeID int) (bool, error) {
	return r.table.exists(ctx, "email = $1 AND id <> $2", email, excludeID)
}

func (r *UsuarioPostgresRepository) hydrate(ctx context.Context, list []entities.Usuario, include entities.Include) error {
	if !include.Has(entities.IncludeEmpresa) || len(list) == 0 {
		return nil
	}
	empresas, err := byID(ctx, r.pool, empresasTable, empresaColumns, scanEmpresa,
		ids(list, func(u entities.Usuario) int { return u.EmpresaID }))
	if err != nil {
		return err
	}
	for i := range list {
		if e, ok := empresas[list[i].EmpresaID]; ok {
			list[i].Empresa = &e
		}
	}
	return nil
}

func scanUsuario(row pgx.Row) (entities.Usuario, error) {
	var (
		u      entities.Usuario
		funcao int
	)
	err := row.Scan(&u.ID, &u.Nome, &u.Email, &u.HashSenha, &u.EmpresaID, &funcao, &u.Ativo, &u.CriadoEm)
	u.Funcao = entities.Funcao(funcao)
	return u, err
}
