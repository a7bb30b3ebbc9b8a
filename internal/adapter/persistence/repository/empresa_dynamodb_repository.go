package repository

import (
	"context"
	"fmt"
	"slices"
	"time"

	"relatorio_ronda/internal/domain/entities"
	"relatorio_ronda/internal/infrastructure/config"
	"relatorio_ronda/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

type empresaItem struct {
	ID       int    `dynamodbav:"id"`
	Nome     string `dynamodbav:"nome"`
	Ativo    bool   `dynamodbav:"ativo"`
	CriadoEm string `dynamodbav:"criado_em"`
}

// EmpresaDynamoRepository persists Empresa entities in DynamoDB.
//
// Table requirements:
//   - PK: id (number)
//   - GSI: nome-index (PK: nome)
//
// Deletion is refused while any usuario or relatório points at the company,
// which the usuarios and relatorios_ronda tables answer through empresa_id-index.
type EmpresaDynamoRepository struct {
	table      dynamoTable[entities.Empresa, empresaItem]
	usuarios   dynamoTable[entities.Usuario, usuarioItem]
	relatorios dynamoTable[entities.RelatorioRonda, relatorioItem]
	ids        idCounter
}

var _ interfaces.IEmpresaRepository = (*EmpresaDynamoRepository)(nil)

func NewEmpresaDynamoRepository(ddb *dynamodb.Client, tables config.DynamoDBTables) *EmpresaDynamoRepository {
	return &EmpresaDynamoRepository{
		table:      newEmpresaTable(ddb, tables),
		usuarios:   newUsuarioTable(ddb, tables),
		relatorios: newRelatorioTable(ddb, tables),
		ids:        idCounter{ddb: ddb, name: tables.Contadores},
	}
}

func newEmpresaTable(ddb *dynamodb.Client, tables config.DynamoDBTables) dynamoTable[entities.Empresa, empresaItem] {
	return dynamoTable[entities.Empresa, empresaItem]{ddb: ddb, name: tables.Empresas, from: fromEmpresaItem}
}

func (r *EmpresaDynamoRepository) List(ctx context.Context, include entities.Include) ([]entities.Empresa, error) {
	list, err := r.table.scan(ctx, filter{}.active())
	if err != nil {
		return nil, err
	}
	slices.SortFunc(list, func(a, b entities.Empresa) int { return a.ID - b.ID })
	return list, r.hydrate(ctx, list, include)
}

func (r *EmpresaDynamoRepository) GetByID(ctx context.Context, id int, include entities.Include) (entities.Empresa, error) {
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

func (r *EmpresaDynamoRepository) Create(ctx context.Context, e entities.Empresa) (entities.Empresa, error) {
	id, err := r.ids.next(ctx, r.table.name)
	if err != nil {
		return entities.Empresa{}, err
	}
	e.ID, e.Ativo, e.CriadoEm = id, true, time.Now().UTC()
	if err := r.table.create(ctx, toEmpresaItem(e)); err != nil {
		return entities.Empresa{}, err
	}
	return e, nil
}

func (r *EmpresaDynamoRepository) Update(ctx context.Context, e entities.Empresa) error {
	return r.table.replace(ctx, toEmpresaItem(e))
}

func (r *EmpresaDynamoRepository) Delete(ctx context.Context, id int) error {
	key := numberAttr(id)
	usuarios, err := r.usuarios.queryIndex(ctx, indexEmpresaID, "empresa_id", key, filter{})
	if err != nil {
		return err
	}
	relatorios, err := r.relatorios.queryIndex(ctx, indexEmpresaID, "empresa_id", key, filter{})
	if err != nil {
		return err
	}
	if len(usuarios) > 0 || len(relatorios) > 0 {
		return fmt.Errorf("%w: empresa %d", interfaces.ErrForeignKeyViolation, id)
	}
	return r.table.delete(ctx, id)
}

func (r *EmpresaDynamoRepository) Deactivate(ctx context.Context, id int) error {
	return r.table.deactivate(ctx, id)
}

func (r *EmpresaDynamoRepository) ExistsActive(ctx context.Context, id int) (bool, error) {
	return r.table.existsActive(ctx, id)
}

func (r *EmpresaDynamoRepository) NomeExists(ctx context.Context, nome string, excludeID int) (bool, error) {
	found, err := r.table.queryIndex(ctx, indexNome, "nome", &types.AttributeValueMemberS{Value: nome},
		filter{}.active().excluding(excludeID))
	return len(found) > 0, err
}

func (r *EmpresaDynamoRepository) hydrate(ctx context.Context, list []entities.Empresa, include entities.Include) error {
	if !include.Has(entities.IncludeUsuarios) {
		return nil
	}
	for i := range list {
		usuarios, err := r.usuarios.queryIndex(ctx, indexEmpresaID, "empresa_id", numberAttr(list[i].ID), filter{}.active())
		if err != nil {
			return err
		}
		slices.SortFunc(usuarios, func(a, b entities.Usuario) int { return a.ID - b.ID })
		list[i].Usuarios = usuarios
		if list[i].Usuarios == nil {
			list[i].Usuarios = []entities.Usuario{}
		}
	}
	return nil
}

func toEmpresaItem(e entities.Empresa) empresaItem {
	return empresaItem{ID: e.ID, Nome: e.Nome, Ativo: e.Ativo, CriadoEm: formatTime(e.CriadoEm)}
}

func fromEmpresaItem(it empresaItem) entities.Empresa {
	return entities.Empresa{
		Base: entities.Base{ID: it.ID, Ativo: it.Ativo, CriadoEm: parseTime(it.CriadoEm)},
		Nome: it.Nome,
	}
}
