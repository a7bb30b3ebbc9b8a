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

type usuarioItem struct {
	ID        int    `dynamodbav:"id"`
	Nome      string `dynamodbav:"nome"`
	Email     string `dynamodbav:"email"`
	HashSenha string `dynamodbav:"hash_senha"`
	EmpresaID int    `dynamodbav:"empresa_id"`
	Funcao    int    `dynamodbav:"funcao"`
	Ativo     bool   `dynamodbav:"ativo"`
	CriadoEm  string `dynamodbav:"criado_em"`
}

// UsuarioDynamoRepository persists Usuario entities in DynamoDB.
//
// Table requirements:
//   - PK: id (number)
//   - GSI: nome-index (PK: nome), email-index (PK: email), empresa_id-index (PK: empresa_id)
type UsuarioDynamoRepository struct {
	table      dynamoTable[entities.Usuario, usuarioItem]
	empresas   dynamoTable[entities.Empresa, empresaItem]
	relatorios dynamoTable[entities.RelatorioRonda, relatorioItem]
	ids        idCounter
}

var _ interfaces.IUsuarioRepository = (*UsuarioDynamoRepository)(nil)

func NewUsuarioDynamoRepository(ddb *dynamodb.Client, tables config.DynamoDBTables) *UsuarioDynamoRepository {
	return &UsuarioDynamoRepository{
		table:      newUsuarioTable(ddb, tables),
		empresas:   newEmpresaTable(ddb, tables),
		relatorios: newRelatorioTable(ddb, tables),
		ids:        idCounter{ddb: ddb, name: tables.Contadores},
	}
}

func newUsuarioTable(ddb *dynamodb.Client, tables config.DynamoDBTables) dynamoTable[entities.Usuario, usuarioItem] {
	return dynamoTable[entities.Usuario, usuarioItem]{ddb: ddb, name: tables.Usuarios, from: fromUsuarioItem}
}

func (r *UsuarioDynamoRepository) List(ctx context.Context, include entities.Include) ([]entities.Usuario, error) {
	list, err := r.table.scan(ctx, filter{}.active())
	if err != nil {
		return nil, err
	}
	slices.SortFunc(list, func(a, b entities.Usuario) int { return a.ID - b.ID })
	return list, r.hydrate(ctx, list, include)
}

func (r *UsuarioDynamoRepository) GetByID(ctx context.Context, id int, include entities.Include) (entities.Usuario, error) {
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

func (r *UsuarioDynamoRepository) Create(ctx context.Context, u entities.Usuario) (entities.Usuario, error) {
	id, err := r.ids.next(ctx, r.table.name)
	if err != nil {
		return entities.Usuario{}, err
	}
	u.ID, u.Ativo, u.CriadoEm = id, true, time.Now().UTC()
	if err := r.table.create(ctx, toUsuarioItem(u)); err != nil {
		return entities.Usuario{}, err
	}
	return u, nil
}

func (r *UsuarioDynamoRepository) Update(ctx context.Context, u entities.Usuario) error {
	return r.table.replace(ctx, toUsuarioItem(u))
}

func (r *UsuarioDynamoRepository) Delete(ctx context.Context, id int) error {
	relatorios, err := r.relatorios.queryIndex(ctx, indexVigilanteID, "vigilante_id", numberAttr(id), filter{})
	if err != nil {
		return err
	}
	if len(relatorios) > 0 {
		return fmt.Errorf("%w: usuario %d", interfaces.ErrForeignKeyViolation, id)
	}
	return r.table.delete(ctx, id)
}

func (r *UsuarioDynamoRepository) Deactivate(ctx context.Context, id int) error {
	return r.table.deactivate(ctx, id)
}

func (r *UsuarioDynamoRepository) ExistsActive(ctx context.Context, id int) (bool, error) {
	return r.table.existsActive(ctx, id)
}

func (r *UsuarioDynamoRepository) NomeExists(ctx context.Context, nome string, excludeID int) (bool, error) {
	found, err := r.table.queryIndex(ctx, indexNome, "nome", &types.AttributeValueMemberS{Value: nome},
		filter{}.active().excluding(excludeID))
	return len(found) > 0, err
}

func (r *UsuarioDynamoRepository) EmailExists(ctx context.Context, email string, excludeID int) (bool, error) {
	found, err := r.table.queryIndex(ctx, indexEmail, "email", &types.AttributeValueMemberS{Value: email},
		filter{}.active().excluding(excludeID))
	return len(found) > 0, err
}

func (r *UsuarioDynamoRepository) hydrate(ctx context.Context, list []entities.Usuario, include entities.Include) error {
	if !include.Has(entities.IncludeEmpresa) {
		return nil
	}
	empresas, err := r.empresas.byIDAny(ctx, ids(list, func(u entities.Usuario) int { return u.EmpresaID }))
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

func toUsuarioItem(u entities.Usuario) usuarioItem {
	return usuarioItem{
		ID:        u.ID,
		Nome:      u.Nome,
		Email:     u.Email,
		HashSenha: u.HashSenha,
		EmpresaID: u.EmpresaID,
		Funcao:    int(u.Funcao),
		Ativo:     u.Ativo,
		CriadoEm:  formatTime(u.CriadoEm),
	}
}

func fromUsuarioItem(it usuarioItem) entities.Usuario {
	return entities.Usuario{
		Base:      entities.Base{ID: it.ID, Ativo: it.Ativo, CriadoEm: parseTime(it.CriadoEm)},
		Nome:      it.Nome,
		Email:     it.Email,
		HashSenha: it.HashSenha,
		EmpresaID: it.EmpresaID,
		Funcao:    entities.Funcao(it.Funcao),
	}
}
