package repository

import (
	"cmp"
	"context"
	"slices"
	"time"

	"relatorio_ronda/internal/domain/entities"
	"relatorio_ronda/internal/infrastructure/config"
	"relatorio_ronda/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

type relatorioItem struct {
	ID                int      `dynamodbav:"id"`
	EmpresaID         int      `dynamodbav:"empresa_id"`
	VigilanteID       int      `dynamodbav:"vigilante_id"`
	Data              string   `dynamodbav:"data"`
	Dia               string   `dynamodbav:"dia"`
	KmSaida           *float64 `dynamodbav:"km_saida"`
	KmChegada         *float64 `dynamodbav:"km_chegada"`
	TestemunhaSaida   *string  `dynamodbav:"testemunha_saida"`
	TestemunhaChegada *string  `dynamodbav:"testemunha_chegada"`
	Ativo             bool     `dynamodbav:"ativo"`
	CriadoEm          string   `dynamodbav:"criado_em"`
}

// RelatorioRondaDynamoRepository persists reports in DynamoDB.
//
// Table requirements:
//   - PK: id (number)
//   - GSI: empresa_id-index (PK: empresa_id), vigilante_id-index (PK: vigilante_id)
//
// dia holds the calendar day of data and backs the per-day lookups. Laps are
// deleted and deactivated together with their report.
type RelatorioRondaDynamoRepository struct {
	table      dynamoTable[entities.RelatorioRonda, relatorioItem]
	empresas   dynamoTable[entities.Empresa, empresaItem]
	vigilantes dynamoTable[entities.Usuario, usuarioItem]
	voltas     dynamoTable[entities.VoltaRonda, voltaItem]
	ids        idCounter
}

var _ interfaces.IRelatorioRondaRepository = (*RelatorioRondaDynamoRepository)(nil)

func NewRelatorioRondaDynamoRepository(ddb *dynamodb.Client, tables config.DynamoDBTables) *RelatorioRondaDynamoRepository {
	return &RelatorioRondaDynamoRepository{
		table:      newRelatorioTable(ddb, tables),
		empresas:   newEmpresaTable(ddb, tables),
		vigilantes: newUsuarioTable(ddb, tables),
		voltas:     newVoltaTable(ddb, tables),
		ids:        idCounter{ddb: ddb, name: tables.Contadores},
	}
}

func newRelatorioTable(ddb *dynamodb.Client, tables config.DynamoDBTables) dynamoTable[entities.RelatorioRonda, relatorioItem] {
	return dynamoTable[entities.RelatorioRonda, relatorioItem]{ddb: ddb, name: tables.Relatorios, from: fromRelatorioItem}
}

func (r *RelatorioRondaDynamoRepository) List(ctx context.Context, include entities.Include) ([]entities.RelatorioRonda, error) {
	list, err := r.table.scan(ctx, filter{}.active())
	return r.finish(ctx, list, err, include)
}

func (r *RelatorioRondaDynamoRepository) ListByEmpresa(ctx context.Context, empresaID int, include entities.Include) ([]entities.RelatorioRonda, error) {
	list, err := r.table.queryIndex(ctx, indexEmpresaID, "empresa_id", numberAttr(empresaID), filter{}.active())
	return r.finish(ctx, list, err, include)
}

func (r *RelatorioRondaDynamoRepository) ListByVigilante(ctx context.Context, vigilanteID int, include entities.Include) ([]entities.RelatorioRonda, error) {
	list, err := r.table.queryIndex(ctx, indexVigilanteID, "vigilante_id", numberAttr(vigilanteID), filter{}.active())
	return r.finish(ctx, list, err, include)
}

func (r *RelatorioRondaDynamoRepository) ListByData(ctx context.Context, dia time.Time, include entities.Include) ([]entities.RelatorioRonda, error) {
	list, err := r.table.scan(ctx, filter{}.active().and(diaCondition(dia)))
	return r.finish(ctx, list, err, include)
}

// finish orders a listing newest first and attaches the requested relations.
func (r *RelatorioRondaDynamoRepository) finish(ctx context.Context, list []entities.RelatorioRonda, err error, include entities.Include) ([]entities.RelatorioRonda, error) {
	if err != nil {
		return nil, err
	}
	slices.SortFunc(list, func(a, b entities.RelatorioRonda) int {
		return cmp.Or(b.Data.Compare(a.Data), a.ID-b.ID)
	})
	return list, r.hydrate(ctx, list, include)
}

func (r *RelatorioRondaDynamoRepository) GetByID(ctx context.Context, id int, include entities.Include) (entities.RelatorioRonda, error) {
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

func (r *RelatorioRondaDynamoRepository) Create(ctx context.Context, rel entities.RelatorioRonda) (entities.RelatorioRonda, error) {
	id, err := r.ids.next(ctx, r.table.name)
	if err != nil {
		return entities.RelatorioRonda{}, err
	}
	rel.ID, rel.Ativo, rel.CriadoEm = id, true, time.Now().UTC()
	if err := r.table.create(ctx, toRelatorioItem(rel)); err != nil {
		return entities.RelatorioRonda{}, err
	}
	return rel, nil
}

func (r *RelatorioRondaDynamoRepository) Update(ctx context.Context, rel entities.RelatorioRonda) error {
	return r.table.replace(ctx, toRelatorioItem(rel))
}

func (r *RelatorioRondaDynamoRepository) Delete(ctx context.Context, id int) error {
	voltas, err := r.voltas.queryIndex(ctx, indexRelatorioRondaID, "relatorio_ronda_id", numberAttr(id), filter{})
	if err != nil {
		return err
	}
	for _, v := range voltas {
		if err := r.voltas.delete(ctx, v.ID); err != nil {
			return err
		}
	}
	return r.table.delete(ctx, id)
}

func (r *RelatorioRondaDynamoRepository) Deactivate(ctx context.Context, id int) error {
	voltas, err := r.voltas.queryIndex(ctx, indexRelatorioRondaID, "relatorio_ronda_id", numberAttr(id), filter{}.active())
	if err != nil {
		return err
	}
	for _, v := range voltas {
		if err := r.voltas.deactivate(ctx, v.ID); err != nil {
			return err
		}
	}
	return r.table.deactivate(ctx, id)
}

func (r *RelatorioRondaDynamoRepository) ExistsActive(ctx context.Context, id int) (bool, error) {
	return r.table.existsActive(ctx, id)
}

func (r *RelatorioRondaDynamoRepository) ExistsForDay(ctx context.Context, chave entities.ChaveDia, excludeID int) (bool, error) {
	f := filter{}.active().
		and("#empresa = :empresa",
			map[string]string{"#empresa": "empresa_id"},
			map[string]types.AttributeValue{":empresa": numberAttr(chave.EmpresaID)}).
		and(diaCondition(chave.Dia)).
		excluding(excludeID)
	found, err := r.table.queryIndex(ctx, indexVigilanteID, "vigilante_id", numberAttr(chave.VigilanteID), f)
	return len(found) > 0, err
}

func diaCondition(dia time.Time) (string, map[string]string, map[string]types.AttributeValue) {
	return "#dia = :dia",
		map[string]string{"#dia": "dia"},
		map[string]types.AttributeValue{":dia": &types.AttributeValueMemberS{Value: dia.Format(time.DateOnly)}}
}

func (r *RelatorioRondaDynamoRepository) hydrate(ctx context.Context, list []entities.RelatorioRonda, include entities.Include) error {
	if len(list) == 0 {
		return nil
	}

	if include.Has(entities.IncludeEmpresa) {
		empresas, err := r.empresas.byIDAny(ctx, ids(list, func(rel entities.RelatorioRonda) int { return rel.EmpresaID }))
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
		vigilantes, err := r.vigilantes.byIDAny(ctx, ids(list, func(rel entities.RelatorioRonda) int { return rel.VigilanteID }))
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
		for i := range list {
			voltas, err := r.voltas.queryIndex(ctx, indexRelatorioRondaID, "relatorio_ronda_id", numberAttr(list[i].ID), filter{}.active())
			if err != nil {
				return err
			}
			sortVoltas(voltas)
			list[i].Voltas = voltas
		}
	}
	return nil
}

func toRelatorioItem(rel entities.RelatorioRonda) relatorioItem {
	return relatorioItem{
		ID:                rel.ID,
		EmpresaID:         rel.EmpresaID,
		VigilanteID:       rel.VigilanteID,
		Data:              formatTime(rel.Data),
		Dia:               rel.Data.Format(time.DateOnly),
		KmSaida:           rel.KmSaida,
		KmChegada:         rel.KmChegada,
		TestemunhaSaida:   rel.TestemunhaSaida,
		TestemunhaChegada: rel.TestemunhaChegada,
		Ativo:             rel.Ativo,
		CriadoEm:          formatTime(rel.CriadoEm),
	}
}

func fromRelatorioItem(it relatorioItem) entities.RelatorioRonda {
	return entities.RelatorioRonda{
		Base:              entities.Base{ID: it.ID, Ativo: it.Ativo, CriadoEm: parseTime(it.CriadoEm)},
		EmpresaID:         it.EmpresaID,
		VigilanteID:       it.VigilanteID,
		Data:              parseTime(it.Data),
		KmSaida:           it.KmSaida,
		KmChegada:         it.KmChegada,
		TestemunhaSaida:   it.TestemunhaSaida,
		TestemunhaChegada: it.TestemunhaChegada,
	}
}
