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

type voltaItem struct {
	ID               int     `dynamodbav:"id"`
	RelatorioRondaID int     `dynamodbav:"relatorio_ronda_id"`
	NumeroVolta      int     `dynamodbav:"numero_volta"`
	HoraSaida        *string `dynamodbav:"hora_saida"`
	HoraChegada      *string `dynamodbav:"hora_chegada"`
	HoraDescanso     *string `dynamodbav:"hora_descanso"`
	Observacoes      *string `dynamodbav:"observacoes"`
	Ativo            bool    `dynamodbav:"ativo"`
	CriadoEm         string  `dynamodbav:"criado_em"`
}

// VoltaRondaDynamoRepository persists laps in DynamoDB.
//
// Table requirements:
//   - PK: id (number)
//   - GSI: relatorio_ronda_id-index (PK: relatorio_ronda_id)
type VoltaRondaDynamoRepository struct {
	table      dynamoTable[entities.VoltaRonda, voltaItem]
	relatorios dynamoTable[entities.RelatorioRonda, relatorioItem]
	ids        idCounter
}

var _ interfaces.IVoltaRondaRepository = (*VoltaRondaDynamoRepository)(nil)

func NewVoltaRondaDynamoRepository(ddb *dynamodb.Client, tables config.DynamoDBTables) *VoltaRondaDynamoRepository {
	return &VoltaRondaDynamoRepository{
		table:      newVoltaTable(ddb, tables),
		relatorios: newRelatorioTable(ddb, tables),
		ids:        idCounter{ddb: ddb, name: tables.Contadores},
	}
}

func newVoltaTable(ddb *dynamodb.Client, tables config.DynamoDBTables) dynamoTable[entities.VoltaRonda, voltaItem] {
	return dynamoTable[entities.VoltaRonda, voltaItem]{ddb: ddb, name: tables.Voltas, from: fromVoltaItem}
}

func (r *VoltaRondaDynamoRepository) List(ctx context.Context, include entities.Include) ([]entities.VoltaRonda, error) {
	list, err := r.table.scan(ctx, filter{}.active())
	if err != nil {
		return nil, err
	}
	sortVoltas(list)
	return list, r.hydrate(ctx, list, include)
}

func (r *VoltaRondaDynamoRepository) ListByRelatorio(ctx context.Context, relatorioRondaID int, include entities.Include) ([]entities.VoltaRonda, error) {
	list, err := r.table.queryIndex(ctx, indexRelatorioRondaID, "relatorio_ronda_id", numberAttr(relatorioRondaID), filter{}.active())
	if err != nil {
		return nil, err
	}
	sortVoltas(list)
	return list, r.hydrate(ctx, list, include)
}

func (r *VoltaRondaDynamoRepository) GetByID(ctx context.Context, id int, include entities.Include) (entities.VoltaRonda, error) {
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

func (r *VoltaRondaDynamoRepository) Create(ctx context.Context, v entities.VoltaRonda) (entities.VoltaRonda, error) {
	id, err := r.ids.next(ctx, r.table.name)
	if err != nil {
		return entities.VoltaRonda{}, err
	}
	v.ID, v.Ativo, v.CriadoEm = id, true, time.Now().UTC()
	if err := r.table.create(ctx, toVoltaItem(v)); err != nil {
		return entities.VoltaRonda{}, err
	}
	return v, nil
}

func (r *VoltaRondaDynamoRepository) Update(ctx context.Context, v entities.VoltaRonda) error {
	return r.table.replace(ctx, toVoltaItem(v))
}

func (r *VoltaRondaDynamoRepository) Delete(ctx context.Context, id int) error {
	return r.table.delete(ctx, id)
}

func (r *VoltaRondaDynamoRepository) Deactivate(ctx context.Context, id int) error {
	return r.table.deactivate(ctx, id)
}

func (r *VoltaRondaDynamoRepository) ExistsActive(ctx context.Context, id int) (bool, error) {
	return r.table.existsActive(ctx, id)
}

func (r *VoltaRondaDynamoRepository) NumeroExists(ctx context.Context, relatorioRondaID, numeroVolta, excludeID int) (bool, error) {
	f := filter{}.active().
		and("#numero = :numero",
			map[string]string{"#numero": "numero_volta"},
			map[string]types.AttributeValue{":numero": numberAttr(numeroVolta)}).
		excluding(excludeID)
	found, err := r.table.queryIndex(ctx, indexRelatorioRondaID, "relatorio_ronda_id", numberAttr(relatorioRondaID), f)
	return len(found) > 0, err
}

func (r *VoltaRondaDynamoRepository) hydrate(ctx context.Context, list []entities.VoltaRonda, include entities.Include) error {
	if len(list) == 0 || !include.Has(entities.IncludeRelatorio) {
		return nil
	}
	relatorios, err := r.relatorios.byIDAny(ctx, ids(list, func(v entities.VoltaRonda) int { return v.RelatorioRondaID }))
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

func sortVoltas(list []entities.VoltaRonda) {
	slices.SortFunc(list, func(a, b entities.VoltaRonda) int {
		return cmp.Or(a.RelatorioRondaID-b.RelatorioRondaID, a.NumeroVolta-b.NumeroVolta, a.ID-b.ID)
	})
}

func toVoltaItem(v entities.VoltaRonda) voltaItem {
	return voltaItem{
		ID:               v.ID,
		RelatorioRondaID: v.RelatorioRondaID,
		NumeroVolta:      v.NumeroVolta,
		HoraSaida:        formatOptionalTime(v.HoraSaida),
		HoraChegada:      formatOptionalTime(v.HoraChegada),
		HoraDescanso:     formatOptionalTime(v.HoraDescanso),
		Observacoes:      v.Observacoes,
		Ativo:            v.Ativo,
		CriadoEm:         formatTime(v.CriadoEm),
	}
}

func fromVoltaItem(it voltaItem) entities.VoltaRonda {
	return entities.VoltaRonda{
		Base:             entities.Base{ID: it.ID, Ativo: it.Ativo, CriadoEm: parseTime(it.CriadoEm)},
		RelatorioRondaID: it.RelatorioRondaID,
		NumeroVolta:      it.NumeroVolta,
		HoraSaida:        parseOptionalTime(it.HoraSaida),
		HoraChegada:      parseOptionalTime(it.HoraChegada),
		HoraDescanso:     parseOptionalTime(it.HoraDescanso),
		Observacoes:      it.Observacoes,
	}
}
