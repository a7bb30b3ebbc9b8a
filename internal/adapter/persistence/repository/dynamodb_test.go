package repository

import (
	"testing"
	"time"

	"relatorio_ronda/internal/domain/entities"
	"relatorio_ronda/internal/infrastructure/config"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

func TestFilter(t *testing.T) {
	expr, names, values := filter{}.nilIfEmpty()
	if expr != nil || names != nil || values != nil {
		t.Fatalf("expected empty filter to produce nils")
	}

	f := filter{}.active().excluding(7)
	expr, names, values = f.nilIfEmpty()
	if aws.ToString(expr) != "(#ativo = :ativo) AND #id <> :excluir" {
		t.Fatalf("unexpected expression %q", aws.ToString(expr))
	}
	if names["#ativo"] != "ativo" || names["#id"] != "id" {
		t.Fatalf("unexpected names %v", names)
	}
	if n, ok := values[":excluir"].(*types.AttributeValueMemberN); !ok || n.Value != "7" {
		t.Fatalf("unexpected exclude value %#v", values[":excluir"])
	}

	got := filter{}.active().excluding(0)
	if got.expr != "#ativo = :ativo" {
		t.Fatalf("excluding(0) must not change the filter, got %q", got.expr)
	}
}

func TestFilterAndDoesNotShareMaps(t *testing.T) {
	base := filter{}.active()
	_ = base.excluding(3)
	if _, ok := base.names["#id"]; ok {
		t.Fatalf("and must not mutate the receiver")
	}
}

func TestTimeHelpers(t *testing.T) {
	loc := time.FixedZone("BRT", -3*3600)
	ts := time.Date(2024, 3, 1, 22, 15, 30, 500, loc)
	if got := parseTime(formatTime(ts)); !got.Equal(ts) {
		t.Fatalf("expected %v, got %v", ts, got)
	}
	if formatOptionalTime(nil) != nil || parseOptionalTime(nil) != nil {
		t.Fatalf("expected nil passthrough")
	}
	if got := parseOptionalTime(formatOptionalTime(&ts)); got == nil || !got.Equal(ts) {
		t.Fatalf("unexpected optional time %v", got)
	}
}

func TestRelatorioItemKeepsLocalDay(t *testing.T) {
	loc := time.FixedZone("BRT", -3*3600)
	rel := entities.RelatorioRonda{
		Base:        entities.Base{ID: 4, Ativo: true},
		EmpresaID:   1,
		VigilanteID: 2,
		Data:        time.Date(2024, 3, 1, 23, 30, 0, 0, loc),
	}
	it := toRelatorioItem(rel)
	if it.Dia != "2024-03-01" {
		t.Fatalf("expected local calendar day, got %s", it.Dia)
	}
	back := fromRelatorioItem(it)
	if !back.Data.Equal(rel.Data) || back.ID != 4 || !back.Ativo {
		t.Fatalf("unexpected round trip %+v", back)
	}
}

func TestSortVoltas(t *testing.T) {
	list := []entities.VoltaRonda{
		{Base: entities.Base{ID: 3}, RelatorioRondaID: 2, NumeroVolta: 1},
		{Base: entities.Base{ID: 2}, RelatorioRondaID: 1, NumeroVolta: 2},
		{Base: entities.Base{ID: 1}, RelatorioRondaID: 1, NumeroVolta: 1},
	}
	sortVoltas(list)
	if list[0].ID != 1 || list[1].ID != 2 || list[2].ID != 3 {
		t.Fatalf("unexpected order %+v", list)
	}
}

func TestCreateTableInput(t *testing.T) {
	defs := tableDefs(config.DynamoDBTables{
		Empresas: "empresas", Usuarios: "usuarios", Relatorios: "relatorios_ronda", Voltas: "voltas_ronda", Contadores: "contadores",
	})
	if len(defs) != 5 {
		t.Fatalf("expected 5 tables, got %d", len(defs))
	}

	in := createTableInput(defs[1])
	if aws.ToString(in.TableName) != "usuarios" || len(in.GlobalSecondaryIndexes) != 3 {
		t.Fatalf("unexpected usuarios table %+v", in)
	}
	want := []string{indexEmail, indexEmpresaID, indexNome}
	for i, gsi := range in.GlobalSecondaryIndexes {
		if aws.ToString(gsi.IndexName) != want[i] {
			t.Fatalf("index %d: expected %s, got %s", i, want[i], aws.ToString(gsi.IndexName))
		}
	}

	counters := createTableInput(defs[4])
	if len(counters.GlobalSecondaryIndexes) != 0 || counters.AttributeDefinitions[0].AttributeType != types.ScalarAttributeTypeS {
		t.Fatalf("unexpected counters table %+v", counters)
	}
}
