package entities

import (
	"testing"
	"time"
)

func TestFound(t *testing.T) {
	if Found(Empresa{}) {
		t.Fatalf("zero value must not be found")
	}
	if Found(Empresa{Base: Base{ID: 1, Ativo: false}}) {
		t.Fatalf("inactive row must not be found")
	}
	if !Found(Empresa{Base: Base{ID: 1, Ativo: true}}) {
		t.Fatalf("active row must be found")
	}
}

func TestInclude_Has(t *testing.T) {
	inc := IncludeEmpresa | IncludeVoltas
	if !inc.Has(IncludeEmpresa) || !inc.Has(IncludeVoltas) {
		t.Fatalf("expected flags set: %b", inc)
	}
	if inc.Has(IncludeVigilante) || IncludeNone.Has(IncludeEmpresa) {
		t.Fatalf("unexpected flag set: %b", inc)
	}
}

func TestChaveDia_Same(t *testing.T) {
	base := RelatorioRonda{EmpresaID: 1, VigilanteID: 2, Data: time.Date(2024, 1, 5, 8, 0, 0, 0, time.UTC)}
	sameDay := base
	sameDay.Data = time.Date(2024, 1, 5, 23, 59, 0, 0, time.UTC)
	nextDay := base
	nextDay.Data = time.Date(2024, 1, 6, 0, 0, 0, 0, time.UTC)
	otherGuard := base
	otherGuard.VigilanteID = 3

	if !base.Chave().Same(sameDay.Chave()) {
		t.Fatalf("expected same key for same calendar day")
	}
	if base.Chave().Same(nextDay.Chave()) {
		t.Fatalf("expected different key for next day")
	}
	if base.Chave().Same(otherGuard.Chave()) {
		t.Fatalf("expected different key for another guard")
	}
}

func TestDia(t *testing.T) {
	loc := time.FixedZone("BRT", -3*3600)
	got := Dia(time.Date(2024, 1, 5, 22, 30, 0, 0, loc))
	want := time.Date(2024, 1, 5, 0, 0, 0, 0, loc)
	if !got.Equal(want) {
		t.Fatalf("expected %v, got %v", want, got)
	}
}

func TestFuncao(t *testing.T) {
	if !FuncaoVigilante.Valid() || Funcao(0).Valid() || Funcao(4).Valid() {
		t.Fatalf("unexpected role validity")
	}
	if FuncaoAdminEmpresa.String() != "admin_empresa" {
		t.Fatalf("unexpected role name %q", FuncaoAdminEmpresa.String())
	}
}
