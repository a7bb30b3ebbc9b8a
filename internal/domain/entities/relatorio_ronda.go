package entities

import "time"

// RelatorioRonda is the patrol report a guard fills for a company on a given day.
//
// Domain notes:
//   - At most one active report exists per (EmpresaID, VigilanteID, calendar day of Data).
//   - The report owns its Voltas: a hard delete removes them and a deactivation
//     deactivates them.
//   - Empresa, Vigilante and Voltas are only filled when the read asks for them.
type RelatorioRonda struct {
	Base
	EmpresaID         int          `json:"empresaId"`
	VigilanteID       int          `json:"vigilanteId"`
	Data              time.Time    `json:"data"`
	KmSaida           *float64     `json:"kmSaida"`
	KmChegada         *float64     `json:"kmChegada"`
	TestemunhaSaida   *string      `json:"testemunhaSaida"`
	TestemunhaChegada *string      `json:"testemunhaChegada"`
	Empresa           *Empresa     `json:"empresa,omitempty"`
	Vigilante         *Usuario     `json:"vigilante,omitempty"`
	Voltas            []VoltaRonda `json:"voltas,omitempty"`
}

// ChaveDia is the uniqueness key of a report.
type ChaveDia struct {
	EmpresaID   int
	VigilanteID int
	Dia         time.Time
}

func (r RelatorioRonda) Chave() ChaveDia {
	return ChaveDia{EmpresaID: r.EmpresaID, VigilanteID: r.VigilanteID, Dia: Dia(r.Data)}
}

// Same compares two keys by company, guard and calendar day.
func (k ChaveDia) Same(other ChaveDia) bool {
	return k.EmpresaID == other.EmpresaID &&
		k.VigilanteID == other.VigilanteID &&
		MesmoDia(k.Dia, other.Dia)
}
