package response

import (
	"time"

	"relatorio_ronda/internal/domain/entities"
)

// RelatorioRondaResumo is the report as seen from one of its laps, without
// the laps themselves.
type RelatorioRondaResumo struct {
	ID          int       `json:"id"`
	EmpresaID   int       `json:"empresaId"`
	VigilanteID int       `json:"vigilanteId"`
	Data        time.Time `json:"data"`
	Ativo       bool      `json:"ativo"`
}

type RelatorioRondaResponse struct {
	ID                int                `json:"id"`
	EmpresaID         int                `json:"empresaId"`
	VigilanteID       int                `json:"vigilanteId"`
	Data              time.Time          `json:"data"`
	KmSaida           *float64           `json:"kmSaida"`
	KmChegada         *float64           `json:"kmChegada"`
	TestemunhaSaida   *string            `json:"testemunhaSaida"`
	TestemunhaChegada *string            `json:"testemunhaChegada"`
	Ativo             bool               `json:"ativo"`
	CriadoEm          time.Time          `json:"criadoEm"`
	Empresa           *EmpresaResumo     `json:"empresa,omitempty"`
	Vigilante         *UsuarioResumo     `json:"vigilante,omitempty"`
	Voltas            []VoltaRondaResumo `json:"voltas"`
}

func FromRelatorioRonda(r entities.RelatorioRonda) RelatorioRondaResponse {
	resp := RelatorioRondaResponse{
		ID:                r.ID,
		EmpresaID:         r.EmpresaID,
		VigilanteID:       r.VigilanteID,
		Data:              r.Data,
		KmSaida:           r.KmSaida,
		KmChegada:         r.KmChegada,
		TestemunhaSaida:   r.TestemunhaSaida,
		TestemunhaChegada: r.TestemunhaChegada,
		Ativo:             r.Ativo,
		CriadoEm:          r.CriadoEm,
		Empresa:           resumoEmpresa(r.Empresa),
		Voltas:            make([]VoltaRondaResumo, 0, len(r.Voltas)),
	}
	if r.Vigilante != nil {
		v := resumoUsuario(*r.Vigilante)
		resp.Vigilante = &v
	}
	for _, v := range r.Voltas {
		resp.Voltas = append(resp.Voltas, resumoVolta(v))
	}
	return resp
}

func FromRelatoriosRonda(list []entities.RelatorioRonda) []RelatorioRondaResponse {
	out := make([]RelatorioRondaResponse, 0, len(list))
	for _, r := range list {
		out = append(out, FromRelatorioRonda(r))
	}
	return out
}

func resumoRelatorio(r *entities.RelatorioRonda) *RelatorioRondaResumo {
	if r == nil {
		return nil
	}
	return &RelatorioRondaResumo{
		ID:          r.ID,
		EmpresaID:   r.EmpresaID,
		VigilanteID: r.VigilanteID,
		Data:        r.Data,
		Ativo:       r.Ativo,
	}
}
