package response

import (
	"time"

	"relatorio_ronda/internal/domain/entities"
)

type VoltaRondaResumo struct {
	ID           int        `json:"id"`
	NumeroVolta  int        `json:"numeroVolta"`
	HoraSaida    *time.Time `json:"horaSaida"`
	HoraChegada  *time.Time `json:"horaChegada"`
	HoraDescanso *time.Time `json:"horaDescanso"`
	Observacoes  *string    `json:"observacoes"`
	Ativo        bool       `json:"ativo"`
}

type VoltaRondaResponse struct {
	ID               int                   `json:"id"`
	RelatorioRondaID int                   `json:"relatorioRondaId"`
	NumeroVolta      int                   `json:"numeroVolta"`
	HoraSaida        *time.Time            `json:"horaSaida"`
	HoraChegada      *time.Time            `json:"horaChegada"`
	HoraDescanso     *time.Time            `json:"horaDescanso"`
	Observacoes      *string               `json:"observacoes"`
	Ativo            bool                  `json:"ativo"`
	CriadoEm         time.Time             `json:"criadoEm"`
	RelatorioRonda   *RelatorioRondaResumo `json:"relatorioRonda,omitempty"`
}

func FromVoltaRonda(v entities.VoltaRonda) VoltaRondaResponse {
	return VoltaRondaResponse{
		ID:               v.ID,
		RelatorioRondaID: v.RelatorioRondaID,
		NumeroVolta:      v.NumeroVolta,
		HoraSaida:        v.HoraSaida,
		HoraChegada:      v.HoraChegada,
		HoraDescanso:     v.HoraDescanso,
		Observacoes:      v.Observacoes,
		Ativo:            v.Ativo,
		CriadoEm:         v.CriadoEm,
		RelatorioRonda:   resumoRelatorio(v.RelatorioRonda),
	}
}

func FromVoltasRonda(list []entities.VoltaRonda) []VoltaRondaResponse {
	out := make([]VoltaRondaResponse, 0, len(list))
	for _, v := range list {
		out = append(out, FromVoltaRonda(v))
	}
	return out
}

func resumoVolta(v entities.VoltaRonda) VoltaRondaResumo {
	return VoltaRondaResumo{
		ID:           v.ID,
		NumeroVolta:  v.NumeroVolta,
		HoraSaida:    v.HoraSaida,
		HoraChegada:  v.HoraChegada,
		HoraDescanso: v.HoraDescanso,
		Observacoes:  v.Observacoes,
		Ativo:        v.Ativo,
	}
}
