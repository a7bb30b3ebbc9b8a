package entities

import "time"

// VoltaRonda is one lap of a patrol. NumeroVolta is unique among the active laps
// of the same report.
type VoltaRonda struct {
	Base
	RelatorioRondaID int             `json:"relatorioRondaId"`
	NumeroVolta      int             `json:"numeroVolta"`
	HoraSaida        *time.Time      `json:"horaSaida"`
	HoraChegada      *time.Time      `json:"horaChegada"`
	HoraDescanso     *time.Time      `json:"horaDescanso"`
	Observacoes      *string         `json:"observacoes"`
	RelatorioRonda   *RelatorioRonda `json:"relatorioRonda,omitempty"`
}
