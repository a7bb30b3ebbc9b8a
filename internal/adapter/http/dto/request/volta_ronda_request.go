package request

import "relatorio_ronda/internal/usecase"

type VoltaRondaRequest struct {
	RelatorioRondaID int       `json:"relatorioRondaId" binding:"gte=1"`
	NumeroVolta      int       `json:"numeroVolta" binding:"gte=1,lte=99"`
	HoraSaida        *DateTime `json:"horaSaida" swaggertype:"string"`
	HoraChegada      *DateTime `json:"horaChegada" swaggertype:"string"`
	HoraDescanso     *DateTime `json:"horaDescanso" swaggertype:"string"`
	Observacoes      *string   `json:"observacoes" binding:"omitempty,max=500"`
}

func (r VoltaRondaRequest) ToInput() usecase.VoltaRondaInput {
	return usecase.VoltaRondaInput{
		RelatorioRondaID: r.RelatorioRondaID,
		NumeroVolta:      r.NumeroVolta,
		HoraSaida:        r.HoraSaida.Ptr(),
		HoraChegada:      r.HoraChegada.Ptr(),
		HoraDescanso:     r.HoraDescanso.Ptr(),
		Observacoes:      r.Observacoes,
	}
}
