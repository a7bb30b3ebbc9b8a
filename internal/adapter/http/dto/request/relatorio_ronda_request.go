package request

import "relatorio_ronda/internal/usecase"

type RelatorioRondaRequest struct {
	EmpresaID         int       `json:"empresaId" binding:"gte=1"`
	VigilanteID       int       `json:"vigilanteId" binding:"gte=1"`
	Data              *DateTime `json:"data" binding:"required" swaggertype:"string"`
	KmSaida           *float64  `json:"kmSaida" binding:"omitempty,gte=0,lte=999999.99"`
	KmChegada         *float64  `json:"kmChegada" binding:"omitempty,gte=0,lte=999999.99"`
	TestemunhaSaida   *string   `json:"testemunhaSaida" binding:"omitempty,max=100"`
	TestemunhaChegada *string   `json:"testemunhaChegada" binding:"omitempty,max=100"`
}

func (r RelatorioRondaRequest) ToInput() usecase.RelatorioRondaInput {
	return usecase.RelatorioRondaInput{
		EmpresaID:         r.EmpresaID,
		VigilanteID:       r.VigilanteID,
		Data:              r.Data.Value(),
		KmSaida:           r.KmSaida,
		KmChegada:         r.KmChegada,
		TestemunhaSaida:   r.TestemunhaSaida,
		TestemunhaChegada: r.TestemunhaChegada,
	}
}
