package request

import "relatorio_ronda/internal/usecase"

type EmpresaRequest struct {
	Nome string `json:"nome" binding:"required,max=100"`
}

func (r EmpresaRequest) ToInput() usecase.EmpresaInput {
	return usecase.EmpresaInput{Nome: r.Nome}
}
