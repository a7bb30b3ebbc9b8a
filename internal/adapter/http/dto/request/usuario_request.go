package request

import (
	"relatorio_ronda/internal/domain/entities"
	"relatorio_ronda/internal/usecase"
)

// UsuarioRequest is shared by create and update. Senha may be omitted on
// update to keep the current password.
type UsuarioRequest struct {
	Nome      string          `json:"nome" binding:"required,max=100"`
	Email     string          `json:"email" binding:"required,max=100,email"`
	Senha     string          `json:"senha" binding:"omitempty,min=6,max=100"`
	EmpresaID int             `json:"empresaId" binding:"gte=1"`
	Funcao    entities.Funcao `json:"funcao" binding:"oneof=1 2 3"`
}

func (r UsuarioRequest) ToInput() usecase.UsuarioInput {
	return usecase.UsuarioInput{
		Nome:      r.Nome,
		Email:     r.Email,
		Senha:     r.Senha,
		EmpresaID: r.EmpresaID,
		Funcao:    r.Funcao,
	}
}
