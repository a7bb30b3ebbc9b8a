package response

import (
	"time"

	"relatorio_ronda/internal/domain/entities"
)

type UsuarioResumo struct {
	ID        int             `json:"id"`
	Nome      string          `json:"nome"`
	Email     string          `json:"email"`
	EmpresaID int             `json:"empresaId"`
	Funcao    entities.Funcao `json:"funcao"`
	Ativo     bool            `json:"ativo"`
}

// UsuarioResponse never carries the password hash.
type UsuarioResponse struct {
	ID        int             `json:"id"`
	Nome      string          `json:"nome"`
	Email     string          `json:"email"`
	EmpresaID int             `json:"empresaId"`
	Funcao    entities.Funcao `json:"funcao"`
	Ativo     bool            `json:"ativo"`
	CriadoEm  time.Time       `json:"criadoEm"`
	Empresa   *EmpresaResumo  `json:"empresa,omitempty"`
}

func FromUsuario(u entities.Usuario) UsuarioResponse {
	return UsuarioResponse{
		ID:        u.ID,
		Nome:      u.Nome,
		Email:     u.Email,
		EmpresaID: u.EmpresaID,
		Funcao:    u.Funcao,
		Ativo:     u.Ativo,
		CriadoEm:  u.CriadoEm,
		Empresa:   resumoEmpresa(u.Empresa),
	}
}

func FromUsuarios(list []entities.Usuario) []UsuarioResponse {
	out := make([]UsuarioResponse, 0, len(list))
	for _, u := range list {
		out = append(out, FromUsuario(u))
	}
	return out
}

func resumoUsuario(u entities.Usuario) UsuarioResumo {
	return UsuarioResumo{
		ID:        u.ID,
		Nome:      u.Nome,
		Email:     u.Email,
		EmpresaID: u.EmpresaID,
		Funcao:    u.Funcao,
		Ativo:     u.Ativo,
	}
}
