package response

import (
	"time"

	"relatorio_ronda/internal/domain/entities"
)

// EmpresaResumo is how a company appears nested in other resources.
type EmpresaResumo struct {
	ID    int    `json:"id"`
	Nome  string `json:"nome"`
	Ativo bool   `json:"ativo"`
}

type EmpresaResponse struct {
	ID       int             `json:"id"`
	Nome     string          `json:"nome"`
	Ativo    bool            `json:"ativo"`
	CriadoEm time.Time       `json:"criadoEm"`
	Usuarios []UsuarioResumo `json:"usuarios,omitempty"`
}

func FromEmpresa(e entities.Empresa) EmpresaResponse {
	resp := EmpresaResponse{
		ID:       e.ID,
		Nome:     e.Nome,
		Ativo:    e.Ativo,
		CriadoEm: e.CriadoEm,
	}
	if e.Usuarios != nil {
		resp.Usuarios = make([]UsuarioResumo, 0, len(e.Usuarios))
		for _, u := range e.Usuarios {
			resp.Usuarios = append(resp.Usuarios, resumoUsuario(u))
		}
	}
	return resp
}

func FromEmpresas(list []entities.Empresa) []EmpresaResponse {
	out := make([]EmpresaResponse, 0, len(list))
	for _, e := range list {
		out = append(out, FromEmpresa(e))
	}
	return out
}

func resumoEmpresa(e *entities.Empresa) *EmpresaResumo {
	if e == nil {
		return nil
	}
	return &EmpresaResumo{ID: e.ID, Nome: e.Nome, Ativo: e.Ativo}
}
