package handlers

import (
	"bytes"
	"net/http"
	"testing"

	"relatorio_ronda/internal/adapter/http/handlers/mocks"
	"relatorio_ronda/internal/domain/entities"
	"relatorio_ronda/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func newUsuarioRouter(t *testing.T) (*gin.Engine, *mocks.MockIUsuarioUseCase) {
	ctrl := gomock.NewController(t)
	uc := mocks.NewMockIUsuarioUseCase(ctrl)
	h := NewUsuarioHandler(uc)

	r := gin.New()
	g := r.Group("/v1/Usuario")
	g.GET("", h.List)
	g.GET("/:id", h.GetByID)
	g.POST("", h.Create)
	g.PUT("/:id", h.Update)
	g.DELETE("/:id", h.Delete)
	g.DELETE("/desativar/:id", h.Deactivate)
	return r, uc
}

func TestUsuarioHandler(t *testing.T) {
	const payload = `{"nome":"Carlos","email":"carlos@alfa.com","senha":"segredo123","empresaId":1,"funcao":3}`

	t.Run("create never returns the hash", func(t *testing.T) {
		r, uc := newUsuarioRouter(t)
		uc.EXPECT().Create(gomock.Any(), usecase.UsuarioInput{
			Nome: "Carlos", Email: "carlos@alfa.com", Senha: "segredo123", EmpresaID: 1, Funcao: entities.FuncaoVigilante,
		}).Return(entities.Usuario{
			Base: entities.Base{ID: 4, Ativo: true}, Nome: "Carlos", Email: "carlos@alfa.com",
			HashSenha: "$argon2id$v=19$abc", EmpresaID: 1, Funcao: entities.FuncaoVigilante,
		}, nil)

		w := do(r, http.MethodPost, "/v1/Usuario", payload)
		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d", w.Code)
		}
		if bytes.Contains(w.Body.Bytes(), []byte("argon2id")) {
			t.Fatalf("hash leaked: %s", w.Body.String())
		}
	})

	t.Run("invalid role", func(t *testing.T) {
		r, _ := newUsuarioRouter(t)
		w := do(r, http.MethodPost, "/v1/Usuario", `{"nome":"Carlos","email":"carlos@alfa.com","senha":"segredo123","empresaId":1,"funcao":4}`)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("missing company", func(t *testing.T) {
		r, uc := newUsuarioRouter(t)
		uc.EXPECT().Create(gomock.Any(), gomock.Any()).Return(entities.Usuario{}, usecase.ErrEmpresaNotFound)

		w := do(r, http.MethodPost, "/v1/Usuario", payload)
		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})

	t.Run("password required", func(t *testing.T) {
		r, uc := newUsuarioRouter(t)
		uc.EXPECT().Create(gomock.Any(), gomock.Any()).Return(entities.Usuario{}, usecase.ErrUsuarioSenhaObrigatoria)

		w := do(r, http.MethodPost, "/v1/Usuario", `{"nome":"Carlos","email":"carlos@alfa.com","empresaId":1,"funcao":3}`)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("email in use", func(t *testing.T) {
		r, uc := newUsuarioRouter(t)
		uc.EXPECT().Update(gomock.Any(), 4, gomock.Any()).Return(usecase.ErrUsuarioEmailEmUso)

		w := do(r, http.MethodPut, "/v1/Usuario/4", payload)
		if w.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", w.Code)
		}
		if body := decodeError(t, w); body.Message != "Email já está em uso" {
			t.Fatalf("unexpected body: %+v", body)
		}
	})

	t.Run("update without password", func(t *testing.T) {
		r, uc := newUsuarioRouter(t)
		uc.EXPECT().Update(gomock.Any(), 4, usecase.UsuarioInput{
			Nome: "Carlos", Email: "carlos@alfa.com", EmpresaID: 1, Funcao: entities.FuncaoVigilante,
		}).Return(nil)

		w := do(r, http.MethodPut, "/v1/Usuario/4", `{"nome":"Carlos","email":"carlos@alfa.com","empresaId":1,"funcao":3}`)
		if w.Code != http.StatusNoContent {
			t.Fatalf("expected 204, got %d", w.Code)
		}
	})

	t.Run("delete restricted", func(t *testing.T) {
		r, uc := newUsuarioRouter(t)
		uc.EXPECT().Delete(gomock.Any(), 4).Return(usecase.ErrUsuarioEmUso)

		if w := do(r, http.MethodDelete, "/v1/Usuario/4", ""); w.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", w.Code)
		}
	})

	t.Run("get with company", func(t *testing.T) {
		r, uc := newUsuarioRouter(t)
		uc.EXPECT().GetByID(gomock.Any(), 4).Return(entities.Usuario{
			Base: entities.Base{ID: 4, Ativo: true}, Nome: "Carlos", EmpresaID: 1,
			Empresa: &entities.Empresa{Base: entities.Base{ID: 1, Ativo: true}, Nome: "Alfa"},
		}, nil)

		w := do(r, http.MethodGet, "/v1/Usuario/4", "")
		if w.Code != http.StatusOK || !bytes.Contains(w.Body.Bytes(), []byte(`"empresa":{"id":1,"nome":"Alfa"`)) {
			t.Fatalf("unexpected response: %d %s", w.Code, w.Body.String())
		}
	})
}
