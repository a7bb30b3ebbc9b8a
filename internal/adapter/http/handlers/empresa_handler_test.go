package handlers

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"relatorio_ronda/internal/adapter/http/dto/request"
	"relatorio_ronda/internal/adapter/http/handlers/mocks"
	"relatorio_ronda/internal/domain/entities"
	"relatorio_ronda/internal/usecase"
	"relatorio_ronda/internal/usecase/interfaces"
	"relatorio_ronda/pkg"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func init() {
	gin.SetMode(gin.TestMode)
	request.UseJSONFieldNames()
}

func newEmpresaRouter(t *testing.T) (*gin.Engine, *mocks.MockIEmpresaUseCase) {
	ctrl := gomock.NewController(t)
	uc := mocks.NewMockIEmpresaUseCase(ctrl)
	h := NewEmpresaHandler(uc)

	r := gin.New()
	g := r.Group("/v1/Empresa")
	g.GET("", h.List)
	g.GET("/:id", h.GetByID)
	g.POST("", h.Create)
	g.PUT("/:id", h.Update)
	g.DELETE("/:id", h.Delete)
	g.DELETE("/desativar/:id", h.Deactivate)
	return r, uc
}

func do(r *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decodeError(t *testing.T, w *httptest.ResponseRecorder) pkg.HTTPError {
	t.Helper()
	var body pkg.HTTPError
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode error body: %v (%s)", err, w.Body.String())
	}
	return body
}

func TestEmpresaHandler_Create(t *testing.T) {
	t.Run("validation errors", func(t *testing.T) {
		r, _ := newEmpresaRouter(t)
		w := do(r, http.MethodPost, "/v1/Empresa", `{"nome":""}`)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
		body := decodeError(t, w)
		if len(body.Errors) != 1 || body.Errors[0] != "O campo nome é obrigatório" {
			t.Fatalf("unexpected errors: %+v", body)
		}
	})

	t.Run("malformed body", func(t *testing.T) {
		r, _ := newEmpresaRouter(t)
		if w := do(r, http.MethodPost, "/v1/Empresa", `{`); w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("conflict", func(t *testing.T) {
		r, uc := newEmpresaRouter(t)
		uc.EXPECT().Create(gomock.Any(), usecase.EmpresaInput{Nome: "Alfa"}).
			Return(entities.Empresa{}, fmt.Errorf("%w: %w", usecase.ErrEmpresaNomeEmUso, interfaces.ErrUniqueViolation))

		w := do(r, http.MethodPost, "/v1/Empresa", `{"nome":"Alfa"}`)
		if w.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", w.Code)
		}
		body := decodeError(t, w)
		if body.Message != usecase.ErrEmpresaNomeEmUso.Error() || body.Error != "" {
			t.Fatalf("unexpected body: %+v", body)
		}
	})

	t.Run("created", func(t *testing.T) {
		r, uc := newEmpresaRouter(t)
		uc.EXPECT().Create(gomock.Any(), usecase.EmpresaInput{Nome: "Alfa"}).
			Return(entities.Empresa{Base: entities.Base{ID: 1, Ativo: true}, Nome: "Alfa"}, nil)

		w := do(r, http.MethodPost, "/v1/Empresa", `{"nome":"Alfa"}`)
		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d", w.Code)
		}
		var body map[string]any
		if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
			t.Fatalf("decode: %v", err)
		}
		if body["id"] != float64(1) || body["nome"] != "Alfa" || body["ativo"] != true {
			t.Fatalf("unexpected body: %v", body)
		}
	})
}

func TestEmpresaHandler_Reads(t *testing.T) {
	t.Run("invalid id", func(t *testing.T) {
		r, _ := newEmpresaRouter(t)
		for _, path := range []string{"/v1/Empresa/abc", "/v1/Empresa/0", "/v1/Empresa/-3"} {
			if w := do(r, http.MethodGet, path, ""); w.Code != http.StatusBadRequest {
				t.Fatalf("%s: expected 400, got %d", path, w.Code)
			}
		}
	})

	t.Run("get hydrates users", func(t *testing.T) {
		r, uc := newEmpresaRouter(t)
		uc.EXPECT().GetByID(gomock.Any(), 1, entities.IncludeUsuarios).Return(entities.Empresa{
			Base:     entities.Base{ID: 1, Ativo: true},
			Nome:     "Alfa",
			Usuarios: []entities.Usuario{{Base: entities.Base{ID: 4, Ativo: true}, Nome: "Carlos"}},
		}, nil)

		w := do(r, http.MethodGet, "/v1/Empresa/1", "")
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		if !bytes.Contains(w.Body.Bytes(), []byte(`"usuarios":[{"id":4`)) {
			t.Fatalf("expected users in body: %s", w.Body.String())
		}
	})

	t.Run("not found", func(t *testing.T) {
		r, uc := newEmpresaRouter(t)
		uc.EXPECT().GetByID(gomock.Any(), 9, entities.IncludeUsuarios).Return(entities.Empresa{}, usecase.ErrEmpresaNotFound)

		w := do(r, http.MethodGet, "/v1/Empresa/9", "")
		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
		if body := decodeError(t, w); body.Message != "Empresa não encontrada" {
			t.Fatalf("unexpected body: %+v", body)
		}
	})

	t.Run("internal error exposes cause", func(t *testing.T) {
		r, uc := newEmpresaRouter(t)
		uc.EXPECT().List(gomock.Any()).Return(nil, errors.New("conexão recusada"))

		w := do(r, http.MethodGet, "/v1/Empresa", "")
		if w.Code != http.StatusInternalServerError {
			t.Fatalf("expected 500, got %d", w.Code)
		}
		body := decodeError(t, w)
		if body.Message != MsgErroInterno || body.Error != "conexão recusada" {
			t.Fatalf("unexpected body: %+v", body)
		}
	})

	t.Run("empty list", func(t *testing.T) {
		r, uc := newEmpresaRouter(t)
		uc.EXPECT().List(gomock.Any()).Return(nil, nil)

		w := do(r, http.MethodGet, "/v1/Empresa", "")
		if w.Code != http.StatusOK || w.Body.String() != "[]" {
			t.Fatalf("expected empty array, got %d %s", w.Code, w.Body.String())
		}
	})
}

func TestEmpresaHandler_Writes(t *testing.T) {
	t.Run("update", func(t *testing.T) {
		r, uc := newEmpresaRouter(t)
		uc.EXPECT().Update(gomock.Any(), 1, usecase.EmpresaInput{Nome: "Beta"}).Return(nil)

		if w := do(r, http.MethodPut, "/v1/Empresa/1", `{"nome":"Beta"}`); w.Code != http.StatusNoContent {
			t.Fatalf("expected 204, got %d", w.Code)
		}
	})

	t.Run("delete restricted", func(t *testing.T) {
		r, uc := newEmpresaRouter(t)
		uc.EXPECT().Delete(gomock.Any(), 1).Return(fmt.Errorf("%w: %w", usecase.ErrEmpresaEmUso, interfaces.ErrForeignKeyViolation))

		if w := do(r, http.MethodDelete, "/v1/Empresa/1", ""); w.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", w.Code)
		}
	})

	t.Run("deactivate", func(t *testing.T) {
		r, uc := newEmpresaRouter(t)
		uc.EXPECT().Deactivate(gomock.Any(), 1).Return(nil)

		if w := do(r, http.MethodDelete, "/v1/Empresa/desativar/1", ""); w.Code != http.StatusNoContent {
			t.Fatalf("expected 204, got %d", w.Code)
		}
	})

	t.Run("deactivate unknown", func(t *testing.T) {
		r, uc := newEmpresaRouter(t)
		uc.EXPECT().Deactivate(gomock.Any(), 7).Return(usecase.ErrEmpresaNotFound)

		if w := do(r, http.MethodDelete, "/v1/Empresa/desativar/7", ""); w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})
}
