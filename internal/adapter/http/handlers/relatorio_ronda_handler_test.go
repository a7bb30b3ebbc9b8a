package handlers

import (
	"bytes"
	"context"
	"fmt"
	"net/http"
	"testing"
	"time"

	"relatorio_ronda/internal/adapter/http/dto/request"
	"relatorio_ronda/internal/adapter/http/handlers/mocks"
	"relatorio_ronda/internal/domain/entities"
	"relatorio_ronda/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func newRelatorioRouter(t *testing.T) (*gin.Engine, *mocks.MockIRelatorioRondaUseCase) {
	ctrl := gomock.NewController(t)
	uc := mocks.NewMockIRelatorioRondaUseCase(ctrl)
	h := NewRelatorioRondaHandler(uc)

	r := gin.New()
	g := r.Group("/v1/RelatorioRonda")
	g.GET("", h.List)
	g.GET("/:id", h.GetByID)
	g.GET("/empresa/:empresaId", h.ListByEmpresa)
	g.GET("/vigilante/:vigilanteId", h.ListByVigilante)
	g.GET("/data/:data", h.ListByData)
	g.POST("", h.Create)
	g.PUT("/:id", h.Update)
	g.DELETE("/:id", h.Delete)
	g.DELETE("/desativar/:id", h.Deactivate)
	return r, uc
}

func TestRelatorioRondaHandler_Create(t *testing.T) {
	const payload = `{"empresaId":1,"vigilanteId":2,"data":"2024-03-01T08:00:00Z","kmSaida":1200.5}`

	t.Run("duplicate day", func(t *testing.T) {
		r, uc := newRelatorioRouter(t)
		uc.EXPECT().Create(gomock.Any(), gomock.Any()).Return(entities.RelatorioRonda{}, usecase.ErrRelatorioDuplicado)

		w := do(r, http.MethodPost, "/v1/RelatorioRonda", payload)
		if w.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", w.Code)
		}
	})

	t.Run("missing guard", func(t *testing.T) {
		r, uc := newRelatorioRouter(t)
		uc.EXPECT().Create(gomock.Any(), gomock.Any()).Return(entities.RelatorioRonda{}, usecase.ErrVigilanteNotFound)

		if w := do(r, http.MethodPost, "/v1/RelatorioRonda", payload); w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})

	t.Run("odometer above limit", func(t *testing.T) {
		r, _ := newRelatorioRouter(t)
		w := do(r, http.MethodPost, "/v1/RelatorioRonda", `{"empresaId":1,"vigilanteId":2,"data":"2024-03-01T08:00:00Z","kmSaida":1000000}`)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("created with laps array", func(t *testing.T) {
		r, uc := newRelatorioRouter(t)
		km := 1200.5
		uc.EXPECT().Create(gomock.Any(), usecase.RelatorioRondaInput{
			EmpresaID: 1, VigilanteID: 2, Data: time.Date(2024, 3, 1, 8, 0, 0, 0, time.UTC), KmSaida: &km,
		}).Return(entities.RelatorioRonda{
			Base: entities.Base{ID: 10, Ativo: true}, EmpresaID: 1, VigilanteID: 2,
			Data: time.Date(2024, 3, 1, 8, 0, 0, 0, time.UTC), KmSaida: &km,
		}, nil)

		w := do(r, http.MethodPost, "/v1/RelatorioRonda", payload)
		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d (%s)", w.Code, w.Body.String())
		}
		if !bytes.Contains(w.Body.Bytes(), []byte(`"voltas":[]`)) {
			t.Fatalf("expected empty laps: %s", w.Body.String())
		}
	})
}

func TestRelatorioRondaHandler_CreateDateForms(t *testing.T) {
	cases := []struct {
		data string
		want time.Time
	}{
		{"2024-01-05", time.Date(2024, 1, 5, 0, 0, 0, 0, time.UTC)},
		{"2024-01-05T08:00:00", time.Date(2024, 1, 5, 8, 0, 0, 0, time.UTC)},
		{"2024-01-05T08:00:00-03:00", time.Date(2024, 1, 5, 11, 0, 0, 0, time.UTC)},
	}
	for _, tc := range cases {
		t.Run(tc.data, func(t *testing.T) {
			r, uc := newRelatorioRouter(t)
			uc.EXPECT().Create(gomock.Any(), gomock.Any()).
				DoAndReturn(func(_ context.Context, in usecase.RelatorioRondaInput) (entities.RelatorioRonda, error) {
					if !in.Data.Equal(tc.want) {
						t.Fatalf("expected %v, got %v", tc.want, in.Data)
					}
					return entities.RelatorioRonda{Base: entities.Base{ID: 10, Ativo: true}, EmpresaID: 1, VigilanteID: 2, Data: in.Data}, nil
				})

			w := do(r, http.MethodPost, "/v1/RelatorioRonda", `{"empresaId":1,"vigilanteId":2,"data":"`+tc.data+`"}`)
			if w.Code != http.StatusCreated {
				t.Fatalf("expected 201, got %d (%s)", w.Code, w.Body.String())
			}
		})
	}

	t.Run("unparseable date", func(t *testing.T) {
		r, _ := newRelatorioRouter(t)
		w := do(r, http.MethodPost, "/v1/RelatorioRonda", `{"empresaId":1,"vigilanteId":2,"data":"05/01/2024"}`)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
		if body := decodeError(t, w); len(body.Errors) != 1 || body.Errors[0] != fmt.Sprintf(request.MsgDataInvalida, "05/01/2024") {
			t.Fatalf("unexpected body: %+v", body)
		}
	})

	t.Run("missing date", func(t *testing.T) {
		r, _ := newRelatorioRouter(t)
		w := do(r, http.MethodPost, "/v1/RelatorioRonda", `{"empresaId":1,"vigilanteId":2}`)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})
}

func TestRelatorioRondaHandler_Queries(t *testing.T) {
	t.Run("by plain date", func(t *testing.T) {
		r, uc := newRelatorioRouter(t)
		uc.EXPECT().ListByData(gomock.Any(), time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)).Return(nil, nil)

		w := do(r, http.MethodGet, "/v1/RelatorioRonda/data/2024-03-01", "")
		if w.Code != http.StatusOK || w.Body.String() != "[]" {
			t.Fatalf("unexpected response: %d %s", w.Code, w.Body.String())
		}
	})

	t.Run("by timestamp", func(t *testing.T) {
		r, uc := newRelatorioRouter(t)
		uc.EXPECT().ListByData(gomock.Any(), gomock.Any()).Return(nil, nil)

		if w := do(r, http.MethodGet, "/v1/RelatorioRonda/data/2024-03-01T10:00:00Z", ""); w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})

	t.Run("by local timestamp", func(t *testing.T) {
		r, uc := newRelatorioRouter(t)
		uc.EXPECT().ListByData(gomock.Any(), time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC)).Return(nil, nil)

		if w := do(r, http.MethodGet, "/v1/RelatorioRonda/data/2024-03-01T10:00:00", ""); w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})

	t.Run("invalid date", func(t *testing.T) {
		r, _ := newRelatorioRouter(t)
		if w := do(r, http.MethodGet, "/v1/RelatorioRonda/data/01-03-2024", ""); w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("by company and guard", func(t *testing.T) {
		r, uc := newRelatorioRouter(t)
		uc.EXPECT().ListByEmpresa(gomock.Any(), 1).Return([]entities.RelatorioRonda{{Base: entities.Base{ID: 10, Ativo: true}}}, nil)
		uc.EXPECT().ListByVigilante(gomock.Any(), 2).Return(nil, nil)

		if w := do(r, http.MethodGet, "/v1/RelatorioRonda/empresa/1", ""); w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		if w := do(r, http.MethodGet, "/v1/RelatorioRonda/vigilante/2", ""); w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		if w := do(r, http.MethodGet, "/v1/RelatorioRonda/vigilante/x", ""); w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("delete and deactivate", func(t *testing.T) {
		r, uc := newRelatorioRouter(t)
		uc.EXPECT().Delete(gomock.Any(), 10).Return(nil)
		uc.EXPECT().Deactivate(gomock.Any(), 11).Return(usecase.ErrRelatorioNotFound)

		if w := do(r, http.MethodDelete, "/v1/RelatorioRonda/10", ""); w.Code != http.StatusNoContent {
			t.Fatalf("expected 204, got %d", w.Code)
		}
		if w := do(r, http.MethodDelete, "/v1/RelatorioRonda/desativar/11", ""); w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})
}
