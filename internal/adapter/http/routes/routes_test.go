package routes

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"relatorio_ronda/internal/adapter/http/handlers"
	"relatorio_ronda/internal/adapter/http/handlers/mocks"
	"relatorio_ronda/internal/adapter/http/middleware"
	"relatorio_ronda/internal/domain/entities"
	"relatorio_ronda/internal/infrastructure/config"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"go.uber.org/mock/gomock"
)

type routerMocks struct {
	empresas   *mocks.MockIEmpresaUseCase
	usuarios   *mocks.MockIUsuarioUseCase
	relatorios *mocks.MockIRelatorioRondaUseCase
	voltas     *mocks.MockIVoltaRondaUseCase
}

func newTestRouter(t *testing.T, cfg *config.Config) (*gin.Engine, routerMocks) {
	gin.SetMode(gin.TestMode)
	log.Logger = zerolog.Nop()

	ctrl := gomock.NewController(t)
	m := routerMocks{
		empresas:   mocks.NewMockIEmpresaUseCase(ctrl),
		usuarios:   mocks.NewMockIUsuarioUseCase(ctrl),
		relatorios: mocks.NewMockIRelatorioRondaUseCase(ctrl),
		voltas:     mocks.NewMockIVoltaRondaUseCase(ctrl),
	}
	h := Handlers{
		Empresa:        handlers.NewEmpresaHandler(m.empresas),
		Usuario:        handlers.NewUsuarioHandler(m.usuarios),
		RelatorioRonda: handlers.NewRelatorioRondaHandler(m.relatorios),
		VoltaRonda:     handlers.NewVoltaRondaHandler(m.voltas),
	}
	if cfg == nil {
		cfg = &config.Config{RateLimit: config.RateLimitConfig{RequestsPerSecond: 0}}
	}
	return NewRouter(cfg, h), m
}

func get(r *gin.Engine, path string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, path, nil))
	return w
}

func TestPing(t *testing.T) {
	r, _ := newTestRouter(t, nil)

	w := get(r, "/v1/ping")
	if w.Code != http.StatusOK || w.Body.String() != `{"message":"pong"}` {
		t.Fatalf("unexpected ping response %d %s", w.Code, w.Body.String())
	}
	if w.Header().Get(middleware.HeaderRequestID) == "" {
		t.Fatalf("expected request id header")
	}
}

func TestRondaRoutes(t *testing.T) {
	r, m := newTestRouter(t, nil)

	m.empresas.EXPECT().List(gomock.Any()).Return([]entities.Empresa{}, nil)
	m.usuarios.EXPECT().List(gomock.Any()).Return([]entities.Usuario{}, nil)
	m.relatorios.EXPECT().ListByVigilante(gomock.Any(), 7).Return(nil, nil)
	m.relatorios.EXPECT().ListByData(gomock.Any(), time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)).Return(nil, nil)
	m.voltas.EXPECT().ListByRelatorio(gomock.Any(), 3).Return(nil, nil)
	m.voltas.EXPECT().Deactivate(gomock.Any(), 9).Return(nil)

	cases := []struct {
		method, path string
		want         int
	}{
		{http.MethodGet, "/v1/Empresa", http.StatusOK},
		{http.MethodGet, "/v1/Usuario", http.StatusOK},
		{http.MethodGet, "/v1/RelatorioRonda/vigilante/7", http.StatusOK},
		{http.MethodGet, "/v1/RelatorioRonda/data/2024-03-01", http.StatusOK},
		{http.MethodGet, "/v1/VoltaRonda/relatorio/3", http.StatusOK},
		{http.MethodDelete, "/v1/VoltaRonda/desativar/9", http.StatusNoContent},
		{http.MethodGet, "/v1/Empresa/abc", http.StatusBadRequest},
		{http.MethodGet, "/v1/Inexistente", http.StatusNotFound},
	}
	for _, tc := range cases {
		t.Run(tc.method+" "+tc.path, func(t *testing.T) {
			w := httptest.NewRecorder()
			r.ServeHTTP(w, httptest.NewRequest(tc.method, tc.path, nil))
			if w.Code != tc.want {
				t.Fatalf("expected %d, got %d: %s", tc.want, w.Code, w.Body.String())
			}
		})
	}
}

func TestRouterRateLimit(t *testing.T) {
	r, _ := newTestRouter(t, &config.Config{RateLimit: config.RateLimitConfig{RequestsPerSecond: 0.001, Burst: 1}})

	if w := get(r, "/v1/ping"); w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	if w := get(r, "/v1/ping"); w.Code != http.StatusTooManyRequests {
		t.Fatalf("expected 429, got %d", w.Code)
	}
}

func TestSwaggerDoc(t *testing.T) {
	r, _ := newTestRouter(t, nil)

	w := get(r, "/swagger/doc.json")
	if w.Code != http.StatusOK {
		t.Fatalf("expected swagger document, got %d", w.Code)
	}
}
