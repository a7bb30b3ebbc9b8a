package routes

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	_ "relatorio_ronda/docs"
	"relatorio_ronda/internal/adapter/http/dto/request"
	"relatorio_ronda/internal/adapter/http/handlers"
	"relatorio_ronda/internal/adapter/http/middleware"
	"relatorio_ronda/internal/infrastructure/config"
	"relatorio_ronda/internal/infrastructure/logger"
	"relatorio_ronda/internal/infrastructure/security"
	"relatorio_ronda/internal/usecase"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

const shutdownTimeout = 10 * time.Second

// Handlers groups every resource handler the router mounts.
type Handlers struct {
	Empresa        *handlers.EmpresaHandler
	Usuario        *handlers.UsuarioHandler
	RelatorioRonda *handlers.RelatorioRondaHandler
	VoltaRonda     *handlers.VoltaRondaHandler
}

// Run will start the server
func Run() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("invalid configuration")
	}
	logger.Setup(cfg.Log.Level, cfg.Log.Pretty)
	gin.SetMode(cfg.GinMode)
	request.UseJSONFieldNames()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	repos, err := OpenRepositories(ctx, cfg)
	if err != nil {
		log.Fatal().Err(err).Str("store", cfg.StoreDriver).Msg("failed to open store")
	}
	defer repos.Close()

	router := NewRouter(cfg, NewHandlers(repos))
	srv := &http.Server{
		Addr:              cfg.Addr(),
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		log.Info().Str("addr", srv.Addr).Str("store", cfg.StoreDriver).Msg("http server listening")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("Failed to startup the application")
		}
	}()

	<-ctx.Done()
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("graceful shutdown failed")
	}
	log.Info().Msg("http server stopped")
}

func NewHandlers(repos *Repositories) Handlers {
	hasher := security.NewArgon2Hasher(nil)

	return Handlers{
		Empresa:        handlers.NewEmpresaHandler(usecase.NewEmpresaUseCase(repos.Empresas)),
		Usuario:        handlers.NewUsuarioHandler(usecase.NewUsuarioUseCase(repos.Usuarios, repos.Empresas, hasher)),
		RelatorioRonda: handlers.NewRelatorioRondaHandler(usecase.NewRelatorioRondaUseCase(repos.Relatorios, repos.Empresas, repos.Usuarios)),
		VoltaRonda:     handlers.NewVoltaRondaHandler(usecase.NewVoltaRondaUseCase(repos.Voltas, repos.Relatorios)),
	}
}

// NewRouter builds the gin engine with its middlewares and every route.
func NewRouter(cfg *config.Config, h Handlers) *gin.Engine {
	router := gin.New()
	setMiddlewares(router, cfg)

	// Swagger documentation endpoint
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Rotas publicas
	v1 := router.Group("/v1")
	addPingRoutes(v1)
	addRondaRoutes(v1, h)
	return router
}

func setMiddlewares(router *gin.Engine, cfg *config.Config) {
	router.Use(middleware.RequestID())
	router.Use(middleware.RequestLogger())
	router.Use(middleware.Recovery())
	router.Use(middleware.IPRateLimit(middleware.NewRateLimiter(cfg.RateLimit.RequestsPerSecond, cfg.RateLimit.Burst)))
}
