package routes

import (
	"context"
	"fmt"

	"relatorio_ronda/internal/adapter/persistence/repository"
	"relatorio_ronda/internal/infrastructure/config"
	"relatorio_ronda/internal/infrastructure/database"
	"relatorio_ronda/internal/usecase/interfaces"

	"github.com/rs/zerolog/log"
)

// Repositories is the store selected by STORE_DRIVER.
type Repositories struct {
	Empresas   interfaces.IEmpresaRepository
	Usuarios   interfaces.IUsuarioRepository
	Relatorios interfaces.IRelatorioRondaRepository
	Voltas     interfaces.IVoltaRondaRepository

	closeFn func()
}

func (r *Repositories) Close() {
	if r.closeFn != nil {
		r.closeFn()
	}
}

func OpenRepositories(ctx context.Context, cfg *config.Config) (*Repositories, error) {
	switch cfg.StoreDriver {
	case config.StoreDynamoDB:
		return openDynamoDB(ctx, cfg.DynamoDB)
	default:
		return openPostgres(ctx, cfg.Database)
	}
}

func openPostgres(ctx context.Context, cfg config.DatabaseConfig) (*Repositories, error) {
	pool, err := database.NewPool(ctx, cfg)
	if err != nil {
		return nil, err
	}
	if cfg.AutoMigrate {
		if err := database.Migrate(ctx, pool); err != nil {
			pool.Close()
			return nil, fmt.Errorf("migrate: %w", err)
		}
		log.Info().Msg("database migrations applied")
	}

	return &Repositories{
		Empresas:   repository.NewEmpresaPostgresRepository(pool),
		Usuarios:   repository.NewUsuarioPostgresRepository(pool),
		Relatorios: repository.NewRelatorioRondaPostgresRepository(pool),
		Voltas:     repository.NewVoltaRondaPostgresRepository(pool),
		closeFn:    pool.Close,
	}, nil
}

func openDynamoDB(ctx context.Context, cfg config.DynamoDBConfig) (*Repositories, error) {
	ddb, err := database.ConnectDynamoDB(ctx, cfg)
	if err != nil {
		return nil, err
	}

	return &Repositories{
		Empresas:   repository.NewEmpresaDynamoRepository(ddb, cfg.Tables),
		Usuarios:   repository.NewUsuarioDynamoRepository(ddb, cfg.Tables),
		Relatorios: repository.NewRelatorioRondaDynamoRepository(ddb, cfg.Tables),
		Voltas:     repository.NewVoltaRondaDynamoRepository(ddb, cfg.Tables),
	}, nil
}
