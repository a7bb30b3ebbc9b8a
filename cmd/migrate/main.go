package main

import (
	"context"
	"fmt"
	"os"

	"relatorio_ronda/internal/adapter/persistence/repository"
	"relatorio_ronda/internal/infrastructure/config"
	"relatorio_ronda/internal/infrastructure/database"
	"relatorio_ronda/internal/infrastructure/logger"

	"github.com/jackc/pgx/v5/pgxpool"
	_ "github.com/joho/godotenv/autoload"
	"github.com/rs/zerolog/log"
	"github.com/urfave/cli/v3"
)

func main() {
	args := os.Args
	if len(args) == 1 {
		args = append(args, "--help")
	}

	root := &cli.Command{
		Name:  "migrate",
		Usage: "Schema management for the relatorio de ronda store",
		Commands: []*cli.Command{
			postgresCommand("up", "Apply every pending migration", database.Migrate),
			postgresCommand("down", "Roll back the most recent migration", database.MigrateDown),
			postgresCommand("status", "Print the state of every migration", database.MigrationStatus),
			dynamoTablesCommand(),
		},
	}

	if err := root.Run(context.Background(), args); err != nil {
		log.Fatal().Err(err).Msg("migrate failed")
	}
}

func postgresCommand(name, usage string, run func(context.Context, *pgxpool.Pool) error) *cli.Command {
	return &cli.Command{
		Name:  name,
		Usage: usage,
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "dsn", Usage: "Postgres connection string (defaults to DB_DSN)", Sources: cli.EnvVars("DB_DSN")},
		},
		Action: func(ctx context.Context, c *cli.Command) error {
			logger.Setup(os.Getenv("LOG_LEVEL"), true)

			dsn := c.String("dsn")
			if dsn == "" {
				return fmt.Errorf("missing --dsn or DB_DSN")
			}
			pool, err := database.NewPool(ctx, config.DatabaseConfig{DSN: dsn, MaxConns: 2})
			if err != nil {
				return err
			}
			defer pool.Close()

			return run(ctx, pool)
		},
	}
}

func dynamoTablesCommand() *cli.Command {
	return &cli.Command{
		Name:  "dynamodb-tables",
		Usage: "Create the DynamoDB tables and indexes that are missing",
		Action: func(ctx context.Context, c *cli.Command) error {
			logger.Setup(os.Getenv("LOG_LEVEL"), true)

			cfg, err := config.Load()
			if err != nil {
				return err
			}
			ddb, err := database.ConnectDynamoDB(ctx, cfg.DynamoDB)
			if err != nil {
				return err
			}
			return repository.EnsureDynamoTables(ctx, ddb, cfg.DynamoDB.Tables)
		},
	}
}
