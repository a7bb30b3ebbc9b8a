package repository

import (
	"context"
	"errors"
	"os"
	"testing"
	"time"

	"relatorio_ronda/internal/domain/entities"
	"relatorio_ronda/internal/infrastructure/config"
	"relatorio_ronda/internal/infrastructure/database"
	"relatorio_ronda/internal/usecase/interfaces"

	"github.com/jackc/pgx/v5/pgxpool"
)

// newTestPool connects to TEST_DATABASE_DSN, migrates and empties the tables.
func newTestPool(t *testing.T) *pgxpool.Pool {
	t.Helper()
	dsn := os.Getenv("TEST_DATABASE_DSN")
	if dsn == "" {
		t.Skip("TEST_DATABASE_DSN not set")
	}
	ctx := context.Background()
	pool, err := database.NewPool(ctx, config.DatabaseConfig{DSN: dsn, MaxConns: 4})
	if err != nil {
		t.Fatalf("connect: %v", err)
	}
	t.Cleanup(pool.Close)

	if err := database.Migrate(ctx, pool); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	if _, err := pool.Exec(ctx, `TRUNCATE voltas_ronda, relatorios_ronda, usuarios, empresas RESTART IDENTITY CASCADE`); err != nil {
		t.Fatalf("truncate: %v", err)
	}
	return pool
}

func TestPostgresRepositories(t *testing.T) {
	pool := newTestPool(t)
	ctx := context.Background()

	empresas := NewEmpresaPostgresRepository(pool)
	usuarios := NewUsuarioPostgresRepository(pool)
	relatorios := NewRelatorioRondaPostgresRepository(pool)
	voltas := NewVoltaRondaPostgresRepository(pool)

	alfa, err := empresas.Create(ctx, entities.Empresa{Nome: "Alfa"})
	if err != nil || alfa.ID == 0 || !alfa.Ativo || alfa.CriadoEm.IsZero() {
		t.Fatalf("create empresa: %+v %v", alfa, err)
	}

	t.Run("active name is unique", func(t *testing.T) {
		_, err := empresas.Create(ctx, entities.Empresa{Nome: "Alfa"})
		if !errors.Is(err, interfaces.ErrUniqueViolation) {
			t.Fatalf("expected unique violation, got %v", err)
		}
		exists, err := empresas.NomeExists(ctx, "Alfa", alfa.ID)
		if err != nil || exists {
			t.Fatalf("expected self-excluded check to pass, got %v %v", exists, err)
		}
	})

	carlos, err := usuarios.Create(ctx, entities.Usuario{
		Nome: "Carlos", Email: "carlos@alfa.com", HashSenha: "h", EmpresaID: alfa.ID, Funcao: entities.FuncaoVigilante,
	})
	if err != nil {
		t.Fatalf("create usuario: %v", err)
	}

	t.Run("user reads hydrate company", func(t *testing.T) {
		got, err := usuarios.GetByID(ctx, carlos.ID, entities.IncludeEmpresa)
		if err != nil || got.Empresa == nil || got.Empresa.Nome != "Alfa" || got.Funcao != entities.FuncaoVigilante {
			t.Fatalf("unexpected user: %+v %v", got, err)
		}
		withUsers, err := empresas.GetByID(ctx, alfa.ID, entities.IncludeUsuarios)
		if err != nil || len(withUsers.Usuarios) != 1 {
			t.Fatalf("unexpected company: %+v %v", withUsers, err)
		}
	})

	t.Run("company in use cannot be deleted", func(t *testing.T) {
		if err := empresas.Delete(ctx, alfa.ID); !errors.Is(err, interfaces.ErrForeignKeyViolation) {
			t.Fatalf("expected foreign key violation, got %v", err)
		}
	})

	dia := time.Date(2024, 3, 1, 8, 0, 0, 0, time.UTC)
	rel, err := relatorios.Create(ctx, entities.RelatorioRonda{EmpresaID: alfa.ID, VigilanteID: carlos.ID, Data: dia})
	if err != nil {
		t.Fatalf("create relatorio: %v", err)
	}

	t.Run("one report per day", func(t *testing.T) {
		chave := entities.ChaveDia{EmpresaID: alfa.ID, VigilanteID: carlos.ID, Dia: entities.Dia(dia)}
		exists, err := relatorios.ExistsForDay(ctx, chave, 0)
		if err != nil || !exists {
			t.Fatalf("expected existing report, got %v %v", exists, err)
		}
		if exists, _ := relatorios.ExistsForDay(ctx, chave, rel.ID); exists {
			t.Fatalf("expected self exclusion")
		}
		_, err = relatorios.Create(ctx, entities.RelatorioRonda{EmpresaID: alfa.ID, VigilanteID: carlos.ID, Data: dia.Add(6 * time.Hour)})
		if !errors.Is(err, interfaces.ErrUniqueViolation) {
			t.Fatalf("expected unique violation, got %v", err)
		}
		byDay, err := relatorios.ListByData(ctx, entities.Dia(dia), entities.IncludeNone)
		if err != nil || len(byDay) != 1 {
			t.Fatalf("unexpected reports by day: %v %v", byDay, err)
		}
	})

	t.Run("offsets survive a round trip", func(t *testing.T) {
		brt := time.FixedZone("BRT", -3*3600)
		noite := time.Date(2024, 1, 5, 22, 0, 0, 0, brt)
		created, err := relatorios.Create(ctx, entities.RelatorioRonda{EmpresaID: alfa.ID, VigilanteID: carlos.ID, Data: noite})
		if err != nil {
			t.Fatalf("create relatorio: %v", err)
		}
		defer relatorios.Delete(ctx, created.ID)

		saida := noite.Add(30 * time.Minute)
		volta, err := voltas.Create(ctx, entities.VoltaRonda{RelatorioRondaID: created.ID, NumeroVolta: 1, HoraSaida: &saida})
		if err != nil {
			t.Fatalf("create volta: %v", err)
		}

		got, err := relatorios.GetByID(ctx, created.ID, entities.IncludeNone)
		if err != nil || !got.Data.Equal(noite) {
			t.Fatalf("expected %v, got %v %v", noite, got.Data, err)
		}
		gotVolta, err := voltas.GetByID(ctx, volta.ID, entities.IncludeNone)
		if err != nil || gotVolta.HoraSaida == nil || !gotVolta.HoraSaida.Equal(saida) {
			t.Fatalf("expected %v, got %+v %v", saida, gotVolta.HoraSaida, err)
		}

		byDay, err := relatorios.ListByData(ctx, entities.Dia(noite), entities.IncludeNone)
		if err != nil || len(byDay) != 1 || byDay[0].ID != created.ID {
			t.Fatalf("unexpected reports on local day: %v %v", byDay, err)
		}
		if next, _ := relatorios.ListByData(ctx, time.Date(2024, 1, 6, 0, 0, 0, 0, time.UTC), entities.IncludeNone); len(next) != 0 {
			t.Fatalf("report leaked into the UTC day: %v", next)
		}
		chave := entities.ChaveDia{EmpresaID: alfa.ID, VigilanteID: carlos.ID, Dia: entities.Dia(noite)}
		if exists, err := relatorios.ExistsForDay(ctx, chave, 0); err != nil || !exists {
			t.Fatalf("expected report on local day, got %v %v", exists, err)
		}
	})

	for _, n := range []int{2, 1} {
		if _, err := voltas.Create(ctx, entities.VoltaRonda{RelatorioRondaID: rel.ID, NumeroVolta: n}); err != nil {
			t.Fatalf("create volta %d: %v", n, err)
		}
	}

	t.Run("laps are ordered and hydrated", func(t *testing.T) {
		got, err := relatorios.GetByID(ctx, rel.ID, entities.IncludeEmpresa|entities.IncludeVigilante|entities.IncludeVoltas)
		if err != nil || len(got.Voltas) != 2 || got.Voltas[0].NumeroVolta != 1 {
			t.Fatalf("unexpected report: %+v %v", got, err)
		}
		if got.Empresa == nil || got.Vigilante == nil {
			t.Fatalf("expected navigations: %+v", got)
		}
		if _, err := voltas.Create(ctx, entities.VoltaRonda{RelatorioRondaID: rel.ID, NumeroVolta: 1}); !errors.Is(err, interfaces.ErrUniqueViolation) {
			t.Fatalf("expected unique violation, got %v", err)
		}
	})

	t.Run("deactivation cascades to laps", func(t *testing.T) {
		if err := relatorios.Deactivate(ctx, rel.ID); err != nil {
			t.Fatalf("deactivate: %v", err)
		}
		got, err := relatorios.GetByID(ctx, rel.ID, entities.IncludeNone)
		if err != nil || entities.Found(got) {
			t.Fatalf("expected report to be gone, got %+v %v", got, err)
		}
		laps, err := voltas.ListByRelatorio(ctx, rel.ID, entities.IncludeNone)
		if err != nil || len(laps) != 0 {
			t.Fatalf("expected no active laps, got %v %v", laps, err)
		}
	})

	t.Run("hard delete cascades to laps", func(t *testing.T) {
		other, err := relatorios.Create(ctx, entities.RelatorioRonda{EmpresaID: alfa.ID, VigilanteID: carlos.ID, Data: dia})
		if err != nil {
			t.Fatalf("deactivated report should free the day: %v", err)
		}
		if _, err := voltas.Create(ctx, entities.VoltaRonda{RelatorioRondaID: other.ID, NumeroVolta: 1}); err != nil {
			t.Fatalf("create volta: %v", err)
		}
		if err := relatorios.Delete(ctx, other.ID); err != nil {
			t.Fatalf("delete: %v", err)
		}
		var n int
		if err := pool.QueryRow(ctx, `SELECT count(*) FROM voltas_ronda WHERE relatorio_ronda_id = $1`, other.ID).Scan(&n); err != nil || n != 0 {
			t.Fatalf("expected laps removed, got %d %v", n, err)
		}
	})

	t.Run("deactivated name can be reused", func(t *testing.T) {
		beta, err := empresas.Create(ctx, entities.Empresa{Nome: "Beta"})
		if err != nil {
			t.Fatalf("create: %v", err)
		}
		if err := empresas.Deactivate(ctx, beta.ID); err != nil {
			t.Fatalf("deactivate: %v", err)
		}
		if _, err := empresas.Create(ctx, entities.Empresa{Nome: "Beta"}); err != nil {
			t.Fatalf("expected name to be free, got %v", err)
		}
	})
}
