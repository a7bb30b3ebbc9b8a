package repository

import (
	"errors"
	"testing"

	"relatorio_ronda/internal/domain/entities"
	"relatorio_ronda/internal/usecase/interfaces"

	"github.com/jackc/pgx/v5/pgconn"
)

func TestClassifyPgError(t *testing.T) {
	if classifyPgError(nil) != nil {
		t.Fatalf("expected nil")
	}

	err := classifyPgError(&pgconn.PgError{Code: "23505", ConstraintName: "empresas_nome_ativo_uidx"})
	if !errors.Is(err, interfaces.ErrUniqueViolation) || err.Error() != "unique constraint violation: empresas_nome_ativo_uidx" {
		t.Fatalf("unexpected error: %v", err)
	}

	if err := classifyPgError(&pgconn.PgError{Code: "23503"}); !errors.Is(err, interfaces.ErrForeignKeyViolation) {
		t.Fatalf("expected foreign key violation, got %v", err)
	}

	other := errors.New("timeout")
	if classifyPgError(other) != other {
		t.Fatalf("expected passthrough")
	}
}

func TestIDs(t *testing.T) {
	got := ids([]int{3, 0, 3, 1}, func(v int) int { return v })
	if len(got) != 2 || got[0] != 3 || got[1] != 1 {
		t.Fatalf("unexpected ids: %v", got)
	}
}

func TestActiveTableSelectSQL(t *testing.T) {
	table := activeTable[entities.Empresa]{name: "empresas", columns: "id, nome"}

	if got := table.selectSQL("", ""); got != "SELECT id, nome FROM empresas WHERE ativo" {
		t.Fatalf("unexpected sql: %s", got)
	}
	if got := table.selectSQL("nome = $1", "id"); got != "SELECT id, nome FROM empresas WHERE ativo AND nome = $1 ORDER BY id" {
		t.Fatalf("unexpected sql: %s", got)
	}
}
