package pkg

import (
	"errors"
	"net/http"
	"testing"
)

func TestAppError_ToHTTPError(t *testing.T) {
	t.Run("simple", func(t *testing.T) {
		e := NewDomainErrorSimple("EMPRESA_NOT_FOUND", "Empresa não encontrada", http.StatusNotFound)
		body := e.ToHTTPError()
		if body.Message != "Empresa não encontrada" || body.Error != "" || body.Errors != nil {
			t.Fatalf("unexpected body: %+v", body)
		}
	})

	t.Run("internal keeps cause", func(t *testing.T) {
		cause := errors.New("connection refused")
		e := NewDomainError("INTERNAL_ERROR", "erro", cause, http.StatusInternalServerError)
		if got := e.ToHTTPError().Error; got != "connection refused" {
			t.Fatalf("expected cause in body, got %q", got)
		}
		if !errors.Is(e, cause) {
			t.Fatalf("expected AppError to unwrap to cause")
		}
	})

	t.Run("conflict hides cause", func(t *testing.T) {
		e := NewDomainError("CONFLICT", "Nome já está em uso", errors.New("23505"), http.StatusConflict)
		if got := e.ToHTTPError().Error; got != "" {
			t.Fatalf("expected no cause, got %q", got)
		}
	})

	t.Run("validation", func(t *testing.T) {
		e := NewValidationError([]string{"O nome da empresa é obrigatório"})
		body := e.ToHTTPError()
		if e.HTTPStatus != http.StatusBadRequest || len(body.Errors) != 1 {
			t.Fatalf("unexpected validation body: %+v", body)
		}
	})
}
