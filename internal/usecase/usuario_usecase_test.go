package usecase

import (
	"context"
	"errors"
	"testing"

	"relatorio_ronda/internal/domain/entities"
	"relatorio_ronda/internal/usecase/interfaces"
	mock_interfaces "relatorio_ronda/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

type usuarioMocks struct {
	repo     *mock_interfaces.MockIUsuarioRepository
	empresas *mock_interfaces.MockIEmpresaRepository
	hasher   *mock_interfaces.MockIPasswordHasher
}

func newUsuarioUseCase(t *testing.T) (*UsuarioUseCase, usuarioMocks) {
	ctrl := gomock.NewController(t)
	m := usuarioMocks{
		repo:     mock_interfaces.NewMockIUsuarioRepository(ctrl),
		empresas: mock_interfaces.NewMockIEmpresaRepository(ctrl),
		hasher:   mock_interfaces.NewMockIPasswordHasher(ctrl),
	}
	return NewUsuarioUseCase(m.repo, m.empresas, m.hasher), m
}

func validUsuarioInput() UsuarioInput {
	return UsuarioInput{
		Nome:      "Carlos",
		Email:     "carlos@alfa.com",
		Senha:     "segredo123",
		EmpresaID: 1,
		Funcao:    entities.FuncaoVigilante,
	}
}

func storedUsuario(id int, hash string) entities.Usuario {
	return entities.Usuario{
		Base:      entities.Base{ID: id, Ativo: true},
		Nome:      "Carlos",
		Email:     "carlos@alfa.com",
		HashSenha: hash,
		EmpresaID: 1,
		Funcao:    entities.FuncaoVigilante,
	}
}

func TestUsuarioUseCase_Create(t *testing.T) {
	t.Run("invalid role", func(t *testing.T) {
		uc, _ := newUsuarioUseCase(t)
		in := validUsuarioInput()
		in.Funcao = 7
		if _, err := uc.Create(context.Background(), in); !errors.Is(err, ErrInvalidFuncao) {
			t.Fatalf("expected ErrInvalidFuncao, got %v", err)
		}
	})

	t.Run("password required", func(t *testing.T) {
		uc, _ := newUsuarioUseCase(t)
		in := validUsuarioInput()
		in.Senha = ""
		if _, err := uc.Create(context.Background(), in); !errors.Is(err, ErrUsuarioSenhaObrigatoria) {
			t.Fatalf("expected ErrUsuarioSenhaObrigatoria, got %v", err)
		}
	})

	t.Run("missing company fails before uniqueness checks", func(t *testing.T) {
		uc, m := newUsuarioUseCase(t)
		m.empresas.EXPECT().ExistsActive(gomock.Any(), 1).Return(false, nil)

		if _, err := uc.Create(context.Background(), validUsuarioInput()); !errors.Is(err, ErrEmpresaNotFound) {
			t.Fatalf("expected ErrEmpresaNotFound, got %v", err)
		}
	})

	t.Run("email taken", func(t *testing.T) {
		uc, m := newUsuarioUseCase(t)
		m.empresas.EXPECT().ExistsActive(gomock.Any(), 1).Return(true, nil)
		m.repo.EXPECT().EmailExists(gomock.Any(), "carlos@alfa.com", 0).Return(true, nil)

		if _, err := uc.Create(context.Background(), validUsuarioInput()); !errors.Is(err, ErrUsuarioEmailEmUso) {
			t.Fatalf("expected ErrUsuarioEmailEmUso, got %v", err)
		}
	})

	t.Run("name taken", func(t *testing.T) {
		uc, m := newUsuarioUseCase(t)
		m.empresas.EXPECT().ExistsActive(gomock.Any(), 1).Return(true, nil)
		m.repo.EXPECT().EmailExists(gomock.Any(), "carlos@alfa.com", 0).Return(false, nil)
		m.repo.EXPECT().NomeExists(gomock.Any(), "Carlos", 0).Return(true, nil)

		if _, err := uc.Create(context.Background(), validUsuarioInput()); !errors.Is(err, ErrUsuarioNomeEmUso) {
			t.Fatalf("expected ErrUsuarioNomeEmUso, got %v", err)
		}
	})

	t.Run("stores only the hash", func(t *testing.T) {
		uc, m := newUsuarioUseCase(t)
		m.empresas.EXPECT().ExistsActive(gomock.Any(), 1).Return(true, nil)
		m.repo.EXPECT().EmailExists(gomock.Any(), "carlos@alfa.com", 0).Return(false, nil)
		m.repo.EXPECT().NomeExists(gomock.Any(), "Carlos", 0).Return(false, nil)
		m.hasher.EXPECT().Hash("segredo123").Return("hash(segredo123)", nil)
		m.repo.EXPECT().Create(gomock.Any(), gomock.AssignableToTypeOf(entities.Usuario{})).DoAndReturn(
			func(_ context.Context, u entities.Usuario) (entities.Usuario, error) {
				if u.HashSenha != "hash(segredo123)" {
					t.Fatalf("expected hashed password, got %q", u.HashSenha)
				}
				u.ID = 4
				u.Ativo = true
				return u, nil
			},
		)
		full := storedUsuario(4, "hash(segredo123)")
		full.Empresa = &entities.Empresa{Base: entities.Base{ID: 1, Ativo: true}, Nome: "Alfa"}
		m.repo.EXPECT().GetByID(gomock.Any(), 4, entities.IncludeEmpresa).Return(full, nil)

		got, err := uc.Create(context.Background(), validUsuarioInput())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got.ID != 4 || got.Empresa == nil || got.Empresa.Nome != "Alfa" {
			t.Fatalf("expected created user with company, got %+v", got)
		}
	})

	t.Run("hash failure", func(t *testing.T) {
		uc, m := newUsuarioUseCase(t)
		m.empresas.EXPECT().ExistsActive(gomock.Any(), 1).Return(true, nil)
		m.repo.EXPECT().EmailExists(gomock.Any(), gomock.Any(), 0).Return(false, nil)
		m.repo.EXPECT().NomeExists(gomock.Any(), gomock.Any(), 0).Return(false, nil)
		m.hasher.EXPECT().Hash(gomock.Any()).Return("", errors.New("rand"))

		if _, err := uc.Create(context.Background(), validUsuarioInput()); err == nil || err.Error() != "rand" {
			t.Fatalf("expected rand error, got %v", err)
		}
	})

	t.Run("store unique violation", func(t *testing.T) {
		uc, m := newUsuarioUseCase(t)
		m.empresas.EXPECT().ExistsActive(gomock.Any(), 1).Return(true, nil)
		m.repo.EXPECT().EmailExists(gomock.Any(), gomock.Any(), 0).Return(false, nil)
		m.repo.EXPECT().NomeExists(gomock.Any(), gomock.Any(), 0).Return(false, nil)
		m.hasher.EXPECT().Hash(gomock.Any()).Return("h", nil)
		m.repo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(entities.Usuario{}, interfaces.ErrUniqueViolation)

		if _, err := uc.Create(context.Background(), validUsuarioInput()); !errors.Is(err, ErrUsuarioDuplicado) {
			t.Fatalf("expected ErrUsuarioDuplicado, got %v", err)
		}
	})
}

func TestUsuarioUseCase_UpdatePassword(t *testing.T) {
	t.Run("empty password keeps hash", func(t *testing.T) {
		uc, m := newUsuarioUseCase(t)
		in := validUsuarioInput()
		in.Senha = ""
		in.Nome = "Carlos Silva"

		m.repo.EXPECT().GetByID(gomock.Any(), 4, entities.IncludeNone).Return(storedUsuario(4, "hash(P)"), nil)
		m.empresas.EXPECT().ExistsActive(gomock.Any(), 1).Return(true, nil)
		m.repo.EXPECT().EmailExists(gomock.Any(), "carlos@alfa.com", 4).Return(false, nil)
		m.repo.EXPECT().NomeExists(gomock.Any(), "Carlos Silva", 4).Return(false, nil)
		m.repo.EXPECT().Update(gomock.Any(), gomock.AssignableToTypeOf(entities.Usuario{})).DoAndReturn(
			func(_ context.Context, u entities.Usuario) error {
				if u.HashSenha != "hash(P)" || u.Nome != "Carlos Silva" {
					t.Fatalf("unexpected update: %+v", u)
				}
				return nil
			},
		)

		if err := uc.Update(context.Background(), 4, in); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("new password is rehashed", func(t *testing.T) {
		uc, m := newUsuarioUseCase(t)
		in := validUsuarioInput()
		in.Senha = "P2-segredo"

		m.repo.EXPECT().GetByID(gomock.Any(), 4, entities.IncludeNone).Return(storedUsuario(4, "hash(P)"), nil)
		m.empresas.EXPECT().ExistsActive(gomock.Any(), 1).Return(true, nil)
		m.repo.EXPECT().EmailExists(gomock.Any(), gomock.Any(), 4).Return(false, nil)
		m.repo.EXPECT().NomeExists(gomock.Any(), gomock.Any(), 4).Return(false, nil)
		m.hasher.EXPECT().Hash("P2-segredo").Return("hash(P2)", nil)
		m.repo.EXPECT().Update(gomock.Any(), gomock.AssignableToTypeOf(entities.Usuario{})).DoAndReturn(
			func(_ context.Context, u entities.Usuario) error {
				if u.HashSenha != "hash(P2)" {
					t.Fatalf("expected new hash, got %q", u.HashSenha)
				}
				return nil
			},
		)

		if err := uc.Update(context.Background(), 4, in); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("not found", func(t *testing.T) {
		uc, m := newUsuarioUseCase(t)
		m.repo.EXPECT().GetByID(gomock.Any(), 4, entities.IncludeNone).Return(entities.Usuario{}, nil)

		if err := uc.Update(context.Background(), 4, validUsuarioInput()); !errors.Is(err, ErrUsuarioNotFound) {
			t.Fatalf("expected ErrUsuarioNotFound, got %v", err)
		}
	})

	t.Run("email of another user", func(t *testing.T) {
		uc, m := newUsuarioUseCase(t)
		m.repo.EXPECT().GetByID(gomock.Any(), 4, entities.IncludeNone).Return(storedUsuario(4, "h"), nil)
		m.empresas.EXPECT().ExistsActive(gomock.Any(), 1).Return(true, nil)
		m.repo.EXPECT().EmailExists(gomock.Any(), "carlos@alfa.com", 4).Return(true, nil)

		if err := uc.Update(context.Background(), 4, validUsuarioInput()); !errors.Is(err, ErrUsuarioEmailEmUso) {
			t.Fatalf("expected ErrUsuarioEmailEmUso, got %v", err)
		}
	})
}

func TestUsuarioUseCase_DeleteAndDeactivate(t *testing.T) {
	t.Run("delete restricted by reports", func(t *testing.T) {
		uc, m := newUsuarioUseCase(t)
		m.repo.EXPECT().GetByID(gomock.Any(), 4, entities.IncludeNone).Return(storedUsuario(4, "h"), nil)
		m.repo.EXPECT().Delete(gomock.Any(), 4).Return(interfaces.ErrForeignKeyViolation)

		if err := uc.Delete(context.Background(), 4); !errors.Is(err, ErrUsuarioEmUso) {
			t.Fatalf("expected ErrUsuarioEmUso, got %v", err)
		}
	})

	t.Run("deactivate", func(t *testing.T) {
		uc, m := newUsuarioUseCase(t)
		m.repo.EXPECT().GetByID(gomock.Any(), 4, entities.IncludeNone).Return(storedUsuario(4, "h"), nil)
		m.repo.EXPECT().Deactivate(gomock.Any(), 4).Return(nil)

		if err := uc.Deactivate(context.Background(), 4); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("get hydrates company", func(t *testing.T) {
		uc, m := newUsuarioUseCase(t)
		m.repo.EXPECT().GetByID(gomock.Any(), 4, entities.IncludeEmpresa).Return(storedUsuario(4, "h"), nil)

		if _, err := uc.GetByID(context.Background(), 4); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})
}
