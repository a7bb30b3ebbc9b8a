package usecase

import (
	"context"
	"errors"
	"strings"

	"relatorio_ronda/internal/domain/entities"
	"relatorio_ronda/internal/usecase/interfaces"

	"github.com/rs/zerolog/log"
)

var (
	ErrUsuarioNotFound         = errors.New("Usuário não encontrado")
	ErrUsuarioEmailEmUso       = errors.New("Email já está em uso")
	ErrUsuarioNomeEmUso        = errors.New("Nome já está em uso")
	ErrUsuarioDuplicado        = errors.New("Nome ou email já está em uso")
	ErrUsuarioEmUso            = errors.New("Usuário possui relatórios de ronda vinculados")
	ErrUsuarioSenhaObrigatoria = errors.New("A senha é obrigatória")
	ErrInvalidUsuario          = errors.New("Nome e email do usuário são obrigatórios")
	ErrInvalidFuncao           = errors.New("Função inválida")
)

// UsuarioInput carries every mutable field of a user. Senha is plaintext and is
// only ever stored as a hash; an empty Senha on update keeps the current hash.
type UsuarioInput struct {
	Nome      string
	Email     string
	Senha     string
	EmpresaID int
	Funcao    entities.Funcao
}

// IUsuarioUseCase exposes user (and guard) operations.

type IUsuarioUseCase interface {
	List(ctx context.Context) ([]entities.Usuario, error)
	GetByID(ctx context.Context, id int) (entities.Usuario, error)
	Create(ctx context.Context, in UsuarioInput) (entities.Usuario, error)
	Update(ctx context.Context, id int, in UsuarioInput) error
	Delete(ctx context.Context, id int) error
	Deactivate(ctx context.Context, id int) error
}

type UsuarioUseCase struct {
	repo     interfaces.IUsuarioRepository
	empresas interfaces.IEmpresaRepository
	hasher   interfaces.IPasswordHasher
}

var _ IUsuarioUseCase = (*UsuarioUseCase)(nil)

func NewUsuarioUseCase(repo interfaces.IUsuarioRepository, empresas interfaces.IEmpresaRepository, hasher interfaces.IPasswordHasher) *UsuarioUseCase {
	return &UsuarioUseCase{repo: repo, empresas: empresas, hasher: hasher}
}

func (u *UsuarioUseCase) List(ctx context.Context) ([]entities.Usuario, error) {
	return u.repo.List(ctx, entities.IncludeEmpresa)
}

func (u *UsuarioUseCase) GetByID(ctx context.Context, id int) (entities.Usuario, error) {
	return findActive[entities.Usuario](ctx, u.repo, id, entities.IncludeEmpresa, ErrUsuarioNotFound)
}

func (u *UsuarioUseCase) Create(ctx context.Context, in UsuarioInput) (entities.Usuario, error) {
	in = normalizeUsuarioInput(in)
	if err := validateUsuarioInput(in); err != nil {
		return entities.Usuario{}, err
	}
	if in.Senha == "" {
		return entities.Usuario{}, ErrUsuarioSenhaObrigatoria
	}

	if err := u.checkGuards(ctx, in, 0); err != nil {
		return entities.Usuario{}, err
	}

	hash, err := u.hasher.Hash(in.Senha)
	if err != nil {
		return entities.Usuario{}, err
	}

	created, err := u.repo.Create(ctx, entities.Usuario{
		Nome:      in.Nome,
		Email:     in.Email,
		HashSenha: hash,
		EmpresaID: in.EmpresaID,
		Funcao:    in.Funcao,
	})
	if err != nil {
		return entities.Usuario{}, classifyStoreError(err, ErrUsuarioDuplicado, nil)
	}
	log.Ctx(ctx).Info().Int("usuario_id", created.ID).Int("empresa_id", created.EmpresaID).Msg("usuário criado")

	// Answer with the company attached, as reads do.
	full, err := u.repo.GetByID(ctx, created.ID, entities.IncludeEmpresa)
	if err != nil || !entities.Found(full) {
		return created, nil
	}
	return full, nil
}

func (u *UsuarioUseCase) Update(ctx context.Context, id int, in UsuarioInput) error {
	in = normalizeUsuarioInput(in)
	if err := validateUsuarioInput(in); err != nil {
		return err
	}

	usuario, err := findActive[entities.Usuario](ctx, u.repo, id, entities.IncludeNone, ErrUsuarioNotFound)
	if err != nil {
		return err
	}

	if err := u.checkGuards(ctx, in, id); err != nil {
		return err
	}

	usuario.Nome = in.Nome
	usuario.Email = in.Email
	usuario.EmpresaID = in.EmpresaID
	usuario.Funcao = in.Funcao
	if in.Senha != "" {
		hash, err := u.hasher.Hash(in.Senha)
		if err != nil {
			return err
		}
		usuario.HashSenha = hash
	}

	if err := u.repo.Update(ctx, usuario); err != nil {
		return classifyStoreError(err, ErrUsuarioDuplicado, nil)
	}
	log.Ctx(ctx).Info().Int("usuario_id", id).Bool("senha_alterada", in.Senha != "").Msg("usuário atualizado")
	return nil
}

func (u *UsuarioUseCase) Delete(ctx context.Context, id int) error {
	if err := hardDelete[entities.Usuario](ctx, u.repo, id, ErrUsuarioNotFound, ErrUsuarioEmUso); err != nil {
		return err
	}
	log.Ctx(ctx).Info().Int("usuario_id", id).Msg("usuário excluído")
	return nil
}

func (u *UsuarioUseCase) Deactivate(ctx context.Context, id int) error {
	if err := deactivate[entities.Usuario](ctx, u.repo, id, ErrUsuarioNotFound); err != nil {
		return err
	}
	log.Ctx(ctx).Info().Int("usuario_id", id).Msg("usuário desativado")
	return nil
}

// checkGuards runs the referential guard before the uniqueness guards, so a
// missing company is reported even when the name or email also collide.
func (u *UsuarioUseCase) checkGuards(ctx context.Context, in UsuarioInput, excludeID int) error {
	if err := requireParent[entities.Empresa](ctx, u.empresas, in.EmpresaID, ErrEmpresaNotFound); err != nil {
		return err
	}

	exists, err := u.repo.EmailExists(ctx, in.Email, excludeID)
	if err := rejectDuplicate(exists, err, ErrUsuarioEmailEmUso); err != nil {
		return err
	}

	exists, err = u.repo.NomeExists(ctx, in.Nome, excludeID)
	return rejectDuplicate(exists, err, ErrUsuarioNomeEmUso)
}

func normalizeUsuarioInput(in UsuarioInput) UsuarioInput {
	in.Nome = strings.TrimSpace(in.Nome)
	in.Email = strings.TrimSpace(in.Email)
	return in
}

func validateUsuarioInput(in UsuarioInput) error {
	if in.Nome == "" || in.Email == "" {
		return ErrInvalidUsuario
	}
	if !in.Funcao.Valid() {
		return ErrInvalidFuncao
	}
	return nil
}
