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
	ErrEmpresaNotFound  = errors.New("Empresa não encontrada")
	ErrEmpresaNomeEmUso = errors.New("Nome da empresa já está em uso")
	ErrEmpresaEmUso     = errors.New("Empresa possui usuários ou relatórios vinculados")
	ErrInvalidEmpresa   = errors.New("O nome da empresa é obrigatório")
)

// EmpresaInput carries every mutable field of a company. Updates overwrite all of them.
type EmpresaInput struct {
	Nome string
}

// IEmpresaUseCase exposes company operations.

type IEmpresaUseCase interface {
	List(ctx context.Context) ([]entities.Empresa, error)
	GetByID(ctx context.Context, id int, include entities.Include) (entities.Empresa, error)
	Create(ctx context.Context, in EmpresaInput) (entities.Empresa, error)
	Update(ctx context.Context, id int, in EmpresaInput) error
	Delete(ctx context.Context, id int) error
	Deactivate(ctx context.Context, id int) error
}

type EmpresaUseCase struct {
	repo interfaces.IEmpresaRepository
}

var _ IEmpresaUseCase = (*EmpresaUseCase)(nil)

func NewEmpresaUseCase(repo interfaces.IEmpresaRepository) *EmpresaUseCase {
	return &EmpresaUseCase{repo: repo}
}

func (u *EmpresaUseCase) List(ctx context.Context) ([]entities.Empresa, error) {
	return u.repo.List(ctx, entities.IncludeNone)
}

func (u *EmpresaUseCase) GetByID(ctx context.Context, id int, include entities.Include) (entities.Empresa, error) {
	return findActive[entities.Empresa](ctx, u.repo, id, include, ErrEmpresaNotFound)
}

func (u *EmpresaUseCase) Create(ctx context.Context, in EmpresaInput) (entities.Empresa, error) {
	in.Nome = strings.TrimSpace(in.Nome)
	if in.Nome == "" {
		return entities.Empresa{}, ErrInvalidEmpresa
	}

	exists, err := u.repo.NomeExists(ctx, in.Nome, 0)
	if err := rejectDuplicate(exists, err, ErrEmpresaNomeEmUso); err != nil {
		return entities.Empresa{}, err
	}

	created, err := u.repo.Create(ctx, entities.Empresa{Nome: in.Nome})
	if err != nil {
		return entities.Empresa{}, classifyStoreError(err, ErrEmpresaNomeEmUso, nil)
	}
	log.Ctx(ctx).Info().Int("empresa_id", created.ID).Msg("empresa criada")
	return created, nil
}

func (u *EmpresaUseCase) Update(ctx context.Context, id int, in EmpresaInput) error {
	in.Nome = strings.TrimSpace(in.Nome)
	if in.Nome == "" {
		return ErrInvalidEmpresa
	}

	empresa, err := findActive[entities.Empresa](ctx, u.repo, id, entities.IncludeNone, ErrEmpresaNotFound)
	if err != nil {
		return err
	}

	exists, err := u.repo.NomeExists(ctx, in.Nome, id)
	if err := rejectDuplicate(exists, err, ErrEmpresaNomeEmUso); err != nil {
		return err
	}

	empresa.Nome = in.Nome
	if err := u.repo.Update(ctx, empresa); err != nil {
		return classifyStoreError(err, ErrEmpresaNomeEmUso, nil)
	}
	log.Ctx(ctx).Info().Int("empresa_id", id).Msg("empresa atualizada")
	return nil
}

func (u *EmpresaUseCase) Delete(ctx context.Context, id int) error {
	if err := hardDelete[entities.Empresa](ctx, u.repo, id, ErrEmpresaNotFound, ErrEmpresaEmUso); err != nil {
		return err
	}
	log.Ctx(ctx).Info().Int("empresa_id", id).Msg("empresa excluída")
	return nil
}

func (u *EmpresaUseCase) Deactivate(ctx context.Context, id int) error {
	if err := deactivate[entities.Empresa](ctx, u.repo, id, ErrEmpresaNotFound); err != nil {
		return err
	}
	log.Ctx(ctx).Info().Int("empresa_id", id).Msg("empresa desativada")
	return nil
}
