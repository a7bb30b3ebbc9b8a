package usecase

import (
	"context"
	"errors"
	"time"

	"relatorio_ronda/internal/domain/entities"
	"relatorio_ronda/internal/usecase/interfaces"

	"github.com/rs/zerolog/log"
)

var (
	ErrVoltaNotFound      = errors.New("Volta não encontrada")
	ErrVoltaNumeroEmUso   = errors.New("Número da volta já existe para este relatório")
	ErrInvalidNumeroVolta = errors.New("Número da volta deve estar entre 1 e 99")
)

const (
	numeroVoltaMinimo = 1
	numeroVoltaMaximo = 99
)

// VoltaRondaInput carries every mutable field of a lap.
type VoltaRondaInput struct {
	RelatorioRondaID int
	NumeroVolta      int
	HoraSaida        *time.Time
	HoraChegada      *time.Time
	HoraDescanso     *time.Time
	Observacoes      *string
}

// IVoltaRondaUseCase exposes patrol lap operations.

type IVoltaRondaUseCase interface {
	List(ctx context.Context) ([]entities.VoltaRonda, error)
	GetByID(ctx context.Context, id int) (entities.VoltaRonda, error)
	ListByRelatorio(ctx context.Context, relatorioRondaID int) ([]entities.VoltaRonda, error)
	Create(ctx context.Context, in VoltaRondaInput) (entities.VoltaRonda, error)
	Update(ctx context.Context, id int, in VoltaRondaInput) error
	Delete(ctx context.Context, id int) error
	Deactivate(ctx context.Context, id int) error
}

type VoltaRondaUseCase struct {
	repo       interfaces.IVoltaRondaRepository
	relatorios interfaces.IRelatorioRondaRepository
}

var _ IVoltaRondaUseCase = (*VoltaRondaUseCase)(nil)

func NewVoltaRondaUseCase(repo interfaces.IVoltaRondaRepository, relatorios interfaces.IRelatorioRondaRepository) *VoltaRondaUseCase {
	return &VoltaRondaUseCase{repo: repo, relatorios: relatorios}
}

func (u *VoltaRondaUseCase) List(ctx context.Context) ([]entities.VoltaRonda, error) {
	return u.repo.List(ctx, entities.IncludeRelatorio)
}

func (u *VoltaRondaUseCase) GetByID(ctx context.Context, id int) (entities.VoltaRonda, error) {
	return findActive[entities.VoltaRonda](ctx, u.repo, id, entities.IncludeRelatorio, ErrVoltaNotFound)
}

func (u *VoltaRondaUseCase) ListByRelatorio(ctx context.Context, relatorioRondaID int) ([]entities.VoltaRonda, error) {
	return u.repo.ListByRelatorio(ctx, relatorioRondaID, entities.IncludeRelatorio)
}

func (u *VoltaRondaUseCase) Create(ctx context.Context, in VoltaRondaInput) (entities.VoltaRonda, error) {
	if err := validateVoltaInput(in); err != nil {
		return entities.VoltaRonda{}, err
	}

	if err := u.checkGuards(ctx, in, 0); err != nil {
		return entities.VoltaRonda{}, err
	}

	created, err := u.repo.Create(ctx, applyVoltaInput(entities.VoltaRonda{}, in))
	if err != nil {
		return entities.VoltaRonda{}, classifyStoreError(err, ErrVoltaNumeroEmUso, nil)
	}
	log.Ctx(ctx).Info().
		Int("volta_id", created.ID).
		Int("relatorio_id", created.RelatorioRondaID).
		Int("numero", created.NumeroVolta).
		Msg("volta de ronda criada")

	full, err := u.repo.GetByID(ctx, created.ID, entities.IncludeRelatorio)
	if err != nil || !entities.Found(full) {
		return created, nil
	}
	return full, nil
}

func (u *VoltaRondaUseCase) Update(ctx context.Context, id int, in VoltaRondaInput) error {
	if err := validateVoltaInput(in); err != nil {
		return err
	}

	volta, err := findActive[entities.VoltaRonda](ctx, u.repo, id, entities.IncludeNone, ErrVoltaNotFound)
	if err != nil {
		return err
	}

	if err := u.checkGuards(ctx, in, id); err != nil {
		return err
	}

	if err := u.repo.Update(ctx, applyVoltaInput(volta, in)); err != nil {
		return classifyStoreError(err, ErrVoltaNumeroEmUso, nil)
	}
	log.Ctx(ctx).Info().Int("volta_id", id).Msg("volta de ronda atualizada")
	return nil
}

func (u *VoltaRondaUseCase) Delete(ctx context.Context, id int) error {
	if err := hardDelete[entities.VoltaRonda](ctx, u.repo, id, ErrVoltaNotFound, nil); err != nil {
		return err
	}
	log.Ctx(ctx).Info().Int("volta_id", id).Msg("volta de ronda excluída")
	return nil
}

func (u *VoltaRondaUseCase) Deactivate(ctx context.Context, id int) error {
	if err := deactivate[entities.VoltaRonda](ctx, u.repo, id, ErrVoltaNotFound); err != nil {
		return err
	}
	log.Ctx(ctx).Info().Int("volta_id", id).Msg("volta de ronda desativada")
	return nil
}

func (u *VoltaRondaUseCase) checkGuards(ctx context.Context, in VoltaRondaInput, excludeID int) error {
	if err := requireParent[entities.RelatorioRonda](ctx, u.relatorios, in.RelatorioRondaID, ErrRelatorioNotFound); err != nil {
		return err
	}
	exists, err := u.repo.NumeroExists(ctx, in.RelatorioRondaID, in.NumeroVolta, excludeID)
	return rejectDuplicate(exists, err, ErrVoltaNumeroEmUso)
}

func applyVoltaInput(v entities.VoltaRonda, in VoltaRondaInput) entities.VoltaRonda {
	v.RelatorioRondaID = in.RelatorioRondaID
	v.NumeroVolta = in.NumeroVolta
	v.HoraSaida = in.HoraSaida
	v.HoraChegada = in.HoraChegada
	v.HoraDescanso = in.HoraDescanso
	v.Observacoes = trimOptional(in.Observacoes)
	return v
}

func validateVoltaInput(in VoltaRondaInput) error {
	if in.NumeroVolta < numeroVoltaMinimo || in.NumeroVolta > numeroVoltaMaximo {
		return ErrInvalidNumeroVolta
	}
	return nil
}
