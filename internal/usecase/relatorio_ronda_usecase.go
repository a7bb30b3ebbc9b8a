package usecase

import (
	"context"
	"errors"
	"strings"
	"time"

	"relatorio_ronda/internal/domain/entities"
	"relatorio_ronda/internal/usecase/interfaces"

	"github.com/rs/zerolog/log"
)

var (
	ErrRelatorioNotFound    = errors.New("Relatório de ronda não encontrado")
	ErrVigilanteNotFound    = errors.New("Vigilante não encontrado")
	ErrRelatorioDuplicado   = errors.New("Já existe um relatório para esta data, empresa e vigilante")
	ErrInvalidRelatorio     = errors.New("A data do relatório é obrigatória")
	ErrInvalidQuilometragem = errors.New("Quilometragem deve estar entre 0 e 999999.99")
)

const kmMaximo = 999999.99

// detalhesRelatorio is what every report read attaches.
const detalhesRelatorio = entities.IncludeEmpresa | entities.IncludeVigilante | entities.IncludeVoltas

// RelatorioRondaInput carries every mutable field of a report. Updates overwrite
// all of them, nil optional fields included.
type RelatorioRondaInput struct {
	EmpresaID         int
	VigilanteID       int
	Data              time.Time
	KmSaida           *float64
	KmChegada         *float64
	TestemunhaSaida   *string
	TestemunhaChegada *string
}

// IRelatorioRondaUseCase exposes patrol report operations.

type IRelatorioRondaUseCase interface {
	List(ctx context.Context) ([]entities.RelatorioRonda, error)
	GetByID(ctx context.Context, id int) (entities.RelatorioRonda, error)
	ListByEmpresa(ctx context.Context, empresaID int) ([]entities.RelatorioRonda, error)
	ListByVigilante(ctx context.Context, vigilanteID int) ([]entities.RelatorioRonda, error)
	ListByData(ctx context.Context, data time.Time) ([]entities.RelatorioRonda, error)
	Create(ctx context.Context, in RelatorioRondaInput) (entities.RelatorioRonda, error)
	Update(ctx context.Context, id int, in RelatorioRondaInput) error
	Delete(ctx context.Context, id int) error
	Deactivate(ctx context.Context, id int) error
}

type RelatorioRondaUseCase struct {
	repo       interfaces.IRelatorioRondaRepository
	empresas   interfaces.IEmpresaRepository
	vigilantes interfaces.IUsuarioRepository
}

var _ IRelatorioRondaUseCase = (*RelatorioRondaUseCase)(nil)

func NewRelatorioRondaUseCase(
	repo interfaces.IRelatorioRondaRepository,
	empresas interfaces.IEmpresaRepository,
	vigilantes interfaces.IUsuarioRepository,
) *RelatorioRondaUseCase {
	return &RelatorioRondaUseCase{repo: repo, empresas: empresas, vigilantes: vigilantes}
}

func (u *RelatorioRondaUseCase) List(ctx context.Context) ([]entities.RelatorioRonda, error) {
	return u.repo.List(ctx, detalhesRelatorio)
}

func (u *RelatorioRondaUseCase) GetByID(ctx context.Context, id int) (entities.RelatorioRonda, error) {
	return findActive[entities.RelatorioRonda](ctx, u.repo, id, detalhesRelatorio, ErrRelatorioNotFound)
}

func (u *RelatorioRondaUseCase) ListByEmpresa(ctx context.Context, empresaID int) ([]entities.RelatorioRonda, error) {
	return u.repo.ListByEmpresa(ctx, empresaID, detalhesRelatorio)
}

func (u *RelatorioRondaUseCase) ListByVigilante(ctx context.Context, vigilanteID int) ([]entities.RelatorioRonda, error) {
	return u.repo.ListByVigilante(ctx, vigilanteID, detalhesRelatorio)
}

func (u *RelatorioRondaUseCase) ListByData(ctx context.Context, data time.Time) ([]entities.RelatorioRonda, error) {
	return u.repo.ListByData(ctx, entities.Dia(data), detalhesRelatorio)
}

func (u *RelatorioRondaUseCase) Create(ctx context.Context, in RelatorioRondaInput) (entities.RelatorioRonda, error) {
	in = normalizeRelatorioInput(in)
	if err := validateRelatorioInput(in); err != nil {
		return entities.RelatorioRonda{}, err
	}

	if err := u.checkParents(ctx, in); err != nil {
		return entities.RelatorioRonda{}, err
	}

	relatorio := applyRelatorioInput(entities.RelatorioRonda{}, in)
	exists, err := u.repo.ExistsForDay(ctx, relatorio.Chave(), 0)
	if err := rejectDuplicate(exists, err, ErrRelatorioDuplicado); err != nil {
		return entities.RelatorioRonda{}, err
	}

	created, err := u.repo.Create(ctx, relatorio)
	if err != nil {
		return entities.RelatorioRonda{}, classifyStoreError(err, ErrRelatorioDuplicado, nil)
	}
	log.Ctx(ctx).Info().
		Int("relatorio_id", created.ID).
		Int("empresa_id", created.EmpresaID).
		Int("vigilante_id", created.VigilanteID).
		Msg("relatório de ronda criado")

	full, err := u.repo.GetByID(ctx, created.ID, detalhesRelatorio)
	if err != nil || !entities.Found(full) {
		return created, nil
	}
	return full, nil
}

// Update re-checks the day key only when company, guard or calendar day
// changed, and then excludes the report itself from the check.
func (u *RelatorioRondaUseCase) Update(ctx context.Context, id int, in RelatorioRondaInput) error {
	in = normalizeRelatorioInput(in)
	if err := validateRelatorioInput(in); err != nil {
		return err
	}

	relatorio, err := findActive[entities.RelatorioRonda](ctx, u.repo, id, entities.IncludeNone, ErrRelatorioNotFound)
	if err != nil {
		return err
	}

	if err := u.checkParents(ctx, in); err != nil {
		return err
	}

	previous := relatorio.Chave()
	relatorio = applyRelatorioInput(relatorio, in)
	if !previous.Same(relatorio.Chave()) {
		exists, err := u.repo.ExistsForDay(ctx, relatorio.Chave(), id)
		if err := rejectDuplicate(exists, err, ErrRelatorioDuplicado); err != nil {
			return err
		}
	}

	if err := u.repo.Update(ctx, relatorio); err != nil {
		return classifyStoreError(err, ErrRelatorioDuplicado, nil)
	}
	log.Ctx(ctx).Info().Int("relatorio_id", id).Msg("relatório de ronda atualizado")
	return nil
}

func (u *RelatorioRondaUseCase) Delete(ctx context.Context, id int) error {
	if err := hardDelete[entities.RelatorioRonda](ctx, u.repo, id, ErrRelatorioNotFound, nil); err != nil {
		return err
	}
	log.Ctx(ctx).Info().Int("relatorio_id", id).Msg("relatório de ronda excluído com suas voltas")
	return nil
}

func (u *RelatorioRondaUseCase) Deactivate(ctx context.Context, id int) error {
	if err := deactivate[entities.RelatorioRonda](ctx, u.repo, id, ErrRelatorioNotFound); err != nil {
		return err
	}
	log.Ctx(ctx).Info().Int("relatorio_id", id).Msg("relatório de ronda desativado com suas voltas")
	return nil
}

func (u *RelatorioRondaUseCase) checkParents(ctx context.Context, in RelatorioRondaInput) error {
	if err := requireParent[entities.Empresa](ctx, u.empresas, in.EmpresaID, ErrEmpresaNotFound); err != nil {
		return err
	}
	return requireParent[entities.Usuario](ctx, u.vigilantes, in.VigilanteID, ErrVigilanteNotFound)
}

func applyRelatorioInput(r entities.RelatorioRonda, in RelatorioRondaInput) entities.RelatorioRonda {
	r.EmpresaID = in.EmpresaID
	r.VigilanteID = in.VigilanteID
	r.Data = in.Data
	r.KmSaida = in.KmSaida
	r.KmChegada = in.KmChegada
	r.TestemunhaSaida = in.TestemunhaSaida
	r.TestemunhaChegada = in.TestemunhaChegada
	return r
}

func normalizeRelatorioInput(in RelatorioRondaInput) RelatorioRondaInput {
	in.TestemunhaSaida = trimOptional(in.TestemunhaSaida)
	in.TestemunhaChegada = trimOptional(in.TestemunhaChegada)
	return in
}

func validateRelatorioInput(in RelatorioRondaInput) error {
	if in.Data.IsZero() {
		return ErrInvalidRelatorio
	}
	for _, km := range []*float64{in.KmSaida, in.KmChegada} {
		if km != nil && (*km < 0 || *km > kmMaximo) {
			return ErrInvalidQuilometragem
		}
	}
	return nil
}

func trimOptional(s *string) *string {
	if s == nil {
		return nil
	}
	v := strings.TrimSpace(*s)
	return &v
}
