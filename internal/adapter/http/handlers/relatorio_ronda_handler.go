package handlers

import (
	"errors"
	"net/http"

	"relatorio_ronda/internal/adapter/http/dto/request"
	"relatorio_ronda/internal/adapter/http/dto/response"
	"relatorio_ronda/internal/domain/entities"
	"relatorio_ronda/internal/usecase"
	"relatorio_ronda/pkg"

	"github.com/gin-gonic/gin"
)

// RelatorioRondaHandler handles HTTP requests for patrol reports. Every read
// returns the report with its company, guard and active laps.

type RelatorioRondaHandler struct {
	usecase usecase.IRelatorioRondaUseCase
}

func NewRelatorioRondaHandler(uc usecase.IRelatorioRondaUseCase) *RelatorioRondaHandler {
	return &RelatorioRondaHandler{usecase: uc}
}

// List godoc
// @Summary      Lista relatórios de ronda ativos
// @Tags         RelatorioRonda
// @Produce      json
// @Success      200  {array}  response.RelatorioRondaResponse
// @Router       /RelatorioRonda [get]
func (h *RelatorioRondaHandler) List(c *gin.Context) {
	relatorios, err := h.usecase.List(c.Request.Context())
	h.respondList(c, relatorios, err)
}

// GetByID godoc
// @Summary      Busca um relatório de ronda
// @Tags         RelatorioRonda
// @Produce      json
// @Param        id   path      int  true  "ID do relatório"
// @Success      200  {object}  response.RelatorioRondaResponse
// @Failure      404  {object}  pkg.HTTPError
// @Router       /RelatorioRonda/{id} [get]
func (h *RelatorioRondaHandler) GetByID(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	relatorio, err := h.usecase.GetByID(c.Request.Context(), id)
	if err != nil {
		writeError(c, mapRelatorioRondaError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromRelatorioRonda(relatorio))
}

// ListByEmpresa godoc
// @Summary      Lista relatórios de uma empresa
// @Tags         RelatorioRonda
// @Produce      json
// @Param        empresaId  path  int  true  "ID da empresa"
// @Success      200  {array}  response.RelatorioRondaResponse
// @Router       /RelatorioRonda/empresa/{empresaId} [get]
func (h *RelatorioRondaHandler) ListByEmpresa(c *gin.Context) {
	id, ok := pathID(c, "empresaId")
	if !ok {
		return
	}
	relatorios, err := h.usecase.ListByEmpresa(c.Request.Context(), id)
	h.respondList(c, relatorios, err)
}

// ListByVigilante godoc
// @Summary      Lista relatórios de um vigilante
// @Tags         RelatorioRonda
// @Produce      json
// @Param        vigilanteId  path  int  true  "ID do vigilante"
// @Success      200  {array}  response.RelatorioRondaResponse
// @Router       /RelatorioRonda/vigilante/{vigilanteId} [get]
func (h *RelatorioRondaHandler) ListByVigilante(c *gin.Context) {
	id, ok := pathID(c, "vigilanteId")
	if !ok {
		return
	}
	relatorios, err := h.usecase.ListByVigilante(c.Request.Context(), id)
	h.respondList(c, relatorios, err)
}

// ListByData godoc
// @Summary      Lista relatórios de um dia
// @Tags         RelatorioRonda
// @Produce      json
// @Param        data  path  string  true  "Dia (AAAA-MM-DD)"
// @Success      200  {array}   response.RelatorioRondaResponse
// @Failure      400  {object}  pkg.HTTPError
// @Router       /RelatorioRonda/data/{data} [get]
func (h *RelatorioRondaHandler) ListByData(c *gin.Context) {
	data, ok := pathDate(c, "data")
	if !ok {
		return
	}
	relatorios, err := h.usecase.ListByData(c.Request.Context(), data)
	h.respondList(c, relatorios, err)
}

// Create godoc
// @Summary      Cria um relatório de ronda
// @Tags         RelatorioRonda
// @Accept       json
// @Produce      json
// @Param        relatorio  body      request.RelatorioRondaRequest  true  "Relatório"
// @Success      201        {object}  response.RelatorioRondaResponse
// @Failure      400        {object}  pkg.HTTPError
// @Failure      404        {object}  pkg.HTTPError
// @Failure      409        {object}  pkg.HTTPError
// @Router       /RelatorioRonda [post]
func (h *RelatorioRondaHandler) Create(c *gin.Context) {
	var req request.RelatorioRondaRequest
	if !bindJSON(c, &req) {
		return
	}
	created, err := h.usecase.Create(c.Request.Context(), req.ToInput())
	if err != nil {
		writeError(c, mapRelatorioRondaError(err))
		return
	}
	c.JSON(http.StatusCreated, response.FromRelatorioRonda(created))
}

// Update godoc
// @Summary      Atualiza um relatório de ronda
// @Tags         RelatorioRonda
// @Accept       json
// @Param        id         path  int                            true  "ID do relatório"
// @Param        relatorio  body  request.RelatorioRondaRequest  true  "Relatório"
// @Success      204
// @Failure      400  {object}  pkg.HTTPError
// @Failure      404  {object}  pkg.HTTPError
// @Failure      409  {object}  pkg.HTTPError
// @Router       /RelatorioRonda/{id} [put]
func (h *RelatorioRondaHandler) Update(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	var req request.RelatorioRondaRequest
	if !bindJSON(c, &req) {
		return
	}
	if err := h.usecase.Update(c.Request.Context(), id, req.ToInput()); err != nil {
		writeError(c, mapRelatorioRondaError(err))
		return
	}
	c.Status(http.StatusNoContent)
}

// Delete godoc
// @Summary      Exclui um relatório e suas voltas
// @Tags         RelatorioRonda
// @Param        id   path  int  true  "ID do relatório"
// @Success      204
// @Failure      404  {object}  pkg.HTTPError
// @Router       /RelatorioRonda/{id} [delete]
func (h *RelatorioRondaHandler) Delete(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	if err := h.usecase.Delete(c.Request.Context(), id); err != nil {
		writeError(c, mapRelatorioRondaError(err))
		return
	}
	c.Status(http.StatusNoContent)
}

// Deactivate godoc
// @Summary      Desativa um relatório e suas voltas
// @Tags         RelatorioRonda
// @Param        id   path  int  true  "ID do relatório"
// @Success      204
// @Failure      404  {object}  pkg.HTTPError
// @Router       /RelatorioRonda/desativar/{id} [delete]
func (h *RelatorioRondaHandler) Deactivate(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	if err := h.usecase.Deactivate(c.Request.Context(), id); err != nil {
		writeError(c, mapRelatorioRondaError(err))
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *RelatorioRondaHandler) respondList(c *gin.Context, relatorios []entities.RelatorioRonda, err error) {
	if err != nil {
		writeError(c, mapRelatorioRondaError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromRelatoriosRonda(relatorios))
}

func mapRelatorioRondaError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidRelatorio):
		return fromSentinel("INVALID_REQUEST", usecase.ErrInvalidRelatorio, http.StatusBadRequest)
	case errors.Is(err, usecase.ErrInvalidQuilometragem):
		return fromSentinel("INVALID_REQUEST", usecase.ErrInvalidQuilometragem, http.StatusBadRequest)
	case errors.Is(err, usecase.ErrRelatorioNotFound):
		return fromSentinel("RELATORIO_NOT_FOUND", usecase.ErrRelatorioNotFound, http.StatusNotFound)
	case errors.Is(err, usecase.ErrEmpresaNotFound):
		return fromSentinel("EMPRESA_NOT_FOUND", usecase.ErrEmpresaNotFound, http.StatusNotFound)
	case errors.Is(err, usecase.ErrVigilanteNotFound):
		return fromSentinel("VIGILANTE_NOT_FOUND", usecase.ErrVigilanteNotFound, http.StatusNotFound)
	case errors.Is(err, usecase.ErrRelatorioDuplicado):
		return fromSentinel("RELATORIO_DUPLICADO", usecase.ErrRelatorioDuplicado, http.StatusConflict)
	default:
		return internalError(err)
	}
}
