package handlers

import (
	"errors"
	"net/http"

	"relatorio_ronda/internal/adapter/http/dto/request"
	"relatorio_ronda/internal/adapter/http/dto/response"
	"relatorio_ronda/internal/usecase"
	"relatorio_ronda/pkg"

	"github.com/gin-gonic/gin"
)

type VoltaRondaHandler struct {
	usecase usecase.IVoltaRondaUseCase
}

func NewVoltaRondaHandler(uc usecase.IVoltaRondaUseCase) *VoltaRondaHandler {
	return &VoltaRondaHandler{usecase: uc}
}

// List godoc
// @Summary      Lista voltas ativas
// @Tags         VoltaRonda
// @Produce      json
// @Success      200  {array}  response.VoltaRondaResponse
// @Router       /VoltaRonda [get]
func (h *VoltaRondaHandler) List(c *gin.Context) {
	voltas, err := h.usecase.List(c.Request.Context())
	if err != nil {
		writeError(c, mapVoltaRondaError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromVoltasRonda(voltas))
}

// GetByID godoc
// @Summary      Busca uma volta
// @Tags         VoltaRonda
// @Produce      json
// @Param        id   path      int  true  "ID da volta"
// @Success      200  {object}  response.VoltaRondaResponse
// @Failure      404  {object}  pkg.HTTPError
// @Router       /VoltaRonda/{id} [get]
func (h *VoltaRondaHandler) GetByID(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	volta, err := h.usecase.GetByID(c.Request.Context(), id)
	if err != nil {
		writeError(c, mapVoltaRondaError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromVoltaRonda(volta))
}

// ListByRelatorio godoc
// @Summary      Lista as voltas de um relatório pela ordem do número
// @Tags         VoltaRonda
// @Produce      json
// @Param        relatorioId  path  int  true  "ID do relatório"
// @Success      200  {array}  response.VoltaRondaResponse
// @Router       /VoltaRonda/relatorio/{relatorioId} [get]
func (h *VoltaRondaHandler) ListByRelatorio(c *gin.Context) {
	id, ok := pathID(c, "relatorioId")
	if !ok {
		return
	}
	voltas, err := h.usecase.ListByRelatorio(c.Request.Context(), id)
	if err != nil {
		writeError(c, mapVoltaRondaError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromVoltasRonda(voltas))
}

// Create godoc
// @Summary      Registra uma volta
// @Tags         VoltaRonda
// @Accept       json
// @Produce      json
// @Param        volta  body      request.VoltaRondaRequest  true  "Volta"
// @Success      201    {object}  response.VoltaRondaResponse
// @Failure      400    {object}  pkg.HTTPError
// @Failure      404    {object}  pkg.HTTPError
// @Failure      409    {object}  pkg.HTTPError
// @Router       /VoltaRonda [post]
func (h *VoltaRondaHandler) Create(c *gin.Context) {
	var req request.VoltaRondaRequest
	if !bindJSON(c, &req) {
		return
	}
	created, err := h.usecase.Create(c.Request.Context(), req.ToInput())
	if err != nil {
		writeError(c, mapVoltaRondaError(err))
		return
	}
	c.JSON(http.StatusCreated, response.FromVoltaRonda(created))
}

// Update godoc
// @Summary      Atualiza uma volta
// @Tags         VoltaRonda
// @Accept       json
// @Param        id     path  int                        true  "ID da volta"
// @Param        volta  body  request.VoltaRondaRequest  true  "Volta"
// @Success      204
// @Failure      400  {object}  pkg.HTTPError
// @Failure      404  {object}  pkg.HTTPError
// @Failure      409  {object}  pkg.HTTPError
// @Router       /VoltaRonda/{id} [put]
func (h *VoltaRondaHandler) Update(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	var req request.VoltaRondaRequest
	if !bindJSON(c, &req) {
		return
	}
	if err := h.usecase.Update(c.Request.Context(), id, req.ToInput()); err != nil {
		writeError(c, mapVoltaRondaError(err))
		return
	}
	c.Status(http.StatusNoContent)
}

// Delete godoc
// @Summary      Exclui uma volta
// @Tags         VoltaRonda
// @Param        id   path  int  true  "ID da volta"
// @Success      204
// @Failure      404  {object}  pkg.HTTPError
// @Router       /VoltaRonda/{id} [delete]
func (h *VoltaRondaHandler) Delete(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	if err := h.usecase.Delete(c.Request.Context(), id); err != nil {
		writeError(c, mapVoltaRondaError(err))
		return
	}
	c.Status(http.StatusNoContent)
}

// Deactivate godoc
// @Summary      Desativa uma volta
// @Tags         VoltaRonda
// @Param        id   path  int  true  "ID da volta"
// @Success      204
// @Failure      404  {object}  pkg.HTTPError
// @Router       /VoltaRonda/desativar/{id} [delete]
func (h *VoltaRondaHandler) Deactivate(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	if err := h.usecase.Deactivate(c.Request.Context(), id); err != nil {
		writeError(c, mapVoltaRondaError(err))
		return
	}
	c.Status(http.StatusNoContent)
}

func mapVoltaRondaError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidNumeroVolta):
		return fromSentinel("INVALID_REQUEST", usecase.ErrInvalidNumeroVolta, http.StatusBadRequest)
	case errors.Is(err, usecase.ErrVoltaNotFound):
		return fromSentinel("VOLTA_NOT_FOUND", usecase.ErrVoltaNotFound, http.StatusNotFound)
	case errors.Is(err, usecase.ErrRelatorioNotFound):
		return fromSentinel("RELATORIO_NOT_FOUND", usecase.ErrRelatorioNotFound, http.StatusNotFound)
	case errors.Is(err, usecase.ErrVoltaNumeroEmUso):
		return fromSentinel("VOLTA_NUMERO_EM_USO", usecase.ErrVoltaNumeroEmUso, http.StatusConflict)
	default:
		return internalError(err)
	}
}
