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

// EmpresaHandler handles HTTP requests for companies.

type EmpresaHandler struct {
	usecase usecase.IEmpresaUseCase
}

func NewEmpresaHandler(uc usecase.IEmpresaUseCase) *EmpresaHandler {
	return &EmpresaHandler{usecase: uc}
}

// List godoc
// @Summary      Lista empresas ativas
// @Tags         Empresa
// @Produce      json
// @Success      200  {array}   response.EmpresaResponse
// @Failure      500  {object}  pkg.HTTPError
// @Router       /Empresa [get]
func (h *EmpresaHandler) List(c *gin.Context) {
	empresas, err := h.usecase.List(c.Request.Context())
	if err != nil {
		writeError(c, mapEmpresaError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromEmpresas(empresas))
}

// GetByID godoc
// @Summary      Busca uma empresa com seus usuários
// @Tags         Empresa
// @Produce      json
// @Param        id   path      int  true  "ID da empresa"
// @Success      200  {object}  response.EmpresaResponse
// @Failure      400  {object}  pkg.HTTPError
// @Failure      404  {object}  pkg.HTTPError
// @Router       /Empresa/{id} [get]
func (h *EmpresaHandler) GetByID(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	empresa, err := h.usecase.GetByID(c.Request.Context(), id, entities.IncludeUsuarios)
	if err != nil {
		writeError(c, mapEmpresaError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromEmpresa(empresa))
}

// Create godoc
// @Summary      Cria uma empresa
// @Tags         Empresa
// @Accept       json
// @Produce      json
// @Param        empresa  body      request.EmpresaRequest  true  "Empresa"
// @Success      201      {object}  response.EmpresaResponse
// @Failure      400      {object}  pkg.HTTPError
// @Failure      409      {object}  pkg.HTTPError
// @Router       /Empresa [post]
func (h *EmpresaHandler) Create(c *gin.Context) {
	var req request.EmpresaRequest
	if !bindJSON(c, &req) {
		return
	}
	created, err := h.usecase.Create(c.Request.Context(), req.ToInput())
	if err != nil {
		writeError(c, mapEmpresaError(err))
		return
	}
	c.JSON(http.StatusCreated, response.FromEmpresa(created))
}

// Update godoc
// @Summary      Atualiza uma empresa
// @Tags         Empresa
// @Accept       json
// @Param        id       path  int                     true  "ID da empresa"
// @Param        empresa  body  request.EmpresaRequest  true  "Empresa"
// @Success      204
// @Failure      400  {object}  pkg.HTTPError
// @Failure      404  {object}  pkg.HTTPError
// @Failure      409  {object}  pkg.HTTPError
// @Router       /Empresa/{id} [put]
func (h *EmpresaHandler) Update(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	var req request.EmpresaRequest
	if !bindJSON(c, &req) {
		return
	}
	if err := h.usecase.Update(c.Request.Context(), id, req.ToInput()); err != nil {
		writeError(c, mapEmpresaError(err))
		return
	}
	c.Status(http.StatusNoContent)
}

// Delete godoc
// @Summary      Exclui uma empresa sem vínculos
// @Tags         Empresa
// @Param        id   path  int  true  "ID da empresa"
// @Success      204
// @Failure      404  {object}  pkg.HTTPError
// @Failure      409  {object}  pkg.HTTPError
// @Router       /Empresa/{id} [delete]
func (h *EmpresaHandler) Delete(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	if err := h.usecase.Delete(c.Request.Context(), id); err != nil {
		writeError(c, mapEmpresaError(err))
		return
	}
	c.Status(http.StatusNoContent)
}

// Deactivate godoc
// @Summary      Desativa uma empresa
// @Tags         Empresa
// @Param        id   path  int  true  "ID da empresa"
// @Success      204
// @Failure      404  {object}  pkg.HTTPError
// @Router       /Empresa/desativar/{id} [delete]
func (h *EmpresaHandler) Deactivate(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	if err := h.usecase.Deactivate(c.Request.Context(), id); err != nil {
		writeError(c, mapEmpresaError(err))
		return
	}
	c.Status(http.StatusNoContent)
}

func mapEmpresaError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidEmpresa):
		return fromSentinel("INVALID_REQUEST", usecase.ErrInvalidEmpresa, http.StatusBadRequest)
	case errors.Is(err, usecase.ErrEmpresaNotFound):
		return fromSentinel("EMPRESA_NOT_FOUND", usecase.ErrEmpresaNotFound, http.StatusNotFound)
	case errors.Is(err, usecase.ErrEmpresaNomeEmUso):
		return fromSentinel("EMPRESA_NOME_EM_USO", usecase.ErrEmpresaNomeEmUso, http.StatusConflict)
	case errors.Is(err, usecase.ErrEmpresaEmUso):
		return fromSentinel("EMPRESA_EM_USO", usecase.ErrEmpresaEmUso, http.StatusConflict)
	default:
		return internalError(err)
	}
}
