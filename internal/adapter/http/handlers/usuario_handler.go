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

type UsuarioHandler struct {
	usecase usecase.IUsuarioUseCase
}

func NewUsuarioHandler(uc usecase.IUsuarioUseCase) *UsuarioHandler {
	return &UsuarioHandler{usecase: uc}
}

// List godoc
// @Summary      Lista usuários ativos com sua empresa
// @Tags         Usuario
// @Produce      json
// @Success      200  {array}   response.UsuarioResponse
// @Router       /Usuario [get]
func (h *UsuarioHandler) List(c *gin.Context) {
	usuarios, err := h.usecase.List(c.Request.Context())
	if err != nil {
		writeError(c, mapUsuarioError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromUsuarios(usuarios))
}

// GetByID godoc
// @Summary      Busca um usuário
// @Tags         Usuario
// @Produce      json
// @Param        id   path      int  true  "ID do usuário"
// @Success      200  {object}  response.UsuarioResponse
// @Failure      404  {object}  pkg.HTTPError
// @Router       /Usuario/{id} [get]
func (h *UsuarioHandler) GetByID(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	usuario, err := h.usecase.GetByID(c.Request.Context(), id)
	if err != nil {
		writeError(c, mapUsuarioError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromUsuario(usuario))
}

// Create godoc
// @Summary      Cria um usuário
// @Tags         Usuario
// @Accept       json
// @Produce      json
// @Param        usuario  body      request.UsuarioRequest  true  "Usuário"
// @Success      201      {object}  response.UsuarioResponse
// @Failure      400      {object}  pkg.HTTPError
// @Failure      404      {object}  pkg.HTTPError
// @Failure      409      {object}  pkg.HTTPError
// @Router       /Usuario [post]
func (h *UsuarioHandler) Create(c *gin.Context) {
	var req request.UsuarioRequest
	if !bindJSON(c, &req) {
		return
	}
	created, err := h.usecase.Create(c.Request.Context(), req.ToInput())
	if err != nil {
		writeError(c, mapUsuarioError(err))
		return
	}
	c.JSON(http.StatusCreated, response.FromUsuario(created))
}

// Update godoc
// @Summary      Atualiza um usuário; senha vazia mantém a atual
// @Tags         Usuario
// @Accept       json
// @Param        id       path  int                     true  "ID do usuário"
// @Param        usuario  body  request.UsuarioRequest  true  "Usuário"
// @Success      204
// @Failure      400  {object}  pkg.HTTPError
// @Failure      404  {object}  pkg.HTTPError
// @Failure      409  {object}  pkg.HTTPError
// @Router       /Usuario/{id} [put]
func (h *UsuarioHandler) Update(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	var req request.UsuarioRequest
	if !bindJSON(c, &req) {
		return
	}
	if err := h.usecase.Update(c.Request.Context(), id, req.ToInput()); err != nil {
		writeError(c, mapUsuarioError(err))
		return
	}
	c.Status(http.StatusNoContent)
}

// Delete godoc
// @Summary      Exclui um usuário sem relatórios
// @Tags         Usuario
// @Param        id   path  int  true  "ID do usuário"
// @Success      204
// @Failure      404  {object}  pkg.HTTPError
// @Failure      409  {object}  pkg.HTTPError
// @Router       /Usuario/{id} [delete]
func (h *UsuarioHandler) Delete(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	if err := h.usecase.Delete(c.Request.Context(), id); err != nil {
		writeError(c, mapUsuarioError(err))
		return
	}
	c.Status(http.StatusNoContent)
}

// Deactivate godoc
// @Summary      Desativa um usuário
// @Tags         Usuario
// @Param        id   path  int  true  "ID do usuário"
// @Success      204
// @Failure      404  {object}  pkg.HTTPError
// @Router       /Usuario/desativar/{id} [delete]
func (h *UsuarioHandler) Deactivate(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	if err := h.usecase.Deactivate(c.Request.Context(), id); err != nil {
		writeError(c, mapUsuarioError(err))
		return
	}
	c.Status(http.StatusNoContent)
}

func mapUsuarioError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidUsuario):
		return fromSentinel("INVALID_REQUEST", usecase.ErrInvalidUsuario, http.StatusBadRequest)
	case errors.Is(err, usecase.ErrInvalidFuncao):
		return fromSentinel("INVALID_REQUEST", usecase.ErrInvalidFuncao, http.StatusBadRequest)
	case errors.Is(err, usecase.ErrUsuarioSenhaObrigatoria):
		return fromSentinel("INVALID_REQUEST", usecase.ErrUsuarioSenhaObrigatoria, http.StatusBadRequest)
	case errors.Is(err, usecase.ErrUsuarioNotFound):
		return fromSentinel("USUARIO_NOT_FOUND", usecase.ErrUsuarioNotFound, http.StatusNotFound)
	case errors.Is(err, usecase.ErrEmpresaNotFound):
		return fromSentinel("EMPRESA_NOT_FOUND", usecase.ErrEmpresaNotFound, http.StatusNotFound)
	case errors.Is(err, usecase.ErrUsuarioEmailEmUso):
		return fromSentinel("USUARIO_EMAIL_EM_USO", usecase.ErrUsuarioEmailEmUso, http.StatusConflict)
	case errors.Is(err, usecase.ErrUsuarioNomeEmUso):
		return fromSentinel("USUARIO_NOME_EM_USO", usecase.ErrUsuarioNomeEmUso, http.StatusConflict)
	case errors.Is(err, usecase.ErrUsuarioDuplicado):
		return fromSentinel("USUARIO_DUPLICADO", usecase.ErrUsuarioDuplicado, http.StatusConflict)
	case errors.Is(err, usecase.ErrUsuarioEmUso):
		return fromSentinel("USUARIO_EM_USO", usecase.ErrUsuarioEmUso, http.StatusConflict)
	default:
		return internalError(err)
	}
}
