package handlers

import (
	"net/http"
	"strconv"
	"time"

	"relatorio_ronda/internal/adapter/http/dto/request"
	"relatorio_ronda/pkg"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

const (
	MsgErroInterno  = "Ocorreu um erro interno. Por favor, tente novamente mais tarde."
	MsgIDInvalido   = "ID inválido"
	MsgDataInvalida = "Data inválida. Use AAAA-MM-DD, AAAA-MM-DDTHH:MM:SS ou RFC3339"
)

// pathID reads a positive integer path parameter. On failure it has already
// written the 400 response.
func pathID(c *gin.Context, name string) (int, bool) {
	id, err := strconv.Atoi(c.Param(name))
	if err != nil || id <= 0 {
		writeError(c, pkg.NewDomainErrorSimple("INVALID_ID", MsgIDInvalido, http.StatusBadRequest))
		return 0, false
	}
	return id, true
}

// pathDate accepts the same date forms as request bodies.
func pathDate(c *gin.Context, name string) (time.Time, bool) {
	t, err := request.ParseDateTime(c.Param(name))
	if err != nil {
		writeError(c, pkg.NewDomainErrorSimple("INVALID_DATE", MsgDataInvalida, http.StatusBadRequest))
		return time.Time{}, false
	}
	return t, true
}

func bindJSON(c *gin.Context, obj any) bool {
	if err := c.ShouldBindJSON(obj); err != nil {
		writeError(c, pkg.NewValidationError(request.Messages(err)))
		return false
	}
	return true
}

func writeError(c *gin.Context, appErr *pkg.AppError) {
	if appErr.HTTPStatus >= http.StatusInternalServerError {
		log.Ctx(c.Request.Context()).Error().
			Err(appErr.Err).
			Str("code", appErr.Code).
			Str("path", c.FullPath()).
			Msg("request failed")
	}
	c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
}

// fromSentinel answers with the message of the use case error itself, so a
// wrapped store error never leaks into a 4xx body.
func fromSentinel(code string, sentinel error, status int) *pkg.AppError {
	return pkg.NewDomainErrorSimple(code, sentinel.Error(), status)
}

func internalError(err error) *pkg.AppError {
	return pkg.NewDomainError("INTERNAL_ERROR", MsgErroInterno, err, http.StatusInternalServerError)
}
