package middleware

import (
	"net/http"

	"relatorio_ronda/internal/adapter/http/handlers"
	"relatorio_ronda/pkg"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

// Recovery answers a panicking request with the generic 500 body.
func Recovery() gin.HandlerFunc {
	return gin.CustomRecovery(func(c *gin.Context, recovered any) {
		log.Ctx(c.Request.Context()).Error().
			Interface("panic", recovered).
			Str("path", c.Request.URL.Path).
			Msg("panic recuperado")

		appErr := pkg.NewDomainErrorSimple("INTERNAL_ERROR", handlers.MsgErroInterno, http.StatusInternalServerError)
		c.AbortWithStatusJSON(appErr.HTTPStatus, appErr.ToHTTPError())
	})
}
