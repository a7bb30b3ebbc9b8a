package routes

import "github.com/gin-gonic/gin"

const (
	PathEmpresa        = "/Empresa"
	PathUsuario        = "/Usuario"
	PathRelatorioRonda = "/RelatorioRonda"
	PathVoltaRonda     = "/VoltaRonda"
)

func addRondaRoutes(rg *gin.RouterGroup, h Handlers) {
	empresas := rg.Group(PathEmpresa)
	{
		empresas.GET("", h.Empresa.List)
		empresas.GET("/:id", h.Empresa.GetByID)
		empresas.POST("", h.Empresa.Create)
		empresas.PUT("/:id", h.Empresa.Update)
		empresas.DELETE("/:id", h.Empresa.Delete)
		empresas.DELETE("/desativar/:id", h.Empresa.Deactivate)
	}

	usuarios := rg.Group(PathUsuario)
	{
		usuarios.GET("", h.Usuario.List)
		usuarios.GET("/:id", h.Usuario.GetByID)
		usuarios.POST("", h.Usuario.Create)
		usuarios.PUT("/:id", h.Usuario.Update)
		usuarios.DELETE("/:id", h.Usuario.Delete)
		usuarios.DELETE("/desativar/:id", h.Usuario.Deactivate)
	}

	relatorios := rg.Group(PathRelatorioRonda)
	{
		relatorios.GET("", h.RelatorioRonda.List)
		relatorios.GET("/:id", h.RelatorioRonda.GetByID)
		relatorios.GET("/empresa/:empresaId", h.RelatorioRonda.ListByEmpresa)
		relatorios.GET("/vigilante/:vigilanteId", h.RelatorioRonda.ListByVigilante)
		relatorios.GET("/data/:data", h.RelatorioRonda.ListByData)
		relatorios.POST("", h.RelatorioRonda.Create)
		relatorios.PUT("/:id", h.RelatorioRonda.Update)
		relatorios.DELETE("/:id", h.RelatorioRonda.Delete)
		relatorios.DELETE("/desativar/:id", h.RelatorioRonda.Deactivate)
	}

	voltas := rg.Group(PathVoltaRonda)
	{
		voltas.GET("", h.VoltaRonda.List)
		voltas.GET("/:id", h.VoltaRonda.GetByID)
		voltas.GET("/relatorio/:relatorioId", h.VoltaRonda.ListByRelatorio)
		voltas.POST("", h.VoltaRonda.Create)
		voltas.PUT("/:id", h.VoltaRonda.Update)
		voltas.DELETE("/:id", h.VoltaRonda.Delete)
		voltas.DELETE("/desativar/:id", h.VoltaRonda.Deactivate)
	}
}
