package main

import (
	_ "relatorio_ronda/docs"
	"relatorio_ronda/internal/adapter/http/routes"

	_ "github.com/joho/godotenv/autoload"
)

// @title           Relatório de Ronda API
// @version         1.0
// @description     Cadastro de empresas, usuários, relatórios de ronda e suas voltas.

// @host localhost:8080

// @BasePath  /v1

func main() {
	routes.Run()
}
