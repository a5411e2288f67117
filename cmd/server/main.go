// @title           Ultra AI Assistant API
// @version         1.0
// @description     API do dashboard Ultra AI Assistant: registro de webhooks de assistentes externos, relay de chat e perfil de usuário
// @termsOfService  http://swagger.io/terms/

// @contact.name   Suporte da API
// @contact.url    http://www.swagger.io/support
// @contact.email  support@ultraai.app

// @license.name  MIT
// @license.url   https://opensource.org/licenses/MIT

// @host      localhost:8080
// @BasePath  /

// @securityDefinitions.apikey ApiKeyAuth
// @in header
// @name Authorization
// @description Digite "Bearer " seguido da sua API Key

// @externalDocs.description  OpenAPI
// @externalDocs.url          https://swagger.io/resources/open-api/
package main

import (
	"log"
	"os"

	_ "ultraai/docs"
	"ultraai/internal/app"
)

func main() {
	application, err := app.New()
	if err != nil {
		log.Fatalf("Erro ao criar aplicação: %v", err)
	}

	defer func() {
		if err := application.Close(); err != nil {
			log.Printf("Erro ao fechar aplicação: %v", err)
		}
	}()

	if err := application.Run(); err != nil {
		log.Printf("Erro ao executar aplicação: %v", err)
		os.Exit(1)
	}
}
