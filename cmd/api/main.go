package main

import (
	"context"
	"log"

	_ "autocare_api/docs"
	"autocare_api/internal/adapter/cli"

	_ "github.com/joho/godotenv/autoload"
)

// @title           AutoCare Jobs API
// @version         1.0
// @description     Vehicle-service job lifecycle: requests, quotes, parts orders, bills and payments.
// @termsOfService  http://swagger.io/terms/

// @contact.name   API Support
// @contact.url    http://www.swagger.io/support
// @contact.email  support@swagger.io

// @license.name  Apache 2.0
// @license.url   http://www.apache.org/licenses/LICENSE-2.0.html

// @host localhost:8080

// @BasePath  /v1

// @securityDefinitions.apikey Bearer
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.

func main() {
	if err := cli.NewRootCommand().ExecuteContext(context.Background()); err != nil {
		log.Fatalf("autocare-api: %v", err)
	}
}
