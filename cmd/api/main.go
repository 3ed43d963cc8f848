package main

import (
	_ "purchase_sale/docs"
	"purchase_sale/internal/adapter/http/routes"
)

// @title           Purchase/Sale Contract Service API
// @version         1.0
// @description     Purchase and sale contracts for used vehicles, checked against the client, user and vehicle registries.
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
	routes.Run()
}
