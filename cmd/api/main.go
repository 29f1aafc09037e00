package main

import (
	_ "catering_portal/docs"
	"catering_portal/internal/adapter/http/routes"

	_ "github.com/joho/godotenv/autoload"
)

// @title           Catering Workflow API
// @version         1.0
// @description     Quote and estimate/invoice workflow service (status state machine, audit log, payment reconciliation) backed by DynamoDB.

// @contact.name   API Support

// @host localhost:8080

// @BasePath  /v1

func main() {
	routes.Run()
}
