package main

import (
	"github.com/ViniciusVRodrigues/despensa-backend/cmd/config"
	"github.com/ViniciusVRodrigues/despensa-backend/internal/utils"

	"github.com/gofiber/fiber/v2/log"
)

func main() {
	utils.LoadConfig()

	app, err := config.NewApp()
	if err != nil {
		log.Fatalf("error creating app: %v", err)
	}

	port := utils.GetConfig("SERVER_PORT")
	if port == "" {
		port = "8080"
	}

	if err := app.Listen(":" + port); err != nil {
		log.Fatalf("error starting server: %v", err)
	}
}
