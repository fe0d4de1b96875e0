package main

import (
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/gofiber/fiber/v2"
	"github.com/joho/godotenv"

	"chatbot_backend/bootstrap"
	"chatbot_backend/config"
	"chatbot_backend/middleware"
	"chatbot_backend/pkg/logging"
	"chatbot_backend/routes"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using process environment")
	}
	logging.Init()

	cfg := config.LoadConfig()
	app, err := bootstrap.NewApp(cfg)
	if err != nil {
		log.Fatal(err)
	}

	fiberApp := fiber.New()
	fiberApp.Use(middleware.Logger())
	fiberApp.Use(middleware.CORS())

	routes.RegisterDialogueRoutes(fiberApp, app.Handlers.DialogueHandler)
	routes.RegisterContactRoutes(fiberApp, app.Handlers.ContactHandler)
	routes.RegisterSystemRoutes(fiberApp, app.Handlers.HealthHandler)
	routes.SetupWebSocketRoutes(fiberApp, app.Handlers.WSHandler)

	port := cfg.HttpPort
	if port == "" {
		port = "3000"
	}

	go func() {
		quit := make(chan os.Signal, 1)
		signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
		<-quit
		log.Println("Shutting down...")
		if err := fiberApp.Shutdown(); err != nil {
			log.Println("Error shutting down server:", err)
		}
	}()

	log.Println("Server running on http://localhost:" + port)
	if err := fiberApp.Listen(":" + port); err != nil {
		log.Fatal(err)
	}
	if err := app.Shutdown(); err != nil {
		log.Println("Error during shutdown:", err)
	}
}
