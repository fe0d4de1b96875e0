package middleware

import (
	"os"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"

	"chatbot_backend/pkg/logging"
)

func CORS() fiber.Handler {
	allowOrigins := os.Getenv("ALLOWORIGINS")
	if allowOrigins == "" {
		allowOrigins = "*"
	}
	logging.Logger.Info("CORS configured", "allowOrigins", allowOrigins)
	return cors.New(cors.Config{
		AllowOrigins: allowOrigins,
		AllowMethods: "GET, POST",
		AllowHeaders: "Origin, Content-Type, Accept",
	})
}
