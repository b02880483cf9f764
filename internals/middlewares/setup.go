package middlewares

import (
	"github.com/gofiber/fiber/v2"

	logger "gemilang_backend/internals/middlewares/logger"
)

// SetupMiddlewares memasang middleware dasar untuk semua request.
func SetupMiddlewares(app *fiber.App) {
	app.Use(RecoveryMiddleware())
	app.Use(CorsMiddleware())
	app.Use(logger.LoggerMiddleware())
	app.Use(GlobalRateLimiter())
}
