package middlewares

import (
	"log"
	"runtime/debug"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
)

// SetupMiddlewares memasang middleware dasar (urutan penting: recovery paling awal)
func SetupMiddlewares(app *fiber.App) {
	app.Use(recover.New(recover.Config{
		EnableStackTrace: true,
		StackTraceHandler: func(c *fiber.Ctx, e interface{}) {
			log.Printf("[PANIC] %s %s: %v\n%s", c.Method(), c.Path(), e, debug.Stack())
		},
	}))
	app.Use(CorsMiddleware())
	app.Use(GlobalRateLimiter())
}
