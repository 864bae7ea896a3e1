// internals/route/base_routes.go
package routes

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	helper "perpustakaanku_backend/internals/helpers"
)

var startTime = time.Now()

func BaseRoutes(app *fiber.App, db *gorm.DB) {
	app.Get("/", func(c *fiber.Ctx) error {
		return helper.JsonOK(c, "Perpustakaanku API is running", fiber.Map{
			"uptime": time.Since(startTime).Round(time.Second).String(),
		})
	})

	app.Get("/api/health", func(c *fiber.Ctx) error {
		status := "ok"
		dbStatus := "up"

		sqlDB, err := db.DB()
		if err != nil || sqlDB.PingContext(c.UserContext()) != nil {
			status = "degraded"
			dbStatus = "down"
		}

		code := fiber.StatusOK
		if status != "ok" {
			code = fiber.StatusServiceUnavailable
		}
		return c.Status(code).JSON(fiber.Map{
			"status":   status,
			"database": dbStatus,
			"uptime":   time.Since(startTime).Round(time.Second).String(),
		})
	})
}
