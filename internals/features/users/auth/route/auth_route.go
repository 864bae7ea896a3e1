package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	authService "perpustakaanku_backend/internals/features/users/auth/service"
	authMiddleware "perpustakaanku_backend/internals/middlewares/auth"
	middlewares "perpustakaanku_backend/internals/middlewares"
)

// AuthRoutes: /api/auth/*
func AuthRoutes(app *fiber.App, db *gorm.DB) {
	grp := app.Group("/api/auth")

	grp.Post("/login", middlewares.LoginRateLimiter(), func(c *fiber.Ctx) error {
		return authService.Login(db, c)
	})

	protected := grp.Group("", authMiddleware.AuthMiddleware(db))
	protected.Post("/logout", func(c *fiber.Ctx) error {
		return authService.Logout(db, c)
	})
	protected.Post("/change-password", func(c *fiber.Ctx) error {
		return authService.ChangePassword(db, c)
	})
}
