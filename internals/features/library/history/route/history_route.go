package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	historyController "perpustakaanku_backend/internals/features/library/history/controller"
)

// Mounted under the auth-guarded group: /api/u/history
func HistoryRoutes(r fiber.Router, db *gorm.DB) {
	ctl := &historyController.HistoryController{DB: db}

	history := r.Group("/history")
	history.Get("/", ctl.List)
	history.Get("/stats", ctl.Stats)
	history.Get("/export", ctl.ExportCSV)
}
