package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	bookController "perpustakaanku_backend/internals/features/library/books/controller"
)

// Mounted under the auth-guarded group: /api/u/books
func BookRoutes(r fiber.Router, db *gorm.DB) {
	ctl := &bookController.BooksController{DB: db}

	books := r.Group("/books")
	books.Get("/", ctl.List)
	books.Get("/export", ctl.ExportCSV)
	books.Get("/:id", ctl.GetByID)
	books.Post("/", ctl.Create)
	books.Put("/:id", ctl.Update)
	books.Delete("/:id", ctl.Delete)
}
