package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	studentController "perpustakaanku_backend/internals/features/library/students/controller"
)

// Mounted under the auth-guarded group: /api/u/students
func StudentRoutes(r fiber.Router, db *gorm.DB) {
	ctl := &studentController.StudentsController{DB: db}

	students := r.Group("/students")
	students.Get("/", ctl.List)
	students.Get("/export", ctl.ExportCSV)
	students.Get("/:id", ctl.GetByID)
	students.Get("/:id/books", ctl.GetBooks)
	students.Post("/", ctl.Create)
	students.Put("/:id", ctl.Update)
	students.Delete("/:id", ctl.Delete)
}
