// internals/route/index.go
package routes

import (
	"log"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	bookRoute "perpustakaanku_backend/internals/features/library/books/route"
	historyRoute "perpustakaanku_backend/internals/features/library/history/route"
	loanRoute "perpustakaanku_backend/internals/features/library/loans/route"
	metadataRoute "perpustakaanku_backend/internals/features/library/metadata/route"
	studentRoute "perpustakaanku_backend/internals/features/library/students/route"
	authRoute "perpustakaanku_backend/internals/features/users/auth/route"
	authMiddleware "perpustakaanku_backend/internals/middlewares/auth"
)

// SetupRoutes wires every feature under the app. Public surface is the
// base routes plus /api/auth/login; everything else sits behind the
// JWT guard on /api/u.
func SetupRoutes(app *fiber.App, db *gorm.DB) {
	BaseRoutes(app, db)

	authRoute.AuthRoutes(app, db)

	// 🔒 Guarded API group
	protected := app.Group("/api/u", authMiddleware.AuthMiddleware(db))
	bookRoute.BookRoutes(protected, db)
	studentRoute.StudentRoutes(protected, db)
	loanRoute.LoanRoutes(protected, db)
	historyRoute.HistoryRoutes(protected, db)
	metadataRoute.MetadataRoutes(protected)

	log.Println("[INFO] All routes registered")
}
