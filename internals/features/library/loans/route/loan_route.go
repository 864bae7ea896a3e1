package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	loanController "perpustakaanku_backend/internals/features/library/loans/controller"
)

// Mounted under the auth-guarded group: /api/u/loans
func LoanRoutes(r fiber.Router, db *gorm.DB) {
	ctl := loanController.NewLoansController(db)

	loans := r.Group("/loans")
	loans.Post("/borrow", ctl.Borrow)
	loans.Post("/return", ctl.Return)
	loans.Post("/extend", ctl.Extend)
	loans.Get("/overdue", ctl.Overdue)
	loans.Get("/due-soon", ctl.DueSoon)
	loans.Get("/stats", ctl.Stats)
}
