// internals/features/library/loans/controller/stats_controller.go
package controller

import (
	"github.com/gofiber/fiber/v2"

	bookDTO "perpustakaanku_backend/internals/features/library/books/dto"
	dto "perpustakaanku_backend/internals/features/library/loans/dto"
	helper "perpustakaanku_backend/internals/helpers"
)

// =========================================================
// STATS - GET /api/u/loans/stats
// Dashboard counters plus the "most borrowed" strip.
// =========================================================
func (h *LoansController) Stats(c *fiber.Ctx) error {
	stats, err := h.Service.Stats(c.UserContext())
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to compute stats")
	}

	return helper.JsonOK(c, "ok", dto.StatsResponse{
		TotalBooks:        stats.TotalBooks,
		AvailableBooks:    stats.AvailableBooks,
		BorrowedBooks:     stats.BorrowedBooks,
		OverdueBooks:      stats.OverdueBooks,
		MostBorrowedBooks: bookDTO.ToBookResponses(stats.MostBorrowedBooks),
	})
}
