// internals/features/library/history/controller/history_controller.go
package controller

import (
	"encoding/csv"
	"strings"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	dto "perpustakaanku_backend/internals/features/library/history/dto"
	model "perpustakaanku_backend/internals/features/library/history/model"
	helper "perpustakaanku_backend/internals/helpers"
)

type HistoryController struct {
	DB *gorm.DB
}

// =========================================================
// LIST - GET /api/u/history?q=&status=&page=&per_page=
// =========================================================
func (h *HistoryController) List(c *fiber.Ctx) error {
	var q dto.HistoryListQuery
	if err := c.QueryParser(&q); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid query")
	}
	paging := helper.ResolvePaging(c, 20, 100)

	tx := h.DB.Model(&model.BorrowingHistoryModel{})
	if q.Q != nil && strings.TrimSpace(*q.Q) != "" {
		needle := "%" + strings.ToLower(strings.TrimSpace(*q.Q)) + "%"
		tx = tx.Where(
			"lower(book_title) LIKE ? OR lower(student_name) LIKE ? OR lower(student_code) LIKE ?",
			needle, needle, needle,
		)
	}
	if q.Status != nil {
		switch strings.ToLower(strings.TrimSpace(*q.Status)) {
		case "", "all":
			// no filter
		case "returned":
			tx = tx.Where("returned_date IS NOT NULL")
		case "borrowed":
			tx = tx.Where("returned_date IS NULL")
		default:
			return helper.JsonError(c, fiber.StatusBadRequest, "status must be one of all|returned|borrowed")
		}
	}

	var total int64
	if err := tx.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to count history")
	}

	var records []model.BorrowingHistoryModel
	if err := tx.Order("created_at DESC").
		Limit(paging.Limit).Offset(paging.Offset).
		Find(&records).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch history")
	}

	p := helper.BuildPaginationFromPage(total, paging.Page, paging.PerPage)
	return helper.JsonList(c, "ok", dto.ToHistoryResponses(records), &p)
}

// =========================================================
// STATS - GET /api/u/history/stats
// =========================================================
func (h *HistoryController) Stats(c *fiber.Ctx) error {
	var total, returned int64
	if err := h.DB.Model(&model.BorrowingHistoryModel{}).Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to count history")
	}
	if err := h.DB.Model(&model.BorrowingHistoryModel{}).
		Where("returned_date IS NOT NULL").
		Count(&returned).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to count history")
	}

	return helper.JsonOK(c, "ok", dto.HistoryStats{
		Total:    total,
		Returned: returned,
		Borrowed: total - returned,
	})
}

// =========================================================
// EXPORT - GET /api/u/history/export (CSV)
// =========================================================
func (h *HistoryController) ExportCSV(c *fiber.Ctx) error {
	var records []model.BorrowingHistoryModel
	if err := h.DB.Order("created_at DESC").Find(&records).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch history")
	}

	var b strings.Builder
	w := csv.NewWriter(&b)
	_ = w.Write([]string{"book_title", "student_name", "student_code", "borrowed_date", "returned_date"})
	for i := range records {
		r := &records[i]
		returned := ""
		if r.ReturnedDate != nil {
			returned = r.ReturnedDate.Format("2006-01-02")
		}
		_ = w.Write([]string{
			r.BookTitle,
			r.StudentName,
			r.StudentCode,
			r.BorrowedDate.Format("2006-01-02"),
			returned,
		})
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to build CSV")
	}

	c.Set(fiber.HeaderContentType, "text/csv; charset=utf-8")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="borrowing_history.csv"`)
	return c.SendString(b.String())
}
