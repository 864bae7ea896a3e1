// internals/features/library/books/controller/book_controller.go
package controller

import (
	"encoding/csv"
	"errors"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	dto "perpustakaanku_backend/internals/features/library/books/dto"
	model "perpustakaanku_backend/internals/features/library/books/model"
	helper "perpustakaanku_backend/internals/helpers"
)

type BooksController struct {
	DB *gorm.DB
}

var validate = validator.New()

// =========================================================
// CREATE - POST /api/u/books
// =========================================================
func (h *BooksController) Create(c *fiber.Ctx) error {
	var req dto.BookCreateRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid payload")
	}

	req.Normalize()
	if err := validate.Struct(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	// duplicate catalog code check (soft-delete aware)
	var cnt int64
	if err := h.DB.Model(&model.BookModel{}).
		Where("book_code = ? AND book_deleted_at IS NULL", req.BookCode).
		Count(&cnt).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to check duplicate code")
	}
	if cnt > 0 {
		return helper.JsonError(c, fiber.StatusConflict, "A book with this code already exists")
	}

	m := req.ToModel()
	if err := h.DB.Create(m).Error; err != nil {
		msg := strings.ToLower(err.Error())
		if strings.Contains(msg, "duplicate") || strings.Contains(msg, "unique") {
			return helper.JsonError(c, fiber.StatusConflict, "A book with this code already exists")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to create book")
	}
	return helper.JsonCreated(c, "Book created", dto.ToBookResponse(m))
}

// =========================================================
// LIST - GET /api/u/books?q=&genre=&available=&page=&per_page=
// =========================================================
func (h *BooksController) List(c *fiber.Ctx) error {
	var q dto.BookListQuery
	if err := c.QueryParser(&q); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid query")
	}
	paging := helper.ResolvePaging(c, 20, 100)

	tx := h.DB.Model(&model.BookModel{})
	if q.Q != nil && strings.TrimSpace(*q.Q) != "" {
		needle := "%" + strings.ToLower(strings.TrimSpace(*q.Q)) + "%"
		tx = tx.Where(
			"lower(book_title) LIKE ? OR lower(book_author) LIKE ? OR lower(book_code) LIKE ?",
			needle, needle, needle,
		)
	}
	if q.Genre != nil && strings.TrimSpace(*q.Genre) != "" {
		tx = tx.Where("book_genre = ?", strings.ToLower(strings.TrimSpace(*q.Genre)))
	}
	if q.Available != nil {
		tx = tx.Where("book_available = ?", *q.Available)
	}

	var total int64
	if err := tx.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to count books")
	}

	var books []model.BookModel
	if err := tx.Order("book_title ASC").
		Limit(paging.Limit).Offset(paging.Offset).
		Find(&books).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch books")
	}

	p := helper.BuildPaginationFromPage(total, paging.Page, paging.PerPage)
	return helper.JsonList(c, "ok", dto.ToBookResponses(books), &p)
}

// =========================================================
// DETAIL - GET /api/u/books/:id
// =========================================================
func (h *BooksController) GetByID(c *fiber.Ctx) error {
	id, err := uuid.Parse(strings.TrimSpace(c.Params("id")))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid id")
	}

	var m model.BookModel
	if err := h.DB.First(&m, "book_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Book not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch book")
	}
	return helper.JsonOK(c, "ok", dto.ToBookResponse(&m))
}

// =========================================================
// UPDATE - PUT /api/u/books/:id
// =========================================================
func (h *BooksController) Update(c *fiber.Ctx) error {
	id, err := uuid.Parse(strings.TrimSpace(c.Params("id")))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid id")
	}

	var req dto.BookUpdateRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid payload")
	}
	req.Normalize()
	if err := validate.Struct(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	var m model.BookModel
	if err := h.DB.First(&m, "book_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Book not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch book")
	}

	// duplicate code check when the code changes
	if req.BookCode != nil && !strings.EqualFold(*req.BookCode, m.BookCode) {
		var cnt int64
		if err := h.DB.Model(&model.BookModel{}).
			Where("book_code = ? AND book_id <> ? AND book_deleted_at IS NULL", *req.BookCode, m.BookID).
			Count(&cnt).Error; err != nil {
			return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to check duplicate code")
		}
		if cnt > 0 {
			return helper.JsonError(c, fiber.StatusConflict, "A book with this code already exists")
		}
	}

	req.ApplyToModel(&m)
	if err := h.DB.Save(&m).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to update book")
	}

	return helper.JsonUpdated(c, "Book updated", dto.ToBookResponse(&m))
}

// =========================================================
// DELETE (soft) - DELETE /api/u/books/:id
// Only permitted while the book is on the shelf.
// =========================================================
func (h *BooksController) Delete(c *fiber.Ctx) error {
	id, err := uuid.Parse(strings.TrimSpace(c.Params("id")))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid id")
	}

	var m model.BookModel
	if err := h.DB.First(&m, "book_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Book not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch book")
	}
	if !m.BookAvailable {
		return helper.JsonError(c, fiber.StatusConflict, "Book is currently borrowed and cannot be deleted")
	}

	if err := h.DB.Delete(&m).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to delete book")
	}

	return helper.JsonDeleted(c, "Book deleted", fiber.Map{
		"book_id": id,
	})
}

// =========================================================
// EXPORT - GET /api/u/books/export (CSV)
// =========================================================
func (h *BooksController) ExportCSV(c *fiber.Ctx) error {
	var books []model.BookModel
	if err := h.DB.Order("book_title ASC").Find(&books).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch books")
	}

	var b strings.Builder
	w := csv.NewWriter(&b)
	_ = w.Write([]string{"code", "title", "author", "genre", "available", "borrower_name", "borrower_code", "borrow_date", "due_date", "renewal_count"})
	for i := range books {
		bk := &books[i]
		_ = w.Write([]string{
			bk.BookCode,
			bk.BookTitle,
			bk.BookAuthor,
			bk.BookGenre,
			boolToCell(bk.BookAvailable),
			strPtrCell(bk.BookBorrowerName),
			strPtrCell(bk.BookBorrowerCode),
			datePtrCell(bk.BookBorrowDate),
			datePtrCell(bk.BookDueDate),
			itoa(bk.BookRenewalCount),
		})
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to build CSV")
	}

	c.Set(fiber.HeaderContentType, "text/csv; charset=utf-8")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="books.csv"`)
	return c.SendString(b.String())
}
