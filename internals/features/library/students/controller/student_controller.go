// internals/features/library/students/controller/student_controller.go
package controller

import (
	"encoding/csv"
	"errors"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	bookDTO "perpustakaanku_backend/internals/features/library/books/dto"
	bookModel "perpustakaanku_backend/internals/features/library/books/model"
	dto "perpustakaanku_backend/internals/features/library/students/dto"
	model "perpustakaanku_backend/internals/features/library/students/model"
	helper "perpustakaanku_backend/internals/helpers"
)

type StudentsController struct {
	DB *gorm.DB
}

var validate = validator.New()

// =========================================================
// CREATE - POST /api/u/students
// =========================================================
func (h *StudentsController) Create(c *fiber.Ctx) error {
	var req dto.StudentCreateRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid payload")
	}
	req.Normalize()
	if err := validate.Struct(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	// student codes are human identifiers and should stay unique
	var cnt int64
	if err := h.DB.Model(&model.StudentModel{}).
		Where("lower(student_code) = lower(?) AND student_deleted_at IS NULL", req.StudentCode).
		Count(&cnt).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to check duplicate code")
	}
	if cnt > 0 {
		return helper.JsonError(c, fiber.StatusConflict, "A student with this code already exists")
	}

	m := req.ToModel()
	if err := h.DB.Create(m).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to create student")
	}
	return helper.JsonCreated(c, "Student created", dto.ToStudentResponse(m))
}

// =========================================================
// LIST - GET /api/u/students?q=&page=&per_page=
// =========================================================
func (h *StudentsController) List(c *fiber.Ctx) error {
	var q dto.StudentListQuery
	if err := c.QueryParser(&q); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid query")
	}
	paging := helper.ResolvePaging(c, 20, 100)

	tx := h.DB.Model(&model.StudentModel{})
	if q.Q != nil && strings.TrimSpace(*q.Q) != "" {
		needle := "%" + strings.ToLower(strings.TrimSpace(*q.Q)) + "%"
		tx = tx.Where(
			"lower(student_name) LIKE ? OR lower(student_code) LIKE ? OR lower(student_grade) LIKE ?",
			needle, needle, needle,
		)
	}

	var total int64
	if err := tx.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to count students")
	}

	var students []model.StudentModel
	if err := tx.Order("student_name ASC").
		Limit(paging.Limit).Offset(paging.Offset).
		Find(&students).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch students")
	}

	p := helper.BuildPaginationFromPage(total, paging.Page, paging.PerPage)
	return helper.JsonList(c, "ok", dto.ToStudentResponses(students), &p)
}

// =========================================================
// DETAIL - GET /api/u/students/:id
// =========================================================
func (h *StudentsController) GetByID(c *fiber.Ctx) error {
	id, err := uuid.Parse(strings.TrimSpace(c.Params("id")))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid id")
	}

	var m model.StudentModel
	if err := h.DB.First(&m, "student_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Student not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch student")
	}
	return helper.JsonOK(c, "ok", dto.ToStudentResponse(&m))
}

// =========================================================
// BOOKS OF STUDENT - GET /api/u/students/:id/books
// Association is derived from books.book_borrower_id.
// =========================================================
func (h *StudentsController) GetBooks(c *fiber.Ctx) error {
	id, err := uuid.Parse(strings.TrimSpace(c.Params("id")))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid id")
	}

	var exists int64
	if err := h.DB.Model(&model.StudentModel{}).
		Where("student_id = ?", id).
		Count(&exists).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch student")
	}
	if exists == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "Student not found")
	}

	var books []bookModel.BookModel
	if err := h.DB.
		Where("book_borrower_id = ? AND book_available = ?", id, false).
		Order("book_due_date ASC").
		Find(&books).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch books")
	}

	return helper.JsonOK(c, "ok", bookDTO.ToBookResponses(books))
}

// =========================================================
// UPDATE - PUT /api/u/students/:id
// Edits never rewrite borrower snapshots on open loans.
// =========================================================
func (h *StudentsController) Update(c *fiber.Ctx) error {
	id, err := uuid.Parse(strings.TrimSpace(c.Params("id")))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid id")
	}

	var req dto.StudentUpdateRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid payload")
	}
	req.Normalize()
	if err := validate.Struct(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	var m model.StudentModel
	if err := h.DB.First(&m, "student_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Student not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch student")
	}

	if req.StudentCode != nil && !strings.EqualFold(*req.StudentCode, m.StudentCode) {
		var cnt int64
		if err := h.DB.Model(&model.StudentModel{}).
			Where("lower(student_code) = lower(?) AND student_id <> ? AND student_deleted_at IS NULL", *req.StudentCode, m.StudentID).
			Count(&cnt).Error; err != nil {
			return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to check duplicate code")
		}
		if cnt > 0 {
			return helper.JsonError(c, fiber.StatusConflict, "A student with this code already exists")
		}
	}

	req.ApplyToModel(&m)
	if err := h.DB.Save(&m).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to update student")
	}

	return helper.JsonUpdated(c, "Student updated", dto.ToStudentResponse(&m))
}

// =========================================================
// DELETE (soft) - DELETE /api/u/students/:id
// Blocked while the student still has borrowed books out.
// =========================================================
func (h *StudentsController) Delete(c *fiber.Ctx) error {
	id, err := uuid.Parse(strings.TrimSpace(c.Params("id")))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid id")
	}

	var m model.StudentModel
	if err := h.DB.First(&m, "student_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Student not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch student")
	}

	var open int64
	if err := h.DB.Model(&bookModel.BookModel{}).
		Where("book_borrower_id = ? AND book_available = ?", id, false).
		Count(&open).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to check open loans")
	}
	if open > 0 {
		return helper.JsonError(c, fiber.StatusConflict, "Student still has borrowed books")
	}

	if err := h.DB.Delete(&m).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to delete student")
	}

	return helper.JsonDeleted(c, "Student deleted", fiber.Map{
		"student_id": id,
	})
}

// =========================================================
// EXPORT - GET /api/u/students/export (CSV)
// =========================================================
func (h *StudentsController) ExportCSV(c *fiber.Ctx) error {
	var students []model.StudentModel
	if err := h.DB.Order("student_name ASC").Find(&students).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch students")
	}

	var b strings.Builder
	w := csv.NewWriter(&b)
	_ = w.Write([]string{"name", "code", "grade"})
	for i := range students {
		s := &students[i]
		_ = w.Write([]string{s.StudentName, s.StudentCode, s.StudentGrade})
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to build CSV")
	}

	c.Set(fiber.HeaderContentType, "text/csv; charset=utf-8")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="students.csv"`)
	return c.SendString(b.String())
}
