// internals/features/library/loans/controller/loan_controller.go
package controller

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	bookDTO "perpustakaanku_backend/internals/features/library/books/dto"
	dto "perpustakaanku_backend/internals/features/library/loans/dto"
	service "perpustakaanku_backend/internals/features/library/loans/service"
	helper "perpustakaanku_backend/internals/helpers"
)

type LoansController struct {
	DB      *gorm.DB
	Service *service.LoanService
}

func NewLoansController(db *gorm.DB) *LoansController {
	return &LoansController{DB: db, Service: service.NewLoanService(db)}
}

var validate = validator.New()

// =========================================================
// BORROW - POST /api/u/loans/borrow
// =========================================================
func (h *LoansController) Borrow(c *fiber.Ctx) error {
	var req dto.BorrowRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid payload")
	}
	if err := validate.Struct(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	book, err := h.Service.Borrow(c.UserContext(), req.BookID, req.StudentID)
	if err != nil {
		return ledgerError(c, err)
	}
	return helper.JsonOK(c, "Book borrowed", bookDTO.ToBookResponse(book))
}

// =========================================================
// RETURN - POST /api/u/loans/return
// =========================================================
func (h *LoansController) Return(c *fiber.Ctx) error {
	var req dto.ReturnRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid payload")
	}
	if err := validate.Struct(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	book, err := h.Service.Return(c.UserContext(), req.BookID)
	if err != nil {
		return ledgerError(c, err)
	}
	return helper.JsonOK(c, "Book returned", bookDTO.ToBookResponse(book))
}

// =========================================================
// EXTEND - POST /api/u/loans/extend
// =========================================================
func (h *LoansController) Extend(c *fiber.Ctx) error {
	var req dto.ExtendRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid payload")
	}
	if err := validate.Struct(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	book, err := h.Service.Extend(c.UserContext(), req.BookID, req.Days)
	if err != nil {
		return ledgerError(c, err)
	}
	return helper.JsonOK(c, "Due date extended", bookDTO.ToBookResponse(book))
}

// =========================================================
// OVERDUE - GET /api/u/loans/overdue
// =========================================================
func (h *LoansController) Overdue(c *fiber.Ctx) error {
	books, err := h.Service.ListOverdue(c.UserContext())
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch overdue books")
	}
	return helper.JsonOK(c, "ok", bookDTO.ToBookResponses(books))
}

// =========================================================
// DUE SOON - GET /api/u/loans/due-soon
// =========================================================
func (h *LoansController) DueSoon(c *fiber.Ctx) error {
	books, err := h.Service.ListDueSoon(c.UserContext())
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch due-soon books")
	}
	return helper.JsonOK(c, "ok", bookDTO.ToBookResponses(books))
}

// ledgerError maps ledger sentinels onto the standard error envelope.
func ledgerError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, service.ErrBookNotFound),
		errors.Is(err, service.ErrStudentNotFound):
		return helper.JsonError(c, fiber.StatusNotFound, err.Error())
	case errors.Is(err, service.ErrBookAlreadyBorrowed),
		errors.Is(err, service.ErrRenewalLimitExceeded):
		return helper.JsonError(c, fiber.StatusConflict, err.Error())
	case errors.Is(err, service.ErrBookNotLoaned),
		errors.Is(err, service.ErrInvalidExtendDays):
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	default:
		return helper.JsonError(c, fiber.StatusInternalServerError, "Backend error")
	}
}
