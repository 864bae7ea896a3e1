// internals/features/library/loans/dto/loan_dto.go
package dto

import (
	"github.com/google/uuid"

	bookDTO "perpustakaanku_backend/internals/features/library/books/dto"
)

type BorrowRequest struct {
	BookID    uuid.UUID `json:"book_id" validate:"required"`
	StudentID uuid.UUID `json:"student_id" validate:"required"`
}

type ReturnRequest struct {
	BookID uuid.UUID `json:"book_id" validate:"required"`
}

type ExtendRequest struct {
	BookID uuid.UUID `json:"book_id" validate:"required"`
	// day-count validation belongs to the ledger so the error comes
	// back as the same taxonomy as the other loan failures
	Days int `json:"days"`
}

type StatsResponse struct {
	TotalBooks        int64                  `json:"total_books"`
	AvailableBooks    int64                  `json:"available_books"`
	BorrowedBooks     int64                  `json:"borrowed_books"`
	OverdueBooks      int64                  `json:"overdue_books"`
	MostBorrowedBooks []bookDTO.BookResponse `json:"most_borrowed_books"`
}
