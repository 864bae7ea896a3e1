// internals/features/library/history/dto/history_dto.go
package dto

import (
	"time"

	"github.com/google/uuid"

	model "perpustakaanku_backend/internals/features/library/history/model"
)

type HistoryListQuery struct {
	Q      *string `query:"q"`      // substring over book title / student name / student code
	Status *string `query:"status"` // all|returned|borrowed
}

type HistoryResponse struct {
	BorrowingHistoryID uuid.UUID `json:"borrowing_history_id"`
	BookID             uuid.UUID `json:"book_id"`
	BookTitle          string    `json:"book_title"`
	StudentID          uuid.UUID `json:"student_id"`
	StudentName        string    `json:"student_name"`
	StudentCode        string    `json:"student_code"`
	BorrowedDate       string    `json:"borrowed_date"`
	ReturnedDate       *string   `json:"returned_date,omitempty"`
	CreatedAt          time.Time `json:"created_at"`
}

func ToHistoryResponse(m *model.BorrowingHistoryModel) HistoryResponse {
	out := HistoryResponse{
		BorrowingHistoryID: m.BorrowingHistoryID,
		BookID:             m.BookID,
		BookTitle:          m.BookTitle,
		StudentID:          m.StudentID,
		StudentName:        m.StudentName,
		StudentCode:        m.StudentCode,
		BorrowedDate:       m.BorrowedDate.Format("2006-01-02"),
		CreatedAt:          m.CreatedAt,
	}
	if m.ReturnedDate != nil {
		s := m.ReturnedDate.Format("2006-01-02")
		out.ReturnedDate = &s
	}
	return out
}

func ToHistoryResponses(ms []model.BorrowingHistoryModel) []HistoryResponse {
	out := make([]HistoryResponse, 0, len(ms))
	for i := range ms {
		out = append(out, ToHistoryResponse(&ms[i]))
	}
	return out
}

// Counters shown above the history table.
type HistoryStats struct {
	Total    int64 `json:"total"`
	Returned int64 `json:"returned"`
	Borrowed int64 `json:"borrowed"`
}
