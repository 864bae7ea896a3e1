// internals/features/library/history/model/history_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// BorrowingHistoryModel is an append-only record of one borrow-to-return
// cycle. Book and student fields are denormalized snapshots taken at
// borrow time; an unset returned date means the book is still out.
type BorrowingHistoryModel struct {
	BorrowingHistoryID uuid.UUID `json:"borrowing_history_id" gorm:"column:borrowing_history_id;type:uuid;default:gen_random_uuid();primaryKey"`

	BookID    uuid.UUID `json:"book_id" gorm:"column:book_id;type:uuid;not null;index:idx_borrowing_history_book"`
	BookTitle string    `json:"book_title" gorm:"column:book_title;type:varchar(255);not null"`

	StudentID   uuid.UUID `json:"student_id" gorm:"column:student_id;type:uuid;not null;index:idx_borrowing_history_student"`
	StudentName string    `json:"student_name" gorm:"column:student_name;type:varchar(100);not null"`
	StudentCode string    `json:"student_code" gorm:"column:student_code;type:varchar(32);not null"`

	BorrowedDate time.Time  `json:"borrowed_date" gorm:"column:borrowed_date;type:date;not null"`
	ReturnedDate *time.Time `json:"returned_date,omitempty" gorm:"column:returned_date;type:date"`

	CreatedAt time.Time `json:"created_at" gorm:"column:created_at;type:timestamptz;not null;autoCreateTime"`
}

func (BorrowingHistoryModel) TableName() string { return "borrowing_history" }

func (h *BorrowingHistoryModel) BeforeCreate(tx *gorm.DB) error {
	if h.BorrowingHistoryID == uuid.Nil {
		h.BorrowingHistoryID = uuid.New()
	}
	return nil
}
