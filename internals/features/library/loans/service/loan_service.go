// internals/features/library/loans/service/loan_service.go
package service

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"perpustakaanku_backend/internals/constants"
	bookModel "perpustakaanku_backend/internals/features/library/books/model"
	historyModel "perpustakaanku_backend/internals/features/library/history/model"
	studentModel "perpustakaanku_backend/internals/features/library/students/model"
	helper "perpustakaanku_backend/internals/helpers"
)

// Sentinel errors; controllers map these onto HTTP statuses.
var (
	ErrBookNotFound         = errors.New("book not found")
	ErrStudentNotFound      = errors.New("student not found")
	ErrBookAlreadyBorrowed  = errors.New("book is already borrowed")
	ErrBookNotLoaned        = errors.New("book is not currently borrowed")
	ErrRenewalLimitExceeded = errors.New("renewal limit reached")
	ErrInvalidExtendDays    = errors.New("extension must be at least one day")
)

// LoanService owns the loan-state field group on books and the
// borrowing_history log. All date arithmetic goes through the injected
// clock so time-dependent behavior is testable.
type LoanService struct {
	DB    *gorm.DB
	Clock helper.Clock
}

func NewLoanService(db *gorm.DB) *LoanService {
	return &LoanService{DB: db, Clock: helper.RealClock{}}
}

// =========================================================
// Borrow hands a book to a student: flips availability, snapshots the
// student's name/code onto the book and opens a history row. Due date
// is borrow date + the default loan period.
// =========================================================
func (s *LoanService) Borrow(ctx context.Context, bookID, studentID uuid.UUID) (*bookModel.BookModel, error) {
	var out bookModel.BookModel

	err := s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var student studentModel.StudentModel
		if err := tx.First(&student, "student_id = ?", studentID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrStudentNotFound
			}
			return err
		}

		var book bookModel.BookModel
		if err := tx.First(&book, "book_id = ?", bookID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrBookNotFound
			}
			return err
		}
		if !book.BookAvailable {
			return ErrBookAlreadyBorrowed
		}

		today := helper.Today(s.Clock)
		due := today.AddDate(0, 0, constants.DefaultLoanPeriodDays)

		// conditional update: a concurrent borrow that got here first
		// leaves zero rows to update instead of being overwritten
		res := tx.Model(&bookModel.BookModel{}).
			Where("book_id = ? AND book_available = ?", bookID, true).
			Updates(map[string]any{
				"book_available":     false,
				"book_borrower_id":   student.StudentID,
				"book_borrower_name": student.StudentName,
				"book_borrower_code": student.StudentCode,
				"book_borrow_date":   today,
				"book_due_date":      due,
				"book_renewal_count": 0,
			})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return ErrBookAlreadyBorrowed
		}

		event := historyModel.BorrowingHistoryModel{
			BookID:       book.BookID,
			BookTitle:    book.BookTitle,
			StudentID:    student.StudentID,
			StudentName:  student.StudentName,
			StudentCode:  student.StudentCode,
			BorrowedDate: today,
		}
		if err := tx.Create(&event).Error; err != nil {
			return err
		}

		return tx.First(&out, "book_id = ?", bookID).Error
	})
	if err != nil {
		return nil, err
	}
	return &out, nil
}

// =========================================================
// Return puts a book back on the shelf and closes its open history
// row. Returning an already-available book is a no-op, so "borrower
// info missing" repair actions can always be replayed safely.
// =========================================================
func (s *LoanService) Return(ctx context.Context, bookID uuid.UUID) (*bookModel.BookModel, error) {
	var out bookModel.BookModel

	err := s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var book bookModel.BookModel
		if err := tx.First(&book, "book_id = ?", bookID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrBookNotFound
			}
			return err
		}
		if book.BookAvailable {
			out = book
			return nil
		}

		today := helper.Today(s.Clock)

		if err := tx.Model(&bookModel.BookModel{}).
			Where("book_id = ?", bookID).
			Updates(map[string]any{
				"book_available":     true,
				"book_borrower_id":   nil,
				"book_borrower_name": nil,
				"book_borrower_code": nil,
				"book_borrow_date":   nil,
				"book_due_date":      nil,
				"book_renewal_count": 0,
			}).Error; err != nil {
			return err
		}

		// close the newest open history row; a missing row is tolerated
		// (legacy data predating the history log)
		var event historyModel.BorrowingHistoryModel
		err := tx.Where("book_id = ? AND returned_date IS NULL", bookID).
			Order("created_at DESC").
			First(&event).Error
		if err == nil {
			if err := tx.Model(&event).Update("returned_date", today).Error; err != nil {
				return err
			}
		} else if !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}

		return tx.First(&out, "book_id = ?", bookID).Error
	})
	if err != nil {
		return nil, err
	}
	return &out, nil
}

// =========================================================
// Extend pushes the due date forward by the requested days, anchored
// to the later of the current due date and today. An overdue loan
// therefore never gets a shorter extension than one granted early.
// =========================================================
func (s *LoanService) Extend(ctx context.Context, bookID uuid.UUID, days int) (*bookModel.BookModel, error) {
	if days < 1 {
		return nil, ErrInvalidExtendDays
	}

	var out bookModel.BookModel

	err := s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var book bookModel.BookModel
		if err := tx.First(&book, "book_id = ?", bookID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrBookNotFound
			}
			return err
		}
		if book.BookAvailable || book.BookDueDate == nil {
			return ErrBookNotLoaned
		}
		if book.BookRenewalCount >= constants.MaxRenewals {
			return ErrRenewalLimitExceeded
		}

		today := helper.Today(s.Clock)
		anchor := helper.DateOnly(*book.BookDueDate)
		if anchor.Before(today) {
			anchor = today
		}
		newDue := anchor.AddDate(0, 0, days)

		if err := tx.Model(&bookModel.BookModel{}).
			Where("book_id = ?", bookID).
			Updates(map[string]any{
				"book_due_date":      newDue,
				"book_renewal_count": book.BookRenewalCount + 1,
			}).Error; err != nil {
			return err
		}

		return tx.First(&out, "book_id = ?", bookID).Error
	})
	if err != nil {
		return nil, err
	}
	return &out, nil
}

// =========================================================
// Classification — pure functions of a book and "today"; recomputed on
// every query, never cached.
// =========================================================

func IsOverdue(b *bookModel.BookModel, today time.Time) bool {
	return !b.BookAvailable && b.BookDueDate != nil && helper.DateOnly(*b.BookDueDate).Before(today)
}

func IsDueSoon(b *bookModel.BookModel, today time.Time) bool {
	if b.BookAvailable || b.BookDueDate == nil {
		return false
	}
	due := helper.DateOnly(*b.BookDueDate)
	return !due.Before(today) && due.Before(today.AddDate(0, 0, constants.DueSoonWindowDays))
}

// ListOverdue returns all borrowed books whose due date has passed.
func (s *LoanService) ListOverdue(ctx context.Context) ([]bookModel.BookModel, error) {
	borrowed, err := s.listBorrowed(ctx)
	if err != nil {
		return nil, err
	}
	today := helper.Today(s.Clock)
	out := make([]bookModel.BookModel, 0, len(borrowed))
	for i := range borrowed {
		if IsOverdue(&borrowed[i], today) {
			out = append(out, borrowed[i])
		}
	}
	return out, nil
}

// ListDueSoon returns borrowed books due within the due-soon window.
func (s *LoanService) ListDueSoon(ctx context.Context) ([]bookModel.BookModel, error) {
	borrowed, err := s.listBorrowed(ctx)
	if err != nil {
		return nil, err
	}
	today := helper.Today(s.Clock)
	out := make([]bookModel.BookModel, 0, len(borrowed))
	for i := range borrowed {
		if IsDueSoon(&borrowed[i], today) {
			out = append(out, borrowed[i])
		}
	}
	return out, nil
}

func (s *LoanService) listBorrowed(ctx context.Context) ([]bookModel.BookModel, error) {
	var books []bookModel.BookModel
	err := s.DB.WithContext(ctx).
		Where("book_available = ?", false).
		Order("book_due_date ASC").
		Find(&books).Error
	return books, err
}

// =========================================================
// Stats — pure aggregation over the current shelf state.
// =========================================================

type Stats struct {
	TotalBooks        int64
	AvailableBooks    int64
	BorrowedBooks     int64
	OverdueBooks      int64
	MostBorrowedBooks []bookModel.BookModel
}

// Stats counts the shelf and returns the first five currently-borrowed
// books under the historical "most borrowed" label. This is a
// recent-borrows list, not a frequency ranking.
func (s *LoanService) Stats(ctx context.Context) (*Stats, error) {
	db := s.DB.WithContext(ctx)

	var total int64
	if err := db.Model(&bookModel.BookModel{}).Count(&total).Error; err != nil {
		return nil, err
	}
	var available int64
	if err := db.Model(&bookModel.BookModel{}).
		Where("book_available = ?", true).
		Count(&available).Error; err != nil {
		return nil, err
	}

	borrowed, err := s.listBorrowed(ctx)
	if err != nil {
		return nil, err
	}

	today := helper.Today(s.Clock)
	var overdue int64
	for i := range borrowed {
		if IsOverdue(&borrowed[i], today) {
			overdue++
		}
	}

	most := borrowed
	if len(most) > 5 {
		most = most[:5]
	}

	return &Stats{
		TotalBooks:        total,
		AvailableBooks:    available,
		BorrowedBooks:     total - available,
		OverdueBooks:      overdue,
		MostBorrowedBooks: most,
	}, nil
}
