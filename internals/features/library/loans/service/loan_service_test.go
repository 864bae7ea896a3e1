package service

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	sqlite "github.com/glebarez/sqlite"

	"perpustakaanku_backend/internals/constants"
	bookModel "perpustakaanku_backend/internals/features/library/books/model"
	historyModel "perpustakaanku_backend/internals/features/library/history/model"
	studentModel "perpustakaanku_backend/internals/features/library/students/model"
	helper "perpustakaanku_backend/internals/helpers"
)

// The production schema lives in Postgres; tests run against in-memory
// sqlite, so tables are created with portable DDL instead of AutoMigrate
// (Postgres column defaults like gen_random_uuid() do not parse there).
var testDDL = []string{
	`CREATE TABLE books (
		book_id text PRIMARY KEY,
		book_code text NOT NULL,
		book_title text NOT NULL,
		book_author text NOT NULL,
		book_genre text NOT NULL,
		book_cover_url text,
		book_classification_number text,
		book_inventory_number text,
		book_subjects text,
		book_metadata text,
		book_available numeric NOT NULL DEFAULT 1,
		book_borrower_id text,
		book_borrower_name text,
		book_borrower_code text,
		book_borrow_date datetime,
		book_due_date datetime,
		book_renewal_count integer NOT NULL DEFAULT 0,
		book_created_at datetime,
		book_updated_at datetime,
		book_deleted_at datetime
	)`,
	`CREATE TABLE students (
		student_id text PRIMARY KEY,
		student_name text NOT NULL,
		student_code text NOT NULL,
		student_grade text NOT NULL,
		student_created_at datetime,
		student_updated_at datetime,
		student_deleted_at datetime
	)`,
	`CREATE TABLE borrowing_history (
		borrowing_history_id text PRIMARY KEY,
		book_id text NOT NULL,
		book_title text NOT NULL,
		student_id text NOT NULL,
		student_name text NOT NULL,
		student_code text NOT NULL,
		borrowed_date datetime NOT NULL,
		returned_date datetime,
		created_at datetime
	)`,
}

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)

	// a single connection keeps every session on the same :memory: DB
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	for _, ddl := range testDDL {
		require.NoError(t, db.Exec(ddl).Error)
	}
	return db
}

func newTestService(t *testing.T, today time.Time) (*LoanService, *gorm.DB) {
	t.Helper()
	db := newTestDB(t)
	return &LoanService{DB: db, Clock: helper.FixedClock{At: today}}, db
}

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func seedStudent(t *testing.T, db *gorm.DB, name, code string) *studentModel.StudentModel {
	t.Helper()
	s := &studentModel.StudentModel{
		StudentName:  name,
		StudentCode:  code,
		StudentGrade: "3A",
	}
	require.NoError(t, db.Create(s).Error)
	return s
}

func seedBook(t *testing.T, db *gorm.DB, code, title string) *bookModel.BookModel {
	t.Helper()
	b := &bookModel.BookModel{
		BookCode:      code,
		BookTitle:     title,
		BookAuthor:    "Juan Rulfo",
		BookGenre:     constants.GenreLiteratura,
		BookAvailable: true,
	}
	require.NoError(t, db.Create(b).Error)
	return b
}

func seedBorrowed(t *testing.T, db *gorm.DB, svc *LoanService, code, title string, st *studentModel.StudentModel) *bookModel.BookModel {
	t.Helper()
	b := seedBook(t, db, code, title)
	out, err := svc.Borrow(context.Background(), b.BookID, st.StudentID)
	require.NoError(t, err)
	return out
}

// ---------------------------------------------------------------------
// Borrow
// ---------------------------------------------------------------------

func TestBorrow_SetsLoanFieldsAndOpensHistory(t *testing.T) {
	today := date(2026, time.March, 10)
	svc, db := newTestService(t, today)
	st := seedStudent(t, db, "Ana García", "A-001")
	b := seedBook(t, db, "LIT-001", "Pedro Páramo")

	out, err := svc.Borrow(context.Background(), b.BookID, st.StudentID)
	require.NoError(t, err)

	assert.False(t, out.BookAvailable)
	require.NotNil(t, out.BookBorrowerID)
	assert.Equal(t, st.StudentID, *out.BookBorrowerID)
	require.NotNil(t, out.BookBorrowerName)
	assert.Equal(t, "Ana García", *out.BookBorrowerName)
	require.NotNil(t, out.BookBorrowerCode)
	assert.Equal(t, "A-001", *out.BookBorrowerCode)

	require.NotNil(t, out.BookBorrowDate)
	require.NotNil(t, out.BookDueDate)
	assert.Equal(t, today, helper.DateOnly(*out.BookBorrowDate))
	assert.Equal(t, today.AddDate(0, 0, constants.DefaultLoanPeriodDays), helper.DateOnly(*out.BookDueDate))
	assert.Equal(t, 0, out.BookRenewalCount)

	var events []historyModel.BorrowingHistoryModel
	require.NoError(t, db.Find(&events).Error)
	require.Len(t, events, 1)
	assert.Equal(t, b.BookID, events[0].BookID)
	assert.Equal(t, "Pedro Páramo", events[0].BookTitle)
	assert.Equal(t, st.StudentID, events[0].StudentID)
	assert.Equal(t, today, helper.DateOnly(events[0].BorrowedDate))
	assert.Nil(t, events[0].ReturnedDate)
}

func TestBorrow_AlreadyBorrowed(t *testing.T) {
	svc, db := newTestService(t, date(2026, time.March, 10))
	st := seedStudent(t, db, "Ana García", "A-001")
	other := seedStudent(t, db, "Luis Pérez", "A-002")
	b := seedBorrowed(t, db, svc, "LIT-001", "Pedro Páramo", st)

	_, err := svc.Borrow(context.Background(), b.BookID, other.StudentID)
	assert.ErrorIs(t, err, ErrBookAlreadyBorrowed)

	// the original loan is untouched
	var reread bookModel.BookModel
	require.NoError(t, db.First(&reread, "book_id = ?", b.BookID).Error)
	require.NotNil(t, reread.BookBorrowerID)
	assert.Equal(t, st.StudentID, *reread.BookBorrowerID)
}

func TestBorrow_UnknownIDs(t *testing.T) {
	svc, db := newTestService(t, date(2026, time.March, 10))
	st := seedStudent(t, db, "Ana García", "A-001")
	b := seedBook(t, db, "LIT-001", "Pedro Páramo")

	_, err := svc.Borrow(context.Background(), uuid.New(), st.StudentID)
	assert.ErrorIs(t, err, ErrBookNotFound)

	_, err = svc.Borrow(context.Background(), b.BookID, uuid.New())
	assert.ErrorIs(t, err, ErrStudentNotFound)
}

// ---------------------------------------------------------------------
// Return
// ---------------------------------------------------------------------

func TestReturn_ClearsLoanStateAndClosesHistory(t *testing.T) {
	today := date(2026, time.March, 10)
	svc, db := newTestService(t, today)
	st := seedStudent(t, db, "Ana García", "A-001")
	b := seedBorrowed(t, db, svc, "LIT-001", "Pedro Páramo", st)

	svc.Clock = helper.FixedClock{At: date(2026, time.March, 13)}
	out, err := svc.Return(context.Background(), b.BookID)
	require.NoError(t, err)

	assert.True(t, out.BookAvailable)
	assert.Nil(t, out.BookBorrowerID)
	assert.Nil(t, out.BookBorrowerName)
	assert.Nil(t, out.BookBorrowerCode)
	assert.Nil(t, out.BookBorrowDate)
	assert.Nil(t, out.BookDueDate)
	assert.Equal(t, 0, out.BookRenewalCount)

	var event historyModel.BorrowingHistoryModel
	require.NoError(t, db.First(&event, "book_id = ?", b.BookID).Error)
	require.NotNil(t, event.ReturnedDate)
	assert.Equal(t, date(2026, time.March, 13), helper.DateOnly(*event.ReturnedDate))
	// the borrow side of the row is untouched
	assert.Equal(t, today, helper.DateOnly(event.BorrowedDate))
}

func TestReturn_AvailableBookIsNoOp(t *testing.T) {
	svc, db := newTestService(t, date(2026, time.March, 10))
	b := seedBook(t, db, "LIT-001", "Pedro Páramo")

	out, err := svc.Return(context.Background(), b.BookID)
	require.NoError(t, err)
	assert.True(t, out.BookAvailable)

	var count int64
	require.NoError(t, db.Model(&historyModel.BorrowingHistoryModel{}).Count(&count).Error)
	assert.Zero(t, count)
}

func TestReturn_UnknownBook(t *testing.T) {
	svc, _ := newTestService(t, date(2026, time.March, 10))
	_, err := svc.Return(context.Background(), uuid.New())
	assert.ErrorIs(t, err, ErrBookNotFound)
}

// ---------------------------------------------------------------------
// Extend
// ---------------------------------------------------------------------

func TestExtend_AnchorsOnFutureDueDate(t *testing.T) {
	today := date(2026, time.March, 10)
	svc, db := newTestService(t, today)
	st := seedStudent(t, db, "Ana García", "A-001")
	b := seedBorrowed(t, db, svc, "LIT-001", "Pedro Páramo", st) // due Mar 15

	out, err := svc.Extend(context.Background(), b.BookID, 4)
	require.NoError(t, err)

	require.NotNil(t, out.BookDueDate)
	assert.Equal(t, date(2026, time.March, 19), helper.DateOnly(*out.BookDueDate))
	assert.Equal(t, 1, out.BookRenewalCount)
}

func TestExtend_OverdueAnchorsOnToday(t *testing.T) {
	svc, db := newTestService(t, date(2026, time.March, 1))
	st := seedStudent(t, db, "Ana García", "A-001")
	b := seedBorrowed(t, db, svc, "LIT-001", "Pedro Páramo", st) // due Mar 6

	// two weeks late
	svc.Clock = helper.FixedClock{At: date(2026, time.March, 20)}
	out, err := svc.Extend(context.Background(), b.BookID, 3)
	require.NoError(t, err)

	require.NotNil(t, out.BookDueDate)
	assert.Equal(t, date(2026, time.March, 23), helper.DateOnly(*out.BookDueDate))
}

func TestExtend_RenewalLimit(t *testing.T) {
	svc, db := newTestService(t, date(2026, time.March, 10))
	st := seedStudent(t, db, "Ana García", "A-001")
	b := seedBorrowed(t, db, svc, "LIT-001", "Pedro Páramo", st)

	for i := 1; i <= constants.MaxRenewals; i++ {
		out, err := svc.Extend(context.Background(), b.BookID, 2)
		require.NoError(t, err)
		assert.Equal(t, i, out.BookRenewalCount)
	}

	_, err := svc.Extend(context.Background(), b.BookID, 2)
	assert.ErrorIs(t, err, ErrRenewalLimitExceeded)

	// counter resets after a return, so the book can be renewed again
	_, err = svc.Return(context.Background(), b.BookID)
	require.NoError(t, err)
	reborrowed, err := svc.Borrow(context.Background(), b.BookID, st.StudentID)
	require.NoError(t, err)
	assert.Equal(t, 0, reborrowed.BookRenewalCount)
}

func TestExtend_InvalidDays(t *testing.T) {
	svc, db := newTestService(t, date(2026, time.March, 10))
	st := seedStudent(t, db, "Ana García", "A-001")
	b := seedBorrowed(t, db, svc, "LIT-001", "Pedro Páramo", st)

	for _, days := range []int{0, -1, -30} {
		_, err := svc.Extend(context.Background(), b.BookID, days)
		assert.ErrorIs(t, err, ErrInvalidExtendDays)
	}

	// nothing changed
	var reread bookModel.BookModel
	require.NoError(t, db.First(&reread, "book_id = ?", b.BookID).Error)
	assert.Equal(t, 0, reread.BookRenewalCount)
}

func TestExtend_NotLoaned(t *testing.T) {
	svc, db := newTestService(t, date(2026, time.March, 10))
	b := seedBook(t, db, "LIT-001", "Pedro Páramo")

	_, err := svc.Extend(context.Background(), b.BookID, 2)
	assert.ErrorIs(t, err, ErrBookNotLoaned)

	_, err = svc.Extend(context.Background(), uuid.New(), 2)
	assert.ErrorIs(t, err, ErrBookNotFound)
}

// ---------------------------------------------------------------------
// Overdue / due-soon classification
// ---------------------------------------------------------------------

func TestClassification(t *testing.T) {
	today := date(2026, time.March, 10)
	due := func(d time.Time) *time.Time { return &d }

	cases := []struct {
		name    string
		book    bookModel.BookModel
		overdue bool
		dueSoon bool
	}{
		{"available book", bookModel.BookModel{BookAvailable: true}, false, false},
		{"no due date", bookModel.BookModel{BookAvailable: false}, false, false},
		{"due yesterday", bookModel.BookModel{BookAvailable: false, BookDueDate: due(date(2026, time.March, 9))}, true, false},
		{"due today", bookModel.BookModel{BookAvailable: false, BookDueDate: due(today)}, false, true},
		{"due in 2 days", bookModel.BookModel{BookAvailable: false, BookDueDate: due(date(2026, time.March, 12))}, false, true},
		{"due in 3 days", bookModel.BookModel{BookAvailable: false, BookDueDate: due(date(2026, time.March, 13))}, false, false},
		{"due far out", bookModel.BookModel{BookAvailable: false, BookDueDate: due(date(2026, time.April, 1))}, false, false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.overdue, IsOverdue(&tc.book, today))
			assert.Equal(t, tc.dueSoon, IsDueSoon(&tc.book, today))
		})
	}
}

func TestListOverdueAndDueSoon(t *testing.T) {
	svc, db := newTestService(t, date(2026, time.March, 1))
	st := seedStudent(t, db, "Ana García", "A-001")

	late := seedBorrowed(t, db, svc, "LIT-001", "Pedro Páramo", st) // due Mar 6
	svc.Clock = helper.FixedClock{At: date(2026, time.March, 3)}
	soon := seedBorrowed(t, db, svc, "LIT-002", "El llano en llamas", st) // due Mar 8
	seedBook(t, db, "LIT-003", "Aura")                                   // on the shelf

	svc.Clock = helper.FixedClock{At: date(2026, time.March, 7)}

	overdue, err := svc.ListOverdue(context.Background())
	require.NoError(t, err)
	require.Len(t, overdue, 1)
	assert.Equal(t, late.BookID, overdue[0].BookID)

	dueSoon, err := svc.ListDueSoon(context.Background())
	require.NoError(t, err)
	require.Len(t, dueSoon, 1)
	assert.Equal(t, soon.BookID, dueSoon[0].BookID)
}

// ---------------------------------------------------------------------
// Stats
// ---------------------------------------------------------------------

func TestStats(t *testing.T) {
	svc, db := newTestService(t, date(2026, time.March, 1))
	st := seedStudent(t, db, "Ana García", "A-001")

	overdueBook := seedBorrowed(t, db, svc, "LIT-001", "Pedro Páramo", st) // due Mar 6

	svc.Clock = helper.FixedClock{At: date(2026, time.March, 10)}
	for i := 0; i < 6; i++ {
		seedBorrowed(t, db, svc, "FIC-00"+string(rune('1'+i)), "Cuentos", st)
	}
	seedBook(t, db, "ART-001", "Historia del arte")

	stats, err := svc.Stats(context.Background())
	require.NoError(t, err)

	assert.Equal(t, int64(8), stats.TotalBooks)
	assert.Equal(t, int64(1), stats.AvailableBooks)
	assert.Equal(t, int64(7), stats.BorrowedBooks)
	assert.Equal(t, int64(1), stats.OverdueBooks)

	// capped at five, ordered by due date, so the overdue book leads
	require.Len(t, stats.MostBorrowedBooks, 5)
	assert.Equal(t, overdueBook.BookID, stats.MostBorrowedBooks[0].BookID)
}

// ---------------------------------------------------------------------
// Lifecycle invariant: available ⇔ loan fields unset
// ---------------------------------------------------------------------

func TestLoanFieldGroupInvariant(t *testing.T) {
	svc, db := newTestService(t, date(2026, time.March, 10))
	st := seedStudent(t, db, "Ana García", "A-001")
	b := seedBook(t, db, "LIT-001", "Pedro Páramo")

	check := func() {
		var cur bookModel.BookModel
		require.NoError(t, db.First(&cur, "book_id = ?", b.BookID).Error)
		if cur.BookAvailable {
			assert.Nil(t, cur.BookBorrowerID)
			assert.Nil(t, cur.BookBorrowDate)
			assert.Nil(t, cur.BookDueDate)
		} else {
			assert.NotNil(t, cur.BookBorrowerID)
			assert.NotNil(t, cur.BookBorrowDate)
			assert.NotNil(t, cur.BookDueDate)
		}
	}

	check()
	_, err := svc.Borrow(context.Background(), b.BookID, st.StudentID)
	require.NoError(t, err)
	check()
	_, err = svc.Extend(context.Background(), b.BookID, 2)
	require.NoError(t, err)
	check()
	_, err = svc.Return(context.Background(), b.BookID)
	require.NoError(t, err)
	check()

	// history has exactly one closed row after the full cycle
	var events []historyModel.BorrowingHistoryModel
	require.NoError(t, db.Find(&events).Error)
	require.Len(t, events, 1)
	assert.NotNil(t, events[0].ReturnedDate)
}
