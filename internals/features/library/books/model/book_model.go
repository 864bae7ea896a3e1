// internals/features/library/books/model/book_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type BookModel struct {
	// PK
	BookID uuid.UUID `json:"book_id" gorm:"column:book_id;type:uuid;default:gen_random_uuid();primaryKey"`

	// Catalog identity
	BookCode   string `json:"book_code" gorm:"column:book_code;type:varchar(32);not null;index:idx_books_code"`
	BookTitle  string `json:"book_title" gorm:"column:book_title;type:varchar(255);not null"`
	BookAuthor string `json:"book_author" gorm:"column:book_author;type:varchar(255);not null"`
	BookGenre  string `json:"book_genre" gorm:"column:book_genre;type:varchar(20);not null"`

	BookCoverURL             *string `json:"book_cover_url,omitempty" gorm:"column:book_cover_url;type:text"`
	BookClassificationNumber *string `json:"book_classification_number,omitempty" gorm:"column:book_classification_number;type:varchar(50)"`
	BookInventoryNumber      *string `json:"book_inventory_number,omitempty" gorm:"column:book_inventory_number;type:varchar(50)"`

	// Captured from the metadata lookup at registration time
	BookSubjects pq.StringArray `json:"book_subjects,omitempty" gorm:"column:book_subjects;type:text[]"`
	BookMetadata datatypes.JSON `json:"book_metadata,omitempty" gorm:"column:book_metadata"`

	// Loan state: available=true ⇔ borrower/borrow_date/due_date are all unset.
	// The borrower fields are a snapshot of the student at borrow time, so a
	// later student edit never rewrites what is shown on an open loan.
	BookAvailable    bool       `json:"book_available" gorm:"column:book_available;not null;default:true;index:idx_books_available"`
	BookBorrowerID   *uuid.UUID `json:"book_borrower_id,omitempty" gorm:"column:book_borrower_id;type:uuid;index:idx_books_borrower"`
	BookBorrowerName *string    `json:"book_borrower_name,omitempty" gorm:"column:book_borrower_name;type:varchar(100)"`
	BookBorrowerCode *string    `json:"book_borrower_code,omitempty" gorm:"column:book_borrower_code;type:varchar(32)"`
	BookBorrowDate   *time.Time `json:"book_borrow_date,omitempty" gorm:"column:book_borrow_date;type:date"`
	BookDueDate      *time.Time `json:"book_due_date,omitempty" gorm:"column:book_due_date;type:date"`
	BookRenewalCount int        `json:"book_renewal_count" gorm:"column:book_renewal_count;not null;default:0"`

	BookCreatedAt time.Time      `json:"book_created_at" gorm:"column:book_created_at;type:timestamptz;not null;autoCreateTime"`
	BookUpdatedAt *time.Time     `json:"book_updated_at" gorm:"column:book_updated_at;type:timestamptz;autoUpdateTime"`
	BookDeletedAt gorm.DeletedAt `json:"book_deleted_at,omitempty" gorm:"column:book_deleted_at;index"`
}

func (BookModel) TableName() string { return "books" }

/* =========================
   Hooks — app-side uuid fallback
   ========================= */

func (b *BookModel) BeforeCreate(tx *gorm.DB) error {
	if b.BookID == uuid.Nil {
		b.BookID = uuid.New()
	}
	return nil
}
