// internals/features/library/books/dto/book_dto.go
package dto

import (
	"encoding/json"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/datatypes"

	model "perpustakaanku_backend/internals/features/library/books/model"
)

/* =========================
   REQUEST
   ========================= */

type BookCreateRequest struct {
	BookCode   string `json:"book_code" validate:"required,max=32"`
	BookTitle  string `json:"book_title" validate:"required,max=255"`
	BookAuthor string `json:"book_author" validate:"required,max=255"`
	BookGenre  string `json:"book_genre" validate:"required,oneof=literatura ficción ciencia historia arte"`

	BookCoverURL             *string         `json:"book_cover_url,omitempty" validate:"omitempty,url"`
	BookClassificationNumber *string         `json:"book_classification_number,omitempty" validate:"omitempty,max=50"`
	BookInventoryNumber      *string         `json:"book_inventory_number,omitempty" validate:"omitempty,max=50"`
	BookSubjects             []string        `json:"book_subjects,omitempty"`
	BookMetadata             json.RawMessage `json:"book_metadata,omitempty"`
}

func (r *BookCreateRequest) Normalize() {
	r.BookCode = strings.TrimSpace(r.BookCode)
	r.BookTitle = strings.TrimSpace(r.BookTitle)
	r.BookAuthor = strings.TrimSpace(r.BookAuthor)
	r.BookGenre = strings.ToLower(strings.TrimSpace(r.BookGenre))
	r.BookCoverURL = trimPtr(r.BookCoverURL)
	r.BookClassificationNumber = trimPtr(r.BookClassificationNumber)
	r.BookInventoryNumber = trimPtr(r.BookInventoryNumber)
}

func (r *BookCreateRequest) ToModel() *model.BookModel {
	m := &model.BookModel{
		BookCode:                 r.BookCode,
		BookTitle:                r.BookTitle,
		BookAuthor:               r.BookAuthor,
		BookGenre:                r.BookGenre,
		BookCoverURL:             r.BookCoverURL,
		BookClassificationNumber: r.BookClassificationNumber,
		BookInventoryNumber:      r.BookInventoryNumber,
		BookAvailable:            true,
	}
	if len(r.BookSubjects) > 0 {
		m.BookSubjects = pq.StringArray(r.BookSubjects)
	}
	if len(r.BookMetadata) > 0 {
		m.BookMetadata = datatypes.JSON(r.BookMetadata)
	}
	return m
}

type BookUpdateRequest struct {
	BookCode   *string `json:"book_code,omitempty" validate:"omitempty,max=32"`
	BookTitle  *string `json:"book_title,omitempty" validate:"omitempty,max=255"`
	BookAuthor *string `json:"book_author,omitempty" validate:"omitempty,max=255"`
	BookGenre  *string `json:"book_genre,omitempty" validate:"omitempty,oneof=literatura ficción ciencia historia arte"`

	BookCoverURL             *string         `json:"book_cover_url,omitempty" validate:"omitempty,url"`
	BookClassificationNumber *string         `json:"book_classification_number,omitempty" validate:"omitempty,max=50"`
	BookInventoryNumber      *string         `json:"book_inventory_number,omitempty" validate:"omitempty,max=50"`
	BookSubjects             []string        `json:"book_subjects,omitempty"`
	BookMetadata             json.RawMessage `json:"book_metadata,omitempty"`
}

func (r *BookUpdateRequest) Normalize() {
	r.BookCode = trimPtr(r.BookCode)
	r.BookTitle = trimPtr(r.BookTitle)
	r.BookAuthor = trimPtr(r.BookAuthor)
	if r.BookGenre != nil {
		g := strings.ToLower(strings.TrimSpace(*r.BookGenre))
		r.BookGenre = &g
	}
	r.BookCoverURL = trimPtr(r.BookCoverURL)
	r.BookClassificationNumber = trimPtr(r.BookClassificationNumber)
	r.BookInventoryNumber = trimPtr(r.BookInventoryNumber)
}

// ApplyToModel only touches fields present in the request; the loan-state
// field group is owned by the loan ledger and never updated here.
func (r *BookUpdateRequest) ApplyToModel(m *model.BookModel) {
	if r.BookCode != nil {
		m.BookCode = *r.BookCode
	}
	if r.BookTitle != nil {
		m.BookTitle = *r.BookTitle
	}
	if r.BookAuthor != nil {
		m.BookAuthor = *r.BookAuthor
	}
	if r.BookGenre != nil {
		m.BookGenre = *r.BookGenre
	}
	if r.BookCoverURL != nil {
		m.BookCoverURL = r.BookCoverURL
	}
	if r.BookClassificationNumber != nil {
		m.BookClassificationNumber = r.BookClassificationNumber
	}
	if r.BookInventoryNumber != nil {
		m.BookInventoryNumber = r.BookInventoryNumber
	}
	if r.BookSubjects != nil {
		m.BookSubjects = pq.StringArray(r.BookSubjects)
	}
	if len(r.BookMetadata) > 0 {
		m.BookMetadata = datatypes.JSON(r.BookMetadata)
	}
}

// Listing query
type BookListQuery struct {
	Q         *string `query:"q"`         // substring over title/author/code
	Genre     *string `query:"genre"`     // exact match
	Available *bool   `query:"available"` // filter by loan state
}

/* =========================
   RESPONSE
   ========================= */

type BookResponse struct {
	BookID     uuid.UUID `json:"book_id"`
	BookCode   string    `json:"book_code"`
	BookTitle  string    `json:"book_title"`
	BookAuthor string    `json:"book_author"`
	BookGenre  string    `json:"book_genre"`

	BookCoverURL             *string  `json:"book_cover_url,omitempty"`
	BookClassificationNumber *string  `json:"book_classification_number,omitempty"`
	BookInventoryNumber      *string  `json:"book_inventory_number,omitempty"`
	BookSubjects             []string `json:"book_subjects,omitempty"`

	BookAvailable    bool       `json:"book_available"`
	BookBorrowerID   *uuid.UUID `json:"book_borrower_id,omitempty"`
	BookBorrowerName *string    `json:"book_borrower_name,omitempty"`
	BookBorrowerCode *string    `json:"book_borrower_code,omitempty"`
	BookBorrowDate   *string    `json:"book_borrow_date,omitempty"`
	BookDueDate      *string    `json:"book_due_date,omitempty"`
	BookRenewalCount int        `json:"book_renewal_count"`

	BookCreatedAt time.Time `json:"book_created_at"`
}

func ToBookResponse(m *model.BookModel) BookResponse {
	return BookResponse{
		BookID:                   m.BookID,
		BookCode:                 m.BookCode,
		BookTitle:                m.BookTitle,
		BookAuthor:               m.BookAuthor,
		BookGenre:                m.BookGenre,
		BookCoverURL:             m.BookCoverURL,
		BookClassificationNumber: m.BookClassificationNumber,
		BookInventoryNumber:      m.BookInventoryNumber,
		BookSubjects:             m.BookSubjects,
		BookAvailable:            m.BookAvailable,
		BookBorrowerID:           m.BookBorrowerID,
		BookBorrowerName:         m.BookBorrowerName,
		BookBorrowerCode:         m.BookBorrowerCode,
		BookBorrowDate:           formatDatePtr(m.BookBorrowDate),
		BookDueDate:              formatDatePtr(m.BookDueDate),
		BookRenewalCount:         m.BookRenewalCount,
		BookCreatedAt:            m.BookCreatedAt,
	}
}

func ToBookResponses(ms []model.BookModel) []BookResponse {
	out := make([]BookResponse, 0, len(ms))
	for i := range ms {
		out = append(out, ToBookResponse(&ms[i]))
	}
	return out
}

/* =========================
   NORMALIZER
   ========================= */

func trimPtr(s *string) *string {
	if s == nil {
		return nil
	}
	t := strings.TrimSpace(*s)
	if t == "" {
		return nil
	}
	return &t
}

func formatDatePtr(t *time.Time) *string {
	if t == nil {
		return nil
	}
	s := t.Format("2006-01-02")
	return &s
}
