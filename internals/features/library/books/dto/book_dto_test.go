package dto

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	model "perpustakaanku_backend/internals/features/library/books/model"
)

func strPtr(s string) *string { return &s }

func TestBookCreateRequestNormalize(t *testing.T) {
	req := BookCreateRequest{
		BookCode:     "  LIT-001 ",
		BookTitle:    " Pedro Páramo ",
		BookAuthor:   "Juan Rulfo  ",
		BookGenre:    "  LITERATURA ",
		BookCoverURL: strPtr("   "),
	}
	req.Normalize()

	assert.Equal(t, "LIT-001", req.BookCode)
	assert.Equal(t, "Pedro Páramo", req.BookTitle)
	assert.Equal(t, "Juan Rulfo", req.BookAuthor)
	assert.Equal(t, "literatura", req.BookGenre)
	assert.Nil(t, req.BookCoverURL, "blank optional fields normalize to nil")
}

func TestBookCreateRequestToModel(t *testing.T) {
	req := BookCreateRequest{
		BookCode:     "CIE-007",
		BookTitle:    "Cosmos",
		BookAuthor:   "Carl Sagan",
		BookGenre:    "ciencia",
		BookSubjects: []string{"Science", "Astronomy"},
		BookMetadata: []byte(`{"isbn":"9780345539434"}`),
	}

	m := req.ToModel()
	assert.True(t, m.BookAvailable, "new books start on the shelf")
	assert.Nil(t, m.BookBorrowerID)
	assert.Equal(t, "CIE-007", m.BookCode)
	assert.Equal(t, []string{"Science", "Astronomy"}, []string(m.BookSubjects))
	assert.JSONEq(t, `{"isbn":"9780345539434"}`, string(m.BookMetadata))
}

func TestBookUpdateRequestNeverTouchesLoanState(t *testing.T) {
	borrower := strPtr("Ana García")
	due := time.Date(2026, time.March, 15, 0, 0, 0, 0, time.UTC)
	m := model.BookModel{
		BookTitle:        "Pedro Páramo",
		BookGenre:        "literatura",
		BookAvailable:    false,
		BookBorrowerName: borrower,
		BookDueDate:      &due,
		BookRenewalCount: 2,
	}

	req := BookUpdateRequest{
		BookTitle: strPtr("Pedro Páramo (ed. conmemorativa)"),
		BookGenre: strPtr("ficción"),
	}
	req.Normalize()
	req.ApplyToModel(&m)

	assert.Equal(t, "Pedro Páramo (ed. conmemorativa)", m.BookTitle)
	assert.Equal(t, "ficción", m.BookGenre)

	assert.False(t, m.BookAvailable)
	assert.Equal(t, borrower, m.BookBorrowerName)
	assert.Equal(t, &due, m.BookDueDate)
	assert.Equal(t, 2, m.BookRenewalCount)
}

func TestBookUpdateRequestPartial(t *testing.T) {
	m := model.BookModel{
		BookCode:   "LIT-001",
		BookTitle:  "Pedro Páramo",
		BookAuthor: "Juan Rulfo",
	}

	req := BookUpdateRequest{BookAuthor: strPtr("  J. Rulfo ")}
	req.Normalize()
	req.ApplyToModel(&m)

	assert.Equal(t, "J. Rulfo", m.BookAuthor)
	assert.Equal(t, "LIT-001", m.BookCode, "absent fields stay put")
	assert.Equal(t, "Pedro Páramo", m.BookTitle)
}

func TestToBookResponseDateFormatting(t *testing.T) {
	borrow := time.Date(2026, time.March, 10, 0, 0, 0, 0, time.UTC)
	due := time.Date(2026, time.March, 15, 0, 0, 0, 0, time.UTC)
	m := model.BookModel{
		BookTitle:      "Pedro Páramo",
		BookAvailable:  false,
		BookBorrowDate: &borrow,
		BookDueDate:    &due,
	}

	resp := ToBookResponse(&m)
	require.NotNil(t, resp.BookBorrowDate)
	require.NotNil(t, resp.BookDueDate)
	assert.Equal(t, "2026-03-10", *resp.BookBorrowDate)
	assert.Equal(t, "2026-03-15", *resp.BookDueDate)

	avail := ToBookResponse(&model.BookModel{BookAvailable: true})
	assert.Nil(t, avail.BookBorrowDate)
	assert.Nil(t, avail.BookDueDate)
}
