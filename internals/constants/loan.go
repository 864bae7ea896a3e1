package constants

import "strings"

// Loan lifecycle rules
const (
	// DefaultLoanPeriodDays is how long a student may keep a book
	// before it is due back.
	DefaultLoanPeriodDays = 5

	// MaxRenewals caps how often a single loan can be extended.
	MaxRenewals = 3

	// DueSoonWindowDays: a borrowed book whose due date falls within
	// this many days counts as "due soon" on the dashboard.
	DueSoonWindowDays = 3
)

// ==========================
// ✅ Genre catalog
// ==========================
const (
	GenreLiteratura = "literatura"
	GenreFiccion    = "ficción"
	GenreCiencia    = "ciencia"
	GenreHistoria   = "historia"
	GenreArte       = "arte"
)

var AllGenres = []string{
	GenreLiteratura,
	GenreFiccion,
	GenreCiencia,
	GenreHistoria,
	GenreArte,
}

func IsValidGenre(g string) bool {
	g = strings.ToLower(strings.TrimSpace(g))
	for _, v := range AllGenres {
		if g == v {
			return true
		}
	}
	return false
}
