package seeds

import (
	"gorm.io/gorm"

	books "perpustakaanku_backend/internals/seeds/library/books"
	students "perpustakaanku_backend/internals/seeds/library/students"
	users "perpustakaanku_backend/internals/seeds/users"
)

// RunAllSeeds loads the initial librarian account and the sample
// catalog. Every seed is idempotent, so rerunning is safe.
func RunAllSeeds(db *gorm.DB) {
	users.SeedAdminUser(db)

	books.SeedBooksFromJSON(db, "internals/seeds/library/books/data_books.json")
	students.SeedStudentsFromJSON(db, "internals/seeds/library/students/data_students.json")
}
