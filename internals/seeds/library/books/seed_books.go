package books

import (
	"encoding/json"
	"log"
	"os"

	"gorm.io/gorm"

	model "perpustakaanku_backend/internals/features/library/books/model"
)

type BookSeed struct {
	BookCode   string `json:"book_code"`
	BookTitle  string `json:"book_title"`
	BookAuthor string `json:"book_author"`
	BookGenre  string `json:"book_genre"`
}

func SeedBooksFromJSON(db *gorm.DB, filePath string) {
	log.Println("📥 Reading book seed file:", filePath)

	file, err := os.ReadFile(filePath)
	if err != nil {
		log.Printf("❌ Failed to read seed file: %v", err)
		return
	}

	var inputs []BookSeed
	if err := json.Unmarshal(file, &inputs); err != nil {
		log.Printf("❌ Failed to decode seed JSON: %v", err)
		return
	}

	for _, data := range inputs {
		var existing model.BookModel
		if err := db.Where("book_code = ?", data.BookCode).First(&existing).Error; err == nil {
			log.Printf("ℹ️ Book '%s' already exists, skipped", data.BookCode)
			continue
		}

		book := model.BookModel{
			BookCode:      data.BookCode,
			BookTitle:     data.BookTitle,
			BookAuthor:    data.BookAuthor,
			BookGenre:     data.BookGenre,
			BookAvailable: true,
		}
		if err := db.Create(&book).Error; err != nil {
			log.Printf("❌ Failed to insert book '%s': %v", data.BookCode, err)
		} else {
			log.Printf("✅ Seeded book '%s'", data.BookCode)
		}
	}
}
