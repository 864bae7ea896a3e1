package students

import (
	"encoding/json"
	"log"
	"os"

	"gorm.io/gorm"

	model "perpustakaanku_backend/internals/features/library/students/model"
)

type StudentSeed struct {
	StudentName  string `json:"student_name"`
	StudentCode  string `json:"student_code"`
	StudentGrade string `json:"student_grade"`
}

func SeedStudentsFromJSON(db *gorm.DB, filePath string) {
	log.Println("📥 Reading student seed file:", filePath)

	file, err := os.ReadFile(filePath)
	if err != nil {
		log.Printf("❌ Failed to read seed file: %v", err)
		return
	}

	var inputs []StudentSeed
	if err := json.Unmarshal(file, &inputs); err != nil {
		log.Printf("❌ Failed to decode seed JSON: %v", err)
		return
	}

	for _, data := range inputs {
		var existing model.StudentModel
		if err := db.Where("student_code = ?", data.StudentCode).First(&existing).Error; err == nil {
			log.Printf("ℹ️ Student '%s' already exists, skipped", data.StudentCode)
			continue
		}

		student := model.StudentModel{
			StudentName:  data.StudentName,
			StudentCode:  data.StudentCode,
			StudentGrade: data.StudentGrade,
		}
		if err := db.Create(&student).Error; err != nil {
			log.Printf("❌ Failed to insert student '%s': %v", data.StudentCode, err)
		} else {
			log.Printf("✅ Seeded student '%s'", data.StudentCode)
		}
	}
}
