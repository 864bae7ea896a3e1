// internals/features/library/students/model/student_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Students own no loan rows directly; a student's current books are
// derived by scanning books for a matching borrower id.
type StudentModel struct {
	StudentID uuid.UUID `json:"student_id" gorm:"column:student_id;type:uuid;default:gen_random_uuid();primaryKey"`

	StudentName  string `json:"student_name" gorm:"column:student_name;type:varchar(100);not null"`
	StudentCode  string `json:"student_code" gorm:"column:student_code;type:varchar(32);not null;index:idx_students_code"`
	StudentGrade string `json:"student_grade" gorm:"column:student_grade;type:varchar(50);not null"`

	StudentCreatedAt time.Time      `json:"student_created_at" gorm:"column:student_created_at;type:timestamptz;not null;autoCreateTime"`
	StudentUpdatedAt *time.Time     `json:"student_updated_at" gorm:"column:student_updated_at;type:timestamptz;autoUpdateTime"`
	StudentDeletedAt gorm.DeletedAt `json:"student_deleted_at,omitempty" gorm:"column:student_deleted_at;index"`
}

func (StudentModel) TableName() string { return "students" }

func (s *StudentModel) BeforeCreate(tx *gorm.DB) error {
	if s.StudentID == uuid.Nil {
		s.StudentID = uuid.New()
	}
	return nil
}
