// internals/features/library/students/dto/student_dto.go
package dto

import (
	"strings"
	"time"

	"github.com/google/uuid"

	model "perpustakaanku_backend/internals/features/library/students/model"
)

type StudentCreateRequest struct {
	StudentName  string `json:"student_name" validate:"required,max=100"`
	StudentCode  string `json:"student_code" validate:"required,max=32"`
	StudentGrade string `json:"student_grade" validate:"required,max=50"`
}

func (r *StudentCreateRequest) Normalize() {
	r.StudentName = strings.TrimSpace(r.StudentName)
	r.StudentCode = strings.TrimSpace(r.StudentCode)
	r.StudentGrade = strings.TrimSpace(r.StudentGrade)
}

func (r *StudentCreateRequest) ToModel() *model.StudentModel {
	return &model.StudentModel{
		StudentName:  r.StudentName,
		StudentCode:  r.StudentCode,
		StudentGrade: r.StudentGrade,
	}
}

type StudentUpdateRequest struct {
	StudentName  *string `json:"student_name,omitempty" validate:"omitempty,max=100"`
	StudentCode  *string `json:"student_code,omitempty" validate:"omitempty,max=32"`
	StudentGrade *string `json:"student_grade,omitempty" validate:"omitempty,max=50"`
}

func (r *StudentUpdateRequest) Normalize() {
	r.StudentName = trimPtr(r.StudentName)
	r.StudentCode = trimPtr(r.StudentCode)
	r.StudentGrade = trimPtr(r.StudentGrade)
}

func (r *StudentUpdateRequest) ApplyToModel(m *model.StudentModel) {
	if r.StudentName != nil {
		m.StudentName = *r.StudentName
	}
	if r.StudentCode != nil {
		m.StudentCode = *r.StudentCode
	}
	if r.StudentGrade != nil {
		m.StudentGrade = *r.StudentGrade
	}
}

type StudentListQuery struct {
	Q *string `query:"q"` // substring over name/code/grade
}

type StudentResponse struct {
	StudentID        uuid.UUID `json:"student_id"`
	StudentName      string    `json:"student_name"`
	StudentCode      string    `json:"student_code"`
	StudentGrade     string    `json:"student_grade"`
	StudentCreatedAt time.Time `json:"student_created_at"`
}

func ToStudentResponse(m *model.StudentModel) StudentResponse {
	return StudentResponse{
		StudentID:        m.StudentID,
		StudentName:      m.StudentName,
		StudentCode:      m.StudentCode,
		StudentGrade:     m.StudentGrade,
		StudentCreatedAt: m.StudentCreatedAt,
	}
}

func ToStudentResponses(ms []model.StudentModel) []StudentResponse {
	out := make([]StudentResponse, 0, len(ms))
	for i := range ms {
		out = append(out, ToStudentResponse(&ms[i]))
	}
	return out
}

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
