package models

import (
	"time"

	"github.com/mihir/campuspulse/internal/pkg/eligibility"
)

// Student defines the student model based on the 'students' table. A student
// has exactly one regular enrollment (semester+course+division, optionally a
// lab batch) and at most one honours/minor enrollment; HonoursCourse is nil
// when the student holds no honours track.
type Student struct {
	ID            int64   `json:"id" db:"id" example:"1"`
	UserID        *int64  `json:"userId,omitempty" db:"user_id" example:"5"` // login account, nil until provisioned
	Name          string  `json:"name" db:"name" example:"Aditi Sharma"`
	Email         string  `json:"email" db:"email" example:"aditi@college.edu"`
	Semester      int     `json:"semester" db:"semester" example:"5"`
	Course        string  `json:"course" db:"course" example:"IT"`
	Division      string  `json:"division" db:"division" example:"A"`
	Batch         *string `json:"batch,omitempty" db:"batch" example:"A1"`
	HonoursCourse *string `json:"honoursCourse,omitempty" db:"honours_course" example:"AIDS"`
	HonoursBatch  *string `json:"honoursBatch,omitempty" db:"honours_batch" example:"H1"`

	CreatedAt time.Time `json:"createdAt" db:"created_at"`
	UpdatedAt time.Time `json:"updatedAt" db:"updated_at"`
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

// Enrollment converts the row into the plain shape the eligibility rules
// take, with absent optional fields flattened to empty strings.
func (s *Student) Enrollment() eligibility.Student {
	return eligibility.Student{
		ID:            s.ID,
		Semester:      s.Semester,
		Course:        s.Course,
		Division:      s.Division,
		Batch:         deref(s.Batch),
		HonoursCourse: deref(s.HonoursCourse),
		HonoursBatch:  deref(s.HonoursBatch),
	}
}
