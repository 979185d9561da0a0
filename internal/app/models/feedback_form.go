package models

import (
	"time"

	"github.com/mihir/campuspulse/internal/pkg/eligibility"
)

// FeedbackForm is one auditable feedback collection instance for one
// faculty/subject/class combination, based on the 'feedback_forms' table.
// An empty Division marks an honours-only form; a nil Batch marks a theory
// form whose audience spans every batch in the division.
type FeedbackForm struct {
	ID           int64      `json:"id" db:"id" example:"1"`
	SubjectName  string     `json:"subjectName" db:"subject_name" example:"Operating Systems"`
	FacultyName  string     `json:"facultyName" db:"faculty_name" example:"Prof. R. Kulkarni"`
	FacultyEmail string     `json:"facultyEmail" db:"faculty_email" example:"rkulkarni@college.edu"`
	Semester     int        `json:"semester" db:"semester" example:"5"`
	Course       string     `json:"course" db:"course" example:"IT"`
	Division     string     `json:"division" db:"division" example:"A"`
	Batch        *string    `json:"batch,omitempty" db:"batch" example:"A1"`
	AcademicYear string     `json:"academicYear" db:"academic_year" example:"2025-26"`
	Status       FormStatus `json:"status" db:"status" example:"active"`

	CreatedAt time.Time `json:"createdAt" db:"created_at"`
	UpdatedAt time.Time `json:"updatedAt" db:"updated_at"`
}

// IsLab reports whether the form is batch-scoped (lab/practical).
func (f *FeedbackForm) IsLab() bool {
	return f.Batch != nil && *f.Batch != ""
}

// Criteria converts the row into the audience shape the eligibility rules take.
func (f *FeedbackForm) Criteria() eligibility.Form {
	return eligibility.Form{
		ID:       f.ID,
		Semester: f.Semester,
		Course:   f.Course,
		Division: f.Division,
		Batch:    deref(f.Batch),
	}
}
