package models

import (
	"time"

	"github.com/mihir/campuspulse/internal/pkg/rating"
)

// Question is one item in the live question bank, based on the
// 'feedback_questions' table. Editing the bank never rewrites stored
// responses: each response item embeds the question text and type it was
// answered under.
type Question struct {
	ID           int64               `json:"id" db:"id" example:"1"`
	Text         string              `json:"text" db:"text" example:"Does the teacher complete the syllabus in time?"`
	Position     int                 `json:"position" db:"position" example:"1"`
	FormType     FormType            `json:"formType" db:"form_type" example:"theory"`
	QuestionType rating.QuestionType `json:"questionType" db:"question_type" example:"scale_1_10"`
	IsActive     bool                `json:"isActive" db:"is_active"`

	CreatedAt time.Time `json:"createdAt" db:"created_at"`
	UpdatedAt time.Time `json:"updatedAt" db:"updated_at"`
}
