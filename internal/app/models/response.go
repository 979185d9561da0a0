package models

import (
	"time"

	"github.com/mihir/campuspulse/internal/pkg/rating"
)

// FeedbackResponse is one student's completed submission for one form, based
// on the 'feedback_responses' table. At most one response exists per
// (form, student) pair; the table enforces it with a unique constraint.
// StudentID is nil after the owning student record is deleted: responses
// survive anonymized with a marker appended to the comment.
type FeedbackResponse struct {
	ID          int64      `json:"id" db:"id" example:"1"`
	FormID      int64      `json:"formId" db:"form_id" example:"3"`
	StudentID   *int64     `json:"studentId,omitempty" db:"student_id" example:"7"`
	Comment     *string    `json:"comment,omitempty" db:"comment"`
	SubmittedAt time.Time  `json:"submittedAt" db:"submitted_at"`

	Items []ResponseItem `json:"items,omitempty"`
}

// ResponseItem is one answered question within a response, based on the
// 'response_items' table. QuestionType and QuestionText are copied from the
// question bank at submission time so the historical meaning survives later
// edits to the live bank.
type ResponseItem struct {
	ID           int64               `json:"id" db:"id" example:"1"`
	ResponseID   int64               `json:"responseId" db:"response_id" example:"1"`
	ParameterID  int64               `json:"parameterId" db:"parameter_id" example:"4"`
	Rating       float64             `json:"rating" db:"rating" example:"8"`
	QuestionType rating.QuestionType `json:"questionType" db:"question_type" example:"scale_1_10"`
	QuestionText string              `json:"questionText" db:"question_text"`
}

// Scores converts the row into the plain shape the rating aggregates take.
func (r *FeedbackResponse) Scores() rating.Response {
	out := rating.Response{ID: r.ID, Items: make([]rating.Item, 0, len(r.Items))}
	for _, it := range r.Items {
		out.Items = append(out.Items, rating.Item{
			ParameterID:  it.ParameterID,
			Rating:       it.Rating,
			QuestionType: it.QuestionType,
		})
	}
	return out
}
