package dto

// CreateQuestionRequest represents the payload to add a question to the bank
type CreateQuestionRequest struct {
	Text         string `json:"text" binding:"required"`
	Position     int    `json:"position" binding:"required,min=1"`
	FormType     string `json:"formType" binding:"required,oneof=theory lab"`
	QuestionType string `json:"questionType" binding:"required,oneof=yes_no scale_3 scale_1_10"`
}

// UpdateQuestionRequest represents the payload to edit a bank question.
// Editing never rewrites stored responses; they carry their own embedded copy.
type UpdateQuestionRequest struct {
	Text         string `json:"text" binding:"required"`
	Position     int    `json:"position" binding:"required,min=1"`
	FormType     string `json:"formType" binding:"required,oneof=theory lab"`
	QuestionType string `json:"questionType" binding:"required,oneof=yes_no scale_3 scale_1_10"`
	IsActive     *bool  `json:"isActive,omitempty"`
}
