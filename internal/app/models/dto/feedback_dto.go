package dto

// SubmitItemRequest is one answered question in a submission
type SubmitItemRequest struct {
	ParameterID int64   `json:"parameterId" binding:"required,min=1"`
	Rating      float64 `json:"rating"`
}

// SubmitFeedbackRequest represents one student's submission for a form
type SubmitFeedbackRequest struct {
	Comment *string             `json:"comment,omitempty"`
	Items   []SubmitItemRequest `json:"items" binding:"required,min=1,dive"`
}

// EligibleFormResponse is one form in the student's "forms to fill" listing
type EligibleFormResponse struct {
	ID           int64   `json:"id"`
	SubjectName  string  `json:"subjectName"`
	FacultyName  string  `json:"facultyName"`
	Semester     int     `json:"semester"`
	Course       string  `json:"course"`
	Division     string  `json:"division"`
	Batch        *string `json:"batch,omitempty"`
	AcademicYear string  `json:"academicYear"`
	// FormType is "lab" when the form is batch-scoped, "theory" otherwise
	FormType string `json:"formType"`
}
