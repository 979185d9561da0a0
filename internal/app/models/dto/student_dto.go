package dto

// CreateStudentRequest represents the payload to register a student record
type CreateStudentRequest struct {
	Name          string  `json:"name" binding:"required"`
	Email         string  `json:"email" binding:"required,email"`
	Semester      int     `json:"semester" binding:"required,min=1,max=8"`
	Course        string  `json:"course" binding:"required"`
	Division      string  `json:"division" binding:"required"`
	Batch         *string `json:"batch,omitempty"`
	HonoursCourse *string `json:"honoursCourse,omitempty"`
	HonoursBatch  *string `json:"honoursBatch,omitempty"`
}

// UpdateStudentRequest represents the payload to update a student record
type UpdateStudentRequest struct {
	Name          string  `json:"name" binding:"required"`
	Email         string  `json:"email" binding:"required,email"`
	Semester      int     `json:"semester" binding:"required,min=1,max=8"`
	Course        string  `json:"course" binding:"required"`
	Division      string  `json:"division" binding:"required"`
	Batch         *string `json:"batch,omitempty"`
	HonoursCourse *string `json:"honoursCourse,omitempty"`
	HonoursBatch  *string `json:"honoursBatch,omitempty"`
}

// StudentFilter carries the list endpoint's optional filters
type StudentFilter struct {
	Semester int
	Course   string
	Division string
}
