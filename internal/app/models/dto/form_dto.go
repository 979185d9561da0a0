package dto

// CreateFormRequest represents the payload to create one feedback form.
// An empty division targets only honours-track students; a set batch makes
// the form a lab form requiring a batch-level match.
type CreateFormRequest struct {
	SubjectName  string  `json:"subjectName" binding:"required"`
	FacultyName  string  `json:"facultyName" binding:"required"`
	FacultyEmail string  `json:"facultyEmail" binding:"required,email"`
	Semester     int     `json:"semester" binding:"required,min=1,max=8"`
	Course       string  `json:"course" binding:"required"`
	Division     string  `json:"division"`
	Batch        *string `json:"batch,omitempty"`
	AcademicYear string  `json:"academicYear" binding:"required"`
}

// UpdateFormRequest represents the payload to update a feedback form
type UpdateFormRequest struct {
	SubjectName  string  `json:"subjectName" binding:"required"`
	FacultyName  string  `json:"facultyName" binding:"required"`
	FacultyEmail string  `json:"facultyEmail" binding:"required,email"`
	Semester     int     `json:"semester" binding:"required,min=1,max=8"`
	Course       string  `json:"course" binding:"required"`
	Division     string  `json:"division"`
	Batch        *string `json:"batch,omitempty"`
	AcademicYear string  `json:"academicYear" binding:"required"`
}

// TimetableEntry is one subject/faculty/class tuple from the timetable used
// for bulk form generation.
type TimetableEntry struct {
	SubjectName  string  `json:"subjectName" binding:"required"`
	FacultyName  string  `json:"facultyName" binding:"required"`
	FacultyEmail string  `json:"facultyEmail" binding:"required,email"`
	Semester     int     `json:"semester" binding:"required,min=1,max=8"`
	Course       string  `json:"course" binding:"required"`
	Division     string  `json:"division"`
	Batch        *string `json:"batch,omitempty"`
}

// GenerateFormsRequest bulk-creates one form per timetable entry for an
// academic year.
type GenerateFormsRequest struct {
	AcademicYear string           `json:"academicYear" binding:"required"`
	Entries      []TimetableEntry `json:"entries" binding:"required,min=1,dive"`
}

// GenerateFormsResponse reports the outcome of a bulk generation
type GenerateFormsResponse struct {
	Created int     `json:"created"`
	Skipped int     `json:"skipped"`
	FormIDs []int64 `json:"formIds"`
}

// FormFilter carries the form list endpoint's optional filters
type FormFilter struct {
	AcademicYear string
	Semester     int
	Course       string
	Status       string
}
