package dto

// QuestionStat is one question's aggregate within a form report. RawAverage
// stays on the question's recording scale, NormalizedAverage is the raw
// average mapped onto 0-10 at render time.
type QuestionStat struct {
	ParameterID       int64   `json:"parameterId"`
	QuestionText      string  `json:"questionText"`
	QuestionType      string  `json:"questionType"`
	RawAverage        float64 `json:"rawAverage"`
	NormalizedAverage float64 `json:"normalizedAverage"`
	AnswerCount       int     `json:"answerCount"`
}

// FormReport is the aggregate view of one form
type FormReport struct {
	FormID        int64          `json:"formId"`
	SubjectName   string         `json:"subjectName"`
	FacultyName   string         `json:"facultyName"`
	AcademicYear  string         `json:"academicYear"`
	Status        string         `json:"status"`
	AudienceSize  int            `json:"audienceSize"`
	ResponseCount int            `json:"responseCount"`
	Average       float64        `json:"average"`
	Band          string         `json:"band"`
	Questions     []QuestionStat `json:"questions"`
	Comments      []string       `json:"comments,omitempty"`
}

// FacultyFormStat is one form's line in a faculty report
type FacultyFormStat struct {
	FormID        int64   `json:"formId"`
	SubjectName   string  `json:"subjectName"`
	Semester      int     `json:"semester"`
	Course        string  `json:"course"`
	Division      string  `json:"division"`
	ResponseCount int     `json:"responseCount"`
	Average       float64 `json:"average"`
	Band          string  `json:"band"`
}

// FacultyReport aggregates every form of one faculty member, weighted by
// response count.
type FacultyReport struct {
	FacultyName  string            `json:"facultyName"`
	FacultyEmail string            `json:"facultyEmail"`
	Overall      float64           `json:"overall"`
	Band         string            `json:"band"`
	Forms        []FacultyFormStat `json:"forms"`
}

// CompletionRow is one student's line in the completion monitor
type CompletionRow struct {
	StudentID      int64   `json:"studentId"`
	Name           string  `json:"name"`
	Email          string  `json:"email"`
	Semester       int     `json:"semester"`
	Course         string  `json:"course"`
	Division       string  `json:"division"`
	EligibleCount  int     `json:"eligibleCount"`
	SubmittedCount int     `json:"submittedCount"`
	PendingFormIDs []int64 `json:"pendingFormIds,omitempty"`
	Completed      bool    `json:"completed"`
}

// FormCompletion is one active form's line in the completion monitor: how
// large its audience is and how many of them have submitted.
type FormCompletion struct {
	FormID        int64  `json:"formId"`
	SubjectName   string `json:"subjectName"`
	FacultyName   string `json:"facultyName"`
	AudienceSize  int    `json:"audienceSize"`
	ResponseCount int    `json:"responseCount"`
}

// CompletionReport is the admin completion monitor over all active forms
type CompletionReport struct {
	TotalStudents     int              `json:"totalStudents"`
	CompletedStudents int              `json:"completedStudents"`
	Forms             []FormCompletion `json:"forms"`
	Rows              []CompletionRow  `json:"rows"`
}
