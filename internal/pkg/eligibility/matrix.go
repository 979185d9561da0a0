package eligibility

// Submission is one (form, student) pair that already has a stored response.
type Submission struct {
	FormID    int64
	StudentID int64
}

// StudentCompletion is one row of the admin completion monitor: the active
// forms a student is expected to fill and how far along they are.
type StudentCompletion struct {
	StudentID      int64
	EligibleForms  []int64
	SubmittedForms []int64
	PendingForms   []int64
	Completed      bool
}

// CompletionMatrix computes, for every student, the union of active forms the
// student is eligible for and which of those already carry a response. A
// student with no eligible forms counts as completed: there is nothing left
// for them to do.
func CompletionMatrix(students []Student, forms []Form, submissions []Submission) []StudentCompletion {
	submitted := make(map[[2]int64]bool, len(submissions))
	for _, sub := range submissions {
		submitted[[2]int64{sub.FormID, sub.StudentID}] = true
	}

	rows := make([]StudentCompletion, 0, len(students))
	for _, s := range students {
		row := StudentCompletion{StudentID: s.ID}
		for _, f := range forms {
			if !Eligible(s, f) {
				continue
			}
			row.EligibleForms = append(row.EligibleForms, f.ID)
			if submitted[[2]int64{f.ID, s.ID}] {
				row.SubmittedForms = append(row.SubmittedForms, f.ID)
			} else {
				row.PendingForms = append(row.PendingForms, f.ID)
			}
		}
		row.Completed = len(row.PendingForms) == 0
		rows = append(rows, row)
	}
	return rows
}

// PendingForms returns the active forms the student is eligible for but has
// not yet submitted. This feeds the student-facing "forms to fill" listing.
func PendingForms(s Student, forms []Form, submissions []Submission) []Form {
	submitted := make(map[int64]bool, len(submissions))
	for _, sub := range submissions {
		if sub.StudentID == s.ID {
			submitted[sub.FormID] = true
		}
	}

	pending := make([]Form, 0, len(forms))
	for _, f := range forms {
		if Eligible(s, f) && !submitted[f.ID] {
			pending = append(pending, f)
		}
	}
	return pending
}
