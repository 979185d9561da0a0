package eligibility

import "testing"

func TestCompletionMatrix(t *testing.T) {
	students := []Student{
		{ID: 1, Semester: 5, Course: "IT", Division: "A", Batch: "A1"},
		{ID: 2, Semester: 5, Course: "IT", Division: "A", Batch: "A2"},
		{ID: 3, Semester: 3, Course: "AIDS", Division: "B"},
	}
	forms := []Form{
		{ID: 10, Semester: 5, Course: "IT", Division: "A"},               // theory, both IT students
		{ID: 11, Semester: 5, Course: "IT", Division: "A", Batch: "A1"},  // lab, student 1 only
		{ID: 12, Semester: 3, Course: "AIDS", Division: "B"},             // student 3 only
	}
	submissions := []Submission{
		{FormID: 10, StudentID: 1},
		{FormID: 11, StudentID: 1},
		{FormID: 10, StudentID: 2},
	}

	rows := CompletionMatrix(students, forms, submissions)
	if len(rows) != 3 {
		t.Fatalf("rows = %d, want 3", len(rows))
	}

	byStudent := make(map[int64]StudentCompletion, len(rows))
	for _, r := range rows {
		byStudent[r.StudentID] = r
	}

	if r := byStudent[1]; !r.Completed || len(r.EligibleForms) != 2 {
		t.Errorf("student 1: completed=%v eligible=%v, want completed with 2 forms", r.Completed, r.EligibleForms)
	}
	// Student 2 is only eligible for the theory form and submitted it.
	if r := byStudent[2]; !r.Completed || len(r.EligibleForms) != 1 || len(r.SubmittedForms) != 1 {
		t.Errorf("student 2: %+v", r)
	}
	if r := byStudent[3]; r.Completed || len(r.PendingForms) != 1 || r.PendingForms[0] != 12 {
		t.Errorf("student 3: completed=%v pending=%v, want pending form 12", r.Completed, r.PendingForms)
	}
}

func TestCompletionMatrixNoEligibleForms(t *testing.T) {
	students := []Student{{ID: 1, Semester: 8, Course: "MECH", Division: "C"}}
	forms := []Form{{ID: 10, Semester: 5, Course: "IT", Division: "A"}}

	rows := CompletionMatrix(students, forms, nil)
	if len(rows) != 1 {
		t.Fatalf("rows = %d, want 1", len(rows))
	}
	if !rows[0].Completed {
		t.Errorf("student with no eligible forms should count as completed")
	}
	if len(rows[0].EligibleForms) != 0 {
		t.Errorf("eligible = %v, want none", rows[0].EligibleForms)
	}
}

func TestPendingForms(t *testing.T) {
	s := Student{ID: 1, Semester: 5, Course: "IT", Division: "A", Batch: "A1"}
	forms := []Form{
		{ID: 10, Semester: 5, Course: "IT", Division: "A"},
		{ID: 11, Semester: 5, Course: "IT", Division: "A", Batch: "A1"},
		{ID: 12, Semester: 5, Course: "IT", Division: "B"},
	}
	submissions := []Submission{
		{FormID: 10, StudentID: 1},
		{FormID: 11, StudentID: 99}, // someone else's submission
	}

	pending := PendingForms(s, forms, submissions)
	if len(pending) != 1 || pending[0].ID != 11 {
		t.Fatalf("pending = %+v, want only form 11", pending)
	}
}
