package services

import (
	"testing"

	"github.com/mihir/campuspulse/internal/app/models"
	"github.com/mihir/campuspulse/internal/pkg/eligibility"
)

func TestFormCompletionLines(t *testing.T) {
	enrollments := []eligibility.Student{
		{ID: 1, Semester: 5, Course: "IT", Division: "A", Batch: "A1"},
		{ID: 2, Semester: 5, Course: "IT", Division: "A", Batch: "A2"},
		{ID: 3, Semester: 5, Course: "AIDS", Division: "B", HonoursCourse: "DS"},
	}
	batch := "A1"
	forms := []*models.FeedbackForm{
		{ID: 10, SubjectName: "Operating Systems", FacultyName: "Prof. R. Kulkarni", Semester: 5, Course: "IT", Division: "A"},
		{ID: 11, SubjectName: "OS Lab", FacultyName: "Prof. R. Kulkarni", Semester: 5, Course: "IT", Division: "A", Batch: &batch},
		{ID: 12, SubjectName: "Data Science Honours", FacultyName: "Dr. S. Mehta", Semester: 5, Course: "DS", Division: ""},
	}
	pairs := [][2]int64{
		{10, 1},
		{10, 2},
		{11, 1},
	}

	lines := formCompletionLines(enrollments, forms, pairs)
	if len(lines) != 3 {
		t.Fatalf("lines = %d, want one per active form", len(lines))
	}

	// Theory form: both division A students.
	if l := lines[0]; l.FormID != 10 || l.AudienceSize != 2 || l.ResponseCount != 2 {
		t.Errorf("form 10: %+v, want audience 2 responses 2", l)
	}
	// Lab form: batch A1 only.
	if l := lines[1]; l.AudienceSize != 1 || l.ResponseCount != 1 {
		t.Errorf("form 11: %+v, want audience 1 responses 1", l)
	}
	// Honours-only form with no submissions yet.
	if l := lines[2]; l.AudienceSize != 1 || l.ResponseCount != 0 {
		t.Errorf("form 12: %+v, want audience 1 responses 0", l)
	}
	if lines[2].FacultyName != "Dr. S. Mehta" {
		t.Errorf("facultyName = %q", lines[2].FacultyName)
	}
}

func TestFormCompletionLinesEmpty(t *testing.T) {
	lines := formCompletionLines(nil, nil, nil)
	if len(lines) != 0 {
		t.Fatalf("lines = %+v, want empty", lines)
	}
}
