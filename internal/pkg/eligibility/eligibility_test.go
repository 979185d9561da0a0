package eligibility

import "testing"

func regularStudent() Student {
	return Student{ID: 1, Semester: 5, Course: "IT", Division: "A", Batch: "A1"}
}

func TestEligibleRegularTrack(t *testing.T) {
	tests := []struct {
		name    string
		student Student
		form    Form
		want    bool
	}{
		{
			name:    "lab form full match",
			student: regularStudent(),
			form:    Form{Semester: 5, Course: "IT", Division: "A", Batch: "A1"},
			want:    true,
		},
		{
			name:    "theory form skips batch check",
			student: regularStudent(),
			form:    Form{Semester: 5, Course: "IT", Division: "A"},
			want:    true,
		},
		{
			name:    "semester mismatch",
			student: regularStudent(),
			form:    Form{Semester: 6, Course: "IT", Division: "A"},
			want:    false,
		},
		{
			name:    "course mismatch",
			student: regularStudent(),
			form:    Form{Semester: 5, Course: "AIDS", Division: "A"},
			want:    false,
		},
		{
			name:    "division mismatch",
			student: regularStudent(),
			form:    Form{Semester: 5, Course: "IT", Division: "B"},
			want:    false,
		},
		{
			name:    "batch mismatch on lab form",
			student: regularStudent(),
			form:    Form{Semester: 5, Course: "IT", Division: "A", Batch: "A2"},
			want:    false,
		},
		{
			name:    "case-insensitive course and division",
			student: Student{Semester: 5, Course: "it", Division: "a", Batch: "a1"},
			form:    Form{Semester: 5, Course: "IT", Division: "A", Batch: "A1"},
			want:    true,
		},
		{
			// Empty division relaxes the check rather than forbidding:
			// a regular student still matches on semester+course alone.
			name:    "empty division form matches regular student",
			student: regularStudent(),
			form:    Form{Semester: 5, Course: "IT", Division: ""},
			want:    true,
		},
		{
			name:    "student without batch fails lab form",
			student: Student{Semester: 5, Course: "IT", Division: "A"},
			form:    Form{Semester: 5, Course: "IT", Division: "A", Batch: "A1"},
			want:    false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Eligible(tt.student, tt.form); got != tt.want {
				t.Errorf("Eligible() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestEligibleHonoursTrack(t *testing.T) {
	honours := Student{ID: 2, Semester: 5, Course: "IT", Division: "B", Batch: "B2",
		HonoursCourse: "AIDS", HonoursBatch: "H1"}

	tests := []struct {
		name    string
		student Student
		form    Form
		want    bool
	}{
		{
			// Honours cohorts are cross-divisional: the student's own
			// division never enters the honours branch.
			name:    "honours match ignores division",
			student: honours,
			form:    Form{Semester: 5, Course: "AIDS", Division: "A"},
			want:    true,
		},
		{
			name:    "honours match on honours-only form",
			student: honours,
			form:    Form{Semester: 5, Course: "AIDS", Division: ""},
			want:    true,
		},
		{
			name:    "honours lab form matches honours batch",
			student: honours,
			form:    Form{Semester: 5, Course: "AIDS", Division: "", Batch: "H1"},
			want:    true,
		},
		{
			name:    "honours lab form rejects wrong honours batch",
			student: honours,
			form:    Form{Semester: 5, Course: "AIDS", Division: "", Batch: "H2"},
			want:    false,
		},
		{
			name:    "honours semester mismatch",
			student: honours,
			form:    Form{Semester: 6, Course: "AIDS", Division: ""},
			want:    false,
		},
		{
			name:    "no honours enrollment never matches honours-only form",
			student: regularStudent(),
			form:    Form{Semester: 5, Course: "AIDS", Division: ""},
			want:    false,
		},
		{
			name:    "regular branch still wins for honours student's own class",
			student: honours,
			form:    Form{Semester: 5, Course: "IT", Division: "B", Batch: "B2"},
			want:    true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Eligible(tt.student, tt.form); got != tt.want {
				t.Errorf("Eligible() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestEligibleStudentsCountsStudentOnce(t *testing.T) {
	// Semester 5 IT division A student also enrolled in IT honours: both
	// branches match the same form, the audience must still count one.
	s := Student{ID: 7, Semester: 5, Course: "IT", Division: "A", HonoursCourse: "IT"}
	f := Form{Semester: 5, Course: "IT", Division: "A"}

	audience := EligibleStudents([]Student{s}, f)
	if len(audience) != 1 {
		t.Fatalf("audience size = %d, want 1", len(audience))
	}
	if AudienceSize([]Student{s}, f) != 1 {
		t.Errorf("AudienceSize = %d, want 1", AudienceSize([]Student{s}, f))
	}
}

func TestEligibleStudentsEmptyAudience(t *testing.T) {
	// Honours-only form with no honours students anywhere: zero eligible
	// students is a valid outcome, not an error.
	students := []Student{
		{ID: 1, Semester: 5, Course: "IT", Division: "A"},
		{ID: 2, Semester: 5, Course: "IT", Division: "B"},
	}
	f := Form{Semester: 5, Course: "CYBER", Division: ""}

	audience := EligibleStudents(students, f)
	if len(audience) != 0 {
		t.Fatalf("audience size = %d, want 0", len(audience))
	}
}
