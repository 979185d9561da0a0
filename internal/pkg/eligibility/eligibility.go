// Package eligibility decides which students belong to the audience of a
// feedback form. The rules are pure functions over plain structs so the same
// predicate serves report building, the admin completion monitor and the
// submission-time authorization gate without drifting apart per call site.
package eligibility

import "strings"

// Student is the enrollment snapshot the matcher needs. A student has exactly
// one regular enrollment (semester+course+division, optionally a lab batch)
// and at most one honours/minor enrollment (HonoursCourse empty when absent).
type Student struct {
	ID            int64
	Semester      int
	Course        string
	Division      string
	Batch         string
	HonoursCourse string
	HonoursBatch  string
}

// Form is the audience criteria of one feedback form. An empty Division marks
// an honours-only form; an empty Batch marks a theory form that matches every
// batch in the division.
type Form struct {
	ID       int64
	Semester int
	Course   string
	Division string
	Batch    string
}

func equalFold(a, b string) bool {
	return strings.EqualFold(strings.TrimSpace(a), strings.TrimSpace(b))
}

// matchesRegular checks the student's primary enrollment against the form.
func matchesRegular(s Student, f Form) bool {
	if s.Semester != f.Semester {
		return false
	}
	if !equalFold(s.Course, f.Course) {
		return false
	}
	// Empty form division is the honours-only signal; the division check
	// relaxes rather than forbids, so it is skipped entirely.
	if f.Division != "" && !equalFold(s.Division, f.Division) {
		return false
	}
	// Theory forms carry no batch and match every batch in the division.
	if f.Batch != "" && !equalFold(s.Batch, f.Batch) {
		return false
	}
	return true
}

// matchesHonours checks the student's honours/minor enrollment against the
// form. Honours cohorts are cross-divisional, so division is never compared.
func matchesHonours(s Student, f Form) bool {
	if s.HonoursCourse == "" {
		return false
	}
	if s.Semester != f.Semester {
		return false
	}
	if !equalFold(s.HonoursCourse, f.Course) {
		return false
	}
	if f.Batch != "" && !equalFold(s.HonoursBatch, f.Batch) {
		return false
	}
	return true
}

// Eligible reports whether the student belongs to the form's audience,
// through either the regular or the honours enrollment. A student matching
// through both still yields a single true; callers that build audiences must
// count by student, never by branch.
func Eligible(s Student, f Form) bool {
	return matchesRegular(s, f) || matchesHonours(s, f)
}

// EligibleStudents filters students down to the form's audience. An empty
// result is valid: a form with an empty division and no honours students
// anywhere simply has zero eligible students.
func EligibleStudents(students []Student, f Form) []Student {
	audience := make([]Student, 0, len(students))
	for _, s := range students {
		if Eligible(s, f) {
			audience = append(audience, s)
		}
	}
	return audience
}

// AudienceSize counts the form's eligible students.
func AudienceSize(students []Student, f Form) int {
	n := 0
	for _, s := range students {
		if Eligible(s, f) {
			n++
		}
	}
	return n
}
