package services

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/mihir/campuspulse/internal/app/models"
	"github.com/mihir/campuspulse/internal/app/models/dto"
	"github.com/mihir/campuspulse/internal/app/repositories"
	"github.com/mihir/campuspulse/internal/pkg/apperrors"
	"github.com/mihir/campuspulse/internal/pkg/eligibility"
	"github.com/mihir/campuspulse/internal/pkg/rating"
)

// ReportService defines the interface for the admin reporting views
type ReportService interface {
	GetFormReport(ctx context.Context, formID int64) (*dto.FormReport, error)
	GetFacultyReport(ctx context.Context, facultyEmail string) (*dto.FacultyReport, error)
	GetCompletionReport(ctx context.Context) (*dto.CompletionReport, error)
}

// reportServiceImpl implements the ReportService interface
type reportServiceImpl struct {
	studentRepo  *repositories.StudentRepository
	formRepo     *repositories.FormRepository
	responseRepo *repositories.ResponseRepository
}

// NewReportService creates a new report service instance
func NewReportService(
	studentRepo *repositories.StudentRepository,
	formRepo *repositories.FormRepository,
	responseRepo *repositories.ResponseRepository,
) ReportService {
	return &reportServiceImpl{
		studentRepo:  studentRepo,
		formRepo:     formRepo,
		responseRepo: responseRepo,
	}
}

// GetFormReport aggregates one form: the overall 0-10 average, the per
// question raw and normalized averages, and the anonymous comments. Ratings
// are kept raw in storage and mapped onto 0-10 here.
func (s *reportServiceImpl) GetFormReport(ctx context.Context, formID int64) (*dto.FormReport, error) {
	form, err := s.formRepo.GetByID(ctx, formID)
	if err != nil {
		return nil, err
	}

	responses, err := s.responseRepo.GetByFormID(ctx, formID)
	if err != nil {
		return nil, fmt.Errorf("error loading responses: %w", err)
	}

	students, err := s.studentRepo.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("error loading students: %w", err)
	}
	enrollments := make([]eligibility.Student, 0, len(students))
	for _, st := range students {
		enrollments = append(enrollments, st.Enrollment())
	}

	scores := make([]rating.Response, 0, len(responses))
	for _, r := range responses {
		scores = append(scores, r.Scores())
	}

	// One stat per question answered on this form; the embedded text and
	// type make the report stable against later bank edits.
	type qmeta struct {
		text string
		qt   rating.QuestionType
		n    int
	}
	meta := make(map[int64]*qmeta)
	for _, r := range responses {
		for _, it := range r.Items {
			m, ok := meta[it.ParameterID]
			if !ok {
				m = &qmeta{text: it.QuestionText, qt: it.QuestionType}
				meta[it.ParameterID] = m
			}
			m.n++
		}
	}
	paramIDs := make([]int64, 0, len(meta))
	for id := range meta {
		paramIDs = append(paramIDs, id)
	}
	sort.Slice(paramIDs, func(i, j int) bool { return paramIDs[i] < paramIDs[j] })

	questions := make([]dto.QuestionStat, 0, len(paramIDs))
	for _, id := range paramIDs {
		m := meta[id]
		raw := rating.ParameterAverage(scores, id)
		questions = append(questions, dto.QuestionStat{
			ParameterID:       id,
			QuestionText:      m.text,
			QuestionType:      string(m.qt),
			RawAverage:        raw,
			NormalizedAverage: rating.Normalize(raw, m.qt),
			AnswerCount:       m.n,
		})
	}

	var comments []string
	for _, r := range responses {
		if r.Comment != nil && *r.Comment != "" {
			comments = append(comments, *r.Comment)
		}
	}

	average := rating.MeanResponseAverage(scores)
	return &dto.FormReport{
		FormID:        form.ID,
		SubjectName:   form.SubjectName,
		FacultyName:   form.FacultyName,
		AcademicYear:  form.AcademicYear,
		Status:        string(form.Status),
		AudienceSize:  eligibility.AudienceSize(enrollments, form.Criteria()),
		ResponseCount: len(responses),
		Average:       average,
		Band:          string(rating.BandFor(average)),
		Questions:     questions,
		Comments:      comments,
	}, nil
}

// GetFacultyReport aggregates every form of one faculty member into a single
// 0-10 overall, weighted by response count so a heavily answered form counts
// for more than a sparse one.
func (s *reportServiceImpl) GetFacultyReport(ctx context.Context, facultyEmail string) (*dto.FacultyReport, error) {
	email := strings.ToLower(strings.TrimSpace(facultyEmail))
	if email == "" {
		return nil, fmt.Errorf("%w: faculty email is required", apperrors.ErrValidationFailed)
	}

	forms, err := s.formRepo.GetByFacultyEmail(ctx, email)
	if err != nil {
		return nil, fmt.Errorf("error loading faculty forms: %w", err)
	}
	if len(forms) == 0 {
		return nil, fmt.Errorf("%w: no forms for faculty %s", apperrors.ErrResourceNotFound, email)
	}

	stats := make([]rating.FormStat, 0, len(forms))
	lines := make([]dto.FacultyFormStat, 0, len(forms))
	for _, f := range forms {
		responses, err := s.responseRepo.GetByFormID(ctx, f.ID)
		if err != nil {
			return nil, fmt.Errorf("error loading responses for form %d: %w", f.ID, err)
		}
		scores := make([]rating.Response, 0, len(responses))
		for _, r := range responses {
			scores = append(scores, r.Scores())
		}
		avg := rating.MeanResponseAverage(scores)
		stats = append(stats, rating.FormStat{FormID: f.ID, Average: avg, ResponseCount: len(responses)})
		lines = append(lines, dto.FacultyFormStat{
			FormID:        f.ID,
			SubjectName:   f.SubjectName,
			Semester:      f.Semester,
			Course:        f.Course,
			Division:      f.Division,
			ResponseCount: len(responses),
			Average:       avg,
			Band:          string(rating.BandFor(avg)),
		})
	}

	overall := rating.FacultyOverall(stats)
	return &dto.FacultyReport{
		FacultyName:  forms[0].FacultyName,
		FacultyEmail: email,
		Overall:      overall,
		Band:         string(rating.BandFor(overall)),
		Forms:        lines,
	}, nil
}

// GetCompletionReport builds the completion monitor over all active forms:
// which students still owe submissions and which forms each of them owes.
func (s *reportServiceImpl) GetCompletionReport(ctx context.Context) (*dto.CompletionReport, error) {
	students, err := s.studentRepo.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("error loading students: %w", err)
	}
	forms, err := s.formRepo.GetActive(ctx)
	if err != nil {
		return nil, fmt.Errorf("error loading active forms: %w", err)
	}
	pairs, err := s.responseRepo.GetAllSubmissionPairs(ctx)
	if err != nil {
		return nil, fmt.Errorf("error loading submissions: %w", err)
	}

	enrollments := make([]eligibility.Student, 0, len(students))
	byID := make(map[int64]*models.Student, len(students))
	for _, st := range students {
		enrollments = append(enrollments, st.Enrollment())
		byID[st.ID] = st
	}
	criteria := make([]eligibility.Form, 0, len(forms))
	for _, f := range forms {
		criteria = append(criteria, f.Criteria())
	}
	submissions := make([]eligibility.Submission, 0, len(pairs))
	for _, p := range pairs {
		submissions = append(submissions, eligibility.Submission{FormID: p[0], StudentID: p[1]})
	}

	matrix := eligibility.CompletionMatrix(enrollments, criteria, submissions)
	formLines := formCompletionLines(enrollments, forms, pairs)

	rows := make([]dto.CompletionRow, 0, len(matrix))
	completed := 0
	for _, m := range matrix {
		st := byID[m.StudentID]
		if st == nil {
			continue
		}
		if m.Completed {
			completed++
		}
		rows = append(rows, dto.CompletionRow{
			StudentID:      st.ID,
			Name:           st.Name,
			Email:          st.Email,
			Semester:       st.Semester,
			Course:         st.Course,
			Division:       st.Division,
			EligibleCount:  len(m.EligibleForms),
			SubmittedCount: len(m.SubmittedForms),
			PendingFormIDs: m.PendingForms,
			Completed:      m.Completed,
		})
	}

	return &dto.CompletionReport{
		TotalStudents:     len(students),
		CompletedStudents: completed,
		Forms:             formLines,
		Rows:              rows,
	}, nil
}

// formCompletionLines builds the per-form side of the completion monitor:
// audience size against submission count, in the forms' given order.
func formCompletionLines(enrollments []eligibility.Student, forms []*models.FeedbackForm, pairs [][2]int64) []dto.FormCompletion {
	counts := make(map[int64]int, len(forms))
	for _, p := range pairs {
		counts[p[0]]++
	}

	lines := make([]dto.FormCompletion, 0, len(forms))
	for _, f := range forms {
		lines = append(lines, dto.FormCompletion{
			FormID:        f.ID,
			SubjectName:   f.SubjectName,
			FacultyName:   f.FacultyName,
			AudienceSize:  eligibility.AudienceSize(enrollments, f.Criteria()),
			ResponseCount: counts[f.ID],
		})
	}
	return lines
}
