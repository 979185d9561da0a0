package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/mihir/campuspulse/internal/app/models"
	"github.com/mihir/campuspulse/internal/app/models/dto"
	"github.com/mihir/campuspulse/internal/app/repositories"
	"github.com/mihir/campuspulse/internal/pkg/apperrors"
	"github.com/mihir/campuspulse/internal/pkg/eligibility"
	"github.com/mihir/campuspulse/internal/pkg/rating"
)

// FeedbackService defines the interface for the student-facing feedback flow
type FeedbackService interface {
	GetEligibleForms(ctx context.Context, userID int64) ([]dto.EligibleFormResponse, error)
	SubmitFeedback(ctx context.Context, userID, formID int64, req dto.SubmitFeedbackRequest) (*models.FeedbackResponse, error)
}

// feedbackServiceImpl implements the FeedbackService interface
type feedbackServiceImpl struct {
	studentRepo  *repositories.StudentRepository
	formRepo     *repositories.FormRepository
	questionRepo *repositories.QuestionRepository
	responseRepo *repositories.ResponseRepository
	logger       zerolog.Logger
}

// NewFeedbackService creates a new feedback service instance
func NewFeedbackService(
	studentRepo *repositories.StudentRepository,
	formRepo *repositories.FormRepository,
	questionRepo *repositories.QuestionRepository,
	responseRepo *repositories.ResponseRepository,
	logger zerolog.Logger,
) FeedbackService {
	return &feedbackServiceImpl{
		studentRepo:  studentRepo,
		formRepo:     formRepo,
		questionRepo: questionRepo,
		responseRepo: responseRepo,
		logger:       logger,
	}
}

func normalizeComment(c *string) *string {
	if c == nil {
		return nil
	}
	trimmed := strings.TrimSpace(*c)
	if trimmed == "" {
		return nil
	}
	return &trimmed
}

// GetEligibleForms lists the active forms the caller's enrollment matches and
// that the caller has not yet submitted, ordered as the active listing comes
// back from storage.
func (s *feedbackServiceImpl) GetEligibleForms(ctx context.Context, userID int64) ([]dto.EligibleFormResponse, error) {
	student, err := s.studentRepo.GetByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}

	active, err := s.formRepo.GetActive(ctx)
	if err != nil {
		return nil, fmt.Errorf("error getting active forms: %w", err)
	}

	submittedIDs, err := s.responseRepo.GetSubmittedFormIDs(ctx, student.ID)
	if err != nil {
		return nil, fmt.Errorf("error getting submitted forms: %w", err)
	}

	criteria := make([]eligibility.Form, 0, len(active))
	byID := make(map[int64]*models.FeedbackForm, len(active))
	for _, f := range active {
		criteria = append(criteria, f.Criteria())
		byID[f.ID] = f
	}
	submissions := make([]eligibility.Submission, 0, len(submittedIDs))
	for _, id := range submittedIDs {
		submissions = append(submissions, eligibility.Submission{FormID: id, StudentID: student.ID})
	}

	pending := eligibility.PendingForms(student.Enrollment(), criteria, submissions)

	out := make([]dto.EligibleFormResponse, 0, len(pending))
	for _, p := range pending {
		f := byID[p.ID]
		formType := string(models.FormTypeTheory)
		if f.IsLab() {
			formType = string(models.FormTypeLab)
		}
		out = append(out, dto.EligibleFormResponse{
			ID:           f.ID,
			SubjectName:  f.SubjectName,
			FacultyName:  f.FacultyName,
			Semester:     f.Semester,
			Course:       f.Course,
			Division:     f.Division,
			Batch:        f.Batch,
			AcademicYear: f.AcademicYear,
			FormType:     formType,
		})
	}

	return out, nil
}

// SubmitFeedback validates and stores one student's submission for a form.
// The gates run in order: the form must be active, the student's enrollment
// must match the audience, every answer must reference an active question of
// the form's type with a rating inside that question's recording domain, and
// the full question set must be answered exactly once. The unique constraint
// on (form, student) catches concurrent double submissions.
func (s *feedbackServiceImpl) SubmitFeedback(ctx context.Context, userID, formID int64, req dto.SubmitFeedbackRequest) (*models.FeedbackResponse, error) {
	student, err := s.studentRepo.GetByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}

	form, err := s.formRepo.GetByID(ctx, formID)
	if err != nil {
		return nil, err
	}
	if form.Status != models.FormStatusActive {
		return nil, apperrors.ErrFormClosed
	}

	if !eligibility.Eligible(student.Enrollment(), form.Criteria()) {
		return nil, apperrors.ErrNotEligible
	}

	already, err := s.responseRepo.Exists(ctx, formID, student.ID)
	if err != nil {
		return nil, fmt.Errorf("error checking existing response: %w", err)
	}
	if already {
		return nil, apperrors.ErrAlreadySubmitted
	}

	formType := models.FormTypeTheory
	if form.IsLab() {
		formType = models.FormTypeLab
	}
	questions, err := s.questionRepo.GetActiveByFormType(ctx, formType)
	if err != nil {
		return nil, fmt.Errorf("error loading question bank: %w", err)
	}
	if len(questions) == 0 {
		return nil, fmt.Errorf("%w: no active questions for %s forms", apperrors.ErrValidationFailed, formType)
	}
	bank := make(map[int64]*models.Question, len(questions))
	for _, q := range questions {
		bank[q.ID] = q
	}

	items := make([]models.ResponseItem, 0, len(req.Items))
	seen := make(map[int64]bool, len(req.Items))
	for _, it := range req.Items {
		q, ok := bank[it.ParameterID]
		if !ok {
			return nil, fmt.Errorf("%w: unknown question %d", apperrors.ErrValidationFailed, it.ParameterID)
		}
		if seen[it.ParameterID] {
			return nil, fmt.Errorf("%w: question %d answered twice", apperrors.ErrValidationFailed, it.ParameterID)
		}
		seen[it.ParameterID] = true
		if !rating.ValidRaw(it.Rating, q.QuestionType) {
			return nil, fmt.Errorf("%w: rating %v is out of range for question %d", apperrors.ErrInvalidRating, it.Rating, it.ParameterID)
		}
		items = append(items, models.ResponseItem{
			ParameterID:  q.ID,
			Rating:       it.Rating,
			QuestionType: q.QuestionType,
			QuestionText: q.Text,
		})
	}
	if len(seen) != len(bank) {
		return nil, fmt.Errorf("%w: all %d questions must be answered", apperrors.ErrValidationFailed, len(bank))
	}

	studentID := student.ID
	resp := &models.FeedbackResponse{
		FormID:      formID,
		StudentID:   &studentID,
		Comment:     normalizeComment(req.Comment),
		SubmittedAt: time.Now(),
		Items:       items,
	}

	id, err := s.responseRepo.Create(ctx, resp)
	if err != nil {
		return nil, err
	}
	resp.ID = id

	s.logger.Info().
		Int64("formId", formID).
		Int64("studentId", student.ID).
		Int("items", len(items)).
		Msg("Feedback submitted")

	return resp, nil
}
