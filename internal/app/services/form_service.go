package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/rs/zerolog"

	"github.com/mihir/campuspulse/internal/app/models"
	"github.com/mihir/campuspulse/internal/app/models/dto"
	"github.com/mihir/campuspulse/internal/app/repositories"
	"github.com/mihir/campuspulse/internal/pkg/apperrors"
)

// FormService defines the interface for feedback form operations
type FormService interface {
	CreateForm(ctx context.Context, req dto.CreateFormRequest) (*models.FeedbackForm, error)
	GenerateForms(ctx context.Context, req dto.GenerateFormsRequest) (*dto.GenerateFormsResponse, error)
	GetFormByID(ctx context.Context, id int64) (*models.FeedbackForm, error)
	ListForms(ctx context.Context, filter dto.FormFilter, offset uint64, limit int) ([]*models.FeedbackForm, int64, error)
	UpdateForm(ctx context.Context, id int64, req dto.UpdateFormRequest) (*models.FeedbackForm, error)
	CloseForm(ctx context.Context, id int64) error
	DeleteForm(ctx context.Context, id int64) error
}

// formServiceImpl implements the FormService interface
type formServiceImpl struct {
	formRepo *repositories.FormRepository
	logger   zerolog.Logger
}

// NewFormService creates a new form service instance
func NewFormService(formRepo *repositories.FormRepository, logger zerolog.Logger) FormService {
	return &formServiceImpl{
		formRepo: formRepo,
		logger:   logger,
	}
}

func formFromEntry(subject, facultyName, facultyEmail string, semester int, course, division string, batch *string, academicYear string) *models.FeedbackForm {
	return &models.FeedbackForm{
		SubjectName:  strings.TrimSpace(subject),
		FacultyName:  strings.TrimSpace(facultyName),
		FacultyEmail: strings.ToLower(strings.TrimSpace(facultyEmail)),
		Semester:     semester,
		Course:       strings.ToUpper(strings.TrimSpace(course)),
		Division:     strings.ToUpper(strings.TrimSpace(division)),
		Batch:        normalizeOptional(batch),
		AcademicYear: strings.TrimSpace(academicYear),
		Status:       models.FormStatusActive,
	}
}

// CreateForm creates a single feedback form
func (s *formServiceImpl) CreateForm(ctx context.Context, req dto.CreateFormRequest) (*models.FeedbackForm, error) {
	form := formFromEntry(req.SubjectName, req.FacultyName, req.FacultyEmail,
		req.Semester, req.Course, req.Division, req.Batch, req.AcademicYear)

	id, err := s.formRepo.Create(ctx, form)
	if err != nil {
		return nil, fmt.Errorf("error creating form: %w", err)
	}
	form.ID = id

	return form, nil
}

// GenerateForms bulk-creates one active form per timetable entry for the
// academic year. A duplicate entry (same class/subject/faculty/year) is
// skipped rather than failing the whole batch.
func (s *formServiceImpl) GenerateForms(ctx context.Context, req dto.GenerateFormsRequest) (*dto.GenerateFormsResponse, error) {
	result := &dto.GenerateFormsResponse{FormIDs: []int64{}}

	for _, entry := range req.Entries {
		form := formFromEntry(entry.SubjectName, entry.FacultyName, entry.FacultyEmail,
			entry.Semester, entry.Course, entry.Division, entry.Batch, req.AcademicYear)

		id, err := s.formRepo.Create(ctx, form)
		if err != nil {
			if errors.Is(err, apperrors.ErrResourceAlreadyExists) {
				result.Skipped++
				continue
			}
			return nil, fmt.Errorf("error generating form for subject %q: %w", entry.SubjectName, err)
		}

		result.Created++
		result.FormIDs = append(result.FormIDs, id)
	}

	s.logger.Info().
		Str("academicYear", req.AcademicYear).
		Int("created", result.Created).
		Int("skipped", result.Skipped).
		Msg("Generated feedback forms from timetable")

	return result, nil
}

// GetFormByID retrieves a feedback form by id
func (s *formServiceImpl) GetFormByID(ctx context.Context, id int64) (*models.FeedbackForm, error) {
	if id <= 0 {
		return nil, fmt.Errorf("%w: invalid form ID", apperrors.ErrValidationFailed)
	}
	return s.formRepo.GetByID(ctx, id)
}

// ListForms retrieves forms matching the filter
func (s *formServiceImpl) ListForms(ctx context.Context, filter dto.FormFilter, offset uint64, limit int) ([]*models.FeedbackForm, int64, error) {
	return s.formRepo.List(ctx, filter, offset, limit)
}

// UpdateForm updates an existing feedback form's criteria
func (s *formServiceImpl) UpdateForm(ctx context.Context, id int64, req dto.UpdateFormRequest) (*models.FeedbackForm, error) {
	if id <= 0 {
		return nil, fmt.Errorf("%w: invalid form ID", apperrors.ErrValidationFailed)
	}

	form := formFromEntry(req.SubjectName, req.FacultyName, req.FacultyEmail,
		req.Semester, req.Course, req.Division, req.Batch, req.AcademicYear)
	form.ID = id

	if err := s.formRepo.Update(ctx, form); err != nil {
		return nil, err
	}

	return s.formRepo.GetByID(ctx, id)
}

// CloseForm transitions a form to closed; closed forms reject submissions
// but keep serving reports.
func (s *formServiceImpl) CloseForm(ctx context.Context, id int64) error {
	if id <= 0 {
		return fmt.Errorf("%w: invalid form ID", apperrors.ErrValidationFailed)
	}
	return s.formRepo.SetStatus(ctx, id, models.FormStatusClosed)
}

// DeleteForm removes a feedback form and its responses
func (s *formServiceImpl) DeleteForm(ctx context.Context, id int64) error {
	if id <= 0 {
		return fmt.Errorf("%w: invalid form ID", apperrors.ErrValidationFailed)
	}
	return s.formRepo.Delete(ctx, id)
}
