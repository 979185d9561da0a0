package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/mihir/campuspulse/internal/app/models"
	"github.com/mihir/campuspulse/internal/app/models/dto"
	"github.com/mihir/campuspulse/internal/app/repositories"
	"github.com/mihir/campuspulse/internal/pkg/apperrors"
)

// StudentService defines the interface for student master-data operations
type StudentService interface {
	CreateStudent(ctx context.Context, req dto.CreateStudentRequest) (*models.Student, error)
	GetStudentByID(ctx context.Context, id int64) (*models.Student, error)
	ListStudents(ctx context.Context, filter dto.StudentFilter, offset uint64, limit int) ([]*models.Student, int64, error)
	UpdateStudent(ctx context.Context, id int64, req dto.UpdateStudentRequest) (*models.Student, error)
	DeleteStudent(ctx context.Context, id int64) error
}

// studentServiceImpl implements the StudentService interface
type studentServiceImpl struct {
	studentRepo  *repositories.StudentRepository
	responseRepo *repositories.ResponseRepository
}

// NewStudentService creates a new student service instance
func NewStudentService(studentRepo *repositories.StudentRepository, responseRepo *repositories.ResponseRepository) StudentService {
	return &studentServiceImpl{
		studentRepo:  studentRepo,
		responseRepo: responseRepo,
	}
}

func normalizeOptional(v *string) *string {
	if v == nil {
		return nil
	}
	trimmed := strings.ToUpper(strings.TrimSpace(*v))
	if trimmed == "" {
		return nil
	}
	return &trimmed
}

// validateEnrollment checks the cross-field rules the binding tags cannot:
// an honours batch without an honours course is meaningless.
func validateEnrollment(honoursCourse, honoursBatch *string) error {
	if honoursBatch != nil && honoursCourse == nil {
		return fmt.Errorf("%w: honours batch requires an honours course", apperrors.ErrValidationFailed)
	}
	return nil
}

func studentFromRequest(name, email string, semester int, course, division string, batch, honoursCourse, honoursBatch *string) *models.Student {
	return &models.Student{
		Name:          strings.TrimSpace(name),
		Email:         strings.ToLower(strings.TrimSpace(email)),
		Semester:      semester,
		Course:        strings.ToUpper(strings.TrimSpace(course)),
		Division:      strings.ToUpper(strings.TrimSpace(division)),
		Batch:         batch,
		HonoursCourse: honoursCourse,
		HonoursBatch:  honoursBatch,
	}
}

// CreateStudent registers a new student record
func (s *studentServiceImpl) CreateStudent(ctx context.Context, req dto.CreateStudentRequest) (*models.Student, error) {
	honoursCourse := normalizeOptional(req.HonoursCourse)
	honoursBatch := normalizeOptional(req.HonoursBatch)
	if err := validateEnrollment(honoursCourse, honoursBatch); err != nil {
		return nil, err
	}

	student := studentFromRequest(req.Name, req.Email, req.Semester, req.Course, req.Division,
		normalizeOptional(req.Batch), honoursCourse, honoursBatch)

	id, err := s.studentRepo.Create(ctx, student)
	if err != nil {
		return nil, fmt.Errorf("error creating student: %w", err)
	}
	student.ID = id

	return student, nil
}

// GetStudentByID retrieves a student by id
func (s *studentServiceImpl) GetStudentByID(ctx context.Context, id int64) (*models.Student, error) {
	if id <= 0 {
		return nil, fmt.Errorf("%w: invalid student ID", apperrors.ErrValidationFailed)
	}
	return s.studentRepo.GetByID(ctx, id)
}

// ListStudents retrieves students matching the filter
func (s *studentServiceImpl) ListStudents(ctx context.Context, filter dto.StudentFilter, offset uint64, limit int) ([]*models.Student, int64, error) {
	return s.studentRepo.List(ctx, filter, offset, limit)
}

// UpdateStudent updates an existing student record
func (s *studentServiceImpl) UpdateStudent(ctx context.Context, id int64, req dto.UpdateStudentRequest) (*models.Student, error) {
	if id <= 0 {
		return nil, fmt.Errorf("%w: invalid student ID", apperrors.ErrValidationFailed)
	}

	honoursCourse := normalizeOptional(req.HonoursCourse)
	honoursBatch := normalizeOptional(req.HonoursBatch)
	if err := validateEnrollment(honoursCourse, honoursBatch); err != nil {
		return nil, err
	}

	student := studentFromRequest(req.Name, req.Email, req.Semester, req.Course, req.Division,
		normalizeOptional(req.Batch), honoursCourse, honoursBatch)
	student.ID = id

	if err := s.studentRepo.Update(ctx, student); err != nil {
		return nil, err
	}

	return s.studentRepo.GetByID(ctx, id)
}

// DeleteStudent removes a student record. Their responses survive
// anonymized: the deletion marker is appended to each comment first.
func (s *studentServiceImpl) DeleteStudent(ctx context.Context, id int64) error {
	if id <= 0 {
		return fmt.Errorf("%w: invalid student ID", apperrors.ErrValidationFailed)
	}

	if _, err := s.studentRepo.GetByID(ctx, id); err != nil {
		return err
	}

	if err := s.responseRepo.AnonymizeStudent(ctx, id); err != nil {
		return fmt.Errorf("error anonymizing student responses: %w", err)
	}

	return s.studentRepo.Delete(ctx, id)
}
