package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/mihir/campuspulse/internal/app/models"
	"github.com/mihir/campuspulse/internal/app/models/dto"
	"github.com/mihir/campuspulse/internal/app/repositories"
	"github.com/mihir/campuspulse/internal/pkg/apperrors"
	"github.com/mihir/campuspulse/internal/pkg/rating"
)

// QuestionService defines the interface for question bank operations
type QuestionService interface {
	CreateQuestion(ctx context.Context, req dto.CreateQuestionRequest) (*models.Question, error)
	GetQuestions(ctx context.Context, formType string) ([]*models.Question, error)
	UpdateQuestion(ctx context.Context, id int64, req dto.UpdateQuestionRequest) (*models.Question, error)
	DeleteQuestion(ctx context.Context, id int64) error
}

// questionServiceImpl implements the QuestionService interface
type questionServiceImpl struct {
	questionRepo *repositories.QuestionRepository
}

// NewQuestionService creates a new question service instance
func NewQuestionService(questionRepo *repositories.QuestionRepository) QuestionService {
	return &questionServiceImpl{questionRepo: questionRepo}
}

func parseFormType(v string) (models.FormType, error) {
	switch models.FormType(strings.ToLower(strings.TrimSpace(v))) {
	case models.FormTypeTheory:
		return models.FormTypeTheory, nil
	case models.FormTypeLab:
		return models.FormTypeLab, nil
	case "":
		return "", nil
	default:
		return "", fmt.Errorf("%w: unknown form type %q", apperrors.ErrValidationFailed, v)
	}
}

// CreateQuestion adds a question to the live bank
func (s *questionServiceImpl) CreateQuestion(ctx context.Context, req dto.CreateQuestionRequest) (*models.Question, error) {
	formType, err := parseFormType(req.FormType)
	if err != nil {
		return nil, err
	}
	if formType == "" {
		return nil, fmt.Errorf("%w: form type is required", apperrors.ErrValidationFailed)
	}

	question := &models.Question{
		Text:         strings.TrimSpace(req.Text),
		Position:     req.Position,
		FormType:     formType,
		QuestionType: rating.QuestionType(req.QuestionType),
		IsActive:     true,
	}

	id, err := s.questionRepo.Create(ctx, question)
	if err != nil {
		return nil, fmt.Errorf("error creating question: %w", err)
	}
	question.ID = id

	return question, nil
}

// GetQuestions retrieves the bank, optionally filtered by form type
func (s *questionServiceImpl) GetQuestions(ctx context.Context, formType string) ([]*models.Question, error) {
	parsed, err := parseFormType(formType)
	if err != nil {
		return nil, err
	}
	return s.questionRepo.GetAll(ctx, parsed)
}

// UpdateQuestion edits a bank question. Stored responses are unaffected:
// each carries its own embedded copy of the text and type.
func (s *questionServiceImpl) UpdateQuestion(ctx context.Context, id int64, req dto.UpdateQuestionRequest) (*models.Question, error) {
	if id <= 0 {
		return nil, fmt.Errorf("%w: invalid question ID", apperrors.ErrValidationFailed)
	}

	formType, err := parseFormType(req.FormType)
	if err != nil {
		return nil, err
	}

	existing, err := s.questionRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	existing.Text = strings.TrimSpace(req.Text)
	existing.Position = req.Position
	existing.FormType = formType
	existing.QuestionType = rating.QuestionType(req.QuestionType)
	if req.IsActive != nil {
		existing.IsActive = *req.IsActive
	}

	if err := s.questionRepo.Update(ctx, existing); err != nil {
		return nil, err
	}

	return existing, nil
}

// DeleteQuestion removes a question from the live bank
func (s *questionServiceImpl) DeleteQuestion(ctx context.Context, id int64) error {
	if id <= 0 {
		return fmt.Errorf("%w: invalid question ID", apperrors.ErrValidationFailed)
	}
	return s.questionRepo.Delete(ctx, id)
}
