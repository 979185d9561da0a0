package repositories

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/mihir/campuspulse/internal/app/models"
	"github.com/mihir/campuspulse/internal/pkg/apperrors"
	"github.com/mihir/campuspulse/internal/pkg/logger"
)

const questionColumns = "id, text, position, form_type, question_type, is_active, created_at, updated_at"

// QuestionRepository handles question bank database operations
type QuestionRepository struct {
	db *pgxpool.Pool
	sb squirrel.StatementBuilderType
}

// NewQuestionRepository creates a new QuestionRepository
func NewQuestionRepository(db *pgxpool.Pool) *QuestionRepository {
	return &QuestionRepository{
		db: db,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

func scanQuestion(row pgx.Row) (*models.Question, error) {
	q := &models.Question{}
	err := row.Scan(
		&q.ID, &q.Text, &q.Position, &q.FormType, &q.QuestionType,
		&q.IsActive, &q.CreatedAt, &q.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return q, nil
}

// Create inserts a new question into the bank
func (r *QuestionRepository) Create(ctx context.Context, q *models.Question) (int64, error) {
	now := time.Now()
	sql, args, err := r.sb.Insert("feedback_questions").
		Columns("text", "position", "form_type", "question_type", "is_active", "created_at", "updated_at").
		Values(q.Text, q.Position, q.FormType, q.QuestionType, q.IsActive, now, now).
		Suffix("RETURNING id").
		ToSql()

	if err != nil {
		logger.Error().Err(err).Msg("Error building create question SQL")
		return 0, fmt.Errorf("failed to build create question query: %w", err)
	}

	var id int64
	if err := r.db.QueryRow(ctx, sql, args...).Scan(&id); err != nil {
		logger.Error().Err(err).Msg("Error executing create question query")
		return 0, fmt.Errorf("error creating question: %w", err)
	}

	return id, nil
}

// GetByID retrieves a question by id
func (r *QuestionRepository) GetByID(ctx context.Context, id int64) (*models.Question, error) {
	sql, args, err := r.sb.Select(questionColumns).
		From("feedback_questions").
		Where(squirrel.Eq{"id": id}).
		Limit(1).
		ToSql()

	if err != nil {
		logger.Error().Err(err).Msg("Error building get question by ID SQL")
		return nil, fmt.Errorf("failed to build get question query: %w", err)
	}

	q, err := scanQuestion(r.db.QueryRow(ctx, sql, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrQuestionNotFound
		}
		logger.Error().Err(err).Int64("questionID", id).Msg("Error scanning question row")
		return nil, fmt.Errorf("error getting question by ID: %w", err)
	}

	return q, nil
}

// GetAll retrieves the question bank, optionally filtered by form type,
// ordered by display position.
func (r *QuestionRepository) GetAll(ctx context.Context, formType models.FormType) ([]*models.Question, error) {
	base := r.sb.Select(questionColumns).From("feedback_questions")
	if formType != "" {
		base = base.Where(squirrel.Eq{"form_type": formType})
	}

	sql, args, err := base.OrderBy("position ASC", "id ASC").ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building get all questions SQL")
		return nil, fmt.Errorf("failed to build get all questions query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Msg("Error executing get all questions query")
		return nil, fmt.Errorf("error querying questions: %w", err)
	}
	defer rows.Close()

	questions := []*models.Question{}
	for rows.Next() {
		q, err := scanQuestion(rows)
		if err != nil {
			logger.Error().Err(err).Msg("Error scanning question row during get all")
			return nil, fmt.Errorf("error scanning question row: %w", err)
		}
		questions = append(questions, q)
	}

	if err := rows.Err(); err != nil {
		logger.Error().Err(err).Msg("Error iterating question rows")
		return nil, fmt.Errorf("error iterating question rows: %w", err)
	}

	return questions, nil
}

// GetActiveByFormType retrieves the live questions a submission must answer
func (r *QuestionRepository) GetActiveByFormType(ctx context.Context, formType models.FormType) ([]*models.Question, error) {
	sql, args, err := r.sb.Select(questionColumns).
		From("feedback_questions").
		Where(squirrel.Eq{"form_type": formType, "is_active": true}).
		OrderBy("position ASC", "id ASC").
		ToSql()

	if err != nil {
		logger.Error().Err(err).Msg("Error building get active questions SQL")
		return nil, fmt.Errorf("failed to build get active questions query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Msg("Error executing get active questions query")
		return nil, fmt.Errorf("error querying questions: %w", err)
	}
	defer rows.Close()

	questions := []*models.Question{}
	for rows.Next() {
		q, err := scanQuestion(rows)
		if err != nil {
			logger.Error().Err(err).Msg("Error scanning question row")
			return nil, fmt.Errorf("error scanning question row: %w", err)
		}
		questions = append(questions, q)
	}

	if err := rows.Err(); err != nil {
		logger.Error().Err(err).Msg("Error iterating question rows")
		return nil, fmt.Errorf("error iterating question rows: %w", err)
	}

	return questions, nil
}

// Update updates an existing question
func (r *QuestionRepository) Update(ctx context.Context, q *models.Question) error {
	sql, args, err := r.sb.Update("feedback_questions").
		SetMap(map[string]interface{}{
			"text":          q.Text,
			"position":      q.Position,
			"form_type":     q.FormType,
			"question_type": q.QuestionType,
			"is_active":     q.IsActive,
			"updated_at":    time.Now(),
		}).
		Where(squirrel.Eq{"id": q.ID}).
		ToSql()

	if err != nil {
		logger.Error().Err(err).Msg("Error building update question SQL")
		return fmt.Errorf("failed to build update question query: %w", err)
	}

	cmdTag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Int64("questionID", q.ID).Msg("Error executing update question query")
		return fmt.Errorf("error updating question: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrQuestionNotFound
	}

	return nil
}

// Delete removes a question from the live bank. Stored responses keep their
// embedded copy of the text and type.
func (r *QuestionRepository) Delete(ctx context.Context, id int64) error {
	sql, args, err := r.sb.Delete("feedback_questions").
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		logger.Error().Err(err).Msg("Error building delete question SQL")
		return fmt.Errorf("failed to build delete question query: %w", err)
	}

	cmdTag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Int64("questionID", id).Msg("Error executing delete question query")
		return fmt.Errorf("error deleting question: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrQuestionNotFound
	}

	return nil
}
