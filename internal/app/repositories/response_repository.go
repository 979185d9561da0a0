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
	"github.com/mihir/campuspulse/internal/pkg/dberrors"
	"github.com/mihir/campuspulse/internal/pkg/logger"
)

// deletedStudentMarker is appended to a response comment when the owning
// student record is removed; the response itself survives anonymized.
const deletedStudentMarker = "[student record deleted]"

// ResponseRepository handles feedback response database operations
type ResponseRepository struct {
	db *pgxpool.Pool
	sb squirrel.StatementBuilderType
}

// NewResponseRepository creates a new ResponseRepository
func NewResponseRepository(db *pgxpool.Pool) *ResponseRepository {
	return &ResponseRepository{
		db: db,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

// Create stores a response and its items in one transaction. The unique
// constraint on (form_id, student_id) enforces the one-response-per-pair
// invariant at the storage layer.
func (r *ResponseRepository) Create(ctx context.Context, resp *models.FeedbackResponse) (int64, error) {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	sql, args, err := r.sb.Insert("feedback_responses").
		Columns("form_id", "student_id", "comment", "submitted_at").
		Values(resp.FormID, resp.StudentID, resp.Comment, time.Now()).
		Suffix("RETURNING id").
		ToSql()

	if err != nil {
		logger.Error().Err(err).Msg("Error building create response SQL")
		return 0, fmt.Errorf("failed to build create response query: %w", err)
	}

	var id int64
	if err := tx.QueryRow(ctx, sql, args...).Scan(&id); err != nil {
		if dberrors.IsDuplicateConstraintError(err, "feedback_responses_form_id_student_id_key") {
			return 0, apperrors.ErrAlreadySubmitted
		}
		logger.Error().Err(err).Int64("formID", resp.FormID).Msg("Error executing create response query")
		return 0, fmt.Errorf("error creating response: %w", err)
	}

	for _, item := range resp.Items {
		itemSql, itemArgs, err := r.sb.Insert("response_items").
			Columns("response_id", "parameter_id", "rating", "question_type", "question_text").
			Values(id, item.ParameterID, item.Rating, item.QuestionType, item.QuestionText).
			ToSql()

		if err != nil {
			logger.Error().Err(err).Msg("Error building create response item SQL")
			return 0, fmt.Errorf("failed to build create response item query: %w", err)
		}

		if _, err := tx.Exec(ctx, itemSql, itemArgs...); err != nil {
			logger.Error().Err(err).Int64("responseID", id).Msg("Error executing create response item query")
			return 0, fmt.Errorf("error creating response item: %w", err)
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return 0, fmt.Errorf("failed to commit response transaction: %w", err)
	}

	return id, nil
}

// Exists checks whether a student already submitted for a form
func (r *ResponseRepository) Exists(ctx context.Context, formID, studentID int64) (bool, error) {
	sql, args, err := r.sb.Select("1").
		From("feedback_responses").
		Where(squirrel.Eq{"form_id": formID, "student_id": studentID}).
		Prefix("SELECT EXISTS (").Suffix(")").
		Limit(1).
		ToSql()

	if err != nil {
		logger.Error().Err(err).Msg("Error building response exists SQL")
		return false, fmt.Errorf("failed to build response exists query: %w", err)
	}

	var exists bool
	err = r.db.QueryRow(ctx, sql, args...).Scan(&exists)
	if err != nil && !errors.Is(err, pgx.ErrNoRows) {
		logger.Error().Err(err).Msg("Error checking response existence")
		return false, fmt.Errorf("error checking response existence: %w", err)
	}

	return exists, nil
}

// GetByFormID retrieves every response for a form, items included
func (r *ResponseRepository) GetByFormID(ctx context.Context, formID int64) ([]*models.FeedbackResponse, error) {
	sql, args, err := r.sb.Select("id", "form_id", "student_id", "comment", "submitted_at").
		From("feedback_responses").
		Where(squirrel.Eq{"form_id": formID}).
		OrderBy("submitted_at ASC").
		ToSql()

	if err != nil {
		logger.Error().Err(err).Msg("Error building get responses by form SQL")
		return nil, fmt.Errorf("failed to build get responses query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Int64("formID", formID).Msg("Error executing get responses query")
		return nil, fmt.Errorf("error querying responses: %w", err)
	}
	defer rows.Close()

	responses := []*models.FeedbackResponse{}
	byID := map[int64]*models.FeedbackResponse{}
	for rows.Next() {
		resp := &models.FeedbackResponse{}
		if err := rows.Scan(&resp.ID, &resp.FormID, &resp.StudentID, &resp.Comment, &resp.SubmittedAt); err != nil {
			logger.Error().Err(err).Msg("Error scanning response row")
			return nil, fmt.Errorf("error scanning response row: %w", err)
		}
		responses = append(responses, resp)
		byID[resp.ID] = resp
	}
	if err := rows.Err(); err != nil {
		logger.Error().Err(err).Msg("Error iterating response rows")
		return nil, fmt.Errorf("error iterating response rows: %w", err)
	}

	if len(responses) == 0 {
		return responses, nil
	}

	ids := make([]int64, 0, len(responses))
	for _, resp := range responses {
		ids = append(ids, resp.ID)
	}

	itemSql, itemArgs, err := r.sb.Select("id", "response_id", "parameter_id", "rating", "question_type", "question_text").
		From("response_items").
		Where(squirrel.Eq{"response_id": ids}).
		OrderBy("response_id ASC", "id ASC").
		ToSql()

	if err != nil {
		logger.Error().Err(err).Msg("Error building get response items SQL")
		return nil, fmt.Errorf("failed to build get response items query: %w", err)
	}

	itemRows, err := r.db.Query(ctx, itemSql, itemArgs...)
	if err != nil {
		logger.Error().Err(err).Msg("Error executing get response items query")
		return nil, fmt.Errorf("error querying response items: %w", err)
	}
	defer itemRows.Close()

	for itemRows.Next() {
		item := models.ResponseItem{}
		if err := itemRows.Scan(&item.ID, &item.ResponseID, &item.ParameterID, &item.Rating, &item.QuestionType, &item.QuestionText); err != nil {
			logger.Error().Err(err).Msg("Error scanning response item row")
			return nil, fmt.Errorf("error scanning response item row: %w", err)
		}
		if resp, ok := byID[item.ResponseID]; ok {
			resp.Items = append(resp.Items, item)
		}
	}
	if err := itemRows.Err(); err != nil {
		logger.Error().Err(err).Msg("Error iterating response item rows")
		return nil, fmt.Errorf("error iterating response item rows: %w", err)
	}

	return responses, nil
}

// GetAllSubmissionPairs retrieves every (form_id, student_id) pair with a
// stored response. Anonymized responses (student deleted) are excluded: they
// no longer belong to any monitorable student.
func (r *ResponseRepository) GetAllSubmissionPairs(ctx context.Context) ([][2]int64, error) {
	sql, args, err := r.sb.Select("form_id", "student_id").
		From("feedback_responses").
		Where(squirrel.NotEq{"student_id": nil}).
		ToSql()

	if err != nil {
		logger.Error().Err(err).Msg("Error building get submission pairs SQL")
		return nil, fmt.Errorf("failed to build get submission pairs query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Msg("Error executing get submission pairs query")
		return nil, fmt.Errorf("error querying submission pairs: %w", err)
	}
	defer rows.Close()

	pairs := [][2]int64{}
	for rows.Next() {
		var formID, studentID int64
		if err := rows.Scan(&formID, &studentID); err != nil {
			logger.Error().Err(err).Msg("Error scanning submission pair row")
			return nil, fmt.Errorf("error scanning submission pair row: %w", err)
		}
		pairs = append(pairs, [2]int64{formID, studentID})
	}
	if err := rows.Err(); err != nil {
		logger.Error().Err(err).Msg("Error iterating submission pair rows")
		return nil, fmt.Errorf("error iterating submission pair rows: %w", err)
	}

	return pairs, nil
}

// GetSubmittedFormIDs retrieves the form ids a student has responded to
func (r *ResponseRepository) GetSubmittedFormIDs(ctx context.Context, studentID int64) ([]int64, error) {
	sql, args, err := r.sb.Select("form_id").
		From("feedback_responses").
		Where(squirrel.Eq{"student_id": studentID}).
		ToSql()

	if err != nil {
		logger.Error().Err(err).Msg("Error building get submitted form ids SQL")
		return nil, fmt.Errorf("failed to build get submitted form ids query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Int64("studentID", studentID).Msg("Error executing get submitted form ids query")
		return nil, fmt.Errorf("error querying submitted form ids: %w", err)
	}
	defer rows.Close()

	ids := []int64{}
	for rows.Next() {
		var id int64
		if err := rows.Scan(&id); err != nil {
			logger.Error().Err(err).Msg("Error scanning submitted form id row")
			return nil, fmt.Errorf("error scanning submitted form id row: %w", err)
		}
		ids = append(ids, id)
	}
	if err := rows.Err(); err != nil {
		logger.Error().Err(err).Msg("Error iterating submitted form id rows")
		return nil, fmt.Errorf("error iterating submitted form id rows: %w", err)
	}

	return ids, nil
}

// AnonymizeStudent detaches every response of a deleted student and appends
// the deletion marker to the comment, keeping the feedback itself intact.
func (r *ResponseRepository) AnonymizeStudent(ctx context.Context, studentID int64) error {
	sql, args, err := r.sb.Update("feedback_responses").
		Set("student_id", nil).
		Set("comment", squirrel.Expr("TRIM(CONCAT(COALESCE(comment, ''), ' ', ?))", deletedStudentMarker)).
		Where(squirrel.Eq{"student_id": studentID}).
		ToSql()

	if err != nil {
		logger.Error().Err(err).Msg("Error building anonymize student SQL")
		return fmt.Errorf("failed to build anonymize student query: %w", err)
	}

	if _, err := r.db.Exec(ctx, sql, args...); err != nil {
		logger.Error().Err(err).Int64("studentID", studentID).Msg("Error executing anonymize student query")
		return fmt.Errorf("error anonymizing student responses: %w", err)
	}

	return nil
}

// CountByFormID counts the responses stored for a form
func (r *ResponseRepository) CountByFormID(ctx context.Context, formID int64) (int, error) {
	sql, args, err := r.sb.Select("COUNT(*)").
		From("feedback_responses").
		Where(squirrel.Eq{"form_id": formID}).
		ToSql()

	if err != nil {
		logger.Error().Err(err).Msg("Error building count responses SQL")
		return 0, fmt.Errorf("failed to build count responses query: %w", err)
	}

	var count int
	if err := r.db.QueryRow(ctx, sql, args...).Scan(&count); err != nil {
		logger.Error().Err(err).Int64("formID", formID).Msg("Error counting responses")
		return 0, fmt.Errorf("error counting responses: %w", err)
	}

	return count, nil
}
