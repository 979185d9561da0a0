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
	"github.com/mihir/campuspulse/internal/app/models/dto"
	"github.com/mihir/campuspulse/internal/pkg/apperrors"
	"github.com/mihir/campuspulse/internal/pkg/dberrors"
	"github.com/mihir/campuspulse/internal/pkg/logger"
)

const formColumns = "id, subject_name, faculty_name, faculty_email, semester, course, division, batch, academic_year, status, created_at, updated_at"

// FormRepository handles feedback form database operations
type FormRepository struct {
	db *pgxpool.Pool
	sb squirrel.StatementBuilderType
}

// NewFormRepository creates a new FormRepository
func NewFormRepository(db *pgxpool.Pool) *FormRepository {
	return &FormRepository{
		db: db,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

func scanForm(row pgx.Row) (*models.FeedbackForm, error) {
	f := &models.FeedbackForm{}
	err := row.Scan(
		&f.ID, &f.SubjectName, &f.FacultyName, &f.FacultyEmail, &f.Semester,
		&f.Course, &f.Division, &f.Batch, &f.AcademicYear, &f.Status,
		&f.CreatedAt, &f.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return f, nil
}

// Create inserts a new feedback form
func (r *FormRepository) Create(ctx context.Context, f *models.FeedbackForm) (int64, error) {
	now := time.Now()
	sql, args, err := r.sb.Insert("feedback_forms").
		Columns("subject_name", "faculty_name", "faculty_email", "semester", "course", "division", "batch", "academic_year", "status", "created_at", "updated_at").
		Values(f.SubjectName, f.FacultyName, f.FacultyEmail, f.Semester, f.Course, f.Division, f.Batch, f.AcademicYear, f.Status, now, now).
		Suffix("RETURNING id").
		ToSql()

	if err != nil {
		logger.Error().Err(err).Msg("Error building create form SQL")
		return 0, fmt.Errorf("failed to build create form query: %w", err)
	}

	var id int64
	err = r.db.QueryRow(ctx, sql, args...).Scan(&id)
	if err != nil {
		if dberrors.IsDuplicateKeyError(err) {
			return 0, apperrors.ErrResourceAlreadyExists
		}
		logger.Error().Err(err).Str("subject", f.SubjectName).Msg("Error executing create form query")
		return 0, fmt.Errorf("error creating form: %w", err)
	}

	return id, nil
}

// GetByID retrieves a feedback form by id
func (r *FormRepository) GetByID(ctx context.Context, id int64) (*models.FeedbackForm, error) {
	sql, args, err := r.sb.Select(formColumns).
		From("feedback_forms").
		Where(squirrel.Eq{"id": id}).
		Limit(1).
		ToSql()

	if err != nil {
		logger.Error().Err(err).Msg("Error building get form by ID SQL")
		return nil, fmt.Errorf("failed to build get form query: %w", err)
	}

	f, err := scanForm(r.db.QueryRow(ctx, sql, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrFormNotFound
		}
		logger.Error().Err(err).Int64("formID", id).Msg("Error scanning form row")
		return nil, fmt.Errorf("error getting form by ID: %w", err)
	}

	return f, nil
}

// List retrieves forms matching the filter, paginated, with the total count
func (r *FormRepository) List(ctx context.Context, filter dto.FormFilter, offset uint64, limit int) ([]*models.FeedbackForm, int64, error) {
	base := r.sb.Select(formColumns).From("feedback_forms")
	countBase := r.sb.Select("COUNT(*)").From("feedback_forms")

	if filter.AcademicYear != "" {
		base = base.Where(squirrel.Eq{"academic_year": filter.AcademicYear})
		countBase = countBase.Where(squirrel.Eq{"academic_year": filter.AcademicYear})
	}
	if filter.Semester > 0 {
		base = base.Where(squirrel.Eq{"semester": filter.Semester})
		countBase = countBase.Where(squirrel.Eq{"semester": filter.Semester})
	}
	if filter.Course != "" {
		base = base.Where(squirrel.Expr("UPPER(course) = UPPER(?)", filter.Course))
		countBase = countBase.Where(squirrel.Expr("UPPER(course) = UPPER(?)", filter.Course))
	}
	if filter.Status != "" {
		base = base.Where(squirrel.Eq{"status": filter.Status})
		countBase = countBase.Where(squirrel.Eq{"status": filter.Status})
	}

	countSql, countArgs, err := countBase.ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building count forms SQL")
		return nil, 0, fmt.Errorf("failed to build count forms query: %w", err)
	}

	var total int64
	if err := r.db.QueryRow(ctx, countSql, countArgs...).Scan(&total); err != nil {
		logger.Error().Err(err).Msg("Error counting forms")
		return nil, 0, fmt.Errorf("error counting forms: %w", err)
	}

	sql, args, err := base.
		OrderBy("academic_year DESC", "semester ASC", "subject_name ASC").
		Offset(offset).
		Limit(uint64(limit)).
		ToSql()

	if err != nil {
		logger.Error().Err(err).Msg("Error building list forms SQL")
		return nil, 0, fmt.Errorf("failed to build list forms query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Msg("Error executing list forms query")
		return nil, 0, fmt.Errorf("error querying forms: %w", err)
	}
	defer rows.Close()

	forms := []*models.FeedbackForm{}
	for rows.Next() {
		f, err := scanForm(rows)
		if err != nil {
			logger.Error().Err(err).Msg("Error scanning form row during list")
			return nil, 0, fmt.Errorf("error scanning form row: %w", err)
		}
		forms = append(forms, f)
	}

	if err := rows.Err(); err != nil {
		logger.Error().Err(err).Msg("Error iterating form rows")
		return nil, 0, fmt.Errorf("error iterating form rows: %w", err)
	}

	return forms, total, nil
}

// GetActive retrieves every active form
func (r *FormRepository) GetActive(ctx context.Context) ([]*models.FeedbackForm, error) {
	return r.getAllWhere(ctx, squirrel.Eq{"status": models.FormStatusActive})
}

// GetByFacultyEmail retrieves every form belonging to one faculty member
func (r *FormRepository) GetByFacultyEmail(ctx context.Context, email string) ([]*models.FeedbackForm, error) {
	return r.getAllWhere(ctx, squirrel.Expr("UPPER(faculty_email) = UPPER(?)", email))
}

// GetAll retrieves every form
func (r *FormRepository) GetAll(ctx context.Context) ([]*models.FeedbackForm, error) {
	return r.getAllWhere(ctx, nil)
}

func (r *FormRepository) getAllWhere(ctx context.Context, pred interface{}) ([]*models.FeedbackForm, error) {
	base := r.sb.Select(formColumns).From("feedback_forms")
	if pred != nil {
		base = base.Where(pred)
	}
	sql, args, err := base.OrderBy("id ASC").ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building get forms SQL")
		return nil, fmt.Errorf("failed to build get forms query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Msg("Error executing get forms query")
		return nil, fmt.Errorf("error querying forms: %w", err)
	}
	defer rows.Close()

	forms := []*models.FeedbackForm{}
	for rows.Next() {
		f, err := scanForm(rows)
		if err != nil {
			logger.Error().Err(err).Msg("Error scanning form row")
			return nil, fmt.Errorf("error scanning form row: %w", err)
		}
		forms = append(forms, f)
	}

	if err := rows.Err(); err != nil {
		logger.Error().Err(err).Msg("Error iterating form rows")
		return nil, fmt.Errorf("error iterating form rows: %w", err)
	}

	return forms, nil
}

// Update updates an existing feedback form
func (r *FormRepository) Update(ctx context.Context, f *models.FeedbackForm) error {
	sql, args, err := r.sb.Update("feedback_forms").
		SetMap(map[string]interface{}{
			"subject_name":  f.SubjectName,
			"faculty_name":  f.FacultyName,
			"faculty_email": f.FacultyEmail,
			"semester":      f.Semester,
			"course":        f.Course,
			"division":      f.Division,
			"batch":         f.Batch,
			"academic_year": f.AcademicYear,
			"updated_at":    time.Now(),
		}).
		Where(squirrel.Eq{"id": f.ID}).
		ToSql()

	if err != nil {
		logger.Error().Err(err).Msg("Error building update form SQL")
		return fmt.Errorf("failed to build update form query: %w", err)
	}

	cmdTag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Int64("formID", f.ID).Msg("Error executing update form query")
		return fmt.Errorf("error updating form: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrFormNotFound
	}

	return nil
}

// SetStatus transitions a form between active and closed
func (r *FormRepository) SetStatus(ctx context.Context, id int64, status models.FormStatus) error {
	sql, args, err := r.sb.Update("feedback_forms").
		Set("status", status).
		Set("updated_at", time.Now()).
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		logger.Error().Err(err).Msg("Error building set form status SQL")
		return fmt.Errorf("failed to build set form status query: %w", err)
	}

	cmdTag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Int64("formID", id).Msg("Error executing set form status query")
		return fmt.Errorf("error setting form status: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrFormNotFound
	}

	return nil
}

// Delete removes a feedback form and, via cascade, its responses
func (r *FormRepository) Delete(ctx context.Context, id int64) error {
	sql, args, err := r.sb.Delete("feedback_forms").
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		logger.Error().Err(err).Msg("Error building delete form SQL")
		return fmt.Errorf("failed to build delete form query: %w", err)
	}

	cmdTag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Int64("formID", id).Msg("Error executing delete form query")
		return fmt.Errorf("error deleting form: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrFormNotFound
	}

	return nil
}
