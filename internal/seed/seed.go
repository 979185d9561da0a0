package seed

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"

	"github.com/mihir/campuspulse/internal/app/models"
	"github.com/mihir/campuspulse/internal/app/repositories"
	"github.com/mihir/campuspulse/internal/config"
	"github.com/mihir/campuspulse/internal/pkg/apperrors"
	"github.com/mihir/campuspulse/internal/pkg/auth"
	"github.com/mihir/campuspulse/internal/pkg/rating"
)

// defaultQuestion is one entry of the built-in question banks
type defaultQuestion struct {
	text         string
	formType     models.FormType
	questionType rating.QuestionType
}

// The banks new installations start with. Admins edit them afterwards; stored
// responses are unaffected because each answer embeds its question snapshot.
var defaultQuestions = []defaultQuestion{
	{"Does the teacher complete the syllabus in time?", models.FormTypeTheory, rating.QuestionTypeYesNo},
	{"Is the teacher regular and punctual for lectures?", models.FormTypeTheory, rating.QuestionTypeYesNo},
	{"How well does the teacher explain difficult concepts?", models.FormTypeTheory, rating.QuestionTypeScale3},
	{"How approachable is the teacher for doubts outside class?", models.FormTypeTheory, rating.QuestionTypeScale3},
	{"Rate the teacher's overall effectiveness in this subject", models.FormTypeTheory, rating.QuestionTypeScale10},
	{"Are the lab experiments conducted as per the schedule?", models.FormTypeLab, rating.QuestionTypeYesNo},
	{"Does the teacher assist during practical sessions?", models.FormTypeLab, rating.QuestionTypeYesNo},
	{"How well are the lab objectives explained before each session?", models.FormTypeLab, rating.QuestionTypeScale3},
	{"Rate the overall quality of the practical sessions", models.FormTypeLab, rating.QuestionTypeScale10},
}

// CreateDefaultData provisions the admin account and the question banks on an
// empty database. Both steps are idempotent.
func CreateDefaultData(ctx context.Context, dbPool *pgxpool.Pool, cfg *config.Config, lgr zerolog.Logger) error {
	userRepo := repositories.NewUserRepository(dbPool)
	questionRepo := repositories.NewQuestionRepository(dbPool)

	var finalErr error

	if err := seedAdminUser(ctx, userRepo, cfg, lgr); err != nil {
		finalErr = errors.Join(finalErr, err)
	}
	if err := seedQuestionBanks(ctx, questionRepo, lgr); err != nil {
		finalErr = errors.Join(finalErr, err)
	}

	return finalErr
}

func seedAdminUser(ctx context.Context, userRepo *repositories.UserRepository, cfg *config.Config, lgr zerolog.Logger) error {
	exists, err := userRepo.EmailExists(ctx, cfg.Portal.AdminEmail)
	if err != nil {
		lgr.Error().Err(err).Msg("Error checking if admin user exists")
		return err
	}
	if exists {
		lgr.Debug().Msg("Admin user already exists, skipping creation")
		return nil
	}

	password := cfg.Portal.AdminPassword
	if password == "" {
		return errors.New("PORTAL_ADMIN_PASSWORD must be set to create the admin account")
	}

	hashedPassword, err := auth.HashPassword(password)
	if err != nil {
		lgr.Error().Err(err).Msg("Error hashing admin password")
		return err
	}

	admin := &models.User{
		Email:     cfg.Portal.AdminEmail,
		Password:  hashedPassword,
		FullName:  "Portal Administrator",
		RoleType:  models.RoleAdmin,
		IsActive:  true,
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}

	adminID, err := userRepo.CreateUser(ctx, admin)
	if err != nil && !errors.Is(err, apperrors.ErrEmailAlreadyExists) {
		lgr.Error().Err(err).Msg("Error creating admin user")
		return err
	}

	lgr.Info().Int64("adminID", adminID).Msg("Default admin user created")
	return nil
}

func seedQuestionBanks(ctx context.Context, questionRepo *repositories.QuestionRepository, lgr zerolog.Logger) error {
	existing, err := questionRepo.GetAll(ctx, "")
	if err != nil {
		lgr.Error().Err(err).Msg("Error checking question banks")
		return err
	}
	if len(existing) > 0 {
		lgr.Debug().Msg("Question banks already populated, skipping seed")
		return nil
	}

	lgr.Info().Msg("Seeding default question banks...")

	position := map[models.FormType]int{}
	var finalErr error
	for _, q := range defaultQuestions {
		position[q.formType]++
		question := &models.Question{
			Text:         q.text,
			Position:     position[q.formType],
			FormType:     q.formType,
			QuestionType: q.questionType,
			IsActive:     true,
		}
		if _, err := questionRepo.Create(ctx, question); err != nil {
			lgr.Error().Err(err).Str("text", q.text).Msg("Error seeding question")
			finalErr = errors.Join(finalErr, err)
		}
	}

	return finalErr
}
