package middleware

import (
	"errors"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/mihir/campuspulse/internal/app/models/dto"
	"github.com/mihir/campuspulse/internal/pkg/apperrors"
)

// HandleAPIError maps application errors onto HTTP responses. Every handler
// funnels service errors through here so codes stay consistent across the API.
func HandleAPIError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, apperrors.ErrUserNotFound),
		errors.Is(err, apperrors.ErrStudentNotFound),
		errors.Is(err, apperrors.ErrFormNotFound),
		errors.Is(err, apperrors.ErrQuestionNotFound),
		errors.Is(err, apperrors.ErrResponseNotFound),
		errors.Is(err, apperrors.ErrResourceNotFound):
		respondError(c, 404, dto.NewErrorDetail(dto.ErrorCodeResourceNotFound, "Resource not found"), err)
	case errors.Is(err, apperrors.ErrPermissionDenied):
		respondError(c, 403, dto.NewErrorDetail(dto.ErrorCodeForbidden, "Permission denied"), err)
	case errors.Is(err, apperrors.ErrInvalidCredentials):
		respondError(c, 401, dto.NewErrorDetail(dto.ErrorCodeInvalidCredentials, "Invalid credentials"), err)
	case errors.Is(err, apperrors.ErrAccountDisabled):
		respondError(c, 403, dto.NewErrorDetail(dto.ErrorCodeForbidden, "Account is disabled"), err)
	case errors.Is(err, apperrors.ErrTokenExpired):
		respondError(c, 401, dto.NewErrorDetail(dto.ErrorCodeExpiredToken, "Token expired"), err)
	case errors.Is(err, apperrors.ErrTokenInvalid), errors.Is(err, apperrors.ErrInvalidFormat):
		respondError(c, 401, dto.NewErrorDetail(dto.ErrorCodeInvalidToken, "Invalid token"), err)
	case errors.Is(err, apperrors.ErrTokenNotFound):
		respondError(c, 401, dto.NewErrorDetail(dto.ErrorCodeTokenNotFound, "Token not found"), err)
	case errors.Is(err, apperrors.ErrTokenRevoked):
		respondError(c, 401, dto.NewErrorDetail(dto.ErrorCodeInvalidToken, "Token revoked"), err)
	case errors.Is(err, apperrors.ErrNotEligible):
		respondError(c, 403, dto.NewErrorDetail(dto.ErrorCodeNotEligible, "Not eligible for this form"), err)
	case errors.Is(err, apperrors.ErrFormClosed):
		respondError(c, 409, dto.NewErrorDetail(dto.ErrorCodeFormClosed, "Form is closed"), err)
	case errors.Is(err, apperrors.ErrAlreadySubmitted):
		respondError(c, 409, dto.NewErrorDetail(dto.ErrorCodeAlreadySubmitted, "Feedback already submitted"), err)
	case errors.Is(err, apperrors.ErrInvalidRating):
		respondError(c, 400, dto.NewErrorDetail(dto.ErrorCodeInvalidRating, "Invalid rating"), err)
	case errors.Is(err, apperrors.ErrValidationFailed), errors.Is(err, apperrors.ErrBadRequest):
		respondError(c, 400, dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Validation failed"), err)
	case errors.Is(err, apperrors.ErrEmailAlreadyExists),
		errors.Is(err, apperrors.ErrStudentAlreadyExists),
		errors.Is(err, apperrors.ErrResourceAlreadyExists),
		errors.Is(err, apperrors.ErrConflict):
		respondError(c, 409, dto.NewErrorDetail(dto.ErrorCodeResourceAlreadyExists, "Resource already exists"), err)
	default:
		respondError(c, 500, dto.NewErrorDetail(dto.ErrorCodeInternalServer, "Internal server error"), nil)
	}
}

func respondError(c *gin.Context, status int, detail *dto.ErrorDetail, err error) {
	if err != nil {
		detail = detail.WithDetails(err.Error())
	}
	c.JSON(status, dto.APIResponse{
		Error:     detail,
		Timestamp: time.Now(),
	})
}
