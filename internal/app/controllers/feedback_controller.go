package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/mihir/campuspulse/internal/app/models/dto"
	"github.com/mihir/campuspulse/internal/app/services"
	"github.com/mihir/campuspulse/internal/middleware"
)

// FeedbackController handles the student-facing feedback flow
type FeedbackController struct {
	feedbackService services.FeedbackService
	logger          zerolog.Logger
}

// NewFeedbackController creates a new FeedbackController
func NewFeedbackController(feedbackService services.FeedbackService, logger zerolog.Logger) *FeedbackController {
	return &FeedbackController{
		feedbackService: feedbackService,
		logger:          logger,
	}
}

// GetEligibleForms lists the caller's pending forms
// @Summary Eligible forms
// @Description Lists the active forms the caller's enrollment matches and that the caller has not yet submitted
// @Tags feedback
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.APIResponse{data=[]dto.EligibleFormResponse} "Pending forms"
// @Failure 401 {object} dto.ErrorResponse "Authentication required"
// @Failure 404 {object} dto.ErrorResponse "No student record linked to the account"
// @Router /forms/eligible [get]
func (c *FeedbackController) GetEligibleForms(ctx *gin.Context) {
	userID, ok := middleware.UserID(ctx)
	if !ok {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeUnauthorized, "Authentication required")
		ctx.JSON(http.StatusUnauthorized, dto.NewErrorResponse(errorDetail))
		return
	}

	forms, err := c.feedbackService.GetEligibleForms(ctx.Request.Context(), userID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      forms,
		Timestamp: time.Now(),
	})
}

// SubmitFeedback stores the caller's submission for a form
// @Summary Submit feedback
// @Description Validates and stores one submission. The form must be active, the caller eligible, every active question answered exactly once, and each rating inside its question's recording scale.
// @Tags feedback
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Form ID"
// @Param request body dto.SubmitFeedbackRequest true "Ratings and optional comment"
// @Success 201 {object} dto.APIResponse{data=models.FeedbackResponse} "Feedback stored"
// @Failure 400 {object} dto.ErrorResponse "Invalid rating or incomplete answer set"
// @Failure 403 {object} dto.ErrorResponse "Not eligible for this form"
// @Failure 409 {object} dto.ErrorResponse "Form closed or already submitted"
// @Router /forms/{id}/responses [post]
func (c *FeedbackController) SubmitFeedback(ctx *gin.Context) {
	userID, ok := middleware.UserID(ctx)
	if !ok {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeUnauthorized, "Authentication required")
		ctx.JSON(http.StatusUnauthorized, dto.NewErrorResponse(errorDetail))
		return
	}

	formID, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	var req dto.SubmitFeedbackRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		c.logger.Warn().Err(err).Msg("Invalid submit feedback payload")
		errorDetail := dto.HandleValidationError(err)
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	response, err := c.feedbackService.SubmitFeedback(ctx.Request.Context(), userID, formID, req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.APIResponse{
		Data:      response,
		Timestamp: time.Now(),
	})
}
