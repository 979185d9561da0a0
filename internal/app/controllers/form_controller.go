package controllers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/mihir/campuspulse/internal/app/models/dto"
	"github.com/mihir/campuspulse/internal/app/services"
	"github.com/mihir/campuspulse/internal/middleware"
	"github.com/mihir/campuspulse/internal/pkg/helpers"
)

// FormController handles feedback form administration
type FormController struct {
	formService services.FormService
	logger      zerolog.Logger
}

// NewFormController creates a new FormController
func NewFormController(formService services.FormService, logger zerolog.Logger) *FormController {
	return &FormController{
		formService: formService,
		logger:      logger,
	}
}

// CreateForm creates a single feedback form
// @Summary Create form
// @Description Creates one feedback form for a faculty/subject/class combination
// @Tags forms
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.CreateFormRequest true "Form information"
// @Success 201 {object} dto.APIResponse{data=models.FeedbackForm} "Form created"
// @Failure 400 {object} dto.ErrorResponse "Invalid request format"
// @Failure 409 {object} dto.ErrorResponse "Equivalent form already exists"
// @Router /forms [post]
func (c *FormController) CreateForm(ctx *gin.Context) {
	var req dto.CreateFormRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		c.logger.Warn().Err(err).Msg("Invalid create form payload")
		errorDetail := dto.HandleValidationError(err)
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	form, err := c.formService.CreateForm(ctx.Request.Context(), req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.APIResponse{
		Data:      form,
		Timestamp: time.Now(),
	})
}

// GenerateForms bulk-creates forms from timetable entries
// @Summary Generate forms
// @Description Creates one active form per timetable entry for an academic year. Entries that duplicate an existing form are skipped, not failed.
// @Tags forms
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.GenerateFormsRequest true "Timetable entries"
// @Success 201 {object} dto.APIResponse{data=dto.GenerateFormsResponse} "Generation outcome"
// @Failure 400 {object} dto.ErrorResponse "Invalid request format"
// @Router /forms/generate [post]
func (c *FormController) GenerateForms(ctx *gin.Context) {
	var req dto.GenerateFormsRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		c.logger.Warn().Err(err).Msg("Invalid generate forms payload")
		errorDetail := dto.HandleValidationError(err)
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	result, err := c.formService.GenerateForms(ctx.Request.Context(), req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.APIResponse{
		Data:      result,
		Timestamp: time.Now(),
	})
}

// GetForm retrieves one form by id
// @Summary Get form
// @Tags forms
// @Produce json
// @Security BearerAuth
// @Param id path int true "Form ID"
// @Success 200 {object} dto.APIResponse{data=models.FeedbackForm} "Form"
// @Failure 404 {object} dto.ErrorResponse "Form not found"
// @Router /forms/{id} [get]
func (c *FormController) GetForm(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	form, err := c.formService.GetFormByID(ctx.Request.Context(), id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      form,
		Timestamp: time.Now(),
	})
}

// ListForms lists forms with optional filters
// @Summary List forms
// @Description Lists forms, optionally filtered by academic year, semester, course and status
// @Tags forms
// @Produce json
// @Security BearerAuth
// @Param academicYear query string false "Filter by academic year"
// @Param semester query int false "Filter by semester"
// @Param course query string false "Filter by course"
// @Param status query string false "Filter by status" Enums(active, closed)
// @Param page query int false "Page number"
// @Param size query int false "Page size"
// @Success 200 {object} dto.APIResponse{data=dto.PaginatedResponse} "Forms"
// @Router /forms [get]
func (c *FormController) ListForms(ctx *gin.Context) {
	filter := dto.FormFilter{
		AcademicYear: ctx.Query("academicYear"),
		Course:       ctx.Query("course"),
		Status:       ctx.Query("status"),
	}
	if s := ctx.Query("semester"); s != "" {
		semester, err := strconv.Atoi(s)
		if err != nil || semester < 1 {
			errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid semester filter")
			ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
			return
		}
		filter.Semester = semester
	}

	page, size := helpers.ParsePaginationParams(ctx)
	offset, limit := helpers.CalculateOffsetLimit(page, size)

	forms, total, err := c.formService.ListForms(ctx.Request.Context(), filter, offset, limit)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data: dto.PaginatedResponse{
			Items:      forms,
			Pagination: helpers.NewPaginationInfo(total, page, limit),
		},
		Timestamp: time.Now(),
	})
}

// UpdateForm edits a form
// @Summary Update form
// @Tags forms
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Form ID"
// @Param request body dto.UpdateFormRequest true "Form information"
// @Success 200 {object} dto.APIResponse{data=models.FeedbackForm} "Form updated"
// @Failure 400 {object} dto.ErrorResponse "Invalid request format"
// @Failure 404 {object} dto.ErrorResponse "Form not found"
// @Router /forms/{id} [put]
func (c *FormController) UpdateForm(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	var req dto.UpdateFormRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		c.logger.Warn().Err(err).Msg("Invalid update form payload")
		errorDetail := dto.HandleValidationError(err)
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	form, err := c.formService.UpdateForm(ctx.Request.Context(), id, req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      form,
		Timestamp: time.Now(),
	})
}

// CloseForm ends a form's collection window
// @Summary Close form
// @Description Marks a form closed. Closed forms reject new submissions but stay reportable.
// @Tags forms
// @Produce json
// @Security BearerAuth
// @Param id path int true "Form ID"
// @Success 200 {object} dto.APIResponse{data=dto.SuccessResponse} "Form closed"
// @Failure 404 {object} dto.ErrorResponse "Form not found"
// @Router /forms/{id}/close [post]
func (c *FormController) CloseForm(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	if err := c.formService.CloseForm(ctx.Request.Context(), id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      dto.SuccessResponse{Message: "Form closed"},
		Timestamp: time.Now(),
	})
}

// DeleteForm removes a form
// @Summary Delete form
// @Tags forms
// @Produce json
// @Security BearerAuth
// @Param id path int true "Form ID"
// @Success 200 {object} dto.APIResponse{data=dto.SuccessResponse} "Form deleted"
// @Failure 404 {object} dto.ErrorResponse "Form not found"
// @Router /forms/{id} [delete]
func (c *FormController) DeleteForm(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	if err := c.formService.DeleteForm(ctx.Request.Context(), id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      dto.SuccessResponse{Message: "Form deleted"},
		Timestamp: time.Now(),
	})
}
