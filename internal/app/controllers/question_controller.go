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

// QuestionController handles question bank administration
type QuestionController struct {
	questionService services.QuestionService
	logger          zerolog.Logger
}

// NewQuestionController creates a new QuestionController
func NewQuestionController(questionService services.QuestionService, logger zerolog.Logger) *QuestionController {
	return &QuestionController{
		questionService: questionService,
		logger:          logger,
	}
}

// CreateQuestion adds a question to the bank
// @Summary Create question
// @Description Adds a question to the live bank for theory or lab forms
// @Tags questions
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.CreateQuestionRequest true "Question information"
// @Success 201 {object} dto.APIResponse{data=models.Question} "Question created"
// @Failure 400 {object} dto.ErrorResponse "Invalid request format"
// @Router /questions [post]
func (c *QuestionController) CreateQuestion(ctx *gin.Context) {
	var req dto.CreateQuestionRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		c.logger.Warn().Err(err).Msg("Invalid create question payload")
		errorDetail := dto.HandleValidationError(err)
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	question, err := c.questionService.CreateQuestion(ctx.Request.Context(), req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.APIResponse{
		Data:      question,
		Timestamp: time.Now(),
	})
}

// ListQuestions lists the bank
// @Summary List questions
// @Description Lists the question bank, optionally filtered by form type
// @Tags questions
// @Produce json
// @Security BearerAuth
// @Param formType query string false "Filter by form type" Enums(theory, lab)
// @Success 200 {object} dto.APIResponse{data=[]models.Question} "Questions"
// @Router /questions [get]
func (c *QuestionController) ListQuestions(ctx *gin.Context) {
	questions, err := c.questionService.GetQuestions(ctx.Request.Context(), ctx.Query("formType"))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      questions,
		Timestamp: time.Now(),
	})
}

// UpdateQuestion edits a bank question
// @Summary Update question
// @Description Edits a bank question. Stored responses keep the text and type they were answered under.
// @Tags questions
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Question ID"
// @Param request body dto.UpdateQuestionRequest true "Question information"
// @Success 200 {object} dto.APIResponse{data=models.Question} "Question updated"
// @Failure 400 {object} dto.ErrorResponse "Invalid request format"
// @Failure 404 {object} dto.ErrorResponse "Question not found"
// @Router /questions/{id} [put]
func (c *QuestionController) UpdateQuestion(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	var req dto.UpdateQuestionRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		c.logger.Warn().Err(err).Msg("Invalid update question payload")
		errorDetail := dto.HandleValidationError(err)
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	question, err := c.questionService.UpdateQuestion(ctx.Request.Context(), id, req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      question,
		Timestamp: time.Now(),
	})
}

// DeleteQuestion removes a question from the bank
// @Summary Delete question
// @Tags questions
// @Produce json
// @Security BearerAuth
// @Param id path int true "Question ID"
// @Success 200 {object} dto.APIResponse{data=dto.SuccessResponse} "Question deleted"
// @Failure 404 {object} dto.ErrorResponse "Question not found"
// @Router /questions/{id} [delete]
func (c *QuestionController) DeleteQuestion(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	if err := c.questionService.DeleteQuestion(ctx.Request.Context(), id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      dto.SuccessResponse{Message: "Question deleted"},
		Timestamp: time.Now(),
	})
}
