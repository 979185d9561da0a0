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

// ReportController handles the admin reporting views
type ReportController struct {
	reportService services.ReportService
	logger        zerolog.Logger
}

// NewReportController creates a new ReportController
func NewReportController(reportService services.ReportService, logger zerolog.Logger) *ReportController {
	return &ReportController{
		reportService: reportService,
		logger:        logger,
	}
}

// GetFormReport aggregates one form
// @Summary Form report
// @Description Returns the form's overall 0-10 average, per-question raw and normalized averages, audience size and anonymous comments
// @Tags reports
// @Produce json
// @Security BearerAuth
// @Param id path int true "Form ID"
// @Success 200 {object} dto.APIResponse{data=dto.FormReport} "Report"
// @Failure 404 {object} dto.ErrorResponse "Form not found"
// @Router /reports/forms/{id} [get]
func (c *ReportController) GetFormReport(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	report, err := c.reportService.GetFormReport(ctx.Request.Context(), id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      report,
		Timestamp: time.Now(),
	})
}

// GetFacultyReport aggregates one faculty member's forms
// @Summary Faculty report
// @Description Returns the faculty member's response-count-weighted 0-10 overall with a per-form breakdown
// @Tags reports
// @Produce json
// @Security BearerAuth
// @Param email query string true "Faculty email"
// @Success 200 {object} dto.APIResponse{data=dto.FacultyReport} "Report"
// @Failure 404 {object} dto.ErrorResponse "No forms for this faculty member"
// @Router /reports/faculty [get]
func (c *ReportController) GetFacultyReport(ctx *gin.Context) {
	report, err := c.reportService.GetFacultyReport(ctx.Request.Context(), ctx.Query("email"))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      report,
		Timestamp: time.Now(),
	})
}

// GetCompletionReport builds the completion monitor
// @Summary Completion report
// @Description Returns, for every student, the active forms they are eligible for and which ones are still pending
// @Tags reports
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.APIResponse{data=dto.CompletionReport} "Report"
// @Router /reports/completion [get]
func (c *ReportController) GetCompletionReport(ctx *gin.Context) {
	report, err := c.reportService.GetCompletionReport(ctx.Request.Context())
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      report,
		Timestamp: time.Now(),
	})
}
