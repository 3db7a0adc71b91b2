package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/bimt/campushub/internal/app/models/dto"
	"github.com/bimt/campushub/internal/app/services"
	"github.com/bimt/campushub/internal/middleware"
	"github.com/bimt/campushub/internal/pkg/helpers"
)

// SubmissionController handles the visitor draft pipeline
type SubmissionController struct {
	submissionService services.SubmissionService
}

// NewSubmissionController creates a new SubmissionController
func NewSubmissionController(submissionService services.SubmissionService) *SubmissionController {
	return &SubmissionController{submissionService: submissionService}
}

// Submit accepts a visitor draft
// @Summary Submit a draft
// @Description Stores a biography or resource draft for moderation; nested data URI payloads are uploaded first
// @Tags submissions
// @Accept json
// @Produce json
// @Param request body dto.CreateSubmissionRequest true "Draft content"
// @Success 201 {object} dto.APIResponse{data=models.Submission} "Draft stored as pending"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data or payload"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /submissions [post]
func (c *SubmissionController) Submit(ctx *gin.Context) {
	var req dto.CreateSubmissionRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid submission data")
		errorDetail = errorDetail.WithDetails(err.Error())
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	sub, err := c.submissionService.Submit(ctx, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.NewSuccessResponse(sub))
}

// List returns the moderation queue
// @Summary List submissions (admin)
// @Description Lists drafts newest-first, optionally filtered by status
// @Tags admin-submissions
// @Produce json
// @Security BearerAuth
// @Param status query string false "Status filter" Enums(pending, approved, rejected)
// @Param page query int false "Page number" default(1)
// @Param size query int false "Page size" default(20)
// @Success 200 {object} dto.APIResponse{data=[]models.Submission} "Queue page"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /admin/submissions [get]
func (c *SubmissionController) List(ctx *gin.Context) {
	page, size := helpers.ParsePaginationParams(ctx)

	subs, pagination, err := c.submissionService.List(ctx, ctx.Query("status"), page, size)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewPagedResponse(subs, pagination))
}

// GetByID returns one draft
// @Summary Get submission (admin)
// @Tags admin-submissions
// @Produce json
// @Security BearerAuth
// @Param id path int true "Submission ID"
// @Success 200 {object} dto.APIResponse{data=models.Submission} "Draft"
// @Failure 404 {object} dto.ErrorResponse "Submission not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /admin/submissions/{id} [get]
func (c *SubmissionController) GetByID(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "Submission")
	if !ok {
		return
	}

	sub, err := c.submissionService.GetByID(ctx, id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(sub))
}

// Review decides a pending draft
// @Summary Review submission (admin)
// @Description Approves or rejects a pending draft; approval materializes a student or resource
// @Tags admin-submissions
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Submission ID"
// @Param request body dto.ReviewSubmissionRequest true "Decision"
// @Success 200 {object} dto.APIResponse{data=dto.ReviewSubmissionResponse} "Decision applied"
// @Failure 400 {object} dto.ErrorResponse "Invalid decision"
// @Failure 404 {object} dto.ErrorResponse "Submission not found"
// @Failure 409 {object} dto.ErrorResponse "Submission already reviewed"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /admin/submissions/{id}/review [put]
func (c *SubmissionController) Review(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "Submission")
	if !ok {
		return
	}

	var req dto.ReviewSubmissionRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid review data")
		errorDetail = errorDetail.WithDetails(err.Error())
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	resp, err := c.submissionService.Review(ctx, middleware.UsernameFromContext(ctx), id, req.Decision)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(resp))
}
