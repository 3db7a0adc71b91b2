package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/bimt/campushub/internal/app/models/dto"
	"github.com/bimt/campushub/internal/app/services"
	"github.com/bimt/campushub/internal/middleware"
)

// NoticeController handles announcement endpoints
type NoticeController struct {
	noticeService services.NoticeService
}

// NewNoticeController creates a new NoticeController
func NewNoticeController(noticeService services.NoticeService) *NoticeController {
	return &NoticeController{noticeService: noticeService}
}

// List returns public announcements
// @Summary List notices
// @Description Lists announcements pinned-first then newest-first; archived notices are hidden
// @Tags notices
// @Produce json
// @Success 200 {object} dto.APIResponse{data=[]models.Notice} "Notices"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /notices [get]
func (c *NoticeController) List(ctx *gin.Context) {
	notices, err := c.noticeService.List(ctx, false)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(notices))
}

// ListAll returns every announcement including archived ones
// @Summary List notices (admin)
// @Tags admin-notices
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.APIResponse{data=[]models.Notice} "Notices"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /admin/notices [get]
func (c *NoticeController) ListAll(ctx *gin.Context) {
	notices, err := c.noticeService.List(ctx, true)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(notices))
}

// GetByID returns one announcement
// @Summary Get notice
// @Tags notices
// @Produce json
// @Param id path int true "Notice ID"
// @Success 200 {object} dto.APIResponse{data=models.Notice} "Notice"
// @Failure 404 {object} dto.ErrorResponse "Notice not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /notices/{id} [get]
func (c *NoticeController) GetByID(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "Notice")
	if !ok {
		return
	}

	notice, err := c.noticeService.GetByID(ctx, id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(notice))
}

// Create publishes an announcement
// @Summary Create notice (admin)
// @Description Publishes an announcement; a data URI attachment is stored first
// @Tags admin-notices
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.CreateNoticeRequest true "Notice content"
// @Success 201 {object} dto.APIResponse{data=models.Notice} "Notice created"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /admin/notices [post]
func (c *NoticeController) Create(ctx *gin.Context) {
	var req dto.CreateNoticeRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid notice data")
		errorDetail = errorDetail.WithDetails(err.Error())
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	notice, err := c.noticeService.Create(ctx, middleware.UsernameFromContext(ctx), &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.NewSuccessResponse(notice))
}

// Update applies a partial update
// @Summary Update notice (admin)
// @Tags admin-notices
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Notice ID"
// @Param request body dto.UpdateNoticeRequest true "Fields to update"
// @Success 200 {object} dto.APIResponse{data=models.Notice} "Updated notice"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Failure 404 {object} dto.ErrorResponse "Notice not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /admin/notices/{id} [put]
func (c *NoticeController) Update(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "Notice")
	if !ok {
		return
	}

	var req dto.UpdateNoticeRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid notice data")
		errorDetail = errorDetail.WithDetails(err.Error())
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	notice, err := c.noticeService.Update(ctx, middleware.UsernameFromContext(ctx), id, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(notice))
}

// Delete removes an announcement
// @Summary Delete notice (admin)
// @Tags admin-notices
// @Produce json
// @Security BearerAuth
// @Param id path int true "Notice ID"
// @Success 200 {object} dto.APIResponse{data=dto.MessageResponse} "Deleted"
// @Failure 404 {object} dto.ErrorResponse "Notice not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /admin/notices/{id} [delete]
func (c *NoticeController) Delete(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "Notice")
	if !ok {
		return
	}

	if err := c.noticeService.Delete(ctx, middleware.UsernameFromContext(ctx), id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(dto.MessageResponse{Message: "notice deleted"}))
}
