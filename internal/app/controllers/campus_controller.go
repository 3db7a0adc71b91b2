package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/bimt/campushub/internal/app/models/dto"
	"github.com/bimt/campushub/internal/app/services"
	"github.com/bimt/campushub/internal/middleware"
)

// CampusController handles the slideshow and memory album endpoints
type CampusController struct {
	campusService services.CampusService
}

// NewCampusController creates a new CampusController
func NewCampusController(campusService services.CampusService) *CampusController {
	return &CampusController{campusService: campusService}
}

// ListImages returns the homepage slideshow
// @Summary List campus images
// @Tags campus
// @Produce json
// @Success 200 {object} dto.APIResponse{data=[]models.CampusImage} "Slideshow"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /campus/images [get]
func (c *CampusController) ListImages(ctx *gin.Context) {
	images, err := c.campusService.ListImages(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(images))
}

// UploadImage adds one slide
// @Summary Upload campus image (admin)
// @Description Adds a slideshow image; the collection is capped at 5 slides
// @Tags admin-campus
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.UploadCampusImageRequest true "Image payload"
// @Success 201 {object} dto.APIResponse{data=models.CampusImage} "Slide added"
// @Failure 400 {object} dto.ErrorResponse "Invalid payload or slide cap reached"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /admin/campus/images [post]
func (c *CampusController) UploadImage(ctx *gin.Context) {
	var req dto.UploadCampusImageRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid image data")
		errorDetail = errorDetail.WithDetails(err.Error())
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	img, err := c.campusService.UploadImage(ctx, middleware.UsernameFromContext(ctx), req.Image)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.NewSuccessResponse(img))
}

// DeleteImage removes one slide
// @Summary Delete campus image (admin)
// @Tags admin-campus
// @Produce json
// @Security BearerAuth
// @Param id path int true "Image ID"
// @Success 200 {object} dto.APIResponse{data=dto.MessageResponse} "Deleted"
// @Failure 404 {object} dto.ErrorResponse "Image not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /admin/campus/images/{id} [delete]
func (c *CampusController) DeleteImage(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "Image")
	if !ok {
		return
	}

	if err := c.campusService.DeleteImage(ctx, middleware.UsernameFromContext(ctx), id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(dto.MessageResponse{Message: "image deleted"}))
}

// ListMemories returns the memory albums
// @Summary List campus memories
// @Tags campus
// @Produce json
// @Success 200 {object} dto.APIResponse{data=[]models.CampusMemory} "Albums newest-first"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /campus/memories [get]
func (c *CampusController) ListMemories(ctx *gin.Context) {
	memories, err := c.campusService.ListMemories(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(memories))
}

// CreateMemory creates an album
// @Summary Create campus memory (admin)
// @Description Creates a year-grouped album holding at most 15 images
// @Tags admin-campus
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.CreateMemoryRequest true "Album content"
// @Success 201 {object} dto.APIResponse{data=models.CampusMemory} "Album created"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data or image cap exceeded"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /admin/campus/memories [post]
func (c *CampusController) CreateMemory(ctx *gin.Context) {
	var req dto.CreateMemoryRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid memory data")
		errorDetail = errorDetail.WithDetails(err.Error())
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	mem, err := c.campusService.CreateMemory(ctx, middleware.UsernameFromContext(ctx), &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.NewSuccessResponse(mem))
}

// UpdateMemory applies a partial update to an album
// @Summary Update campus memory (admin)
// @Tags admin-campus
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Memory ID"
// @Param request body dto.UpdateMemoryRequest true "Fields to update"
// @Success 200 {object} dto.APIResponse{data=models.CampusMemory} "Updated album"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data or image cap exceeded"
// @Failure 404 {object} dto.ErrorResponse "Memory not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /admin/campus/memories/{id} [put]
func (c *CampusController) UpdateMemory(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "Memory")
	if !ok {
		return
	}

	var req dto.UpdateMemoryRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid memory data")
		errorDetail = errorDetail.WithDetails(err.Error())
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	mem, err := c.campusService.UpdateMemory(ctx, middleware.UsernameFromContext(ctx), id, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(mem))
}

// DeleteMemory removes an album
// @Summary Delete campus memory (admin)
// @Tags admin-campus
// @Produce json
// @Security BearerAuth
// @Param id path int true "Memory ID"
// @Success 200 {object} dto.APIResponse{data=dto.MessageResponse} "Deleted"
// @Failure 404 {object} dto.ErrorResponse "Memory not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /admin/campus/memories/{id} [delete]
func (c *CampusController) DeleteMemory(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "Memory")
	if !ok {
		return
	}

	if err := c.campusService.DeleteMemory(ctx, middleware.UsernameFromContext(ctx), id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(dto.MessageResponse{Message: "memory deleted"}))
}
