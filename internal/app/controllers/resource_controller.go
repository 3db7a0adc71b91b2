package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/bimt/campushub/internal/app/models/dto"
	"github.com/bimt/campushub/internal/app/services"
	"github.com/bimt/campushub/internal/middleware"
	"github.com/bimt/campushub/internal/pkg/helpers"
)

// ResourceController handles downloadable asset endpoints
type ResourceController struct {
	resourceService services.ResourceService
}

// NewResourceController creates a new ResourceController
func NewResourceController(resourceService services.ResourceService) *ResourceController {
	return &ResourceController{resourceService: resourceService}
}

// List returns the public resource library
// @Summary List resources
// @Description Lists resources newest-first with optional department, type and subject filters
// @Tags resources
// @Produce json
// @Param department query string false "Department (exact match)"
// @Param type query string false "Resource type" Enums(note, thesis, paper)
// @Param subject query string false "Subject (substring match)"
// @Param page query int false "Page number" default(1)
// @Param size query int false "Page size" default(20)
// @Success 200 {object} dto.APIResponse{data=[]models.Resource} "Resource page"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /resources [get]
func (c *ResourceController) List(ctx *gin.Context) {
	page, size := helpers.ParsePaginationParams(ctx)
	filter := &dto.ResourceFilterRequest{
		Department: ctx.Query("department"),
		Type:       ctx.Query("type"),
		Subject:    ctx.Query("subject"),
		Page:       page,
		PageSize:   size,
	}

	resources, pagination, err := c.resourceService.List(ctx, filter)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewPagedResponse(resources, pagination))
}

// GetByID returns one resource
// @Summary Get resource
// @Tags resources
// @Produce json
// @Param id path int true "Resource ID"
// @Success 200 {object} dto.APIResponse{data=models.Resource} "Resource"
// @Failure 404 {object} dto.ErrorResponse "Resource not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /resources/{id} [get]
func (c *ResourceController) GetByID(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "Resource")
	if !ok {
		return
	}

	res, err := c.resourceService.GetByID(ctx, id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(res))
}

// Create publishes a resource
// @Summary Create resource (admin)
// @Description Publishes a downloadable asset; a data URI file payload is stored first
// @Tags admin-resources
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.CreateResourceRequest true "Resource content"
// @Success 201 {object} dto.APIResponse{data=models.Resource} "Resource created"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /admin/resources [post]
func (c *ResourceController) Create(ctx *gin.Context) {
	var req dto.CreateResourceRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid resource data")
		errorDetail = errorDetail.WithDetails(err.Error())
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	res, err := c.resourceService.Create(ctx, middleware.UsernameFromContext(ctx), &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.NewSuccessResponse(res))
}

// Update applies a partial update
// @Summary Update resource (admin)
// @Tags admin-resources
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Resource ID"
// @Param request body dto.UpdateResourceRequest true "Fields to update"
// @Success 200 {object} dto.APIResponse{data=models.Resource} "Updated resource"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Failure 404 {object} dto.ErrorResponse "Resource not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /admin/resources/{id} [put]
func (c *ResourceController) Update(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "Resource")
	if !ok {
		return
	}

	var req dto.UpdateResourceRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid resource data")
		errorDetail = errorDetail.WithDetails(err.Error())
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	res, err := c.resourceService.Update(ctx, middleware.UsernameFromContext(ctx), id, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(res))
}

// Delete removes a resource
// @Summary Delete resource (admin)
// @Tags admin-resources
// @Produce json
// @Security BearerAuth
// @Param id path int true "Resource ID"
// @Success 200 {object} dto.APIResponse{data=dto.MessageResponse} "Deleted"
// @Failure 404 {object} dto.ErrorResponse "Resource not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /admin/resources/{id} [delete]
func (c *ResourceController) Delete(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "Resource")
	if !ok {
		return
	}

	if err := c.resourceService.Delete(ctx, middleware.UsernameFromContext(ctx), id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(dto.MessageResponse{Message: "resource deleted"}))
}
