package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/bimt/campushub/internal/app/models/dto"
	"github.com/bimt/campushub/internal/app/services"
	"github.com/bimt/campushub/internal/middleware"
)

// SiteConfigController handles the singleton site configuration endpoints
type SiteConfigController struct {
	siteConfigService services.SiteConfigService
}

// NewSiteConfigController creates a new SiteConfigController
func NewSiteConfigController(siteConfigService services.SiteConfigService) *SiteConfigController {
	return &SiteConfigController{siteConfigService: siteConfigService}
}

// Get returns the site configuration
// @Summary Get site config
// @Description Returns the site-wide configuration; zero-valued when never written
// @Tags site-config
// @Produce json
// @Success 200 {object} dto.APIResponse{data=models.SiteConfig} "Configuration"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /site-config [get]
func (c *SiteConfigController) Get(ctx *gin.Context) {
	cfg, err := c.siteConfigService.Get(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(cfg))
}

// Update upserts the site configuration
// @Summary Update site config (admin)
// @Description Upserts the singleton configuration row; a data URI logo is stored first
// @Tags admin-site-config
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.UpdateSiteConfigRequest true "Configuration"
// @Success 200 {object} dto.APIResponse{data=models.SiteConfig} "Updated configuration"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /admin/site-config [put]
func (c *SiteConfigController) Update(ctx *gin.Context) {
	var req dto.UpdateSiteConfigRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid configuration data")
		errorDetail = errorDetail.WithDetails(err.Error())
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	cfg, err := c.siteConfigService.Update(ctx, middleware.UsernameFromContext(ctx), &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(cfg))
}
