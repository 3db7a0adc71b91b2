package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/bimt/campushub/internal/app/models/dto"
	"github.com/bimt/campushub/internal/app/services"
	"github.com/bimt/campushub/internal/middleware"
	"github.com/bimt/campushub/internal/pkg/helpers"
)

// TeamController handles operator management and audit trail endpoints
type TeamController struct {
	teamService     services.TeamService
	auditLogService services.AuditLogService
}

// NewTeamController creates a new TeamController
func NewTeamController(teamService services.TeamService, auditLogService services.AuditLogService) *TeamController {
	return &TeamController{
		teamService:     teamService,
		auditLogService: auditLogService,
	}
}

// List returns every operator
// @Summary List team members (admin)
// @Description Lists operators with activity scores and resolved profile links
// @Tags admin-team
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.APIResponse{data=[]dto.TeamMemberResponse} "Operators"
// @Failure 403 {object} dto.ErrorResponse "Super admin access required"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /admin/team [get]
func (c *TeamController) List(ctx *gin.Context) {
	members, err := c.teamService.List(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(members))
}

// Create registers a new operator
// @Summary Create team member (admin)
// @Tags admin-team
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.CreateTeamMemberRequest true "New operator"
// @Success 201 {object} dto.APIResponse{data=models.TeamMember} "Operator created"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Failure 403 {object} dto.ErrorResponse "Super admin access required"
// @Failure 409 {object} dto.ErrorResponse "Username already exists"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /admin/team [post]
func (c *TeamController) Create(ctx *gin.Context) {
	var req dto.CreateTeamMemberRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid team member data")
		errorDetail = errorDetail.WithDetails(err.Error())
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	member, err := c.teamService.Create(ctx, middleware.UsernameFromContext(ctx), &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.NewSuccessResponse(member))
}

// UpdateOwnProfile lets the authenticated operator edit their own profile
// @Summary Update own admin profile
// @Tags admin-team
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.UpdateOwnProfileRequest true "Profile fields"
// @Success 200 {object} dto.APIResponse{data=models.TeamMember} "Updated profile"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /admin/team/me [put]
func (c *TeamController) UpdateOwnProfile(ctx *gin.Context) {
	var req dto.UpdateOwnProfileRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid profile data")
		errorDetail = errorDetail.WithDetails(err.Error())
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	member, err := c.teamService.UpdateOwnProfile(ctx, middleware.MemberIDFromContext(ctx), &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(member))
}

// Delete removes an operator
// @Summary Delete team member (admin)
// @Tags admin-team
// @Produce json
// @Security BearerAuth
// @Param id path int true "Member ID"
// @Success 200 {object} dto.APIResponse{data=dto.MessageResponse} "Deleted"
// @Failure 400 {object} dto.ErrorResponse "Cannot delete own account"
// @Failure 403 {object} dto.ErrorResponse "Super admin access required"
// @Failure 404 {object} dto.ErrorResponse "Member not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /admin/team/{id} [delete]
func (c *TeamController) Delete(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "Member")
	if !ok {
		return
	}

	if err := c.teamService.Delete(ctx, middleware.UsernameFromContext(ctx), id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(dto.MessageResponse{Message: "team member deleted"}))
}

// AuditLogs returns the audit trail
// @Summary List audit logs (admin)
// @Description Lists audit entries newest-first
// @Tags admin-team
// @Produce json
// @Security BearerAuth
// @Param page query int false "Page number" default(1)
// @Param size query int false "Page size" default(20)
// @Success 200 {object} dto.APIResponse{data=[]models.AuditLogEntry} "Audit page"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /admin/audit-logs [get]
func (c *TeamController) AuditLogs(ctx *gin.Context) {
	page, size := helpers.ParsePaginationParams(ctx)

	entries, pagination, err := c.auditLogService.List(ctx, page, size)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewPagedResponse(entries, pagination))
}
