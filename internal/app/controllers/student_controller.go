package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/bimt/campushub/internal/app/models/dto"
	"github.com/bimt/campushub/internal/app/services"
	"github.com/bimt/campushub/internal/middleware"
	"github.com/bimt/campushub/internal/pkg/apperrors"
	"github.com/bimt/campushub/internal/pkg/helpers"
)

// StudentController handles the public directory and its admin endpoints
type StudentController struct {
	studentService services.StudentService
}

// NewStudentController creates a new StudentController
func NewStudentController(studentService services.StudentService) *StudentController {
	return &StudentController{studentService: studentService}
}

// List returns the public directory
// @Summary List students
// @Description Lists directory entries with optional department, intake and name filters
// @Tags students
// @Produce json
// @Param department query string false "Department (exact match)"
// @Param intake query string false "Intake (substring match)"
// @Param search query string false "Name search (substring match)"
// @Param page query int false "Page number" default(1)
// @Param size query int false "Page size" default(20)
// @Success 200 {object} dto.APIResponse{data=[]models.Student} "Directory page"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /students [get]
func (c *StudentController) List(ctx *gin.Context) {
	page, size := helpers.ParsePaginationParams(ctx)
	filter := &dto.StudentFilterRequest{
		Department: ctx.Query("department"),
		Intake:     ctx.Query("intake"),
		Search:     ctx.Query("search"),
		Page:       page,
		PageSize:   size,
	}

	students, pagination, err := c.studentService.List(ctx, filter)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewPagedResponse(students, pagination))
}

// GetBySlug returns one public profile and counts the view
// @Summary Get student profile
// @Description Retrieves a profile by slug and increments its view counter
// @Tags students
// @Produce json
// @Param slug path string true "Profile slug"
// @Success 200 {object} dto.APIResponse{data=models.Student} "Profile"
// @Failure 404 {object} dto.ErrorResponse "Student not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /students/{slug} [get]
func (c *StudentController) GetBySlug(ctx *gin.Context) {
	student, err := c.studentService.GetBySlug(ctx, ctx.Param("slug"), true)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(student))
}

// GetForEdit returns the editable record for an unlocked profile
// @Summary Load profile for self-editing
// @Description Returns the editable record, or a locked error while the profile is locked
// @Tags students
// @Produce json
// @Param slug path string true "Profile slug"
// @Success 200 {object} dto.APIResponse{data=models.Student} "Editable profile"
// @Failure 404 {object} dto.ErrorResponse "Student not found"
// @Failure 423 {object} dto.ErrorResponse "Profile is locked"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /students/{slug}/edit [get]
func (c *StudentController) GetForEdit(ctx *gin.Context) {
	student, err := c.studentService.GetBySlug(ctx, ctx.Param("slug"), false)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	if student.IsLocked {
		middleware.HandleAPIError(ctx, apperrors.ErrStudentLocked)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(student))
}

// SelfEdit applies a one-shot self-service profile edit
// @Summary Self-edit profile
// @Description Applies a self-service edit to an unlocked profile and re-locks it
// @Tags students
// @Accept json
// @Produce json
// @Param slug path string true "Profile slug"
// @Param request body dto.SelfEditRequest true "Profile fields"
// @Success 200 {object} dto.APIResponse{data=models.Student} "Updated profile"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Failure 404 {object} dto.ErrorResponse "Student not found"
// @Failure 423 {object} dto.ErrorResponse "Profile is locked"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /students/{slug} [put]
func (c *StudentController) SelfEdit(ctx *gin.Context) {
	var req dto.SelfEditRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid profile data")
		errorDetail = errorDetail.WithDetails(err.Error())
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	student, err := c.studentService.SelfEdit(ctx, ctx.Param("slug"), &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(student))
}

// AdminUpdate applies a partial update through the admin console
// @Summary Update student (admin)
// @Description Applies a partial update; the slug is immutable
// @Tags admin-students
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Student ID"
// @Param request body dto.AdminUpdateStudentRequest true "Fields to update"
// @Success 200 {object} dto.APIResponse{data=models.Student} "Updated student"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Failure 404 {object} dto.ErrorResponse "Student not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /admin/students/{id} [put]
func (c *StudentController) AdminUpdate(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "Student")
	if !ok {
		return
	}

	var req dto.AdminUpdateStudentRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid student data")
		errorDetail = errorDetail.WithDetails(err.Error())
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	student, err := c.studentService.AdminUpdate(ctx, middleware.UsernameFromContext(ctx), id, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(student))
}

// ToggleLock flips the self-edit lock
// @Summary Toggle profile lock
// @Tags admin-students
// @Produce json
// @Security BearerAuth
// @Param id path int true "Student ID"
// @Success 200 {object} dto.APIResponse "New lock state"
// @Failure 404 {object} dto.ErrorResponse "Student not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /admin/students/{id}/toggle-lock [post]
func (c *StudentController) ToggleLock(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "Student")
	if !ok {
		return
	}

	locked, err := c.studentService.ToggleLock(ctx, middleware.UsernameFromContext(ctx), id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(gin.H{"isLocked": locked}))
}

// ToggleStatus flips a profile between active and suspended
// @Summary Toggle student status
// @Tags admin-students
// @Produce json
// @Security BearerAuth
// @Param id path int true "Student ID"
// @Success 200 {object} dto.APIResponse "New status"
// @Failure 404 {object} dto.ErrorResponse "Student not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /admin/students/{id}/toggle-status [post]
func (c *StudentController) ToggleStatus(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "Student")
	if !ok {
		return
	}

	status, err := c.studentService.ToggleStatus(ctx, middleware.UsernameFromContext(ctx), id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(gin.H{"status": status}))
}

// ToggleFeatured flips homepage featuring
// @Summary Toggle featured flag
// @Tags admin-students
// @Produce json
// @Security BearerAuth
// @Param id path int true "Student ID"
// @Success 200 {object} dto.APIResponse "New featured state"
// @Failure 404 {object} dto.ErrorResponse "Student not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /admin/students/{id}/toggle-featured [post]
func (c *StudentController) ToggleFeatured(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "Student")
	if !ok {
		return
	}

	featured, err := c.studentService.ToggleFeatured(ctx, middleware.UsernameFromContext(ctx), id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(gin.H{"isFeatured": featured}))
}

// Delete removes a directory entry
// @Summary Delete student (admin)
// @Tags admin-students
// @Produce json
// @Security BearerAuth
// @Param id path int true "Student ID"
// @Success 200 {object} dto.APIResponse{data=dto.MessageResponse} "Deleted"
// @Failure 404 {object} dto.ErrorResponse "Student not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /admin/students/{id} [delete]
func (c *StudentController) Delete(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "Student")
	if !ok {
		return
	}

	if err := c.studentService.Delete(ctx, middleware.UsernameFromContext(ctx), id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(dto.MessageResponse{Message: "student deleted"}))
}

// parseIDParam parses the :id path parameter, writing a validation error on failure
func parseIDParam(ctx *gin.Context, noun string) (int64, bool) {
	id, err := strconv.ParseInt(ctx.Param("id"), 10, 64)
	if err != nil || id < 1 {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, noun+" ID must be a valid number")
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return 0, false
	}
	return id, true
}
