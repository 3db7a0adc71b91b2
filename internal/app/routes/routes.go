package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/bimt/campushub/internal/app/controllers"
	"github.com/bimt/campushub/internal/middleware"
)

// SetupRouter configures all application routes
func SetupRouter(
	router *gin.Engine,
	authController *controllers.AuthController,
	studentController *controllers.StudentController,
	submissionController *controllers.SubmissionController,
	noticeController *controllers.NoticeController,
	resourceController *controllers.ResourceController,
	campusController *controllers.CampusController,
	siteConfigController *controllers.SiteConfigController,
	teamController *controllers.TeamController,
	authMiddleware *middleware.AuthMiddleware,
) {
	v1 := router.Group("/api/v1")

	// --- Public routes ---
	auth := v1.Group("/auth")
	{
		auth.POST("/login", authController.Login)
		auth.POST("/refresh", authController.RefreshToken)
		auth.POST("/logout", authController.Logout)
	}

	students := v1.Group("/students")
	{
		students.GET("", studentController.List)
		students.GET("/:slug", studentController.GetBySlug)
		students.GET("/:slug/edit", studentController.GetForEdit)
		students.PUT("/:slug", studentController.SelfEdit)
	}

	v1.POST("/submissions", submissionController.Submit)

	notices := v1.Group("/notices")
	{
		notices.GET("", noticeController.List)
		notices.GET("/:id", noticeController.GetByID)
	}

	resources := v1.Group("/resources")
	{
		resources.GET("", resourceController.List)
		resources.GET("/:id", resourceController.GetByID)
	}

	campus := v1.Group("/campus")
	{
		campus.GET("/images", campusController.ListImages)
		campus.GET("/memories", campusController.ListMemories)
	}

	v1.GET("/site-config", siteConfigController.Get)

	// --- Admin routes (moderator and super_admin) ---
	admin := v1.Group("/admin")
	admin.Use(authMiddleware.JWTAuth(), authMiddleware.ModeratorRequired())
	{
		admin.GET("/me", authController.Me)

		admin.GET("/submissions", submissionController.List)
		admin.GET("/submissions/:id", submissionController.GetByID)
		admin.PUT("/submissions/:id/review", submissionController.Review)

		admin.PUT("/students/:id", studentController.AdminUpdate)
		admin.DELETE("/students/:id", studentController.Delete)
		admin.POST("/students/:id/toggle-lock", studentController.ToggleLock)
		admin.POST("/students/:id/toggle-status", studentController.ToggleStatus)
		admin.POST("/students/:id/toggle-featured", studentController.ToggleFeatured)

		admin.GET("/notices", noticeController.ListAll)
		admin.POST("/notices", noticeController.Create)
		admin.PUT("/notices/:id", noticeController.Update)
		admin.DELETE("/notices/:id", noticeController.Delete)

		admin.POST("/resources", resourceController.Create)
		admin.PUT("/resources/:id", resourceController.Update)
		admin.DELETE("/resources/:id", resourceController.Delete)

		admin.POST("/campus/images", campusController.UploadImage)
		admin.DELETE("/campus/images/:id", campusController.DeleteImage)
		admin.POST("/campus/memories", campusController.CreateMemory)
		admin.PUT("/campus/memories/:id", campusController.UpdateMemory)
		admin.DELETE("/campus/memories/:id", campusController.DeleteMemory)

		admin.PUT("/site-config", siteConfigController.Update)

		admin.PUT("/team/me", teamController.UpdateOwnProfile)
		admin.GET("/audit-logs", teamController.AuditLogs)

		// Operator management requires super_admin
		team := admin.Group("/team")
		team.Use(authMiddleware.SuperAdminRequired())
		{
			team.GET("", teamController.List)
			team.POST("", teamController.Create)
			team.DELETE("/:id", teamController.Delete)
		}
	}
}
