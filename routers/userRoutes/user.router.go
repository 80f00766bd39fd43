package userProfileRoutes

import (
	courseControllers "skillup/controllers/course"
	userProfileController "skillup/controllers/userControllers"
	"skillup/middleware"
	"skillup/models"
	courseValidator "skillup/validators/course"
	userProfileValidator "skillup/validators/userValidator"

	"github.com/gofiber/fiber/v2"
)

func SetupUserRoutes(app *fiber.App) {
	userGroup := app.Group("/user")

	userGroup.Get("/profile", middleware.JWTMiddleware, userProfileController.GetProfile)
	userGroup.Put("/profile", middleware.JWTMiddleware, userProfileValidator.UpdateProfile(), userProfileController.UpdateProfile)
	userGroup.Get("/dashboard", middleware.JWTMiddleware, userProfileController.StudentDashboard)

	userGroup.Get("/enrollments", middleware.JWTMiddleware, courseControllers.GetUserEnrollmentsList)
	userGroup.Get("/certificates", middleware.JWTMiddleware, courseControllers.GetUserCertificates)

	// Admin user management
	adminOnly := middleware.RequireRole(models.RoleAdmin)

	adminGroup := app.Group("/admin/user")
	adminGroup.Get("/list", middleware.JWTMiddleware, adminOnly, userProfileValidator.UserList(), userProfileController.GetAllUsers)
	adminGroup.Patch("/:id/role", middleware.JWTMiddleware, adminOnly, courseValidator.UpdateUserRole(), userProfileController.UpdateUserRole)
	adminGroup.Delete("/:id", middleware.JWTMiddleware, adminOnly, userProfileValidator.UserID(), userProfileController.DeleteUser)
}
