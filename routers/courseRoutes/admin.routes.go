package courseRoutes

import (
	controllers "skillup/controllers/course"
	"skillup/middleware"
	"skillup/models"
	validators "skillup/validators/course"

	"github.com/gofiber/fiber/v2"
)

// SetupAdminCourseRoutes sets up instructor and admin course management routes
func SetupAdminCourseRoutes(app *fiber.App) {
	manageCourses := middleware.RequireRole(models.RoleInstructor, models.RoleAdmin)
	adminOnly := middleware.RequireRole(models.RoleAdmin)

	instructorGroup := app.Group("/instructor/course")

	// Course CRUD
	instructorGroup.Post("/create", middleware.JWTMiddleware, manageCourses, validators.CreateCourse(), controllers.CreateCourse)
	instructorGroup.Put("/:id", middleware.JWTMiddleware, manageCourses, validators.UpdateCourse(), controllers.UpdateCourse)
	instructorGroup.Delete("/:id", middleware.JWTMiddleware, manageCourses, validators.CourseID(), controllers.DeleteCourse)
	instructorGroup.Get("/list", middleware.JWTMiddleware, manageCourses, controllers.GetInstructorCourses)

	// Module management
	instructorGroup.Post("/:id/module", middleware.JWTMiddleware, manageCourses, validators.CreateModule(), controllers.CreateModule)

	moduleGroup := app.Group("/instructor/module")
	moduleGroup.Put("/:id", middleware.JWTMiddleware, manageCourses, validators.UpdateModule(), controllers.UpdateModule)
	moduleGroup.Delete("/:id", middleware.JWTMiddleware, manageCourses, validators.ModuleID(), controllers.DeleteModule)
	moduleGroup.Patch("/:id/reorder", middleware.JWTMiddleware, manageCourses, validators.Reorder("moduleID"), controllers.ReorderModule)

	// Lesson management
	moduleGroup.Post("/:id/lesson", middleware.JWTMiddleware, manageCourses, validators.CreateLesson(), controllers.CreateLesson)

	lessonGroup := app.Group("/instructor/lesson")
	lessonGroup.Put("/:id", middleware.JWTMiddleware, manageCourses, validators.UpdateLesson(), controllers.UpdateLesson)
	lessonGroup.Delete("/:id", middleware.JWTMiddleware, manageCourses, validators.LessonID(), controllers.DeleteLesson)
	lessonGroup.Patch("/:id/reorder", middleware.JWTMiddleware, manageCourses, validators.Reorder("lessonID"), controllers.ReorderLesson)

	// Enrollment inspection and per-course analytics
	instructorGroup.Get("/:id/enrollments", middleware.JWTMiddleware, manageCourses, validators.CourseID(), controllers.GetCourseEnrollments)
	instructorGroup.Get("/:id/certificates", middleware.JWTMiddleware, manageCourses, validators.CourseID(), controllers.GetCourseCertificatesList)
	instructorGroup.Get("/:id/analytics", middleware.JWTMiddleware, manageCourses, validators.CourseID(), controllers.GetCourseAnalytics)

	// Admin course moderation
	adminGroup := app.Group("/admin/course")
	adminGroup.Post("/:id/feature", middleware.JWTMiddleware, adminOnly, validators.CourseID(), controllers.FeatureCourse)
	adminGroup.Delete("/:id/feature", middleware.JWTMiddleware, adminOnly, validators.CourseID(), controllers.UnfeatureCourse)
	adminGroup.Post("/:id/activate", middleware.JWTMiddleware, adminOnly, validators.CourseID(), controllers.ActivateCourse)
	adminGroup.Post("/:id/deactivate", middleware.JWTMiddleware, adminOnly, validators.CourseID(), controllers.DeactivateCourse)
	adminGroup.Delete("/:id", middleware.JWTMiddleware, adminOnly, validators.CourseID(), controllers.DeleteCourse)

	// Platform dashboard
	dashGroup := app.Group("/admin/dashboard")
	dashGroup.Get("/analytics", middleware.JWTMiddleware, adminOnly, controllers.GetPlatformAnalytics)
	dashGroup.Get("/popular", middleware.JWTMiddleware, adminOnly, controllers.GetPopularCourses)
}
