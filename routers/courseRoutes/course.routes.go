package courseRoutes

import (
	controllers "skillup/controllers/course"
	"skillup/middleware"
	validators "skillup/validators/course"

	"github.com/gofiber/fiber/v2"
)

// SetupCourseRoutes sets up all user-facing course routes
func SetupCourseRoutes(app *fiber.App) {
	courseGroup := app.Group("/course")

	// Public catalog; details show enrollment state when a token is sent
	courseGroup.Get("/list", validators.CourseList(), controllers.GetAllCourses)
	courseGroup.Get("/categories", controllers.GetCategories)
	courseGroup.Get("/:id", middleware.JWTOptionalMiddleware, validators.CourseID(), controllers.GetCourseDetails)

	// Enrollment
	courseGroup.Post("/:id/enroll", middleware.JWTMiddleware, validators.CourseID(), controllers.EnrollInCourse)
	courseGroup.Delete("/:id/enroll", middleware.JWTMiddleware, validators.CourseID(), controllers.UnenrollFromCourse)

	// Progress tracking
	courseGroup.Get("/:id/progress", middleware.JWTMiddleware, validators.CourseID(), controllers.GetUserProgress)

	lessonGroup := app.Group("/lesson")
	lessonGroup.Post("/:id/complete", middleware.JWTMiddleware, validators.LessonID(), controllers.MarkLessonComplete)

	// Certificates
	courseGroup.Post("/:id/certificate", middleware.JWTMiddleware, validators.CourseID(), controllers.RequestCertificate)

	// Public certificate verification and download, linked from cert URLs
	certGroup := app.Group("/api/certificates")
	certGroup.Get("/:uid/verify", validators.CertUID(), controllers.VerifyCertificate)
	certGroup.Get("/:uid/download", validators.CertUID(), controllers.DownloadCertificate)
}
