package controllers

import (
	"skillup/database"
	"skillup/middleware"
	"skillup/models"
	courseModels "skillup/models/course"
	courseService "skillup/services/course"
	"skillup/utils"

	"github.com/gofiber/fiber/v2"
)

// MarkLessonComplete records a lesson completion for the authenticated user,
// recomputes the course aggregate and, on first-time completion, triggers
// certificate issuance, the completion email and the webhook. All three
// follow-ups are best-effort; the progress update succeeds regardless.
func MarkLessonComplete(c *fiber.Ctx) error {
	userID, ok := currentUserID(c)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	lessonID := c.Locals("lessonID").(uint)

	db := database.Database.Db
	ledger := courseService.NewProgressService(db)
	catalog := courseService.NewCatalogService(db)
	enrollments := courseService.NewEnrollmentService(db)

	progress, err := ledger.MarkComplete(userID, lessonID)
	if err != nil {
		return serviceErrorResponse(c, err)
	}

	courseID, err := catalog.GetLessonOwningCourse(lessonID)
	if err != nil {
		return serviceErrorResponse(c, err)
	}

	summary, err := enrollments.RecomputeProgress(userID, courseID)
	if err != nil {
		return serviceErrorResponse(c, err)
	}

	if summary.FirstCompletion {
		certificates := courseService.NewCertificateService(db)
		certificate := certificates.AutoIssue(userID, courseID)

		certUID := ""
		if certificate != nil {
			certUID = certificate.CertUID

			var user models.User
			var course courseModels.Course
			if db.First(&user, userID).Error == nil && db.First(&course, courseID).Error == nil {
				utils.SendCertificateEmail(user.Email, user.Name, course.Title, certificate.CertUID)
			}
		}

		utils.NotifyCourseCompletion(userID, courseID, certUID)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Lesson marked as completed successfully!", fiber.Map{
		"progress": progress,
		"course":   summary,
	})
}

// GetUserProgress returns the authenticated user's progress summary for a
// course, recomputed from the ledger.
func GetUserProgress(c *fiber.Ctx) error {
	userID, ok := currentUserID(c)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	courseID := c.Locals("courseID").(uint)

	enrollments := courseService.NewEnrollmentService(database.Database.Db)
	summary, err := enrollments.RecomputeProgress(userID, courseID)
	if err != nil {
		return serviceErrorResponse(c, err)
	}

	enrollment, err := enrollments.GetEnrollment(userID, courseID)
	if err != nil {
		return serviceErrorResponse(c, err)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Progress fetched successfully!", fiber.Map{
		"summary":    summary,
		"enrollment": enrollment,
	})
}
