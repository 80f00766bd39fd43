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

// EnrollInCourse enrolls the authenticated student in a course.
func EnrollInCourse(c *fiber.Ctx) error {
	userID, ok := currentUserID(c)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	courseID := c.Locals("courseID").(uint)

	enrollments := courseService.NewEnrollmentService(database.Database.Db)
	enrollment, err := enrollments.Enroll(userID, courseID)
	if err != nil {
		return serviceErrorResponse(c, err)
	}

	// Confirmation email, best-effort
	var user models.User
	var course courseModels.Course
	if database.Database.Db.First(&user, userID).Error == nil &&
		database.Database.Db.First(&course, courseID).Error == nil {
		utils.SendEnrollmentEmail(user.Email, user.Name, course.Title)
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Enrolled in course successfully!", enrollment)
}

// UnenrollFromCourse removes the authenticated user's enrollment and all of
// their progress for the course.
func UnenrollFromCourse(c *fiber.Ctx) error {
	userID, ok := currentUserID(c)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	courseID := c.Locals("courseID").(uint)

	enrollments := courseService.NewEnrollmentService(database.Database.Db)
	if err := enrollments.Unenroll(userID, courseID); err != nil {
		return serviceErrorResponse(c, err)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Unenrolled from course successfully!", nil)
}

// GetUserEnrollmentsList gets all enrollments for the current user
func GetUserEnrollmentsList(c *fiber.Ctx) error {
	userID, ok := currentUserID(c)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	enrollments := courseService.NewEnrollmentService(database.Database.Db)
	result, err := enrollments.ListUserEnrollments(userID)
	if err != nil {
		return serviceErrorResponse(c, err)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Enrollments fetched successfully!", fiber.Map{
		"enrollments": result,
		"total":       len(result),
	})
}

// GetCourseEnrollments lists enrollments of a course for its instructor or an
// admin.
func GetCourseEnrollments(c *fiber.Ctx) error {
	userID, ok := currentUserID(c)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	courseID := c.Locals("courseID").(uint)

	var course courseModels.Course
	if err := database.Database.Db.Where("id = ? AND is_deleted = ?", courseID, false).First(&course).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Course not found!", nil)
	}

	// Instructors may only inspect their own courses
	var user models.User
	if err := database.Database.Db.First(&user, userID).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "User not found!", nil)
	}
	if user.Role == models.RoleInstructor && course.InstructorID != userID {
		return middleware.JsonResponse(c, fiber.StatusForbidden, false, "You do not own this course!", nil)
	}

	enrollments := courseService.NewEnrollmentService(database.Database.Db)
	result, err := enrollments.ListCourseEnrollments(courseID)
	if err != nil {
		return serviceErrorResponse(c, err)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Enrollments fetched successfully!", fiber.Map{
		"enrollments": result,
		"total":       len(result),
	})
}
