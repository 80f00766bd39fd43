package controllers

import (
	"skillup/database"
	"skillup/middleware"
	"skillup/models"
	courseModels "skillup/models/course"
	courseValidator "skillup/validators/course"

	"github.com/gofiber/fiber/v2"
)

// instructorOwnsCourse loads a course and checks ownership for instructors.
// Admins pass regardless of ownership.
func instructorOwnsCourse(c *fiber.Ctx, userID, courseID uint) (*courseModels.Course, bool) {
	var course courseModels.Course
	if err := database.Database.Db.Where("id = ? AND is_deleted = ?", courseID, false).First(&course).Error; err != nil {
		middleware.JsonResponse(c, fiber.StatusNotFound, false, "Course not found!", nil)
		return nil, false
	}

	var user models.User
	if err := database.Database.Db.First(&user, userID).Error; err != nil {
		middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "User not found!", nil)
		return nil, false
	}

	if user.Role != models.RoleAdmin && course.InstructorID != userID {
		middleware.JsonResponse(c, fiber.StatusForbidden, false, "You do not own this course!", nil)
		return nil, false
	}

	return &course, true
}

// CreateCourse creates a course owned by the authenticated instructor.
func CreateCourse(c *fiber.Ctx) error {
	userID, ok := currentUserID(c)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	reqData, ok := c.Locals("validatedCourse").(*courseValidator.CourseRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	course := courseModels.Course{
		Title:        reqData.Title,
		Description:  reqData.Description,
		Category:     reqData.Category,
		ThumbnailURL: reqData.ThumbnailURL,
		InstructorID: userID,
	}

	if err := database.Database.Db.Create(&course).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to create course!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Course created successfully!", course)
}

// UpdateCourse updates a course the instructor owns.
func UpdateCourse(c *fiber.Ctx) error {
	userID, ok := currentUserID(c)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	courseID := c.Locals("courseID").(uint)
	reqData, ok := c.Locals("validatedCourse").(*courseValidator.CourseRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	course, ok := instructorOwnsCourse(c, userID, courseID)
	if !ok {
		return nil
	}

	course.Title = reqData.Title
	course.Description = reqData.Description
	course.Category = reqData.Category
	course.ThumbnailURL = reqData.ThumbnailURL

	if err := database.Database.Db.Save(course).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to update course!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Course updated successfully!", course)
}

// DeleteCourse soft-deletes a course the instructor owns.
func DeleteCourse(c *fiber.Ctx) error {
	userID, ok := currentUserID(c)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	courseID := c.Locals("courseID").(uint)

	course, ok := instructorOwnsCourse(c, userID, courseID)
	if !ok {
		return nil
	}

	course.IsDeleted = true
	course.Active = false
	if err := database.Database.Db.Save(course).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to delete course!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Course deleted successfully!", nil)
}

// GetInstructorCourses lists the authenticated instructor's own courses.
func GetInstructorCourses(c *fiber.Ctx) error {
	userID, ok := currentUserID(c)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	var courses []courseModels.Course
	if err := database.Database.Db.Where("instructor_id = ? AND is_deleted = ?", userID, false).
		Order("created_at desc").Find(&courses).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch courses!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Courses fetched successfully!", fiber.Map{
		"courses": courses,
		"total":   len(courses),
	})
}

// setCourseFlag flips a single boolean column on a course. Admin only.
func setCourseFlag(c *fiber.Ctx, column string, value bool, message string) error {
	courseID := c.Locals("courseID").(uint)

	result := database.Database.Db.Model(&courseModels.Course{}).
		Where("id = ? AND is_deleted = ?", courseID, false).Update(column, value)
	if result.Error != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to update course!", nil)
	}
	if result.RowsAffected == 0 {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Course not found!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, message, nil)
}

// FeatureCourse marks a course as featured (admin only)
func FeatureCourse(c *fiber.Ctx) error {
	return setCourseFlag(c, "featured", true, "Course featured successfully!")
}

// UnfeatureCourse removes the featured flag (admin only)
func UnfeatureCourse(c *fiber.Ctx) error {
	return setCourseFlag(c, "featured", false, "Course unfeatured successfully!")
}

// ActivateCourse makes a course visible in the catalog (admin only)
func ActivateCourse(c *fiber.Ctx) error {
	return setCourseFlag(c, "active", true, "Course activated successfully!")
}

// DeactivateCourse hides a course from the catalog (admin only)
func DeactivateCourse(c *fiber.Ctx) error {
	return setCourseFlag(c, "active", false, "Course deactivated successfully!")
}
