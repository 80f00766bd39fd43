package controllers

import (
	"skillup/database"
	"skillup/middleware"
	courseModels "skillup/models/course"
	courseService "skillup/services/course"

	"github.com/gofiber/fiber/v2"
)

// GetAllCourses lists active courses with optional category/keyword/featured
// filters and pagination.
func GetAllCourses(c *fiber.Ctx) error {
	// Get optional filters from query params
	category := c.Query("category")
	keyword := c.Query("search")
	featured := c.Query("featured")

	// Retrieve validated pagination request
	reqData, _ := c.Locals("validatedCourseList").(*struct {
		Page  *int `json:"page"`
		Limit *int `json:"limit"`
	})

	// Set default pagination
	page := 1
	limit := 10
	if reqData != nil && reqData.Page != nil {
		page = *reqData.Page
	}
	if reqData != nil && reqData.Limit != nil {
		limit = *reqData.Limit
	}
	offset := (page - 1) * limit

	// Build query with filters
	db := database.Database.Db.Model(&courseModels.Course{}).Where("is_deleted = ? AND active = ?", false, true)

	if category != "" {
		db = db.Where("category = ?", category)
	}
	if keyword != "" {
		db = db.Where("(title LIKE ? OR description LIKE ?)", "%"+keyword+"%", "%"+keyword+"%")
	}
	if featured == "true" {
		db = db.Where("featured = ?", true)
	}

	// Get total count
	var total int64
	db.Count(&total)

	// Fetch paginated data
	var courses []courseModels.Course
	if err := db.Offset(offset).Limit(limit).Order("created_at desc").Find(&courses).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch courses!", nil)
	}

	// Prepare response
	response := map[string]interface{}{
		"courses": courses,
		"pagination": map[string]interface{}{
			"total": total,
			"page":  page,
			"limit": limit,
		},
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Courses fetched successfully!", response)
}

// GetCourseDetails returns a course with its ordered modules and lessons, and
// the caller's enrollment state.
func GetCourseDetails(c *fiber.Ctx) error {
	courseID := c.Locals("courseID").(uint)

	var course courseModels.Course
	if err := database.Database.Db.Where("id = ? AND is_deleted = ? AND active = ?", courseID, false, true).First(&course).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Course not found!", nil)
	}

	// Get modules in catalog order
	var modules []courseModels.Module
	database.Database.Db.Where("course_id = ? AND is_deleted = ?", courseID, false).Order("module_order asc, id asc").Find(&modules)

	type ModuleWithLessons struct {
		courseModels.Module
		Lessons []courseModels.Lesson `json:"lessons"`
	}

	result := make([]ModuleWithLessons, len(modules))
	for i, module := range modules {
		result[i] = ModuleWithLessons{Module: module}

		var lessons []courseModels.Lesson
		database.Database.Db.Where("module_id = ? AND is_deleted = ?", module.ID, false).Order("lesson_order asc, id asc").Find(&lessons)
		result[i].Lessons = lessons
	}

	// Enrollment state only for authenticated callers
	isEnrolled := false
	var enrollment *courseModels.Enrollment
	if userID, ok := currentUserID(c); ok {
		enrollments := courseService.NewEnrollmentService(database.Database.Db)
		if found, err := enrollments.IsEnrolled(userID, courseID); err == nil && found {
			isEnrolled = true
			enrollment, _ = enrollments.GetEnrollment(userID, courseID)
		}
	}

	response := fiber.Map{
		"course":      course,
		"modules":     result,
		"is_enrolled": isEnrolled,
	}
	if enrollment != nil {
		response["enrollment"] = enrollment
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Course details fetched successfully!", response)
}

// GetCategories lists the distinct categories of active courses.
func GetCategories(c *fiber.Ctx) error {
	var categories []string
	if err := database.Database.Db.Model(&courseModels.Course{}).
		Where("is_deleted = ? AND active = ?", false, true).
		Distinct().Order("category asc").Pluck("category", &categories).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch categories!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Categories fetched successfully!", categories)
}
