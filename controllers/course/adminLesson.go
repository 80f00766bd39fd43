package controllers

import (
	"encoding/json"

	"skillup/database"
	"skillup/middleware"
	courseModels "skillup/models/course"
	courseValidator "skillup/validators/course"

	"github.com/gofiber/fiber/v2"
	"gorm.io/datatypes"
)

// lessonOwnedByInstructor resolves a lesson and verifies the caller owns the
// course it belongs to (or is an admin).
func lessonOwnedByInstructor(c *fiber.Ctx, userID, lessonID uint) (*courseModels.Lesson, bool) {
	var lesson courseModels.Lesson
	if err := database.Database.Db.Where("id = ? AND is_deleted = ?", lessonID, false).First(&lesson).Error; err != nil {
		middleware.JsonResponse(c, fiber.StatusNotFound, false, "Lesson not found!", nil)
		return nil, false
	}

	if _, ok := moduleOwnedByInstructor(c, userID, lesson.ModuleID); !ok {
		return nil, false
	}

	return &lesson, true
}

// resourcesJSON marshals the resource link list for storage. Empty lists are
// stored as null.
func resourcesJSON(resources []string) datatypes.JSON {
	if len(resources) == 0 {
		return nil
	}

	data, err := json.Marshal(resources)
	if err != nil {
		return nil
	}
	return datatypes.JSON(data)
}

// CreateLesson adds a lesson to a module in a course the instructor owns.
func CreateLesson(c *fiber.Ctx) error {
	userID, ok := currentUserID(c)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	moduleID := c.Locals("moduleID").(uint)
	reqData, ok := c.Locals("validatedLesson").(*courseValidator.LessonRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	if _, ok := moduleOwnedByInstructor(c, userID, moduleID); !ok {
		return nil
	}

	// Default to appending at the end of the module
	order := 0
	if reqData.LessonOrder != nil {
		order = *reqData.LessonOrder
	} else {
		var maxOrder int
		database.Database.Db.Model(&courseModels.Lesson{}).
			Where("module_id = ? AND is_deleted = ?", moduleID, false).
			Select("COALESCE(MAX(lesson_order), -1)").Scan(&maxOrder)
		order = maxOrder + 1
	}

	lesson := courseModels.Lesson{
		ModuleID:    moduleID,
		Title:       reqData.Title,
		Content:     reqData.Content,
		VideoURL:    reqData.VideoURL,
		Duration:    reqData.Duration,
		LessonOrder: order,
		Resources:   resourcesJSON(reqData.Resources),
	}

	if err := database.Database.Db.Create(&lesson).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to create lesson!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Lesson created successfully!", lesson)
}

// UpdateLesson updates a lesson in a course the instructor owns.
func UpdateLesson(c *fiber.Ctx) error {
	userID, ok := currentUserID(c)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	lessonID := c.Locals("lessonID").(uint)
	reqData, ok := c.Locals("validatedLesson").(*courseValidator.LessonRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	lesson, ok := lessonOwnedByInstructor(c, userID, lessonID)
	if !ok {
		return nil
	}

	lesson.Title = reqData.Title
	lesson.Content = reqData.Content
	lesson.VideoURL = reqData.VideoURL
	lesson.Duration = reqData.Duration
	if reqData.LessonOrder != nil {
		lesson.LessonOrder = *reqData.LessonOrder
	}
	if reqData.Resources != nil {
		lesson.Resources = resourcesJSON(reqData.Resources)
	}

	if err := database.Database.Db.Save(lesson).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to update lesson!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Lesson updated successfully!", lesson)
}

// DeleteLesson soft-deletes a lesson. Completion records for it stay in the
// ledger but stop counting once the lesson leaves the course structure.
func DeleteLesson(c *fiber.Ctx) error {
	userID, ok := currentUserID(c)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	lessonID := c.Locals("lessonID").(uint)

	lesson, ok := lessonOwnedByInstructor(c, userID, lessonID)
	if !ok {
		return nil
	}

	lesson.IsDeleted = true
	if err := database.Database.Db.Save(lesson).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to delete lesson!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Lesson deleted successfully!", nil)
}

// ReorderLesson moves a lesson to a new position within its module.
func ReorderLesson(c *fiber.Ctx) error {
	userID, ok := currentUserID(c)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	lessonID := c.Locals("lessonID").(uint)
	reqData, ok := c.Locals("validatedReorder").(*courseValidator.ReorderRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	lesson, ok := lessonOwnedByInstructor(c, userID, lessonID)
	if !ok {
		return nil
	}

	lesson.LessonOrder = reqData.NewOrder
	if err := database.Database.Db.Save(lesson).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to reorder lesson!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Lesson reordered successfully!", lesson)
}
