package controllers

import (
	"skillup/database"
	"skillup/middleware"
	courseModels "skillup/models/course"
	courseValidator "skillup/validators/course"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// moduleOwnedByInstructor resolves a module and verifies the caller owns its
// course (or is an admin).
func moduleOwnedByInstructor(c *fiber.Ctx, userID, moduleID uint) (*courseModels.Module, bool) {
	var module courseModels.Module
	if err := database.Database.Db.Where("id = ? AND is_deleted = ?", moduleID, false).First(&module).Error; err != nil {
		middleware.JsonResponse(c, fiber.StatusNotFound, false, "Module not found!", nil)
		return nil, false
	}

	if _, ok := instructorOwnsCourse(c, userID, module.CourseID); !ok {
		return nil, false
	}

	return &module, true
}

// CreateModule adds a module to a course the instructor owns.
func CreateModule(c *fiber.Ctx) error {
	userID, ok := currentUserID(c)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	courseID := c.Locals("courseID").(uint)
	reqData, ok := c.Locals("validatedModule").(*courseValidator.ModuleRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	if _, ok := instructorOwnsCourse(c, userID, courseID); !ok {
		return nil
	}

	// Default to appending at the end of the course
	order := 0
	if reqData.ModuleOrder != nil {
		order = *reqData.ModuleOrder
	} else {
		var maxOrder int
		database.Database.Db.Model(&courseModels.Module{}).
			Where("course_id = ? AND is_deleted = ?", courseID, false).
			Select("COALESCE(MAX(module_order), -1)").Scan(&maxOrder)
		order = maxOrder + 1
	}

	module := courseModels.Module{
		CourseID:    courseID,
		Title:       reqData.Title,
		Description: reqData.Description,
		ModuleOrder: order,
	}

	if err := database.Database.Db.Create(&module).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to create module!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Module created successfully!", module)
}

// UpdateModule updates a module in a course the instructor owns.
func UpdateModule(c *fiber.Ctx) error {
	userID, ok := currentUserID(c)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	moduleID := c.Locals("moduleID").(uint)
	reqData, ok := c.Locals("validatedModule").(*courseValidator.ModuleRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	module, ok := moduleOwnedByInstructor(c, userID, moduleID)
	if !ok {
		return nil
	}

	module.Title = reqData.Title
	module.Description = reqData.Description
	if reqData.ModuleOrder != nil {
		module.ModuleOrder = *reqData.ModuleOrder
	}

	if err := database.Database.Db.Save(module).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to update module!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Module updated successfully!", module)
}

// DeleteModule soft-deletes a module and its lessons.
func DeleteModule(c *fiber.Ctx) error {
	userID, ok := currentUserID(c)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	moduleID := c.Locals("moduleID").(uint)

	module, ok := moduleOwnedByInstructor(c, userID, moduleID)
	if !ok {
		return nil
	}

	err := database.Database.Db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&courseModels.Lesson{}).
			Where("module_id = ?", module.ID).Update("is_deleted", true).Error; err != nil {
			return err
		}
		return tx.Model(module).Update("is_deleted", true).Error
	})
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to delete module!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Module deleted successfully!", nil)
}

// ReorderModule moves a module to a new position within its course.
func ReorderModule(c *fiber.Ctx) error {
	userID, ok := currentUserID(c)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	moduleID := c.Locals("moduleID").(uint)
	reqData, ok := c.Locals("validatedReorder").(*courseValidator.ReorderRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	module, ok := moduleOwnedByInstructor(c, userID, moduleID)
	if !ok {
		return nil
	}

	module.ModuleOrder = reqData.NewOrder
	if err := database.Database.Db.Save(module).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to reorder module!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Module reordered successfully!", module)
}
