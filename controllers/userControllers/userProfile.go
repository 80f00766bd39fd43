package userController

import (
	"skillup/database"
	"skillup/middleware"
	"skillup/models"
	courseModels "skillup/models/course"
	courseService "skillup/services/course"
	courseValidator "skillup/validators/course"

	"github.com/gofiber/fiber/v2"
)

// GetProfile returns the authenticated user's profile.
func GetProfile(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	var user models.User
	if err := database.Database.Db.Where("id = ? AND is_deleted = ?", userID, false).First(&user).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "User not found!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Profile fetched successfully!", user)
}

// UpdateProfile updates the authenticated user's editable profile fields.
func UpdateProfile(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	reqData, ok := c.Locals("validatedProfile").(*struct {
		Name      string `json:"name"`
		Bio       string `json:"bio"`
		AvatarURL string `json:"avatar_url"`
	})
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	var user models.User
	if err := database.Database.Db.Where("id = ? AND is_deleted = ?", userID, false).First(&user).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "User not found!", nil)
	}

	if reqData.Name != "" {
		user.Name = reqData.Name
	}
	user.Bio = reqData.Bio
	user.AvatarURL = reqData.AvatarURL

	if err := database.Database.Db.Save(&user).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to update profile!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Profile updated successfully!", user)
}

// StudentDashboard aggregates the authenticated user's learning activity:
// enrollment counts, certificates, learning time and recent courses.
func StudentDashboard(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	db := database.Database.Db
	enrollments := courseService.NewEnrollmentService(db)

	completed, err := enrollments.CompletedEnrollments(userID)
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch enrollments!", nil)
	}
	inProgress, err := enrollments.InProgressEnrollments(userID)
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch enrollments!", nil)
	}

	var certificates int64
	db.Model(&courseModels.Certificate{}).Where("user_id = ?", userID).Count(&certificates)

	var lessonsCompleted int64
	db.Model(&courseModels.Progress{}).
		Where("user_id = ? AND completed = ?", userID, true).Count(&lessonsCompleted)

	// Total minutes of completed lessons
	var learningMinutes int64
	db.Model(&courseModels.Progress{}).
		Joins("JOIN lessons ON lessons.id = progresses.lesson_id").
		Where("progresses.user_id = ? AND progresses.completed = ?", userID, true).
		Select("COALESCE(SUM(lessons.duration), 0)").Scan(&learningMinutes)

	recent, err := enrollments.ListUserEnrollments(userID)
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch enrollments!", nil)
	}
	if len(recent) > 5 {
		recent = recent[:5]
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Dashboard fetched successfully!", fiber.Map{
		"enrollments": fiber.Map{
			"total":       len(completed) + len(inProgress),
			"completed":   len(completed),
			"in_progress": len(inProgress),
		},
		"certificates":      certificates,
		"lessons_completed": lessonsCompleted,
		"learning_minutes":  learningMinutes,
		"recent_courses":    recent,
	})
}

// GetAllUsers lists users for the admin panel with pagination and an optional
// role filter.
func GetAllUsers(c *fiber.Ctx) error {
	reqData, _ := c.Locals("validatedUserList").(*struct {
		Page  *int   `json:"page"`
		Limit *int   `json:"limit"`
		Role  string `json:"role"`
	})

	page := 1
	limit := 10
	role := ""
	if reqData != nil && reqData.Page != nil {
		page = *reqData.Page
	}
	if reqData != nil && reqData.Limit != nil {
		limit = *reqData.Limit
	}
	if reqData != nil {
		role = reqData.Role
	}
	offset := (page - 1) * limit

	db := database.Database.Db.Model(&models.User{}).Where("is_deleted = ?", false)
	if role != "" {
		db = db.Where("role = ?", role)
	}

	var total int64
	db.Count(&total)

	var users []models.User
	if err := db.Offset(offset).Limit(limit).Order("created_at desc").Find(&users).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch users!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Users fetched successfully!", map[string]interface{}{
		"users": users,
		"pagination": map[string]interface{}{
			"total": total,
			"page":  page,
			"limit": limit,
		},
	})
}

// UpdateUserRole changes a user's role. Admin only.
func UpdateUserRole(c *fiber.Ctx) error {
	targetUserID := c.Locals("targetUserID").(uint)
	reqData, ok := c.Locals("validatedRole").(*courseValidator.RoleRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	var user models.User
	if err := database.Database.Db.Where("id = ? AND is_deleted = ?", targetUserID, false).First(&user).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "User not found!", nil)
	}

	user.Role = models.Role(reqData.Role)
	if err := database.Database.Db.Save(&user).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to update role!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Role updated successfully!", user)
}

// DeleteUser soft-deletes a user account. Admin only. Enrollments and
// progress rows stay behind for reporting.
func DeleteUser(c *fiber.Ctx) error {
	adminID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	targetUserID := c.Locals("targetUserID").(uint)
	if targetUserID == adminID {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "You cannot delete your own account!", nil)
	}

	var user models.User
	if err := database.Database.Db.Where("id = ? AND is_deleted = ?", targetUserID, false).First(&user).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "User not found!", nil)
	}

	user.IsDeleted = true
	if err := database.Database.Db.Save(&user).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to delete user!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "User deleted successfully!", nil)
}
