package controllers

import (
	"math"
	"time"

	"skillup/database"
	"skillup/middleware"
	"skillup/models"
	courseModels "skillup/models/course"

	"github.com/gofiber/fiber/v2"
)

// completionRate returns completed/total as a percentage with two decimals.
func completionRate(completed, total int64) float64 {
	if total == 0 {
		return 0.0
	}
	return math.Round(float64(completed)/float64(total)*10000) / 100
}

// GetPlatformAnalytics returns platform-wide enrollment and completion
// metrics for the admin dashboard.
func GetPlatformAnalytics(c *fiber.Ctx) error {
	db := database.Database.Db

	var totalUsers, totalStudents, totalInstructors int64
	db.Model(&models.User{}).Where("is_deleted = ?", false).Count(&totalUsers)
	db.Model(&models.User{}).Where("is_deleted = ? AND role = ?", false, models.RoleStudent).Count(&totalStudents)
	db.Model(&models.User{}).Where("is_deleted = ? AND role = ?", false, models.RoleInstructor).Count(&totalInstructors)

	var totalCourses int64
	db.Model(&courseModels.Course{}).Where("is_deleted = ?", false).Count(&totalCourses)

	var totalEnrollments, completedEnrollments int64
	db.Model(&courseModels.Enrollment{}).Count(&totalEnrollments)
	db.Model(&courseModels.Enrollment{}).Where("completion_date IS NOT NULL").Count(&completedEnrollments)

	var totalCertificates int64
	db.Model(&courseModels.Certificate{}).Count(&totalCertificates)

	// Students with at least one lesson completed in the last 30 days
	since := time.Now().AddDate(0, 0, -30)
	var activeStudents int64
	db.Model(&courseModels.Progress{}).
		Where("completed = ? AND completed_at >= ?", true, since).
		Distinct("user_id").Count(&activeStudents)

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Analytics fetched successfully!", fiber.Map{
		"users": fiber.Map{
			"total":       totalUsers,
			"students":    totalStudents,
			"instructors": totalInstructors,
			"active":      activeStudents,
		},
		"courses": totalCourses,
		"enrollments": fiber.Map{
			"total":           totalEnrollments,
			"completed":       completedEnrollments,
			"in_progress":     totalEnrollments - completedEnrollments,
			"completion_rate": completionRate(completedEnrollments, totalEnrollments),
		},
		"certificates": totalCertificates,
	})
}

// GetPopularCourses lists courses ranked by enrollment count.
func GetPopularCourses(c *fiber.Ctx) error {
	db := database.Database.Db

	type PopularCourse struct {
		CourseID        uint   `json:"course_id"`
		Title           string `json:"title"`
		Category        string `json:"category"`
		EnrollmentCount int64  `json:"enrollment_count"`
	}

	var popular []PopularCourse
	err := db.Model(&courseModels.Enrollment{}).
		Select("enrollments.course_id, courses.title, courses.category, COUNT(enrollments.id) as enrollment_count").
		Joins("JOIN courses ON courses.id = enrollments.course_id").
		Where("courses.is_deleted = ?", false).
		Group("enrollments.course_id, courses.title, courses.category").
		Order("enrollment_count desc").
		Limit(10).
		Scan(&popular).Error
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch popular courses!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Popular courses fetched successfully!", popular)
}

// GetCourseAnalytics returns enrollment and completion metrics for a single
// course. Instructors may only inspect their own courses.
func GetCourseAnalytics(c *fiber.Ctx) error {
	userID, ok := currentUserID(c)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	courseID := c.Locals("courseID").(uint)

	course, ok := instructorOwnsCourse(c, userID, courseID)
	if !ok {
		return nil
	}

	db := database.Database.Db

	var totalEnrollments, completedEnrollments int64
	db.Model(&courseModels.Enrollment{}).Where("course_id = ?", courseID).Count(&totalEnrollments)
	db.Model(&courseModels.Enrollment{}).
		Where("course_id = ? AND completion_date IS NOT NULL", courseID).Count(&completedEnrollments)

	var avgProgress float64
	db.Model(&courseModels.Enrollment{}).
		Where("course_id = ?", courseID).
		Select("COALESCE(AVG(progress), 0)").Scan(&avgProgress)

	var certificatesIssued int64
	db.Model(&courseModels.Certificate{}).Where("course_id = ?", courseID).Count(&certificatesIssued)

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Course analytics fetched successfully!", fiber.Map{
		"course_id":    course.ID,
		"course_title": course.Title,
		"enrollments": fiber.Map{
			"total":           totalEnrollments,
			"completed":       completedEnrollments,
			"in_progress":     totalEnrollments - completedEnrollments,
			"completion_rate": completionRate(completedEnrollments, totalEnrollments),
		},
		"average_progress":    math.Round(avgProgress*100) / 100,
		"certificates_issued": certificatesIssued,
	})
}
