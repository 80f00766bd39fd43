package controllers

import (
	"errors"

	"skillup/middleware"
	courseService "skillup/services/course"

	"github.com/gofiber/fiber/v2"
)

// serviceErrorResponse maps a course-service sentinel error to an HTTP
// response. Unrecognized errors become a 500 with a generic message.
func serviceErrorResponse(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, courseService.ErrNotFound):
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Resource not found!", nil)
	case errors.Is(err, courseService.ErrAlreadyEnrolled):
		return middleware.JsonResponse(c, fiber.StatusConflict, false, "User already enrolled in this course!", nil)
	case errors.Is(err, courseService.ErrNotEnrolled):
		return middleware.JsonResponse(c, fiber.StatusForbidden, false, "User not enrolled in this course!", nil)
	case errors.Is(err, courseService.ErrRoleNotEligible):
		return middleware.JsonResponse(c, fiber.StatusForbidden, false, "Your role is not eligible for this action!", nil)
	case errors.Is(err, courseService.ErrCourseNotCompleted):
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Please complete the course first!", nil)
	case errors.Is(err, courseService.ErrConflict):
		return middleware.JsonResponse(c, fiber.StatusConflict, false, "Conflicting update, please retry!", nil)
	default:
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Something went wrong!", nil)
	}
}

// currentUserID extracts the authenticated user ID set by the JWT middleware.
func currentUserID(c *fiber.Ctx) (uint, bool) {
	userID, ok := c.Locals("userId").(uint)
	return userID, ok
}
