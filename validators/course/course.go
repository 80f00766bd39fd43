package courseValidator

import (
	"strconv"
	"strings"

	"skillup/middleware"

	"github.com/gofiber/fiber/v2"
)

// parseID validates a positive integer path parameter.
func parseID(c *fiber.Ctx, param string) (uint, bool) {
	idStr := strings.TrimSpace(c.Params(param))
	if idStr == "" {
		return 0, false
	}

	id, err := strconv.Atoi(idStr)
	if err != nil || id <= 0 {
		return 0, false
	}

	return uint(id), true
}

// parseIDParam validates a positive integer path parameter and stores it in
// Locals under the given key.
func parseIDParam(c *fiber.Ctx, param, localKey string) error {
	id, ok := parseID(c, param)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid ID!", nil)
	}

	c.Locals(localKey, id)
	return c.Next()
}

// CourseID validates the :id course path parameter
func CourseID() fiber.Handler {
	return func(c *fiber.Ctx) error {
		return parseIDParam(c, "id", "courseID")
	}
}

// LessonID validates the :id lesson path parameter
func LessonID() fiber.Handler {
	return func(c *fiber.Ctx) error {
		return parseIDParam(c, "id", "lessonID")
	}
}

// ModuleID validates the :id module path parameter
func ModuleID() fiber.Handler {
	return func(c *fiber.Ctx) error {
		return parseIDParam(c, "id", "moduleID")
	}
}

// CertUID validates the :uid certificate path parameter
func CertUID() fiber.Handler {
	return func(c *fiber.Ctx) error {
		uid := strings.TrimSpace(c.Params("uid"))
		if uid == "" || len(uid) > 64 {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid certificate UID!", nil)
		}
		c.Locals("certUID", uid)
		return c.Next()
	}
}

// CourseList validates optional pagination for course listings
func CourseList() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			Page  *int `json:"page"`
			Limit *int `json:"limit"`
		})

		if err := c.QueryParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid query parameters!", nil)
		}

		errors := make(map[string]string)

		if reqData.Page != nil && *reqData.Page < 1 {
			errors["page"] = "Page must be greater than 0!"
		}
		if reqData.Limit != nil && (*reqData.Limit < 1 || *reqData.Limit > 100) {
			errors["limit"] = "Limit must be between 1 and 100!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedCourseList", reqData)
		return c.Next()
	}
}
