package courseValidator

import (
	"skillup/middleware"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

var validate = validator.New()

// CourseRequest is the validated course create/update payload
type CourseRequest struct {
	Title        string `json:"title" validate:"required,min=3,max=200"`
	Description  string `json:"description"`
	Category     string `json:"category" validate:"required,max=100"`
	ThumbnailURL string `json:"thumbnail_url"`
}

// ModuleRequest is the validated module create/update payload
type ModuleRequest struct {
	Title       string `json:"title" validate:"required,min=3,max=200"`
	Description string `json:"description"`
	ModuleOrder *int   `json:"module_order"`
}

// LessonRequest is the validated lesson create/update payload
type LessonRequest struct {
	Title       string   `json:"title" validate:"required,min=3,max=200"`
	Content     string   `json:"content"`
	VideoURL    string   `json:"video_url"`
	Duration    int      `json:"duration" validate:"gte=0"`
	LessonOrder *int     `json:"lesson_order"`
	Resources   []string `json:"resources"`
}

// ReorderRequest carries the new position for a module or lesson
type ReorderRequest struct {
	NewOrder int `json:"new_order" validate:"gte=0"`
}

// RoleRequest carries the new role for admin user management
type RoleRequest struct {
	Role string `json:"role" validate:"required,oneof=STUDENT INSTRUCTOR ADMIN"`
}

// validateBody parses and validates a JSON body into reqData and stores it in
// Locals under localKey. Returns false after writing the error response.
func validateBody(c *fiber.Ctx, reqData interface{}, localKey string) (bool, error) {
	if err := c.BodyParser(reqData); err != nil {
		return false, middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
	}

	if err := validate.Struct(reqData); err != nil {
		errors := make(map[string]string)
		for _, fieldErr := range err.(validator.ValidationErrors) {
			errors[fieldErr.Field()] = "Invalid value for " + fieldErr.Field() + "!"
		}
		return false, middleware.ValidationErrorResponse(c, errors)
	}

	c.Locals(localKey, reqData)
	return true, nil
}

// bodyValidator builds a middleware validating only a JSON body.
func bodyValidator(newReq func() interface{}, localKey string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		ok, err := validateBody(c, newReq(), localKey)
		if !ok {
			return err
		}
		return c.Next()
	}
}

// idBodyValidator builds a middleware validating the :id parameter plus a body.
func idBodyValidator(idKey string, newReq func() interface{}, localKey string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, ok := parseID(c, "id")
		if !ok {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid ID!", nil)
		}
		c.Locals(idKey, id)

		ok, err := validateBody(c, newReq(), localKey)
		if !ok {
			return err
		}
		return c.Next()
	}
}

// CreateCourse validates the course creation payload
func CreateCourse() fiber.Handler {
	return bodyValidator(func() interface{} { return new(CourseRequest) }, "validatedCourse")
}

// UpdateCourse validates the :id course parameter and course payload
func UpdateCourse() fiber.Handler {
	return idBodyValidator("courseID", func() interface{} { return new(CourseRequest) }, "validatedCourse")
}

// CreateModule validates the :id course parameter and module payload
func CreateModule() fiber.Handler {
	return idBodyValidator("courseID", func() interface{} { return new(ModuleRequest) }, "validatedModule")
}

// UpdateModule validates the :id module parameter and module payload
func UpdateModule() fiber.Handler {
	return idBodyValidator("moduleID", func() interface{} { return new(ModuleRequest) }, "validatedModule")
}

// CreateLesson validates the :id module parameter and lesson payload
func CreateLesson() fiber.Handler {
	return idBodyValidator("moduleID", func() interface{} { return new(LessonRequest) }, "validatedLesson")
}

// UpdateLesson validates the :id lesson parameter and lesson payload
func UpdateLesson() fiber.Handler {
	return idBodyValidator("lessonID", func() interface{} { return new(LessonRequest) }, "validatedLesson")
}

// Reorder validates the :id parameter and reorder payload for the given entity
func Reorder(idKey string) fiber.Handler {
	return idBodyValidator(idKey, func() interface{} { return new(ReorderRequest) }, "validatedReorder")
}

// UpdateUserRole validates the :id user parameter and role payload
func UpdateUserRole() fiber.Handler {
	return idBodyValidator("targetUserID", func() interface{} { return new(RoleRequest) }, "validatedRole")
}
