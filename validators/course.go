package validators

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"lms/utils"
)

// CreateCourseInput is the validated payload for course creation.
type CreateCourseInput struct {
	Title         string   `json:"title"`
	Description   string   `json:"description"`
	Price         *float64 `json:"price"`
	CategoryID    *uint    `json:"categoryId"`
	Level         string   `json:"level"`
	Prerequisites []string `json:"prerequisites"`
	Objectives    []string `json:"objectives"`
}

// CreateCourse validates the course creation body and stores the parsed
// input in Locals for the handler.
func CreateCourse() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(CreateCourseInput)

		if err := c.BodyParser(reqData); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": "Cannot parse JSON",
			})
		}

		errors := make(map[string]string)

		if strings.TrimSpace(reqData.Title) == "" {
			errors["title"] = "Title is required"
		}

		if strings.TrimSpace(reqData.Description) == "" {
			errors["description"] = "Description is required"
		}

		if reqData.Price != nil && *reqData.Price < 0 {
			errors["price"] = "Price must not be negative"
		}

		if len(errors) > 0 {
			return utils.ValidationError(c, errors)
		}

		// Omitted arrays persist as empty, not null.
		if reqData.Prerequisites == nil {
			reqData.Prerequisites = []string{}
		}
		if reqData.Objectives == nil {
			reqData.Objectives = []string{}
		}

		c.Locals("validatedCourse", reqData)
		return c.Next()
	}
}
