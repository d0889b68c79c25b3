package sponsorValidator

import (
	"fams/middleware"
	"strings"

	"github.com/gofiber/fiber/v2"
)

// CreateRequest is the admin payload for a new sponsor.
type CreateRequest struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	LogoUrl     string `json:"logoUrl"`
	StartDate   string `json:"startDate"`
	EndDate     string `json:"endDate"`
	IsActive    *bool  `json:"isActive"`
}

// Create validator middleware
func Create() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(CreateRequest)
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		if len(strings.TrimSpace(reqData.Name)) < 2 {
			errors["name"] = "Sponsor name must be at least 2 characters long!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedSponsor", reqData)
		return c.Next()
	}
}

// UpdateRequest is a partial sponsor update. Nil pointers mean "leave as is".
type UpdateRequest struct {
	Name        *string `json:"name"`
	Description *string `json:"description"`
	LogoUrl     *string `json:"logoUrl"`
	StartDate   *string `json:"startDate"`
	EndDate     *string `json:"endDate"`
	IsActive    *bool   `json:"isActive"`
}

// Update validator middleware
func Update() fiber.Handler {
	return func(c *fiber.Ctx) error {
		if _, err := c.ParamsInt("id"); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid sponsor id!", nil)
		}

		reqData := new(UpdateRequest)
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		if reqData.Name != nil && len(strings.TrimSpace(*reqData.Name)) < 2 {
			errors["name"] = "Sponsor name must be at least 2 characters long!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedSponsorUpdate", reqData)
		return c.Next()
	}
}
