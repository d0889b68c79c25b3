package adminValidator

import (
	"fams/middleware"
	"regexp"
	"strings"

	"github.com/gofiber/fiber/v2"
)

var emailRegex = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)

// LoginRequest is the admin credential payload.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Login validator middleware
func Login() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(LoginRequest)
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		if reqData.Email == "" || !emailRegex.MatchString(reqData.Email) {
			errors["email"] = "Invalid email!"
		}
		if strings.TrimSpace(reqData.Password) == "" {
			errors["password"] = "Password is required!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedLogin", reqData)
		return c.Next()
	}
}

// UpdateSettingRequest updates one system setting, optionally activating a
// sponsor in the same admin action when the registration gate is opened.
type UpdateSettingRequest struct {
	Key       string `json:"key"`
	Value     string `json:"value"`
	SponsorID *uint  `json:"sponsorId"`
}

// UpdateSetting validator middleware
func UpdateSetting() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(UpdateSettingRequest)
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		if strings.TrimSpace(reqData.Key) == "" {
			errors["key"] = "Setting key is required!"
		}
		if strings.TrimSpace(reqData.Value) == "" {
			errors["value"] = "Setting value is required!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedSetting", reqData)
		return c.Next()
	}
}
