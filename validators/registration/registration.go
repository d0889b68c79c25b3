package registrationValidator

import (
	"fams/middleware"
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

var emailRegex = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)

var validate = validator.New()

// Step1Request carries the credentials collected by the first wizard step.
type Step1Request struct {
	Email           string `json:"email"`
	Password        string `json:"password"`
	ConfirmPassword string `json:"confirmPassword"`
}

// Step1 validator middleware
func Step1() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(Step1Request)
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		if reqData.Email == "" || !emailRegex.MatchString(reqData.Email) {
			errors["email"] = "Invalid email!"
		}
		if len(strings.TrimSpace(reqData.Password)) < 8 {
			errors["password"] = "Password must be at least 8 characters long!"
		}
		if reqData.Password != reqData.ConfirmPassword {
			errors["confirmPassword"] = "Passwords do not match!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedStep1", reqData)
		return c.Next()
	}
}

// VerifyRequest carries the emailed code back for step 2.
type VerifyRequest struct {
	Email string `json:"email"`
	Code  string `json:"code"`
}

// Verify validator middleware
func Verify() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(VerifyRequest)
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		if reqData.Email == "" || !emailRegex.MatchString(reqData.Email) {
			errors["email"] = "Invalid email!"
		}
		if len(reqData.Code) != 6 {
			errors["code"] = "Verification code must be 6 digits!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedVerify", reqData)
		return c.Next()
	}
}

// CompleteRequest is the full profile form submitted by the final step.
// trainee_id, tag number, room and venues are system-assigned, never
// accepted from the client.
type CompleteRequest struct {
	Email               string `json:"email" validate:"required,email"`
	FirstName           string `json:"firstName" validate:"required,min=2,max=100"`
	LastName            string `json:"lastName" validate:"required,min=2,max=100"`
	MiddleName          string `json:"middleName" validate:"omitempty,max=100"`
	PhoneNumber         string `json:"phoneNumber" validate:"required,min=7,max=20"`
	Gender              string `json:"gender" validate:"required,oneof=male female"`
	DateOfBirth         string `json:"dateOfBirth" validate:"required,datetime=2006-01-02"`
	StateOfOrigin       string `json:"stateOfOrigin" validate:"required"`
	LocalGovernmentArea string `json:"localGovernmentArea" validate:"required"`
	Nationality         string `json:"nationality" validate:"omitempty,max=100"`
	PassportPhotoUrl    string `json:"passportPhotoUrl" validate:"omitempty,max=500"`
}

// Complete validator middleware
func Complete() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(CompleteRequest)
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		if err := validate.Struct(reqData); err != nil {
			errors := make(map[string]string)
			for _, fieldErr := range err.(validator.ValidationErrors) {
				errors[fieldErr.Field()] = "Invalid value for " + fieldErr.Field()
			}
			return middleware.ValidationErrorResponse(c, errors)
		}

		if reqData.Nationality == "" {
			reqData.Nationality = "Nigerian"
		}

		c.Locals("validatedComplete", reqData)
		return c.Next()
	}
}
