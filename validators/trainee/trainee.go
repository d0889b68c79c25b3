package traineeValidator

import (
	"encoding/json"
	"fams/middleware"
	"fams/models"
	"regexp"
	"strings"

	"github.com/gofiber/fiber/v2"
)

var emailRegex = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)

// LoginRequest is the trainee dashboard credential payload.
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

// UpdateRequest is the admin payload for trainee updates. Trainees are only
// soft-deactivated, never hard-deleted.
type UpdateRequest struct {
	FirstName        *string `json:"firstName"`
	LastName         *string `json:"lastName"`
	MiddleName       *string `json:"middleName"`
	PhoneNumber      *string `json:"phoneNumber"`
	PassportPhotoUrl *string `json:"passportPhotoUrl"`
	RoomNumber       *string `json:"roomNumber"`
	LectureVenue     *string `json:"lectureVenue"`
	MealVenue        *string `json:"mealVenue"`
	IsActive         *bool   `json:"isActive"`
}

// Update validator middleware
func Update() fiber.Handler {
	return func(c *fiber.Ctx) error {
		if _, err := c.ParamsInt("id"); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid trainee id!", nil)
		}

		reqData := new(UpdateRequest)
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		c.Locals("validatedTraineeUpdate", reqData)
		return c.Next()
	}
}

var progressStatuses = map[string]bool{
	models.ProgressInProgress: true,
	models.ProgressCompleted:  true,
}

// SelfProgressRequest lets a trainee report progress on their own content.
type SelfProgressRequest struct {
	ContentID      uint            `json:"contentId"`
	Status         string          `json:"status"`
	SubmissionUrl  string          `json:"submissionUrl"`
	SubmissionData json.RawMessage `json:"submissionData"`
}

// SelfProgress validator middleware
func SelfProgress() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(SelfProgressRequest)
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		if reqData.ContentID == 0 {
			errors["contentId"] = "contentId is required!"
		}
		if !progressStatuses[reqData.Status] {
			errors["status"] = "Status must be in_progress or completed!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedSelfProgress", reqData)
		return c.Next()
	}
}
