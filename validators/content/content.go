package contentValidator

import (
	"encoding/json"
	"fams/middleware"
	"fams/models"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
)

var contentTypes = map[string]bool{
	models.ContentTypeVideo:      true,
	models.ContentTypeQuiz:       true,
	models.ContentTypeAssignment: true,
}

// CreateContentRequest is the admin payload for a new training item.
type CreateContentRequest struct {
	Title       string          `json:"title"`
	Description string          `json:"description"`
	Type        string          `json:"type"`
	ContentUrl  string          `json:"contentUrl"`
	ContentData json.RawMessage `json:"contentData"`
	SponsorID   *uint           `json:"sponsorId"`
	DueDate     *time.Time      `json:"dueDate"`
	IsActive    *bool           `json:"isActive"`
}

// CreateContent validator middleware
func CreateContent() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(CreateContentRequest)
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		if len(strings.TrimSpace(reqData.Title)) < 2 {
			errors["title"] = "Title must be at least 2 characters long!"
		}
		if !contentTypes[reqData.Type] {
			errors["type"] = "Type must be one of video, quiz, assignment!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedContent", reqData)
		return c.Next()
	}
}

// UpdateContentRequest is a partial content update.
type UpdateContentRequest struct {
	Title       *string         `json:"title"`
	Description *string         `json:"description"`
	Type        *string         `json:"type"`
	ContentUrl  *string         `json:"contentUrl"`
	ContentData json.RawMessage `json:"contentData"`
	SponsorID   *uint           `json:"sponsorId"`
	DueDate     *time.Time      `json:"dueDate"`
	IsActive    *bool           `json:"isActive"`
}

// UpdateContent validator middleware
func UpdateContent() fiber.Handler {
	return func(c *fiber.Ctx) error {
		if _, err := c.ParamsInt("id"); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid content id!", nil)
		}

		reqData := new(UpdateContentRequest)
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		if reqData.Title != nil && len(strings.TrimSpace(*reqData.Title)) < 2 {
			errors["title"] = "Title must be at least 2 characters long!"
		}
		if reqData.Type != nil && !contentTypes[*reqData.Type] {
			errors["type"] = "Type must be one of video, quiz, assignment!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedContentUpdate", reqData)
		return c.Next()
	}
}

// CreateAnnouncementRequest is the admin payload for a new announcement.
// A nil sponsorId makes the announcement global.
type CreateAnnouncementRequest struct {
	Title     string `json:"title"`
	Message   string `json:"message"`
	SponsorID *uint  `json:"sponsorId"`
	IsActive  *bool  `json:"isActive"`
}

// CreateAnnouncement validator middleware
func CreateAnnouncement() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(CreateAnnouncementRequest)
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		if len(strings.TrimSpace(reqData.Title)) < 2 {
			errors["title"] = "Title must be at least 2 characters long!"
		}
		if strings.TrimSpace(reqData.Message) == "" {
			errors["message"] = "Message is required!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedAnnouncement", reqData)
		return c.Next()
	}
}

// UpdateAnnouncementRequest is a partial announcement update.
type UpdateAnnouncementRequest struct {
	Title    *string `json:"title"`
	Message  *string `json:"message"`
	IsActive *bool   `json:"isActive"`
}

// UpdateAnnouncement validator middleware
func UpdateAnnouncement() fiber.Handler {
	return func(c *fiber.Ctx) error {
		if _, err := c.ParamsInt("id"); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid announcement id!", nil)
		}

		reqData := new(UpdateAnnouncementRequest)
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		c.Locals("validatedAnnouncementUpdate", reqData)
		return c.Next()
	}
}

var progressStatuses = map[string]bool{
	models.ProgressNotStarted: true,
	models.ProgressInProgress: true,
	models.ProgressCompleted:  true,
}

// UpsertProgressRequest updates a trainee's state on one content item.
type UpsertProgressRequest struct {
	TraineeID      uint            `json:"traineeId"`
	ContentID      uint            `json:"contentId"`
	Status         string          `json:"status"`
	Score          *int            `json:"score"`
	SubmissionUrl  string          `json:"submissionUrl"`
	SubmissionData json.RawMessage `json:"submissionData"`
}

// UpsertProgress validator middleware
func UpsertProgress() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(UpsertProgressRequest)
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		if reqData.TraineeID == 0 {
			errors["traineeId"] = "traineeId is required!"
		}
		if reqData.ContentID == 0 {
			errors["contentId"] = "contentId is required!"
		}
		if reqData.Status != "" && !progressStatuses[reqData.Status] {
			errors["status"] = "Status must be one of not_started, in_progress, completed!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedProgress", reqData)
		return c.Next()
	}
}
