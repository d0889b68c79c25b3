package traineeController

import (
	progressController "fams/controllers/progress"
	"fams/database"
	"fams/middleware"
	"fams/models"
	traineeValidator "fams/validators/trainee"
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
	"golang.org/x/crypto/bcrypt"
)

// ListTrainees returns all trainees, newest first, optionally filtered by
// sponsor (admin).
func ListTrainees(c *fiber.Ctx) error {
	db := database.Database.Db.Order("created_at desc")

	if sponsorID := c.QueryInt("sponsorId"); sponsorID > 0 {
		db = db.Where("sponsor_id = ?", sponsorID)
	}

	var trainees []models.Trainee
	if err := db.Find(&trainees).Error; err != nil {
		log.Printf("Error fetching trainees: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch trainees!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Trainees fetched successfully.", trainees)
}

// UpdateTrainee applies a partial admin update. Setting isActive=false is
// the soft-deactivation path; trainees are never hard-deleted.
func UpdateTrainee(c *fiber.Ctx) error {
	id, _ := c.ParamsInt("id")

	reqData, ok := c.Locals("validatedTraineeUpdate").(*traineeValidator.UpdateRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	db := database.Database.Db

	var trainee models.Trainee
	if err := db.Where("id = ?", id).First(&trainee).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Trainee not found!", nil)
	}

	if reqData.FirstName != nil {
		trainee.FirstName = *reqData.FirstName
	}
	if reqData.LastName != nil {
		trainee.LastName = *reqData.LastName
	}
	if reqData.MiddleName != nil {
		trainee.MiddleName = *reqData.MiddleName
	}
	if reqData.PhoneNumber != nil {
		trainee.PhoneNumber = *reqData.PhoneNumber
	}
	if reqData.PassportPhotoUrl != nil {
		trainee.PassportPhotoUrl = *reqData.PassportPhotoUrl
	}
	if reqData.RoomNumber != nil {
		trainee.RoomNumber = *reqData.RoomNumber
	}
	if reqData.LectureVenue != nil {
		trainee.LectureVenue = *reqData.LectureVenue
	}
	if reqData.MealVenue != nil {
		trainee.MealVenue = *reqData.MealVenue
	}
	if reqData.IsActive != nil {
		trainee.IsActive = *reqData.IsActive
	}

	if err := db.Save(&trainee).Error; err != nil {
		log.Printf("Error updating trainee %d: %v", id, err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to update trainee!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Trainee updated successfully.", trainee)
}

// Login authenticates a trainee against their registration credentials and
// returns a JWT for the trainee dashboard.
func Login(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedLogin").(*traineeValidator.LoginRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	db := database.Database.Db

	var trainee models.Trainee
	if err := db.Where("email = ?", reqData.Email).First(&trainee).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Invalid credentials!", nil)
	}

	if !trainee.IsActive {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Account is deactivated!", nil)
	}
	if !trainee.EmailVerified {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Email not verified!", nil)
	}
	if trainee.UserID == nil {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Invalid credentials!", nil)
	}

	var user models.User
	if err := db.Where("id = ?", *trainee.UserID).First(&user).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Invalid credentials!", nil)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(reqData.Password)); err != nil {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Invalid credentials!", nil)
	}

	token, err := middleware.GenerateTraineeJWT(trainee.ID, trainee.TraineeID, trainee.Email)
	if err != nil {
		log.Printf("Error generating trainee token: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to generate token!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Login successful.", fiber.Map{
		"trainee": trainee,
		"token":   token,
	})
}

// Me returns the logged-in trainee's profile.
func Me(c *fiber.Ctx) error {
	traineeID, ok := c.Locals("traineeId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	var trainee models.Trainee
	if err := database.Database.Db.Preload("Sponsor").Where("id = ?", traineeID).First(&trainee).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Trainee not found!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Profile fetched successfully.", trainee)
}

// Dashboard returns the trainee's assigned training content merged with
// their progress, plus announcements for their sponsor and global ones.
func Dashboard(c *fiber.Ctx) error {
	traineeID, ok := c.Locals("traineeId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	db := database.Database.Db

	var trainee models.Trainee
	if err := db.Where("id = ?", traineeID).First(&trainee).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Trainee not found!", nil)
	}

	contentQuery := db.Where("is_active = ?", true).Order("created_at desc")
	if trainee.SponsorID != nil {
		contentQuery = contentQuery.Where("sponsor_id = ? OR sponsor_id IS NULL", *trainee.SponsorID)
	} else {
		contentQuery = contentQuery.Where("sponsor_id IS NULL")
	}

	var contents []models.Content
	if err := contentQuery.Find(&contents).Error; err != nil {
		log.Printf("Error fetching dashboard content: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch dashboard!", nil)
	}

	var progressRows []models.TraineeProgress
	if err := db.Where("trainee_id = ?", traineeID).Find(&progressRows).Error; err != nil {
		log.Printf("Error fetching dashboard progress: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch dashboard!", nil)
	}

	progressByContent := make(map[uint]models.TraineeProgress, len(progressRows))
	for _, row := range progressRows {
		progressByContent[row.ContentID] = row
	}

	type ContentWithProgress struct {
		models.Content
		Status      string     `json:"progressStatus"`
		Score       *int       `json:"score,omitempty"`
		CompletedAt *time.Time `json:"progressCompletedAt,omitempty"`
	}

	items := make([]ContentWithProgress, len(contents))
	for i, content := range contents {
		items[i] = ContentWithProgress{Content: content, Status: models.ProgressNotStarted}
		if row, found := progressByContent[content.ID]; found {
			items[i].Status = row.Status
			items[i].Score = row.Score
			items[i].CompletedAt = row.CompletedAt
		}
	}

	announcementQuery := db.Where("is_active = ?", true).Order("created_at desc")
	if trainee.SponsorID != nil {
		announcementQuery = announcementQuery.Where("sponsor_id = ? OR sponsor_id IS NULL", *trainee.SponsorID)
	} else {
		announcementQuery = announcementQuery.Where("sponsor_id IS NULL")
	}

	var announcements []models.Announcement
	if err := announcementQuery.Find(&announcements).Error; err != nil {
		log.Printf("Error fetching dashboard announcements: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch dashboard!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Dashboard fetched successfully.", fiber.Map{
		"trainee":       trainee,
		"content":       items,
		"announcements": announcements,
	})
}

// UpdateOwnProgress lets a trainee report progress on content assigned to
// them. Same upsert semantics as the admin route, scoped to their own rows.
func UpdateOwnProgress(c *fiber.Ctx) error {
	traineeID, ok := c.Locals("traineeId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	reqData, ok := c.Locals("validatedSelfProgress").(*traineeValidator.SelfProgressRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	db := database.Database.Db

	var content models.Content
	if err := db.Where("id = ? AND is_active = ?", reqData.ContentID, true).First(&content).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Content not found!", nil)
	}

	row, err := progressController.UpsertRow(db, traineeID, reqData.ContentID, func(row *models.TraineeProgress) {
		row.Status = reqData.Status
		if reqData.SubmissionUrl != "" {
			row.SubmissionUrl = reqData.SubmissionUrl
		}
		if len(reqData.SubmissionData) > 0 {
			row.SubmissionData = []byte(reqData.SubmissionData)
		}
	})
	if err != nil {
		log.Printf("Error updating own progress: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to update progress!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Progress updated successfully.", row)
}
