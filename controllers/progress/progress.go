package progressController

import (
	"fams/database"
	"fams/middleware"
	"fams/models"
	contentValidator "fams/validators/content"
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// UpsertRow finds the (traineeId, contentId) progress row and applies the
// mutation, creating the row first when absent. This is the only entity with
// upsert-by-composite-key semantics; duplicates are never created.
func UpsertRow(db *gorm.DB, traineeID, contentID uint, apply func(*models.TraineeProgress)) (*models.TraineeProgress, error) {
	var row models.TraineeProgress
	err := db.Where("trainee_id = ? AND content_id = ?", traineeID, contentID).First(&row).Error
	if err != nil && err != gorm.ErrRecordNotFound {
		return nil, err
	}

	if err == gorm.ErrRecordNotFound {
		row = models.TraineeProgress{
			TraineeID: traineeID,
			ContentID: contentID,
			Status:    models.ProgressNotStarted,
		}
		apply(&row)
		stampCompletion(&row)
		if err := db.Create(&row).Error; err != nil {
			return nil, err
		}
		return &row, nil
	}

	apply(&row)
	stampCompletion(&row)
	if err := db.Save(&row).Error; err != nil {
		return nil, err
	}
	return &row, nil
}

func stampCompletion(row *models.TraineeProgress) {
	if row.Status == models.ProgressCompleted && row.CompletedAt == nil {
		now := time.Now()
		row.CompletedAt = &now
	}
	if row.Status != models.ProgressCompleted {
		row.CompletedAt = nil
	}
}

// GetTraineeProgress lists all progress rows for one trainee.
func GetTraineeProgress(c *fiber.Ctx) error {
	traineeID, err := c.ParamsInt("traineeId")
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid trainee id!", nil)
	}

	var progress []models.TraineeProgress
	if err := database.Database.Db.Where("trainee_id = ?", traineeID).Find(&progress).Error; err != nil {
		log.Printf("Error fetching progress for trainee %d: %v", traineeID, err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch progress!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Progress fetched successfully.", progress)
}

// UpsertProgress updates a trainee's progress on one content item (admin).
func UpsertProgress(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedProgress").(*contentValidator.UpsertProgressRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	db := database.Database.Db

	if err := db.Where("id = ?", reqData.TraineeID).First(&models.Trainee{}).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Trainee not found!", nil)
	}
	if err := db.Where("id = ?", reqData.ContentID).First(&models.Content{}).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Content not found!", nil)
	}

	row, err := UpsertRow(db, reqData.TraineeID, reqData.ContentID, func(row *models.TraineeProgress) {
		if reqData.Status != "" {
			row.Status = reqData.Status
		}
		if reqData.Score != nil {
			row.Score = reqData.Score
		}
		if reqData.SubmissionUrl != "" {
			row.SubmissionUrl = reqData.SubmissionUrl
		}
		if len(reqData.SubmissionData) > 0 {
			row.SubmissionData = []byte(reqData.SubmissionData)
		}
	})
	if err != nil {
		log.Printf("Error upserting progress: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to update progress!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Progress updated successfully.", row)
}
