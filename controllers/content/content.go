package contentController

import (
	"fams/database"
	"fams/middleware"
	"fams/models"
	contentValidator "fams/validators/content"
	"log"

	"github.com/gofiber/fiber/v2"
)

// ListContent returns training content, newest first, optionally filtered by
// sponsor. Public read so the landing page can show what a cohort covers.
func ListContent(c *fiber.Ctx) error {
	db := database.Database.Db.Order("created_at desc")

	if sponsorID := c.QueryInt("sponsorId"); sponsorID > 0 {
		db = db.Where("sponsor_id = ?", sponsorID)
	}

	var content []models.Content
	if err := db.Find(&content).Error; err != nil {
		log.Printf("Error fetching content: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch content!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Content fetched successfully.", content)
}

// CreateContent creates a training item (admin).
func CreateContent(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedContent").(*contentValidator.CreateContentRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	isActive := true
	if reqData.IsActive != nil {
		isActive = *reqData.IsActive
	}

	content := models.Content{
		Title:       reqData.Title,
		Description: reqData.Description,
		Type:        reqData.Type,
		ContentUrl:  reqData.ContentUrl,
		SponsorID:   reqData.SponsorID,
		DueDate:     reqData.DueDate,
		IsActive:    isActive,
	}
	if len(reqData.ContentData) > 0 {
		content.ContentData = []byte(reqData.ContentData)
	}

	if err := database.Database.Db.Create(&content).Error; err != nil {
		log.Printf("Error creating content: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to create content!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Content created successfully.", content)
}

// UpdateContent applies a partial update to a training item (admin).
// Content is deactivated rather than deleted, so progress rows stay valid.
func UpdateContent(c *fiber.Ctx) error {
	id, _ := c.ParamsInt("id")

	reqData, ok := c.Locals("validatedContentUpdate").(*contentValidator.UpdateContentRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	db := database.Database.Db

	var content models.Content
	if err := db.Where("id = ?", id).First(&content).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Content not found!", nil)
	}

	if reqData.Title != nil {
		content.Title = *reqData.Title
	}
	if reqData.Description != nil {
		content.Description = *reqData.Description
	}
	if reqData.Type != nil {
		content.Type = *reqData.Type
	}
	if reqData.ContentUrl != nil {
		content.ContentUrl = *reqData.ContentUrl
	}
	if len(reqData.ContentData) > 0 {
		content.ContentData = []byte(reqData.ContentData)
	}
	if reqData.SponsorID != nil {
		content.SponsorID = reqData.SponsorID
	}
	if reqData.DueDate != nil {
		content.DueDate = reqData.DueDate
	}
	if reqData.IsActive != nil {
		content.IsActive = *reqData.IsActive
	}

	if err := db.Save(&content).Error; err != nil {
		log.Printf("Error updating content %d: %v", id, err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to update content!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Content updated successfully.", content)
}
