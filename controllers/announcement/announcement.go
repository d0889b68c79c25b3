package announcementController

import (
	"fams/database"
	"fams/middleware"
	"fams/models"
	contentValidator "fams/validators/content"
	"log"

	"github.com/gofiber/fiber/v2"
)

// ListAnnouncements returns announcements, newest first, optionally filtered
// by sponsor. Global announcements have a null sponsorId.
func ListAnnouncements(c *fiber.Ctx) error {
	db := database.Database.Db.Order("created_at desc")

	if sponsorID := c.QueryInt("sponsorId"); sponsorID > 0 {
		db = db.Where("sponsor_id = ?", sponsorID)
	}

	var announcements []models.Announcement
	if err := db.Find(&announcements).Error; err != nil {
		log.Printf("Error fetching announcements: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch announcements!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Announcements fetched successfully.", announcements)
}

// CreateAnnouncement creates an announcement (admin).
func CreateAnnouncement(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedAnnouncement").(*contentValidator.CreateAnnouncementRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	isActive := true
	if reqData.IsActive != nil {
		isActive = *reqData.IsActive
	}

	announcement := models.Announcement{
		Title:     reqData.Title,
		Message:   reqData.Message,
		SponsorID: reqData.SponsorID,
		IsActive:  isActive,
	}

	if err := database.Database.Db.Create(&announcement).Error; err != nil {
		log.Printf("Error creating announcement: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to create announcement!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Announcement created successfully.", announcement)
}

// UpdateAnnouncement applies a partial update, typically deactivation (admin).
func UpdateAnnouncement(c *fiber.Ctx) error {
	id, _ := c.ParamsInt("id")

	reqData, ok := c.Locals("validatedAnnouncementUpdate").(*contentValidator.UpdateAnnouncementRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	db := database.Database.Db

	var announcement models.Announcement
	if err := db.Where("id = ?", id).First(&announcement).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Announcement not found!", nil)
	}

	if reqData.Title != nil {
		announcement.Title = *reqData.Title
	}
	if reqData.Message != nil {
		announcement.Message = *reqData.Message
	}
	if reqData.IsActive != nil {
		announcement.IsActive = *reqData.IsActive
	}

	if err := db.Save(&announcement).Error; err != nil {
		log.Printf("Error updating announcement %d: %v", id, err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to update announcement!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Announcement updated successfully.", announcement)
}
