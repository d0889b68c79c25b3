package sponsorController

import (
	"fams/database"
	"fams/middleware"
	"fams/models"
	sponsorValidator "fams/validators/sponsor"
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func parseDate(value string) (*time.Time, bool) {
	if value == "" {
		return nil, true
	}
	t, err := time.Parse("2006-01-02", value)
	if err != nil {
		return nil, false
	}
	return &t, true
}

// ListSponsors returns all sponsors, newest first.
func ListSponsors(c *fiber.Ctx) error {
	var sponsors []models.Sponsor
	if err := database.Database.Db.Order("created_at desc").Find(&sponsors).Error; err != nil {
		log.Printf("Error fetching sponsors: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch sponsors!", nil)
	}
	return middleware.JsonResponse(c, fiber.StatusOK, true, "Sponsors fetched successfully.", sponsors)
}

// GetActiveSponsor returns the currently enrolling sponsor, if any.
func GetActiveSponsor(c *fiber.Ctx) error {
	var sponsor models.Sponsor
	err := database.Database.Db.Where("is_active = ?", true).First(&sponsor).Error
	if err == gorm.ErrRecordNotFound {
		return middleware.JsonResponse(c, fiber.StatusOK, true, "No active sponsor.", nil)
	}
	if err != nil {
		log.Printf("Error fetching active sponsor: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch active sponsor!", nil)
	}
	return middleware.JsonResponse(c, fiber.StatusOK, true, "Active sponsor fetched successfully.", sponsor)
}

// CreateSponsor creates a sponsor. Creating an active sponsor deactivates
// every other sponsor so at most one stays active.
func CreateSponsor(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedSponsor").(*sponsorValidator.CreateRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	startDate, ok := parseDate(reqData.StartDate)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid startDate, expected YYYY-MM-DD!", nil)
	}
	endDate, ok := parseDate(reqData.EndDate)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid endDate, expected YYYY-MM-DD!", nil)
	}

	isActive := true
	if reqData.IsActive != nil {
		isActive = *reqData.IsActive
	}

	sponsor := models.Sponsor{
		Name:        reqData.Name,
		Description: reqData.Description,
		LogoUrl:     reqData.LogoUrl,
		StartDate:   startDate,
		EndDate:     endDate,
		IsActive:    isActive,
	}

	err := database.Database.Db.Transaction(func(tx *gorm.DB) error {
		if isActive {
			if err := tx.Model(&models.Sponsor{}).Where("is_active = ?", true).Update("is_active", false).Error; err != nil {
				return err
			}
		}
		return tx.Create(&sponsor).Error
	})
	if err != nil {
		log.Printf("Error creating sponsor: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to create sponsor!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Sponsor created successfully.", sponsor)
}

// UpdateSponsor applies a partial update. Setting isActive=true deactivates
// all other sponsors inside the same transaction.
func UpdateSponsor(c *fiber.Ctx) error {
	id, _ := c.ParamsInt("id")

	reqData, ok := c.Locals("validatedSponsorUpdate").(*sponsorValidator.UpdateRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	db := database.Database.Db

	var sponsor models.Sponsor
	if err := db.Where("id = ?", id).First(&sponsor).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Sponsor not found!", nil)
	}

	if reqData.Name != nil {
		sponsor.Name = *reqData.Name
	}
	if reqData.Description != nil {
		sponsor.Description = *reqData.Description
	}
	if reqData.LogoUrl != nil {
		sponsor.LogoUrl = *reqData.LogoUrl
	}
	if reqData.StartDate != nil {
		startDate, ok := parseDate(*reqData.StartDate)
		if !ok {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid startDate, expected YYYY-MM-DD!", nil)
		}
		sponsor.StartDate = startDate
	}
	if reqData.EndDate != nil {
		endDate, ok := parseDate(*reqData.EndDate)
		if !ok {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid endDate, expected YYYY-MM-DD!", nil)
		}
		sponsor.EndDate = endDate
	}
	if reqData.IsActive != nil {
		sponsor.IsActive = *reqData.IsActive
	}

	err := db.Transaction(func(tx *gorm.DB) error {
		if reqData.IsActive != nil && *reqData.IsActive {
			if err := tx.Model(&models.Sponsor{}).Where("id <> ? AND is_active = ?", sponsor.ID, true).
				Update("is_active", false).Error; err != nil {
				return err
			}
		}
		return tx.Save(&sponsor).Error
	})
	if err != nil {
		log.Printf("Error updating sponsor %d: %v", id, err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to update sponsor!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Sponsor updated successfully.", sponsor)
}

// DeleteSponsor removes a sponsor permanently.
func DeleteSponsor(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid sponsor id!", nil)
	}

	res := database.Database.Db.Delete(&models.Sponsor{}, id)
	if res.Error != nil {
		log.Printf("Error deleting sponsor %d: %v", id, res.Error)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to delete sponsor!", nil)
	}
	if res.RowsAffected == 0 {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Sponsor not found!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Sponsor deleted successfully.", nil)
}
