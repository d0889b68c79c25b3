package adminController

import (
	"crypto/subtle"
	"fams/config"
	"fams/database"
	"fams/middleware"
	"fams/models"
	adminValidator "fams/validators/admin"
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// Login validates the configured admin credential and mints an opaque
// session token, returned as an HTTP-only cookie.
func Login(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedLogin").(*adminValidator.LoginRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	adminEmail := config.AppConfig.AdminEmail
	adminPassword := config.AppConfig.AdminPassword

	if adminPassword == "" {
		log.Println("Admin login rejected: ADMIN_PASSWORD is not configured")
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Invalid credentials!", nil)
	}

	emailOk := subtle.ConstantTimeCompare([]byte(reqData.Email), []byte(adminEmail)) == 1
	passwordOk := subtle.ConstantTimeCompare([]byte(reqData.Password), []byte(adminPassword)) == 1
	if !emailOk || !passwordOk {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Invalid credentials!", nil)
	}

	db := database.Database.Db

	// Make sure the admin user row exists so sessions reference a real user.
	var admin models.User
	err := db.Where("email = ?", adminEmail).First(&admin).Error
	if err == gorm.ErrRecordNotFound {
		admin = models.User{
			Email:     adminEmail,
			FirstName: "Admin",
			LastName:  "User",
			Role:      models.RoleAdmin,
			Password:  "-", // login goes through the configured credential
		}
		if err := db.Create(&admin).Error; err != nil {
			log.Printf("Error creating admin user: %v", err)
			return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Login failed!", nil)
		}
	} else if err != nil {
		log.Printf("Error loading admin user: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Login failed!", nil)
	}

	token := middleware.AdminSessions.Create(admin.ID, admin.Email, models.RoleAdmin)

	c.Cookie(&fiber.Cookie{
		Name:     middleware.AdminCookieName,
		Value:    token,
		HTTPOnly: true,
		SameSite: "Lax",
		MaxAge:   int(middleware.AdminSessionTTL / time.Second),
	})

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Login successful.", fiber.Map{
		"user": fiber.Map{
			"id":    admin.ID,
			"email": admin.Email,
			"role":  admin.Role,
		},
	})
}

// Me returns the identity behind the current admin session.
func Me(c *fiber.Ctx) error {
	session, ok := c.Locals("adminSession").(middleware.AdminSession)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Session active.", fiber.Map{
		"id":    session.UserID,
		"email": session.Email,
		"role":  session.Role,
	})
}

// Logout destroys the session, clears the cookie and redirects home.
func Logout(c *fiber.Ctx) error {
	token := c.Cookies(middleware.AdminCookieName)
	if token != "" {
		middleware.AdminSessions.Destroy(token)
		c.Cookie(&fiber.Cookie{
			Name:     middleware.AdminCookieName,
			Value:    "",
			HTTPOnly: true,
			MaxAge:   -1,
		})
	}
	return c.Redirect("/")
}

// GetStatistics recomputes the dashboard aggregates.
func GetStatistics(c *fiber.Ctx) error {
	stats, err := database.ComputeStatistics(database.Database.Db)
	if err != nil {
		log.Printf("Error computing statistics: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch statistics!", nil)
	}
	return middleware.JsonResponse(c, fiber.StatusOK, true, "Statistics fetched successfully.", stats)
}

// GetSetting returns one system setting by key.
func GetSetting(c *fiber.Ctx) error {
	key := c.Params("key")

	var setting models.SystemSetting
	err := database.Database.Db.Where("key = ?", key).First(&setting).Error
	if err == gorm.ErrRecordNotFound {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Setting not found!", nil)
	}
	if err != nil {
		log.Printf("Error fetching setting %s: %v", key, err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch setting!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Setting fetched successfully.", setting)
}

// UpdateSetting upserts one system setting. Opening the registration gate may
// also activate a chosen sponsor in the same admin action.
func UpdateSetting(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedSetting").(*adminValidator.UpdateSettingRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	db := database.Database.Db
	var setting models.SystemSetting

	err := db.Transaction(func(tx *gorm.DB) error {
		err := tx.Where("key = ?", reqData.Key).First(&setting).Error
		if err == gorm.ErrRecordNotFound {
			setting = models.SystemSetting{Key: reqData.Key, Value: reqData.Value}
			if err := tx.Create(&setting).Error; err != nil {
				return err
			}
		} else if err != nil {
			return err
		} else {
			setting.Value = reqData.Value
			if err := tx.Save(&setting).Error; err != nil {
				return err
			}
		}

		if reqData.Key == models.SettingRegistrationEnabled && reqData.Value == "true" && reqData.SponsorID != nil {
			if err := tx.Model(&models.Sponsor{}).Where("is_active = ?", true).Update("is_active", false).Error; err != nil {
				return err
			}
			res := tx.Model(&models.Sponsor{}).Where("id = ?", *reqData.SponsorID).Update("is_active", true)
			if res.Error != nil {
				return res.Error
			}
			if res.RowsAffected == 0 {
				return gorm.ErrRecordNotFound
			}
		}
		return nil
	})

	if err == gorm.ErrRecordNotFound {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Sponsor not found!", nil)
	}
	if err != nil {
		log.Printf("Error updating setting %s: %v", reqData.Key, err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to update setting!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Setting updated successfully.", setting)
}
