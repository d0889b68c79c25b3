package database

import (
	"fams/config"
	"fams/models"
	"log"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// Seed creates the bootstrap admin user and default system settings if they
// do not exist yet. Safe to run on every startup.
func Seed(db *gorm.DB) error {
	if err := seedAdminUser(db); err != nil {
		return err
	}
	return seedDefaultSettings(db)
}

func seedAdminUser(db *gorm.DB) error {
	if config.AppConfig.AdminPassword == "" {
		log.Println("Skipping admin seed: ADMIN_PASSWORD is not configured.")
		return nil
	}

	var existing models.User
	err := db.Where("email = ?", config.AppConfig.AdminEmail).First(&existing).Error
	if err == nil {
		return nil
	}
	if err != gorm.ErrRecordNotFound {
		return err
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(config.AppConfig.AdminPassword), config.AppConfig.SaltRound)
	if err != nil {
		return err
	}

	admin := models.User{
		Email:     config.AppConfig.AdminEmail,
		FirstName: "Admin",
		LastName:  "User",
		Role:      models.RoleAdmin,
		Password:  string(hashed),
	}
	if err := db.Create(&admin).Error; err != nil {
		return err
	}

	log.Printf("Seeded admin user %s", admin.Email)
	return nil
}

func seedDefaultSettings(db *gorm.DB) error {
	defaults := map[string]string{
		models.SettingRegistrationEnabled: "true",
	}

	for key, value := range defaults {
		var existing models.SystemSetting
		err := db.Where("key = ?", key).First(&existing).Error
		if err == gorm.ErrRecordNotFound {
			if err := db.Create(&models.SystemSetting{Key: key, Value: value}).Error; err != nil {
				return err
			}
			continue
		}
		if err != nil {
			return err
		}
	}
	return nil
}
