package registrationController

import (
	"errors"
	"fams/config"
	"fams/database"
	"fams/middleware"
	"fams/models"
	"fams/utils"
	registrationValidator "fams/validators/registration"
	"log"

	"github.com/gofiber/fiber/v2"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// sendVerificationEmail is overridable in tests.
var sendVerificationEmail = utils.SendVerificationEmail

// Step1 collects credentials, issues a 6-digit verification code and emails
// it to the applicant. Re-submitting invalidates any prior code. The
// registration gate is enforced here: when registration_enabled is "false"
// the wizard cannot start.
func Step1(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedStep1").(*registrationValidator.Step1Request)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	db := database.Database.Db

	var gate models.SystemSetting
	if err := db.Where("key = ?", models.SettingRegistrationEnabled).First(&gate).Error; err == nil {
		if gate.Value == "false" {
			return middleware.JsonResponse(c, fiber.StatusForbidden, false, "Registration is currently closed!", nil)
		}
	}

	// Reject already-registered trainees
	if err := db.Where("email = ?", reqData.Email).First(&models.Trainee{}).Error; err == nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Email already registered!", nil)
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(reqData.Password), config.AppConfig.SaltRound)
	if err != nil {
		log.Printf("Error hashing password: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Registration failed!", nil)
	}

	code := utils.GenerateVerificationCode()
	utils.Verifications.Put(reqData.Email, code, string(hashedPassword))

	if err := sendVerificationEmail(reqData.Email, code); err != nil {
		log.Printf("Error sending verification email to %s: %v", reqData.Email, err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to send verification email. Please try again.", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Verification code sent to your email address.", fiber.Map{
		"email": reqData.Email,
	})
}

// VerifyCode checks the emailed code. Codes are one-time use and expire
// after ten minutes.
func VerifyCode(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedVerify").(*registrationValidator.VerifyRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	if err := utils.Verifications.Verify(reqData.Email, reqData.Code); err != nil {
		switch {
		case errors.Is(err, utils.ErrNoPendingCode):
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "No verification code found for this email!", nil)
		case errors.Is(err, utils.ErrCodeExpired):
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Verification code has expired!", nil)
		case errors.Is(err, utils.ErrCodeMismatch):
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid verification code!", nil)
		default:
			return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Verification failed!", nil)
		}
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Email verified successfully.", nil)
}

// Complete finalizes registration: requires a verified email and an active
// sponsor, allocates the trainee sequence atomically and creates the trainee
// together with their login account.
func Complete(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedComplete").(*registrationValidator.CompleteRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	db := database.Database.Db

	if err := db.Where("email = ?", reqData.Email).First(&models.Trainee{}).Error; err == nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Email already registered!", nil)
	}

	var sponsor models.Sponsor
	if err := db.Where("is_active = ?", true).First(&sponsor).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "No active sponsor for registration!", nil)
		}
		log.Printf("Error looking up active sponsor: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Registration completion failed!", nil)
	}

	passwordHash, err := utils.Verifications.ConsumeVerified(reqData.Email)
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Email has not been verified!", nil)
	}

	seq, err := database.NextTraineeSequence(db)
	if err != nil {
		log.Printf("Error allocating trainee sequence: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Registration completion failed!", nil)
	}

	var trainee models.Trainee
	err = db.Transaction(func(tx *gorm.DB) error {
		user := models.User{
			Email:     reqData.Email,
			FirstName: reqData.FirstName,
			LastName:  reqData.LastName,
			Role:      models.RoleTrainee,
			Password:  passwordHash,
		}
		if err := tx.Create(&user).Error; err != nil {
			return err
		}

		trainee = models.Trainee{
			UserID:              &user.ID,
			TraineeID:           utils.FormatTraineeID(seq),
			TagNumber:           utils.FormatTagNumber(seq),
			FirstName:           reqData.FirstName,
			LastName:            reqData.LastName,
			MiddleName:          reqData.MiddleName,
			Email:               reqData.Email,
			PhoneNumber:         reqData.PhoneNumber,
			Gender:              reqData.Gender,
			DateOfBirth:         reqData.DateOfBirth,
			StateOfOrigin:       reqData.StateOfOrigin,
			LocalGovernmentArea: reqData.LocalGovernmentArea,
			Nationality:         reqData.Nationality,
			PassportPhotoUrl:    reqData.PassportPhotoUrl,
			SponsorID:           &sponsor.ID,
			RoomNumber:          utils.PickRoomNumber(),
			LectureVenue:        utils.PickLectureVenue(),
			MealVenue:           utils.PickMealVenue(),
			IsActive:            true,
			EmailVerified:       true,
		}
		return tx.Create(&trainee).Error
	})
	if err != nil {
		log.Printf("Error creating trainee: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Registration completion failed!", nil)
	}

	// Best-effort notifications; no rollback if either fails.
	utils.SendWelcomeEmail(trainee.Email, trainee.FirstName, trainee.TraineeID, trainee.TagNumber,
		trainee.RoomNumber, trainee.LectureVenue, trainee.MealVenue)
	go utils.SendTagNumberSMS(trainee.PhoneNumber, trainee.FirstName, trainee.TagNumber)

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Registration completed successfully.", fiber.Map{
		"trainee": fiber.Map{
			"id":           trainee.ID,
			"traineeId":    trainee.TraineeID,
			"tagNumber":    trainee.TagNumber,
			"email":        trainee.Email,
			"roomNumber":   trainee.RoomNumber,
			"lectureVenue": trainee.LectureVenue,
			"mealVenue":    trainee.MealVenue,
		},
	})
}

// UploadPhoto stores a passport photo and returns its public URL.
func UploadPhoto(c *fiber.Ctx) error {
	file, err := c.FormFile("photo")
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Photo file is required!", nil)
	}

	savedPath, err := utils.SavePassportPhoto(file, config.AppConfig.UploadDir)
	if err != nil {
		log.Printf("Error saving passport photo: %v", err)
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Failed to save photo. Use a JPG or PNG image.", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Photo uploaded successfully.", fiber.Map{
		"url": utils.GetFileURL(savedPath),
	})
}
