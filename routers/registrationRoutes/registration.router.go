package registrationRoutes

import (
	registrationControllers "fams/controllers/registration"
	registrationValidators "fams/validators/registration"

	"github.com/gofiber/fiber/v2"
)

func SetupRegistrationRoutes(app *fiber.App) {
	registerGroup := app.Group("/api/register")

	registerGroup.Post("/step1", registrationValidators.Step1(), registrationControllers.Step1)
	registerGroup.Post("/verify", registrationValidators.Verify(), registrationControllers.VerifyCode)
	registerGroup.Post("/complete", registrationValidators.Complete(), registrationControllers.Complete)
	registerGroup.Post("/photo", registrationControllers.UploadPhoto)
}
