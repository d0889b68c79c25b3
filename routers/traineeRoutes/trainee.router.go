package traineeRoutes

import (
	traineeControllers "fams/controllers/trainee"
	"fams/middleware"
	traineeValidators "fams/validators/trainee"

	"github.com/gofiber/fiber/v2"
)

func SetupTraineeRoutes(app *fiber.App) {
	// Admin console views
	app.Get("/api/trainees", middleware.AdminAuthMiddleware, traineeControllers.ListTrainees)
	app.Patch("/api/trainees/:id", middleware.AdminAuthMiddleware, traineeValidators.Update(), traineeControllers.UpdateTrainee)

	// Trainee dashboard
	traineeGroup := app.Group("/api/trainee")
	traineeGroup.Post("/login", traineeValidators.Login(), traineeControllers.Login)
	traineeGroup.Get("/me", middleware.TraineeJWTMiddleware, traineeControllers.Me)
	traineeGroup.Get("/dashboard", middleware.TraineeJWTMiddleware, traineeControllers.Dashboard)
	traineeGroup.Post("/progress", middleware.TraineeJWTMiddleware, traineeValidators.SelfProgress(), traineeControllers.UpdateOwnProgress)
}
