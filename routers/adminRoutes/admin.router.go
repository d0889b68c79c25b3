package adminRoutes

import (
	adminControllers "fams/controllers/admin"
	"fams/middleware"
	adminValidators "fams/validators/admin"

	"github.com/gofiber/fiber/v2"
)

func SetupAdminRoutes(app *fiber.App) {
	adminGroup := app.Group("/api/admin")

	adminGroup.Post("/login", adminValidators.Login(), adminControllers.Login)
	adminGroup.Get("/logout", adminControllers.Logout)
	adminGroup.Get("/me", middleware.AdminAuthMiddleware, adminControllers.Me)

	app.Get("/api/statistics", middleware.AdminAuthMiddleware, adminControllers.GetStatistics)

	// Settings: public read (the landing page polls the registration gate),
	// admin-only write.
	app.Get("/api/settings/:key", adminControllers.GetSetting)
	app.Post("/api/settings", middleware.AdminAuthMiddleware, adminValidators.UpdateSetting(), adminControllers.UpdateSetting)
}
