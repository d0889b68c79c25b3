package sponsorRoutes

import (
	sponsorControllers "fams/controllers/sponsor"
	"fams/middleware"
	sponsorValidators "fams/validators/sponsor"

	"github.com/gofiber/fiber/v2"
)

func SetupSponsorRoutes(app *fiber.App) {
	sponsorGroup := app.Group("/api/sponsors")

	// The active sponsor is public: the landing page shows who is enrolling.
	sponsorGroup.Get("/active", sponsorControllers.GetActiveSponsor)

	sponsorGroup.Get("/", middleware.AdminAuthMiddleware, sponsorControllers.ListSponsors)
	sponsorGroup.Post("/", middleware.AdminAuthMiddleware, sponsorValidators.Create(), sponsorControllers.CreateSponsor)
	sponsorGroup.Patch("/:id", middleware.AdminAuthMiddleware, sponsorValidators.Update(), sponsorControllers.UpdateSponsor)
	sponsorGroup.Delete("/:id", middleware.AdminAuthMiddleware, sponsorControllers.DeleteSponsor)
}
