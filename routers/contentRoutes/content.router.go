package contentRoutes

import (
	announcementControllers "fams/controllers/announcement"
	contentControllers "fams/controllers/content"
	progressControllers "fams/controllers/progress"
	"fams/middleware"
	contentValidators "fams/validators/content"

	"github.com/gofiber/fiber/v2"
)

func SetupContentRoutes(app *fiber.App) {
	contentGroup := app.Group("/api/content")
	contentGroup.Get("/", contentControllers.ListContent)
	contentGroup.Post("/", middleware.AdminAuthMiddleware, contentValidators.CreateContent(), contentControllers.CreateContent)
	contentGroup.Patch("/:id", middleware.AdminAuthMiddleware, contentValidators.UpdateContent(), contentControllers.UpdateContent)

	progressGroup := app.Group("/api/progress")
	progressGroup.Get("/:traineeId", middleware.AdminAuthMiddleware, progressControllers.GetTraineeProgress)
	progressGroup.Post("/", middleware.AdminAuthMiddleware, contentValidators.UpsertProgress(), progressControllers.UpsertProgress)

	announcementGroup := app.Group("/api/announcements")
	announcementGroup.Get("/", announcementControllers.ListAnnouncements)
	announcementGroup.Post("/", middleware.AdminAuthMiddleware, contentValidators.CreateAnnouncement(), announcementControllers.CreateAnnouncement)
	announcementGroup.Patch("/:id", middleware.AdminAuthMiddleware, contentValidators.UpdateAnnouncement(), announcementControllers.UpdateAnnouncement)
}
