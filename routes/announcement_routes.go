package routes

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jiraphat04/classroom_booking/handlers"
	"github.com/jiraphat04/classroom_booking/middleware"
)

func AnnouncementRoutes(app *fiber.App) {
	api := app.Group("/api/v1")

	announcements := api.Group("/announcements", middleware.Protected())
	announcements.Get("/active", handlers.GetActiveAnnouncements)

	manage := api.Group("/announcements", middleware.Protected(), middleware.StaffRequired())
	manage.Get("", handlers.GetAllAnnouncements)
	manage.Post("", handlers.CreateAnnouncement)
	manage.Delete("/:announcementId", handlers.DeleteAnnouncement)
}
