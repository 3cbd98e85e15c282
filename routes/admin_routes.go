package routes

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jiraphat04/classroom_booking/handlers"
	"github.com/jiraphat04/classroom_booking/middleware"
)

func AdminRoutes(app *fiber.App) {
	api := app.Group("/api/v1")

	admin := api.Group("/admin", middleware.Protected(), middleware.StaffRequired())

	admin.Get("/dashboard-stats", handlers.GetDashboardStats)

	users := admin.Group("/users")
	users.Get("", handlers.GetAllUsers)
	users.Patch("/:userId", handlers.UpdateUser)
	users.Put("/:userId/status", handlers.ToggleUserStatus)
	users.Delete("/:userId", handlers.DeleteUser)
}
