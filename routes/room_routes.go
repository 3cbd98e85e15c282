package routes

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jiraphat04/classroom_booking/handlers"
	"github.com/jiraphat04/classroom_booking/middleware"
)

func RoomRoutes(app *fiber.App) {
	api := app.Group("/api/v1")

	rooms := api.Group("/rooms", middleware.Protected())
	rooms.Get("", handlers.GetRooms)
	rooms.Get("/available", handlers.GetAvailableRooms)
	rooms.Get("/:roomId", handlers.GetRoom)

	manage := api.Group("/rooms", middleware.Protected(), middleware.StaffRequired())
	manage.Post("", handlers.CreateRoom)
	manage.Patch("/:roomId", handlers.UpdateRoom)
	manage.Delete("/:roomId", handlers.DeleteRoom)
}
