package routes

import (
	"github.com/gofiber/contrib/websocket"
	"github.com/gofiber/fiber/v2"
	"github.com/jiraphat04/classroom_booking/handlers"
	"github.com/jiraphat04/classroom_booking/middleware"
)

func NotificationRoutes(app *fiber.App) {
	api := app.Group("/api/v1")

	notification := api.Group("/notifications", middleware.Protected())
	notification.Get("", handlers.GetMyNotifications)
	notification.Patch("/read-all", handlers.MarkAllNotificationsRead)
	notification.Patch("/:notificationId/read", handlers.MarkNotificationRead)
	notification.Delete("/:notificationId", handlers.DeleteNotification)

	api.Use("/ws", func(c *fiber.Ctx) error {
		if !websocket.IsWebSocketUpgrade(c) {
			return fiber.ErrUpgradeRequired
		}
		return c.Next()
	})
	api.Get("/ws", websocket.New(handlers.ServeWs))
}
