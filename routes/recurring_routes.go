package routes

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jiraphat04/classroom_booking/handlers"
	"github.com/jiraphat04/classroom_booking/middleware"
)

func RecurringRoutes(app *fiber.App) {
	api := app.Group("/api/v1")

	recurring := api.Group("/recurring-bookings", middleware.Protected())
	recurring.Get("", handlers.GetRecurringBookings)
	recurring.Get("/:recurringId", handlers.GetRecurringBooking)

	manage := api.Group("/recurring-bookings", middleware.Protected(), middleware.TeacherOrStaffRequired())
	manage.Post("", handlers.CreateRecurringBooking)
	manage.Patch("/:recurringId", handlers.UpdateRecurringBooking)
	manage.Delete("/:recurringId", handlers.DeleteRecurringBooking)
}
