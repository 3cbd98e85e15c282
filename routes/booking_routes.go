package routes

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jiraphat04/classroom_booking/handlers"
	"github.com/jiraphat04/classroom_booking/middleware"
)

func BookingRoutes(app *fiber.App) {
	api := app.Group("/api/v1")

	booking := api.Group("/bookings", middleware.Protected())
	booking.Post("", handlers.CreateBooking)
	booking.Get("", handlers.GetBookings)
	booking.Get("/calendar/view", handlers.GetCalendarView)
	booking.Get("/:bookingId", handlers.GetBooking)
	booking.Patch("/:bookingId/cancel", handlers.CancelBooking)
	booking.Post("/:bookingId/check-in", handlers.CheckInBooking)
	booking.Post("/:bookingId/check-out", handlers.CheckOutBooking)

	staffBooking := api.Group("/bookings", middleware.Protected(), middleware.StaffRequired())
	staffBooking.Patch("/:bookingId/approve", handlers.ApproveBooking)
	staffBooking.Patch("/:bookingId/reject", handlers.RejectBooking)
	staffBooking.Post("/batch-approve", handlers.BatchApproveBookings)
}
