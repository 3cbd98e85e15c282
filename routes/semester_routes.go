package routes

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jiraphat04/classroom_booking/handlers"
	"github.com/jiraphat04/classroom_booking/middleware"
)

func SemesterRoutes(app *fiber.App) {
	api := app.Group("/api/v1")

	semesters := api.Group("/semesters", middleware.Protected())
	semesters.Get("", handlers.GetSemesters)
	semesters.Get("/active", handlers.GetActiveSemester)
	semesters.Get("/:semesterId", handlers.GetSemester)

	manage := api.Group("/semesters", middleware.Protected(), middleware.StaffRequired())
	manage.Post("", handlers.CreateSemester)
	manage.Patch("/:semesterId", handlers.UpdateSemester)
	manage.Delete("/:semesterId", handlers.DeleteSemester)

	specialDates := api.Group("/special-dates", middleware.Protected())
	specialDates.Get("", handlers.GetSpecialDates)
	specialDates.Get("/by-month", handlers.GetSpecialDatesByMonth)

	manageDates := api.Group("/special-dates", middleware.Protected(), middleware.StaffRequired())
	manageDates.Post("", handlers.CreateSpecialDate)
	manageDates.Delete("/:specialDateId", handlers.DeleteSpecialDate)
}
