package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/Yash-231-hue/clinic-booking/controllers"
	"github.com/Yash-231-hue/clinic-booking/middleware"
)

// SetupAppointmentRoutes configures all appointment related routes.
// Every route is patient-only: admins have no patient identity.
func SetupAppointmentRoutes(app *fiber.App) {
	appointment := app.Group("/appointments", middleware.Protected(), middleware.RequirePatient())
	appointment.Post("/", controllers.BookAppointment)
	appointment.Get("/", controllers.GetMyAppointments)
	appointment.Post("/:id/cancel", controllers.CancelAppointment)
}
