package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/Yash-231-hue/clinic-booking/controllers"
)

// SetupDoctorRoutes configures the public doctor directory routes
func SetupDoctorRoutes(app *fiber.App) {
	doctors := app.Group("/doctors")
	doctors.Get("/", controllers.GetDoctors)
	doctors.Get("/:id", controllers.GetDoctor)
}
