package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/Yash-231-hue/clinic-booking/controllers"
	"github.com/Yash-231-hue/clinic-booking/middleware"
)

// SetupAdminRoutes configures doctor management and schedule views
func SetupAdminRoutes(app *fiber.App) {
	admin := app.Group("/admin", middleware.Protected(), middleware.RequireAdmin())
	admin.Get("/", controllers.AdminPanel)
	admin.Post("/doctors", controllers.AddDoctor)
	admin.Delete("/doctors/:id", controllers.DeleteDoctor)
	admin.Get("/doctors/:id/schedule", controllers.GetDoctorSchedule)
}
