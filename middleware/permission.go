package middleware

import (
	"github.com/gofiber/fiber/v2"

	"github.com/Yash-231-hue/clinic-booking/models"
)

// RequireAdmin gates doctor management and schedule views.
func RequireAdmin() fiber.Handler {
	return func(c *fiber.Ctx) error {
		if CurrentPrincipal(c).Kind != models.PrincipalAdmin {
			return c.Status(fiber.StatusForbidden).JSON(fiber.Map{
				"error": "Admin access required",
			})
		}
		return c.Next()
	}
}

// RequirePatient gates booking operations. Admins hold no patient
// identity in this model, so they are rejected outright rather than
// treated as a superset of patients.
func RequirePatient() fiber.Handler {
	return func(c *fiber.Ctx) error {
		if CurrentPrincipal(c).Kind != models.PrincipalPatient {
			return c.Status(fiber.StatusForbidden).JSON(fiber.Map{
				"error": "Admins cannot book or manage personal appointments. Use the admin panel to manage doctors.",
			})
		}
		return c.Next()
	}
}
