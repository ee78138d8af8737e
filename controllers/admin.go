package controllers

import (
	"os"
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"github.com/Yash-231-hue/clinic-booking/db"
	"github.com/Yash-231-hue/clinic-booking/models"
	"github.com/Yash-231-hue/clinic-booking/utils"
)

// AdminPanel returns the doctor list along with the clinic's admin
// contact details for the panel page.
func AdminPanel(c *fiber.Ctx) error {
	doctors, err := FetchDirectory()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to fetch doctors",
			Error:   err.Error(),
		})
	}
	return c.JSON(fiber.Map{
		"doctors":       doctors,
		"admin_email":   os.Getenv("ADMIN_EMAIL"),
		"admin_contact": os.Getenv("ADMIN_CONTACT"),
	})
}

// AddDoctor godoc
// @Summary Create a doctor record
// @Tags admin
// @Accept json
// @Produce json
// @Success 201 {object} models.Doctor
// @Failure 400 {object} utils.ErrorResponse
// @Router /admin/doctors [post]
func AddDoctor(c *fiber.Ctx) error {
	doctor := new(models.Doctor)
	if err := c.BodyParser(doctor); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
			Message: "Failed to parse request body",
			Error:   err.Error(),
		})
	}

	if doctor.Name == "" || doctor.Degree == "" || doctor.Specialization == "" {
		return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
			Message: "Name, degree and specialization are required",
			Error:   "missing required fields",
		})
	}
	if len(doctor.Bio) > models.MaxBioLength {
		return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
			Message: "Bio must be at most 500 characters",
			Error:   "bio too long",
		})
	}

	doctor.ID = 0
	doctor.CreatedAt = time.Time{}
	if err := db.DB.Create(doctor).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to create doctor",
			Error:   err.Error(),
		})
	}

	InvalidateDirectory()
	return c.Status(fiber.StatusCreated).JSON(doctor)
}

// DeleteDoctor godoc
// @Summary Delete a doctor and all dependent appointments
// @Tags admin
// @Produce json
// @Param id path int true "Doctor ID"
// @Success 200 {object} fiber.Map
// @Failure 404 {object} utils.ErrorResponse
// @Router /admin/doctors/{id} [delete]
func DeleteDoctor(c *fiber.Ctx) error {
	id := c.Params("id")

	var doctor models.Doctor
	if err := db.DB.First(&doctor, id).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(utils.ErrorResponse{
			Message: "Doctor not found",
			Error:   err.Error(),
		})
	}

	// Dependent appointments and the doctor row go in one
	// transaction so a failure leaves neither half applied.
	err := db.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("doctor_id = ?", doctor.ID).Delete(&models.Appointment{}).Error; err != nil {
			return err
		}
		return tx.Delete(&doctor).Error
	})
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to delete doctor",
			Error:   err.Error(),
		})
	}

	InvalidateDirectory()
	return c.JSON(fiber.Map{
		"message":  "Doctor deleted successfully",
		"redirect": "/admin",
	})
}

// GetDoctorSchedule godoc
// @Summary A doctor's appointment schedule for one day
// @Description Appointments for the doctor on the given date, earliest first. Defaults to today when the date is missing or unparseable.
// @Tags admin
// @Produce json
// @Param id path int true "Doctor ID"
// @Param date query string false "Date (YYYY-MM-DD)"
// @Success 200 {object} fiber.Map
// @Failure 404 {object} utils.ErrorResponse
// @Router /admin/doctors/{id}/schedule [get]
func GetDoctorSchedule(c *fiber.Ctx) error {
	id := c.Params("id")

	var doctor models.Doctor
	if err := db.DB.First(&doctor, id).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(utils.ErrorResponse{
			Message: "Doctor not found",
			Error:   err.Error(),
		})
	}

	// Bad or missing date falls back to today rather than failing.
	date := c.Query("date")
	if _, err := time.Parse(models.DateLayout, date); err != nil {
		date = time.Now().UTC().Format(models.DateLayout)
	}

	var appointments []models.Appointment
	if err := db.DB.Preload("Patient").
		Where("doctor_id = ? AND date = ?", doctor.ID, date).
		Order("time asc").
		Find(&appointments).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to fetch schedule",
			Error:   err.Error(),
		})
	}

	// Don't send password hashes along with patient details
	for i := range appointments {
		appointments[i].Patient.Password = ""
	}

	return c.JSON(fiber.Map{
		"doctor":   doctor,
		"date":     date,
		"schedule": appointments,
	})
}
