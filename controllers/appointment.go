package controllers

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"github.com/Yash-231-hue/clinic-booking/db"
	"github.com/Yash-231-hue/clinic-booking/middleware"
	"github.com/Yash-231-hue/clinic-booking/models"
	"github.com/Yash-231-hue/clinic-booking/utils"
)

// BookAppointment godoc
// @Summary Book an appointment slot
// @Description Book a doctor's slot for the authenticated patient
// @Tags appointments
// @Accept json
// @Produce json
// @Success 201 {object} models.Appointment
// @Failure 400 {object} utils.ErrorResponse
// @Failure 404 {object} utils.ErrorResponse
// @Failure 409 {object} utils.ErrorResponse
// @Router /appointments [post]
func BookAppointment(c *fiber.Ctx) error {
	type BookingInput struct {
		DoctorID uint   `json:"doctor_id"`
		Date     string `json:"date"`
		Time     string `json:"time"`
	}

	input := new(BookingInput)
	if err := c.BodyParser(input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
			Message: "Failed to parse request body",
			Error:   err.Error(),
		})
	}

	if _, err := time.Parse(models.DateLayout, input.Date); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
			Message: "Invalid date, expected YYYY-MM-DD",
			Error:   err.Error(),
		})
	}
	if _, err := time.Parse(models.TimeLayout, input.Time); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
			Message: "Invalid time, expected HH:MM",
			Error:   err.Error(),
		})
	}

	var doctor models.Doctor
	if err := db.DB.First(&doctor, input.DoctorID).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(utils.ErrorResponse{
			Message: "Doctor not found",
			Error:   err.Error(),
		})
	}

	available, err := utils.CheckAvailability(input.DoctorID, input.Date, input.Time)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to check availability",
			Error:   err.Error(),
		})
	}
	if !available {
		return c.Status(fiber.StatusConflict).JSON(utils.ErrorResponse{
			Message: "This slot is already taken. Choose another time.",
			Error:   "slot unavailable",
		})
	}

	principal := middleware.CurrentPrincipal(c)
	appointment := models.Appointment{
		DoctorID:  input.DoctorID,
		PatientID: principal.UserID,
		Date:      input.Date,
		Time:      input.Time,
		Status:    models.StatusPending,
	}

	if err := db.DB.Create(&appointment).Error; err != nil {
		// A concurrent booking can slip past the availability check;
		// the slot index turns the loser's insert into a duplicate.
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return c.Status(fiber.StatusConflict).JSON(utils.ErrorResponse{
				Message: "This slot is already taken. Choose another time.",
				Error:   "slot unavailable",
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to create appointment",
			Error:   err.Error(),
		})
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message":     "Appointment requested. You can view it in My Appointments.",
		"redirect":    "/appointments",
		"appointment": appointment,
	})
}

// GetMyAppointments godoc
// @Summary List the patient's appointments
// @Description All appointments owned by the authenticated patient, cancelled history included
// @Tags appointments
// @Produce json
// @Success 200 {array} models.Appointment
// @Failure 500 {object} utils.ErrorResponse
// @Router /appointments [get]
func GetMyAppointments(c *fiber.Ctx) error {
	principal := middleware.CurrentPrincipal(c)

	var appointments []models.Appointment
	if err := db.DB.Preload("Doctor").
		Where("patient_id = ?", principal.UserID).
		Order("date asc, time asc").
		Find(&appointments).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to fetch appointments",
			Error:   err.Error(),
		})
	}
	return c.JSON(appointments)
}

// CancelAppointment godoc
// @Summary Cancel an appointment
// @Description Cancel an appointment owned by the authenticated patient
// @Tags appointments
// @Produce json
// @Param id path int true "Appointment ID"
// @Success 200 {object} models.Appointment
// @Failure 403 {object} utils.ErrorResponse
// @Failure 404 {object} utils.ErrorResponse
// @Router /appointments/{id}/cancel [post]
func CancelAppointment(c *fiber.Ctx) error {
	id := c.Params("id")

	var appointment models.Appointment
	if err := db.DB.First(&appointment, id).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(utils.ErrorResponse{
			Message: "Appointment not found",
			Error:   err.Error(),
		})
	}

	// Ownership is checked against the resolved principal on every
	// request, whatever state the appointment is in.
	principal := middleware.CurrentPrincipal(c)
	if appointment.PatientID != principal.UserID {
		return c.Status(fiber.StatusForbidden).JSON(utils.ErrorResponse{
			Message: "You can only cancel your own appointments",
			Error:   "forbidden",
		})
	}

	if err := appointment.Cancel(db.DB); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to cancel appointment",
			Error:   err.Error(),
		})
	}

	return c.JSON(fiber.Map{
		"message":     "Appointment cancelled",
		"redirect":    "/appointments",
		"appointment": appointment,
	})
}
