package controllers

import (
	"log"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/Yash-231-hue/clinic-booking/db"
	"github.com/Yash-231-hue/clinic-booking/models"
	"github.com/Yash-231-hue/clinic-booking/redis"
	"github.com/Yash-231-hue/clinic-booking/utils"
)

const (
	directoryCacheKey = "doctors:directory"
	directoryCacheTTL = 5 * time.Minute
)

// GetDoctors godoc
// @Summary Public doctor directory
// @Description All doctors, newest first
// @Tags doctors
// @Produce json
// @Success 200 {array} models.Doctor
// @Failure 500 {object} utils.ErrorResponse
// @Router /doctors [get]
func GetDoctors(c *fiber.Ctx) error {
	var doctors []models.Doctor

	hit, err := redis.GetCache(directoryCacheKey, &doctors)
	if err != nil {
		log.Printf("directory cache read failed: %v", err)
	}
	if hit {
		return c.JSON(doctors)
	}

	doctors, err = FetchDirectory()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to fetch doctors",
			Error:   err.Error(),
		})
	}
	return c.JSON(doctors)
}

// GetDoctor godoc
// @Summary Get a doctor's public profile
// @Tags doctors
// @Produce json
// @Param id path int true "Doctor ID"
// @Success 200 {object} models.Doctor
// @Failure 404 {object} utils.ErrorResponse
// @Router /doctors/{id} [get]
func GetDoctor(c *fiber.Ctx) error {
	id := c.Params("id")
	var doctor models.Doctor
	if err := db.DB.First(&doctor, id).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(utils.ErrorResponse{
			Message: "Doctor not found",
			Error:   err.Error(),
		})
	}
	return c.JSON(doctor)
}

// FetchDirectory loads the directory from the store in display order
// (newest first) and rewarms the cache. The cron job calls this on a
// schedule so the public listing stays warm between writes.
func FetchDirectory() ([]models.Doctor, error) {
	var doctors []models.Doctor
	if err := db.DB.Order("created_at desc").Find(&doctors).Error; err != nil {
		return nil, err
	}
	if err := redis.SetCache(directoryCacheKey, doctors, directoryCacheTTL); err != nil {
		log.Printf("directory cache write failed: %v", err)
	}
	return doctors, nil
}

// InvalidateDirectory drops the cached listing after a doctor write.
func InvalidateDirectory() {
	if err := redis.DeleteCache(directoryCacheKey); err != nil {
		log.Printf("directory cache invalidation failed: %v", err)
	}
}
