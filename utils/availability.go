package utils

import (
	"github.com/Yash-231-hue/clinic-booking/db"
	"github.com/Yash-231-hue/clinic-booking/models"
)

// CheckAvailability reports whether a doctor's slot is free, i.e. no
// non-cancelled appointment holds the (doctor, date, time) triple.
// This is the fast-path check for a friendly error message; the
// partial unique index on appointments is the authoritative guard.
func CheckAvailability(doctorID uint, date, timeOfDay string) (bool, error) {
	var count int64
	err := db.DB.Model(&models.Appointment{}).
		Where("doctor_id = ? AND date = ? AND time = ? AND status <> ?",
			doctorID, date, timeOfDay, models.StatusCancelled).
		Count(&count).Error
	if err != nil {
		return false, err
	}
	return count == 0, nil
}
