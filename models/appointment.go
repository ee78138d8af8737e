package models

import (
	"time"

	"gorm.io/gorm"
)

type AppointmentStatus string

const (
	StatusPending   AppointmentStatus = "pending"
	StatusConfirmed AppointmentStatus = "confirmed"
	StatusCancelled AppointmentStatus = "cancelled"
)

// Canonical layouts for the booking slot fields.
const (
	DateLayout = "2006-01-02"
	TimeLayout = "15:04"
)

// Appointment is one booked slot. A slot is the (doctor, date, time)
// triple; the partial unique index keeps at most one non-cancelled
// appointment per slot even under concurrent bookings.
type Appointment struct {
	ID        uint              `json:"id" gorm:"primaryKey"`
	DoctorID  uint              `json:"doctor_id" gorm:"not null;uniqueIndex:idx_slot,where:status <> 'cancelled'"`
	Doctor    Doctor            `json:"doctor,omitempty" gorm:"foreignKey:DoctorID"`
	PatientID uint              `json:"patient_id" gorm:"not null"`
	Patient   User              `json:"patient,omitempty" gorm:"foreignKey:PatientID"`
	Date      string            `json:"date" gorm:"size:10;uniqueIndex:idx_slot,where:status <> 'cancelled'"`
	Time      string            `json:"time" gorm:"size:5;uniqueIndex:idx_slot,where:status <> 'cancelled'"`
	Status    AppointmentStatus `json:"status" gorm:"size:20"`
	CreatedAt time.Time         `json:"created_at"`
	UpdatedAt time.Time         `json:"updated_at"`
}

func (a *Appointment) BeforeCreate(tx *gorm.DB) error {
	if a.Status == "" {
		a.Status = StatusPending
	}
	return nil
}

// Cancel marks the appointment cancelled. Cancelling twice is a no-op.
func (a *Appointment) Cancel(tx *gorm.DB) error {
	if a.Status == StatusCancelled {
		return nil
	}
	a.Status = StatusCancelled
	return tx.Save(a).Error
}
