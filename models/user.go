package models

import (
	"time"
)

type User struct {
	ID           uint          `json:"id" gorm:"primaryKey"`
	Username     string        `json:"username" gorm:"size:30;uniqueIndex"`
	Email        string        `json:"email" gorm:"size:120;uniqueIndex"`
	Password     string        `json:"password,omitempty"`
	Contact      string        `json:"contact" gorm:"size:30"`
	IsAdmin      bool          `json:"is_admin"`
	Appointments []Appointment `json:"appointments,omitempty" gorm:"foreignKey:PatientID"`
	CreatedAt    time.Time     `json:"created_at"`
	UpdatedAt    time.Time     `json:"updated_at"`
}
