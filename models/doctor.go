package models

import (
	"time"
)

// MaxBioLength bounds the free-text bio on a doctor record.
const MaxBioLength = 500

type Doctor struct {
	ID             uint          `json:"id" gorm:"primaryKey"`
	Name           string        `json:"name" gorm:"size:120"`
	Degree         string        `json:"degree" gorm:"size:200"`
	Specialization string        `json:"specialization" gorm:"size:200"`
	Bio            string        `json:"bio" gorm:"type:text"`
	Appointments   []Appointment `json:"appointments,omitempty" gorm:"foreignKey:DoctorID"`
	CreatedAt      time.Time     `json:"created_at"`
}
