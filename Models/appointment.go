package Models

import (
	"gorm.io/gorm"
)

type Appointment struct {
	gorm.Model
	Name        string `json:"name" gorm:"not null"`
	Description string `json:"description"`
	Date        string `json:"date" gorm:"not null;index"` // YYYY-MM-DD or YYYY-MM-DD HH:MM
}

type AppointmentRequest struct {
	Name        string `json:"name" validate:"required"`
	Description string `json:"description"`
	Date        string `json:"date" validate:"required"`
}
