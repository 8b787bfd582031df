package Models

import (
	"gorm.io/gorm"
)

type Customer struct {
	gorm.Model
	Name    string `json:"name" gorm:"not null"`
	Phone   string `json:"phone" gorm:"not null;uniqueIndex"`
	Address string `json:"address"`
}

type CustomerRequest struct {
	Name    string `json:"name" validate:"required"`
	Phone   string `json:"phone" validate:"required"`
	Address string `json:"address"`
}
