package Models

import (
	"gorm.io/gorm"
)

// Service is a labor line item on a work order.
type Service struct {
	gorm.Model
	WorkOrderID uint    `json:"work_order_id" gorm:"not null;index"`
	Name        string  `json:"name" gorm:"not null"`
	Description string  `json:"description"`
	Quantity    int     `json:"quantity" gorm:"default:1"`
	Price       float64 `json:"price" gorm:"not null"`
	FilePath    string  `json:"file_path"`
}

// SparePart is a part line item on a work order.
type SparePart struct {
	gorm.Model
	WorkOrderID uint    `json:"work_order_id" gorm:"not null;index"`
	Name        string  `json:"name" gorm:"not null"`
	Description string  `json:"description"`
	Quantity    int     `json:"quantity" gorm:"default:1"`
	Price       float64 `json:"price" gorm:"not null"`
	FilePath    string  `json:"file_path"`
}

// LineItemRequest covers both services and spare parts.
type LineItemRequest struct {
	Name        string  `json:"name" validate:"required"`
	Description string  `json:"description"`
	Quantity    int     `json:"quantity" validate:"gte=0"`
	Price       float64 `json:"price" validate:"gte=0"`
	FilePath    string  `json:"file_path"`
}
