package Models

import (
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// ServiceTemplate is a reusable catalog entry for labor line items.
type ServiceTemplate struct {
	gorm.Model
	Name         string  `json:"name" gorm:"not null;uniqueIndex"`
	Description  string  `json:"description"`
	DefaultPrice float64 `json:"default_price" gorm:"default:0"`
	Category     string  `json:"category" gorm:"default:'General'"`
	IsActive     bool    `json:"is_active" gorm:"default:true"`
}

// SparePartTemplate is a reusable catalog entry for part line items.
type SparePartTemplate struct {
	gorm.Model
	Name         string  `json:"name" gorm:"not null;uniqueIndex"`
	Description  string  `json:"description"`
	DefaultPrice float64 `json:"default_price" gorm:"default:0"`
	Category     string  `json:"category" gorm:"default:'General'"`
	Supplier     string  `json:"supplier"`
	PartNumber   string  `json:"part_number"`
	IsActive     bool    `json:"is_active" gorm:"default:true"`

	// Vehicle models this part fits, stored as a JSON array
	CompatibleModels     []string       `json:"compatible_models" gorm:"-"`
	JSONCompatibleModels datatypes.JSON `json:"-" gorm:"column:compatible_models"`
}

type ServiceTemplateRequest struct {
	Name         string  `json:"name" validate:"required"`
	Description  string  `json:"description"`
	DefaultPrice float64 `json:"default_price" validate:"gte=0"`
	Category     string  `json:"category"`
}

type SparePartTemplateRequest struct {
	Name             string   `json:"name" validate:"required"`
	Description      string   `json:"description"`
	DefaultPrice     float64  `json:"default_price" validate:"gte=0"`
	Category         string   `json:"category"`
	Supplier         string   `json:"supplier"`
	PartNumber       string   `json:"part_number"`
	CompatibleModels []string `json:"compatible_models"`
}
