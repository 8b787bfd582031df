package Models

import (
	"gorm.io/gorm"
)

type Vehicle struct {
	gorm.Model
	LicensePlate string `json:"license_plate" gorm:"not null;uniqueIndex"`
	Brand        string `json:"brand" gorm:"not null"`
	// Named VehicleModel because gorm.Model already promotes a Model field.
	VehicleModel string `json:"model" gorm:"column:model;not null"`
	// Links to customers.phone. Kept as a plain column on purpose: the
	// customer can be deleted independently and the vehicle keeps the number.
	CustomerPhone string `json:"customer_phone" gorm:"not null;index"`
}

// VehicleRow is a vehicle joined with its owner's name.
type VehicleRow struct {
	ID            uint   `json:"id"`
	LicensePlate  string `json:"license_plate"`
	Brand         string `json:"brand"`
	Model         string `json:"model"`
	CustomerPhone string `json:"customer_phone"`
	CustomerName  string `json:"customer_name"`
}

type VehicleRequest struct {
	LicensePlate  string `json:"license_plate" validate:"required"`
	Brand         string `json:"brand" validate:"required"`
	Model         string `json:"model" validate:"required"`
	CustomerPhone string `json:"customer_phone" validate:"required"`
}

// VehicleType is a known brand/model pair used to feed dropdowns.
type VehicleType struct {
	gorm.Model
	Brand     string `json:"brand" gorm:"not null;uniqueIndex:idx_vehicle_types_brand_model"`
	ModelName string `json:"model" gorm:"column:model;not null;uniqueIndex:idx_vehicle_types_brand_model"`
}

type VehicleTypeRequest struct {
	Brand string `json:"brand" validate:"required"`
	Model string `json:"model" validate:"required"`
}
