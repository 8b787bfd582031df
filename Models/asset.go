package Models

import (
	"gorm.io/gorm"
)

// Workshop assets: people, tools and diagnostic devices. They share the
// same screens so their shapes stay close on purpose.

type Employee struct {
	gorm.Model
	Name                string `json:"name" gorm:"not null"`
	Description         string `json:"description"`
	NumberOfWorkingDays int    `json:"number_of_working_days" gorm:"default:0"`
	Note                string `json:"note"`
	FilePath            string `json:"file_path"`
}

type Tool struct {
	gorm.Model
	Name        string  `json:"name" gorm:"not null"`
	Description string  `json:"description"`
	Price       float64 `json:"price" gorm:"default:0"`
	Note        string  `json:"note"`
	FilePath    string  `json:"file_path"`
}

type Diagnostic struct {
	gorm.Model
	Name        string  `json:"name" gorm:"not null"`
	Description string  `json:"description"`
	Price       float64 `json:"price" gorm:"default:0"`
	Note        string  `json:"note"`
	FilePath    string  `json:"file_path"`
}

type EmployeeRequest struct {
	Name                string `json:"name" validate:"required"`
	Description         string `json:"description"`
	NumberOfWorkingDays int    `json:"number_of_working_days" validate:"gte=0"`
	Note                string `json:"note"`
	FilePath            string `json:"file_path"`
}

type AssetRequest struct {
	Name        string  `json:"name" validate:"required"`
	Description string  `json:"description"`
	Price       float64 `json:"price" validate:"gte=0"`
	Note        string  `json:"note"`
	FilePath    string  `json:"file_path"`
}
