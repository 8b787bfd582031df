package Models

import (
	"gorm.io/gorm"
)

// Work order lifecycle statuses.
const (
	StatusOpen       = "Open"
	StatusInProgress = "In Progress"
	StatusCompleted  = "Completed"
)

// Payment statuses.
const (
	PaymentUnpaid = "Unpaid"
	PaymentPaid   = "Paid"
)

type WorkOrder struct {
	gorm.Model
	VehicleID uint   `json:"vehicle_id" gorm:"not null;index"`
	EntryDate string `json:"entry_date" gorm:"not null"` // YYYY-MM-DD
	Status    string `json:"status" gorm:"default:'Open'"`
	// TotalCost is derived from the order's services and spare parts and is
	// rewritten on every line item change. Never set it directly.
	TotalCost     float64 `json:"total_cost" gorm:"default:0"`
	PaymentStatus string  `json:"payment_status" gorm:"default:'Unpaid'"`
}

// WorkOrderRow is a work order joined with its vehicle and customer.
type WorkOrderRow struct {
	ID            uint    `json:"id"`
	VehicleID     uint    `json:"vehicle_id"`
	EntryDate     string  `json:"entry_date"`
	Status        string  `json:"status"`
	TotalCost     float64 `json:"total_cost"`
	PaymentStatus string  `json:"payment_status"`
	LicensePlate  string  `json:"license_plate"`
	Brand         string  `json:"brand"`
	Model         string  `json:"model"`
	CustomerName  string  `json:"customer_name"`
	CustomerPhone string  `json:"customer_phone"`
}

// WorkOrderDetails bundles the joined row with its line items and the
// service type tags derived from them.
type WorkOrderDetails struct {
	WorkOrderRow
	Services     []Service   `json:"services"`
	SpareParts   []SparePart `json:"spare_parts"`
	ServiceTypes []string    `json:"service_types"`
}

type WorkOrderRequest struct {
	VehicleID uint   `json:"vehicle_id" validate:"required"`
	EntryDate string `json:"entry_date"`
	Status    string `json:"status"`
}
