package Models

import (
	"gorm.io/gorm"
)

type Invoice struct {
	gorm.Model
	WorkOrderID uint   `json:"work_order_id" gorm:"not null;index"`
	InvoiceDate string `json:"invoice_date" gorm:"not null"` // YYYY-MM-DD
	// TotalAmount is a snapshot of the work order total at creation time.
	// Later line item changes do not touch it.
	TotalAmount float64 `json:"total_amount" gorm:"not null"`
	Status      string  `json:"status" gorm:"default:'Unpaid'"`
}

// InvoiceRow is an invoice joined with its work order, vehicle and customer.
type InvoiceRow struct {
	ID            uint    `json:"id"`
	WorkOrderID   uint    `json:"work_order_id"`
	InvoiceDate   string  `json:"invoice_date"`
	TotalAmount   float64 `json:"total_amount"`
	Status        string  `json:"status"`
	EntryDate     string  `json:"entry_date"`
	LicensePlate  string  `json:"license_plate"`
	CustomerName  string  `json:"customer_name"`
	CustomerPhone string  `json:"customer_phone"`
}
