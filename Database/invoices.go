package Database

import (
	"time"

	"Workshop/Models"
)

// CreateInvoice issues an invoice for an existing work order. The amount is a
// snapshot of the order's total at this moment; later line item changes do
// not touch it. Returns ErrWorkOrderNotFound when the order does not exist.
func (s *Store) CreateInvoice(workOrderID uint) (uint, error) {
	details, err := s.GetWorkOrderDetails(workOrderID)
	if err != nil {
		return 0, err
	}

	invoice := Models.Invoice{
		WorkOrderID: workOrderID,
		InvoiceDate: time.Now().Format("2006-01-02"),
		TotalAmount: details.TotalCost,
		Status:      Models.PaymentUnpaid,
	}
	if err := s.DB.Create(&invoice).Error; err != nil {
		return 0, err
	}
	return invoice.ID, nil
}

// GetInvoices returns all invoices with their order, vehicle and customer.
func (s *Store) GetInvoices() ([]Models.InvoiceRow, error) {
	var rows []Models.InvoiceRow
	err := s.DB.Raw(`
		SELECT
			i.id,
			i.work_order_id,
			i.invoice_date,
			i.total_amount,
			i.status,
			wo.entry_date,
			v.license_plate,
			c.name as customer_name,
			c.phone as customer_phone
		FROM invoices i
		JOIN work_orders wo ON i.work_order_id = wo.id
		JOIN vehicles v ON wo.vehicle_id = v.id
		JOIN customers c ON v.customer_phone = c.phone
		ORDER BY i.invoice_date DESC`).Scan(&rows).Error
	return rows, err
}

// GetInvoiceByID returns one joined invoice row, or nil when missing.
func (s *Store) GetInvoiceByID(invoiceID uint) (*Models.InvoiceRow, error) {
	var row Models.InvoiceRow
	result := s.DB.Raw(`
		SELECT
			i.id,
			i.work_order_id,
			i.invoice_date,
			i.total_amount,
			i.status,
			wo.entry_date,
			v.license_plate,
			c.name as customer_name,
			c.phone as customer_phone
		FROM invoices i
		JOIN work_orders wo ON i.work_order_id = wo.id
		JOIN vehicles v ON wo.vehicle_id = v.id
		JOIN customers c ON v.customer_phone = c.phone
		WHERE i.id = ?`, invoiceID).Scan(&row)
	if result.Error != nil {
		return nil, result.Error
	}
	if result.RowsAffected == 0 {
		return nil, nil
	}
	return &row, nil
}

func (s *Store) UpdateInvoiceStatus(invoiceID uint, status string) (int64, error) {
	result := s.DB.Model(&Models.Invoice{}).Where("id = ?", invoiceID).
		Update("status", status)
	return result.RowsAffected, result.Error
}
