package Database

import (
	"time"

	"Workshop/Models"
)

// workOrderColumns is the joined projection shared by every work order
// listing. The inner joins drop orders whose vehicle or customer is gone.
const workOrderColumns = `
	wo.id,
	wo.vehicle_id,
	wo.entry_date,
	wo.status,
	wo.total_cost,
	wo.payment_status,
	v.license_plate,
	v.brand,
	v.model,
	c.name as customer_name,
	c.phone as customer_phone`

const workOrderJoins = `
	FROM work_orders wo
	JOIN vehicles v ON wo.vehicle_id = v.id
	JOIN customers c ON v.customer_phone = c.phone`

func (s *Store) AddWorkOrder(vehicleID uint, entryDate, status string) (uint, error) {
	if entryDate == "" {
		entryDate = time.Now().Format("2006-01-02")
	}
	if status == "" {
		status = Models.StatusOpen
	}
	order := Models.WorkOrder{
		VehicleID:     vehicleID,
		EntryDate:     entryDate,
		Status:        status,
		PaymentStatus: Models.PaymentUnpaid,
	}
	if err := s.DB.Create(&order).Error; err != nil {
		return 0, err
	}
	return order.ID, nil
}

// GetWorkOrders returns all work orders with vehicle and customer information.
func (s *Store) GetWorkOrders() ([]Models.WorkOrderRow, error) {
	var rows []Models.WorkOrderRow
	err := s.DB.Raw(`SELECT `+workOrderColumns+workOrderJoins+`
		ORDER BY wo.entry_date DESC`).Scan(&rows).Error
	return rows, err
}

// GetWorkOrderDetails returns one order with its line items and the service
// type tags derived from them. Returns ErrWorkOrderNotFound when the order
// does not exist or its vehicle or customer is gone.
func (s *Store) GetWorkOrderDetails(workOrderID uint) (*Models.WorkOrderDetails, error) {
	var row Models.WorkOrderRow
	result := s.DB.Raw(`SELECT `+workOrderColumns+workOrderJoins+`
		WHERE wo.id = ?`, workOrderID).Scan(&row)
	if result.Error != nil {
		return nil, result.Error
	}
	if result.RowsAffected == 0 {
		return nil, Models.ErrWorkOrderNotFound
	}

	services, err := s.GetServicesByWorkOrder(workOrderID)
	if err != nil {
		return nil, err
	}
	parts, err := s.GetSparePartsByWorkOrder(workOrderID)
	if err != nil {
		return nil, err
	}

	return &Models.WorkOrderDetails{
		WorkOrderRow: row,
		Services:     services,
		SpareParts:   parts,
		ServiceTypes: ClassifyServiceText(lineItemText(services, parts)),
	}, nil
}

func (s *Store) UpdateWorkOrderStatus(workOrderID uint, status string) (int64, error) {
	result := s.DB.Model(&Models.WorkOrder{}).Where("id = ?", workOrderID).
		Update("status", status)
	return result.RowsAffected, result.Error
}

func (s *Store) UpdateWorkOrderPaymentStatus(workOrderID uint, paymentStatus string) (int64, error) {
	result := s.DB.Model(&Models.WorkOrder{}).Where("id = ?", workOrderID).
		Update("payment_status", paymentStatus)
	return result.RowsAffected, result.Error
}

// DeleteWorkOrder removes the order only. Its line items and invoices are the
// caller's responsibility.
func (s *Store) DeleteWorkOrder(workOrderID uint) (int64, error) {
	result := s.DB.Unscoped().Delete(&Models.WorkOrder{}, workOrderID)
	return result.RowsAffected, result.Error
}
