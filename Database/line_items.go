package Database

import (
	"Workshop/Models"

	"gorm.io/gorm"
)

// Line item operations. Every write that touches a service or spare part runs
// in one transaction together with the total recomputation, so the order's
// total_cost can never be observed out of step with its line items.

func (s *Store) AddService(workOrderID uint, name, description string, quantity int, price float64, filePath string) (uint, error) {
	service := Models.Service{
		WorkOrderID: workOrderID,
		Name:        name,
		Description: description,
		Quantity:    quantity,
		Price:       price,
		FilePath:    filePath,
	}
	err := s.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&service).Error; err != nil {
			return err
		}
		_, err := recalculateWorkOrderTotal(tx, workOrderID)
		return err
	})
	if err != nil {
		return 0, err
	}
	return service.ID, nil
}

func (s *Store) GetServicesByWorkOrder(workOrderID uint) ([]Models.Service, error) {
	var services []Models.Service
	err := s.DB.Where("work_order_id = ?", workOrderID).Order("id").Find(&services).Error
	return services, err
}

func (s *Store) GetServiceByID(serviceID uint) (*Models.Service, error) {
	var service Models.Service
	result := s.DB.First(&service, serviceID)
	if result.Error != nil {
		if result.Error == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, result.Error
	}
	return &service, nil
}

func (s *Store) UpdateService(serviceID, workOrderID uint, name, description string, quantity int, price float64, filePath string) (int64, error) {
	var affected int64
	err := s.DB.Transaction(func(tx *gorm.DB) error {
		result := tx.Model(&Models.Service{}).Where("id = ?", serviceID).
			Updates(map[string]interface{}{
				"name":        name,
				"description": description,
				"quantity":    quantity,
				"price":       price,
				"file_path":   filePath,
			})
		if result.Error != nil {
			return result.Error
		}
		affected = result.RowsAffected
		_, err := recalculateWorkOrderTotal(tx, workOrderID)
		return err
	})
	return affected, err
}

func (s *Store) DeleteService(serviceID, workOrderID uint) (int64, error) {
	var affected int64
	err := s.DB.Transaction(func(tx *gorm.DB) error {
		result := tx.Unscoped().Where("id = ?", serviceID).Delete(&Models.Service{})
		if result.Error != nil {
			return result.Error
		}
		affected = result.RowsAffected
		_, err := recalculateWorkOrderTotal(tx, workOrderID)
		return err
	})
	return affected, err
}

func (s *Store) AddSparePart(workOrderID uint, name, description string, quantity int, price float64, filePath string) (uint, error) {
	part := Models.SparePart{
		WorkOrderID: workOrderID,
		Name:        name,
		Description: description,
		Quantity:    quantity,
		Price:       price,
		FilePath:    filePath,
	}
	err := s.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&part).Error; err != nil {
			return err
		}
		_, err := recalculateWorkOrderTotal(tx, workOrderID)
		return err
	})
	if err != nil {
		return 0, err
	}
	return part.ID, nil
}

func (s *Store) GetSparePartsByWorkOrder(workOrderID uint) ([]Models.SparePart, error) {
	var parts []Models.SparePart
	err := s.DB.Where("work_order_id = ?", workOrderID).Order("id").Find(&parts).Error
	return parts, err
}

func (s *Store) GetSparePartByID(partID uint) (*Models.SparePart, error) {
	var part Models.SparePart
	result := s.DB.First(&part, partID)
	if result.Error != nil {
		if result.Error == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, result.Error
	}
	return &part, nil
}

func (s *Store) UpdateSparePart(partID, workOrderID uint, name, description string, quantity int, price float64, filePath string) (int64, error) {
	var affected int64
	err := s.DB.Transaction(func(tx *gorm.DB) error {
		result := tx.Model(&Models.SparePart{}).Where("id = ?", partID).
			Updates(map[string]interface{}{
				"name":        name,
				"description": description,
				"quantity":    quantity,
				"price":       price,
				"file_path":   filePath,
			})
		if result.Error != nil {
			return result.Error
		}
		affected = result.RowsAffected
		_, err := recalculateWorkOrderTotal(tx, workOrderID)
		return err
	})
	return affected, err
}

func (s *Store) DeleteSparePart(partID, workOrderID uint) (int64, error) {
	var affected int64
	err := s.DB.Transaction(func(tx *gorm.DB) error {
		result := tx.Unscoped().Where("id = ?", partID).Delete(&Models.SparePart{})
		if result.Error != nil {
			return result.Error
		}
		affected = result.RowsAffected
		_, err := recalculateWorkOrderTotal(tx, workOrderID)
		return err
	})
	return affected, err
}

// CalculateWorkOrderTotal recomputes and persists the order's total from its
// current line items, returning the new value.
func (s *Store) CalculateWorkOrderTotal(workOrderID uint) (float64, error) {
	var total float64
	err := s.DB.Transaction(func(tx *gorm.DB) error {
		var err error
		total, err = recalculateWorkOrderTotal(tx, workOrderID)
		return err
	})
	return total, err
}

// recalculateWorkOrderTotal sums quantity*price over the order's services and
// spare parts and writes the result to work_orders.total_cost. If either sum
// fails nothing is written; the surrounding transaction rolls back.
func recalculateWorkOrderTotal(tx *gorm.DB, workOrderID uint) (float64, error) {
	var servicesTotal float64
	if err := tx.Model(&Models.Service{}).Where("work_order_id = ?", workOrderID).
		Select("COALESCE(SUM(quantity * price), 0)").Scan(&servicesTotal).Error; err != nil {
		return 0, err
	}

	var partsTotal float64
	if err := tx.Model(&Models.SparePart{}).Where("work_order_id = ?", workOrderID).
		Select("COALESCE(SUM(quantity * price), 0)").Scan(&partsTotal).Error; err != nil {
		return 0, err
	}

	totalCost := servicesTotal + partsTotal
	if err := tx.Model(&Models.WorkOrder{}).Where("id = ?", workOrderID).
		Update("total_cost", totalCost).Error; err != nil {
		return 0, err
	}
	return totalCost, nil
}
