package Database

import (
	"Workshop/Models"

	"gorm.io/gorm"
)

// Store owns every database operation of the workshop. Controllers and jobs
// go through it instead of touching SQL themselves.
type Store struct {
	DB *gorm.DB
}

// NewStore creates a new Store
func NewStore(db *gorm.DB) *Store {
	return &Store{DB: db}
}

// Customer operations

func (s *Store) AddCustomer(name, phone, address string) (uint, error) {
	customer := Models.Customer{Name: name, Phone: phone, Address: address}
	if err := s.DB.Create(&customer).Error; err != nil {
		return 0, err
	}
	return customer.ID, nil
}

func (s *Store) GetCustomers() ([]Models.Customer, error) {
	var customers []Models.Customer
	err := s.DB.Order("name").Find(&customers).Error
	return customers, err
}

// SearchCustomers matches name or phone by substring.
func (s *Store) SearchCustomers(term string) ([]Models.Customer, error) {
	var customers []Models.Customer
	like := "%" + term + "%"
	err := s.DB.Where("name LIKE ? OR phone LIKE ?", like, like).
		Order("name").Find(&customers).Error
	return customers, err
}

func (s *Store) UpdateCustomer(id uint, name, phone, address string) (int64, error) {
	result := s.DB.Model(&Models.Customer{}).Where("id = ?", id).
		Updates(map[string]interface{}{
			"name":    name,
			"phone":   phone,
			"address": address,
		})
	return result.RowsAffected, result.Error
}

// DeleteCustomer removes the customer only. Vehicles keep their
// customer_phone and drop out of joined listings until reassigned.
func (s *Store) DeleteCustomer(id uint) (int64, error) {
	result := s.DB.Unscoped().Delete(&Models.Customer{}, id)
	return result.RowsAffected, result.Error
}
