package Database

import (
	"strings"

	"Workshop/Models"
)

// Vehicle operations

func (s *Store) AddVehicle(licensePlate, brand, model, customerPhone string) (uint, error) {
	vehicle := Models.Vehicle{
		LicensePlate:  licensePlate,
		Brand:         brand,
		VehicleModel:  model,
		CustomerPhone: customerPhone,
	}
	if err := s.DB.Create(&vehicle).Error; err != nil {
		return 0, err
	}
	return vehicle.ID, nil
}

// GetVehicles returns all vehicles with their owner's name. Vehicles whose
// customer record is gone are not listed.
func (s *Store) GetVehicles() ([]Models.VehicleRow, error) {
	var rows []Models.VehicleRow
	err := s.DB.Raw(`
		SELECT
			v.id,
			v.license_plate,
			v.brand,
			v.model,
			v.customer_phone,
			c.name as customer_name
		FROM vehicles v
		JOIN customers c ON v.customer_phone = c.phone
		ORDER BY v.license_plate
	`).Scan(&rows).Error
	return rows, err
}

// SearchVehicles matches license plate, brand or model by substring.
func (s *Store) SearchVehicles(term string) ([]Models.VehicleRow, error) {
	var rows []Models.VehicleRow
	like := "%" + term + "%"
	err := s.DB.Raw(`
		SELECT
			v.id,
			v.license_plate,
			v.brand,
			v.model,
			v.customer_phone,
			c.name as customer_name
		FROM vehicles v
		JOIN customers c ON v.customer_phone = c.phone
		WHERE v.license_plate LIKE ? OR v.brand LIKE ? OR v.model LIKE ?
		ORDER BY v.license_plate
	`, like, like, like).Scan(&rows).Error
	return rows, err
}

func (s *Store) UpdateVehicle(id uint, licensePlate, brand, model, customerPhone string) (int64, error) {
	result := s.DB.Model(&Models.Vehicle{}).Where("id = ?", id).
		Updates(map[string]interface{}{
			"license_plate":  licensePlate,
			"brand":          brand,
			"model":          model,
			"customer_phone": customerPhone,
		})
	return result.RowsAffected, result.Error
}

// DeleteVehicle removes the vehicle only. Its work orders stay behind and
// drop out of joined listings.
func (s *Store) DeleteVehicle(id uint) (int64, error) {
	result := s.DB.Unscoped().Delete(&Models.Vehicle{}, id)
	return result.RowsAffected, result.Error
}

// Vehicle type operations

func (s *Store) AddVehicleType(brand, model string) (uint, error) {
	vt := Models.VehicleType{Brand: strings.TrimSpace(brand), ModelName: strings.TrimSpace(model)}
	if err := s.DB.Create(&vt).Error; err != nil {
		return 0, err
	}
	return vt.ID, nil
}

func (s *Store) GetVehicleTypes() ([]Models.VehicleType, error) {
	var types []Models.VehicleType
	err := s.DB.Order("brand, model").Find(&types).Error
	return types, err
}

func (s *Store) UpdateVehicleType(id uint, brand, model string) (int64, error) {
	result := s.DB.Model(&Models.VehicleType{}).Where("id = ?", id).
		Updates(map[string]interface{}{
			"brand": strings.TrimSpace(brand),
			"model": strings.TrimSpace(model),
		})
	return result.RowsAffected, result.Error
}

func (s *Store) DeleteVehicleType(id uint) (int64, error) {
	result := s.DB.Unscoped().Delete(&Models.VehicleType{}, id)
	return result.RowsAffected, result.Error
}

// GetBrands returns the distinct brands known to the catalog, for dropdowns.
func (s *Store) GetBrands() ([]string, error) {
	var brands []string
	err := s.DB.Model(&Models.VehicleType{}).Distinct("brand").
		Order("brand").Pluck("brand", &brands).Error
	return brands, err
}

func (s *Store) GetModelsByBrand(brand string) ([]string, error) {
	var models []string
	err := s.DB.Model(&Models.VehicleType{}).Where("brand = ?", brand).
		Order("model").Pluck("model", &models).Error
	return models, err
}
