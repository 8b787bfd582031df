package Database

import (
	"Workshop/Models"
)

// Shop asset operations: employees, tools and diagnostic devices. Listings
// are newest first like the entry screens expect.

func (s *Store) AddEmployee(name, description string, workingDays int, note, filePath string) (uint, error) {
	employee := Models.Employee{
		Name:                name,
		Description:         description,
		NumberOfWorkingDays: workingDays,
		Note:                note,
		FilePath:            filePath,
	}
	if err := s.DB.Create(&employee).Error; err != nil {
		return 0, err
	}
	return employee.ID, nil
}

func (s *Store) GetEmployees() ([]Models.Employee, error) {
	var employees []Models.Employee
	err := s.DB.Order("id DESC").Find(&employees).Error
	return employees, err
}

func (s *Store) UpdateEmployee(id uint, name, description string, workingDays int, note, filePath string) (int64, error) {
	result := s.DB.Model(&Models.Employee{}).Where("id = ?", id).
		Updates(map[string]interface{}{
			"name":                   name,
			"description":            description,
			"number_of_working_days": workingDays,
			"note":                   note,
			"file_path":              filePath,
		})
	return result.RowsAffected, result.Error
}

func (s *Store) DeleteEmployee(id uint) (int64, error) {
	result := s.DB.Unscoped().Delete(&Models.Employee{}, id)
	return result.RowsAffected, result.Error
}

func (s *Store) AddTool(name, description string, price float64, note, filePath string) (uint, error) {
	tool := Models.Tool{
		Name:        name,
		Description: description,
		Price:       price,
		Note:        note,
		FilePath:    filePath,
	}
	if err := s.DB.Create(&tool).Error; err != nil {
		return 0, err
	}
	return tool.ID, nil
}

func (s *Store) GetTools() ([]Models.Tool, error) {
	var tools []Models.Tool
	err := s.DB.Order("id DESC").Find(&tools).Error
	return tools, err
}

func (s *Store) UpdateTool(id uint, name, description string, price float64, note, filePath string) (int64, error) {
	result := s.DB.Model(&Models.Tool{}).Where("id = ?", id).
		Updates(map[string]interface{}{
			"name":        name,
			"description": description,
			"price":       price,
			"note":        note,
			"file_path":   filePath,
		})
	return result.RowsAffected, result.Error
}

func (s *Store) DeleteTool(id uint) (int64, error) {
	result := s.DB.Unscoped().Delete(&Models.Tool{}, id)
	return result.RowsAffected, result.Error
}

func (s *Store) AddDiagnostic(name, description string, price float64, note, filePath string) (uint, error) {
	diagnostic := Models.Diagnostic{
		Name:        name,
		Description: description,
		Price:       price,
		Note:        note,
		FilePath:    filePath,
	}
	if err := s.DB.Create(&diagnostic).Error; err != nil {
		return 0, err
	}
	return diagnostic.ID, nil
}

func (s *Store) GetDiagnostics() ([]Models.Diagnostic, error) {
	var diagnostics []Models.Diagnostic
	err := s.DB.Order("id DESC").Find(&diagnostics).Error
	return diagnostics, err
}

func (s *Store) UpdateDiagnostic(id uint, name, description string, price float64, note, filePath string) (int64, error) {
	result := s.DB.Model(&Models.Diagnostic{}).Where("id = ?", id).
		Updates(map[string]interface{}{
			"name":        name,
			"description": description,
			"price":       price,
			"note":        note,
			"file_path":   filePath,
		})
	return result.RowsAffected, result.Error
}

func (s *Store) DeleteDiagnostic(id uint) (int64, error) {
	result := s.DB.Unscoped().Delete(&Models.Diagnostic{}, id)
	return result.RowsAffected, result.Error
}
