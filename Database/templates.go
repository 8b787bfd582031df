package Database

import (
	"encoding/json"
	"fmt"
	"os"

	"Workshop/Models"

	"github.com/yosuke-furukawa/json5/encoding/json5"
	"gorm.io/gorm"
)

// Template catalog operations. Templates pre-fill line item entry forms and
// are soft-deactivated through a toggle instead of being deleted.

func (s *Store) AddServiceTemplate(name, description string, defaultPrice float64, category string) (uint, error) {
	if category == "" {
		category = "General"
	}
	template := Models.ServiceTemplate{
		Name:         name,
		Description:  description,
		DefaultPrice: defaultPrice,
		Category:     category,
		IsActive:     true,
	}
	if err := s.DB.Create(&template).Error; err != nil {
		return 0, err
	}
	return template.ID, nil
}

func (s *Store) GetServiceTemplates(activeOnly bool) ([]Models.ServiceTemplate, error) {
	var templates []Models.ServiceTemplate
	query := s.DB.Order("category, name")
	if activeOnly {
		query = query.Where("is_active = ?", true)
	}
	err := query.Find(&templates).Error
	return templates, err
}

func (s *Store) UpdateServiceTemplate(id uint, name, description string, defaultPrice float64, category string) (int64, error) {
	result := s.DB.Model(&Models.ServiceTemplate{}).Where("id = ?", id).
		Updates(map[string]interface{}{
			"name":          name,
			"description":   description,
			"default_price": defaultPrice,
			"category":      category,
		})
	return result.RowsAffected, result.Error
}

func (s *Store) DeleteServiceTemplate(id uint) (int64, error) {
	result := s.DB.Unscoped().Delete(&Models.ServiceTemplate{}, id)
	return result.RowsAffected, result.Error
}

// ToggleServiceTemplateStatus flips the template between active and inactive.
func (s *Store) ToggleServiceTemplateStatus(id uint) (int64, error) {
	result := s.DB.Model(&Models.ServiceTemplate{}).Where("id = ?", id).
		Update("is_active", gorm.Expr("1 - is_active"))
	return result.RowsAffected, result.Error
}

func (s *Store) GetServiceCategories() ([]string, error) {
	var categories []string
	err := s.DB.Model(&Models.ServiceTemplate{}).Distinct("category").
		Order("category").Pluck("category", &categories).Error
	return categories, err
}

func (s *Store) AddSparePartTemplate(name, description string, defaultPrice float64, category, supplier, partNumber string, compatibleModels []string) (uint, error) {
	if category == "" {
		category = "General"
	}
	template := Models.SparePartTemplate{
		Name:         name,
		Description:  description,
		DefaultPrice: defaultPrice,
		Category:     category,
		Supplier:     supplier,
		PartNumber:   partNumber,
		IsActive:     true,
	}
	if len(compatibleModels) > 0 {
		jsonModels, err := json.Marshal(compatibleModels)
		if err != nil {
			return 0, err
		}
		template.JSONCompatibleModels = jsonModels
	}
	if err := s.DB.Create(&template).Error; err != nil {
		return 0, err
	}
	return template.ID, nil
}

func (s *Store) GetSparePartTemplates(activeOnly bool) ([]Models.SparePartTemplate, error) {
	var templates []Models.SparePartTemplate
	query := s.DB.Order("category, name")
	if activeOnly {
		query = query.Where("is_active = ?", true)
	}
	if err := query.Find(&templates).Error; err != nil {
		return nil, err
	}
	for i := range templates {
		if len(templates[i].JSONCompatibleModels) > 0 {
			if err := json.Unmarshal(templates[i].JSONCompatibleModels, &templates[i].CompatibleModels); err != nil {
				return nil, fmt.Errorf("template %d has a corrupt compatible_models column: %w", templates[i].ID, err)
			}
		}
	}
	return templates, nil
}

func (s *Store) UpdateSparePartTemplate(id uint, name, description string, defaultPrice float64, category, supplier, partNumber string, compatibleModels []string) (int64, error) {
	updates := map[string]interface{}{
		"name":          name,
		"description":   description,
		"default_price": defaultPrice,
		"category":      category,
		"supplier":      supplier,
		"part_number":   partNumber,
	}
	jsonModels, err := json.Marshal(compatibleModels)
	if err != nil {
		return 0, err
	}
	updates["compatible_models"] = jsonModels

	result := s.DB.Model(&Models.SparePartTemplate{}).Where("id = ?", id).Updates(updates)
	return result.RowsAffected, result.Error
}

func (s *Store) DeleteSparePartTemplate(id uint) (int64, error) {
	result := s.DB.Unscoped().Delete(&Models.SparePartTemplate{}, id)
	return result.RowsAffected, result.Error
}

func (s *Store) ToggleSparePartTemplateStatus(id uint) (int64, error) {
	result := s.DB.Model(&Models.SparePartTemplate{}).Where("id = ?", id).
		Update("is_active", gorm.Expr("1 - is_active"))
	return result.RowsAffected, result.Error
}

func (s *Store) GetPartCategories() ([]string, error) {
	var categories []string
	err := s.DB.Model(&Models.SparePartTemplate{}).Distinct("category").
		Order("category").Pluck("category", &categories).Error
	return categories, err
}

// catalogFile mirrors catalog.json5.
type catalogFile struct {
	Services []struct {
		Name         string  `json:"name"`
		Description  string  `json:"description"`
		DefaultPrice float64 `json:"default_price"`
		Category     string  `json:"category"`
	} `json:"services"`
	SpareParts []struct {
		Name             string   `json:"name"`
		Description      string   `json:"description"`
		DefaultPrice     float64  `json:"default_price"`
		Category         string   `json:"category"`
		Supplier         string   `json:"supplier"`
		PartNumber       string   `json:"part_number"`
		CompatibleModels []string `json:"compatible_models"`
	} `json:"spare_parts"`
}

// SeedTemplatesFromCatalog inserts the catalog's templates that are not in
// the database yet. Existing templates are left untouched, so this is safe
// to run on every start.
func (s *Store) SeedTemplatesFromCatalog(path string) error {
	file, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return err
	}
	defer file.Close()

	var catalog catalogFile
	if err := json5.NewDecoder(file).Decode(&catalog); err != nil {
		return err
	}

	for _, entry := range catalog.Services {
		var count int64
		if err := s.DB.Model(&Models.ServiceTemplate{}).Where("name = ?", entry.Name).
			Count(&count).Error; err != nil {
			return err
		}
		if count > 0 {
			continue
		}
		if _, err := s.AddServiceTemplate(entry.Name, entry.Description, entry.DefaultPrice, entry.Category); err != nil {
			return err
		}
	}

	for _, entry := range catalog.SpareParts {
		var count int64
		if err := s.DB.Model(&Models.SparePartTemplate{}).Where("name = ?", entry.Name).
			Count(&count).Error; err != nil {
			return err
		}
		if count > 0 {
			continue
		}
		if _, err := s.AddSparePartTemplate(entry.Name, entry.Description, entry.DefaultPrice,
			entry.Category, entry.Supplier, entry.PartNumber, entry.CompatibleModels); err != nil {
			return err
		}
	}

	return nil
}
