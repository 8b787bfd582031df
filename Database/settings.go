package Database

import (
	"Workshop/Models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GetSetting returns the stored value for key, or fallback when absent.
func (s *Store) GetSetting(key, fallback string) (string, error) {
	var setting Models.Setting
	result := s.DB.Where("key = ?", key).First(&setting)
	if result.Error != nil {
		if result.Error == gorm.ErrRecordNotFound {
			return fallback, nil
		}
		return fallback, result.Error
	}
	return setting.Value, nil
}

// SetSetting upserts the key/value pair.
func (s *Store) SetSetting(key, value string) error {
	setting := Models.Setting{Key: key, Value: value}
	return s.DB.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "key"}},
		DoUpdates: clause.AssignmentColumns([]string{"value"}),
	}).Create(&setting).Error
}
