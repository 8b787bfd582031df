package Database

import (
	"Workshop/Models"
)

// Appointment operations

func (s *Store) AddAppointment(name, description, date string) (uint, error) {
	appointment := Models.Appointment{Name: name, Description: description, Date: date}
	if err := s.DB.Create(&appointment).Error; err != nil {
		return 0, err
	}
	return appointment.ID, nil
}

func (s *Store) GetAppointments() ([]Models.Appointment, error) {
	var appointments []Models.Appointment
	err := s.DB.Order("date DESC, id DESC").Find(&appointments).Error
	return appointments, err
}

// SearchAppointments matches name or date by substring.
func (s *Store) SearchAppointments(term string) ([]Models.Appointment, error) {
	var appointments []Models.Appointment
	like := "%" + term + "%"
	err := s.DB.Where("name LIKE ? OR date LIKE ?", like, like).
		Order("date DESC, id DESC").Find(&appointments).Error
	return appointments, err
}

// GetAppointmentsByDate returns the appointments scheduled on the given day.
// Dates may carry a time suffix, so this matches on the day prefix.
func (s *Store) GetAppointmentsByDate(date string) ([]Models.Appointment, error) {
	var appointments []Models.Appointment
	err := s.DB.Where("date LIKE ?", date+"%").
		Order("date, id").Find(&appointments).Error
	return appointments, err
}

func (s *Store) UpdateAppointment(id uint, name, description, date string) (int64, error) {
	result := s.DB.Model(&Models.Appointment{}).Where("id = ?", id).
		Updates(map[string]interface{}{
			"name":        name,
			"description": description,
			"date":        date,
		})
	return result.RowsAffected, result.Error
}

func (s *Store) DeleteAppointment(id uint) (int64, error) {
	result := s.DB.Unscoped().Delete(&Models.Appointment{}, id)
	return result.RowsAffected, result.Error
}
