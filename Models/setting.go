package Models

// Setting is a single key/value pair. Known keys include company_name and
// company_logo.
type Setting struct {
	Key   string `json:"key" gorm:"primaryKey"`
	Value string `json:"value" gorm:"not null"`
}

type SettingRequest struct {
	Key   string `json:"key" validate:"required"`
	Value string `json:"value"`
}
