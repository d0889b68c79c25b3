package models

import "time"

// Setting keys used by the application.
const (
	SettingRegistrationEnabled = "registration_enabled"
)

// SystemSetting is a generic key/value store. The registration gate
// (registration_enabled = "true"/"false") is the key used in practice.
type SystemSetting struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Key       string    `gorm:"uniqueIndex;not null" json:"key"`
	Value     string    `gorm:"not null" json:"value"`
	UpdatedAt time.Time `json:"updatedAt"`
}
