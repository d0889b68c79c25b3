package models

import "time"

// Sponsor is the organization funding a cohort. At most one sponsor is
// active (currently enrolling) at a time; sponsor controllers enforce this.
type Sponsor struct {
	ID          uint       `gorm:"primaryKey" json:"id"`
	Name        string     `gorm:"not null" json:"name"`
	Description string     `json:"description,omitempty"`
	LogoUrl     string     `json:"logoUrl,omitempty"`
	StartDate   *time.Time `gorm:"type:date" json:"startDate,omitempty"`
	EndDate     *time.Time `gorm:"type:date" json:"endDate,omitempty"`
	IsActive    bool       `json:"isActive"`
	CreatedAt   time.Time  `json:"createdAt"`
	UpdatedAt   time.Time  `json:"updatedAt"`
}
