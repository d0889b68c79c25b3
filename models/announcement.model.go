package models

import "time"

type Announcement struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Title     string    `gorm:"not null" json:"title"`
	Message   string    `gorm:"not null" json:"message"`
	SponsorID *uint     `gorm:"index" json:"sponsorId"` // null = global announcement
	IsActive  bool      `json:"isActive"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`

	Sponsor *Sponsor `gorm:"foreignKey:SponsorID" json:"-"`
}
