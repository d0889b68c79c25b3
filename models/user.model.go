package models

import "time"

const (
	RoleAdmin   = "admin"
	RoleTrainee = "trainee"
)

type User struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Email     string    `gorm:"unique;not null" json:"email"`
	FirstName string    `gorm:"default:''" json:"firstName"`
	LastName  string    `gorm:"default:''" json:"lastName"`
	Role      string    `gorm:"default:'trainee'" json:"role"` // admin or trainee
	Password  string    `gorm:"not null" json:"-"`             // bcrypt hash
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
