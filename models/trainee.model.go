package models

import "time"

type Trainee struct {
	ID     uint  `gorm:"primaryKey" json:"id"`
	UserID *uint `gorm:"index" json:"userId,omitempty"`

	// System-assigned at registration completion, never client-supplied
	TraineeID string `gorm:"column:trainee_id;unique;not null" json:"traineeId"` // e.g. TRAINEE-0091
	TagNumber string `gorm:"unique;not null" json:"tagNumber"`                   // e.g. FAMS-0091

	FirstName           string `gorm:"not null" json:"firstName"`
	LastName            string `gorm:"not null" json:"lastName"`
	MiddleName          string `json:"middleName,omitempty"`
	Email               string `gorm:"uniqueIndex;not null" json:"email"`
	PhoneNumber         string `gorm:"not null" json:"phoneNumber"`
	Gender              string `gorm:"not null" json:"gender"`
	DateOfBirth         string `gorm:"type:date;not null" json:"dateOfBirth"`
	StateOfOrigin       string `gorm:"not null" json:"stateOfOrigin"`
	LocalGovernmentArea string `gorm:"not null" json:"localGovernmentArea"`
	Nationality         string `gorm:"not null;default:'Nigerian'" json:"nationality"`
	PassportPhotoUrl    string `json:"passportPhotoUrl,omitempty"`

	SponsorID    *uint  `gorm:"index" json:"sponsorId"`
	RoomNumber   string `gorm:"not null" json:"roomNumber"`
	LectureVenue string `gorm:"not null" json:"lectureVenue"`
	MealVenue    string `gorm:"not null" json:"mealVenue"`

	IsActive               bool       `json:"isActive"`
	EmailVerified          bool       `json:"emailVerified"`
	VerificationCode       *string    `json:"-"`
	VerificationCodeExpiry *time.Time `json:"-"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`

	Sponsor *Sponsor `gorm:"foreignKey:SponsorID" json:"sponsor,omitempty"`
	User    *User    `gorm:"foreignKey:UserID" json:"-"`
}
