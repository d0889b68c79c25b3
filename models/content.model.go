package models

import (
	"time"

	"gorm.io/datatypes"
)

const (
	ContentTypeVideo      = "video"
	ContentTypeQuiz       = "quiz"
	ContentTypeAssignment = "assignment"
)

// Content is a training item (video, quiz or assignment). ContentData carries
// the type-specific payload (quiz questions, assignment details) opaquely.
type Content struct {
	ID          uint           `gorm:"primaryKey" json:"id"`
	Title       string         `gorm:"not null" json:"title"`
	Description string         `json:"description,omitempty"`
	Type        string         `gorm:"not null" json:"type"` // video, quiz, assignment
	ContentUrl  string         `json:"contentUrl,omitempty"`
	ContentData datatypes.JSON `json:"contentData,omitempty"`
	SponsorID   *uint          `gorm:"index" json:"sponsorId"` // null = global
	DueDate     *time.Time     `json:"dueDate,omitempty"`
	IsActive    bool           `json:"isActive"`
	CreatedAt   time.Time      `json:"createdAt"`
	UpdatedAt   time.Time      `json:"updatedAt"`

	Sponsor *Sponsor `gorm:"foreignKey:SponsorID" json:"-"`
}
