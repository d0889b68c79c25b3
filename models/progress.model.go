package models

import (
	"time"

	"gorm.io/datatypes"
)

const (
	ProgressNotStarted = "not_started"
	ProgressInProgress = "in_progress"
	ProgressCompleted  = "completed"
)

// TraineeProgress tracks one trainee's state on one content item. Rows are
// unique per (trainee_id, content_id) and updated in place, never duplicated.
type TraineeProgress struct {
	ID             uint           `gorm:"primaryKey" json:"id"`
	TraineeID      uint           `gorm:"index:idx_trainee_content,unique;not null" json:"traineeId"`
	ContentID      uint           `gorm:"index:idx_trainee_content,unique;not null" json:"contentId"`
	Status         string         `gorm:"not null;default:'not_started'" json:"status"`
	Score          *int           `json:"score,omitempty"`
	SubmissionUrl  string         `json:"submissionUrl,omitempty"`
	SubmissionData datatypes.JSON `json:"submissionData,omitempty"`
	CompletedAt    *time.Time     `json:"completedAt,omitempty"`
	CreatedAt      time.Time      `json:"createdAt"`
	UpdatedAt      time.Time      `json:"updatedAt"`

	Trainee *Trainee `gorm:"foreignKey:TraineeID" json:"-"`
	Content *Content `gorm:"foreignKey:ContentID" json:"-"`
}
