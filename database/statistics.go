package database

import (
	"fams/models"
	"time"

	"github.com/jinzhu/now"
	"gorm.io/gorm"
)

// Statistics is the admin dashboard aggregate. Counts are recomputed on every
// request; load is human-paced so no caching is needed.
type Statistics struct {
	TotalTrainees    int64 `json:"totalTrainees"`
	TraineesToday    int64 `json:"traineesToday"`
	ActiveSponsors   int64 `json:"activeSponsors"`
	CompletedCourses int64 `json:"completedCourses"`
	ActiveContent    int64 `json:"activeContent"`
}

// ComputeStatistics re-counts the dashboard aggregates.
func ComputeStatistics(db *gorm.DB) (*Statistics, error) {
	stats := &Statistics{}

	if err := db.Model(&models.Trainee{}).Count(&stats.TotalTrainees).Error; err != nil {
		return nil, err
	}
	if err := db.Model(&models.Trainee{}).
		Where("created_at >= ?", now.With(time.Now()).BeginningOfDay()).
		Count(&stats.TraineesToday).Error; err != nil {
		return nil, err
	}
	if err := db.Model(&models.Sponsor{}).Where("is_active = ?", true).Count(&stats.ActiveSponsors).Error; err != nil {
		return nil, err
	}
	if err := db.Model(&models.TraineeProgress{}).
		Where("status = ?", models.ProgressCompleted).
		Count(&stats.CompletedCourses).Error; err != nil {
		return nil, err
	}
	if err := db.Model(&models.Content{}).Where("is_active = ?", true).Count(&stats.ActiveContent).Error; err != nil {
		return nil, err
	}

	return stats, nil
}
