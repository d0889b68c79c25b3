package database

import (
	"testing"
	"time"

	"fams/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestComputeStatisticsEmpty(t *testing.T) {
	db := setupTestDB(t)

	stats, err := ComputeStatistics(db)
	require.NoError(t, err)
	assert.Equal(t, int64(0), stats.TotalTrainees)
	assert.Equal(t, int64(0), stats.TraineesToday)
	assert.Equal(t, int64(0), stats.ActiveSponsors)
	assert.Equal(t, int64(0), stats.CompletedCourses)
	assert.Equal(t, int64(0), stats.ActiveContent)
}

func TestComputeStatisticsCounts(t *testing.T) {
	db := setupTestDB(t)

	require.NoError(t, db.Create(&models.Sponsor{Name: "CSS Group", IsActive: true}).Error)
	require.NoError(t, db.Create(&models.Sponsor{Name: "Old Sponsor", IsActive: false}).Error)

	today := models.Trainee{TraineeID: "TRAINEE-0001", TagNumber: "FAMS-0001", Email: "a@cssfarms.ng"}
	require.NoError(t, db.Create(&today).Error)

	yesterday := models.Trainee{TraineeID: "TRAINEE-0002", TagNumber: "FAMS-0002", Email: "b@cssfarms.ng"}
	require.NoError(t, db.Create(&yesterday).Error)
	require.NoError(t, db.Model(&yesterday).
		UpdateColumn("created_at", time.Now().Add(-48*time.Hour)).Error)

	require.NoError(t, db.Create(&models.Content{Title: "Soil Prep", Type: models.ContentTypeVideo, IsActive: true}).Error)
	require.NoError(t, db.Create(&models.Content{Title: "Retired", Type: models.ContentTypeVideo, IsActive: false}).Error)

	require.NoError(t, db.Create(&models.TraineeProgress{
		TraineeID: today.ID, ContentID: 1, Status: models.ProgressCompleted,
	}).Error)
	require.NoError(t, db.Create(&models.TraineeProgress{
		TraineeID: yesterday.ID, ContentID: 1, Status: models.ProgressInProgress,
	}).Error)

	stats, err := ComputeStatistics(db)
	require.NoError(t, err)
	assert.Equal(t, int64(2), stats.TotalTrainees)
	assert.Equal(t, int64(1), stats.TraineesToday)
	assert.Equal(t, int64(1), stats.ActiveSponsors)
	assert.Equal(t, int64(1), stats.CompletedCourses)
	assert.Equal(t, int64(1), stats.ActiveContent)
}
