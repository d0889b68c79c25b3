package database

import (
	"testing"

	"fams/models"

	"github.com/stretchr/testify/require"
)

// Boolean columns must round-trip a false value. A gorm default tag on a
// bool makes the ORM skip the zero value on insert, so a record created
// inactive would come back active.
func TestInactiveFlagsSurviveInsert(t *testing.T) {
	db := setupTestDB(t)

	sponsor := models.Sponsor{Name: "Dormant Sponsor", IsActive: false}
	require.NoError(t, db.Create(&sponsor).Error)

	content := models.Content{Title: "Retired Module", Type: models.ContentTypeVideo, IsActive: false}
	require.NoError(t, db.Create(&content).Error)

	announcement := models.Announcement{Title: "Old Notice", Message: "Superseded.", IsActive: false}
	require.NoError(t, db.Create(&announcement).Error)

	trainee := models.Trainee{
		TraineeID:           "TRAINEE-0001",
		TagNumber:           "FAMS-0001",
		FirstName:           "Ada",
		LastName:            "Obi",
		Email:               "ada.obi@example.com",
		PhoneNumber:         "+2348012345678",
		Gender:              "female",
		DateOfBirth:         "1999-04-12",
		StateOfOrigin:       "Enugu",
		LocalGovernmentArea: "Nsukka",
		Nationality:         "Nigerian",
		RoomNumber:          "204",
		LectureVenue:        "Gold Hall",
		MealVenue:           "Restaurant 1",
		IsActive:            false,
		EmailVerified:       true,
	}
	require.NoError(t, db.Create(&trainee).Error)

	var gotSponsor models.Sponsor
	require.NoError(t, db.First(&gotSponsor, sponsor.ID).Error)
	require.False(t, gotSponsor.IsActive)

	var gotContent models.Content
	require.NoError(t, db.First(&gotContent, content.ID).Error)
	require.False(t, gotContent.IsActive)

	var gotAnnouncement models.Announcement
	require.NoError(t, db.First(&gotAnnouncement, announcement.ID).Error)
	require.False(t, gotAnnouncement.IsActive)

	var gotTrainee models.Trainee
	require.NoError(t, db.First(&gotTrainee, trainee.ID).Error)
	require.False(t, gotTrainee.IsActive)
	require.True(t, gotTrainee.EmailVerified)
}
