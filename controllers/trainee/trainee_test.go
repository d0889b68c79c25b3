package traineeController_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"fams/config"
	"fams/database"
	"fams/middleware"
	"fams/models"
	"fams/routers/traineeRoutes"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

type testEnv struct {
	app        *fiber.App
	db         *gorm.DB
	adminToken string
}

func setupEnv(t *testing.T) *testEnv {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	database.RunMigrations(db)
	database.Database = database.DbInstance{Db: db}

	config.AppConfig = &config.Config{JWTKey: "test-signing-key", SaltRound: bcrypt.MinCost}
	middleware.AdminSessions = middleware.NewSessionStore(nil)
	adminToken := middleware.AdminSessions.Create(1, "admin@cssfarms.ng", models.RoleAdmin)

	app := fiber.New()
	traineeRoutes.SetupTraineeRoutes(app)
	return &testEnv{app: app, db: db, adminToken: adminToken}
}

// seedTrainee creates a registered trainee with a login account.
func (e *testEnv) seedTrainee(t *testing.T, email, password string, sponsorID *uint) models.Trainee {
	t.Helper()

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)
	user := models.User{Email: email, Role: models.RoleTrainee, Password: string(hash)}
	require.NoError(t, e.db.Create(&user).Error)

	var count int64
	require.NoError(t, e.db.Model(&models.Trainee{}).Count(&count).Error)

	trainee := models.Trainee{
		UserID:        &user.ID,
		TraineeID:     fmt.Sprintf("TRAINEE-%04d", count+1),
		TagNumber:     fmt.Sprintf("FAMS-%04d", count+1),
		FirstName:     "Amina",
		LastName:      "Bello",
		Email:         email,
		SponsorID:     sponsorID,
		RoomNumber:    "204",
		LectureVenue:  "Gold Hall",
		MealVenue:     "Restaurant 1",
		IsActive:      true,
		EmailVerified: true,
	}
	require.NoError(t, e.db.Create(&trainee).Error)
	return trainee
}

func (e *testEnv) request(t *testing.T, method, path, token string, body any) (*http.Response, map[string]any) {
	t.Helper()
	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(payload)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	resp, err := e.app.Test(req, -1)
	require.NoError(t, err)

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	var parsed map[string]any
	require.NoError(t, json.Unmarshal(raw, &parsed))
	return resp, parsed
}

func (e *testEnv) login(t *testing.T, email, password string) string {
	t.Helper()
	resp, body := e.request(t, "POST", "/api/trainee/login", "", fiber.Map{
		"email": email, "password": password,
	})
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	return body["data"].(map[string]any)["token"].(string)
}

func TestListTrainees(t *testing.T) {
	env := setupEnv(t)
	sponsor := models.Sponsor{Name: "CSS Group", IsActive: true}
	require.NoError(t, env.db.Create(&sponsor).Error)

	env.seedTrainee(t, "a@cssfarms.ng", "secret-pass-1", &sponsor.ID)
	env.seedTrainee(t, "b@cssfarms.ng", "secret-pass-1", nil)

	resp, body := env.request(t, "GET", "/api/trainees", env.adminToken, nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Len(t, body["data"].([]any), 2)

	resp, body = env.request(t, "GET", fmt.Sprintf("/api/trainees?sponsorId=%d", sponsor.ID), env.adminToken, nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	items := body["data"].([]any)
	require.Len(t, items, 1)
	assert.Equal(t, "a@cssfarms.ng", items[0].(map[string]any)["email"])

	resp, _ = env.request(t, "GET", "/api/trainees", "", nil)
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
}

func TestUpdateTraineeSoftDeactivation(t *testing.T) {
	env := setupEnv(t)
	trainee := env.seedTrainee(t, "a@cssfarms.ng", "secret-pass-1", nil)

	resp, _ := env.request(t, "PATCH", fmt.Sprintf("/api/trainees/%d", trainee.ID), env.adminToken, fiber.Map{
		"isActive":   false,
		"roomNumber": "310",
	})
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	var updated models.Trainee
	require.NoError(t, env.db.First(&updated, trainee.ID).Error)
	assert.False(t, updated.IsActive)
	assert.Equal(t, "310", updated.RoomNumber)
	assert.Equal(t, trainee.TraineeID, updated.TraineeID)

	// Deactivated trainees cannot log in
	resp, body := env.request(t, "POST", "/api/trainee/login", "", fiber.Map{
		"email": "a@cssfarms.ng", "password": "secret-pass-1",
	})
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
	assert.Equal(t, "Account is deactivated!", body["message"])
}

func TestTraineeLogin(t *testing.T) {
	env := setupEnv(t)
	env.seedTrainee(t, "a@cssfarms.ng", "secret-pass-1", nil)

	t.Run("success", func(t *testing.T) {
		resp, body := env.request(t, "POST", "/api/trainee/login", "", fiber.Map{
			"email": "a@cssfarms.ng", "password": "secret-pass-1",
		})
		require.Equal(t, fiber.StatusOK, resp.StatusCode)
		data := body["data"].(map[string]any)
		assert.NotEmpty(t, data["token"])
		assert.Equal(t, "TRAINEE-0001", data["trainee"].(map[string]any)["traineeId"])
	})

	t.Run("wrong password", func(t *testing.T) {
		resp, _ := env.request(t, "POST", "/api/trainee/login", "", fiber.Map{
			"email": "a@cssfarms.ng", "password": "wrong-pass-1",
		})
		assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
	})

	t.Run("unknown email", func(t *testing.T) {
		resp, _ := env.request(t, "POST", "/api/trainee/login", "", fiber.Map{
			"email": "nobody@cssfarms.ng", "password": "secret-pass-1",
		})
		assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
	})
}

func TestTraineeMe(t *testing.T) {
	env := setupEnv(t)
	sponsor := models.Sponsor{Name: "CSS Group", IsActive: true}
	require.NoError(t, env.db.Create(&sponsor).Error)
	env.seedTrainee(t, "a@cssfarms.ng", "secret-pass-1", &sponsor.ID)

	token := env.login(t, "a@cssfarms.ng", "secret-pass-1")

	resp, body := env.request(t, "GET", "/api/trainee/me", token, nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	data := body["data"].(map[string]any)
	assert.Equal(t, "a@cssfarms.ng", data["email"])
	assert.Equal(t, "CSS Group", data["sponsor"].(map[string]any)["name"])

	resp, _ = env.request(t, "GET", "/api/trainee/me", "not-a-jwt", nil)
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
}

func TestDashboardMergesProgressAndScopesBySponsor(t *testing.T) {
	env := setupEnv(t)
	sponsor := models.Sponsor{Name: "CSS Group", IsActive: true}
	other := models.Sponsor{Name: "Other Sponsor", IsActive: false}
	require.NoError(t, env.db.Create(&sponsor).Error)
	require.NoError(t, env.db.Create(&other).Error)

	trainee := env.seedTrainee(t, "a@cssfarms.ng", "secret-pass-1", &sponsor.ID)

	mine := models.Content{Title: "Cohort Video", Type: models.ContentTypeVideo, SponsorID: &sponsor.ID, IsActive: true}
	global := models.Content{Title: "Global Video", Type: models.ContentTypeVideo, IsActive: true}
	foreign := models.Content{Title: "Other Cohort", Type: models.ContentTypeVideo, SponsorID: &other.ID, IsActive: true}
	retired := models.Content{Title: "Retired", Type: models.ContentTypeVideo, SponsorID: &sponsor.ID, IsActive: false}
	for _, c := range []*models.Content{&mine, &global, &foreign, &retired} {
		require.NoError(t, env.db.Create(c).Error)
	}

	require.NoError(t, env.db.Create(&models.TraineeProgress{
		TraineeID: trainee.ID, ContentID: mine.ID, Status: models.ProgressInProgress,
	}).Error)

	require.NoError(t, env.db.Create(&models.Announcement{
		Title: "Cohort Notice", Message: "m", SponsorID: &sponsor.ID, IsActive: true,
	}).Error)
	require.NoError(t, env.db.Create(&models.Announcement{
		Title: "Foreign Notice", Message: "m", SponsorID: &other.ID, IsActive: true,
	}).Error)

	token := env.login(t, "a@cssfarms.ng", "secret-pass-1")
	resp, body := env.request(t, "GET", "/api/trainee/dashboard", token, nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	data := body["data"].(map[string]any)
	items := data["content"].([]any)
	require.Len(t, items, 2)

	byTitle := make(map[string]map[string]any)
	for _, item := range items {
		entry := item.(map[string]any)
		byTitle[entry["title"].(string)] = entry
	}
	require.Contains(t, byTitle, "Cohort Video")
	require.Contains(t, byTitle, "Global Video")
	assert.Equal(t, models.ProgressInProgress, byTitle["Cohort Video"]["progressStatus"])
	assert.Equal(t, models.ProgressNotStarted, byTitle["Global Video"]["progressStatus"])

	announcements := data["announcements"].([]any)
	require.Len(t, announcements, 1)
	assert.Equal(t, "Cohort Notice", announcements[0].(map[string]any)["title"])
}

func TestUpdateOwnProgress(t *testing.T) {
	env := setupEnv(t)
	env.seedTrainee(t, "a@cssfarms.ng", "secret-pass-1", nil)
	content := models.Content{Title: "Global Video", Type: models.ContentTypeVideo, IsActive: true}
	require.NoError(t, env.db.Create(&content).Error)

	token := env.login(t, "a@cssfarms.ng", "secret-pass-1")

	resp, body := env.request(t, "POST", "/api/trainee/progress", token, fiber.Map{
		"contentId": content.ID,
		"status":    models.ProgressCompleted,
	})
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Equal(t, models.ProgressCompleted, body["data"].(map[string]any)["status"])

	t.Run("inactive content rejected", func(t *testing.T) {
		retired := models.Content{Title: "Retired", Type: models.ContentTypeVideo, IsActive: false}
		require.NoError(t, env.db.Create(&retired).Error)

		resp, _ := env.request(t, "POST", "/api/trainee/progress", token, fiber.Map{
			"contentId": retired.ID, "status": models.ProgressCompleted,
		})
		assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
	})

	t.Run("not_started not reportable", func(t *testing.T) {
		resp, _ := env.request(t, "POST", "/api/trainee/progress", token, fiber.Map{
			"contentId": content.ID, "status": models.ProgressNotStarted,
		})
		assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	})
}
