package progressController_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	progressController "fams/controllers/progress"
	"fams/database"
	"fams/middleware"
	"fams/models"
	"fams/routers/contentRoutes"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

type testEnv struct {
	app     *fiber.App
	db      *gorm.DB
	token   string
	trainee models.Trainee
	content models.Content
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

	middleware.AdminSessions = middleware.NewSessionStore(nil)
	token := middleware.AdminSessions.Create(1, "admin@cssfarms.ng", models.RoleAdmin)

	trainee := models.Trainee{TraineeID: "TRAINEE-0001", TagNumber: "FAMS-0001", Email: "a@cssfarms.ng"}
	require.NoError(t, db.Create(&trainee).Error)
	content := models.Content{Title: "Soil Prep", Type: models.ContentTypeVideo, IsActive: true}
	require.NoError(t, db.Create(&content).Error)

	app := fiber.New()
	contentRoutes.SetupContentRoutes(app)
	return &testEnv{app: app, db: db, token: token, trainee: trainee, content: content}
}

func (e *testEnv) request(t *testing.T, method, path string, body any) (*http.Response, map[string]any) {
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
	req.Header.Set("Authorization", "Bearer "+e.token)
	resp, err := e.app.Test(req, -1)
	require.NoError(t, err)

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	var parsed map[string]any
	require.NoError(t, json.Unmarshal(raw, &parsed))
	return resp, parsed
}

func (e *testEnv) progressRows(t *testing.T) []models.TraineeProgress {
	t.Helper()
	var rows []models.TraineeProgress
	require.NoError(t, e.db.Find(&rows).Error)
	return rows
}

func TestUpsertCreatesThenUpdatesSingleRow(t *testing.T) {
	env := setupEnv(t)

	resp, _ := env.request(t, "POST", "/api/progress/", fiber.Map{
		"traineeId": env.trainee.ID,
		"contentId": env.content.ID,
		"status":    models.ProgressInProgress,
	})
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	score := 85
	resp, body := env.request(t, "POST", "/api/progress/", fiber.Map{
		"traineeId": env.trainee.ID,
		"contentId": env.content.ID,
		"status":    models.ProgressCompleted,
		"score":     score,
	})
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	data := body["data"].(map[string]any)
	assert.Equal(t, models.ProgressCompleted, data["status"])
	assert.Equal(t, float64(score), data["score"])
	assert.NotNil(t, data["completedAt"])

	// Two submissions, one row
	rows := env.progressRows(t)
	require.Len(t, rows, 1)
	assert.Equal(t, models.ProgressCompleted, rows[0].Status)
	require.NotNil(t, rows[0].Score)
	assert.Equal(t, score, *rows[0].Score)
	assert.NotNil(t, rows[0].CompletedAt)
}

func TestCompletionTimestampClearedOnRegression(t *testing.T) {
	env := setupEnv(t)

	env.request(t, "POST", "/api/progress/", fiber.Map{
		"traineeId": env.trainee.ID,
		"contentId": env.content.ID,
		"status":    models.ProgressCompleted,
	})

	resp, body := env.request(t, "POST", "/api/progress/", fiber.Map{
		"traineeId": env.trainee.ID,
		"contentId": env.content.ID,
		"status":    models.ProgressInProgress,
	})
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Nil(t, body["data"].(map[string]any)["completedAt"])
}

func TestUpsertUnknownTraineeOrContent(t *testing.T) {
	env := setupEnv(t)

	resp, body := env.request(t, "POST", "/api/progress/", fiber.Map{
		"traineeId": 999, "contentId": env.content.ID, "status": models.ProgressInProgress,
	})
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
	assert.Equal(t, "Trainee not found!", body["message"])

	resp, body = env.request(t, "POST", "/api/progress/", fiber.Map{
		"traineeId": env.trainee.ID, "contentId": 999, "status": models.ProgressInProgress,
	})
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
	assert.Equal(t, "Content not found!", body["message"])
}

func TestUpsertRejectsUnknownStatus(t *testing.T) {
	env := setupEnv(t)

	resp, _ := env.request(t, "POST", "/api/progress/", fiber.Map{
		"traineeId": env.trainee.ID, "contentId": env.content.ID, "status": "done",
	})
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}

func TestGetTraineeProgress(t *testing.T) {
	env := setupEnv(t)

	second := models.Content{Title: "Irrigation Quiz", Type: models.ContentTypeQuiz, IsActive: true}
	require.NoError(t, env.db.Create(&second).Error)

	env.request(t, "POST", "/api/progress/", fiber.Map{
		"traineeId": env.trainee.ID, "contentId": env.content.ID, "status": models.ProgressCompleted,
	})
	env.request(t, "POST", "/api/progress/", fiber.Map{
		"traineeId": env.trainee.ID, "contentId": second.ID, "status": models.ProgressInProgress,
	})

	resp, body := env.request(t, "GET", fmt.Sprintf("/api/progress/%d", env.trainee.ID), nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Len(t, body["data"].([]any), 2)
}

func TestProgressRoutesRequireAdmin(t *testing.T) {
	env := setupEnv(t)

	req := httptest.NewRequest("POST", "/api/progress/", bytes.NewReader([]byte(`{}`)))
	req.Header.Set("Content-Type", "application/json")
	resp, err := env.app.Test(req, -1)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
}

func TestUpsertRowKeepsSubmissionFields(t *testing.T) {
	env := setupEnv(t)

	row, err := progressController.UpsertRow(env.db, env.trainee.ID, env.content.ID, func(r *models.TraineeProgress) {
		r.Status = models.ProgressInProgress
		r.SubmissionUrl = "https://files.cssfarms.ng/essay.pdf"
	})
	require.NoError(t, err)
	assert.Equal(t, "https://files.cssfarms.ng/essay.pdf", row.SubmissionUrl)

	// A later status-only update leaves the submission untouched
	row, err = progressController.UpsertRow(env.db, env.trainee.ID, env.content.ID, func(r *models.TraineeProgress) {
		r.Status = models.ProgressCompleted
	})
	require.NoError(t, err)
	assert.Equal(t, "https://files.cssfarms.ng/essay.pdf", row.SubmissionUrl)
	assert.NotNil(t, row.CompletedAt)
}
