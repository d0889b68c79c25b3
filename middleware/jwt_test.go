package middleware

import (
	"encoding/json"
	"net/http/httptest"
	"testing"
	"time"

	"fams/config"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTraineeJWTApp(t *testing.T) *fiber.App {
	t.Helper()
	config.AppConfig = &config.Config{JWTKey: "test-signing-key"}

	app := fiber.New()
	app.Get("/guarded", TraineeJWTMiddleware, func(c *fiber.Ctx) error {
		return JsonResponse(c, fiber.StatusOK, true, "ok", fiber.Map{
			"traineeId": c.Locals("traineeId").(uint),
		})
	})
	return app
}

func TestTraineeJWTAcceptsGeneratedToken(t *testing.T) {
	app := newTraineeJWTApp(t)

	token, err := GenerateTraineeJWT(7, "TRAINEE-0007", "t7@cssfarms.ng")
	require.NoError(t, err)

	req := httptest.NewRequest("GET", "/guarded", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	var body struct {
		Data struct {
			TraineeID float64 `json:"traineeId"`
		} `json:"data"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, float64(7), body.Data.TraineeID)
}

func TestTraineeJWTRejectsNonNumericIDClaim(t *testing.T) {
	app := newTraineeJWTApp(t)

	// A token signed with the right key but carrying a string traineeId
	// must be rejected, not crash the handler.
	claims := jwt.MapClaims{
		"traineeId": "TRAINEE-0007",
		"exp":       time.Now().Add(time.Hour).Unix(),
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).
		SignedString([]byte(config.AppConfig.JWTKey))
	require.NoError(t, err)

	req := httptest.NewRequest("GET", "/guarded", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
}

func TestTraineeJWTRejectsBadTokens(t *testing.T) {
	app := newTraineeJWTApp(t)

	cases := []struct {
		name   string
		header string
	}{
		{"missing header", ""},
		{"not bearer", "Token abc"},
		{"garbage token", "Bearer not.a.jwt"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			req := httptest.NewRequest("GET", "/guarded", nil)
			if tc.header != "" {
				req.Header.Set("Authorization", tc.header)
			}
			resp, err := app.Test(req, -1)
			require.NoError(t, err)
			assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
		})
	}
}
