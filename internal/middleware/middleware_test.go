package middleware_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"grocery/internal/middleware"
	"grocery/internal/models"
	"grocery/internal/services"

	"github.com/dgrijalva/jwt-go"
	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

const secret = "middleware_secret"

func signedToken(t *testing.T, username string, role models.Role) string {
	t.Helper()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, services.Claims{
		Username: username,
		Role:     role,
		StandardClaims: jwt.StandardClaims{
			ExpiresAt: time.Now().Add(time.Hour).Unix(),
		},
	})
	s, err := token.SignedString([]byte(secret))
	require.NoError(t, err)
	return s
}

func newAuthApp() *fiber.App {
	authService := services.NewAuthService(nil, secret, time.Hour)
	app := fiber.New()
	app.Use(middleware.AuthRequired(authService, zap.NewNop()))
	app.Get("/me", func(c *fiber.Ctx) error {
		claims := middleware.ClaimsFrom(c)
		return c.JSON(fiber.Map{"username": claims.Username, "role": claims.Role})
	})
	return app
}

func TestAuthRequired(t *testing.T) {
	app := newAuthApp()

	tests := []struct {
		name       string
		header     string
		wantStatus int
	}{
		{"missing header", "", http.StatusUnauthorized},
		{"wrong scheme", "Basic abc", http.StatusUnauthorized},
		{"garbage token", "Bearer not.a.token", http.StatusUnauthorized},
		{"valid token", "Bearer " + signedToken(t, "anna", models.RoleAdult), http.StatusOK},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/me", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			resp, err := app.Test(req)
			require.NoError(t, err)
			assert.Equal(t, tt.wantStatus, resp.StatusCode)

			var body map[string]interface{}
			require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
			if tt.wantStatus == http.StatusOK {
				assert.Equal(t, "anna", body["username"])
				assert.Equal(t, "adult", body["role"])
			} else {
				assert.Equal(t, "error", body["status"])
				assert.NotEmpty(t, body["errorMessage"])
			}
		})
	}
}

func TestRequestLoggerAndRecover(t *testing.T) {
	core, logs := observer.New(zap.InfoLevel)
	log := zap.New(core)

	app := fiber.New()
	app.Use(middleware.Recover(log))
	app.Use(middleware.RequestLogger(log))
	app.Use(middleware.Metrics())
	app.Get("/ok/:name", func(c *fiber.Ctx) error { return c.SendString(c.Params("name")) })
	app.Get("/boom", func(c *fiber.Ctx) error { panic("boom") })

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/ok/milk", nil))
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	entries := logs.FilterMessage("request").All()
	require.Len(t, entries, 1)
	fields := entries[0].ContextMap()
	assert.Equal(t, "/ok/:name", fields["route"])
	assert.EqualValues(t, http.StatusOK, fields["status"])

	resp, err = app.Test(httptest.NewRequest(http.MethodGet, "/boom", nil))
	require.NoError(t, err)
	assert.Equal(t, http.StatusInternalServerError, resp.StatusCode)
	assert.Equal(t, 1, logs.FilterMessage("panic recovered").Len())
}
