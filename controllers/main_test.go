package controllers_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/localserve/marketplace-api/auth"
	"github.com/localserve/marketplace-api/config"
	"github.com/localserve/marketplace-api/controllers"
	"github.com/localserve/marketplace-api/db"
	"github.com/localserve/marketplace-api/models"
	"github.com/localserve/marketplace-api/routes"
)

var dbCounter int64

// setupApp wires the full route surface against a fresh in-memory sqlite
// database. Each call gets its own database, so tests stay independent.
func setupApp(t *testing.T) *fiber.App {
	t.Helper()

	dsn := fmt.Sprintf("file:controllers_test_%d?mode=memory&cache=shared",
		atomic.AddInt64(&dbCounter, 1))
	gdb, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		TranslateError: true,
		Logger:         gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)

	// A single pooled connection keeps the in-memory database alive for the
	// whole test.
	sqlDB, err := gdb.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, gdb.AutoMigrate(
		&models.User{},
		&models.ProviderProfile{},
		&models.Service{},
		&models.Booking{},
		&models.CartItem{},
	))
	db.DB = gdb

	issuer := auth.NewTokenIssuer(config.JWTConfig{
		Secret:    "test-secret",
		ExpiresIn: time.Hour,
		Algorithm: "HS256",
	})
	authController := controllers.NewAuthController(issuer, "test-admin-key")

	app := fiber.New()
	routes.SetupAuthRoutes(app, authController, issuer)
	routes.SetupServiceRoutes(app)
	routes.SetupBookingRoutes(app, issuer)
	routes.SetupCartRoutes(app, issuer)
	routes.SetupProviderRoutes(app, issuer)
	routes.SetupUserRoutes(app, issuer)
	routes.SetupAdminRoutes(app, issuer)
	return app
}

// doJSON performs a request and decodes the JSON response body.
func doJSON(t *testing.T, app *fiber.App, method, path, token string, body interface{}) (int, map[string]interface{}) {
	t.Helper()

	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(data)
	}

	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := app.Test(req, 5000)
	require.NoError(t, err)
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	out := map[string]interface{}{}
	if len(raw) > 0 {
		require.NoError(t, json.Unmarshal(raw, &out), "body: %s", raw)
	}
	return resp.StatusCode, out
}

// register creates a user through the API and returns its token and id.
func register(t *testing.T, app *fiber.App, payload map[string]interface{}) (string, uint) {
	t.Helper()

	code, body := doJSON(t, app, http.MethodPost, "/auth/register", "", payload)
	require.Equal(t, http.StatusCreated, code, "register failed: %v", body)

	token, _ := body["token"].(string)
	require.NotEmpty(t, token)

	user, ok := body["user"].(map[string]interface{})
	require.True(t, ok)
	id, ok := user["id"].(float64)
	require.True(t, ok)
	return token, uint(id)
}
