package controllers_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/gofiber/fiber/v2"
	goredis "github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/Yash-231-hue/clinic-booking/db"
	"github.com/Yash-231-hue/clinic-booking/models"
	"github.com/Yash-231-hue/clinic-booking/redis"
	"github.com/Yash-231-hue/clinic-booking/routes"
)

// setupApp wires a fresh fiber app against an in-memory store. Redis
// stays uninitialized, so the cache and denylist run in their
// fall-through mode.
func setupApp(t *testing.T) *fiber.App {
	t.Helper()
	t.Setenv("JWT_SECRET", "test_secret")

	gormDB, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		TranslateError: true,
	})
	require.NoError(t, err)

	sqlDB, err := gormDB.DB()
	require.NoError(t, err)
	// A single connection keeps every query on the same in-memory DB.
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, gormDB.AutoMigrate(
		&models.User{},
		&models.Doctor{},
		&models.Appointment{},
	))
	db.DB = gormDB

	app := fiber.New()
	routes.SetupAuthRoutes(app)
	routes.SetupDoctorRoutes(app)
	routes.SetupAppointmentRoutes(app)
	routes.SetupAdminRoutes(app)
	return app
}

// setupRedis points the redis client at an in-process store so the
// denylist and directory cache run for real instead of falling
// through.
func setupRedis(t *testing.T) *miniredis.Miniredis {
	t.Helper()
	mr := miniredis.RunT(t)
	redis.Client = goredis.NewClient(&goredis.Options{Addr: mr.Addr()})
	t.Cleanup(func() {
		redis.Client = nil
	})
	return mr
}

// doJSON performs a request with an optional bearer token and decodes
// the JSON response body into a generic map.
func doJSON(t *testing.T, app *fiber.App, method, path, token string, body any) (*http.Response, map[string]any) {
	t.Helper()

	var reader io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(b)
	}

	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := app.Test(req, -1)
	require.NoError(t, err)

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	decoded := map[string]any{}
	if len(raw) > 0 && raw[0] == '{' {
		require.NoError(t, json.Unmarshal(raw, &decoded))
	}
	return resp, decoded
}

// doJSONList is doJSON for endpoints returning a JSON array.
func doJSONList(t *testing.T, app *fiber.App, method, path, token string) (*http.Response, []map[string]any) {
	t.Helper()

	req := httptest.NewRequest(method, path, nil)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := app.Test(req, -1)
	require.NoError(t, err)

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	var decoded []map[string]any
	require.NoError(t, json.Unmarshal(raw, &decoded))
	return resp, decoded
}

// registerPatient registers a user through the API and returns a
// session token from a follow-up login.
func registerPatient(t *testing.T, app *fiber.App, username, email, password string) string {
	t.Helper()

	resp, _ := doJSON(t, app, "POST", "/auth/register", "", map[string]any{
		"username": username,
		"email":    email,
		"contact":  "1234567890",
		"password": password,
	})
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)

	return login(t, app, username, password)
}

func login(t *testing.T, app *fiber.App, username, password string) string {
	t.Helper()

	resp, body := doJSON(t, app, "POST", "/auth/login", "", map[string]any{
		"username": username,
		"password": password,
	})
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	token, ok := body["token"].(string)
	require.True(t, ok, "login response must carry a token")
	return token
}

// seedAdmin inserts an admin row directly; registration can never
// produce one.
func seedAdmin(t *testing.T, username, password string) {
	t.Helper()

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)

	require.NoError(t, db.DB.Create(&models.User{
		Username: username,
		Email:    username + "@clinic.test",
		Password: string(hashed),
		Contact:  "0000000000",
		IsAdmin:  true,
	}).Error)
}

func seedDoctor(t *testing.T, name string) models.Doctor {
	t.Helper()

	doctor := models.Doctor{
		Name:           name,
		Degree:         "MD",
		Specialization: "Cardiology",
		Bio:            fmt.Sprintf("%s's bio", name),
	}
	require.NoError(t, db.DB.Create(&doctor).Error)
	return doctor
}
