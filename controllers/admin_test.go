package controllers_test

import (
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Yash-231-hue/clinic-booking/db"
	"github.com/Yash-231-hue/clinic-booking/models"
)

func adminToken(t *testing.T, app *fiber.App) string {
	t.Helper()
	seedAdmin(t, "admin123", "admin@123")
	return login(t, app, "admin123", "admin@123")
}

func TestAdminPanelAccess(t *testing.T) {
	app := setupApp(t)
	t.Setenv("ADMIN_EMAIL", "admin@example.com")
	t.Setenv("ADMIN_CONTACT", "+91-1234567890")
	seedDoctor(t, "Dr. X")
	admin := adminToken(t, app)

	resp, body := doJSON(t, app, "GET", "/admin", admin, nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Equal(t, "admin@example.com", body["admin_email"])
	assert.Equal(t, "+91-1234567890", body["admin_contact"])
	assert.Len(t, body["doctors"], 1)
}

func TestAdminPanelForbiddenForOthers(t *testing.T) {
	app := setupApp(t)
	patient := registerPatient(t, app, "alice", "a@x.com", "secret1")

	// Patient principal
	resp, _ := doJSON(t, app, "GET", "/admin", patient, nil)
	assert.Equal(t, fiber.StatusForbidden, resp.StatusCode)

	// Anonymous is bounced to login instead
	resp, body := doJSON(t, app, "GET", "/admin", "", nil)
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
	redirect, _ := body["redirect"].(string)
	assert.True(t, strings.HasPrefix(redirect, "/auth/login?next="))
}

func TestAddDoctor(t *testing.T) {
	app := setupApp(t)
	admin := adminToken(t, app)

	resp, body := doJSON(t, app, "POST", "/admin/doctors", admin, map[string]any{
		"name": "Dr. X", "degree": "MD", "specialization": "Cardiology", "bio": "bio",
	})
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)
	assert.Equal(t, "Dr. X", body["name"])
	assert.NotZero(t, body["id"])
}

func TestAddDoctorValidation(t *testing.T) {
	app := setupApp(t)
	admin := adminToken(t, app)

	resp, _ := doJSON(t, app, "POST", "/admin/doctors", admin, map[string]any{
		"name": "", "degree": "MD", "specialization": "Cardiology",
	})
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)

	// Bio beyond the bound is rejected, not truncated.
	resp, _ = doJSON(t, app, "POST", "/admin/doctors", admin, map[string]any{
		"name": "Dr. X", "degree": "MD", "specialization": "Cardiology",
		"bio": strings.Repeat("x", models.MaxBioLength+1),
	})
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)

	var count int64
	require.NoError(t, db.DB.Model(&models.Doctor{}).Count(&count).Error)
	assert.Zero(t, count)
}

func TestAddDoctorForbiddenForPatient(t *testing.T) {
	app := setupApp(t)
	patient := registerPatient(t, app, "alice", "a@x.com", "secret1")

	resp, _ := doJSON(t, app, "POST", "/admin/doctors", patient, map[string]any{
		"name": "Dr. X", "degree": "MD", "specialization": "Cardiology",
	})
	assert.Equal(t, fiber.StatusForbidden, resp.StatusCode)
}

func TestDeleteDoctorCascades(t *testing.T) {
	app := setupApp(t)
	doctor := seedDoctor(t, "Dr. X")
	alice := registerPatient(t, app, "alice", "a@x.com", "secret1")
	admin := adminToken(t, app)

	for _, slot := range [][2]string{{"2024-06-01", "10:00"}, {"2024-06-01", "11:00"}, {"2024-06-02", "10:00"}} {
		status, _ := bookSlot(t, app, alice, doctor.ID, slot[0], slot[1])
		require.Equal(t, fiber.StatusCreated, status)
	}

	resp, _ := doJSON(t, app, "DELETE", fmt.Sprintf("/admin/doctors/%d", doctor.ID), admin, nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	var apptCount int64
	require.NoError(t, db.DB.Model(&models.Appointment{}).
		Where("doctor_id = ?", doctor.ID).Count(&apptCount).Error)
	assert.Zero(t, apptCount, "no appointment may reference the deleted doctor")

	resp, _ = doJSON(t, app, "GET", fmt.Sprintf("/doctors/%d", doctor.ID), "", nil)
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
}

func TestDeleteMissingDoctor(t *testing.T) {
	app := setupApp(t)
	admin := adminToken(t, app)

	resp, _ := doJSON(t, app, "DELETE", "/admin/doctors/999", admin, nil)
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
}

func TestDoctorScheduleOrderedByTime(t *testing.T) {
	app := setupApp(t)
	doctor := seedDoctor(t, "Dr. X")
	alice := registerPatient(t, app, "alice", "a@x.com", "secret1")
	admin := adminToken(t, app)

	for _, slot := range []string{"14:00", "09:00", "11:30"} {
		status, _ := bookSlot(t, app, alice, doctor.ID, "2024-06-01", slot)
		require.Equal(t, fiber.StatusCreated, status)
	}

	resp, body := doJSON(t, app, "GET",
		fmt.Sprintf("/admin/doctors/%d/schedule?date=2024-06-01", doctor.ID), admin, nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	schedule := body["schedule"].([]any)
	require.Len(t, schedule, 3)
	for i, want := range []string{"09:00", "11:30", "14:00"} {
		appt := schedule[i].(map[string]any)
		assert.Equal(t, want, appt["time"], "position %d", i)
	}
}

func TestDoctorScheduleDateFallback(t *testing.T) {
	app := setupApp(t)
	doctor := seedDoctor(t, "Dr. X")
	alice := registerPatient(t, app, "alice", "a@x.com", "secret1")
	admin := adminToken(t, app)

	today := time.Now().UTC().Format(models.DateLayout)
	status, _ := bookSlot(t, app, alice, doctor.ID, today, "10:00")
	require.Equal(t, fiber.StatusCreated, status)

	// Unparseable and missing dates both resolve to today.
	for _, q := range []string{"?date=not-a-date", ""} {
		resp, body := doJSON(t, app, "GET",
			fmt.Sprintf("/admin/doctors/%d/schedule%s", doctor.ID, q), admin, nil)
		require.Equal(t, fiber.StatusOK, resp.StatusCode)
		assert.Equal(t, today, body["date"])
		assert.Len(t, body["schedule"], 1)
	}
}

func TestScheduleForbiddenForPatient(t *testing.T) {
	app := setupApp(t)
	doctor := seedDoctor(t, "Dr. X")
	patient := registerPatient(t, app, "alice", "a@x.com", "secret1")

	resp, _ := doJSON(t, app, "GET",
		fmt.Sprintf("/admin/doctors/%d/schedule", doctor.ID), patient, nil)
	assert.Equal(t, fiber.StatusForbidden, resp.StatusCode)
}
