package routes

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"salonbook-backend/config"
	"salonbook-backend/logger"
	"salonbook-backend/models"
)

type envelope struct {
	Success bool                `json:"success"`
	Message string              `json:"message"`
	Errors  map[string][]string `json:"errors"`
	Data    json.RawMessage     `json:"data"`
}

func setupTestRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		TranslateError: true,
		Logger:         gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(
		&models.User{},
		&models.Customer{},
		&models.Service{},
		&models.Stylist{},
		&models.WorkSchedule{},
		&models.OfferedService{},
		&models.Appointment{},
		&models.ReminderLog{},
	))

	cfg := &config.Config{
		Environment:    "test",
		JWTSecret:      "routes-test-secret",
		AllowedOrigins: []string{"http://localhost:3000"},
	}
	log := logger.New(logger.Config{Level: "error", Output: io.Discard})
	return SetupRouter(db, cfg, log)
}

func do(t *testing.T, r *gin.Engine, method, path, token string, form url.Values) (*httptest.ResponseRecorder, envelope) {
	t.Helper()

	var body io.Reader
	if form != nil {
		body = strings.NewReader(form.Encode())
	}
	req := httptest.NewRequest(method, path, body)
	if form != nil {
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	var resp envelope
	if w.Body.Len() > 0 {
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp), w.Body.String())
	}
	return w, resp
}

func registerAndLogin(t *testing.T, r *gin.Engine) string {
	t.Helper()

	w, resp := do(t, r, http.MethodPost, "/auth/register", "", url.Values{
		"name":     {"Salon Owner"},
		"email":    {"owner@example.com"},
		"phone":    {"+15551110001"},
		"password": {"longenough"},
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	require.True(t, resp.Success)

	w, resp = do(t, r, http.MethodPost, "/auth/login", "", url.Values{
		"identifier": {"owner@example.com"},
		"password":   {"longenough"},
	})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	require.True(t, resp.Success)

	var data struct {
		Token    string `json:"token"`
		Redirect string `json:"redirect"`
	}
	require.NoError(t, json.Unmarshal(resp.Data, &data))
	require.NotEmpty(t, data.Token)
	assert.Equal(t, "/admin", data.Redirect)
	return data.Token
}

func TestAdminRoutesRequireAuth(t *testing.T) {
	r := setupTestRouter(t)

	w, resp := do(t, r, http.MethodGet, "/api/admin/services", "", nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.False(t, resp.Success)
}

func TestLoginRejectsBadCredentials(t *testing.T) {
	r := setupTestRouter(t)
	registerAndLogin(t, r)

	w, resp := do(t, r, http.MethodPost, "/auth/login", "", url.Values{
		"identifier": {"owner@example.com"},
		"password":   {"wrong-password"},
	})
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.False(t, resp.Success)
	assert.Equal(t, "Invalid credentials", resp.Message)
}

func TestServiceCreateValidationEnvelope(t *testing.T) {
	r := setupTestRouter(t)
	token := registerAndLogin(t, r)

	w, resp := do(t, r, http.MethodPost, "/api/admin/services", token, url.Values{
		"name":  {""},
		"price": {"25"},
	})
	assert.Equal(t, http.StatusUnprocessableEntity, w.Code, w.Body.String())
	assert.False(t, resp.Success)
	assert.Contains(t, resp.Errors["name"], "is required")
	assert.Contains(t, resp.Errors["duration_minutes"], "is required")
}

func TestAdminCatalogFlow(t *testing.T) {
	r := setupTestRouter(t)
	token := registerAndLogin(t, r)

	w, resp := do(t, r, http.MethodPost, "/api/admin/services", token, url.Values{
		"name":             {"Haircut"},
		"duration_minutes": {"30"},
		"price":            {"25"},
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	require.True(t, resp.Success)

	w, resp = do(t, r, http.MethodGet, "/api/admin/services", token, nil)
	require.Equal(t, http.StatusOK, w.Code)

	var list []models.Service
	require.NoError(t, json.Unmarshal(resp.Data, &list))
	require.Len(t, list, 1)
	assert.Equal(t, "Haircut", list[0].Name)
	assert.True(t, list[0].IsActive, "is_active defaults to true when the checkbox is absent on create")

	t.Run("update without the checkbox deactivates", func(t *testing.T) {
		id := list[0].ID.String()
		w, resp := do(t, r, http.MethodPut, "/api/admin/services/"+id, token, url.Values{
			"name":             {"Haircut"},
			"duration_minutes": {"30"},
			"price":            {"25"},
		})
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())
		require.True(t, resp.Success)

		w, resp = do(t, r, http.MethodGet, "/api/admin/services/"+id, token, nil)
		require.Equal(t, http.StatusOK, w.Code)
		var service models.Service
		require.NoError(t, json.Unmarshal(resp.Data, &service))
		assert.False(t, service.IsActive, "absent checkbox on edit means unchecked")
	})

	t.Run("update with the checkbox re-activates", func(t *testing.T) {
		id := list[0].ID.String()
		w, _ := do(t, r, http.MethodPut, "/api/admin/services/"+id, token, url.Values{
			"name":             {"Haircut"},
			"duration_minutes": {"30"},
			"price":            {"25"},
			"is_active":        {"on"},
		})
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())

		w, resp := do(t, r, http.MethodGet, "/api/admin/services/"+id, token, nil)
		require.Equal(t, http.StatusOK, w.Code)
		var service models.Service
		require.NoError(t, json.Unmarshal(resp.Data, &service))
		assert.True(t, service.IsActive)
	})
}

func TestScheduleCreateMissingWeekdayEnvelope(t *testing.T) {
	r := setupTestRouter(t)
	token := registerAndLogin(t, r)

	w, resp := do(t, r, http.MethodPost, "/api/stylist/schedules", token, url.Values{
		"stylist_id": {"6ba7b810-9dad-11d1-80b4-00c04fd430c8"},
		"start_time": {"09:00"},
		"end_time":   {"17:00"},
	})
	assert.Equal(t, http.StatusUnprocessableEntity, w.Code, w.Body.String())
	assert.False(t, resp.Success)
	assert.Contains(t, resp.Errors["weekday"], "is required")
}

func TestStylistDuplicateEnvelope(t *testing.T) {
	r := setupTestRouter(t)
	token := registerAndLogin(t, r)

	form := url.Values{
		"name":  {"Aylin Demir"},
		"email": {"aylin@example.com"},
		"phone": {"+15551230001"},
	}
	w, resp := do(t, r, http.MethodPost, "/api/admin/stylists", token, form)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	require.True(t, resp.Success)

	// Same email, different name and phone.
	w, resp = do(t, r, http.MethodPost, "/api/admin/stylists", token, url.Values{
		"name":  {"Maya Chen"},
		"email": {"aylin@example.com"},
		"phone": {"+15551230002"},
	})
	assert.Equal(t, http.StatusConflict, w.Code, w.Body.String())
	assert.False(t, resp.Success)
	assert.Equal(t, []string{"is already in use"}, resp.Errors["email"])
	assert.Len(t, resp.Errors, 1)

	w, resp = do(t, r, http.MethodGet, "/api/admin/stylists", token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	var list []models.Stylist
	require.NoError(t, json.Unmarshal(resp.Data, &list))
	assert.Len(t, list, 1, "the rejected duplicate was not stored")
}

func TestPublicBookingFlow(t *testing.T) {
	r := setupTestRouter(t)
	token := registerAndLogin(t, r)

	w, resp := do(t, r, http.MethodPost, "/api/admin/services", token, url.Values{
		"name":             {"Haircut"},
		"duration_minutes": {"30"},
		"price":            {"25"},
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	var service models.Service
	require.NoError(t, json.Unmarshal(resp.Data, &service))

	w, resp = do(t, r, http.MethodPost, "/api/admin/stylists", token, url.Values{
		"name":  {"Aylin Demir"},
		"email": {"aylin@example.com"},
		"phone": {"+15551230001"},
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	var stylist models.Stylist
	require.NoError(t, json.Unmarshal(resp.Data, &stylist))

	// 2026-09-01 is a Tuesday, weekday 2.
	w, _ = do(t, r, http.MethodPost, "/api/stylist/schedules", token, url.Values{
		"stylist_id": {stylist.ID.String()},
		"weekday":    {"2"},
		"start_time": {"09:00"},
		"end_time":   {"17:00"},
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	w, _ = do(t, r, http.MethodPost, "/api/stylist/offered-services", token, url.Values{
		"stylist_id": {stylist.ID.String()},
		"service_id": {service.ID.String()},
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	book := url.Values{
		"name":       {"Maya Chen"},
		"phone":      {"+15559870001"},
		"stylist_id": {stylist.ID.String()},
		"service_id": {service.ID.String()},
		"date":       {"2026-09-01"},
		"start_time": {"10:00"},
	}
	w, resp = do(t, r, http.MethodPost, "/api/public/bookings", "", book)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	require.True(t, resp.Success)

	var appointment models.Appointment
	require.NoError(t, json.Unmarshal(resp.Data, &appointment))
	assert.Equal(t, 25.0, appointment.Price)
	assert.Equal(t, 30, appointment.DurationMinutes)
	assert.Equal(t, models.AppointmentScheduled, appointment.Status)

	t.Run("overlapping slot is refused", func(t *testing.T) {
		conflict := url.Values{}
		for k, v := range book {
			conflict[k] = v
		}
		conflict.Set("phone", "+15559870002")
		conflict.Set("start_time", "10:15")

		w, resp := do(t, r, http.MethodPost, "/api/public/bookings", "", conflict)
		assert.Equal(t, http.StatusUnprocessableEntity, w.Code, w.Body.String())
		assert.Contains(t, resp.Errors["start_time"], "conflicts with an existing booking")
	})

	t.Run("slot outside working hours is refused", func(t *testing.T) {
		outside := url.Values{}
		for k, v := range book {
			outside[k] = v
		}
		outside.Set("start_time", "18:00")

		w, resp := do(t, r, http.MethodPost, "/api/public/bookings", "", outside)
		assert.Equal(t, http.StatusUnprocessableEntity, w.Code, w.Body.String())
		assert.Contains(t, resp.Errors["start_time"], "is outside the stylist's working hours")
	})
}
