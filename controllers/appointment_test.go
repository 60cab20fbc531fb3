package controllers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"halo-lounge-backend/models"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func bookingFixtures(t *testing.T) (*gorm.DB, models.User) {
	t.Helper()
	db := setupTestDB(t)

	user := models.User{
		Email:    "jane@example.com",
		Name:     "Jane Doe",
		Password: "customer123",
		Role:     models.RoleUser,
		IsActive: true,
	}
	require.NoError(t, db.Create(&user).Error)

	service := models.Service{
		ID:         "classic-haircut",
		Name:       "Classic Haircut",
		PriceCents: 6500,
		Duration:   60,
		Category:   models.CategoryHaircut,
		IsActive:   true,
	}
	require.NoError(t, db.Create(&service).Error)

	return db, user
}

func bookingRouter(userID string) *gin.Engine {
	r := gin.New()
	r.POST("/api/appointments", func(c *gin.Context) {
		c.Set("userId", userID)
		CreateAppointment(c)
	})
	r.GET("/api/appointments", func(c *gin.Context) {
		c.Set("userId", userID)
		GetAppointments(c)
	})
	return r
}

func postBooking(r *gin.Engine, payload gin.H) *httptest.ResponseRecorder {
	body, _ := json.Marshal(payload)
	req := httptest.NewRequest(http.MethodPost, "/api/appointments", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestCreateAppointmentConflictPolicy(t *testing.T) {
	db, user := bookingFixtures(t)
	r := bookingRouter(user.ID.String())

	book := func(start string) *httptest.ResponseRecorder {
		return postBooking(r, gin.H{
			"serviceId": "classic-haircut",
			"date":      "2026-09-01",
			"startTime": start,
		})
	}

	// first booking takes 14:00-15:00
	w := book("14:00")
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	// an overlapping booking for the same service and date is rejected
	w = book("14:30")
	assert.Equal(t, http.StatusConflict, w.Code, w.Body.String())

	// a back-to-back booking starting exactly at the previous end succeeds
	w = book("15:00")
	assert.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	// the same start time on another day is free
	w = postBooking(r, gin.H{
		"serviceId": "classic-haircut",
		"date":      "2026-09-02",
		"startTime": "14:00",
	})
	assert.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	var count int64
	db.Model(&models.Appointment{}).Count(&count)
	assert.Equal(t, int64(3), count)
}

func TestCreateAppointmentCancelledSlotFreesUp(t *testing.T) {
	db, user := bookingFixtures(t)
	r := bookingRouter(user.ID.String())

	w := postBooking(r, gin.H{
		"serviceId": "classic-haircut",
		"date":      "2026-09-01",
		"startTime": "14:00",
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	require.NoError(t, db.Model(&models.Appointment{}).
		Where("start_time = ?", "14:00").
		Update("status", models.StatusCancelled).Error)

	// cancelled bookings no longer block the slot
	w = postBooking(r, gin.H{
		"serviceId": "classic-haircut",
		"date":      "2026-09-01",
		"startTime": "14:30",
	})
	assert.Equal(t, http.StatusCreated, w.Code, w.Body.String())
}

func TestCreateAppointmentFailureTaxonomy(t *testing.T) {
	_, user := bookingFixtures(t)
	r := bookingRouter(user.ID.String())

	// unknown service is a 404, distinct from validation failures
	w := postBooking(r, gin.H{
		"serviceId": "no-such-service",
		"date":      "2026-09-01",
		"startTime": "14:00",
	})
	assert.Equal(t, http.StatusNotFound, w.Code, w.Body.String())

	// malformed request shape is a 400
	w = postBooking(r, gin.H{"serviceId": "classic-haircut"})
	assert.Equal(t, http.StatusBadRequest, w.Code, w.Body.String())

	// a slot that would run past midnight is a 400
	w = postBooking(r, gin.H{
		"serviceId": "classic-haircut",
		"date":      "2026-09-01",
		"startTime": "23:30",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code, w.Body.String())
}

func TestGetAppointmentsNewestFirst(t *testing.T) {
	_, user := bookingFixtures(t)
	r := bookingRouter(user.ID.String())

	for _, b := range []gin.H{
		{"serviceId": "classic-haircut", "date": "2026-09-01", "startTime": "14:00"},
		{"serviceId": "classic-haircut", "date": "2026-09-03", "startTime": "10:00"},
		{"serviceId": "classic-haircut", "date": "2026-09-02", "startTime": "09:00"},
	} {
		w := postBooking(r, b)
		require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	}

	req := httptest.NewRequest(http.MethodGet, "/api/appointments", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Appointments []models.Appointment `json:"appointments"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp.Appointments, 3)

	assert.Equal(t, "10:00", resp.Appointments[0].StartTime)
	assert.Equal(t, "09:00", resp.Appointments[1].StartTime)
	assert.Equal(t, "14:00", resp.Appointments[2].StartTime)
	assert.Equal(t, "Classic Haircut", resp.Appointments[0].Service.Name)
	assert.Equal(t, "15:00", resp.Appointments[2].EndTime)
}
