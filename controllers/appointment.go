// controllers/appointment.go
package controllers

import (
	"errors"
	"net/http"
	"time"

	"halo-lounge-backend/booking"
	"halo-lounge-backend/config"
	"halo-lounge-backend/models"
	"halo-lounge-backend/utils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// CreateAppointmentInput defines the expected JSON structure for booking
type CreateAppointmentInput struct {
	ServiceID string `json:"serviceId" binding:"required"`
	Date      string `json:"date" binding:"required"` // YYYY-MM-DD
	StartTime string `json:"startTime" binding:"required"`
	Notes     string `json:"notes"`
}

// UpdateAppointmentStatusInput carries an administrative action on an
// appointment's status
type UpdateAppointmentStatusInput struct {
	Action string `json:"action" binding:"required,oneof=confirm complete cancel no_show"`
}

// CreateAppointment books a new appointment for the calling user. The end
// time comes from the slot resolver; overlapping bookings for the same
// service and date are rejected inside a check-then-insert transaction.
func CreateAppointment(c *gin.Context) {
	userID, exists := c.Get("userId")
	if !exists {
		utils.RespondWithError(c, http.StatusUnauthorized, "User ID not found in context")
		return
	}

	userUUID, err := uuid.Parse(userID.(string))
	if err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Invalid user ID format")
		return
	}

	var input CreateAppointmentInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	date, err := time.Parse("2006-01-02", input.Date)
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid date, want YYYY-MM-DD")
		return
	}

	// Look up the service; an unknown service is a distinct failure from
	// malformed input
	var service models.Service
	if err := config.DB.Where("id = ? AND is_active = ?", input.ServiceID, true).
		First(&service).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "Service not found")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		}
		return
	}

	endTime, err := booking.ResolveEndTime(input.StartTime, service.Duration)
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid slot: "+err.Error())
		return
	}

	appointment := models.Appointment{
		UserID:    userUUID,
		ServiceID: service.ID,
		Date:      date,
		StartTime: input.StartTime,
		EndTime:   endTime,
		Status:    models.StatusPending,
		Notes:     input.Notes,
	}

	// Start transaction
	tx := config.DB.Begin()
	defer func() {
		if r := recover(); r != nil {
			tx.Rollback()
		}
	}()

	// Check-then-insert: cancelled and no-show bookings do not block a
	// slot. The appointments_service_slot unique index backs this up
	// against concurrent bookings.
	var existing []models.Appointment
	if err := tx.Where("service_id = ? AND date = ? AND status NOT IN ?",
		service.ID, date, []string{models.StatusCancelled, models.StatusNoShow}).
		Find(&existing).Error; err != nil {
		tx.Rollback()
		utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		return
	}

	for _, other := range existing {
		overlaps, err := booking.Overlaps(input.StartTime, endTime, other.StartTime, other.EndTime)
		if err != nil {
			tx.Rollback()
			utils.RespondWithError(c, http.StatusInternalServerError, "Stored slot is malformed")
			return
		}
		if overlaps {
			tx.Rollback()
			utils.RespondWithError(c, http.StatusConflict, "Time slot is already booked")
			return
		}
	}

	if err := tx.Create(&appointment).Error; err != nil {
		tx.Rollback()
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to create appointment")
		return
	}

	tx.Commit()

	appointment.Service = service
	c.JSON(http.StatusCreated, gin.H{"appointment": appointment})
}

// GetAppointments lists the calling user's appointments, newest date
// first, each joined with its service
func GetAppointments(c *gin.Context) {
	userID, exists := c.Get("userId")
	if !exists {
		utils.RespondWithError(c, http.StatusUnauthorized, "User ID not found in context")
		return
	}

	userUUID, err := uuid.Parse(userID.(string))
	if err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Invalid user ID format")
		return
	}

	var appointments []models.Appointment
	if err := config.DB.Preload("Service").
		Where("user_id = ?", userUUID).
		Order("date desc, start_time desc").
		Find(&appointments).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to retrieve appointments")
		return
	}

	c.JSON(http.StatusOK, gin.H{"appointments": appointments})
}

// UpdateAppointmentStatus applies an administrative action (confirm,
// complete, cancel, no_show) validated against the transition table.
// Admin only.
func UpdateAppointmentStatus(c *gin.Context) {
	appointmentUUID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid appointment ID format")
		return
	}

	var input UpdateAppointmentStatusInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	var appointment models.Appointment
	if err := config.DB.Where("id = ?", appointmentUUID).
		First(&appointment).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "Appointment not found")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		}
		return
	}

	if !models.ValidStatusTransition(input.Action, appointment.Status) {
		utils.RespondWithError(c, http.StatusConflict,
			"Cannot "+input.Action+" an appointment in status "+appointment.Status)
		return
	}

	appointment.Status = models.ActionStatus[input.Action]
	if err := config.DB.Save(&appointment).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to update appointment")
		return
	}

	c.JSON(http.StatusOK, gin.H{"appointment": appointment})
}
