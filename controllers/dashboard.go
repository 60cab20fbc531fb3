package controllers

import (
	"net/http"
	"time"

	"halo-lounge-backend/config"
	"halo-lounge-backend/models"
	"halo-lounge-backend/utils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// GetDashboardOverview summarizes the calling customer's account:
// upcoming appointments, recent orders, and lifetime spend
func GetDashboardOverview(c *gin.Context) {
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

	today := utils.BeginningOfDay(time.Now())

	// Upcoming appointments
	var upcoming []models.Appointment
	config.DB.Preload("Service").
		Where("user_id = ? AND date >= ? AND status IN ?",
			userUUID, today, []string{models.StatusPending, models.StatusConfirmed}).
		Order("date asc, start_time asc").
		Limit(5).
		Find(&upcoming)

	// Appointment counts by status
	type statusCount struct {
		Status string
		Count  int64
	}
	var counts []statusCount
	config.DB.Model(&models.Appointment{}).
		Select("status, COUNT(*) as count").
		Where("user_id = ?", userUUID).
		Group("status").
		Scan(&counts)

	statusTotals := make(map[string]int64, len(counts))
	for _, sc := range counts {
		statusTotals[sc.Status] = sc.Count
	}

	// Recent orders
	var recentOrders []models.Order
	config.DB.Preload("Items").
		Where("user_id = ?", userUUID).
		Order("order_date desc").
		Limit(3).
		Find(&recentOrders)

	// Lifetime spend across paid orders
	var totalSpentCents int64
	config.DB.Model(&models.Order{}).
		Where("user_id = ? AND status = ?", userUUID, models.OrderPaid).
		Select("COALESCE(SUM(total_cents), 0)").
		Scan(&totalSpentCents)

	var totalOrders int64
	config.DB.Model(&models.Order{}).Where("user_id = ?", userUUID).Count(&totalOrders)

	c.JSON(http.StatusOK, gin.H{
		"upcomingAppointments": upcoming,
		"appointmentsByStatus": statusTotals,
		"recentOrders":         recentOrders,
		"totalOrders":          totalOrders,
		"totalSpentCents":      totalSpentCents,
	})
}
