// controllers/service.go
package controllers

import (
	"errors"
	"net/http"
	"regexp"
	"strings"

	"halo-lounge-backend/config"
	"halo-lounge-backend/models"
	"halo-lounge-backend/utils"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// CreateServiceInput defines the expected JSON structure for creating a service
type CreateServiceInput struct {
	Name        string `json:"name" binding:"required"`
	Description string `json:"description"`
	PriceCents  int64  `json:"priceCents" binding:"required,min=0"`
	Duration    int    `json:"duration" binding:"required,min=1"` // in minutes
	Category    string `json:"category" binding:"required,oneof=HAIRCUT COLORING TREATMENT STYLING EXTENSIONS BRAIDING"`
	Image       string `json:"image"`
}

// UpdateServiceInput defines the expected JSON structure for updating a service
type UpdateServiceInput struct {
	Name        *string `json:"name"`
	Description *string `json:"description"`
	PriceCents  *int64  `json:"priceCents"`
	Duration    *int    `json:"duration"`
	Category    *string `json:"category" binding:"omitempty,oneof=HAIRCUT COLORING TREATMENT STYLING EXTENSIONS BRAIDING"`
	Image       *string `json:"image"`
	IsActive    *bool   `json:"isActive"`
}

var slugPattern = regexp.MustCompile(`\s+`)

// ServiceSlug derives the catalog ID from a service name
func ServiceSlug(name string) string {
	return slugPattern.ReplaceAllString(strings.ToLower(strings.TrimSpace(name)), "-")
}

// GetServices lists active services, alphabetically by name. Public.
func GetServices(c *gin.Context) {
	var services []models.Service
	if err := config.DB.Where("is_active = ?", true).
		Order("name asc").
		Find(&services).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to retrieve services")
		return
	}

	c.JSON(http.StatusOK, gin.H{"services": services})
}

// GetService retrieves a specific service by its slug ID. Public.
func GetService(c *gin.Context) {
	var service models.Service
	if err := config.DB.Where("id = ?", c.Param("id")).
		First(&service).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "Service not found")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		}
		return
	}

	c.JSON(http.StatusOK, service)
}

// CreateService creates a new catalog service. Admin only.
func CreateService(c *gin.Context) {
	var input CreateServiceInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	service := models.Service{
		ID:          ServiceSlug(input.Name),
		Name:        input.Name,
		Description: input.Description,
		PriceCents:  input.PriceCents,
		Duration:    input.Duration,
		Category:    input.Category,
		Image:       input.Image,
		IsActive:    true,
	}

	if err := config.DB.Create(&service).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to create service")
		return
	}

	c.JSON(http.StatusCreated, service)
}

// UpdateService updates an existing service. Admin only.
func UpdateService(c *gin.Context) {
	var input UpdateServiceInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	// Retrieve existing service
	var service models.Service
	if err := config.DB.Where("id = ?", c.Param("id")).
		First(&service).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "Service not found")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		}
		return
	}

	// Update fields if provided. Duration changes do not touch existing
	// appointments, whose end times were snapshotted at booking.
	if input.Name != nil {
		service.Name = *input.Name
	}
	if input.Description != nil {
		service.Description = *input.Description
	}
	if input.PriceCents != nil {
		service.PriceCents = *input.PriceCents
	}
	if input.Duration != nil {
		service.Duration = *input.Duration
	}
	if input.Category != nil {
		service.Category = *input.Category
	}
	if input.Image != nil {
		service.Image = *input.Image
	}
	if input.IsActive != nil {
		service.IsActive = *input.IsActive
	}

	if err := config.DB.Save(&service).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to update service")
		return
	}

	c.JSON(http.StatusOK, service)
}

// DeleteService deactivates a service so existing appointments keep their
// reference. Admin only.
func DeleteService(c *gin.Context) {
	result := config.DB.Model(&models.Service{}).
		Where("id = ?", c.Param("id")).
		Update("is_active", false)

	if result.Error != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to delete service")
		return
	}

	if result.RowsAffected == 0 {
		utils.RespondWithError(c, http.StatusNotFound, "Service not found")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Service deactivated successfully"})
}
