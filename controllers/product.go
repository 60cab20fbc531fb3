// controllers/product.go
package controllers

import (
	"errors"
	"net/http"
	"strings"

	"halo-lounge-backend/config"
	"halo-lounge-backend/models"
	"halo-lounge-backend/utils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// CreateProductInput defines the expected JSON structure for creating a product
type CreateProductInput struct {
	Name                string            `json:"name" binding:"required"`
	Description         string            `json:"description"`
	PriceCents          int64             `json:"priceCents" binding:"required,min=0"`
	CompareAtPriceCents int64             `json:"compareAtPriceCents" binding:"min=0"`
	Images              models.StringList `json:"images"`
	Category            string            `json:"category" binding:"required,oneof=SHAMPOO CONDITIONER TREATMENT STYLING TOOLS ACCESSORIES COLORING"`
	Brand               string            `json:"brand"`
	Stock               int               `json:"stock" binding:"min=0"`
	IsFeatured          bool              `json:"isFeatured"`
	Tags                models.StringList `json:"tags"`
}

// UpdateProductInput defines the expected JSON structure for updating a product
type UpdateProductInput struct {
	Name                *string            `json:"name"`
	Description         *string            `json:"description"`
	PriceCents          *int64             `json:"priceCents"`
	CompareAtPriceCents *int64             `json:"compareAtPriceCents"`
	Images              *models.StringList `json:"images"`
	Category            *string            `json:"category" binding:"omitempty,oneof=SHAMPOO CONDITIONER TREATMENT STYLING TOOLS ACCESSORIES COLORING"`
	Brand               *string            `json:"brand"`
	Stock               *int               `json:"stock" binding:"omitempty,min=0"`
	IsFeatured          *bool              `json:"isFeatured"`
	Tags                *models.StringList `json:"tags"`
}

// GetProducts lists store products with optional category and search
// filters. Public.
func GetProducts(c *gin.Context) {
	query := config.DB.Model(&models.Product{})

	if category := c.Query("category"); category != "" && category != "All" {
		query = query.Where("category = ?", strings.ToUpper(category))
	}

	if q := c.Query("q"); q != "" {
		like := "%" + strings.ToLower(q) + "%"
		query = query.Where("LOWER(name) LIKE ? OR LOWER(description) LIKE ?", like, like)
	}

	if c.Query("featured") == "true" {
		query = query.Where("is_featured = ?", true)
	}

	var products []models.Product
	if err := query.Order("name asc").Find(&products).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to retrieve products")
		return
	}

	c.JSON(http.StatusOK, gin.H{"products": products})
}

// GetProduct retrieves a specific product by ID. Public.
func GetProduct(c *gin.Context) {
	productUUID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid product ID format")
		return
	}

	var product models.Product
	if err := config.DB.Where("id = ?", productUUID).First(&product).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "Product not found")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		}
		return
	}

	c.JSON(http.StatusOK, product)
}

// CreateProduct adds a product to the store. Admin only.
func CreateProduct(c *gin.Context) {
	var input CreateProductInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	product := models.Product{
		Name:                input.Name,
		Description:         input.Description,
		PriceCents:          input.PriceCents,
		CompareAtPriceCents: input.CompareAtPriceCents,
		Images:              input.Images,
		Category:            input.Category,
		Brand:               input.Brand,
		Stock:               input.Stock,
		IsFeatured:          input.IsFeatured,
		Tags:                input.Tags,
	}

	if err := config.DB.Create(&product).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to create product")
		return
	}

	c.JSON(http.StatusCreated, product)
}

// UpdateProduct updates an existing product. Admin only.
func UpdateProduct(c *gin.Context) {
	productUUID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid product ID format")
		return
	}

	var input UpdateProductInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	var product models.Product
	if err := config.DB.Where("id = ?", productUUID).First(&product).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "Product not found")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		}
		return
	}

	if input.Name != nil {
		product.Name = *input.Name
	}
	if input.Description != nil {
		product.Description = *input.Description
	}
	if input.PriceCents != nil {
		product.PriceCents = *input.PriceCents
	}
	if input.CompareAtPriceCents != nil {
		product.CompareAtPriceCents = *input.CompareAtPriceCents
	}
	if input.Images != nil {
		product.Images = *input.Images
	}
	if input.Category != nil {
		product.Category = *input.Category
	}
	if input.Brand != nil {
		product.Brand = *input.Brand
	}
	if input.Stock != nil {
		product.Stock = *input.Stock
	}
	if input.IsFeatured != nil {
		product.IsFeatured = *input.IsFeatured
	}
	if input.Tags != nil {
		product.Tags = *input.Tags
	}

	if err := config.DB.Save(&product).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to update product")
		return
	}

	c.JSON(http.StatusOK, product)
}

// DeleteProduct soft deletes a product. Admin only.
func DeleteProduct(c *gin.Context) {
	productUUID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid product ID format")
		return
	}

	result := config.DB.Where("id = ?", productUUID).Delete(&models.Product{})

	if result.Error != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to delete product")
		return
	}

	if result.RowsAffected == 0 {
		utils.RespondWithError(c, http.StatusNotFound, "Product not found")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Product deleted successfully"})
}
