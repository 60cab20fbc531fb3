// controllers/checkout.go
package controllers

import (
	"net/http"
	"time"

	"halo-lounge-backend/config"
	"halo-lounge-backend/models"
	"halo-lounge-backend/utils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// CheckoutInput carries the contact and shipping details for an order.
// Card fields are accepted but never stored; payment is simulated.
type CheckoutInput struct {
	Name    string `json:"name" binding:"required"`
	Email   string `json:"email" binding:"required,email"`
	Phone   string `json:"phone" binding:"required"`
	Address string `json:"address" binding:"required"`
	City    string `json:"city" binding:"required"`
	ZipCode string `json:"zipCode" binding:"required"`

	CardNumber string `json:"cardNumber"`
	CardExpiry string `json:"cardExpiry"`
	CardCvc    string `json:"cardCvc"`
}

// Checkout turns the session's cart into a paid order. Item names and
// prices are snapshotted, stock is decremented, and the cart cleared, all
// in one transaction.
func Checkout(c *gin.Context) {
	sc, key, ok := sessionCart(c)
	if !ok {
		return
	}

	userID, _ := c.Get("userId")
	userUUID, err := uuid.Parse(userID.(string))
	if err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Invalid user ID format")
		return
	}

	var input CheckoutInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	items := sc.Items()
	if len(items) == 0 {
		utils.RespondWithError(c, http.StatusBadRequest, "Cart is empty")
		return
	}

	if !utils.ValidatePhone(input.Phone) {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid phone number")
		return
	}

	order := models.Order{
		UserID:          userUUID,
		OrderNumber:     "ORD-" + time.Now().Format("20060102") + "-" + utils.GenerateRandomString(6),
		OrderDate:       time.Now(),
		SubtotalCents:   sc.SubtotalCents(),
		TaxCents:        sc.TaxCents(),
		TotalCents:      sc.TotalCents(),
		Status:          models.OrderPaid,
		PaymentRef:      simulatePayment(),
		ShippingName:    input.Name,
		ShippingAddress: input.Address,
		ShippingCity:    input.City,
		ShippingZip:     input.ZipCode,
	}

	for _, item := range items {
		order.Items = append(order.Items, models.OrderItem{
			ID:             uuid.New(),
			ProductID:      item.ProductID,
			ProductName:    item.Name,
			Quantity:       item.Quantity,
			UnitPriceCents: item.PriceCents,
			TotalCents:     item.PriceCents * int64(item.Quantity),
		})
	}

	// Start transaction
	tx := config.DB.Begin()
	defer func() {
		if r := recover(); r != nil {
			tx.Rollback()
		}
	}()

	if err := tx.Create(&order).Error; err != nil {
		tx.Rollback()
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to create order")
		return
	}

	// Decrement stock for each purchased product
	for _, item := range items {
		result := tx.Model(&models.Product{}).
			Where("id = ? AND stock >= ?", item.ProductID, item.Quantity).
			Update("stock", gorm.Expr("stock - ?", item.Quantity))
		if result.Error != nil {
			tx.Rollback()
			utils.RespondWithError(c, http.StatusInternalServerError, "Failed to update stock")
			return
		}
		if result.RowsAffected == 0 {
			tx.Rollback()
			utils.RespondWithError(c, http.StatusConflict, "Insufficient stock for "+item.Name)
			return
		}
	}

	tx.Commit()

	sc.Clear()
	flushCart(key)

	c.JSON(http.StatusCreated, gin.H{"order": order})
}

// GetOrders lists the calling user's orders, newest first
func GetOrders(c *gin.Context) {
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

	var orders []models.Order
	if err := config.DB.Preload("Items").
		Where("user_id = ?", userUUID).
		Order("order_date desc").
		Find(&orders).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to retrieve orders")
		return
	}

	c.JSON(http.StatusOK, gin.H{"orders": orders})
}

// simulatePayment stands in for a real payment gateway and always
// approves with a synthetic reference
func simulatePayment() string {
	return "PAY-" + utils.GenerateRandomString(12)
}
