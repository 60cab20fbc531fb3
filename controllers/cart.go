// controllers/cart.go
package controllers

import (
	"errors"
	"log"
	"net/http"

	"halo-lounge-backend/cart"
	"halo-lounge-backend/config"
	"halo-lounge-backend/models"
	"halo-lounge-backend/utils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Carts hands out one cart per authenticated session. Wired in main.
var Carts *cart.Manager

// AddCartItemInput references the product to add; one add is one unit
type AddCartItemInput struct {
	ProductID uuid.UUID `json:"productId" binding:"required"`
}

// UpdateCartItemInput sets a line's quantity exactly
type UpdateCartItemInput struct {
	Quantity int `json:"quantity"`
}

func sessionCart(c *gin.Context) (*cart.Cart, string, bool) {
	userID, exists := c.Get("userId")
	if !exists {
		utils.RespondWithError(c, http.StatusUnauthorized, "User ID not found in context")
		return nil, "", false
	}
	key := userID.(string)
	sc, err := Carts.Get(key)
	if err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to load cart")
		return nil, "", false
	}
	return sc, key, true
}

func flushCart(key string) {
	if err := Carts.Flush(key); err != nil {
		log.Printf("Failed to persist cart for session %s: %v", key, err)
	}
}

func cartResponse(sc *cart.Cart) gin.H {
	return gin.H{
		"items":         sc.Items(),
		"totalItems":    sc.TotalItems(),
		"subtotalCents": sc.SubtotalCents(),
		"taxCents":      sc.TaxCents(),
		"totalCents":    sc.TotalCents(),
	}
}

// GetCart returns the session's cart with its totals
func GetCart(c *gin.Context) {
	sc, _, ok := sessionCart(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, cartResponse(sc))
}

// AddCartItem adds one unit of a product; a repeat add bumps the existing
// line's quantity
func AddCartItem(c *gin.Context) {
	sc, key, ok := sessionCart(c)
	if !ok {
		return
	}

	var input AddCartItemInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	var product models.Product
	if err := config.DB.Where("id = ?", input.ProductID).First(&product).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "Product not found")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		}
		return
	}

	image := ""
	if len(product.Images) > 0 {
		image = product.Images[0]
	}

	item := sc.AddItem(cart.Entry{
		ProductID:  product.ID,
		Name:       product.Name,
		PriceCents: product.PriceCents,
		Image:      image,
	})
	flushCart(key)

	c.JSON(http.StatusOK, gin.H{
		"item": item,
		"cart": cartResponse(sc),
	})
}

// UpdateCartItem sets a line's quantity; zero or less removes it
func UpdateCartItem(c *gin.Context) {
	sc, key, ok := sessionCart(c)
	if !ok {
		return
	}

	var input UpdateCartItemInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	sc.UpdateQuantity(c.Param("id"), input.Quantity)
	flushCart(key)

	c.JSON(http.StatusOK, cartResponse(sc))
}

// RemoveCartItem deletes a line by its opaque ID
func RemoveCartItem(c *gin.Context) {
	sc, key, ok := sessionCart(c)
	if !ok {
		return
	}

	sc.RemoveItem(c.Param("id"))
	flushCart(key)

	c.JSON(http.StatusOK, cartResponse(sc))
}

// ClearCart empties the session's cart
func ClearCart(c *gin.Context) {
	sc, key, ok := sessionCart(c)
	if !ok {
		return
	}

	sc.Clear()
	flushCart(key)

	c.JSON(http.StatusOK, gin.H{"message": "Cart cleared"})
}
