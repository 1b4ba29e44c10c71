package controllers

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/haddadin-dev/MazajMart/config"
	"github.com/haddadin-dev/MazajMart/models"
	"github.com/haddadin-dev/MazajMart/utils"
)

// AddCartItemRequest represents the add-to-cart request
type AddCartItemRequest struct {
	ProductID       uint   `json:"product_id" binding:"required"`
	VariantOptionID uint   `json:"variant_option_id" binding:"required"`
	Quantity        int    `json:"quantity" binding:"required,min=1"`
	AddOnIDs        []uint `json:"add_on_ids"`
}

// AddCartItem adds a variant option to the session cart
func AddCartItem(c *gin.Context) {
	utils.LogInfo("AddCartItem called")

	sessionID := utils.CartSessionID(c)

	var req AddCartItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.LogError("Invalid input: %v", err)
		utils.BadRequest(c, "Invalid input", err.Error())
		return
	}

	var product models.Product
	if err := config.DB.First(&product, req.ProductID).Error; err != nil || !product.IsActive {
		utils.LogError("Product not found or inactive: %d", req.ProductID)
		utils.NotFound(c, "Product not found")
		return
	}

	var option models.VariantOption
	if err := config.DB.
		Joins("JOIN variant_groups vg ON vg.id = variant_options.variant_group_id").
		Where("variant_options.id = ? AND vg.product_id = ?", req.VariantOptionID, req.ProductID).
		First(&option).Error; err != nil {
		utils.LogError("Variant option %d not found on product %d", req.VariantOptionID, req.ProductID)
		utils.NotFound(c, "Variant option not found")
		return
	}

	if option.Quantity < req.Quantity {
		utils.LogError("Insufficient stock for option %d: have %d, want %d", option.ID, option.Quantity, req.Quantity)
		utils.BadRequest(c, "Insufficient stock", gin.H{"available": option.Quantity})
		return
	}

	var addOns []models.AddOn
	if len(req.AddOnIDs) > 0 {
		if err := config.DB.Find(&addOns, req.AddOnIDs).Error; err != nil || len(addOns) != len(req.AddOnIDs) {
			utils.LogError("Failed to resolve add-ons: %v", err)
			utils.BadRequest(c, "One or more add-ons not found", nil)
			return
		}
	}

	// Same option already in cart: bump the quantity instead of a new row
	var existing models.CartItem
	err := config.DB.Preload("AddOns").
		Where("session_id = ? AND variant_option_id = ?", sessionID, req.VariantOptionID).
		First(&existing).Error
	if err == nil && sameAddOns(existing.AddOns, req.AddOnIDs) {
		newQty := existing.Quantity + req.Quantity
		if option.Quantity < newQty {
			utils.BadRequest(c, "Insufficient stock", gin.H{"available": option.Quantity})
			return
		}
		existing.Quantity = newQty
		if err := config.DB.Save(&existing).Error; err != nil {
			utils.LogError("Failed to update cart item: %v", err)
			utils.InternalServerError(c, "Failed to update cart", err.Error())
			return
		}
		utils.LogInfo("Cart item %d quantity bumped to %d", existing.ID, existing.Quantity)
		respondWithCart(c, sessionID)
		return
	}

	item := models.CartItem{
		SessionID:       sessionID,
		ProductID:       req.ProductID,
		VariantOptionID: req.VariantOptionID,
		Quantity:        req.Quantity,
		AddOns:          addOns,
	}
	if u, exists := c.Get("user"); exists {
		if user, ok := u.(models.User); ok {
			item.UserID = &user.ID
		}
	}

	if err := config.DB.Create(&item).Error; err != nil {
		utils.LogError("Failed to add cart item: %v", err)
		utils.InternalServerError(c, "Failed to add to cart", err.Error())
		return
	}

	utils.LogInfo("Cart item %d added to session %s", item.ID, sessionID)
	respondWithCart(c, sessionID)
}

func sameAddOns(existing []models.AddOn, requested []uint) bool {
	if len(existing) != len(requested) {
		return false
	}
	have := make(map[uint]bool, len(existing))
	for _, a := range existing {
		have[a.ID] = true
	}
	for _, id := range requested {
		if !have[id] {
			return false
		}
	}
	return true
}

// GetCart returns the fully priced session cart
func GetCart(c *gin.Context) {
	utils.LogInfo("GetCart called")
	respondWithCart(c, utils.CartSessionID(c))
}

// UpdateCartItemRequest represents the cart quantity update request
type UpdateCartItemRequest struct {
	Quantity int `json:"quantity" binding:"required,min=1"`
}

// UpdateCartItem changes the quantity of a cart row
func UpdateCartItem(c *gin.Context) {
	utils.LogInfo("UpdateCartItem called")

	sessionID := utils.CartSessionID(c)

	var item models.CartItem
	if err := config.DB.Where("session_id = ?", sessionID).First(&item, c.Param("id")).Error; err != nil {
		utils.LogError("Cart item not found: %v", err)
		utils.NotFound(c, "Cart item not found")
		return
	}

	var req UpdateCartItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.LogError("Invalid input: %v", err)
		utils.BadRequest(c, "Invalid input", err.Error())
		return
	}

	var option models.VariantOption
	if err := config.DB.First(&option, item.VariantOptionID).Error; err != nil {
		utils.LogError("Variant option not found: %v", err)
		utils.NotFound(c, "Variant option no longer available")
		return
	}
	if option.Quantity < req.Quantity {
		utils.BadRequest(c, "Insufficient stock", gin.H{"available": option.Quantity})
		return
	}

	item.Quantity = req.Quantity
	if err := config.DB.Save(&item).Error; err != nil {
		utils.LogError("Failed to update cart item: %v", err)
		utils.InternalServerError(c, "Failed to update cart", err.Error())
		return
	}

	utils.LogInfo("Cart item %d updated to quantity %d", item.ID, item.Quantity)
	respondWithCart(c, sessionID)
}

// RemoveCartItem deletes one row from the session cart
func RemoveCartItem(c *gin.Context) {
	utils.LogInfo("RemoveCartItem called")

	sessionID := utils.CartSessionID(c)

	var item models.CartItem
	if err := config.DB.Where("session_id = ?", sessionID).First(&item, c.Param("id")).Error; err != nil {
		utils.LogError("Cart item not found: %v", err)
		utils.NotFound(c, "Cart item not found")
		return
	}

	if err := config.DB.Select("AddOns").Delete(&item).Error; err != nil {
		utils.LogError("Failed to remove cart item: %v", err)
		utils.InternalServerError(c, "Failed to remove from cart", err.Error())
		return
	}

	utils.LogInfo("Cart item %d removed from session %s", item.ID, sessionID)
	respondWithCart(c, sessionID)
}

// ClearCart empties the session cart and drops the applied coupon
func ClearCart(c *gin.Context) {
	utils.LogInfo("ClearCart called")

	sessionID := utils.CartSessionID(c)

	if err := config.DB.Where("session_id = ?", sessionID).Delete(&models.CartItem{}).Error; err != nil {
		utils.LogError("Failed to clear cart: %v", err)
		utils.InternalServerError(c, "Failed to clear cart", err.Error())
		return
	}
	if err := utils.SetAppliedCouponCode(c, ""); err != nil {
		utils.LogError("Failed to clear session coupon: %v", err)
	}

	utils.LogInfo("Cart cleared for session %s", sessionID)
	utils.Success(c, "Cart cleared", nil)
}

// respondWithCart prices the cart with the session coupon and returns it
func respondWithCart(c *gin.Context, sessionID string) {
	summary, err := utils.GetCartSummary(sessionID, utils.AppliedCouponCode(c), time.Now())
	if err != nil {
		utils.LogError("Failed to build cart summary: %v", err)
		utils.InternalServerError(c, "Failed to fetch cart", err.Error())
		return
	}
	utils.Success(c, "Cart fetched successfully", gin.H{"cart": summary})
}
