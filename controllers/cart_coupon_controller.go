package controllers

import (
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/haddadin-dev/MazajMart/config"
	"github.com/haddadin-dev/MazajMart/models"
	"github.com/haddadin-dev/MazajMart/pricing"
	"github.com/haddadin-dev/MazajMart/utils"
)

// ApplyCouponRequest represents the apply-coupon request
type ApplyCouponRequest struct {
	Code string `json:"code" binding:"required"`
}

// ApplyCartCoupon validates a coupon code against the session cart and, if
// it yields a discount, stores it in the session
func ApplyCartCoupon(c *gin.Context) {
	utils.LogInfo("ApplyCartCoupon called")

	sessionID := utils.CartSessionID(c)

	var req ApplyCouponRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.LogError("Invalid input: %v", err)
		utils.BadRequest(c, "Invalid input", err.Error())
		return
	}
	code := strings.ToUpper(strings.TrimSpace(req.Code))

	var coupon models.Coupon
	if err := config.DB.Where("code = ?", code).First(&coupon).Error; err != nil {
		utils.LogError("Coupon not found: %s", code)
		utils.NotFound(c, "Coupon not found")
		return
	}

	var items []models.CartItem
	if err := config.DB.Preload("VariantOption").
		Where("session_id = ?", sessionID).Order("id").Find(&items).Error; err != nil {
		utils.LogError("Failed to fetch cart items: %v", err)
		utils.InternalServerError(c, "Failed to apply coupon", err.Error())
		return
	}
	if len(items) == 0 {
		utils.BadRequest(c, "Cart is empty", nil)
		return
	}

	now := time.Now()
	lines := make([]pricing.CartLine, len(items))
	for i, item := range items {
		lines[i] = pricing.CartLine{
			ProductID: item.ProductID,
			Option:    item.VariantOption,
			Quantity:  item.Quantity,
		}
	}

	result, err := pricing.ApplyCoupon(lines, coupon, now)
	if err != nil {
		utils.LogError("Coupon %s rejected: %v", code, err)
		utils.BadRequest(c, couponErrorMessage(err), nil)
		return
	}
	if len(result.EligibleLines) == 0 {
		utils.LogError("Coupon %s applies to nothing in the cart", code)
		utils.BadRequest(c, "Coupon does not apply to any item in your cart", nil)
		return
	}

	if err := utils.SetAppliedCouponCode(c, coupon.Code); err != nil {
		utils.LogError("Failed to store session coupon: %v", err)
		utils.InternalServerError(c, "Failed to apply coupon", err.Error())
		return
	}

	utils.LogInfo("Coupon %s applied to session %s", coupon.Code, sessionID)
	respondWithCart(c, sessionID)
}

// RemoveCartCoupon drops the applied coupon from the session
func RemoveCartCoupon(c *gin.Context) {
	utils.LogInfo("RemoveCartCoupon called")

	sessionID := utils.CartSessionID(c)
	if err := utils.SetAppliedCouponCode(c, ""); err != nil {
		utils.LogError("Failed to clear session coupon: %v", err)
		utils.InternalServerError(c, "Failed to remove coupon", err.Error())
		return
	}

	utils.LogInfo("Coupon removed from session %s", sessionID)
	respondWithCart(c, sessionID)
}

func couponErrorMessage(err error) string {
	switch err {
	case pricing.ErrCouponInactive:
		return "This coupon is no longer active"
	case pricing.ErrCouponNotStarted:
		return "This coupon is not active yet"
	case pricing.ErrCouponExpired:
		return "This coupon has expired"
	default:
		return "Coupon could not be applied"
	}
}
