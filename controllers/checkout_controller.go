package controllers

import (
	"fmt"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/haddadin-dev/MazajMart/config"
	"github.com/haddadin-dev/MazajMart/models"
	"github.com/haddadin-dev/MazajMart/pricing"
	"github.com/haddadin-dev/MazajMart/utils"
	"gorm.io/gorm"
)

// GetCheckoutSummary returns the priced cart exactly as PlaceOrder would
// charge it
func GetCheckoutSummary(c *gin.Context) {
	utils.LogInfo("GetCheckoutSummary called")

	sessionID := utils.CartSessionID(c)
	summary, err := utils.GetCartSummary(sessionID, utils.AppliedCouponCode(c), time.Now())
	if err != nil {
		utils.LogError("Failed to build checkout summary: %v", err)
		utils.InternalServerError(c, "Failed to build checkout summary", err.Error())
		return
	}
	if len(summary.Details) == 0 {
		utils.BadRequest(c, "Cart is empty", nil)
		return
	}

	utils.Success(c, "Checkout summary", gin.H{"summary": summary})
}

// PlaceOrderRequest represents the checkout request
type PlaceOrderRequest struct {
	FirstName     string  `json:"first_name" binding:"required"`
	LastName      string  `json:"last_name"`
	Phone         string  `json:"phone" binding:"required"`
	ServiceMethod string  `json:"service_method" binding:"required"`
	TableNumber   string  `json:"table_number"`
	Address       string  `json:"address"`
	City          string  `json:"city"`
	Country       string  `json:"country"`
	DeliveryLat   float64 `json:"delivery_lat"`
	DeliveryLng   float64 `json:"delivery_lng"`
	PaymentMethod string  `json:"payment_method" binding:"required"`
	TransactionID string  `json:"transaction_id"`
	Language      string  `json:"language"`
}

// PlaceOrder re-prices the whole cart under one instant, decrements stock
// and snapshots every line with its applied offer into the order
func PlaceOrder(c *gin.Context) {
	utils.LogInfo("PlaceOrder called")

	sessionID := utils.CartSessionID(c)

	var req PlaceOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.LogError("Invalid input: %v", err)
		utils.BadRequest(c, "Invalid input", err.Error())
		return
	}

	switch req.ServiceMethod {
	case models.ServiceDelivery:
		if req.Address == "" {
			utils.BadRequest(c, "Address is required for delivery orders", nil)
			return
		}
	case models.ServicePickup:
	case models.ServiceInRestaurant:
		if req.TableNumber == "" {
			utils.BadRequest(c, "Table number is required for in-restaurant orders", nil)
			return
		}
	default:
		utils.BadRequest(c, "Invalid service method", nil)
		return
	}

	switch req.PaymentMethod {
	case models.PaymentCash:
	case models.PaymentCliq:
		if req.TransactionID == "" {
			utils.BadRequest(c, "Transaction ID is required for CliQ payments", nil)
			return
		}
	default:
		utils.BadRequest(c, "Invalid payment method", nil)
		return
	}

	if !utils.ValidatePhone(req.Phone) {
		utils.BadRequest(c, "Invalid phone number", nil)
		return
	}
	if req.Language != "ar" {
		req.Language = "en"
	}

	// One instant for the whole checkout pass
	now := time.Now()

	summary, err := utils.GetCartSummary(sessionID, utils.AppliedCouponCode(c), now)
	if err != nil {
		utils.LogError("Failed to price cart at checkout: %v", err)
		utils.InternalServerError(c, "Failed to place order", err.Error())
		return
	}
	if len(summary.Details) == 0 {
		utils.BadRequest(c, "Cart is empty", nil)
		return
	}
	if summary.CouponError != "" {
		utils.LogError("Coupon invalid at checkout for session %s: %s", sessionID, summary.CouponError)
		utils.BadRequest(c, "Applied coupon is no longer valid", gin.H{"coupon_error": summary.CouponError})
		return
	}

	order := models.Order{
		OrderRef:       generateOrderRef(now),
		FirstName:      utils.SanitizeString(req.FirstName),
		LastName:       utils.SanitizeString(req.LastName),
		Phone:          req.Phone,
		Address:        utils.SanitizeString(req.Address),
		City:           utils.SanitizeString(req.City),
		Country:        utils.SanitizeString(req.Country),
		ServiceMethod:  req.ServiceMethod,
		TableNumber:    req.TableNumber,
		DeliveryLat:    req.DeliveryLat,
		DeliveryLng:    req.DeliveryLng,
		PaymentMethod:  req.PaymentMethod,
		TransactionID:  req.TransactionID,
		Language:       req.Language,
		Subtotal:       summary.Subtotal,
		OfferDiscount:  summary.OfferDiscount,
		BogoDiscount:   summary.BogoDiscount,
		CouponDiscount: summary.CouponDiscount,
		CouponCode:     summary.CouponCode,
		FinalTotal:     summary.FinalTotal,
		Status:         models.OrderStatusPlaced,
	}
	if u, exists := c.Get("user"); exists {
		if user, ok := u.(models.User); ok {
			order.UserID = &user.ID
		}
	}

	tx := config.DB.Begin()
	if tx.Error != nil {
		utils.LogError("Failed to start transaction: %v", tx.Error)
		utils.InternalServerError(c, "Failed to place order", nil)
		return
	}

	for _, detail := range summary.Details {
		item := detail.Item

		// Guarded decrement so two concurrent checkouts cannot oversell
		res := tx.Model(&models.VariantOption{}).
			Where("id = ? AND quantity >= ?", item.VariantOptionID, item.Quantity).
			Update("quantity", gorm.Expr("quantity - ?", item.Quantity))
		if res.Error != nil {
			tx.Rollback()
			utils.LogError("Failed to decrement stock for option %d: %v", item.VariantOptionID, res.Error)
			utils.InternalServerError(c, "Failed to place order", res.Error.Error())
			return
		}
		if res.RowsAffected == 0 {
			tx.Rollback()
			utils.LogError("Insufficient stock at checkout for option %d", item.VariantOptionID)
			utils.Conflict(c, "One or more items are no longer in stock", gin.H{
				"variant_option_id": item.VariantOptionID,
			})
			return
		}

		var group models.VariantGroup
		if err := tx.First(&group, item.VariantOption.VariantGroupID).Error; err != nil {
			utils.LogDebug("Variant group %d not found for snapshot: %v", item.VariantOption.VariantGroupID, err)
		}

		lineDiscount := pricing.Round(detail.Evaluation.Savings * float64(item.Quantity))
		orderItem := models.OrderItem{
			ProductID:     item.ProductID,
			ProductName:   item.Product.NameEN,
			VariantName:   group.NameEN,
			VariantValue:  item.VariantOption.ValueEN,
			UnitLabel:     item.VariantOption.UnitLabelEN,
			ImageURL:      item.VariantOption.ImageURL,
			Quantity:      item.Quantity,
			UnitPrice:     detail.Evaluation.UnitPrice,
			OriginalPrice: pricing.OriginalPriceOf(item.VariantOption),
			AddOnTotal:    pricing.Round(detail.AddOnUnit * float64(item.Quantity)),
			Discount:      lineDiscount,
			Total:         detail.LineTotal,
		}
		if applied := detail.Evaluation.Applied; applied != nil {
			offerID := applied.OfferID
			orderItem.AppliedOfferID = &offerID
			orderItem.AppliedOfferTitle = applied.Title
			orderItem.AppliedOfferType = applied.Type
		}
		order.Items = append(order.Items, orderItem)
	}

	if err := tx.Create(&order).Error; err != nil {
		tx.Rollback()
		utils.LogError("Failed to create order: %v", err)
		utils.InternalServerError(c, "Failed to place order", err.Error())
		return
	}

	if err := tx.Where("session_id = ?", sessionID).Delete(&models.CartItem{}).Error; err != nil {
		tx.Rollback()
		utils.LogError("Failed to clear cart after order: %v", err)
		utils.InternalServerError(c, "Failed to place order", err.Error())
		return
	}

	if err := tx.Commit().Error; err != nil {
		utils.LogError("Failed to commit order transaction: %v", err)
		utils.InternalServerError(c, "Failed to place order", err.Error())
		return
	}

	if err := utils.SetAppliedCouponCode(c, ""); err != nil {
		utils.LogError("Failed to clear session coupon after order: %v", err)
	}

	utils.LogInfo("Order %s placed, total %.2f", order.OrderRef, order.FinalTotal)
	utils.Created(c, "Order placed successfully", gin.H{"order": order})
}

// generateOrderRef builds a short human-readable order reference
func generateOrderRef(now time.Time) string {
	suffix := strings.ToUpper(strings.ReplaceAll(uuid.New().String(), "-", ""))[:8]
	return fmt.Sprintf("MM-%s-%s", now.Format("20060102"), suffix)
}
