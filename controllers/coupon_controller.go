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

// CouponRequest represents the coupon creation/update request
type CouponRequest struct {
	Code             string     `json:"code" binding:"required,min=3,max=50"`
	DiscountType     string     `json:"discount_type" binding:"required"`
	Value            float64    `json:"value"`
	TargetProductIDs []uint     `json:"target_product_ids"`
	Active           *bool      `json:"active"`
	StartDate        *time.Time `json:"start_date"`
	EndDate          *time.Time `json:"end_date"`
}

func (r *CouponRequest) toModel() models.Coupon {
	coupon := models.Coupon{
		Code:             strings.ToUpper(strings.TrimSpace(r.Code)),
		DiscountType:     r.DiscountType,
		Value:            r.Value,
		TargetProductIDs: r.TargetProductIDs,
		Active:           true,
		StartDate:        r.StartDate,
		EndDate:          r.EndDate,
	}
	if r.Active != nil {
		coupon.Active = *r.Active
	}
	return coupon
}

// ListCoupons lists coupons with window status labels
func ListCoupons(c *gin.Context) {
	utils.LogInfo("ListCoupons called")

	var coupons []models.Coupon
	if err := config.DB.Order("created_at DESC").Find(&coupons).Error; err != nil {
		utils.LogError("Failed to fetch coupons: %v", err)
		utils.InternalServerError(c, "Failed to fetch coupons", err.Error())
		return
	}

	now := time.Now()
	views := make([]gin.H, len(coupons))
	for i, coupon := range coupons {
		views[i] = gin.H{
			"coupon":        coupon,
			"window_status": string(pricing.StatusAt(coupon.StartDate, coupon.EndDate, now)),
		}
	}

	utils.LogInfo("Fetched %d coupons", len(coupons))
	utils.Success(c, "Coupons fetched successfully", gin.H{"coupons": views})
}

// CreateCoupon handles coupon creation
func CreateCoupon(c *gin.Context) {
	utils.LogInfo("CreateCoupon called")

	var req CouponRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.LogError("Invalid input: %v", err)
		utils.BadRequest(c, "Invalid input", err.Error())
		return
	}

	coupon := req.toModel()
	if errs := pricing.ValidateCoupon(coupon); len(errs) > 0 {
		utils.LogError("Coupon validation failed: %v", errs)
		utils.ValidationFailed(c, "Invalid coupon", errs)
		return
	}

	var existing models.Coupon
	if err := config.DB.Where("code = ?", coupon.Code).First(&existing).Error; err == nil {
		utils.LogError("Coupon code already exists: %s", coupon.Code)
		utils.Conflict(c, "A coupon with this code already exists", nil)
		return
	}

	if err := config.DB.Create(&coupon).Error; err != nil {
		utils.LogError("Failed to create coupon: %v", err)
		utils.InternalServerError(c, "Failed to create coupon", err.Error())
		return
	}

	utils.LogInfo("Coupon created successfully: %s (ID: %d)", coupon.Code, coupon.ID)
	utils.Created(c, "Coupon created successfully", gin.H{"coupon": coupon})
}

// UpdateCoupon handles coupon updates
func UpdateCoupon(c *gin.Context) {
	utils.LogInfo("UpdateCoupon called")

	var coupon models.Coupon
	if err := config.DB.First(&coupon, c.Param("id")).Error; err != nil {
		utils.LogError("Coupon not found: %v", err)
		utils.NotFound(c, "Coupon not found")
		return
	}

	var req CouponRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.LogError("Invalid input: %v", err)
		utils.BadRequest(c, "Invalid input", err.Error())
		return
	}

	updated := req.toModel()
	updated.ID = coupon.ID
	updated.CreatedAt = coupon.CreatedAt
	if req.Active == nil {
		updated.Active = coupon.Active
	}

	if errs := pricing.ValidateCoupon(updated); len(errs) > 0 {
		utils.LogError("Coupon validation failed for coupon %d: %v", coupon.ID, errs)
		utils.ValidationFailed(c, "Invalid coupon", errs)
		return
	}

	var existing models.Coupon
	if err := config.DB.Where("code = ? AND id != ?", updated.Code, coupon.ID).First(&existing).Error; err == nil {
		utils.LogError("Coupon code already exists: %s", updated.Code)
		utils.Conflict(c, "A coupon with this code already exists", nil)
		return
	}

	if err := config.DB.Save(&updated).Error; err != nil {
		utils.LogError("Failed to update coupon: %v", err)
		utils.InternalServerError(c, "Failed to update coupon", err.Error())
		return
	}

	utils.LogInfo("Coupon updated successfully: %s (ID: %d)", updated.Code, updated.ID)
	utils.Success(c, "Coupon updated successfully", gin.H{"coupon": updated})
}

// DeleteCoupon handles coupon deletion
func DeleteCoupon(c *gin.Context) {
	utils.LogInfo("DeleteCoupon called")

	var coupon models.Coupon
	if err := config.DB.First(&coupon, c.Param("id")).Error; err != nil {
		utils.LogError("Coupon not found: %v", err)
		utils.NotFound(c, "Coupon not found")
		return
	}

	if err := config.DB.Delete(&coupon).Error; err != nil {
		utils.LogError("Failed to delete coupon: %v", err)
		utils.InternalServerError(c, "Failed to delete coupon", err.Error())
		return
	}

	utils.LogInfo("Coupon deleted successfully: %s (ID: %d)", coupon.Code, coupon.ID)
	utils.Success(c, "Coupon deleted successfully", nil)
}

// ToggleCoupon flips the manual kill-switch on a coupon
func ToggleCoupon(c *gin.Context) {
	utils.LogInfo("ToggleCoupon called")

	var coupon models.Coupon
	if err := config.DB.First(&coupon, c.Param("id")).Error; err != nil {
		utils.LogError("Coupon not found: %v", err)
		utils.NotFound(c, "Coupon not found")
		return
	}

	coupon.Active = !coupon.Active
	if err := config.DB.Save(&coupon).Error; err != nil {
		utils.LogError("Failed to toggle coupon: %v", err)
		utils.InternalServerError(c, "Failed to toggle coupon", err.Error())
		return
	}

	utils.LogInfo("Coupon %d toggled, active=%v", coupon.ID, coupon.Active)
	utils.Success(c, "Coupon updated successfully", gin.H{"coupon": coupon})
}
