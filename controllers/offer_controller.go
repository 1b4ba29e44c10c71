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

// OfferRequest represents the standalone offer creation/update request
type OfferRequest struct {
	TitleEN          string     `json:"title_en" binding:"required,min=2,max=200"`
	TitleAR          string     `json:"title_ar"`
	DescriptionEN    string     `json:"description_en"`
	DescriptionAR    string     `json:"description_ar"`
	Type             string     `json:"type" binding:"required"`
	DiscountValue    float64    `json:"discount_value"`
	TargetProductIDs []uint     `json:"target_product_ids"`
	StartDate        *time.Time `json:"start_date"`
	EndDate          *time.Time `json:"end_date"`
	IsActive         *bool      `json:"is_active"`

	BogoBuyProductID uint   `json:"bogo_buy_product_id"`
	BogoBuyQuantity  int    `json:"bogo_buy_quantity"`
	BogoGetProductID uint   `json:"bogo_get_product_id"`
	BogoGetQuantity  int    `json:"bogo_get_quantity"`
	BogoGetType      string `json:"bogo_get_type"`

	CouponCode     string `json:"coupon_code"`
	DiscountNature string `json:"discount_nature"`
}

func (r *OfferRequest) toModel() models.Offer {
	offer := models.Offer{
		TitleEN:          utils.SanitizeString(r.TitleEN),
		TitleAR:          utils.SanitizeString(r.TitleAR),
		DescriptionEN:    utils.SanitizeString(r.DescriptionEN),
		DescriptionAR:    utils.SanitizeString(r.DescriptionAR),
		Type:             r.Type,
		DiscountValue:    r.DiscountValue,
		TargetProductIDs: r.TargetProductIDs,
		StartDate:        r.StartDate,
		EndDate:          r.EndDate,
		IsActive:         true,
		BogoBuyProductID: r.BogoBuyProductID,
		BogoBuyQuantity:  r.BogoBuyQuantity,
		BogoGetProductID: r.BogoGetProductID,
		BogoGetQuantity:  r.BogoGetQuantity,
		BogoGetType:      r.BogoGetType,
		CouponCode:       strings.ToUpper(strings.TrimSpace(r.CouponCode)),
		DiscountNature:   r.DiscountNature,
	}
	if r.IsActive != nil {
		offer.IsActive = *r.IsActive
	}
	return offer
}

// offerAdminView decorates an offer with its window status label
func offerAdminView(offer models.Offer, now time.Time) gin.H {
	return gin.H{
		"offer":         offer,
		"window_status": string(pricing.StatusAt(offer.StartDate, offer.EndDate, now)),
	}
}

// ListOffers lists standalone offers with window status labels
func ListOffers(c *gin.Context) {
	utils.LogInfo("ListOffers called")

	query := config.DB.Model(&models.Offer{})
	if t := c.Query("type"); t != "" {
		query = query.Where("type = ?", t)
	}

	var offers []models.Offer
	if err := query.Order("created_at DESC").Find(&offers).Error; err != nil {
		utils.LogError("Failed to fetch offers: %v", err)
		utils.InternalServerError(c, "Failed to fetch offers", err.Error())
		return
	}

	now := time.Now()
	views := make([]gin.H, len(offers))
	for i, offer := range offers {
		views[i] = offerAdminView(offer, now)
	}

	utils.LogInfo("Fetched %d offers", len(offers))
	utils.Success(c, "Offers fetched successfully", gin.H{"offers": views})
}

// CreateOffer handles standalone offer creation
func CreateOffer(c *gin.Context) {
	utils.LogInfo("CreateOffer called")

	var req OfferRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.LogError("Invalid input: %v", err)
		utils.BadRequest(c, "Invalid input", err.Error())
		return
	}

	offer := req.toModel()
	if errs := pricing.ValidateOffer(offer); len(errs) > 0 {
		utils.LogError("Offer validation failed: %v", errs)
		utils.ValidationFailed(c, "Invalid offer", errs)
		return
	}

	if offer.Type == models.OfferTypeCoupon {
		var existing models.Offer
		if err := config.DB.Where("type = ? AND coupon_code = ?", models.OfferTypeCoupon, offer.CouponCode).
			First(&existing).Error; err == nil {
			utils.LogError("Coupon code already in use: %s", offer.CouponCode)
			utils.Conflict(c, "Coupon code already in use", nil)
			return
		}
	}

	if err := config.DB.Create(&offer).Error; err != nil {
		utils.LogError("Failed to create offer: %v", err)
		utils.InternalServerError(c, "Failed to create offer", err.Error())
		return
	}

	utils.LogInfo("Offer created successfully: %s (ID: %d)", offer.TitleEN, offer.ID)
	utils.Created(c, "Offer created successfully", offerAdminView(offer, time.Now()))
}

// UpdateOffer handles standalone offer updates
func UpdateOffer(c *gin.Context) {
	utils.LogInfo("UpdateOffer called")

	var offer models.Offer
	if err := config.DB.First(&offer, c.Param("id")).Error; err != nil {
		utils.LogError("Offer not found: %v", err)
		utils.NotFound(c, "Offer not found")
		return
	}

	var req OfferRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.LogError("Invalid input: %v", err)
		utils.BadRequest(c, "Invalid input", err.Error())
		return
	}

	updated := req.toModel()
	updated.ID = offer.ID
	updated.CreatedAt = offer.CreatedAt
	if req.IsActive == nil {
		updated.IsActive = offer.IsActive
	}

	if errs := pricing.ValidateOffer(updated); len(errs) > 0 {
		utils.LogError("Offer validation failed for offer %d: %v", offer.ID, errs)
		utils.ValidationFailed(c, "Invalid offer", errs)
		return
	}

	if updated.Type == models.OfferTypeCoupon {
		var existing models.Offer
		if err := config.DB.Where("type = ? AND coupon_code = ? AND id != ?",
			models.OfferTypeCoupon, updated.CouponCode, offer.ID).First(&existing).Error; err == nil {
			utils.LogError("Coupon code already in use: %s", updated.CouponCode)
			utils.Conflict(c, "Coupon code already in use", nil)
			return
		}
	}

	if err := config.DB.Save(&updated).Error; err != nil {
		utils.LogError("Failed to update offer: %v", err)
		utils.InternalServerError(c, "Failed to update offer", err.Error())
		return
	}

	utils.LogInfo("Offer updated successfully: %s (ID: %d)", updated.TitleEN, updated.ID)
	utils.Success(c, "Offer updated successfully", offerAdminView(updated, time.Now()))
}

// DeleteOffer handles standalone offer deletion
func DeleteOffer(c *gin.Context) {
	utils.LogInfo("DeleteOffer called")

	var offer models.Offer
	if err := config.DB.First(&offer, c.Param("id")).Error; err != nil {
		utils.LogError("Offer not found: %v", err)
		utils.NotFound(c, "Offer not found")
		return
	}

	if err := config.DB.Delete(&offer).Error; err != nil {
		utils.LogError("Failed to delete offer: %v", err)
		utils.InternalServerError(c, "Failed to delete offer", err.Error())
		return
	}

	utils.LogInfo("Offer deleted successfully: %s (ID: %d)", offer.TitleEN, offer.ID)
	utils.Success(c, "Offer deleted successfully", nil)
}

// ToggleOffer flips the manual kill-switch on an offer
func ToggleOffer(c *gin.Context) {
	utils.LogInfo("ToggleOffer called")

	var offer models.Offer
	if err := config.DB.First(&offer, c.Param("id")).Error; err != nil {
		utils.LogError("Offer not found: %v", err)
		utils.NotFound(c, "Offer not found")
		return
	}

	offer.IsActive = !offer.IsActive
	if err := config.DB.Save(&offer).Error; err != nil {
		utils.LogError("Failed to toggle offer: %v", err)
		utils.InternalServerError(c, "Failed to toggle offer", err.Error())
		return
	}

	utils.LogInfo("Offer %d toggled, active=%v", offer.ID, offer.IsActive)
	utils.Success(c, "Offer updated successfully", offerAdminView(offer, time.Now()))
}
