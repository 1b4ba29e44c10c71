package controllers

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/haddadin-dev/MazajMart/config"
	"github.com/haddadin-dev/MazajMart/models"
	"github.com/haddadin-dev/MazajMart/pricing"
	"github.com/haddadin-dev/MazajMart/utils"
)

// SaveOptionOffer sets or clears the inline offer on a single variant
// option. The stored price is derived from the offer fields, never taken
// from the client.
func SaveOptionOffer(c *gin.Context) {
	utils.LogInfo("SaveOptionOffer called")

	var product models.Product
	if err := config.DB.First(&product, c.Param("id")).Error; err != nil {
		utils.LogError("Product not found: %v", err)
		utils.NotFound(c, "Product not found")
		return
	}

	var option models.VariantOption
	if err := config.DB.
		Joins("JOIN variant_groups vg ON vg.id = variant_options.variant_group_id").
		Where("variant_options.id = ? AND vg.product_id = ?", c.Param("option_id"), product.ID).
		First(&option).Error; err != nil {
		utils.LogError("Variant option not found: %v", err)
		utils.NotFound(c, "Variant option not found")
		return
	}

	var spec pricing.OfferSpec
	if err := c.ShouldBindJSON(&spec); err != nil {
		utils.LogError("Invalid input: %v", err)
		utils.BadRequest(c, "Invalid input", err.Error())
		return
	}

	if errs := pricing.ValidateOfferSpec(spec); len(errs) > 0 {
		utils.LogError("Offer validation failed for option %d: %v", option.ID, errs)
		utils.ValidationFailed(c, "Invalid offer fields", errs)
		return
	}

	now := time.Now()
	if spec.OfferType == "" || spec.OfferType == models.VariantOfferNone {
		if option.OriginalPrice > 0 {
			option.Price = pricing.Round(option.OriginalPrice)
		}
		option.OfferType = models.VariantOfferNone
		option.OfferValue = 0
		option.OfferStartDate = nil
		option.OfferEndDate = nil
	} else {
		if option.OriginalPrice <= 0 {
			option.OriginalPrice = option.Price
		}
		option.OfferType = spec.OfferType
		option.OfferValue = spec.OfferValue
		option.OfferStartDate = spec.StartDate
		option.OfferEndDate = spec.EndDate
		option.Price = pricing.EffectivePrice(option, now)
	}

	if err := config.DB.Save(&option).Error; err != nil {
		utils.LogError("Failed to save variant option: %v", err)
		utils.InternalServerError(c, "Failed to save offer", err.Error())
		return
	}

	refreshProductOfferFlag(&product, now)

	utils.LogInfo("Offer saved on option %d (product %d)", option.ID, product.ID)
	utils.Success(c, "Offer saved successfully", gin.H{"option": option})
}

// ApplyProductOffer applies one offer spec to every option of every variant
// group of a product in a single transaction
func ApplyProductOffer(c *gin.Context) {
	utils.LogInfo("ApplyProductOffer called")

	productPtr, err := loadProductWithVariants(c.Param("id"))
	if err != nil {
		utils.LogError("Product not found: %v", err)
		respondError(c, err)
		return
	}
	product := *productPtr

	var spec pricing.OfferSpec
	if err := c.ShouldBindJSON(&spec); err != nil {
		utils.LogError("Invalid input: %v", err)
		utils.BadRequest(c, "Invalid input", err.Error())
		return
	}

	if errs := pricing.ValidateOfferSpec(spec); len(errs) > 0 {
		utils.LogError("Offer validation failed for product %d: %v", product.ID, errs)
		utils.ValidationFailed(c, "Invalid offer fields", errs)
		return
	}

	now := time.Now()
	updated := pricing.ApplyToAllOptions(product, spec, now)
	updated.IsOffer = productHasLiveOffer(updated.Variants, now)

	tx := config.DB.Begin()
	if tx.Error != nil {
		utils.LogError("Failed to start transaction: %v", tx.Error)
		utils.InternalServerError(c, "Failed to apply offer", nil)
		return
	}

	for i := range updated.Variants {
		for j := range updated.Variants[i].Options {
			opt := updated.Variants[i].Options[j]
			if err := tx.Model(&models.VariantOption{}).Where("id = ?", opt.ID).
				Updates(map[string]interface{}{
					"price":            opt.Price,
					"original_price":   opt.OriginalPrice,
					"offer_type":       opt.OfferType,
					"offer_value":      opt.OfferValue,
					"offer_start_date": opt.OfferStartDate,
					"offer_end_date":   opt.OfferEndDate,
				}).Error; err != nil {
				tx.Rollback()
				utils.LogError("Failed to update option %d: %v", opt.ID, err)
				utils.InternalServerError(c, "Failed to apply offer", err.Error())
				return
			}
		}
	}

	if err := tx.Model(&models.Product{}).Where("id = ?", product.ID).
		Update("is_offer", updated.IsOffer).Error; err != nil {
		tx.Rollback()
		utils.LogError("Failed to update product offer flag: %v", err)
		utils.InternalServerError(c, "Failed to apply offer", err.Error())
		return
	}

	if err := tx.Commit().Error; err != nil {
		utils.LogError("Failed to commit transaction: %v", err)
		utils.InternalServerError(c, "Failed to apply offer", err.Error())
		return
	}

	utils.LogInfo("Offer applied to all options of product %d", product.ID)
	utils.Success(c, "Offer applied to all variants", gin.H{"product": updated})
}

// ClearProductOffer removes inline offers from every option of a product
func ClearProductOffer(c *gin.Context) {
	utils.LogInfo("ClearProductOffer called")

	productPtr, err := loadProductWithVariants(c.Param("id"))
	if err != nil {
		utils.LogError("Product not found: %v", err)
		respondError(c, err)
		return
	}
	product := *productPtr

	now := time.Now()
	updated := pricing.ApplyToAllOptions(product, pricing.OfferSpec{OfferType: models.VariantOfferNone}, now)

	tx := config.DB.Begin()
	if tx.Error != nil {
		utils.LogError("Failed to start transaction: %v", tx.Error)
		utils.InternalServerError(c, "Failed to clear offers", nil)
		return
	}

	for i := range updated.Variants {
		for j := range updated.Variants[i].Options {
			opt := updated.Variants[i].Options[j]
			if err := tx.Model(&models.VariantOption{}).Where("id = ?", opt.ID).
				Updates(map[string]interface{}{
					"price":            opt.Price,
					"original_price":   opt.OriginalPrice,
					"offer_type":       opt.OfferType,
					"offer_value":      opt.OfferValue,
					"offer_start_date": nil,
					"offer_end_date":   nil,
				}).Error; err != nil {
				tx.Rollback()
				utils.LogError("Failed to clear option %d: %v", opt.ID, err)
				utils.InternalServerError(c, "Failed to clear offers", err.Error())
				return
			}
		}
	}

	if err := tx.Model(&models.Product{}).Where("id = ?", product.ID).
		Update("is_offer", false).Error; err != nil {
		tx.Rollback()
		utils.LogError("Failed to update product offer flag: %v", err)
		utils.InternalServerError(c, "Failed to clear offers", err.Error())
		return
	}

	if err := tx.Commit().Error; err != nil {
		utils.LogError("Failed to commit transaction: %v", err)
		utils.InternalServerError(c, "Failed to clear offers", err.Error())
		return
	}

	utils.LogInfo("Offers cleared on product %d", product.ID)
	utils.Success(c, "Offers cleared", gin.H{"product": updated})
}

// refreshProductOfferFlag recomputes the product IsOffer flag from its
// options after a single-option edit
func refreshProductOfferFlag(product *models.Product, now time.Time) {
	var full models.Product
	if err := config.DB.Preload("Variants.Options").First(&full, product.ID).Error; err != nil {
		utils.LogError("Failed to reload product %d: %v", product.ID, err)
		return
	}
	isOffer := productHasLiveOffer(full.Variants, now)
	if err := config.DB.Model(&models.Product{}).Where("id = ?", full.ID).
		Update("is_offer", isOffer).Error; err != nil {
		utils.LogError("Failed to update product offer flag: %v", err)
	}
}
