package controllers

import (
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/haddadin-dev/MazajMart/config"
	"github.com/haddadin-dev/MazajMart/models"
	"github.com/haddadin-dev/MazajMart/pricing"
	"github.com/haddadin-dev/MazajMart/utils"
	"gorm.io/gorm"
)

// VariantOptionRequest represents one priceable option in a product payload.
// Price is never accepted from the client; it is recomputed from the offer
// fields before persisting.
type VariantOptionRequest struct {
	ValueEN        string     `json:"value_en" binding:"required"`
	ValueAR        string     `json:"value_ar"`
	UnitLabelEN    string     `json:"unit_label_en"`
	UnitLabelAR    string     `json:"unit_label_ar"`
	ImageURL       string     `json:"image_url"`
	OriginalPrice  float64    `json:"original_price" binding:"required,gt=0"`
	Quantity       int        `json:"quantity" binding:"min=0"`
	OfferType      string     `json:"offer_type"`
	OfferValue     float64    `json:"offer_value"`
	OfferStartDate *time.Time `json:"offer_start_date"`
	OfferEndDate   *time.Time `json:"offer_end_date"`
}

// VariantGroupRequest represents one variant axis in a product payload
type VariantGroupRequest struct {
	NameEN  string                 `json:"name_en" binding:"required"`
	NameAR  string                 `json:"name_ar"`
	Options []VariantOptionRequest `json:"options" binding:"required,min=1,dive"`
}

// ProductRequest represents the product creation/update request
type ProductRequest struct {
	NameEN             string                `json:"name_en" binding:"required,min=2,max=200"`
	NameAR             string                `json:"name_ar" binding:"required,min=2,max=200"`
	ShortDescriptionEN string                `json:"short_description_en"`
	ShortDescriptionAR string                `json:"short_description_ar"`
	LongDescriptionEN  string                `json:"long_description_en"`
	LongDescriptionAR  string                `json:"long_description_ar"`
	Image              string                `json:"image"`
	ManufacturedAt     string                `json:"manufactured_at"`
	Expiration         string                `json:"expiration"`
	IsActive           *bool                 `json:"is_active"`
	CategoryIDs        []uint                `json:"category_ids"`
	AddOnIDs           []uint                `json:"add_on_ids"`
	Variants           []VariantGroupRequest `json:"variants" binding:"required,min=1,dive"`
}

// buildVariantGroups validates the offer fields of every option and turns the
// request payload into model rows with derived prices.
func buildVariantGroups(variants []VariantGroupRequest, now time.Time) ([]models.VariantGroup, pricing.FieldErrors) {
	var allErrs pricing.FieldErrors
	groups := make([]models.VariantGroup, len(variants))
	for i, vg := range variants {
		options := make([]models.VariantOption, len(vg.Options))
		for j, o := range vg.Options {
			offerType := o.OfferType
			if offerType == "" {
				offerType = models.VariantOfferNone
			}
			spec := pricing.OfferSpec{
				OfferType:  offerType,
				OfferValue: o.OfferValue,
				StartDate:  o.OfferStartDate,
				EndDate:    o.OfferEndDate,
			}
			if errs := pricing.ValidateOfferSpec(spec); len(errs) > 0 {
				allErrs = append(allErrs, errs...)
				continue
			}

			opt := models.VariantOption{
				Position:       j,
				ValueEN:        utils.SanitizeString(o.ValueEN),
				ValueAR:        utils.SanitizeString(o.ValueAR),
				UnitLabelEN:    o.UnitLabelEN,
				UnitLabelAR:    o.UnitLabelAR,
				ImageURL:       o.ImageURL,
				OriginalPrice:  pricing.Round(o.OriginalPrice),
				Quantity:       o.Quantity,
				OfferType:      offerType,
				OfferValue:     o.OfferValue,
				OfferStartDate: o.OfferStartDate,
				OfferEndDate:   o.OfferEndDate,
			}
			opt.Price = pricing.EffectivePrice(opt, now)
			options[j] = opt
		}
		groups[i] = models.VariantGroup{
			NameEN:   utils.SanitizeString(vg.NameEN),
			NameAR:   utils.SanitizeString(vg.NameAR),
			Position: i,
			Options:  options,
		}
	}
	return groups, allErrs
}

func productHasLiveOffer(groups []models.VariantGroup, now time.Time) bool {
	for i := range groups {
		for j := range groups[i].Options {
			opt := groups[i].Options[j]
			if opt.OfferType != models.VariantOfferNone && pricing.IsLive(pricing.OfferStatus(opt, now)) {
				return true
			}
		}
	}
	return false
}

// ListProductsAdmin lists products for the back office with raw offer fields
func ListProductsAdmin(c *gin.Context) {
	utils.LogInfo("ListProductsAdmin called")

	pagination := utils.NewPagination(c)

	query := config.DB.Model(&models.Product{})
	if pagination.Search != "" {
		needle := "%" + strings.ToLower(pagination.Search) + "%"
		query = query.Where("name_lower LIKE ? OR name_ar_lower LIKE ?", needle, needle)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		utils.LogError("Failed to count products: %v", err)
		utils.InternalServerError(c, "Failed to fetch products", err.Error())
		return
	}
	pagination.SetTotal(total)

	var products []models.Product
	if err := query.
		Preload("Variants", func(db *gorm.DB) *gorm.DB { return db.Order("position") }).
		Preload("Variants.Options", func(db *gorm.DB) *gorm.DB { return db.Order("position") }).
		Preload("Categories").Preload("AddOns").
		Order("products.id").
		Offset(pagination.Offset).Limit(pagination.Limit).
		Find(&products).Error; err != nil {
		utils.LogError("Failed to fetch products: %v", err)
		utils.InternalServerError(c, "Failed to fetch products", err.Error())
		return
	}

	utils.LogInfo("Fetched %d products for admin", len(products))
	utils.SuccessWithPagination(c, "Products fetched successfully", gin.H{"products": products},
		pagination.Total, pagination.Page, pagination.Limit)
}

// CreateProduct handles product creation with nested variant groups
func CreateProduct(c *gin.Context) {
	utils.LogInfo("CreateProduct called")

	var req ProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.LogError("Invalid input: %v", err)
		utils.BadRequest(c, "Invalid input", err.Error())
		return
	}
	utils.LogDebug("Received product creation request - Name: %s", req.NameEN)

	now := time.Now()
	groups, errs := buildVariantGroups(req.Variants, now)
	if len(errs) > 0 {
		utils.LogError("Offer validation failed for product %s: %v", req.NameEN, errs)
		utils.ValidationFailed(c, "Invalid offer fields", errs)
		return
	}

	isActive := true
	if req.IsActive != nil {
		isActive = *req.IsActive
	}

	product := models.Product{
		NameEN:             utils.SanitizeString(req.NameEN),
		NameAR:             utils.SanitizeString(req.NameAR),
		ShortDescriptionEN: utils.SanitizeString(req.ShortDescriptionEN),
		ShortDescriptionAR: utils.SanitizeString(req.ShortDescriptionAR),
		LongDescriptionEN:  utils.SanitizeString(req.LongDescriptionEN),
		LongDescriptionAR:  utils.SanitizeString(req.LongDescriptionAR),
		Image:              req.Image,
		ManufacturedAt:     req.ManufacturedAt,
		Expiration:         req.Expiration,
		IsActive:           isActive,
		Variants:           groups,
	}
	product.NameLower = strings.ToLower(product.NameEN)
	product.NameARLower = strings.ToLower(product.NameAR)
	product.IsOffer = productHasLiveOffer(groups, now)

	tx := config.DB.Begin()
	if tx.Error != nil {
		utils.LogError("Failed to start transaction: %v", tx.Error)
		utils.InternalServerError(c, "Failed to create product", nil)
		return
	}

	if err := tx.Create(&product).Error; err != nil {
		tx.Rollback()
		utils.LogError("Failed to create product: %v", err)
		utils.InternalServerError(c, "Failed to create product", err.Error())
		return
	}

	if len(req.CategoryIDs) > 0 {
		var categories []models.Category
		if err := tx.Find(&categories, req.CategoryIDs).Error; err != nil {
			tx.Rollback()
			utils.LogError("Failed to resolve categories: %v", err)
			utils.InternalServerError(c, "Failed to create product", err.Error())
			return
		}
		if err := tx.Model(&product).Association("Categories").Replace(categories); err != nil {
			tx.Rollback()
			utils.LogError("Failed to attach categories: %v", err)
			utils.InternalServerError(c, "Failed to create product", err.Error())
			return
		}
	}

	if len(req.AddOnIDs) > 0 {
		var addOns []models.AddOn
		if err := tx.Find(&addOns, req.AddOnIDs).Error; err != nil {
			tx.Rollback()
			utils.LogError("Failed to resolve add-ons: %v", err)
			utils.InternalServerError(c, "Failed to create product", err.Error())
			return
		}
		if err := tx.Model(&product).Association("AddOns").Replace(addOns); err != nil {
			tx.Rollback()
			utils.LogError("Failed to attach add-ons: %v", err)
			utils.InternalServerError(c, "Failed to create product", err.Error())
			return
		}
	}

	if err := tx.Commit().Error; err != nil {
		utils.LogError("Failed to commit transaction: %v", err)
		utils.InternalServerError(c, "Failed to create product", err.Error())
		return
	}

	utils.LogInfo("Product created successfully: %s (ID: %d)", product.NameEN, product.ID)
	utils.Created(c, "Product created successfully", gin.H{"product": product})
}

// UpdateProduct handles product updates. Variant groups are replaced
// wholesale; per-option offer edits have their own endpoint.
func UpdateProduct(c *gin.Context) {
	utils.LogInfo("UpdateProduct called")

	var product models.Product
	if err := config.DB.Preload("Variants.Options").First(&product, c.Param("id")).Error; err != nil {
		utils.LogError("Product not found: %v", err)
		utils.NotFound(c, "Product not found")
		return
	}

	var req ProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.LogError("Invalid input: %v", err)
		utils.BadRequest(c, "Invalid input", err.Error())
		return
	}

	now := time.Now()
	groups, errs := buildVariantGroups(req.Variants, now)
	if len(errs) > 0 {
		utils.LogError("Offer validation failed for product %d: %v", product.ID, errs)
		utils.ValidationFailed(c, "Invalid offer fields", errs)
		return
	}

	tx := config.DB.Begin()
	if tx.Error != nil {
		utils.LogError("Failed to start transaction: %v", tx.Error)
		utils.InternalServerError(c, "Failed to update product", nil)
		return
	}

	// Replace variant tree. Cart rows referencing removed options keep their
	// snapshot at checkout anyway.
	if err := tx.Where("variant_group_id IN (?)",
		tx.Model(&models.VariantGroup{}).Select("id").Where("product_id = ?", product.ID),
	).Delete(&models.VariantOption{}).Error; err != nil {
		tx.Rollback()
		utils.LogError("Failed to clear variant options: %v", err)
		utils.InternalServerError(c, "Failed to update product", err.Error())
		return
	}
	if err := tx.Where("product_id = ?", product.ID).Delete(&models.VariantGroup{}).Error; err != nil {
		tx.Rollback()
		utils.LogError("Failed to clear variant groups: %v", err)
		utils.InternalServerError(c, "Failed to update product", err.Error())
		return
	}

	product.NameEN = utils.SanitizeString(req.NameEN)
	product.NameAR = utils.SanitizeString(req.NameAR)
	product.NameLower = strings.ToLower(product.NameEN)
	product.NameARLower = strings.ToLower(product.NameAR)
	product.ShortDescriptionEN = utils.SanitizeString(req.ShortDescriptionEN)
	product.ShortDescriptionAR = utils.SanitizeString(req.ShortDescriptionAR)
	product.LongDescriptionEN = utils.SanitizeString(req.LongDescriptionEN)
	product.LongDescriptionAR = utils.SanitizeString(req.LongDescriptionAR)
	product.Image = req.Image
	product.ManufacturedAt = req.ManufacturedAt
	product.Expiration = req.Expiration
	if req.IsActive != nil {
		product.IsActive = *req.IsActive
	}
	product.Variants = groups
	product.IsOffer = productHasLiveOffer(groups, now)

	if err := tx.Session(&gorm.Session{FullSaveAssociations: true}).Save(&product).Error; err != nil {
		tx.Rollback()
		utils.LogError("Failed to update product: %v", err)
		utils.InternalServerError(c, "Failed to update product", err.Error())
		return
	}

	if req.CategoryIDs != nil {
		var categories []models.Category
		if len(req.CategoryIDs) > 0 {
			if err := tx.Find(&categories, req.CategoryIDs).Error; err != nil {
				tx.Rollback()
				utils.LogError("Failed to resolve categories: %v", err)
				utils.InternalServerError(c, "Failed to update product", err.Error())
				return
			}
		}
		if err := tx.Model(&product).Association("Categories").Replace(categories); err != nil {
			tx.Rollback()
			utils.LogError("Failed to attach categories: %v", err)
			utils.InternalServerError(c, "Failed to update product", err.Error())
			return
		}
	}

	if req.AddOnIDs != nil {
		var addOns []models.AddOn
		if len(req.AddOnIDs) > 0 {
			if err := tx.Find(&addOns, req.AddOnIDs).Error; err != nil {
				tx.Rollback()
				utils.LogError("Failed to resolve add-ons: %v", err)
				utils.InternalServerError(c, "Failed to update product", err.Error())
				return
			}
		}
		if err := tx.Model(&product).Association("AddOns").Replace(addOns); err != nil {
			tx.Rollback()
			utils.LogError("Failed to attach add-ons: %v", err)
			utils.InternalServerError(c, "Failed to update product", err.Error())
			return
		}
	}

	if err := tx.Commit().Error; err != nil {
		utils.LogError("Failed to commit transaction: %v", err)
		utils.InternalServerError(c, "Failed to update product", err.Error())
		return
	}

	utils.LogInfo("Product updated successfully: %s (ID: %d)", product.NameEN, product.ID)
	utils.Success(c, "Product updated successfully", gin.H{"product": product})
}

// DeleteProduct soft-deletes a product and removes it from carts
func DeleteProduct(c *gin.Context) {
	utils.LogInfo("DeleteProduct called")

	var product models.Product
	if err := config.DB.First(&product, c.Param("id")).Error; err != nil {
		utils.LogError("Product not found: %v", err)
		utils.NotFound(c, "Product not found")
		return
	}

	tx := config.DB.Begin()
	if tx.Error != nil {
		utils.LogError("Failed to start transaction: %v", tx.Error)
		utils.InternalServerError(c, "Failed to delete product", nil)
		return
	}

	if err := tx.Where("product_id = ?", product.ID).Delete(&models.CartItem{}).Error; err != nil {
		tx.Rollback()
		utils.LogError("Failed to remove product from carts: %v", err)
		utils.InternalServerError(c, "Failed to delete product", err.Error())
		return
	}

	if err := tx.Delete(&product).Error; err != nil {
		tx.Rollback()
		utils.LogError("Failed to delete product: %v", err)
		utils.InternalServerError(c, "Failed to delete product", err.Error())
		return
	}

	if err := tx.Commit().Error; err != nil {
		utils.LogError("Failed to commit transaction: %v", err)
		utils.InternalServerError(c, "Failed to delete product", err.Error())
		return
	}

	utils.LogInfo("Product deleted successfully: %s (ID: %d)", product.NameEN, product.ID)
	utils.Success(c, "Product deleted successfully", nil)
}
