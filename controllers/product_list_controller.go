package controllers

import (
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/haddadin-dev/MazajMart/config"
	"github.com/haddadin-dev/MazajMart/models"
	"github.com/haddadin-dev/MazajMart/utils"
	"gorm.io/gorm"
)

// GetProducts lists active products for the storefront. Supports search
// (both languages), offers_only filtering and pagination. All prices on the
// page are computed against a single instant.
func GetProducts(c *gin.Context) {
	utils.LogInfo("GetProducts called")

	pagination := utils.NewPagination(c)

	query := config.DB.Model(&models.Product{}).Where("is_active = ?", true)
	if pagination.Search != "" {
		needle := "%" + strings.ToLower(pagination.Search) + "%"
		query = query.Where("name_lower LIKE ? OR name_ar_lower LIKE ?", needle, needle)
	}
	if c.Query("offers_only") == "true" {
		query = query.Where("is_offer = ?", true)
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
		Preload("Categories").
		Order("products.id").
		Offset(pagination.Offset).Limit(pagination.Limit).
		Find(&products).Error; err != nil {
		utils.LogError("Failed to fetch products: %v", err)
		utils.InternalServerError(c, "Failed to fetch products", err.Error())
		return
	}

	now := time.Now()
	lang := requestLanguage(c)
	views := make([]gin.H, len(products))
	for i := range products {
		views[i] = productView(&products[i], lang, now)
	}

	utils.LogInfo("Fetched %d products", len(products))
	utils.SuccessWithPagination(c, "Products fetched successfully", gin.H{"products": views},
		pagination.Total, pagination.Page, pagination.Limit)
}

// GetProductDetails returns a single active product with full details
func GetProductDetails(c *gin.Context) {
	utils.LogInfo("GetProductDetails called")

	var product models.Product
	if err := config.DB.
		Preload("Variants", func(db *gorm.DB) *gorm.DB { return db.Order("position") }).
		Preload("Variants.Options", func(db *gorm.DB) *gorm.DB { return db.Order("position") }).
		Preload("Categories").Preload("AddOns").
		First(&product, c.Param("id")).Error; err != nil {
		utils.LogError("Product not found: %v", err)
		utils.NotFound(c, "Product not found")
		return
	}

	if !product.IsActive {
		utils.NotFound(c, "Product not found")
		return
	}

	now := time.Now()
	lang := requestLanguage(c)

	utils.LogInfo("Fetched product %d", product.ID)
	utils.Success(c, "Product fetched successfully", gin.H{
		"product": productDetailView(&product, lang, now),
	})
}
