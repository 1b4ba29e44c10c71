package controllers

import (
	"github.com/gin-gonic/gin"
	"github.com/haddadin-dev/MazajMart/config"
	"github.com/haddadin-dev/MazajMart/models"
	"github.com/haddadin-dev/MazajMart/utils"
	"gorm.io/gorm"
)

// loadProductWithVariants fetches a product and its ordered variant tree,
// returning a typed not-found error for the handler to translate.
func loadProductWithVariants(id string) (*models.Product, error) {
	var product models.Product
	err := config.DB.
		Preload("Variants", func(db *gorm.DB) *gorm.DB { return db.Order("position") }).
		Preload("Variants.Options", func(db *gorm.DB) *gorm.DB { return db.Order("position") }).
		First(&product, id).Error
	if err != nil {
		return nil, utils.NotFoundError("Product not found", err)
	}
	return &product, nil
}

// respondError maps a typed application error onto the standard envelope
func respondError(c *gin.Context, err error) {
	if appErr := utils.GetAppError(err); appErr != nil {
		utils.Error(c, appErr.Code, appErr.Message, nil)
		return
	}
	utils.InternalServerError(c, "Unexpected error", err.Error())
}
