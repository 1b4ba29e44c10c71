package controllers

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/haddadin-dev/MazajMart/config"
	"github.com/haddadin-dev/MazajMart/models"
	"github.com/haddadin-dev/MazajMart/utils"
)

// CategoryRequest represents the category creation/update request
type CategoryRequest struct {
	NameEN string `json:"name_en" binding:"required,min=2,max=100"`
	NameAR string `json:"name_ar" binding:"required,min=2,max=100"`
	Image  string `json:"image"`
}

// ListCategories lists unblocked categories for the storefront
func ListCategories(c *gin.Context) {
	utils.LogInfo("ListCategories called")

	var categories []models.Category
	if err := config.DB.Where("blocked = ?", false).Order("id").Find(&categories).Error; err != nil {
		utils.LogError("Failed to fetch categories: %v", err)
		utils.InternalServerError(c, "Failed to fetch categories", err.Error())
		return
	}

	utils.Success(c, "Categories fetched successfully", gin.H{"categories": categories})
}

// ListProductsByCategory lists active products in a category with effective
// prices computed at request time
func ListProductsByCategory(c *gin.Context) {
	utils.LogInfo("ListProductsByCategory called")

	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		utils.LogError("Invalid category ID format: %v", err)
		utils.BadRequest(c, "Invalid category ID format", nil)
		return
	}

	var category models.Category
	if err := config.DB.First(&category, id).Error; err != nil {
		utils.LogError("Category not found: %v", err)
		utils.NotFound(c, "Category not found")
		return
	}
	if category.Blocked {
		utils.NotFound(c, "Category not found")
		return
	}

	var products []models.Product
	if err := config.DB.
		Joins("JOIN product_categories pc ON pc.product_id = products.id").
		Where("pc.category_id = ? AND products.is_active = ?", id, true).
		Preload("Variants.Options").Preload("Categories").
		Order("products.id").Find(&products).Error; err != nil {
		utils.LogError("Failed to fetch products for category %d: %v", id, err)
		utils.InternalServerError(c, "Failed to fetch products", err.Error())
		return
	}

	now := time.Now()
	lang := requestLanguage(c)
	views := make([]gin.H, len(products))
	for i := range products {
		views[i] = productView(&products[i], lang, now)
	}

	utils.LogInfo("Fetched %d products for category %d", len(products), id)
	utils.Success(c, "Products fetched successfully", gin.H{
		"category": category,
		"products": views,
	})
}

// ListCategoriesAdmin lists all categories for the back office
func ListCategoriesAdmin(c *gin.Context) {
	utils.LogInfo("ListCategoriesAdmin called")

	var categories []models.Category
	if err := config.DB.Order("id").Find(&categories).Error; err != nil {
		utils.LogError("Failed to fetch categories: %v", err)
		utils.InternalServerError(c, "Failed to fetch categories", err.Error())
		return
	}

	utils.Success(c, "Categories fetched successfully", gin.H{"categories": categories})
}

// CreateCategory handles category creation
func CreateCategory(c *gin.Context) {
	utils.LogInfo("CreateCategory called")

	var req CategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.LogError("Invalid input: %v", err)
		utils.BadRequest(c, "Invalid input", err.Error())
		return
	}
	utils.LogDebug("Received category creation request - Name: %s", req.NameEN)

	var existing models.Category
	if err := config.DB.Where("name_en ILIKE ?", req.NameEN).First(&existing).Error; err == nil {
		utils.LogError("Category with name %s already exists", req.NameEN)
		utils.Conflict(c, "A category with this name already exists", nil)
		return
	}

	category := models.Category{
		NameEN: utils.SanitizeString(req.NameEN),
		NameAR: utils.SanitizeString(req.NameAR),
		Image:  req.Image,
	}

	if err := config.DB.Create(&category).Error; err != nil {
		utils.LogError("Failed to create category: %v", err)
		utils.InternalServerError(c, "Failed to create category", err.Error())
		return
	}

	utils.LogInfo("Category created successfully: %s", category.NameEN)
	utils.Created(c, "Category created successfully", gin.H{"category": category})
}

// UpdateCategory handles category updates, including block/unblock
func UpdateCategory(c *gin.Context) {
	utils.LogInfo("UpdateCategory called")

	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		utils.LogError("Invalid category ID format: %v", err)
		utils.BadRequest(c, "Invalid category ID format", nil)
		return
	}

	var category models.Category
	if err := config.DB.First(&category, id).Error; err != nil {
		utils.LogError("Category not found: %v", err)
		utils.NotFound(c, "Category not found")
		return
	}

	var req struct {
		NameEN  *string `json:"name_en"`
		NameAR  *string `json:"name_ar"`
		Image   *string `json:"image"`
		Blocked *bool   `json:"blocked"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.LogError("Invalid input: %v", err)
		utils.BadRequest(c, "Invalid input", err.Error())
		return
	}

	if req.NameEN != nil {
		var existing models.Category
		if err := config.DB.Where("name_en ILIKE ? AND id != ?", *req.NameEN, id).First(&existing).Error; err == nil {
			utils.LogError("Duplicate category name found: %s", *req.NameEN)
			utils.Conflict(c, "Category name already exists", "Please choose a different name")
			return
		}
		category.NameEN = utils.SanitizeString(*req.NameEN)
	}
	if req.NameAR != nil {
		category.NameAR = utils.SanitizeString(*req.NameAR)
	}
	if req.Image != nil {
		category.Image = *req.Image
	}
	if req.Blocked != nil {
		category.Blocked = *req.Blocked
	}

	if err := config.DB.Save(&category).Error; err != nil {
		utils.LogError("Failed to update category: %v", err)
		utils.InternalServerError(c, "Failed to update category", err.Error())
		return
	}

	utils.LogInfo("Category updated successfully: %s", category.NameEN)
	utils.Success(c, "Category updated successfully", gin.H{"category": category})
}

// DeleteCategory handles category deletion
func DeleteCategory(c *gin.Context) {
	utils.LogInfo("DeleteCategory called")

	id := c.Param("id")
	var category models.Category
	if err := config.DB.First(&category, id).Error; err != nil {
		utils.LogError("Category not found: %v", err)
		utils.NotFound(c, "Category not found")
		return
	}

	var productCount int64
	if err := config.DB.Table("product_categories").Where("category_id = ?", category.ID).Count(&productCount).Error; err != nil {
		utils.LogError("Failed to count products: %v", err)
		utils.InternalServerError(c, "Failed to check category usage", err.Error())
		return
	}

	if productCount > 0 {
		utils.LogError("Cannot delete category with %d products", productCount)
		utils.BadRequest(c, "Cannot delete category that has products associated with it", gin.H{
			"product_count": productCount,
		})
		return
	}

	if err := config.DB.Delete(&category).Error; err != nil {
		utils.LogError("Failed to delete category: %v", err)
		utils.InternalServerError(c, "Failed to delete category", err.Error())
		return
	}

	utils.LogInfo("Category deleted successfully: %s", category.NameEN)
	utils.Success(c, "Category deleted successfully", nil)
}
