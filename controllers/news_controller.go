package controllers

import (
	"github.com/gin-gonic/gin"
	"github.com/haddadin-dev/MazajMart/config"
	"github.com/haddadin-dev/MazajMart/models"
	"github.com/haddadin-dev/MazajMart/utils"
)

// NewsRequest represents the news creation/update request
type NewsRequest struct {
	TitleEN   string `json:"title_en" binding:"required,min=2,max=200"`
	TitleAR   string `json:"title_ar" binding:"required,min=2,max=200"`
	BodyEN    string `json:"body_en"`
	BodyAR    string `json:"body_ar"`
	Image     string `json:"image"`
	VideoURL  string `json:"video_url"`
	Published bool   `json:"published"`
}

// ListNews lists published news items for the storefront
func ListNews(c *gin.Context) {
	utils.LogInfo("ListNews called")

	var items []models.News
	if err := config.DB.Where("published = ?", true).Order("created_at DESC").Find(&items).Error; err != nil {
		utils.LogError("Failed to fetch news: %v", err)
		utils.InternalServerError(c, "Failed to fetch news", err.Error())
		return
	}

	utils.Success(c, "News fetched successfully", gin.H{"news": items})
}

// ListNewsAdmin lists all news items for the back office
func ListNewsAdmin(c *gin.Context) {
	utils.LogInfo("ListNewsAdmin called")

	var items []models.News
	if err := config.DB.Order("created_at DESC").Find(&items).Error; err != nil {
		utils.LogError("Failed to fetch news: %v", err)
		utils.InternalServerError(c, "Failed to fetch news", err.Error())
		return
	}

	utils.Success(c, "News fetched successfully", gin.H{"news": items})
}

// CreateNews handles news creation
func CreateNews(c *gin.Context) {
	utils.LogInfo("CreateNews called")

	var req NewsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.LogError("Invalid input: %v", err)
		utils.BadRequest(c, "Invalid input", err.Error())
		return
	}

	item := models.News{
		TitleEN:   utils.SanitizeString(req.TitleEN),
		TitleAR:   utils.SanitizeString(req.TitleAR),
		BodyEN:    utils.SanitizeString(req.BodyEN),
		BodyAR:    utils.SanitizeString(req.BodyAR),
		Image:     req.Image,
		VideoURL:  req.VideoURL,
		Published: req.Published,
	}

	if err := config.DB.Create(&item).Error; err != nil {
		utils.LogError("Failed to create news item: %v", err)
		utils.InternalServerError(c, "Failed to create news item", err.Error())
		return
	}

	utils.LogInfo("News item created successfully: %s", item.TitleEN)
	utils.Created(c, "News item created successfully", gin.H{"news": item})
}

// UpdateNews handles news updates
func UpdateNews(c *gin.Context) {
	utils.LogInfo("UpdateNews called")

	var item models.News
	if err := config.DB.First(&item, c.Param("id")).Error; err != nil {
		utils.LogError("News item not found: %v", err)
		utils.NotFound(c, "News item not found")
		return
	}

	var req NewsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.LogError("Invalid input: %v", err)
		utils.BadRequest(c, "Invalid input", err.Error())
		return
	}

	item.TitleEN = utils.SanitizeString(req.TitleEN)
	item.TitleAR = utils.SanitizeString(req.TitleAR)
	item.BodyEN = utils.SanitizeString(req.BodyEN)
	item.BodyAR = utils.SanitizeString(req.BodyAR)
	item.Image = req.Image
	item.VideoURL = req.VideoURL
	item.Published = req.Published

	if err := config.DB.Save(&item).Error; err != nil {
		utils.LogError("Failed to update news item: %v", err)
		utils.InternalServerError(c, "Failed to update news item", err.Error())
		return
	}

	utils.LogInfo("News item updated successfully: %s", item.TitleEN)
	utils.Success(c, "News item updated successfully", gin.H{"news": item})
}

// DeleteNews handles news deletion
func DeleteNews(c *gin.Context) {
	utils.LogInfo("DeleteNews called")

	var item models.News
	if err := config.DB.First(&item, c.Param("id")).Error; err != nil {
		utils.LogError("News item not found: %v", err)
		utils.NotFound(c, "News item not found")
		return
	}

	if err := config.DB.Delete(&item).Error; err != nil {
		utils.LogError("Failed to delete news item: %v", err)
		utils.InternalServerError(c, "Failed to delete news item", err.Error())
		return
	}

	utils.LogInfo("News item deleted successfully: %s", item.TitleEN)
	utils.Success(c, "News item deleted successfully", nil)
}
