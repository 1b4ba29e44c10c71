package controllers

import (
	"github.com/gin-gonic/gin"
	"github.com/haddadin-dev/MazajMart/config"
	"github.com/haddadin-dev/MazajMart/models"
	"github.com/haddadin-dev/MazajMart/pricing"
	"github.com/haddadin-dev/MazajMart/utils"
)

// AddOnRequest represents the add-on creation/update request
type AddOnRequest struct {
	NameEN     string  `json:"name_en" binding:"required,min=1,max=100"`
	NameAR     string  `json:"name_ar" binding:"required,min=1,max=100"`
	ExtraPrice float64 `json:"extra_price" binding:"min=0"`
}

// ListAddOns lists add-ons for the storefront
func ListAddOns(c *gin.Context) {
	utils.LogInfo("ListAddOns called")

	var addOns []models.AddOn
	if err := config.DB.Order("id").Find(&addOns).Error; err != nil {
		utils.LogError("Failed to fetch add-ons: %v", err)
		utils.InternalServerError(c, "Failed to fetch add-ons", err.Error())
		return
	}

	utils.Success(c, "Add-ons fetched successfully", gin.H{"addons": addOns})
}

// ListAddOnsAdmin lists all add-ons for the back office
func ListAddOnsAdmin(c *gin.Context) {
	ListAddOns(c)
}

// CreateAddOn handles add-on creation
func CreateAddOn(c *gin.Context) {
	utils.LogInfo("CreateAddOn called")

	var req AddOnRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.LogError("Invalid input: %v", err)
		utils.BadRequest(c, "Invalid input", err.Error())
		return
	}

	addOn := models.AddOn{
		NameEN:     utils.SanitizeString(req.NameEN),
		NameAR:     utils.SanitizeString(req.NameAR),
		ExtraPrice: pricing.Round(req.ExtraPrice),
	}

	if err := config.DB.Create(&addOn).Error; err != nil {
		utils.LogError("Failed to create add-on: %v", err)
		utils.InternalServerError(c, "Failed to create add-on", err.Error())
		return
	}

	utils.LogInfo("Add-on created successfully: %s", addOn.NameEN)
	utils.Created(c, "Add-on created successfully", gin.H{"addon": addOn})
}

// UpdateAddOn handles add-on updates
func UpdateAddOn(c *gin.Context) {
	utils.LogInfo("UpdateAddOn called")

	var addOn models.AddOn
	if err := config.DB.First(&addOn, c.Param("id")).Error; err != nil {
		utils.LogError("Add-on not found: %v", err)
		utils.NotFound(c, "Add-on not found")
		return
	}

	var req AddOnRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.LogError("Invalid input: %v", err)
		utils.BadRequest(c, "Invalid input", err.Error())
		return
	}

	addOn.NameEN = utils.SanitizeString(req.NameEN)
	addOn.NameAR = utils.SanitizeString(req.NameAR)
	addOn.ExtraPrice = pricing.Round(req.ExtraPrice)

	if err := config.DB.Save(&addOn).Error; err != nil {
		utils.LogError("Failed to update add-on: %v", err)
		utils.InternalServerError(c, "Failed to update add-on", err.Error())
		return
	}

	utils.LogInfo("Add-on updated successfully: %s", addOn.NameEN)
	utils.Success(c, "Add-on updated successfully", gin.H{"addon": addOn})
}

// DeleteAddOn handles add-on deletion
func DeleteAddOn(c *gin.Context) {
	utils.LogInfo("DeleteAddOn called")

	var addOn models.AddOn
	if err := config.DB.First(&addOn, c.Param("id")).Error; err != nil {
		utils.LogError("Add-on not found: %v", err)
		utils.NotFound(c, "Add-on not found")
		return
	}

	if err := config.DB.Delete(&addOn).Error; err != nil {
		utils.LogError("Failed to delete add-on: %v", err)
		utils.InternalServerError(c, "Failed to delete add-on", err.Error())
		return
	}

	utils.LogInfo("Add-on deleted successfully: %s", addOn.NameEN)
	utils.Success(c, "Add-on deleted successfully", nil)
}
