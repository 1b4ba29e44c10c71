package controllers

import (
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/haddadin-dev/MazajMart/config"
	"github.com/haddadin-dev/MazajMart/models"
	"github.com/haddadin-dev/MazajMart/utils"
)

// GetUsers lists customers for the admin, paginated and searchable by email
func GetUsers(c *gin.Context) {
	utils.LogInfo("GetUsers called")

	pagination := utils.NewPagination(c)

	query := config.DB.Model(&models.User{})
	if pagination.Search != "" {
		query = query.Where("email ILIKE ? OR first_name ILIKE ? OR last_name ILIKE ?",
			"%"+pagination.Search+"%", "%"+pagination.Search+"%", "%"+pagination.Search+"%")
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		utils.LogError("Failed to count users: %v", err)
		utils.InternalServerError(c, "Failed to fetch users", err.Error())
		return
	}
	pagination.SetTotal(total)

	var users []models.User
	if err := query.Order("created_at DESC").
		Offset(pagination.Offset).Limit(pagination.Limit).
		Find(&users).Error; err != nil {
		utils.LogError("Failed to fetch users: %v", err)
		utils.InternalServerError(c, "Failed to fetch users", err.Error())
		return
	}

	utils.LogInfo("Fetched %d users", len(users))
	utils.SuccessWithPagination(c, "Users fetched successfully", gin.H{"users": users}, pagination.Total, pagination.Page, pagination.Limit)
}

func setUserBlocked(c *gin.Context, blocked bool) {
	userID := c.Param("id")
	id, err := strconv.ParseUint(userID, 10, 32)
	if err != nil {
		utils.LogError("Invalid user ID format: %v", err)
		utils.BadRequest(c, "Invalid user ID format", nil)
		return
	}

	var user models.User
	if err := config.DB.First(&user, id).Error; err != nil {
		utils.LogError("User not found: %v", err)
		utils.NotFound(c, "User not found")
		return
	}

	user.IsBlocked = blocked
	if err := config.DB.Save(&user).Error; err != nil {
		utils.LogError("Failed to update user block status: %v", err)
		utils.InternalServerError(c, "Failed to update user", err.Error())
		return
	}

	action := "unblocked"
	if blocked {
		action = "blocked"
	}
	utils.LogInfo("User %d %s", user.ID, action)
	utils.Success(c, "User "+action+" successfully", gin.H{
		"user": gin.H{
			"id":         user.ID,
			"email":      user.Email,
			"is_blocked": user.IsBlocked,
		},
	})
}

// BlockUser blocks a customer account
func BlockUser(c *gin.Context) {
	utils.LogInfo("BlockUser called")
	setUserBlocked(c, true)
}

// UnblockUser unblocks a customer account
func UnblockUser(c *gin.Context) {
	utils.LogInfo("UnblockUser called")
	setUserBlocked(c, false)
}
