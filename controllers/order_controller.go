package controllers

import (
	"github.com/gin-gonic/gin"
	"github.com/haddadin-dev/MazajMart/config"
	"github.com/haddadin-dev/MazajMart/models"
	"github.com/haddadin-dev/MazajMart/utils"
)

// ListOrders lists the signed-in customer's orders
func ListOrders(c *gin.Context) {
	utils.LogInfo("ListOrders called")

	userVal, exists := c.Get("user")
	if !exists {
		utils.Unauthorized(c, "Unauthorized")
		return
	}
	user := userVal.(models.User)

	pagination := utils.NewPagination(c)

	query := config.DB.Model(&models.Order{}).Where("user_id = ?", user.ID)

	var total int64
	if err := query.Count(&total).Error; err != nil {
		utils.LogError("Failed to count orders: %v", err)
		utils.InternalServerError(c, "Failed to fetch orders", err.Error())
		return
	}
	pagination.SetTotal(total)

	var orders []models.Order
	if err := query.Preload("Items").Order("created_at DESC").
		Offset(pagination.Offset).Limit(pagination.Limit).
		Find(&orders).Error; err != nil {
		utils.LogError("Failed to fetch orders for user %d: %v", user.ID, err)
		utils.InternalServerError(c, "Failed to fetch orders", err.Error())
		return
	}

	utils.LogInfo("Fetched %d orders for user %d", len(orders), user.ID)
	utils.SuccessWithPagination(c, "Orders fetched successfully", gin.H{"orders": orders},
		pagination.Total, pagination.Page, pagination.Limit)
}

// GetOrderDetails returns one of the customer's orders
func GetOrderDetails(c *gin.Context) {
	utils.LogInfo("GetOrderDetails called")

	userVal, exists := c.Get("user")
	if !exists {
		utils.Unauthorized(c, "Unauthorized")
		return
	}
	user := userVal.(models.User)

	var order models.Order
	if err := config.DB.Preload("Items").
		Where("id = ? AND user_id = ?", c.Param("id"), user.ID).
		First(&order).Error; err != nil {
		utils.LogError("Order not found for user %d: %v", user.ID, err)
		utils.NotFound(c, "Order not found")
		return
	}

	utils.LogInfo("Fetched order %s for user %d", order.OrderRef, user.ID)
	utils.Success(c, "Order fetched successfully", gin.H{"order": order})
}
