package controllers

import (
	"github.com/gin-gonic/gin"
	"github.com/haddadin-dev/MazajMart/config"
	"github.com/haddadin-dev/MazajMart/models"
	"github.com/haddadin-dev/MazajMart/utils"
)

// validStatusTransitions maps each order status to the statuses an admin may
// move it to.
var validStatusTransitions = map[string][]string{
	models.OrderStatusPlaced:         {models.OrderStatusPreparing, models.OrderStatusCancelled},
	models.OrderStatusPreparing:      {models.OrderStatusReady, models.OrderStatusCancelled},
	models.OrderStatusReady:          {models.OrderStatusOutForDelivery, models.OrderStatusCompleted},
	models.OrderStatusOutForDelivery: {models.OrderStatusCompleted},
}

// ListOrdersAdmin lists all orders for the back office
func ListOrdersAdmin(c *gin.Context) {
	utils.LogInfo("ListOrdersAdmin called")

	pagination := utils.NewPagination(c)

	query := config.DB.Model(&models.Order{})
	if status := c.Query("status"); status != "" {
		query = query.Where("status = ?", status)
	}
	if method := c.Query("service_method"); method != "" {
		query = query.Where("service_method = ?", method)
	}
	if pagination.Search != "" {
		query = query.Where("order_ref ILIKE ? OR phone ILIKE ?",
			"%"+pagination.Search+"%", "%"+pagination.Search+"%")
	}

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
		utils.LogError("Failed to fetch orders: %v", err)
		utils.InternalServerError(c, "Failed to fetch orders", err.Error())
		return
	}

	utils.LogInfo("Fetched %d orders for admin", len(orders))
	utils.SuccessWithPagination(c, "Orders fetched successfully", gin.H{"orders": orders},
		pagination.Total, pagination.Page, pagination.Limit)
}

// GetOrderDetailsAdmin returns one order for the back office
func GetOrderDetailsAdmin(c *gin.Context) {
	utils.LogInfo("GetOrderDetailsAdmin called")

	var order models.Order
	if err := config.DB.Preload("Items").First(&order, c.Param("id")).Error; err != nil {
		utils.LogError("Order not found: %v", err)
		utils.NotFound(c, "Order not found")
		return
	}

	utils.Success(c, "Order fetched successfully", gin.H{"order": order})
}

// UpdateOrderStatusRequest represents the status change request
type UpdateOrderStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

// UpdateOrderStatus moves an order along its status lifecycle
func UpdateOrderStatus(c *gin.Context) {
	utils.LogInfo("UpdateOrderStatus called")

	var order models.Order
	if err := config.DB.First(&order, c.Param("id")).Error; err != nil {
		utils.LogError("Order not found: %v", err)
		utils.NotFound(c, "Order not found")
		return
	}

	var req UpdateOrderStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.LogError("Invalid input: %v", err)
		utils.BadRequest(c, "Invalid input", err.Error())
		return
	}

	allowed := false
	for _, next := range validStatusTransitions[order.Status] {
		if next == req.Status {
			allowed = true
			break
		}
	}
	if !allowed {
		utils.LogError("Invalid status transition %s -> %s for order %s", order.Status, req.Status, order.OrderRef)
		utils.BadRequest(c, "Invalid status transition", gin.H{
			"current": order.Status,
			"allowed": validStatusTransitions[order.Status],
		})
		return
	}

	order.Status = req.Status
	if err := config.DB.Save(&order).Error; err != nil {
		utils.LogError("Failed to update order status: %v", err)
		utils.InternalServerError(c, "Failed to update order status", err.Error())
		return
	}

	utils.LogInfo("Order %s moved to status %s", order.OrderRef, order.Status)
	utils.Success(c, "Order status updated successfully", gin.H{"order": order})
}
