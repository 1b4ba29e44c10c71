package controllers

import (
	"github.com/gin-gonic/gin"
	"github.com/haddadin-dev/MazajMart/utils"
)

// ContactRequest represents a customer-service or careers message
type ContactRequest struct {
	Topic   string `json:"topic" binding:"required,oneof=customer-service careers feedback"`
	Name    string `json:"name" binding:"required,min=2,max=100"`
	Email   string `json:"email" binding:"required,email"`
	Phone   string `json:"phone"`
	Message string `json:"message" binding:"required,min=10,max=2000"`
}

// SubmitContactMessage relays a storefront contact form to the store inbox
func SubmitContactMessage(c *gin.Context) {
	utils.LogInfo("SubmitContactMessage called")

	var req ContactRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.LogError("Invalid contact message: %v", err)
		utils.BadRequest(c, "Invalid input", err.Error())
		return
	}

	if req.Phone != "" && !utils.ValidatePhone(req.Phone) {
		utils.BadRequest(c, "Invalid phone number", nil)
		return
	}

	err := utils.SendContactMessage(
		req.Topic,
		utils.SanitizeString(req.Name),
		req.Email,
		req.Phone,
		utils.SanitizeString(req.Message),
	)
	if err != nil {
		utils.LogError("Failed to relay contact message: %v", err)
		utils.InternalServerError(c, "Failed to send message", nil)
		return
	}

	utils.LogInfo("Contact message relayed from %s (%s)", req.Name, req.Topic)
	utils.Success(c, "Message sent successfully", nil)
}
