package controllers

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/haddadin-dev/MazajMart/config"
	"github.com/haddadin-dev/MazajMart/models"
	"github.com/haddadin-dev/MazajMart/utils"
)

// RegisterRequest represents the user registration request
type RegisterRequest struct {
	Email     string `json:"email" binding:"required,email"`
	Password  string `json:"password" binding:"required,min=8"`
	FirstName string `json:"first_name" binding:"required"`
	LastName  string `json:"last_name"`
	Phone     string `json:"phone"`
	Language  string `json:"language"`
}

// RegisterUser handles customer registration and sends a verification OTP
func RegisterUser(c *gin.Context) {
	utils.LogInfo("RegisterUser called")
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.LogError("Invalid registration request: %v", err)
		utils.BadRequest(c, "Invalid input", err.Error())
		return
	}

	if !utils.ValidateEmail(req.Email) {
		utils.BadRequest(c, "Invalid email address", nil)
		return
	}
	if valid, msg := utils.ValidatePassword(req.Password); !valid {
		utils.BadRequest(c, msg, nil)
		return
	}
	if req.Phone != "" && !utils.ValidatePhone(req.Phone) {
		utils.BadRequest(c, "Invalid phone number", nil)
		return
	}
	if req.Language != "en" && req.Language != "ar" {
		req.Language = "en"
	}

	var existing models.User
	if err := config.DB.Where("email = ?", req.Email).First(&existing).Error; err == nil {
		if existing.IsVerified {
			utils.LogError("Email already registered: %s", req.Email)
			utils.Conflict(c, "Email already registered", nil)
			return
		}
		// Unverified account, allow re-registration by refreshing the OTP
		if err := config.DB.Unscoped().Delete(&existing).Error; err != nil {
			utils.LogError("Failed to remove stale unverified user: %v", err)
			utils.InternalServerError(c, "Failed to register", err.Error())
			return
		}
		utils.LogDebug("Replaced stale unverified registration for %s", req.Email)
	}

	hashedPassword, err := utils.HashPassword(req.Password)
	if err != nil {
		utils.LogError("Failed to hash password: %v", err)
		utils.InternalServerError(c, "Failed to register", nil)
		return
	}

	otp := utils.GenerateOTP()

	user := models.User{
		Email:        req.Email,
		Password:     hashedPassword,
		FirstName:    utils.SanitizeString(req.FirstName),
		LastName:     utils.SanitizeString(req.LastName),
		Phone:        req.Phone,
		Language:     req.Language,
		OTP:          otp,
		OTPExpiresAt: time.Now().Add(15 * time.Minute),
	}

	if err := config.DB.Create(&user).Error; err != nil {
		utils.LogError("Failed to create user: %v", err)
		utils.InternalServerError(c, "Failed to register", err.Error())
		return
	}

	if err := utils.SendOTP(user.Email, otp); err != nil {
		utils.LogError("Failed to send OTP email to %s: %v", user.Email, err)
	}

	utils.LogInfo("User registered, OTP sent: %s", user.Email)
	utils.Created(c, "Registration successful. Please verify your email with the OTP sent.", gin.H{
		"email": user.Email,
	})
}

// VerifyOTPRequest represents the OTP verification request
type VerifyOTPRequest struct {
	Email string `json:"email" binding:"required,email"`
	OTP   string `json:"otp" binding:"required,len=6"`
}

// VerifyOTP verifies the registration OTP and activates the account
func VerifyOTP(c *gin.Context) {
	utils.LogInfo("VerifyOTP called")
	var req VerifyOTPRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.LogError("Invalid OTP request: %v", err)
		utils.BadRequest(c, "Invalid input", err.Error())
		return
	}

	var user models.User
	if err := config.DB.Where("email = ?", req.Email).First(&user).Error; err != nil {
		utils.LogError("User not found for OTP verification: %s", req.Email)
		utils.NotFound(c, "User not found")
		return
	}

	if user.IsVerified {
		utils.Success(c, "Account already verified", nil)
		return
	}

	if user.OTP != req.OTP {
		utils.LogError("Invalid OTP for user: %s", req.Email)
		utils.BadRequest(c, "Invalid OTP", nil)
		return
	}

	if time.Now().After(user.OTPExpiresAt) {
		utils.LogError("Expired OTP for user: %s", req.Email)
		utils.BadRequest(c, "OTP has expired. Please request a new one.", nil)
		return
	}

	user.IsVerified = true
	user.OTP = ""
	if err := config.DB.Save(&user).Error; err != nil {
		utils.LogError("Failed to mark user verified: %v", err)
		utils.InternalServerError(c, "Failed to verify account", err.Error())
		return
	}

	utils.LogInfo("User verified successfully: %s", user.Email)
	utils.Success(c, "Account verified successfully", nil)
}

// ResendOTPRequest represents the resend-OTP request
type ResendOTPRequest struct {
	Email string `json:"email" binding:"required,email"`
}

// ResendOTP issues a fresh OTP for an unverified account
func ResendOTP(c *gin.Context) {
	utils.LogInfo("ResendOTP called")
	var req ResendOTPRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.LogError("Invalid resend request: %v", err)
		utils.BadRequest(c, "Invalid input", err.Error())
		return
	}

	var user models.User
	if err := config.DB.Where("email = ?", req.Email).First(&user).Error; err != nil {
		utils.LogError("User not found for OTP resend: %s", req.Email)
		utils.NotFound(c, "User not found")
		return
	}

	if user.IsVerified {
		utils.BadRequest(c, "Account already verified", nil)
		return
	}

	otp := utils.GenerateOTP()

	user.OTP = otp
	user.OTPExpiresAt = time.Now().Add(15 * time.Minute)
	if err := config.DB.Save(&user).Error; err != nil {
		utils.LogError("Failed to save new OTP: %v", err)
		utils.InternalServerError(c, "Failed to resend OTP", err.Error())
		return
	}

	if err := utils.SendOTP(user.Email, otp); err != nil {
		utils.LogError("Failed to send OTP email to %s: %v", user.Email, err)
		utils.InternalServerError(c, "Failed to send OTP email", nil)
		return
	}

	utils.LogInfo("OTP resent to: %s", user.Email)
	utils.Success(c, "OTP sent", nil)
}

// LoginRequest represents the user login request
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// LoginUser handles customer login
func LoginUser(c *gin.Context) {
	utils.LogInfo("LoginUser called")
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.LogError("Invalid login request: %v", err)
		utils.BadRequest(c, "Invalid input", err.Error())
		return
	}

	var user models.User
	if err := config.DB.Where("email = ?", req.Email).First(&user).Error; err != nil {
		utils.LogError("User not found for email: %s", req.Email)
		utils.Unauthorized(c, "Invalid credentials")
		return
	}

	if !utils.CheckPassword(req.Password, user.Password) {
		utils.LogError("Invalid password for user: %s", user.Email)
		utils.Unauthorized(c, "Invalid credentials")
		return
	}

	if !user.IsVerified {
		utils.LogError("Unverified user attempted login: %s", user.Email)
		utils.Forbidden(c, "Please verify your email before logging in")
		return
	}

	if user.IsBlocked {
		utils.LogError("Blocked user attempted login: %s", user.Email)
		utils.Forbidden(c, "Account is blocked")
		return
	}

	user.LastLoginAt = time.Now()
	if err := config.DB.Save(&user).Error; err != nil {
		utils.LogError("Failed to update last login for user: %s: %v", user.Email, err)
	}

	tokenString, err := utils.GenerateToken(&user)
	if err != nil {
		utils.LogError("Failed to sign JWT token for user: %s: %v", user.Email, err)
		utils.InternalServerError(c, "Failed to generate token", err.Error())
		return
	}

	utils.LogInfo("User login successful: %s", user.Email)
	utils.Success(c, "Login successful", gin.H{
		"token": tokenString,
		"user": gin.H{
			"id":        user.ID,
			"email":     user.Email,
			"firstName": user.FirstName,
			"lastName":  user.LastName,
			"language":  user.Language,
		},
	})
}
