package utils

import (
	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const (
	sessionCartKey   = "cart_session_id"
	sessionCouponKey = "applied_coupon_code"
)

// CartSessionID returns the cart identifier stored in the session cookie,
// creating one for first-time visitors.
func CartSessionID(c *gin.Context) string {
	session := sessions.Default(c)
	if id, ok := session.Get(sessionCartKey).(string); ok && id != "" {
		return id
	}
	id := uuid.New().String()
	session.Set(sessionCartKey, id)
	if err := session.Save(); err != nil {
		LogError("Failed to save cart session: %v", err)
	}
	return id
}

// AppliedCouponCode returns the coupon code the shopper applied this session
func AppliedCouponCode(c *gin.Context) string {
	session := sessions.Default(c)
	if code, ok := session.Get(sessionCouponKey).(string); ok {
		return code
	}
	return ""
}

// SetAppliedCouponCode stores (or clears, with "") the session coupon code
func SetAppliedCouponCode(c *gin.Context, code string) error {
	session := sessions.Default(c)
	if code == "" {
		session.Delete(sessionCouponKey)
	} else {
		session.Set(sessionCouponKey, code)
	}
	return session.Save()
}
