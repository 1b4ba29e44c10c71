package models

import (
	"time"

	"gorm.io/gorm"
)

// Coupon is a code-activated discount. An empty TargetProductIDs list makes
// the coupon site-wide.
type Coupon struct {
	ID               uint           `gorm:"primaryKey" json:"id"`
	Code             string         `gorm:"uniqueIndex" json:"code"`
	DiscountType     string         `json:"discount_type"` // "percentage" or "fixed"
	Value            float64        `json:"value"`
	TargetProductIDs []uint         `json:"target_product_ids" gorm:"serializer:json"`
	Active           bool           `json:"active" gorm:"default:true"`
	StartDate        *time.Time     `json:"start_date,omitempty"`
	EndDate          *time.Time     `json:"end_date,omitempty"`
	CreatedAt        time.Time      `json:"created_at"`
	UpdatedAt        time.Time      `json:"updated_at"`
	DeletedAt        gorm.DeletedAt `gorm:"index" json:"-"`
}
