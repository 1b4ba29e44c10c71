package models

import (
	"time"

	"gorm.io/gorm"
)

// Standalone offer types
const (
	OfferTypePercentage = "percentage_discount"
	OfferTypeFixed      = "fixed_discount"
	OfferTypeBogo       = "bogo"
	OfferTypeCoupon     = "coupon"
)

// BOGO get-discount modes
const (
	BogoGetFree       = "free"
	BogoGetPercentage = "percentage_discount"
	BogoGetFixed      = "fixed_discount"
)

// Discount natures for coupon-type offers
const (
	DiscountNaturePercentage = "percentage"
	DiscountNatureFixed      = "fixed"
)

// Offer is an administrator-defined, time-boxed promotion targeting one or
// more products. IsActive is a manual kill-switch independent of the time
// window. An empty TargetProductIDs list means "all products" for coupon-type
// offers only.
type Offer struct {
	gorm.Model
	TitleEN          string     `json:"title_en"`
	TitleAR          string     `json:"title_ar"`
	DescriptionEN    string     `json:"description_en"`
	DescriptionAR    string     `json:"description_ar"`
	Type             string     `json:"type" gorm:"index"`
	DiscountValue    float64    `json:"discount_value"`
	TargetProductIDs []uint     `json:"target_product_ids" gorm:"serializer:json"`
	StartDate        *time.Time `json:"start_date,omitempty"`
	EndDate          *time.Time `json:"end_date,omitempty"`
	IsActive         bool       `json:"is_active" gorm:"default:true"`

	// BOGO fields, used only when Type == "bogo"
	BogoBuyProductID uint   `json:"bogo_buy_product_id,omitempty"`
	BogoBuyQuantity  int    `json:"bogo_buy_quantity,omitempty"`
	BogoGetProductID uint   `json:"bogo_get_product_id,omitempty"`
	BogoGetQuantity  int    `json:"bogo_get_quantity,omitempty"`
	BogoGetType      string `json:"bogo_get_type,omitempty"`

	// Coupon fields, used only when Type == "coupon"
	CouponCode     string `json:"coupon_code,omitempty" gorm:"index"`
	DiscountNature string `json:"discount_nature,omitempty"`
}
