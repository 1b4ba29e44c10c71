package models

import (
	"gorm.io/gorm"
)

// CartItem is one line of a guest cart, keyed by the session cookie.
// Signed-in users get their session carts linked through UserID.
type CartItem struct {
	gorm.Model
	SessionID       string        `json:"-" gorm:"index;not null"`
	UserID          *uint         `json:"user_id,omitempty"`
	ProductID       uint          `json:"product_id"`
	Product         Product       `json:"product,omitempty" gorm:"foreignKey:ProductID"`
	VariantOptionID uint          `json:"variant_option_id"`
	VariantOption   VariantOption `json:"variant_option,omitempty" gorm:"foreignKey:VariantOptionID"`
	Quantity        int           `json:"quantity"`
	AddOns          []AddOn       `json:"add_ons,omitempty" gorm:"many2many:cart_item_add_ons"`
}
