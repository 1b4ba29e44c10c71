package models

import (
	"gorm.io/gorm"
)

// Category groups products for browsing, e.g. "Dairy" or "Sweets"
type Category struct {
	gorm.Model
	NameEN   string    `json:"name_en"`
	NameAR   string    `json:"name_ar"`
	Image    string    `json:"image"`
	Blocked  bool      `json:"blocked" gorm:"default:false"`
	Products []Product `json:"products,omitempty" gorm:"many2many:product_categories"`
}

// AddOn is an optional paid extra attachable to products, e.g. "Extra cheese"
type AddOn struct {
	gorm.Model
	NameEN     string  `json:"name_en"`
	NameAR     string  `json:"name_ar"`
	ExtraPrice float64 `json:"extra_price"`
}
