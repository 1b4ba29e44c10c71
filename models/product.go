package models

import (
	"time"

	"gorm.io/gorm"
)

// Inline variant offer types
const (
	VariantOfferNone       = "none"
	VariantOfferPercentage = "percentage"
	VariantOfferFixed      = "fixed"
)

// Product represents a storefront product with bilingual labels
type Product struct {
	gorm.Model
	NameEN             string         `json:"name_en"`
	NameAR             string         `json:"name_ar"`
	NameLower          string         `json:"-" gorm:"index"`
	NameARLower        string         `json:"-" gorm:"index"`
	ShortDescriptionEN string         `json:"short_description_en"`
	ShortDescriptionAR string         `json:"short_description_ar"`
	LongDescriptionEN  string         `json:"long_description_en"`
	LongDescriptionAR  string         `json:"long_description_ar"`
	Image              string         `json:"image"`
	ManufacturedAt     string         `json:"manufactured_at,omitempty"`
	Expiration         string         `json:"expiration,omitempty"`
	IsOffer            bool           `json:"is_offer" gorm:"default:false"`
	IsActive           bool           `json:"is_active" gorm:"default:true"`
	Categories         []Category     `json:"categories,omitempty" gorm:"many2many:product_categories"`
	AddOns             []AddOn        `json:"add_ons,omitempty" gorm:"many2many:product_add_ons"`
	Variants           []VariantGroup `json:"variants" gorm:"foreignKey:ProductID;constraint:OnDelete:CASCADE"`
}

// VariantGroup is a named axis of choice for a product, e.g. "Size".
// Position preserves insertion order; the first group is the primary
// display variant.
type VariantGroup struct {
	gorm.Model
	ProductID uint            `json:"product_id" gorm:"index"`
	NameEN    string          `json:"name_en"`
	NameAR    string          `json:"name_ar"`
	Position  int             `json:"position"`
	Options   []VariantOption `json:"options" gorm:"foreignKey:VariantGroupID;constraint:OnDelete:CASCADE"`
}

// VariantOption is the priceable unit. Price is derived: whenever the
// inline offer fields change, Price must be recomputed before persisting.
type VariantOption struct {
	gorm.Model
	VariantGroupID uint       `json:"variant_group_id" gorm:"index"`
	Position       int        `json:"position"`
	ValueEN        string     `json:"value_en"`
	ValueAR        string     `json:"value_ar"`
	UnitLabelEN    string     `json:"unit_label_en" gorm:"default:'piece'"`
	UnitLabelAR    string     `json:"unit_label_ar"`
	ImageURL       string     `json:"image_url"`
	Price          float64    `json:"price"`
	OriginalPrice  float64    `json:"original_price"`
	Quantity       int        `json:"quantity"`
	OfferType      string     `json:"offer_type" gorm:"default:'none'"`
	OfferValue     float64    `json:"offer_value"`
	OfferStartDate *time.Time `json:"offer_start_date,omitempty"`
	OfferEndDate   *time.Time `json:"offer_end_date,omitempty"`
}
