package models

import (
	"time"
)

// Order status constants
const (
	OrderStatusPlaced         = "Placed"
	OrderStatusPreparing      = "Preparing"
	OrderStatusReady          = "Ready"
	OrderStatusOutForDelivery = "Out For Delivery"
	OrderStatusCompleted      = "Completed"
	OrderStatusCancelled      = "Cancelled"
)

// Service methods
const (
	ServiceDelivery     = "delivery"
	ServicePickup       = "pickup"
	ServiceInRestaurant = "inRestaurant"
)

// Payment methods
const (
	PaymentCash = "cash"
	PaymentCliq = "cliq"
)

type Order struct {
	ID             uint        `gorm:"primaryKey" json:"id"`
	OrderRef       string      `gorm:"uniqueIndex" json:"order_ref"`
	UserID         *uint       `json:"user_id,omitempty"`
	FirstName      string      `json:"first_name"`
	LastName       string      `json:"last_name"`
	Phone          string      `json:"phone"`
	Address        string      `json:"address"`
	City           string      `json:"city"`
	Country        string      `json:"country"`
	ServiceMethod  string      `json:"service_method"`
	TableNumber    string      `json:"table_number,omitempty"`
	DeliveryLat    float64     `json:"delivery_lat,omitempty"`
	DeliveryLng    float64     `json:"delivery_lng,omitempty"`
	PaymentMethod  string      `json:"payment_method"`
	BillNumber     string      `json:"bill_number,omitempty"`
	TransactionID  string      `json:"transaction_id,omitempty"`
	Language       string      `json:"language"`
	Subtotal       float64     `json:"subtotal"`
	OfferDiscount  float64     `json:"offer_discount"`
	BogoDiscount   float64     `json:"bogo_discount"`
	CouponDiscount float64     `json:"coupon_discount"`
	CouponCode     string      `json:"coupon_code,omitempty"`
	FinalTotal     float64     `json:"final_total"`
	Status         string      `json:"status"`
	CreatedAt      time.Time   `json:"created_at"`
	UpdatedAt      time.Time   `json:"updated_at"`
	Items          []OrderItem `json:"items" gorm:"foreignKey:OrderID"`
}

// OrderItem snapshots a priced cart line at checkout time so later catalog
// edits never change what the customer was charged.
type OrderItem struct {
	ID                uint    `gorm:"primaryKey" json:"id"`
	OrderID           uint    `json:"order_id" gorm:"index"`
	ProductID         uint    `json:"product_id"`
	ProductName       string  `json:"product_name"`
	VariantName       string  `json:"variant_name"`
	VariantValue      string  `json:"variant_value"`
	UnitLabel         string  `json:"unit_label,omitempty"`
	ImageURL          string  `json:"image_url,omitempty"`
	Quantity          int     `json:"quantity"`
	UnitPrice         float64 `json:"unit_price"`
	OriginalPrice     float64 `json:"original_price"`
	AddOnTotal        float64 `json:"add_on_total"`
	Discount          float64 `json:"discount"`
	Total             float64 `json:"total"`
	AppliedOfferID    *uint   `json:"applied_offer_id,omitempty"`
	AppliedOfferTitle string  `json:"applied_offer_title,omitempty"`
	AppliedOfferType  string  `json:"applied_offer_type,omitempty"`
}
