package utils

import (
	"time"

	"github.com/haddadin-dev/MazajMart/config"
	"github.com/haddadin-dev/MazajMart/models"
	"github.com/haddadin-dev/MazajMart/pricing"
)

// CartLineDetail pairs a stored cart row with its evaluated pricing.
type CartLineDetail struct {
	Item       models.CartItem    `json:"item"`
	Evaluation pricing.Evaluation `json:"evaluation"`
	AddOnUnit  float64            `json:"add_on_unit"`
	LineTotal  float64            `json:"line_total"`
}

// CartSummary is the fully priced view of a session cart. All amounts are
// computed against a single instant so a promotion cannot flicker between
// lines of the same pass.
type CartSummary struct {
	Details        []CartLineDetail `json:"details"`
	Subtotal       float64          `json:"subtotal"`
	OfferDiscount  float64          `json:"offer_discount"`
	BogoDiscount   float64          `json:"bogo_discount"`
	CouponDiscount float64          `json:"coupon_discount"`
	CouponCode     string           `json:"coupon_code,omitempty"`
	CouponError    string           `json:"coupon_error,omitempty"`
	AddOnTotal     float64          `json:"add_on_total"`
	FinalTotal     float64          `json:"final_total"`
}

// GetCartSummary loads a session cart and prices it: inline variant offers
// through the baseline, standalone offers per line, BOGO and coupon across
// the cart. couponCode may be empty.
func GetCartSummary(sessionID, couponCode string, now time.Time) (*CartSummary, error) {
	db := config.DB

	var items []models.CartItem
	if err := db.Preload("Product").Preload("VariantOption").Preload("AddOns").
		Where("session_id = ?", sessionID).Order("id").Find(&items).Error; err != nil {
		return nil, WrapError(err, "failed to fetch cart items")
	}

	var offers []models.Offer
	if err := db.Where("is_active = ?", true).Find(&offers).Error; err != nil {
		return nil, WrapError(err, "failed to fetch offers")
	}

	lines := make([]pricing.CartLine, len(items))
	for i, item := range items {
		lines[i] = pricing.CartLine{
			ProductID: item.ProductID,
			Option:    item.VariantOption,
			Quantity:  item.Quantity,
		}
	}

	summary := &CartSummary{}
	for i, item := range items {
		eval := pricing.EvaluateLine(lines[i], offers, now)

		var addOnUnit float64
		for _, addOn := range item.AddOns {
			addOnUnit += addOn.ExtraPrice
		}

		lineTotal := pricing.Round((eval.UnitPrice + addOnUnit) * float64(item.Quantity))
		reference := pricing.OriginalPriceOf(item.VariantOption)

		summary.Details = append(summary.Details, CartLineDetail{
			Item:       item,
			Evaluation: eval,
			AddOnUnit:  addOnUnit,
			LineTotal:  lineTotal,
		})
		summary.Subtotal += reference * float64(item.Quantity)
		summary.OfferDiscount += eval.Savings * float64(item.Quantity)
		summary.AddOnTotal += addOnUnit * float64(item.Quantity)
	}

	for _, offer := range offers {
		if offer.Type != models.OfferTypeBogo {
			continue
		}
		res := pricing.ApplyBogo(lines, offer, now)
		summary.BogoDiscount += res.DiscountTotal
	}

	if couponCode != "" {
		var coupon models.Coupon
		if err := db.Where("code = ?", couponCode).First(&coupon).Error; err != nil {
			summary.CouponError = "Coupon not found"
		} else {
			res, err := pricing.ApplyCoupon(lines, coupon, now)
			if err != nil {
				summary.CouponError = err.Error()
			} else {
				summary.CouponCode = coupon.Code
				summary.CouponDiscount = res.DiscountTotal
			}
		}
	}

	summary.Subtotal = pricing.Round(summary.Subtotal)
	summary.OfferDiscount = pricing.Round(summary.OfferDiscount)
	summary.AddOnTotal = pricing.Round(summary.AddOnTotal)
	summary.FinalTotal = pricing.RoundClamped(
		summary.Subtotal + summary.AddOnTotal - summary.OfferDiscount - summary.BogoDiscount - summary.CouponDiscount,
	)
	return summary, nil
}
