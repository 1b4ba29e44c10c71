package pricing

import (
	"fmt"
	"strings"

	"github.com/haddadin-dev/MazajMart/models"
)

// FieldError is a field-level validation failure suitable for rendering
// next to an admin form input.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// FieldErrors collects validation failures. A nil/empty slice means valid.
type FieldErrors []FieldError

// Error implements the error interface
func (e FieldErrors) Error() string {
	var parts []string
	for _, fe := range e {
		parts = append(parts, fmt.Sprintf("%s: %s", fe.Field, fe.Message))
	}
	return strings.Join(parts, "; ")
}

func (e FieldErrors) add(field, message string) FieldErrors {
	return append(e, FieldError{Field: field, Message: message})
}

// ValidateOfferSpec checks an inline variant offer spec before it is allowed
// to touch any option. The pricing functions themselves never raise these;
// they clamp defensively instead.
func ValidateOfferSpec(spec OfferSpec) FieldErrors {
	var errs FieldErrors

	switch spec.OfferType {
	case "", models.VariantOfferNone, models.VariantOfferPercentage, models.VariantOfferFixed:
	default:
		errs = errs.add("offer_type", fmt.Sprintf("unknown offer type %q", spec.OfferType))
	}

	if spec.OfferValue < 0 {
		errs = errs.add("offer_value", "offer value cannot be negative")
	}
	if spec.OfferType == models.VariantOfferPercentage && spec.OfferValue > 100 {
		errs = errs.add("offer_value", "percentage discount cannot exceed 100")
	}
	if spec.StartDate != nil && spec.EndDate != nil && spec.StartDate.After(*spec.EndDate) {
		errs = errs.add("start_date", "start date must not be after end date")
	}

	return errs
}

// ValidateOffer checks a standalone offer document before save.
func ValidateOffer(offer models.Offer) FieldErrors {
	var errs FieldErrors

	switch offer.Type {
	case models.OfferTypePercentage, models.OfferTypeFixed, models.OfferTypeBogo, models.OfferTypeCoupon:
	default:
		errs = errs.add("type", fmt.Sprintf("unknown offer type %q", offer.Type))
	}

	if offer.DiscountValue < 0 {
		errs = errs.add("discount_value", "discount value cannot be negative")
	}
	if offer.Type == models.OfferTypePercentage && offer.DiscountValue > 100 {
		errs = errs.add("discount_value", "percentage discount cannot exceed 100")
	}
	if offer.StartDate != nil && offer.EndDate != nil && offer.StartDate.After(*offer.EndDate) {
		errs = errs.add("start_date", "start date must not be after end date")
	}

	switch offer.Type {
	case models.OfferTypeBogo:
		if offer.BogoBuyProductID == 0 {
			errs = errs.add("bogo_buy_product_id", "buy product is required")
		}
		if offer.BogoGetProductID == 0 {
			errs = errs.add("bogo_get_product_id", "get product is required")
		}
		if offer.BogoBuyQuantity < 1 {
			errs = errs.add("bogo_buy_quantity", "buy quantity must be at least 1")
		}
		if offer.BogoGetQuantity < 1 {
			errs = errs.add("bogo_get_quantity", "get quantity must be at least 1")
		}
		switch offer.BogoGetType {
		case models.BogoGetFree, models.BogoGetPercentage, models.BogoGetFixed:
		default:
			errs = errs.add("bogo_get_type", fmt.Sprintf("unknown get-discount mode %q", offer.BogoGetType))
		}
		if offer.BogoGetType == models.BogoGetPercentage && offer.DiscountValue > 100 {
			errs = errs.add("discount_value", "percentage discount cannot exceed 100")
		}
	case models.OfferTypeCoupon:
		if strings.TrimSpace(offer.CouponCode) == "" {
			errs = errs.add("coupon_code", "coupon code is required")
		}
		switch offer.DiscountNature {
		case models.DiscountNaturePercentage, models.DiscountNatureFixed:
		default:
			errs = errs.add("discount_nature", fmt.Sprintf("unknown discount nature %q", offer.DiscountNature))
		}
		if offer.DiscountNature == models.DiscountNaturePercentage && offer.DiscountValue > 100 {
			errs = errs.add("discount_value", "percentage discount cannot exceed 100")
		}
	default:
		// Percentage and fixed offers need at least one target product;
		// only coupons may be site-wide.
		if len(offer.TargetProductIDs) == 0 {
			errs = errs.add("target_product_ids", "at least one target product is required")
		}
	}

	return errs
}

// ValidateCoupon checks a standalone coupon document before save.
func ValidateCoupon(coupon models.Coupon) FieldErrors {
	var errs FieldErrors

	if strings.TrimSpace(coupon.Code) == "" {
		errs = errs.add("code", "coupon code is required")
	}
	switch coupon.DiscountType {
	case models.DiscountNaturePercentage, models.DiscountNatureFixed:
	default:
		errs = errs.add("discount_type", fmt.Sprintf("unknown discount type %q", coupon.DiscountType))
	}
	if coupon.Value < 0 {
		errs = errs.add("value", "value cannot be negative")
	}
	if coupon.DiscountType == models.DiscountNaturePercentage && coupon.Value > 100 {
		errs = errs.add("value", "percentage discount cannot exceed 100")
	}
	if coupon.StartDate != nil && coupon.EndDate != nil && coupon.StartDate.After(*coupon.EndDate) {
		errs = errs.add("start_date", "start date must not be after end date")
	}

	return errs
}
