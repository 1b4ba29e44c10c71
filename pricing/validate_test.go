package pricing

import (
	"testing"

	"github.com/haddadin-dev/MazajMart/models"
	"github.com/stretchr/testify/assert"
)

func fields(errs FieldErrors) []string {
	var out []string
	for _, e := range errs {
		out = append(out, e.Field)
	}
	return out
}

func TestValidateOfferSpecValid(t *testing.T) {
	assert.Empty(t, ValidateOfferSpec(OfferSpec{OfferType: models.VariantOfferPercentage, OfferValue: 15}))
	assert.Empty(t, ValidateOfferSpec(OfferSpec{OfferType: models.VariantOfferFixed, OfferValue: 2.5}))
	assert.Empty(t, ValidateOfferSpec(OfferSpec{OfferType: models.VariantOfferNone}))
}

func TestValidateOfferSpecRejects(t *testing.T) {
	errs := ValidateOfferSpec(OfferSpec{OfferType: models.VariantOfferPercentage, OfferValue: 150})
	assert.NotEmpty(t, errs)
	assert.Contains(t, fields(errs), "offer_value")

	errs = ValidateOfferSpec(OfferSpec{OfferType: models.VariantOfferFixed, OfferValue: -3})
	assert.Contains(t, fields(errs), "offer_value")

	errs = ValidateOfferSpec(OfferSpec{OfferType: "bargain"})
	assert.Contains(t, fields(errs), "offer_type")

	errs = ValidateOfferSpec(OfferSpec{
		OfferType:  models.VariantOfferFixed,
		OfferValue: 1,
		StartDate:  tp("2025-07-01T00:00:00Z"),
		EndDate:    tp("2025-06-01T00:00:00Z"),
	})
	assert.Contains(t, fields(errs), "start_date")
}

func TestValidateOfferSpecErrorMessage(t *testing.T) {
	errs := ValidateOfferSpec(OfferSpec{OfferType: models.VariantOfferPercentage, OfferValue: 150})
	assert.Contains(t, errs.Error(), "offer_value")
}

func TestValidateOfferPercentage(t *testing.T) {
	offer := models.Offer{
		Type:             models.OfferTypePercentage,
		DiscountValue:    20,
		TargetProductIDs: []uint{1},
	}
	assert.Empty(t, ValidateOffer(offer))

	offer.DiscountValue = 120
	assert.Contains(t, fields(ValidateOffer(offer)), "discount_value")

	offer.DiscountValue = 20
	offer.TargetProductIDs = nil
	assert.Contains(t, fields(ValidateOffer(offer)), "target_product_ids")
}

func TestValidateOfferBogo(t *testing.T) {
	offer := models.Offer{
		Type:             models.OfferTypeBogo,
		BogoBuyProductID: 1,
		BogoBuyQuantity:  2,
		BogoGetProductID: 2,
		BogoGetQuantity:  1,
		BogoGetType:      models.BogoGetFree,
	}
	assert.Empty(t, ValidateOffer(offer))

	missing := offer
	missing.BogoGetProductID = 0
	assert.Contains(t, fields(ValidateOffer(missing)), "bogo_get_product_id")

	badQty := offer
	badQty.BogoBuyQuantity = 0
	assert.Contains(t, fields(ValidateOffer(badQty)), "bogo_buy_quantity")

	badMode := offer
	badMode.BogoGetType = "half-free"
	assert.Contains(t, fields(ValidateOffer(badMode)), "bogo_get_type")
}

func TestValidateOfferCoupon(t *testing.T) {
	offer := models.Offer{
		Type:           models.OfferTypeCoupon,
		CouponCode:     "RAMADAN15",
		DiscountNature: models.DiscountNaturePercentage,
		DiscountValue:  15,
	}
	// Coupons may be site-wide: no target products required.
	assert.Empty(t, ValidateOffer(offer))

	offer.CouponCode = "  "
	assert.Contains(t, fields(ValidateOffer(offer)), "coupon_code")
}

func TestValidateCoupon(t *testing.T) {
	coupon := models.Coupon{Code: "WELCOME10", DiscountType: models.DiscountNaturePercentage, Value: 10}
	assert.Empty(t, ValidateCoupon(coupon))

	coupon.Value = 110
	assert.Contains(t, fields(ValidateCoupon(coupon)), "value")

	coupon = models.Coupon{Code: "", DiscountType: models.DiscountNatureFixed, Value: 5}
	assert.Contains(t, fields(ValidateCoupon(coupon)), "code")

	coupon = models.Coupon{Code: "X", DiscountType: "points", Value: 5}
	assert.Contains(t, fields(ValidateCoupon(coupon)), "discount_type")
}
