package pricing

import (
	"testing"

	"github.com/haddadin-dev/MazajMart/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func standaloneOffer(id uint, offerType string, value float64, targets ...uint) models.Offer {
	o := models.Offer{
		TitleEN:          "Summer Deal",
		Type:             offerType,
		DiscountValue:    value,
		TargetProductIDs: targets,
		IsActive:         true,
		StartDate:        tp("2025-06-01T00:00:00Z"),
		EndDate:          tp("2025-06-30T00:00:00Z"),
	}
	o.ID = id
	return o
}

func line(productID uint, price float64, qty int) CartLine {
	return CartLine{
		ProductID: productID,
		Option:    models.VariantOption{Price: price, OriginalPrice: price},
		Quantity:  qty,
	}
}

func TestEvaluateLineNoCandidates(t *testing.T) {
	eval := EvaluateLine(line(1, 10.00, 2), nil, testNow)
	assert.Equal(t, 10.00, eval.UnitPrice)
	assert.Nil(t, eval.Applied)
	assert.Equal(t, 0.00, eval.Savings)
}

func TestEvaluateLinePicksBestDeal(t *testing.T) {
	offers := []models.Offer{
		standaloneOffer(1, models.OfferTypePercentage, 10, 7), // 20 -> 18
		standaloneOffer(2, models.OfferTypeFixed, 5, 7),       // 20 -> 15
	}
	eval := EvaluateLine(line(7, 20.00, 1), offers, testNow)

	require.NotNil(t, eval.Applied)
	assert.Equal(t, uint(2), eval.Applied.OfferID)
	assert.Equal(t, 15.00, eval.UnitPrice)
	assert.Equal(t, 5.00, eval.Savings)
}

func TestEvaluateLineTieBreakPrefersPercentage(t *testing.T) {
	// Base 20.00: 10% off -> 18.00, fixed 2.00 off -> 18.00. The tie goes
	// to the percentage offer.
	offers := []models.Offer{
		standaloneOffer(1, models.OfferTypeFixed, 2, 7),
		standaloneOffer(2, models.OfferTypePercentage, 10, 7),
	}
	eval := EvaluateLine(line(7, 20.00, 1), offers, testNow)

	require.NotNil(t, eval.Applied)
	assert.Equal(t, uint(2), eval.Applied.OfferID)
	assert.Equal(t, models.OfferTypePercentage, eval.Applied.Type)
	assert.Equal(t, 18.00, eval.UnitPrice)
}

func TestEvaluateLineTieBreakEarliestStart(t *testing.T) {
	a := standaloneOffer(1, models.OfferTypePercentage, 10, 7)
	a.StartDate = tp("2025-06-10T00:00:00Z")
	b := standaloneOffer(2, models.OfferTypePercentage, 10, 7)
	b.StartDate = tp("2025-06-05T00:00:00Z")

	eval := EvaluateLine(line(7, 20.00, 1), []models.Offer{a, b}, testNow)
	require.NotNil(t, eval.Applied)
	assert.Equal(t, uint(2), eval.Applied.OfferID)
}

func TestEvaluateLineIgnoresIneligibleOffers(t *testing.T) {
	inactive := standaloneOffer(1, models.OfferTypePercentage, 50, 7)
	inactive.IsActive = false

	expired := standaloneOffer(2, models.OfferTypePercentage, 50, 7)
	expired.EndDate = tp("2025-01-01T00:00:00Z")

	wrongProduct := standaloneOffer(3, models.OfferTypePercentage, 50, 99)

	bogo := standaloneOffer(4, models.OfferTypeBogo, 50, 7)

	eval := EvaluateLine(line(7, 20.00, 1), []models.Offer{inactive, expired, wrongProduct, bogo}, testNow)
	assert.Nil(t, eval.Applied)
	assert.Equal(t, 20.00, eval.UnitPrice)
}

func TestEvaluateLineStacksOnInlineDiscount(t *testing.T) {
	// Inline 20% brings 50.00 down to 40.00; the standalone 10% applies to
	// that baseline, not to the original.
	cartLine := CartLine{
		ProductID: 7,
		Option: models.VariantOption{
			OriginalPrice: 50.00,
			Price:         40.00,
			OfferType:     models.VariantOfferPercentage,
			OfferValue:    20,
		},
		Quantity: 1,
	}
	offers := []models.Offer{standaloneOffer(1, models.OfferTypePercentage, 10, 7)}

	eval := EvaluateLine(cartLine, offers, testNow)
	require.NotNil(t, eval.Applied)
	assert.Equal(t, 36.00, eval.UnitPrice)
	// Savings measured against the stored original.
	assert.Equal(t, 14.00, eval.Savings)
}

func TestEvaluateLineSavingsReflectInlineOnly(t *testing.T) {
	cartLine := CartLine{
		ProductID: 7,
		Option: models.VariantOption{
			OriginalPrice: 50.00,
			Price:         40.00,
			OfferType:     models.VariantOfferPercentage,
			OfferValue:    20,
		},
		Quantity: 1,
	}
	eval := EvaluateLine(cartLine, nil, testNow)
	assert.Nil(t, eval.Applied)
	assert.Equal(t, 40.00, eval.UnitPrice)
	assert.Equal(t, 10.00, eval.Savings)
}

func TestEvaluateLineClampsAtZero(t *testing.T) {
	offers := []models.Offer{standaloneOffer(1, models.OfferTypeFixed, 100, 7)}
	eval := EvaluateLine(line(7, 8.00, 1), offers, testNow)
	assert.Equal(t, 0.00, eval.UnitPrice)
	assert.Equal(t, 8.00, eval.Savings)
}

func TestApplyBogoCompleteMultiples(t *testing.T) {
	// Buy 2 of product 1, get 1 of product 2 free. Cart holds 5 buy units:
	// exactly 2 complete multiples, so 2 get units become free.
	offer := models.Offer{
		Type:             models.OfferTypeBogo,
		IsActive:         true,
		BogoBuyProductID: 1,
		BogoBuyQuantity:  2,
		BogoGetProductID: 2,
		BogoGetQuantity:  1,
		BogoGetType:      models.BogoGetFree,
	}
	cart := []CartLine{
		line(1, 4.00, 5),
		line(2, 3.00, 4),
	}

	res := ApplyBogo(cart, offer, testNow)
	assert.Equal(t, 2, res.Applications)
	require.Len(t, res.Lines, 1)
	assert.Equal(t, 1, res.Lines[0].LineIndex)
	assert.Equal(t, 2, res.Lines[0].Units)
	assert.Equal(t, 3.00, res.Lines[0].DiscountPerUnit)
	assert.Equal(t, 6.00, res.DiscountTotal)
}

func TestApplyBogoCappedByGetQuantityInCart(t *testing.T) {
	offer := models.Offer{
		Type:             models.OfferTypeBogo,
		IsActive:         true,
		BogoBuyProductID: 1,
		BogoBuyQuantity:  1,
		BogoGetProductID: 2,
		BogoGetQuantity:  2,
		BogoGetType:      models.BogoGetFree,
	}
	// 10 buy units unlock 20 get units, but only 3 are in the cart.
	cart := []CartLine{
		line(1, 4.00, 10),
		line(2, 5.00, 3),
	}

	res := ApplyBogo(cart, offer, testNow)
	require.Len(t, res.Lines, 1)
	assert.Equal(t, 3, res.Lines[0].Units)
	assert.Equal(t, 15.00, res.DiscountTotal)
}

func TestApplyBogoPercentageGetDiscount(t *testing.T) {
	offer := models.Offer{
		Type:             models.OfferTypeBogo,
		IsActive:         true,
		DiscountValue:    50,
		BogoBuyProductID: 1,
		BogoBuyQuantity:  2,
		BogoGetProductID: 2,
		BogoGetQuantity:  1,
		BogoGetType:      models.BogoGetPercentage,
	}
	cart := []CartLine{
		line(1, 4.00, 2),
		line(2, 6.00, 1),
	}

	res := ApplyBogo(cart, offer, testNow)
	assert.Equal(t, 3.00, res.DiscountTotal)
}

func TestApplyBogoNotTriggered(t *testing.T) {
	offer := models.Offer{
		Type:             models.OfferTypeBogo,
		IsActive:         true,
		BogoBuyProductID: 1,
		BogoBuyQuantity:  3,
		BogoGetProductID: 2,
		BogoGetQuantity:  1,
		BogoGetType:      models.BogoGetFree,
	}
	cart := []CartLine{
		line(1, 4.00, 2), // one short of the buy quantity
		line(2, 3.00, 1),
	}

	res := ApplyBogo(cart, offer, testNow)
	assert.Zero(t, res.Applications)
	assert.Zero(t, res.DiscountTotal)
	assert.Empty(t, res.Lines)
}

func TestApplyBogoExpiredWindow(t *testing.T) {
	offer := models.Offer{
		Type:             models.OfferTypeBogo,
		IsActive:         true,
		EndDate:          tp("2025-01-01T00:00:00Z"),
		BogoBuyProductID: 1,
		BogoBuyQuantity:  1,
		BogoGetProductID: 2,
		BogoGetQuantity:  1,
		BogoGetType:      models.BogoGetFree,
	}
	cart := []CartLine{line(1, 4.00, 2), line(2, 3.00, 1)}

	res := ApplyBogo(cart, offer, testNow)
	assert.Zero(t, res.DiscountTotal)
}

func TestApplyCouponSiteWide(t *testing.T) {
	coupon := models.Coupon{
		Code:         "WELCOME10",
		DiscountType: models.DiscountNaturePercentage,
		Value:        10,
		Active:       true,
		StartDate:    tp("2025-06-01T00:00:00Z"),
		EndDate:      tp("2025-06-30T00:00:00Z"),
	}
	cart := []CartLine{
		line(1, 10.00, 2), // 2.00 off
		line(2, 5.00, 1),  // 0.50 off
	}

	res, err := ApplyCoupon(cart, coupon, testNow)
	require.NoError(t, err)
	assert.Equal(t, []int{0, 1}, res.EligibleLines)
	assert.Equal(t, 2.50, res.DiscountTotal)
}

func TestApplyCouponTargeted(t *testing.T) {
	coupon := models.Coupon{
		Code:             "DAIRY5",
		DiscountType:     models.DiscountNatureFixed,
		Value:            1,
		TargetProductIDs: []uint{2},
		Active:           true,
	}
	cart := []CartLine{
		line(1, 10.00, 2),
		line(2, 5.00, 3),
	}

	res, err := ApplyCoupon(cart, coupon, testNow)
	require.NoError(t, err)
	assert.Equal(t, []int{1}, res.EligibleLines)
	assert.Equal(t, 3.00, res.DiscountTotal)
}

func TestApplyCouponInactiveOrOutOfWindow(t *testing.T) {
	cart := []CartLine{line(1, 10.00, 1)}

	inactive := models.Coupon{Code: "X", DiscountType: models.DiscountNatureFixed, Value: 1}
	_, err := ApplyCoupon(cart, inactive, testNow)
	assert.ErrorIs(t, err, ErrCouponInactive)

	scheduled := models.Coupon{Code: "X", DiscountType: models.DiscountNatureFixed, Value: 1, Active: true, StartDate: tp("2030-01-01T00:00:00Z")}
	_, err = ApplyCoupon(cart, scheduled, testNow)
	assert.ErrorIs(t, err, ErrCouponNotStarted)

	expired := models.Coupon{Code: "X", DiscountType: models.DiscountNatureFixed, Value: 1, Active: true, EndDate: tp("2025-01-01T00:00:00Z")}
	_, err = ApplyCoupon(cart, expired, testNow)
	assert.ErrorIs(t, err, ErrCouponExpired)
}
