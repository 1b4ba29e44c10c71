package pricing

import (
	"testing"
	"time"

	"github.com/haddadin-dev/MazajMart/models"
	"github.com/stretchr/testify/assert"
)

var testNow = ts("2025-06-15T12:00:00Z")

func option(original float64, offerType string, value float64, start, end *time.Time) models.VariantOption {
	return models.VariantOption{
		ValueEN:        "Large",
		OriginalPrice:  original,
		Price:          original,
		OfferType:      offerType,
		OfferValue:     value,
		OfferStartDate: start,
		OfferEndDate:   end,
	}
}

func TestEffectivePriceNoOffer(t *testing.T) {
	opt := option(12.50, models.VariantOfferNone, 0, nil, nil)
	assert.Equal(t, 12.50, EffectivePrice(opt, testNow))
}

func TestEffectivePriceLegacyMissingOriginal(t *testing.T) {
	// Legacy records lack OriginalPrice; Price is the best-known original.
	opt := models.VariantOption{Price: 3.75, OfferType: models.VariantOfferNone}
	assert.Equal(t, 3.75, EffectivePrice(opt, testNow))

	// Even with a live offer, the discount falls back to Price.
	opt.OfferType = models.VariantOfferPercentage
	opt.OfferValue = 20
	assert.Equal(t, 3.00, EffectivePrice(opt, testNow))
}

func TestEffectivePricePercentage(t *testing.T) {
	opt := option(100, models.VariantOfferPercentage, 20, nil, nil)
	assert.Equal(t, 80.00, EffectivePrice(opt, testNow))
}

func TestEffectivePriceFixed(t *testing.T) {
	opt := option(10, models.VariantOfferFixed, 2.5, nil, nil)
	assert.Equal(t, 7.50, EffectivePrice(opt, testNow))
}

func TestEffectivePriceFixedClampsAtZero(t *testing.T) {
	opt := option(5, models.VariantOfferFixed, 10, nil, nil)
	assert.Equal(t, 0.00, EffectivePrice(opt, testNow))
}

func TestEffectivePriceRoundsHalfUp(t *testing.T) {
	// 9.99 - 15% = 8.4915 -> 8.49; 9.99 - 5% = 9.4905 -> 9.49
	opt := option(9.99, models.VariantOfferPercentage, 15, nil, nil)
	assert.Equal(t, 8.49, EffectivePrice(opt, testNow))

	// 0.125 fractional cent rounds up
	opt = option(0.25, models.VariantOfferPercentage, 50, nil, nil)
	assert.Equal(t, 0.13, EffectivePrice(opt, testNow))
}

func TestEffectivePriceWindowGating(t *testing.T) {
	start := tp("2025-06-01T00:00:00Z")
	end := tp("2025-06-30T23:59:59Z")
	opt := option(100, models.VariantOfferPercentage, 20, start, end)

	// Before the window and after the window the original price holds.
	assert.Equal(t, 100.00, EffectivePrice(opt, ts("2025-05-01T00:00:00Z")))
	assert.Equal(t, 100.00, EffectivePrice(opt, ts("2025-07-15T00:00:00Z")))

	// Anywhere inside it the discount applies.
	assert.Equal(t, 80.00, EffectivePrice(opt, ts("2025-06-01T00:00:00Z")))
	assert.Equal(t, 80.00, EffectivePrice(opt, ts("2025-06-15T12:00:00Z")))
	assert.Equal(t, 80.00, EffectivePrice(opt, ts("2025-06-30T23:59:59Z")))
}

func TestEffectivePriceExpiredOfferEqualsNoOffer(t *testing.T) {
	// An expired offer must price identically to a cleaned-up record.
	end := tp("2025-01-01T00:00:00Z")
	stale := option(40, models.VariantOfferFixed, 5, nil, end)
	clean := option(40, models.VariantOfferNone, 0, nil, nil)
	assert.Equal(t, EffectivePrice(clean, testNow), EffectivePrice(stale, testNow))
}

func TestEffectivePriceUnknownOfferTypeFallsBack(t *testing.T) {
	opt := option(30, "mystery", 50, nil, nil)
	assert.Equal(t, 30.00, EffectivePrice(opt, testNow))
}

func TestEffectivePriceDoesNotMutate(t *testing.T) {
	opt := option(100, models.VariantOfferPercentage, 20, nil, nil)
	before := opt
	_ = EffectivePrice(opt, testNow)
	assert.Equal(t, before, opt)
}

func TestOfferStatus(t *testing.T) {
	opt := option(10, models.VariantOfferNone, 0, nil, nil)
	assert.Equal(t, WindowStatus(""), OfferStatus(opt, testNow))

	opt = option(10, models.VariantOfferPercentage, 10, tp("2030-01-01T00:00:00Z"), nil)
	assert.Equal(t, WindowScheduled, OfferStatus(opt, testNow))
}

func TestOfferLabel(t *testing.T) {
	opt := models.VariantOption{OriginalPrice: 100, Price: 80}
	assert.Equal(t, "20% off", OfferLabel(opt))

	// 33.33% rounds to 33
	opt = models.VariantOption{OriginalPrice: 30, Price: 20}
	assert.Equal(t, "33% off", OfferLabel(opt))

	// No discount, no label
	opt = models.VariantOption{OriginalPrice: 30, Price: 30}
	assert.Equal(t, "", OfferLabel(opt))

	// Missing original, no label
	opt = models.VariantOption{Price: 30}
	assert.Equal(t, "", OfferLabel(opt))
}
