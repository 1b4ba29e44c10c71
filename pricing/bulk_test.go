package pricing

import (
	"testing"

	"github.com/haddadin-dev/MazajMart/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleProduct() models.Product {
	return models.Product{
		NameEN: "Baklava Box",
		Variants: []models.VariantGroup{
			{
				NameEN:   "Size",
				Position: 0,
				Options: []models.VariantOption{
					{ValueEN: "Small", Price: 6.00, Quantity: 10},
					{ValueEN: "Large", Price: 11.00, OriginalPrice: 12.00, Quantity: 4},
				},
			},
			{
				NameEN:   "Filling",
				Position: 1,
				Options: []models.VariantOption{
					{ValueEN: "Pistachio", Price: 14.00, Quantity: 7},
				},
			},
		},
	}
}

func TestApplyToAllOptionsPercentage(t *testing.T) {
	spec := OfferSpec{OfferType: models.VariantOfferPercentage, OfferValue: 25}
	got := ApplyToAllOptions(sampleProduct(), spec, testNow)

	require.Len(t, got.Variants, 2)
	small := got.Variants[0].Options[0]
	large := got.Variants[0].Options[1]
	pistachio := got.Variants[1].Options[0]

	// First-ever discount captures the current price as original.
	assert.Equal(t, 6.00, small.OriginalPrice)
	assert.Equal(t, 4.50, small.Price)

	// An existing original is preserved, not overwritten.
	assert.Equal(t, 12.00, large.OriginalPrice)
	assert.Equal(t, 9.00, large.Price)

	assert.Equal(t, 10.50, pistachio.Price)
	assert.Equal(t, models.VariantOfferPercentage, pistachio.OfferType)
	assert.True(t, got.IsOffer)
}

func TestApplyToAllOptionsIsIdempotent(t *testing.T) {
	spec := OfferSpec{
		OfferType:  models.VariantOfferFixed,
		OfferValue: 2,
		StartDate:  tp("2025-06-01T00:00:00Z"),
		EndDate:    tp("2025-06-30T00:00:00Z"),
	}
	once := ApplyToAllOptions(sampleProduct(), spec, testNow)
	twice := ApplyToAllOptions(once, spec, testNow)
	assert.Equal(t, once, twice)
}

func TestApplyToAllOptionsDoesNotMutateInput(t *testing.T) {
	product := sampleProduct()
	_ = ApplyToAllOptions(product, OfferSpec{OfferType: models.VariantOfferPercentage, OfferValue: 50}, testNow)
	assert.Equal(t, sampleProduct(), product)
}

func TestApplyToAllOptionsScheduledOfferKeepsOriginalPrice(t *testing.T) {
	spec := OfferSpec{
		OfferType:  models.VariantOfferPercentage,
		OfferValue: 30,
		StartDate:  tp("2030-01-01T00:00:00Z"),
	}
	got := ApplyToAllOptions(sampleProduct(), spec, testNow)

	// Offer fields are stamped but the price stays at the original until
	// the window opens, and the product is not flagged as on offer yet.
	small := got.Variants[0].Options[0]
	assert.Equal(t, models.VariantOfferPercentage, small.OfferType)
	assert.Equal(t, 6.00, small.Price)
	assert.False(t, got.IsOffer)
}

func TestApplyToAllOptionsOfferFlagFollowsWindow(t *testing.T) {
	expired := OfferSpec{
		OfferType:  models.VariantOfferPercentage,
		OfferValue: 10,
		EndDate:    tp("2020-01-01T00:00:00Z"),
	}
	got := ApplyToAllOptions(sampleProduct(), expired, testNow)
	assert.False(t, got.IsOffer)

	// No dates means the offer is live immediately.
	dateless := OfferSpec{OfferType: models.VariantOfferFixed, OfferValue: 1}
	got = ApplyToAllOptions(sampleProduct(), dateless, testNow)
	assert.True(t, got.IsOffer)
}

func TestApplyToAllOptionsClear(t *testing.T) {
	discounted := ApplyToAllOptions(sampleProduct(), OfferSpec{OfferType: models.VariantOfferPercentage, OfferValue: 50}, testNow)
	cleared := ApplyToAllOptions(discounted, OfferSpec{OfferType: models.VariantOfferNone}, testNow)

	for _, group := range cleared.Variants {
		for _, opt := range group.Options {
			assert.Equal(t, models.VariantOfferNone, opt.OfferType)
			assert.Zero(t, opt.OfferValue)
			assert.Nil(t, opt.OfferStartDate)
			assert.Nil(t, opt.OfferEndDate)
			assert.Equal(t, opt.OriginalPrice, opt.Price)
		}
	}
	assert.False(t, cleared.IsOffer)
}

func TestApplyToAllOptionsNeverNegative(t *testing.T) {
	got := ApplyToAllOptions(sampleProduct(), OfferSpec{OfferType: models.VariantOfferFixed, OfferValue: 1000}, testNow)
	for _, group := range got.Variants {
		for _, opt := range group.Options {
			assert.GreaterOrEqual(t, opt.Price, 0.00)
		}
	}
}
