package controllers

import (
	"testing"
	"time"

	"github.com/haddadin-dev/MazajMart/models"
	"github.com/stretchr/testify/assert"
)

var viewNow = time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)

func discountedOption(start, end *time.Time) models.VariantOption {
	return models.VariantOption{
		ValueEN:        "500g",
		OriginalPrice:  10.00,
		Price:          8.00,
		Quantity:       5,
		OfferType:      models.VariantOfferPercentage,
		OfferValue:     20,
		OfferStartDate: start,
		OfferEndDate:   end,
	}
}

func TestOptionViewDatelessOfferShowsBadge(t *testing.T) {
	opt := discountedOption(nil, nil)

	view := optionView(&opt, "en", viewNow)

	// An offer with no dates is live, so the badge and strikethrough
	// original must accompany the discounted price.
	assert.Equal(t, 8.00, view["price"])
	assert.Equal(t, 10.00, view["original_price"])
	assert.Equal(t, "20% off", view["offer_label"])
	assert.Equal(t, "no_window", view["offer_status"])
}

func TestOptionViewScheduledOfferHidesBadge(t *testing.T) {
	start := viewNow.Add(time.Hour)
	opt := discountedOption(&start, nil)

	view := optionView(&opt, "en", viewNow)

	assert.Equal(t, 10.00, view["price"])
	assert.NotContains(t, view, "offer_label")
	assert.NotContains(t, view, "original_price")
	assert.Equal(t, "scheduled", view["offer_status"])
}

func TestProductHasLiveOffer(t *testing.T) {
	past := viewNow.Add(-time.Hour)
	future := viewNow.Add(time.Hour)

	groupWith := func(opt models.VariantOption) []models.VariantGroup {
		return []models.VariantGroup{{NameEN: "Weight", Options: []models.VariantOption{opt}}}
	}

	assert.True(t, productHasLiveOffer(groupWith(discountedOption(nil, nil)), viewNow),
		"dateless offer counts as live")
	assert.True(t, productHasLiveOffer(groupWith(discountedOption(&past, &future)), viewNow))
	assert.False(t, productHasLiveOffer(groupWith(discountedOption(&future, nil)), viewNow))
	assert.False(t, productHasLiveOffer(groupWith(discountedOption(nil, &past)), viewNow))
	assert.False(t, productHasLiveOffer(groupWith(models.VariantOption{Price: 5, OfferType: models.VariantOfferNone}), viewNow))
}
