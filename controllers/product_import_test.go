package controllers

import (
	"testing"
	"time"

	"github.com/haddadin-dev/MazajMart/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var importNow = time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)

func floatPtr(v float64) *float64 { return &v }

func TestNormalizeImportedProduct_CurrentShape(t *testing.T) {
	doc := ImportProduct{
		NameEN: "Pistachio Baklava",
		NameAR: "بقلاوة فستق",
		Variants: []ImportGroup{
			{
				NameEN: "Size",
				NameAR: "الحجم",
				Options: []ImportOption{
					{ValueEN: "Small", Price: 6.50, Quantity: 10},
					{ValueEN: "Large", Price: 11, OriginalPrice: floatPtr(12), Quantity: 4},
				},
			},
		},
	}

	product := NormalizeImportedProduct(doc, importNow)

	assert.Equal(t, "Pistachio Baklava", product.NameEN)
	assert.Equal(t, "pistachio baklava", product.NameLower)
	assert.True(t, product.IsActive)
	require.Len(t, product.Variants, 1)
	require.Len(t, product.Variants[0].Options, 2)

	small := product.Variants[0].Options[0]
	assert.Equal(t, 6.50, small.OriginalPrice, "missing original price falls back to price")
	assert.Equal(t, 6.50, small.Price)
	assert.Equal(t, models.VariantOfferNone, small.OfferType)

	large := product.Variants[0].Options[1]
	assert.Equal(t, 12.0, large.OriginalPrice)
	assert.Equal(t, 12.0, large.Price, "no offer means price is restored from original")
}

func TestNormalizeImportedProduct_LegacyTypesMap(t *testing.T) {
	doc := ImportProduct{
		Name: "Arabic Coffee", // legacy single-language name
		Types: map[string]ImportOption{
			"medium": {Price: 4.25, Quantity: 20},
			"dark":   {Value: "Dark Roast", Price: 4.75, Quantity: 15},
		},
	}

	product := NormalizeImportedProduct(doc, importNow)

	assert.Equal(t, "Arabic Coffee", product.NameEN)
	require.Len(t, product.Variants, 1)
	group := product.Variants[0]
	assert.Equal(t, "Available Options", group.NameEN)
	assert.Equal(t, "الخيارات المتاحة", group.NameAR)
	require.Len(t, group.Options, 2)

	// Map keys are sorted so repeated imports are deterministic
	assert.Equal(t, "Dark Roast", group.Options[0].ValueEN, "explicit value wins over key")
	assert.Equal(t, "medium", group.Options[1].ValueEN, "key is the fallback label")
	assert.Equal(t, 4.25, group.Options[1].OriginalPrice)
	assert.Equal(t, "piece", group.Options[1].UnitLabelEN)
}

func TestNormalizeImportedProduct_ActiveOfferRecomputesPrice(t *testing.T) {
	start := importNow.Add(-time.Hour)
	end := importNow.Add(time.Hour)
	doc := ImportProduct{
		NameEN: "Halva",
		Variants: []ImportGroup{{
			NameEN: "Weight",
			Options: []ImportOption{{
				ValueEN:        "500g",
				Price:          9.00, // stale derived price in the document
				OriginalPrice:  floatPtr(10),
				OfferType:      models.VariantOfferPercentage,
				OfferValue:     20,
				OfferStartDate: &start,
				OfferEndDate:   &end,
			}},
		}},
	}

	product := NormalizeImportedProduct(doc, importNow)

	opt := product.Variants[0].Options[0]
	assert.Equal(t, 8.0, opt.Price, "price is recomputed from the offer, not trusted from the document")
	assert.Equal(t, 10.0, opt.OriginalPrice)
	assert.True(t, product.IsOffer)
}

func TestNormalizeImportedProduct_InvalidOfferDropped(t *testing.T) {
	doc := ImportProduct{
		NameEN: "Dates",
		Variants: []ImportGroup{{
			NameEN: "Box",
			Options: []ImportOption{{
				ValueEN:    "1kg",
				Price:      15,
				OfferType:  models.VariantOfferPercentage,
				OfferValue: 150, // invalid, over 100
			}},
		}},
	}

	product := NormalizeImportedProduct(doc, importNow)

	opt := product.Variants[0].Options[0]
	assert.Equal(t, models.VariantOfferNone, opt.OfferType, "unusable offer fields are dropped, product kept")
	assert.Equal(t, 0.0, opt.OfferValue)
	assert.Equal(t, 15.0, opt.Price)
	assert.False(t, product.IsOffer)
}

func TestNormalizeImportedProduct_EmptyDocument(t *testing.T) {
	product := NormalizeImportedProduct(ImportProduct{NameEN: "Ghost"}, importNow)
	assert.Empty(t, product.Variants, "no variants and no types yields no groups; caller skips it")
}

func TestNormalizeImportedProduct_LegacyDescriptionFallbacks(t *testing.T) {
	doc := ImportProduct{
		Name:             "Zaatar",
		ShortDescription: "Wild thyme blend",
		LongDescription:  "Hand picked wild thyme with sesame and sumac.",
		Types: map[string]ImportOption{
			"jar": {Price: 3.5},
		},
	}

	product := NormalizeImportedProduct(doc, importNow)

	assert.Equal(t, "Wild thyme blend", product.ShortDescriptionEN)
	assert.Equal(t, "Hand picked wild thyme with sesame and sumac.", product.LongDescriptionEN)
}
