package pricing

import (
	"fmt"
	"math"
	"time"

	"github.com/haddadin-dev/MazajMart/models"
)

// OriginalPriceOf returns the best-known undiscounted price for an option.
// Legacy records may lack OriginalPrice, in which case the persisted Price
// is the best we have.
func OriginalPriceOf(opt models.VariantOption) float64 {
	if opt.OriginalPrice > 0 {
		return opt.OriginalPrice
	}
	return opt.Price
}

// EffectivePrice computes what an option costs right now, honoring its
// inline offer and its time window. The option is never mutated; callers
// write the result back to Price before persisting.
func EffectivePrice(opt models.VariantOption, now time.Time) float64 {
	original := OriginalPriceOf(opt)
	if opt.OfferType == "" || opt.OfferType == models.VariantOfferNone {
		return Round(original)
	}

	status := StatusAt(opt.OfferStartDate, opt.OfferEndDate, now)
	if !IsLive(status) {
		return Round(original)
	}

	switch opt.OfferType {
	case models.VariantOfferPercentage:
		return RoundClamped(original - original*(opt.OfferValue/100))
	case models.VariantOfferFixed:
		return RoundClamped(original - opt.OfferValue)
	default:
		// Unknown offer type on a stored record: fall back to the original
		// rather than fail.
		return Round(original)
	}
}

// OfferStatus reports the window status of an option's inline offer.
// Options without an offer report no status at all (empty string).
func OfferStatus(opt models.VariantOption, now time.Time) WindowStatus {
	if opt.OfferType == "" || opt.OfferType == models.VariantOfferNone {
		return ""
	}
	return StatusAt(opt.OfferStartDate, opt.OfferEndDate, now)
}

// OfferLabel produces the "N% off" badge text from the persisted prices.
// Empty when the option is not discounted.
func OfferLabel(opt models.VariantOption) string {
	original := opt.OriginalPrice
	if original <= 0 || opt.Price >= original {
		return ""
	}
	percent := math.Round((original - opt.Price) / original * 100)
	return fmt.Sprintf("%d%% off", int(percent))
}
