package pricing

import (
	"time"

	"github.com/haddadin-dev/MazajMart/models"
)

// OfferSpec is the admin-facing shape for an inline variant offer: either a
// percentage or a fixed amount off, optionally time-boxed.
type OfferSpec struct {
	OfferType  string     `json:"offer_type"`
	OfferValue float64    `json:"offer_value"`
	StartDate  *time.Time `json:"start_date,omitempty"`
	EndDate    *time.Time `json:"end_date,omitempty"`
}

// ApplyToAllOptions stamps one offer spec onto every option of every variant
// group and recomputes each price. The input product is not mutated; a new
// value is returned.
//
// Each application recomputes from OriginalPrice, never from the previous
// Price, so applying the same spec twice yields the same result as once.
// A spec with OfferType "none" clears offer fields and restores originals.
//
// Note: options keep no record of per-option overrides, so a bulk apply
// overwrites any manually tuned single option.
func ApplyToAllOptions(product models.Product, spec OfferSpec, now time.Time) models.Product {
	out := product
	clearing := spec.OfferType == "" || spec.OfferType == models.VariantOfferNone

	out.Variants = make([]models.VariantGroup, len(product.Variants))
	for i, group := range product.Variants {
		ng := group
		ng.Options = make([]models.VariantOption, len(group.Options))
		for j, opt := range group.Options {
			if clearing {
				ng.Options[j] = clearOffer(opt)
			} else {
				ng.Options[j] = stampOffer(opt, spec, now)
			}
		}
		out.Variants[i] = ng
	}

	out.IsOffer = !clearing && IsLive(StatusAt(spec.StartDate, spec.EndDate, now))
	return out
}

func stampOffer(opt models.VariantOption, spec OfferSpec, now time.Time) models.VariantOption {
	// First-ever discount: capture the current price as the original.
	if opt.OriginalPrice <= 0 {
		opt.OriginalPrice = opt.Price
	}
	opt.OfferType = spec.OfferType
	opt.OfferValue = spec.OfferValue
	opt.OfferStartDate = cloneTime(spec.StartDate)
	opt.OfferEndDate = cloneTime(spec.EndDate)
	opt.Price = EffectivePrice(opt, now)
	return opt
}

func clearOffer(opt models.VariantOption) models.VariantOption {
	if opt.OriginalPrice > 0 {
		opt.Price = Round(opt.OriginalPrice)
	}
	opt.OfferType = models.VariantOfferNone
	opt.OfferValue = 0
	opt.OfferStartDate = nil
	opt.OfferEndDate = nil
	return opt
}

func cloneTime(t *time.Time) *time.Time {
	if t == nil {
		return nil
	}
	c := *t
	return &c
}
