package pricing

import (
	"errors"
	"time"

	"github.com/haddadin-dev/MazajMart/models"
)

// CartLine is the evaluator's view of one cart row: which product, the
// variant option snapshot taken when the item was added, and how many.
type CartLine struct {
	ProductID uint
	Option    models.VariantOption
	Quantity  int
}

// OfferRef identifies the standalone offer chosen for a line, with the
// per-unit discount it contributed.
type OfferRef struct {
	OfferID  uint    `json:"offer_id"`
	Title    string  `json:"title"`
	Type     string  `json:"type"`
	Discount float64 `json:"discount"`
}

// Evaluation is the result of pricing one cart line.
type Evaluation struct {
	UnitPrice float64   `json:"unit_price"`
	Applied   *OfferRef `json:"applied_offer,omitempty"`
	Savings   float64   `json:"savings"`
}

// EvaluateLine determines the charged unit price for a cart line given the
// standalone offers that target its product.
//
// The baseline already reflects any inline per-option discount; standalone
// percentage/fixed offers stack on top of it. When several offers are live
// the one yielding the lowest price wins; ties prefer percentage over fixed,
// then the earliest window start. BOGO and coupon offers are cart-level and
// ignored here.
func EvaluateLine(line CartLine, candidates []models.Offer, now time.Time) Evaluation {
	baseline := EffectivePrice(line.Option, now)

	var best *models.Offer
	bestPrice := baseline
	for i := range candidates {
		offer := &candidates[i]
		if !lineOfferEligible(offer, line.ProductID, now) {
			continue
		}
		price := discountedPrice(baseline, offer.Type, offer.DiscountValue)
		if price < bestPrice || (price == bestPrice && best != nil && beats(offer, best)) {
			best = offer
			bestPrice = price
		}
	}

	eval := Evaluation{UnitPrice: bestPrice}
	if best != nil && bestPrice < baseline {
		eval.Applied = &OfferRef{
			OfferID:  best.ID,
			Title:    best.TitleEN,
			Type:     best.Type,
			Discount: Round(baseline - bestPrice),
		}
	} else {
		eval.UnitPrice = baseline
	}

	reference := baseline
	if line.Option.OriginalPrice > 0 {
		reference = line.Option.OriginalPrice
	}
	eval.Savings = RoundClamped(reference - eval.UnitPrice)
	return eval
}

func lineOfferEligible(offer *models.Offer, productID uint, now time.Time) bool {
	if !offer.IsActive {
		return false
	}
	// Only percentage/fixed offers apply per line.
	if offer.Type != models.OfferTypePercentage && offer.Type != models.OfferTypeFixed {
		return false
	}
	if !containsID(offer.TargetProductIDs, productID) {
		return false
	}
	return IsLive(StatusAt(offer.StartDate, offer.EndDate, now))
}

// beats resolves a price tie between two eligible offers.
func beats(a, b *models.Offer) bool {
	if a.Type != b.Type {
		return a.Type == models.OfferTypePercentage
	}
	return startBefore(a.StartDate, b.StartDate)
}

// startBefore treats a missing start as earlier than any set start.
func startBefore(a, b *time.Time) bool {
	if a == nil {
		return b != nil
	}
	if b == nil {
		return false
	}
	return a.Before(*b)
}

func discountedPrice(base float64, offerType string, value float64) float64 {
	switch offerType {
	case models.OfferTypePercentage, models.DiscountNaturePercentage:
		return RoundClamped(base - base*(value/100))
	case models.OfferTypeFixed, models.DiscountNatureFixed:
		return RoundClamped(base - value)
	default:
		return Round(base)
	}
}

func containsID(ids []uint, id uint) bool {
	for _, v := range ids {
		if v == id {
			return true
		}
	}
	return false
}

// BogoLine is the discount applied to one cart line by a BOGO offer.
type BogoLine struct {
	LineIndex       int     `json:"line_index"`
	Units           int     `json:"units"`
	DiscountPerUnit float64 `json:"discount_per_unit"`
}

// BogoResult summarizes a BOGO application across a cart.
type BogoResult struct {
	Applications  int        `json:"applications"`
	DiscountTotal float64    `json:"discount_total"`
	Lines         []BogoLine `json:"lines,omitempty"`
}

// ApplyBogo evaluates a "Buy X Get Y" offer against a whole cart.
//
// Qualifying units of the buy product are counted across all lines; every
// complete multiple of the buy quantity unlocks the get quantity, capped by
// how many units of the get product the cart actually holds. Discounted
// units are taken from get-product lines in order.
func ApplyBogo(cart []CartLine, offer models.Offer, now time.Time) BogoResult {
	var res BogoResult

	if offer.Type != models.OfferTypeBogo || !offer.IsActive {
		return res
	}
	if !IsLive(StatusAt(offer.StartDate, offer.EndDate, now)) {
		return res
	}
	if offer.BogoBuyQuantity < 1 || offer.BogoGetQuantity < 1 {
		return res
	}

	var buyCount int
	for _, line := range cart {
		if line.ProductID == offer.BogoBuyProductID {
			buyCount += line.Quantity
		}
	}
	multiples := buyCount / offer.BogoBuyQuantity
	if multiples == 0 {
		return res
	}

	remaining := multiples * offer.BogoGetQuantity
	var total float64
	for i, line := range cart {
		if remaining == 0 {
			break
		}
		if line.ProductID != offer.BogoGetProductID || line.Quantity <= 0 {
			continue
		}
		units := line.Quantity
		if units > remaining {
			units = remaining
		}
		unitPrice := EffectivePrice(line.Option, now)
		perUnit := bogoUnitDiscount(unitPrice, offer)
		if perUnit <= 0 {
			continue
		}
		res.Lines = append(res.Lines, BogoLine{LineIndex: i, Units: units, DiscountPerUnit: perUnit})
		total += perUnit * float64(units)
		remaining -= units
	}

	res.Applications = multiples
	res.DiscountTotal = Round(total)
	return res
}

func bogoUnitDiscount(unitPrice float64, offer models.Offer) float64 {
	switch offer.BogoGetType {
	case models.BogoGetFree:
		return unitPrice
	case models.BogoGetPercentage:
		return Round(unitPrice * (offer.DiscountValue / 100))
	case models.BogoGetFixed:
		if offer.DiscountValue > unitPrice {
			return unitPrice
		}
		return Round(offer.DiscountValue)
	default:
		return 0
	}
}

// Coupon evaluation errors, surfaced so the cart layer can tell the shopper
// why a code did not apply.
var (
	ErrCouponInactive   = errors.New("coupon is not active")
	ErrCouponNotStarted = errors.New("coupon is not active yet")
	ErrCouponExpired    = errors.New("coupon has expired")
)

// CouponResult summarizes a coupon application across a cart.
type CouponResult struct {
	EligibleLines []int   `json:"eligible_lines"`
	DiscountTotal float64 `json:"discount_total"`
}

// ApplyCoupon evaluates a user-entered coupon against a cart. A coupon with
// no target products applies site-wide; otherwise only to lines whose product
// is targeted. The discount is computed per line on the effective unit price
// and summed.
func ApplyCoupon(cart []CartLine, coupon models.Coupon, now time.Time) (CouponResult, error) {
	var res CouponResult

	if !coupon.Active {
		return res, ErrCouponInactive
	}
	switch StatusAt(coupon.StartDate, coupon.EndDate, now) {
	case WindowScheduled:
		return res, ErrCouponNotStarted
	case WindowExpired:
		return res, ErrCouponExpired
	}

	var total float64
	for i, line := range cart {
		if line.Quantity <= 0 {
			continue
		}
		if len(coupon.TargetProductIDs) > 0 && !containsID(coupon.TargetProductIDs, line.ProductID) {
			continue
		}
		unitPrice := EffectivePrice(line.Option, now)
		discounted := discountedPrice(unitPrice, coupon.DiscountType, coupon.Value)
		perUnit := unitPrice - discounted
		if perUnit <= 0 {
			continue
		}
		res.EligibleLines = append(res.EligibleLines, i)
		total += perUnit * float64(line.Quantity)
	}

	res.DiscountTotal = Round(total)
	return res, nil
}
