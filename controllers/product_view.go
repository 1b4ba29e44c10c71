package controllers

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/haddadin-dev/MazajMart/models"
	"github.com/haddadin-dev/MazajMart/pricing"
)

// requestLanguage resolves the display language from the lang query
// parameter, falling back to the signed-in user's preference, then English.
func requestLanguage(c *gin.Context) string {
	lang := c.Query("lang")
	if lang == "en" || lang == "ar" {
		return lang
	}
	if u, exists := c.Get("user"); exists {
		if user, ok := u.(models.User); ok && user.Language == "ar" {
			return "ar"
		}
	}
	return "en"
}

func pick(lang, en, ar string) string {
	if lang == "ar" && ar != "" {
		return ar
	}
	return en
}

// optionView renders a variant option with its effective price, offer badge
// and countdown metadata computed at now.
func optionView(opt *models.VariantOption, lang string, now time.Time) gin.H {
	effective := pricing.EffectivePrice(*opt, now)
	status := pricing.OfferStatus(*opt, now)

	view := gin.H{
		"id":         opt.ID,
		"value":      pick(lang, opt.ValueEN, opt.ValueAR),
		"unit_label": pick(lang, opt.UnitLabelEN, opt.UnitLabelAR),
		"image_url":  opt.ImageURL,
		"price":      effective,
		"quantity":   opt.Quantity,
		"in_stock":   opt.Quantity > 0,
	}

	if label := pricing.OfferLabel(*opt); label != "" && pricing.IsLive(status) {
		view["original_price"] = pricing.OriginalPriceOf(*opt)
		view["offer_label"] = label
	}
	if status != "" {
		view["offer_status"] = string(status)
		if status == pricing.WindowActive && opt.OfferEndDate != nil {
			view["offer_ends_at"] = opt.OfferEndDate
		}
		if status == pricing.WindowScheduled && opt.OfferStartDate != nil {
			view["offer_starts_at"] = opt.OfferStartDate
		}
	}
	return view
}

// productView renders a product for the storefront in the requested language
func productView(p *models.Product, lang string, now time.Time) gin.H {
	variants := make([]gin.H, len(p.Variants))
	hasLiveOffer := false
	for i := range p.Variants {
		group := &p.Variants[i]
		options := make([]gin.H, len(group.Options))
		for j := range group.Options {
			options[j] = optionView(&group.Options[j], lang, now)
			if _, ok := options[j]["offer_label"]; ok {
				hasLiveOffer = true
			}
		}
		variants[i] = gin.H{
			"id":       group.ID,
			"name":     pick(lang, group.NameEN, group.NameAR),
			"position": group.Position,
			"options":  options,
		}
	}

	view := gin.H{
		"id":                p.ID,
		"name":              pick(lang, p.NameEN, p.NameAR),
		"short_description": pick(lang, p.ShortDescriptionEN, p.ShortDescriptionAR),
		"image":             p.Image,
		"is_offer":          hasLiveOffer,
		"variants":          variants,
	}
	if len(p.Categories) > 0 {
		categories := make([]gin.H, len(p.Categories))
		for i, cat := range p.Categories {
			categories[i] = gin.H{"id": cat.ID, "name": pick(lang, cat.NameEN, cat.NameAR)}
		}
		view["categories"] = categories
	}
	return view
}

// productDetailView adds the long description and add-ons to the list view
func productDetailView(p *models.Product, lang string, now time.Time) gin.H {
	view := productView(p, lang, now)
	view["long_description"] = pick(lang, p.LongDescriptionEN, p.LongDescriptionAR)
	if p.ManufacturedAt != "" {
		view["manufactured_at"] = p.ManufacturedAt
	}
	if p.Expiration != "" {
		view["expiration"] = p.Expiration
	}
	if len(p.AddOns) > 0 {
		addOns := make([]gin.H, len(p.AddOns))
		for i, a := range p.AddOns {
			addOns[i] = gin.H{
				"id":          a.ID,
				"name":        pick(lang, a.NameEN, a.NameAR),
				"extra_price": a.ExtraPrice,
			}
		}
		view["add_ons"] = addOns
	}
	return view
}
