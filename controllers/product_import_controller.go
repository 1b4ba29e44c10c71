package controllers

import (
	"sort"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/haddadin-dev/MazajMart/config"
	"github.com/haddadin-dev/MazajMart/models"
	"github.com/haddadin-dev/MazajMart/pricing"
	"github.com/haddadin-dev/MazajMart/utils"
)

// ImportOption is one priceable option in an imported document. Old exports
// omit original_price and sometimes the bilingual fields.
type ImportOption struct {
	ValueEN        string     `json:"value_en"`
	Value          string     `json:"value"` // legacy single-language field
	ValueAR        string     `json:"value_ar"`
	UnitLabelEN    string     `json:"unit_label_en"`
	UnitLabel      string     `json:"unit_label"` // legacy
	UnitLabelAR    string     `json:"unit_label_ar"`
	ImageURL       string     `json:"image_url"`
	Price          float64    `json:"price"`
	OriginalPrice  *float64   `json:"original_price"`
	Quantity       int        `json:"quantity"`
	OfferType      string     `json:"offer_type"`
	OfferValue     float64    `json:"offer_value"`
	OfferStartDate *time.Time `json:"offer_start_date"`
	OfferEndDate   *time.Time `json:"offer_end_date"`
}

// ImportGroup is one variant axis in an imported document
type ImportGroup struct {
	NameEN  string         `json:"name_en"`
	Name    string         `json:"name"` // legacy
	NameAR  string         `json:"name_ar"`
	Options []ImportOption `json:"options"`
}

// ImportProduct is one product document in an import payload. It accepts
// both the current shape (variants array) and the legacy shape (flat types
// map keyed by option label).
type ImportProduct struct {
	NameEN             string                  `json:"name_en"`
	Name               string                  `json:"name"` // legacy
	NameAR             string                  `json:"name_ar"`
	ShortDescriptionEN string                  `json:"short_description_en"`
	ShortDescription   string                  `json:"short_description"` // legacy
	ShortDescriptionAR string                  `json:"short_description_ar"`
	LongDescriptionEN  string                  `json:"long_description_en"`
	LongDescription    string                  `json:"long_description"` // legacy
	LongDescriptionAR  string                  `json:"long_description_ar"`
	Image              string                  `json:"image"`
	ManufacturedAt     string                  `json:"manufactured_at"`
	Expiration         string                  `json:"expiration"`
	IsActive           *bool                   `json:"is_active"`
	Variants           []ImportGroup           `json:"variants"`
	Types              map[string]ImportOption `json:"types"` // legacy
}

func fallback(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}

// normalizeImportOption produces a canonical option row. A missing or
// non-positive original price falls back to the current price, so a later
// discount never loses the pre-offer price.
func normalizeImportOption(in ImportOption, key string, position int, now time.Time) models.VariantOption {
	original := in.Price
	if in.OriginalPrice != nil && *in.OriginalPrice > 0 {
		original = *in.OriginalPrice
	}

	offerType := in.OfferType
	if offerType == "" {
		offerType = models.VariantOfferNone
	}
	if errs := pricing.ValidateOfferSpec(pricing.OfferSpec{
		OfferType:  offerType,
		OfferValue: in.OfferValue,
		StartDate:  in.OfferStartDate,
		EndDate:    in.OfferEndDate,
	}); len(errs) > 0 {
		// Unusable offer fields on a legacy row: keep the product, drop the offer
		offerType = models.VariantOfferNone
	}

	opt := models.VariantOption{
		Position:       position,
		ValueEN:        fallback(in.ValueEN, in.Value, key),
		ValueAR:        in.ValueAR,
		UnitLabelEN:    fallback(in.UnitLabelEN, in.UnitLabel, "piece"),
		UnitLabelAR:    in.UnitLabelAR,
		ImageURL:       in.ImageURL,
		OriginalPrice:  pricing.Round(original),
		Quantity:       in.Quantity,
		OfferType:      offerType,
		OfferValue:     in.OfferValue,
		OfferStartDate: in.OfferStartDate,
		OfferEndDate:   in.OfferEndDate,
	}
	if offerType == models.VariantOfferNone {
		opt.OfferValue = 0
		opt.OfferStartDate = nil
		opt.OfferEndDate = nil
	}
	opt.Price = pricing.EffectivePrice(opt, now)
	return opt
}

// NormalizeImportedProduct converts an imported document of either shape
// into the canonical product model. Pure; the caller persists the result.
func NormalizeImportedProduct(doc ImportProduct, now time.Time) models.Product {
	var groups []models.VariantGroup

	switch {
	case len(doc.Variants) > 0:
		groups = make([]models.VariantGroup, len(doc.Variants))
		for i, g := range doc.Variants {
			options := make([]models.VariantOption, len(g.Options))
			for j, o := range g.Options {
				options[j] = normalizeImportOption(o, "", j, now)
			}
			groups[i] = models.VariantGroup{
				NameEN:   fallback(g.NameEN, g.Name, "Default Type"),
				NameAR:   g.NameAR,
				Position: i,
				Options:  options,
			}
		}
	case len(doc.Types) > 0:
		// Legacy flat map: one synthetic group, options ordered by key so
		// repeated imports are deterministic
		keys := make([]string, 0, len(doc.Types))
		for key := range doc.Types {
			keys = append(keys, key)
		}
		sort.Strings(keys)

		options := make([]models.VariantOption, len(keys))
		for i, key := range keys {
			options[i] = normalizeImportOption(doc.Types[key], key, i, now)
		}
		groups = []models.VariantGroup{{
			NameEN:   "Available Options",
			NameAR:   "الخيارات المتاحة",
			Position: 0,
			Options:  options,
		}}
	}

	nameEN := fallback(doc.NameEN, doc.Name)
	product := models.Product{
		NameEN:             nameEN,
		NameAR:             doc.NameAR,
		NameLower:          strings.ToLower(nameEN),
		NameARLower:        strings.ToLower(doc.NameAR),
		ShortDescriptionEN: fallback(doc.ShortDescriptionEN, doc.ShortDescription),
		ShortDescriptionAR: doc.ShortDescriptionAR,
		LongDescriptionEN:  fallback(doc.LongDescriptionEN, doc.LongDescription),
		LongDescriptionAR:  doc.LongDescriptionAR,
		Image:              doc.Image,
		ManufacturedAt:     doc.ManufacturedAt,
		Expiration:         doc.Expiration,
		IsActive:           true,
		Variants:           groups,
	}
	if doc.IsActive != nil {
		product.IsActive = *doc.IsActive
	}
	product.IsOffer = productHasLiveOffer(groups, now)
	return product
}

// ImportProductsRequest represents the bulk import payload
type ImportProductsRequest struct {
	Products []ImportProduct `json:"products" binding:"required,min=1"`
}

// ImportProducts bulk-imports product documents, normalizing legacy shapes
func ImportProducts(c *gin.Context) {
	utils.LogInfo("ImportProducts called")

	var req ImportProductsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.LogError("Invalid import payload: %v", err)
		utils.BadRequest(c, "Invalid input", err.Error())
		return
	}
	utils.LogDebug("Importing %d product documents", len(req.Products))

	now := time.Now()
	var skipped []string

	tx := config.DB.Begin()
	if tx.Error != nil {
		utils.LogError("Failed to start transaction: %v", tx.Error)
		utils.InternalServerError(c, "Failed to import products", nil)
		return
	}

	imported := 0
	for _, doc := range req.Products {
		product := NormalizeImportedProduct(doc, now)
		if product.NameEN == "" || len(product.Variants) == 0 {
			skipped = append(skipped, fallback(doc.NameEN, doc.Name, "<unnamed>"))
			continue
		}
		if err := tx.Create(&product).Error; err != nil {
			tx.Rollback()
			utils.LogError("Failed to import product %s: %v", product.NameEN, err)
			utils.InternalServerError(c, "Failed to import products", err.Error())
			return
		}
		imported++
	}

	if err := tx.Commit().Error; err != nil {
		utils.LogError("Failed to commit import transaction: %v", err)
		utils.InternalServerError(c, "Failed to import products", err.Error())
		return
	}

	utils.LogInfo("Imported %d products, skipped %d", imported, len(skipped))
	utils.Success(c, "Products imported successfully", gin.H{
		"imported": imported,
		"skipped":  skipped,
	})
}
