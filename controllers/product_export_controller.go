package controllers

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/haddadin-dev/MazajMart/config"
	"github.com/haddadin-dev/MazajMart/models"
	"github.com/haddadin-dev/MazajMart/pricing"
	"github.com/haddadin-dev/MazajMart/utils"
	"github.com/tealeg/xlsx"
	"gorm.io/gorm"
)

// ExportProducts writes the full catalog to an Excel workbook, one row per
// variant option, with current offer status per row
func ExportProducts(c *gin.Context) {
	utils.LogInfo("ExportProducts called")

	var products []models.Product
	if err := config.DB.
		Preload("Variants", func(db *gorm.DB) *gorm.DB { return db.Order("position") }).
		Preload("Variants.Options", func(db *gorm.DB) *gorm.DB { return db.Order("position") }).
		Preload("Categories").
		Order("id").Find(&products).Error; err != nil {
		utils.LogError("Failed to fetch products for export: %v", err)
		utils.InternalServerError(c, "Failed to export products", err.Error())
		return
	}

	file := xlsx.NewFile()
	sheet, err := file.AddSheet("Products")
	if err != nil {
		utils.LogError("Failed to create Excel sheet: %v", err)
		utils.InternalServerError(c, "Failed to create Excel sheet", err.Error())
		return
	}

	now := time.Now()

	companyRow := sheet.AddRow()
	companyRow.AddCell().SetString("MAZAJMART - Product Catalog")
	companyRow = sheet.AddRow()
	companyRow.AddCell().SetString("Exported: " + now.Format("2006-01-02 15:04"))
	sheet.AddRow() // spacing

	headers := []string{
		"Product ID", "Name (EN)", "Name (AR)", "Active", "Variant Group",
		"Option (EN)", "Option (AR)", "Unit", "Stock",
		"Original Price", "Effective Price", "Offer Type", "Offer Value", "Offer Status",
	}
	headerRow := sheet.AddRow()
	for _, h := range headers {
		cell := headerRow.AddCell()
		cell.SetString(h)
		style := xlsx.NewStyle()
		font := xlsx.DefaultFont()
		font.Bold = true
		style.Font = *font
		cell.SetStyle(style)
	}

	rows := 0
	for _, product := range products {
		for _, group := range product.Variants {
			for _, opt := range group.Options {
				row := sheet.AddRow()
				row.AddCell().SetInt(int(product.ID))
				row.AddCell().SetString(product.NameEN)
				row.AddCell().SetString(product.NameAR)
				row.AddCell().SetBool(product.IsActive)
				row.AddCell().SetString(group.NameEN)
				row.AddCell().SetString(opt.ValueEN)
				row.AddCell().SetString(opt.ValueAR)
				row.AddCell().SetString(opt.UnitLabelEN)
				row.AddCell().SetInt(opt.Quantity)
				row.AddCell().SetFloat(pricing.OriginalPriceOf(opt))
				row.AddCell().SetFloat(pricing.EffectivePrice(opt, now))
				row.AddCell().SetString(opt.OfferType)
				row.AddCell().SetFloat(opt.OfferValue)
				row.AddCell().SetString(string(pricing.OfferStatus(opt, now)))
				rows++
			}
		}
	}

	c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	c.Header("Content-Disposition", "attachment; filename=products_"+now.Format("20060102")+".xlsx")
	if err := file.Write(c.Writer); err != nil {
		utils.LogError("Failed to write Excel file: %v", err)
		utils.InternalServerError(c, "Failed to write Excel file", err.Error())
		return
	}
	utils.LogInfo("Exported %d catalog rows for %d products", rows, len(products))
}
