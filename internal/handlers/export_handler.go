package handlers

import (
	"encoding/csv"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/xuri/excelize/v2"

	"catalog-service/internal/models"
)

var exportHeaders = []string{
	"id", "name", "description", "category", "base_price", "created_at",
}

// ExportProducts exports the full product list as an XLSX workbook or, with
// ?format=csv, as CSV.
// @Summary Export products
// @Tags products
// @Produce application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Param format query string false "Export format" Enums(xlsx, csv)
// @Success 200
// @Router /products/export [get]
func (h *CatalogHandler) ExportProducts(c *gin.Context) {
	products, err := h.repo.GetProducts()
	if err != nil {
		h.respondError(c, err)
		return
	}

	if strings.EqualFold(c.DefaultQuery("format", "xlsx"), "csv") {
		h.exportProductsCSV(c, products)
		return
	}
	h.exportProductsXLSX(c, products)
}

func exportRow(product *models.Product) []string {
	description := ""
	if product.Description != nil {
		description = *product.Description
	}
	categoryName := ""
	if product.Category != nil {
		categoryName = product.Category.Name
	}
	basePrice := ""
	if product.BasePrice != nil {
		basePrice = product.BasePrice.StringFixed(2)
	}
	return []string{
		strconv.FormatUint(uint64(product.ID), 10),
		product.Name,
		description,
		categoryName,
		basePrice,
		product.CreatedAt.Format("2006-01-02 15:04:05"),
	}
}

func (h *CatalogHandler) exportProductsCSV(c *gin.Context, products []models.Product) {
	c.Header("Content-Type", "text/csv")
	c.Header("Content-Disposition", "attachment; filename=products_export.csv")

	writer := csv.NewWriter(c.Writer)
	defer writer.Flush()

	writer.Write(exportHeaders)
	for i := range products {
		writer.Write(exportRow(&products[i]))
	}
}

func (h *CatalogHandler) exportProductsXLSX(c *gin.Context, products []models.Product) {
	f := excelize.NewFile()
	defer f.Close()

	const sheetName = "Products"
	f.SetSheetName("Sheet1", sheetName)

	headerStyle, _ := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true, Color: "FFFFFF"},
		Fill: excelize.Fill{Type: "pattern", Color: []string{"4472C4"}, Pattern: 1},
	})
	for i, header := range exportHeaders {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		f.SetCellValue(sheetName, cell, header)
		f.SetCellStyle(sheetName, cell, cell, headerStyle)
	}

	for rowIdx := range products {
		row := exportRow(&products[rowIdx])
		for colIdx, value := range row {
			cell, _ := excelize.CoordinatesToCellName(colIdx+1, rowIdx+2)
			f.SetCellValue(sheetName, cell, value)
		}
	}

	f.SetColWidth(sheetName, "B", "C", 40)
	f.SetColWidth(sheetName, "D", "F", 20)

	c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	c.Header("Content-Disposition", "attachment; filename=products_export.xlsx")

	if err := f.Write(c.Writer); err != nil {
		h.logger.WithError(err).Error("failed to stream product export")
	}
}
