package controllers

import (
	"encoding/csv"
	"fmt"
	"io"
	"mime/multipart"
	"strings"

	"inventory-app/models"

	"github.com/go-playground/validator"
	"github.com/gofiber/fiber/v2"
	"github.com/xuri/excelize/v2"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type SkuController struct {
	DB *gorm.DB
}

func NewSkuController(DB *gorm.DB) *SkuController {
	return &SkuController{DB: DB}
}

func (c *SkuController) GetSkus(ctx *fiber.Ctx) error {
	var skus []models.SkuInfo
	if err := c.DB.Order("name").Find(&skus).Error; err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{
		"success": true,
		"data":    fiber.Map{"skus": skus},
		"total":   len(skus),
	})
}

func (c *SkuController) CreateSku(ctx *fiber.Ctx) error {
	var input struct {
		Sku     string `json:"sku" validate:"required"`
		Name    string `json:"name" validate:"required"`
		Barcode string `json:"barcode"`
	}

	if err := ctx.BodyParser(&input); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	validate := validator.New()
	if err := validate.Struct(input); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	sku := models.SkuInfo{
		Sku:     strings.ToUpper(strings.TrimSpace(input.Sku)),
		Name:    strings.TrimSpace(input.Name),
		Barcode: strings.TrimSpace(input.Barcode),
	}

	if err := c.DB.Create(&sku).Error; err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return ctx.Status(fiber.StatusCreated).JSON(fiber.Map{
		"success": true,
		"message": "SKU created successfully",
		"data":    sku,
	})
}

type SkuUploadResult struct {
	TotalRows     int      `json:"total_rows"`
	SuccessCount  int      `json:"success_count"`
	SkippedCount  int      `json:"skipped_count"`
	ErrorCount    int      `json:"error_count"`
	ErrorMessages []string `json:"error_messages"`
}

// UploadSkus seeds the catalog from an uploaded .csv or .xlsx file. Columns
// are matched by header name (SKU, Product Name, Barcode Number or Barcode);
// rows missing sku or name are skipped; existing skus are left untouched.
func (c *SkuController) UploadSkus(ctx *fiber.Ctx) error {
	file, err := ctx.FormFile("file")
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"error":   "File is required",
		})
	}

	name := strings.ToLower(file.Filename)
	var rows [][]string
	switch {
	case strings.HasSuffix(name, ".csv"):
		rows, err = readCSVRows(file)
	case strings.HasSuffix(name, ".xlsx"), strings.HasSuffix(name, ".xls"):
		rows, err = readExcelRows(file)
	default:
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"error":   "Only CSV and Excel files (.csv, .xlsx, .xls) are allowed",
		})
	}
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"error":   err.Error(),
		})
	}

	if len(rows) < 2 {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"error":   "File must contain header and at least one data row",
		})
	}

	skuCol, nameCol, barcodeCol := -1, -1, -1
	for i, h := range rows[0] {
		switch strings.ToLower(strings.TrimSpace(h)) {
		case "sku":
			skuCol = i
		case "product name":
			nameCol = i
		case "barcode number", "barcode":
			barcodeCol = i
		}
	}
	if skuCol < 0 || nameCol < 0 {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"error":   "Missing SKU or Product Name column",
		})
	}

	result := SkuUploadResult{
		TotalRows:     len(rows) - 1,
		ErrorMessages: []string{},
	}

	for i, row := range rows[1:] {
		rowNum := i + 2

		sku := strings.ToUpper(strings.TrimSpace(rowCell(row, skuCol)))
		skuName := strings.TrimSpace(rowCell(row, nameCol))
		barcode := strings.TrimSpace(rowCell(row, barcodeCol))

		if sku == "" || skuName == "" {
			result.SkippedCount++
			continue
		}

		res := c.DB.Clauses(clause.OnConflict{DoNothing: true}).
			Create(&models.SkuInfo{Sku: sku, Name: skuName, Barcode: barcode})
		if res.Error != nil {
			result.ErrorCount++
			result.ErrorMessages = append(result.ErrorMessages,
				fmt.Sprintf("Row %d: %v", rowNum, res.Error))
			continue
		}
		if res.RowsAffected == 0 {
			result.SkippedCount++
			continue
		}
		result.SuccessCount++
	}

	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{
		"success": true,
		"message": fmt.Sprintf("Seeded %d SKUs", result.SuccessCount),
		"data":    result,
	})
}

func readCSVRows(file *multipart.FileHeader) ([][]string, error) {
	fileContent, err := file.Open()
	if err != nil {
		return nil, fmt.Errorf("failed to open file")
	}
	defer fileContent.Close()

	reader := csv.NewReader(fileContent)
	reader.FieldsPerRecord = -1

	var rows [][]string
	for {
		row, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read CSV file")
		}
		rows = append(rows, row)
	}
	return rows, nil
}

func readExcelRows(file *multipart.FileHeader) ([][]string, error) {
	fileContent, err := file.Open()
	if err != nil {
		return nil, fmt.Errorf("failed to open file")
	}
	defer fileContent.Close()

	f, err := excelize.OpenReader(fileContent)
	if err != nil {
		return nil, fmt.Errorf("failed to read Excel file")
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, fmt.Errorf("no sheets found in Excel file")
	}

	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, fmt.Errorf("failed to read rows")
	}
	return rows, nil
}

func rowCell(row []string, col int) string {
	if col < 0 || col >= len(row) {
		return ""
	}
	return row[col]
}
