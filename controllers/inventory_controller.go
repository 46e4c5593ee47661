package controllers

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"net/http"
	"strconv"

	"inventory-app/models"
	"inventory-app/repositories"
	"inventory-app/utils"

	"github.com/go-playground/validator"
	"github.com/gofiber/fiber/v2"
	"github.com/xuri/excelize/v2"
	"gorm.io/gorm"
)

type InventoryController struct {
	DB *gorm.DB
}

func NewInventoryController(DB *gorm.DB) *InventoryController {
	return &InventoryController{DB: DB}
}

// callerBalances resolves the balance rows the caller is allowed to see,
// honoring an optional hub filter.
func (c *InventoryController) callerBalances(ctx *fiber.Ctx) ([]repositories.ListBalance, error) {
	repo := repositories.NewInventoryRepository(c.DB)

	hubs, _ := ctx.Locals("hubs").(string)
	hub := ctx.Query("hub")
	sku := ctx.Query("sku")

	if hub != "" {
		if !utils.HasHubAccess(hubs, hub) {
			return nil, fiber.NewError(fiber.StatusForbidden, "Forbidden: no access to hub "+hub)
		}
		return repo.GetBalances(hub, sku)
	}

	if hubs == models.HubsAll {
		return repo.GetBalances("", sku)
	}
	return repo.GetBalancesForHubs(utils.ParseHubs(hubs), sku)
}

func (c *InventoryController) GetInventory(ctx *fiber.Ctx) error {
	balances, err := c.callerBalances(ctx)
	if err != nil {
		if fe, ok := err.(*fiber.Error); ok {
			return ctx.Status(fe.Code).JSON(fiber.Map{"success": false, "message": fe.Message})
		}
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{
		"success": true,
		"data":    fiber.Map{"balances": balances},
	})
}

func (c *InventoryController) GetTotals(ctx *fiber.Ctx) error {
	repo := repositories.NewInventoryRepository(c.DB)
	totals, err := repo.GetTotals()
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{
		"success": true,
		"data":    fiber.Map{"totals": totals},
	})
}

// callerLowStock resolves the low-stock rows the caller is allowed to see and
// the threshold they asked for.
func (c *InventoryController) callerLowStock(ctx *fiber.Ctx) (int, []repositories.ListBalance, error) {
	hubs, _ := ctx.Locals("hubs").(string)
	hub := ctx.Query("hub")
	if hub != "" && !utils.HasHubAccess(hubs, hub) {
		return 0, nil, fiber.NewError(fiber.StatusForbidden, "Forbidden: no access to hub "+hub)
	}

	threshold, err := strconv.Atoi(ctx.Query("threshold", "10"))
	if err != nil || threshold < 1 {
		return 0, nil, fiber.NewError(fiber.StatusBadRequest, "Invalid threshold")
	}

	repo := repositories.NewInventoryRepository(c.DB)
	balances, err := repo.GetLowStock(hub, threshold)
	if err != nil {
		return 0, nil, err
	}
	return threshold, balances, nil
}

func (c *InventoryController) GetLowStock(ctx *fiber.Ctx) error {
	threshold, balances, err := c.callerLowStock(ctx)
	if err != nil {
		if fe, ok := err.(*fiber.Error); ok {
			return ctx.Status(fe.Code).JSON(fiber.Map{"success": false, "message": fe.Message})
		}
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{
		"success": true,
		"data": fiber.Map{
			"threshold": threshold,
			"balances":  balances,
		},
	})
}

func (c *InventoryController) ExportLowStockCSV(ctx *fiber.Ctx) error {
	_, balances, err := c.callerLowStock(ctx)
	if err != nil {
		if fe, ok := err.(*fiber.Error); ok {
			return ctx.Status(fe.Code).JSON(fiber.Map{"success": false, "message": fe.Message})
		}
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	w.Write([]string{"SKU", "Name", "Barcode", "Hub", "Quantity"})
	for _, b := range balances {
		w.Write([]string{b.Sku, b.Name, b.Barcode, b.Hub, strconv.Itoa(b.Quantity)})
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	filename := "low_stock.csv"
	if hub := ctx.Query("hub"); hub != "" {
		filename = "low_stock_" + hub + ".csv"
	}
	ctx.Set("Content-Type", "text/csv")
	ctx.Set("Content-Disposition", `attachment; filename="`+filename+`"`)
	return ctx.Send(buf.Bytes())
}

type movementInput struct {
	Sku     string `json:"sku" validate:"required"`
	Hub     string `json:"hub"`
	Action  string `json:"action" validate:"required,oneof=IN OUT COUNT ADMIN-ADD ADMIN-REMOVE"`
	Qty     int    `json:"qty" validate:"required,gt=0"`
	Comment string `json:"comment"`
}

func (c *InventoryController) ApplyMovement(ctx *fiber.Ctx) error {
	var input movementInput
	if err := ctx.BodyParser(&input); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	validate := validator.New()
	if err := validate.Struct(input); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	username, _ := ctx.Locals("username").(string)
	role, _ := ctx.Locals("role").(string)
	hubs, _ := ctx.Locals("hubs").(string)

	// Retail terminals always post against the RETAIL hub.
	if role == models.RoleRetail {
		input.Hub = "RETAIL"
	}
	if input.Hub == "" {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"message": "Hub is required",
		})
	}

	switch input.Action {
	case models.ActionAdminAdd, models.ActionAdminRemove:
		if role != models.RoleAdmin {
			return ctx.Status(fiber.StatusForbidden).JSON(fiber.Map{
				"success": false,
				"message": "Forbidden: admin action",
			})
		}
	case models.ActionCount:
		if role != models.RoleRetail && role != models.RoleAdmin {
			return ctx.Status(fiber.StatusForbidden).JSON(fiber.Map{
				"success": false,
				"message": "Forbidden: COUNT is a retail action",
			})
		}
	default:
		if role != models.RoleAdmin && role != models.RoleManager && role != models.RoleRetail {
			return ctx.Status(fiber.StatusForbidden).JSON(fiber.Map{
				"success": false,
				"message": "Forbidden: movements are not available for this role",
			})
		}
	}

	if !utils.HasHubAccess(hubs, input.Hub) {
		return ctx.Status(fiber.StatusForbidden).JSON(fiber.Map{
			"success": false,
			"message": "Forbidden: no access to hub " + input.Hub,
		})
	}

	err := c.DB.Transaction(func(tx *gorm.DB) error {
		repo := repositories.NewInventoryRepository(tx)
		return repo.ApplyMovement(username, input.Sku, input.Hub, input.Action, input.Qty, input.Comment)
	})
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	repo := repositories.NewInventoryRepository(c.DB)
	balance, err := repo.GetBalance(input.Sku, input.Hub)
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{
		"success": true,
		"message": fmt.Sprintf("%s %d units of %s recorded for %s", input.Action, input.Qty, input.Sku, input.Hub),
		"data": fiber.Map{
			"sku":      input.Sku,
			"hub":      input.Hub,
			"quantity": balance,
		},
	})
}

func (c *InventoryController) ExportCSV(ctx *fiber.Ctx) error {
	balances, err := c.callerBalances(ctx)
	if err != nil {
		if fe, ok := err.(*fiber.Error); ok {
			return ctx.Status(fe.Code).JSON(fiber.Map{"success": false, "message": fe.Message})
		}
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	w.Write([]string{"SKU", "Name", "Barcode", "Hub", "Quantity"})
	for _, b := range balances {
		w.Write([]string{b.Sku, b.Name, b.Barcode, b.Hub, strconv.Itoa(b.Quantity)})
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	ctx.Set("Content-Type", "text/csv")
	ctx.Set("Content-Disposition", `attachment; filename="inventory.csv"`)
	return ctx.Send(buf.Bytes())
}

func (c *InventoryController) ExportExcel(ctx *fiber.Ctx) error {
	balances, err := c.callerBalances(ctx)
	if err != nil {
		if fe, ok := err.(*fiber.Error); ok {
			return ctx.Status(fe.Code).JSON(fiber.Map{"success": false, "message": fe.Message})
		}
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	f := excelize.NewFile()
	sheet := "Sheet1"

	f.SetCellValue(sheet, "A1", "SKU")
	f.SetCellValue(sheet, "B1", "Name")
	f.SetCellValue(sheet, "C1", "Barcode")
	f.SetCellValue(sheet, "D1", "Hub")
	f.SetCellValue(sheet, "E1", "Quantity")

	for i, b := range balances {
		f.SetCellValue(sheet, fmt.Sprintf("A%d", i+2), b.Sku)
		f.SetCellValue(sheet, fmt.Sprintf("B%d", i+2), b.Name)
		f.SetCellValue(sheet, fmt.Sprintf("C%d", i+2), b.Barcode)
		f.SetCellValue(sheet, fmt.Sprintf("D%d", i+2), b.Hub)
		f.SetCellValue(sheet, fmt.Sprintf("E%d", i+2), b.Quantity)
	}

	ctx.Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	ctx.Set("Content-Disposition", `attachment; filename="inventory.xlsx"`)

	if err := f.Write(ctx.Response().BodyWriter()); err != nil {
		return ctx.Status(http.StatusInternalServerError).SendString("Failed to generate Excel")
	}

	return nil
}
