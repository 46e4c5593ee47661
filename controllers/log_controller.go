package controllers

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"inventory-app/models"
	"inventory-app/repositories"
	"inventory-app/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/xuri/excelize/v2"
	"gorm.io/gorm"
)

type LogController struct {
	DB *gorm.DB
}

func NewLogController(DB *gorm.DB) *LogController {
	return &LogController{DB: DB}
}

func (c *LogController) callerLogs(ctx *fiber.Ctx) ([]models.ActionLog, error) {
	repo := repositories.NewLogRepository(c.DB)

	hubs, _ := ctx.Locals("hubs").(string)
	hub := ctx.Query("hub")

	if hub != "" {
		if !utils.HasHubAccess(hubs, hub) {
			return nil, fiber.NewError(fiber.StatusForbidden, "Forbidden: no access to hub "+hub)
		}
		return repo.GetLogs(hub)
	}

	if hubs == models.HubsAll {
		return repo.GetLogs("")
	}
	return repo.GetLogsForHubs(utils.ParseHubs(hubs))
}

func (c *LogController) GetLogs(ctx *fiber.Ctx) error {
	logs, err := c.callerLogs(ctx)
	if err != nil {
		if fe, ok := err.(*fiber.Error); ok {
			return ctx.Status(fe.Code).JSON(fiber.Map{"success": false, "message": fe.Message})
		}
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{
		"success": true,
		"data":    fiber.Map{"logs": logs},
	})
}

func (c *LogController) ExportCSV(ctx *fiber.Ctx) error {
	logs, err := c.callerLogs(ctx)
	if err != nil {
		if fe, ok := err.(*fiber.Error); ok {
			return ctx.Status(fe.Code).JSON(fiber.Map{"success": false, "message": fe.Message})
		}
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	w.Write([]string{"Timestamp", "Username", "SKU", "Hub", "Action", "Qty", "Comment"})
	for _, l := range logs {
		w.Write([]string{
			l.Timestamp.Format(time.RFC3339),
			l.Username, l.Sku, l.Hub, l.Action,
			strconv.Itoa(l.Qty), l.Comment,
		})
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	ctx.Set("Content-Type", "text/csv")
	ctx.Set("Content-Disposition", `attachment; filename="logs.csv"`)
	return ctx.Send(buf.Bytes())
}

func (c *LogController) ExportExcel(ctx *fiber.Ctx) error {
	logs, err := c.callerLogs(ctx)
	if err != nil {
		if fe, ok := err.(*fiber.Error); ok {
			return ctx.Status(fe.Code).JSON(fiber.Map{"success": false, "message": fe.Message})
		}
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	f := excelize.NewFile()
	sheet := "Sheet1"

	f.SetCellValue(sheet, "A1", "Timestamp")
	f.SetCellValue(sheet, "B1", "Username")
	f.SetCellValue(sheet, "C1", "SKU")
	f.SetCellValue(sheet, "D1", "Hub")
	f.SetCellValue(sheet, "E1", "Action")
	f.SetCellValue(sheet, "F1", "Qty")
	f.SetCellValue(sheet, "G1", "Comment")

	for i, l := range logs {
		f.SetCellValue(sheet, fmt.Sprintf("A%d", i+2), l.Timestamp.Format(time.RFC3339))
		f.SetCellValue(sheet, fmt.Sprintf("B%d", i+2), l.Username)
		f.SetCellValue(sheet, fmt.Sprintf("C%d", i+2), l.Sku)
		f.SetCellValue(sheet, fmt.Sprintf("D%d", i+2), l.Hub)
		f.SetCellValue(sheet, fmt.Sprintf("E%d", i+2), l.Action)
		f.SetCellValue(sheet, fmt.Sprintf("F%d", i+2), l.Qty)
		f.SetCellValue(sheet, fmt.Sprintf("G%d", i+2), l.Comment)
	}

	ctx.Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	ctx.Set("Content-Disposition", `attachment; filename="logs.xlsx"`)

	if err := f.Write(ctx.Response().BodyWriter()); err != nil {
		return ctx.Status(http.StatusInternalServerError).SendString("Failed to generate Excel")
	}

	return nil
}
