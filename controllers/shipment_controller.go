package controllers

import (
	"bytes"
	"encoding/csv"
	"strconv"
	"time"

	"inventory-app/models"
	"inventory-app/repositories"
	"inventory-app/utils"

	"github.com/go-playground/validator"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

type ShipmentController struct {
	DB *gorm.DB
}

func NewShipmentController(DB *gorm.DB) *ShipmentController {
	return &ShipmentController{DB: DB}
}

type shipmentInput struct {
	Tracking string                      `json:"tracking" validate:"required"`
	Carrier  string                      `json:"carrier" validate:"required"`
	ShipDate string                      `json:"ship_date" validate:"required"`
	Hub      string                      `json:"hub" validate:"required"`
	Notes    string                      `json:"notes"`
	Lines    []repositories.ShipmentLine `json:"lines" validate:"required,min=1,dive"`
}

func (c *ShipmentController) CreateShipment(ctx *fiber.Ctx) error {
	var input shipmentInput
	if err := ctx.BodyParser(&input); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	validate := validator.New()
	if err := validate.Struct(input); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	var warehouse models.Warehouse
	if err := c.DB.Where("code = ?", input.Hub).First(&warehouse).Error; err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"message": "Unknown destination hub " + input.Hub,
		})
	}

	username, _ := ctx.Locals("username").(string)

	repo := repositories.NewShipmentRepository(c.DB)
	err := repo.RecordShipment(username, input.Tracking, input.Carrier, input.ShipDate, input.Hub, input.Notes, input.Lines)
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return ctx.Status(fiber.StatusCreated).JSON(fiber.Map{
		"success": true,
		"message": "Shipment recorded for " + input.Hub,
		"data": fiber.Map{
			"tracking": input.Tracking,
			"hub":      input.Hub,
			"lines":    len(input.Lines),
		},
	})
}

// callerShipments scopes the shipment query by role: suppliers see their own
// rows, managers their hubs, admin everything.
func (c *ShipmentController) callerShipments(ctx *fiber.Ctx) ([]models.Shipment, error) {
	repo := repositories.NewShipmentRepository(c.DB)

	role, _ := ctx.Locals("role").(string)
	username, _ := ctx.Locals("username").(string)
	hubs, _ := ctx.Locals("hubs").(string)

	filter := repositories.ShipmentFilter{
		StartDate: ctx.Query("start"),
		EndDate:   ctx.Query("end"),
	}

	hub := ctx.Query("hub")
	switch role {
	case models.RoleSupplier:
		filter.Supplier = username
		filter.Hub = hub
	case models.RoleAdmin:
		filter.Hub = hub
	default:
		if hub != "" {
			if !utils.HasHubAccess(hubs, hub) {
				return nil, fiber.NewError(fiber.StatusForbidden, "Forbidden: no access to hub "+hub)
			}
			filter.Hub = hub
		} else {
			filter.Hubs = utils.ParseHubs(hubs)
		}
	}

	return repo.GetShipments(filter)
}

func (c *ShipmentController) GetShipments(ctx *fiber.Ctx) error {
	shipments, err := c.callerShipments(ctx)
	if err != nil {
		if fe, ok := err.(*fiber.Error); ok {
			return ctx.Status(fe.Code).JSON(fiber.Map{"success": false, "message": fe.Message})
		}
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{
		"success": true,
		"data":    fiber.Map{"shipments": shipments},
	})
}

func (c *ShipmentController) ExportCSV(ctx *fiber.Ctx) error {
	shipments, err := c.callerShipments(ctx)
	if err != nil {
		if fe, ok := err.(*fiber.Error); ok {
			return ctx.Status(fe.Code).JSON(fiber.Map{"success": false, "message": fe.Message})
		}
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	w.Write([]string{"Timestamp", "Supplier", "Tracking", "Carrier", "ShipDate", "Hub", "SKU", "Qty"})
	for _, s := range shipments {
		w.Write([]string{
			s.Timestamp.Format(time.RFC3339),
			s.Supplier, s.Tracking, s.Carrier, s.ShipDate, s.Hub, s.Sku,
			strconv.Itoa(s.Qty),
		})
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	ctx.Set("Content-Type", "text/csv")
	ctx.Set("Content-Disposition", `attachment; filename="shipments.csv"`)
	return ctx.Send(buf.Bytes())
}
