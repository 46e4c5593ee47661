package controllers

import (
	"inventory-app/models"
	"inventory-app/repositories"
	"inventory-app/utils"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

type DashboardController struct {
	DB *gorm.DB
}

func NewDashboardController(DB *gorm.DB) *DashboardController {
	return &DashboardController{DB: DB}
}

// GetActivity returns qty-by-day-by-action aggregates for the activity chart.
func (c *DashboardController) GetActivity(ctx *fiber.Ctx) error {
	hubs, _ := ctx.Locals("hubs").(string)
	hub := ctx.Query("hub")

	if hub != "" && !utils.HasHubAccess(hubs, hub) {
		return ctx.Status(fiber.StatusForbidden).JSON(fiber.Map{
			"success": false,
			"message": "Forbidden: no access to hub " + hub,
		})
	}
	// Non-admin callers without an explicit hub get their first hub.
	if hub == "" && hubs != models.HubsAll {
		codes := utils.ParseHubs(hubs)
		if len(codes) > 0 {
			hub = codes[0]
		}
	}

	repo := repositories.NewLogRepository(c.DB)
	buckets, err := repo.GetActivity(hub)
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{
		"success": true,
		"data":    fiber.Map{"activity": buckets},
	})
}
