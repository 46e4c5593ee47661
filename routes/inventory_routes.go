package routes

import (
	"inventory-app/config"
	"inventory-app/controllers"
	"inventory-app/middleware"
	"inventory-app/models"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func SetupInventoryRoutes(app *fiber.App, db *gorm.DB) {
	inventoryController := controllers.NewInventoryController(db)
	api := app.Group(config.MAIN_ROUTES+"/inventory", middleware.AuthMiddleware(db))

	api.Get("/", inventoryController.GetInventory)
	api.Get("/totals", inventoryController.GetTotals)
	api.Get("/low-stock", inventoryController.GetLowStock)
	api.Get("/low-stock/export/csv", inventoryController.ExportLowStockCSV)
	api.Get("/export/csv", inventoryController.ExportCSV)
	api.Get("/export/excel", inventoryController.ExportExcel)
	api.Post("/movement",
		middleware.RequireRole(models.RoleAdmin, models.RoleManager, models.RoleRetail),
		inventoryController.ApplyMovement)
}
