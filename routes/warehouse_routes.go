package routes

import (
	"inventory-app/config"
	"inventory-app/controllers"
	"inventory-app/middleware"
	"inventory-app/models"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func SetupWarehouseRoutes(app *fiber.App, db *gorm.DB) {
	warehouseController := controllers.NewWarehouseController(db)
	api := app.Group(config.MAIN_ROUTES+"/warehouses", middleware.AuthMiddleware(db))

	api.Get("/", warehouseController.GetAllWarehouses)
	api.Put("/:code",
		middleware.RequireRole(models.RoleAdmin),
		warehouseController.UpdateWarehouse)
}
