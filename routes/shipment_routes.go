package routes

import (
	"inventory-app/config"
	"inventory-app/controllers"
	"inventory-app/middleware"
	"inventory-app/models"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func SetupShipmentRoutes(app *fiber.App, db *gorm.DB) {
	shipmentController := controllers.NewShipmentController(db)
	api := app.Group(config.MAIN_ROUTES+"/shipments", middleware.AuthMiddleware(db))

	api.Get("/", shipmentController.GetShipments)
	api.Get("/export/csv", shipmentController.ExportCSV)
	api.Post("/",
		middleware.RequireRole(models.RoleSupplier),
		shipmentController.CreateShipment)
}
