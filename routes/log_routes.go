package routes

import (
	"inventory-app/config"
	"inventory-app/controllers"
	"inventory-app/middleware"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func SetupLogRoutes(app *fiber.App, db *gorm.DB) {
	logController := controllers.NewLogController(db)
	api := app.Group(config.MAIN_ROUTES+"/logs", middleware.AuthMiddleware(db))

	api.Get("/", logController.GetLogs)
	api.Get("/export/csv", logController.ExportCSV)
	api.Get("/export/excel", logController.ExportExcel)
}
