package routes

import (
	"inventory-app/config"
	"inventory-app/controllers"
	"inventory-app/middleware"
	"inventory-app/models"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func SetupSkuRoutes(app *fiber.App, db *gorm.DB) {
	skuController := controllers.NewSkuController(db)
	api := app.Group(config.MAIN_ROUTES+"/skus", middleware.AuthMiddleware(db))

	api.Get("/", skuController.GetSkus)
	api.Post("/",
		middleware.RequireRole(models.RoleAdmin),
		skuController.CreateSku)
	api.Post("/upload",
		middleware.RequireRole(models.RoleAdmin),
		skuController.UploadSkus)
}
