package routes

import (
	"inventory-app/config"
	"inventory-app/controllers"
	"inventory-app/middleware"
	"inventory-app/models"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func SetupUserRoutes(app *fiber.App, db *gorm.DB) {
	userController := controllers.NewUserController(db)
	api := app.Group(config.MAIN_ROUTES+"/users",
		middleware.AuthMiddleware(db),
		middleware.RequireRole(models.RoleAdmin))

	api.Post("/", userController.CreateUser)
	api.Get("/", userController.GetAllUsers)
	api.Delete("/:username", userController.DeleteUser)
	api.Put("/:username/password", userController.ResetPassword)
}
