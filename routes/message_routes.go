package routes

import (
	"inventory-app/config"
	"inventory-app/controllers"
	"inventory-app/middleware"
	"inventory-app/models"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func SetupMessageRoutes(app *fiber.App, db *gorm.DB) {
	messageController := controllers.NewMessageController(db)
	api := app.Group(config.MAIN_ROUTES+"/messages", middleware.AuthMiddleware(db))

	api.Get("/", messageController.GetMessages)
	api.Get("/unread-count",
		middleware.RequireRole(models.RoleAdmin),
		messageController.GetUnreadCount)
	api.Get("/:id/replies", messageController.GetReplies)
	api.Post("/",
		middleware.RequireRole(models.RoleManager, models.RoleSupplier, models.RoleRetail),
		messageController.CreateMessage)
	api.Post("/:id/reply",
		middleware.RequireRole(models.RoleAdmin),
		messageController.CreateReply)
}
