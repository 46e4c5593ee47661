package controllers

import (
	"strconv"

	"inventory-app/models"
	"inventory-app/repositories"
	"inventory-app/types"
	"inventory-app/utils"

	"github.com/go-playground/validator"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

type MessageController struct {
	DB *gorm.DB
}

func NewMessageController(DB *gorm.DB) *MessageController {
	return &MessageController{DB: DB}
}

type messageInput struct {
	Hub     string `json:"hub" validate:"required"`
	Subject string `json:"subject" validate:"required"`
	Body    string `json:"body" validate:"required"`
}

func (c *MessageController) CreateMessage(ctx *fiber.Ctx) error {
	var input messageInput
	if err := ctx.BodyParser(&input); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	validate := validator.New()
	if err := validate.Struct(input); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	username, _ := ctx.Locals("username").(string)
	hubs, _ := ctx.Locals("hubs").(string)

	if !utils.HasHubAccess(hubs, input.Hub) {
		return ctx.Status(fiber.StatusForbidden).JSON(fiber.Map{
			"success": false,
			"message": "Forbidden: no access to hub " + input.Hub,
		})
	}

	repo := repositories.NewMessageRepository(c.DB)
	msg, err := repo.CreateMessage(username, input.Hub, input.Subject, input.Body)
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return ctx.Status(fiber.StatusCreated).JSON(fiber.Map{
		"success": true,
		"message": "Message sent to admin",
		"data":    msg,
	})
}

func (c *MessageController) CreateReply(ctx *fiber.Ctx) error {
	id, err := strconv.ParseInt(ctx.Params("id"), 10, 64)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"message": "Invalid message id",
		})
	}

	var input struct {
		Body string `json:"body" validate:"required"`
	}
	if err := ctx.BodyParser(&input); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	validate := validator.New()
	if err := validate.Struct(input); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	username, _ := ctx.Locals("username").(string)

	repo := repositories.NewMessageRepository(c.DB)
	reply, err := repo.CreateReply(username, types.SnowflakeID(id), input.Body)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"success": false,
				"message": "Message not found",
			})
		}
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return ctx.Status(fiber.StatusCreated).JSON(fiber.Map{
		"success": true,
		"message": "Reply sent",
		"data":    reply,
	})
}

func (c *MessageController) GetMessages(ctx *fiber.Ctx) error {
	role, _ := ctx.Locals("role").(string)
	hubs, _ := ctx.Locals("hubs").(string)

	repo := repositories.NewMessageRepository(c.DB)

	if role == models.RoleAdmin {
		inbox, err := repo.GetInbox()
		if err != nil {
			return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
		}
		return ctx.Status(fiber.StatusOK).JSON(fiber.Map{
			"success": true,
			"data":    fiber.Map{"messages": inbox},
		})
	}

	messages, err := repo.GetForHubs(utils.ParseHubs(hubs))
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{
		"success": true,
		"data":    fiber.Map{"messages": messages},
	})
}

func (c *MessageController) GetReplies(ctx *fiber.Ctx) error {
	id, err := strconv.ParseInt(ctx.Params("id"), 10, 64)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"message": "Invalid message id",
		})
	}

	role, _ := ctx.Locals("role").(string)
	hubs, _ := ctx.Locals("hubs").(string)

	var original models.Message
	if err := c.DB.Where("id = ?", types.SnowflakeID(id)).First(&original).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"success": false,
				"message": "Message not found",
			})
		}
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	if role != models.RoleAdmin && !utils.HasHubAccess(hubs, original.Hub) {
		return ctx.Status(fiber.StatusForbidden).JSON(fiber.Map{
			"success": false,
			"message": "Forbidden: no access to hub " + original.Hub,
		})
	}

	repo := repositories.NewMessageRepository(c.DB)
	replies, err := repo.GetReplies(types.SnowflakeID(id))
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{
		"success": true,
		"data":    fiber.Map{"replies": replies},
	})
}

func (c *MessageController) GetUnreadCount(ctx *fiber.Ctx) error {
	repo := repositories.NewMessageRepository(c.DB)
	count, err := repo.CountUnanswered()
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{
		"success": true,
		"data":    fiber.Map{"unread": count},
	})
}
