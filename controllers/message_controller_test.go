package controllers_test

import (
	"fmt"
	"testing"

	"inventory-app/models"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestManagerSendsMessageAdminReplies(t *testing.T) {
	app, db := setupApp(t)
	seedUser(t, db, "mgr1", "pw1", models.RoleManager, "HUB1")

	mgrToken := login(t, app, "mgr1", "pw1")
	adminToken := login(t, app, "kevin", "admin123")

	resp, err := app.Test(jsonRequest("POST", "/api/v1/messages",
		fiber.Map{"hub": "HUB1", "subject": "Shortage", "body": "Widgets are running out"}, mgrToken))
	require.NoError(t, err)
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)

	var msg models.Message
	require.NoError(t, db.Where("sender = ?", "mgr1").First(&msg).Error)

	resp, err = app.Test(jsonRequest("POST", fmt.Sprintf("/api/v1/messages/%d/reply", int64(msg.ID)),
		fiber.Map{"body": "Restock on the way"}, adminToken))
	require.NoError(t, err)
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)

	var reply models.Message
	require.NoError(t, db.Where("sender = ?", "kevin").First(&reply).Error)
	require.NotNil(t, reply.ReplyTo)
	assert.Equal(t, msg.ID, *reply.ReplyTo)
	assert.Equal(t, "RE: Shortage", reply.Subject)
}

func TestMessageToForeignHubIsForbidden(t *testing.T) {
	app, db := setupApp(t)
	seedUser(t, db, "mgr1", "pw1", models.RoleManager, "HUB1")
	token := login(t, app, "mgr1", "pw1")

	resp, err := app.Test(jsonRequest("POST", "/api/v1/messages",
		fiber.Map{"hub": "HUB2", "subject": "Hi", "body": "text"}, token))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusForbidden, resp.StatusCode)
}

func TestAdminCannotStartThread(t *testing.T) {
	app, _ := setupApp(t)
	token := login(t, app, "kevin", "admin123")

	resp, err := app.Test(jsonRequest("POST", "/api/v1/messages",
		fiber.Map{"hub": "HUB1", "subject": "Hi", "body": "text"}, token))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusForbidden, resp.StatusCode)
}

func TestReplyIsAdminOnly(t *testing.T) {
	app, db := setupApp(t)
	seedUser(t, db, "mgr1", "pw1", models.RoleManager, "HUB1")
	token := login(t, app, "mgr1", "pw1")

	resp, err := app.Test(jsonRequest("POST", "/api/v1/messages",
		fiber.Map{"hub": "HUB1", "subject": "Shortage", "body": "text"}, token))
	require.NoError(t, err)
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)

	var msg models.Message
	require.NoError(t, db.Where("sender = ?", "mgr1").First(&msg).Error)

	resp, err = app.Test(jsonRequest("POST", fmt.Sprintf("/api/v1/messages/%d/reply", int64(msg.ID)),
		fiber.Map{"body": "self reply"}, token))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusForbidden, resp.StatusCode)
}

func TestReplyToMissingMessageIs404(t *testing.T) {
	app, _ := setupApp(t)
	token := login(t, app, "kevin", "admin123")

	resp, err := app.Test(jsonRequest("POST", "/api/v1/messages/99999/reply",
		fiber.Map{"body": "hello?"}, token))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
}

func TestRepliesAreHubScoped(t *testing.T) {
	app, db := setupApp(t)
	seedUser(t, db, "mgr1", "pw1", models.RoleManager, "HUB1")
	seedUser(t, db, "mgr2", "pw2", models.RoleManager, "HUB2")

	token1 := login(t, app, "mgr1", "pw1")
	token2 := login(t, app, "mgr2", "pw2")
	adminToken := login(t, app, "kevin", "admin123")

	resp, err := app.Test(jsonRequest("POST", "/api/v1/messages",
		fiber.Map{"hub": "HUB2", "subject": "Private", "body": "text"}, token2))
	require.NoError(t, err)
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)

	var msg models.Message
	require.NoError(t, db.Where("sender = ?", "mgr2").First(&msg).Error)
	target := fmt.Sprintf("/api/v1/messages/%d/replies", int64(msg.ID))

	resp, err = app.Test(jsonRequest("GET", target, nil, token1))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusForbidden, resp.StatusCode)

	resp, err = app.Test(jsonRequest("GET", target, nil, token2))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	resp, err = app.Test(jsonRequest("GET", target, nil, adminToken))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
}

func TestRepliesForMissingMessageIs404(t *testing.T) {
	app, _ := setupApp(t)
	token := login(t, app, "kevin", "admin123")

	resp, err := app.Test(jsonRequest("GET", "/api/v1/messages/99999/replies", nil, token))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
}

func TestUnreadCountForAdmin(t *testing.T) {
	app, db := setupApp(t)
	seedUser(t, db, "mgr1", "pw1", models.RoleManager, "HUB1")
	mgrToken := login(t, app, "mgr1", "pw1")
	adminToken := login(t, app, "kevin", "admin123")

	resp, err := app.Test(jsonRequest("POST", "/api/v1/messages",
		fiber.Map{"hub": "HUB1", "subject": "One", "body": "text"}, mgrToken))
	require.NoError(t, err)
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)

	resp, err = app.Test(jsonRequest("GET", "/api/v1/messages/unread-count", nil, adminToken))
	require.NoError(t, err)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	body := decodeBody(t, resp)
	data := body["data"].(map[string]interface{})
	assert.Equal(t, float64(1), data["unread"])
}
