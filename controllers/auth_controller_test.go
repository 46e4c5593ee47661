package controllers_test

import (
	"testing"

	"inventory-app/models"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoginSeededAdmin(t *testing.T) {
	app, db := setupApp(t)

	resp, err := app.Test(jsonRequest("POST", "/api/v1/auth/login",
		fiber.Map{"username": "kevin", "password": "admin123"}, ""))
	require.NoError(t, err)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	body := decodeBody(t, resp)
	assert.NotEmpty(t, body["x_token"])

	user := body["user"].(map[string]interface{})
	assert.Equal(t, "kevin", user["username"])
	assert.Equal(t, models.RoleAdmin, user["role"])
	assert.Equal(t, []interface{}{"ALL"}, user["hubs"])

	var session models.UserSession
	require.NoError(t, db.Where("username = ? AND is_active = ?", "kevin", true).First(&session).Error)
}

func TestLoginWrongPasswordIsGeneric(t *testing.T) {
	app, db := setupApp(t)

	resp, err := app.Test(jsonRequest("POST", "/api/v1/auth/login",
		fiber.Map{"username": "kevin", "password": "nope"}, ""))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
	body := decodeBody(t, resp)
	assert.Equal(t, "Invalid username or password", body["message"])

	var logRow models.LoginLog
	require.NoError(t, db.Where("username = ?", "kevin").First(&logRow).Error)
	assert.Equal(t, "FAILED", logRow.LoginStatus)
	require.NotNil(t, logRow.FailureReason)
}

func TestLoginUnknownUserIsGeneric(t *testing.T) {
	app, _ := setupApp(t)

	resp, err := app.Test(jsonRequest("POST", "/api/v1/auth/login",
		fiber.Map{"username": "ghost", "password": "whatever"}, ""))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
	body := decodeBody(t, resp)
	assert.Equal(t, "Invalid username or password", body["message"])
}

func TestLoginMissingFields(t *testing.T) {
	app, _ := setupApp(t)

	resp, err := app.Test(jsonRequest("POST", "/api/v1/auth/login",
		fiber.Map{"username": "kevin"}, ""))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}

func TestMeReturnsTokenIdentity(t *testing.T) {
	app, db := setupApp(t)
	seedUser(t, db, "mgr1", "pw1", models.RoleManager, "HUB1,HUB2")
	token := login(t, app, "mgr1", "pw1")

	resp, err := app.Test(jsonRequest("GET", "/api/v1/auth/me", nil, token))
	require.NoError(t, err)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	body := decodeBody(t, resp)
	user := body["user"].(map[string]interface{})
	assert.Equal(t, "mgr1", user["username"])
	assert.Equal(t, models.RoleManager, user["role"])
	assert.Equal(t, []interface{}{"HUB1", "HUB2"}, user["hubs"])
}

func TestLogoutInvalidatesSession(t *testing.T) {
	app, _ := setupApp(t)
	token := login(t, app, "kevin", "admin123")

	resp, err := app.Test(jsonRequest("GET", "/api/v1/auth/logout", nil, token))
	require.NoError(t, err)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	// The token still decodes, but the session behind it is gone.
	resp, err = app.Test(jsonRequest("GET", "/api/v1/auth/me", nil, token))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
}

func TestLoginStoreFailureIsNotAuditedAsBadCredential(t *testing.T) {
	app, db := setupApp(t)
	require.NoError(t, db.Migrator().DropTable(&models.User{}))

	resp, err := app.Test(jsonRequest("POST", "/api/v1/auth/login",
		fiber.Map{"username": "kevin", "password": "admin123"}, ""))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusInternalServerError, resp.StatusCode)

	var count int64
	require.NoError(t, db.Model(&models.LoginLog{}).Count(&count).Error)
	assert.Equal(t, int64(0), count)
}

func TestProtectedRoutesRejectMissingToken(t *testing.T) {
	app, _ := setupApp(t)

	resp, err := app.Test(jsonRequest("GET", "/api/v1/inventory", nil, ""))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
}
