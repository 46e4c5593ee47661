package controllers_test

import (
	"io"
	"strings"
	"testing"

	"inventory-app/models"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestManagerMovementUpdatesBalance(t *testing.T) {
	app, db := setupApp(t)
	seedUser(t, db, "mgr1", "pw1", models.RoleManager, "HUB1")
	token := login(t, app, "mgr1", "pw1")

	resp, err := app.Test(jsonRequest("POST", "/api/v1/inventory/movement",
		fiber.Map{"sku": "WIDGET", "hub": "HUB1", "action": "IN", "qty": 10}, token))
	require.NoError(t, err)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	body := decodeBody(t, resp)
	data := body["data"].(map[string]interface{})
	assert.Equal(t, float64(10), data["quantity"])

	var logRow models.ActionLog
	require.NoError(t, db.First(&logRow).Error)
	assert.Equal(t, "mgr1", logRow.Username)
	assert.Equal(t, models.ActionIn, logRow.Action)
}

func TestManagerCannotPostToForeignHub(t *testing.T) {
	app, db := setupApp(t)
	seedUser(t, db, "mgr1", "pw1", models.RoleManager, "HUB1")
	token := login(t, app, "mgr1", "pw1")

	resp, err := app.Test(jsonRequest("POST", "/api/v1/inventory/movement",
		fiber.Map{"sku": "WIDGET", "hub": "HUB2", "action": "IN", "qty": 10}, token))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusForbidden, resp.StatusCode)

	var invCount, logCount int64
	db.Model(&models.Inventory{}).Count(&invCount)
	db.Model(&models.ActionLog{}).Count(&logCount)
	assert.Equal(t, int64(0), invCount)
	assert.Equal(t, int64(0), logCount)
}

func TestRetailMovementIsPinnedToRetailHub(t *testing.T) {
	app, db := setupApp(t)
	seedUser(t, db, "retail1", "pw1", models.RoleRetail, "RETAIL")
	token := login(t, app, "retail1", "pw1")

	// The hub in the payload is ignored for retail users.
	resp, err := app.Test(jsonRequest("POST", "/api/v1/inventory/movement",
		fiber.Map{"sku": "WIDGET", "hub": "HUB1", "action": "COUNT", "qty": 4}, token))
	require.NoError(t, err)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	var inv models.Inventory
	require.NoError(t, db.First(&inv).Error)
	assert.Equal(t, "RETAIL", inv.Hub)
	assert.Equal(t, 4, inv.Quantity)
}

func TestAdminActionRejectedForManager(t *testing.T) {
	app, db := setupApp(t)
	seedUser(t, db, "mgr1", "pw1", models.RoleManager, "HUB1")
	token := login(t, app, "mgr1", "pw1")

	resp, err := app.Test(jsonRequest("POST", "/api/v1/inventory/movement",
		fiber.Map{"sku": "WIDGET", "hub": "HUB1", "action": "ADMIN-ADD", "qty": 10}, token))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusForbidden, resp.StatusCode)
}

func TestSupplierCannotPostMovements(t *testing.T) {
	app, db := setupApp(t)
	seedUser(t, db, "supplier1", "pw1", models.RoleSupplier, "ALL")
	token := login(t, app, "supplier1", "pw1")

	resp, err := app.Test(jsonRequest("POST", "/api/v1/inventory/movement",
		fiber.Map{"sku": "WIDGET", "hub": "HUB1", "action": "IN", "qty": 10}, token))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusForbidden, resp.StatusCode)
}

func TestInventoryListIsScopedToHubs(t *testing.T) {
	app, db := setupApp(t)
	seedUser(t, db, "mgr1", "pw1", models.RoleManager, "HUB1")
	seedUser(t, db, "mgr2", "pw2", models.RoleManager, "HUB2")

	token1 := login(t, app, "mgr1", "pw1")
	token2 := login(t, app, "mgr2", "pw2")

	resp, err := app.Test(jsonRequest("POST", "/api/v1/inventory/movement",
		fiber.Map{"sku": "WIDGET", "hub": "HUB1", "action": "IN", "qty": 10}, token1))
	require.NoError(t, err)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	resp, err = app.Test(jsonRequest("GET", "/api/v1/inventory", nil, token2))
	require.NoError(t, err)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	body := decodeBody(t, resp)
	data := body["data"].(map[string]interface{})
	balances := data["balances"].([]interface{})
	assert.Empty(t, balances)

	// Asking for the other hub directly is refused outright.
	resp, err = app.Test(jsonRequest("GET", "/api/v1/inventory?hub=HUB1", nil, token2))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusForbidden, resp.StatusCode)
}

func TestLowStockCSVExport(t *testing.T) {
	app, db := setupApp(t)
	seedUser(t, db, "mgr1", "pw1", models.RoleManager, "HUB1")
	token := login(t, app, "mgr1", "pw1")

	resp, err := app.Test(jsonRequest("POST", "/api/v1/inventory/movement",
		fiber.Map{"sku": "WIDGET", "hub": "HUB1", "action": "IN", "qty": 3}, token))
	require.NoError(t, err)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	resp, err = app.Test(jsonRequest("POST", "/api/v1/inventory/movement",
		fiber.Map{"sku": "GADGET", "hub": "HUB1", "action": "IN", "qty": 50}, token))
	require.NoError(t, err)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	resp, err = app.Test(jsonRequest("GET", "/api/v1/inventory/low-stock/export/csv?hub=HUB1", nil, token))
	require.NoError(t, err)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Equal(t, "text/csv", resp.Header.Get("Content-Type"))
	assert.Contains(t, resp.Header.Get("Content-Disposition"), "low_stock_HUB1.csv")

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	resp.Body.Close()
	body := string(raw)
	assert.True(t, strings.HasPrefix(body, "SKU,Name,Barcode,Hub,Quantity"))
	assert.Contains(t, body, "WIDGET")
	assert.NotContains(t, body, "GADGET")
}

func TestLowStockCSVExportIsHubScoped(t *testing.T) {
	app, db := setupApp(t)
	seedUser(t, db, "mgr1", "pw1", models.RoleManager, "HUB1")
	token := login(t, app, "mgr1", "pw1")

	resp, err := app.Test(jsonRequest("GET", "/api/v1/inventory/low-stock/export/csv?hub=HUB2", nil, token))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusForbidden, resp.StatusCode)
}

func TestInvalidMovementAction(t *testing.T) {
	app, db := setupApp(t)
	seedUser(t, db, "mgr1", "pw1", models.RoleManager, "HUB1")
	token := login(t, app, "mgr1", "pw1")

	resp, err := app.Test(jsonRequest("POST", "/api/v1/inventory/movement",
		fiber.Map{"sku": "WIDGET", "hub": "HUB1", "action": "TELEPORT", "qty": 10}, token))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}
